// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/oculusgrp/dealdesk_backend/internal/repo/restaurantlocation"
	"github.com/oculusgrp/dealdesk_backend/internal/repo/restauranttrend"
)

// RestaurantTrend is the model entity for the RestaurantTrend schema.
type RestaurantTrend struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → restaurant_locations.id
	LocationID uuid.UUID `json:"location_id,omitempty"`
	// Year holds the value of the "year" field.
	Year int `json:"year,omitempty"`
	// CurrNatlGrade holds the value of the "curr_natl_grade" field.
	CurrNatlGrade *string `json:"curr_natl_grade,omitempty"`
	// CurrNatlIndex holds the value of the "curr_natl_index" field.
	CurrNatlIndex *float64 `json:"curr_natl_index,omitempty"`
	// Current annual sales in $000
	CurrAnnualSlsK *float64 `json:"curr_annual_sls_k,omitempty"`
	// CurrMktGrade holds the value of the "curr_mkt_grade" field.
	CurrMktGrade *string `json:"curr_mkt_grade,omitempty"`
	// CurrMktIndex holds the value of the "curr_mkt_index" field.
	CurrMktIndex *float64 `json:"curr_mkt_index,omitempty"`
	// PastNatlGrade holds the value of the "past_natl_grade" field.
	PastNatlGrade *string `json:"past_natl_grade,omitempty"`
	// PastNatlIndex holds the value of the "past_natl_index" field.
	PastNatlIndex *float64 `json:"past_natl_index,omitempty"`
	// PastAnnualSlsK holds the value of the "past_annual_sls_k" field.
	PastAnnualSlsK *float64 `json:"past_annual_sls_k,omitempty"`
	// PastMktGrade holds the value of the "past_mkt_grade" field.
	PastMktGrade *string `json:"past_mkt_grade,omitempty"`
	// PastMktIndex holds the value of the "past_mkt_index" field.
	PastMktIndex *float64 `json:"past_mkt_index,omitempty"`
	// SurveyYrLast holds the value of the "survey_yr_last" field.
	SurveyYrLast *int `json:"survey_yr_last,omitempty"`
	// SurveyYrNext holds the value of the "survey_yr_next" field.
	SurveyYrNext *int `json:"survey_yr_next,omitempty"`
	// TotalSurveys holds the value of the "total_surveys" field.
	TotalSurveys *int `json:"total_surveys,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RestaurantTrendQuery when eager-loading is set.
	Edges        RestaurantTrendEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RestaurantTrendEdges holds the relations/edges for other nodes in the graph.
type RestaurantTrendEdges struct {
	// Location holds the value of the location edge.
	Location *RestaurantLocation `json:"location,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// LocationOrErr returns the Location value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RestaurantTrendEdges) LocationOrErr() (*RestaurantLocation, error) {
	if e.Location != nil {
		return e.Location, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: restaurantlocation.Label}
	}
	return nil, &NotLoadedError{edge: "location"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RestaurantTrend) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case restauranttrend.FieldCurrNatlIndex, restauranttrend.FieldCurrAnnualSlsK, restauranttrend.FieldCurrMktIndex, restauranttrend.FieldPastNatlIndex, restauranttrend.FieldPastAnnualSlsK, restauranttrend.FieldPastMktIndex:
			values[i] = new(sql.NullFloat64)
		case restauranttrend.FieldYear, restauranttrend.FieldSurveyYrLast, restauranttrend.FieldSurveyYrNext, restauranttrend.FieldTotalSurveys:
			values[i] = new(sql.NullInt64)
		case restauranttrend.FieldCurrNatlGrade, restauranttrend.FieldCurrMktGrade, restauranttrend.FieldPastNatlGrade, restauranttrend.FieldPastMktGrade:
			values[i] = new(sql.NullString)
		case restauranttrend.FieldCreatedAt, restauranttrend.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case restauranttrend.FieldID, restauranttrend.FieldLocationID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RestaurantTrend fields.
func (_m *RestaurantTrend) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case restauranttrend.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case restauranttrend.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case restauranttrend.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case restauranttrend.FieldLocationID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field location_id", values[i])
			} else if value != nil {
				_m.LocationID = *value
			}
		case restauranttrend.FieldYear:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field year", values[i])
			} else if value.Valid {
				_m.Year = int(value.Int64)
			}
		case restauranttrend.FieldCurrNatlGrade:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field curr_natl_grade", values[i])
			} else if value.Valid {
				_m.CurrNatlGrade = new(string)
				*_m.CurrNatlGrade = value.String
			}
		case restauranttrend.FieldCurrNatlIndex:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field curr_natl_index", values[i])
			} else if value.Valid {
				_m.CurrNatlIndex = new(float64)
				*_m.CurrNatlIndex = value.Float64
			}
		case restauranttrend.FieldCurrAnnualSlsK:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field curr_annual_sls_k", values[i])
			} else if value.Valid {
				_m.CurrAnnualSlsK = new(float64)
				*_m.CurrAnnualSlsK = value.Float64
			}
		case restauranttrend.FieldCurrMktGrade:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field curr_mkt_grade", values[i])
			} else if value.Valid {
				_m.CurrMktGrade = new(string)
				*_m.CurrMktGrade = value.String
			}
		case restauranttrend.FieldCurrMktIndex:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field curr_mkt_index", values[i])
			} else if value.Valid {
				_m.CurrMktIndex = new(float64)
				*_m.CurrMktIndex = value.Float64
			}
		case restauranttrend.FieldPastNatlGrade:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field past_natl_grade", values[i])
			} else if value.Valid {
				_m.PastNatlGrade = new(string)
				*_m.PastNatlGrade = value.String
			}
		case restauranttrend.FieldPastNatlIndex:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field past_natl_index", values[i])
			} else if value.Valid {
				_m.PastNatlIndex = new(float64)
				*_m.PastNatlIndex = value.Float64
			}
		case restauranttrend.FieldPastAnnualSlsK:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field past_annual_sls_k", values[i])
			} else if value.Valid {
				_m.PastAnnualSlsK = new(float64)
				*_m.PastAnnualSlsK = value.Float64
			}
		case restauranttrend.FieldPastMktGrade:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field past_mkt_grade", values[i])
			} else if value.Valid {
				_m.PastMktGrade = new(string)
				*_m.PastMktGrade = value.String
			}
		case restauranttrend.FieldPastMktIndex:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field past_mkt_index", values[i])
			} else if value.Valid {
				_m.PastMktIndex = new(float64)
				*_m.PastMktIndex = value.Float64
			}
		case restauranttrend.FieldSurveyYrLast:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field survey_yr_last", values[i])
			} else if value.Valid {
				_m.SurveyYrLast = new(int)
				*_m.SurveyYrLast = int(value.Int64)
			}
		case restauranttrend.FieldSurveyYrNext:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field survey_yr_next", values[i])
			} else if value.Valid {
				_m.SurveyYrNext = new(int)
				*_m.SurveyYrNext = int(value.Int64)
			}
		case restauranttrend.FieldTotalSurveys:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_surveys", values[i])
			} else if value.Valid {
				_m.TotalSurveys = new(int)
				*_m.TotalSurveys = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RestaurantTrend.
// This includes values selected through modifiers, order, etc.
func (_m *RestaurantTrend) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryLocation queries the "location" edge of the RestaurantTrend entity.
func (_m *RestaurantTrend) QueryLocation() *RestaurantLocationQuery {
	return NewRestaurantTrendClient(_m.config).QueryLocation(_m)
}

// Update returns a builder for updating this RestaurantTrend.
// Note that you need to call RestaurantTrend.Unwrap() before calling this method if this RestaurantTrend
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RestaurantTrend) Update() *RestaurantTrendUpdateOne {
	return NewRestaurantTrendClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RestaurantTrend entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RestaurantTrend) Unwrap() *RestaurantTrend {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: RestaurantTrend is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RestaurantTrend) String() string {
	var builder strings.Builder
	builder.WriteString("RestaurantTrend(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("location_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.LocationID))
	builder.WriteString(", ")
	builder.WriteString("year=")
	builder.WriteString(fmt.Sprintf("%v", _m.Year))
	builder.WriteString(", ")
	if v := _m.CurrNatlGrade; v != nil {
		builder.WriteString("curr_natl_grade=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CurrNatlIndex; v != nil {
		builder.WriteString("curr_natl_index=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.CurrAnnualSlsK; v != nil {
		builder.WriteString("curr_annual_sls_k=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.CurrMktGrade; v != nil {
		builder.WriteString("curr_mkt_grade=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CurrMktIndex; v != nil {
		builder.WriteString("curr_mkt_index=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.PastNatlGrade; v != nil {
		builder.WriteString("past_natl_grade=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PastNatlIndex; v != nil {
		builder.WriteString("past_natl_index=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.PastAnnualSlsK; v != nil {
		builder.WriteString("past_annual_sls_k=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.PastMktGrade; v != nil {
		builder.WriteString("past_mkt_grade=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PastMktIndex; v != nil {
		builder.WriteString("past_mkt_index=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.SurveyYrLast; v != nil {
		builder.WriteString("survey_yr_last=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.SurveyYrNext; v != nil {
		builder.WriteString("survey_yr_next=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.TotalSurveys; v != nil {
		builder.WriteString("total_surveys=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// RestaurantTrends is a parsable slice of RestaurantTrend.
type RestaurantTrends []*RestaurantTrend
