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
)

// RestaurantLocation is the model entity for the RestaurantLocation schema.
type RestaurantLocation struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// StoreNo holds the value of the "store_no" field.
	StoreNo string `json:"store_no,omitempty"`
	// ChainNo holds the value of the "chain_no" field.
	ChainNo *string `json:"chain_no,omitempty"`
	// Chain holds the value of the "chain" field.
	Chain *string `json:"chain,omitempty"`
	// Geoaddress holds the value of the "geoaddress" field.
	Geoaddress *string `json:"geoaddress,omitempty"`
	// Geocity holds the value of the "geocity" field.
	Geocity *string `json:"geocity,omitempty"`
	// Geostate holds the value of the "geostate" field.
	Geostate *string `json:"geostate,omitempty"`
	// Geozip holds the value of the "geozip" field.
	Geozip *string `json:"geozip,omitempty"`
	// County holds the value of the "county" field.
	County *string `json:"county,omitempty"`
	// DmaMarket holds the value of the "dma_market" field.
	DmaMarket *string `json:"dma_market,omitempty"`
	// Segment holds the value of the "segment" field.
	Segment *string `json:"segment,omitempty"`
	// Subsegment holds the value of the "subsegment" field.
	Subsegment *string `json:"subsegment,omitempty"`
	// Category holds the value of the "category" field.
	Category *string `json:"category,omitempty"`
	// Latitude holds the value of the "latitude" field.
	Latitude *float64 `json:"latitude,omitempty"`
	// Longitude holds the value of the "longitude" field.
	Longitude *float64 `json:"longitude,omitempty"`
	// YrBuilt holds the value of the "yr_built" field.
	YrBuilt *int `json:"yr_built,omitempty"`
	// Company-operated vs franchise flag from the feed
	CoFr *string `json:"co_fr,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RestaurantLocationQuery when eager-loading is set.
	Edges        RestaurantLocationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RestaurantLocationEdges holds the relations/edges for other nodes in the graph.
type RestaurantLocationEdges struct {
	// Trends holds the value of the trends edge.
	Trends []*RestaurantTrend `json:"trends,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TrendsOrErr returns the Trends value or an error if the edge
// was not loaded in eager-loading.
func (e RestaurantLocationEdges) TrendsOrErr() ([]*RestaurantTrend, error) {
	if e.loadedTypes[0] {
		return e.Trends, nil
	}
	return nil, &NotLoadedError{edge: "trends"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RestaurantLocation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case restaurantlocation.FieldLatitude, restaurantlocation.FieldLongitude:
			values[i] = new(sql.NullFloat64)
		case restaurantlocation.FieldYrBuilt:
			values[i] = new(sql.NullInt64)
		case restaurantlocation.FieldStoreNo, restaurantlocation.FieldChainNo, restaurantlocation.FieldChain, restaurantlocation.FieldGeoaddress, restaurantlocation.FieldGeocity, restaurantlocation.FieldGeostate, restaurantlocation.FieldGeozip, restaurantlocation.FieldCounty, restaurantlocation.FieldDmaMarket, restaurantlocation.FieldSegment, restaurantlocation.FieldSubsegment, restaurantlocation.FieldCategory, restaurantlocation.FieldCoFr:
			values[i] = new(sql.NullString)
		case restaurantlocation.FieldCreatedAt, restaurantlocation.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case restaurantlocation.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RestaurantLocation fields.
func (_m *RestaurantLocation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case restaurantlocation.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case restaurantlocation.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case restaurantlocation.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case restaurantlocation.FieldStoreNo:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field store_no", values[i])
			} else if value.Valid {
				_m.StoreNo = value.String
			}
		case restaurantlocation.FieldChainNo:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field chain_no", values[i])
			} else if value.Valid {
				_m.ChainNo = new(string)
				*_m.ChainNo = value.String
			}
		case restaurantlocation.FieldChain:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field chain", values[i])
			} else if value.Valid {
				_m.Chain = new(string)
				*_m.Chain = value.String
			}
		case restaurantlocation.FieldGeoaddress:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field geoaddress", values[i])
			} else if value.Valid {
				_m.Geoaddress = new(string)
				*_m.Geoaddress = value.String
			}
		case restaurantlocation.FieldGeocity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field geocity", values[i])
			} else if value.Valid {
				_m.Geocity = new(string)
				*_m.Geocity = value.String
			}
		case restaurantlocation.FieldGeostate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field geostate", values[i])
			} else if value.Valid {
				_m.Geostate = new(string)
				*_m.Geostate = value.String
			}
		case restaurantlocation.FieldGeozip:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field geozip", values[i])
			} else if value.Valid {
				_m.Geozip = new(string)
				*_m.Geozip = value.String
			}
		case restaurantlocation.FieldCounty:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field county", values[i])
			} else if value.Valid {
				_m.County = new(string)
				*_m.County = value.String
			}
		case restaurantlocation.FieldDmaMarket:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field dma_market", values[i])
			} else if value.Valid {
				_m.DmaMarket = new(string)
				*_m.DmaMarket = value.String
			}
		case restaurantlocation.FieldSegment:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field segment", values[i])
			} else if value.Valid {
				_m.Segment = new(string)
				*_m.Segment = value.String
			}
		case restaurantlocation.FieldSubsegment:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subsegment", values[i])
			} else if value.Valid {
				_m.Subsegment = new(string)
				*_m.Subsegment = value.String
			}
		case restaurantlocation.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = new(string)
				*_m.Category = value.String
			}
		case restaurantlocation.FieldLatitude:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field latitude", values[i])
			} else if value.Valid {
				_m.Latitude = new(float64)
				*_m.Latitude = value.Float64
			}
		case restaurantlocation.FieldLongitude:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field longitude", values[i])
			} else if value.Valid {
				_m.Longitude = new(float64)
				*_m.Longitude = value.Float64
			}
		case restaurantlocation.FieldYrBuilt:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field yr_built", values[i])
			} else if value.Valid {
				_m.YrBuilt = new(int)
				*_m.YrBuilt = int(value.Int64)
			}
		case restaurantlocation.FieldCoFr:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field co_fr", values[i])
			} else if value.Valid {
				_m.CoFr = new(string)
				*_m.CoFr = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RestaurantLocation.
// This includes values selected through modifiers, order, etc.
func (_m *RestaurantLocation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTrends queries the "trends" edge of the RestaurantLocation entity.
func (_m *RestaurantLocation) QueryTrends() *RestaurantTrendQuery {
	return NewRestaurantLocationClient(_m.config).QueryTrends(_m)
}

// Update returns a builder for updating this RestaurantLocation.
// Note that you need to call RestaurantLocation.Unwrap() before calling this method if this RestaurantLocation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RestaurantLocation) Update() *RestaurantLocationUpdateOne {
	return NewRestaurantLocationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RestaurantLocation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RestaurantLocation) Unwrap() *RestaurantLocation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: RestaurantLocation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RestaurantLocation) String() string {
	var builder strings.Builder
	builder.WriteString("RestaurantLocation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("store_no=")
	builder.WriteString(_m.StoreNo)
	builder.WriteString(", ")
	if v := _m.ChainNo; v != nil {
		builder.WriteString("chain_no=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Chain; v != nil {
		builder.WriteString("chain=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Geoaddress; v != nil {
		builder.WriteString("geoaddress=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Geocity; v != nil {
		builder.WriteString("geocity=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Geostate; v != nil {
		builder.WriteString("geostate=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Geozip; v != nil {
		builder.WriteString("geozip=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.County; v != nil {
		builder.WriteString("county=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.DmaMarket; v != nil {
		builder.WriteString("dma_market=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Segment; v != nil {
		builder.WriteString("segment=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Subsegment; v != nil {
		builder.WriteString("subsegment=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Category; v != nil {
		builder.WriteString("category=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Latitude; v != nil {
		builder.WriteString("latitude=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Longitude; v != nil {
		builder.WriteString("longitude=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.YrBuilt; v != nil {
		builder.WriteString("yr_built=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.CoFr; v != nil {
		builder.WriteString("co_fr=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// RestaurantLocations is a parsable slice of RestaurantLocation.
type RestaurantLocations []*RestaurantLocation
