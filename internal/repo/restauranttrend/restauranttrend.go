// Code generated by ent, DO NOT EDIT.

package restauranttrend

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the restauranttrend type in the database.
	Label = "restaurant_trend"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldLocationID holds the string denoting the location_id field in the database.
	FieldLocationID = "location_id"
	// FieldYear holds the string denoting the year field in the database.
	FieldYear = "year"
	// FieldCurrNatlGrade holds the string denoting the curr_natl_grade field in the database.
	FieldCurrNatlGrade = "curr_natl_grade"
	// FieldCurrNatlIndex holds the string denoting the curr_natl_index field in the database.
	FieldCurrNatlIndex = "curr_natl_index"
	// FieldCurrAnnualSlsK holds the string denoting the curr_annual_sls_k field in the database.
	FieldCurrAnnualSlsK = "curr_annual_sls_k"
	// FieldCurrMktGrade holds the string denoting the curr_mkt_grade field in the database.
	FieldCurrMktGrade = "curr_mkt_grade"
	// FieldCurrMktIndex holds the string denoting the curr_mkt_index field in the database.
	FieldCurrMktIndex = "curr_mkt_index"
	// FieldPastNatlGrade holds the string denoting the past_natl_grade field in the database.
	FieldPastNatlGrade = "past_natl_grade"
	// FieldPastNatlIndex holds the string denoting the past_natl_index field in the database.
	FieldPastNatlIndex = "past_natl_index"
	// FieldPastAnnualSlsK holds the string denoting the past_annual_sls_k field in the database.
	FieldPastAnnualSlsK = "past_annual_sls_k"
	// FieldPastMktGrade holds the string denoting the past_mkt_grade field in the database.
	FieldPastMktGrade = "past_mkt_grade"
	// FieldPastMktIndex holds the string denoting the past_mkt_index field in the database.
	FieldPastMktIndex = "past_mkt_index"
	// FieldSurveyYrLast holds the string denoting the survey_yr_last field in the database.
	FieldSurveyYrLast = "survey_yr_last"
	// FieldSurveyYrNext holds the string denoting the survey_yr_next field in the database.
	FieldSurveyYrNext = "survey_yr_next"
	// FieldTotalSurveys holds the string denoting the total_surveys field in the database.
	FieldTotalSurveys = "total_surveys"
	// EdgeLocation holds the string denoting the location edge name in mutations.
	EdgeLocation = "location"
	// Table holds the table name of the restauranttrend in the database.
	Table = "restaurant_trends"
	// LocationTable is the table that holds the location relation/edge.
	LocationTable = "restaurant_trends"
	// LocationInverseTable is the table name for the RestaurantLocation entity.
	// It exists in this package in order to avoid circular dependency with the "restaurantlocation" package.
	LocationInverseTable = "restaurant_locations"
	// LocationColumn is the table column denoting the location relation/edge.
	LocationColumn = "location_id"
)

// Columns holds all SQL columns for restauranttrend fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldLocationID,
	FieldYear,
	FieldCurrNatlGrade,
	FieldCurrNatlIndex,
	FieldCurrAnnualSlsK,
	FieldCurrMktGrade,
	FieldCurrMktIndex,
	FieldPastNatlGrade,
	FieldPastNatlIndex,
	FieldPastAnnualSlsK,
	FieldPastMktGrade,
	FieldPastMktIndex,
	FieldSurveyYrLast,
	FieldSurveyYrNext,
	FieldTotalSurveys,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// CurrNatlGradeValidator is a validator for the "curr_natl_grade" field. It is called by the builders before save.
	CurrNatlGradeValidator func(string) error
	// CurrMktGradeValidator is a validator for the "curr_mkt_grade" field. It is called by the builders before save.
	CurrMktGradeValidator func(string) error
	// PastNatlGradeValidator is a validator for the "past_natl_grade" field. It is called by the builders before save.
	PastNatlGradeValidator func(string) error
	// PastMktGradeValidator is a validator for the "past_mkt_grade" field. It is called by the builders before save.
	PastMktGradeValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the RestaurantTrend queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByLocationID orders the results by the location_id field.
func ByLocationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLocationID, opts...).ToFunc()
}

// ByYear orders the results by the year field.
func ByYear(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldYear, opts...).ToFunc()
}

// ByCurrNatlGrade orders the results by the curr_natl_grade field.
func ByCurrNatlGrade(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrNatlGrade, opts...).ToFunc()
}

// ByCurrNatlIndex orders the results by the curr_natl_index field.
func ByCurrNatlIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrNatlIndex, opts...).ToFunc()
}

// ByCurrAnnualSlsK orders the results by the curr_annual_sls_k field.
func ByCurrAnnualSlsK(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrAnnualSlsK, opts...).ToFunc()
}

// ByCurrMktGrade orders the results by the curr_mkt_grade field.
func ByCurrMktGrade(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrMktGrade, opts...).ToFunc()
}

// ByCurrMktIndex orders the results by the curr_mkt_index field.
func ByCurrMktIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrMktIndex, opts...).ToFunc()
}

// ByPastNatlGrade orders the results by the past_natl_grade field.
func ByPastNatlGrade(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPastNatlGrade, opts...).ToFunc()
}

// ByPastNatlIndex orders the results by the past_natl_index field.
func ByPastNatlIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPastNatlIndex, opts...).ToFunc()
}

// ByPastAnnualSlsK orders the results by the past_annual_sls_k field.
func ByPastAnnualSlsK(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPastAnnualSlsK, opts...).ToFunc()
}

// ByPastMktGrade orders the results by the past_mkt_grade field.
func ByPastMktGrade(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPastMktGrade, opts...).ToFunc()
}

// ByPastMktIndex orders the results by the past_mkt_index field.
func ByPastMktIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPastMktIndex, opts...).ToFunc()
}

// BySurveyYrLast orders the results by the survey_yr_last field.
func BySurveyYrLast(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSurveyYrLast, opts...).ToFunc()
}

// BySurveyYrNext orders the results by the survey_yr_next field.
func BySurveyYrNext(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSurveyYrNext, opts...).ToFunc()
}

// ByTotalSurveys orders the results by the total_surveys field.
func ByTotalSurveys(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalSurveys, opts...).ToFunc()
}

// ByLocationField orders the results by location field.
func ByLocationField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLocationStep(), sql.OrderByField(field, opts...))
	}
}
func newLocationStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LocationInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, LocationTable, LocationColumn),
	)
}
