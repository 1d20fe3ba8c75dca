// Code generated by ent, DO NOT EDIT.

package restaurantlocation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the restaurantlocation type in the database.
	Label = "restaurant_location"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldStoreNo holds the string denoting the store_no field in the database.
	FieldStoreNo = "store_no"
	// FieldChainNo holds the string denoting the chain_no field in the database.
	FieldChainNo = "chain_no"
	// FieldChain holds the string denoting the chain field in the database.
	FieldChain = "chain"
	// FieldGeoaddress holds the string denoting the geoaddress field in the database.
	FieldGeoaddress = "geoaddress"
	// FieldGeocity holds the string denoting the geocity field in the database.
	FieldGeocity = "geocity"
	// FieldGeostate holds the string denoting the geostate field in the database.
	FieldGeostate = "geostate"
	// FieldGeozip holds the string denoting the geozip field in the database.
	FieldGeozip = "geozip"
	// FieldCounty holds the string denoting the county field in the database.
	FieldCounty = "county"
	// FieldDmaMarket holds the string denoting the dma_market field in the database.
	FieldDmaMarket = "dma_market"
	// FieldSegment holds the string denoting the segment field in the database.
	FieldSegment = "segment"
	// FieldSubsegment holds the string denoting the subsegment field in the database.
	FieldSubsegment = "subsegment"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldLatitude holds the string denoting the latitude field in the database.
	FieldLatitude = "latitude"
	// FieldLongitude holds the string denoting the longitude field in the database.
	FieldLongitude = "longitude"
	// FieldYrBuilt holds the string denoting the yr_built field in the database.
	FieldYrBuilt = "yr_built"
	// FieldCoFr holds the string denoting the co_fr field in the database.
	FieldCoFr = "co_fr"
	// EdgeTrends holds the string denoting the trends edge name in mutations.
	EdgeTrends = "trends"
	// Table holds the table name of the restaurantlocation in the database.
	Table = "restaurant_locations"
	// TrendsTable is the table that holds the trends relation/edge.
	TrendsTable = "restaurant_trends"
	// TrendsInverseTable is the table name for the RestaurantTrend entity.
	// It exists in this package in order to avoid circular dependency with the "restauranttrend" package.
	TrendsInverseTable = "restaurant_trends"
	// TrendsColumn is the table column denoting the trends relation/edge.
	TrendsColumn = "location_id"
)

// Columns holds all SQL columns for restaurantlocation fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldStoreNo,
	FieldChainNo,
	FieldChain,
	FieldGeoaddress,
	FieldGeocity,
	FieldGeostate,
	FieldGeozip,
	FieldCounty,
	FieldDmaMarket,
	FieldSegment,
	FieldSubsegment,
	FieldCategory,
	FieldLatitude,
	FieldLongitude,
	FieldYrBuilt,
	FieldCoFr,
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
	// StoreNoValidator is a validator for the "store_no" field. It is called by the builders before save.
	StoreNoValidator func(string) error
	// ChainNoValidator is a validator for the "chain_no" field. It is called by the builders before save.
	ChainNoValidator func(string) error
	// ChainValidator is a validator for the "chain" field. It is called by the builders before save.
	ChainValidator func(string) error
	// GeoaddressValidator is a validator for the "geoaddress" field. It is called by the builders before save.
	GeoaddressValidator func(string) error
	// GeocityValidator is a validator for the "geocity" field. It is called by the builders before save.
	GeocityValidator func(string) error
	// GeostateValidator is a validator for the "geostate" field. It is called by the builders before save.
	GeostateValidator func(string) error
	// GeozipValidator is a validator for the "geozip" field. It is called by the builders before save.
	GeozipValidator func(string) error
	// CountyValidator is a validator for the "county" field. It is called by the builders before save.
	CountyValidator func(string) error
	// DmaMarketValidator is a validator for the "dma_market" field. It is called by the builders before save.
	DmaMarketValidator func(string) error
	// SegmentValidator is a validator for the "segment" field. It is called by the builders before save.
	SegmentValidator func(string) error
	// SubsegmentValidator is a validator for the "subsegment" field. It is called by the builders before save.
	SubsegmentValidator func(string) error
	// CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	CategoryValidator func(string) error
	// CoFrValidator is a validator for the "co_fr" field. It is called by the builders before save.
	CoFrValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the RestaurantLocation queries.
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

// ByStoreNo orders the results by the store_no field.
func ByStoreNo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStoreNo, opts...).ToFunc()
}

// ByChainNo orders the results by the chain_no field.
func ByChainNo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChainNo, opts...).ToFunc()
}

// ByChain orders the results by the chain field.
func ByChain(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChain, opts...).ToFunc()
}

// ByGeoaddress orders the results by the geoaddress field.
func ByGeoaddress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGeoaddress, opts...).ToFunc()
}

// ByGeocity orders the results by the geocity field.
func ByGeocity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGeocity, opts...).ToFunc()
}

// ByGeostate orders the results by the geostate field.
func ByGeostate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGeostate, opts...).ToFunc()
}

// ByGeozip orders the results by the geozip field.
func ByGeozip(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGeozip, opts...).ToFunc()
}

// ByCounty orders the results by the county field.
func ByCounty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCounty, opts...).ToFunc()
}

// ByDmaMarket orders the results by the dma_market field.
func ByDmaMarket(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDmaMarket, opts...).ToFunc()
}

// BySegment orders the results by the segment field.
func BySegment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSegment, opts...).ToFunc()
}

// BySubsegment orders the results by the subsegment field.
func BySubsegment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubsegment, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByLatitude orders the results by the latitude field.
func ByLatitude(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLatitude, opts...).ToFunc()
}

// ByLongitude orders the results by the longitude field.
func ByLongitude(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLongitude, opts...).ToFunc()
}

// ByYrBuilt orders the results by the yr_built field.
func ByYrBuilt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldYrBuilt, opts...).ToFunc()
}

// ByCoFr orders the results by the co_fr field.
func ByCoFr(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCoFr, opts...).ToFunc()
}

// ByTrendsCount orders the results by trends count.
func ByTrendsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTrendsStep(), opts...)
	}
}

// ByTrends orders the results by trends terms.
func ByTrends(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTrendsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newTrendsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TrendsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TrendsTable, TrendsColumn),
	)
}
