// Code generated by ent, DO NOT EDIT.

package dealbroker

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the dealbroker type in the database.
	Label = "deal_broker"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldDealID holds the string denoting the deal_id field in the database.
	FieldDealID = "deal_id"
	// FieldBrokerID holds the string denoting the broker_id field in the database.
	FieldBrokerID = "broker_id"
	// FieldOriginationPercent holds the string denoting the origination_percent field in the database.
	FieldOriginationPercent = "origination_percent"
	// FieldSitePercent holds the string denoting the site_percent field in the database.
	FieldSitePercent = "site_percent"
	// FieldDealPercent holds the string denoting the deal_percent field in the database.
	FieldDealPercent = "deal_percent"
	// EdgeDeal holds the string denoting the deal edge name in mutations.
	EdgeDeal = "deal"
	// EdgeBroker holds the string denoting the broker edge name in mutations.
	EdgeBroker = "broker"
	// Table holds the table name of the dealbroker in the database.
	Table = "deal_brokers"
	// DealTable is the table that holds the deal relation/edge.
	DealTable = "deal_brokers"
	// DealInverseTable is the table name for the Deal entity.
	// It exists in this package in order to avoid circular dependency with the "deal" package.
	DealInverseTable = "deals"
	// DealColumn is the table column denoting the deal relation/edge.
	DealColumn = "deal_id"
	// BrokerTable is the table that holds the broker relation/edge.
	BrokerTable = "deal_brokers"
	// BrokerInverseTable is the table name for the Broker entity.
	// It exists in this package in order to avoid circular dependency with the "broker" package.
	BrokerInverseTable = "brokers"
	// BrokerColumn is the table column denoting the broker relation/edge.
	BrokerColumn = "broker_id"
)

// Columns holds all SQL columns for dealbroker fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldDealID,
	FieldBrokerID,
	FieldOriginationPercent,
	FieldSitePercent,
	FieldDealPercent,
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
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the DealBroker queries.
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

// ByDealID orders the results by the deal_id field.
func ByDealID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDealID, opts...).ToFunc()
}

// ByBrokerID orders the results by the broker_id field.
func ByBrokerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBrokerID, opts...).ToFunc()
}

// ByOriginationPercent orders the results by the origination_percent field.
func ByOriginationPercent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOriginationPercent, opts...).ToFunc()
}

// BySitePercent orders the results by the site_percent field.
func BySitePercent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSitePercent, opts...).ToFunc()
}

// ByDealPercent orders the results by the deal_percent field.
func ByDealPercent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDealPercent, opts...).ToFunc()
}

// ByDealField orders the results by deal field.
func ByDealField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDealStep(), sql.OrderByField(field, opts...))
	}
}

// ByBrokerField orders the results by broker field.
func ByBrokerField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBrokerStep(), sql.OrderByField(field, opts...))
	}
}
func newDealStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DealInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, DealTable, DealColumn),
	)
}
func newBrokerStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BrokerInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, BrokerTable, BrokerColumn),
	)
}
