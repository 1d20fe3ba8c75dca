// Code generated by ent, DO NOT EDIT.

package paymentsplit

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the paymentsplit type in the database.
	Label = "payment_split"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldPaymentID holds the string denoting the payment_id field in the database.
	FieldPaymentID = "payment_id"
	// FieldBrokerID holds the string denoting the broker_id field in the database.
	FieldBrokerID = "broker_id"
	// FieldSplitOriginationPercent holds the string denoting the split_origination_percent field in the database.
	FieldSplitOriginationPercent = "split_origination_percent"
	// FieldSplitOriginationUsd holds the string denoting the split_origination_usd field in the database.
	FieldSplitOriginationUsd = "split_origination_usd"
	// FieldSplitSitePercent holds the string denoting the split_site_percent field in the database.
	FieldSplitSitePercent = "split_site_percent"
	// FieldSplitSiteUsd holds the string denoting the split_site_usd field in the database.
	FieldSplitSiteUsd = "split_site_usd"
	// FieldSplitDealPercent holds the string denoting the split_deal_percent field in the database.
	FieldSplitDealPercent = "split_deal_percent"
	// FieldSplitDealUsd holds the string denoting the split_deal_usd field in the database.
	FieldSplitDealUsd = "split_deal_usd"
	// FieldSplitBrokerTotal holds the string denoting the split_broker_total field in the database.
	FieldSplitBrokerTotal = "split_broker_total"
	// FieldPaid holds the string denoting the paid field in the database.
	FieldPaid = "paid"
	// FieldPaidDate holds the string denoting the paid_date field in the database.
	FieldPaidDate = "paid_date"
	// EdgePayment holds the string denoting the payment edge name in mutations.
	EdgePayment = "payment"
	// EdgeBroker holds the string denoting the broker edge name in mutations.
	EdgeBroker = "broker"
	// Table holds the table name of the paymentsplit in the database.
	Table = "payment_splits"
	// PaymentTable is the table that holds the payment relation/edge.
	PaymentTable = "payment_splits"
	// PaymentInverseTable is the table name for the Payment entity.
	// It exists in this package in order to avoid circular dependency with the "payment" package.
	PaymentInverseTable = "payments"
	// PaymentColumn is the table column denoting the payment relation/edge.
	PaymentColumn = "payment_id"
	// BrokerTable is the table that holds the broker relation/edge.
	BrokerTable = "payment_splits"
	// BrokerInverseTable is the table name for the Broker entity.
	// It exists in this package in order to avoid circular dependency with the "broker" package.
	BrokerInverseTable = "brokers"
	// BrokerColumn is the table column denoting the broker relation/edge.
	BrokerColumn = "broker_id"
)

// Columns holds all SQL columns for paymentsplit fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldPaymentID,
	FieldBrokerID,
	FieldSplitOriginationPercent,
	FieldSplitOriginationUsd,
	FieldSplitSitePercent,
	FieldSplitSiteUsd,
	FieldSplitDealPercent,
	FieldSplitDealUsd,
	FieldSplitBrokerTotal,
	FieldPaid,
	FieldPaidDate,
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
	// DefaultPaid holds the default value on creation for the "paid" field.
	DefaultPaid bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the PaymentSplit queries.
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

// ByPaymentID orders the results by the payment_id field.
func ByPaymentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPaymentID, opts...).ToFunc()
}

// ByBrokerID orders the results by the broker_id field.
func ByBrokerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBrokerID, opts...).ToFunc()
}

// BySplitOriginationPercent orders the results by the split_origination_percent field.
func BySplitOriginationPercent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSplitOriginationPercent, opts...).ToFunc()
}

// BySplitOriginationUsd orders the results by the split_origination_usd field.
func BySplitOriginationUsd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSplitOriginationUsd, opts...).ToFunc()
}

// BySplitSitePercent orders the results by the split_site_percent field.
func BySplitSitePercent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSplitSitePercent, opts...).ToFunc()
}

// BySplitSiteUsd orders the results by the split_site_usd field.
func BySplitSiteUsd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSplitSiteUsd, opts...).ToFunc()
}

// BySplitDealPercent orders the results by the split_deal_percent field.
func BySplitDealPercent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSplitDealPercent, opts...).ToFunc()
}

// BySplitDealUsd orders the results by the split_deal_usd field.
func BySplitDealUsd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSplitDealUsd, opts...).ToFunc()
}

// BySplitBrokerTotal orders the results by the split_broker_total field.
func BySplitBrokerTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSplitBrokerTotal, opts...).ToFunc()
}

// ByPaid orders the results by the paid field.
func ByPaid(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPaid, opts...).ToFunc()
}

// ByPaidDate orders the results by the paid_date field.
func ByPaidDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPaidDate, opts...).ToFunc()
}

// ByPaymentField orders the results by payment field.
func ByPaymentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPaymentStep(), sql.OrderByField(field, opts...))
	}
}

// ByBrokerField orders the results by broker field.
func ByBrokerField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBrokerStep(), sql.OrderByField(field, opts...))
	}
}
func newPaymentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PaymentInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, PaymentTable, PaymentColumn),
	)
}
func newBrokerStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BrokerInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, BrokerTable, BrokerColumn),
	)
}
