// Code generated by ent, DO NOT EDIT.

package payment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the payment type in the database.
	Label = "payment"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// FieldDealID holds the string denoting the deal_id field in the database.
	FieldDealID = "deal_id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldPaymentAmount holds the string denoting the payment_amount field in the database.
	FieldPaymentAmount = "payment_amount"
	// FieldAmountOverride holds the string denoting the amount_override field in the database.
	FieldAmountOverride = "amount_override"
	// FieldAgci holds the string denoting the agci field in the database.
	FieldAgci = "agci"
	// FieldReferralFeeUsd holds the string denoting the referral_fee_usd field in the database.
	FieldReferralFeeUsd = "referral_fee_usd"
	// FieldReferralFeePercentOverride holds the string denoting the referral_fee_percent_override field in the database.
	FieldReferralFeePercentOverride = "referral_fee_percent_override"
	// FieldPaymentDate holds the string denoting the payment_date field in the database.
	FieldPaymentDate = "payment_date"
	// FieldPaymentReceived holds the string denoting the payment_received field in the database.
	FieldPaymentReceived = "payment_received"
	// FieldReceivedDate holds the string denoting the received_date field in the database.
	FieldReceivedDate = "received_date"
	// FieldIsActive holds the string denoting the is_active field in the database.
	FieldIsActive = "is_active"
	// FieldCommissionVersion holds the string denoting the commission_version field in the database.
	FieldCommissionVersion = "commission_version"
	// FieldInvoiceNumber holds the string denoting the invoice_number field in the database.
	FieldInvoiceNumber = "invoice_number"
	// EdgeDeal holds the string denoting the deal edge name in mutations.
	EdgeDeal = "deal"
	// EdgeSplits holds the string denoting the splits edge name in mutations.
	EdgeSplits = "splits"
	// Table holds the table name of the payment in the database.
	Table = "payments"
	// DealTable is the table that holds the deal relation/edge.
	DealTable = "payments"
	// DealInverseTable is the table name for the Deal entity.
	// It exists in this package in order to avoid circular dependency with the "deal" package.
	DealInverseTable = "deals"
	// DealColumn is the table column denoting the deal relation/edge.
	DealColumn = "deal_id"
	// SplitsTable is the table that holds the splits relation/edge.
	SplitsTable = "payment_splits"
	// SplitsInverseTable is the table name for the PaymentSplit entity.
	// It exists in this package in order to avoid circular dependency with the "paymentsplit" package.
	SplitsInverseTable = "payment_splits"
	// SplitsColumn is the table column denoting the splits relation/edge.
	SplitsColumn = "payment_id"
)

// Columns holds all SQL columns for payment fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldDeletedAt,
	FieldDealID,
	FieldSequence,
	FieldPaymentAmount,
	FieldAmountOverride,
	FieldAgci,
	FieldReferralFeeUsd,
	FieldReferralFeePercentOverride,
	FieldPaymentDate,
	FieldPaymentReceived,
	FieldReceivedDate,
	FieldIsActive,
	FieldCommissionVersion,
	FieldInvoiceNumber,
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
	// SequenceValidator is a validator for the "sequence" field. It is called by the builders before save.
	SequenceValidator func(int) error
	// DefaultAmountOverride holds the default value on creation for the "amount_override" field.
	DefaultAmountOverride bool
	// DefaultPaymentReceived holds the default value on creation for the "payment_received" field.
	DefaultPaymentReceived bool
	// DefaultIsActive holds the default value on creation for the "is_active" field.
	DefaultIsActive bool
	// DefaultCommissionVersion holds the default value on creation for the "commission_version" field.
	DefaultCommissionVersion int
	// InvoiceNumberValidator is a validator for the "invoice_number" field. It is called by the builders before save.
	InvoiceNumberValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Payment queries.
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

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}

// ByDealID orders the results by the deal_id field.
func ByDealID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDealID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByPaymentAmount orders the results by the payment_amount field.
func ByPaymentAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPaymentAmount, opts...).ToFunc()
}

// ByAmountOverride orders the results by the amount_override field.
func ByAmountOverride(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAmountOverride, opts...).ToFunc()
}

// ByAgci orders the results by the agci field.
func ByAgci(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgci, opts...).ToFunc()
}

// ByReferralFeeUsd orders the results by the referral_fee_usd field.
func ByReferralFeeUsd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReferralFeeUsd, opts...).ToFunc()
}

// ByReferralFeePercentOverride orders the results by the referral_fee_percent_override field.
func ByReferralFeePercentOverride(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReferralFeePercentOverride, opts...).ToFunc()
}

// ByPaymentDate orders the results by the payment_date field.
func ByPaymentDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPaymentDate, opts...).ToFunc()
}

// ByPaymentReceived orders the results by the payment_received field.
func ByPaymentReceived(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPaymentReceived, opts...).ToFunc()
}

// ByReceivedDate orders the results by the received_date field.
func ByReceivedDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReceivedDate, opts...).ToFunc()
}

// ByIsActive orders the results by the is_active field.
func ByIsActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsActive, opts...).ToFunc()
}

// ByCommissionVersion orders the results by the commission_version field.
func ByCommissionVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommissionVersion, opts...).ToFunc()
}

// ByInvoiceNumber orders the results by the invoice_number field.
func ByInvoiceNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInvoiceNumber, opts...).ToFunc()
}

// ByDealField orders the results by deal field.
func ByDealField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDealStep(), sql.OrderByField(field, opts...))
	}
}

// BySplitsCount orders the results by splits count.
func BySplitsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSplitsStep(), opts...)
	}
}

// BySplits orders the results by splits terms.
func BySplits(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSplitsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newDealStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DealInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, DealTable, DealColumn),
	)
}
func newSplitsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SplitsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SplitsTable, SplitsColumn),
	)
}
