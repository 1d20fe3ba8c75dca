// Code generated by ent, DO NOT EDIT.

package broker

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the broker type in the database.
	Label = "broker"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldDisplayName holds the string denoting the display_name field in the database.
	FieldDisplayName = "display_name"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldPhone holds the string denoting the phone field in the database.
	FieldPhone = "phone"
	// FieldBankAccountEncrypted holds the string denoting the bank_account_encrypted field in the database.
	FieldBankAccountEncrypted = "bank_account_encrypted"
	// FieldBankAccountHash holds the string denoting the bank_account_hash field in the database.
	FieldBankAccountHash = "bank_account_hash"
	// FieldIsActive holds the string denoting the is_active field in the database.
	FieldIsActive = "is_active"
	// EdgeDealInterests holds the string denoting the deal_interests edge name in mutations.
	EdgeDealInterests = "deal_interests"
	// EdgePaymentSplits holds the string denoting the payment_splits edge name in mutations.
	EdgePaymentSplits = "payment_splits"
	// Table holds the table name of the broker in the database.
	Table = "brokers"
	// DealInterestsTable is the table that holds the deal_interests relation/edge.
	DealInterestsTable = "deal_brokers"
	// DealInterestsInverseTable is the table name for the DealBroker entity.
	// It exists in this package in order to avoid circular dependency with the "dealbroker" package.
	DealInterestsInverseTable = "deal_brokers"
	// DealInterestsColumn is the table column denoting the deal_interests relation/edge.
	DealInterestsColumn = "broker_id"
	// PaymentSplitsTable is the table that holds the payment_splits relation/edge.
	PaymentSplitsTable = "payment_splits"
	// PaymentSplitsInverseTable is the table name for the PaymentSplit entity.
	// It exists in this package in order to avoid circular dependency with the "paymentsplit" package.
	PaymentSplitsInverseTable = "payment_splits"
	// PaymentSplitsColumn is the table column denoting the payment_splits relation/edge.
	PaymentSplitsColumn = "broker_id"
)

// Columns holds all SQL columns for broker fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldDeletedAt,
	FieldUserID,
	FieldDisplayName,
	FieldEmail,
	FieldPhone,
	FieldBankAccountEncrypted,
	FieldBankAccountHash,
	FieldIsActive,
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
	// DisplayNameValidator is a validator for the "display_name" field. It is called by the builders before save.
	DisplayNameValidator func(string) error
	// EmailValidator is a validator for the "email" field. It is called by the builders before save.
	EmailValidator func(string) error
	// PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	PhoneValidator func(string) error
	// BankAccountEncryptedValidator is a validator for the "bank_account_encrypted" field. It is called by the builders before save.
	BankAccountEncryptedValidator func(string) error
	// BankAccountHashValidator is a validator for the "bank_account_hash" field. It is called by the builders before save.
	BankAccountHashValidator func(string) error
	// DefaultIsActive holds the default value on creation for the "is_active" field.
	DefaultIsActive bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Broker queries.
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

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByDisplayName orders the results by the display_name field.
func ByDisplayName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDisplayName, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByPhone orders the results by the phone field.
func ByPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhone, opts...).ToFunc()
}

// ByBankAccountEncrypted orders the results by the bank_account_encrypted field.
func ByBankAccountEncrypted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBankAccountEncrypted, opts...).ToFunc()
}

// ByBankAccountHash orders the results by the bank_account_hash field.
func ByBankAccountHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBankAccountHash, opts...).ToFunc()
}

// ByIsActive orders the results by the is_active field.
func ByIsActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsActive, opts...).ToFunc()
}

// ByDealInterestsCount orders the results by deal_interests count.
func ByDealInterestsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDealInterestsStep(), opts...)
	}
}

// ByDealInterests orders the results by deal_interests terms.
func ByDealInterests(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDealInterestsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByPaymentSplitsCount orders the results by payment_splits count.
func ByPaymentSplitsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newPaymentSplitsStep(), opts...)
	}
}

// ByPaymentSplits orders the results by payment_splits terms.
func ByPaymentSplits(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPaymentSplitsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newDealInterestsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DealInterestsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DealInterestsTable, DealInterestsColumn),
	)
}
func newPaymentSplitsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PaymentSplitsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PaymentSplitsTable, PaymentSplitsColumn),
	)
}
