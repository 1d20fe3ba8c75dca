// Code generated by ent, DO NOT EDIT.

package deal

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the deal type in the database.
	Label = "deal"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// FieldClientID holds the string denoting the client_id field in the database.
	FieldClientID = "client_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldPropertyAddress holds the string denoting the property_address field in the database.
	FieldPropertyAddress = "property_address"
	// FieldStage holds the string denoting the stage field in the database.
	FieldStage = "stage"
	// FieldFee holds the string denoting the fee field in the database.
	FieldFee = "fee"
	// FieldNumberOfPayments holds the string denoting the number_of_payments field in the database.
	FieldNumberOfPayments = "number_of_payments"
	// FieldAgci holds the string denoting the agci field in the database.
	FieldAgci = "agci"
	// FieldOriginationPercent holds the string denoting the origination_percent field in the database.
	FieldOriginationPercent = "origination_percent"
	// FieldSitePercent holds the string denoting the site_percent field in the database.
	FieldSitePercent = "site_percent"
	// FieldDealPercent holds the string denoting the deal_percent field in the database.
	FieldDealPercent = "deal_percent"
	// FieldReferralFeePercent holds the string denoting the referral_fee_percent field in the database.
	FieldReferralFeePercent = "referral_fee_percent"
	// FieldCommissionVersion holds the string denoting the commission_version field in the database.
	FieldCommissionVersion = "commission_version"
	// FieldClosedDate holds the string denoting the closed_date field in the database.
	FieldClosedDate = "closed_date"
	// EdgeCustomer holds the string denoting the customer edge name in mutations.
	EdgeCustomer = "customer"
	// EdgePayments holds the string denoting the payments edge name in mutations.
	EdgePayments = "payments"
	// EdgeBrokerInterests holds the string denoting the broker_interests edge name in mutations.
	EdgeBrokerInterests = "broker_interests"
	// Table holds the table name of the deal in the database.
	Table = "deals"
	// CustomerTable is the table that holds the customer relation/edge.
	CustomerTable = "deals"
	// CustomerInverseTable is the table name for the Customer entity.
	// It exists in this package in order to avoid circular dependency with the "customer" package.
	CustomerInverseTable = "customers"
	// CustomerColumn is the table column denoting the customer relation/edge.
	CustomerColumn = "client_id"
	// PaymentsTable is the table that holds the payments relation/edge.
	PaymentsTable = "payments"
	// PaymentsInverseTable is the table name for the Payment entity.
	// It exists in this package in order to avoid circular dependency with the "payment" package.
	PaymentsInverseTable = "payments"
	// PaymentsColumn is the table column denoting the payments relation/edge.
	PaymentsColumn = "deal_id"
	// BrokerInterestsTable is the table that holds the broker_interests relation/edge.
	BrokerInterestsTable = "deal_brokers"
	// BrokerInterestsInverseTable is the table name for the DealBroker entity.
	// It exists in this package in order to avoid circular dependency with the "dealbroker" package.
	BrokerInterestsInverseTable = "deal_brokers"
	// BrokerInterestsColumn is the table column denoting the broker_interests relation/edge.
	BrokerInterestsColumn = "deal_id"
)

// Columns holds all SQL columns for deal fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldDeletedAt,
	FieldClientID,
	FieldName,
	FieldPropertyAddress,
	FieldStage,
	FieldFee,
	FieldNumberOfPayments,
	FieldAgci,
	FieldOriginationPercent,
	FieldSitePercent,
	FieldDealPercent,
	FieldReferralFeePercent,
	FieldCommissionVersion,
	FieldClosedDate,
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// PropertyAddressValidator is a validator for the "property_address" field. It is called by the builders before save.
	PropertyAddressValidator func(string) error
	// DefaultNumberOfPayments holds the default value on creation for the "number_of_payments" field.
	DefaultNumberOfPayments int
	// DefaultCommissionVersion holds the default value on creation for the "commission_version" field.
	DefaultCommissionVersion int
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Stage defines the type for the "stage" enum field.
type Stage string

// StageProspect is the default value of the Stage enum.
const DefaultStage = StageProspect

// Stage values.
const (
	StageProspect    Stage = "prospect"
	StageNegotiation Stage = "negotiation"
	StageContract    Stage = "contract"
	StageClosed      Stage = "closed"
	StageLost        Stage = "lost"
	StageOnHold      Stage = "on_hold"
)

func (s Stage) String() string {
	return string(s)
}

// StageValidator is a validator for the "stage" field enum values. It is called by the builders before save.
func StageValidator(s Stage) error {
	switch s {
	case StageProspect, StageNegotiation, StageContract, StageClosed, StageLost, StageOnHold:
		return nil
	default:
		return fmt.Errorf("deal: invalid enum value for stage field: %q", s)
	}
}

// OrderOption defines the ordering options for the Deal queries.
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

// ByClientID orders the results by the client_id field.
func ByClientID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClientID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByPropertyAddress orders the results by the property_address field.
func ByPropertyAddress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPropertyAddress, opts...).ToFunc()
}

// ByStage orders the results by the stage field.
func ByStage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStage, opts...).ToFunc()
}

// ByFee orders the results by the fee field.
func ByFee(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFee, opts...).ToFunc()
}

// ByNumberOfPayments orders the results by the number_of_payments field.
func ByNumberOfPayments(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNumberOfPayments, opts...).ToFunc()
}

// ByAgci orders the results by the agci field.
func ByAgci(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgci, opts...).ToFunc()
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

// ByReferralFeePercent orders the results by the referral_fee_percent field.
func ByReferralFeePercent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReferralFeePercent, opts...).ToFunc()
}

// ByCommissionVersion orders the results by the commission_version field.
func ByCommissionVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommissionVersion, opts...).ToFunc()
}

// ByClosedDate orders the results by the closed_date field.
func ByClosedDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClosedDate, opts...).ToFunc()
}

// ByCustomerField orders the results by customer field.
func ByCustomerField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCustomerStep(), sql.OrderByField(field, opts...))
	}
}

// ByPaymentsCount orders the results by payments count.
func ByPaymentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newPaymentsStep(), opts...)
	}
}

// ByPayments orders the results by payments terms.
func ByPayments(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPaymentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByBrokerInterestsCount orders the results by broker_interests count.
func ByBrokerInterestsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newBrokerInterestsStep(), opts...)
	}
}

// ByBrokerInterests orders the results by broker_interests terms.
func ByBrokerInterests(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBrokerInterestsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newCustomerStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CustomerInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CustomerTable, CustomerColumn),
	)
}
func newPaymentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PaymentsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PaymentsTable, PaymentsColumn),
	)
}
func newBrokerInterestsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BrokerInterestsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, BrokerInterestsTable, BrokerInterestsColumn),
	)
}
