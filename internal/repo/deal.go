// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/oculusgrp/dealdesk_backend/internal/repo/customer"
	"github.com/oculusgrp/dealdesk_backend/internal/repo/deal"
	"github.com/shopspring/decimal"
)

// Deal is the model entity for the Deal schema.
type Deal struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// DeletedAt holds the value of the "deleted_at" field.
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// FK → clients.id
	ClientID uuid.UUID `json:"client_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// PropertyAddress holds the value of the "property_address" field.
	PropertyAddress *string `json:"property_address,omitempty"`
	// Stage holds the value of the "stage" field.
	Stage deal.Stage `json:"stage,omitempty"`
	// Fee holds the value of the "fee" field.
	Fee decimal.Decimal `json:"fee,omitempty"`
	// Scheduled payment count; must be positive before payments are written
	NumberOfPayments int `json:"number_of_payments,omitempty"`
	// Agci holds the value of the "agci" field.
	Agci decimal.Decimal `json:"agci,omitempty"`
	// OriginationPercent holds the value of the "origination_percent" field.
	OriginationPercent decimal.Decimal `json:"origination_percent,omitempty"`
	// SitePercent holds the value of the "site_percent" field.
	SitePercent decimal.Decimal `json:"site_percent,omitempty"`
	// DealPercent holds the value of the "deal_percent" field.
	DealPercent decimal.Decimal `json:"deal_percent,omitempty"`
	// ReferralFeePercent holds the value of the "referral_fee_percent" field.
	ReferralFeePercent decimal.Decimal `json:"referral_fee_percent,omitempty"`
	// Bumped whenever any commission input changes; payments snapshot it at generation time
	CommissionVersion int `json:"commission_version,omitempty"`
	// ClosedDate holds the value of the "closed_date" field.
	ClosedDate *time.Time `json:"closed_date,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DealQuery when eager-loading is set.
	Edges        DealEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DealEdges holds the relations/edges for other nodes in the graph.
type DealEdges struct {
	// Customer holds the value of the customer edge.
	Customer *Customer `json:"customer,omitempty"`
	// Payments holds the value of the payments edge.
	Payments []*Payment `json:"payments,omitempty"`
	// BrokerInterests holds the value of the broker_interests edge.
	BrokerInterests []*DealBroker `json:"broker_interests,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// CustomerOrErr returns the Customer value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DealEdges) CustomerOrErr() (*Customer, error) {
	if e.Customer != nil {
		return e.Customer, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: customer.Label}
	}
	return nil, &NotLoadedError{edge: "customer"}
}

// PaymentsOrErr returns the Payments value or an error if the edge
// was not loaded in eager-loading.
func (e DealEdges) PaymentsOrErr() ([]*Payment, error) {
	if e.loadedTypes[1] {
		return e.Payments, nil
	}
	return nil, &NotLoadedError{edge: "payments"}
}

// BrokerInterestsOrErr returns the BrokerInterests value or an error if the edge
// was not loaded in eager-loading.
func (e DealEdges) BrokerInterestsOrErr() ([]*DealBroker, error) {
	if e.loadedTypes[2] {
		return e.BrokerInterests, nil
	}
	return nil, &NotLoadedError{edge: "broker_interests"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Deal) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case deal.FieldFee, deal.FieldAgci, deal.FieldOriginationPercent, deal.FieldSitePercent, deal.FieldDealPercent, deal.FieldReferralFeePercent:
			values[i] = new(decimal.Decimal)
		case deal.FieldNumberOfPayments, deal.FieldCommissionVersion:
			values[i] = new(sql.NullInt64)
		case deal.FieldName, deal.FieldPropertyAddress, deal.FieldStage:
			values[i] = new(sql.NullString)
		case deal.FieldCreatedAt, deal.FieldUpdatedAt, deal.FieldDeletedAt, deal.FieldClosedDate:
			values[i] = new(sql.NullTime)
		case deal.FieldID, deal.FieldClientID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Deal fields.
func (_m *Deal) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case deal.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case deal.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case deal.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case deal.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		case deal.FieldClientID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field client_id", values[i])
			} else if value != nil {
				_m.ClientID = *value
			}
		case deal.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case deal.FieldPropertyAddress:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field property_address", values[i])
			} else if value.Valid {
				_m.PropertyAddress = new(string)
				*_m.PropertyAddress = value.String
			}
		case deal.FieldStage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stage", values[i])
			} else if value.Valid {
				_m.Stage = deal.Stage(value.String)
			}
		case deal.FieldFee:
			if value, ok := values[i].(*decimal.Decimal); !ok {
				return fmt.Errorf("unexpected type %T for field fee", values[i])
			} else if value != nil {
				_m.Fee = *value
			}
		case deal.FieldNumberOfPayments:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field number_of_payments", values[i])
			} else if value.Valid {
				_m.NumberOfPayments = int(value.Int64)
			}
		case deal.FieldAgci:
			if value, ok := values[i].(*decimal.Decimal); !ok {
				return fmt.Errorf("unexpected type %T for field agci", values[i])
			} else if value != nil {
				_m.Agci = *value
			}
		case deal.FieldOriginationPercent:
			if value, ok := values[i].(*decimal.Decimal); !ok {
				return fmt.Errorf("unexpected type %T for field origination_percent", values[i])
			} else if value != nil {
				_m.OriginationPercent = *value
			}
		case deal.FieldSitePercent:
			if value, ok := values[i].(*decimal.Decimal); !ok {
				return fmt.Errorf("unexpected type %T for field site_percent", values[i])
			} else if value != nil {
				_m.SitePercent = *value
			}
		case deal.FieldDealPercent:
			if value, ok := values[i].(*decimal.Decimal); !ok {
				return fmt.Errorf("unexpected type %T for field deal_percent", values[i])
			} else if value != nil {
				_m.DealPercent = *value
			}
		case deal.FieldReferralFeePercent:
			if value, ok := values[i].(*decimal.Decimal); !ok {
				return fmt.Errorf("unexpected type %T for field referral_fee_percent", values[i])
			} else if value != nil {
				_m.ReferralFeePercent = *value
			}
		case deal.FieldCommissionVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field commission_version", values[i])
			} else if value.Valid {
				_m.CommissionVersion = int(value.Int64)
			}
		case deal.FieldClosedDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field closed_date", values[i])
			} else if value.Valid {
				_m.ClosedDate = new(time.Time)
				*_m.ClosedDate = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Deal.
// This includes values selected through modifiers, order, etc.
func (_m *Deal) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCustomer queries the "customer" edge of the Deal entity.
func (_m *Deal) QueryCustomer() *CustomerQuery {
	return NewDealClient(_m.config).QueryCustomer(_m)
}

// QueryPayments queries the "payments" edge of the Deal entity.
func (_m *Deal) QueryPayments() *PaymentQuery {
	return NewDealClient(_m.config).QueryPayments(_m)
}

// QueryBrokerInterests queries the "broker_interests" edge of the Deal entity.
func (_m *Deal) QueryBrokerInterests() *DealBrokerQuery {
	return NewDealClient(_m.config).QueryBrokerInterests(_m)
}

// Update returns a builder for updating this Deal.
// Note that you need to call Deal.Unwrap() before calling this method if this Deal
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Deal) Update() *DealUpdateOne {
	return NewDealClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Deal entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Deal) Unwrap() *Deal {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Deal is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Deal) String() string {
	var builder strings.Builder
	builder.WriteString("Deal(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("client_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ClientID))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	if v := _m.PropertyAddress; v != nil {
		builder.WriteString("property_address=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("stage=")
	builder.WriteString(fmt.Sprintf("%v", _m.Stage))
	builder.WriteString(", ")
	builder.WriteString("fee=")
	builder.WriteString(fmt.Sprintf("%v", _m.Fee))
	builder.WriteString(", ")
	builder.WriteString("number_of_payments=")
	builder.WriteString(fmt.Sprintf("%v", _m.NumberOfPayments))
	builder.WriteString(", ")
	builder.WriteString("agci=")
	builder.WriteString(fmt.Sprintf("%v", _m.Agci))
	builder.WriteString(", ")
	builder.WriteString("origination_percent=")
	builder.WriteString(fmt.Sprintf("%v", _m.OriginationPercent))
	builder.WriteString(", ")
	builder.WriteString("site_percent=")
	builder.WriteString(fmt.Sprintf("%v", _m.SitePercent))
	builder.WriteString(", ")
	builder.WriteString("deal_percent=")
	builder.WriteString(fmt.Sprintf("%v", _m.DealPercent))
	builder.WriteString(", ")
	builder.WriteString("referral_fee_percent=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReferralFeePercent))
	builder.WriteString(", ")
	builder.WriteString("commission_version=")
	builder.WriteString(fmt.Sprintf("%v", _m.CommissionVersion))
	builder.WriteString(", ")
	if v := _m.ClosedDate; v != nil {
		builder.WriteString("closed_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Deals is a parsable slice of Deal.
type Deals []*Deal
