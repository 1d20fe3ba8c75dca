// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/oculusgrp/dealdesk_backend/internal/repo/deal"
	"github.com/oculusgrp/dealdesk_backend/internal/repo/payment"
	"github.com/shopspring/decimal"
)

// Payment is the model entity for the Payment schema.
type Payment struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// DeletedAt holds the value of the "deleted_at" field.
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// FK → deals.id
	DealID uuid.UUID `json:"deal_id,omitempty"`
	// 1-based position in the deal's payment schedule
	Sequence int `json:"sequence,omitempty"`
	// PaymentAmount holds the value of the "payment_amount" field.
	PaymentAmount decimal.Decimal `json:"payment_amount,omitempty"`
	// True once a human has pinned payment_amount
	AmountOverride bool `json:"amount_override,omitempty"`
	// Agci holds the value of the "agci" field.
	Agci decimal.Decimal `json:"agci,omitempty"`
	// ReferralFeeUsd holds the value of the "referral_fee_usd" field.
	ReferralFeeUsd decimal.Decimal `json:"referral_fee_usd,omitempty"`
	// ReferralFeePercentOverride holds the value of the "referral_fee_percent_override" field.
	ReferralFeePercentOverride *decimal.Decimal `json:"referral_fee_percent_override,omitempty"`
	// Expected payment date
	PaymentDate *time.Time `json:"payment_date,omitempty"`
	// PaymentReceived holds the value of the "payment_received" field.
	PaymentReceived bool `json:"payment_received,omitempty"`
	// ReceivedDate holds the value of the "received_date" field.
	ReceivedDate *time.Time `json:"received_date,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// Deal commission_version this row was generated under
	CommissionVersion int `json:"commission_version,omitempty"`
	// InvoiceNumber holds the value of the "invoice_number" field.
	InvoiceNumber *string `json:"invoice_number,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PaymentQuery when eager-loading is set.
	Edges        PaymentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PaymentEdges holds the relations/edges for other nodes in the graph.
type PaymentEdges struct {
	// Deal holds the value of the deal edge.
	Deal *Deal `json:"deal,omitempty"`
	// Splits holds the value of the splits edge.
	Splits []*PaymentSplit `json:"splits,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// DealOrErr returns the Deal value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PaymentEdges) DealOrErr() (*Deal, error) {
	if e.Deal != nil {
		return e.Deal, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: deal.Label}
	}
	return nil, &NotLoadedError{edge: "deal"}
}

// SplitsOrErr returns the Splits value or an error if the edge
// was not loaded in eager-loading.
func (e PaymentEdges) SplitsOrErr() ([]*PaymentSplit, error) {
	if e.loadedTypes[1] {
		return e.Splits, nil
	}
	return nil, &NotLoadedError{edge: "splits"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Payment) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case payment.FieldReferralFeePercentOverride:
			values[i] = &sql.NullScanner{S: new(decimal.Decimal)}
		case payment.FieldPaymentAmount, payment.FieldAgci, payment.FieldReferralFeeUsd:
			values[i] = new(decimal.Decimal)
		case payment.FieldAmountOverride, payment.FieldPaymentReceived, payment.FieldIsActive:
			values[i] = new(sql.NullBool)
		case payment.FieldSequence, payment.FieldCommissionVersion:
			values[i] = new(sql.NullInt64)
		case payment.FieldInvoiceNumber:
			values[i] = new(sql.NullString)
		case payment.FieldCreatedAt, payment.FieldUpdatedAt, payment.FieldDeletedAt, payment.FieldPaymentDate, payment.FieldReceivedDate:
			values[i] = new(sql.NullTime)
		case payment.FieldID, payment.FieldDealID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Payment fields.
func (_m *Payment) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case payment.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case payment.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case payment.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case payment.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		case payment.FieldDealID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field deal_id", values[i])
			} else if value != nil {
				_m.DealID = *value
			}
		case payment.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = int(value.Int64)
			}
		case payment.FieldPaymentAmount:
			if value, ok := values[i].(*decimal.Decimal); !ok {
				return fmt.Errorf("unexpected type %T for field payment_amount", values[i])
			} else if value != nil {
				_m.PaymentAmount = *value
			}
		case payment.FieldAmountOverride:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field amount_override", values[i])
			} else if value.Valid {
				_m.AmountOverride = value.Bool
			}
		case payment.FieldAgci:
			if value, ok := values[i].(*decimal.Decimal); !ok {
				return fmt.Errorf("unexpected type %T for field agci", values[i])
			} else if value != nil {
				_m.Agci = *value
			}
		case payment.FieldReferralFeeUsd:
			if value, ok := values[i].(*decimal.Decimal); !ok {
				return fmt.Errorf("unexpected type %T for field referral_fee_usd", values[i])
			} else if value != nil {
				_m.ReferralFeeUsd = *value
			}
		case payment.FieldReferralFeePercentOverride:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field referral_fee_percent_override", values[i])
			} else if value.Valid {
				_m.ReferralFeePercentOverride = new(decimal.Decimal)
				*_m.ReferralFeePercentOverride = *value.S.(*decimal.Decimal)
			}
		case payment.FieldPaymentDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field payment_date", values[i])
			} else if value.Valid {
				_m.PaymentDate = new(time.Time)
				*_m.PaymentDate = value.Time
			}
		case payment.FieldPaymentReceived:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field payment_received", values[i])
			} else if value.Valid {
				_m.PaymentReceived = value.Bool
			}
		case payment.FieldReceivedDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field received_date", values[i])
			} else if value.Valid {
				_m.ReceivedDate = new(time.Time)
				*_m.ReceivedDate = value.Time
			}
		case payment.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case payment.FieldCommissionVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field commission_version", values[i])
			} else if value.Valid {
				_m.CommissionVersion = int(value.Int64)
			}
		case payment.FieldInvoiceNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field invoice_number", values[i])
			} else if value.Valid {
				_m.InvoiceNumber = new(string)
				*_m.InvoiceNumber = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Payment.
// This includes values selected through modifiers, order, etc.
func (_m *Payment) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDeal queries the "deal" edge of the Payment entity.
func (_m *Payment) QueryDeal() *DealQuery {
	return NewPaymentClient(_m.config).QueryDeal(_m)
}

// QuerySplits queries the "splits" edge of the Payment entity.
func (_m *Payment) QuerySplits() *PaymentSplitQuery {
	return NewPaymentClient(_m.config).QuerySplits(_m)
}

// Update returns a builder for updating this Payment.
// Note that you need to call Payment.Unwrap() before calling this method if this Payment
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Payment) Update() *PaymentUpdateOne {
	return NewPaymentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Payment entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Payment) Unwrap() *Payment {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Payment is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Payment) String() string {
	var builder strings.Builder
	builder.WriteString("Payment(")
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
	builder.WriteString("deal_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DealID))
	builder.WriteString(", ")
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("payment_amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.PaymentAmount))
	builder.WriteString(", ")
	builder.WriteString("amount_override=")
	builder.WriteString(fmt.Sprintf("%v", _m.AmountOverride))
	builder.WriteString(", ")
	builder.WriteString("agci=")
	builder.WriteString(fmt.Sprintf("%v", _m.Agci))
	builder.WriteString(", ")
	builder.WriteString("referral_fee_usd=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReferralFeeUsd))
	builder.WriteString(", ")
	if v := _m.ReferralFeePercentOverride; v != nil {
		builder.WriteString("referral_fee_percent_override=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.PaymentDate; v != nil {
		builder.WriteString("payment_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("payment_received=")
	builder.WriteString(fmt.Sprintf("%v", _m.PaymentReceived))
	builder.WriteString(", ")
	if v := _m.ReceivedDate; v != nil {
		builder.WriteString("received_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteString(", ")
	builder.WriteString("commission_version=")
	builder.WriteString(fmt.Sprintf("%v", _m.CommissionVersion))
	builder.WriteString(", ")
	if v := _m.InvoiceNumber; v != nil {
		builder.WriteString("invoice_number=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// Payments is a parsable slice of Payment.
type Payments []*Payment
