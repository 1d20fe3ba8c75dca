// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/oculusgrp/dealdesk_backend/internal/repo/broker"
	"github.com/oculusgrp/dealdesk_backend/internal/repo/payment"
	"github.com/oculusgrp/dealdesk_backend/internal/repo/paymentsplit"
	"github.com/shopspring/decimal"
)

// PaymentSplit is the model entity for the PaymentSplit schema.
type PaymentSplit struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → payments.id
	PaymentID uuid.UUID `json:"payment_id,omitempty"`
	// FK → brokers.id
	BrokerID uuid.UUID `json:"broker_id,omitempty"`
	// SplitOriginationPercent holds the value of the "split_origination_percent" field.
	SplitOriginationPercent decimal.Decimal `json:"split_origination_percent,omitempty"`
	// SplitOriginationUsd holds the value of the "split_origination_usd" field.
	SplitOriginationUsd decimal.Decimal `json:"split_origination_usd,omitempty"`
	// SplitSitePercent holds the value of the "split_site_percent" field.
	SplitSitePercent decimal.Decimal `json:"split_site_percent,omitempty"`
	// SplitSiteUsd holds the value of the "split_site_usd" field.
	SplitSiteUsd decimal.Decimal `json:"split_site_usd,omitempty"`
	// SplitDealPercent holds the value of the "split_deal_percent" field.
	SplitDealPercent decimal.Decimal `json:"split_deal_percent,omitempty"`
	// SplitDealUsd holds the value of the "split_deal_usd" field.
	SplitDealUsd decimal.Decimal `json:"split_deal_usd,omitempty"`
	// SplitBrokerTotal holds the value of the "split_broker_total" field.
	SplitBrokerTotal decimal.Decimal `json:"split_broker_total,omitempty"`
	// Paid holds the value of the "paid" field.
	Paid bool `json:"paid,omitempty"`
	// PaidDate holds the value of the "paid_date" field.
	PaidDate *time.Time `json:"paid_date,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PaymentSplitQuery when eager-loading is set.
	Edges        PaymentSplitEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PaymentSplitEdges holds the relations/edges for other nodes in the graph.
type PaymentSplitEdges struct {
	// Payment holds the value of the payment edge.
	Payment *Payment `json:"payment,omitempty"`
	// Broker holds the value of the broker edge.
	Broker *Broker `json:"broker,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// PaymentOrErr returns the Payment value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PaymentSplitEdges) PaymentOrErr() (*Payment, error) {
	if e.Payment != nil {
		return e.Payment, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: payment.Label}
	}
	return nil, &NotLoadedError{edge: "payment"}
}

// BrokerOrErr returns the Broker value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PaymentSplitEdges) BrokerOrErr() (*Broker, error) {
	if e.Broker != nil {
		return e.Broker, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: broker.Label}
	}
	return nil, &NotLoadedError{edge: "broker"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PaymentSplit) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case paymentsplit.FieldSplitOriginationPercent, paymentsplit.FieldSplitOriginationUsd, paymentsplit.FieldSplitSitePercent, paymentsplit.FieldSplitSiteUsd, paymentsplit.FieldSplitDealPercent, paymentsplit.FieldSplitDealUsd, paymentsplit.FieldSplitBrokerTotal:
			values[i] = new(decimal.Decimal)
		case paymentsplit.FieldPaid:
			values[i] = new(sql.NullBool)
		case paymentsplit.FieldCreatedAt, paymentsplit.FieldUpdatedAt, paymentsplit.FieldPaidDate:
			values[i] = new(sql.NullTime)
		case paymentsplit.FieldID, paymentsplit.FieldPaymentID, paymentsplit.FieldBrokerID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PaymentSplit fields.
func (_m *PaymentSplit) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case paymentsplit.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case paymentsplit.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case paymentsplit.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case paymentsplit.FieldPaymentID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field payment_id", values[i])
			} else if value != nil {
				_m.PaymentID = *value
			}
		case paymentsplit.FieldBrokerID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field broker_id", values[i])
			} else if value != nil {
				_m.BrokerID = *value
			}
		case paymentsplit.FieldSplitOriginationPercent:
			if value, ok := values[i].(*decimal.Decimal); !ok {
				return fmt.Errorf("unexpected type %T for field split_origination_percent", values[i])
			} else if value != nil {
				_m.SplitOriginationPercent = *value
			}
		case paymentsplit.FieldSplitOriginationUsd:
			if value, ok := values[i].(*decimal.Decimal); !ok {
				return fmt.Errorf("unexpected type %T for field split_origination_usd", values[i])
			} else if value != nil {
				_m.SplitOriginationUsd = *value
			}
		case paymentsplit.FieldSplitSitePercent:
			if value, ok := values[i].(*decimal.Decimal); !ok {
				return fmt.Errorf("unexpected type %T for field split_site_percent", values[i])
			} else if value != nil {
				_m.SplitSitePercent = *value
			}
		case paymentsplit.FieldSplitSiteUsd:
			if value, ok := values[i].(*decimal.Decimal); !ok {
				return fmt.Errorf("unexpected type %T for field split_site_usd", values[i])
			} else if value != nil {
				_m.SplitSiteUsd = *value
			}
		case paymentsplit.FieldSplitDealPercent:
			if value, ok := values[i].(*decimal.Decimal); !ok {
				return fmt.Errorf("unexpected type %T for field split_deal_percent", values[i])
			} else if value != nil {
				_m.SplitDealPercent = *value
			}
		case paymentsplit.FieldSplitDealUsd:
			if value, ok := values[i].(*decimal.Decimal); !ok {
				return fmt.Errorf("unexpected type %T for field split_deal_usd", values[i])
			} else if value != nil {
				_m.SplitDealUsd = *value
			}
		case paymentsplit.FieldSplitBrokerTotal:
			if value, ok := values[i].(*decimal.Decimal); !ok {
				return fmt.Errorf("unexpected type %T for field split_broker_total", values[i])
			} else if value != nil {
				_m.SplitBrokerTotal = *value
			}
		case paymentsplit.FieldPaid:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field paid", values[i])
			} else if value.Valid {
				_m.Paid = value.Bool
			}
		case paymentsplit.FieldPaidDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field paid_date", values[i])
			} else if value.Valid {
				_m.PaidDate = new(time.Time)
				*_m.PaidDate = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PaymentSplit.
// This includes values selected through modifiers, order, etc.
func (_m *PaymentSplit) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPayment queries the "payment" edge of the PaymentSplit entity.
func (_m *PaymentSplit) QueryPayment() *PaymentQuery {
	return NewPaymentSplitClient(_m.config).QueryPayment(_m)
}

// QueryBroker queries the "broker" edge of the PaymentSplit entity.
func (_m *PaymentSplit) QueryBroker() *BrokerQuery {
	return NewPaymentSplitClient(_m.config).QueryBroker(_m)
}

// Update returns a builder for updating this PaymentSplit.
// Note that you need to call PaymentSplit.Unwrap() before calling this method if this PaymentSplit
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PaymentSplit) Update() *PaymentSplitUpdateOne {
	return NewPaymentSplitClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PaymentSplit entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PaymentSplit) Unwrap() *PaymentSplit {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: PaymentSplit is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PaymentSplit) String() string {
	var builder strings.Builder
	builder.WriteString("PaymentSplit(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("payment_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PaymentID))
	builder.WriteString(", ")
	builder.WriteString("broker_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.BrokerID))
	builder.WriteString(", ")
	builder.WriteString("split_origination_percent=")
	builder.WriteString(fmt.Sprintf("%v", _m.SplitOriginationPercent))
	builder.WriteString(", ")
	builder.WriteString("split_origination_usd=")
	builder.WriteString(fmt.Sprintf("%v", _m.SplitOriginationUsd))
	builder.WriteString(", ")
	builder.WriteString("split_site_percent=")
	builder.WriteString(fmt.Sprintf("%v", _m.SplitSitePercent))
	builder.WriteString(", ")
	builder.WriteString("split_site_usd=")
	builder.WriteString(fmt.Sprintf("%v", _m.SplitSiteUsd))
	builder.WriteString(", ")
	builder.WriteString("split_deal_percent=")
	builder.WriteString(fmt.Sprintf("%v", _m.SplitDealPercent))
	builder.WriteString(", ")
	builder.WriteString("split_deal_usd=")
	builder.WriteString(fmt.Sprintf("%v", _m.SplitDealUsd))
	builder.WriteString(", ")
	builder.WriteString("split_broker_total=")
	builder.WriteString(fmt.Sprintf("%v", _m.SplitBrokerTotal))
	builder.WriteString(", ")
	builder.WriteString("paid=")
	builder.WriteString(fmt.Sprintf("%v", _m.Paid))
	builder.WriteString(", ")
	if v := _m.PaidDate; v != nil {
		builder.WriteString("paid_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// PaymentSplits is a parsable slice of PaymentSplit.
type PaymentSplits []*PaymentSplit
