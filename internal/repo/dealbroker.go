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
	"github.com/oculusgrp/dealdesk_backend/internal/repo/deal"
	"github.com/oculusgrp/dealdesk_backend/internal/repo/dealbroker"
	"github.com/shopspring/decimal"
)

// DealBroker is the model entity for the DealBroker schema.
type DealBroker struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → deals.id
	DealID uuid.UUID `json:"deal_id,omitempty"`
	// FK → brokers.id
	BrokerID uuid.UUID `json:"broker_id,omitempty"`
	// OriginationPercent holds the value of the "origination_percent" field.
	OriginationPercent decimal.Decimal `json:"origination_percent,omitempty"`
	// SitePercent holds the value of the "site_percent" field.
	SitePercent decimal.Decimal `json:"site_percent,omitempty"`
	// DealPercent holds the value of the "deal_percent" field.
	DealPercent decimal.Decimal `json:"deal_percent,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DealBrokerQuery when eager-loading is set.
	Edges        DealBrokerEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DealBrokerEdges holds the relations/edges for other nodes in the graph.
type DealBrokerEdges struct {
	// Deal holds the value of the deal edge.
	Deal *Deal `json:"deal,omitempty"`
	// Broker holds the value of the broker edge.
	Broker *Broker `json:"broker,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// DealOrErr returns the Deal value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DealBrokerEdges) DealOrErr() (*Deal, error) {
	if e.Deal != nil {
		return e.Deal, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: deal.Label}
	}
	return nil, &NotLoadedError{edge: "deal"}
}

// BrokerOrErr returns the Broker value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DealBrokerEdges) BrokerOrErr() (*Broker, error) {
	if e.Broker != nil {
		return e.Broker, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: broker.Label}
	}
	return nil, &NotLoadedError{edge: "broker"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DealBroker) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case dealbroker.FieldOriginationPercent, dealbroker.FieldSitePercent, dealbroker.FieldDealPercent:
			values[i] = new(decimal.Decimal)
		case dealbroker.FieldCreatedAt, dealbroker.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case dealbroker.FieldID, dealbroker.FieldDealID, dealbroker.FieldBrokerID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DealBroker fields.
func (_m *DealBroker) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case dealbroker.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case dealbroker.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case dealbroker.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case dealbroker.FieldDealID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field deal_id", values[i])
			} else if value != nil {
				_m.DealID = *value
			}
		case dealbroker.FieldBrokerID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field broker_id", values[i])
			} else if value != nil {
				_m.BrokerID = *value
			}
		case dealbroker.FieldOriginationPercent:
			if value, ok := values[i].(*decimal.Decimal); !ok {
				return fmt.Errorf("unexpected type %T for field origination_percent", values[i])
			} else if value != nil {
				_m.OriginationPercent = *value
			}
		case dealbroker.FieldSitePercent:
			if value, ok := values[i].(*decimal.Decimal); !ok {
				return fmt.Errorf("unexpected type %T for field site_percent", values[i])
			} else if value != nil {
				_m.SitePercent = *value
			}
		case dealbroker.FieldDealPercent:
			if value, ok := values[i].(*decimal.Decimal); !ok {
				return fmt.Errorf("unexpected type %T for field deal_percent", values[i])
			} else if value != nil {
				_m.DealPercent = *value
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DealBroker.
// This includes values selected through modifiers, order, etc.
func (_m *DealBroker) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDeal queries the "deal" edge of the DealBroker entity.
func (_m *DealBroker) QueryDeal() *DealQuery {
	return NewDealBrokerClient(_m.config).QueryDeal(_m)
}

// QueryBroker queries the "broker" edge of the DealBroker entity.
func (_m *DealBroker) QueryBroker() *BrokerQuery {
	return NewDealBrokerClient(_m.config).QueryBroker(_m)
}

// Update returns a builder for updating this DealBroker.
// Note that you need to call DealBroker.Unwrap() before calling this method if this DealBroker
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DealBroker) Update() *DealBrokerUpdateOne {
	return NewDealBrokerClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DealBroker entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DealBroker) Unwrap() *DealBroker {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: DealBroker is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DealBroker) String() string {
	var builder strings.Builder
	builder.WriteString("DealBroker(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("deal_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DealID))
	builder.WriteString(", ")
	builder.WriteString("broker_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.BrokerID))
	builder.WriteString(", ")
	builder.WriteString("origination_percent=")
	builder.WriteString(fmt.Sprintf("%v", _m.OriginationPercent))
	builder.WriteString(", ")
	builder.WriteString("site_percent=")
	builder.WriteString(fmt.Sprintf("%v", _m.SitePercent))
	builder.WriteString(", ")
	builder.WriteString("deal_percent=")
	builder.WriteString(fmt.Sprintf("%v", _m.DealPercent))
	builder.WriteByte(')')
	return builder.String()
}

// DealBrokers is a parsable slice of DealBroker.
type DealBrokers []*DealBroker
