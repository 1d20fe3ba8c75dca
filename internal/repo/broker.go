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
)

// Broker is the model entity for the Broker schema.
type Broker struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// DeletedAt holds the value of the "deleted_at" field.
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// FK → users.id when the broker has a login
	UserID *uuid.UUID `json:"user_id,omitempty"`
	// DisplayName holds the value of the "display_name" field.
	DisplayName string `json:"display_name,omitempty"`
	// Email holds the value of the "email" field.
	Email *string `json:"email,omitempty"`
	// E.164, validated on write
	Phone *string `json:"phone,omitempty"`
	// AES-256-GCM encrypted payout account
	BankAccountEncrypted *string `json:"-"`
	// SHA-256 of the plaintext account for uniqueness lookup
	BankAccountHash *string `json:"bank_account_hash,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BrokerQuery when eager-loading is set.
	Edges        BrokerEdges `json:"edges"`
	selectValues sql.SelectValues
}

// BrokerEdges holds the relations/edges for other nodes in the graph.
type BrokerEdges struct {
	// DealInterests holds the value of the deal_interests edge.
	DealInterests []*DealBroker `json:"deal_interests,omitempty"`
	// PaymentSplits holds the value of the payment_splits edge.
	PaymentSplits []*PaymentSplit `json:"payment_splits,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// DealInterestsOrErr returns the DealInterests value or an error if the edge
// was not loaded in eager-loading.
func (e BrokerEdges) DealInterestsOrErr() ([]*DealBroker, error) {
	if e.loadedTypes[0] {
		return e.DealInterests, nil
	}
	return nil, &NotLoadedError{edge: "deal_interests"}
}

// PaymentSplitsOrErr returns the PaymentSplits value or an error if the edge
// was not loaded in eager-loading.
func (e BrokerEdges) PaymentSplitsOrErr() ([]*PaymentSplit, error) {
	if e.loadedTypes[1] {
		return e.PaymentSplits, nil
	}
	return nil, &NotLoadedError{edge: "payment_splits"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Broker) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case broker.FieldUserID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case broker.FieldIsActive:
			values[i] = new(sql.NullBool)
		case broker.FieldDisplayName, broker.FieldEmail, broker.FieldPhone, broker.FieldBankAccountEncrypted, broker.FieldBankAccountHash:
			values[i] = new(sql.NullString)
		case broker.FieldCreatedAt, broker.FieldUpdatedAt, broker.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		case broker.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Broker fields.
func (_m *Broker) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case broker.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case broker.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case broker.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case broker.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		case broker.FieldUserID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = new(uuid.UUID)
				*_m.UserID = *value.S.(*uuid.UUID)
			}
		case broker.FieldDisplayName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field display_name", values[i])
			} else if value.Valid {
				_m.DisplayName = value.String
			}
		case broker.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = new(string)
				*_m.Email = value.String
			}
		case broker.FieldPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phone", values[i])
			} else if value.Valid {
				_m.Phone = new(string)
				*_m.Phone = value.String
			}
		case broker.FieldBankAccountEncrypted:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bank_account_encrypted", values[i])
			} else if value.Valid {
				_m.BankAccountEncrypted = new(string)
				*_m.BankAccountEncrypted = value.String
			}
		case broker.FieldBankAccountHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bank_account_hash", values[i])
			} else if value.Valid {
				_m.BankAccountHash = new(string)
				*_m.BankAccountHash = value.String
			}
		case broker.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Broker.
// This includes values selected through modifiers, order, etc.
func (_m *Broker) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDealInterests queries the "deal_interests" edge of the Broker entity.
func (_m *Broker) QueryDealInterests() *DealBrokerQuery {
	return NewBrokerClient(_m.config).QueryDealInterests(_m)
}

// QueryPaymentSplits queries the "payment_splits" edge of the Broker entity.
func (_m *Broker) QueryPaymentSplits() *PaymentSplitQuery {
	return NewBrokerClient(_m.config).QueryPaymentSplits(_m)
}

// Update returns a builder for updating this Broker.
// Note that you need to call Broker.Unwrap() before calling this method if this Broker
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Broker) Update() *BrokerUpdateOne {
	return NewBrokerClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Broker entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Broker) Unwrap() *Broker {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Broker is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Broker) String() string {
	var builder strings.Builder
	builder.WriteString("Broker(")
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
	if v := _m.UserID; v != nil {
		builder.WriteString("user_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("display_name=")
	builder.WriteString(_m.DisplayName)
	builder.WriteString(", ")
	if v := _m.Email; v != nil {
		builder.WriteString("email=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Phone; v != nil {
		builder.WriteString("phone=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("bank_account_encrypted=<sensitive>")
	builder.WriteString(", ")
	if v := _m.BankAccountHash; v != nil {
		builder.WriteString("bank_account_hash=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteByte(')')
	return builder.String()
}

// Brokers is a parsable slice of Broker.
type Brokers []*Broker
