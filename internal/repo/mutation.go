// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/oculusgrp/dealdesk_backend/internal/repo/broker"
	"github.com/oculusgrp/dealdesk_backend/internal/repo/customer"
	"github.com/oculusgrp/dealdesk_backend/internal/repo/deal"
	"github.com/oculusgrp/dealdesk_backend/internal/repo/dealbroker"
	"github.com/oculusgrp/dealdesk_backend/internal/repo/notification"
	"github.com/oculusgrp/dealdesk_backend/internal/repo/payment"
	"github.com/oculusgrp/dealdesk_backend/internal/repo/paymentsplit"
	"github.com/oculusgrp/dealdesk_backend/internal/repo/predicate"
	"github.com/oculusgrp/dealdesk_backend/internal/repo/restaurantlocation"
	"github.com/oculusgrp/dealdesk_backend/internal/repo/restauranttrend"
	"github.com/oculusgrp/dealdesk_backend/internal/repo/user"
	"github.com/oculusgrp/dealdesk_backend/internal/repo/usersession"
	"github.com/shopspring/decimal"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeBroker             = "Broker"
	TypeCustomer           = "Customer"
	TypeDeal               = "Deal"
	TypeDealBroker         = "DealBroker"
	TypeNotification       = "Notification"
	TypePayment            = "Payment"
	TypePaymentSplit       = "PaymentSplit"
	TypeRestaurantLocation = "RestaurantLocation"
	TypeRestaurantTrend    = "RestaurantTrend"
	TypeUser               = "User"
	TypeUserSession        = "UserSession"
)

// BrokerMutation represents an operation that mutates the Broker nodes in the graph.
type BrokerMutation struct {
	config
	op                     Op
	typ                    string
	id                     *uuid.UUID
	created_at             *time.Time
	updated_at             *time.Time
	deleted_at             *time.Time
	user_id                *uuid.UUID
	display_name           *string
	email                  *string
	phone                  *string
	bank_account_encrypted *string
	bank_account_hash      *string
	is_active              *bool
	clearedFields          map[string]struct{}
	deal_interests         map[uuid.UUID]struct{}
	removeddeal_interests  map[uuid.UUID]struct{}
	cleareddeal_interests  bool
	payment_splits         map[uuid.UUID]struct{}
	removedpayment_splits  map[uuid.UUID]struct{}
	clearedpayment_splits  bool
	done                   bool
	oldValue               func(context.Context) (*Broker, error)
	predicates             []predicate.Broker
}

var _ ent.Mutation = (*BrokerMutation)(nil)

// brokerOption allows management of the mutation configuration using functional options.
type brokerOption func(*BrokerMutation)

// newBrokerMutation creates new mutation for the Broker entity.
func newBrokerMutation(c config, op Op, opts ...brokerOption) *BrokerMutation {
	m := &BrokerMutation{
		config:        c,
		op:            op,
		typ:           TypeBroker,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBrokerID sets the ID field of the mutation.
func withBrokerID(id uuid.UUID) brokerOption {
	return func(m *BrokerMutation) {
		var (
			err   error
			once  sync.Once
			value *Broker
		)
		m.oldValue = func(ctx context.Context) (*Broker, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Broker.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBroker sets the old Broker of the mutation.
func withBroker(node *Broker) brokerOption {
	return func(m *BrokerMutation) {
		m.oldValue = func(context.Context) (*Broker, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BrokerMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BrokerMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Broker entities.
func (m *BrokerMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BrokerMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BrokerMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Broker.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *BrokerMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BrokerMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Broker entity.
// If the Broker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BrokerMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BrokerMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *BrokerMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *BrokerMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Broker entity.
// If the Broker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BrokerMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *BrokerMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *BrokerMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *BrokerMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Broker entity.
// If the Broker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BrokerMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *BrokerMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[broker.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *BrokerMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[broker.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *BrokerMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, broker.FieldDeletedAt)
}

// SetUserID sets the "user_id" field.
func (m *BrokerMutation) SetUserID(u uuid.UUID) {
	m.user_id = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *BrokerMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Broker entity.
// If the Broker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BrokerMutation) OldUserID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ClearUserID clears the value of the "user_id" field.
func (m *BrokerMutation) ClearUserID() {
	m.user_id = nil
	m.clearedFields[broker.FieldUserID] = struct{}{}
}

// UserIDCleared returns if the "user_id" field was cleared in this mutation.
func (m *BrokerMutation) UserIDCleared() bool {
	_, ok := m.clearedFields[broker.FieldUserID]
	return ok
}

// ResetUserID resets all changes to the "user_id" field.
func (m *BrokerMutation) ResetUserID() {
	m.user_id = nil
	delete(m.clearedFields, broker.FieldUserID)
}

// SetDisplayName sets the "display_name" field.
func (m *BrokerMutation) SetDisplayName(s string) {
	m.display_name = &s
}

// DisplayName returns the value of the "display_name" field in the mutation.
func (m *BrokerMutation) DisplayName() (r string, exists bool) {
	v := m.display_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayName returns the old "display_name" field's value of the Broker entity.
// If the Broker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BrokerMutation) OldDisplayName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayName: %w", err)
	}
	return oldValue.DisplayName, nil
}

// ResetDisplayName resets all changes to the "display_name" field.
func (m *BrokerMutation) ResetDisplayName() {
	m.display_name = nil
}

// SetEmail sets the "email" field.
func (m *BrokerMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *BrokerMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Broker entity.
// If the Broker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BrokerMutation) OldEmail(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ClearEmail clears the value of the "email" field.
func (m *BrokerMutation) ClearEmail() {
	m.email = nil
	m.clearedFields[broker.FieldEmail] = struct{}{}
}

// EmailCleared returns if the "email" field was cleared in this mutation.
func (m *BrokerMutation) EmailCleared() bool {
	_, ok := m.clearedFields[broker.FieldEmail]
	return ok
}

// ResetEmail resets all changes to the "email" field.
func (m *BrokerMutation) ResetEmail() {
	m.email = nil
	delete(m.clearedFields, broker.FieldEmail)
}

// SetPhone sets the "phone" field.
func (m *BrokerMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *BrokerMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the Broker entity.
// If the Broker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BrokerMutation) OldPhone(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ClearPhone clears the value of the "phone" field.
func (m *BrokerMutation) ClearPhone() {
	m.phone = nil
	m.clearedFields[broker.FieldPhone] = struct{}{}
}

// PhoneCleared returns if the "phone" field was cleared in this mutation.
func (m *BrokerMutation) PhoneCleared() bool {
	_, ok := m.clearedFields[broker.FieldPhone]
	return ok
}

// ResetPhone resets all changes to the "phone" field.
func (m *BrokerMutation) ResetPhone() {
	m.phone = nil
	delete(m.clearedFields, broker.FieldPhone)
}

// SetBankAccountEncrypted sets the "bank_account_encrypted" field.
func (m *BrokerMutation) SetBankAccountEncrypted(s string) {
	m.bank_account_encrypted = &s
}

// BankAccountEncrypted returns the value of the "bank_account_encrypted" field in the mutation.
func (m *BrokerMutation) BankAccountEncrypted() (r string, exists bool) {
	v := m.bank_account_encrypted
	if v == nil {
		return
	}
	return *v, true
}

// OldBankAccountEncrypted returns the old "bank_account_encrypted" field's value of the Broker entity.
// If the Broker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BrokerMutation) OldBankAccountEncrypted(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBankAccountEncrypted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBankAccountEncrypted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBankAccountEncrypted: %w", err)
	}
	return oldValue.BankAccountEncrypted, nil
}

// ClearBankAccountEncrypted clears the value of the "bank_account_encrypted" field.
func (m *BrokerMutation) ClearBankAccountEncrypted() {
	m.bank_account_encrypted = nil
	m.clearedFields[broker.FieldBankAccountEncrypted] = struct{}{}
}

// BankAccountEncryptedCleared returns if the "bank_account_encrypted" field was cleared in this mutation.
func (m *BrokerMutation) BankAccountEncryptedCleared() bool {
	_, ok := m.clearedFields[broker.FieldBankAccountEncrypted]
	return ok
}

// ResetBankAccountEncrypted resets all changes to the "bank_account_encrypted" field.
func (m *BrokerMutation) ResetBankAccountEncrypted() {
	m.bank_account_encrypted = nil
	delete(m.clearedFields, broker.FieldBankAccountEncrypted)
}

// SetBankAccountHash sets the "bank_account_hash" field.
func (m *BrokerMutation) SetBankAccountHash(s string) {
	m.bank_account_hash = &s
}

// BankAccountHash returns the value of the "bank_account_hash" field in the mutation.
func (m *BrokerMutation) BankAccountHash() (r string, exists bool) {
	v := m.bank_account_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldBankAccountHash returns the old "bank_account_hash" field's value of the Broker entity.
// If the Broker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BrokerMutation) OldBankAccountHash(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBankAccountHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBankAccountHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBankAccountHash: %w", err)
	}
	return oldValue.BankAccountHash, nil
}

// ClearBankAccountHash clears the value of the "bank_account_hash" field.
func (m *BrokerMutation) ClearBankAccountHash() {
	m.bank_account_hash = nil
	m.clearedFields[broker.FieldBankAccountHash] = struct{}{}
}

// BankAccountHashCleared returns if the "bank_account_hash" field was cleared in this mutation.
func (m *BrokerMutation) BankAccountHashCleared() bool {
	_, ok := m.clearedFields[broker.FieldBankAccountHash]
	return ok
}

// ResetBankAccountHash resets all changes to the "bank_account_hash" field.
func (m *BrokerMutation) ResetBankAccountHash() {
	m.bank_account_hash = nil
	delete(m.clearedFields, broker.FieldBankAccountHash)
}

// SetIsActive sets the "is_active" field.
func (m *BrokerMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *BrokerMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the Broker entity.
// If the Broker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BrokerMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *BrokerMutation) ResetIsActive() {
	m.is_active = nil
}

// AddDealInterestIDs adds the "deal_interests" edge to the DealBroker entity by ids.
func (m *BrokerMutation) AddDealInterestIDs(ids ...uuid.UUID) {
	if m.deal_interests == nil {
		m.deal_interests = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.deal_interests[ids[i]] = struct{}{}
	}
}

// ClearDealInterests clears the "deal_interests" edge to the DealBroker entity.
func (m *BrokerMutation) ClearDealInterests() {
	m.cleareddeal_interests = true
}

// DealInterestsCleared reports if the "deal_interests" edge to the DealBroker entity was cleared.
func (m *BrokerMutation) DealInterestsCleared() bool {
	return m.cleareddeal_interests
}

// RemoveDealInterestIDs removes the "deal_interests" edge to the DealBroker entity by IDs.
func (m *BrokerMutation) RemoveDealInterestIDs(ids ...uuid.UUID) {
	if m.removeddeal_interests == nil {
		m.removeddeal_interests = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.deal_interests, ids[i])
		m.removeddeal_interests[ids[i]] = struct{}{}
	}
}

// RemovedDealInterests returns the removed IDs of the "deal_interests" edge to the DealBroker entity.
func (m *BrokerMutation) RemovedDealInterestsIDs() (ids []uuid.UUID) {
	for id := range m.removeddeal_interests {
		ids = append(ids, id)
	}
	return
}

// DealInterestsIDs returns the "deal_interests" edge IDs in the mutation.
func (m *BrokerMutation) DealInterestsIDs() (ids []uuid.UUID) {
	for id := range m.deal_interests {
		ids = append(ids, id)
	}
	return
}

// ResetDealInterests resets all changes to the "deal_interests" edge.
func (m *BrokerMutation) ResetDealInterests() {
	m.deal_interests = nil
	m.cleareddeal_interests = false
	m.removeddeal_interests = nil
}

// AddPaymentSplitIDs adds the "payment_splits" edge to the PaymentSplit entity by ids.
func (m *BrokerMutation) AddPaymentSplitIDs(ids ...uuid.UUID) {
	if m.payment_splits == nil {
		m.payment_splits = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.payment_splits[ids[i]] = struct{}{}
	}
}

// ClearPaymentSplits clears the "payment_splits" edge to the PaymentSplit entity.
func (m *BrokerMutation) ClearPaymentSplits() {
	m.clearedpayment_splits = true
}

// PaymentSplitsCleared reports if the "payment_splits" edge to the PaymentSplit entity was cleared.
func (m *BrokerMutation) PaymentSplitsCleared() bool {
	return m.clearedpayment_splits
}

// RemovePaymentSplitIDs removes the "payment_splits" edge to the PaymentSplit entity by IDs.
func (m *BrokerMutation) RemovePaymentSplitIDs(ids ...uuid.UUID) {
	if m.removedpayment_splits == nil {
		m.removedpayment_splits = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.payment_splits, ids[i])
		m.removedpayment_splits[ids[i]] = struct{}{}
	}
}

// RemovedPaymentSplits returns the removed IDs of the "payment_splits" edge to the PaymentSplit entity.
func (m *BrokerMutation) RemovedPaymentSplitsIDs() (ids []uuid.UUID) {
	for id := range m.removedpayment_splits {
		ids = append(ids, id)
	}
	return
}

// PaymentSplitsIDs returns the "payment_splits" edge IDs in the mutation.
func (m *BrokerMutation) PaymentSplitsIDs() (ids []uuid.UUID) {
	for id := range m.payment_splits {
		ids = append(ids, id)
	}
	return
}

// ResetPaymentSplits resets all changes to the "payment_splits" edge.
func (m *BrokerMutation) ResetPaymentSplits() {
	m.payment_splits = nil
	m.clearedpayment_splits = false
	m.removedpayment_splits = nil
}

// Where appends a list predicates to the BrokerMutation builder.
func (m *BrokerMutation) Where(ps ...predicate.Broker) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BrokerMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BrokerMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Broker, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BrokerMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BrokerMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Broker).
func (m *BrokerMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BrokerMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.created_at != nil {
		fields = append(fields, broker.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, broker.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, broker.FieldDeletedAt)
	}
	if m.user_id != nil {
		fields = append(fields, broker.FieldUserID)
	}
	if m.display_name != nil {
		fields = append(fields, broker.FieldDisplayName)
	}
	if m.email != nil {
		fields = append(fields, broker.FieldEmail)
	}
	if m.phone != nil {
		fields = append(fields, broker.FieldPhone)
	}
	if m.bank_account_encrypted != nil {
		fields = append(fields, broker.FieldBankAccountEncrypted)
	}
	if m.bank_account_hash != nil {
		fields = append(fields, broker.FieldBankAccountHash)
	}
	if m.is_active != nil {
		fields = append(fields, broker.FieldIsActive)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BrokerMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case broker.FieldCreatedAt:
		return m.CreatedAt()
	case broker.FieldUpdatedAt:
		return m.UpdatedAt()
	case broker.FieldDeletedAt:
		return m.DeletedAt()
	case broker.FieldUserID:
		return m.UserID()
	case broker.FieldDisplayName:
		return m.DisplayName()
	case broker.FieldEmail:
		return m.Email()
	case broker.FieldPhone:
		return m.Phone()
	case broker.FieldBankAccountEncrypted:
		return m.BankAccountEncrypted()
	case broker.FieldBankAccountHash:
		return m.BankAccountHash()
	case broker.FieldIsActive:
		return m.IsActive()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BrokerMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case broker.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case broker.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case broker.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case broker.FieldUserID:
		return m.OldUserID(ctx)
	case broker.FieldDisplayName:
		return m.OldDisplayName(ctx)
	case broker.FieldEmail:
		return m.OldEmail(ctx)
	case broker.FieldPhone:
		return m.OldPhone(ctx)
	case broker.FieldBankAccountEncrypted:
		return m.OldBankAccountEncrypted(ctx)
	case broker.FieldBankAccountHash:
		return m.OldBankAccountHash(ctx)
	case broker.FieldIsActive:
		return m.OldIsActive(ctx)
	}
	return nil, fmt.Errorf("unknown Broker field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BrokerMutation) SetField(name string, value ent.Value) error {
	switch name {
	case broker.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case broker.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case broker.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case broker.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case broker.FieldDisplayName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayName(v)
		return nil
	case broker.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case broker.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case broker.FieldBankAccountEncrypted:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBankAccountEncrypted(v)
		return nil
	case broker.FieldBankAccountHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBankAccountHash(v)
		return nil
	case broker.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	}
	return fmt.Errorf("unknown Broker field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BrokerMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BrokerMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BrokerMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Broker numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BrokerMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(broker.FieldDeletedAt) {
		fields = append(fields, broker.FieldDeletedAt)
	}
	if m.FieldCleared(broker.FieldUserID) {
		fields = append(fields, broker.FieldUserID)
	}
	if m.FieldCleared(broker.FieldEmail) {
		fields = append(fields, broker.FieldEmail)
	}
	if m.FieldCleared(broker.FieldPhone) {
		fields = append(fields, broker.FieldPhone)
	}
	if m.FieldCleared(broker.FieldBankAccountEncrypted) {
		fields = append(fields, broker.FieldBankAccountEncrypted)
	}
	if m.FieldCleared(broker.FieldBankAccountHash) {
		fields = append(fields, broker.FieldBankAccountHash)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BrokerMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BrokerMutation) ClearField(name string) error {
	switch name {
	case broker.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	case broker.FieldUserID:
		m.ClearUserID()
		return nil
	case broker.FieldEmail:
		m.ClearEmail()
		return nil
	case broker.FieldPhone:
		m.ClearPhone()
		return nil
	case broker.FieldBankAccountEncrypted:
		m.ClearBankAccountEncrypted()
		return nil
	case broker.FieldBankAccountHash:
		m.ClearBankAccountHash()
		return nil
	}
	return fmt.Errorf("unknown Broker nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BrokerMutation) ResetField(name string) error {
	switch name {
	case broker.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case broker.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case broker.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case broker.FieldUserID:
		m.ResetUserID()
		return nil
	case broker.FieldDisplayName:
		m.ResetDisplayName()
		return nil
	case broker.FieldEmail:
		m.ResetEmail()
		return nil
	case broker.FieldPhone:
		m.ResetPhone()
		return nil
	case broker.FieldBankAccountEncrypted:
		m.ResetBankAccountEncrypted()
		return nil
	case broker.FieldBankAccountHash:
		m.ResetBankAccountHash()
		return nil
	case broker.FieldIsActive:
		m.ResetIsActive()
		return nil
	}
	return fmt.Errorf("unknown Broker field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BrokerMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.deal_interests != nil {
		edges = append(edges, broker.EdgeDealInterests)
	}
	if m.payment_splits != nil {
		edges = append(edges, broker.EdgePaymentSplits)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BrokerMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case broker.EdgeDealInterests:
		ids := make([]ent.Value, 0, len(m.deal_interests))
		for id := range m.deal_interests {
			ids = append(ids, id)
		}
		return ids
	case broker.EdgePaymentSplits:
		ids := make([]ent.Value, 0, len(m.payment_splits))
		for id := range m.payment_splits {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BrokerMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removeddeal_interests != nil {
		edges = append(edges, broker.EdgeDealInterests)
	}
	if m.removedpayment_splits != nil {
		edges = append(edges, broker.EdgePaymentSplits)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BrokerMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case broker.EdgeDealInterests:
		ids := make([]ent.Value, 0, len(m.removeddeal_interests))
		for id := range m.removeddeal_interests {
			ids = append(ids, id)
		}
		return ids
	case broker.EdgePaymentSplits:
		ids := make([]ent.Value, 0, len(m.removedpayment_splits))
		for id := range m.removedpayment_splits {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BrokerMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareddeal_interests {
		edges = append(edges, broker.EdgeDealInterests)
	}
	if m.clearedpayment_splits {
		edges = append(edges, broker.EdgePaymentSplits)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BrokerMutation) EdgeCleared(name string) bool {
	switch name {
	case broker.EdgeDealInterests:
		return m.cleareddeal_interests
	case broker.EdgePaymentSplits:
		return m.clearedpayment_splits
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BrokerMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Broker unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BrokerMutation) ResetEdge(name string) error {
	switch name {
	case broker.EdgeDealInterests:
		m.ResetDealInterests()
		return nil
	case broker.EdgePaymentSplits:
		m.ResetPaymentSplits()
		return nil
	}
	return fmt.Errorf("unknown Broker edge %s", name)
}

// CustomerMutation represents an operation that mutates the Customer nodes in the graph.
type CustomerMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	updated_at    *time.Time
	deleted_at    *time.Time
	name          *string
	contact_name  *string
	email         *string
	phone         *string
	notes         *string
	clearedFields map[string]struct{}
	deals         map[uuid.UUID]struct{}
	removeddeals  map[uuid.UUID]struct{}
	cleareddeals  bool
	done          bool
	oldValue      func(context.Context) (*Customer, error)
	predicates    []predicate.Customer
}

var _ ent.Mutation = (*CustomerMutation)(nil)

// customerOption allows management of the mutation configuration using functional options.
type customerOption func(*CustomerMutation)

// newCustomerMutation creates new mutation for the Customer entity.
func newCustomerMutation(c config, op Op, opts ...customerOption) *CustomerMutation {
	m := &CustomerMutation{
		config:        c,
		op:            op,
		typ:           TypeCustomer,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCustomerID sets the ID field of the mutation.
func withCustomerID(id uuid.UUID) customerOption {
	return func(m *CustomerMutation) {
		var (
			err   error
			once  sync.Once
			value *Customer
		)
		m.oldValue = func(ctx context.Context) (*Customer, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Customer.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCustomer sets the old Customer of the mutation.
func withCustomer(node *Customer) customerOption {
	return func(m *CustomerMutation) {
		m.oldValue = func(context.Context) (*Customer, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CustomerMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CustomerMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Customer entities.
func (m *CustomerMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CustomerMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CustomerMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Customer.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *CustomerMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CustomerMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Customer entity.
// If the Customer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomerMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CustomerMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CustomerMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CustomerMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Customer entity.
// If the Customer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomerMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CustomerMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *CustomerMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *CustomerMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Customer entity.
// If the Customer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomerMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *CustomerMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[customer.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *CustomerMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[customer.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *CustomerMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, customer.FieldDeletedAt)
}

// SetName sets the "name" field.
func (m *CustomerMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *CustomerMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Customer entity.
// If the Customer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomerMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *CustomerMutation) ResetName() {
	m.name = nil
}

// SetContactName sets the "contact_name" field.
func (m *CustomerMutation) SetContactName(s string) {
	m.contact_name = &s
}

// ContactName returns the value of the "contact_name" field in the mutation.
func (m *CustomerMutation) ContactName() (r string, exists bool) {
	v := m.contact_name
	if v == nil {
		return
	}
	return *v, true
}

// OldContactName returns the old "contact_name" field's value of the Customer entity.
// If the Customer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomerMutation) OldContactName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContactName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContactName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContactName: %w", err)
	}
	return oldValue.ContactName, nil
}

// ClearContactName clears the value of the "contact_name" field.
func (m *CustomerMutation) ClearContactName() {
	m.contact_name = nil
	m.clearedFields[customer.FieldContactName] = struct{}{}
}

// ContactNameCleared returns if the "contact_name" field was cleared in this mutation.
func (m *CustomerMutation) ContactNameCleared() bool {
	_, ok := m.clearedFields[customer.FieldContactName]
	return ok
}

// ResetContactName resets all changes to the "contact_name" field.
func (m *CustomerMutation) ResetContactName() {
	m.contact_name = nil
	delete(m.clearedFields, customer.FieldContactName)
}

// SetEmail sets the "email" field.
func (m *CustomerMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *CustomerMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Customer entity.
// If the Customer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomerMutation) OldEmail(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ClearEmail clears the value of the "email" field.
func (m *CustomerMutation) ClearEmail() {
	m.email = nil
	m.clearedFields[customer.FieldEmail] = struct{}{}
}

// EmailCleared returns if the "email" field was cleared in this mutation.
func (m *CustomerMutation) EmailCleared() bool {
	_, ok := m.clearedFields[customer.FieldEmail]
	return ok
}

// ResetEmail resets all changes to the "email" field.
func (m *CustomerMutation) ResetEmail() {
	m.email = nil
	delete(m.clearedFields, customer.FieldEmail)
}

// SetPhone sets the "phone" field.
func (m *CustomerMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *CustomerMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the Customer entity.
// If the Customer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomerMutation) OldPhone(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ClearPhone clears the value of the "phone" field.
func (m *CustomerMutation) ClearPhone() {
	m.phone = nil
	m.clearedFields[customer.FieldPhone] = struct{}{}
}

// PhoneCleared returns if the "phone" field was cleared in this mutation.
func (m *CustomerMutation) PhoneCleared() bool {
	_, ok := m.clearedFields[customer.FieldPhone]
	return ok
}

// ResetPhone resets all changes to the "phone" field.
func (m *CustomerMutation) ResetPhone() {
	m.phone = nil
	delete(m.clearedFields, customer.FieldPhone)
}

// SetNotes sets the "notes" field.
func (m *CustomerMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *CustomerMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the Customer entity.
// If the Customer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomerMutation) OldNotes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *CustomerMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[customer.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *CustomerMutation) NotesCleared() bool {
	_, ok := m.clearedFields[customer.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *CustomerMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, customer.FieldNotes)
}

// AddDealIDs adds the "deals" edge to the Deal entity by ids.
func (m *CustomerMutation) AddDealIDs(ids ...uuid.UUID) {
	if m.deals == nil {
		m.deals = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.deals[ids[i]] = struct{}{}
	}
}

// ClearDeals clears the "deals" edge to the Deal entity.
func (m *CustomerMutation) ClearDeals() {
	m.cleareddeals = true
}

// DealsCleared reports if the "deals" edge to the Deal entity was cleared.
func (m *CustomerMutation) DealsCleared() bool {
	return m.cleareddeals
}

// RemoveDealIDs removes the "deals" edge to the Deal entity by IDs.
func (m *CustomerMutation) RemoveDealIDs(ids ...uuid.UUID) {
	if m.removeddeals == nil {
		m.removeddeals = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.deals, ids[i])
		m.removeddeals[ids[i]] = struct{}{}
	}
}

// RemovedDeals returns the removed IDs of the "deals" edge to the Deal entity.
func (m *CustomerMutation) RemovedDealsIDs() (ids []uuid.UUID) {
	for id := range m.removeddeals {
		ids = append(ids, id)
	}
	return
}

// DealsIDs returns the "deals" edge IDs in the mutation.
func (m *CustomerMutation) DealsIDs() (ids []uuid.UUID) {
	for id := range m.deals {
		ids = append(ids, id)
	}
	return
}

// ResetDeals resets all changes to the "deals" edge.
func (m *CustomerMutation) ResetDeals() {
	m.deals = nil
	m.cleareddeals = false
	m.removeddeals = nil
}

// Where appends a list predicates to the CustomerMutation builder.
func (m *CustomerMutation) Where(ps ...predicate.Customer) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CustomerMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CustomerMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Customer, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CustomerMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CustomerMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Customer).
func (m *CustomerMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CustomerMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.created_at != nil {
		fields = append(fields, customer.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, customer.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, customer.FieldDeletedAt)
	}
	if m.name != nil {
		fields = append(fields, customer.FieldName)
	}
	if m.contact_name != nil {
		fields = append(fields, customer.FieldContactName)
	}
	if m.email != nil {
		fields = append(fields, customer.FieldEmail)
	}
	if m.phone != nil {
		fields = append(fields, customer.FieldPhone)
	}
	if m.notes != nil {
		fields = append(fields, customer.FieldNotes)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CustomerMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case customer.FieldCreatedAt:
		return m.CreatedAt()
	case customer.FieldUpdatedAt:
		return m.UpdatedAt()
	case customer.FieldDeletedAt:
		return m.DeletedAt()
	case customer.FieldName:
		return m.Name()
	case customer.FieldContactName:
		return m.ContactName()
	case customer.FieldEmail:
		return m.Email()
	case customer.FieldPhone:
		return m.Phone()
	case customer.FieldNotes:
		return m.Notes()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CustomerMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case customer.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case customer.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case customer.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case customer.FieldName:
		return m.OldName(ctx)
	case customer.FieldContactName:
		return m.OldContactName(ctx)
	case customer.FieldEmail:
		return m.OldEmail(ctx)
	case customer.FieldPhone:
		return m.OldPhone(ctx)
	case customer.FieldNotes:
		return m.OldNotes(ctx)
	}
	return nil, fmt.Errorf("unknown Customer field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CustomerMutation) SetField(name string, value ent.Value) error {
	switch name {
	case customer.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case customer.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case customer.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case customer.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case customer.FieldContactName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContactName(v)
		return nil
	case customer.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case customer.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case customer.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	}
	return fmt.Errorf("unknown Customer field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CustomerMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CustomerMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CustomerMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Customer numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CustomerMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(customer.FieldDeletedAt) {
		fields = append(fields, customer.FieldDeletedAt)
	}
	if m.FieldCleared(customer.FieldContactName) {
		fields = append(fields, customer.FieldContactName)
	}
	if m.FieldCleared(customer.FieldEmail) {
		fields = append(fields, customer.FieldEmail)
	}
	if m.FieldCleared(customer.FieldPhone) {
		fields = append(fields, customer.FieldPhone)
	}
	if m.FieldCleared(customer.FieldNotes) {
		fields = append(fields, customer.FieldNotes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CustomerMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CustomerMutation) ClearField(name string) error {
	switch name {
	case customer.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	case customer.FieldContactName:
		m.ClearContactName()
		return nil
	case customer.FieldEmail:
		m.ClearEmail()
		return nil
	case customer.FieldPhone:
		m.ClearPhone()
		return nil
	case customer.FieldNotes:
		m.ClearNotes()
		return nil
	}
	return fmt.Errorf("unknown Customer nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CustomerMutation) ResetField(name string) error {
	switch name {
	case customer.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case customer.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case customer.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case customer.FieldName:
		m.ResetName()
		return nil
	case customer.FieldContactName:
		m.ResetContactName()
		return nil
	case customer.FieldEmail:
		m.ResetEmail()
		return nil
	case customer.FieldPhone:
		m.ResetPhone()
		return nil
	case customer.FieldNotes:
		m.ResetNotes()
		return nil
	}
	return fmt.Errorf("unknown Customer field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CustomerMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.deals != nil {
		edges = append(edges, customer.EdgeDeals)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CustomerMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case customer.EdgeDeals:
		ids := make([]ent.Value, 0, len(m.deals))
		for id := range m.deals {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CustomerMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removeddeals != nil {
		edges = append(edges, customer.EdgeDeals)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CustomerMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case customer.EdgeDeals:
		ids := make([]ent.Value, 0, len(m.removeddeals))
		for id := range m.removeddeals {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CustomerMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddeals {
		edges = append(edges, customer.EdgeDeals)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CustomerMutation) EdgeCleared(name string) bool {
	switch name {
	case customer.EdgeDeals:
		return m.cleareddeals
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CustomerMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Customer unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CustomerMutation) ResetEdge(name string) error {
	switch name {
	case customer.EdgeDeals:
		m.ResetDeals()
		return nil
	}
	return fmt.Errorf("unknown Customer edge %s", name)
}

// DealMutation represents an operation that mutates the Deal nodes in the graph.
type DealMutation struct {
	config
	op                      Op
	typ                     string
	id                      *uuid.UUID
	created_at              *time.Time
	updated_at              *time.Time
	deleted_at              *time.Time
	name                    *string
	property_address        *string
	stage                   *deal.Stage
	fee                     *decimal.Decimal
	addfee                  *decimal.Decimal
	number_of_payments      *int
	addnumber_of_payments   *int
	agci                    *decimal.Decimal
	addagci                 *decimal.Decimal
	origination_percent     *decimal.Decimal
	addorigination_percent  *decimal.Decimal
	site_percent            *decimal.Decimal
	addsite_percent         *decimal.Decimal
	deal_percent            *decimal.Decimal
	adddeal_percent         *decimal.Decimal
	referral_fee_percent    *decimal.Decimal
	addreferral_fee_percent *decimal.Decimal
	commission_version      *int
	addcommission_version   *int
	closed_date             *time.Time
	clearedFields           map[string]struct{}
	customer                *uuid.UUID
	clearedcustomer         bool
	payments                map[uuid.UUID]struct{}
	removedpayments         map[uuid.UUID]struct{}
	clearedpayments         bool
	broker_interests        map[uuid.UUID]struct{}
	removedbroker_interests map[uuid.UUID]struct{}
	clearedbroker_interests bool
	done                    bool
	oldValue                func(context.Context) (*Deal, error)
	predicates              []predicate.Deal
}

var _ ent.Mutation = (*DealMutation)(nil)

// dealOption allows management of the mutation configuration using functional options.
type dealOption func(*DealMutation)

// newDealMutation creates new mutation for the Deal entity.
func newDealMutation(c config, op Op, opts ...dealOption) *DealMutation {
	m := &DealMutation{
		config:        c,
		op:            op,
		typ:           TypeDeal,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDealID sets the ID field of the mutation.
func withDealID(id uuid.UUID) dealOption {
	return func(m *DealMutation) {
		var (
			err   error
			once  sync.Once
			value *Deal
		)
		m.oldValue = func(ctx context.Context) (*Deal, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Deal.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDeal sets the old Deal of the mutation.
func withDeal(node *Deal) dealOption {
	return func(m *DealMutation) {
		m.oldValue = func(context.Context) (*Deal, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DealMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DealMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Deal entities.
func (m *DealMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DealMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DealMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Deal.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *DealMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DealMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Deal entity.
// If the Deal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DealMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DealMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DealMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DealMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Deal entity.
// If the Deal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DealMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DealMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *DealMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *DealMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Deal entity.
// If the Deal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DealMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *DealMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[deal.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *DealMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[deal.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *DealMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, deal.FieldDeletedAt)
}

// SetClientID sets the "client_id" field.
func (m *DealMutation) SetClientID(u uuid.UUID) {
	m.customer = &u
}

// ClientID returns the value of the "client_id" field in the mutation.
func (m *DealMutation) ClientID() (r uuid.UUID, exists bool) {
	v := m.customer
	if v == nil {
		return
	}
	return *v, true
}

// OldClientID returns the old "client_id" field's value of the Deal entity.
// If the Deal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DealMutation) OldClientID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientID: %w", err)
	}
	return oldValue.ClientID, nil
}

// ResetClientID resets all changes to the "client_id" field.
func (m *DealMutation) ResetClientID() {
	m.customer = nil
}

// SetName sets the "name" field.
func (m *DealMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *DealMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Deal entity.
// If the Deal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DealMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *DealMutation) ResetName() {
	m.name = nil
}

// SetPropertyAddress sets the "property_address" field.
func (m *DealMutation) SetPropertyAddress(s string) {
	m.property_address = &s
}

// PropertyAddress returns the value of the "property_address" field in the mutation.
func (m *DealMutation) PropertyAddress() (r string, exists bool) {
	v := m.property_address
	if v == nil {
		return
	}
	return *v, true
}

// OldPropertyAddress returns the old "property_address" field's value of the Deal entity.
// If the Deal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DealMutation) OldPropertyAddress(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPropertyAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPropertyAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPropertyAddress: %w", err)
	}
	return oldValue.PropertyAddress, nil
}

// ClearPropertyAddress clears the value of the "property_address" field.
func (m *DealMutation) ClearPropertyAddress() {
	m.property_address = nil
	m.clearedFields[deal.FieldPropertyAddress] = struct{}{}
}

// PropertyAddressCleared returns if the "property_address" field was cleared in this mutation.
func (m *DealMutation) PropertyAddressCleared() bool {
	_, ok := m.clearedFields[deal.FieldPropertyAddress]
	return ok
}

// ResetPropertyAddress resets all changes to the "property_address" field.
func (m *DealMutation) ResetPropertyAddress() {
	m.property_address = nil
	delete(m.clearedFields, deal.FieldPropertyAddress)
}

// SetStage sets the "stage" field.
func (m *DealMutation) SetStage(d deal.Stage) {
	m.stage = &d
}

// Stage returns the value of the "stage" field in the mutation.
func (m *DealMutation) Stage() (r deal.Stage, exists bool) {
	v := m.stage
	if v == nil {
		return
	}
	return *v, true
}

// OldStage returns the old "stage" field's value of the Deal entity.
// If the Deal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DealMutation) OldStage(ctx context.Context) (v deal.Stage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStage: %w", err)
	}
	return oldValue.Stage, nil
}

// ResetStage resets all changes to the "stage" field.
func (m *DealMutation) ResetStage() {
	m.stage = nil
}

// SetFee sets the "fee" field.
func (m *DealMutation) SetFee(d decimal.Decimal) {
	m.fee = &d
	m.addfee = nil
}

// Fee returns the value of the "fee" field in the mutation.
func (m *DealMutation) Fee() (r decimal.Decimal, exists bool) {
	v := m.fee
	if v == nil {
		return
	}
	return *v, true
}

// OldFee returns the old "fee" field's value of the Deal entity.
// If the Deal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DealMutation) OldFee(ctx context.Context) (v decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFee is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFee requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFee: %w", err)
	}
	return oldValue.Fee, nil
}

// AddFee adds d to the "fee" field.
func (m *DealMutation) AddFee(d decimal.Decimal) {
	if m.addfee != nil {
		*m.addfee = m.addfee.Add(d)
	} else {
		m.addfee = &d
	}
}

// AddedFee returns the value that was added to the "fee" field in this mutation.
func (m *DealMutation) AddedFee() (r decimal.Decimal, exists bool) {
	v := m.addfee
	if v == nil {
		return
	}
	return *v, true
}

// ResetFee resets all changes to the "fee" field.
func (m *DealMutation) ResetFee() {
	m.fee = nil
	m.addfee = nil
}

// SetNumberOfPayments sets the "number_of_payments" field.
func (m *DealMutation) SetNumberOfPayments(i int) {
	m.number_of_payments = &i
	m.addnumber_of_payments = nil
}

// NumberOfPayments returns the value of the "number_of_payments" field in the mutation.
func (m *DealMutation) NumberOfPayments() (r int, exists bool) {
	v := m.number_of_payments
	if v == nil {
		return
	}
	return *v, true
}

// OldNumberOfPayments returns the old "number_of_payments" field's value of the Deal entity.
// If the Deal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DealMutation) OldNumberOfPayments(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNumberOfPayments is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNumberOfPayments requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNumberOfPayments: %w", err)
	}
	return oldValue.NumberOfPayments, nil
}

// AddNumberOfPayments adds i to the "number_of_payments" field.
func (m *DealMutation) AddNumberOfPayments(i int) {
	if m.addnumber_of_payments != nil {
		*m.addnumber_of_payments += i
	} else {
		m.addnumber_of_payments = &i
	}
}

// AddedNumberOfPayments returns the value that was added to the "number_of_payments" field in this mutation.
func (m *DealMutation) AddedNumberOfPayments() (r int, exists bool) {
	v := m.addnumber_of_payments
	if v == nil {
		return
	}
	return *v, true
}

// ResetNumberOfPayments resets all changes to the "number_of_payments" field.
func (m *DealMutation) ResetNumberOfPayments() {
	m.number_of_payments = nil
	m.addnumber_of_payments = nil
}

// SetAgci sets the "agci" field.
func (m *DealMutation) SetAgci(d decimal.Decimal) {
	m.agci = &d
	m.addagci = nil
}

// Agci returns the value of the "agci" field in the mutation.
func (m *DealMutation) Agci() (r decimal.Decimal, exists bool) {
	v := m.agci
	if v == nil {
		return
	}
	return *v, true
}

// OldAgci returns the old "agci" field's value of the Deal entity.
// If the Deal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DealMutation) OldAgci(ctx context.Context) (v decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgci is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgci requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgci: %w", err)
	}
	return oldValue.Agci, nil
}

// AddAgci adds d to the "agci" field.
func (m *DealMutation) AddAgci(d decimal.Decimal) {
	if m.addagci != nil {
		*m.addagci = m.addagci.Add(d)
	} else {
		m.addagci = &d
	}
}

// AddedAgci returns the value that was added to the "agci" field in this mutation.
func (m *DealMutation) AddedAgci() (r decimal.Decimal, exists bool) {
	v := m.addagci
	if v == nil {
		return
	}
	return *v, true
}

// ResetAgci resets all changes to the "agci" field.
func (m *DealMutation) ResetAgci() {
	m.agci = nil
	m.addagci = nil
}

// SetOriginationPercent sets the "origination_percent" field.
func (m *DealMutation) SetOriginationPercent(d decimal.Decimal) {
	m.origination_percent = &d
	m.addorigination_percent = nil
}

// OriginationPercent returns the value of the "origination_percent" field in the mutation.
func (m *DealMutation) OriginationPercent() (r decimal.Decimal, exists bool) {
	v := m.origination_percent
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginationPercent returns the old "origination_percent" field's value of the Deal entity.
// If the Deal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DealMutation) OldOriginationPercent(ctx context.Context) (v decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginationPercent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginationPercent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginationPercent: %w", err)
	}
	return oldValue.OriginationPercent, nil
}

// AddOriginationPercent adds d to the "origination_percent" field.
func (m *DealMutation) AddOriginationPercent(d decimal.Decimal) {
	if m.addorigination_percent != nil {
		*m.addorigination_percent = m.addorigination_percent.Add(d)
	} else {
		m.addorigination_percent = &d
	}
}

// AddedOriginationPercent returns the value that was added to the "origination_percent" field in this mutation.
func (m *DealMutation) AddedOriginationPercent() (r decimal.Decimal, exists bool) {
	v := m.addorigination_percent
	if v == nil {
		return
	}
	return *v, true
}

// ResetOriginationPercent resets all changes to the "origination_percent" field.
func (m *DealMutation) ResetOriginationPercent() {
	m.origination_percent = nil
	m.addorigination_percent = nil
}

// SetSitePercent sets the "site_percent" field.
func (m *DealMutation) SetSitePercent(d decimal.Decimal) {
	m.site_percent = &d
	m.addsite_percent = nil
}

// SitePercent returns the value of the "site_percent" field in the mutation.
func (m *DealMutation) SitePercent() (r decimal.Decimal, exists bool) {
	v := m.site_percent
	if v == nil {
		return
	}
	return *v, true
}

// OldSitePercent returns the old "site_percent" field's value of the Deal entity.
// If the Deal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DealMutation) OldSitePercent(ctx context.Context) (v decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSitePercent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSitePercent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSitePercent: %w", err)
	}
	return oldValue.SitePercent, nil
}

// AddSitePercent adds d to the "site_percent" field.
func (m *DealMutation) AddSitePercent(d decimal.Decimal) {
	if m.addsite_percent != nil {
		*m.addsite_percent = m.addsite_percent.Add(d)
	} else {
		m.addsite_percent = &d
	}
}

// AddedSitePercent returns the value that was added to the "site_percent" field in this mutation.
func (m *DealMutation) AddedSitePercent() (r decimal.Decimal, exists bool) {
	v := m.addsite_percent
	if v == nil {
		return
	}
	return *v, true
}

// ResetSitePercent resets all changes to the "site_percent" field.
func (m *DealMutation) ResetSitePercent() {
	m.site_percent = nil
	m.addsite_percent = nil
}

// SetDealPercent sets the "deal_percent" field.
func (m *DealMutation) SetDealPercent(d decimal.Decimal) {
	m.deal_percent = &d
	m.adddeal_percent = nil
}

// DealPercent returns the value of the "deal_percent" field in the mutation.
func (m *DealMutation) DealPercent() (r decimal.Decimal, exists bool) {
	v := m.deal_percent
	if v == nil {
		return
	}
	return *v, true
}

// OldDealPercent returns the old "deal_percent" field's value of the Deal entity.
// If the Deal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DealMutation) OldDealPercent(ctx context.Context) (v decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDealPercent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDealPercent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDealPercent: %w", err)
	}
	return oldValue.DealPercent, nil
}

// AddDealPercent adds d to the "deal_percent" field.
func (m *DealMutation) AddDealPercent(d decimal.Decimal) {
	if m.adddeal_percent != nil {
		*m.adddeal_percent = m.adddeal_percent.Add(d)
	} else {
		m.adddeal_percent = &d
	}
}

// AddedDealPercent returns the value that was added to the "deal_percent" field in this mutation.
func (m *DealMutation) AddedDealPercent() (r decimal.Decimal, exists bool) {
	v := m.adddeal_percent
	if v == nil {
		return
	}
	return *v, true
}

// ResetDealPercent resets all changes to the "deal_percent" field.
func (m *DealMutation) ResetDealPercent() {
	m.deal_percent = nil
	m.adddeal_percent = nil
}

// SetReferralFeePercent sets the "referral_fee_percent" field.
func (m *DealMutation) SetReferralFeePercent(d decimal.Decimal) {
	m.referral_fee_percent = &d
	m.addreferral_fee_percent = nil
}

// ReferralFeePercent returns the value of the "referral_fee_percent" field in the mutation.
func (m *DealMutation) ReferralFeePercent() (r decimal.Decimal, exists bool) {
	v := m.referral_fee_percent
	if v == nil {
		return
	}
	return *v, true
}

// OldReferralFeePercent returns the old "referral_fee_percent" field's value of the Deal entity.
// If the Deal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DealMutation) OldReferralFeePercent(ctx context.Context) (v decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReferralFeePercent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReferralFeePercent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReferralFeePercent: %w", err)
	}
	return oldValue.ReferralFeePercent, nil
}

// AddReferralFeePercent adds d to the "referral_fee_percent" field.
func (m *DealMutation) AddReferralFeePercent(d decimal.Decimal) {
	if m.addreferral_fee_percent != nil {
		*m.addreferral_fee_percent = m.addreferral_fee_percent.Add(d)
	} else {
		m.addreferral_fee_percent = &d
	}
}

// AddedReferralFeePercent returns the value that was added to the "referral_fee_percent" field in this mutation.
func (m *DealMutation) AddedReferralFeePercent() (r decimal.Decimal, exists bool) {
	v := m.addreferral_fee_percent
	if v == nil {
		return
	}
	return *v, true
}

// ResetReferralFeePercent resets all changes to the "referral_fee_percent" field.
func (m *DealMutation) ResetReferralFeePercent() {
	m.referral_fee_percent = nil
	m.addreferral_fee_percent = nil
}

// SetCommissionVersion sets the "commission_version" field.
func (m *DealMutation) SetCommissionVersion(i int) {
	m.commission_version = &i
	m.addcommission_version = nil
}

// CommissionVersion returns the value of the "commission_version" field in the mutation.
func (m *DealMutation) CommissionVersion() (r int, exists bool) {
	v := m.commission_version
	if v == nil {
		return
	}
	return *v, true
}

// OldCommissionVersion returns the old "commission_version" field's value of the Deal entity.
// If the Deal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DealMutation) OldCommissionVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommissionVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommissionVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommissionVersion: %w", err)
	}
	return oldValue.CommissionVersion, nil
}

// AddCommissionVersion adds i to the "commission_version" field.
func (m *DealMutation) AddCommissionVersion(i int) {
	if m.addcommission_version != nil {
		*m.addcommission_version += i
	} else {
		m.addcommission_version = &i
	}
}

// AddedCommissionVersion returns the value that was added to the "commission_version" field in this mutation.
func (m *DealMutation) AddedCommissionVersion() (r int, exists bool) {
	v := m.addcommission_version
	if v == nil {
		return
	}
	return *v, true
}

// ResetCommissionVersion resets all changes to the "commission_version" field.
func (m *DealMutation) ResetCommissionVersion() {
	m.commission_version = nil
	m.addcommission_version = nil
}

// SetClosedDate sets the "closed_date" field.
func (m *DealMutation) SetClosedDate(t time.Time) {
	m.closed_date = &t
}

// ClosedDate returns the value of the "closed_date" field in the mutation.
func (m *DealMutation) ClosedDate() (r time.Time, exists bool) {
	v := m.closed_date
	if v == nil {
		return
	}
	return *v, true
}

// OldClosedDate returns the old "closed_date" field's value of the Deal entity.
// If the Deal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DealMutation) OldClosedDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClosedDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClosedDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClosedDate: %w", err)
	}
	return oldValue.ClosedDate, nil
}

// ClearClosedDate clears the value of the "closed_date" field.
func (m *DealMutation) ClearClosedDate() {
	m.closed_date = nil
	m.clearedFields[deal.FieldClosedDate] = struct{}{}
}

// ClosedDateCleared returns if the "closed_date" field was cleared in this mutation.
func (m *DealMutation) ClosedDateCleared() bool {
	_, ok := m.clearedFields[deal.FieldClosedDate]
	return ok
}

// ResetClosedDate resets all changes to the "closed_date" field.
func (m *DealMutation) ResetClosedDate() {
	m.closed_date = nil
	delete(m.clearedFields, deal.FieldClosedDate)
}

// SetCustomerID sets the "customer" edge to the Customer entity by id.
func (m *DealMutation) SetCustomerID(id uuid.UUID) {
	m.customer = &id
}

// ClearCustomer clears the "customer" edge to the Customer entity.
func (m *DealMutation) ClearCustomer() {
	m.clearedcustomer = true
	m.clearedFields[deal.FieldClientID] = struct{}{}
}

// CustomerCleared reports if the "customer" edge to the Customer entity was cleared.
func (m *DealMutation) CustomerCleared() bool {
	return m.clearedcustomer
}

// CustomerID returns the "customer" edge ID in the mutation.
func (m *DealMutation) CustomerID() (id uuid.UUID, exists bool) {
	if m.customer != nil {
		return *m.customer, true
	}
	return
}

// CustomerIDs returns the "customer" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CustomerID instead. It exists only for internal usage by the builders.
func (m *DealMutation) CustomerIDs() (ids []uuid.UUID) {
	if id := m.customer; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCustomer resets all changes to the "customer" edge.
func (m *DealMutation) ResetCustomer() {
	m.customer = nil
	m.clearedcustomer = false
}

// AddPaymentIDs adds the "payments" edge to the Payment entity by ids.
func (m *DealMutation) AddPaymentIDs(ids ...uuid.UUID) {
	if m.payments == nil {
		m.payments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.payments[ids[i]] = struct{}{}
	}
}

// ClearPayments clears the "payments" edge to the Payment entity.
func (m *DealMutation) ClearPayments() {
	m.clearedpayments = true
}

// PaymentsCleared reports if the "payments" edge to the Payment entity was cleared.
func (m *DealMutation) PaymentsCleared() bool {
	return m.clearedpayments
}

// RemovePaymentIDs removes the "payments" edge to the Payment entity by IDs.
func (m *DealMutation) RemovePaymentIDs(ids ...uuid.UUID) {
	if m.removedpayments == nil {
		m.removedpayments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.payments, ids[i])
		m.removedpayments[ids[i]] = struct{}{}
	}
}

// RemovedPayments returns the removed IDs of the "payments" edge to the Payment entity.
func (m *DealMutation) RemovedPaymentsIDs() (ids []uuid.UUID) {
	for id := range m.removedpayments {
		ids = append(ids, id)
	}
	return
}

// PaymentsIDs returns the "payments" edge IDs in the mutation.
func (m *DealMutation) PaymentsIDs() (ids []uuid.UUID) {
	for id := range m.payments {
		ids = append(ids, id)
	}
	return
}

// ResetPayments resets all changes to the "payments" edge.
func (m *DealMutation) ResetPayments() {
	m.payments = nil
	m.clearedpayments = false
	m.removedpayments = nil
}

// AddBrokerInterestIDs adds the "broker_interests" edge to the DealBroker entity by ids.
func (m *DealMutation) AddBrokerInterestIDs(ids ...uuid.UUID) {
	if m.broker_interests == nil {
		m.broker_interests = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.broker_interests[ids[i]] = struct{}{}
	}
}

// ClearBrokerInterests clears the "broker_interests" edge to the DealBroker entity.
func (m *DealMutation) ClearBrokerInterests() {
	m.clearedbroker_interests = true
}

// BrokerInterestsCleared reports if the "broker_interests" edge to the DealBroker entity was cleared.
func (m *DealMutation) BrokerInterestsCleared() bool {
	return m.clearedbroker_interests
}

// RemoveBrokerInterestIDs removes the "broker_interests" edge to the DealBroker entity by IDs.
func (m *DealMutation) RemoveBrokerInterestIDs(ids ...uuid.UUID) {
	if m.removedbroker_interests == nil {
		m.removedbroker_interests = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.broker_interests, ids[i])
		m.removedbroker_interests[ids[i]] = struct{}{}
	}
}

// RemovedBrokerInterests returns the removed IDs of the "broker_interests" edge to the DealBroker entity.
func (m *DealMutation) RemovedBrokerInterestsIDs() (ids []uuid.UUID) {
	for id := range m.removedbroker_interests {
		ids = append(ids, id)
	}
	return
}

// BrokerInterestsIDs returns the "broker_interests" edge IDs in the mutation.
func (m *DealMutation) BrokerInterestsIDs() (ids []uuid.UUID) {
	for id := range m.broker_interests {
		ids = append(ids, id)
	}
	return
}

// ResetBrokerInterests resets all changes to the "broker_interests" edge.
func (m *DealMutation) ResetBrokerInterests() {
	m.broker_interests = nil
	m.clearedbroker_interests = false
	m.removedbroker_interests = nil
}

// Where appends a list predicates to the DealMutation builder.
func (m *DealMutation) Where(ps ...predicate.Deal) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DealMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DealMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Deal, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DealMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DealMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Deal).
func (m *DealMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DealMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.created_at != nil {
		fields = append(fields, deal.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, deal.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, deal.FieldDeletedAt)
	}
	if m.customer != nil {
		fields = append(fields, deal.FieldClientID)
	}
	if m.name != nil {
		fields = append(fields, deal.FieldName)
	}
	if m.property_address != nil {
		fields = append(fields, deal.FieldPropertyAddress)
	}
	if m.stage != nil {
		fields = append(fields, deal.FieldStage)
	}
	if m.fee != nil {
		fields = append(fields, deal.FieldFee)
	}
	if m.number_of_payments != nil {
		fields = append(fields, deal.FieldNumberOfPayments)
	}
	if m.agci != nil {
		fields = append(fields, deal.FieldAgci)
	}
	if m.origination_percent != nil {
		fields = append(fields, deal.FieldOriginationPercent)
	}
	if m.site_percent != nil {
		fields = append(fields, deal.FieldSitePercent)
	}
	if m.deal_percent != nil {
		fields = append(fields, deal.FieldDealPercent)
	}
	if m.referral_fee_percent != nil {
		fields = append(fields, deal.FieldReferralFeePercent)
	}
	if m.commission_version != nil {
		fields = append(fields, deal.FieldCommissionVersion)
	}
	if m.closed_date != nil {
		fields = append(fields, deal.FieldClosedDate)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DealMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case deal.FieldCreatedAt:
		return m.CreatedAt()
	case deal.FieldUpdatedAt:
		return m.UpdatedAt()
	case deal.FieldDeletedAt:
		return m.DeletedAt()
	case deal.FieldClientID:
		return m.ClientID()
	case deal.FieldName:
		return m.Name()
	case deal.FieldPropertyAddress:
		return m.PropertyAddress()
	case deal.FieldStage:
		return m.Stage()
	case deal.FieldFee:
		return m.Fee()
	case deal.FieldNumberOfPayments:
		return m.NumberOfPayments()
	case deal.FieldAgci:
		return m.Agci()
	case deal.FieldOriginationPercent:
		return m.OriginationPercent()
	case deal.FieldSitePercent:
		return m.SitePercent()
	case deal.FieldDealPercent:
		return m.DealPercent()
	case deal.FieldReferralFeePercent:
		return m.ReferralFeePercent()
	case deal.FieldCommissionVersion:
		return m.CommissionVersion()
	case deal.FieldClosedDate:
		return m.ClosedDate()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DealMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case deal.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case deal.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case deal.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case deal.FieldClientID:
		return m.OldClientID(ctx)
	case deal.FieldName:
		return m.OldName(ctx)
	case deal.FieldPropertyAddress:
		return m.OldPropertyAddress(ctx)
	case deal.FieldStage:
		return m.OldStage(ctx)
	case deal.FieldFee:
		return m.OldFee(ctx)
	case deal.FieldNumberOfPayments:
		return m.OldNumberOfPayments(ctx)
	case deal.FieldAgci:
		return m.OldAgci(ctx)
	case deal.FieldOriginationPercent:
		return m.OldOriginationPercent(ctx)
	case deal.FieldSitePercent:
		return m.OldSitePercent(ctx)
	case deal.FieldDealPercent:
		return m.OldDealPercent(ctx)
	case deal.FieldReferralFeePercent:
		return m.OldReferralFeePercent(ctx)
	case deal.FieldCommissionVersion:
		return m.OldCommissionVersion(ctx)
	case deal.FieldClosedDate:
		return m.OldClosedDate(ctx)
	}
	return nil, fmt.Errorf("unknown Deal field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DealMutation) SetField(name string, value ent.Value) error {
	switch name {
	case deal.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case deal.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case deal.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case deal.FieldClientID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientID(v)
		return nil
	case deal.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case deal.FieldPropertyAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPropertyAddress(v)
		return nil
	case deal.FieldStage:
		v, ok := value.(deal.Stage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStage(v)
		return nil
	case deal.FieldFee:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFee(v)
		return nil
	case deal.FieldNumberOfPayments:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNumberOfPayments(v)
		return nil
	case deal.FieldAgci:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgci(v)
		return nil
	case deal.FieldOriginationPercent:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginationPercent(v)
		return nil
	case deal.FieldSitePercent:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSitePercent(v)
		return nil
	case deal.FieldDealPercent:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDealPercent(v)
		return nil
	case deal.FieldReferralFeePercent:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReferralFeePercent(v)
		return nil
	case deal.FieldCommissionVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommissionVersion(v)
		return nil
	case deal.FieldClosedDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClosedDate(v)
		return nil
	}
	return fmt.Errorf("unknown Deal field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DealMutation) AddedFields() []string {
	var fields []string
	if m.addfee != nil {
		fields = append(fields, deal.FieldFee)
	}
	if m.addnumber_of_payments != nil {
		fields = append(fields, deal.FieldNumberOfPayments)
	}
	if m.addagci != nil {
		fields = append(fields, deal.FieldAgci)
	}
	if m.addorigination_percent != nil {
		fields = append(fields, deal.FieldOriginationPercent)
	}
	if m.addsite_percent != nil {
		fields = append(fields, deal.FieldSitePercent)
	}
	if m.adddeal_percent != nil {
		fields = append(fields, deal.FieldDealPercent)
	}
	if m.addreferral_fee_percent != nil {
		fields = append(fields, deal.FieldReferralFeePercent)
	}
	if m.addcommission_version != nil {
		fields = append(fields, deal.FieldCommissionVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DealMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case deal.FieldFee:
		return m.AddedFee()
	case deal.FieldNumberOfPayments:
		return m.AddedNumberOfPayments()
	case deal.FieldAgci:
		return m.AddedAgci()
	case deal.FieldOriginationPercent:
		return m.AddedOriginationPercent()
	case deal.FieldSitePercent:
		return m.AddedSitePercent()
	case deal.FieldDealPercent:
		return m.AddedDealPercent()
	case deal.FieldReferralFeePercent:
		return m.AddedReferralFeePercent()
	case deal.FieldCommissionVersion:
		return m.AddedCommissionVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DealMutation) AddField(name string, value ent.Value) error {
	switch name {
	case deal.FieldFee:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFee(v)
		return nil
	case deal.FieldNumberOfPayments:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNumberOfPayments(v)
		return nil
	case deal.FieldAgci:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAgci(v)
		return nil
	case deal.FieldOriginationPercent:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOriginationPercent(v)
		return nil
	case deal.FieldSitePercent:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSitePercent(v)
		return nil
	case deal.FieldDealPercent:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDealPercent(v)
		return nil
	case deal.FieldReferralFeePercent:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReferralFeePercent(v)
		return nil
	case deal.FieldCommissionVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCommissionVersion(v)
		return nil
	}
	return fmt.Errorf("unknown Deal numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DealMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(deal.FieldDeletedAt) {
		fields = append(fields, deal.FieldDeletedAt)
	}
	if m.FieldCleared(deal.FieldPropertyAddress) {
		fields = append(fields, deal.FieldPropertyAddress)
	}
	if m.FieldCleared(deal.FieldClosedDate) {
		fields = append(fields, deal.FieldClosedDate)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DealMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DealMutation) ClearField(name string) error {
	switch name {
	case deal.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	case deal.FieldPropertyAddress:
		m.ClearPropertyAddress()
		return nil
	case deal.FieldClosedDate:
		m.ClearClosedDate()
		return nil
	}
	return fmt.Errorf("unknown Deal nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DealMutation) ResetField(name string) error {
	switch name {
	case deal.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case deal.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case deal.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case deal.FieldClientID:
		m.ResetClientID()
		return nil
	case deal.FieldName:
		m.ResetName()
		return nil
	case deal.FieldPropertyAddress:
		m.ResetPropertyAddress()
		return nil
	case deal.FieldStage:
		m.ResetStage()
		return nil
	case deal.FieldFee:
		m.ResetFee()
		return nil
	case deal.FieldNumberOfPayments:
		m.ResetNumberOfPayments()
		return nil
	case deal.FieldAgci:
		m.ResetAgci()
		return nil
	case deal.FieldOriginationPercent:
		m.ResetOriginationPercent()
		return nil
	case deal.FieldSitePercent:
		m.ResetSitePercent()
		return nil
	case deal.FieldDealPercent:
		m.ResetDealPercent()
		return nil
	case deal.FieldReferralFeePercent:
		m.ResetReferralFeePercent()
		return nil
	case deal.FieldCommissionVersion:
		m.ResetCommissionVersion()
		return nil
	case deal.FieldClosedDate:
		m.ResetClosedDate()
		return nil
	}
	return fmt.Errorf("unknown Deal field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DealMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.customer != nil {
		edges = append(edges, deal.EdgeCustomer)
	}
	if m.payments != nil {
		edges = append(edges, deal.EdgePayments)
	}
	if m.broker_interests != nil {
		edges = append(edges, deal.EdgeBrokerInterests)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DealMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case deal.EdgeCustomer:
		if id := m.customer; id != nil {
			return []ent.Value{*id}
		}
	case deal.EdgePayments:
		ids := make([]ent.Value, 0, len(m.payments))
		for id := range m.payments {
			ids = append(ids, id)
		}
		return ids
	case deal.EdgeBrokerInterests:
		ids := make([]ent.Value, 0, len(m.broker_interests))
		for id := range m.broker_interests {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DealMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedpayments != nil {
		edges = append(edges, deal.EdgePayments)
	}
	if m.removedbroker_interests != nil {
		edges = append(edges, deal.EdgeBrokerInterests)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DealMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case deal.EdgePayments:
		ids := make([]ent.Value, 0, len(m.removedpayments))
		for id := range m.removedpayments {
			ids = append(ids, id)
		}
		return ids
	case deal.EdgeBrokerInterests:
		ids := make([]ent.Value, 0, len(m.removedbroker_interests))
		for id := range m.removedbroker_interests {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DealMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedcustomer {
		edges = append(edges, deal.EdgeCustomer)
	}
	if m.clearedpayments {
		edges = append(edges, deal.EdgePayments)
	}
	if m.clearedbroker_interests {
		edges = append(edges, deal.EdgeBrokerInterests)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DealMutation) EdgeCleared(name string) bool {
	switch name {
	case deal.EdgeCustomer:
		return m.clearedcustomer
	case deal.EdgePayments:
		return m.clearedpayments
	case deal.EdgeBrokerInterests:
		return m.clearedbroker_interests
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DealMutation) ClearEdge(name string) error {
	switch name {
	case deal.EdgeCustomer:
		m.ClearCustomer()
		return nil
	}
	return fmt.Errorf("unknown Deal unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DealMutation) ResetEdge(name string) error {
	switch name {
	case deal.EdgeCustomer:
		m.ResetCustomer()
		return nil
	case deal.EdgePayments:
		m.ResetPayments()
		return nil
	case deal.EdgeBrokerInterests:
		m.ResetBrokerInterests()
		return nil
	}
	return fmt.Errorf("unknown Deal edge %s", name)
}

// DealBrokerMutation represents an operation that mutates the DealBroker nodes in the graph.
type DealBrokerMutation struct {
	config
	op                     Op
	typ                    string
	id                     *uuid.UUID
	created_at             *time.Time
	updated_at             *time.Time
	origination_percent    *decimal.Decimal
	addorigination_percent *decimal.Decimal
	site_percent           *decimal.Decimal
	addsite_percent        *decimal.Decimal
	deal_percent           *decimal.Decimal
	adddeal_percent        *decimal.Decimal
	clearedFields          map[string]struct{}
	deal                   *uuid.UUID
	cleareddeal            bool
	broker                 *uuid.UUID
	clearedbroker          bool
	done                   bool
	oldValue               func(context.Context) (*DealBroker, error)
	predicates             []predicate.DealBroker
}

var _ ent.Mutation = (*DealBrokerMutation)(nil)

// dealbrokerOption allows management of the mutation configuration using functional options.
type dealbrokerOption func(*DealBrokerMutation)

// newDealBrokerMutation creates new mutation for the DealBroker entity.
func newDealBrokerMutation(c config, op Op, opts ...dealbrokerOption) *DealBrokerMutation {
	m := &DealBrokerMutation{
		config:        c,
		op:            op,
		typ:           TypeDealBroker,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDealBrokerID sets the ID field of the mutation.
func withDealBrokerID(id uuid.UUID) dealbrokerOption {
	return func(m *DealBrokerMutation) {
		var (
			err   error
			once  sync.Once
			value *DealBroker
		)
		m.oldValue = func(ctx context.Context) (*DealBroker, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DealBroker.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDealBroker sets the old DealBroker of the mutation.
func withDealBroker(node *DealBroker) dealbrokerOption {
	return func(m *DealBrokerMutation) {
		m.oldValue = func(context.Context) (*DealBroker, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DealBrokerMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DealBrokerMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DealBroker entities.
func (m *DealBrokerMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DealBrokerMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DealBrokerMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DealBroker.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *DealBrokerMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DealBrokerMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DealBroker entity.
// If the DealBroker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DealBrokerMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DealBrokerMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DealBrokerMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DealBrokerMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the DealBroker entity.
// If the DealBroker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DealBrokerMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DealBrokerMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDealID sets the "deal_id" field.
func (m *DealBrokerMutation) SetDealID(u uuid.UUID) {
	m.deal = &u
}

// DealID returns the value of the "deal_id" field in the mutation.
func (m *DealBrokerMutation) DealID() (r uuid.UUID, exists bool) {
	v := m.deal
	if v == nil {
		return
	}
	return *v, true
}

// OldDealID returns the old "deal_id" field's value of the DealBroker entity.
// If the DealBroker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DealBrokerMutation) OldDealID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDealID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDealID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDealID: %w", err)
	}
	return oldValue.DealID, nil
}

// ResetDealID resets all changes to the "deal_id" field.
func (m *DealBrokerMutation) ResetDealID() {
	m.deal = nil
}

// SetBrokerID sets the "broker_id" field.
func (m *DealBrokerMutation) SetBrokerID(u uuid.UUID) {
	m.broker = &u
}

// BrokerID returns the value of the "broker_id" field in the mutation.
func (m *DealBrokerMutation) BrokerID() (r uuid.UUID, exists bool) {
	v := m.broker
	if v == nil {
		return
	}
	return *v, true
}

// OldBrokerID returns the old "broker_id" field's value of the DealBroker entity.
// If the DealBroker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DealBrokerMutation) OldBrokerID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBrokerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBrokerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBrokerID: %w", err)
	}
	return oldValue.BrokerID, nil
}

// ResetBrokerID resets all changes to the "broker_id" field.
func (m *DealBrokerMutation) ResetBrokerID() {
	m.broker = nil
}

// SetOriginationPercent sets the "origination_percent" field.
func (m *DealBrokerMutation) SetOriginationPercent(d decimal.Decimal) {
	m.origination_percent = &d
	m.addorigination_percent = nil
}

// OriginationPercent returns the value of the "origination_percent" field in the mutation.
func (m *DealBrokerMutation) OriginationPercent() (r decimal.Decimal, exists bool) {
	v := m.origination_percent
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginationPercent returns the old "origination_percent" field's value of the DealBroker entity.
// If the DealBroker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DealBrokerMutation) OldOriginationPercent(ctx context.Context) (v decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginationPercent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginationPercent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginationPercent: %w", err)
	}
	return oldValue.OriginationPercent, nil
}

// AddOriginationPercent adds d to the "origination_percent" field.
func (m *DealBrokerMutation) AddOriginationPercent(d decimal.Decimal) {
	if m.addorigination_percent != nil {
		*m.addorigination_percent = m.addorigination_percent.Add(d)
	} else {
		m.addorigination_percent = &d
	}
}

// AddedOriginationPercent returns the value that was added to the "origination_percent" field in this mutation.
func (m *DealBrokerMutation) AddedOriginationPercent() (r decimal.Decimal, exists bool) {
	v := m.addorigination_percent
	if v == nil {
		return
	}
	return *v, true
}

// ResetOriginationPercent resets all changes to the "origination_percent" field.
func (m *DealBrokerMutation) ResetOriginationPercent() {
	m.origination_percent = nil
	m.addorigination_percent = nil
}

// SetSitePercent sets the "site_percent" field.
func (m *DealBrokerMutation) SetSitePercent(d decimal.Decimal) {
	m.site_percent = &d
	m.addsite_percent = nil
}

// SitePercent returns the value of the "site_percent" field in the mutation.
func (m *DealBrokerMutation) SitePercent() (r decimal.Decimal, exists bool) {
	v := m.site_percent
	if v == nil {
		return
	}
	return *v, true
}

// OldSitePercent returns the old "site_percent" field's value of the DealBroker entity.
// If the DealBroker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DealBrokerMutation) OldSitePercent(ctx context.Context) (v decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSitePercent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSitePercent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSitePercent: %w", err)
	}
	return oldValue.SitePercent, nil
}

// AddSitePercent adds d to the "site_percent" field.
func (m *DealBrokerMutation) AddSitePercent(d decimal.Decimal) {
	if m.addsite_percent != nil {
		*m.addsite_percent = m.addsite_percent.Add(d)
	} else {
		m.addsite_percent = &d
	}
}

// AddedSitePercent returns the value that was added to the "site_percent" field in this mutation.
func (m *DealBrokerMutation) AddedSitePercent() (r decimal.Decimal, exists bool) {
	v := m.addsite_percent
	if v == nil {
		return
	}
	return *v, true
}

// ResetSitePercent resets all changes to the "site_percent" field.
func (m *DealBrokerMutation) ResetSitePercent() {
	m.site_percent = nil
	m.addsite_percent = nil
}

// SetDealPercent sets the "deal_percent" field.
func (m *DealBrokerMutation) SetDealPercent(d decimal.Decimal) {
	m.deal_percent = &d
	m.adddeal_percent = nil
}

// DealPercent returns the value of the "deal_percent" field in the mutation.
func (m *DealBrokerMutation) DealPercent() (r decimal.Decimal, exists bool) {
	v := m.deal_percent
	if v == nil {
		return
	}
	return *v, true
}

// OldDealPercent returns the old "deal_percent" field's value of the DealBroker entity.
// If the DealBroker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DealBrokerMutation) OldDealPercent(ctx context.Context) (v decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDealPercent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDealPercent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDealPercent: %w", err)
	}
	return oldValue.DealPercent, nil
}

// AddDealPercent adds d to the "deal_percent" field.
func (m *DealBrokerMutation) AddDealPercent(d decimal.Decimal) {
	if m.adddeal_percent != nil {
		*m.adddeal_percent = m.adddeal_percent.Add(d)
	} else {
		m.adddeal_percent = &d
	}
}

// AddedDealPercent returns the value that was added to the "deal_percent" field in this mutation.
func (m *DealBrokerMutation) AddedDealPercent() (r decimal.Decimal, exists bool) {
	v := m.adddeal_percent
	if v == nil {
		return
	}
	return *v, true
}

// ResetDealPercent resets all changes to the "deal_percent" field.
func (m *DealBrokerMutation) ResetDealPercent() {
	m.deal_percent = nil
	m.adddeal_percent = nil
}

// ClearDeal clears the "deal" edge to the Deal entity.
func (m *DealBrokerMutation) ClearDeal() {
	m.cleareddeal = true
	m.clearedFields[dealbroker.FieldDealID] = struct{}{}
}

// DealCleared reports if the "deal" edge to the Deal entity was cleared.
func (m *DealBrokerMutation) DealCleared() bool {
	return m.cleareddeal
}

// DealIDs returns the "deal" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DealID instead. It exists only for internal usage by the builders.
func (m *DealBrokerMutation) DealIDs() (ids []uuid.UUID) {
	if id := m.deal; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDeal resets all changes to the "deal" edge.
func (m *DealBrokerMutation) ResetDeal() {
	m.deal = nil
	m.cleareddeal = false
}

// ClearBroker clears the "broker" edge to the Broker entity.
func (m *DealBrokerMutation) ClearBroker() {
	m.clearedbroker = true
	m.clearedFields[dealbroker.FieldBrokerID] = struct{}{}
}

// BrokerCleared reports if the "broker" edge to the Broker entity was cleared.
func (m *DealBrokerMutation) BrokerCleared() bool {
	return m.clearedbroker
}

// BrokerIDs returns the "broker" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BrokerID instead. It exists only for internal usage by the builders.
func (m *DealBrokerMutation) BrokerIDs() (ids []uuid.UUID) {
	if id := m.broker; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBroker resets all changes to the "broker" edge.
func (m *DealBrokerMutation) ResetBroker() {
	m.broker = nil
	m.clearedbroker = false
}

// Where appends a list predicates to the DealBrokerMutation builder.
func (m *DealBrokerMutation) Where(ps ...predicate.DealBroker) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DealBrokerMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DealBrokerMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DealBroker, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DealBrokerMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DealBrokerMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DealBroker).
func (m *DealBrokerMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DealBrokerMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, dealbroker.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, dealbroker.FieldUpdatedAt)
	}
	if m.deal != nil {
		fields = append(fields, dealbroker.FieldDealID)
	}
	if m.broker != nil {
		fields = append(fields, dealbroker.FieldBrokerID)
	}
	if m.origination_percent != nil {
		fields = append(fields, dealbroker.FieldOriginationPercent)
	}
	if m.site_percent != nil {
		fields = append(fields, dealbroker.FieldSitePercent)
	}
	if m.deal_percent != nil {
		fields = append(fields, dealbroker.FieldDealPercent)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DealBrokerMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case dealbroker.FieldCreatedAt:
		return m.CreatedAt()
	case dealbroker.FieldUpdatedAt:
		return m.UpdatedAt()
	case dealbroker.FieldDealID:
		return m.DealID()
	case dealbroker.FieldBrokerID:
		return m.BrokerID()
	case dealbroker.FieldOriginationPercent:
		return m.OriginationPercent()
	case dealbroker.FieldSitePercent:
		return m.SitePercent()
	case dealbroker.FieldDealPercent:
		return m.DealPercent()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DealBrokerMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case dealbroker.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case dealbroker.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case dealbroker.FieldDealID:
		return m.OldDealID(ctx)
	case dealbroker.FieldBrokerID:
		return m.OldBrokerID(ctx)
	case dealbroker.FieldOriginationPercent:
		return m.OldOriginationPercent(ctx)
	case dealbroker.FieldSitePercent:
		return m.OldSitePercent(ctx)
	case dealbroker.FieldDealPercent:
		return m.OldDealPercent(ctx)
	}
	return nil, fmt.Errorf("unknown DealBroker field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DealBrokerMutation) SetField(name string, value ent.Value) error {
	switch name {
	case dealbroker.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case dealbroker.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case dealbroker.FieldDealID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDealID(v)
		return nil
	case dealbroker.FieldBrokerID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBrokerID(v)
		return nil
	case dealbroker.FieldOriginationPercent:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginationPercent(v)
		return nil
	case dealbroker.FieldSitePercent:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSitePercent(v)
		return nil
	case dealbroker.FieldDealPercent:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDealPercent(v)
		return nil
	}
	return fmt.Errorf("unknown DealBroker field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DealBrokerMutation) AddedFields() []string {
	var fields []string
	if m.addorigination_percent != nil {
		fields = append(fields, dealbroker.FieldOriginationPercent)
	}
	if m.addsite_percent != nil {
		fields = append(fields, dealbroker.FieldSitePercent)
	}
	if m.adddeal_percent != nil {
		fields = append(fields, dealbroker.FieldDealPercent)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DealBrokerMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case dealbroker.FieldOriginationPercent:
		return m.AddedOriginationPercent()
	case dealbroker.FieldSitePercent:
		return m.AddedSitePercent()
	case dealbroker.FieldDealPercent:
		return m.AddedDealPercent()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DealBrokerMutation) AddField(name string, value ent.Value) error {
	switch name {
	case dealbroker.FieldOriginationPercent:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOriginationPercent(v)
		return nil
	case dealbroker.FieldSitePercent:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSitePercent(v)
		return nil
	case dealbroker.FieldDealPercent:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDealPercent(v)
		return nil
	}
	return fmt.Errorf("unknown DealBroker numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DealBrokerMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DealBrokerMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DealBrokerMutation) ClearField(name string) error {
	return fmt.Errorf("unknown DealBroker nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DealBrokerMutation) ResetField(name string) error {
	switch name {
	case dealbroker.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case dealbroker.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case dealbroker.FieldDealID:
		m.ResetDealID()
		return nil
	case dealbroker.FieldBrokerID:
		m.ResetBrokerID()
		return nil
	case dealbroker.FieldOriginationPercent:
		m.ResetOriginationPercent()
		return nil
	case dealbroker.FieldSitePercent:
		m.ResetSitePercent()
		return nil
	case dealbroker.FieldDealPercent:
		m.ResetDealPercent()
		return nil
	}
	return fmt.Errorf("unknown DealBroker field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DealBrokerMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.deal != nil {
		edges = append(edges, dealbroker.EdgeDeal)
	}
	if m.broker != nil {
		edges = append(edges, dealbroker.EdgeBroker)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DealBrokerMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case dealbroker.EdgeDeal:
		if id := m.deal; id != nil {
			return []ent.Value{*id}
		}
	case dealbroker.EdgeBroker:
		if id := m.broker; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DealBrokerMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DealBrokerMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DealBrokerMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareddeal {
		edges = append(edges, dealbroker.EdgeDeal)
	}
	if m.clearedbroker {
		edges = append(edges, dealbroker.EdgeBroker)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DealBrokerMutation) EdgeCleared(name string) bool {
	switch name {
	case dealbroker.EdgeDeal:
		return m.cleareddeal
	case dealbroker.EdgeBroker:
		return m.clearedbroker
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DealBrokerMutation) ClearEdge(name string) error {
	switch name {
	case dealbroker.EdgeDeal:
		m.ClearDeal()
		return nil
	case dealbroker.EdgeBroker:
		m.ClearBroker()
		return nil
	}
	return fmt.Errorf("unknown DealBroker unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DealBrokerMutation) ResetEdge(name string) error {
	switch name {
	case dealbroker.EdgeDeal:
		m.ResetDeal()
		return nil
	case dealbroker.EdgeBroker:
		m.ResetBroker()
		return nil
	}
	return fmt.Errorf("unknown DealBroker edge %s", name)
}

// NotificationMutation represents an operation that mutates the Notification nodes in the graph.
type NotificationMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	updated_at    *time.Time
	user_id       *uuid.UUID
	_type         *string
	title         *string
	body          *string
	data          *map[string]interface{}
	is_read       *bool
	read_at       *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Notification, error)
	predicates    []predicate.Notification
}

var _ ent.Mutation = (*NotificationMutation)(nil)

// notificationOption allows management of the mutation configuration using functional options.
type notificationOption func(*NotificationMutation)

// newNotificationMutation creates new mutation for the Notification entity.
func newNotificationMutation(c config, op Op, opts ...notificationOption) *NotificationMutation {
	m := &NotificationMutation{
		config:        c,
		op:            op,
		typ:           TypeNotification,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withNotificationID sets the ID field of the mutation.
func withNotificationID(id uuid.UUID) notificationOption {
	return func(m *NotificationMutation) {
		var (
			err   error
			once  sync.Once
			value *Notification
		)
		m.oldValue = func(ctx context.Context) (*Notification, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Notification.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withNotification sets the old Notification of the mutation.
func withNotification(node *Notification) notificationOption {
	return func(m *NotificationMutation) {
		m.oldValue = func(context.Context) (*Notification, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m NotificationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m NotificationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Notification entities.
func (m *NotificationMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *NotificationMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *NotificationMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Notification.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *NotificationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *NotificationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *NotificationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *NotificationMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *NotificationMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *NotificationMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetUserID sets the "user_id" field.
func (m *NotificationMutation) SetUserID(u uuid.UUID) {
	m.user_id = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *NotificationMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *NotificationMutation) ResetUserID() {
	m.user_id = nil
}

// SetType sets the "type" field.
func (m *NotificationMutation) SetType(s string) {
	m._type = &s
}

// GetType returns the value of the "type" field in the mutation.
func (m *NotificationMutation) GetType() (r string, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *NotificationMutation) ResetType() {
	m._type = nil
}

// SetTitle sets the "title" field.
func (m *NotificationMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *NotificationMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *NotificationMutation) ResetTitle() {
	m.title = nil
}

// SetBody sets the "body" field.
func (m *NotificationMutation) SetBody(s string) {
	m.body = &s
}

// Body returns the value of the "body" field in the mutation.
func (m *NotificationMutation) Body() (r string, exists bool) {
	v := m.body
	if v == nil {
		return
	}
	return *v, true
}

// OldBody returns the old "body" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldBody(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBody: %w", err)
	}
	return oldValue.Body, nil
}

// ClearBody clears the value of the "body" field.
func (m *NotificationMutation) ClearBody() {
	m.body = nil
	m.clearedFields[notification.FieldBody] = struct{}{}
}

// BodyCleared returns if the "body" field was cleared in this mutation.
func (m *NotificationMutation) BodyCleared() bool {
	_, ok := m.clearedFields[notification.FieldBody]
	return ok
}

// ResetBody resets all changes to the "body" field.
func (m *NotificationMutation) ResetBody() {
	m.body = nil
	delete(m.clearedFields, notification.FieldBody)
}

// SetData sets the "data" field.
func (m *NotificationMutation) SetData(value map[string]interface{}) {
	m.data = &value
}

// Data returns the value of the "data" field in the mutation.
func (m *NotificationMutation) Data() (r map[string]interface{}, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// ClearData clears the value of the "data" field.
func (m *NotificationMutation) ClearData() {
	m.data = nil
	m.clearedFields[notification.FieldData] = struct{}{}
}

// DataCleared returns if the "data" field was cleared in this mutation.
func (m *NotificationMutation) DataCleared() bool {
	_, ok := m.clearedFields[notification.FieldData]
	return ok
}

// ResetData resets all changes to the "data" field.
func (m *NotificationMutation) ResetData() {
	m.data = nil
	delete(m.clearedFields, notification.FieldData)
}

// SetIsRead sets the "is_read" field.
func (m *NotificationMutation) SetIsRead(b bool) {
	m.is_read = &b
}

// IsRead returns the value of the "is_read" field in the mutation.
func (m *NotificationMutation) IsRead() (r bool, exists bool) {
	v := m.is_read
	if v == nil {
		return
	}
	return *v, true
}

// OldIsRead returns the old "is_read" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldIsRead(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsRead is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsRead requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsRead: %w", err)
	}
	return oldValue.IsRead, nil
}

// ResetIsRead resets all changes to the "is_read" field.
func (m *NotificationMutation) ResetIsRead() {
	m.is_read = nil
}

// SetReadAt sets the "read_at" field.
func (m *NotificationMutation) SetReadAt(t time.Time) {
	m.read_at = &t
}

// ReadAt returns the value of the "read_at" field in the mutation.
func (m *NotificationMutation) ReadAt() (r time.Time, exists bool) {
	v := m.read_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReadAt returns the old "read_at" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldReadAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReadAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReadAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReadAt: %w", err)
	}
	return oldValue.ReadAt, nil
}

// ClearReadAt clears the value of the "read_at" field.
func (m *NotificationMutation) ClearReadAt() {
	m.read_at = nil
	m.clearedFields[notification.FieldReadAt] = struct{}{}
}

// ReadAtCleared returns if the "read_at" field was cleared in this mutation.
func (m *NotificationMutation) ReadAtCleared() bool {
	_, ok := m.clearedFields[notification.FieldReadAt]
	return ok
}

// ResetReadAt resets all changes to the "read_at" field.
func (m *NotificationMutation) ResetReadAt() {
	m.read_at = nil
	delete(m.clearedFields, notification.FieldReadAt)
}

// Where appends a list predicates to the NotificationMutation builder.
func (m *NotificationMutation) Where(ps ...predicate.Notification) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the NotificationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *NotificationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Notification, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *NotificationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *NotificationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Notification).
func (m *NotificationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *NotificationMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.created_at != nil {
		fields = append(fields, notification.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, notification.FieldUpdatedAt)
	}
	if m.user_id != nil {
		fields = append(fields, notification.FieldUserID)
	}
	if m._type != nil {
		fields = append(fields, notification.FieldType)
	}
	if m.title != nil {
		fields = append(fields, notification.FieldTitle)
	}
	if m.body != nil {
		fields = append(fields, notification.FieldBody)
	}
	if m.data != nil {
		fields = append(fields, notification.FieldData)
	}
	if m.is_read != nil {
		fields = append(fields, notification.FieldIsRead)
	}
	if m.read_at != nil {
		fields = append(fields, notification.FieldReadAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *NotificationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case notification.FieldCreatedAt:
		return m.CreatedAt()
	case notification.FieldUpdatedAt:
		return m.UpdatedAt()
	case notification.FieldUserID:
		return m.UserID()
	case notification.FieldType:
		return m.GetType()
	case notification.FieldTitle:
		return m.Title()
	case notification.FieldBody:
		return m.Body()
	case notification.FieldData:
		return m.Data()
	case notification.FieldIsRead:
		return m.IsRead()
	case notification.FieldReadAt:
		return m.ReadAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *NotificationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case notification.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case notification.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case notification.FieldUserID:
		return m.OldUserID(ctx)
	case notification.FieldType:
		return m.OldType(ctx)
	case notification.FieldTitle:
		return m.OldTitle(ctx)
	case notification.FieldBody:
		return m.OldBody(ctx)
	case notification.FieldData:
		return m.OldData(ctx)
	case notification.FieldIsRead:
		return m.OldIsRead(ctx)
	case notification.FieldReadAt:
		return m.OldReadAt(ctx)
	}
	return nil, fmt.Errorf("unknown Notification field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NotificationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case notification.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case notification.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case notification.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case notification.FieldType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case notification.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case notification.FieldBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBody(v)
		return nil
	case notification.FieldData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	case notification.FieldIsRead:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsRead(v)
		return nil
	case notification.FieldReadAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReadAt(v)
		return nil
	}
	return fmt.Errorf("unknown Notification field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *NotificationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *NotificationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NotificationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Notification numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *NotificationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(notification.FieldBody) {
		fields = append(fields, notification.FieldBody)
	}
	if m.FieldCleared(notification.FieldData) {
		fields = append(fields, notification.FieldData)
	}
	if m.FieldCleared(notification.FieldReadAt) {
		fields = append(fields, notification.FieldReadAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *NotificationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *NotificationMutation) ClearField(name string) error {
	switch name {
	case notification.FieldBody:
		m.ClearBody()
		return nil
	case notification.FieldData:
		m.ClearData()
		return nil
	case notification.FieldReadAt:
		m.ClearReadAt()
		return nil
	}
	return fmt.Errorf("unknown Notification nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *NotificationMutation) ResetField(name string) error {
	switch name {
	case notification.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case notification.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case notification.FieldUserID:
		m.ResetUserID()
		return nil
	case notification.FieldType:
		m.ResetType()
		return nil
	case notification.FieldTitle:
		m.ResetTitle()
		return nil
	case notification.FieldBody:
		m.ResetBody()
		return nil
	case notification.FieldData:
		m.ResetData()
		return nil
	case notification.FieldIsRead:
		m.ResetIsRead()
		return nil
	case notification.FieldReadAt:
		m.ResetReadAt()
		return nil
	}
	return fmt.Errorf("unknown Notification field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *NotificationMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *NotificationMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *NotificationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *NotificationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *NotificationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *NotificationMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *NotificationMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Notification unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *NotificationMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Notification edge %s", name)
}

// PaymentMutation represents an operation that mutates the Payment nodes in the graph.
type PaymentMutation struct {
	config
	op                               Op
	typ                              string
	id                               *uuid.UUID
	created_at                       *time.Time
	updated_at                       *time.Time
	deleted_at                       *time.Time
	sequence                         *int
	addsequence                      *int
	payment_amount                   *decimal.Decimal
	addpayment_amount                *decimal.Decimal
	amount_override                  *bool
	agci                             *decimal.Decimal
	addagci                          *decimal.Decimal
	referral_fee_usd                 *decimal.Decimal
	addreferral_fee_usd              *decimal.Decimal
	referral_fee_percent_override    *decimal.Decimal
	addreferral_fee_percent_override *decimal.Decimal
	payment_date                     *time.Time
	payment_received                 *bool
	received_date                    *time.Time
	is_active                        *bool
	commission_version               *int
	addcommission_version            *int
	invoice_number                   *string
	clearedFields                    map[string]struct{}
	deal                             *uuid.UUID
	cleareddeal                      bool
	splits                           map[uuid.UUID]struct{}
	removedsplits                    map[uuid.UUID]struct{}
	clearedsplits                    bool
	done                             bool
	oldValue                         func(context.Context) (*Payment, error)
	predicates                       []predicate.Payment
}

var _ ent.Mutation = (*PaymentMutation)(nil)

// paymentOption allows management of the mutation configuration using functional options.
type paymentOption func(*PaymentMutation)

// newPaymentMutation creates new mutation for the Payment entity.
func newPaymentMutation(c config, op Op, opts ...paymentOption) *PaymentMutation {
	m := &PaymentMutation{
		config:        c,
		op:            op,
		typ:           TypePayment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPaymentID sets the ID field of the mutation.
func withPaymentID(id uuid.UUID) paymentOption {
	return func(m *PaymentMutation) {
		var (
			err   error
			once  sync.Once
			value *Payment
		)
		m.oldValue = func(ctx context.Context) (*Payment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Payment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPayment sets the old Payment of the mutation.
func withPayment(node *Payment) paymentOption {
	return func(m *PaymentMutation) {
		m.oldValue = func(context.Context) (*Payment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PaymentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PaymentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Payment entities.
func (m *PaymentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PaymentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PaymentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Payment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *PaymentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PaymentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Payment entity.
// If the Payment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PaymentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PaymentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PaymentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Payment entity.
// If the Payment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PaymentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *PaymentMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *PaymentMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Payment entity.
// If the Payment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *PaymentMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[payment.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *PaymentMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[payment.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *PaymentMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, payment.FieldDeletedAt)
}

// SetDealID sets the "deal_id" field.
func (m *PaymentMutation) SetDealID(u uuid.UUID) {
	m.deal = &u
}

// DealID returns the value of the "deal_id" field in the mutation.
func (m *PaymentMutation) DealID() (r uuid.UUID, exists bool) {
	v := m.deal
	if v == nil {
		return
	}
	return *v, true
}

// OldDealID returns the old "deal_id" field's value of the Payment entity.
// If the Payment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentMutation) OldDealID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDealID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDealID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDealID: %w", err)
	}
	return oldValue.DealID, nil
}

// ResetDealID resets all changes to the "deal_id" field.
func (m *PaymentMutation) ResetDealID() {
	m.deal = nil
}

// SetSequence sets the "sequence" field.
func (m *PaymentMutation) SetSequence(i int) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *PaymentMutation) Sequence() (r int, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the Payment entity.
// If the Payment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentMutation) OldSequence(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *PaymentMutation) AddSequence(i int) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *PaymentMutation) AddedSequence() (r int, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *PaymentMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetPaymentAmount sets the "payment_amount" field.
func (m *PaymentMutation) SetPaymentAmount(d decimal.Decimal) {
	m.payment_amount = &d
	m.addpayment_amount = nil
}

// PaymentAmount returns the value of the "payment_amount" field in the mutation.
func (m *PaymentMutation) PaymentAmount() (r decimal.Decimal, exists bool) {
	v := m.payment_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldPaymentAmount returns the old "payment_amount" field's value of the Payment entity.
// If the Payment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentMutation) OldPaymentAmount(ctx context.Context) (v decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaymentAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaymentAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaymentAmount: %w", err)
	}
	return oldValue.PaymentAmount, nil
}

// AddPaymentAmount adds d to the "payment_amount" field.
func (m *PaymentMutation) AddPaymentAmount(d decimal.Decimal) {
	if m.addpayment_amount != nil {
		*m.addpayment_amount = m.addpayment_amount.Add(d)
	} else {
		m.addpayment_amount = &d
	}
}

// AddedPaymentAmount returns the value that was added to the "payment_amount" field in this mutation.
func (m *PaymentMutation) AddedPaymentAmount() (r decimal.Decimal, exists bool) {
	v := m.addpayment_amount
	if v == nil {
		return
	}
	return *v, true
}

// ResetPaymentAmount resets all changes to the "payment_amount" field.
func (m *PaymentMutation) ResetPaymentAmount() {
	m.payment_amount = nil
	m.addpayment_amount = nil
}

// SetAmountOverride sets the "amount_override" field.
func (m *PaymentMutation) SetAmountOverride(b bool) {
	m.amount_override = &b
}

// AmountOverride returns the value of the "amount_override" field in the mutation.
func (m *PaymentMutation) AmountOverride() (r bool, exists bool) {
	v := m.amount_override
	if v == nil {
		return
	}
	return *v, true
}

// OldAmountOverride returns the old "amount_override" field's value of the Payment entity.
// If the Payment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentMutation) OldAmountOverride(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmountOverride is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmountOverride requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmountOverride: %w", err)
	}
	return oldValue.AmountOverride, nil
}

// ResetAmountOverride resets all changes to the "amount_override" field.
func (m *PaymentMutation) ResetAmountOverride() {
	m.amount_override = nil
}

// SetAgci sets the "agci" field.
func (m *PaymentMutation) SetAgci(d decimal.Decimal) {
	m.agci = &d
	m.addagci = nil
}

// Agci returns the value of the "agci" field in the mutation.
func (m *PaymentMutation) Agci() (r decimal.Decimal, exists bool) {
	v := m.agci
	if v == nil {
		return
	}
	return *v, true
}

// OldAgci returns the old "agci" field's value of the Payment entity.
// If the Payment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentMutation) OldAgci(ctx context.Context) (v decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgci is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgci requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgci: %w", err)
	}
	return oldValue.Agci, nil
}

// AddAgci adds d to the "agci" field.
func (m *PaymentMutation) AddAgci(d decimal.Decimal) {
	if m.addagci != nil {
		*m.addagci = m.addagci.Add(d)
	} else {
		m.addagci = &d
	}
}

// AddedAgci returns the value that was added to the "agci" field in this mutation.
func (m *PaymentMutation) AddedAgci() (r decimal.Decimal, exists bool) {
	v := m.addagci
	if v == nil {
		return
	}
	return *v, true
}

// ResetAgci resets all changes to the "agci" field.
func (m *PaymentMutation) ResetAgci() {
	m.agci = nil
	m.addagci = nil
}

// SetReferralFeeUsd sets the "referral_fee_usd" field.
func (m *PaymentMutation) SetReferralFeeUsd(d decimal.Decimal) {
	m.referral_fee_usd = &d
	m.addreferral_fee_usd = nil
}

// ReferralFeeUsd returns the value of the "referral_fee_usd" field in the mutation.
func (m *PaymentMutation) ReferralFeeUsd() (r decimal.Decimal, exists bool) {
	v := m.referral_fee_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldReferralFeeUsd returns the old "referral_fee_usd" field's value of the Payment entity.
// If the Payment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentMutation) OldReferralFeeUsd(ctx context.Context) (v decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReferralFeeUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReferralFeeUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReferralFeeUsd: %w", err)
	}
	return oldValue.ReferralFeeUsd, nil
}

// AddReferralFeeUsd adds d to the "referral_fee_usd" field.
func (m *PaymentMutation) AddReferralFeeUsd(d decimal.Decimal) {
	if m.addreferral_fee_usd != nil {
		*m.addreferral_fee_usd = m.addreferral_fee_usd.Add(d)
	} else {
		m.addreferral_fee_usd = &d
	}
}

// AddedReferralFeeUsd returns the value that was added to the "referral_fee_usd" field in this mutation.
func (m *PaymentMutation) AddedReferralFeeUsd() (r decimal.Decimal, exists bool) {
	v := m.addreferral_fee_usd
	if v == nil {
		return
	}
	return *v, true
}

// ResetReferralFeeUsd resets all changes to the "referral_fee_usd" field.
func (m *PaymentMutation) ResetReferralFeeUsd() {
	m.referral_fee_usd = nil
	m.addreferral_fee_usd = nil
}

// SetReferralFeePercentOverride sets the "referral_fee_percent_override" field.
func (m *PaymentMutation) SetReferralFeePercentOverride(d decimal.Decimal) {
	m.referral_fee_percent_override = &d
	m.addreferral_fee_percent_override = nil
}

// ReferralFeePercentOverride returns the value of the "referral_fee_percent_override" field in the mutation.
func (m *PaymentMutation) ReferralFeePercentOverride() (r decimal.Decimal, exists bool) {
	v := m.referral_fee_percent_override
	if v == nil {
		return
	}
	return *v, true
}

// OldReferralFeePercentOverride returns the old "referral_fee_percent_override" field's value of the Payment entity.
// If the Payment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentMutation) OldReferralFeePercentOverride(ctx context.Context) (v *decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReferralFeePercentOverride is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReferralFeePercentOverride requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReferralFeePercentOverride: %w", err)
	}
	return oldValue.ReferralFeePercentOverride, nil
}

// AddReferralFeePercentOverride adds d to the "referral_fee_percent_override" field.
func (m *PaymentMutation) AddReferralFeePercentOverride(d decimal.Decimal) {
	if m.addreferral_fee_percent_override != nil {
		*m.addreferral_fee_percent_override = m.addreferral_fee_percent_override.Add(d)
	} else {
		m.addreferral_fee_percent_override = &d
	}
}

// AddedReferralFeePercentOverride returns the value that was added to the "referral_fee_percent_override" field in this mutation.
func (m *PaymentMutation) AddedReferralFeePercentOverride() (r decimal.Decimal, exists bool) {
	v := m.addreferral_fee_percent_override
	if v == nil {
		return
	}
	return *v, true
}

// ClearReferralFeePercentOverride clears the value of the "referral_fee_percent_override" field.
func (m *PaymentMutation) ClearReferralFeePercentOverride() {
	m.referral_fee_percent_override = nil
	m.addreferral_fee_percent_override = nil
	m.clearedFields[payment.FieldReferralFeePercentOverride] = struct{}{}
}

// ReferralFeePercentOverrideCleared returns if the "referral_fee_percent_override" field was cleared in this mutation.
func (m *PaymentMutation) ReferralFeePercentOverrideCleared() bool {
	_, ok := m.clearedFields[payment.FieldReferralFeePercentOverride]
	return ok
}

// ResetReferralFeePercentOverride resets all changes to the "referral_fee_percent_override" field.
func (m *PaymentMutation) ResetReferralFeePercentOverride() {
	m.referral_fee_percent_override = nil
	m.addreferral_fee_percent_override = nil
	delete(m.clearedFields, payment.FieldReferralFeePercentOverride)
}

// SetPaymentDate sets the "payment_date" field.
func (m *PaymentMutation) SetPaymentDate(t time.Time) {
	m.payment_date = &t
}

// PaymentDate returns the value of the "payment_date" field in the mutation.
func (m *PaymentMutation) PaymentDate() (r time.Time, exists bool) {
	v := m.payment_date
	if v == nil {
		return
	}
	return *v, true
}

// OldPaymentDate returns the old "payment_date" field's value of the Payment entity.
// If the Payment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentMutation) OldPaymentDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaymentDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaymentDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaymentDate: %w", err)
	}
	return oldValue.PaymentDate, nil
}

// ClearPaymentDate clears the value of the "payment_date" field.
func (m *PaymentMutation) ClearPaymentDate() {
	m.payment_date = nil
	m.clearedFields[payment.FieldPaymentDate] = struct{}{}
}

// PaymentDateCleared returns if the "payment_date" field was cleared in this mutation.
func (m *PaymentMutation) PaymentDateCleared() bool {
	_, ok := m.clearedFields[payment.FieldPaymentDate]
	return ok
}

// ResetPaymentDate resets all changes to the "payment_date" field.
func (m *PaymentMutation) ResetPaymentDate() {
	m.payment_date = nil
	delete(m.clearedFields, payment.FieldPaymentDate)
}

// SetPaymentReceived sets the "payment_received" field.
func (m *PaymentMutation) SetPaymentReceived(b bool) {
	m.payment_received = &b
}

// PaymentReceived returns the value of the "payment_received" field in the mutation.
func (m *PaymentMutation) PaymentReceived() (r bool, exists bool) {
	v := m.payment_received
	if v == nil {
		return
	}
	return *v, true
}

// OldPaymentReceived returns the old "payment_received" field's value of the Payment entity.
// If the Payment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentMutation) OldPaymentReceived(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaymentReceived is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaymentReceived requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaymentReceived: %w", err)
	}
	return oldValue.PaymentReceived, nil
}

// ResetPaymentReceived resets all changes to the "payment_received" field.
func (m *PaymentMutation) ResetPaymentReceived() {
	m.payment_received = nil
}

// SetReceivedDate sets the "received_date" field.
func (m *PaymentMutation) SetReceivedDate(t time.Time) {
	m.received_date = &t
}

// ReceivedDate returns the value of the "received_date" field in the mutation.
func (m *PaymentMutation) ReceivedDate() (r time.Time, exists bool) {
	v := m.received_date
	if v == nil {
		return
	}
	return *v, true
}

// OldReceivedDate returns the old "received_date" field's value of the Payment entity.
// If the Payment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentMutation) OldReceivedDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReceivedDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReceivedDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReceivedDate: %w", err)
	}
	return oldValue.ReceivedDate, nil
}

// ClearReceivedDate clears the value of the "received_date" field.
func (m *PaymentMutation) ClearReceivedDate() {
	m.received_date = nil
	m.clearedFields[payment.FieldReceivedDate] = struct{}{}
}

// ReceivedDateCleared returns if the "received_date" field was cleared in this mutation.
func (m *PaymentMutation) ReceivedDateCleared() bool {
	_, ok := m.clearedFields[payment.FieldReceivedDate]
	return ok
}

// ResetReceivedDate resets all changes to the "received_date" field.
func (m *PaymentMutation) ResetReceivedDate() {
	m.received_date = nil
	delete(m.clearedFields, payment.FieldReceivedDate)
}

// SetIsActive sets the "is_active" field.
func (m *PaymentMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *PaymentMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the Payment entity.
// If the Payment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *PaymentMutation) ResetIsActive() {
	m.is_active = nil
}

// SetCommissionVersion sets the "commission_version" field.
func (m *PaymentMutation) SetCommissionVersion(i int) {
	m.commission_version = &i
	m.addcommission_version = nil
}

// CommissionVersion returns the value of the "commission_version" field in the mutation.
func (m *PaymentMutation) CommissionVersion() (r int, exists bool) {
	v := m.commission_version
	if v == nil {
		return
	}
	return *v, true
}

// OldCommissionVersion returns the old "commission_version" field's value of the Payment entity.
// If the Payment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentMutation) OldCommissionVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommissionVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommissionVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommissionVersion: %w", err)
	}
	return oldValue.CommissionVersion, nil
}

// AddCommissionVersion adds i to the "commission_version" field.
func (m *PaymentMutation) AddCommissionVersion(i int) {
	if m.addcommission_version != nil {
		*m.addcommission_version += i
	} else {
		m.addcommission_version = &i
	}
}

// AddedCommissionVersion returns the value that was added to the "commission_version" field in this mutation.
func (m *PaymentMutation) AddedCommissionVersion() (r int, exists bool) {
	v := m.addcommission_version
	if v == nil {
		return
	}
	return *v, true
}

// ResetCommissionVersion resets all changes to the "commission_version" field.
func (m *PaymentMutation) ResetCommissionVersion() {
	m.commission_version = nil
	m.addcommission_version = nil
}

// SetInvoiceNumber sets the "invoice_number" field.
func (m *PaymentMutation) SetInvoiceNumber(s string) {
	m.invoice_number = &s
}

// InvoiceNumber returns the value of the "invoice_number" field in the mutation.
func (m *PaymentMutation) InvoiceNumber() (r string, exists bool) {
	v := m.invoice_number
	if v == nil {
		return
	}
	return *v, true
}

// OldInvoiceNumber returns the old "invoice_number" field's value of the Payment entity.
// If the Payment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentMutation) OldInvoiceNumber(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvoiceNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvoiceNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvoiceNumber: %w", err)
	}
	return oldValue.InvoiceNumber, nil
}

// ClearInvoiceNumber clears the value of the "invoice_number" field.
func (m *PaymentMutation) ClearInvoiceNumber() {
	m.invoice_number = nil
	m.clearedFields[payment.FieldInvoiceNumber] = struct{}{}
}

// InvoiceNumberCleared returns if the "invoice_number" field was cleared in this mutation.
func (m *PaymentMutation) InvoiceNumberCleared() bool {
	_, ok := m.clearedFields[payment.FieldInvoiceNumber]
	return ok
}

// ResetInvoiceNumber resets all changes to the "invoice_number" field.
func (m *PaymentMutation) ResetInvoiceNumber() {
	m.invoice_number = nil
	delete(m.clearedFields, payment.FieldInvoiceNumber)
}

// ClearDeal clears the "deal" edge to the Deal entity.
func (m *PaymentMutation) ClearDeal() {
	m.cleareddeal = true
	m.clearedFields[payment.FieldDealID] = struct{}{}
}

// DealCleared reports if the "deal" edge to the Deal entity was cleared.
func (m *PaymentMutation) DealCleared() bool {
	return m.cleareddeal
}

// DealIDs returns the "deal" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DealID instead. It exists only for internal usage by the builders.
func (m *PaymentMutation) DealIDs() (ids []uuid.UUID) {
	if id := m.deal; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDeal resets all changes to the "deal" edge.
func (m *PaymentMutation) ResetDeal() {
	m.deal = nil
	m.cleareddeal = false
}

// AddSplitIDs adds the "splits" edge to the PaymentSplit entity by ids.
func (m *PaymentMutation) AddSplitIDs(ids ...uuid.UUID) {
	if m.splits == nil {
		m.splits = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.splits[ids[i]] = struct{}{}
	}
}

// ClearSplits clears the "splits" edge to the PaymentSplit entity.
func (m *PaymentMutation) ClearSplits() {
	m.clearedsplits = true
}

// SplitsCleared reports if the "splits" edge to the PaymentSplit entity was cleared.
func (m *PaymentMutation) SplitsCleared() bool {
	return m.clearedsplits
}

// RemoveSplitIDs removes the "splits" edge to the PaymentSplit entity by IDs.
func (m *PaymentMutation) RemoveSplitIDs(ids ...uuid.UUID) {
	if m.removedsplits == nil {
		m.removedsplits = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.splits, ids[i])
		m.removedsplits[ids[i]] = struct{}{}
	}
}

// RemovedSplits returns the removed IDs of the "splits" edge to the PaymentSplit entity.
func (m *PaymentMutation) RemovedSplitsIDs() (ids []uuid.UUID) {
	for id := range m.removedsplits {
		ids = append(ids, id)
	}
	return
}

// SplitsIDs returns the "splits" edge IDs in the mutation.
func (m *PaymentMutation) SplitsIDs() (ids []uuid.UUID) {
	for id := range m.splits {
		ids = append(ids, id)
	}
	return
}

// ResetSplits resets all changes to the "splits" edge.
func (m *PaymentMutation) ResetSplits() {
	m.splits = nil
	m.clearedsplits = false
	m.removedsplits = nil
}

// Where appends a list predicates to the PaymentMutation builder.
func (m *PaymentMutation) Where(ps ...predicate.Payment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PaymentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PaymentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Payment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PaymentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PaymentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Payment).
func (m *PaymentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PaymentMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.created_at != nil {
		fields = append(fields, payment.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, payment.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, payment.FieldDeletedAt)
	}
	if m.deal != nil {
		fields = append(fields, payment.FieldDealID)
	}
	if m.sequence != nil {
		fields = append(fields, payment.FieldSequence)
	}
	if m.payment_amount != nil {
		fields = append(fields, payment.FieldPaymentAmount)
	}
	if m.amount_override != nil {
		fields = append(fields, payment.FieldAmountOverride)
	}
	if m.agci != nil {
		fields = append(fields, payment.FieldAgci)
	}
	if m.referral_fee_usd != nil {
		fields = append(fields, payment.FieldReferralFeeUsd)
	}
	if m.referral_fee_percent_override != nil {
		fields = append(fields, payment.FieldReferralFeePercentOverride)
	}
	if m.payment_date != nil {
		fields = append(fields, payment.FieldPaymentDate)
	}
	if m.payment_received != nil {
		fields = append(fields, payment.FieldPaymentReceived)
	}
	if m.received_date != nil {
		fields = append(fields, payment.FieldReceivedDate)
	}
	if m.is_active != nil {
		fields = append(fields, payment.FieldIsActive)
	}
	if m.commission_version != nil {
		fields = append(fields, payment.FieldCommissionVersion)
	}
	if m.invoice_number != nil {
		fields = append(fields, payment.FieldInvoiceNumber)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PaymentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case payment.FieldCreatedAt:
		return m.CreatedAt()
	case payment.FieldUpdatedAt:
		return m.UpdatedAt()
	case payment.FieldDeletedAt:
		return m.DeletedAt()
	case payment.FieldDealID:
		return m.DealID()
	case payment.FieldSequence:
		return m.Sequence()
	case payment.FieldPaymentAmount:
		return m.PaymentAmount()
	case payment.FieldAmountOverride:
		return m.AmountOverride()
	case payment.FieldAgci:
		return m.Agci()
	case payment.FieldReferralFeeUsd:
		return m.ReferralFeeUsd()
	case payment.FieldReferralFeePercentOverride:
		return m.ReferralFeePercentOverride()
	case payment.FieldPaymentDate:
		return m.PaymentDate()
	case payment.FieldPaymentReceived:
		return m.PaymentReceived()
	case payment.FieldReceivedDate:
		return m.ReceivedDate()
	case payment.FieldIsActive:
		return m.IsActive()
	case payment.FieldCommissionVersion:
		return m.CommissionVersion()
	case payment.FieldInvoiceNumber:
		return m.InvoiceNumber()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PaymentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case payment.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case payment.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case payment.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case payment.FieldDealID:
		return m.OldDealID(ctx)
	case payment.FieldSequence:
		return m.OldSequence(ctx)
	case payment.FieldPaymentAmount:
		return m.OldPaymentAmount(ctx)
	case payment.FieldAmountOverride:
		return m.OldAmountOverride(ctx)
	case payment.FieldAgci:
		return m.OldAgci(ctx)
	case payment.FieldReferralFeeUsd:
		return m.OldReferralFeeUsd(ctx)
	case payment.FieldReferralFeePercentOverride:
		return m.OldReferralFeePercentOverride(ctx)
	case payment.FieldPaymentDate:
		return m.OldPaymentDate(ctx)
	case payment.FieldPaymentReceived:
		return m.OldPaymentReceived(ctx)
	case payment.FieldReceivedDate:
		return m.OldReceivedDate(ctx)
	case payment.FieldIsActive:
		return m.OldIsActive(ctx)
	case payment.FieldCommissionVersion:
		return m.OldCommissionVersion(ctx)
	case payment.FieldInvoiceNumber:
		return m.OldInvoiceNumber(ctx)
	}
	return nil, fmt.Errorf("unknown Payment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PaymentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case payment.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case payment.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case payment.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case payment.FieldDealID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDealID(v)
		return nil
	case payment.FieldSequence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case payment.FieldPaymentAmount:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaymentAmount(v)
		return nil
	case payment.FieldAmountOverride:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmountOverride(v)
		return nil
	case payment.FieldAgci:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgci(v)
		return nil
	case payment.FieldReferralFeeUsd:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReferralFeeUsd(v)
		return nil
	case payment.FieldReferralFeePercentOverride:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReferralFeePercentOverride(v)
		return nil
	case payment.FieldPaymentDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaymentDate(v)
		return nil
	case payment.FieldPaymentReceived:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaymentReceived(v)
		return nil
	case payment.FieldReceivedDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReceivedDate(v)
		return nil
	case payment.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case payment.FieldCommissionVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommissionVersion(v)
		return nil
	case payment.FieldInvoiceNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvoiceNumber(v)
		return nil
	}
	return fmt.Errorf("unknown Payment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PaymentMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, payment.FieldSequence)
	}
	if m.addpayment_amount != nil {
		fields = append(fields, payment.FieldPaymentAmount)
	}
	if m.addagci != nil {
		fields = append(fields, payment.FieldAgci)
	}
	if m.addreferral_fee_usd != nil {
		fields = append(fields, payment.FieldReferralFeeUsd)
	}
	if m.addreferral_fee_percent_override != nil {
		fields = append(fields, payment.FieldReferralFeePercentOverride)
	}
	if m.addcommission_version != nil {
		fields = append(fields, payment.FieldCommissionVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PaymentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case payment.FieldSequence:
		return m.AddedSequence()
	case payment.FieldPaymentAmount:
		return m.AddedPaymentAmount()
	case payment.FieldAgci:
		return m.AddedAgci()
	case payment.FieldReferralFeeUsd:
		return m.AddedReferralFeeUsd()
	case payment.FieldReferralFeePercentOverride:
		return m.AddedReferralFeePercentOverride()
	case payment.FieldCommissionVersion:
		return m.AddedCommissionVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PaymentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case payment.FieldSequence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case payment.FieldPaymentAmount:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPaymentAmount(v)
		return nil
	case payment.FieldAgci:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAgci(v)
		return nil
	case payment.FieldReferralFeeUsd:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReferralFeeUsd(v)
		return nil
	case payment.FieldReferralFeePercentOverride:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReferralFeePercentOverride(v)
		return nil
	case payment.FieldCommissionVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCommissionVersion(v)
		return nil
	}
	return fmt.Errorf("unknown Payment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PaymentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(payment.FieldDeletedAt) {
		fields = append(fields, payment.FieldDeletedAt)
	}
	if m.FieldCleared(payment.FieldReferralFeePercentOverride) {
		fields = append(fields, payment.FieldReferralFeePercentOverride)
	}
	if m.FieldCleared(payment.FieldPaymentDate) {
		fields = append(fields, payment.FieldPaymentDate)
	}
	if m.FieldCleared(payment.FieldReceivedDate) {
		fields = append(fields, payment.FieldReceivedDate)
	}
	if m.FieldCleared(payment.FieldInvoiceNumber) {
		fields = append(fields, payment.FieldInvoiceNumber)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PaymentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PaymentMutation) ClearField(name string) error {
	switch name {
	case payment.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	case payment.FieldReferralFeePercentOverride:
		m.ClearReferralFeePercentOverride()
		return nil
	case payment.FieldPaymentDate:
		m.ClearPaymentDate()
		return nil
	case payment.FieldReceivedDate:
		m.ClearReceivedDate()
		return nil
	case payment.FieldInvoiceNumber:
		m.ClearInvoiceNumber()
		return nil
	}
	return fmt.Errorf("unknown Payment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PaymentMutation) ResetField(name string) error {
	switch name {
	case payment.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case payment.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case payment.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case payment.FieldDealID:
		m.ResetDealID()
		return nil
	case payment.FieldSequence:
		m.ResetSequence()
		return nil
	case payment.FieldPaymentAmount:
		m.ResetPaymentAmount()
		return nil
	case payment.FieldAmountOverride:
		m.ResetAmountOverride()
		return nil
	case payment.FieldAgci:
		m.ResetAgci()
		return nil
	case payment.FieldReferralFeeUsd:
		m.ResetReferralFeeUsd()
		return nil
	case payment.FieldReferralFeePercentOverride:
		m.ResetReferralFeePercentOverride()
		return nil
	case payment.FieldPaymentDate:
		m.ResetPaymentDate()
		return nil
	case payment.FieldPaymentReceived:
		m.ResetPaymentReceived()
		return nil
	case payment.FieldReceivedDate:
		m.ResetReceivedDate()
		return nil
	case payment.FieldIsActive:
		m.ResetIsActive()
		return nil
	case payment.FieldCommissionVersion:
		m.ResetCommissionVersion()
		return nil
	case payment.FieldInvoiceNumber:
		m.ResetInvoiceNumber()
		return nil
	}
	return fmt.Errorf("unknown Payment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PaymentMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.deal != nil {
		edges = append(edges, payment.EdgeDeal)
	}
	if m.splits != nil {
		edges = append(edges, payment.EdgeSplits)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PaymentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case payment.EdgeDeal:
		if id := m.deal; id != nil {
			return []ent.Value{*id}
		}
	case payment.EdgeSplits:
		ids := make([]ent.Value, 0, len(m.splits))
		for id := range m.splits {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PaymentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedsplits != nil {
		edges = append(edges, payment.EdgeSplits)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PaymentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case payment.EdgeSplits:
		ids := make([]ent.Value, 0, len(m.removedsplits))
		for id := range m.removedsplits {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PaymentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareddeal {
		edges = append(edges, payment.EdgeDeal)
	}
	if m.clearedsplits {
		edges = append(edges, payment.EdgeSplits)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PaymentMutation) EdgeCleared(name string) bool {
	switch name {
	case payment.EdgeDeal:
		return m.cleareddeal
	case payment.EdgeSplits:
		return m.clearedsplits
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PaymentMutation) ClearEdge(name string) error {
	switch name {
	case payment.EdgeDeal:
		m.ClearDeal()
		return nil
	}
	return fmt.Errorf("unknown Payment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PaymentMutation) ResetEdge(name string) error {
	switch name {
	case payment.EdgeDeal:
		m.ResetDeal()
		return nil
	case payment.EdgeSplits:
		m.ResetSplits()
		return nil
	}
	return fmt.Errorf("unknown Payment edge %s", name)
}

// PaymentSplitMutation represents an operation that mutates the PaymentSplit nodes in the graph.
type PaymentSplitMutation struct {
	config
	op                           Op
	typ                          string
	id                           *uuid.UUID
	created_at                   *time.Time
	updated_at                   *time.Time
	split_origination_percent    *decimal.Decimal
	addsplit_origination_percent *decimal.Decimal
	split_origination_usd        *decimal.Decimal
	addsplit_origination_usd     *decimal.Decimal
	split_site_percent           *decimal.Decimal
	addsplit_site_percent        *decimal.Decimal
	split_site_usd               *decimal.Decimal
	addsplit_site_usd            *decimal.Decimal
	split_deal_percent           *decimal.Decimal
	addsplit_deal_percent        *decimal.Decimal
	split_deal_usd               *decimal.Decimal
	addsplit_deal_usd            *decimal.Decimal
	split_broker_total           *decimal.Decimal
	addsplit_broker_total        *decimal.Decimal
	paid                         *bool
	paid_date                    *time.Time
	clearedFields                map[string]struct{}
	payment                      *uuid.UUID
	clearedpayment               bool
	broker                       *uuid.UUID
	clearedbroker                bool
	done                         bool
	oldValue                     func(context.Context) (*PaymentSplit, error)
	predicates                   []predicate.PaymentSplit
}

var _ ent.Mutation = (*PaymentSplitMutation)(nil)

// paymentsplitOption allows management of the mutation configuration using functional options.
type paymentsplitOption func(*PaymentSplitMutation)

// newPaymentSplitMutation creates new mutation for the PaymentSplit entity.
func newPaymentSplitMutation(c config, op Op, opts ...paymentsplitOption) *PaymentSplitMutation {
	m := &PaymentSplitMutation{
		config:        c,
		op:            op,
		typ:           TypePaymentSplit,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPaymentSplitID sets the ID field of the mutation.
func withPaymentSplitID(id uuid.UUID) paymentsplitOption {
	return func(m *PaymentSplitMutation) {
		var (
			err   error
			once  sync.Once
			value *PaymentSplit
		)
		m.oldValue = func(ctx context.Context) (*PaymentSplit, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PaymentSplit.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPaymentSplit sets the old PaymentSplit of the mutation.
func withPaymentSplit(node *PaymentSplit) paymentsplitOption {
	return func(m *PaymentSplitMutation) {
		m.oldValue = func(context.Context) (*PaymentSplit, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PaymentSplitMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PaymentSplitMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PaymentSplit entities.
func (m *PaymentSplitMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PaymentSplitMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PaymentSplitMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PaymentSplit.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *PaymentSplitMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PaymentSplitMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PaymentSplit entity.
// If the PaymentSplit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentSplitMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PaymentSplitMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PaymentSplitMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PaymentSplitMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PaymentSplit entity.
// If the PaymentSplit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentSplitMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PaymentSplitMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetPaymentID sets the "payment_id" field.
func (m *PaymentSplitMutation) SetPaymentID(u uuid.UUID) {
	m.payment = &u
}

// PaymentID returns the value of the "payment_id" field in the mutation.
func (m *PaymentSplitMutation) PaymentID() (r uuid.UUID, exists bool) {
	v := m.payment
	if v == nil {
		return
	}
	return *v, true
}

// OldPaymentID returns the old "payment_id" field's value of the PaymentSplit entity.
// If the PaymentSplit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentSplitMutation) OldPaymentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaymentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaymentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaymentID: %w", err)
	}
	return oldValue.PaymentID, nil
}

// ResetPaymentID resets all changes to the "payment_id" field.
func (m *PaymentSplitMutation) ResetPaymentID() {
	m.payment = nil
}

// SetBrokerID sets the "broker_id" field.
func (m *PaymentSplitMutation) SetBrokerID(u uuid.UUID) {
	m.broker = &u
}

// BrokerID returns the value of the "broker_id" field in the mutation.
func (m *PaymentSplitMutation) BrokerID() (r uuid.UUID, exists bool) {
	v := m.broker
	if v == nil {
		return
	}
	return *v, true
}

// OldBrokerID returns the old "broker_id" field's value of the PaymentSplit entity.
// If the PaymentSplit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentSplitMutation) OldBrokerID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBrokerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBrokerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBrokerID: %w", err)
	}
	return oldValue.BrokerID, nil
}

// ResetBrokerID resets all changes to the "broker_id" field.
func (m *PaymentSplitMutation) ResetBrokerID() {
	m.broker = nil
}

// SetSplitOriginationPercent sets the "split_origination_percent" field.
func (m *PaymentSplitMutation) SetSplitOriginationPercent(d decimal.Decimal) {
	m.split_origination_percent = &d
	m.addsplit_origination_percent = nil
}

// SplitOriginationPercent returns the value of the "split_origination_percent" field in the mutation.
func (m *PaymentSplitMutation) SplitOriginationPercent() (r decimal.Decimal, exists bool) {
	v := m.split_origination_percent
	if v == nil {
		return
	}
	return *v, true
}

// OldSplitOriginationPercent returns the old "split_origination_percent" field's value of the PaymentSplit entity.
// If the PaymentSplit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentSplitMutation) OldSplitOriginationPercent(ctx context.Context) (v decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSplitOriginationPercent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSplitOriginationPercent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSplitOriginationPercent: %w", err)
	}
	return oldValue.SplitOriginationPercent, nil
}

// AddSplitOriginationPercent adds d to the "split_origination_percent" field.
func (m *PaymentSplitMutation) AddSplitOriginationPercent(d decimal.Decimal) {
	if m.addsplit_origination_percent != nil {
		*m.addsplit_origination_percent = m.addsplit_origination_percent.Add(d)
	} else {
		m.addsplit_origination_percent = &d
	}
}

// AddedSplitOriginationPercent returns the value that was added to the "split_origination_percent" field in this mutation.
func (m *PaymentSplitMutation) AddedSplitOriginationPercent() (r decimal.Decimal, exists bool) {
	v := m.addsplit_origination_percent
	if v == nil {
		return
	}
	return *v, true
}

// ResetSplitOriginationPercent resets all changes to the "split_origination_percent" field.
func (m *PaymentSplitMutation) ResetSplitOriginationPercent() {
	m.split_origination_percent = nil
	m.addsplit_origination_percent = nil
}

// SetSplitOriginationUsd sets the "split_origination_usd" field.
func (m *PaymentSplitMutation) SetSplitOriginationUsd(d decimal.Decimal) {
	m.split_origination_usd = &d
	m.addsplit_origination_usd = nil
}

// SplitOriginationUsd returns the value of the "split_origination_usd" field in the mutation.
func (m *PaymentSplitMutation) SplitOriginationUsd() (r decimal.Decimal, exists bool) {
	v := m.split_origination_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldSplitOriginationUsd returns the old "split_origination_usd" field's value of the PaymentSplit entity.
// If the PaymentSplit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentSplitMutation) OldSplitOriginationUsd(ctx context.Context) (v decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSplitOriginationUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSplitOriginationUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSplitOriginationUsd: %w", err)
	}
	return oldValue.SplitOriginationUsd, nil
}

// AddSplitOriginationUsd adds d to the "split_origination_usd" field.
func (m *PaymentSplitMutation) AddSplitOriginationUsd(d decimal.Decimal) {
	if m.addsplit_origination_usd != nil {
		*m.addsplit_origination_usd = m.addsplit_origination_usd.Add(d)
	} else {
		m.addsplit_origination_usd = &d
	}
}

// AddedSplitOriginationUsd returns the value that was added to the "split_origination_usd" field in this mutation.
func (m *PaymentSplitMutation) AddedSplitOriginationUsd() (r decimal.Decimal, exists bool) {
	v := m.addsplit_origination_usd
	if v == nil {
		return
	}
	return *v, true
}

// ResetSplitOriginationUsd resets all changes to the "split_origination_usd" field.
func (m *PaymentSplitMutation) ResetSplitOriginationUsd() {
	m.split_origination_usd = nil
	m.addsplit_origination_usd = nil
}

// SetSplitSitePercent sets the "split_site_percent" field.
func (m *PaymentSplitMutation) SetSplitSitePercent(d decimal.Decimal) {
	m.split_site_percent = &d
	m.addsplit_site_percent = nil
}

// SplitSitePercent returns the value of the "split_site_percent" field in the mutation.
func (m *PaymentSplitMutation) SplitSitePercent() (r decimal.Decimal, exists bool) {
	v := m.split_site_percent
	if v == nil {
		return
	}
	return *v, true
}

// OldSplitSitePercent returns the old "split_site_percent" field's value of the PaymentSplit entity.
// If the PaymentSplit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentSplitMutation) OldSplitSitePercent(ctx context.Context) (v decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSplitSitePercent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSplitSitePercent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSplitSitePercent: %w", err)
	}
	return oldValue.SplitSitePercent, nil
}

// AddSplitSitePercent adds d to the "split_site_percent" field.
func (m *PaymentSplitMutation) AddSplitSitePercent(d decimal.Decimal) {
	if m.addsplit_site_percent != nil {
		*m.addsplit_site_percent = m.addsplit_site_percent.Add(d)
	} else {
		m.addsplit_site_percent = &d
	}
}

// AddedSplitSitePercent returns the value that was added to the "split_site_percent" field in this mutation.
func (m *PaymentSplitMutation) AddedSplitSitePercent() (r decimal.Decimal, exists bool) {
	v := m.addsplit_site_percent
	if v == nil {
		return
	}
	return *v, true
}

// ResetSplitSitePercent resets all changes to the "split_site_percent" field.
func (m *PaymentSplitMutation) ResetSplitSitePercent() {
	m.split_site_percent = nil
	m.addsplit_site_percent = nil
}

// SetSplitSiteUsd sets the "split_site_usd" field.
func (m *PaymentSplitMutation) SetSplitSiteUsd(d decimal.Decimal) {
	m.split_site_usd = &d
	m.addsplit_site_usd = nil
}

// SplitSiteUsd returns the value of the "split_site_usd" field in the mutation.
func (m *PaymentSplitMutation) SplitSiteUsd() (r decimal.Decimal, exists bool) {
	v := m.split_site_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldSplitSiteUsd returns the old "split_site_usd" field's value of the PaymentSplit entity.
// If the PaymentSplit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentSplitMutation) OldSplitSiteUsd(ctx context.Context) (v decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSplitSiteUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSplitSiteUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSplitSiteUsd: %w", err)
	}
	return oldValue.SplitSiteUsd, nil
}

// AddSplitSiteUsd adds d to the "split_site_usd" field.
func (m *PaymentSplitMutation) AddSplitSiteUsd(d decimal.Decimal) {
	if m.addsplit_site_usd != nil {
		*m.addsplit_site_usd = m.addsplit_site_usd.Add(d)
	} else {
		m.addsplit_site_usd = &d
	}
}

// AddedSplitSiteUsd returns the value that was added to the "split_site_usd" field in this mutation.
func (m *PaymentSplitMutation) AddedSplitSiteUsd() (r decimal.Decimal, exists bool) {
	v := m.addsplit_site_usd
	if v == nil {
		return
	}
	return *v, true
}

// ResetSplitSiteUsd resets all changes to the "split_site_usd" field.
func (m *PaymentSplitMutation) ResetSplitSiteUsd() {
	m.split_site_usd = nil
	m.addsplit_site_usd = nil
}

// SetSplitDealPercent sets the "split_deal_percent" field.
func (m *PaymentSplitMutation) SetSplitDealPercent(d decimal.Decimal) {
	m.split_deal_percent = &d
	m.addsplit_deal_percent = nil
}

// SplitDealPercent returns the value of the "split_deal_percent" field in the mutation.
func (m *PaymentSplitMutation) SplitDealPercent() (r decimal.Decimal, exists bool) {
	v := m.split_deal_percent
	if v == nil {
		return
	}
	return *v, true
}

// OldSplitDealPercent returns the old "split_deal_percent" field's value of the PaymentSplit entity.
// If the PaymentSplit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentSplitMutation) OldSplitDealPercent(ctx context.Context) (v decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSplitDealPercent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSplitDealPercent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSplitDealPercent: %w", err)
	}
	return oldValue.SplitDealPercent, nil
}

// AddSplitDealPercent adds d to the "split_deal_percent" field.
func (m *PaymentSplitMutation) AddSplitDealPercent(d decimal.Decimal) {
	if m.addsplit_deal_percent != nil {
		*m.addsplit_deal_percent = m.addsplit_deal_percent.Add(d)
	} else {
		m.addsplit_deal_percent = &d
	}
}

// AddedSplitDealPercent returns the value that was added to the "split_deal_percent" field in this mutation.
func (m *PaymentSplitMutation) AddedSplitDealPercent() (r decimal.Decimal, exists bool) {
	v := m.addsplit_deal_percent
	if v == nil {
		return
	}
	return *v, true
}

// ResetSplitDealPercent resets all changes to the "split_deal_percent" field.
func (m *PaymentSplitMutation) ResetSplitDealPercent() {
	m.split_deal_percent = nil
	m.addsplit_deal_percent = nil
}

// SetSplitDealUsd sets the "split_deal_usd" field.
func (m *PaymentSplitMutation) SetSplitDealUsd(d decimal.Decimal) {
	m.split_deal_usd = &d
	m.addsplit_deal_usd = nil
}

// SplitDealUsd returns the value of the "split_deal_usd" field in the mutation.
func (m *PaymentSplitMutation) SplitDealUsd() (r decimal.Decimal, exists bool) {
	v := m.split_deal_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldSplitDealUsd returns the old "split_deal_usd" field's value of the PaymentSplit entity.
// If the PaymentSplit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentSplitMutation) OldSplitDealUsd(ctx context.Context) (v decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSplitDealUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSplitDealUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSplitDealUsd: %w", err)
	}
	return oldValue.SplitDealUsd, nil
}

// AddSplitDealUsd adds d to the "split_deal_usd" field.
func (m *PaymentSplitMutation) AddSplitDealUsd(d decimal.Decimal) {
	if m.addsplit_deal_usd != nil {
		*m.addsplit_deal_usd = m.addsplit_deal_usd.Add(d)
	} else {
		m.addsplit_deal_usd = &d
	}
}

// AddedSplitDealUsd returns the value that was added to the "split_deal_usd" field in this mutation.
func (m *PaymentSplitMutation) AddedSplitDealUsd() (r decimal.Decimal, exists bool) {
	v := m.addsplit_deal_usd
	if v == nil {
		return
	}
	return *v, true
}

// ResetSplitDealUsd resets all changes to the "split_deal_usd" field.
func (m *PaymentSplitMutation) ResetSplitDealUsd() {
	m.split_deal_usd = nil
	m.addsplit_deal_usd = nil
}

// SetSplitBrokerTotal sets the "split_broker_total" field.
func (m *PaymentSplitMutation) SetSplitBrokerTotal(d decimal.Decimal) {
	m.split_broker_total = &d
	m.addsplit_broker_total = nil
}

// SplitBrokerTotal returns the value of the "split_broker_total" field in the mutation.
func (m *PaymentSplitMutation) SplitBrokerTotal() (r decimal.Decimal, exists bool) {
	v := m.split_broker_total
	if v == nil {
		return
	}
	return *v, true
}

// OldSplitBrokerTotal returns the old "split_broker_total" field's value of the PaymentSplit entity.
// If the PaymentSplit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentSplitMutation) OldSplitBrokerTotal(ctx context.Context) (v decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSplitBrokerTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSplitBrokerTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSplitBrokerTotal: %w", err)
	}
	return oldValue.SplitBrokerTotal, nil
}

// AddSplitBrokerTotal adds d to the "split_broker_total" field.
func (m *PaymentSplitMutation) AddSplitBrokerTotal(d decimal.Decimal) {
	if m.addsplit_broker_total != nil {
		*m.addsplit_broker_total = m.addsplit_broker_total.Add(d)
	} else {
		m.addsplit_broker_total = &d
	}
}

// AddedSplitBrokerTotal returns the value that was added to the "split_broker_total" field in this mutation.
func (m *PaymentSplitMutation) AddedSplitBrokerTotal() (r decimal.Decimal, exists bool) {
	v := m.addsplit_broker_total
	if v == nil {
		return
	}
	return *v, true
}

// ResetSplitBrokerTotal resets all changes to the "split_broker_total" field.
func (m *PaymentSplitMutation) ResetSplitBrokerTotal() {
	m.split_broker_total = nil
	m.addsplit_broker_total = nil
}

// SetPaid sets the "paid" field.
func (m *PaymentSplitMutation) SetPaid(b bool) {
	m.paid = &b
}

// Paid returns the value of the "paid" field in the mutation.
func (m *PaymentSplitMutation) Paid() (r bool, exists bool) {
	v := m.paid
	if v == nil {
		return
	}
	return *v, true
}

// OldPaid returns the old "paid" field's value of the PaymentSplit entity.
// If the PaymentSplit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentSplitMutation) OldPaid(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaid is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaid requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaid: %w", err)
	}
	return oldValue.Paid, nil
}

// ResetPaid resets all changes to the "paid" field.
func (m *PaymentSplitMutation) ResetPaid() {
	m.paid = nil
}

// SetPaidDate sets the "paid_date" field.
func (m *PaymentSplitMutation) SetPaidDate(t time.Time) {
	m.paid_date = &t
}

// PaidDate returns the value of the "paid_date" field in the mutation.
func (m *PaymentSplitMutation) PaidDate() (r time.Time, exists bool) {
	v := m.paid_date
	if v == nil {
		return
	}
	return *v, true
}

// OldPaidDate returns the old "paid_date" field's value of the PaymentSplit entity.
// If the PaymentSplit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentSplitMutation) OldPaidDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaidDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaidDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaidDate: %w", err)
	}
	return oldValue.PaidDate, nil
}

// ClearPaidDate clears the value of the "paid_date" field.
func (m *PaymentSplitMutation) ClearPaidDate() {
	m.paid_date = nil
	m.clearedFields[paymentsplit.FieldPaidDate] = struct{}{}
}

// PaidDateCleared returns if the "paid_date" field was cleared in this mutation.
func (m *PaymentSplitMutation) PaidDateCleared() bool {
	_, ok := m.clearedFields[paymentsplit.FieldPaidDate]
	return ok
}

// ResetPaidDate resets all changes to the "paid_date" field.
func (m *PaymentSplitMutation) ResetPaidDate() {
	m.paid_date = nil
	delete(m.clearedFields, paymentsplit.FieldPaidDate)
}

// ClearPayment clears the "payment" edge to the Payment entity.
func (m *PaymentSplitMutation) ClearPayment() {
	m.clearedpayment = true
	m.clearedFields[paymentsplit.FieldPaymentID] = struct{}{}
}

// PaymentCleared reports if the "payment" edge to the Payment entity was cleared.
func (m *PaymentSplitMutation) PaymentCleared() bool {
	return m.clearedpayment
}

// PaymentIDs returns the "payment" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PaymentID instead. It exists only for internal usage by the builders.
func (m *PaymentSplitMutation) PaymentIDs() (ids []uuid.UUID) {
	if id := m.payment; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPayment resets all changes to the "payment" edge.
func (m *PaymentSplitMutation) ResetPayment() {
	m.payment = nil
	m.clearedpayment = false
}

// ClearBroker clears the "broker" edge to the Broker entity.
func (m *PaymentSplitMutation) ClearBroker() {
	m.clearedbroker = true
	m.clearedFields[paymentsplit.FieldBrokerID] = struct{}{}
}

// BrokerCleared reports if the "broker" edge to the Broker entity was cleared.
func (m *PaymentSplitMutation) BrokerCleared() bool {
	return m.clearedbroker
}

// BrokerIDs returns the "broker" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BrokerID instead. It exists only for internal usage by the builders.
func (m *PaymentSplitMutation) BrokerIDs() (ids []uuid.UUID) {
	if id := m.broker; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBroker resets all changes to the "broker" edge.
func (m *PaymentSplitMutation) ResetBroker() {
	m.broker = nil
	m.clearedbroker = false
}

// Where appends a list predicates to the PaymentSplitMutation builder.
func (m *PaymentSplitMutation) Where(ps ...predicate.PaymentSplit) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PaymentSplitMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PaymentSplitMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PaymentSplit, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PaymentSplitMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PaymentSplitMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PaymentSplit).
func (m *PaymentSplitMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PaymentSplitMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.created_at != nil {
		fields = append(fields, paymentsplit.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, paymentsplit.FieldUpdatedAt)
	}
	if m.payment != nil {
		fields = append(fields, paymentsplit.FieldPaymentID)
	}
	if m.broker != nil {
		fields = append(fields, paymentsplit.FieldBrokerID)
	}
	if m.split_origination_percent != nil {
		fields = append(fields, paymentsplit.FieldSplitOriginationPercent)
	}
	if m.split_origination_usd != nil {
		fields = append(fields, paymentsplit.FieldSplitOriginationUsd)
	}
	if m.split_site_percent != nil {
		fields = append(fields, paymentsplit.FieldSplitSitePercent)
	}
	if m.split_site_usd != nil {
		fields = append(fields, paymentsplit.FieldSplitSiteUsd)
	}
	if m.split_deal_percent != nil {
		fields = append(fields, paymentsplit.FieldSplitDealPercent)
	}
	if m.split_deal_usd != nil {
		fields = append(fields, paymentsplit.FieldSplitDealUsd)
	}
	if m.split_broker_total != nil {
		fields = append(fields, paymentsplit.FieldSplitBrokerTotal)
	}
	if m.paid != nil {
		fields = append(fields, paymentsplit.FieldPaid)
	}
	if m.paid_date != nil {
		fields = append(fields, paymentsplit.FieldPaidDate)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PaymentSplitMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case paymentsplit.FieldCreatedAt:
		return m.CreatedAt()
	case paymentsplit.FieldUpdatedAt:
		return m.UpdatedAt()
	case paymentsplit.FieldPaymentID:
		return m.PaymentID()
	case paymentsplit.FieldBrokerID:
		return m.BrokerID()
	case paymentsplit.FieldSplitOriginationPercent:
		return m.SplitOriginationPercent()
	case paymentsplit.FieldSplitOriginationUsd:
		return m.SplitOriginationUsd()
	case paymentsplit.FieldSplitSitePercent:
		return m.SplitSitePercent()
	case paymentsplit.FieldSplitSiteUsd:
		return m.SplitSiteUsd()
	case paymentsplit.FieldSplitDealPercent:
		return m.SplitDealPercent()
	case paymentsplit.FieldSplitDealUsd:
		return m.SplitDealUsd()
	case paymentsplit.FieldSplitBrokerTotal:
		return m.SplitBrokerTotal()
	case paymentsplit.FieldPaid:
		return m.Paid()
	case paymentsplit.FieldPaidDate:
		return m.PaidDate()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PaymentSplitMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case paymentsplit.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case paymentsplit.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case paymentsplit.FieldPaymentID:
		return m.OldPaymentID(ctx)
	case paymentsplit.FieldBrokerID:
		return m.OldBrokerID(ctx)
	case paymentsplit.FieldSplitOriginationPercent:
		return m.OldSplitOriginationPercent(ctx)
	case paymentsplit.FieldSplitOriginationUsd:
		return m.OldSplitOriginationUsd(ctx)
	case paymentsplit.FieldSplitSitePercent:
		return m.OldSplitSitePercent(ctx)
	case paymentsplit.FieldSplitSiteUsd:
		return m.OldSplitSiteUsd(ctx)
	case paymentsplit.FieldSplitDealPercent:
		return m.OldSplitDealPercent(ctx)
	case paymentsplit.FieldSplitDealUsd:
		return m.OldSplitDealUsd(ctx)
	case paymentsplit.FieldSplitBrokerTotal:
		return m.OldSplitBrokerTotal(ctx)
	case paymentsplit.FieldPaid:
		return m.OldPaid(ctx)
	case paymentsplit.FieldPaidDate:
		return m.OldPaidDate(ctx)
	}
	return nil, fmt.Errorf("unknown PaymentSplit field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PaymentSplitMutation) SetField(name string, value ent.Value) error {
	switch name {
	case paymentsplit.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case paymentsplit.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case paymentsplit.FieldPaymentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaymentID(v)
		return nil
	case paymentsplit.FieldBrokerID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBrokerID(v)
		return nil
	case paymentsplit.FieldSplitOriginationPercent:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSplitOriginationPercent(v)
		return nil
	case paymentsplit.FieldSplitOriginationUsd:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSplitOriginationUsd(v)
		return nil
	case paymentsplit.FieldSplitSitePercent:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSplitSitePercent(v)
		return nil
	case paymentsplit.FieldSplitSiteUsd:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSplitSiteUsd(v)
		return nil
	case paymentsplit.FieldSplitDealPercent:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSplitDealPercent(v)
		return nil
	case paymentsplit.FieldSplitDealUsd:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSplitDealUsd(v)
		return nil
	case paymentsplit.FieldSplitBrokerTotal:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSplitBrokerTotal(v)
		return nil
	case paymentsplit.FieldPaid:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaid(v)
		return nil
	case paymentsplit.FieldPaidDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaidDate(v)
		return nil
	}
	return fmt.Errorf("unknown PaymentSplit field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PaymentSplitMutation) AddedFields() []string {
	var fields []string
	if m.addsplit_origination_percent != nil {
		fields = append(fields, paymentsplit.FieldSplitOriginationPercent)
	}
	if m.addsplit_origination_usd != nil {
		fields = append(fields, paymentsplit.FieldSplitOriginationUsd)
	}
	if m.addsplit_site_percent != nil {
		fields = append(fields, paymentsplit.FieldSplitSitePercent)
	}
	if m.addsplit_site_usd != nil {
		fields = append(fields, paymentsplit.FieldSplitSiteUsd)
	}
	if m.addsplit_deal_percent != nil {
		fields = append(fields, paymentsplit.FieldSplitDealPercent)
	}
	if m.addsplit_deal_usd != nil {
		fields = append(fields, paymentsplit.FieldSplitDealUsd)
	}
	if m.addsplit_broker_total != nil {
		fields = append(fields, paymentsplit.FieldSplitBrokerTotal)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PaymentSplitMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case paymentsplit.FieldSplitOriginationPercent:
		return m.AddedSplitOriginationPercent()
	case paymentsplit.FieldSplitOriginationUsd:
		return m.AddedSplitOriginationUsd()
	case paymentsplit.FieldSplitSitePercent:
		return m.AddedSplitSitePercent()
	case paymentsplit.FieldSplitSiteUsd:
		return m.AddedSplitSiteUsd()
	case paymentsplit.FieldSplitDealPercent:
		return m.AddedSplitDealPercent()
	case paymentsplit.FieldSplitDealUsd:
		return m.AddedSplitDealUsd()
	case paymentsplit.FieldSplitBrokerTotal:
		return m.AddedSplitBrokerTotal()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PaymentSplitMutation) AddField(name string, value ent.Value) error {
	switch name {
	case paymentsplit.FieldSplitOriginationPercent:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSplitOriginationPercent(v)
		return nil
	case paymentsplit.FieldSplitOriginationUsd:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSplitOriginationUsd(v)
		return nil
	case paymentsplit.FieldSplitSitePercent:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSplitSitePercent(v)
		return nil
	case paymentsplit.FieldSplitSiteUsd:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSplitSiteUsd(v)
		return nil
	case paymentsplit.FieldSplitDealPercent:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSplitDealPercent(v)
		return nil
	case paymentsplit.FieldSplitDealUsd:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSplitDealUsd(v)
		return nil
	case paymentsplit.FieldSplitBrokerTotal:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSplitBrokerTotal(v)
		return nil
	}
	return fmt.Errorf("unknown PaymentSplit numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PaymentSplitMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(paymentsplit.FieldPaidDate) {
		fields = append(fields, paymentsplit.FieldPaidDate)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PaymentSplitMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PaymentSplitMutation) ClearField(name string) error {
	switch name {
	case paymentsplit.FieldPaidDate:
		m.ClearPaidDate()
		return nil
	}
	return fmt.Errorf("unknown PaymentSplit nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PaymentSplitMutation) ResetField(name string) error {
	switch name {
	case paymentsplit.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case paymentsplit.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case paymentsplit.FieldPaymentID:
		m.ResetPaymentID()
		return nil
	case paymentsplit.FieldBrokerID:
		m.ResetBrokerID()
		return nil
	case paymentsplit.FieldSplitOriginationPercent:
		m.ResetSplitOriginationPercent()
		return nil
	case paymentsplit.FieldSplitOriginationUsd:
		m.ResetSplitOriginationUsd()
		return nil
	case paymentsplit.FieldSplitSitePercent:
		m.ResetSplitSitePercent()
		return nil
	case paymentsplit.FieldSplitSiteUsd:
		m.ResetSplitSiteUsd()
		return nil
	case paymentsplit.FieldSplitDealPercent:
		m.ResetSplitDealPercent()
		return nil
	case paymentsplit.FieldSplitDealUsd:
		m.ResetSplitDealUsd()
		return nil
	case paymentsplit.FieldSplitBrokerTotal:
		m.ResetSplitBrokerTotal()
		return nil
	case paymentsplit.FieldPaid:
		m.ResetPaid()
		return nil
	case paymentsplit.FieldPaidDate:
		m.ResetPaidDate()
		return nil
	}
	return fmt.Errorf("unknown PaymentSplit field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PaymentSplitMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.payment != nil {
		edges = append(edges, paymentsplit.EdgePayment)
	}
	if m.broker != nil {
		edges = append(edges, paymentsplit.EdgeBroker)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PaymentSplitMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case paymentsplit.EdgePayment:
		if id := m.payment; id != nil {
			return []ent.Value{*id}
		}
	case paymentsplit.EdgeBroker:
		if id := m.broker; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PaymentSplitMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PaymentSplitMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PaymentSplitMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedpayment {
		edges = append(edges, paymentsplit.EdgePayment)
	}
	if m.clearedbroker {
		edges = append(edges, paymentsplit.EdgeBroker)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PaymentSplitMutation) EdgeCleared(name string) bool {
	switch name {
	case paymentsplit.EdgePayment:
		return m.clearedpayment
	case paymentsplit.EdgeBroker:
		return m.clearedbroker
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PaymentSplitMutation) ClearEdge(name string) error {
	switch name {
	case paymentsplit.EdgePayment:
		m.ClearPayment()
		return nil
	case paymentsplit.EdgeBroker:
		m.ClearBroker()
		return nil
	}
	return fmt.Errorf("unknown PaymentSplit unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PaymentSplitMutation) ResetEdge(name string) error {
	switch name {
	case paymentsplit.EdgePayment:
		m.ResetPayment()
		return nil
	case paymentsplit.EdgeBroker:
		m.ResetBroker()
		return nil
	}
	return fmt.Errorf("unknown PaymentSplit edge %s", name)
}

// RestaurantLocationMutation represents an operation that mutates the RestaurantLocation nodes in the graph.
type RestaurantLocationMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	updated_at    *time.Time
	store_no      *string
	chain_no      *string
	chain         *string
	geoaddress    *string
	geocity       *string
	geostate      *string
	geozip        *string
	county        *string
	dma_market    *string
	segment       *string
	subsegment    *string
	category      *string
	latitude      *float64
	addlatitude   *float64
	longitude     *float64
	addlongitude  *float64
	yr_built      *int
	addyr_built   *int
	co_fr         *string
	clearedFields map[string]struct{}
	trends        map[uuid.UUID]struct{}
	removedtrends map[uuid.UUID]struct{}
	clearedtrends bool
	done          bool
	oldValue      func(context.Context) (*RestaurantLocation, error)
	predicates    []predicate.RestaurantLocation
}

var _ ent.Mutation = (*RestaurantLocationMutation)(nil)

// restaurantlocationOption allows management of the mutation configuration using functional options.
type restaurantlocationOption func(*RestaurantLocationMutation)

// newRestaurantLocationMutation creates new mutation for the RestaurantLocation entity.
func newRestaurantLocationMutation(c config, op Op, opts ...restaurantlocationOption) *RestaurantLocationMutation {
	m := &RestaurantLocationMutation{
		config:        c,
		op:            op,
		typ:           TypeRestaurantLocation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRestaurantLocationID sets the ID field of the mutation.
func withRestaurantLocationID(id uuid.UUID) restaurantlocationOption {
	return func(m *RestaurantLocationMutation) {
		var (
			err   error
			once  sync.Once
			value *RestaurantLocation
		)
		m.oldValue = func(ctx context.Context) (*RestaurantLocation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RestaurantLocation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRestaurantLocation sets the old RestaurantLocation of the mutation.
func withRestaurantLocation(node *RestaurantLocation) restaurantlocationOption {
	return func(m *RestaurantLocationMutation) {
		m.oldValue = func(context.Context) (*RestaurantLocation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RestaurantLocationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RestaurantLocationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RestaurantLocation entities.
func (m *RestaurantLocationMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RestaurantLocationMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RestaurantLocationMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RestaurantLocation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *RestaurantLocationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RestaurantLocationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RestaurantLocation entity.
// If the RestaurantLocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RestaurantLocationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RestaurantLocationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *RestaurantLocationMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *RestaurantLocationMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the RestaurantLocation entity.
// If the RestaurantLocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RestaurantLocationMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *RestaurantLocationMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetStoreNo sets the "store_no" field.
func (m *RestaurantLocationMutation) SetStoreNo(s string) {
	m.store_no = &s
}

// StoreNo returns the value of the "store_no" field in the mutation.
func (m *RestaurantLocationMutation) StoreNo() (r string, exists bool) {
	v := m.store_no
	if v == nil {
		return
	}
	return *v, true
}

// OldStoreNo returns the old "store_no" field's value of the RestaurantLocation entity.
// If the RestaurantLocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RestaurantLocationMutation) OldStoreNo(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStoreNo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStoreNo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStoreNo: %w", err)
	}
	return oldValue.StoreNo, nil
}

// ResetStoreNo resets all changes to the "store_no" field.
func (m *RestaurantLocationMutation) ResetStoreNo() {
	m.store_no = nil
}

// SetChainNo sets the "chain_no" field.
func (m *RestaurantLocationMutation) SetChainNo(s string) {
	m.chain_no = &s
}

// ChainNo returns the value of the "chain_no" field in the mutation.
func (m *RestaurantLocationMutation) ChainNo() (r string, exists bool) {
	v := m.chain_no
	if v == nil {
		return
	}
	return *v, true
}

// OldChainNo returns the old "chain_no" field's value of the RestaurantLocation entity.
// If the RestaurantLocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RestaurantLocationMutation) OldChainNo(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChainNo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChainNo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChainNo: %w", err)
	}
	return oldValue.ChainNo, nil
}

// ClearChainNo clears the value of the "chain_no" field.
func (m *RestaurantLocationMutation) ClearChainNo() {
	m.chain_no = nil
	m.clearedFields[restaurantlocation.FieldChainNo] = struct{}{}
}

// ChainNoCleared returns if the "chain_no" field was cleared in this mutation.
func (m *RestaurantLocationMutation) ChainNoCleared() bool {
	_, ok := m.clearedFields[restaurantlocation.FieldChainNo]
	return ok
}

// ResetChainNo resets all changes to the "chain_no" field.
func (m *RestaurantLocationMutation) ResetChainNo() {
	m.chain_no = nil
	delete(m.clearedFields, restaurantlocation.FieldChainNo)
}

// SetChain sets the "chain" field.
func (m *RestaurantLocationMutation) SetChain(s string) {
	m.chain = &s
}

// Chain returns the value of the "chain" field in the mutation.
func (m *RestaurantLocationMutation) Chain() (r string, exists bool) {
	v := m.chain
	if v == nil {
		return
	}
	return *v, true
}

// OldChain returns the old "chain" field's value of the RestaurantLocation entity.
// If the RestaurantLocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RestaurantLocationMutation) OldChain(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChain is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChain requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChain: %w", err)
	}
	return oldValue.Chain, nil
}

// ClearChain clears the value of the "chain" field.
func (m *RestaurantLocationMutation) ClearChain() {
	m.chain = nil
	m.clearedFields[restaurantlocation.FieldChain] = struct{}{}
}

// ChainCleared returns if the "chain" field was cleared in this mutation.
func (m *RestaurantLocationMutation) ChainCleared() bool {
	_, ok := m.clearedFields[restaurantlocation.FieldChain]
	return ok
}

// ResetChain resets all changes to the "chain" field.
func (m *RestaurantLocationMutation) ResetChain() {
	m.chain = nil
	delete(m.clearedFields, restaurantlocation.FieldChain)
}

// SetGeoaddress sets the "geoaddress" field.
func (m *RestaurantLocationMutation) SetGeoaddress(s string) {
	m.geoaddress = &s
}

// Geoaddress returns the value of the "geoaddress" field in the mutation.
func (m *RestaurantLocationMutation) Geoaddress() (r string, exists bool) {
	v := m.geoaddress
	if v == nil {
		return
	}
	return *v, true
}

// OldGeoaddress returns the old "geoaddress" field's value of the RestaurantLocation entity.
// If the RestaurantLocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RestaurantLocationMutation) OldGeoaddress(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGeoaddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGeoaddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGeoaddress: %w", err)
	}
	return oldValue.Geoaddress, nil
}

// ClearGeoaddress clears the value of the "geoaddress" field.
func (m *RestaurantLocationMutation) ClearGeoaddress() {
	m.geoaddress = nil
	m.clearedFields[restaurantlocation.FieldGeoaddress] = struct{}{}
}

// GeoaddressCleared returns if the "geoaddress" field was cleared in this mutation.
func (m *RestaurantLocationMutation) GeoaddressCleared() bool {
	_, ok := m.clearedFields[restaurantlocation.FieldGeoaddress]
	return ok
}

// ResetGeoaddress resets all changes to the "geoaddress" field.
func (m *RestaurantLocationMutation) ResetGeoaddress() {
	m.geoaddress = nil
	delete(m.clearedFields, restaurantlocation.FieldGeoaddress)
}

// SetGeocity sets the "geocity" field.
func (m *RestaurantLocationMutation) SetGeocity(s string) {
	m.geocity = &s
}

// Geocity returns the value of the "geocity" field in the mutation.
func (m *RestaurantLocationMutation) Geocity() (r string, exists bool) {
	v := m.geocity
	if v == nil {
		return
	}
	return *v, true
}

// OldGeocity returns the old "geocity" field's value of the RestaurantLocation entity.
// If the RestaurantLocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RestaurantLocationMutation) OldGeocity(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGeocity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGeocity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGeocity: %w", err)
	}
	return oldValue.Geocity, nil
}

// ClearGeocity clears the value of the "geocity" field.
func (m *RestaurantLocationMutation) ClearGeocity() {
	m.geocity = nil
	m.clearedFields[restaurantlocation.FieldGeocity] = struct{}{}
}

// GeocityCleared returns if the "geocity" field was cleared in this mutation.
func (m *RestaurantLocationMutation) GeocityCleared() bool {
	_, ok := m.clearedFields[restaurantlocation.FieldGeocity]
	return ok
}

// ResetGeocity resets all changes to the "geocity" field.
func (m *RestaurantLocationMutation) ResetGeocity() {
	m.geocity = nil
	delete(m.clearedFields, restaurantlocation.FieldGeocity)
}

// SetGeostate sets the "geostate" field.
func (m *RestaurantLocationMutation) SetGeostate(s string) {
	m.geostate = &s
}

// Geostate returns the value of the "geostate" field in the mutation.
func (m *RestaurantLocationMutation) Geostate() (r string, exists bool) {
	v := m.geostate
	if v == nil {
		return
	}
	return *v, true
}

// OldGeostate returns the old "geostate" field's value of the RestaurantLocation entity.
// If the RestaurantLocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RestaurantLocationMutation) OldGeostate(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGeostate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGeostate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGeostate: %w", err)
	}
	return oldValue.Geostate, nil
}

// ClearGeostate clears the value of the "geostate" field.
func (m *RestaurantLocationMutation) ClearGeostate() {
	m.geostate = nil
	m.clearedFields[restaurantlocation.FieldGeostate] = struct{}{}
}

// GeostateCleared returns if the "geostate" field was cleared in this mutation.
func (m *RestaurantLocationMutation) GeostateCleared() bool {
	_, ok := m.clearedFields[restaurantlocation.FieldGeostate]
	return ok
}

// ResetGeostate resets all changes to the "geostate" field.
func (m *RestaurantLocationMutation) ResetGeostate() {
	m.geostate = nil
	delete(m.clearedFields, restaurantlocation.FieldGeostate)
}

// SetGeozip sets the "geozip" field.
func (m *RestaurantLocationMutation) SetGeozip(s string) {
	m.geozip = &s
}

// Geozip returns the value of the "geozip" field in the mutation.
func (m *RestaurantLocationMutation) Geozip() (r string, exists bool) {
	v := m.geozip
	if v == nil {
		return
	}
	return *v, true
}

// OldGeozip returns the old "geozip" field's value of the RestaurantLocation entity.
// If the RestaurantLocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RestaurantLocationMutation) OldGeozip(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGeozip is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGeozip requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGeozip: %w", err)
	}
	return oldValue.Geozip, nil
}

// ClearGeozip clears the value of the "geozip" field.
func (m *RestaurantLocationMutation) ClearGeozip() {
	m.geozip = nil
	m.clearedFields[restaurantlocation.FieldGeozip] = struct{}{}
}

// GeozipCleared returns if the "geozip" field was cleared in this mutation.
func (m *RestaurantLocationMutation) GeozipCleared() bool {
	_, ok := m.clearedFields[restaurantlocation.FieldGeozip]
	return ok
}

// ResetGeozip resets all changes to the "geozip" field.
func (m *RestaurantLocationMutation) ResetGeozip() {
	m.geozip = nil
	delete(m.clearedFields, restaurantlocation.FieldGeozip)
}

// SetCounty sets the "county" field.
func (m *RestaurantLocationMutation) SetCounty(s string) {
	m.county = &s
}

// County returns the value of the "county" field in the mutation.
func (m *RestaurantLocationMutation) County() (r string, exists bool) {
	v := m.county
	if v == nil {
		return
	}
	return *v, true
}

// OldCounty returns the old "county" field's value of the RestaurantLocation entity.
// If the RestaurantLocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RestaurantLocationMutation) OldCounty(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCounty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCounty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCounty: %w", err)
	}
	return oldValue.County, nil
}

// ClearCounty clears the value of the "county" field.
func (m *RestaurantLocationMutation) ClearCounty() {
	m.county = nil
	m.clearedFields[restaurantlocation.FieldCounty] = struct{}{}
}

// CountyCleared returns if the "county" field was cleared in this mutation.
func (m *RestaurantLocationMutation) CountyCleared() bool {
	_, ok := m.clearedFields[restaurantlocation.FieldCounty]
	return ok
}

// ResetCounty resets all changes to the "county" field.
func (m *RestaurantLocationMutation) ResetCounty() {
	m.county = nil
	delete(m.clearedFields, restaurantlocation.FieldCounty)
}

// SetDmaMarket sets the "dma_market" field.
func (m *RestaurantLocationMutation) SetDmaMarket(s string) {
	m.dma_market = &s
}

// DmaMarket returns the value of the "dma_market" field in the mutation.
func (m *RestaurantLocationMutation) DmaMarket() (r string, exists bool) {
	v := m.dma_market
	if v == nil {
		return
	}
	return *v, true
}

// OldDmaMarket returns the old "dma_market" field's value of the RestaurantLocation entity.
// If the RestaurantLocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RestaurantLocationMutation) OldDmaMarket(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDmaMarket is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDmaMarket requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDmaMarket: %w", err)
	}
	return oldValue.DmaMarket, nil
}

// ClearDmaMarket clears the value of the "dma_market" field.
func (m *RestaurantLocationMutation) ClearDmaMarket() {
	m.dma_market = nil
	m.clearedFields[restaurantlocation.FieldDmaMarket] = struct{}{}
}

// DmaMarketCleared returns if the "dma_market" field was cleared in this mutation.
func (m *RestaurantLocationMutation) DmaMarketCleared() bool {
	_, ok := m.clearedFields[restaurantlocation.FieldDmaMarket]
	return ok
}

// ResetDmaMarket resets all changes to the "dma_market" field.
func (m *RestaurantLocationMutation) ResetDmaMarket() {
	m.dma_market = nil
	delete(m.clearedFields, restaurantlocation.FieldDmaMarket)
}

// SetSegment sets the "segment" field.
func (m *RestaurantLocationMutation) SetSegment(s string) {
	m.segment = &s
}

// Segment returns the value of the "segment" field in the mutation.
func (m *RestaurantLocationMutation) Segment() (r string, exists bool) {
	v := m.segment
	if v == nil {
		return
	}
	return *v, true
}

// OldSegment returns the old "segment" field's value of the RestaurantLocation entity.
// If the RestaurantLocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RestaurantLocationMutation) OldSegment(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSegment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSegment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSegment: %w", err)
	}
	return oldValue.Segment, nil
}

// ClearSegment clears the value of the "segment" field.
func (m *RestaurantLocationMutation) ClearSegment() {
	m.segment = nil
	m.clearedFields[restaurantlocation.FieldSegment] = struct{}{}
}

// SegmentCleared returns if the "segment" field was cleared in this mutation.
func (m *RestaurantLocationMutation) SegmentCleared() bool {
	_, ok := m.clearedFields[restaurantlocation.FieldSegment]
	return ok
}

// ResetSegment resets all changes to the "segment" field.
func (m *RestaurantLocationMutation) ResetSegment() {
	m.segment = nil
	delete(m.clearedFields, restaurantlocation.FieldSegment)
}

// SetSubsegment sets the "subsegment" field.
func (m *RestaurantLocationMutation) SetSubsegment(s string) {
	m.subsegment = &s
}

// Subsegment returns the value of the "subsegment" field in the mutation.
func (m *RestaurantLocationMutation) Subsegment() (r string, exists bool) {
	v := m.subsegment
	if v == nil {
		return
	}
	return *v, true
}

// OldSubsegment returns the old "subsegment" field's value of the RestaurantLocation entity.
// If the RestaurantLocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RestaurantLocationMutation) OldSubsegment(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubsegment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubsegment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubsegment: %w", err)
	}
	return oldValue.Subsegment, nil
}

// ClearSubsegment clears the value of the "subsegment" field.
func (m *RestaurantLocationMutation) ClearSubsegment() {
	m.subsegment = nil
	m.clearedFields[restaurantlocation.FieldSubsegment] = struct{}{}
}

// SubsegmentCleared returns if the "subsegment" field was cleared in this mutation.
func (m *RestaurantLocationMutation) SubsegmentCleared() bool {
	_, ok := m.clearedFields[restaurantlocation.FieldSubsegment]
	return ok
}

// ResetSubsegment resets all changes to the "subsegment" field.
func (m *RestaurantLocationMutation) ResetSubsegment() {
	m.subsegment = nil
	delete(m.clearedFields, restaurantlocation.FieldSubsegment)
}

// SetCategory sets the "category" field.
func (m *RestaurantLocationMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *RestaurantLocationMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the RestaurantLocation entity.
// If the RestaurantLocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RestaurantLocationMutation) OldCategory(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ClearCategory clears the value of the "category" field.
func (m *RestaurantLocationMutation) ClearCategory() {
	m.category = nil
	m.clearedFields[restaurantlocation.FieldCategory] = struct{}{}
}

// CategoryCleared returns if the "category" field was cleared in this mutation.
func (m *RestaurantLocationMutation) CategoryCleared() bool {
	_, ok := m.clearedFields[restaurantlocation.FieldCategory]
	return ok
}

// ResetCategory resets all changes to the "category" field.
func (m *RestaurantLocationMutation) ResetCategory() {
	m.category = nil
	delete(m.clearedFields, restaurantlocation.FieldCategory)
}

// SetLatitude sets the "latitude" field.
func (m *RestaurantLocationMutation) SetLatitude(f float64) {
	m.latitude = &f
	m.addlatitude = nil
}

// Latitude returns the value of the "latitude" field in the mutation.
func (m *RestaurantLocationMutation) Latitude() (r float64, exists bool) {
	v := m.latitude
	if v == nil {
		return
	}
	return *v, true
}

// OldLatitude returns the old "latitude" field's value of the RestaurantLocation entity.
// If the RestaurantLocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RestaurantLocationMutation) OldLatitude(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatitude is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatitude requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatitude: %w", err)
	}
	return oldValue.Latitude, nil
}

// AddLatitude adds f to the "latitude" field.
func (m *RestaurantLocationMutation) AddLatitude(f float64) {
	if m.addlatitude != nil {
		*m.addlatitude += f
	} else {
		m.addlatitude = &f
	}
}

// AddedLatitude returns the value that was added to the "latitude" field in this mutation.
func (m *RestaurantLocationMutation) AddedLatitude() (r float64, exists bool) {
	v := m.addlatitude
	if v == nil {
		return
	}
	return *v, true
}

// ClearLatitude clears the value of the "latitude" field.
func (m *RestaurantLocationMutation) ClearLatitude() {
	m.latitude = nil
	m.addlatitude = nil
	m.clearedFields[restaurantlocation.FieldLatitude] = struct{}{}
}

// LatitudeCleared returns if the "latitude" field was cleared in this mutation.
func (m *RestaurantLocationMutation) LatitudeCleared() bool {
	_, ok := m.clearedFields[restaurantlocation.FieldLatitude]
	return ok
}

// ResetLatitude resets all changes to the "latitude" field.
func (m *RestaurantLocationMutation) ResetLatitude() {
	m.latitude = nil
	m.addlatitude = nil
	delete(m.clearedFields, restaurantlocation.FieldLatitude)
}

// SetLongitude sets the "longitude" field.
func (m *RestaurantLocationMutation) SetLongitude(f float64) {
	m.longitude = &f
	m.addlongitude = nil
}

// Longitude returns the value of the "longitude" field in the mutation.
func (m *RestaurantLocationMutation) Longitude() (r float64, exists bool) {
	v := m.longitude
	if v == nil {
		return
	}
	return *v, true
}

// OldLongitude returns the old "longitude" field's value of the RestaurantLocation entity.
// If the RestaurantLocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RestaurantLocationMutation) OldLongitude(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLongitude is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLongitude requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLongitude: %w", err)
	}
	return oldValue.Longitude, nil
}

// AddLongitude adds f to the "longitude" field.
func (m *RestaurantLocationMutation) AddLongitude(f float64) {
	if m.addlongitude != nil {
		*m.addlongitude += f
	} else {
		m.addlongitude = &f
	}
}

// AddedLongitude returns the value that was added to the "longitude" field in this mutation.
func (m *RestaurantLocationMutation) AddedLongitude() (r float64, exists bool) {
	v := m.addlongitude
	if v == nil {
		return
	}
	return *v, true
}

// ClearLongitude clears the value of the "longitude" field.
func (m *RestaurantLocationMutation) ClearLongitude() {
	m.longitude = nil
	m.addlongitude = nil
	m.clearedFields[restaurantlocation.FieldLongitude] = struct{}{}
}

// LongitudeCleared returns if the "longitude" field was cleared in this mutation.
func (m *RestaurantLocationMutation) LongitudeCleared() bool {
	_, ok := m.clearedFields[restaurantlocation.FieldLongitude]
	return ok
}

// ResetLongitude resets all changes to the "longitude" field.
func (m *RestaurantLocationMutation) ResetLongitude() {
	m.longitude = nil
	m.addlongitude = nil
	delete(m.clearedFields, restaurantlocation.FieldLongitude)
}

// SetYrBuilt sets the "yr_built" field.
func (m *RestaurantLocationMutation) SetYrBuilt(i int) {
	m.yr_built = &i
	m.addyr_built = nil
}

// YrBuilt returns the value of the "yr_built" field in the mutation.
func (m *RestaurantLocationMutation) YrBuilt() (r int, exists bool) {
	v := m.yr_built
	if v == nil {
		return
	}
	return *v, true
}

// OldYrBuilt returns the old "yr_built" field's value of the RestaurantLocation entity.
// If the RestaurantLocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RestaurantLocationMutation) OldYrBuilt(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldYrBuilt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldYrBuilt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldYrBuilt: %w", err)
	}
	return oldValue.YrBuilt, nil
}

// AddYrBuilt adds i to the "yr_built" field.
func (m *RestaurantLocationMutation) AddYrBuilt(i int) {
	if m.addyr_built != nil {
		*m.addyr_built += i
	} else {
		m.addyr_built = &i
	}
}

// AddedYrBuilt returns the value that was added to the "yr_built" field in this mutation.
func (m *RestaurantLocationMutation) AddedYrBuilt() (r int, exists bool) {
	v := m.addyr_built
	if v == nil {
		return
	}
	return *v, true
}

// ClearYrBuilt clears the value of the "yr_built" field.
func (m *RestaurantLocationMutation) ClearYrBuilt() {
	m.yr_built = nil
	m.addyr_built = nil
	m.clearedFields[restaurantlocation.FieldYrBuilt] = struct{}{}
}

// YrBuiltCleared returns if the "yr_built" field was cleared in this mutation.
func (m *RestaurantLocationMutation) YrBuiltCleared() bool {
	_, ok := m.clearedFields[restaurantlocation.FieldYrBuilt]
	return ok
}

// ResetYrBuilt resets all changes to the "yr_built" field.
func (m *RestaurantLocationMutation) ResetYrBuilt() {
	m.yr_built = nil
	m.addyr_built = nil
	delete(m.clearedFields, restaurantlocation.FieldYrBuilt)
}

// SetCoFr sets the "co_fr" field.
func (m *RestaurantLocationMutation) SetCoFr(s string) {
	m.co_fr = &s
}

// CoFr returns the value of the "co_fr" field in the mutation.
func (m *RestaurantLocationMutation) CoFr() (r string, exists bool) {
	v := m.co_fr
	if v == nil {
		return
	}
	return *v, true
}

// OldCoFr returns the old "co_fr" field's value of the RestaurantLocation entity.
// If the RestaurantLocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RestaurantLocationMutation) OldCoFr(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCoFr is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCoFr requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCoFr: %w", err)
	}
	return oldValue.CoFr, nil
}

// ClearCoFr clears the value of the "co_fr" field.
func (m *RestaurantLocationMutation) ClearCoFr() {
	m.co_fr = nil
	m.clearedFields[restaurantlocation.FieldCoFr] = struct{}{}
}

// CoFrCleared returns if the "co_fr" field was cleared in this mutation.
func (m *RestaurantLocationMutation) CoFrCleared() bool {
	_, ok := m.clearedFields[restaurantlocation.FieldCoFr]
	return ok
}

// ResetCoFr resets all changes to the "co_fr" field.
func (m *RestaurantLocationMutation) ResetCoFr() {
	m.co_fr = nil
	delete(m.clearedFields, restaurantlocation.FieldCoFr)
}

// AddTrendIDs adds the "trends" edge to the RestaurantTrend entity by ids.
func (m *RestaurantLocationMutation) AddTrendIDs(ids ...uuid.UUID) {
	if m.trends == nil {
		m.trends = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.trends[ids[i]] = struct{}{}
	}
}

// ClearTrends clears the "trends" edge to the RestaurantTrend entity.
func (m *RestaurantLocationMutation) ClearTrends() {
	m.clearedtrends = true
}

// TrendsCleared reports if the "trends" edge to the RestaurantTrend entity was cleared.
func (m *RestaurantLocationMutation) TrendsCleared() bool {
	return m.clearedtrends
}

// RemoveTrendIDs removes the "trends" edge to the RestaurantTrend entity by IDs.
func (m *RestaurantLocationMutation) RemoveTrendIDs(ids ...uuid.UUID) {
	if m.removedtrends == nil {
		m.removedtrends = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.trends, ids[i])
		m.removedtrends[ids[i]] = struct{}{}
	}
}

// RemovedTrends returns the removed IDs of the "trends" edge to the RestaurantTrend entity.
func (m *RestaurantLocationMutation) RemovedTrendsIDs() (ids []uuid.UUID) {
	for id := range m.removedtrends {
		ids = append(ids, id)
	}
	return
}

// TrendsIDs returns the "trends" edge IDs in the mutation.
func (m *RestaurantLocationMutation) TrendsIDs() (ids []uuid.UUID) {
	for id := range m.trends {
		ids = append(ids, id)
	}
	return
}

// ResetTrends resets all changes to the "trends" edge.
func (m *RestaurantLocationMutation) ResetTrends() {
	m.trends = nil
	m.clearedtrends = false
	m.removedtrends = nil
}

// Where appends a list predicates to the RestaurantLocationMutation builder.
func (m *RestaurantLocationMutation) Where(ps ...predicate.RestaurantLocation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RestaurantLocationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RestaurantLocationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RestaurantLocation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RestaurantLocationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RestaurantLocationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RestaurantLocation).
func (m *RestaurantLocationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RestaurantLocationMutation) Fields() []string {
	fields := make([]string, 0, 18)
	if m.created_at != nil {
		fields = append(fields, restaurantlocation.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, restaurantlocation.FieldUpdatedAt)
	}
	if m.store_no != nil {
		fields = append(fields, restaurantlocation.FieldStoreNo)
	}
	if m.chain_no != nil {
		fields = append(fields, restaurantlocation.FieldChainNo)
	}
	if m.chain != nil {
		fields = append(fields, restaurantlocation.FieldChain)
	}
	if m.geoaddress != nil {
		fields = append(fields, restaurantlocation.FieldGeoaddress)
	}
	if m.geocity != nil {
		fields = append(fields, restaurantlocation.FieldGeocity)
	}
	if m.geostate != nil {
		fields = append(fields, restaurantlocation.FieldGeostate)
	}
	if m.geozip != nil {
		fields = append(fields, restaurantlocation.FieldGeozip)
	}
	if m.county != nil {
		fields = append(fields, restaurantlocation.FieldCounty)
	}
	if m.dma_market != nil {
		fields = append(fields, restaurantlocation.FieldDmaMarket)
	}
	if m.segment != nil {
		fields = append(fields, restaurantlocation.FieldSegment)
	}
	if m.subsegment != nil {
		fields = append(fields, restaurantlocation.FieldSubsegment)
	}
	if m.category != nil {
		fields = append(fields, restaurantlocation.FieldCategory)
	}
	if m.latitude != nil {
		fields = append(fields, restaurantlocation.FieldLatitude)
	}
	if m.longitude != nil {
		fields = append(fields, restaurantlocation.FieldLongitude)
	}
	if m.yr_built != nil {
		fields = append(fields, restaurantlocation.FieldYrBuilt)
	}
	if m.co_fr != nil {
		fields = append(fields, restaurantlocation.FieldCoFr)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RestaurantLocationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case restaurantlocation.FieldCreatedAt:
		return m.CreatedAt()
	case restaurantlocation.FieldUpdatedAt:
		return m.UpdatedAt()
	case restaurantlocation.FieldStoreNo:
		return m.StoreNo()
	case restaurantlocation.FieldChainNo:
		return m.ChainNo()
	case restaurantlocation.FieldChain:
		return m.Chain()
	case restaurantlocation.FieldGeoaddress:
		return m.Geoaddress()
	case restaurantlocation.FieldGeocity:
		return m.Geocity()
	case restaurantlocation.FieldGeostate:
		return m.Geostate()
	case restaurantlocation.FieldGeozip:
		return m.Geozip()
	case restaurantlocation.FieldCounty:
		return m.County()
	case restaurantlocation.FieldDmaMarket:
		return m.DmaMarket()
	case restaurantlocation.FieldSegment:
		return m.Segment()
	case restaurantlocation.FieldSubsegment:
		return m.Subsegment()
	case restaurantlocation.FieldCategory:
		return m.Category()
	case restaurantlocation.FieldLatitude:
		return m.Latitude()
	case restaurantlocation.FieldLongitude:
		return m.Longitude()
	case restaurantlocation.FieldYrBuilt:
		return m.YrBuilt()
	case restaurantlocation.FieldCoFr:
		return m.CoFr()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RestaurantLocationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case restaurantlocation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case restaurantlocation.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case restaurantlocation.FieldStoreNo:
		return m.OldStoreNo(ctx)
	case restaurantlocation.FieldChainNo:
		return m.OldChainNo(ctx)
	case restaurantlocation.FieldChain:
		return m.OldChain(ctx)
	case restaurantlocation.FieldGeoaddress:
		return m.OldGeoaddress(ctx)
	case restaurantlocation.FieldGeocity:
		return m.OldGeocity(ctx)
	case restaurantlocation.FieldGeostate:
		return m.OldGeostate(ctx)
	case restaurantlocation.FieldGeozip:
		return m.OldGeozip(ctx)
	case restaurantlocation.FieldCounty:
		return m.OldCounty(ctx)
	case restaurantlocation.FieldDmaMarket:
		return m.OldDmaMarket(ctx)
	case restaurantlocation.FieldSegment:
		return m.OldSegment(ctx)
	case restaurantlocation.FieldSubsegment:
		return m.OldSubsegment(ctx)
	case restaurantlocation.FieldCategory:
		return m.OldCategory(ctx)
	case restaurantlocation.FieldLatitude:
		return m.OldLatitude(ctx)
	case restaurantlocation.FieldLongitude:
		return m.OldLongitude(ctx)
	case restaurantlocation.FieldYrBuilt:
		return m.OldYrBuilt(ctx)
	case restaurantlocation.FieldCoFr:
		return m.OldCoFr(ctx)
	}
	return nil, fmt.Errorf("unknown RestaurantLocation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RestaurantLocationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case restaurantlocation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case restaurantlocation.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case restaurantlocation.FieldStoreNo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStoreNo(v)
		return nil
	case restaurantlocation.FieldChainNo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChainNo(v)
		return nil
	case restaurantlocation.FieldChain:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChain(v)
		return nil
	case restaurantlocation.FieldGeoaddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGeoaddress(v)
		return nil
	case restaurantlocation.FieldGeocity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGeocity(v)
		return nil
	case restaurantlocation.FieldGeostate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGeostate(v)
		return nil
	case restaurantlocation.FieldGeozip:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGeozip(v)
		return nil
	case restaurantlocation.FieldCounty:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCounty(v)
		return nil
	case restaurantlocation.FieldDmaMarket:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDmaMarket(v)
		return nil
	case restaurantlocation.FieldSegment:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSegment(v)
		return nil
	case restaurantlocation.FieldSubsegment:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubsegment(v)
		return nil
	case restaurantlocation.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case restaurantlocation.FieldLatitude:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatitude(v)
		return nil
	case restaurantlocation.FieldLongitude:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLongitude(v)
		return nil
	case restaurantlocation.FieldYrBuilt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetYrBuilt(v)
		return nil
	case restaurantlocation.FieldCoFr:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCoFr(v)
		return nil
	}
	return fmt.Errorf("unknown RestaurantLocation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RestaurantLocationMutation) AddedFields() []string {
	var fields []string
	if m.addlatitude != nil {
		fields = append(fields, restaurantlocation.FieldLatitude)
	}
	if m.addlongitude != nil {
		fields = append(fields, restaurantlocation.FieldLongitude)
	}
	if m.addyr_built != nil {
		fields = append(fields, restaurantlocation.FieldYrBuilt)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RestaurantLocationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case restaurantlocation.FieldLatitude:
		return m.AddedLatitude()
	case restaurantlocation.FieldLongitude:
		return m.AddedLongitude()
	case restaurantlocation.FieldYrBuilt:
		return m.AddedYrBuilt()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RestaurantLocationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case restaurantlocation.FieldLatitude:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatitude(v)
		return nil
	case restaurantlocation.FieldLongitude:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLongitude(v)
		return nil
	case restaurantlocation.FieldYrBuilt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddYrBuilt(v)
		return nil
	}
	return fmt.Errorf("unknown RestaurantLocation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RestaurantLocationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(restaurantlocation.FieldChainNo) {
		fields = append(fields, restaurantlocation.FieldChainNo)
	}
	if m.FieldCleared(restaurantlocation.FieldChain) {
		fields = append(fields, restaurantlocation.FieldChain)
	}
	if m.FieldCleared(restaurantlocation.FieldGeoaddress) {
		fields = append(fields, restaurantlocation.FieldGeoaddress)
	}
	if m.FieldCleared(restaurantlocation.FieldGeocity) {
		fields = append(fields, restaurantlocation.FieldGeocity)
	}
	if m.FieldCleared(restaurantlocation.FieldGeostate) {
		fields = append(fields, restaurantlocation.FieldGeostate)
	}
	if m.FieldCleared(restaurantlocation.FieldGeozip) {
		fields = append(fields, restaurantlocation.FieldGeozip)
	}
	if m.FieldCleared(restaurantlocation.FieldCounty) {
		fields = append(fields, restaurantlocation.FieldCounty)
	}
	if m.FieldCleared(restaurantlocation.FieldDmaMarket) {
		fields = append(fields, restaurantlocation.FieldDmaMarket)
	}
	if m.FieldCleared(restaurantlocation.FieldSegment) {
		fields = append(fields, restaurantlocation.FieldSegment)
	}
	if m.FieldCleared(restaurantlocation.FieldSubsegment) {
		fields = append(fields, restaurantlocation.FieldSubsegment)
	}
	if m.FieldCleared(restaurantlocation.FieldCategory) {
		fields = append(fields, restaurantlocation.FieldCategory)
	}
	if m.FieldCleared(restaurantlocation.FieldLatitude) {
		fields = append(fields, restaurantlocation.FieldLatitude)
	}
	if m.FieldCleared(restaurantlocation.FieldLongitude) {
		fields = append(fields, restaurantlocation.FieldLongitude)
	}
	if m.FieldCleared(restaurantlocation.FieldYrBuilt) {
		fields = append(fields, restaurantlocation.FieldYrBuilt)
	}
	if m.FieldCleared(restaurantlocation.FieldCoFr) {
		fields = append(fields, restaurantlocation.FieldCoFr)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RestaurantLocationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RestaurantLocationMutation) ClearField(name string) error {
	switch name {
	case restaurantlocation.FieldChainNo:
		m.ClearChainNo()
		return nil
	case restaurantlocation.FieldChain:
		m.ClearChain()
		return nil
	case restaurantlocation.FieldGeoaddress:
		m.ClearGeoaddress()
		return nil
	case restaurantlocation.FieldGeocity:
		m.ClearGeocity()
		return nil
	case restaurantlocation.FieldGeostate:
		m.ClearGeostate()
		return nil
	case restaurantlocation.FieldGeozip:
		m.ClearGeozip()
		return nil
	case restaurantlocation.FieldCounty:
		m.ClearCounty()
		return nil
	case restaurantlocation.FieldDmaMarket:
		m.ClearDmaMarket()
		return nil
	case restaurantlocation.FieldSegment:
		m.ClearSegment()
		return nil
	case restaurantlocation.FieldSubsegment:
		m.ClearSubsegment()
		return nil
	case restaurantlocation.FieldCategory:
		m.ClearCategory()
		return nil
	case restaurantlocation.FieldLatitude:
		m.ClearLatitude()
		return nil
	case restaurantlocation.FieldLongitude:
		m.ClearLongitude()
		return nil
	case restaurantlocation.FieldYrBuilt:
		m.ClearYrBuilt()
		return nil
	case restaurantlocation.FieldCoFr:
		m.ClearCoFr()
		return nil
	}
	return fmt.Errorf("unknown RestaurantLocation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RestaurantLocationMutation) ResetField(name string) error {
	switch name {
	case restaurantlocation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case restaurantlocation.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case restaurantlocation.FieldStoreNo:
		m.ResetStoreNo()
		return nil
	case restaurantlocation.FieldChainNo:
		m.ResetChainNo()
		return nil
	case restaurantlocation.FieldChain:
		m.ResetChain()
		return nil
	case restaurantlocation.FieldGeoaddress:
		m.ResetGeoaddress()
		return nil
	case restaurantlocation.FieldGeocity:
		m.ResetGeocity()
		return nil
	case restaurantlocation.FieldGeostate:
		m.ResetGeostate()
		return nil
	case restaurantlocation.FieldGeozip:
		m.ResetGeozip()
		return nil
	case restaurantlocation.FieldCounty:
		m.ResetCounty()
		return nil
	case restaurantlocation.FieldDmaMarket:
		m.ResetDmaMarket()
		return nil
	case restaurantlocation.FieldSegment:
		m.ResetSegment()
		return nil
	case restaurantlocation.FieldSubsegment:
		m.ResetSubsegment()
		return nil
	case restaurantlocation.FieldCategory:
		m.ResetCategory()
		return nil
	case restaurantlocation.FieldLatitude:
		m.ResetLatitude()
		return nil
	case restaurantlocation.FieldLongitude:
		m.ResetLongitude()
		return nil
	case restaurantlocation.FieldYrBuilt:
		m.ResetYrBuilt()
		return nil
	case restaurantlocation.FieldCoFr:
		m.ResetCoFr()
		return nil
	}
	return fmt.Errorf("unknown RestaurantLocation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RestaurantLocationMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.trends != nil {
		edges = append(edges, restaurantlocation.EdgeTrends)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RestaurantLocationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case restaurantlocation.EdgeTrends:
		ids := make([]ent.Value, 0, len(m.trends))
		for id := range m.trends {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RestaurantLocationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedtrends != nil {
		edges = append(edges, restaurantlocation.EdgeTrends)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RestaurantLocationMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case restaurantlocation.EdgeTrends:
		ids := make([]ent.Value, 0, len(m.removedtrends))
		for id := range m.removedtrends {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RestaurantLocationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtrends {
		edges = append(edges, restaurantlocation.EdgeTrends)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RestaurantLocationMutation) EdgeCleared(name string) bool {
	switch name {
	case restaurantlocation.EdgeTrends:
		return m.clearedtrends
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RestaurantLocationMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown RestaurantLocation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RestaurantLocationMutation) ResetEdge(name string) error {
	switch name {
	case restaurantlocation.EdgeTrends:
		m.ResetTrends()
		return nil
	}
	return fmt.Errorf("unknown RestaurantLocation edge %s", name)
}

// RestaurantTrendMutation represents an operation that mutates the RestaurantTrend nodes in the graph.
type RestaurantTrendMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	created_at           *time.Time
	updated_at           *time.Time
	year                 *int
	addyear              *int
	curr_natl_grade      *string
	curr_natl_index      *float64
	addcurr_natl_index   *float64
	curr_annual_sls_k    *float64
	addcurr_annual_sls_k *float64
	curr_mkt_grade       *string
	curr_mkt_index       *float64
	addcurr_mkt_index    *float64
	past_natl_grade      *string
	past_natl_index      *float64
	addpast_natl_index   *float64
	past_annual_sls_k    *float64
	addpast_annual_sls_k *float64
	past_mkt_grade       *string
	past_mkt_index       *float64
	addpast_mkt_index    *float64
	survey_yr_last       *int
	addsurvey_yr_last    *int
	survey_yr_next       *int
	addsurvey_yr_next    *int
	total_surveys        *int
	addtotal_surveys     *int
	clearedFields        map[string]struct{}
	location             *uuid.UUID
	clearedlocation      bool
	done                 bool
	oldValue             func(context.Context) (*RestaurantTrend, error)
	predicates           []predicate.RestaurantTrend
}

var _ ent.Mutation = (*RestaurantTrendMutation)(nil)

// restauranttrendOption allows management of the mutation configuration using functional options.
type restauranttrendOption func(*RestaurantTrendMutation)

// newRestaurantTrendMutation creates new mutation for the RestaurantTrend entity.
func newRestaurantTrendMutation(c config, op Op, opts ...restauranttrendOption) *RestaurantTrendMutation {
	m := &RestaurantTrendMutation{
		config:        c,
		op:            op,
		typ:           TypeRestaurantTrend,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRestaurantTrendID sets the ID field of the mutation.
func withRestaurantTrendID(id uuid.UUID) restauranttrendOption {
	return func(m *RestaurantTrendMutation) {
		var (
			err   error
			once  sync.Once
			value *RestaurantTrend
		)
		m.oldValue = func(ctx context.Context) (*RestaurantTrend, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RestaurantTrend.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRestaurantTrend sets the old RestaurantTrend of the mutation.
func withRestaurantTrend(node *RestaurantTrend) restauranttrendOption {
	return func(m *RestaurantTrendMutation) {
		m.oldValue = func(context.Context) (*RestaurantTrend, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RestaurantTrendMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RestaurantTrendMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RestaurantTrend entities.
func (m *RestaurantTrendMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RestaurantTrendMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RestaurantTrendMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RestaurantTrend.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *RestaurantTrendMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RestaurantTrendMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RestaurantTrend entity.
// If the RestaurantTrend object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RestaurantTrendMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RestaurantTrendMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *RestaurantTrendMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *RestaurantTrendMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the RestaurantTrend entity.
// If the RestaurantTrend object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RestaurantTrendMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *RestaurantTrendMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetLocationID sets the "location_id" field.
func (m *RestaurantTrendMutation) SetLocationID(u uuid.UUID) {
	m.location = &u
}

// LocationID returns the value of the "location_id" field in the mutation.
func (m *RestaurantTrendMutation) LocationID() (r uuid.UUID, exists bool) {
	v := m.location
	if v == nil {
		return
	}
	return *v, true
}

// OldLocationID returns the old "location_id" field's value of the RestaurantTrend entity.
// If the RestaurantTrend object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RestaurantTrendMutation) OldLocationID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocationID: %w", err)
	}
	return oldValue.LocationID, nil
}

// ResetLocationID resets all changes to the "location_id" field.
func (m *RestaurantTrendMutation) ResetLocationID() {
	m.location = nil
}

// SetYear sets the "year" field.
func (m *RestaurantTrendMutation) SetYear(i int) {
	m.year = &i
	m.addyear = nil
}

// Year returns the value of the "year" field in the mutation.
func (m *RestaurantTrendMutation) Year() (r int, exists bool) {
	v := m.year
	if v == nil {
		return
	}
	return *v, true
}

// OldYear returns the old "year" field's value of the RestaurantTrend entity.
// If the RestaurantTrend object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RestaurantTrendMutation) OldYear(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldYear is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldYear requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldYear: %w", err)
	}
	return oldValue.Year, nil
}

// AddYear adds i to the "year" field.
func (m *RestaurantTrendMutation) AddYear(i int) {
	if m.addyear != nil {
		*m.addyear += i
	} else {
		m.addyear = &i
	}
}

// AddedYear returns the value that was added to the "year" field in this mutation.
func (m *RestaurantTrendMutation) AddedYear() (r int, exists bool) {
	v := m.addyear
	if v == nil {
		return
	}
	return *v, true
}

// ResetYear resets all changes to the "year" field.
func (m *RestaurantTrendMutation) ResetYear() {
	m.year = nil
	m.addyear = nil
}

// SetCurrNatlGrade sets the "curr_natl_grade" field.
func (m *RestaurantTrendMutation) SetCurrNatlGrade(s string) {
	m.curr_natl_grade = &s
}

// CurrNatlGrade returns the value of the "curr_natl_grade" field in the mutation.
func (m *RestaurantTrendMutation) CurrNatlGrade() (r string, exists bool) {
	v := m.curr_natl_grade
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrNatlGrade returns the old "curr_natl_grade" field's value of the RestaurantTrend entity.
// If the RestaurantTrend object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RestaurantTrendMutation) OldCurrNatlGrade(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrNatlGrade is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrNatlGrade requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrNatlGrade: %w", err)
	}
	return oldValue.CurrNatlGrade, nil
}

// ClearCurrNatlGrade clears the value of the "curr_natl_grade" field.
func (m *RestaurantTrendMutation) ClearCurrNatlGrade() {
	m.curr_natl_grade = nil
	m.clearedFields[restauranttrend.FieldCurrNatlGrade] = struct{}{}
}

// CurrNatlGradeCleared returns if the "curr_natl_grade" field was cleared in this mutation.
func (m *RestaurantTrendMutation) CurrNatlGradeCleared() bool {
	_, ok := m.clearedFields[restauranttrend.FieldCurrNatlGrade]
	return ok
}

// ResetCurrNatlGrade resets all changes to the "curr_natl_grade" field.
func (m *RestaurantTrendMutation) ResetCurrNatlGrade() {
	m.curr_natl_grade = nil
	delete(m.clearedFields, restauranttrend.FieldCurrNatlGrade)
}

// SetCurrNatlIndex sets the "curr_natl_index" field.
func (m *RestaurantTrendMutation) SetCurrNatlIndex(f float64) {
	m.curr_natl_index = &f
	m.addcurr_natl_index = nil
}

// CurrNatlIndex returns the value of the "curr_natl_index" field in the mutation.
func (m *RestaurantTrendMutation) CurrNatlIndex() (r float64, exists bool) {
	v := m.curr_natl_index
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrNatlIndex returns the old "curr_natl_index" field's value of the RestaurantTrend entity.
// If the RestaurantTrend object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RestaurantTrendMutation) OldCurrNatlIndex(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrNatlIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrNatlIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrNatlIndex: %w", err)
	}
	return oldValue.CurrNatlIndex, nil
}

// AddCurrNatlIndex adds f to the "curr_natl_index" field.
func (m *RestaurantTrendMutation) AddCurrNatlIndex(f float64) {
	if m.addcurr_natl_index != nil {
		*m.addcurr_natl_index += f
	} else {
		m.addcurr_natl_index = &f
	}
}

// AddedCurrNatlIndex returns the value that was added to the "curr_natl_index" field in this mutation.
func (m *RestaurantTrendMutation) AddedCurrNatlIndex() (r float64, exists bool) {
	v := m.addcurr_natl_index
	if v == nil {
		return
	}
	return *v, true
}

// ClearCurrNatlIndex clears the value of the "curr_natl_index" field.
func (m *RestaurantTrendMutation) ClearCurrNatlIndex() {
	m.curr_natl_index = nil
	m.addcurr_natl_index = nil
	m.clearedFields[restauranttrend.FieldCurrNatlIndex] = struct{}{}
}

// CurrNatlIndexCleared returns if the "curr_natl_index" field was cleared in this mutation.
func (m *RestaurantTrendMutation) CurrNatlIndexCleared() bool {
	_, ok := m.clearedFields[restauranttrend.FieldCurrNatlIndex]
	return ok
}

// ResetCurrNatlIndex resets all changes to the "curr_natl_index" field.
func (m *RestaurantTrendMutation) ResetCurrNatlIndex() {
	m.curr_natl_index = nil
	m.addcurr_natl_index = nil
	delete(m.clearedFields, restauranttrend.FieldCurrNatlIndex)
}

// SetCurrAnnualSlsK sets the "curr_annual_sls_k" field.
func (m *RestaurantTrendMutation) SetCurrAnnualSlsK(f float64) {
	m.curr_annual_sls_k = &f
	m.addcurr_annual_sls_k = nil
}

// CurrAnnualSlsK returns the value of the "curr_annual_sls_k" field in the mutation.
func (m *RestaurantTrendMutation) CurrAnnualSlsK() (r float64, exists bool) {
	v := m.curr_annual_sls_k
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrAnnualSlsK returns the old "curr_annual_sls_k" field's value of the RestaurantTrend entity.
// If the RestaurantTrend object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RestaurantTrendMutation) OldCurrAnnualSlsK(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrAnnualSlsK is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrAnnualSlsK requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrAnnualSlsK: %w", err)
	}
	return oldValue.CurrAnnualSlsK, nil
}

// AddCurrAnnualSlsK adds f to the "curr_annual_sls_k" field.
func (m *RestaurantTrendMutation) AddCurrAnnualSlsK(f float64) {
	if m.addcurr_annual_sls_k != nil {
		*m.addcurr_annual_sls_k += f
	} else {
		m.addcurr_annual_sls_k = &f
	}
}

// AddedCurrAnnualSlsK returns the value that was added to the "curr_annual_sls_k" field in this mutation.
func (m *RestaurantTrendMutation) AddedCurrAnnualSlsK() (r float64, exists bool) {
	v := m.addcurr_annual_sls_k
	if v == nil {
		return
	}
	return *v, true
}

// ClearCurrAnnualSlsK clears the value of the "curr_annual_sls_k" field.
func (m *RestaurantTrendMutation) ClearCurrAnnualSlsK() {
	m.curr_annual_sls_k = nil
	m.addcurr_annual_sls_k = nil
	m.clearedFields[restauranttrend.FieldCurrAnnualSlsK] = struct{}{}
}

// CurrAnnualSlsKCleared returns if the "curr_annual_sls_k" field was cleared in this mutation.
func (m *RestaurantTrendMutation) CurrAnnualSlsKCleared() bool {
	_, ok := m.clearedFields[restauranttrend.FieldCurrAnnualSlsK]
	return ok
}

// ResetCurrAnnualSlsK resets all changes to the "curr_annual_sls_k" field.
func (m *RestaurantTrendMutation) ResetCurrAnnualSlsK() {
	m.curr_annual_sls_k = nil
	m.addcurr_annual_sls_k = nil
	delete(m.clearedFields, restauranttrend.FieldCurrAnnualSlsK)
}

// SetCurrMktGrade sets the "curr_mkt_grade" field.
func (m *RestaurantTrendMutation) SetCurrMktGrade(s string) {
	m.curr_mkt_grade = &s
}

// CurrMktGrade returns the value of the "curr_mkt_grade" field in the mutation.
func (m *RestaurantTrendMutation) CurrMktGrade() (r string, exists bool) {
	v := m.curr_mkt_grade
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrMktGrade returns the old "curr_mkt_grade" field's value of the RestaurantTrend entity.
// If the RestaurantTrend object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RestaurantTrendMutation) OldCurrMktGrade(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrMktGrade is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrMktGrade requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrMktGrade: %w", err)
	}
	return oldValue.CurrMktGrade, nil
}

// ClearCurrMktGrade clears the value of the "curr_mkt_grade" field.
func (m *RestaurantTrendMutation) ClearCurrMktGrade() {
	m.curr_mkt_grade = nil
	m.clearedFields[restauranttrend.FieldCurrMktGrade] = struct{}{}
}

// CurrMktGradeCleared returns if the "curr_mkt_grade" field was cleared in this mutation.
func (m *RestaurantTrendMutation) CurrMktGradeCleared() bool {
	_, ok := m.clearedFields[restauranttrend.FieldCurrMktGrade]
	return ok
}

// ResetCurrMktGrade resets all changes to the "curr_mkt_grade" field.
func (m *RestaurantTrendMutation) ResetCurrMktGrade() {
	m.curr_mkt_grade = nil
	delete(m.clearedFields, restauranttrend.FieldCurrMktGrade)
}

// SetCurrMktIndex sets the "curr_mkt_index" field.
func (m *RestaurantTrendMutation) SetCurrMktIndex(f float64) {
	m.curr_mkt_index = &f
	m.addcurr_mkt_index = nil
}

// CurrMktIndex returns the value of the "curr_mkt_index" field in the mutation.
func (m *RestaurantTrendMutation) CurrMktIndex() (r float64, exists bool) {
	v := m.curr_mkt_index
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrMktIndex returns the old "curr_mkt_index" field's value of the RestaurantTrend entity.
// If the RestaurantTrend object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RestaurantTrendMutation) OldCurrMktIndex(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrMktIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrMktIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrMktIndex: %w", err)
	}
	return oldValue.CurrMktIndex, nil
}

// AddCurrMktIndex adds f to the "curr_mkt_index" field.
func (m *RestaurantTrendMutation) AddCurrMktIndex(f float64) {
	if m.addcurr_mkt_index != nil {
		*m.addcurr_mkt_index += f
	} else {
		m.addcurr_mkt_index = &f
	}
}

// AddedCurrMktIndex returns the value that was added to the "curr_mkt_index" field in this mutation.
func (m *RestaurantTrendMutation) AddedCurrMktIndex() (r float64, exists bool) {
	v := m.addcurr_mkt_index
	if v == nil {
		return
	}
	return *v, true
}

// ClearCurrMktIndex clears the value of the "curr_mkt_index" field.
func (m *RestaurantTrendMutation) ClearCurrMktIndex() {
	m.curr_mkt_index = nil
	m.addcurr_mkt_index = nil
	m.clearedFields[restauranttrend.FieldCurrMktIndex] = struct{}{}
}

// CurrMktIndexCleared returns if the "curr_mkt_index" field was cleared in this mutation.
func (m *RestaurantTrendMutation) CurrMktIndexCleared() bool {
	_, ok := m.clearedFields[restauranttrend.FieldCurrMktIndex]
	return ok
}

// ResetCurrMktIndex resets all changes to the "curr_mkt_index" field.
func (m *RestaurantTrendMutation) ResetCurrMktIndex() {
	m.curr_mkt_index = nil
	m.addcurr_mkt_index = nil
	delete(m.clearedFields, restauranttrend.FieldCurrMktIndex)
}

// SetPastNatlGrade sets the "past_natl_grade" field.
func (m *RestaurantTrendMutation) SetPastNatlGrade(s string) {
	m.past_natl_grade = &s
}

// PastNatlGrade returns the value of the "past_natl_grade" field in the mutation.
func (m *RestaurantTrendMutation) PastNatlGrade() (r string, exists bool) {
	v := m.past_natl_grade
	if v == nil {
		return
	}
	return *v, true
}

// OldPastNatlGrade returns the old "past_natl_grade" field's value of the RestaurantTrend entity.
// If the RestaurantTrend object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RestaurantTrendMutation) OldPastNatlGrade(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPastNatlGrade is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPastNatlGrade requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPastNatlGrade: %w", err)
	}
	return oldValue.PastNatlGrade, nil
}

// ClearPastNatlGrade clears the value of the "past_natl_grade" field.
func (m *RestaurantTrendMutation) ClearPastNatlGrade() {
	m.past_natl_grade = nil
	m.clearedFields[restauranttrend.FieldPastNatlGrade] = struct{}{}
}

// PastNatlGradeCleared returns if the "past_natl_grade" field was cleared in this mutation.
func (m *RestaurantTrendMutation) PastNatlGradeCleared() bool {
	_, ok := m.clearedFields[restauranttrend.FieldPastNatlGrade]
	return ok
}

// ResetPastNatlGrade resets all changes to the "past_natl_grade" field.
func (m *RestaurantTrendMutation) ResetPastNatlGrade() {
	m.past_natl_grade = nil
	delete(m.clearedFields, restauranttrend.FieldPastNatlGrade)
}

// SetPastNatlIndex sets the "past_natl_index" field.
func (m *RestaurantTrendMutation) SetPastNatlIndex(f float64) {
	m.past_natl_index = &f
	m.addpast_natl_index = nil
}

// PastNatlIndex returns the value of the "past_natl_index" field in the mutation.
func (m *RestaurantTrendMutation) PastNatlIndex() (r float64, exists bool) {
	v := m.past_natl_index
	if v == nil {
		return
	}
	return *v, true
}

// OldPastNatlIndex returns the old "past_natl_index" field's value of the RestaurantTrend entity.
// If the RestaurantTrend object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RestaurantTrendMutation) OldPastNatlIndex(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPastNatlIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPastNatlIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPastNatlIndex: %w", err)
	}
	return oldValue.PastNatlIndex, nil
}

// AddPastNatlIndex adds f to the "past_natl_index" field.
func (m *RestaurantTrendMutation) AddPastNatlIndex(f float64) {
	if m.addpast_natl_index != nil {
		*m.addpast_natl_index += f
	} else {
		m.addpast_natl_index = &f
	}
}

// AddedPastNatlIndex returns the value that was added to the "past_natl_index" field in this mutation.
func (m *RestaurantTrendMutation) AddedPastNatlIndex() (r float64, exists bool) {
	v := m.addpast_natl_index
	if v == nil {
		return
	}
	return *v, true
}

// ClearPastNatlIndex clears the value of the "past_natl_index" field.
func (m *RestaurantTrendMutation) ClearPastNatlIndex() {
	m.past_natl_index = nil
	m.addpast_natl_index = nil
	m.clearedFields[restauranttrend.FieldPastNatlIndex] = struct{}{}
}

// PastNatlIndexCleared returns if the "past_natl_index" field was cleared in this mutation.
func (m *RestaurantTrendMutation) PastNatlIndexCleared() bool {
	_, ok := m.clearedFields[restauranttrend.FieldPastNatlIndex]
	return ok
}

// ResetPastNatlIndex resets all changes to the "past_natl_index" field.
func (m *RestaurantTrendMutation) ResetPastNatlIndex() {
	m.past_natl_index = nil
	m.addpast_natl_index = nil
	delete(m.clearedFields, restauranttrend.FieldPastNatlIndex)
}

// SetPastAnnualSlsK sets the "past_annual_sls_k" field.
func (m *RestaurantTrendMutation) SetPastAnnualSlsK(f float64) {
	m.past_annual_sls_k = &f
	m.addpast_annual_sls_k = nil
}

// PastAnnualSlsK returns the value of the "past_annual_sls_k" field in the mutation.
func (m *RestaurantTrendMutation) PastAnnualSlsK() (r float64, exists bool) {
	v := m.past_annual_sls_k
	if v == nil {
		return
	}
	return *v, true
}

// OldPastAnnualSlsK returns the old "past_annual_sls_k" field's value of the RestaurantTrend entity.
// If the RestaurantTrend object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RestaurantTrendMutation) OldPastAnnualSlsK(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPastAnnualSlsK is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPastAnnualSlsK requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPastAnnualSlsK: %w", err)
	}
	return oldValue.PastAnnualSlsK, nil
}

// AddPastAnnualSlsK adds f to the "past_annual_sls_k" field.
func (m *RestaurantTrendMutation) AddPastAnnualSlsK(f float64) {
	if m.addpast_annual_sls_k != nil {
		*m.addpast_annual_sls_k += f
	} else {
		m.addpast_annual_sls_k = &f
	}
}

// AddedPastAnnualSlsK returns the value that was added to the "past_annual_sls_k" field in this mutation.
func (m *RestaurantTrendMutation) AddedPastAnnualSlsK() (r float64, exists bool) {
	v := m.addpast_annual_sls_k
	if v == nil {
		return
	}
	return *v, true
}

// ClearPastAnnualSlsK clears the value of the "past_annual_sls_k" field.
func (m *RestaurantTrendMutation) ClearPastAnnualSlsK() {
	m.past_annual_sls_k = nil
	m.addpast_annual_sls_k = nil
	m.clearedFields[restauranttrend.FieldPastAnnualSlsK] = struct{}{}
}

// PastAnnualSlsKCleared returns if the "past_annual_sls_k" field was cleared in this mutation.
func (m *RestaurantTrendMutation) PastAnnualSlsKCleared() bool {
	_, ok := m.clearedFields[restauranttrend.FieldPastAnnualSlsK]
	return ok
}

// ResetPastAnnualSlsK resets all changes to the "past_annual_sls_k" field.
func (m *RestaurantTrendMutation) ResetPastAnnualSlsK() {
	m.past_annual_sls_k = nil
	m.addpast_annual_sls_k = nil
	delete(m.clearedFields, restauranttrend.FieldPastAnnualSlsK)
}

// SetPastMktGrade sets the "past_mkt_grade" field.
func (m *RestaurantTrendMutation) SetPastMktGrade(s string) {
	m.past_mkt_grade = &s
}

// PastMktGrade returns the value of the "past_mkt_grade" field in the mutation.
func (m *RestaurantTrendMutation) PastMktGrade() (r string, exists bool) {
	v := m.past_mkt_grade
	if v == nil {
		return
	}
	return *v, true
}

// OldPastMktGrade returns the old "past_mkt_grade" field's value of the RestaurantTrend entity.
// If the RestaurantTrend object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RestaurantTrendMutation) OldPastMktGrade(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPastMktGrade is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPastMktGrade requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPastMktGrade: %w", err)
	}
	return oldValue.PastMktGrade, nil
}

// ClearPastMktGrade clears the value of the "past_mkt_grade" field.
func (m *RestaurantTrendMutation) ClearPastMktGrade() {
	m.past_mkt_grade = nil
	m.clearedFields[restauranttrend.FieldPastMktGrade] = struct{}{}
}

// PastMktGradeCleared returns if the "past_mkt_grade" field was cleared in this mutation.
func (m *RestaurantTrendMutation) PastMktGradeCleared() bool {
	_, ok := m.clearedFields[restauranttrend.FieldPastMktGrade]
	return ok
}

// ResetPastMktGrade resets all changes to the "past_mkt_grade" field.
func (m *RestaurantTrendMutation) ResetPastMktGrade() {
	m.past_mkt_grade = nil
	delete(m.clearedFields, restauranttrend.FieldPastMktGrade)
}

// SetPastMktIndex sets the "past_mkt_index" field.
func (m *RestaurantTrendMutation) SetPastMktIndex(f float64) {
	m.past_mkt_index = &f
	m.addpast_mkt_index = nil
}

// PastMktIndex returns the value of the "past_mkt_index" field in the mutation.
func (m *RestaurantTrendMutation) PastMktIndex() (r float64, exists bool) {
	v := m.past_mkt_index
	if v == nil {
		return
	}
	return *v, true
}

// OldPastMktIndex returns the old "past_mkt_index" field's value of the RestaurantTrend entity.
// If the RestaurantTrend object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RestaurantTrendMutation) OldPastMktIndex(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPastMktIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPastMktIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPastMktIndex: %w", err)
	}
	return oldValue.PastMktIndex, nil
}

// AddPastMktIndex adds f to the "past_mkt_index" field.
func (m *RestaurantTrendMutation) AddPastMktIndex(f float64) {
	if m.addpast_mkt_index != nil {
		*m.addpast_mkt_index += f
	} else {
		m.addpast_mkt_index = &f
	}
}

// AddedPastMktIndex returns the value that was added to the "past_mkt_index" field in this mutation.
func (m *RestaurantTrendMutation) AddedPastMktIndex() (r float64, exists bool) {
	v := m.addpast_mkt_index
	if v == nil {
		return
	}
	return *v, true
}

// ClearPastMktIndex clears the value of the "past_mkt_index" field.
func (m *RestaurantTrendMutation) ClearPastMktIndex() {
	m.past_mkt_index = nil
	m.addpast_mkt_index = nil
	m.clearedFields[restauranttrend.FieldPastMktIndex] = struct{}{}
}

// PastMktIndexCleared returns if the "past_mkt_index" field was cleared in this mutation.
func (m *RestaurantTrendMutation) PastMktIndexCleared() bool {
	_, ok := m.clearedFields[restauranttrend.FieldPastMktIndex]
	return ok
}

// ResetPastMktIndex resets all changes to the "past_mkt_index" field.
func (m *RestaurantTrendMutation) ResetPastMktIndex() {
	m.past_mkt_index = nil
	m.addpast_mkt_index = nil
	delete(m.clearedFields, restauranttrend.FieldPastMktIndex)
}

// SetSurveyYrLast sets the "survey_yr_last" field.
func (m *RestaurantTrendMutation) SetSurveyYrLast(i int) {
	m.survey_yr_last = &i
	m.addsurvey_yr_last = nil
}

// SurveyYrLast returns the value of the "survey_yr_last" field in the mutation.
func (m *RestaurantTrendMutation) SurveyYrLast() (r int, exists bool) {
	v := m.survey_yr_last
	if v == nil {
		return
	}
	return *v, true
}

// OldSurveyYrLast returns the old "survey_yr_last" field's value of the RestaurantTrend entity.
// If the RestaurantTrend object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RestaurantTrendMutation) OldSurveyYrLast(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSurveyYrLast is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSurveyYrLast requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSurveyYrLast: %w", err)
	}
	return oldValue.SurveyYrLast, nil
}

// AddSurveyYrLast adds i to the "survey_yr_last" field.
func (m *RestaurantTrendMutation) AddSurveyYrLast(i int) {
	if m.addsurvey_yr_last != nil {
		*m.addsurvey_yr_last += i
	} else {
		m.addsurvey_yr_last = &i
	}
}

// AddedSurveyYrLast returns the value that was added to the "survey_yr_last" field in this mutation.
func (m *RestaurantTrendMutation) AddedSurveyYrLast() (r int, exists bool) {
	v := m.addsurvey_yr_last
	if v == nil {
		return
	}
	return *v, true
}

// ClearSurveyYrLast clears the value of the "survey_yr_last" field.
func (m *RestaurantTrendMutation) ClearSurveyYrLast() {
	m.survey_yr_last = nil
	m.addsurvey_yr_last = nil
	m.clearedFields[restauranttrend.FieldSurveyYrLast] = struct{}{}
}

// SurveyYrLastCleared returns if the "survey_yr_last" field was cleared in this mutation.
func (m *RestaurantTrendMutation) SurveyYrLastCleared() bool {
	_, ok := m.clearedFields[restauranttrend.FieldSurveyYrLast]
	return ok
}

// ResetSurveyYrLast resets all changes to the "survey_yr_last" field.
func (m *RestaurantTrendMutation) ResetSurveyYrLast() {
	m.survey_yr_last = nil
	m.addsurvey_yr_last = nil
	delete(m.clearedFields, restauranttrend.FieldSurveyYrLast)
}

// SetSurveyYrNext sets the "survey_yr_next" field.
func (m *RestaurantTrendMutation) SetSurveyYrNext(i int) {
	m.survey_yr_next = &i
	m.addsurvey_yr_next = nil
}

// SurveyYrNext returns the value of the "survey_yr_next" field in the mutation.
func (m *RestaurantTrendMutation) SurveyYrNext() (r int, exists bool) {
	v := m.survey_yr_next
	if v == nil {
		return
	}
	return *v, true
}

// OldSurveyYrNext returns the old "survey_yr_next" field's value of the RestaurantTrend entity.
// If the RestaurantTrend object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RestaurantTrendMutation) OldSurveyYrNext(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSurveyYrNext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSurveyYrNext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSurveyYrNext: %w", err)
	}
	return oldValue.SurveyYrNext, nil
}

// AddSurveyYrNext adds i to the "survey_yr_next" field.
func (m *RestaurantTrendMutation) AddSurveyYrNext(i int) {
	if m.addsurvey_yr_next != nil {
		*m.addsurvey_yr_next += i
	} else {
		m.addsurvey_yr_next = &i
	}
}

// AddedSurveyYrNext returns the value that was added to the "survey_yr_next" field in this mutation.
func (m *RestaurantTrendMutation) AddedSurveyYrNext() (r int, exists bool) {
	v := m.addsurvey_yr_next
	if v == nil {
		return
	}
	return *v, true
}

// ClearSurveyYrNext clears the value of the "survey_yr_next" field.
func (m *RestaurantTrendMutation) ClearSurveyYrNext() {
	m.survey_yr_next = nil
	m.addsurvey_yr_next = nil
	m.clearedFields[restauranttrend.FieldSurveyYrNext] = struct{}{}
}

// SurveyYrNextCleared returns if the "survey_yr_next" field was cleared in this mutation.
func (m *RestaurantTrendMutation) SurveyYrNextCleared() bool {
	_, ok := m.clearedFields[restauranttrend.FieldSurveyYrNext]
	return ok
}

// ResetSurveyYrNext resets all changes to the "survey_yr_next" field.
func (m *RestaurantTrendMutation) ResetSurveyYrNext() {
	m.survey_yr_next = nil
	m.addsurvey_yr_next = nil
	delete(m.clearedFields, restauranttrend.FieldSurveyYrNext)
}

// SetTotalSurveys sets the "total_surveys" field.
func (m *RestaurantTrendMutation) SetTotalSurveys(i int) {
	m.total_surveys = &i
	m.addtotal_surveys = nil
}

// TotalSurveys returns the value of the "total_surveys" field in the mutation.
func (m *RestaurantTrendMutation) TotalSurveys() (r int, exists bool) {
	v := m.total_surveys
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalSurveys returns the old "total_surveys" field's value of the RestaurantTrend entity.
// If the RestaurantTrend object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RestaurantTrendMutation) OldTotalSurveys(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalSurveys is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalSurveys requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalSurveys: %w", err)
	}
	return oldValue.TotalSurveys, nil
}

// AddTotalSurveys adds i to the "total_surveys" field.
func (m *RestaurantTrendMutation) AddTotalSurveys(i int) {
	if m.addtotal_surveys != nil {
		*m.addtotal_surveys += i
	} else {
		m.addtotal_surveys = &i
	}
}

// AddedTotalSurveys returns the value that was added to the "total_surveys" field in this mutation.
func (m *RestaurantTrendMutation) AddedTotalSurveys() (r int, exists bool) {
	v := m.addtotal_surveys
	if v == nil {
		return
	}
	return *v, true
}

// ClearTotalSurveys clears the value of the "total_surveys" field.
func (m *RestaurantTrendMutation) ClearTotalSurveys() {
	m.total_surveys = nil
	m.addtotal_surveys = nil
	m.clearedFields[restauranttrend.FieldTotalSurveys] = struct{}{}
}

// TotalSurveysCleared returns if the "total_surveys" field was cleared in this mutation.
func (m *RestaurantTrendMutation) TotalSurveysCleared() bool {
	_, ok := m.clearedFields[restauranttrend.FieldTotalSurveys]
	return ok
}

// ResetTotalSurveys resets all changes to the "total_surveys" field.
func (m *RestaurantTrendMutation) ResetTotalSurveys() {
	m.total_surveys = nil
	m.addtotal_surveys = nil
	delete(m.clearedFields, restauranttrend.FieldTotalSurveys)
}

// ClearLocation clears the "location" edge to the RestaurantLocation entity.
func (m *RestaurantTrendMutation) ClearLocation() {
	m.clearedlocation = true
	m.clearedFields[restauranttrend.FieldLocationID] = struct{}{}
}

// LocationCleared reports if the "location" edge to the RestaurantLocation entity was cleared.
func (m *RestaurantTrendMutation) LocationCleared() bool {
	return m.clearedlocation
}

// LocationIDs returns the "location" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// LocationID instead. It exists only for internal usage by the builders.
func (m *RestaurantTrendMutation) LocationIDs() (ids []uuid.UUID) {
	if id := m.location; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetLocation resets all changes to the "location" edge.
func (m *RestaurantTrendMutation) ResetLocation() {
	m.location = nil
	m.clearedlocation = false
}

// Where appends a list predicates to the RestaurantTrendMutation builder.
func (m *RestaurantTrendMutation) Where(ps ...predicate.RestaurantTrend) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RestaurantTrendMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RestaurantTrendMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RestaurantTrend, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RestaurantTrendMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RestaurantTrendMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RestaurantTrend).
func (m *RestaurantTrendMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RestaurantTrendMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.created_at != nil {
		fields = append(fields, restauranttrend.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, restauranttrend.FieldUpdatedAt)
	}
	if m.location != nil {
		fields = append(fields, restauranttrend.FieldLocationID)
	}
	if m.year != nil {
		fields = append(fields, restauranttrend.FieldYear)
	}
	if m.curr_natl_grade != nil {
		fields = append(fields, restauranttrend.FieldCurrNatlGrade)
	}
	if m.curr_natl_index != nil {
		fields = append(fields, restauranttrend.FieldCurrNatlIndex)
	}
	if m.curr_annual_sls_k != nil {
		fields = append(fields, restauranttrend.FieldCurrAnnualSlsK)
	}
	if m.curr_mkt_grade != nil {
		fields = append(fields, restauranttrend.FieldCurrMktGrade)
	}
	if m.curr_mkt_index != nil {
		fields = append(fields, restauranttrend.FieldCurrMktIndex)
	}
	if m.past_natl_grade != nil {
		fields = append(fields, restauranttrend.FieldPastNatlGrade)
	}
	if m.past_natl_index != nil {
		fields = append(fields, restauranttrend.FieldPastNatlIndex)
	}
	if m.past_annual_sls_k != nil {
		fields = append(fields, restauranttrend.FieldPastAnnualSlsK)
	}
	if m.past_mkt_grade != nil {
		fields = append(fields, restauranttrend.FieldPastMktGrade)
	}
	if m.past_mkt_index != nil {
		fields = append(fields, restauranttrend.FieldPastMktIndex)
	}
	if m.survey_yr_last != nil {
		fields = append(fields, restauranttrend.FieldSurveyYrLast)
	}
	if m.survey_yr_next != nil {
		fields = append(fields, restauranttrend.FieldSurveyYrNext)
	}
	if m.total_surveys != nil {
		fields = append(fields, restauranttrend.FieldTotalSurveys)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RestaurantTrendMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case restauranttrend.FieldCreatedAt:
		return m.CreatedAt()
	case restauranttrend.FieldUpdatedAt:
		return m.UpdatedAt()
	case restauranttrend.FieldLocationID:
		return m.LocationID()
	case restauranttrend.FieldYear:
		return m.Year()
	case restauranttrend.FieldCurrNatlGrade:
		return m.CurrNatlGrade()
	case restauranttrend.FieldCurrNatlIndex:
		return m.CurrNatlIndex()
	case restauranttrend.FieldCurrAnnualSlsK:
		return m.CurrAnnualSlsK()
	case restauranttrend.FieldCurrMktGrade:
		return m.CurrMktGrade()
	case restauranttrend.FieldCurrMktIndex:
		return m.CurrMktIndex()
	case restauranttrend.FieldPastNatlGrade:
		return m.PastNatlGrade()
	case restauranttrend.FieldPastNatlIndex:
		return m.PastNatlIndex()
	case restauranttrend.FieldPastAnnualSlsK:
		return m.PastAnnualSlsK()
	case restauranttrend.FieldPastMktGrade:
		return m.PastMktGrade()
	case restauranttrend.FieldPastMktIndex:
		return m.PastMktIndex()
	case restauranttrend.FieldSurveyYrLast:
		return m.SurveyYrLast()
	case restauranttrend.FieldSurveyYrNext:
		return m.SurveyYrNext()
	case restauranttrend.FieldTotalSurveys:
		return m.TotalSurveys()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RestaurantTrendMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case restauranttrend.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case restauranttrend.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case restauranttrend.FieldLocationID:
		return m.OldLocationID(ctx)
	case restauranttrend.FieldYear:
		return m.OldYear(ctx)
	case restauranttrend.FieldCurrNatlGrade:
		return m.OldCurrNatlGrade(ctx)
	case restauranttrend.FieldCurrNatlIndex:
		return m.OldCurrNatlIndex(ctx)
	case restauranttrend.FieldCurrAnnualSlsK:
		return m.OldCurrAnnualSlsK(ctx)
	case restauranttrend.FieldCurrMktGrade:
		return m.OldCurrMktGrade(ctx)
	case restauranttrend.FieldCurrMktIndex:
		return m.OldCurrMktIndex(ctx)
	case restauranttrend.FieldPastNatlGrade:
		return m.OldPastNatlGrade(ctx)
	case restauranttrend.FieldPastNatlIndex:
		return m.OldPastNatlIndex(ctx)
	case restauranttrend.FieldPastAnnualSlsK:
		return m.OldPastAnnualSlsK(ctx)
	case restauranttrend.FieldPastMktGrade:
		return m.OldPastMktGrade(ctx)
	case restauranttrend.FieldPastMktIndex:
		return m.OldPastMktIndex(ctx)
	case restauranttrend.FieldSurveyYrLast:
		return m.OldSurveyYrLast(ctx)
	case restauranttrend.FieldSurveyYrNext:
		return m.OldSurveyYrNext(ctx)
	case restauranttrend.FieldTotalSurveys:
		return m.OldTotalSurveys(ctx)
	}
	return nil, fmt.Errorf("unknown RestaurantTrend field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RestaurantTrendMutation) SetField(name string, value ent.Value) error {
	switch name {
	case restauranttrend.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case restauranttrend.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case restauranttrend.FieldLocationID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocationID(v)
		return nil
	case restauranttrend.FieldYear:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetYear(v)
		return nil
	case restauranttrend.FieldCurrNatlGrade:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrNatlGrade(v)
		return nil
	case restauranttrend.FieldCurrNatlIndex:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrNatlIndex(v)
		return nil
	case restauranttrend.FieldCurrAnnualSlsK:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrAnnualSlsK(v)
		return nil
	case restauranttrend.FieldCurrMktGrade:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrMktGrade(v)
		return nil
	case restauranttrend.FieldCurrMktIndex:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrMktIndex(v)
		return nil
	case restauranttrend.FieldPastNatlGrade:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPastNatlGrade(v)
		return nil
	case restauranttrend.FieldPastNatlIndex:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPastNatlIndex(v)
		return nil
	case restauranttrend.FieldPastAnnualSlsK:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPastAnnualSlsK(v)
		return nil
	case restauranttrend.FieldPastMktGrade:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPastMktGrade(v)
		return nil
	case restauranttrend.FieldPastMktIndex:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPastMktIndex(v)
		return nil
	case restauranttrend.FieldSurveyYrLast:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSurveyYrLast(v)
		return nil
	case restauranttrend.FieldSurveyYrNext:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSurveyYrNext(v)
		return nil
	case restauranttrend.FieldTotalSurveys:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalSurveys(v)
		return nil
	}
	return fmt.Errorf("unknown RestaurantTrend field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RestaurantTrendMutation) AddedFields() []string {
	var fields []string
	if m.addyear != nil {
		fields = append(fields, restauranttrend.FieldYear)
	}
	if m.addcurr_natl_index != nil {
		fields = append(fields, restauranttrend.FieldCurrNatlIndex)
	}
	if m.addcurr_annual_sls_k != nil {
		fields = append(fields, restauranttrend.FieldCurrAnnualSlsK)
	}
	if m.addcurr_mkt_index != nil {
		fields = append(fields, restauranttrend.FieldCurrMktIndex)
	}
	if m.addpast_natl_index != nil {
		fields = append(fields, restauranttrend.FieldPastNatlIndex)
	}
	if m.addpast_annual_sls_k != nil {
		fields = append(fields, restauranttrend.FieldPastAnnualSlsK)
	}
	if m.addpast_mkt_index != nil {
		fields = append(fields, restauranttrend.FieldPastMktIndex)
	}
	if m.addsurvey_yr_last != nil {
		fields = append(fields, restauranttrend.FieldSurveyYrLast)
	}
	if m.addsurvey_yr_next != nil {
		fields = append(fields, restauranttrend.FieldSurveyYrNext)
	}
	if m.addtotal_surveys != nil {
		fields = append(fields, restauranttrend.FieldTotalSurveys)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RestaurantTrendMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case restauranttrend.FieldYear:
		return m.AddedYear()
	case restauranttrend.FieldCurrNatlIndex:
		return m.AddedCurrNatlIndex()
	case restauranttrend.FieldCurrAnnualSlsK:
		return m.AddedCurrAnnualSlsK()
	case restauranttrend.FieldCurrMktIndex:
		return m.AddedCurrMktIndex()
	case restauranttrend.FieldPastNatlIndex:
		return m.AddedPastNatlIndex()
	case restauranttrend.FieldPastAnnualSlsK:
		return m.AddedPastAnnualSlsK()
	case restauranttrend.FieldPastMktIndex:
		return m.AddedPastMktIndex()
	case restauranttrend.FieldSurveyYrLast:
		return m.AddedSurveyYrLast()
	case restauranttrend.FieldSurveyYrNext:
		return m.AddedSurveyYrNext()
	case restauranttrend.FieldTotalSurveys:
		return m.AddedTotalSurveys()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RestaurantTrendMutation) AddField(name string, value ent.Value) error {
	switch name {
	case restauranttrend.FieldYear:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddYear(v)
		return nil
	case restauranttrend.FieldCurrNatlIndex:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrNatlIndex(v)
		return nil
	case restauranttrend.FieldCurrAnnualSlsK:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrAnnualSlsK(v)
		return nil
	case restauranttrend.FieldCurrMktIndex:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrMktIndex(v)
		return nil
	case restauranttrend.FieldPastNatlIndex:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPastNatlIndex(v)
		return nil
	case restauranttrend.FieldPastAnnualSlsK:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPastAnnualSlsK(v)
		return nil
	case restauranttrend.FieldPastMktIndex:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPastMktIndex(v)
		return nil
	case restauranttrend.FieldSurveyYrLast:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSurveyYrLast(v)
		return nil
	case restauranttrend.FieldSurveyYrNext:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSurveyYrNext(v)
		return nil
	case restauranttrend.FieldTotalSurveys:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalSurveys(v)
		return nil
	}
	return fmt.Errorf("unknown RestaurantTrend numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RestaurantTrendMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(restauranttrend.FieldCurrNatlGrade) {
		fields = append(fields, restauranttrend.FieldCurrNatlGrade)
	}
	if m.FieldCleared(restauranttrend.FieldCurrNatlIndex) {
		fields = append(fields, restauranttrend.FieldCurrNatlIndex)
	}
	if m.FieldCleared(restauranttrend.FieldCurrAnnualSlsK) {
		fields = append(fields, restauranttrend.FieldCurrAnnualSlsK)
	}
	if m.FieldCleared(restauranttrend.FieldCurrMktGrade) {
		fields = append(fields, restauranttrend.FieldCurrMktGrade)
	}
	if m.FieldCleared(restauranttrend.FieldCurrMktIndex) {
		fields = append(fields, restauranttrend.FieldCurrMktIndex)
	}
	if m.FieldCleared(restauranttrend.FieldPastNatlGrade) {
		fields = append(fields, restauranttrend.FieldPastNatlGrade)
	}
	if m.FieldCleared(restauranttrend.FieldPastNatlIndex) {
		fields = append(fields, restauranttrend.FieldPastNatlIndex)
	}
	if m.FieldCleared(restauranttrend.FieldPastAnnualSlsK) {
		fields = append(fields, restauranttrend.FieldPastAnnualSlsK)
	}
	if m.FieldCleared(restauranttrend.FieldPastMktGrade) {
		fields = append(fields, restauranttrend.FieldPastMktGrade)
	}
	if m.FieldCleared(restauranttrend.FieldPastMktIndex) {
		fields = append(fields, restauranttrend.FieldPastMktIndex)
	}
	if m.FieldCleared(restauranttrend.FieldSurveyYrLast) {
		fields = append(fields, restauranttrend.FieldSurveyYrLast)
	}
	if m.FieldCleared(restauranttrend.FieldSurveyYrNext) {
		fields = append(fields, restauranttrend.FieldSurveyYrNext)
	}
	if m.FieldCleared(restauranttrend.FieldTotalSurveys) {
		fields = append(fields, restauranttrend.FieldTotalSurveys)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RestaurantTrendMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RestaurantTrendMutation) ClearField(name string) error {
	switch name {
	case restauranttrend.FieldCurrNatlGrade:
		m.ClearCurrNatlGrade()
		return nil
	case restauranttrend.FieldCurrNatlIndex:
		m.ClearCurrNatlIndex()
		return nil
	case restauranttrend.FieldCurrAnnualSlsK:
		m.ClearCurrAnnualSlsK()
		return nil
	case restauranttrend.FieldCurrMktGrade:
		m.ClearCurrMktGrade()
		return nil
	case restauranttrend.FieldCurrMktIndex:
		m.ClearCurrMktIndex()
		return nil
	case restauranttrend.FieldPastNatlGrade:
		m.ClearPastNatlGrade()
		return nil
	case restauranttrend.FieldPastNatlIndex:
		m.ClearPastNatlIndex()
		return nil
	case restauranttrend.FieldPastAnnualSlsK:
		m.ClearPastAnnualSlsK()
		return nil
	case restauranttrend.FieldPastMktGrade:
		m.ClearPastMktGrade()
		return nil
	case restauranttrend.FieldPastMktIndex:
		m.ClearPastMktIndex()
		return nil
	case restauranttrend.FieldSurveyYrLast:
		m.ClearSurveyYrLast()
		return nil
	case restauranttrend.FieldSurveyYrNext:
		m.ClearSurveyYrNext()
		return nil
	case restauranttrend.FieldTotalSurveys:
		m.ClearTotalSurveys()
		return nil
	}
	return fmt.Errorf("unknown RestaurantTrend nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RestaurantTrendMutation) ResetField(name string) error {
	switch name {
	case restauranttrend.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case restauranttrend.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case restauranttrend.FieldLocationID:
		m.ResetLocationID()
		return nil
	case restauranttrend.FieldYear:
		m.ResetYear()
		return nil
	case restauranttrend.FieldCurrNatlGrade:
		m.ResetCurrNatlGrade()
		return nil
	case restauranttrend.FieldCurrNatlIndex:
		m.ResetCurrNatlIndex()
		return nil
	case restauranttrend.FieldCurrAnnualSlsK:
		m.ResetCurrAnnualSlsK()
		return nil
	case restauranttrend.FieldCurrMktGrade:
		m.ResetCurrMktGrade()
		return nil
	case restauranttrend.FieldCurrMktIndex:
		m.ResetCurrMktIndex()
		return nil
	case restauranttrend.FieldPastNatlGrade:
		m.ResetPastNatlGrade()
		return nil
	case restauranttrend.FieldPastNatlIndex:
		m.ResetPastNatlIndex()
		return nil
	case restauranttrend.FieldPastAnnualSlsK:
		m.ResetPastAnnualSlsK()
		return nil
	case restauranttrend.FieldPastMktGrade:
		m.ResetPastMktGrade()
		return nil
	case restauranttrend.FieldPastMktIndex:
		m.ResetPastMktIndex()
		return nil
	case restauranttrend.FieldSurveyYrLast:
		m.ResetSurveyYrLast()
		return nil
	case restauranttrend.FieldSurveyYrNext:
		m.ResetSurveyYrNext()
		return nil
	case restauranttrend.FieldTotalSurveys:
		m.ResetTotalSurveys()
		return nil
	}
	return fmt.Errorf("unknown RestaurantTrend field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RestaurantTrendMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.location != nil {
		edges = append(edges, restauranttrend.EdgeLocation)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RestaurantTrendMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case restauranttrend.EdgeLocation:
		if id := m.location; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RestaurantTrendMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RestaurantTrendMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RestaurantTrendMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedlocation {
		edges = append(edges, restauranttrend.EdgeLocation)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RestaurantTrendMutation) EdgeCleared(name string) bool {
	switch name {
	case restauranttrend.EdgeLocation:
		return m.clearedlocation
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RestaurantTrendMutation) ClearEdge(name string) error {
	switch name {
	case restauranttrend.EdgeLocation:
		m.ClearLocation()
		return nil
	}
	return fmt.Errorf("unknown RestaurantTrend unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RestaurantTrendMutation) ResetEdge(name string) error {
	switch name {
	case restauranttrend.EdgeLocation:
		m.ResetLocation()
		return nil
	}
	return fmt.Errorf("unknown RestaurantTrend edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op                       Op
	typ                      string
	id                       *uuid.UUID
	created_at               *time.Time
	updated_at               *time.Time
	deleted_at               *time.Time
	first_name               *string
	last_name                *string
	email                    *string
	phone                    *string
	password_hash            *string
	must_change_password     *bool
	role                     *user.Role
	status                   *user.Status
	last_login_at            *time.Time
	failed_login_attempts    *int
	addfailed_login_attempts *int
	locked_until             *time.Time
	suspended_at             *time.Time
	clearedFields            map[string]struct{}
	done                     bool
	oldValue                 func(context.Context) (*User, error)
	predicates               []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id uuid.UUID) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *UserMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *UserMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *UserMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[user.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *UserMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[user.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *UserMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, user.FieldDeletedAt)
}

// SetFirstName sets the "first_name" field.
func (m *UserMutation) SetFirstName(s string) {
	m.first_name = &s
}

// FirstName returns the value of the "first_name" field in the mutation.
func (m *UserMutation) FirstName() (r string, exists bool) {
	v := m.first_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstName returns the old "first_name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldFirstName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstName: %w", err)
	}
	return oldValue.FirstName, nil
}

// ClearFirstName clears the value of the "first_name" field.
func (m *UserMutation) ClearFirstName() {
	m.first_name = nil
	m.clearedFields[user.FieldFirstName] = struct{}{}
}

// FirstNameCleared returns if the "first_name" field was cleared in this mutation.
func (m *UserMutation) FirstNameCleared() bool {
	_, ok := m.clearedFields[user.FieldFirstName]
	return ok
}

// ResetFirstName resets all changes to the "first_name" field.
func (m *UserMutation) ResetFirstName() {
	m.first_name = nil
	delete(m.clearedFields, user.FieldFirstName)
}

// SetLastName sets the "last_name" field.
func (m *UserMutation) SetLastName(s string) {
	m.last_name = &s
}

// LastName returns the value of the "last_name" field in the mutation.
func (m *UserMutation) LastName() (r string, exists bool) {
	v := m.last_name
	if v == nil {
		return
	}
	return *v, true
}

// OldLastName returns the old "last_name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldLastName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastName: %w", err)
	}
	return oldValue.LastName, nil
}

// ClearLastName clears the value of the "last_name" field.
func (m *UserMutation) ClearLastName() {
	m.last_name = nil
	m.clearedFields[user.FieldLastName] = struct{}{}
}

// LastNameCleared returns if the "last_name" field was cleared in this mutation.
func (m *UserMutation) LastNameCleared() bool {
	_, ok := m.clearedFields[user.FieldLastName]
	return ok
}

// ResetLastName resets all changes to the "last_name" field.
func (m *UserMutation) ResetLastName() {
	m.last_name = nil
	delete(m.clearedFields, user.FieldLastName)
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
}

// SetPhone sets the "phone" field.
func (m *UserMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *UserMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPhone(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ClearPhone clears the value of the "phone" field.
func (m *UserMutation) ClearPhone() {
	m.phone = nil
	m.clearedFields[user.FieldPhone] = struct{}{}
}

// PhoneCleared returns if the "phone" field was cleared in this mutation.
func (m *UserMutation) PhoneCleared() bool {
	_, ok := m.clearedFields[user.FieldPhone]
	return ok
}

// ResetPhone resets all changes to the "phone" field.
func (m *UserMutation) ResetPhone() {
	m.phone = nil
	delete(m.clearedFields, user.FieldPhone)
}

// SetPasswordHash sets the "password_hash" field.
func (m *UserMutation) SetPasswordHash(s string) {
	m.password_hash = &s
}

// PasswordHash returns the value of the "password_hash" field in the mutation.
func (m *UserMutation) PasswordHash() (r string, exists bool) {
	v := m.password_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPasswordHash returns the old "password_hash" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPasswordHash(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPasswordHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPasswordHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPasswordHash: %w", err)
	}
	return oldValue.PasswordHash, nil
}

// ClearPasswordHash clears the value of the "password_hash" field.
func (m *UserMutation) ClearPasswordHash() {
	m.password_hash = nil
	m.clearedFields[user.FieldPasswordHash] = struct{}{}
}

// PasswordHashCleared returns if the "password_hash" field was cleared in this mutation.
func (m *UserMutation) PasswordHashCleared() bool {
	_, ok := m.clearedFields[user.FieldPasswordHash]
	return ok
}

// ResetPasswordHash resets all changes to the "password_hash" field.
func (m *UserMutation) ResetPasswordHash() {
	m.password_hash = nil
	delete(m.clearedFields, user.FieldPasswordHash)
}

// SetMustChangePassword sets the "must_change_password" field.
func (m *UserMutation) SetMustChangePassword(b bool) {
	m.must_change_password = &b
}

// MustChangePassword returns the value of the "must_change_password" field in the mutation.
func (m *UserMutation) MustChangePassword() (r bool, exists bool) {
	v := m.must_change_password
	if v == nil {
		return
	}
	return *v, true
}

// OldMustChangePassword returns the old "must_change_password" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldMustChangePassword(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMustChangePassword is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMustChangePassword requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMustChangePassword: %w", err)
	}
	return oldValue.MustChangePassword, nil
}

// ResetMustChangePassword resets all changes to the "must_change_password" field.
func (m *UserMutation) ResetMustChangePassword() {
	m.must_change_password = nil
}

// SetRole sets the "role" field.
func (m *UserMutation) SetRole(u user.Role) {
	m.role = &u
}

// Role returns the value of the "role" field in the mutation.
func (m *UserMutation) Role() (r user.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldRole(ctx context.Context) (v user.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *UserMutation) ResetRole() {
	m.role = nil
}

// SetStatus sets the "status" field.
func (m *UserMutation) SetStatus(u user.Status) {
	m.status = &u
}

// Status returns the value of the "status" field in the mutation.
func (m *UserMutation) Status() (r user.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldStatus(ctx context.Context) (v user.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *UserMutation) ResetStatus() {
	m.status = nil
}

// SetLastLoginAt sets the "last_login_at" field.
func (m *UserMutation) SetLastLoginAt(t time.Time) {
	m.last_login_at = &t
}

// LastLoginAt returns the value of the "last_login_at" field in the mutation.
func (m *UserMutation) LastLoginAt() (r time.Time, exists bool) {
	v := m.last_login_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastLoginAt returns the old "last_login_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldLastLoginAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastLoginAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastLoginAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastLoginAt: %w", err)
	}
	return oldValue.LastLoginAt, nil
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (m *UserMutation) ClearLastLoginAt() {
	m.last_login_at = nil
	m.clearedFields[user.FieldLastLoginAt] = struct{}{}
}

// LastLoginAtCleared returns if the "last_login_at" field was cleared in this mutation.
func (m *UserMutation) LastLoginAtCleared() bool {
	_, ok := m.clearedFields[user.FieldLastLoginAt]
	return ok
}

// ResetLastLoginAt resets all changes to the "last_login_at" field.
func (m *UserMutation) ResetLastLoginAt() {
	m.last_login_at = nil
	delete(m.clearedFields, user.FieldLastLoginAt)
}

// SetFailedLoginAttempts sets the "failed_login_attempts" field.
func (m *UserMutation) SetFailedLoginAttempts(i int) {
	m.failed_login_attempts = &i
	m.addfailed_login_attempts = nil
}

// FailedLoginAttempts returns the value of the "failed_login_attempts" field in the mutation.
func (m *UserMutation) FailedLoginAttempts() (r int, exists bool) {
	v := m.failed_login_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldFailedLoginAttempts returns the old "failed_login_attempts" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldFailedLoginAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailedLoginAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailedLoginAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailedLoginAttempts: %w", err)
	}
	return oldValue.FailedLoginAttempts, nil
}

// AddFailedLoginAttempts adds i to the "failed_login_attempts" field.
func (m *UserMutation) AddFailedLoginAttempts(i int) {
	if m.addfailed_login_attempts != nil {
		*m.addfailed_login_attempts += i
	} else {
		m.addfailed_login_attempts = &i
	}
}

// AddedFailedLoginAttempts returns the value that was added to the "failed_login_attempts" field in this mutation.
func (m *UserMutation) AddedFailedLoginAttempts() (r int, exists bool) {
	v := m.addfailed_login_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetFailedLoginAttempts resets all changes to the "failed_login_attempts" field.
func (m *UserMutation) ResetFailedLoginAttempts() {
	m.failed_login_attempts = nil
	m.addfailed_login_attempts = nil
}

// SetLockedUntil sets the "locked_until" field.
func (m *UserMutation) SetLockedUntil(t time.Time) {
	m.locked_until = &t
}

// LockedUntil returns the value of the "locked_until" field in the mutation.
func (m *UserMutation) LockedUntil() (r time.Time, exists bool) {
	v := m.locked_until
	if v == nil {
		return
	}
	return *v, true
}

// OldLockedUntil returns the old "locked_until" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldLockedUntil(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLockedUntil is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLockedUntil requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLockedUntil: %w", err)
	}
	return oldValue.LockedUntil, nil
}

// ClearLockedUntil clears the value of the "locked_until" field.
func (m *UserMutation) ClearLockedUntil() {
	m.locked_until = nil
	m.clearedFields[user.FieldLockedUntil] = struct{}{}
}

// LockedUntilCleared returns if the "locked_until" field was cleared in this mutation.
func (m *UserMutation) LockedUntilCleared() bool {
	_, ok := m.clearedFields[user.FieldLockedUntil]
	return ok
}

// ResetLockedUntil resets all changes to the "locked_until" field.
func (m *UserMutation) ResetLockedUntil() {
	m.locked_until = nil
	delete(m.clearedFields, user.FieldLockedUntil)
}

// SetSuspendedAt sets the "suspended_at" field.
func (m *UserMutation) SetSuspendedAt(t time.Time) {
	m.suspended_at = &t
}

// SuspendedAt returns the value of the "suspended_at" field in the mutation.
func (m *UserMutation) SuspendedAt() (r time.Time, exists bool) {
	v := m.suspended_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSuspendedAt returns the old "suspended_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldSuspendedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuspendedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuspendedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuspendedAt: %w", err)
	}
	return oldValue.SuspendedAt, nil
}

// ClearSuspendedAt clears the value of the "suspended_at" field.
func (m *UserMutation) ClearSuspendedAt() {
	m.suspended_at = nil
	m.clearedFields[user.FieldSuspendedAt] = struct{}{}
}

// SuspendedAtCleared returns if the "suspended_at" field was cleared in this mutation.
func (m *UserMutation) SuspendedAtCleared() bool {
	_, ok := m.clearedFields[user.FieldSuspendedAt]
	return ok
}

// ResetSuspendedAt resets all changes to the "suspended_at" field.
func (m *UserMutation) ResetSuspendedAt() {
	m.suspended_at = nil
	delete(m.clearedFields, user.FieldSuspendedAt)
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, user.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, user.FieldDeletedAt)
	}
	if m.first_name != nil {
		fields = append(fields, user.FieldFirstName)
	}
	if m.last_name != nil {
		fields = append(fields, user.FieldLastName)
	}
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.phone != nil {
		fields = append(fields, user.FieldPhone)
	}
	if m.password_hash != nil {
		fields = append(fields, user.FieldPasswordHash)
	}
	if m.must_change_password != nil {
		fields = append(fields, user.FieldMustChangePassword)
	}
	if m.role != nil {
		fields = append(fields, user.FieldRole)
	}
	if m.status != nil {
		fields = append(fields, user.FieldStatus)
	}
	if m.last_login_at != nil {
		fields = append(fields, user.FieldLastLoginAt)
	}
	if m.failed_login_attempts != nil {
		fields = append(fields, user.FieldFailedLoginAttempts)
	}
	if m.locked_until != nil {
		fields = append(fields, user.FieldLockedUntil)
	}
	if m.suspended_at != nil {
		fields = append(fields, user.FieldSuspendedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldUpdatedAt:
		return m.UpdatedAt()
	case user.FieldDeletedAt:
		return m.DeletedAt()
	case user.FieldFirstName:
		return m.FirstName()
	case user.FieldLastName:
		return m.LastName()
	case user.FieldEmail:
		return m.Email()
	case user.FieldPhone:
		return m.Phone()
	case user.FieldPasswordHash:
		return m.PasswordHash()
	case user.FieldMustChangePassword:
		return m.MustChangePassword()
	case user.FieldRole:
		return m.Role()
	case user.FieldStatus:
		return m.Status()
	case user.FieldLastLoginAt:
		return m.LastLoginAt()
	case user.FieldFailedLoginAttempts:
		return m.FailedLoginAttempts()
	case user.FieldLockedUntil:
		return m.LockedUntil()
	case user.FieldSuspendedAt:
		return m.SuspendedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case user.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case user.FieldFirstName:
		return m.OldFirstName(ctx)
	case user.FieldLastName:
		return m.OldLastName(ctx)
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldPhone:
		return m.OldPhone(ctx)
	case user.FieldPasswordHash:
		return m.OldPasswordHash(ctx)
	case user.FieldMustChangePassword:
		return m.OldMustChangePassword(ctx)
	case user.FieldRole:
		return m.OldRole(ctx)
	case user.FieldStatus:
		return m.OldStatus(ctx)
	case user.FieldLastLoginAt:
		return m.OldLastLoginAt(ctx)
	case user.FieldFailedLoginAttempts:
		return m.OldFailedLoginAttempts(ctx)
	case user.FieldLockedUntil:
		return m.OldLockedUntil(ctx)
	case user.FieldSuspendedAt:
		return m.OldSuspendedAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case user.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case user.FieldFirstName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstName(v)
		return nil
	case user.FieldLastName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastName(v)
		return nil
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case user.FieldPasswordHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPasswordHash(v)
		return nil
	case user.FieldMustChangePassword:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMustChangePassword(v)
		return nil
	case user.FieldRole:
		v, ok := value.(user.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case user.FieldStatus:
		v, ok := value.(user.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case user.FieldLastLoginAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastLoginAt(v)
		return nil
	case user.FieldFailedLoginAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailedLoginAttempts(v)
		return nil
	case user.FieldLockedUntil:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLockedUntil(v)
		return nil
	case user.FieldSuspendedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuspendedAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	var fields []string
	if m.addfailed_login_attempts != nil {
		fields = append(fields, user.FieldFailedLoginAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case user.FieldFailedLoginAttempts:
		return m.AddedFailedLoginAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	case user.FieldFailedLoginAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFailedLoginAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldDeletedAt) {
		fields = append(fields, user.FieldDeletedAt)
	}
	if m.FieldCleared(user.FieldFirstName) {
		fields = append(fields, user.FieldFirstName)
	}
	if m.FieldCleared(user.FieldLastName) {
		fields = append(fields, user.FieldLastName)
	}
	if m.FieldCleared(user.FieldPhone) {
		fields = append(fields, user.FieldPhone)
	}
	if m.FieldCleared(user.FieldPasswordHash) {
		fields = append(fields, user.FieldPasswordHash)
	}
	if m.FieldCleared(user.FieldLastLoginAt) {
		fields = append(fields, user.FieldLastLoginAt)
	}
	if m.FieldCleared(user.FieldLockedUntil) {
		fields = append(fields, user.FieldLockedUntil)
	}
	if m.FieldCleared(user.FieldSuspendedAt) {
		fields = append(fields, user.FieldSuspendedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	case user.FieldFirstName:
		m.ClearFirstName()
		return nil
	case user.FieldLastName:
		m.ClearLastName()
		return nil
	case user.FieldPhone:
		m.ClearPhone()
		return nil
	case user.FieldPasswordHash:
		m.ClearPasswordHash()
		return nil
	case user.FieldLastLoginAt:
		m.ClearLastLoginAt()
		return nil
	case user.FieldLockedUntil:
		m.ClearLockedUntil()
		return nil
	case user.FieldSuspendedAt:
		m.ClearSuspendedAt()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case user.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case user.FieldFirstName:
		m.ResetFirstName()
		return nil
	case user.FieldLastName:
		m.ResetLastName()
		return nil
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldPhone:
		m.ResetPhone()
		return nil
	case user.FieldPasswordHash:
		m.ResetPasswordHash()
		return nil
	case user.FieldMustChangePassword:
		m.ResetMustChangePassword()
		return nil
	case user.FieldRole:
		m.ResetRole()
		return nil
	case user.FieldStatus:
		m.ResetStatus()
		return nil
	case user.FieldLastLoginAt:
		m.ResetLastLoginAt()
		return nil
	case user.FieldFailedLoginAttempts:
		m.ResetFailedLoginAttempts()
		return nil
	case user.FieldLockedUntil:
		m.ResetLockedUntil()
		return nil
	case user.FieldSuspendedAt:
		m.ResetSuspendedAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown User edge %s", name)
}

// UserSessionMutation represents an operation that mutates the UserSession nodes in the graph.
type UserSessionMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	created_at         *time.Time
	updated_at         *time.Time
	session_id         *string
	refresh_token_hash *string
	user_agent         *string
	ip_address         *string
	expires_at         *time.Time
	last_used_at       *time.Time
	revoked_at         *time.Time
	clearedFields      map[string]struct{}
	user               *uuid.UUID
	cleareduser        bool
	done               bool
	oldValue           func(context.Context) (*UserSession, error)
	predicates         []predicate.UserSession
}

var _ ent.Mutation = (*UserSessionMutation)(nil)

// usersessionOption allows management of the mutation configuration using functional options.
type usersessionOption func(*UserSessionMutation)

// newUserSessionMutation creates new mutation for the UserSession entity.
func newUserSessionMutation(c config, op Op, opts ...usersessionOption) *UserSessionMutation {
	m := &UserSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeUserSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserSessionID sets the ID field of the mutation.
func withUserSessionID(id uuid.UUID) usersessionOption {
	return func(m *UserSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *UserSession
		)
		m.oldValue = func(ctx context.Context) (*UserSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UserSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUserSession sets the old UserSession of the mutation.
func withUserSession(node *UserSession) usersessionOption {
	return func(m *UserSessionMutation) {
		m.oldValue = func(context.Context) (*UserSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of UserSession entities.
func (m *UserSessionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserSessionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserSessionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UserSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *UserSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserSessionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserSessionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserSessionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetUserID sets the "user_id" field.
func (m *UserSessionMutation) SetUserID(u uuid.UUID) {
	m.user = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *UserSessionMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *UserSessionMutation) ResetUserID() {
	m.user = nil
}

// SetSessionID sets the "session_id" field.
func (m *UserSessionMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *UserSessionMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *UserSessionMutation) ResetSessionID() {
	m.session_id = nil
}

// SetRefreshTokenHash sets the "refresh_token_hash" field.
func (m *UserSessionMutation) SetRefreshTokenHash(s string) {
	m.refresh_token_hash = &s
}

// RefreshTokenHash returns the value of the "refresh_token_hash" field in the mutation.
func (m *UserSessionMutation) RefreshTokenHash() (r string, exists bool) {
	v := m.refresh_token_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldRefreshTokenHash returns the old "refresh_token_hash" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldRefreshTokenHash(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRefreshTokenHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRefreshTokenHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRefreshTokenHash: %w", err)
	}
	return oldValue.RefreshTokenHash, nil
}

// ClearRefreshTokenHash clears the value of the "refresh_token_hash" field.
func (m *UserSessionMutation) ClearRefreshTokenHash() {
	m.refresh_token_hash = nil
	m.clearedFields[usersession.FieldRefreshTokenHash] = struct{}{}
}

// RefreshTokenHashCleared returns if the "refresh_token_hash" field was cleared in this mutation.
func (m *UserSessionMutation) RefreshTokenHashCleared() bool {
	_, ok := m.clearedFields[usersession.FieldRefreshTokenHash]
	return ok
}

// ResetRefreshTokenHash resets all changes to the "refresh_token_hash" field.
func (m *UserSessionMutation) ResetRefreshTokenHash() {
	m.refresh_token_hash = nil
	delete(m.clearedFields, usersession.FieldRefreshTokenHash)
}

// SetUserAgent sets the "user_agent" field.
func (m *UserSessionMutation) SetUserAgent(s string) {
	m.user_agent = &s
}

// UserAgent returns the value of the "user_agent" field in the mutation.
func (m *UserSessionMutation) UserAgent() (r string, exists bool) {
	v := m.user_agent
	if v == nil {
		return
	}
	return *v, true
}

// OldUserAgent returns the old "user_agent" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldUserAgent(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserAgent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserAgent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserAgent: %w", err)
	}
	return oldValue.UserAgent, nil
}

// ClearUserAgent clears the value of the "user_agent" field.
func (m *UserSessionMutation) ClearUserAgent() {
	m.user_agent = nil
	m.clearedFields[usersession.FieldUserAgent] = struct{}{}
}

// UserAgentCleared returns if the "user_agent" field was cleared in this mutation.
func (m *UserSessionMutation) UserAgentCleared() bool {
	_, ok := m.clearedFields[usersession.FieldUserAgent]
	return ok
}

// ResetUserAgent resets all changes to the "user_agent" field.
func (m *UserSessionMutation) ResetUserAgent() {
	m.user_agent = nil
	delete(m.clearedFields, usersession.FieldUserAgent)
}

// SetIPAddress sets the "ip_address" field.
func (m *UserSessionMutation) SetIPAddress(s string) {
	m.ip_address = &s
}

// IPAddress returns the value of the "ip_address" field in the mutation.
func (m *UserSessionMutation) IPAddress() (r string, exists bool) {
	v := m.ip_address
	if v == nil {
		return
	}
	return *v, true
}

// OldIPAddress returns the old "ip_address" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldIPAddress(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIPAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIPAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIPAddress: %w", err)
	}
	return oldValue.IPAddress, nil
}

// ClearIPAddress clears the value of the "ip_address" field.
func (m *UserSessionMutation) ClearIPAddress() {
	m.ip_address = nil
	m.clearedFields[usersession.FieldIPAddress] = struct{}{}
}

// IPAddressCleared returns if the "ip_address" field was cleared in this mutation.
func (m *UserSessionMutation) IPAddressCleared() bool {
	_, ok := m.clearedFields[usersession.FieldIPAddress]
	return ok
}

// ResetIPAddress resets all changes to the "ip_address" field.
func (m *UserSessionMutation) ResetIPAddress() {
	m.ip_address = nil
	delete(m.clearedFields, usersession.FieldIPAddress)
}

// SetExpiresAt sets the "expires_at" field.
func (m *UserSessionMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *UserSessionMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *UserSessionMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// SetLastUsedAt sets the "last_used_at" field.
func (m *UserSessionMutation) SetLastUsedAt(t time.Time) {
	m.last_used_at = &t
}

// LastUsedAt returns the value of the "last_used_at" field in the mutation.
func (m *UserSessionMutation) LastUsedAt() (r time.Time, exists bool) {
	v := m.last_used_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastUsedAt returns the old "last_used_at" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldLastUsedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastUsedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastUsedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastUsedAt: %w", err)
	}
	return oldValue.LastUsedAt, nil
}

// ClearLastUsedAt clears the value of the "last_used_at" field.
func (m *UserSessionMutation) ClearLastUsedAt() {
	m.last_used_at = nil
	m.clearedFields[usersession.FieldLastUsedAt] = struct{}{}
}

// LastUsedAtCleared returns if the "last_used_at" field was cleared in this mutation.
func (m *UserSessionMutation) LastUsedAtCleared() bool {
	_, ok := m.clearedFields[usersession.FieldLastUsedAt]
	return ok
}

// ResetLastUsedAt resets all changes to the "last_used_at" field.
func (m *UserSessionMutation) ResetLastUsedAt() {
	m.last_used_at = nil
	delete(m.clearedFields, usersession.FieldLastUsedAt)
}

// SetRevokedAt sets the "revoked_at" field.
func (m *UserSessionMutation) SetRevokedAt(t time.Time) {
	m.revoked_at = &t
}

// RevokedAt returns the value of the "revoked_at" field in the mutation.
func (m *UserSessionMutation) RevokedAt() (r time.Time, exists bool) {
	v := m.revoked_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRevokedAt returns the old "revoked_at" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldRevokedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRevokedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRevokedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRevokedAt: %w", err)
	}
	return oldValue.RevokedAt, nil
}

// ClearRevokedAt clears the value of the "revoked_at" field.
func (m *UserSessionMutation) ClearRevokedAt() {
	m.revoked_at = nil
	m.clearedFields[usersession.FieldRevokedAt] = struct{}{}
}

// RevokedAtCleared returns if the "revoked_at" field was cleared in this mutation.
func (m *UserSessionMutation) RevokedAtCleared() bool {
	_, ok := m.clearedFields[usersession.FieldRevokedAt]
	return ok
}

// ResetRevokedAt resets all changes to the "revoked_at" field.
func (m *UserSessionMutation) ResetRevokedAt() {
	m.revoked_at = nil
	delete(m.clearedFields, usersession.FieldRevokedAt)
}

// ClearUser clears the "user" edge to the User entity.
func (m *UserSessionMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[usersession.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *UserSessionMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *UserSessionMutation) UserIDs() (ids []uuid.UUID) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *UserSessionMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// Where appends a list predicates to the UserSessionMutation builder.
func (m *UserSessionMutation) Where(ps ...predicate.UserSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UserSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UserSession).
func (m *UserSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserSessionMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.created_at != nil {
		fields = append(fields, usersession.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, usersession.FieldUpdatedAt)
	}
	if m.user != nil {
		fields = append(fields, usersession.FieldUserID)
	}
	if m.session_id != nil {
		fields = append(fields, usersession.FieldSessionID)
	}
	if m.refresh_token_hash != nil {
		fields = append(fields, usersession.FieldRefreshTokenHash)
	}
	if m.user_agent != nil {
		fields = append(fields, usersession.FieldUserAgent)
	}
	if m.ip_address != nil {
		fields = append(fields, usersession.FieldIPAddress)
	}
	if m.expires_at != nil {
		fields = append(fields, usersession.FieldExpiresAt)
	}
	if m.last_used_at != nil {
		fields = append(fields, usersession.FieldLastUsedAt)
	}
	if m.revoked_at != nil {
		fields = append(fields, usersession.FieldRevokedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case usersession.FieldCreatedAt:
		return m.CreatedAt()
	case usersession.FieldUpdatedAt:
		return m.UpdatedAt()
	case usersession.FieldUserID:
		return m.UserID()
	case usersession.FieldSessionID:
		return m.SessionID()
	case usersession.FieldRefreshTokenHash:
		return m.RefreshTokenHash()
	case usersession.FieldUserAgent:
		return m.UserAgent()
	case usersession.FieldIPAddress:
		return m.IPAddress()
	case usersession.FieldExpiresAt:
		return m.ExpiresAt()
	case usersession.FieldLastUsedAt:
		return m.LastUsedAt()
	case usersession.FieldRevokedAt:
		return m.RevokedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case usersession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case usersession.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case usersession.FieldUserID:
		return m.OldUserID(ctx)
	case usersession.FieldSessionID:
		return m.OldSessionID(ctx)
	case usersession.FieldRefreshTokenHash:
		return m.OldRefreshTokenHash(ctx)
	case usersession.FieldUserAgent:
		return m.OldUserAgent(ctx)
	case usersession.FieldIPAddress:
		return m.OldIPAddress(ctx)
	case usersession.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case usersession.FieldLastUsedAt:
		return m.OldLastUsedAt(ctx)
	case usersession.FieldRevokedAt:
		return m.OldRevokedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UserSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case usersession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case usersession.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case usersession.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case usersession.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case usersession.FieldRefreshTokenHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRefreshTokenHash(v)
		return nil
	case usersession.FieldUserAgent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserAgent(v)
		return nil
	case usersession.FieldIPAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIPAddress(v)
		return nil
	case usersession.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case usersession.FieldLastUsedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastUsedAt(v)
		return nil
	case usersession.FieldRevokedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRevokedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UserSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserSessionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserSessionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown UserSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(usersession.FieldRefreshTokenHash) {
		fields = append(fields, usersession.FieldRefreshTokenHash)
	}
	if m.FieldCleared(usersession.FieldUserAgent) {
		fields = append(fields, usersession.FieldUserAgent)
	}
	if m.FieldCleared(usersession.FieldIPAddress) {
		fields = append(fields, usersession.FieldIPAddress)
	}
	if m.FieldCleared(usersession.FieldLastUsedAt) {
		fields = append(fields, usersession.FieldLastUsedAt)
	}
	if m.FieldCleared(usersession.FieldRevokedAt) {
		fields = append(fields, usersession.FieldRevokedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserSessionMutation) ClearField(name string) error {
	switch name {
	case usersession.FieldRefreshTokenHash:
		m.ClearRefreshTokenHash()
		return nil
	case usersession.FieldUserAgent:
		m.ClearUserAgent()
		return nil
	case usersession.FieldIPAddress:
		m.ClearIPAddress()
		return nil
	case usersession.FieldLastUsedAt:
		m.ClearLastUsedAt()
		return nil
	case usersession.FieldRevokedAt:
		m.ClearRevokedAt()
		return nil
	}
	return fmt.Errorf("unknown UserSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserSessionMutation) ResetField(name string) error {
	switch name {
	case usersession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case usersession.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case usersession.FieldUserID:
		m.ResetUserID()
		return nil
	case usersession.FieldSessionID:
		m.ResetSessionID()
		return nil
	case usersession.FieldRefreshTokenHash:
		m.ResetRefreshTokenHash()
		return nil
	case usersession.FieldUserAgent:
		m.ResetUserAgent()
		return nil
	case usersession.FieldIPAddress:
		m.ResetIPAddress()
		return nil
	case usersession.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case usersession.FieldLastUsedAt:
		m.ResetLastUsedAt()
		return nil
	case usersession.FieldRevokedAt:
		m.ResetRevokedAt()
		return nil
	}
	return fmt.Errorf("unknown UserSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.user != nil {
		edges = append(edges, usersession.EdgeUser)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserSessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case usersession.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserSessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareduser {
		edges = append(edges, usersession.EdgeUser)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserSessionMutation) EdgeCleared(name string) bool {
	switch name {
	case usersession.EdgeUser:
		return m.cleareduser
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserSessionMutation) ClearEdge(name string) error {
	switch name {
	case usersession.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown UserSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserSessionMutation) ResetEdge(name string) error {
	switch name {
	case usersession.EdgeUser:
		m.ResetUser()
		return nil
	}
	return fmt.Errorf("unknown UserSession edge %s", name)
}
