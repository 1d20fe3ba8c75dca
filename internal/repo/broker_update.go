// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/oculusgrp/dealdesk_backend/internal/repo/broker"
	"github.com/oculusgrp/dealdesk_backend/internal/repo/dealbroker"
	"github.com/oculusgrp/dealdesk_backend/internal/repo/paymentsplit"
	"github.com/oculusgrp/dealdesk_backend/internal/repo/predicate"
)

// BrokerUpdate is the builder for updating Broker entities.
type BrokerUpdate struct {
	config
	hooks    []Hook
	mutation *BrokerMutation
}

// Where appends a list predicates to the BrokerUpdate builder.
func (_u *BrokerUpdate) Where(ps ...predicate.Broker) *BrokerUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BrokerUpdate) SetUpdatedAt(v time.Time) *BrokerUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *BrokerUpdate) SetDeletedAt(v time.Time) *BrokerUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *BrokerUpdate) SetNillableDeletedAt(v *time.Time) *BrokerUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *BrokerUpdate) ClearDeletedAt() *BrokerUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *BrokerUpdate) SetUserID(v uuid.UUID) *BrokerUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *BrokerUpdate) SetNillableUserID(v *uuid.UUID) *BrokerUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *BrokerUpdate) ClearUserID() *BrokerUpdate {
	_u.mutation.ClearUserID()
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *BrokerUpdate) SetDisplayName(v string) *BrokerUpdate {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *BrokerUpdate) SetNillableDisplayName(v *string) *BrokerUpdate {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *BrokerUpdate) SetEmail(v string) *BrokerUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *BrokerUpdate) SetNillableEmail(v *string) *BrokerUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *BrokerUpdate) ClearEmail() *BrokerUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *BrokerUpdate) SetPhone(v string) *BrokerUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *BrokerUpdate) SetNillablePhone(v *string) *BrokerUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *BrokerUpdate) ClearPhone() *BrokerUpdate {
	_u.mutation.ClearPhone()
	return _u
}

// SetBankAccountEncrypted sets the "bank_account_encrypted" field.
func (_u *BrokerUpdate) SetBankAccountEncrypted(v string) *BrokerUpdate {
	_u.mutation.SetBankAccountEncrypted(v)
	return _u
}

// SetNillableBankAccountEncrypted sets the "bank_account_encrypted" field if the given value is not nil.
func (_u *BrokerUpdate) SetNillableBankAccountEncrypted(v *string) *BrokerUpdate {
	if v != nil {
		_u.SetBankAccountEncrypted(*v)
	}
	return _u
}

// ClearBankAccountEncrypted clears the value of the "bank_account_encrypted" field.
func (_u *BrokerUpdate) ClearBankAccountEncrypted() *BrokerUpdate {
	_u.mutation.ClearBankAccountEncrypted()
	return _u
}

// SetBankAccountHash sets the "bank_account_hash" field.
func (_u *BrokerUpdate) SetBankAccountHash(v string) *BrokerUpdate {
	_u.mutation.SetBankAccountHash(v)
	return _u
}

// SetNillableBankAccountHash sets the "bank_account_hash" field if the given value is not nil.
func (_u *BrokerUpdate) SetNillableBankAccountHash(v *string) *BrokerUpdate {
	if v != nil {
		_u.SetBankAccountHash(*v)
	}
	return _u
}

// ClearBankAccountHash clears the value of the "bank_account_hash" field.
func (_u *BrokerUpdate) ClearBankAccountHash() *BrokerUpdate {
	_u.mutation.ClearBankAccountHash()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *BrokerUpdate) SetIsActive(v bool) *BrokerUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *BrokerUpdate) SetNillableIsActive(v *bool) *BrokerUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// AddDealInterestIDs adds the "deal_interests" edge to the DealBroker entity by IDs.
func (_u *BrokerUpdate) AddDealInterestIDs(ids ...uuid.UUID) *BrokerUpdate {
	_u.mutation.AddDealInterestIDs(ids...)
	return _u
}

// AddDealInterests adds the "deal_interests" edges to the DealBroker entity.
func (_u *BrokerUpdate) AddDealInterests(v ...*DealBroker) *BrokerUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDealInterestIDs(ids...)
}

// AddPaymentSplitIDs adds the "payment_splits" edge to the PaymentSplit entity by IDs.
func (_u *BrokerUpdate) AddPaymentSplitIDs(ids ...uuid.UUID) *BrokerUpdate {
	_u.mutation.AddPaymentSplitIDs(ids...)
	return _u
}

// AddPaymentSplits adds the "payment_splits" edges to the PaymentSplit entity.
func (_u *BrokerUpdate) AddPaymentSplits(v ...*PaymentSplit) *BrokerUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPaymentSplitIDs(ids...)
}

// Mutation returns the BrokerMutation object of the builder.
func (_u *BrokerUpdate) Mutation() *BrokerMutation {
	return _u.mutation
}

// ClearDealInterests clears all "deal_interests" edges to the DealBroker entity.
func (_u *BrokerUpdate) ClearDealInterests() *BrokerUpdate {
	_u.mutation.ClearDealInterests()
	return _u
}

// RemoveDealInterestIDs removes the "deal_interests" edge to DealBroker entities by IDs.
func (_u *BrokerUpdate) RemoveDealInterestIDs(ids ...uuid.UUID) *BrokerUpdate {
	_u.mutation.RemoveDealInterestIDs(ids...)
	return _u
}

// RemoveDealInterests removes "deal_interests" edges to DealBroker entities.
func (_u *BrokerUpdate) RemoveDealInterests(v ...*DealBroker) *BrokerUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDealInterestIDs(ids...)
}

// ClearPaymentSplits clears all "payment_splits" edges to the PaymentSplit entity.
func (_u *BrokerUpdate) ClearPaymentSplits() *BrokerUpdate {
	_u.mutation.ClearPaymentSplits()
	return _u
}

// RemovePaymentSplitIDs removes the "payment_splits" edge to PaymentSplit entities by IDs.
func (_u *BrokerUpdate) RemovePaymentSplitIDs(ids ...uuid.UUID) *BrokerUpdate {
	_u.mutation.RemovePaymentSplitIDs(ids...)
	return _u
}

// RemovePaymentSplits removes "payment_splits" edges to PaymentSplit entities.
func (_u *BrokerUpdate) RemovePaymentSplits(v ...*PaymentSplit) *BrokerUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePaymentSplitIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BrokerUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BrokerUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BrokerUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BrokerUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BrokerUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := broker.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BrokerUpdate) check() error {
	if v, ok := _u.mutation.DisplayName(); ok {
		if err := broker.DisplayNameValidator(v); err != nil {
			return &ValidationError{Name: "display_name", err: fmt.Errorf(`repo: validator failed for field "Broker.display_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := broker.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "Broker.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phone(); ok {
		if err := broker.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "Broker.phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BankAccountEncrypted(); ok {
		if err := broker.BankAccountEncryptedValidator(v); err != nil {
			return &ValidationError{Name: "bank_account_encrypted", err: fmt.Errorf(`repo: validator failed for field "Broker.bank_account_encrypted": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BankAccountHash(); ok {
		if err := broker.BankAccountHashValidator(v); err != nil {
			return &ValidationError{Name: "bank_account_hash", err: fmt.Errorf(`repo: validator failed for field "Broker.bank_account_hash": %w`, err)}
		}
	}
	return nil
}

func (_u *BrokerUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(broker.Table, broker.Columns, sqlgraph.NewFieldSpec(broker.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(broker.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(broker.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(broker.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(broker.FieldUserID, field.TypeUUID, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(broker.FieldUserID, field.TypeUUID)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(broker.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(broker.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(broker.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(broker.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(broker.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.BankAccountEncrypted(); ok {
		_spec.SetField(broker.FieldBankAccountEncrypted, field.TypeString, value)
	}
	if _u.mutation.BankAccountEncryptedCleared() {
		_spec.ClearField(broker.FieldBankAccountEncrypted, field.TypeString)
	}
	if value, ok := _u.mutation.BankAccountHash(); ok {
		_spec.SetField(broker.FieldBankAccountHash, field.TypeString, value)
	}
	if _u.mutation.BankAccountHashCleared() {
		_spec.ClearField(broker.FieldBankAccountHash, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(broker.FieldIsActive, field.TypeBool, value)
	}
	if _u.mutation.DealInterestsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   broker.DealInterestsTable,
			Columns: []string{broker.DealInterestsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dealbroker.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDealInterestsIDs(); len(nodes) > 0 && !_u.mutation.DealInterestsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   broker.DealInterestsTable,
			Columns: []string{broker.DealInterestsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dealbroker.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DealInterestsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   broker.DealInterestsTable,
			Columns: []string{broker.DealInterestsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dealbroker.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PaymentSplitsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   broker.PaymentSplitsTable,
			Columns: []string{broker.PaymentSplitsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(paymentsplit.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPaymentSplitsIDs(); len(nodes) > 0 && !_u.mutation.PaymentSplitsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   broker.PaymentSplitsTable,
			Columns: []string{broker.PaymentSplitsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(paymentsplit.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PaymentSplitsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   broker.PaymentSplitsTable,
			Columns: []string{broker.PaymentSplitsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(paymentsplit.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{broker.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BrokerUpdateOne is the builder for updating a single Broker entity.
type BrokerUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BrokerMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BrokerUpdateOne) SetUpdatedAt(v time.Time) *BrokerUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *BrokerUpdateOne) SetDeletedAt(v time.Time) *BrokerUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *BrokerUpdateOne) SetNillableDeletedAt(v *time.Time) *BrokerUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *BrokerUpdateOne) ClearDeletedAt() *BrokerUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *BrokerUpdateOne) SetUserID(v uuid.UUID) *BrokerUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *BrokerUpdateOne) SetNillableUserID(v *uuid.UUID) *BrokerUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *BrokerUpdateOne) ClearUserID() *BrokerUpdateOne {
	_u.mutation.ClearUserID()
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *BrokerUpdateOne) SetDisplayName(v string) *BrokerUpdateOne {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *BrokerUpdateOne) SetNillableDisplayName(v *string) *BrokerUpdateOne {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *BrokerUpdateOne) SetEmail(v string) *BrokerUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *BrokerUpdateOne) SetNillableEmail(v *string) *BrokerUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *BrokerUpdateOne) ClearEmail() *BrokerUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *BrokerUpdateOne) SetPhone(v string) *BrokerUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *BrokerUpdateOne) SetNillablePhone(v *string) *BrokerUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *BrokerUpdateOne) ClearPhone() *BrokerUpdateOne {
	_u.mutation.ClearPhone()
	return _u
}

// SetBankAccountEncrypted sets the "bank_account_encrypted" field.
func (_u *BrokerUpdateOne) SetBankAccountEncrypted(v string) *BrokerUpdateOne {
	_u.mutation.SetBankAccountEncrypted(v)
	return _u
}

// SetNillableBankAccountEncrypted sets the "bank_account_encrypted" field if the given value is not nil.
func (_u *BrokerUpdateOne) SetNillableBankAccountEncrypted(v *string) *BrokerUpdateOne {
	if v != nil {
		_u.SetBankAccountEncrypted(*v)
	}
	return _u
}

// ClearBankAccountEncrypted clears the value of the "bank_account_encrypted" field.
func (_u *BrokerUpdateOne) ClearBankAccountEncrypted() *BrokerUpdateOne {
	_u.mutation.ClearBankAccountEncrypted()
	return _u
}

// SetBankAccountHash sets the "bank_account_hash" field.
func (_u *BrokerUpdateOne) SetBankAccountHash(v string) *BrokerUpdateOne {
	_u.mutation.SetBankAccountHash(v)
	return _u
}

// SetNillableBankAccountHash sets the "bank_account_hash" field if the given value is not nil.
func (_u *BrokerUpdateOne) SetNillableBankAccountHash(v *string) *BrokerUpdateOne {
	if v != nil {
		_u.SetBankAccountHash(*v)
	}
	return _u
}

// ClearBankAccountHash clears the value of the "bank_account_hash" field.
func (_u *BrokerUpdateOne) ClearBankAccountHash() *BrokerUpdateOne {
	_u.mutation.ClearBankAccountHash()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *BrokerUpdateOne) SetIsActive(v bool) *BrokerUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *BrokerUpdateOne) SetNillableIsActive(v *bool) *BrokerUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// AddDealInterestIDs adds the "deal_interests" edge to the DealBroker entity by IDs.
func (_u *BrokerUpdateOne) AddDealInterestIDs(ids ...uuid.UUID) *BrokerUpdateOne {
	_u.mutation.AddDealInterestIDs(ids...)
	return _u
}

// AddDealInterests adds the "deal_interests" edges to the DealBroker entity.
func (_u *BrokerUpdateOne) AddDealInterests(v ...*DealBroker) *BrokerUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDealInterestIDs(ids...)
}

// AddPaymentSplitIDs adds the "payment_splits" edge to the PaymentSplit entity by IDs.
func (_u *BrokerUpdateOne) AddPaymentSplitIDs(ids ...uuid.UUID) *BrokerUpdateOne {
	_u.mutation.AddPaymentSplitIDs(ids...)
	return _u
}

// AddPaymentSplits adds the "payment_splits" edges to the PaymentSplit entity.
func (_u *BrokerUpdateOne) AddPaymentSplits(v ...*PaymentSplit) *BrokerUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPaymentSplitIDs(ids...)
}

// Mutation returns the BrokerMutation object of the builder.
func (_u *BrokerUpdateOne) Mutation() *BrokerMutation {
	return _u.mutation
}

// ClearDealInterests clears all "deal_interests" edges to the DealBroker entity.
func (_u *BrokerUpdateOne) ClearDealInterests() *BrokerUpdateOne {
	_u.mutation.ClearDealInterests()
	return _u
}

// RemoveDealInterestIDs removes the "deal_interests" edge to DealBroker entities by IDs.
func (_u *BrokerUpdateOne) RemoveDealInterestIDs(ids ...uuid.UUID) *BrokerUpdateOne {
	_u.mutation.RemoveDealInterestIDs(ids...)
	return _u
}

// RemoveDealInterests removes "deal_interests" edges to DealBroker entities.
func (_u *BrokerUpdateOne) RemoveDealInterests(v ...*DealBroker) *BrokerUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDealInterestIDs(ids...)
}

// ClearPaymentSplits clears all "payment_splits" edges to the PaymentSplit entity.
func (_u *BrokerUpdateOne) ClearPaymentSplits() *BrokerUpdateOne {
	_u.mutation.ClearPaymentSplits()
	return _u
}

// RemovePaymentSplitIDs removes the "payment_splits" edge to PaymentSplit entities by IDs.
func (_u *BrokerUpdateOne) RemovePaymentSplitIDs(ids ...uuid.UUID) *BrokerUpdateOne {
	_u.mutation.RemovePaymentSplitIDs(ids...)
	return _u
}

// RemovePaymentSplits removes "payment_splits" edges to PaymentSplit entities.
func (_u *BrokerUpdateOne) RemovePaymentSplits(v ...*PaymentSplit) *BrokerUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePaymentSplitIDs(ids...)
}

// Where appends a list predicates to the BrokerUpdate builder.
func (_u *BrokerUpdateOne) Where(ps ...predicate.Broker) *BrokerUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BrokerUpdateOne) Select(field string, fields ...string) *BrokerUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Broker entity.
func (_u *BrokerUpdateOne) Save(ctx context.Context) (*Broker, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BrokerUpdateOne) SaveX(ctx context.Context) *Broker {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BrokerUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BrokerUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BrokerUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := broker.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BrokerUpdateOne) check() error {
	if v, ok := _u.mutation.DisplayName(); ok {
		if err := broker.DisplayNameValidator(v); err != nil {
			return &ValidationError{Name: "display_name", err: fmt.Errorf(`repo: validator failed for field "Broker.display_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := broker.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "Broker.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phone(); ok {
		if err := broker.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "Broker.phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BankAccountEncrypted(); ok {
		if err := broker.BankAccountEncryptedValidator(v); err != nil {
			return &ValidationError{Name: "bank_account_encrypted", err: fmt.Errorf(`repo: validator failed for field "Broker.bank_account_encrypted": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BankAccountHash(); ok {
		if err := broker.BankAccountHashValidator(v); err != nil {
			return &ValidationError{Name: "bank_account_hash", err: fmt.Errorf(`repo: validator failed for field "Broker.bank_account_hash": %w`, err)}
		}
	}
	return nil
}

func (_u *BrokerUpdateOne) sqlSave(ctx context.Context) (_node *Broker, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(broker.Table, broker.Columns, sqlgraph.NewFieldSpec(broker.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Broker.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, broker.FieldID)
		for _, f := range fields {
			if !broker.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != broker.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(broker.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(broker.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(broker.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(broker.FieldUserID, field.TypeUUID, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(broker.FieldUserID, field.TypeUUID)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(broker.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(broker.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(broker.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(broker.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(broker.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.BankAccountEncrypted(); ok {
		_spec.SetField(broker.FieldBankAccountEncrypted, field.TypeString, value)
	}
	if _u.mutation.BankAccountEncryptedCleared() {
		_spec.ClearField(broker.FieldBankAccountEncrypted, field.TypeString)
	}
	if value, ok := _u.mutation.BankAccountHash(); ok {
		_spec.SetField(broker.FieldBankAccountHash, field.TypeString, value)
	}
	if _u.mutation.BankAccountHashCleared() {
		_spec.ClearField(broker.FieldBankAccountHash, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(broker.FieldIsActive, field.TypeBool, value)
	}
	if _u.mutation.DealInterestsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   broker.DealInterestsTable,
			Columns: []string{broker.DealInterestsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dealbroker.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDealInterestsIDs(); len(nodes) > 0 && !_u.mutation.DealInterestsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   broker.DealInterestsTable,
			Columns: []string{broker.DealInterestsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dealbroker.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DealInterestsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   broker.DealInterestsTable,
			Columns: []string{broker.DealInterestsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dealbroker.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PaymentSplitsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   broker.PaymentSplitsTable,
			Columns: []string{broker.PaymentSplitsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(paymentsplit.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPaymentSplitsIDs(); len(nodes) > 0 && !_u.mutation.PaymentSplitsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   broker.PaymentSplitsTable,
			Columns: []string{broker.PaymentSplitsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(paymentsplit.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PaymentSplitsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   broker.PaymentSplitsTable,
			Columns: []string{broker.PaymentSplitsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(paymentsplit.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Broker{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{broker.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
