// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/oculusgrp/dealdesk_backend/internal/repo/broker"
	"github.com/oculusgrp/dealdesk_backend/internal/repo/dealbroker"
	"github.com/oculusgrp/dealdesk_backend/internal/repo/paymentsplit"
)

// BrokerCreate is the builder for creating a Broker entity.
type BrokerCreate struct {
	config
	mutation *BrokerMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *BrokerCreate) SetCreatedAt(v time.Time) *BrokerCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BrokerCreate) SetNillableCreatedAt(v *time.Time) *BrokerCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *BrokerCreate) SetUpdatedAt(v time.Time) *BrokerCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *BrokerCreate) SetNillableUpdatedAt(v *time.Time) *BrokerCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *BrokerCreate) SetDeletedAt(v time.Time) *BrokerCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *BrokerCreate) SetNillableDeletedAt(v *time.Time) *BrokerCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *BrokerCreate) SetUserID(v uuid.UUID) *BrokerCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *BrokerCreate) SetNillableUserID(v *uuid.UUID) *BrokerCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetDisplayName sets the "display_name" field.
func (_c *BrokerCreate) SetDisplayName(v string) *BrokerCreate {
	_c.mutation.SetDisplayName(v)
	return _c
}

// SetEmail sets the "email" field.
func (_c *BrokerCreate) SetEmail(v string) *BrokerCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_c *BrokerCreate) SetNillableEmail(v *string) *BrokerCreate {
	if v != nil {
		_c.SetEmail(*v)
	}
	return _c
}

// SetPhone sets the "phone" field.
func (_c *BrokerCreate) SetPhone(v string) *BrokerCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_c *BrokerCreate) SetNillablePhone(v *string) *BrokerCreate {
	if v != nil {
		_c.SetPhone(*v)
	}
	return _c
}

// SetBankAccountEncrypted sets the "bank_account_encrypted" field.
func (_c *BrokerCreate) SetBankAccountEncrypted(v string) *BrokerCreate {
	_c.mutation.SetBankAccountEncrypted(v)
	return _c
}

// SetNillableBankAccountEncrypted sets the "bank_account_encrypted" field if the given value is not nil.
func (_c *BrokerCreate) SetNillableBankAccountEncrypted(v *string) *BrokerCreate {
	if v != nil {
		_c.SetBankAccountEncrypted(*v)
	}
	return _c
}

// SetBankAccountHash sets the "bank_account_hash" field.
func (_c *BrokerCreate) SetBankAccountHash(v string) *BrokerCreate {
	_c.mutation.SetBankAccountHash(v)
	return _c
}

// SetNillableBankAccountHash sets the "bank_account_hash" field if the given value is not nil.
func (_c *BrokerCreate) SetNillableBankAccountHash(v *string) *BrokerCreate {
	if v != nil {
		_c.SetBankAccountHash(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *BrokerCreate) SetIsActive(v bool) *BrokerCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *BrokerCreate) SetNillableIsActive(v *bool) *BrokerCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BrokerCreate) SetID(v uuid.UUID) *BrokerCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BrokerCreate) SetNillableID(v *uuid.UUID) *BrokerCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddDealInterestIDs adds the "deal_interests" edge to the DealBroker entity by IDs.
func (_c *BrokerCreate) AddDealInterestIDs(ids ...uuid.UUID) *BrokerCreate {
	_c.mutation.AddDealInterestIDs(ids...)
	return _c
}

// AddDealInterests adds the "deal_interests" edges to the DealBroker entity.
func (_c *BrokerCreate) AddDealInterests(v ...*DealBroker) *BrokerCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDealInterestIDs(ids...)
}

// AddPaymentSplitIDs adds the "payment_splits" edge to the PaymentSplit entity by IDs.
func (_c *BrokerCreate) AddPaymentSplitIDs(ids ...uuid.UUID) *BrokerCreate {
	_c.mutation.AddPaymentSplitIDs(ids...)
	return _c
}

// AddPaymentSplits adds the "payment_splits" edges to the PaymentSplit entity.
func (_c *BrokerCreate) AddPaymentSplits(v ...*PaymentSplit) *BrokerCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPaymentSplitIDs(ids...)
}

// Mutation returns the BrokerMutation object of the builder.
func (_c *BrokerCreate) Mutation() *BrokerMutation {
	return _c.mutation
}

// Save creates the Broker in the database.
func (_c *BrokerCreate) Save(ctx context.Context) (*Broker, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BrokerCreate) SaveX(ctx context.Context) *Broker {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BrokerCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BrokerCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BrokerCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := broker.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := broker.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := broker.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := broker.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BrokerCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Broker.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Broker.updated_at"`)}
	}
	if _, ok := _c.mutation.DisplayName(); !ok {
		return &ValidationError{Name: "display_name", err: errors.New(`repo: missing required field "Broker.display_name"`)}
	}
	if v, ok := _c.mutation.DisplayName(); ok {
		if err := broker.DisplayNameValidator(v); err != nil {
			return &ValidationError{Name: "display_name", err: fmt.Errorf(`repo: validator failed for field "Broker.display_name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Email(); ok {
		if err := broker.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "Broker.email": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Phone(); ok {
		if err := broker.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "Broker.phone": %w`, err)}
		}
	}
	if v, ok := _c.mutation.BankAccountEncrypted(); ok {
		if err := broker.BankAccountEncryptedValidator(v); err != nil {
			return &ValidationError{Name: "bank_account_encrypted", err: fmt.Errorf(`repo: validator failed for field "Broker.bank_account_encrypted": %w`, err)}
		}
	}
	if v, ok := _c.mutation.BankAccountHash(); ok {
		if err := broker.BankAccountHashValidator(v); err != nil {
			return &ValidationError{Name: "bank_account_hash", err: fmt.Errorf(`repo: validator failed for field "Broker.bank_account_hash": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`repo: missing required field "Broker.is_active"`)}
	}
	return nil
}

func (_c *BrokerCreate) sqlSave(ctx context.Context) (*Broker, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BrokerCreate) createSpec() (*Broker, *sqlgraph.CreateSpec) {
	var (
		_node = &Broker{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(broker.Table, sqlgraph.NewFieldSpec(broker.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(broker.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(broker.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(broker.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(broker.FieldUserID, field.TypeUUID, value)
		_node.UserID = &value
	}
	if value, ok := _c.mutation.DisplayName(); ok {
		_spec.SetField(broker.FieldDisplayName, field.TypeString, value)
		_node.DisplayName = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(broker.FieldEmail, field.TypeString, value)
		_node.Email = &value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(broker.FieldPhone, field.TypeString, value)
		_node.Phone = &value
	}
	if value, ok := _c.mutation.BankAccountEncrypted(); ok {
		_spec.SetField(broker.FieldBankAccountEncrypted, field.TypeString, value)
		_node.BankAccountEncrypted = &value
	}
	if value, ok := _c.mutation.BankAccountHash(); ok {
		_spec.SetField(broker.FieldBankAccountHash, field.TypeString, value)
		_node.BankAccountHash = &value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(broker.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if nodes := _c.mutation.DealInterestsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PaymentSplitsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Broker.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BrokerUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *BrokerCreate) OnConflict(opts ...sql.ConflictOption) *BrokerUpsertOne {
	_c.conflict = opts
	return &BrokerUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Broker.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BrokerCreate) OnConflictColumns(columns ...string) *BrokerUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BrokerUpsertOne{
		create: _c,
	}
}

type (
	// BrokerUpsertOne is the builder for "upsert"-ing
	//  one Broker node.
	BrokerUpsertOne struct {
		create *BrokerCreate
	}

	// BrokerUpsert is the "OnConflict" setter.
	BrokerUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *BrokerUpsert) SetUpdatedAt(v time.Time) *BrokerUpsert {
	u.Set(broker.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BrokerUpsert) UpdateUpdatedAt() *BrokerUpsert {
	u.SetExcluded(broker.FieldUpdatedAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *BrokerUpsert) SetDeletedAt(v time.Time) *BrokerUpsert {
	u.Set(broker.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *BrokerUpsert) UpdateDeletedAt() *BrokerUpsert {
	u.SetExcluded(broker.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *BrokerUpsert) ClearDeletedAt() *BrokerUpsert {
	u.SetNull(broker.FieldDeletedAt)
	return u
}

// SetUserID sets the "user_id" field.
func (u *BrokerUpsert) SetUserID(v uuid.UUID) *BrokerUpsert {
	u.Set(broker.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *BrokerUpsert) UpdateUserID() *BrokerUpsert {
	u.SetExcluded(broker.FieldUserID)
	return u
}

// ClearUserID clears the value of the "user_id" field.
func (u *BrokerUpsert) ClearUserID() *BrokerUpsert {
	u.SetNull(broker.FieldUserID)
	return u
}

// SetDisplayName sets the "display_name" field.
func (u *BrokerUpsert) SetDisplayName(v string) *BrokerUpsert {
	u.Set(broker.FieldDisplayName, v)
	return u
}

// UpdateDisplayName sets the "display_name" field to the value that was provided on create.
func (u *BrokerUpsert) UpdateDisplayName() *BrokerUpsert {
	u.SetExcluded(broker.FieldDisplayName)
	return u
}

// SetEmail sets the "email" field.
func (u *BrokerUpsert) SetEmail(v string) *BrokerUpsert {
	u.Set(broker.FieldEmail, v)
	return u
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *BrokerUpsert) UpdateEmail() *BrokerUpsert {
	u.SetExcluded(broker.FieldEmail)
	return u
}

// ClearEmail clears the value of the "email" field.
func (u *BrokerUpsert) ClearEmail() *BrokerUpsert {
	u.SetNull(broker.FieldEmail)
	return u
}

// SetPhone sets the "phone" field.
func (u *BrokerUpsert) SetPhone(v string) *BrokerUpsert {
	u.Set(broker.FieldPhone, v)
	return u
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *BrokerUpsert) UpdatePhone() *BrokerUpsert {
	u.SetExcluded(broker.FieldPhone)
	return u
}

// ClearPhone clears the value of the "phone" field.
func (u *BrokerUpsert) ClearPhone() *BrokerUpsert {
	u.SetNull(broker.FieldPhone)
	return u
}

// SetBankAccountEncrypted sets the "bank_account_encrypted" field.
func (u *BrokerUpsert) SetBankAccountEncrypted(v string) *BrokerUpsert {
	u.Set(broker.FieldBankAccountEncrypted, v)
	return u
}

// UpdateBankAccountEncrypted sets the "bank_account_encrypted" field to the value that was provided on create.
func (u *BrokerUpsert) UpdateBankAccountEncrypted() *BrokerUpsert {
	u.SetExcluded(broker.FieldBankAccountEncrypted)
	return u
}

// ClearBankAccountEncrypted clears the value of the "bank_account_encrypted" field.
func (u *BrokerUpsert) ClearBankAccountEncrypted() *BrokerUpsert {
	u.SetNull(broker.FieldBankAccountEncrypted)
	return u
}

// SetBankAccountHash sets the "bank_account_hash" field.
func (u *BrokerUpsert) SetBankAccountHash(v string) *BrokerUpsert {
	u.Set(broker.FieldBankAccountHash, v)
	return u
}

// UpdateBankAccountHash sets the "bank_account_hash" field to the value that was provided on create.
func (u *BrokerUpsert) UpdateBankAccountHash() *BrokerUpsert {
	u.SetExcluded(broker.FieldBankAccountHash)
	return u
}

// ClearBankAccountHash clears the value of the "bank_account_hash" field.
func (u *BrokerUpsert) ClearBankAccountHash() *BrokerUpsert {
	u.SetNull(broker.FieldBankAccountHash)
	return u
}

// SetIsActive sets the "is_active" field.
func (u *BrokerUpsert) SetIsActive(v bool) *BrokerUpsert {
	u.Set(broker.FieldIsActive, v)
	return u
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *BrokerUpsert) UpdateIsActive() *BrokerUpsert {
	u.SetExcluded(broker.FieldIsActive)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Broker.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(broker.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *BrokerUpsertOne) UpdateNewValues() *BrokerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(broker.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(broker.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Broker.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *BrokerUpsertOne) Ignore() *BrokerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BrokerUpsertOne) DoNothing() *BrokerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BrokerCreate.OnConflict
// documentation for more info.
func (u *BrokerUpsertOne) Update(set func(*BrokerUpsert)) *BrokerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BrokerUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *BrokerUpsertOne) SetUpdatedAt(v time.Time) *BrokerUpsertOne {
	return u.Update(func(s *BrokerUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BrokerUpsertOne) UpdateUpdatedAt() *BrokerUpsertOne {
	return u.Update(func(s *BrokerUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *BrokerUpsertOne) SetDeletedAt(v time.Time) *BrokerUpsertOne {
	return u.Update(func(s *BrokerUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *BrokerUpsertOne) UpdateDeletedAt() *BrokerUpsertOne {
	return u.Update(func(s *BrokerUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *BrokerUpsertOne) ClearDeletedAt() *BrokerUpsertOne {
	return u.Update(func(s *BrokerUpsert) {
		s.ClearDeletedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *BrokerUpsertOne) SetUserID(v uuid.UUID) *BrokerUpsertOne {
	return u.Update(func(s *BrokerUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *BrokerUpsertOne) UpdateUserID() *BrokerUpsertOne {
	return u.Update(func(s *BrokerUpsert) {
		s.UpdateUserID()
	})
}

// ClearUserID clears the value of the "user_id" field.
func (u *BrokerUpsertOne) ClearUserID() *BrokerUpsertOne {
	return u.Update(func(s *BrokerUpsert) {
		s.ClearUserID()
	})
}

// SetDisplayName sets the "display_name" field.
func (u *BrokerUpsertOne) SetDisplayName(v string) *BrokerUpsertOne {
	return u.Update(func(s *BrokerUpsert) {
		s.SetDisplayName(v)
	})
}

// UpdateDisplayName sets the "display_name" field to the value that was provided on create.
func (u *BrokerUpsertOne) UpdateDisplayName() *BrokerUpsertOne {
	return u.Update(func(s *BrokerUpsert) {
		s.UpdateDisplayName()
	})
}

// SetEmail sets the "email" field.
func (u *BrokerUpsertOne) SetEmail(v string) *BrokerUpsertOne {
	return u.Update(func(s *BrokerUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *BrokerUpsertOne) UpdateEmail() *BrokerUpsertOne {
	return u.Update(func(s *BrokerUpsert) {
		s.UpdateEmail()
	})
}

// ClearEmail clears the value of the "email" field.
func (u *BrokerUpsertOne) ClearEmail() *BrokerUpsertOne {
	return u.Update(func(s *BrokerUpsert) {
		s.ClearEmail()
	})
}

// SetPhone sets the "phone" field.
func (u *BrokerUpsertOne) SetPhone(v string) *BrokerUpsertOne {
	return u.Update(func(s *BrokerUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *BrokerUpsertOne) UpdatePhone() *BrokerUpsertOne {
	return u.Update(func(s *BrokerUpsert) {
		s.UpdatePhone()
	})
}

// ClearPhone clears the value of the "phone" field.
func (u *BrokerUpsertOne) ClearPhone() *BrokerUpsertOne {
	return u.Update(func(s *BrokerUpsert) {
		s.ClearPhone()
	})
}

// SetBankAccountEncrypted sets the "bank_account_encrypted" field.
func (u *BrokerUpsertOne) SetBankAccountEncrypted(v string) *BrokerUpsertOne {
	return u.Update(func(s *BrokerUpsert) {
		s.SetBankAccountEncrypted(v)
	})
}

// UpdateBankAccountEncrypted sets the "bank_account_encrypted" field to the value that was provided on create.
func (u *BrokerUpsertOne) UpdateBankAccountEncrypted() *BrokerUpsertOne {
	return u.Update(func(s *BrokerUpsert) {
		s.UpdateBankAccountEncrypted()
	})
}

// ClearBankAccountEncrypted clears the value of the "bank_account_encrypted" field.
func (u *BrokerUpsertOne) ClearBankAccountEncrypted() *BrokerUpsertOne {
	return u.Update(func(s *BrokerUpsert) {
		s.ClearBankAccountEncrypted()
	})
}

// SetBankAccountHash sets the "bank_account_hash" field.
func (u *BrokerUpsertOne) SetBankAccountHash(v string) *BrokerUpsertOne {
	return u.Update(func(s *BrokerUpsert) {
		s.SetBankAccountHash(v)
	})
}

// UpdateBankAccountHash sets the "bank_account_hash" field to the value that was provided on create.
func (u *BrokerUpsertOne) UpdateBankAccountHash() *BrokerUpsertOne {
	return u.Update(func(s *BrokerUpsert) {
		s.UpdateBankAccountHash()
	})
}

// ClearBankAccountHash clears the value of the "bank_account_hash" field.
func (u *BrokerUpsertOne) ClearBankAccountHash() *BrokerUpsertOne {
	return u.Update(func(s *BrokerUpsert) {
		s.ClearBankAccountHash()
	})
}

// SetIsActive sets the "is_active" field.
func (u *BrokerUpsertOne) SetIsActive(v bool) *BrokerUpsertOne {
	return u.Update(func(s *BrokerUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *BrokerUpsertOne) UpdateIsActive() *BrokerUpsertOne {
	return u.Update(func(s *BrokerUpsert) {
		s.UpdateIsActive()
	})
}

// Exec executes the query.
func (u *BrokerUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for BrokerCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BrokerUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *BrokerUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: BrokerUpsertOne.ID is not supported by MySQL driver. Use BrokerUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *BrokerUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// BrokerCreateBulk is the builder for creating many Broker entities in bulk.
type BrokerCreateBulk struct {
	config
	err      error
	builders []*BrokerCreate
	conflict []sql.ConflictOption
}

// Save creates the Broker entities in the database.
func (_c *BrokerCreateBulk) Save(ctx context.Context) ([]*Broker, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Broker, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BrokerMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *BrokerCreateBulk) SaveX(ctx context.Context) []*Broker {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BrokerCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BrokerCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Broker.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BrokerUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *BrokerCreateBulk) OnConflict(opts ...sql.ConflictOption) *BrokerUpsertBulk {
	_c.conflict = opts
	return &BrokerUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Broker.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BrokerCreateBulk) OnConflictColumns(columns ...string) *BrokerUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BrokerUpsertBulk{
		create: _c,
	}
}

// BrokerUpsertBulk is the builder for "upsert"-ing
// a bulk of Broker nodes.
type BrokerUpsertBulk struct {
	create *BrokerCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Broker.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(broker.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *BrokerUpsertBulk) UpdateNewValues() *BrokerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(broker.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(broker.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Broker.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *BrokerUpsertBulk) Ignore() *BrokerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BrokerUpsertBulk) DoNothing() *BrokerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BrokerCreateBulk.OnConflict
// documentation for more info.
func (u *BrokerUpsertBulk) Update(set func(*BrokerUpsert)) *BrokerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BrokerUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *BrokerUpsertBulk) SetUpdatedAt(v time.Time) *BrokerUpsertBulk {
	return u.Update(func(s *BrokerUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BrokerUpsertBulk) UpdateUpdatedAt() *BrokerUpsertBulk {
	return u.Update(func(s *BrokerUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *BrokerUpsertBulk) SetDeletedAt(v time.Time) *BrokerUpsertBulk {
	return u.Update(func(s *BrokerUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *BrokerUpsertBulk) UpdateDeletedAt() *BrokerUpsertBulk {
	return u.Update(func(s *BrokerUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *BrokerUpsertBulk) ClearDeletedAt() *BrokerUpsertBulk {
	return u.Update(func(s *BrokerUpsert) {
		s.ClearDeletedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *BrokerUpsertBulk) SetUserID(v uuid.UUID) *BrokerUpsertBulk {
	return u.Update(func(s *BrokerUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *BrokerUpsertBulk) UpdateUserID() *BrokerUpsertBulk {
	return u.Update(func(s *BrokerUpsert) {
		s.UpdateUserID()
	})
}

// ClearUserID clears the value of the "user_id" field.
func (u *BrokerUpsertBulk) ClearUserID() *BrokerUpsertBulk {
	return u.Update(func(s *BrokerUpsert) {
		s.ClearUserID()
	})
}

// SetDisplayName sets the "display_name" field.
func (u *BrokerUpsertBulk) SetDisplayName(v string) *BrokerUpsertBulk {
	return u.Update(func(s *BrokerUpsert) {
		s.SetDisplayName(v)
	})
}

// UpdateDisplayName sets the "display_name" field to the value that was provided on create.
func (u *BrokerUpsertBulk) UpdateDisplayName() *BrokerUpsertBulk {
	return u.Update(func(s *BrokerUpsert) {
		s.UpdateDisplayName()
	})
}

// SetEmail sets the "email" field.
func (u *BrokerUpsertBulk) SetEmail(v string) *BrokerUpsertBulk {
	return u.Update(func(s *BrokerUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *BrokerUpsertBulk) UpdateEmail() *BrokerUpsertBulk {
	return u.Update(func(s *BrokerUpsert) {
		s.UpdateEmail()
	})
}

// ClearEmail clears the value of the "email" field.
func (u *BrokerUpsertBulk) ClearEmail() *BrokerUpsertBulk {
	return u.Update(func(s *BrokerUpsert) {
		s.ClearEmail()
	})
}

// SetPhone sets the "phone" field.
func (u *BrokerUpsertBulk) SetPhone(v string) *BrokerUpsertBulk {
	return u.Update(func(s *BrokerUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *BrokerUpsertBulk) UpdatePhone() *BrokerUpsertBulk {
	return u.Update(func(s *BrokerUpsert) {
		s.UpdatePhone()
	})
}

// ClearPhone clears the value of the "phone" field.
func (u *BrokerUpsertBulk) ClearPhone() *BrokerUpsertBulk {
	return u.Update(func(s *BrokerUpsert) {
		s.ClearPhone()
	})
}

// SetBankAccountEncrypted sets the "bank_account_encrypted" field.
func (u *BrokerUpsertBulk) SetBankAccountEncrypted(v string) *BrokerUpsertBulk {
	return u.Update(func(s *BrokerUpsert) {
		s.SetBankAccountEncrypted(v)
	})
}

// UpdateBankAccountEncrypted sets the "bank_account_encrypted" field to the value that was provided on create.
func (u *BrokerUpsertBulk) UpdateBankAccountEncrypted() *BrokerUpsertBulk {
	return u.Update(func(s *BrokerUpsert) {
		s.UpdateBankAccountEncrypted()
	})
}

// ClearBankAccountEncrypted clears the value of the "bank_account_encrypted" field.
func (u *BrokerUpsertBulk) ClearBankAccountEncrypted() *BrokerUpsertBulk {
	return u.Update(func(s *BrokerUpsert) {
		s.ClearBankAccountEncrypted()
	})
}

// SetBankAccountHash sets the "bank_account_hash" field.
func (u *BrokerUpsertBulk) SetBankAccountHash(v string) *BrokerUpsertBulk {
	return u.Update(func(s *BrokerUpsert) {
		s.SetBankAccountHash(v)
	})
}

// UpdateBankAccountHash sets the "bank_account_hash" field to the value that was provided on create.
func (u *BrokerUpsertBulk) UpdateBankAccountHash() *BrokerUpsertBulk {
	return u.Update(func(s *BrokerUpsert) {
		s.UpdateBankAccountHash()
	})
}

// ClearBankAccountHash clears the value of the "bank_account_hash" field.
func (u *BrokerUpsertBulk) ClearBankAccountHash() *BrokerUpsertBulk {
	return u.Update(func(s *BrokerUpsert) {
		s.ClearBankAccountHash()
	})
}

// SetIsActive sets the "is_active" field.
func (u *BrokerUpsertBulk) SetIsActive(v bool) *BrokerUpsertBulk {
	return u.Update(func(s *BrokerUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *BrokerUpsertBulk) UpdateIsActive() *BrokerUpsertBulk {
	return u.Update(func(s *BrokerUpsert) {
		s.UpdateIsActive()
	})
}

// Exec executes the query.
func (u *BrokerUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the BrokerCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for BrokerCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BrokerUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
