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
	"github.com/oculusgrp/dealdesk_backend/internal/repo/deal"
	"github.com/oculusgrp/dealdesk_backend/internal/repo/payment"
	"github.com/oculusgrp/dealdesk_backend/internal/repo/paymentsplit"
	"github.com/shopspring/decimal"
)

// PaymentCreate is the builder for creating a Payment entity.
type PaymentCreate struct {
	config
	mutation *PaymentMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *PaymentCreate) SetCreatedAt(v time.Time) *PaymentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PaymentCreate) SetNillableCreatedAt(v *time.Time) *PaymentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PaymentCreate) SetUpdatedAt(v time.Time) *PaymentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PaymentCreate) SetNillableUpdatedAt(v *time.Time) *PaymentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *PaymentCreate) SetDeletedAt(v time.Time) *PaymentCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *PaymentCreate) SetNillableDeletedAt(v *time.Time) *PaymentCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetDealID sets the "deal_id" field.
func (_c *PaymentCreate) SetDealID(v uuid.UUID) *PaymentCreate {
	_c.mutation.SetDealID(v)
	return _c
}

// SetSequence sets the "sequence" field.
func (_c *PaymentCreate) SetSequence(v int) *PaymentCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetPaymentAmount sets the "payment_amount" field.
func (_c *PaymentCreate) SetPaymentAmount(v decimal.Decimal) *PaymentCreate {
	_c.mutation.SetPaymentAmount(v)
	return _c
}

// SetAmountOverride sets the "amount_override" field.
func (_c *PaymentCreate) SetAmountOverride(v bool) *PaymentCreate {
	_c.mutation.SetAmountOverride(v)
	return _c
}

// SetNillableAmountOverride sets the "amount_override" field if the given value is not nil.
func (_c *PaymentCreate) SetNillableAmountOverride(v *bool) *PaymentCreate {
	if v != nil {
		_c.SetAmountOverride(*v)
	}
	return _c
}

// SetAgci sets the "agci" field.
func (_c *PaymentCreate) SetAgci(v decimal.Decimal) *PaymentCreate {
	_c.mutation.SetAgci(v)
	return _c
}

// SetReferralFeeUsd sets the "referral_fee_usd" field.
func (_c *PaymentCreate) SetReferralFeeUsd(v decimal.Decimal) *PaymentCreate {
	_c.mutation.SetReferralFeeUsd(v)
	return _c
}

// SetReferralFeePercentOverride sets the "referral_fee_percent_override" field.
func (_c *PaymentCreate) SetReferralFeePercentOverride(v decimal.Decimal) *PaymentCreate {
	_c.mutation.SetReferralFeePercentOverride(v)
	return _c
}

// SetNillableReferralFeePercentOverride sets the "referral_fee_percent_override" field if the given value is not nil.
func (_c *PaymentCreate) SetNillableReferralFeePercentOverride(v *decimal.Decimal) *PaymentCreate {
	if v != nil {
		_c.SetReferralFeePercentOverride(*v)
	}
	return _c
}

// SetPaymentDate sets the "payment_date" field.
func (_c *PaymentCreate) SetPaymentDate(v time.Time) *PaymentCreate {
	_c.mutation.SetPaymentDate(v)
	return _c
}

// SetNillablePaymentDate sets the "payment_date" field if the given value is not nil.
func (_c *PaymentCreate) SetNillablePaymentDate(v *time.Time) *PaymentCreate {
	if v != nil {
		_c.SetPaymentDate(*v)
	}
	return _c
}

// SetPaymentReceived sets the "payment_received" field.
func (_c *PaymentCreate) SetPaymentReceived(v bool) *PaymentCreate {
	_c.mutation.SetPaymentReceived(v)
	return _c
}

// SetNillablePaymentReceived sets the "payment_received" field if the given value is not nil.
func (_c *PaymentCreate) SetNillablePaymentReceived(v *bool) *PaymentCreate {
	if v != nil {
		_c.SetPaymentReceived(*v)
	}
	return _c
}

// SetReceivedDate sets the "received_date" field.
func (_c *PaymentCreate) SetReceivedDate(v time.Time) *PaymentCreate {
	_c.mutation.SetReceivedDate(v)
	return _c
}

// SetNillableReceivedDate sets the "received_date" field if the given value is not nil.
func (_c *PaymentCreate) SetNillableReceivedDate(v *time.Time) *PaymentCreate {
	if v != nil {
		_c.SetReceivedDate(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *PaymentCreate) SetIsActive(v bool) *PaymentCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *PaymentCreate) SetNillableIsActive(v *bool) *PaymentCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetCommissionVersion sets the "commission_version" field.
func (_c *PaymentCreate) SetCommissionVersion(v int) *PaymentCreate {
	_c.mutation.SetCommissionVersion(v)
	return _c
}

// SetNillableCommissionVersion sets the "commission_version" field if the given value is not nil.
func (_c *PaymentCreate) SetNillableCommissionVersion(v *int) *PaymentCreate {
	if v != nil {
		_c.SetCommissionVersion(*v)
	}
	return _c
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_c *PaymentCreate) SetInvoiceNumber(v string) *PaymentCreate {
	_c.mutation.SetInvoiceNumber(v)
	return _c
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (_c *PaymentCreate) SetNillableInvoiceNumber(v *string) *PaymentCreate {
	if v != nil {
		_c.SetInvoiceNumber(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PaymentCreate) SetID(v uuid.UUID) *PaymentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PaymentCreate) SetNillableID(v *uuid.UUID) *PaymentCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetDeal sets the "deal" edge to the Deal entity.
func (_c *PaymentCreate) SetDeal(v *Deal) *PaymentCreate {
	return _c.SetDealID(v.ID)
}

// AddSplitIDs adds the "splits" edge to the PaymentSplit entity by IDs.
func (_c *PaymentCreate) AddSplitIDs(ids ...uuid.UUID) *PaymentCreate {
	_c.mutation.AddSplitIDs(ids...)
	return _c
}

// AddSplits adds the "splits" edges to the PaymentSplit entity.
func (_c *PaymentCreate) AddSplits(v ...*PaymentSplit) *PaymentCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSplitIDs(ids...)
}

// Mutation returns the PaymentMutation object of the builder.
func (_c *PaymentCreate) Mutation() *PaymentMutation {
	return _c.mutation
}

// Save creates the Payment in the database.
func (_c *PaymentCreate) Save(ctx context.Context) (*Payment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PaymentCreate) SaveX(ctx context.Context) *Payment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PaymentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PaymentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PaymentCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := payment.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := payment.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.AmountOverride(); !ok {
		v := payment.DefaultAmountOverride
		_c.mutation.SetAmountOverride(v)
	}
	if _, ok := _c.mutation.PaymentReceived(); !ok {
		v := payment.DefaultPaymentReceived
		_c.mutation.SetPaymentReceived(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := payment.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.CommissionVersion(); !ok {
		v := payment.DefaultCommissionVersion
		_c.mutation.SetCommissionVersion(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := payment.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PaymentCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Payment.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Payment.updated_at"`)}
	}
	if _, ok := _c.mutation.DealID(); !ok {
		return &ValidationError{Name: "deal_id", err: errors.New(`repo: missing required field "Payment.deal_id"`)}
	}
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`repo: missing required field "Payment.sequence"`)}
	}
	if v, ok := _c.mutation.Sequence(); ok {
		if err := payment.SequenceValidator(v); err != nil {
			return &ValidationError{Name: "sequence", err: fmt.Errorf(`repo: validator failed for field "Payment.sequence": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PaymentAmount(); !ok {
		return &ValidationError{Name: "payment_amount", err: errors.New(`repo: missing required field "Payment.payment_amount"`)}
	}
	if _, ok := _c.mutation.AmountOverride(); !ok {
		return &ValidationError{Name: "amount_override", err: errors.New(`repo: missing required field "Payment.amount_override"`)}
	}
	if _, ok := _c.mutation.Agci(); !ok {
		return &ValidationError{Name: "agci", err: errors.New(`repo: missing required field "Payment.agci"`)}
	}
	if _, ok := _c.mutation.ReferralFeeUsd(); !ok {
		return &ValidationError{Name: "referral_fee_usd", err: errors.New(`repo: missing required field "Payment.referral_fee_usd"`)}
	}
	if _, ok := _c.mutation.PaymentReceived(); !ok {
		return &ValidationError{Name: "payment_received", err: errors.New(`repo: missing required field "Payment.payment_received"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`repo: missing required field "Payment.is_active"`)}
	}
	if _, ok := _c.mutation.CommissionVersion(); !ok {
		return &ValidationError{Name: "commission_version", err: errors.New(`repo: missing required field "Payment.commission_version"`)}
	}
	if v, ok := _c.mutation.InvoiceNumber(); ok {
		if err := payment.InvoiceNumberValidator(v); err != nil {
			return &ValidationError{Name: "invoice_number", err: fmt.Errorf(`repo: validator failed for field "Payment.invoice_number": %w`, err)}
		}
	}
	if len(_c.mutation.DealIDs()) == 0 {
		return &ValidationError{Name: "deal", err: errors.New(`repo: missing required edge "Payment.deal"`)}
	}
	return nil
}

func (_c *PaymentCreate) sqlSave(ctx context.Context) (*Payment, error) {
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

func (_c *PaymentCreate) createSpec() (*Payment, *sqlgraph.CreateSpec) {
	var (
		_node = &Payment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(payment.Table, sqlgraph.NewFieldSpec(payment.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(payment.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(payment.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(payment.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(payment.FieldSequence, field.TypeInt, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.PaymentAmount(); ok {
		_spec.SetField(payment.FieldPaymentAmount, field.TypeFloat64, value)
		_node.PaymentAmount = value
	}
	if value, ok := _c.mutation.AmountOverride(); ok {
		_spec.SetField(payment.FieldAmountOverride, field.TypeBool, value)
		_node.AmountOverride = value
	}
	if value, ok := _c.mutation.Agci(); ok {
		_spec.SetField(payment.FieldAgci, field.TypeFloat64, value)
		_node.Agci = value
	}
	if value, ok := _c.mutation.ReferralFeeUsd(); ok {
		_spec.SetField(payment.FieldReferralFeeUsd, field.TypeFloat64, value)
		_node.ReferralFeeUsd = value
	}
	if value, ok := _c.mutation.ReferralFeePercentOverride(); ok {
		_spec.SetField(payment.FieldReferralFeePercentOverride, field.TypeFloat64, value)
		_node.ReferralFeePercentOverride = &value
	}
	if value, ok := _c.mutation.PaymentDate(); ok {
		_spec.SetField(payment.FieldPaymentDate, field.TypeTime, value)
		_node.PaymentDate = &value
	}
	if value, ok := _c.mutation.PaymentReceived(); ok {
		_spec.SetField(payment.FieldPaymentReceived, field.TypeBool, value)
		_node.PaymentReceived = value
	}
	if value, ok := _c.mutation.ReceivedDate(); ok {
		_spec.SetField(payment.FieldReceivedDate, field.TypeTime, value)
		_node.ReceivedDate = &value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(payment.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.CommissionVersion(); ok {
		_spec.SetField(payment.FieldCommissionVersion, field.TypeInt, value)
		_node.CommissionVersion = value
	}
	if value, ok := _c.mutation.InvoiceNumber(); ok {
		_spec.SetField(payment.FieldInvoiceNumber, field.TypeString, value)
		_node.InvoiceNumber = &value
	}
	if nodes := _c.mutation.DealIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   payment.DealTable,
			Columns: []string{payment.DealColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(deal.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.DealID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SplitsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   payment.SplitsTable,
			Columns: []string{payment.SplitsColumn},
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
//	client.Payment.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PaymentUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PaymentCreate) OnConflict(opts ...sql.ConflictOption) *PaymentUpsertOne {
	_c.conflict = opts
	return &PaymentUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Payment.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PaymentCreate) OnConflictColumns(columns ...string) *PaymentUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PaymentUpsertOne{
		create: _c,
	}
}

type (
	// PaymentUpsertOne is the builder for "upsert"-ing
	//  one Payment node.
	PaymentUpsertOne struct {
		create *PaymentCreate
	}

	// PaymentUpsert is the "OnConflict" setter.
	PaymentUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *PaymentUpsert) SetUpdatedAt(v time.Time) *PaymentUpsert {
	u.Set(payment.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PaymentUpsert) UpdateUpdatedAt() *PaymentUpsert {
	u.SetExcluded(payment.FieldUpdatedAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *PaymentUpsert) SetDeletedAt(v time.Time) *PaymentUpsert {
	u.Set(payment.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *PaymentUpsert) UpdateDeletedAt() *PaymentUpsert {
	u.SetExcluded(payment.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *PaymentUpsert) ClearDeletedAt() *PaymentUpsert {
	u.SetNull(payment.FieldDeletedAt)
	return u
}

// SetDealID sets the "deal_id" field.
func (u *PaymentUpsert) SetDealID(v uuid.UUID) *PaymentUpsert {
	u.Set(payment.FieldDealID, v)
	return u
}

// UpdateDealID sets the "deal_id" field to the value that was provided on create.
func (u *PaymentUpsert) UpdateDealID() *PaymentUpsert {
	u.SetExcluded(payment.FieldDealID)
	return u
}

// SetSequence sets the "sequence" field.
func (u *PaymentUpsert) SetSequence(v int) *PaymentUpsert {
	u.Set(payment.FieldSequence, v)
	return u
}

// UpdateSequence sets the "sequence" field to the value that was provided on create.
func (u *PaymentUpsert) UpdateSequence() *PaymentUpsert {
	u.SetExcluded(payment.FieldSequence)
	return u
}

// AddSequence adds v to the "sequence" field.
func (u *PaymentUpsert) AddSequence(v int) *PaymentUpsert {
	u.Add(payment.FieldSequence, v)
	return u
}

// SetPaymentAmount sets the "payment_amount" field.
func (u *PaymentUpsert) SetPaymentAmount(v decimal.Decimal) *PaymentUpsert {
	u.Set(payment.FieldPaymentAmount, v)
	return u
}

// UpdatePaymentAmount sets the "payment_amount" field to the value that was provided on create.
func (u *PaymentUpsert) UpdatePaymentAmount() *PaymentUpsert {
	u.SetExcluded(payment.FieldPaymentAmount)
	return u
}

// AddPaymentAmount adds v to the "payment_amount" field.
func (u *PaymentUpsert) AddPaymentAmount(v decimal.Decimal) *PaymentUpsert {
	u.Add(payment.FieldPaymentAmount, v)
	return u
}

// SetAmountOverride sets the "amount_override" field.
func (u *PaymentUpsert) SetAmountOverride(v bool) *PaymentUpsert {
	u.Set(payment.FieldAmountOverride, v)
	return u
}

// UpdateAmountOverride sets the "amount_override" field to the value that was provided on create.
func (u *PaymentUpsert) UpdateAmountOverride() *PaymentUpsert {
	u.SetExcluded(payment.FieldAmountOverride)
	return u
}

// SetAgci sets the "agci" field.
func (u *PaymentUpsert) SetAgci(v decimal.Decimal) *PaymentUpsert {
	u.Set(payment.FieldAgci, v)
	return u
}

// UpdateAgci sets the "agci" field to the value that was provided on create.
func (u *PaymentUpsert) UpdateAgci() *PaymentUpsert {
	u.SetExcluded(payment.FieldAgci)
	return u
}

// AddAgci adds v to the "agci" field.
func (u *PaymentUpsert) AddAgci(v decimal.Decimal) *PaymentUpsert {
	u.Add(payment.FieldAgci, v)
	return u
}

// SetReferralFeeUsd sets the "referral_fee_usd" field.
func (u *PaymentUpsert) SetReferralFeeUsd(v decimal.Decimal) *PaymentUpsert {
	u.Set(payment.FieldReferralFeeUsd, v)
	return u
}

// UpdateReferralFeeUsd sets the "referral_fee_usd" field to the value that was provided on create.
func (u *PaymentUpsert) UpdateReferralFeeUsd() *PaymentUpsert {
	u.SetExcluded(payment.FieldReferralFeeUsd)
	return u
}

// AddReferralFeeUsd adds v to the "referral_fee_usd" field.
func (u *PaymentUpsert) AddReferralFeeUsd(v decimal.Decimal) *PaymentUpsert {
	u.Add(payment.FieldReferralFeeUsd, v)
	return u
}

// SetReferralFeePercentOverride sets the "referral_fee_percent_override" field.
func (u *PaymentUpsert) SetReferralFeePercentOverride(v decimal.Decimal) *PaymentUpsert {
	u.Set(payment.FieldReferralFeePercentOverride, v)
	return u
}

// UpdateReferralFeePercentOverride sets the "referral_fee_percent_override" field to the value that was provided on create.
func (u *PaymentUpsert) UpdateReferralFeePercentOverride() *PaymentUpsert {
	u.SetExcluded(payment.FieldReferralFeePercentOverride)
	return u
}

// AddReferralFeePercentOverride adds v to the "referral_fee_percent_override" field.
func (u *PaymentUpsert) AddReferralFeePercentOverride(v decimal.Decimal) *PaymentUpsert {
	u.Add(payment.FieldReferralFeePercentOverride, v)
	return u
}

// ClearReferralFeePercentOverride clears the value of the "referral_fee_percent_override" field.
func (u *PaymentUpsert) ClearReferralFeePercentOverride() *PaymentUpsert {
	u.SetNull(payment.FieldReferralFeePercentOverride)
	return u
}

// SetPaymentDate sets the "payment_date" field.
func (u *PaymentUpsert) SetPaymentDate(v time.Time) *PaymentUpsert {
	u.Set(payment.FieldPaymentDate, v)
	return u
}

// UpdatePaymentDate sets the "payment_date" field to the value that was provided on create.
func (u *PaymentUpsert) UpdatePaymentDate() *PaymentUpsert {
	u.SetExcluded(payment.FieldPaymentDate)
	return u
}

// ClearPaymentDate clears the value of the "payment_date" field.
func (u *PaymentUpsert) ClearPaymentDate() *PaymentUpsert {
	u.SetNull(payment.FieldPaymentDate)
	return u
}

// SetPaymentReceived sets the "payment_received" field.
func (u *PaymentUpsert) SetPaymentReceived(v bool) *PaymentUpsert {
	u.Set(payment.FieldPaymentReceived, v)
	return u
}

// UpdatePaymentReceived sets the "payment_received" field to the value that was provided on create.
func (u *PaymentUpsert) UpdatePaymentReceived() *PaymentUpsert {
	u.SetExcluded(payment.FieldPaymentReceived)
	return u
}

// SetReceivedDate sets the "received_date" field.
func (u *PaymentUpsert) SetReceivedDate(v time.Time) *PaymentUpsert {
	u.Set(payment.FieldReceivedDate, v)
	return u
}

// UpdateReceivedDate sets the "received_date" field to the value that was provided on create.
func (u *PaymentUpsert) UpdateReceivedDate() *PaymentUpsert {
	u.SetExcluded(payment.FieldReceivedDate)
	return u
}

// ClearReceivedDate clears the value of the "received_date" field.
func (u *PaymentUpsert) ClearReceivedDate() *PaymentUpsert {
	u.SetNull(payment.FieldReceivedDate)
	return u
}

// SetIsActive sets the "is_active" field.
func (u *PaymentUpsert) SetIsActive(v bool) *PaymentUpsert {
	u.Set(payment.FieldIsActive, v)
	return u
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *PaymentUpsert) UpdateIsActive() *PaymentUpsert {
	u.SetExcluded(payment.FieldIsActive)
	return u
}

// SetCommissionVersion sets the "commission_version" field.
func (u *PaymentUpsert) SetCommissionVersion(v int) *PaymentUpsert {
	u.Set(payment.FieldCommissionVersion, v)
	return u
}

// UpdateCommissionVersion sets the "commission_version" field to the value that was provided on create.
func (u *PaymentUpsert) UpdateCommissionVersion() *PaymentUpsert {
	u.SetExcluded(payment.FieldCommissionVersion)
	return u
}

// AddCommissionVersion adds v to the "commission_version" field.
func (u *PaymentUpsert) AddCommissionVersion(v int) *PaymentUpsert {
	u.Add(payment.FieldCommissionVersion, v)
	return u
}

// SetInvoiceNumber sets the "invoice_number" field.
func (u *PaymentUpsert) SetInvoiceNumber(v string) *PaymentUpsert {
	u.Set(payment.FieldInvoiceNumber, v)
	return u
}

// UpdateInvoiceNumber sets the "invoice_number" field to the value that was provided on create.
func (u *PaymentUpsert) UpdateInvoiceNumber() *PaymentUpsert {
	u.SetExcluded(payment.FieldInvoiceNumber)
	return u
}

// ClearInvoiceNumber clears the value of the "invoice_number" field.
func (u *PaymentUpsert) ClearInvoiceNumber() *PaymentUpsert {
	u.SetNull(payment.FieldInvoiceNumber)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Payment.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(payment.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PaymentUpsertOne) UpdateNewValues() *PaymentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(payment.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(payment.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Payment.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PaymentUpsertOne) Ignore() *PaymentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PaymentUpsertOne) DoNothing() *PaymentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PaymentCreate.OnConflict
// documentation for more info.
func (u *PaymentUpsertOne) Update(set func(*PaymentUpsert)) *PaymentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PaymentUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PaymentUpsertOne) SetUpdatedAt(v time.Time) *PaymentUpsertOne {
	return u.Update(func(s *PaymentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PaymentUpsertOne) UpdateUpdatedAt() *PaymentUpsertOne {
	return u.Update(func(s *PaymentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *PaymentUpsertOne) SetDeletedAt(v time.Time) *PaymentUpsertOne {
	return u.Update(func(s *PaymentUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *PaymentUpsertOne) UpdateDeletedAt() *PaymentUpsertOne {
	return u.Update(func(s *PaymentUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *PaymentUpsertOne) ClearDeletedAt() *PaymentUpsertOne {
	return u.Update(func(s *PaymentUpsert) {
		s.ClearDeletedAt()
	})
}

// SetDealID sets the "deal_id" field.
func (u *PaymentUpsertOne) SetDealID(v uuid.UUID) *PaymentUpsertOne {
	return u.Update(func(s *PaymentUpsert) {
		s.SetDealID(v)
	})
}

// UpdateDealID sets the "deal_id" field to the value that was provided on create.
func (u *PaymentUpsertOne) UpdateDealID() *PaymentUpsertOne {
	return u.Update(func(s *PaymentUpsert) {
		s.UpdateDealID()
	})
}

// SetSequence sets the "sequence" field.
func (u *PaymentUpsertOne) SetSequence(v int) *PaymentUpsertOne {
	return u.Update(func(s *PaymentUpsert) {
		s.SetSequence(v)
	})
}

// AddSequence adds v to the "sequence" field.
func (u *PaymentUpsertOne) AddSequence(v int) *PaymentUpsertOne {
	return u.Update(func(s *PaymentUpsert) {
		s.AddSequence(v)
	})
}

// UpdateSequence sets the "sequence" field to the value that was provided on create.
func (u *PaymentUpsertOne) UpdateSequence() *PaymentUpsertOne {
	return u.Update(func(s *PaymentUpsert) {
		s.UpdateSequence()
	})
}

// SetPaymentAmount sets the "payment_amount" field.
func (u *PaymentUpsertOne) SetPaymentAmount(v decimal.Decimal) *PaymentUpsertOne {
	return u.Update(func(s *PaymentUpsert) {
		s.SetPaymentAmount(v)
	})
}

// AddPaymentAmount adds v to the "payment_amount" field.
func (u *PaymentUpsertOne) AddPaymentAmount(v decimal.Decimal) *PaymentUpsertOne {
	return u.Update(func(s *PaymentUpsert) {
		s.AddPaymentAmount(v)
	})
}

// UpdatePaymentAmount sets the "payment_amount" field to the value that was provided on create.
func (u *PaymentUpsertOne) UpdatePaymentAmount() *PaymentUpsertOne {
	return u.Update(func(s *PaymentUpsert) {
		s.UpdatePaymentAmount()
	})
}

// SetAmountOverride sets the "amount_override" field.
func (u *PaymentUpsertOne) SetAmountOverride(v bool) *PaymentUpsertOne {
	return u.Update(func(s *PaymentUpsert) {
		s.SetAmountOverride(v)
	})
}

// UpdateAmountOverride sets the "amount_override" field to the value that was provided on create.
func (u *PaymentUpsertOne) UpdateAmountOverride() *PaymentUpsertOne {
	return u.Update(func(s *PaymentUpsert) {
		s.UpdateAmountOverride()
	})
}

// SetAgci sets the "agci" field.
func (u *PaymentUpsertOne) SetAgci(v decimal.Decimal) *PaymentUpsertOne {
	return u.Update(func(s *PaymentUpsert) {
		s.SetAgci(v)
	})
}

// AddAgci adds v to the "agci" field.
func (u *PaymentUpsertOne) AddAgci(v decimal.Decimal) *PaymentUpsertOne {
	return u.Update(func(s *PaymentUpsert) {
		s.AddAgci(v)
	})
}

// UpdateAgci sets the "agci" field to the value that was provided on create.
func (u *PaymentUpsertOne) UpdateAgci() *PaymentUpsertOne {
	return u.Update(func(s *PaymentUpsert) {
		s.UpdateAgci()
	})
}

// SetReferralFeeUsd sets the "referral_fee_usd" field.
func (u *PaymentUpsertOne) SetReferralFeeUsd(v decimal.Decimal) *PaymentUpsertOne {
	return u.Update(func(s *PaymentUpsert) {
		s.SetReferralFeeUsd(v)
	})
}

// AddReferralFeeUsd adds v to the "referral_fee_usd" field.
func (u *PaymentUpsertOne) AddReferralFeeUsd(v decimal.Decimal) *PaymentUpsertOne {
	return u.Update(func(s *PaymentUpsert) {
		s.AddReferralFeeUsd(v)
	})
}

// UpdateReferralFeeUsd sets the "referral_fee_usd" field to the value that was provided on create.
func (u *PaymentUpsertOne) UpdateReferralFeeUsd() *PaymentUpsertOne {
	return u.Update(func(s *PaymentUpsert) {
		s.UpdateReferralFeeUsd()
	})
}

// SetReferralFeePercentOverride sets the "referral_fee_percent_override" field.
func (u *PaymentUpsertOne) SetReferralFeePercentOverride(v decimal.Decimal) *PaymentUpsertOne {
	return u.Update(func(s *PaymentUpsert) {
		s.SetReferralFeePercentOverride(v)
	})
}

// AddReferralFeePercentOverride adds v to the "referral_fee_percent_override" field.
func (u *PaymentUpsertOne) AddReferralFeePercentOverride(v decimal.Decimal) *PaymentUpsertOne {
	return u.Update(func(s *PaymentUpsert) {
		s.AddReferralFeePercentOverride(v)
	})
}

// UpdateReferralFeePercentOverride sets the "referral_fee_percent_override" field to the value that was provided on create.
func (u *PaymentUpsertOne) UpdateReferralFeePercentOverride() *PaymentUpsertOne {
	return u.Update(func(s *PaymentUpsert) {
		s.UpdateReferralFeePercentOverride()
	})
}

// ClearReferralFeePercentOverride clears the value of the "referral_fee_percent_override" field.
func (u *PaymentUpsertOne) ClearReferralFeePercentOverride() *PaymentUpsertOne {
	return u.Update(func(s *PaymentUpsert) {
		s.ClearReferralFeePercentOverride()
	})
}

// SetPaymentDate sets the "payment_date" field.
func (u *PaymentUpsertOne) SetPaymentDate(v time.Time) *PaymentUpsertOne {
	return u.Update(func(s *PaymentUpsert) {
		s.SetPaymentDate(v)
	})
}

// UpdatePaymentDate sets the "payment_date" field to the value that was provided on create.
func (u *PaymentUpsertOne) UpdatePaymentDate() *PaymentUpsertOne {
	return u.Update(func(s *PaymentUpsert) {
		s.UpdatePaymentDate()
	})
}

// ClearPaymentDate clears the value of the "payment_date" field.
func (u *PaymentUpsertOne) ClearPaymentDate() *PaymentUpsertOne {
	return u.Update(func(s *PaymentUpsert) {
		s.ClearPaymentDate()
	})
}

// SetPaymentReceived sets the "payment_received" field.
func (u *PaymentUpsertOne) SetPaymentReceived(v bool) *PaymentUpsertOne {
	return u.Update(func(s *PaymentUpsert) {
		s.SetPaymentReceived(v)
	})
}

// UpdatePaymentReceived sets the "payment_received" field to the value that was provided on create.
func (u *PaymentUpsertOne) UpdatePaymentReceived() *PaymentUpsertOne {
	return u.Update(func(s *PaymentUpsert) {
		s.UpdatePaymentReceived()
	})
}

// SetReceivedDate sets the "received_date" field.
func (u *PaymentUpsertOne) SetReceivedDate(v time.Time) *PaymentUpsertOne {
	return u.Update(func(s *PaymentUpsert) {
		s.SetReceivedDate(v)
	})
}

// UpdateReceivedDate sets the "received_date" field to the value that was provided on create.
func (u *PaymentUpsertOne) UpdateReceivedDate() *PaymentUpsertOne {
	return u.Update(func(s *PaymentUpsert) {
		s.UpdateReceivedDate()
	})
}

// ClearReceivedDate clears the value of the "received_date" field.
func (u *PaymentUpsertOne) ClearReceivedDate() *PaymentUpsertOne {
	return u.Update(func(s *PaymentUpsert) {
		s.ClearReceivedDate()
	})
}

// SetIsActive sets the "is_active" field.
func (u *PaymentUpsertOne) SetIsActive(v bool) *PaymentUpsertOne {
	return u.Update(func(s *PaymentUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *PaymentUpsertOne) UpdateIsActive() *PaymentUpsertOne {
	return u.Update(func(s *PaymentUpsert) {
		s.UpdateIsActive()
	})
}

// SetCommissionVersion sets the "commission_version" field.
func (u *PaymentUpsertOne) SetCommissionVersion(v int) *PaymentUpsertOne {
	return u.Update(func(s *PaymentUpsert) {
		s.SetCommissionVersion(v)
	})
}

// AddCommissionVersion adds v to the "commission_version" field.
func (u *PaymentUpsertOne) AddCommissionVersion(v int) *PaymentUpsertOne {
	return u.Update(func(s *PaymentUpsert) {
		s.AddCommissionVersion(v)
	})
}

// UpdateCommissionVersion sets the "commission_version" field to the value that was provided on create.
func (u *PaymentUpsertOne) UpdateCommissionVersion() *PaymentUpsertOne {
	return u.Update(func(s *PaymentUpsert) {
		s.UpdateCommissionVersion()
	})
}

// SetInvoiceNumber sets the "invoice_number" field.
func (u *PaymentUpsertOne) SetInvoiceNumber(v string) *PaymentUpsertOne {
	return u.Update(func(s *PaymentUpsert) {
		s.SetInvoiceNumber(v)
	})
}

// UpdateInvoiceNumber sets the "invoice_number" field to the value that was provided on create.
func (u *PaymentUpsertOne) UpdateInvoiceNumber() *PaymentUpsertOne {
	return u.Update(func(s *PaymentUpsert) {
		s.UpdateInvoiceNumber()
	})
}

// ClearInvoiceNumber clears the value of the "invoice_number" field.
func (u *PaymentUpsertOne) ClearInvoiceNumber() *PaymentUpsertOne {
	return u.Update(func(s *PaymentUpsert) {
		s.ClearInvoiceNumber()
	})
}

// Exec executes the query.
func (u *PaymentUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PaymentCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PaymentUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PaymentUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: PaymentUpsertOne.ID is not supported by MySQL driver. Use PaymentUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PaymentUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PaymentCreateBulk is the builder for creating many Payment entities in bulk.
type PaymentCreateBulk struct {
	config
	err      error
	builders []*PaymentCreate
	conflict []sql.ConflictOption
}

// Save creates the Payment entities in the database.
func (_c *PaymentCreateBulk) Save(ctx context.Context) ([]*Payment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Payment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PaymentMutation)
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
func (_c *PaymentCreateBulk) SaveX(ctx context.Context) []*Payment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PaymentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PaymentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Payment.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PaymentUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PaymentCreateBulk) OnConflict(opts ...sql.ConflictOption) *PaymentUpsertBulk {
	_c.conflict = opts
	return &PaymentUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Payment.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PaymentCreateBulk) OnConflictColumns(columns ...string) *PaymentUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PaymentUpsertBulk{
		create: _c,
	}
}

// PaymentUpsertBulk is the builder for "upsert"-ing
// a bulk of Payment nodes.
type PaymentUpsertBulk struct {
	create *PaymentCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Payment.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(payment.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PaymentUpsertBulk) UpdateNewValues() *PaymentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(payment.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(payment.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Payment.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PaymentUpsertBulk) Ignore() *PaymentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PaymentUpsertBulk) DoNothing() *PaymentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PaymentCreateBulk.OnConflict
// documentation for more info.
func (u *PaymentUpsertBulk) Update(set func(*PaymentUpsert)) *PaymentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PaymentUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PaymentUpsertBulk) SetUpdatedAt(v time.Time) *PaymentUpsertBulk {
	return u.Update(func(s *PaymentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PaymentUpsertBulk) UpdateUpdatedAt() *PaymentUpsertBulk {
	return u.Update(func(s *PaymentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *PaymentUpsertBulk) SetDeletedAt(v time.Time) *PaymentUpsertBulk {
	return u.Update(func(s *PaymentUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *PaymentUpsertBulk) UpdateDeletedAt() *PaymentUpsertBulk {
	return u.Update(func(s *PaymentUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *PaymentUpsertBulk) ClearDeletedAt() *PaymentUpsertBulk {
	return u.Update(func(s *PaymentUpsert) {
		s.ClearDeletedAt()
	})
}

// SetDealID sets the "deal_id" field.
func (u *PaymentUpsertBulk) SetDealID(v uuid.UUID) *PaymentUpsertBulk {
	return u.Update(func(s *PaymentUpsert) {
		s.SetDealID(v)
	})
}

// UpdateDealID sets the "deal_id" field to the value that was provided on create.
func (u *PaymentUpsertBulk) UpdateDealID() *PaymentUpsertBulk {
	return u.Update(func(s *PaymentUpsert) {
		s.UpdateDealID()
	})
}

// SetSequence sets the "sequence" field.
func (u *PaymentUpsertBulk) SetSequence(v int) *PaymentUpsertBulk {
	return u.Update(func(s *PaymentUpsert) {
		s.SetSequence(v)
	})
}

// AddSequence adds v to the "sequence" field.
func (u *PaymentUpsertBulk) AddSequence(v int) *PaymentUpsertBulk {
	return u.Update(func(s *PaymentUpsert) {
		s.AddSequence(v)
	})
}

// UpdateSequence sets the "sequence" field to the value that was provided on create.
func (u *PaymentUpsertBulk) UpdateSequence() *PaymentUpsertBulk {
	return u.Update(func(s *PaymentUpsert) {
		s.UpdateSequence()
	})
}

// SetPaymentAmount sets the "payment_amount" field.
func (u *PaymentUpsertBulk) SetPaymentAmount(v decimal.Decimal) *PaymentUpsertBulk {
	return u.Update(func(s *PaymentUpsert) {
		s.SetPaymentAmount(v)
	})
}

// AddPaymentAmount adds v to the "payment_amount" field.
func (u *PaymentUpsertBulk) AddPaymentAmount(v decimal.Decimal) *PaymentUpsertBulk {
	return u.Update(func(s *PaymentUpsert) {
		s.AddPaymentAmount(v)
	})
}

// UpdatePaymentAmount sets the "payment_amount" field to the value that was provided on create.
func (u *PaymentUpsertBulk) UpdatePaymentAmount() *PaymentUpsertBulk {
	return u.Update(func(s *PaymentUpsert) {
		s.UpdatePaymentAmount()
	})
}

// SetAmountOverride sets the "amount_override" field.
func (u *PaymentUpsertBulk) SetAmountOverride(v bool) *PaymentUpsertBulk {
	return u.Update(func(s *PaymentUpsert) {
		s.SetAmountOverride(v)
	})
}

// UpdateAmountOverride sets the "amount_override" field to the value that was provided on create.
func (u *PaymentUpsertBulk) UpdateAmountOverride() *PaymentUpsertBulk {
	return u.Update(func(s *PaymentUpsert) {
		s.UpdateAmountOverride()
	})
}

// SetAgci sets the "agci" field.
func (u *PaymentUpsertBulk) SetAgci(v decimal.Decimal) *PaymentUpsertBulk {
	return u.Update(func(s *PaymentUpsert) {
		s.SetAgci(v)
	})
}

// AddAgci adds v to the "agci" field.
func (u *PaymentUpsertBulk) AddAgci(v decimal.Decimal) *PaymentUpsertBulk {
	return u.Update(func(s *PaymentUpsert) {
		s.AddAgci(v)
	})
}

// UpdateAgci sets the "agci" field to the value that was provided on create.
func (u *PaymentUpsertBulk) UpdateAgci() *PaymentUpsertBulk {
	return u.Update(func(s *PaymentUpsert) {
		s.UpdateAgci()
	})
}

// SetReferralFeeUsd sets the "referral_fee_usd" field.
func (u *PaymentUpsertBulk) SetReferralFeeUsd(v decimal.Decimal) *PaymentUpsertBulk {
	return u.Update(func(s *PaymentUpsert) {
		s.SetReferralFeeUsd(v)
	})
}

// AddReferralFeeUsd adds v to the "referral_fee_usd" field.
func (u *PaymentUpsertBulk) AddReferralFeeUsd(v decimal.Decimal) *PaymentUpsertBulk {
	return u.Update(func(s *PaymentUpsert) {
		s.AddReferralFeeUsd(v)
	})
}

// UpdateReferralFeeUsd sets the "referral_fee_usd" field to the value that was provided on create.
func (u *PaymentUpsertBulk) UpdateReferralFeeUsd() *PaymentUpsertBulk {
	return u.Update(func(s *PaymentUpsert) {
		s.UpdateReferralFeeUsd()
	})
}

// SetReferralFeePercentOverride sets the "referral_fee_percent_override" field.
func (u *PaymentUpsertBulk) SetReferralFeePercentOverride(v decimal.Decimal) *PaymentUpsertBulk {
	return u.Update(func(s *PaymentUpsert) {
		s.SetReferralFeePercentOverride(v)
	})
}

// AddReferralFeePercentOverride adds v to the "referral_fee_percent_override" field.
func (u *PaymentUpsertBulk) AddReferralFeePercentOverride(v decimal.Decimal) *PaymentUpsertBulk {
	return u.Update(func(s *PaymentUpsert) {
		s.AddReferralFeePercentOverride(v)
	})
}

// UpdateReferralFeePercentOverride sets the "referral_fee_percent_override" field to the value that was provided on create.
func (u *PaymentUpsertBulk) UpdateReferralFeePercentOverride() *PaymentUpsertBulk {
	return u.Update(func(s *PaymentUpsert) {
		s.UpdateReferralFeePercentOverride()
	})
}

// ClearReferralFeePercentOverride clears the value of the "referral_fee_percent_override" field.
func (u *PaymentUpsertBulk) ClearReferralFeePercentOverride() *PaymentUpsertBulk {
	return u.Update(func(s *PaymentUpsert) {
		s.ClearReferralFeePercentOverride()
	})
}

// SetPaymentDate sets the "payment_date" field.
func (u *PaymentUpsertBulk) SetPaymentDate(v time.Time) *PaymentUpsertBulk {
	return u.Update(func(s *PaymentUpsert) {
		s.SetPaymentDate(v)
	})
}

// UpdatePaymentDate sets the "payment_date" field to the value that was provided on create.
func (u *PaymentUpsertBulk) UpdatePaymentDate() *PaymentUpsertBulk {
	return u.Update(func(s *PaymentUpsert) {
		s.UpdatePaymentDate()
	})
}

// ClearPaymentDate clears the value of the "payment_date" field.
func (u *PaymentUpsertBulk) ClearPaymentDate() *PaymentUpsertBulk {
	return u.Update(func(s *PaymentUpsert) {
		s.ClearPaymentDate()
	})
}

// SetPaymentReceived sets the "payment_received" field.
func (u *PaymentUpsertBulk) SetPaymentReceived(v bool) *PaymentUpsertBulk {
	return u.Update(func(s *PaymentUpsert) {
		s.SetPaymentReceived(v)
	})
}

// UpdatePaymentReceived sets the "payment_received" field to the value that was provided on create.
func (u *PaymentUpsertBulk) UpdatePaymentReceived() *PaymentUpsertBulk {
	return u.Update(func(s *PaymentUpsert) {
		s.UpdatePaymentReceived()
	})
}

// SetReceivedDate sets the "received_date" field.
func (u *PaymentUpsertBulk) SetReceivedDate(v time.Time) *PaymentUpsertBulk {
	return u.Update(func(s *PaymentUpsert) {
		s.SetReceivedDate(v)
	})
}

// UpdateReceivedDate sets the "received_date" field to the value that was provided on create.
func (u *PaymentUpsertBulk) UpdateReceivedDate() *PaymentUpsertBulk {
	return u.Update(func(s *PaymentUpsert) {
		s.UpdateReceivedDate()
	})
}

// ClearReceivedDate clears the value of the "received_date" field.
func (u *PaymentUpsertBulk) ClearReceivedDate() *PaymentUpsertBulk {
	return u.Update(func(s *PaymentUpsert) {
		s.ClearReceivedDate()
	})
}

// SetIsActive sets the "is_active" field.
func (u *PaymentUpsertBulk) SetIsActive(v bool) *PaymentUpsertBulk {
	return u.Update(func(s *PaymentUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *PaymentUpsertBulk) UpdateIsActive() *PaymentUpsertBulk {
	return u.Update(func(s *PaymentUpsert) {
		s.UpdateIsActive()
	})
}

// SetCommissionVersion sets the "commission_version" field.
func (u *PaymentUpsertBulk) SetCommissionVersion(v int) *PaymentUpsertBulk {
	return u.Update(func(s *PaymentUpsert) {
		s.SetCommissionVersion(v)
	})
}

// AddCommissionVersion adds v to the "commission_version" field.
func (u *PaymentUpsertBulk) AddCommissionVersion(v int) *PaymentUpsertBulk {
	return u.Update(func(s *PaymentUpsert) {
		s.AddCommissionVersion(v)
	})
}

// UpdateCommissionVersion sets the "commission_version" field to the value that was provided on create.
func (u *PaymentUpsertBulk) UpdateCommissionVersion() *PaymentUpsertBulk {
	return u.Update(func(s *PaymentUpsert) {
		s.UpdateCommissionVersion()
	})
}

// SetInvoiceNumber sets the "invoice_number" field.
func (u *PaymentUpsertBulk) SetInvoiceNumber(v string) *PaymentUpsertBulk {
	return u.Update(func(s *PaymentUpsert) {
		s.SetInvoiceNumber(v)
	})
}

// UpdateInvoiceNumber sets the "invoice_number" field to the value that was provided on create.
func (u *PaymentUpsertBulk) UpdateInvoiceNumber() *PaymentUpsertBulk {
	return u.Update(func(s *PaymentUpsert) {
		s.UpdateInvoiceNumber()
	})
}

// ClearInvoiceNumber clears the value of the "invoice_number" field.
func (u *PaymentUpsertBulk) ClearInvoiceNumber() *PaymentUpsertBulk {
	return u.Update(func(s *PaymentUpsert) {
		s.ClearInvoiceNumber()
	})
}

// Exec executes the query.
func (u *PaymentUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the PaymentCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PaymentCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PaymentUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
