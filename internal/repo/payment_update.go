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
	"github.com/oculusgrp/dealdesk_backend/internal/repo/deal"
	"github.com/oculusgrp/dealdesk_backend/internal/repo/payment"
	"github.com/oculusgrp/dealdesk_backend/internal/repo/paymentsplit"
	"github.com/oculusgrp/dealdesk_backend/internal/repo/predicate"
	"github.com/shopspring/decimal"
)

// PaymentUpdate is the builder for updating Payment entities.
type PaymentUpdate struct {
	config
	hooks    []Hook
	mutation *PaymentMutation
}

// Where appends a list predicates to the PaymentUpdate builder.
func (_u *PaymentUpdate) Where(ps ...predicate.Payment) *PaymentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PaymentUpdate) SetUpdatedAt(v time.Time) *PaymentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *PaymentUpdate) SetDeletedAt(v time.Time) *PaymentUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *PaymentUpdate) SetNillableDeletedAt(v *time.Time) *PaymentUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *PaymentUpdate) ClearDeletedAt() *PaymentUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetDealID sets the "deal_id" field.
func (_u *PaymentUpdate) SetDealID(v uuid.UUID) *PaymentUpdate {
	_u.mutation.SetDealID(v)
	return _u
}

// SetNillableDealID sets the "deal_id" field if the given value is not nil.
func (_u *PaymentUpdate) SetNillableDealID(v *uuid.UUID) *PaymentUpdate {
	if v != nil {
		_u.SetDealID(*v)
	}
	return _u
}

// SetSequence sets the "sequence" field.
func (_u *PaymentUpdate) SetSequence(v int) *PaymentUpdate {
	_u.mutation.ResetSequence()
	_u.mutation.SetSequence(v)
	return _u
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (_u *PaymentUpdate) SetNillableSequence(v *int) *PaymentUpdate {
	if v != nil {
		_u.SetSequence(*v)
	}
	return _u
}

// AddSequence adds value to the "sequence" field.
func (_u *PaymentUpdate) AddSequence(v int) *PaymentUpdate {
	_u.mutation.AddSequence(v)
	return _u
}

// SetPaymentAmount sets the "payment_amount" field.
func (_u *PaymentUpdate) SetPaymentAmount(v decimal.Decimal) *PaymentUpdate {
	_u.mutation.ResetPaymentAmount()
	_u.mutation.SetPaymentAmount(v)
	return _u
}

// SetNillablePaymentAmount sets the "payment_amount" field if the given value is not nil.
func (_u *PaymentUpdate) SetNillablePaymentAmount(v *decimal.Decimal) *PaymentUpdate {
	if v != nil {
		_u.SetPaymentAmount(*v)
	}
	return _u
}

// AddPaymentAmount adds value to the "payment_amount" field.
func (_u *PaymentUpdate) AddPaymentAmount(v decimal.Decimal) *PaymentUpdate {
	_u.mutation.AddPaymentAmount(v)
	return _u
}

// SetAmountOverride sets the "amount_override" field.
func (_u *PaymentUpdate) SetAmountOverride(v bool) *PaymentUpdate {
	_u.mutation.SetAmountOverride(v)
	return _u
}

// SetNillableAmountOverride sets the "amount_override" field if the given value is not nil.
func (_u *PaymentUpdate) SetNillableAmountOverride(v *bool) *PaymentUpdate {
	if v != nil {
		_u.SetAmountOverride(*v)
	}
	return _u
}

// SetAgci sets the "agci" field.
func (_u *PaymentUpdate) SetAgci(v decimal.Decimal) *PaymentUpdate {
	_u.mutation.ResetAgci()
	_u.mutation.SetAgci(v)
	return _u
}

// SetNillableAgci sets the "agci" field if the given value is not nil.
func (_u *PaymentUpdate) SetNillableAgci(v *decimal.Decimal) *PaymentUpdate {
	if v != nil {
		_u.SetAgci(*v)
	}
	return _u
}

// AddAgci adds value to the "agci" field.
func (_u *PaymentUpdate) AddAgci(v decimal.Decimal) *PaymentUpdate {
	_u.mutation.AddAgci(v)
	return _u
}

// SetReferralFeeUsd sets the "referral_fee_usd" field.
func (_u *PaymentUpdate) SetReferralFeeUsd(v decimal.Decimal) *PaymentUpdate {
	_u.mutation.ResetReferralFeeUsd()
	_u.mutation.SetReferralFeeUsd(v)
	return _u
}

// SetNillableReferralFeeUsd sets the "referral_fee_usd" field if the given value is not nil.
func (_u *PaymentUpdate) SetNillableReferralFeeUsd(v *decimal.Decimal) *PaymentUpdate {
	if v != nil {
		_u.SetReferralFeeUsd(*v)
	}
	return _u
}

// AddReferralFeeUsd adds value to the "referral_fee_usd" field.
func (_u *PaymentUpdate) AddReferralFeeUsd(v decimal.Decimal) *PaymentUpdate {
	_u.mutation.AddReferralFeeUsd(v)
	return _u
}

// SetReferralFeePercentOverride sets the "referral_fee_percent_override" field.
func (_u *PaymentUpdate) SetReferralFeePercentOverride(v decimal.Decimal) *PaymentUpdate {
	_u.mutation.ResetReferralFeePercentOverride()
	_u.mutation.SetReferralFeePercentOverride(v)
	return _u
}

// SetNillableReferralFeePercentOverride sets the "referral_fee_percent_override" field if the given value is not nil.
func (_u *PaymentUpdate) SetNillableReferralFeePercentOverride(v *decimal.Decimal) *PaymentUpdate {
	if v != nil {
		_u.SetReferralFeePercentOverride(*v)
	}
	return _u
}

// AddReferralFeePercentOverride adds value to the "referral_fee_percent_override" field.
func (_u *PaymentUpdate) AddReferralFeePercentOverride(v decimal.Decimal) *PaymentUpdate {
	_u.mutation.AddReferralFeePercentOverride(v)
	return _u
}

// ClearReferralFeePercentOverride clears the value of the "referral_fee_percent_override" field.
func (_u *PaymentUpdate) ClearReferralFeePercentOverride() *PaymentUpdate {
	_u.mutation.ClearReferralFeePercentOverride()
	return _u
}

// SetPaymentDate sets the "payment_date" field.
func (_u *PaymentUpdate) SetPaymentDate(v time.Time) *PaymentUpdate {
	_u.mutation.SetPaymentDate(v)
	return _u
}

// SetNillablePaymentDate sets the "payment_date" field if the given value is not nil.
func (_u *PaymentUpdate) SetNillablePaymentDate(v *time.Time) *PaymentUpdate {
	if v != nil {
		_u.SetPaymentDate(*v)
	}
	return _u
}

// ClearPaymentDate clears the value of the "payment_date" field.
func (_u *PaymentUpdate) ClearPaymentDate() *PaymentUpdate {
	_u.mutation.ClearPaymentDate()
	return _u
}

// SetPaymentReceived sets the "payment_received" field.
func (_u *PaymentUpdate) SetPaymentReceived(v bool) *PaymentUpdate {
	_u.mutation.SetPaymentReceived(v)
	return _u
}

// SetNillablePaymentReceived sets the "payment_received" field if the given value is not nil.
func (_u *PaymentUpdate) SetNillablePaymentReceived(v *bool) *PaymentUpdate {
	if v != nil {
		_u.SetPaymentReceived(*v)
	}
	return _u
}

// SetReceivedDate sets the "received_date" field.
func (_u *PaymentUpdate) SetReceivedDate(v time.Time) *PaymentUpdate {
	_u.mutation.SetReceivedDate(v)
	return _u
}

// SetNillableReceivedDate sets the "received_date" field if the given value is not nil.
func (_u *PaymentUpdate) SetNillableReceivedDate(v *time.Time) *PaymentUpdate {
	if v != nil {
		_u.SetReceivedDate(*v)
	}
	return _u
}

// ClearReceivedDate clears the value of the "received_date" field.
func (_u *PaymentUpdate) ClearReceivedDate() *PaymentUpdate {
	_u.mutation.ClearReceivedDate()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *PaymentUpdate) SetIsActive(v bool) *PaymentUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *PaymentUpdate) SetNillableIsActive(v *bool) *PaymentUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetCommissionVersion sets the "commission_version" field.
func (_u *PaymentUpdate) SetCommissionVersion(v int) *PaymentUpdate {
	_u.mutation.ResetCommissionVersion()
	_u.mutation.SetCommissionVersion(v)
	return _u
}

// SetNillableCommissionVersion sets the "commission_version" field if the given value is not nil.
func (_u *PaymentUpdate) SetNillableCommissionVersion(v *int) *PaymentUpdate {
	if v != nil {
		_u.SetCommissionVersion(*v)
	}
	return _u
}

// AddCommissionVersion adds value to the "commission_version" field.
func (_u *PaymentUpdate) AddCommissionVersion(v int) *PaymentUpdate {
	_u.mutation.AddCommissionVersion(v)
	return _u
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_u *PaymentUpdate) SetInvoiceNumber(v string) *PaymentUpdate {
	_u.mutation.SetInvoiceNumber(v)
	return _u
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (_u *PaymentUpdate) SetNillableInvoiceNumber(v *string) *PaymentUpdate {
	if v != nil {
		_u.SetInvoiceNumber(*v)
	}
	return _u
}

// ClearInvoiceNumber clears the value of the "invoice_number" field.
func (_u *PaymentUpdate) ClearInvoiceNumber() *PaymentUpdate {
	_u.mutation.ClearInvoiceNumber()
	return _u
}

// SetDeal sets the "deal" edge to the Deal entity.
func (_u *PaymentUpdate) SetDeal(v *Deal) *PaymentUpdate {
	return _u.SetDealID(v.ID)
}

// AddSplitIDs adds the "splits" edge to the PaymentSplit entity by IDs.
func (_u *PaymentUpdate) AddSplitIDs(ids ...uuid.UUID) *PaymentUpdate {
	_u.mutation.AddSplitIDs(ids...)
	return _u
}

// AddSplits adds the "splits" edges to the PaymentSplit entity.
func (_u *PaymentUpdate) AddSplits(v ...*PaymentSplit) *PaymentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSplitIDs(ids...)
}

// Mutation returns the PaymentMutation object of the builder.
func (_u *PaymentUpdate) Mutation() *PaymentMutation {
	return _u.mutation
}

// ClearDeal clears the "deal" edge to the Deal entity.
func (_u *PaymentUpdate) ClearDeal() *PaymentUpdate {
	_u.mutation.ClearDeal()
	return _u
}

// ClearSplits clears all "splits" edges to the PaymentSplit entity.
func (_u *PaymentUpdate) ClearSplits() *PaymentUpdate {
	_u.mutation.ClearSplits()
	return _u
}

// RemoveSplitIDs removes the "splits" edge to PaymentSplit entities by IDs.
func (_u *PaymentUpdate) RemoveSplitIDs(ids ...uuid.UUID) *PaymentUpdate {
	_u.mutation.RemoveSplitIDs(ids...)
	return _u
}

// RemoveSplits removes "splits" edges to PaymentSplit entities.
func (_u *PaymentUpdate) RemoveSplits(v ...*PaymentSplit) *PaymentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSplitIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PaymentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PaymentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PaymentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PaymentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PaymentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := payment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PaymentUpdate) check() error {
	if v, ok := _u.mutation.Sequence(); ok {
		if err := payment.SequenceValidator(v); err != nil {
			return &ValidationError{Name: "sequence", err: fmt.Errorf(`repo: validator failed for field "Payment.sequence": %w`, err)}
		}
	}
	if v, ok := _u.mutation.InvoiceNumber(); ok {
		if err := payment.InvoiceNumberValidator(v); err != nil {
			return &ValidationError{Name: "invoice_number", err: fmt.Errorf(`repo: validator failed for field "Payment.invoice_number": %w`, err)}
		}
	}
	if _u.mutation.DealCleared() && len(_u.mutation.DealIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Payment.deal"`)
	}
	return nil
}

func (_u *PaymentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(payment.Table, payment.Columns, sqlgraph.NewFieldSpec(payment.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(payment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(payment.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(payment.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Sequence(); ok {
		_spec.SetField(payment.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequence(); ok {
		_spec.AddField(payment.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PaymentAmount(); ok {
		_spec.SetField(payment.FieldPaymentAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPaymentAmount(); ok {
		_spec.AddField(payment.FieldPaymentAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AmountOverride(); ok {
		_spec.SetField(payment.FieldAmountOverride, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Agci(); ok {
		_spec.SetField(payment.FieldAgci, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAgci(); ok {
		_spec.AddField(payment.FieldAgci, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ReferralFeeUsd(); ok {
		_spec.SetField(payment.FieldReferralFeeUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedReferralFeeUsd(); ok {
		_spec.AddField(payment.FieldReferralFeeUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ReferralFeePercentOverride(); ok {
		_spec.SetField(payment.FieldReferralFeePercentOverride, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedReferralFeePercentOverride(); ok {
		_spec.AddField(payment.FieldReferralFeePercentOverride, field.TypeFloat64, value)
	}
	if _u.mutation.ReferralFeePercentOverrideCleared() {
		_spec.ClearField(payment.FieldReferralFeePercentOverride, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PaymentDate(); ok {
		_spec.SetField(payment.FieldPaymentDate, field.TypeTime, value)
	}
	if _u.mutation.PaymentDateCleared() {
		_spec.ClearField(payment.FieldPaymentDate, field.TypeTime)
	}
	if value, ok := _u.mutation.PaymentReceived(); ok {
		_spec.SetField(payment.FieldPaymentReceived, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ReceivedDate(); ok {
		_spec.SetField(payment.FieldReceivedDate, field.TypeTime, value)
	}
	if _u.mutation.ReceivedDateCleared() {
		_spec.ClearField(payment.FieldReceivedDate, field.TypeTime)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(payment.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CommissionVersion(); ok {
		_spec.SetField(payment.FieldCommissionVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCommissionVersion(); ok {
		_spec.AddField(payment.FieldCommissionVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.InvoiceNumber(); ok {
		_spec.SetField(payment.FieldInvoiceNumber, field.TypeString, value)
	}
	if _u.mutation.InvoiceNumberCleared() {
		_spec.ClearField(payment.FieldInvoiceNumber, field.TypeString)
	}
	if _u.mutation.DealCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DealIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SplitsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSplitsIDs(); len(nodes) > 0 && !_u.mutation.SplitsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SplitsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{payment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PaymentUpdateOne is the builder for updating a single Payment entity.
type PaymentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PaymentMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PaymentUpdateOne) SetUpdatedAt(v time.Time) *PaymentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *PaymentUpdateOne) SetDeletedAt(v time.Time) *PaymentUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *PaymentUpdateOne) SetNillableDeletedAt(v *time.Time) *PaymentUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *PaymentUpdateOne) ClearDeletedAt() *PaymentUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetDealID sets the "deal_id" field.
func (_u *PaymentUpdateOne) SetDealID(v uuid.UUID) *PaymentUpdateOne {
	_u.mutation.SetDealID(v)
	return _u
}

// SetNillableDealID sets the "deal_id" field if the given value is not nil.
func (_u *PaymentUpdateOne) SetNillableDealID(v *uuid.UUID) *PaymentUpdateOne {
	if v != nil {
		_u.SetDealID(*v)
	}
	return _u
}

// SetSequence sets the "sequence" field.
func (_u *PaymentUpdateOne) SetSequence(v int) *PaymentUpdateOne {
	_u.mutation.ResetSequence()
	_u.mutation.SetSequence(v)
	return _u
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (_u *PaymentUpdateOne) SetNillableSequence(v *int) *PaymentUpdateOne {
	if v != nil {
		_u.SetSequence(*v)
	}
	return _u
}

// AddSequence adds value to the "sequence" field.
func (_u *PaymentUpdateOne) AddSequence(v int) *PaymentUpdateOne {
	_u.mutation.AddSequence(v)
	return _u
}

// SetPaymentAmount sets the "payment_amount" field.
func (_u *PaymentUpdateOne) SetPaymentAmount(v decimal.Decimal) *PaymentUpdateOne {
	_u.mutation.ResetPaymentAmount()
	_u.mutation.SetPaymentAmount(v)
	return _u
}

// SetNillablePaymentAmount sets the "payment_amount" field if the given value is not nil.
func (_u *PaymentUpdateOne) SetNillablePaymentAmount(v *decimal.Decimal) *PaymentUpdateOne {
	if v != nil {
		_u.SetPaymentAmount(*v)
	}
	return _u
}

// AddPaymentAmount adds value to the "payment_amount" field.
func (_u *PaymentUpdateOne) AddPaymentAmount(v decimal.Decimal) *PaymentUpdateOne {
	_u.mutation.AddPaymentAmount(v)
	return _u
}

// SetAmountOverride sets the "amount_override" field.
func (_u *PaymentUpdateOne) SetAmountOverride(v bool) *PaymentUpdateOne {
	_u.mutation.SetAmountOverride(v)
	return _u
}

// SetNillableAmountOverride sets the "amount_override" field if the given value is not nil.
func (_u *PaymentUpdateOne) SetNillableAmountOverride(v *bool) *PaymentUpdateOne {
	if v != nil {
		_u.SetAmountOverride(*v)
	}
	return _u
}

// SetAgci sets the "agci" field.
func (_u *PaymentUpdateOne) SetAgci(v decimal.Decimal) *PaymentUpdateOne {
	_u.mutation.ResetAgci()
	_u.mutation.SetAgci(v)
	return _u
}

// SetNillableAgci sets the "agci" field if the given value is not nil.
func (_u *PaymentUpdateOne) SetNillableAgci(v *decimal.Decimal) *PaymentUpdateOne {
	if v != nil {
		_u.SetAgci(*v)
	}
	return _u
}

// AddAgci adds value to the "agci" field.
func (_u *PaymentUpdateOne) AddAgci(v decimal.Decimal) *PaymentUpdateOne {
	_u.mutation.AddAgci(v)
	return _u
}

// SetReferralFeeUsd sets the "referral_fee_usd" field.
func (_u *PaymentUpdateOne) SetReferralFeeUsd(v decimal.Decimal) *PaymentUpdateOne {
	_u.mutation.ResetReferralFeeUsd()
	_u.mutation.SetReferralFeeUsd(v)
	return _u
}

// SetNillableReferralFeeUsd sets the "referral_fee_usd" field if the given value is not nil.
func (_u *PaymentUpdateOne) SetNillableReferralFeeUsd(v *decimal.Decimal) *PaymentUpdateOne {
	if v != nil {
		_u.SetReferralFeeUsd(*v)
	}
	return _u
}

// AddReferralFeeUsd adds value to the "referral_fee_usd" field.
func (_u *PaymentUpdateOne) AddReferralFeeUsd(v decimal.Decimal) *PaymentUpdateOne {
	_u.mutation.AddReferralFeeUsd(v)
	return _u
}

// SetReferralFeePercentOverride sets the "referral_fee_percent_override" field.
func (_u *PaymentUpdateOne) SetReferralFeePercentOverride(v decimal.Decimal) *PaymentUpdateOne {
	_u.mutation.ResetReferralFeePercentOverride()
	_u.mutation.SetReferralFeePercentOverride(v)
	return _u
}

// SetNillableReferralFeePercentOverride sets the "referral_fee_percent_override" field if the given value is not nil.
func (_u *PaymentUpdateOne) SetNillableReferralFeePercentOverride(v *decimal.Decimal) *PaymentUpdateOne {
	if v != nil {
		_u.SetReferralFeePercentOverride(*v)
	}
	return _u
}

// AddReferralFeePercentOverride adds value to the "referral_fee_percent_override" field.
func (_u *PaymentUpdateOne) AddReferralFeePercentOverride(v decimal.Decimal) *PaymentUpdateOne {
	_u.mutation.AddReferralFeePercentOverride(v)
	return _u
}

// ClearReferralFeePercentOverride clears the value of the "referral_fee_percent_override" field.
func (_u *PaymentUpdateOne) ClearReferralFeePercentOverride() *PaymentUpdateOne {
	_u.mutation.ClearReferralFeePercentOverride()
	return _u
}

// SetPaymentDate sets the "payment_date" field.
func (_u *PaymentUpdateOne) SetPaymentDate(v time.Time) *PaymentUpdateOne {
	_u.mutation.SetPaymentDate(v)
	return _u
}

// SetNillablePaymentDate sets the "payment_date" field if the given value is not nil.
func (_u *PaymentUpdateOne) SetNillablePaymentDate(v *time.Time) *PaymentUpdateOne {
	if v != nil {
		_u.SetPaymentDate(*v)
	}
	return _u
}

// ClearPaymentDate clears the value of the "payment_date" field.
func (_u *PaymentUpdateOne) ClearPaymentDate() *PaymentUpdateOne {
	_u.mutation.ClearPaymentDate()
	return _u
}

// SetPaymentReceived sets the "payment_received" field.
func (_u *PaymentUpdateOne) SetPaymentReceived(v bool) *PaymentUpdateOne {
	_u.mutation.SetPaymentReceived(v)
	return _u
}

// SetNillablePaymentReceived sets the "payment_received" field if the given value is not nil.
func (_u *PaymentUpdateOne) SetNillablePaymentReceived(v *bool) *PaymentUpdateOne {
	if v != nil {
		_u.SetPaymentReceived(*v)
	}
	return _u
}

// SetReceivedDate sets the "received_date" field.
func (_u *PaymentUpdateOne) SetReceivedDate(v time.Time) *PaymentUpdateOne {
	_u.mutation.SetReceivedDate(v)
	return _u
}

// SetNillableReceivedDate sets the "received_date" field if the given value is not nil.
func (_u *PaymentUpdateOne) SetNillableReceivedDate(v *time.Time) *PaymentUpdateOne {
	if v != nil {
		_u.SetReceivedDate(*v)
	}
	return _u
}

// ClearReceivedDate clears the value of the "received_date" field.
func (_u *PaymentUpdateOne) ClearReceivedDate() *PaymentUpdateOne {
	_u.mutation.ClearReceivedDate()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *PaymentUpdateOne) SetIsActive(v bool) *PaymentUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *PaymentUpdateOne) SetNillableIsActive(v *bool) *PaymentUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetCommissionVersion sets the "commission_version" field.
func (_u *PaymentUpdateOne) SetCommissionVersion(v int) *PaymentUpdateOne {
	_u.mutation.ResetCommissionVersion()
	_u.mutation.SetCommissionVersion(v)
	return _u
}

// SetNillableCommissionVersion sets the "commission_version" field if the given value is not nil.
func (_u *PaymentUpdateOne) SetNillableCommissionVersion(v *int) *PaymentUpdateOne {
	if v != nil {
		_u.SetCommissionVersion(*v)
	}
	return _u
}

// AddCommissionVersion adds value to the "commission_version" field.
func (_u *PaymentUpdateOne) AddCommissionVersion(v int) *PaymentUpdateOne {
	_u.mutation.AddCommissionVersion(v)
	return _u
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_u *PaymentUpdateOne) SetInvoiceNumber(v string) *PaymentUpdateOne {
	_u.mutation.SetInvoiceNumber(v)
	return _u
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (_u *PaymentUpdateOne) SetNillableInvoiceNumber(v *string) *PaymentUpdateOne {
	if v != nil {
		_u.SetInvoiceNumber(*v)
	}
	return _u
}

// ClearInvoiceNumber clears the value of the "invoice_number" field.
func (_u *PaymentUpdateOne) ClearInvoiceNumber() *PaymentUpdateOne {
	_u.mutation.ClearInvoiceNumber()
	return _u
}

// SetDeal sets the "deal" edge to the Deal entity.
func (_u *PaymentUpdateOne) SetDeal(v *Deal) *PaymentUpdateOne {
	return _u.SetDealID(v.ID)
}

// AddSplitIDs adds the "splits" edge to the PaymentSplit entity by IDs.
func (_u *PaymentUpdateOne) AddSplitIDs(ids ...uuid.UUID) *PaymentUpdateOne {
	_u.mutation.AddSplitIDs(ids...)
	return _u
}

// AddSplits adds the "splits" edges to the PaymentSplit entity.
func (_u *PaymentUpdateOne) AddSplits(v ...*PaymentSplit) *PaymentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSplitIDs(ids...)
}

// Mutation returns the PaymentMutation object of the builder.
func (_u *PaymentUpdateOne) Mutation() *PaymentMutation {
	return _u.mutation
}

// ClearDeal clears the "deal" edge to the Deal entity.
func (_u *PaymentUpdateOne) ClearDeal() *PaymentUpdateOne {
	_u.mutation.ClearDeal()
	return _u
}

// ClearSplits clears all "splits" edges to the PaymentSplit entity.
func (_u *PaymentUpdateOne) ClearSplits() *PaymentUpdateOne {
	_u.mutation.ClearSplits()
	return _u
}

// RemoveSplitIDs removes the "splits" edge to PaymentSplit entities by IDs.
func (_u *PaymentUpdateOne) RemoveSplitIDs(ids ...uuid.UUID) *PaymentUpdateOne {
	_u.mutation.RemoveSplitIDs(ids...)
	return _u
}

// RemoveSplits removes "splits" edges to PaymentSplit entities.
func (_u *PaymentUpdateOne) RemoveSplits(v ...*PaymentSplit) *PaymentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSplitIDs(ids...)
}

// Where appends a list predicates to the PaymentUpdate builder.
func (_u *PaymentUpdateOne) Where(ps ...predicate.Payment) *PaymentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PaymentUpdateOne) Select(field string, fields ...string) *PaymentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Payment entity.
func (_u *PaymentUpdateOne) Save(ctx context.Context) (*Payment, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PaymentUpdateOne) SaveX(ctx context.Context) *Payment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PaymentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PaymentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PaymentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := payment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PaymentUpdateOne) check() error {
	if v, ok := _u.mutation.Sequence(); ok {
		if err := payment.SequenceValidator(v); err != nil {
			return &ValidationError{Name: "sequence", err: fmt.Errorf(`repo: validator failed for field "Payment.sequence": %w`, err)}
		}
	}
	if v, ok := _u.mutation.InvoiceNumber(); ok {
		if err := payment.InvoiceNumberValidator(v); err != nil {
			return &ValidationError{Name: "invoice_number", err: fmt.Errorf(`repo: validator failed for field "Payment.invoice_number": %w`, err)}
		}
	}
	if _u.mutation.DealCleared() && len(_u.mutation.DealIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Payment.deal"`)
	}
	return nil
}

func (_u *PaymentUpdateOne) sqlSave(ctx context.Context) (_node *Payment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(payment.Table, payment.Columns, sqlgraph.NewFieldSpec(payment.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Payment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, payment.FieldID)
		for _, f := range fields {
			if !payment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != payment.FieldID {
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
		_spec.SetField(payment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(payment.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(payment.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Sequence(); ok {
		_spec.SetField(payment.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequence(); ok {
		_spec.AddField(payment.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PaymentAmount(); ok {
		_spec.SetField(payment.FieldPaymentAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPaymentAmount(); ok {
		_spec.AddField(payment.FieldPaymentAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AmountOverride(); ok {
		_spec.SetField(payment.FieldAmountOverride, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Agci(); ok {
		_spec.SetField(payment.FieldAgci, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAgci(); ok {
		_spec.AddField(payment.FieldAgci, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ReferralFeeUsd(); ok {
		_spec.SetField(payment.FieldReferralFeeUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedReferralFeeUsd(); ok {
		_spec.AddField(payment.FieldReferralFeeUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ReferralFeePercentOverride(); ok {
		_spec.SetField(payment.FieldReferralFeePercentOverride, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedReferralFeePercentOverride(); ok {
		_spec.AddField(payment.FieldReferralFeePercentOverride, field.TypeFloat64, value)
	}
	if _u.mutation.ReferralFeePercentOverrideCleared() {
		_spec.ClearField(payment.FieldReferralFeePercentOverride, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PaymentDate(); ok {
		_spec.SetField(payment.FieldPaymentDate, field.TypeTime, value)
	}
	if _u.mutation.PaymentDateCleared() {
		_spec.ClearField(payment.FieldPaymentDate, field.TypeTime)
	}
	if value, ok := _u.mutation.PaymentReceived(); ok {
		_spec.SetField(payment.FieldPaymentReceived, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ReceivedDate(); ok {
		_spec.SetField(payment.FieldReceivedDate, field.TypeTime, value)
	}
	if _u.mutation.ReceivedDateCleared() {
		_spec.ClearField(payment.FieldReceivedDate, field.TypeTime)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(payment.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CommissionVersion(); ok {
		_spec.SetField(payment.FieldCommissionVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCommissionVersion(); ok {
		_spec.AddField(payment.FieldCommissionVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.InvoiceNumber(); ok {
		_spec.SetField(payment.FieldInvoiceNumber, field.TypeString, value)
	}
	if _u.mutation.InvoiceNumberCleared() {
		_spec.ClearField(payment.FieldInvoiceNumber, field.TypeString)
	}
	if _u.mutation.DealCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DealIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SplitsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSplitsIDs(); len(nodes) > 0 && !_u.mutation.SplitsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SplitsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Payment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{payment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
