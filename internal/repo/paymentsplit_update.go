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
	"github.com/oculusgrp/dealdesk_backend/internal/repo/payment"
	"github.com/oculusgrp/dealdesk_backend/internal/repo/paymentsplit"
	"github.com/oculusgrp/dealdesk_backend/internal/repo/predicate"
	"github.com/shopspring/decimal"
)

// PaymentSplitUpdate is the builder for updating PaymentSplit entities.
type PaymentSplitUpdate struct {
	config
	hooks    []Hook
	mutation *PaymentSplitMutation
}

// Where appends a list predicates to the PaymentSplitUpdate builder.
func (_u *PaymentSplitUpdate) Where(ps ...predicate.PaymentSplit) *PaymentSplitUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PaymentSplitUpdate) SetUpdatedAt(v time.Time) *PaymentSplitUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPaymentID sets the "payment_id" field.
func (_u *PaymentSplitUpdate) SetPaymentID(v uuid.UUID) *PaymentSplitUpdate {
	_u.mutation.SetPaymentID(v)
	return _u
}

// SetNillablePaymentID sets the "payment_id" field if the given value is not nil.
func (_u *PaymentSplitUpdate) SetNillablePaymentID(v *uuid.UUID) *PaymentSplitUpdate {
	if v != nil {
		_u.SetPaymentID(*v)
	}
	return _u
}

// SetBrokerID sets the "broker_id" field.
func (_u *PaymentSplitUpdate) SetBrokerID(v uuid.UUID) *PaymentSplitUpdate {
	_u.mutation.SetBrokerID(v)
	return _u
}

// SetNillableBrokerID sets the "broker_id" field if the given value is not nil.
func (_u *PaymentSplitUpdate) SetNillableBrokerID(v *uuid.UUID) *PaymentSplitUpdate {
	if v != nil {
		_u.SetBrokerID(*v)
	}
	return _u
}

// SetSplitOriginationPercent sets the "split_origination_percent" field.
func (_u *PaymentSplitUpdate) SetSplitOriginationPercent(v decimal.Decimal) *PaymentSplitUpdate {
	_u.mutation.ResetSplitOriginationPercent()
	_u.mutation.SetSplitOriginationPercent(v)
	return _u
}

// SetNillableSplitOriginationPercent sets the "split_origination_percent" field if the given value is not nil.
func (_u *PaymentSplitUpdate) SetNillableSplitOriginationPercent(v *decimal.Decimal) *PaymentSplitUpdate {
	if v != nil {
		_u.SetSplitOriginationPercent(*v)
	}
	return _u
}

// AddSplitOriginationPercent adds value to the "split_origination_percent" field.
func (_u *PaymentSplitUpdate) AddSplitOriginationPercent(v decimal.Decimal) *PaymentSplitUpdate {
	_u.mutation.AddSplitOriginationPercent(v)
	return _u
}

// SetSplitOriginationUsd sets the "split_origination_usd" field.
func (_u *PaymentSplitUpdate) SetSplitOriginationUsd(v decimal.Decimal) *PaymentSplitUpdate {
	_u.mutation.ResetSplitOriginationUsd()
	_u.mutation.SetSplitOriginationUsd(v)
	return _u
}

// SetNillableSplitOriginationUsd sets the "split_origination_usd" field if the given value is not nil.
func (_u *PaymentSplitUpdate) SetNillableSplitOriginationUsd(v *decimal.Decimal) *PaymentSplitUpdate {
	if v != nil {
		_u.SetSplitOriginationUsd(*v)
	}
	return _u
}

// AddSplitOriginationUsd adds value to the "split_origination_usd" field.
func (_u *PaymentSplitUpdate) AddSplitOriginationUsd(v decimal.Decimal) *PaymentSplitUpdate {
	_u.mutation.AddSplitOriginationUsd(v)
	return _u
}

// SetSplitSitePercent sets the "split_site_percent" field.
func (_u *PaymentSplitUpdate) SetSplitSitePercent(v decimal.Decimal) *PaymentSplitUpdate {
	_u.mutation.ResetSplitSitePercent()
	_u.mutation.SetSplitSitePercent(v)
	return _u
}

// SetNillableSplitSitePercent sets the "split_site_percent" field if the given value is not nil.
func (_u *PaymentSplitUpdate) SetNillableSplitSitePercent(v *decimal.Decimal) *PaymentSplitUpdate {
	if v != nil {
		_u.SetSplitSitePercent(*v)
	}
	return _u
}

// AddSplitSitePercent adds value to the "split_site_percent" field.
func (_u *PaymentSplitUpdate) AddSplitSitePercent(v decimal.Decimal) *PaymentSplitUpdate {
	_u.mutation.AddSplitSitePercent(v)
	return _u
}

// SetSplitSiteUsd sets the "split_site_usd" field.
func (_u *PaymentSplitUpdate) SetSplitSiteUsd(v decimal.Decimal) *PaymentSplitUpdate {
	_u.mutation.ResetSplitSiteUsd()
	_u.mutation.SetSplitSiteUsd(v)
	return _u
}

// SetNillableSplitSiteUsd sets the "split_site_usd" field if the given value is not nil.
func (_u *PaymentSplitUpdate) SetNillableSplitSiteUsd(v *decimal.Decimal) *PaymentSplitUpdate {
	if v != nil {
		_u.SetSplitSiteUsd(*v)
	}
	return _u
}

// AddSplitSiteUsd adds value to the "split_site_usd" field.
func (_u *PaymentSplitUpdate) AddSplitSiteUsd(v decimal.Decimal) *PaymentSplitUpdate {
	_u.mutation.AddSplitSiteUsd(v)
	return _u
}

// SetSplitDealPercent sets the "split_deal_percent" field.
func (_u *PaymentSplitUpdate) SetSplitDealPercent(v decimal.Decimal) *PaymentSplitUpdate {
	_u.mutation.ResetSplitDealPercent()
	_u.mutation.SetSplitDealPercent(v)
	return _u
}

// SetNillableSplitDealPercent sets the "split_deal_percent" field if the given value is not nil.
func (_u *PaymentSplitUpdate) SetNillableSplitDealPercent(v *decimal.Decimal) *PaymentSplitUpdate {
	if v != nil {
		_u.SetSplitDealPercent(*v)
	}
	return _u
}

// AddSplitDealPercent adds value to the "split_deal_percent" field.
func (_u *PaymentSplitUpdate) AddSplitDealPercent(v decimal.Decimal) *PaymentSplitUpdate {
	_u.mutation.AddSplitDealPercent(v)
	return _u
}

// SetSplitDealUsd sets the "split_deal_usd" field.
func (_u *PaymentSplitUpdate) SetSplitDealUsd(v decimal.Decimal) *PaymentSplitUpdate {
	_u.mutation.ResetSplitDealUsd()
	_u.mutation.SetSplitDealUsd(v)
	return _u
}

// SetNillableSplitDealUsd sets the "split_deal_usd" field if the given value is not nil.
func (_u *PaymentSplitUpdate) SetNillableSplitDealUsd(v *decimal.Decimal) *PaymentSplitUpdate {
	if v != nil {
		_u.SetSplitDealUsd(*v)
	}
	return _u
}

// AddSplitDealUsd adds value to the "split_deal_usd" field.
func (_u *PaymentSplitUpdate) AddSplitDealUsd(v decimal.Decimal) *PaymentSplitUpdate {
	_u.mutation.AddSplitDealUsd(v)
	return _u
}

// SetSplitBrokerTotal sets the "split_broker_total" field.
func (_u *PaymentSplitUpdate) SetSplitBrokerTotal(v decimal.Decimal) *PaymentSplitUpdate {
	_u.mutation.ResetSplitBrokerTotal()
	_u.mutation.SetSplitBrokerTotal(v)
	return _u
}

// SetNillableSplitBrokerTotal sets the "split_broker_total" field if the given value is not nil.
func (_u *PaymentSplitUpdate) SetNillableSplitBrokerTotal(v *decimal.Decimal) *PaymentSplitUpdate {
	if v != nil {
		_u.SetSplitBrokerTotal(*v)
	}
	return _u
}

// AddSplitBrokerTotal adds value to the "split_broker_total" field.
func (_u *PaymentSplitUpdate) AddSplitBrokerTotal(v decimal.Decimal) *PaymentSplitUpdate {
	_u.mutation.AddSplitBrokerTotal(v)
	return _u
}

// SetPaid sets the "paid" field.
func (_u *PaymentSplitUpdate) SetPaid(v bool) *PaymentSplitUpdate {
	_u.mutation.SetPaid(v)
	return _u
}

// SetNillablePaid sets the "paid" field if the given value is not nil.
func (_u *PaymentSplitUpdate) SetNillablePaid(v *bool) *PaymentSplitUpdate {
	if v != nil {
		_u.SetPaid(*v)
	}
	return _u
}

// SetPaidDate sets the "paid_date" field.
func (_u *PaymentSplitUpdate) SetPaidDate(v time.Time) *PaymentSplitUpdate {
	_u.mutation.SetPaidDate(v)
	return _u
}

// SetNillablePaidDate sets the "paid_date" field if the given value is not nil.
func (_u *PaymentSplitUpdate) SetNillablePaidDate(v *time.Time) *PaymentSplitUpdate {
	if v != nil {
		_u.SetPaidDate(*v)
	}
	return _u
}

// ClearPaidDate clears the value of the "paid_date" field.
func (_u *PaymentSplitUpdate) ClearPaidDate() *PaymentSplitUpdate {
	_u.mutation.ClearPaidDate()
	return _u
}

// SetPayment sets the "payment" edge to the Payment entity.
func (_u *PaymentSplitUpdate) SetPayment(v *Payment) *PaymentSplitUpdate {
	return _u.SetPaymentID(v.ID)
}

// SetBroker sets the "broker" edge to the Broker entity.
func (_u *PaymentSplitUpdate) SetBroker(v *Broker) *PaymentSplitUpdate {
	return _u.SetBrokerID(v.ID)
}

// Mutation returns the PaymentSplitMutation object of the builder.
func (_u *PaymentSplitUpdate) Mutation() *PaymentSplitMutation {
	return _u.mutation
}

// ClearPayment clears the "payment" edge to the Payment entity.
func (_u *PaymentSplitUpdate) ClearPayment() *PaymentSplitUpdate {
	_u.mutation.ClearPayment()
	return _u
}

// ClearBroker clears the "broker" edge to the Broker entity.
func (_u *PaymentSplitUpdate) ClearBroker() *PaymentSplitUpdate {
	_u.mutation.ClearBroker()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PaymentSplitUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PaymentSplitUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PaymentSplitUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PaymentSplitUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PaymentSplitUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := paymentsplit.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PaymentSplitUpdate) check() error {
	if _u.mutation.PaymentCleared() && len(_u.mutation.PaymentIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "PaymentSplit.payment"`)
	}
	if _u.mutation.BrokerCleared() && len(_u.mutation.BrokerIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "PaymentSplit.broker"`)
	}
	return nil
}

func (_u *PaymentSplitUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(paymentsplit.Table, paymentsplit.Columns, sqlgraph.NewFieldSpec(paymentsplit.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(paymentsplit.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.SplitOriginationPercent(); ok {
		_spec.SetField(paymentsplit.FieldSplitOriginationPercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSplitOriginationPercent(); ok {
		_spec.AddField(paymentsplit.FieldSplitOriginationPercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SplitOriginationUsd(); ok {
		_spec.SetField(paymentsplit.FieldSplitOriginationUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSplitOriginationUsd(); ok {
		_spec.AddField(paymentsplit.FieldSplitOriginationUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SplitSitePercent(); ok {
		_spec.SetField(paymentsplit.FieldSplitSitePercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSplitSitePercent(); ok {
		_spec.AddField(paymentsplit.FieldSplitSitePercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SplitSiteUsd(); ok {
		_spec.SetField(paymentsplit.FieldSplitSiteUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSplitSiteUsd(); ok {
		_spec.AddField(paymentsplit.FieldSplitSiteUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SplitDealPercent(); ok {
		_spec.SetField(paymentsplit.FieldSplitDealPercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSplitDealPercent(); ok {
		_spec.AddField(paymentsplit.FieldSplitDealPercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SplitDealUsd(); ok {
		_spec.SetField(paymentsplit.FieldSplitDealUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSplitDealUsd(); ok {
		_spec.AddField(paymentsplit.FieldSplitDealUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SplitBrokerTotal(); ok {
		_spec.SetField(paymentsplit.FieldSplitBrokerTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSplitBrokerTotal(); ok {
		_spec.AddField(paymentsplit.FieldSplitBrokerTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Paid(); ok {
		_spec.SetField(paymentsplit.FieldPaid, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PaidDate(); ok {
		_spec.SetField(paymentsplit.FieldPaidDate, field.TypeTime, value)
	}
	if _u.mutation.PaidDateCleared() {
		_spec.ClearField(paymentsplit.FieldPaidDate, field.TypeTime)
	}
	if _u.mutation.PaymentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   paymentsplit.PaymentTable,
			Columns: []string{paymentsplit.PaymentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(payment.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PaymentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   paymentsplit.PaymentTable,
			Columns: []string{paymentsplit.PaymentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(payment.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BrokerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   paymentsplit.BrokerTable,
			Columns: []string{paymentsplit.BrokerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(broker.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BrokerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   paymentsplit.BrokerTable,
			Columns: []string{paymentsplit.BrokerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(broker.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{paymentsplit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PaymentSplitUpdateOne is the builder for updating a single PaymentSplit entity.
type PaymentSplitUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PaymentSplitMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PaymentSplitUpdateOne) SetUpdatedAt(v time.Time) *PaymentSplitUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPaymentID sets the "payment_id" field.
func (_u *PaymentSplitUpdateOne) SetPaymentID(v uuid.UUID) *PaymentSplitUpdateOne {
	_u.mutation.SetPaymentID(v)
	return _u
}

// SetNillablePaymentID sets the "payment_id" field if the given value is not nil.
func (_u *PaymentSplitUpdateOne) SetNillablePaymentID(v *uuid.UUID) *PaymentSplitUpdateOne {
	if v != nil {
		_u.SetPaymentID(*v)
	}
	return _u
}

// SetBrokerID sets the "broker_id" field.
func (_u *PaymentSplitUpdateOne) SetBrokerID(v uuid.UUID) *PaymentSplitUpdateOne {
	_u.mutation.SetBrokerID(v)
	return _u
}

// SetNillableBrokerID sets the "broker_id" field if the given value is not nil.
func (_u *PaymentSplitUpdateOne) SetNillableBrokerID(v *uuid.UUID) *PaymentSplitUpdateOne {
	if v != nil {
		_u.SetBrokerID(*v)
	}
	return _u
}

// SetSplitOriginationPercent sets the "split_origination_percent" field.
func (_u *PaymentSplitUpdateOne) SetSplitOriginationPercent(v decimal.Decimal) *PaymentSplitUpdateOne {
	_u.mutation.ResetSplitOriginationPercent()
	_u.mutation.SetSplitOriginationPercent(v)
	return _u
}

// SetNillableSplitOriginationPercent sets the "split_origination_percent" field if the given value is not nil.
func (_u *PaymentSplitUpdateOne) SetNillableSplitOriginationPercent(v *decimal.Decimal) *PaymentSplitUpdateOne {
	if v != nil {
		_u.SetSplitOriginationPercent(*v)
	}
	return _u
}

// AddSplitOriginationPercent adds value to the "split_origination_percent" field.
func (_u *PaymentSplitUpdateOne) AddSplitOriginationPercent(v decimal.Decimal) *PaymentSplitUpdateOne {
	_u.mutation.AddSplitOriginationPercent(v)
	return _u
}

// SetSplitOriginationUsd sets the "split_origination_usd" field.
func (_u *PaymentSplitUpdateOne) SetSplitOriginationUsd(v decimal.Decimal) *PaymentSplitUpdateOne {
	_u.mutation.ResetSplitOriginationUsd()
	_u.mutation.SetSplitOriginationUsd(v)
	return _u
}

// SetNillableSplitOriginationUsd sets the "split_origination_usd" field if the given value is not nil.
func (_u *PaymentSplitUpdateOne) SetNillableSplitOriginationUsd(v *decimal.Decimal) *PaymentSplitUpdateOne {
	if v != nil {
		_u.SetSplitOriginationUsd(*v)
	}
	return _u
}

// AddSplitOriginationUsd adds value to the "split_origination_usd" field.
func (_u *PaymentSplitUpdateOne) AddSplitOriginationUsd(v decimal.Decimal) *PaymentSplitUpdateOne {
	_u.mutation.AddSplitOriginationUsd(v)
	return _u
}

// SetSplitSitePercent sets the "split_site_percent" field.
func (_u *PaymentSplitUpdateOne) SetSplitSitePercent(v decimal.Decimal) *PaymentSplitUpdateOne {
	_u.mutation.ResetSplitSitePercent()
	_u.mutation.SetSplitSitePercent(v)
	return _u
}

// SetNillableSplitSitePercent sets the "split_site_percent" field if the given value is not nil.
func (_u *PaymentSplitUpdateOne) SetNillableSplitSitePercent(v *decimal.Decimal) *PaymentSplitUpdateOne {
	if v != nil {
		_u.SetSplitSitePercent(*v)
	}
	return _u
}

// AddSplitSitePercent adds value to the "split_site_percent" field.
func (_u *PaymentSplitUpdateOne) AddSplitSitePercent(v decimal.Decimal) *PaymentSplitUpdateOne {
	_u.mutation.AddSplitSitePercent(v)
	return _u
}

// SetSplitSiteUsd sets the "split_site_usd" field.
func (_u *PaymentSplitUpdateOne) SetSplitSiteUsd(v decimal.Decimal) *PaymentSplitUpdateOne {
	_u.mutation.ResetSplitSiteUsd()
	_u.mutation.SetSplitSiteUsd(v)
	return _u
}

// SetNillableSplitSiteUsd sets the "split_site_usd" field if the given value is not nil.
func (_u *PaymentSplitUpdateOne) SetNillableSplitSiteUsd(v *decimal.Decimal) *PaymentSplitUpdateOne {
	if v != nil {
		_u.SetSplitSiteUsd(*v)
	}
	return _u
}

// AddSplitSiteUsd adds value to the "split_site_usd" field.
func (_u *PaymentSplitUpdateOne) AddSplitSiteUsd(v decimal.Decimal) *PaymentSplitUpdateOne {
	_u.mutation.AddSplitSiteUsd(v)
	return _u
}

// SetSplitDealPercent sets the "split_deal_percent" field.
func (_u *PaymentSplitUpdateOne) SetSplitDealPercent(v decimal.Decimal) *PaymentSplitUpdateOne {
	_u.mutation.ResetSplitDealPercent()
	_u.mutation.SetSplitDealPercent(v)
	return _u
}

// SetNillableSplitDealPercent sets the "split_deal_percent" field if the given value is not nil.
func (_u *PaymentSplitUpdateOne) SetNillableSplitDealPercent(v *decimal.Decimal) *PaymentSplitUpdateOne {
	if v != nil {
		_u.SetSplitDealPercent(*v)
	}
	return _u
}

// AddSplitDealPercent adds value to the "split_deal_percent" field.
func (_u *PaymentSplitUpdateOne) AddSplitDealPercent(v decimal.Decimal) *PaymentSplitUpdateOne {
	_u.mutation.AddSplitDealPercent(v)
	return _u
}

// SetSplitDealUsd sets the "split_deal_usd" field.
func (_u *PaymentSplitUpdateOne) SetSplitDealUsd(v decimal.Decimal) *PaymentSplitUpdateOne {
	_u.mutation.ResetSplitDealUsd()
	_u.mutation.SetSplitDealUsd(v)
	return _u
}

// SetNillableSplitDealUsd sets the "split_deal_usd" field if the given value is not nil.
func (_u *PaymentSplitUpdateOne) SetNillableSplitDealUsd(v *decimal.Decimal) *PaymentSplitUpdateOne {
	if v != nil {
		_u.SetSplitDealUsd(*v)
	}
	return _u
}

// AddSplitDealUsd adds value to the "split_deal_usd" field.
func (_u *PaymentSplitUpdateOne) AddSplitDealUsd(v decimal.Decimal) *PaymentSplitUpdateOne {
	_u.mutation.AddSplitDealUsd(v)
	return _u
}

// SetSplitBrokerTotal sets the "split_broker_total" field.
func (_u *PaymentSplitUpdateOne) SetSplitBrokerTotal(v decimal.Decimal) *PaymentSplitUpdateOne {
	_u.mutation.ResetSplitBrokerTotal()
	_u.mutation.SetSplitBrokerTotal(v)
	return _u
}

// SetNillableSplitBrokerTotal sets the "split_broker_total" field if the given value is not nil.
func (_u *PaymentSplitUpdateOne) SetNillableSplitBrokerTotal(v *decimal.Decimal) *PaymentSplitUpdateOne {
	if v != nil {
		_u.SetSplitBrokerTotal(*v)
	}
	return _u
}

// AddSplitBrokerTotal adds value to the "split_broker_total" field.
func (_u *PaymentSplitUpdateOne) AddSplitBrokerTotal(v decimal.Decimal) *PaymentSplitUpdateOne {
	_u.mutation.AddSplitBrokerTotal(v)
	return _u
}

// SetPaid sets the "paid" field.
func (_u *PaymentSplitUpdateOne) SetPaid(v bool) *PaymentSplitUpdateOne {
	_u.mutation.SetPaid(v)
	return _u
}

// SetNillablePaid sets the "paid" field if the given value is not nil.
func (_u *PaymentSplitUpdateOne) SetNillablePaid(v *bool) *PaymentSplitUpdateOne {
	if v != nil {
		_u.SetPaid(*v)
	}
	return _u
}

// SetPaidDate sets the "paid_date" field.
func (_u *PaymentSplitUpdateOne) SetPaidDate(v time.Time) *PaymentSplitUpdateOne {
	_u.mutation.SetPaidDate(v)
	return _u
}

// SetNillablePaidDate sets the "paid_date" field if the given value is not nil.
func (_u *PaymentSplitUpdateOne) SetNillablePaidDate(v *time.Time) *PaymentSplitUpdateOne {
	if v != nil {
		_u.SetPaidDate(*v)
	}
	return _u
}

// ClearPaidDate clears the value of the "paid_date" field.
func (_u *PaymentSplitUpdateOne) ClearPaidDate() *PaymentSplitUpdateOne {
	_u.mutation.ClearPaidDate()
	return _u
}

// SetPayment sets the "payment" edge to the Payment entity.
func (_u *PaymentSplitUpdateOne) SetPayment(v *Payment) *PaymentSplitUpdateOne {
	return _u.SetPaymentID(v.ID)
}

// SetBroker sets the "broker" edge to the Broker entity.
func (_u *PaymentSplitUpdateOne) SetBroker(v *Broker) *PaymentSplitUpdateOne {
	return _u.SetBrokerID(v.ID)
}

// Mutation returns the PaymentSplitMutation object of the builder.
func (_u *PaymentSplitUpdateOne) Mutation() *PaymentSplitMutation {
	return _u.mutation
}

// ClearPayment clears the "payment" edge to the Payment entity.
func (_u *PaymentSplitUpdateOne) ClearPayment() *PaymentSplitUpdateOne {
	_u.mutation.ClearPayment()
	return _u
}

// ClearBroker clears the "broker" edge to the Broker entity.
func (_u *PaymentSplitUpdateOne) ClearBroker() *PaymentSplitUpdateOne {
	_u.mutation.ClearBroker()
	return _u
}

// Where appends a list predicates to the PaymentSplitUpdate builder.
func (_u *PaymentSplitUpdateOne) Where(ps ...predicate.PaymentSplit) *PaymentSplitUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PaymentSplitUpdateOne) Select(field string, fields ...string) *PaymentSplitUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PaymentSplit entity.
func (_u *PaymentSplitUpdateOne) Save(ctx context.Context) (*PaymentSplit, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PaymentSplitUpdateOne) SaveX(ctx context.Context) *PaymentSplit {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PaymentSplitUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PaymentSplitUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PaymentSplitUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := paymentsplit.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PaymentSplitUpdateOne) check() error {
	if _u.mutation.PaymentCleared() && len(_u.mutation.PaymentIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "PaymentSplit.payment"`)
	}
	if _u.mutation.BrokerCleared() && len(_u.mutation.BrokerIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "PaymentSplit.broker"`)
	}
	return nil
}

func (_u *PaymentSplitUpdateOne) sqlSave(ctx context.Context) (_node *PaymentSplit, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(paymentsplit.Table, paymentsplit.Columns, sqlgraph.NewFieldSpec(paymentsplit.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "PaymentSplit.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, paymentsplit.FieldID)
		for _, f := range fields {
			if !paymentsplit.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != paymentsplit.FieldID {
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
		_spec.SetField(paymentsplit.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.SplitOriginationPercent(); ok {
		_spec.SetField(paymentsplit.FieldSplitOriginationPercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSplitOriginationPercent(); ok {
		_spec.AddField(paymentsplit.FieldSplitOriginationPercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SplitOriginationUsd(); ok {
		_spec.SetField(paymentsplit.FieldSplitOriginationUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSplitOriginationUsd(); ok {
		_spec.AddField(paymentsplit.FieldSplitOriginationUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SplitSitePercent(); ok {
		_spec.SetField(paymentsplit.FieldSplitSitePercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSplitSitePercent(); ok {
		_spec.AddField(paymentsplit.FieldSplitSitePercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SplitSiteUsd(); ok {
		_spec.SetField(paymentsplit.FieldSplitSiteUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSplitSiteUsd(); ok {
		_spec.AddField(paymentsplit.FieldSplitSiteUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SplitDealPercent(); ok {
		_spec.SetField(paymentsplit.FieldSplitDealPercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSplitDealPercent(); ok {
		_spec.AddField(paymentsplit.FieldSplitDealPercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SplitDealUsd(); ok {
		_spec.SetField(paymentsplit.FieldSplitDealUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSplitDealUsd(); ok {
		_spec.AddField(paymentsplit.FieldSplitDealUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SplitBrokerTotal(); ok {
		_spec.SetField(paymentsplit.FieldSplitBrokerTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSplitBrokerTotal(); ok {
		_spec.AddField(paymentsplit.FieldSplitBrokerTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Paid(); ok {
		_spec.SetField(paymentsplit.FieldPaid, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PaidDate(); ok {
		_spec.SetField(paymentsplit.FieldPaidDate, field.TypeTime, value)
	}
	if _u.mutation.PaidDateCleared() {
		_spec.ClearField(paymentsplit.FieldPaidDate, field.TypeTime)
	}
	if _u.mutation.PaymentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   paymentsplit.PaymentTable,
			Columns: []string{paymentsplit.PaymentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(payment.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PaymentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   paymentsplit.PaymentTable,
			Columns: []string{paymentsplit.PaymentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(payment.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BrokerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   paymentsplit.BrokerTable,
			Columns: []string{paymentsplit.BrokerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(broker.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BrokerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   paymentsplit.BrokerTable,
			Columns: []string{paymentsplit.BrokerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(broker.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &PaymentSplit{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{paymentsplit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
