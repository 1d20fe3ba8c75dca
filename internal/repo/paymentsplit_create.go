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
	"github.com/oculusgrp/dealdesk_backend/internal/repo/payment"
	"github.com/oculusgrp/dealdesk_backend/internal/repo/paymentsplit"
	"github.com/shopspring/decimal"
)

// PaymentSplitCreate is the builder for creating a PaymentSplit entity.
type PaymentSplitCreate struct {
	config
	mutation *PaymentSplitMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *PaymentSplitCreate) SetCreatedAt(v time.Time) *PaymentSplitCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PaymentSplitCreate) SetNillableCreatedAt(v *time.Time) *PaymentSplitCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PaymentSplitCreate) SetUpdatedAt(v time.Time) *PaymentSplitCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PaymentSplitCreate) SetNillableUpdatedAt(v *time.Time) *PaymentSplitCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetPaymentID sets the "payment_id" field.
func (_c *PaymentSplitCreate) SetPaymentID(v uuid.UUID) *PaymentSplitCreate {
	_c.mutation.SetPaymentID(v)
	return _c
}

// SetBrokerID sets the "broker_id" field.
func (_c *PaymentSplitCreate) SetBrokerID(v uuid.UUID) *PaymentSplitCreate {
	_c.mutation.SetBrokerID(v)
	return _c
}

// SetSplitOriginationPercent sets the "split_origination_percent" field.
func (_c *PaymentSplitCreate) SetSplitOriginationPercent(v decimal.Decimal) *PaymentSplitCreate {
	_c.mutation.SetSplitOriginationPercent(v)
	return _c
}

// SetSplitOriginationUsd sets the "split_origination_usd" field.
func (_c *PaymentSplitCreate) SetSplitOriginationUsd(v decimal.Decimal) *PaymentSplitCreate {
	_c.mutation.SetSplitOriginationUsd(v)
	return _c
}

// SetSplitSitePercent sets the "split_site_percent" field.
func (_c *PaymentSplitCreate) SetSplitSitePercent(v decimal.Decimal) *PaymentSplitCreate {
	_c.mutation.SetSplitSitePercent(v)
	return _c
}

// SetSplitSiteUsd sets the "split_site_usd" field.
func (_c *PaymentSplitCreate) SetSplitSiteUsd(v decimal.Decimal) *PaymentSplitCreate {
	_c.mutation.SetSplitSiteUsd(v)
	return _c
}

// SetSplitDealPercent sets the "split_deal_percent" field.
func (_c *PaymentSplitCreate) SetSplitDealPercent(v decimal.Decimal) *PaymentSplitCreate {
	_c.mutation.SetSplitDealPercent(v)
	return _c
}

// SetSplitDealUsd sets the "split_deal_usd" field.
func (_c *PaymentSplitCreate) SetSplitDealUsd(v decimal.Decimal) *PaymentSplitCreate {
	_c.mutation.SetSplitDealUsd(v)
	return _c
}

// SetSplitBrokerTotal sets the "split_broker_total" field.
func (_c *PaymentSplitCreate) SetSplitBrokerTotal(v decimal.Decimal) *PaymentSplitCreate {
	_c.mutation.SetSplitBrokerTotal(v)
	return _c
}

// SetPaid sets the "paid" field.
func (_c *PaymentSplitCreate) SetPaid(v bool) *PaymentSplitCreate {
	_c.mutation.SetPaid(v)
	return _c
}

// SetNillablePaid sets the "paid" field if the given value is not nil.
func (_c *PaymentSplitCreate) SetNillablePaid(v *bool) *PaymentSplitCreate {
	if v != nil {
		_c.SetPaid(*v)
	}
	return _c
}

// SetPaidDate sets the "paid_date" field.
func (_c *PaymentSplitCreate) SetPaidDate(v time.Time) *PaymentSplitCreate {
	_c.mutation.SetPaidDate(v)
	return _c
}

// SetNillablePaidDate sets the "paid_date" field if the given value is not nil.
func (_c *PaymentSplitCreate) SetNillablePaidDate(v *time.Time) *PaymentSplitCreate {
	if v != nil {
		_c.SetPaidDate(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PaymentSplitCreate) SetID(v uuid.UUID) *PaymentSplitCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PaymentSplitCreate) SetNillableID(v *uuid.UUID) *PaymentSplitCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetPayment sets the "payment" edge to the Payment entity.
func (_c *PaymentSplitCreate) SetPayment(v *Payment) *PaymentSplitCreate {
	return _c.SetPaymentID(v.ID)
}

// SetBroker sets the "broker" edge to the Broker entity.
func (_c *PaymentSplitCreate) SetBroker(v *Broker) *PaymentSplitCreate {
	return _c.SetBrokerID(v.ID)
}

// Mutation returns the PaymentSplitMutation object of the builder.
func (_c *PaymentSplitCreate) Mutation() *PaymentSplitMutation {
	return _c.mutation
}

// Save creates the PaymentSplit in the database.
func (_c *PaymentSplitCreate) Save(ctx context.Context) (*PaymentSplit, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PaymentSplitCreate) SaveX(ctx context.Context) *PaymentSplit {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PaymentSplitCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PaymentSplitCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PaymentSplitCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := paymentsplit.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := paymentsplit.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Paid(); !ok {
		v := paymentsplit.DefaultPaid
		_c.mutation.SetPaid(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := paymentsplit.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PaymentSplitCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "PaymentSplit.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "PaymentSplit.updated_at"`)}
	}
	if _, ok := _c.mutation.PaymentID(); !ok {
		return &ValidationError{Name: "payment_id", err: errors.New(`repo: missing required field "PaymentSplit.payment_id"`)}
	}
	if _, ok := _c.mutation.BrokerID(); !ok {
		return &ValidationError{Name: "broker_id", err: errors.New(`repo: missing required field "PaymentSplit.broker_id"`)}
	}
	if _, ok := _c.mutation.SplitOriginationPercent(); !ok {
		return &ValidationError{Name: "split_origination_percent", err: errors.New(`repo: missing required field "PaymentSplit.split_origination_percent"`)}
	}
	if _, ok := _c.mutation.SplitOriginationUsd(); !ok {
		return &ValidationError{Name: "split_origination_usd", err: errors.New(`repo: missing required field "PaymentSplit.split_origination_usd"`)}
	}
	if _, ok := _c.mutation.SplitSitePercent(); !ok {
		return &ValidationError{Name: "split_site_percent", err: errors.New(`repo: missing required field "PaymentSplit.split_site_percent"`)}
	}
	if _, ok := _c.mutation.SplitSiteUsd(); !ok {
		return &ValidationError{Name: "split_site_usd", err: errors.New(`repo: missing required field "PaymentSplit.split_site_usd"`)}
	}
	if _, ok := _c.mutation.SplitDealPercent(); !ok {
		return &ValidationError{Name: "split_deal_percent", err: errors.New(`repo: missing required field "PaymentSplit.split_deal_percent"`)}
	}
	if _, ok := _c.mutation.SplitDealUsd(); !ok {
		return &ValidationError{Name: "split_deal_usd", err: errors.New(`repo: missing required field "PaymentSplit.split_deal_usd"`)}
	}
	if _, ok := _c.mutation.SplitBrokerTotal(); !ok {
		return &ValidationError{Name: "split_broker_total", err: errors.New(`repo: missing required field "PaymentSplit.split_broker_total"`)}
	}
	if _, ok := _c.mutation.Paid(); !ok {
		return &ValidationError{Name: "paid", err: errors.New(`repo: missing required field "PaymentSplit.paid"`)}
	}
	if len(_c.mutation.PaymentIDs()) == 0 {
		return &ValidationError{Name: "payment", err: errors.New(`repo: missing required edge "PaymentSplit.payment"`)}
	}
	if len(_c.mutation.BrokerIDs()) == 0 {
		return &ValidationError{Name: "broker", err: errors.New(`repo: missing required edge "PaymentSplit.broker"`)}
	}
	return nil
}

func (_c *PaymentSplitCreate) sqlSave(ctx context.Context) (*PaymentSplit, error) {
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

func (_c *PaymentSplitCreate) createSpec() (*PaymentSplit, *sqlgraph.CreateSpec) {
	var (
		_node = &PaymentSplit{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(paymentsplit.Table, sqlgraph.NewFieldSpec(paymentsplit.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(paymentsplit.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(paymentsplit.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.SplitOriginationPercent(); ok {
		_spec.SetField(paymentsplit.FieldSplitOriginationPercent, field.TypeFloat64, value)
		_node.SplitOriginationPercent = value
	}
	if value, ok := _c.mutation.SplitOriginationUsd(); ok {
		_spec.SetField(paymentsplit.FieldSplitOriginationUsd, field.TypeFloat64, value)
		_node.SplitOriginationUsd = value
	}
	if value, ok := _c.mutation.SplitSitePercent(); ok {
		_spec.SetField(paymentsplit.FieldSplitSitePercent, field.TypeFloat64, value)
		_node.SplitSitePercent = value
	}
	if value, ok := _c.mutation.SplitSiteUsd(); ok {
		_spec.SetField(paymentsplit.FieldSplitSiteUsd, field.TypeFloat64, value)
		_node.SplitSiteUsd = value
	}
	if value, ok := _c.mutation.SplitDealPercent(); ok {
		_spec.SetField(paymentsplit.FieldSplitDealPercent, field.TypeFloat64, value)
		_node.SplitDealPercent = value
	}
	if value, ok := _c.mutation.SplitDealUsd(); ok {
		_spec.SetField(paymentsplit.FieldSplitDealUsd, field.TypeFloat64, value)
		_node.SplitDealUsd = value
	}
	if value, ok := _c.mutation.SplitBrokerTotal(); ok {
		_spec.SetField(paymentsplit.FieldSplitBrokerTotal, field.TypeFloat64, value)
		_node.SplitBrokerTotal = value
	}
	if value, ok := _c.mutation.Paid(); ok {
		_spec.SetField(paymentsplit.FieldPaid, field.TypeBool, value)
		_node.Paid = value
	}
	if value, ok := _c.mutation.PaidDate(); ok {
		_spec.SetField(paymentsplit.FieldPaidDate, field.TypeTime, value)
		_node.PaidDate = &value
	}
	if nodes := _c.mutation.PaymentIDs(); len(nodes) > 0 {
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
		_node.PaymentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.BrokerIDs(); len(nodes) > 0 {
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
		_node.BrokerID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PaymentSplit.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PaymentSplitUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PaymentSplitCreate) OnConflict(opts ...sql.ConflictOption) *PaymentSplitUpsertOne {
	_c.conflict = opts
	return &PaymentSplitUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PaymentSplit.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PaymentSplitCreate) OnConflictColumns(columns ...string) *PaymentSplitUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PaymentSplitUpsertOne{
		create: _c,
	}
}

type (
	// PaymentSplitUpsertOne is the builder for "upsert"-ing
	//  one PaymentSplit node.
	PaymentSplitUpsertOne struct {
		create *PaymentSplitCreate
	}

	// PaymentSplitUpsert is the "OnConflict" setter.
	PaymentSplitUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *PaymentSplitUpsert) SetUpdatedAt(v time.Time) *PaymentSplitUpsert {
	u.Set(paymentsplit.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PaymentSplitUpsert) UpdateUpdatedAt() *PaymentSplitUpsert {
	u.SetExcluded(paymentsplit.FieldUpdatedAt)
	return u
}

// SetPaymentID sets the "payment_id" field.
func (u *PaymentSplitUpsert) SetPaymentID(v uuid.UUID) *PaymentSplitUpsert {
	u.Set(paymentsplit.FieldPaymentID, v)
	return u
}

// UpdatePaymentID sets the "payment_id" field to the value that was provided on create.
func (u *PaymentSplitUpsert) UpdatePaymentID() *PaymentSplitUpsert {
	u.SetExcluded(paymentsplit.FieldPaymentID)
	return u
}

// SetBrokerID sets the "broker_id" field.
func (u *PaymentSplitUpsert) SetBrokerID(v uuid.UUID) *PaymentSplitUpsert {
	u.Set(paymentsplit.FieldBrokerID, v)
	return u
}

// UpdateBrokerID sets the "broker_id" field to the value that was provided on create.
func (u *PaymentSplitUpsert) UpdateBrokerID() *PaymentSplitUpsert {
	u.SetExcluded(paymentsplit.FieldBrokerID)
	return u
}

// SetSplitOriginationPercent sets the "split_origination_percent" field.
func (u *PaymentSplitUpsert) SetSplitOriginationPercent(v decimal.Decimal) *PaymentSplitUpsert {
	u.Set(paymentsplit.FieldSplitOriginationPercent, v)
	return u
}

// UpdateSplitOriginationPercent sets the "split_origination_percent" field to the value that was provided on create.
func (u *PaymentSplitUpsert) UpdateSplitOriginationPercent() *PaymentSplitUpsert {
	u.SetExcluded(paymentsplit.FieldSplitOriginationPercent)
	return u
}

// AddSplitOriginationPercent adds v to the "split_origination_percent" field.
func (u *PaymentSplitUpsert) AddSplitOriginationPercent(v decimal.Decimal) *PaymentSplitUpsert {
	u.Add(paymentsplit.FieldSplitOriginationPercent, v)
	return u
}

// SetSplitOriginationUsd sets the "split_origination_usd" field.
func (u *PaymentSplitUpsert) SetSplitOriginationUsd(v decimal.Decimal) *PaymentSplitUpsert {
	u.Set(paymentsplit.FieldSplitOriginationUsd, v)
	return u
}

// UpdateSplitOriginationUsd sets the "split_origination_usd" field to the value that was provided on create.
func (u *PaymentSplitUpsert) UpdateSplitOriginationUsd() *PaymentSplitUpsert {
	u.SetExcluded(paymentsplit.FieldSplitOriginationUsd)
	return u
}

// AddSplitOriginationUsd adds v to the "split_origination_usd" field.
func (u *PaymentSplitUpsert) AddSplitOriginationUsd(v decimal.Decimal) *PaymentSplitUpsert {
	u.Add(paymentsplit.FieldSplitOriginationUsd, v)
	return u
}

// SetSplitSitePercent sets the "split_site_percent" field.
func (u *PaymentSplitUpsert) SetSplitSitePercent(v decimal.Decimal) *PaymentSplitUpsert {
	u.Set(paymentsplit.FieldSplitSitePercent, v)
	return u
}

// UpdateSplitSitePercent sets the "split_site_percent" field to the value that was provided on create.
func (u *PaymentSplitUpsert) UpdateSplitSitePercent() *PaymentSplitUpsert {
	u.SetExcluded(paymentsplit.FieldSplitSitePercent)
	return u
}

// AddSplitSitePercent adds v to the "split_site_percent" field.
func (u *PaymentSplitUpsert) AddSplitSitePercent(v decimal.Decimal) *PaymentSplitUpsert {
	u.Add(paymentsplit.FieldSplitSitePercent, v)
	return u
}

// SetSplitSiteUsd sets the "split_site_usd" field.
func (u *PaymentSplitUpsert) SetSplitSiteUsd(v decimal.Decimal) *PaymentSplitUpsert {
	u.Set(paymentsplit.FieldSplitSiteUsd, v)
	return u
}

// UpdateSplitSiteUsd sets the "split_site_usd" field to the value that was provided on create.
func (u *PaymentSplitUpsert) UpdateSplitSiteUsd() *PaymentSplitUpsert {
	u.SetExcluded(paymentsplit.FieldSplitSiteUsd)
	return u
}

// AddSplitSiteUsd adds v to the "split_site_usd" field.
func (u *PaymentSplitUpsert) AddSplitSiteUsd(v decimal.Decimal) *PaymentSplitUpsert {
	u.Add(paymentsplit.FieldSplitSiteUsd, v)
	return u
}

// SetSplitDealPercent sets the "split_deal_percent" field.
func (u *PaymentSplitUpsert) SetSplitDealPercent(v decimal.Decimal) *PaymentSplitUpsert {
	u.Set(paymentsplit.FieldSplitDealPercent, v)
	return u
}

// UpdateSplitDealPercent sets the "split_deal_percent" field to the value that was provided on create.
func (u *PaymentSplitUpsert) UpdateSplitDealPercent() *PaymentSplitUpsert {
	u.SetExcluded(paymentsplit.FieldSplitDealPercent)
	return u
}

// AddSplitDealPercent adds v to the "split_deal_percent" field.
func (u *PaymentSplitUpsert) AddSplitDealPercent(v decimal.Decimal) *PaymentSplitUpsert {
	u.Add(paymentsplit.FieldSplitDealPercent, v)
	return u
}

// SetSplitDealUsd sets the "split_deal_usd" field.
func (u *PaymentSplitUpsert) SetSplitDealUsd(v decimal.Decimal) *PaymentSplitUpsert {
	u.Set(paymentsplit.FieldSplitDealUsd, v)
	return u
}

// UpdateSplitDealUsd sets the "split_deal_usd" field to the value that was provided on create.
func (u *PaymentSplitUpsert) UpdateSplitDealUsd() *PaymentSplitUpsert {
	u.SetExcluded(paymentsplit.FieldSplitDealUsd)
	return u
}

// AddSplitDealUsd adds v to the "split_deal_usd" field.
func (u *PaymentSplitUpsert) AddSplitDealUsd(v decimal.Decimal) *PaymentSplitUpsert {
	u.Add(paymentsplit.FieldSplitDealUsd, v)
	return u
}

// SetSplitBrokerTotal sets the "split_broker_total" field.
func (u *PaymentSplitUpsert) SetSplitBrokerTotal(v decimal.Decimal) *PaymentSplitUpsert {
	u.Set(paymentsplit.FieldSplitBrokerTotal, v)
	return u
}

// UpdateSplitBrokerTotal sets the "split_broker_total" field to the value that was provided on create.
func (u *PaymentSplitUpsert) UpdateSplitBrokerTotal() *PaymentSplitUpsert {
	u.SetExcluded(paymentsplit.FieldSplitBrokerTotal)
	return u
}

// AddSplitBrokerTotal adds v to the "split_broker_total" field.
func (u *PaymentSplitUpsert) AddSplitBrokerTotal(v decimal.Decimal) *PaymentSplitUpsert {
	u.Add(paymentsplit.FieldSplitBrokerTotal, v)
	return u
}

// SetPaid sets the "paid" field.
func (u *PaymentSplitUpsert) SetPaid(v bool) *PaymentSplitUpsert {
	u.Set(paymentsplit.FieldPaid, v)
	return u
}

// UpdatePaid sets the "paid" field to the value that was provided on create.
func (u *PaymentSplitUpsert) UpdatePaid() *PaymentSplitUpsert {
	u.SetExcluded(paymentsplit.FieldPaid)
	return u
}

// SetPaidDate sets the "paid_date" field.
func (u *PaymentSplitUpsert) SetPaidDate(v time.Time) *PaymentSplitUpsert {
	u.Set(paymentsplit.FieldPaidDate, v)
	return u
}

// UpdatePaidDate sets the "paid_date" field to the value that was provided on create.
func (u *PaymentSplitUpsert) UpdatePaidDate() *PaymentSplitUpsert {
	u.SetExcluded(paymentsplit.FieldPaidDate)
	return u
}

// ClearPaidDate clears the value of the "paid_date" field.
func (u *PaymentSplitUpsert) ClearPaidDate() *PaymentSplitUpsert {
	u.SetNull(paymentsplit.FieldPaidDate)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.PaymentSplit.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(paymentsplit.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PaymentSplitUpsertOne) UpdateNewValues() *PaymentSplitUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(paymentsplit.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(paymentsplit.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PaymentSplit.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PaymentSplitUpsertOne) Ignore() *PaymentSplitUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PaymentSplitUpsertOne) DoNothing() *PaymentSplitUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PaymentSplitCreate.OnConflict
// documentation for more info.
func (u *PaymentSplitUpsertOne) Update(set func(*PaymentSplitUpsert)) *PaymentSplitUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PaymentSplitUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PaymentSplitUpsertOne) SetUpdatedAt(v time.Time) *PaymentSplitUpsertOne {
	return u.Update(func(s *PaymentSplitUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PaymentSplitUpsertOne) UpdateUpdatedAt() *PaymentSplitUpsertOne {
	return u.Update(func(s *PaymentSplitUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPaymentID sets the "payment_id" field.
func (u *PaymentSplitUpsertOne) SetPaymentID(v uuid.UUID) *PaymentSplitUpsertOne {
	return u.Update(func(s *PaymentSplitUpsert) {
		s.SetPaymentID(v)
	})
}

// UpdatePaymentID sets the "payment_id" field to the value that was provided on create.
func (u *PaymentSplitUpsertOne) UpdatePaymentID() *PaymentSplitUpsertOne {
	return u.Update(func(s *PaymentSplitUpsert) {
		s.UpdatePaymentID()
	})
}

// SetBrokerID sets the "broker_id" field.
func (u *PaymentSplitUpsertOne) SetBrokerID(v uuid.UUID) *PaymentSplitUpsertOne {
	return u.Update(func(s *PaymentSplitUpsert) {
		s.SetBrokerID(v)
	})
}

// UpdateBrokerID sets the "broker_id" field to the value that was provided on create.
func (u *PaymentSplitUpsertOne) UpdateBrokerID() *PaymentSplitUpsertOne {
	return u.Update(func(s *PaymentSplitUpsert) {
		s.UpdateBrokerID()
	})
}

// SetSplitOriginationPercent sets the "split_origination_percent" field.
func (u *PaymentSplitUpsertOne) SetSplitOriginationPercent(v decimal.Decimal) *PaymentSplitUpsertOne {
	return u.Update(func(s *PaymentSplitUpsert) {
		s.SetSplitOriginationPercent(v)
	})
}

// AddSplitOriginationPercent adds v to the "split_origination_percent" field.
func (u *PaymentSplitUpsertOne) AddSplitOriginationPercent(v decimal.Decimal) *PaymentSplitUpsertOne {
	return u.Update(func(s *PaymentSplitUpsert) {
		s.AddSplitOriginationPercent(v)
	})
}

// UpdateSplitOriginationPercent sets the "split_origination_percent" field to the value that was provided on create.
func (u *PaymentSplitUpsertOne) UpdateSplitOriginationPercent() *PaymentSplitUpsertOne {
	return u.Update(func(s *PaymentSplitUpsert) {
		s.UpdateSplitOriginationPercent()
	})
}

// SetSplitOriginationUsd sets the "split_origination_usd" field.
func (u *PaymentSplitUpsertOne) SetSplitOriginationUsd(v decimal.Decimal) *PaymentSplitUpsertOne {
	return u.Update(func(s *PaymentSplitUpsert) {
		s.SetSplitOriginationUsd(v)
	})
}

// AddSplitOriginationUsd adds v to the "split_origination_usd" field.
func (u *PaymentSplitUpsertOne) AddSplitOriginationUsd(v decimal.Decimal) *PaymentSplitUpsertOne {
	return u.Update(func(s *PaymentSplitUpsert) {
		s.AddSplitOriginationUsd(v)
	})
}

// UpdateSplitOriginationUsd sets the "split_origination_usd" field to the value that was provided on create.
func (u *PaymentSplitUpsertOne) UpdateSplitOriginationUsd() *PaymentSplitUpsertOne {
	return u.Update(func(s *PaymentSplitUpsert) {
		s.UpdateSplitOriginationUsd()
	})
}

// SetSplitSitePercent sets the "split_site_percent" field.
func (u *PaymentSplitUpsertOne) SetSplitSitePercent(v decimal.Decimal) *PaymentSplitUpsertOne {
	return u.Update(func(s *PaymentSplitUpsert) {
		s.SetSplitSitePercent(v)
	})
}

// AddSplitSitePercent adds v to the "split_site_percent" field.
func (u *PaymentSplitUpsertOne) AddSplitSitePercent(v decimal.Decimal) *PaymentSplitUpsertOne {
	return u.Update(func(s *PaymentSplitUpsert) {
		s.AddSplitSitePercent(v)
	})
}

// UpdateSplitSitePercent sets the "split_site_percent" field to the value that was provided on create.
func (u *PaymentSplitUpsertOne) UpdateSplitSitePercent() *PaymentSplitUpsertOne {
	return u.Update(func(s *PaymentSplitUpsert) {
		s.UpdateSplitSitePercent()
	})
}

// SetSplitSiteUsd sets the "split_site_usd" field.
func (u *PaymentSplitUpsertOne) SetSplitSiteUsd(v decimal.Decimal) *PaymentSplitUpsertOne {
	return u.Update(func(s *PaymentSplitUpsert) {
		s.SetSplitSiteUsd(v)
	})
}

// AddSplitSiteUsd adds v to the "split_site_usd" field.
func (u *PaymentSplitUpsertOne) AddSplitSiteUsd(v decimal.Decimal) *PaymentSplitUpsertOne {
	return u.Update(func(s *PaymentSplitUpsert) {
		s.AddSplitSiteUsd(v)
	})
}

// UpdateSplitSiteUsd sets the "split_site_usd" field to the value that was provided on create.
func (u *PaymentSplitUpsertOne) UpdateSplitSiteUsd() *PaymentSplitUpsertOne {
	return u.Update(func(s *PaymentSplitUpsert) {
		s.UpdateSplitSiteUsd()
	})
}

// SetSplitDealPercent sets the "split_deal_percent" field.
func (u *PaymentSplitUpsertOne) SetSplitDealPercent(v decimal.Decimal) *PaymentSplitUpsertOne {
	return u.Update(func(s *PaymentSplitUpsert) {
		s.SetSplitDealPercent(v)
	})
}

// AddSplitDealPercent adds v to the "split_deal_percent" field.
func (u *PaymentSplitUpsertOne) AddSplitDealPercent(v decimal.Decimal) *PaymentSplitUpsertOne {
	return u.Update(func(s *PaymentSplitUpsert) {
		s.AddSplitDealPercent(v)
	})
}

// UpdateSplitDealPercent sets the "split_deal_percent" field to the value that was provided on create.
func (u *PaymentSplitUpsertOne) UpdateSplitDealPercent() *PaymentSplitUpsertOne {
	return u.Update(func(s *PaymentSplitUpsert) {
		s.UpdateSplitDealPercent()
	})
}

// SetSplitDealUsd sets the "split_deal_usd" field.
func (u *PaymentSplitUpsertOne) SetSplitDealUsd(v decimal.Decimal) *PaymentSplitUpsertOne {
	return u.Update(func(s *PaymentSplitUpsert) {
		s.SetSplitDealUsd(v)
	})
}

// AddSplitDealUsd adds v to the "split_deal_usd" field.
func (u *PaymentSplitUpsertOne) AddSplitDealUsd(v decimal.Decimal) *PaymentSplitUpsertOne {
	return u.Update(func(s *PaymentSplitUpsert) {
		s.AddSplitDealUsd(v)
	})
}

// UpdateSplitDealUsd sets the "split_deal_usd" field to the value that was provided on create.
func (u *PaymentSplitUpsertOne) UpdateSplitDealUsd() *PaymentSplitUpsertOne {
	return u.Update(func(s *PaymentSplitUpsert) {
		s.UpdateSplitDealUsd()
	})
}

// SetSplitBrokerTotal sets the "split_broker_total" field.
func (u *PaymentSplitUpsertOne) SetSplitBrokerTotal(v decimal.Decimal) *PaymentSplitUpsertOne {
	return u.Update(func(s *PaymentSplitUpsert) {
		s.SetSplitBrokerTotal(v)
	})
}

// AddSplitBrokerTotal adds v to the "split_broker_total" field.
func (u *PaymentSplitUpsertOne) AddSplitBrokerTotal(v decimal.Decimal) *PaymentSplitUpsertOne {
	return u.Update(func(s *PaymentSplitUpsert) {
		s.AddSplitBrokerTotal(v)
	})
}

// UpdateSplitBrokerTotal sets the "split_broker_total" field to the value that was provided on create.
func (u *PaymentSplitUpsertOne) UpdateSplitBrokerTotal() *PaymentSplitUpsertOne {
	return u.Update(func(s *PaymentSplitUpsert) {
		s.UpdateSplitBrokerTotal()
	})
}

// SetPaid sets the "paid" field.
func (u *PaymentSplitUpsertOne) SetPaid(v bool) *PaymentSplitUpsertOne {
	return u.Update(func(s *PaymentSplitUpsert) {
		s.SetPaid(v)
	})
}

// UpdatePaid sets the "paid" field to the value that was provided on create.
func (u *PaymentSplitUpsertOne) UpdatePaid() *PaymentSplitUpsertOne {
	return u.Update(func(s *PaymentSplitUpsert) {
		s.UpdatePaid()
	})
}

// SetPaidDate sets the "paid_date" field.
func (u *PaymentSplitUpsertOne) SetPaidDate(v time.Time) *PaymentSplitUpsertOne {
	return u.Update(func(s *PaymentSplitUpsert) {
		s.SetPaidDate(v)
	})
}

// UpdatePaidDate sets the "paid_date" field to the value that was provided on create.
func (u *PaymentSplitUpsertOne) UpdatePaidDate() *PaymentSplitUpsertOne {
	return u.Update(func(s *PaymentSplitUpsert) {
		s.UpdatePaidDate()
	})
}

// ClearPaidDate clears the value of the "paid_date" field.
func (u *PaymentSplitUpsertOne) ClearPaidDate() *PaymentSplitUpsertOne {
	return u.Update(func(s *PaymentSplitUpsert) {
		s.ClearPaidDate()
	})
}

// Exec executes the query.
func (u *PaymentSplitUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PaymentSplitCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PaymentSplitUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PaymentSplitUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: PaymentSplitUpsertOne.ID is not supported by MySQL driver. Use PaymentSplitUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PaymentSplitUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PaymentSplitCreateBulk is the builder for creating many PaymentSplit entities in bulk.
type PaymentSplitCreateBulk struct {
	config
	err      error
	builders []*PaymentSplitCreate
	conflict []sql.ConflictOption
}

// Save creates the PaymentSplit entities in the database.
func (_c *PaymentSplitCreateBulk) Save(ctx context.Context) ([]*PaymentSplit, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PaymentSplit, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PaymentSplitMutation)
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
func (_c *PaymentSplitCreateBulk) SaveX(ctx context.Context) []*PaymentSplit {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PaymentSplitCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PaymentSplitCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PaymentSplit.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PaymentSplitUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PaymentSplitCreateBulk) OnConflict(opts ...sql.ConflictOption) *PaymentSplitUpsertBulk {
	_c.conflict = opts
	return &PaymentSplitUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PaymentSplit.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PaymentSplitCreateBulk) OnConflictColumns(columns ...string) *PaymentSplitUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PaymentSplitUpsertBulk{
		create: _c,
	}
}

// PaymentSplitUpsertBulk is the builder for "upsert"-ing
// a bulk of PaymentSplit nodes.
type PaymentSplitUpsertBulk struct {
	create *PaymentSplitCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PaymentSplit.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(paymentsplit.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PaymentSplitUpsertBulk) UpdateNewValues() *PaymentSplitUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(paymentsplit.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(paymentsplit.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PaymentSplit.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PaymentSplitUpsertBulk) Ignore() *PaymentSplitUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PaymentSplitUpsertBulk) DoNothing() *PaymentSplitUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PaymentSplitCreateBulk.OnConflict
// documentation for more info.
func (u *PaymentSplitUpsertBulk) Update(set func(*PaymentSplitUpsert)) *PaymentSplitUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PaymentSplitUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PaymentSplitUpsertBulk) SetUpdatedAt(v time.Time) *PaymentSplitUpsertBulk {
	return u.Update(func(s *PaymentSplitUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PaymentSplitUpsertBulk) UpdateUpdatedAt() *PaymentSplitUpsertBulk {
	return u.Update(func(s *PaymentSplitUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPaymentID sets the "payment_id" field.
func (u *PaymentSplitUpsertBulk) SetPaymentID(v uuid.UUID) *PaymentSplitUpsertBulk {
	return u.Update(func(s *PaymentSplitUpsert) {
		s.SetPaymentID(v)
	})
}

// UpdatePaymentID sets the "payment_id" field to the value that was provided on create.
func (u *PaymentSplitUpsertBulk) UpdatePaymentID() *PaymentSplitUpsertBulk {
	return u.Update(func(s *PaymentSplitUpsert) {
		s.UpdatePaymentID()
	})
}

// SetBrokerID sets the "broker_id" field.
func (u *PaymentSplitUpsertBulk) SetBrokerID(v uuid.UUID) *PaymentSplitUpsertBulk {
	return u.Update(func(s *PaymentSplitUpsert) {
		s.SetBrokerID(v)
	})
}

// UpdateBrokerID sets the "broker_id" field to the value that was provided on create.
func (u *PaymentSplitUpsertBulk) UpdateBrokerID() *PaymentSplitUpsertBulk {
	return u.Update(func(s *PaymentSplitUpsert) {
		s.UpdateBrokerID()
	})
}

// SetSplitOriginationPercent sets the "split_origination_percent" field.
func (u *PaymentSplitUpsertBulk) SetSplitOriginationPercent(v decimal.Decimal) *PaymentSplitUpsertBulk {
	return u.Update(func(s *PaymentSplitUpsert) {
		s.SetSplitOriginationPercent(v)
	})
}

// AddSplitOriginationPercent adds v to the "split_origination_percent" field.
func (u *PaymentSplitUpsertBulk) AddSplitOriginationPercent(v decimal.Decimal) *PaymentSplitUpsertBulk {
	return u.Update(func(s *PaymentSplitUpsert) {
		s.AddSplitOriginationPercent(v)
	})
}

// UpdateSplitOriginationPercent sets the "split_origination_percent" field to the value that was provided on create.
func (u *PaymentSplitUpsertBulk) UpdateSplitOriginationPercent() *PaymentSplitUpsertBulk {
	return u.Update(func(s *PaymentSplitUpsert) {
		s.UpdateSplitOriginationPercent()
	})
}

// SetSplitOriginationUsd sets the "split_origination_usd" field.
func (u *PaymentSplitUpsertBulk) SetSplitOriginationUsd(v decimal.Decimal) *PaymentSplitUpsertBulk {
	return u.Update(func(s *PaymentSplitUpsert) {
		s.SetSplitOriginationUsd(v)
	})
}

// AddSplitOriginationUsd adds v to the "split_origination_usd" field.
func (u *PaymentSplitUpsertBulk) AddSplitOriginationUsd(v decimal.Decimal) *PaymentSplitUpsertBulk {
	return u.Update(func(s *PaymentSplitUpsert) {
		s.AddSplitOriginationUsd(v)
	})
}

// UpdateSplitOriginationUsd sets the "split_origination_usd" field to the value that was provided on create.
func (u *PaymentSplitUpsertBulk) UpdateSplitOriginationUsd() *PaymentSplitUpsertBulk {
	return u.Update(func(s *PaymentSplitUpsert) {
		s.UpdateSplitOriginationUsd()
	})
}

// SetSplitSitePercent sets the "split_site_percent" field.
func (u *PaymentSplitUpsertBulk) SetSplitSitePercent(v decimal.Decimal) *PaymentSplitUpsertBulk {
	return u.Update(func(s *PaymentSplitUpsert) {
		s.SetSplitSitePercent(v)
	})
}

// AddSplitSitePercent adds v to the "split_site_percent" field.
func (u *PaymentSplitUpsertBulk) AddSplitSitePercent(v decimal.Decimal) *PaymentSplitUpsertBulk {
	return u.Update(func(s *PaymentSplitUpsert) {
		s.AddSplitSitePercent(v)
	})
}

// UpdateSplitSitePercent sets the "split_site_percent" field to the value that was provided on create.
func (u *PaymentSplitUpsertBulk) UpdateSplitSitePercent() *PaymentSplitUpsertBulk {
	return u.Update(func(s *PaymentSplitUpsert) {
		s.UpdateSplitSitePercent()
	})
}

// SetSplitSiteUsd sets the "split_site_usd" field.
func (u *PaymentSplitUpsertBulk) SetSplitSiteUsd(v decimal.Decimal) *PaymentSplitUpsertBulk {
	return u.Update(func(s *PaymentSplitUpsert) {
		s.SetSplitSiteUsd(v)
	})
}

// AddSplitSiteUsd adds v to the "split_site_usd" field.
func (u *PaymentSplitUpsertBulk) AddSplitSiteUsd(v decimal.Decimal) *PaymentSplitUpsertBulk {
	return u.Update(func(s *PaymentSplitUpsert) {
		s.AddSplitSiteUsd(v)
	})
}

// UpdateSplitSiteUsd sets the "split_site_usd" field to the value that was provided on create.
func (u *PaymentSplitUpsertBulk) UpdateSplitSiteUsd() *PaymentSplitUpsertBulk {
	return u.Update(func(s *PaymentSplitUpsert) {
		s.UpdateSplitSiteUsd()
	})
}

// SetSplitDealPercent sets the "split_deal_percent" field.
func (u *PaymentSplitUpsertBulk) SetSplitDealPercent(v decimal.Decimal) *PaymentSplitUpsertBulk {
	return u.Update(func(s *PaymentSplitUpsert) {
		s.SetSplitDealPercent(v)
	})
}

// AddSplitDealPercent adds v to the "split_deal_percent" field.
func (u *PaymentSplitUpsertBulk) AddSplitDealPercent(v decimal.Decimal) *PaymentSplitUpsertBulk {
	return u.Update(func(s *PaymentSplitUpsert) {
		s.AddSplitDealPercent(v)
	})
}

// UpdateSplitDealPercent sets the "split_deal_percent" field to the value that was provided on create.
func (u *PaymentSplitUpsertBulk) UpdateSplitDealPercent() *PaymentSplitUpsertBulk {
	return u.Update(func(s *PaymentSplitUpsert) {
		s.UpdateSplitDealPercent()
	})
}

// SetSplitDealUsd sets the "split_deal_usd" field.
func (u *PaymentSplitUpsertBulk) SetSplitDealUsd(v decimal.Decimal) *PaymentSplitUpsertBulk {
	return u.Update(func(s *PaymentSplitUpsert) {
		s.SetSplitDealUsd(v)
	})
}

// AddSplitDealUsd adds v to the "split_deal_usd" field.
func (u *PaymentSplitUpsertBulk) AddSplitDealUsd(v decimal.Decimal) *PaymentSplitUpsertBulk {
	return u.Update(func(s *PaymentSplitUpsert) {
		s.AddSplitDealUsd(v)
	})
}

// UpdateSplitDealUsd sets the "split_deal_usd" field to the value that was provided on create.
func (u *PaymentSplitUpsertBulk) UpdateSplitDealUsd() *PaymentSplitUpsertBulk {
	return u.Update(func(s *PaymentSplitUpsert) {
		s.UpdateSplitDealUsd()
	})
}

// SetSplitBrokerTotal sets the "split_broker_total" field.
func (u *PaymentSplitUpsertBulk) SetSplitBrokerTotal(v decimal.Decimal) *PaymentSplitUpsertBulk {
	return u.Update(func(s *PaymentSplitUpsert) {
		s.SetSplitBrokerTotal(v)
	})
}

// AddSplitBrokerTotal adds v to the "split_broker_total" field.
func (u *PaymentSplitUpsertBulk) AddSplitBrokerTotal(v decimal.Decimal) *PaymentSplitUpsertBulk {
	return u.Update(func(s *PaymentSplitUpsert) {
		s.AddSplitBrokerTotal(v)
	})
}

// UpdateSplitBrokerTotal sets the "split_broker_total" field to the value that was provided on create.
func (u *PaymentSplitUpsertBulk) UpdateSplitBrokerTotal() *PaymentSplitUpsertBulk {
	return u.Update(func(s *PaymentSplitUpsert) {
		s.UpdateSplitBrokerTotal()
	})
}

// SetPaid sets the "paid" field.
func (u *PaymentSplitUpsertBulk) SetPaid(v bool) *PaymentSplitUpsertBulk {
	return u.Update(func(s *PaymentSplitUpsert) {
		s.SetPaid(v)
	})
}

// UpdatePaid sets the "paid" field to the value that was provided on create.
func (u *PaymentSplitUpsertBulk) UpdatePaid() *PaymentSplitUpsertBulk {
	return u.Update(func(s *PaymentSplitUpsert) {
		s.UpdatePaid()
	})
}

// SetPaidDate sets the "paid_date" field.
func (u *PaymentSplitUpsertBulk) SetPaidDate(v time.Time) *PaymentSplitUpsertBulk {
	return u.Update(func(s *PaymentSplitUpsert) {
		s.SetPaidDate(v)
	})
}

// UpdatePaidDate sets the "paid_date" field to the value that was provided on create.
func (u *PaymentSplitUpsertBulk) UpdatePaidDate() *PaymentSplitUpsertBulk {
	return u.Update(func(s *PaymentSplitUpsert) {
		s.UpdatePaidDate()
	})
}

// ClearPaidDate clears the value of the "paid_date" field.
func (u *PaymentSplitUpsertBulk) ClearPaidDate() *PaymentSplitUpsertBulk {
	return u.Update(func(s *PaymentSplitUpsert) {
		s.ClearPaidDate()
	})
}

// Exec executes the query.
func (u *PaymentSplitUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the PaymentSplitCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PaymentSplitCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PaymentSplitUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
