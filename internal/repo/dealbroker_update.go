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
	"github.com/oculusgrp/dealdesk_backend/internal/repo/deal"
	"github.com/oculusgrp/dealdesk_backend/internal/repo/dealbroker"
	"github.com/oculusgrp/dealdesk_backend/internal/repo/predicate"
	"github.com/shopspring/decimal"
)

// DealBrokerUpdate is the builder for updating DealBroker entities.
type DealBrokerUpdate struct {
	config
	hooks    []Hook
	mutation *DealBrokerMutation
}

// Where appends a list predicates to the DealBrokerUpdate builder.
func (_u *DealBrokerUpdate) Where(ps ...predicate.DealBroker) *DealBrokerUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DealBrokerUpdate) SetUpdatedAt(v time.Time) *DealBrokerUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDealID sets the "deal_id" field.
func (_u *DealBrokerUpdate) SetDealID(v uuid.UUID) *DealBrokerUpdate {
	_u.mutation.SetDealID(v)
	return _u
}

// SetNillableDealID sets the "deal_id" field if the given value is not nil.
func (_u *DealBrokerUpdate) SetNillableDealID(v *uuid.UUID) *DealBrokerUpdate {
	if v != nil {
		_u.SetDealID(*v)
	}
	return _u
}

// SetBrokerID sets the "broker_id" field.
func (_u *DealBrokerUpdate) SetBrokerID(v uuid.UUID) *DealBrokerUpdate {
	_u.mutation.SetBrokerID(v)
	return _u
}

// SetNillableBrokerID sets the "broker_id" field if the given value is not nil.
func (_u *DealBrokerUpdate) SetNillableBrokerID(v *uuid.UUID) *DealBrokerUpdate {
	if v != nil {
		_u.SetBrokerID(*v)
	}
	return _u
}

// SetOriginationPercent sets the "origination_percent" field.
func (_u *DealBrokerUpdate) SetOriginationPercent(v decimal.Decimal) *DealBrokerUpdate {
	_u.mutation.ResetOriginationPercent()
	_u.mutation.SetOriginationPercent(v)
	return _u
}

// SetNillableOriginationPercent sets the "origination_percent" field if the given value is not nil.
func (_u *DealBrokerUpdate) SetNillableOriginationPercent(v *decimal.Decimal) *DealBrokerUpdate {
	if v != nil {
		_u.SetOriginationPercent(*v)
	}
	return _u
}

// AddOriginationPercent adds value to the "origination_percent" field.
func (_u *DealBrokerUpdate) AddOriginationPercent(v decimal.Decimal) *DealBrokerUpdate {
	_u.mutation.AddOriginationPercent(v)
	return _u
}

// SetSitePercent sets the "site_percent" field.
func (_u *DealBrokerUpdate) SetSitePercent(v decimal.Decimal) *DealBrokerUpdate {
	_u.mutation.ResetSitePercent()
	_u.mutation.SetSitePercent(v)
	return _u
}

// SetNillableSitePercent sets the "site_percent" field if the given value is not nil.
func (_u *DealBrokerUpdate) SetNillableSitePercent(v *decimal.Decimal) *DealBrokerUpdate {
	if v != nil {
		_u.SetSitePercent(*v)
	}
	return _u
}

// AddSitePercent adds value to the "site_percent" field.
func (_u *DealBrokerUpdate) AddSitePercent(v decimal.Decimal) *DealBrokerUpdate {
	_u.mutation.AddSitePercent(v)
	return _u
}

// SetDealPercent sets the "deal_percent" field.
func (_u *DealBrokerUpdate) SetDealPercent(v decimal.Decimal) *DealBrokerUpdate {
	_u.mutation.ResetDealPercent()
	_u.mutation.SetDealPercent(v)
	return _u
}

// SetNillableDealPercent sets the "deal_percent" field if the given value is not nil.
func (_u *DealBrokerUpdate) SetNillableDealPercent(v *decimal.Decimal) *DealBrokerUpdate {
	if v != nil {
		_u.SetDealPercent(*v)
	}
	return _u
}

// AddDealPercent adds value to the "deal_percent" field.
func (_u *DealBrokerUpdate) AddDealPercent(v decimal.Decimal) *DealBrokerUpdate {
	_u.mutation.AddDealPercent(v)
	return _u
}

// SetDeal sets the "deal" edge to the Deal entity.
func (_u *DealBrokerUpdate) SetDeal(v *Deal) *DealBrokerUpdate {
	return _u.SetDealID(v.ID)
}

// SetBroker sets the "broker" edge to the Broker entity.
func (_u *DealBrokerUpdate) SetBroker(v *Broker) *DealBrokerUpdate {
	return _u.SetBrokerID(v.ID)
}

// Mutation returns the DealBrokerMutation object of the builder.
func (_u *DealBrokerUpdate) Mutation() *DealBrokerMutation {
	return _u.mutation
}

// ClearDeal clears the "deal" edge to the Deal entity.
func (_u *DealBrokerUpdate) ClearDeal() *DealBrokerUpdate {
	_u.mutation.ClearDeal()
	return _u
}

// ClearBroker clears the "broker" edge to the Broker entity.
func (_u *DealBrokerUpdate) ClearBroker() *DealBrokerUpdate {
	_u.mutation.ClearBroker()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DealBrokerUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DealBrokerUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DealBrokerUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DealBrokerUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DealBrokerUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := dealbroker.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DealBrokerUpdate) check() error {
	if _u.mutation.DealCleared() && len(_u.mutation.DealIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "DealBroker.deal"`)
	}
	if _u.mutation.BrokerCleared() && len(_u.mutation.BrokerIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "DealBroker.broker"`)
	}
	return nil
}

func (_u *DealBrokerUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dealbroker.Table, dealbroker.Columns, sqlgraph.NewFieldSpec(dealbroker.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(dealbroker.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.OriginationPercent(); ok {
		_spec.SetField(dealbroker.FieldOriginationPercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOriginationPercent(); ok {
		_spec.AddField(dealbroker.FieldOriginationPercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SitePercent(); ok {
		_spec.SetField(dealbroker.FieldSitePercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSitePercent(); ok {
		_spec.AddField(dealbroker.FieldSitePercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DealPercent(); ok {
		_spec.SetField(dealbroker.FieldDealPercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDealPercent(); ok {
		_spec.AddField(dealbroker.FieldDealPercent, field.TypeFloat64, value)
	}
	if _u.mutation.DealCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   dealbroker.DealTable,
			Columns: []string{dealbroker.DealColumn},
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
			Table:   dealbroker.DealTable,
			Columns: []string{dealbroker.DealColumn},
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
	if _u.mutation.BrokerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   dealbroker.BrokerTable,
			Columns: []string{dealbroker.BrokerColumn},
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
			Table:   dealbroker.BrokerTable,
			Columns: []string{dealbroker.BrokerColumn},
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
			err = &NotFoundError{dealbroker.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DealBrokerUpdateOne is the builder for updating a single DealBroker entity.
type DealBrokerUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DealBrokerMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DealBrokerUpdateOne) SetUpdatedAt(v time.Time) *DealBrokerUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDealID sets the "deal_id" field.
func (_u *DealBrokerUpdateOne) SetDealID(v uuid.UUID) *DealBrokerUpdateOne {
	_u.mutation.SetDealID(v)
	return _u
}

// SetNillableDealID sets the "deal_id" field if the given value is not nil.
func (_u *DealBrokerUpdateOne) SetNillableDealID(v *uuid.UUID) *DealBrokerUpdateOne {
	if v != nil {
		_u.SetDealID(*v)
	}
	return _u
}

// SetBrokerID sets the "broker_id" field.
func (_u *DealBrokerUpdateOne) SetBrokerID(v uuid.UUID) *DealBrokerUpdateOne {
	_u.mutation.SetBrokerID(v)
	return _u
}

// SetNillableBrokerID sets the "broker_id" field if the given value is not nil.
func (_u *DealBrokerUpdateOne) SetNillableBrokerID(v *uuid.UUID) *DealBrokerUpdateOne {
	if v != nil {
		_u.SetBrokerID(*v)
	}
	return _u
}

// SetOriginationPercent sets the "origination_percent" field.
func (_u *DealBrokerUpdateOne) SetOriginationPercent(v decimal.Decimal) *DealBrokerUpdateOne {
	_u.mutation.ResetOriginationPercent()
	_u.mutation.SetOriginationPercent(v)
	return _u
}

// SetNillableOriginationPercent sets the "origination_percent" field if the given value is not nil.
func (_u *DealBrokerUpdateOne) SetNillableOriginationPercent(v *decimal.Decimal) *DealBrokerUpdateOne {
	if v != nil {
		_u.SetOriginationPercent(*v)
	}
	return _u
}

// AddOriginationPercent adds value to the "origination_percent" field.
func (_u *DealBrokerUpdateOne) AddOriginationPercent(v decimal.Decimal) *DealBrokerUpdateOne {
	_u.mutation.AddOriginationPercent(v)
	return _u
}

// SetSitePercent sets the "site_percent" field.
func (_u *DealBrokerUpdateOne) SetSitePercent(v decimal.Decimal) *DealBrokerUpdateOne {
	_u.mutation.ResetSitePercent()
	_u.mutation.SetSitePercent(v)
	return _u
}

// SetNillableSitePercent sets the "site_percent" field if the given value is not nil.
func (_u *DealBrokerUpdateOne) SetNillableSitePercent(v *decimal.Decimal) *DealBrokerUpdateOne {
	if v != nil {
		_u.SetSitePercent(*v)
	}
	return _u
}

// AddSitePercent adds value to the "site_percent" field.
func (_u *DealBrokerUpdateOne) AddSitePercent(v decimal.Decimal) *DealBrokerUpdateOne {
	_u.mutation.AddSitePercent(v)
	return _u
}

// SetDealPercent sets the "deal_percent" field.
func (_u *DealBrokerUpdateOne) SetDealPercent(v decimal.Decimal) *DealBrokerUpdateOne {
	_u.mutation.ResetDealPercent()
	_u.mutation.SetDealPercent(v)
	return _u
}

// SetNillableDealPercent sets the "deal_percent" field if the given value is not nil.
func (_u *DealBrokerUpdateOne) SetNillableDealPercent(v *decimal.Decimal) *DealBrokerUpdateOne {
	if v != nil {
		_u.SetDealPercent(*v)
	}
	return _u
}

// AddDealPercent adds value to the "deal_percent" field.
func (_u *DealBrokerUpdateOne) AddDealPercent(v decimal.Decimal) *DealBrokerUpdateOne {
	_u.mutation.AddDealPercent(v)
	return _u
}

// SetDeal sets the "deal" edge to the Deal entity.
func (_u *DealBrokerUpdateOne) SetDeal(v *Deal) *DealBrokerUpdateOne {
	return _u.SetDealID(v.ID)
}

// SetBroker sets the "broker" edge to the Broker entity.
func (_u *DealBrokerUpdateOne) SetBroker(v *Broker) *DealBrokerUpdateOne {
	return _u.SetBrokerID(v.ID)
}

// Mutation returns the DealBrokerMutation object of the builder.
func (_u *DealBrokerUpdateOne) Mutation() *DealBrokerMutation {
	return _u.mutation
}

// ClearDeal clears the "deal" edge to the Deal entity.
func (_u *DealBrokerUpdateOne) ClearDeal() *DealBrokerUpdateOne {
	_u.mutation.ClearDeal()
	return _u
}

// ClearBroker clears the "broker" edge to the Broker entity.
func (_u *DealBrokerUpdateOne) ClearBroker() *DealBrokerUpdateOne {
	_u.mutation.ClearBroker()
	return _u
}

// Where appends a list predicates to the DealBrokerUpdate builder.
func (_u *DealBrokerUpdateOne) Where(ps ...predicate.DealBroker) *DealBrokerUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DealBrokerUpdateOne) Select(field string, fields ...string) *DealBrokerUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DealBroker entity.
func (_u *DealBrokerUpdateOne) Save(ctx context.Context) (*DealBroker, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DealBrokerUpdateOne) SaveX(ctx context.Context) *DealBroker {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DealBrokerUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DealBrokerUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DealBrokerUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := dealbroker.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DealBrokerUpdateOne) check() error {
	if _u.mutation.DealCleared() && len(_u.mutation.DealIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "DealBroker.deal"`)
	}
	if _u.mutation.BrokerCleared() && len(_u.mutation.BrokerIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "DealBroker.broker"`)
	}
	return nil
}

func (_u *DealBrokerUpdateOne) sqlSave(ctx context.Context) (_node *DealBroker, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dealbroker.Table, dealbroker.Columns, sqlgraph.NewFieldSpec(dealbroker.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "DealBroker.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, dealbroker.FieldID)
		for _, f := range fields {
			if !dealbroker.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != dealbroker.FieldID {
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
		_spec.SetField(dealbroker.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.OriginationPercent(); ok {
		_spec.SetField(dealbroker.FieldOriginationPercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOriginationPercent(); ok {
		_spec.AddField(dealbroker.FieldOriginationPercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SitePercent(); ok {
		_spec.SetField(dealbroker.FieldSitePercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSitePercent(); ok {
		_spec.AddField(dealbroker.FieldSitePercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DealPercent(); ok {
		_spec.SetField(dealbroker.FieldDealPercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDealPercent(); ok {
		_spec.AddField(dealbroker.FieldDealPercent, field.TypeFloat64, value)
	}
	if _u.mutation.DealCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   dealbroker.DealTable,
			Columns: []string{dealbroker.DealColumn},
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
			Table:   dealbroker.DealTable,
			Columns: []string{dealbroker.DealColumn},
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
	if _u.mutation.BrokerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   dealbroker.BrokerTable,
			Columns: []string{dealbroker.BrokerColumn},
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
			Table:   dealbroker.BrokerTable,
			Columns: []string{dealbroker.BrokerColumn},
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
	_node = &DealBroker{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dealbroker.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
