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
	"github.com/oculusgrp/dealdesk_backend/internal/repo/deal"
	"github.com/oculusgrp/dealdesk_backend/internal/repo/dealbroker"
	"github.com/shopspring/decimal"
)

// DealBrokerCreate is the builder for creating a DealBroker entity.
type DealBrokerCreate struct {
	config
	mutation *DealBrokerMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *DealBrokerCreate) SetCreatedAt(v time.Time) *DealBrokerCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DealBrokerCreate) SetNillableCreatedAt(v *time.Time) *DealBrokerCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DealBrokerCreate) SetUpdatedAt(v time.Time) *DealBrokerCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DealBrokerCreate) SetNillableUpdatedAt(v *time.Time) *DealBrokerCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDealID sets the "deal_id" field.
func (_c *DealBrokerCreate) SetDealID(v uuid.UUID) *DealBrokerCreate {
	_c.mutation.SetDealID(v)
	return _c
}

// SetBrokerID sets the "broker_id" field.
func (_c *DealBrokerCreate) SetBrokerID(v uuid.UUID) *DealBrokerCreate {
	_c.mutation.SetBrokerID(v)
	return _c
}

// SetOriginationPercent sets the "origination_percent" field.
func (_c *DealBrokerCreate) SetOriginationPercent(v decimal.Decimal) *DealBrokerCreate {
	_c.mutation.SetOriginationPercent(v)
	return _c
}

// SetSitePercent sets the "site_percent" field.
func (_c *DealBrokerCreate) SetSitePercent(v decimal.Decimal) *DealBrokerCreate {
	_c.mutation.SetSitePercent(v)
	return _c
}

// SetDealPercent sets the "deal_percent" field.
func (_c *DealBrokerCreate) SetDealPercent(v decimal.Decimal) *DealBrokerCreate {
	_c.mutation.SetDealPercent(v)
	return _c
}

// SetID sets the "id" field.
func (_c *DealBrokerCreate) SetID(v uuid.UUID) *DealBrokerCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DealBrokerCreate) SetNillableID(v *uuid.UUID) *DealBrokerCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetDeal sets the "deal" edge to the Deal entity.
func (_c *DealBrokerCreate) SetDeal(v *Deal) *DealBrokerCreate {
	return _c.SetDealID(v.ID)
}

// SetBroker sets the "broker" edge to the Broker entity.
func (_c *DealBrokerCreate) SetBroker(v *Broker) *DealBrokerCreate {
	return _c.SetBrokerID(v.ID)
}

// Mutation returns the DealBrokerMutation object of the builder.
func (_c *DealBrokerCreate) Mutation() *DealBrokerMutation {
	return _c.mutation
}

// Save creates the DealBroker in the database.
func (_c *DealBrokerCreate) Save(ctx context.Context) (*DealBroker, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DealBrokerCreate) SaveX(ctx context.Context) *DealBroker {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DealBrokerCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DealBrokerCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DealBrokerCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := dealbroker.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := dealbroker.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := dealbroker.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DealBrokerCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "DealBroker.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "DealBroker.updated_at"`)}
	}
	if _, ok := _c.mutation.DealID(); !ok {
		return &ValidationError{Name: "deal_id", err: errors.New(`repo: missing required field "DealBroker.deal_id"`)}
	}
	if _, ok := _c.mutation.BrokerID(); !ok {
		return &ValidationError{Name: "broker_id", err: errors.New(`repo: missing required field "DealBroker.broker_id"`)}
	}
	if _, ok := _c.mutation.OriginationPercent(); !ok {
		return &ValidationError{Name: "origination_percent", err: errors.New(`repo: missing required field "DealBroker.origination_percent"`)}
	}
	if _, ok := _c.mutation.SitePercent(); !ok {
		return &ValidationError{Name: "site_percent", err: errors.New(`repo: missing required field "DealBroker.site_percent"`)}
	}
	if _, ok := _c.mutation.DealPercent(); !ok {
		return &ValidationError{Name: "deal_percent", err: errors.New(`repo: missing required field "DealBroker.deal_percent"`)}
	}
	if len(_c.mutation.DealIDs()) == 0 {
		return &ValidationError{Name: "deal", err: errors.New(`repo: missing required edge "DealBroker.deal"`)}
	}
	if len(_c.mutation.BrokerIDs()) == 0 {
		return &ValidationError{Name: "broker", err: errors.New(`repo: missing required edge "DealBroker.broker"`)}
	}
	return nil
}

func (_c *DealBrokerCreate) sqlSave(ctx context.Context) (*DealBroker, error) {
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

func (_c *DealBrokerCreate) createSpec() (*DealBroker, *sqlgraph.CreateSpec) {
	var (
		_node = &DealBroker{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(dealbroker.Table, sqlgraph.NewFieldSpec(dealbroker.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(dealbroker.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(dealbroker.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.OriginationPercent(); ok {
		_spec.SetField(dealbroker.FieldOriginationPercent, field.TypeFloat64, value)
		_node.OriginationPercent = value
	}
	if value, ok := _c.mutation.SitePercent(); ok {
		_spec.SetField(dealbroker.FieldSitePercent, field.TypeFloat64, value)
		_node.SitePercent = value
	}
	if value, ok := _c.mutation.DealPercent(); ok {
		_spec.SetField(dealbroker.FieldDealPercent, field.TypeFloat64, value)
		_node.DealPercent = value
	}
	if nodes := _c.mutation.DealIDs(); len(nodes) > 0 {
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
		_node.DealID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.BrokerIDs(); len(nodes) > 0 {
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
		_node.BrokerID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DealBroker.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DealBrokerUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *DealBrokerCreate) OnConflict(opts ...sql.ConflictOption) *DealBrokerUpsertOne {
	_c.conflict = opts
	return &DealBrokerUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DealBroker.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DealBrokerCreate) OnConflictColumns(columns ...string) *DealBrokerUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DealBrokerUpsertOne{
		create: _c,
	}
}

type (
	// DealBrokerUpsertOne is the builder for "upsert"-ing
	//  one DealBroker node.
	DealBrokerUpsertOne struct {
		create *DealBrokerCreate
	}

	// DealBrokerUpsert is the "OnConflict" setter.
	DealBrokerUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *DealBrokerUpsert) SetUpdatedAt(v time.Time) *DealBrokerUpsert {
	u.Set(dealbroker.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DealBrokerUpsert) UpdateUpdatedAt() *DealBrokerUpsert {
	u.SetExcluded(dealbroker.FieldUpdatedAt)
	return u
}

// SetDealID sets the "deal_id" field.
func (u *DealBrokerUpsert) SetDealID(v uuid.UUID) *DealBrokerUpsert {
	u.Set(dealbroker.FieldDealID, v)
	return u
}

// UpdateDealID sets the "deal_id" field to the value that was provided on create.
func (u *DealBrokerUpsert) UpdateDealID() *DealBrokerUpsert {
	u.SetExcluded(dealbroker.FieldDealID)
	return u
}

// SetBrokerID sets the "broker_id" field.
func (u *DealBrokerUpsert) SetBrokerID(v uuid.UUID) *DealBrokerUpsert {
	u.Set(dealbroker.FieldBrokerID, v)
	return u
}

// UpdateBrokerID sets the "broker_id" field to the value that was provided on create.
func (u *DealBrokerUpsert) UpdateBrokerID() *DealBrokerUpsert {
	u.SetExcluded(dealbroker.FieldBrokerID)
	return u
}

// SetOriginationPercent sets the "origination_percent" field.
func (u *DealBrokerUpsert) SetOriginationPercent(v decimal.Decimal) *DealBrokerUpsert {
	u.Set(dealbroker.FieldOriginationPercent, v)
	return u
}

// UpdateOriginationPercent sets the "origination_percent" field to the value that was provided on create.
func (u *DealBrokerUpsert) UpdateOriginationPercent() *DealBrokerUpsert {
	u.SetExcluded(dealbroker.FieldOriginationPercent)
	return u
}

// AddOriginationPercent adds v to the "origination_percent" field.
func (u *DealBrokerUpsert) AddOriginationPercent(v decimal.Decimal) *DealBrokerUpsert {
	u.Add(dealbroker.FieldOriginationPercent, v)
	return u
}

// SetSitePercent sets the "site_percent" field.
func (u *DealBrokerUpsert) SetSitePercent(v decimal.Decimal) *DealBrokerUpsert {
	u.Set(dealbroker.FieldSitePercent, v)
	return u
}

// UpdateSitePercent sets the "site_percent" field to the value that was provided on create.
func (u *DealBrokerUpsert) UpdateSitePercent() *DealBrokerUpsert {
	u.SetExcluded(dealbroker.FieldSitePercent)
	return u
}

// AddSitePercent adds v to the "site_percent" field.
func (u *DealBrokerUpsert) AddSitePercent(v decimal.Decimal) *DealBrokerUpsert {
	u.Add(dealbroker.FieldSitePercent, v)
	return u
}

// SetDealPercent sets the "deal_percent" field.
func (u *DealBrokerUpsert) SetDealPercent(v decimal.Decimal) *DealBrokerUpsert {
	u.Set(dealbroker.FieldDealPercent, v)
	return u
}

// UpdateDealPercent sets the "deal_percent" field to the value that was provided on create.
func (u *DealBrokerUpsert) UpdateDealPercent() *DealBrokerUpsert {
	u.SetExcluded(dealbroker.FieldDealPercent)
	return u
}

// AddDealPercent adds v to the "deal_percent" field.
func (u *DealBrokerUpsert) AddDealPercent(v decimal.Decimal) *DealBrokerUpsert {
	u.Add(dealbroker.FieldDealPercent, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.DealBroker.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(dealbroker.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DealBrokerUpsertOne) UpdateNewValues() *DealBrokerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(dealbroker.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(dealbroker.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DealBroker.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DealBrokerUpsertOne) Ignore() *DealBrokerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DealBrokerUpsertOne) DoNothing() *DealBrokerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DealBrokerCreate.OnConflict
// documentation for more info.
func (u *DealBrokerUpsertOne) Update(set func(*DealBrokerUpsert)) *DealBrokerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DealBrokerUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DealBrokerUpsertOne) SetUpdatedAt(v time.Time) *DealBrokerUpsertOne {
	return u.Update(func(s *DealBrokerUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DealBrokerUpsertOne) UpdateUpdatedAt() *DealBrokerUpsertOne {
	return u.Update(func(s *DealBrokerUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDealID sets the "deal_id" field.
func (u *DealBrokerUpsertOne) SetDealID(v uuid.UUID) *DealBrokerUpsertOne {
	return u.Update(func(s *DealBrokerUpsert) {
		s.SetDealID(v)
	})
}

// UpdateDealID sets the "deal_id" field to the value that was provided on create.
func (u *DealBrokerUpsertOne) UpdateDealID() *DealBrokerUpsertOne {
	return u.Update(func(s *DealBrokerUpsert) {
		s.UpdateDealID()
	})
}

// SetBrokerID sets the "broker_id" field.
func (u *DealBrokerUpsertOne) SetBrokerID(v uuid.UUID) *DealBrokerUpsertOne {
	return u.Update(func(s *DealBrokerUpsert) {
		s.SetBrokerID(v)
	})
}

// UpdateBrokerID sets the "broker_id" field to the value that was provided on create.
func (u *DealBrokerUpsertOne) UpdateBrokerID() *DealBrokerUpsertOne {
	return u.Update(func(s *DealBrokerUpsert) {
		s.UpdateBrokerID()
	})
}

// SetOriginationPercent sets the "origination_percent" field.
func (u *DealBrokerUpsertOne) SetOriginationPercent(v decimal.Decimal) *DealBrokerUpsertOne {
	return u.Update(func(s *DealBrokerUpsert) {
		s.SetOriginationPercent(v)
	})
}

// AddOriginationPercent adds v to the "origination_percent" field.
func (u *DealBrokerUpsertOne) AddOriginationPercent(v decimal.Decimal) *DealBrokerUpsertOne {
	return u.Update(func(s *DealBrokerUpsert) {
		s.AddOriginationPercent(v)
	})
}

// UpdateOriginationPercent sets the "origination_percent" field to the value that was provided on create.
func (u *DealBrokerUpsertOne) UpdateOriginationPercent() *DealBrokerUpsertOne {
	return u.Update(func(s *DealBrokerUpsert) {
		s.UpdateOriginationPercent()
	})
}

// SetSitePercent sets the "site_percent" field.
func (u *DealBrokerUpsertOne) SetSitePercent(v decimal.Decimal) *DealBrokerUpsertOne {
	return u.Update(func(s *DealBrokerUpsert) {
		s.SetSitePercent(v)
	})
}

// AddSitePercent adds v to the "site_percent" field.
func (u *DealBrokerUpsertOne) AddSitePercent(v decimal.Decimal) *DealBrokerUpsertOne {
	return u.Update(func(s *DealBrokerUpsert) {
		s.AddSitePercent(v)
	})
}

// UpdateSitePercent sets the "site_percent" field to the value that was provided on create.
func (u *DealBrokerUpsertOne) UpdateSitePercent() *DealBrokerUpsertOne {
	return u.Update(func(s *DealBrokerUpsert) {
		s.UpdateSitePercent()
	})
}

// SetDealPercent sets the "deal_percent" field.
func (u *DealBrokerUpsertOne) SetDealPercent(v decimal.Decimal) *DealBrokerUpsertOne {
	return u.Update(func(s *DealBrokerUpsert) {
		s.SetDealPercent(v)
	})
}

// AddDealPercent adds v to the "deal_percent" field.
func (u *DealBrokerUpsertOne) AddDealPercent(v decimal.Decimal) *DealBrokerUpsertOne {
	return u.Update(func(s *DealBrokerUpsert) {
		s.AddDealPercent(v)
	})
}

// UpdateDealPercent sets the "deal_percent" field to the value that was provided on create.
func (u *DealBrokerUpsertOne) UpdateDealPercent() *DealBrokerUpsertOne {
	return u.Update(func(s *DealBrokerUpsert) {
		s.UpdateDealPercent()
	})
}

// Exec executes the query.
func (u *DealBrokerUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for DealBrokerCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DealBrokerUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DealBrokerUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: DealBrokerUpsertOne.ID is not supported by MySQL driver. Use DealBrokerUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DealBrokerUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DealBrokerCreateBulk is the builder for creating many DealBroker entities in bulk.
type DealBrokerCreateBulk struct {
	config
	err      error
	builders []*DealBrokerCreate
	conflict []sql.ConflictOption
}

// Save creates the DealBroker entities in the database.
func (_c *DealBrokerCreateBulk) Save(ctx context.Context) ([]*DealBroker, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DealBroker, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DealBrokerMutation)
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
func (_c *DealBrokerCreateBulk) SaveX(ctx context.Context) []*DealBroker {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DealBrokerCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DealBrokerCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DealBroker.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DealBrokerUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *DealBrokerCreateBulk) OnConflict(opts ...sql.ConflictOption) *DealBrokerUpsertBulk {
	_c.conflict = opts
	return &DealBrokerUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DealBroker.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DealBrokerCreateBulk) OnConflictColumns(columns ...string) *DealBrokerUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DealBrokerUpsertBulk{
		create: _c,
	}
}

// DealBrokerUpsertBulk is the builder for "upsert"-ing
// a bulk of DealBroker nodes.
type DealBrokerUpsertBulk struct {
	create *DealBrokerCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.DealBroker.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(dealbroker.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DealBrokerUpsertBulk) UpdateNewValues() *DealBrokerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(dealbroker.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(dealbroker.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DealBroker.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DealBrokerUpsertBulk) Ignore() *DealBrokerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DealBrokerUpsertBulk) DoNothing() *DealBrokerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DealBrokerCreateBulk.OnConflict
// documentation for more info.
func (u *DealBrokerUpsertBulk) Update(set func(*DealBrokerUpsert)) *DealBrokerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DealBrokerUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DealBrokerUpsertBulk) SetUpdatedAt(v time.Time) *DealBrokerUpsertBulk {
	return u.Update(func(s *DealBrokerUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DealBrokerUpsertBulk) UpdateUpdatedAt() *DealBrokerUpsertBulk {
	return u.Update(func(s *DealBrokerUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDealID sets the "deal_id" field.
func (u *DealBrokerUpsertBulk) SetDealID(v uuid.UUID) *DealBrokerUpsertBulk {
	return u.Update(func(s *DealBrokerUpsert) {
		s.SetDealID(v)
	})
}

// UpdateDealID sets the "deal_id" field to the value that was provided on create.
func (u *DealBrokerUpsertBulk) UpdateDealID() *DealBrokerUpsertBulk {
	return u.Update(func(s *DealBrokerUpsert) {
		s.UpdateDealID()
	})
}

// SetBrokerID sets the "broker_id" field.
func (u *DealBrokerUpsertBulk) SetBrokerID(v uuid.UUID) *DealBrokerUpsertBulk {
	return u.Update(func(s *DealBrokerUpsert) {
		s.SetBrokerID(v)
	})
}

// UpdateBrokerID sets the "broker_id" field to the value that was provided on create.
func (u *DealBrokerUpsertBulk) UpdateBrokerID() *DealBrokerUpsertBulk {
	return u.Update(func(s *DealBrokerUpsert) {
		s.UpdateBrokerID()
	})
}

// SetOriginationPercent sets the "origination_percent" field.
func (u *DealBrokerUpsertBulk) SetOriginationPercent(v decimal.Decimal) *DealBrokerUpsertBulk {
	return u.Update(func(s *DealBrokerUpsert) {
		s.SetOriginationPercent(v)
	})
}

// AddOriginationPercent adds v to the "origination_percent" field.
func (u *DealBrokerUpsertBulk) AddOriginationPercent(v decimal.Decimal) *DealBrokerUpsertBulk {
	return u.Update(func(s *DealBrokerUpsert) {
		s.AddOriginationPercent(v)
	})
}

// UpdateOriginationPercent sets the "origination_percent" field to the value that was provided on create.
func (u *DealBrokerUpsertBulk) UpdateOriginationPercent() *DealBrokerUpsertBulk {
	return u.Update(func(s *DealBrokerUpsert) {
		s.UpdateOriginationPercent()
	})
}

// SetSitePercent sets the "site_percent" field.
func (u *DealBrokerUpsertBulk) SetSitePercent(v decimal.Decimal) *DealBrokerUpsertBulk {
	return u.Update(func(s *DealBrokerUpsert) {
		s.SetSitePercent(v)
	})
}

// AddSitePercent adds v to the "site_percent" field.
func (u *DealBrokerUpsertBulk) AddSitePercent(v decimal.Decimal) *DealBrokerUpsertBulk {
	return u.Update(func(s *DealBrokerUpsert) {
		s.AddSitePercent(v)
	})
}

// UpdateSitePercent sets the "site_percent" field to the value that was provided on create.
func (u *DealBrokerUpsertBulk) UpdateSitePercent() *DealBrokerUpsertBulk {
	return u.Update(func(s *DealBrokerUpsert) {
		s.UpdateSitePercent()
	})
}

// SetDealPercent sets the "deal_percent" field.
func (u *DealBrokerUpsertBulk) SetDealPercent(v decimal.Decimal) *DealBrokerUpsertBulk {
	return u.Update(func(s *DealBrokerUpsert) {
		s.SetDealPercent(v)
	})
}

// AddDealPercent adds v to the "deal_percent" field.
func (u *DealBrokerUpsertBulk) AddDealPercent(v decimal.Decimal) *DealBrokerUpsertBulk {
	return u.Update(func(s *DealBrokerUpsert) {
		s.AddDealPercent(v)
	})
}

// UpdateDealPercent sets the "deal_percent" field to the value that was provided on create.
func (u *DealBrokerUpsertBulk) UpdateDealPercent() *DealBrokerUpsertBulk {
	return u.Update(func(s *DealBrokerUpsert) {
		s.UpdateDealPercent()
	})
}

// Exec executes the query.
func (u *DealBrokerUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the DealBrokerCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for DealBrokerCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DealBrokerUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
