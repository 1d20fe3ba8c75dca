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
	"github.com/oculusgrp/dealdesk_backend/internal/repo/restaurantlocation"
	"github.com/oculusgrp/dealdesk_backend/internal/repo/restauranttrend"
)

// RestaurantLocationCreate is the builder for creating a RestaurantLocation entity.
type RestaurantLocationCreate struct {
	config
	mutation *RestaurantLocationMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *RestaurantLocationCreate) SetCreatedAt(v time.Time) *RestaurantLocationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RestaurantLocationCreate) SetNillableCreatedAt(v *time.Time) *RestaurantLocationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *RestaurantLocationCreate) SetUpdatedAt(v time.Time) *RestaurantLocationCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *RestaurantLocationCreate) SetNillableUpdatedAt(v *time.Time) *RestaurantLocationCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetStoreNo sets the "store_no" field.
func (_c *RestaurantLocationCreate) SetStoreNo(v string) *RestaurantLocationCreate {
	_c.mutation.SetStoreNo(v)
	return _c
}

// SetChainNo sets the "chain_no" field.
func (_c *RestaurantLocationCreate) SetChainNo(v string) *RestaurantLocationCreate {
	_c.mutation.SetChainNo(v)
	return _c
}

// SetNillableChainNo sets the "chain_no" field if the given value is not nil.
func (_c *RestaurantLocationCreate) SetNillableChainNo(v *string) *RestaurantLocationCreate {
	if v != nil {
		_c.SetChainNo(*v)
	}
	return _c
}

// SetChain sets the "chain" field.
func (_c *RestaurantLocationCreate) SetChain(v string) *RestaurantLocationCreate {
	_c.mutation.SetChain(v)
	return _c
}

// SetNillableChain sets the "chain" field if the given value is not nil.
func (_c *RestaurantLocationCreate) SetNillableChain(v *string) *RestaurantLocationCreate {
	if v != nil {
		_c.SetChain(*v)
	}
	return _c
}

// SetGeoaddress sets the "geoaddress" field.
func (_c *RestaurantLocationCreate) SetGeoaddress(v string) *RestaurantLocationCreate {
	_c.mutation.SetGeoaddress(v)
	return _c
}

// SetNillableGeoaddress sets the "geoaddress" field if the given value is not nil.
func (_c *RestaurantLocationCreate) SetNillableGeoaddress(v *string) *RestaurantLocationCreate {
	if v != nil {
		_c.SetGeoaddress(*v)
	}
	return _c
}

// SetGeocity sets the "geocity" field.
func (_c *RestaurantLocationCreate) SetGeocity(v string) *RestaurantLocationCreate {
	_c.mutation.SetGeocity(v)
	return _c
}

// SetNillableGeocity sets the "geocity" field if the given value is not nil.
func (_c *RestaurantLocationCreate) SetNillableGeocity(v *string) *RestaurantLocationCreate {
	if v != nil {
		_c.SetGeocity(*v)
	}
	return _c
}

// SetGeostate sets the "geostate" field.
func (_c *RestaurantLocationCreate) SetGeostate(v string) *RestaurantLocationCreate {
	_c.mutation.SetGeostate(v)
	return _c
}

// SetNillableGeostate sets the "geostate" field if the given value is not nil.
func (_c *RestaurantLocationCreate) SetNillableGeostate(v *string) *RestaurantLocationCreate {
	if v != nil {
		_c.SetGeostate(*v)
	}
	return _c
}

// SetGeozip sets the "geozip" field.
func (_c *RestaurantLocationCreate) SetGeozip(v string) *RestaurantLocationCreate {
	_c.mutation.SetGeozip(v)
	return _c
}

// SetNillableGeozip sets the "geozip" field if the given value is not nil.
func (_c *RestaurantLocationCreate) SetNillableGeozip(v *string) *RestaurantLocationCreate {
	if v != nil {
		_c.SetGeozip(*v)
	}
	return _c
}

// SetCounty sets the "county" field.
func (_c *RestaurantLocationCreate) SetCounty(v string) *RestaurantLocationCreate {
	_c.mutation.SetCounty(v)
	return _c
}

// SetNillableCounty sets the "county" field if the given value is not nil.
func (_c *RestaurantLocationCreate) SetNillableCounty(v *string) *RestaurantLocationCreate {
	if v != nil {
		_c.SetCounty(*v)
	}
	return _c
}

// SetDmaMarket sets the "dma_market" field.
func (_c *RestaurantLocationCreate) SetDmaMarket(v string) *RestaurantLocationCreate {
	_c.mutation.SetDmaMarket(v)
	return _c
}

// SetNillableDmaMarket sets the "dma_market" field if the given value is not nil.
func (_c *RestaurantLocationCreate) SetNillableDmaMarket(v *string) *RestaurantLocationCreate {
	if v != nil {
		_c.SetDmaMarket(*v)
	}
	return _c
}

// SetSegment sets the "segment" field.
func (_c *RestaurantLocationCreate) SetSegment(v string) *RestaurantLocationCreate {
	_c.mutation.SetSegment(v)
	return _c
}

// SetNillableSegment sets the "segment" field if the given value is not nil.
func (_c *RestaurantLocationCreate) SetNillableSegment(v *string) *RestaurantLocationCreate {
	if v != nil {
		_c.SetSegment(*v)
	}
	return _c
}

// SetSubsegment sets the "subsegment" field.
func (_c *RestaurantLocationCreate) SetSubsegment(v string) *RestaurantLocationCreate {
	_c.mutation.SetSubsegment(v)
	return _c
}

// SetNillableSubsegment sets the "subsegment" field if the given value is not nil.
func (_c *RestaurantLocationCreate) SetNillableSubsegment(v *string) *RestaurantLocationCreate {
	if v != nil {
		_c.SetSubsegment(*v)
	}
	return _c
}

// SetCategory sets the "category" field.
func (_c *RestaurantLocationCreate) SetCategory(v string) *RestaurantLocationCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *RestaurantLocationCreate) SetNillableCategory(v *string) *RestaurantLocationCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetLatitude sets the "latitude" field.
func (_c *RestaurantLocationCreate) SetLatitude(v float64) *RestaurantLocationCreate {
	_c.mutation.SetLatitude(v)
	return _c
}

// SetNillableLatitude sets the "latitude" field if the given value is not nil.
func (_c *RestaurantLocationCreate) SetNillableLatitude(v *float64) *RestaurantLocationCreate {
	if v != nil {
		_c.SetLatitude(*v)
	}
	return _c
}

// SetLongitude sets the "longitude" field.
func (_c *RestaurantLocationCreate) SetLongitude(v float64) *RestaurantLocationCreate {
	_c.mutation.SetLongitude(v)
	return _c
}

// SetNillableLongitude sets the "longitude" field if the given value is not nil.
func (_c *RestaurantLocationCreate) SetNillableLongitude(v *float64) *RestaurantLocationCreate {
	if v != nil {
		_c.SetLongitude(*v)
	}
	return _c
}

// SetYrBuilt sets the "yr_built" field.
func (_c *RestaurantLocationCreate) SetYrBuilt(v int) *RestaurantLocationCreate {
	_c.mutation.SetYrBuilt(v)
	return _c
}

// SetNillableYrBuilt sets the "yr_built" field if the given value is not nil.
func (_c *RestaurantLocationCreate) SetNillableYrBuilt(v *int) *RestaurantLocationCreate {
	if v != nil {
		_c.SetYrBuilt(*v)
	}
	return _c
}

// SetCoFr sets the "co_fr" field.
func (_c *RestaurantLocationCreate) SetCoFr(v string) *RestaurantLocationCreate {
	_c.mutation.SetCoFr(v)
	return _c
}

// SetNillableCoFr sets the "co_fr" field if the given value is not nil.
func (_c *RestaurantLocationCreate) SetNillableCoFr(v *string) *RestaurantLocationCreate {
	if v != nil {
		_c.SetCoFr(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RestaurantLocationCreate) SetID(v uuid.UUID) *RestaurantLocationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *RestaurantLocationCreate) SetNillableID(v *uuid.UUID) *RestaurantLocationCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddTrendIDs adds the "trends" edge to the RestaurantTrend entity by IDs.
func (_c *RestaurantLocationCreate) AddTrendIDs(ids ...uuid.UUID) *RestaurantLocationCreate {
	_c.mutation.AddTrendIDs(ids...)
	return _c
}

// AddTrends adds the "trends" edges to the RestaurantTrend entity.
func (_c *RestaurantLocationCreate) AddTrends(v ...*RestaurantTrend) *RestaurantLocationCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTrendIDs(ids...)
}

// Mutation returns the RestaurantLocationMutation object of the builder.
func (_c *RestaurantLocationCreate) Mutation() *RestaurantLocationMutation {
	return _c.mutation
}

// Save creates the RestaurantLocation in the database.
func (_c *RestaurantLocationCreate) Save(ctx context.Context) (*RestaurantLocation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RestaurantLocationCreate) SaveX(ctx context.Context) *RestaurantLocation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RestaurantLocationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RestaurantLocationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RestaurantLocationCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := restaurantlocation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := restaurantlocation.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := restaurantlocation.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RestaurantLocationCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "RestaurantLocation.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "RestaurantLocation.updated_at"`)}
	}
	if _, ok := _c.mutation.StoreNo(); !ok {
		return &ValidationError{Name: "store_no", err: errors.New(`repo: missing required field "RestaurantLocation.store_no"`)}
	}
	if v, ok := _c.mutation.StoreNo(); ok {
		if err := restaurantlocation.StoreNoValidator(v); err != nil {
			return &ValidationError{Name: "store_no", err: fmt.Errorf(`repo: validator failed for field "RestaurantLocation.store_no": %w`, err)}
		}
	}
	if v, ok := _c.mutation.ChainNo(); ok {
		if err := restaurantlocation.ChainNoValidator(v); err != nil {
			return &ValidationError{Name: "chain_no", err: fmt.Errorf(`repo: validator failed for field "RestaurantLocation.chain_no": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Chain(); ok {
		if err := restaurantlocation.ChainValidator(v); err != nil {
			return &ValidationError{Name: "chain", err: fmt.Errorf(`repo: validator failed for field "RestaurantLocation.chain": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Geoaddress(); ok {
		if err := restaurantlocation.GeoaddressValidator(v); err != nil {
			return &ValidationError{Name: "geoaddress", err: fmt.Errorf(`repo: validator failed for field "RestaurantLocation.geoaddress": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Geocity(); ok {
		if err := restaurantlocation.GeocityValidator(v); err != nil {
			return &ValidationError{Name: "geocity", err: fmt.Errorf(`repo: validator failed for field "RestaurantLocation.geocity": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Geostate(); ok {
		if err := restaurantlocation.GeostateValidator(v); err != nil {
			return &ValidationError{Name: "geostate", err: fmt.Errorf(`repo: validator failed for field "RestaurantLocation.geostate": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Geozip(); ok {
		if err := restaurantlocation.GeozipValidator(v); err != nil {
			return &ValidationError{Name: "geozip", err: fmt.Errorf(`repo: validator failed for field "RestaurantLocation.geozip": %w`, err)}
		}
	}
	if v, ok := _c.mutation.County(); ok {
		if err := restaurantlocation.CountyValidator(v); err != nil {
			return &ValidationError{Name: "county", err: fmt.Errorf(`repo: validator failed for field "RestaurantLocation.county": %w`, err)}
		}
	}
	if v, ok := _c.mutation.DmaMarket(); ok {
		if err := restaurantlocation.DmaMarketValidator(v); err != nil {
			return &ValidationError{Name: "dma_market", err: fmt.Errorf(`repo: validator failed for field "RestaurantLocation.dma_market": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Segment(); ok {
		if err := restaurantlocation.SegmentValidator(v); err != nil {
			return &ValidationError{Name: "segment", err: fmt.Errorf(`repo: validator failed for field "RestaurantLocation.segment": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Subsegment(); ok {
		if err := restaurantlocation.SubsegmentValidator(v); err != nil {
			return &ValidationError{Name: "subsegment", err: fmt.Errorf(`repo: validator failed for field "RestaurantLocation.subsegment": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := restaurantlocation.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`repo: validator failed for field "RestaurantLocation.category": %w`, err)}
		}
	}
	if v, ok := _c.mutation.CoFr(); ok {
		if err := restaurantlocation.CoFrValidator(v); err != nil {
			return &ValidationError{Name: "co_fr", err: fmt.Errorf(`repo: validator failed for field "RestaurantLocation.co_fr": %w`, err)}
		}
	}
	return nil
}

func (_c *RestaurantLocationCreate) sqlSave(ctx context.Context) (*RestaurantLocation, error) {
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

func (_c *RestaurantLocationCreate) createSpec() (*RestaurantLocation, *sqlgraph.CreateSpec) {
	var (
		_node = &RestaurantLocation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(restaurantlocation.Table, sqlgraph.NewFieldSpec(restaurantlocation.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(restaurantlocation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(restaurantlocation.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.StoreNo(); ok {
		_spec.SetField(restaurantlocation.FieldStoreNo, field.TypeString, value)
		_node.StoreNo = value
	}
	if value, ok := _c.mutation.ChainNo(); ok {
		_spec.SetField(restaurantlocation.FieldChainNo, field.TypeString, value)
		_node.ChainNo = &value
	}
	if value, ok := _c.mutation.Chain(); ok {
		_spec.SetField(restaurantlocation.FieldChain, field.TypeString, value)
		_node.Chain = &value
	}
	if value, ok := _c.mutation.Geoaddress(); ok {
		_spec.SetField(restaurantlocation.FieldGeoaddress, field.TypeString, value)
		_node.Geoaddress = &value
	}
	if value, ok := _c.mutation.Geocity(); ok {
		_spec.SetField(restaurantlocation.FieldGeocity, field.TypeString, value)
		_node.Geocity = &value
	}
	if value, ok := _c.mutation.Geostate(); ok {
		_spec.SetField(restaurantlocation.FieldGeostate, field.TypeString, value)
		_node.Geostate = &value
	}
	if value, ok := _c.mutation.Geozip(); ok {
		_spec.SetField(restaurantlocation.FieldGeozip, field.TypeString, value)
		_node.Geozip = &value
	}
	if value, ok := _c.mutation.County(); ok {
		_spec.SetField(restaurantlocation.FieldCounty, field.TypeString, value)
		_node.County = &value
	}
	if value, ok := _c.mutation.DmaMarket(); ok {
		_spec.SetField(restaurantlocation.FieldDmaMarket, field.TypeString, value)
		_node.DmaMarket = &value
	}
	if value, ok := _c.mutation.Segment(); ok {
		_spec.SetField(restaurantlocation.FieldSegment, field.TypeString, value)
		_node.Segment = &value
	}
	if value, ok := _c.mutation.Subsegment(); ok {
		_spec.SetField(restaurantlocation.FieldSubsegment, field.TypeString, value)
		_node.Subsegment = &value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(restaurantlocation.FieldCategory, field.TypeString, value)
		_node.Category = &value
	}
	if value, ok := _c.mutation.Latitude(); ok {
		_spec.SetField(restaurantlocation.FieldLatitude, field.TypeFloat64, value)
		_node.Latitude = &value
	}
	if value, ok := _c.mutation.Longitude(); ok {
		_spec.SetField(restaurantlocation.FieldLongitude, field.TypeFloat64, value)
		_node.Longitude = &value
	}
	if value, ok := _c.mutation.YrBuilt(); ok {
		_spec.SetField(restaurantlocation.FieldYrBuilt, field.TypeInt, value)
		_node.YrBuilt = &value
	}
	if value, ok := _c.mutation.CoFr(); ok {
		_spec.SetField(restaurantlocation.FieldCoFr, field.TypeString, value)
		_node.CoFr = &value
	}
	if nodes := _c.mutation.TrendsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   restaurantlocation.TrendsTable,
			Columns: []string{restaurantlocation.TrendsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(restauranttrend.FieldID, field.TypeUUID),
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
//	client.RestaurantLocation.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RestaurantLocationUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *RestaurantLocationCreate) OnConflict(opts ...sql.ConflictOption) *RestaurantLocationUpsertOne {
	_c.conflict = opts
	return &RestaurantLocationUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RestaurantLocation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RestaurantLocationCreate) OnConflictColumns(columns ...string) *RestaurantLocationUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RestaurantLocationUpsertOne{
		create: _c,
	}
}

type (
	// RestaurantLocationUpsertOne is the builder for "upsert"-ing
	//  one RestaurantLocation node.
	RestaurantLocationUpsertOne struct {
		create *RestaurantLocationCreate
	}

	// RestaurantLocationUpsert is the "OnConflict" setter.
	RestaurantLocationUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *RestaurantLocationUpsert) SetUpdatedAt(v time.Time) *RestaurantLocationUpsert {
	u.Set(restaurantlocation.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RestaurantLocationUpsert) UpdateUpdatedAt() *RestaurantLocationUpsert {
	u.SetExcluded(restaurantlocation.FieldUpdatedAt)
	return u
}

// SetStoreNo sets the "store_no" field.
func (u *RestaurantLocationUpsert) SetStoreNo(v string) *RestaurantLocationUpsert {
	u.Set(restaurantlocation.FieldStoreNo, v)
	return u
}

// UpdateStoreNo sets the "store_no" field to the value that was provided on create.
func (u *RestaurantLocationUpsert) UpdateStoreNo() *RestaurantLocationUpsert {
	u.SetExcluded(restaurantlocation.FieldStoreNo)
	return u
}

// SetChainNo sets the "chain_no" field.
func (u *RestaurantLocationUpsert) SetChainNo(v string) *RestaurantLocationUpsert {
	u.Set(restaurantlocation.FieldChainNo, v)
	return u
}

// UpdateChainNo sets the "chain_no" field to the value that was provided on create.
func (u *RestaurantLocationUpsert) UpdateChainNo() *RestaurantLocationUpsert {
	u.SetExcluded(restaurantlocation.FieldChainNo)
	return u
}

// ClearChainNo clears the value of the "chain_no" field.
func (u *RestaurantLocationUpsert) ClearChainNo() *RestaurantLocationUpsert {
	u.SetNull(restaurantlocation.FieldChainNo)
	return u
}

// SetChain sets the "chain" field.
func (u *RestaurantLocationUpsert) SetChain(v string) *RestaurantLocationUpsert {
	u.Set(restaurantlocation.FieldChain, v)
	return u
}

// UpdateChain sets the "chain" field to the value that was provided on create.
func (u *RestaurantLocationUpsert) UpdateChain() *RestaurantLocationUpsert {
	u.SetExcluded(restaurantlocation.FieldChain)
	return u
}

// ClearChain clears the value of the "chain" field.
func (u *RestaurantLocationUpsert) ClearChain() *RestaurantLocationUpsert {
	u.SetNull(restaurantlocation.FieldChain)
	return u
}

// SetGeoaddress sets the "geoaddress" field.
func (u *RestaurantLocationUpsert) SetGeoaddress(v string) *RestaurantLocationUpsert {
	u.Set(restaurantlocation.FieldGeoaddress, v)
	return u
}

// UpdateGeoaddress sets the "geoaddress" field to the value that was provided on create.
func (u *RestaurantLocationUpsert) UpdateGeoaddress() *RestaurantLocationUpsert {
	u.SetExcluded(restaurantlocation.FieldGeoaddress)
	return u
}

// ClearGeoaddress clears the value of the "geoaddress" field.
func (u *RestaurantLocationUpsert) ClearGeoaddress() *RestaurantLocationUpsert {
	u.SetNull(restaurantlocation.FieldGeoaddress)
	return u
}

// SetGeocity sets the "geocity" field.
func (u *RestaurantLocationUpsert) SetGeocity(v string) *RestaurantLocationUpsert {
	u.Set(restaurantlocation.FieldGeocity, v)
	return u
}

// UpdateGeocity sets the "geocity" field to the value that was provided on create.
func (u *RestaurantLocationUpsert) UpdateGeocity() *RestaurantLocationUpsert {
	u.SetExcluded(restaurantlocation.FieldGeocity)
	return u
}

// ClearGeocity clears the value of the "geocity" field.
func (u *RestaurantLocationUpsert) ClearGeocity() *RestaurantLocationUpsert {
	u.SetNull(restaurantlocation.FieldGeocity)
	return u
}

// SetGeostate sets the "geostate" field.
func (u *RestaurantLocationUpsert) SetGeostate(v string) *RestaurantLocationUpsert {
	u.Set(restaurantlocation.FieldGeostate, v)
	return u
}

// UpdateGeostate sets the "geostate" field to the value that was provided on create.
func (u *RestaurantLocationUpsert) UpdateGeostate() *RestaurantLocationUpsert {
	u.SetExcluded(restaurantlocation.FieldGeostate)
	return u
}

// ClearGeostate clears the value of the "geostate" field.
func (u *RestaurantLocationUpsert) ClearGeostate() *RestaurantLocationUpsert {
	u.SetNull(restaurantlocation.FieldGeostate)
	return u
}

// SetGeozip sets the "geozip" field.
func (u *RestaurantLocationUpsert) SetGeozip(v string) *RestaurantLocationUpsert {
	u.Set(restaurantlocation.FieldGeozip, v)
	return u
}

// UpdateGeozip sets the "geozip" field to the value that was provided on create.
func (u *RestaurantLocationUpsert) UpdateGeozip() *RestaurantLocationUpsert {
	u.SetExcluded(restaurantlocation.FieldGeozip)
	return u
}

// ClearGeozip clears the value of the "geozip" field.
func (u *RestaurantLocationUpsert) ClearGeozip() *RestaurantLocationUpsert {
	u.SetNull(restaurantlocation.FieldGeozip)
	return u
}

// SetCounty sets the "county" field.
func (u *RestaurantLocationUpsert) SetCounty(v string) *RestaurantLocationUpsert {
	u.Set(restaurantlocation.FieldCounty, v)
	return u
}

// UpdateCounty sets the "county" field to the value that was provided on create.
func (u *RestaurantLocationUpsert) UpdateCounty() *RestaurantLocationUpsert {
	u.SetExcluded(restaurantlocation.FieldCounty)
	return u
}

// ClearCounty clears the value of the "county" field.
func (u *RestaurantLocationUpsert) ClearCounty() *RestaurantLocationUpsert {
	u.SetNull(restaurantlocation.FieldCounty)
	return u
}

// SetDmaMarket sets the "dma_market" field.
func (u *RestaurantLocationUpsert) SetDmaMarket(v string) *RestaurantLocationUpsert {
	u.Set(restaurantlocation.FieldDmaMarket, v)
	return u
}

// UpdateDmaMarket sets the "dma_market" field to the value that was provided on create.
func (u *RestaurantLocationUpsert) UpdateDmaMarket() *RestaurantLocationUpsert {
	u.SetExcluded(restaurantlocation.FieldDmaMarket)
	return u
}

// ClearDmaMarket clears the value of the "dma_market" field.
func (u *RestaurantLocationUpsert) ClearDmaMarket() *RestaurantLocationUpsert {
	u.SetNull(restaurantlocation.FieldDmaMarket)
	return u
}

// SetSegment sets the "segment" field.
func (u *RestaurantLocationUpsert) SetSegment(v string) *RestaurantLocationUpsert {
	u.Set(restaurantlocation.FieldSegment, v)
	return u
}

// UpdateSegment sets the "segment" field to the value that was provided on create.
func (u *RestaurantLocationUpsert) UpdateSegment() *RestaurantLocationUpsert {
	u.SetExcluded(restaurantlocation.FieldSegment)
	return u
}

// ClearSegment clears the value of the "segment" field.
func (u *RestaurantLocationUpsert) ClearSegment() *RestaurantLocationUpsert {
	u.SetNull(restaurantlocation.FieldSegment)
	return u
}

// SetSubsegment sets the "subsegment" field.
func (u *RestaurantLocationUpsert) SetSubsegment(v string) *RestaurantLocationUpsert {
	u.Set(restaurantlocation.FieldSubsegment, v)
	return u
}

// UpdateSubsegment sets the "subsegment" field to the value that was provided on create.
func (u *RestaurantLocationUpsert) UpdateSubsegment() *RestaurantLocationUpsert {
	u.SetExcluded(restaurantlocation.FieldSubsegment)
	return u
}

// ClearSubsegment clears the value of the "subsegment" field.
func (u *RestaurantLocationUpsert) ClearSubsegment() *RestaurantLocationUpsert {
	u.SetNull(restaurantlocation.FieldSubsegment)
	return u
}

// SetCategory sets the "category" field.
func (u *RestaurantLocationUpsert) SetCategory(v string) *RestaurantLocationUpsert {
	u.Set(restaurantlocation.FieldCategory, v)
	return u
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *RestaurantLocationUpsert) UpdateCategory() *RestaurantLocationUpsert {
	u.SetExcluded(restaurantlocation.FieldCategory)
	return u
}

// ClearCategory clears the value of the "category" field.
func (u *RestaurantLocationUpsert) ClearCategory() *RestaurantLocationUpsert {
	u.SetNull(restaurantlocation.FieldCategory)
	return u
}

// SetLatitude sets the "latitude" field.
func (u *RestaurantLocationUpsert) SetLatitude(v float64) *RestaurantLocationUpsert {
	u.Set(restaurantlocation.FieldLatitude, v)
	return u
}

// UpdateLatitude sets the "latitude" field to the value that was provided on create.
func (u *RestaurantLocationUpsert) UpdateLatitude() *RestaurantLocationUpsert {
	u.SetExcluded(restaurantlocation.FieldLatitude)
	return u
}

// AddLatitude adds v to the "latitude" field.
func (u *RestaurantLocationUpsert) AddLatitude(v float64) *RestaurantLocationUpsert {
	u.Add(restaurantlocation.FieldLatitude, v)
	return u
}

// ClearLatitude clears the value of the "latitude" field.
func (u *RestaurantLocationUpsert) ClearLatitude() *RestaurantLocationUpsert {
	u.SetNull(restaurantlocation.FieldLatitude)
	return u
}

// SetLongitude sets the "longitude" field.
func (u *RestaurantLocationUpsert) SetLongitude(v float64) *RestaurantLocationUpsert {
	u.Set(restaurantlocation.FieldLongitude, v)
	return u
}

// UpdateLongitude sets the "longitude" field to the value that was provided on create.
func (u *RestaurantLocationUpsert) UpdateLongitude() *RestaurantLocationUpsert {
	u.SetExcluded(restaurantlocation.FieldLongitude)
	return u
}

// AddLongitude adds v to the "longitude" field.
func (u *RestaurantLocationUpsert) AddLongitude(v float64) *RestaurantLocationUpsert {
	u.Add(restaurantlocation.FieldLongitude, v)
	return u
}

// ClearLongitude clears the value of the "longitude" field.
func (u *RestaurantLocationUpsert) ClearLongitude() *RestaurantLocationUpsert {
	u.SetNull(restaurantlocation.FieldLongitude)
	return u
}

// SetYrBuilt sets the "yr_built" field.
func (u *RestaurantLocationUpsert) SetYrBuilt(v int) *RestaurantLocationUpsert {
	u.Set(restaurantlocation.FieldYrBuilt, v)
	return u
}

// UpdateYrBuilt sets the "yr_built" field to the value that was provided on create.
func (u *RestaurantLocationUpsert) UpdateYrBuilt() *RestaurantLocationUpsert {
	u.SetExcluded(restaurantlocation.FieldYrBuilt)
	return u
}

// AddYrBuilt adds v to the "yr_built" field.
func (u *RestaurantLocationUpsert) AddYrBuilt(v int) *RestaurantLocationUpsert {
	u.Add(restaurantlocation.FieldYrBuilt, v)
	return u
}

// ClearYrBuilt clears the value of the "yr_built" field.
func (u *RestaurantLocationUpsert) ClearYrBuilt() *RestaurantLocationUpsert {
	u.SetNull(restaurantlocation.FieldYrBuilt)
	return u
}

// SetCoFr sets the "co_fr" field.
func (u *RestaurantLocationUpsert) SetCoFr(v string) *RestaurantLocationUpsert {
	u.Set(restaurantlocation.FieldCoFr, v)
	return u
}

// UpdateCoFr sets the "co_fr" field to the value that was provided on create.
func (u *RestaurantLocationUpsert) UpdateCoFr() *RestaurantLocationUpsert {
	u.SetExcluded(restaurantlocation.FieldCoFr)
	return u
}

// ClearCoFr clears the value of the "co_fr" field.
func (u *RestaurantLocationUpsert) ClearCoFr() *RestaurantLocationUpsert {
	u.SetNull(restaurantlocation.FieldCoFr)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.RestaurantLocation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(restaurantlocation.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RestaurantLocationUpsertOne) UpdateNewValues() *RestaurantLocationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(restaurantlocation.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(restaurantlocation.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RestaurantLocation.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *RestaurantLocationUpsertOne) Ignore() *RestaurantLocationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RestaurantLocationUpsertOne) DoNothing() *RestaurantLocationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RestaurantLocationCreate.OnConflict
// documentation for more info.
func (u *RestaurantLocationUpsertOne) Update(set func(*RestaurantLocationUpsert)) *RestaurantLocationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RestaurantLocationUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *RestaurantLocationUpsertOne) SetUpdatedAt(v time.Time) *RestaurantLocationUpsertOne {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RestaurantLocationUpsertOne) UpdateUpdatedAt() *RestaurantLocationUpsertOne {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetStoreNo sets the "store_no" field.
func (u *RestaurantLocationUpsertOne) SetStoreNo(v string) *RestaurantLocationUpsertOne {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.SetStoreNo(v)
	})
}

// UpdateStoreNo sets the "store_no" field to the value that was provided on create.
func (u *RestaurantLocationUpsertOne) UpdateStoreNo() *RestaurantLocationUpsertOne {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.UpdateStoreNo()
	})
}

// SetChainNo sets the "chain_no" field.
func (u *RestaurantLocationUpsertOne) SetChainNo(v string) *RestaurantLocationUpsertOne {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.SetChainNo(v)
	})
}

// UpdateChainNo sets the "chain_no" field to the value that was provided on create.
func (u *RestaurantLocationUpsertOne) UpdateChainNo() *RestaurantLocationUpsertOne {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.UpdateChainNo()
	})
}

// ClearChainNo clears the value of the "chain_no" field.
func (u *RestaurantLocationUpsertOne) ClearChainNo() *RestaurantLocationUpsertOne {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.ClearChainNo()
	})
}

// SetChain sets the "chain" field.
func (u *RestaurantLocationUpsertOne) SetChain(v string) *RestaurantLocationUpsertOne {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.SetChain(v)
	})
}

// UpdateChain sets the "chain" field to the value that was provided on create.
func (u *RestaurantLocationUpsertOne) UpdateChain() *RestaurantLocationUpsertOne {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.UpdateChain()
	})
}

// ClearChain clears the value of the "chain" field.
func (u *RestaurantLocationUpsertOne) ClearChain() *RestaurantLocationUpsertOne {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.ClearChain()
	})
}

// SetGeoaddress sets the "geoaddress" field.
func (u *RestaurantLocationUpsertOne) SetGeoaddress(v string) *RestaurantLocationUpsertOne {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.SetGeoaddress(v)
	})
}

// UpdateGeoaddress sets the "geoaddress" field to the value that was provided on create.
func (u *RestaurantLocationUpsertOne) UpdateGeoaddress() *RestaurantLocationUpsertOne {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.UpdateGeoaddress()
	})
}

// ClearGeoaddress clears the value of the "geoaddress" field.
func (u *RestaurantLocationUpsertOne) ClearGeoaddress() *RestaurantLocationUpsertOne {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.ClearGeoaddress()
	})
}

// SetGeocity sets the "geocity" field.
func (u *RestaurantLocationUpsertOne) SetGeocity(v string) *RestaurantLocationUpsertOne {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.SetGeocity(v)
	})
}

// UpdateGeocity sets the "geocity" field to the value that was provided on create.
func (u *RestaurantLocationUpsertOne) UpdateGeocity() *RestaurantLocationUpsertOne {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.UpdateGeocity()
	})
}

// ClearGeocity clears the value of the "geocity" field.
func (u *RestaurantLocationUpsertOne) ClearGeocity() *RestaurantLocationUpsertOne {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.ClearGeocity()
	})
}

// SetGeostate sets the "geostate" field.
func (u *RestaurantLocationUpsertOne) SetGeostate(v string) *RestaurantLocationUpsertOne {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.SetGeostate(v)
	})
}

// UpdateGeostate sets the "geostate" field to the value that was provided on create.
func (u *RestaurantLocationUpsertOne) UpdateGeostate() *RestaurantLocationUpsertOne {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.UpdateGeostate()
	})
}

// ClearGeostate clears the value of the "geostate" field.
func (u *RestaurantLocationUpsertOne) ClearGeostate() *RestaurantLocationUpsertOne {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.ClearGeostate()
	})
}

// SetGeozip sets the "geozip" field.
func (u *RestaurantLocationUpsertOne) SetGeozip(v string) *RestaurantLocationUpsertOne {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.SetGeozip(v)
	})
}

// UpdateGeozip sets the "geozip" field to the value that was provided on create.
func (u *RestaurantLocationUpsertOne) UpdateGeozip() *RestaurantLocationUpsertOne {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.UpdateGeozip()
	})
}

// ClearGeozip clears the value of the "geozip" field.
func (u *RestaurantLocationUpsertOne) ClearGeozip() *RestaurantLocationUpsertOne {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.ClearGeozip()
	})
}

// SetCounty sets the "county" field.
func (u *RestaurantLocationUpsertOne) SetCounty(v string) *RestaurantLocationUpsertOne {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.SetCounty(v)
	})
}

// UpdateCounty sets the "county" field to the value that was provided on create.
func (u *RestaurantLocationUpsertOne) UpdateCounty() *RestaurantLocationUpsertOne {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.UpdateCounty()
	})
}

// ClearCounty clears the value of the "county" field.
func (u *RestaurantLocationUpsertOne) ClearCounty() *RestaurantLocationUpsertOne {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.ClearCounty()
	})
}

// SetDmaMarket sets the "dma_market" field.
func (u *RestaurantLocationUpsertOne) SetDmaMarket(v string) *RestaurantLocationUpsertOne {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.SetDmaMarket(v)
	})
}

// UpdateDmaMarket sets the "dma_market" field to the value that was provided on create.
func (u *RestaurantLocationUpsertOne) UpdateDmaMarket() *RestaurantLocationUpsertOne {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.UpdateDmaMarket()
	})
}

// ClearDmaMarket clears the value of the "dma_market" field.
func (u *RestaurantLocationUpsertOne) ClearDmaMarket() *RestaurantLocationUpsertOne {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.ClearDmaMarket()
	})
}

// SetSegment sets the "segment" field.
func (u *RestaurantLocationUpsertOne) SetSegment(v string) *RestaurantLocationUpsertOne {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.SetSegment(v)
	})
}

// UpdateSegment sets the "segment" field to the value that was provided on create.
func (u *RestaurantLocationUpsertOne) UpdateSegment() *RestaurantLocationUpsertOne {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.UpdateSegment()
	})
}

// ClearSegment clears the value of the "segment" field.
func (u *RestaurantLocationUpsertOne) ClearSegment() *RestaurantLocationUpsertOne {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.ClearSegment()
	})
}

// SetSubsegment sets the "subsegment" field.
func (u *RestaurantLocationUpsertOne) SetSubsegment(v string) *RestaurantLocationUpsertOne {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.SetSubsegment(v)
	})
}

// UpdateSubsegment sets the "subsegment" field to the value that was provided on create.
func (u *RestaurantLocationUpsertOne) UpdateSubsegment() *RestaurantLocationUpsertOne {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.UpdateSubsegment()
	})
}

// ClearSubsegment clears the value of the "subsegment" field.
func (u *RestaurantLocationUpsertOne) ClearSubsegment() *RestaurantLocationUpsertOne {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.ClearSubsegment()
	})
}

// SetCategory sets the "category" field.
func (u *RestaurantLocationUpsertOne) SetCategory(v string) *RestaurantLocationUpsertOne {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *RestaurantLocationUpsertOne) UpdateCategory() *RestaurantLocationUpsertOne {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.UpdateCategory()
	})
}

// ClearCategory clears the value of the "category" field.
func (u *RestaurantLocationUpsertOne) ClearCategory() *RestaurantLocationUpsertOne {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.ClearCategory()
	})
}

// SetLatitude sets the "latitude" field.
func (u *RestaurantLocationUpsertOne) SetLatitude(v float64) *RestaurantLocationUpsertOne {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.SetLatitude(v)
	})
}

// AddLatitude adds v to the "latitude" field.
func (u *RestaurantLocationUpsertOne) AddLatitude(v float64) *RestaurantLocationUpsertOne {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.AddLatitude(v)
	})
}

// UpdateLatitude sets the "latitude" field to the value that was provided on create.
func (u *RestaurantLocationUpsertOne) UpdateLatitude() *RestaurantLocationUpsertOne {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.UpdateLatitude()
	})
}

// ClearLatitude clears the value of the "latitude" field.
func (u *RestaurantLocationUpsertOne) ClearLatitude() *RestaurantLocationUpsertOne {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.ClearLatitude()
	})
}

// SetLongitude sets the "longitude" field.
func (u *RestaurantLocationUpsertOne) SetLongitude(v float64) *RestaurantLocationUpsertOne {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.SetLongitude(v)
	})
}

// AddLongitude adds v to the "longitude" field.
func (u *RestaurantLocationUpsertOne) AddLongitude(v float64) *RestaurantLocationUpsertOne {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.AddLongitude(v)
	})
}

// UpdateLongitude sets the "longitude" field to the value that was provided on create.
func (u *RestaurantLocationUpsertOne) UpdateLongitude() *RestaurantLocationUpsertOne {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.UpdateLongitude()
	})
}

// ClearLongitude clears the value of the "longitude" field.
func (u *RestaurantLocationUpsertOne) ClearLongitude() *RestaurantLocationUpsertOne {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.ClearLongitude()
	})
}

// SetYrBuilt sets the "yr_built" field.
func (u *RestaurantLocationUpsertOne) SetYrBuilt(v int) *RestaurantLocationUpsertOne {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.SetYrBuilt(v)
	})
}

// AddYrBuilt adds v to the "yr_built" field.
func (u *RestaurantLocationUpsertOne) AddYrBuilt(v int) *RestaurantLocationUpsertOne {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.AddYrBuilt(v)
	})
}

// UpdateYrBuilt sets the "yr_built" field to the value that was provided on create.
func (u *RestaurantLocationUpsertOne) UpdateYrBuilt() *RestaurantLocationUpsertOne {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.UpdateYrBuilt()
	})
}

// ClearYrBuilt clears the value of the "yr_built" field.
func (u *RestaurantLocationUpsertOne) ClearYrBuilt() *RestaurantLocationUpsertOne {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.ClearYrBuilt()
	})
}

// SetCoFr sets the "co_fr" field.
func (u *RestaurantLocationUpsertOne) SetCoFr(v string) *RestaurantLocationUpsertOne {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.SetCoFr(v)
	})
}

// UpdateCoFr sets the "co_fr" field to the value that was provided on create.
func (u *RestaurantLocationUpsertOne) UpdateCoFr() *RestaurantLocationUpsertOne {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.UpdateCoFr()
	})
}

// ClearCoFr clears the value of the "co_fr" field.
func (u *RestaurantLocationUpsertOne) ClearCoFr() *RestaurantLocationUpsertOne {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.ClearCoFr()
	})
}

// Exec executes the query.
func (u *RestaurantLocationUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for RestaurantLocationCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RestaurantLocationUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *RestaurantLocationUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: RestaurantLocationUpsertOne.ID is not supported by MySQL driver. Use RestaurantLocationUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *RestaurantLocationUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// RestaurantLocationCreateBulk is the builder for creating many RestaurantLocation entities in bulk.
type RestaurantLocationCreateBulk struct {
	config
	err      error
	builders []*RestaurantLocationCreate
	conflict []sql.ConflictOption
}

// Save creates the RestaurantLocation entities in the database.
func (_c *RestaurantLocationCreateBulk) Save(ctx context.Context) ([]*RestaurantLocation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RestaurantLocation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RestaurantLocationMutation)
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
func (_c *RestaurantLocationCreateBulk) SaveX(ctx context.Context) []*RestaurantLocation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RestaurantLocationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RestaurantLocationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RestaurantLocation.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RestaurantLocationUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *RestaurantLocationCreateBulk) OnConflict(opts ...sql.ConflictOption) *RestaurantLocationUpsertBulk {
	_c.conflict = opts
	return &RestaurantLocationUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RestaurantLocation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RestaurantLocationCreateBulk) OnConflictColumns(columns ...string) *RestaurantLocationUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RestaurantLocationUpsertBulk{
		create: _c,
	}
}

// RestaurantLocationUpsertBulk is the builder for "upsert"-ing
// a bulk of RestaurantLocation nodes.
type RestaurantLocationUpsertBulk struct {
	create *RestaurantLocationCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.RestaurantLocation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(restaurantlocation.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RestaurantLocationUpsertBulk) UpdateNewValues() *RestaurantLocationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(restaurantlocation.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(restaurantlocation.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RestaurantLocation.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *RestaurantLocationUpsertBulk) Ignore() *RestaurantLocationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RestaurantLocationUpsertBulk) DoNothing() *RestaurantLocationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RestaurantLocationCreateBulk.OnConflict
// documentation for more info.
func (u *RestaurantLocationUpsertBulk) Update(set func(*RestaurantLocationUpsert)) *RestaurantLocationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RestaurantLocationUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *RestaurantLocationUpsertBulk) SetUpdatedAt(v time.Time) *RestaurantLocationUpsertBulk {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RestaurantLocationUpsertBulk) UpdateUpdatedAt() *RestaurantLocationUpsertBulk {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetStoreNo sets the "store_no" field.
func (u *RestaurantLocationUpsertBulk) SetStoreNo(v string) *RestaurantLocationUpsertBulk {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.SetStoreNo(v)
	})
}

// UpdateStoreNo sets the "store_no" field to the value that was provided on create.
func (u *RestaurantLocationUpsertBulk) UpdateStoreNo() *RestaurantLocationUpsertBulk {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.UpdateStoreNo()
	})
}

// SetChainNo sets the "chain_no" field.
func (u *RestaurantLocationUpsertBulk) SetChainNo(v string) *RestaurantLocationUpsertBulk {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.SetChainNo(v)
	})
}

// UpdateChainNo sets the "chain_no" field to the value that was provided on create.
func (u *RestaurantLocationUpsertBulk) UpdateChainNo() *RestaurantLocationUpsertBulk {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.UpdateChainNo()
	})
}

// ClearChainNo clears the value of the "chain_no" field.
func (u *RestaurantLocationUpsertBulk) ClearChainNo() *RestaurantLocationUpsertBulk {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.ClearChainNo()
	})
}

// SetChain sets the "chain" field.
func (u *RestaurantLocationUpsertBulk) SetChain(v string) *RestaurantLocationUpsertBulk {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.SetChain(v)
	})
}

// UpdateChain sets the "chain" field to the value that was provided on create.
func (u *RestaurantLocationUpsertBulk) UpdateChain() *RestaurantLocationUpsertBulk {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.UpdateChain()
	})
}

// ClearChain clears the value of the "chain" field.
func (u *RestaurantLocationUpsertBulk) ClearChain() *RestaurantLocationUpsertBulk {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.ClearChain()
	})
}

// SetGeoaddress sets the "geoaddress" field.
func (u *RestaurantLocationUpsertBulk) SetGeoaddress(v string) *RestaurantLocationUpsertBulk {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.SetGeoaddress(v)
	})
}

// UpdateGeoaddress sets the "geoaddress" field to the value that was provided on create.
func (u *RestaurantLocationUpsertBulk) UpdateGeoaddress() *RestaurantLocationUpsertBulk {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.UpdateGeoaddress()
	})
}

// ClearGeoaddress clears the value of the "geoaddress" field.
func (u *RestaurantLocationUpsertBulk) ClearGeoaddress() *RestaurantLocationUpsertBulk {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.ClearGeoaddress()
	})
}

// SetGeocity sets the "geocity" field.
func (u *RestaurantLocationUpsertBulk) SetGeocity(v string) *RestaurantLocationUpsertBulk {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.SetGeocity(v)
	})
}

// UpdateGeocity sets the "geocity" field to the value that was provided on create.
func (u *RestaurantLocationUpsertBulk) UpdateGeocity() *RestaurantLocationUpsertBulk {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.UpdateGeocity()
	})
}

// ClearGeocity clears the value of the "geocity" field.
func (u *RestaurantLocationUpsertBulk) ClearGeocity() *RestaurantLocationUpsertBulk {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.ClearGeocity()
	})
}

// SetGeostate sets the "geostate" field.
func (u *RestaurantLocationUpsertBulk) SetGeostate(v string) *RestaurantLocationUpsertBulk {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.SetGeostate(v)
	})
}

// UpdateGeostate sets the "geostate" field to the value that was provided on create.
func (u *RestaurantLocationUpsertBulk) UpdateGeostate() *RestaurantLocationUpsertBulk {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.UpdateGeostate()
	})
}

// ClearGeostate clears the value of the "geostate" field.
func (u *RestaurantLocationUpsertBulk) ClearGeostate() *RestaurantLocationUpsertBulk {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.ClearGeostate()
	})
}

// SetGeozip sets the "geozip" field.
func (u *RestaurantLocationUpsertBulk) SetGeozip(v string) *RestaurantLocationUpsertBulk {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.SetGeozip(v)
	})
}

// UpdateGeozip sets the "geozip" field to the value that was provided on create.
func (u *RestaurantLocationUpsertBulk) UpdateGeozip() *RestaurantLocationUpsertBulk {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.UpdateGeozip()
	})
}

// ClearGeozip clears the value of the "geozip" field.
func (u *RestaurantLocationUpsertBulk) ClearGeozip() *RestaurantLocationUpsertBulk {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.ClearGeozip()
	})
}

// SetCounty sets the "county" field.
func (u *RestaurantLocationUpsertBulk) SetCounty(v string) *RestaurantLocationUpsertBulk {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.SetCounty(v)
	})
}

// UpdateCounty sets the "county" field to the value that was provided on create.
func (u *RestaurantLocationUpsertBulk) UpdateCounty() *RestaurantLocationUpsertBulk {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.UpdateCounty()
	})
}

// ClearCounty clears the value of the "county" field.
func (u *RestaurantLocationUpsertBulk) ClearCounty() *RestaurantLocationUpsertBulk {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.ClearCounty()
	})
}

// SetDmaMarket sets the "dma_market" field.
func (u *RestaurantLocationUpsertBulk) SetDmaMarket(v string) *RestaurantLocationUpsertBulk {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.SetDmaMarket(v)
	})
}

// UpdateDmaMarket sets the "dma_market" field to the value that was provided on create.
func (u *RestaurantLocationUpsertBulk) UpdateDmaMarket() *RestaurantLocationUpsertBulk {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.UpdateDmaMarket()
	})
}

// ClearDmaMarket clears the value of the "dma_market" field.
func (u *RestaurantLocationUpsertBulk) ClearDmaMarket() *RestaurantLocationUpsertBulk {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.ClearDmaMarket()
	})
}

// SetSegment sets the "segment" field.
func (u *RestaurantLocationUpsertBulk) SetSegment(v string) *RestaurantLocationUpsertBulk {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.SetSegment(v)
	})
}

// UpdateSegment sets the "segment" field to the value that was provided on create.
func (u *RestaurantLocationUpsertBulk) UpdateSegment() *RestaurantLocationUpsertBulk {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.UpdateSegment()
	})
}

// ClearSegment clears the value of the "segment" field.
func (u *RestaurantLocationUpsertBulk) ClearSegment() *RestaurantLocationUpsertBulk {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.ClearSegment()
	})
}

// SetSubsegment sets the "subsegment" field.
func (u *RestaurantLocationUpsertBulk) SetSubsegment(v string) *RestaurantLocationUpsertBulk {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.SetSubsegment(v)
	})
}

// UpdateSubsegment sets the "subsegment" field to the value that was provided on create.
func (u *RestaurantLocationUpsertBulk) UpdateSubsegment() *RestaurantLocationUpsertBulk {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.UpdateSubsegment()
	})
}

// ClearSubsegment clears the value of the "subsegment" field.
func (u *RestaurantLocationUpsertBulk) ClearSubsegment() *RestaurantLocationUpsertBulk {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.ClearSubsegment()
	})
}

// SetCategory sets the "category" field.
func (u *RestaurantLocationUpsertBulk) SetCategory(v string) *RestaurantLocationUpsertBulk {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *RestaurantLocationUpsertBulk) UpdateCategory() *RestaurantLocationUpsertBulk {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.UpdateCategory()
	})
}

// ClearCategory clears the value of the "category" field.
func (u *RestaurantLocationUpsertBulk) ClearCategory() *RestaurantLocationUpsertBulk {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.ClearCategory()
	})
}

// SetLatitude sets the "latitude" field.
func (u *RestaurantLocationUpsertBulk) SetLatitude(v float64) *RestaurantLocationUpsertBulk {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.SetLatitude(v)
	})
}

// AddLatitude adds v to the "latitude" field.
func (u *RestaurantLocationUpsertBulk) AddLatitude(v float64) *RestaurantLocationUpsertBulk {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.AddLatitude(v)
	})
}

// UpdateLatitude sets the "latitude" field to the value that was provided on create.
func (u *RestaurantLocationUpsertBulk) UpdateLatitude() *RestaurantLocationUpsertBulk {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.UpdateLatitude()
	})
}

// ClearLatitude clears the value of the "latitude" field.
func (u *RestaurantLocationUpsertBulk) ClearLatitude() *RestaurantLocationUpsertBulk {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.ClearLatitude()
	})
}

// SetLongitude sets the "longitude" field.
func (u *RestaurantLocationUpsertBulk) SetLongitude(v float64) *RestaurantLocationUpsertBulk {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.SetLongitude(v)
	})
}

// AddLongitude adds v to the "longitude" field.
func (u *RestaurantLocationUpsertBulk) AddLongitude(v float64) *RestaurantLocationUpsertBulk {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.AddLongitude(v)
	})
}

// UpdateLongitude sets the "longitude" field to the value that was provided on create.
func (u *RestaurantLocationUpsertBulk) UpdateLongitude() *RestaurantLocationUpsertBulk {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.UpdateLongitude()
	})
}

// ClearLongitude clears the value of the "longitude" field.
func (u *RestaurantLocationUpsertBulk) ClearLongitude() *RestaurantLocationUpsertBulk {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.ClearLongitude()
	})
}

// SetYrBuilt sets the "yr_built" field.
func (u *RestaurantLocationUpsertBulk) SetYrBuilt(v int) *RestaurantLocationUpsertBulk {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.SetYrBuilt(v)
	})
}

// AddYrBuilt adds v to the "yr_built" field.
func (u *RestaurantLocationUpsertBulk) AddYrBuilt(v int) *RestaurantLocationUpsertBulk {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.AddYrBuilt(v)
	})
}

// UpdateYrBuilt sets the "yr_built" field to the value that was provided on create.
func (u *RestaurantLocationUpsertBulk) UpdateYrBuilt() *RestaurantLocationUpsertBulk {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.UpdateYrBuilt()
	})
}

// ClearYrBuilt clears the value of the "yr_built" field.
func (u *RestaurantLocationUpsertBulk) ClearYrBuilt() *RestaurantLocationUpsertBulk {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.ClearYrBuilt()
	})
}

// SetCoFr sets the "co_fr" field.
func (u *RestaurantLocationUpsertBulk) SetCoFr(v string) *RestaurantLocationUpsertBulk {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.SetCoFr(v)
	})
}

// UpdateCoFr sets the "co_fr" field to the value that was provided on create.
func (u *RestaurantLocationUpsertBulk) UpdateCoFr() *RestaurantLocationUpsertBulk {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.UpdateCoFr()
	})
}

// ClearCoFr clears the value of the "co_fr" field.
func (u *RestaurantLocationUpsertBulk) ClearCoFr() *RestaurantLocationUpsertBulk {
	return u.Update(func(s *RestaurantLocationUpsert) {
		s.ClearCoFr()
	})
}

// Exec executes the query.
func (u *RestaurantLocationUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the RestaurantLocationCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for RestaurantLocationCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RestaurantLocationUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
