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
	"github.com/oculusgrp/dealdesk_backend/internal/repo/predicate"
	"github.com/oculusgrp/dealdesk_backend/internal/repo/restaurantlocation"
	"github.com/oculusgrp/dealdesk_backend/internal/repo/restauranttrend"
)

// RestaurantLocationUpdate is the builder for updating RestaurantLocation entities.
type RestaurantLocationUpdate struct {
	config
	hooks    []Hook
	mutation *RestaurantLocationMutation
}

// Where appends a list predicates to the RestaurantLocationUpdate builder.
func (_u *RestaurantLocationUpdate) Where(ps ...predicate.RestaurantLocation) *RestaurantLocationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RestaurantLocationUpdate) SetUpdatedAt(v time.Time) *RestaurantLocationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStoreNo sets the "store_no" field.
func (_u *RestaurantLocationUpdate) SetStoreNo(v string) *RestaurantLocationUpdate {
	_u.mutation.SetStoreNo(v)
	return _u
}

// SetNillableStoreNo sets the "store_no" field if the given value is not nil.
func (_u *RestaurantLocationUpdate) SetNillableStoreNo(v *string) *RestaurantLocationUpdate {
	if v != nil {
		_u.SetStoreNo(*v)
	}
	return _u
}

// SetChainNo sets the "chain_no" field.
func (_u *RestaurantLocationUpdate) SetChainNo(v string) *RestaurantLocationUpdate {
	_u.mutation.SetChainNo(v)
	return _u
}

// SetNillableChainNo sets the "chain_no" field if the given value is not nil.
func (_u *RestaurantLocationUpdate) SetNillableChainNo(v *string) *RestaurantLocationUpdate {
	if v != nil {
		_u.SetChainNo(*v)
	}
	return _u
}

// ClearChainNo clears the value of the "chain_no" field.
func (_u *RestaurantLocationUpdate) ClearChainNo() *RestaurantLocationUpdate {
	_u.mutation.ClearChainNo()
	return _u
}

// SetChain sets the "chain" field.
func (_u *RestaurantLocationUpdate) SetChain(v string) *RestaurantLocationUpdate {
	_u.mutation.SetChain(v)
	return _u
}

// SetNillableChain sets the "chain" field if the given value is not nil.
func (_u *RestaurantLocationUpdate) SetNillableChain(v *string) *RestaurantLocationUpdate {
	if v != nil {
		_u.SetChain(*v)
	}
	return _u
}

// ClearChain clears the value of the "chain" field.
func (_u *RestaurantLocationUpdate) ClearChain() *RestaurantLocationUpdate {
	_u.mutation.ClearChain()
	return _u
}

// SetGeoaddress sets the "geoaddress" field.
func (_u *RestaurantLocationUpdate) SetGeoaddress(v string) *RestaurantLocationUpdate {
	_u.mutation.SetGeoaddress(v)
	return _u
}

// SetNillableGeoaddress sets the "geoaddress" field if the given value is not nil.
func (_u *RestaurantLocationUpdate) SetNillableGeoaddress(v *string) *RestaurantLocationUpdate {
	if v != nil {
		_u.SetGeoaddress(*v)
	}
	return _u
}

// ClearGeoaddress clears the value of the "geoaddress" field.
func (_u *RestaurantLocationUpdate) ClearGeoaddress() *RestaurantLocationUpdate {
	_u.mutation.ClearGeoaddress()
	return _u
}

// SetGeocity sets the "geocity" field.
func (_u *RestaurantLocationUpdate) SetGeocity(v string) *RestaurantLocationUpdate {
	_u.mutation.SetGeocity(v)
	return _u
}

// SetNillableGeocity sets the "geocity" field if the given value is not nil.
func (_u *RestaurantLocationUpdate) SetNillableGeocity(v *string) *RestaurantLocationUpdate {
	if v != nil {
		_u.SetGeocity(*v)
	}
	return _u
}

// ClearGeocity clears the value of the "geocity" field.
func (_u *RestaurantLocationUpdate) ClearGeocity() *RestaurantLocationUpdate {
	_u.mutation.ClearGeocity()
	return _u
}

// SetGeostate sets the "geostate" field.
func (_u *RestaurantLocationUpdate) SetGeostate(v string) *RestaurantLocationUpdate {
	_u.mutation.SetGeostate(v)
	return _u
}

// SetNillableGeostate sets the "geostate" field if the given value is not nil.
func (_u *RestaurantLocationUpdate) SetNillableGeostate(v *string) *RestaurantLocationUpdate {
	if v != nil {
		_u.SetGeostate(*v)
	}
	return _u
}

// ClearGeostate clears the value of the "geostate" field.
func (_u *RestaurantLocationUpdate) ClearGeostate() *RestaurantLocationUpdate {
	_u.mutation.ClearGeostate()
	return _u
}

// SetGeozip sets the "geozip" field.
func (_u *RestaurantLocationUpdate) SetGeozip(v string) *RestaurantLocationUpdate {
	_u.mutation.SetGeozip(v)
	return _u
}

// SetNillableGeozip sets the "geozip" field if the given value is not nil.
func (_u *RestaurantLocationUpdate) SetNillableGeozip(v *string) *RestaurantLocationUpdate {
	if v != nil {
		_u.SetGeozip(*v)
	}
	return _u
}

// ClearGeozip clears the value of the "geozip" field.
func (_u *RestaurantLocationUpdate) ClearGeozip() *RestaurantLocationUpdate {
	_u.mutation.ClearGeozip()
	return _u
}

// SetCounty sets the "county" field.
func (_u *RestaurantLocationUpdate) SetCounty(v string) *RestaurantLocationUpdate {
	_u.mutation.SetCounty(v)
	return _u
}

// SetNillableCounty sets the "county" field if the given value is not nil.
func (_u *RestaurantLocationUpdate) SetNillableCounty(v *string) *RestaurantLocationUpdate {
	if v != nil {
		_u.SetCounty(*v)
	}
	return _u
}

// ClearCounty clears the value of the "county" field.
func (_u *RestaurantLocationUpdate) ClearCounty() *RestaurantLocationUpdate {
	_u.mutation.ClearCounty()
	return _u
}

// SetDmaMarket sets the "dma_market" field.
func (_u *RestaurantLocationUpdate) SetDmaMarket(v string) *RestaurantLocationUpdate {
	_u.mutation.SetDmaMarket(v)
	return _u
}

// SetNillableDmaMarket sets the "dma_market" field if the given value is not nil.
func (_u *RestaurantLocationUpdate) SetNillableDmaMarket(v *string) *RestaurantLocationUpdate {
	if v != nil {
		_u.SetDmaMarket(*v)
	}
	return _u
}

// ClearDmaMarket clears the value of the "dma_market" field.
func (_u *RestaurantLocationUpdate) ClearDmaMarket() *RestaurantLocationUpdate {
	_u.mutation.ClearDmaMarket()
	return _u
}

// SetSegment sets the "segment" field.
func (_u *RestaurantLocationUpdate) SetSegment(v string) *RestaurantLocationUpdate {
	_u.mutation.SetSegment(v)
	return _u
}

// SetNillableSegment sets the "segment" field if the given value is not nil.
func (_u *RestaurantLocationUpdate) SetNillableSegment(v *string) *RestaurantLocationUpdate {
	if v != nil {
		_u.SetSegment(*v)
	}
	return _u
}

// ClearSegment clears the value of the "segment" field.
func (_u *RestaurantLocationUpdate) ClearSegment() *RestaurantLocationUpdate {
	_u.mutation.ClearSegment()
	return _u
}

// SetSubsegment sets the "subsegment" field.
func (_u *RestaurantLocationUpdate) SetSubsegment(v string) *RestaurantLocationUpdate {
	_u.mutation.SetSubsegment(v)
	return _u
}

// SetNillableSubsegment sets the "subsegment" field if the given value is not nil.
func (_u *RestaurantLocationUpdate) SetNillableSubsegment(v *string) *RestaurantLocationUpdate {
	if v != nil {
		_u.SetSubsegment(*v)
	}
	return _u
}

// ClearSubsegment clears the value of the "subsegment" field.
func (_u *RestaurantLocationUpdate) ClearSubsegment() *RestaurantLocationUpdate {
	_u.mutation.ClearSubsegment()
	return _u
}

// SetCategory sets the "category" field.
func (_u *RestaurantLocationUpdate) SetCategory(v string) *RestaurantLocationUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *RestaurantLocationUpdate) SetNillableCategory(v *string) *RestaurantLocationUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *RestaurantLocationUpdate) ClearCategory() *RestaurantLocationUpdate {
	_u.mutation.ClearCategory()
	return _u
}

// SetLatitude sets the "latitude" field.
func (_u *RestaurantLocationUpdate) SetLatitude(v float64) *RestaurantLocationUpdate {
	_u.mutation.ResetLatitude()
	_u.mutation.SetLatitude(v)
	return _u
}

// SetNillableLatitude sets the "latitude" field if the given value is not nil.
func (_u *RestaurantLocationUpdate) SetNillableLatitude(v *float64) *RestaurantLocationUpdate {
	if v != nil {
		_u.SetLatitude(*v)
	}
	return _u
}

// AddLatitude adds value to the "latitude" field.
func (_u *RestaurantLocationUpdate) AddLatitude(v float64) *RestaurantLocationUpdate {
	_u.mutation.AddLatitude(v)
	return _u
}

// ClearLatitude clears the value of the "latitude" field.
func (_u *RestaurantLocationUpdate) ClearLatitude() *RestaurantLocationUpdate {
	_u.mutation.ClearLatitude()
	return _u
}

// SetLongitude sets the "longitude" field.
func (_u *RestaurantLocationUpdate) SetLongitude(v float64) *RestaurantLocationUpdate {
	_u.mutation.ResetLongitude()
	_u.mutation.SetLongitude(v)
	return _u
}

// SetNillableLongitude sets the "longitude" field if the given value is not nil.
func (_u *RestaurantLocationUpdate) SetNillableLongitude(v *float64) *RestaurantLocationUpdate {
	if v != nil {
		_u.SetLongitude(*v)
	}
	return _u
}

// AddLongitude adds value to the "longitude" field.
func (_u *RestaurantLocationUpdate) AddLongitude(v float64) *RestaurantLocationUpdate {
	_u.mutation.AddLongitude(v)
	return _u
}

// ClearLongitude clears the value of the "longitude" field.
func (_u *RestaurantLocationUpdate) ClearLongitude() *RestaurantLocationUpdate {
	_u.mutation.ClearLongitude()
	return _u
}

// SetYrBuilt sets the "yr_built" field.
func (_u *RestaurantLocationUpdate) SetYrBuilt(v int) *RestaurantLocationUpdate {
	_u.mutation.ResetYrBuilt()
	_u.mutation.SetYrBuilt(v)
	return _u
}

// SetNillableYrBuilt sets the "yr_built" field if the given value is not nil.
func (_u *RestaurantLocationUpdate) SetNillableYrBuilt(v *int) *RestaurantLocationUpdate {
	if v != nil {
		_u.SetYrBuilt(*v)
	}
	return _u
}

// AddYrBuilt adds value to the "yr_built" field.
func (_u *RestaurantLocationUpdate) AddYrBuilt(v int) *RestaurantLocationUpdate {
	_u.mutation.AddYrBuilt(v)
	return _u
}

// ClearYrBuilt clears the value of the "yr_built" field.
func (_u *RestaurantLocationUpdate) ClearYrBuilt() *RestaurantLocationUpdate {
	_u.mutation.ClearYrBuilt()
	return _u
}

// SetCoFr sets the "co_fr" field.
func (_u *RestaurantLocationUpdate) SetCoFr(v string) *RestaurantLocationUpdate {
	_u.mutation.SetCoFr(v)
	return _u
}

// SetNillableCoFr sets the "co_fr" field if the given value is not nil.
func (_u *RestaurantLocationUpdate) SetNillableCoFr(v *string) *RestaurantLocationUpdate {
	if v != nil {
		_u.SetCoFr(*v)
	}
	return _u
}

// ClearCoFr clears the value of the "co_fr" field.
func (_u *RestaurantLocationUpdate) ClearCoFr() *RestaurantLocationUpdate {
	_u.mutation.ClearCoFr()
	return _u
}

// AddTrendIDs adds the "trends" edge to the RestaurantTrend entity by IDs.
func (_u *RestaurantLocationUpdate) AddTrendIDs(ids ...uuid.UUID) *RestaurantLocationUpdate {
	_u.mutation.AddTrendIDs(ids...)
	return _u
}

// AddTrends adds the "trends" edges to the RestaurantTrend entity.
func (_u *RestaurantLocationUpdate) AddTrends(v ...*RestaurantTrend) *RestaurantLocationUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTrendIDs(ids...)
}

// Mutation returns the RestaurantLocationMutation object of the builder.
func (_u *RestaurantLocationUpdate) Mutation() *RestaurantLocationMutation {
	return _u.mutation
}

// ClearTrends clears all "trends" edges to the RestaurantTrend entity.
func (_u *RestaurantLocationUpdate) ClearTrends() *RestaurantLocationUpdate {
	_u.mutation.ClearTrends()
	return _u
}

// RemoveTrendIDs removes the "trends" edge to RestaurantTrend entities by IDs.
func (_u *RestaurantLocationUpdate) RemoveTrendIDs(ids ...uuid.UUID) *RestaurantLocationUpdate {
	_u.mutation.RemoveTrendIDs(ids...)
	return _u
}

// RemoveTrends removes "trends" edges to RestaurantTrend entities.
func (_u *RestaurantLocationUpdate) RemoveTrends(v ...*RestaurantTrend) *RestaurantLocationUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTrendIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RestaurantLocationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RestaurantLocationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RestaurantLocationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RestaurantLocationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RestaurantLocationUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := restaurantlocation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RestaurantLocationUpdate) check() error {
	if v, ok := _u.mutation.StoreNo(); ok {
		if err := restaurantlocation.StoreNoValidator(v); err != nil {
			return &ValidationError{Name: "store_no", err: fmt.Errorf(`repo: validator failed for field "RestaurantLocation.store_no": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChainNo(); ok {
		if err := restaurantlocation.ChainNoValidator(v); err != nil {
			return &ValidationError{Name: "chain_no", err: fmt.Errorf(`repo: validator failed for field "RestaurantLocation.chain_no": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Chain(); ok {
		if err := restaurantlocation.ChainValidator(v); err != nil {
			return &ValidationError{Name: "chain", err: fmt.Errorf(`repo: validator failed for field "RestaurantLocation.chain": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Geoaddress(); ok {
		if err := restaurantlocation.GeoaddressValidator(v); err != nil {
			return &ValidationError{Name: "geoaddress", err: fmt.Errorf(`repo: validator failed for field "RestaurantLocation.geoaddress": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Geocity(); ok {
		if err := restaurantlocation.GeocityValidator(v); err != nil {
			return &ValidationError{Name: "geocity", err: fmt.Errorf(`repo: validator failed for field "RestaurantLocation.geocity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Geostate(); ok {
		if err := restaurantlocation.GeostateValidator(v); err != nil {
			return &ValidationError{Name: "geostate", err: fmt.Errorf(`repo: validator failed for field "RestaurantLocation.geostate": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Geozip(); ok {
		if err := restaurantlocation.GeozipValidator(v); err != nil {
			return &ValidationError{Name: "geozip", err: fmt.Errorf(`repo: validator failed for field "RestaurantLocation.geozip": %w`, err)}
		}
	}
	if v, ok := _u.mutation.County(); ok {
		if err := restaurantlocation.CountyValidator(v); err != nil {
			return &ValidationError{Name: "county", err: fmt.Errorf(`repo: validator failed for field "RestaurantLocation.county": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DmaMarket(); ok {
		if err := restaurantlocation.DmaMarketValidator(v); err != nil {
			return &ValidationError{Name: "dma_market", err: fmt.Errorf(`repo: validator failed for field "RestaurantLocation.dma_market": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Segment(); ok {
		if err := restaurantlocation.SegmentValidator(v); err != nil {
			return &ValidationError{Name: "segment", err: fmt.Errorf(`repo: validator failed for field "RestaurantLocation.segment": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subsegment(); ok {
		if err := restaurantlocation.SubsegmentValidator(v); err != nil {
			return &ValidationError{Name: "subsegment", err: fmt.Errorf(`repo: validator failed for field "RestaurantLocation.subsegment": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := restaurantlocation.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`repo: validator failed for field "RestaurantLocation.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CoFr(); ok {
		if err := restaurantlocation.CoFrValidator(v); err != nil {
			return &ValidationError{Name: "co_fr", err: fmt.Errorf(`repo: validator failed for field "RestaurantLocation.co_fr": %w`, err)}
		}
	}
	return nil
}

func (_u *RestaurantLocationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(restaurantlocation.Table, restaurantlocation.Columns, sqlgraph.NewFieldSpec(restaurantlocation.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(restaurantlocation.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StoreNo(); ok {
		_spec.SetField(restaurantlocation.FieldStoreNo, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChainNo(); ok {
		_spec.SetField(restaurantlocation.FieldChainNo, field.TypeString, value)
	}
	if _u.mutation.ChainNoCleared() {
		_spec.ClearField(restaurantlocation.FieldChainNo, field.TypeString)
	}
	if value, ok := _u.mutation.Chain(); ok {
		_spec.SetField(restaurantlocation.FieldChain, field.TypeString, value)
	}
	if _u.mutation.ChainCleared() {
		_spec.ClearField(restaurantlocation.FieldChain, field.TypeString)
	}
	if value, ok := _u.mutation.Geoaddress(); ok {
		_spec.SetField(restaurantlocation.FieldGeoaddress, field.TypeString, value)
	}
	if _u.mutation.GeoaddressCleared() {
		_spec.ClearField(restaurantlocation.FieldGeoaddress, field.TypeString)
	}
	if value, ok := _u.mutation.Geocity(); ok {
		_spec.SetField(restaurantlocation.FieldGeocity, field.TypeString, value)
	}
	if _u.mutation.GeocityCleared() {
		_spec.ClearField(restaurantlocation.FieldGeocity, field.TypeString)
	}
	if value, ok := _u.mutation.Geostate(); ok {
		_spec.SetField(restaurantlocation.FieldGeostate, field.TypeString, value)
	}
	if _u.mutation.GeostateCleared() {
		_spec.ClearField(restaurantlocation.FieldGeostate, field.TypeString)
	}
	if value, ok := _u.mutation.Geozip(); ok {
		_spec.SetField(restaurantlocation.FieldGeozip, field.TypeString, value)
	}
	if _u.mutation.GeozipCleared() {
		_spec.ClearField(restaurantlocation.FieldGeozip, field.TypeString)
	}
	if value, ok := _u.mutation.County(); ok {
		_spec.SetField(restaurantlocation.FieldCounty, field.TypeString, value)
	}
	if _u.mutation.CountyCleared() {
		_spec.ClearField(restaurantlocation.FieldCounty, field.TypeString)
	}
	if value, ok := _u.mutation.DmaMarket(); ok {
		_spec.SetField(restaurantlocation.FieldDmaMarket, field.TypeString, value)
	}
	if _u.mutation.DmaMarketCleared() {
		_spec.ClearField(restaurantlocation.FieldDmaMarket, field.TypeString)
	}
	if value, ok := _u.mutation.Segment(); ok {
		_spec.SetField(restaurantlocation.FieldSegment, field.TypeString, value)
	}
	if _u.mutation.SegmentCleared() {
		_spec.ClearField(restaurantlocation.FieldSegment, field.TypeString)
	}
	if value, ok := _u.mutation.Subsegment(); ok {
		_spec.SetField(restaurantlocation.FieldSubsegment, field.TypeString, value)
	}
	if _u.mutation.SubsegmentCleared() {
		_spec.ClearField(restaurantlocation.FieldSubsegment, field.TypeString)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(restaurantlocation.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(restaurantlocation.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.Latitude(); ok {
		_spec.SetField(restaurantlocation.FieldLatitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLatitude(); ok {
		_spec.AddField(restaurantlocation.FieldLatitude, field.TypeFloat64, value)
	}
	if _u.mutation.LatitudeCleared() {
		_spec.ClearField(restaurantlocation.FieldLatitude, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Longitude(); ok {
		_spec.SetField(restaurantlocation.FieldLongitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLongitude(); ok {
		_spec.AddField(restaurantlocation.FieldLongitude, field.TypeFloat64, value)
	}
	if _u.mutation.LongitudeCleared() {
		_spec.ClearField(restaurantlocation.FieldLongitude, field.TypeFloat64)
	}
	if value, ok := _u.mutation.YrBuilt(); ok {
		_spec.SetField(restaurantlocation.FieldYrBuilt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedYrBuilt(); ok {
		_spec.AddField(restaurantlocation.FieldYrBuilt, field.TypeInt, value)
	}
	if _u.mutation.YrBuiltCleared() {
		_spec.ClearField(restaurantlocation.FieldYrBuilt, field.TypeInt)
	}
	if value, ok := _u.mutation.CoFr(); ok {
		_spec.SetField(restaurantlocation.FieldCoFr, field.TypeString, value)
	}
	if _u.mutation.CoFrCleared() {
		_spec.ClearField(restaurantlocation.FieldCoFr, field.TypeString)
	}
	if _u.mutation.TrendsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTrendsIDs(); len(nodes) > 0 && !_u.mutation.TrendsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TrendsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{restaurantlocation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RestaurantLocationUpdateOne is the builder for updating a single RestaurantLocation entity.
type RestaurantLocationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RestaurantLocationMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RestaurantLocationUpdateOne) SetUpdatedAt(v time.Time) *RestaurantLocationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStoreNo sets the "store_no" field.
func (_u *RestaurantLocationUpdateOne) SetStoreNo(v string) *RestaurantLocationUpdateOne {
	_u.mutation.SetStoreNo(v)
	return _u
}

// SetNillableStoreNo sets the "store_no" field if the given value is not nil.
func (_u *RestaurantLocationUpdateOne) SetNillableStoreNo(v *string) *RestaurantLocationUpdateOne {
	if v != nil {
		_u.SetStoreNo(*v)
	}
	return _u
}

// SetChainNo sets the "chain_no" field.
func (_u *RestaurantLocationUpdateOne) SetChainNo(v string) *RestaurantLocationUpdateOne {
	_u.mutation.SetChainNo(v)
	return _u
}

// SetNillableChainNo sets the "chain_no" field if the given value is not nil.
func (_u *RestaurantLocationUpdateOne) SetNillableChainNo(v *string) *RestaurantLocationUpdateOne {
	if v != nil {
		_u.SetChainNo(*v)
	}
	return _u
}

// ClearChainNo clears the value of the "chain_no" field.
func (_u *RestaurantLocationUpdateOne) ClearChainNo() *RestaurantLocationUpdateOne {
	_u.mutation.ClearChainNo()
	return _u
}

// SetChain sets the "chain" field.
func (_u *RestaurantLocationUpdateOne) SetChain(v string) *RestaurantLocationUpdateOne {
	_u.mutation.SetChain(v)
	return _u
}

// SetNillableChain sets the "chain" field if the given value is not nil.
func (_u *RestaurantLocationUpdateOne) SetNillableChain(v *string) *RestaurantLocationUpdateOne {
	if v != nil {
		_u.SetChain(*v)
	}
	return _u
}

// ClearChain clears the value of the "chain" field.
func (_u *RestaurantLocationUpdateOne) ClearChain() *RestaurantLocationUpdateOne {
	_u.mutation.ClearChain()
	return _u
}

// SetGeoaddress sets the "geoaddress" field.
func (_u *RestaurantLocationUpdateOne) SetGeoaddress(v string) *RestaurantLocationUpdateOne {
	_u.mutation.SetGeoaddress(v)
	return _u
}

// SetNillableGeoaddress sets the "geoaddress" field if the given value is not nil.
func (_u *RestaurantLocationUpdateOne) SetNillableGeoaddress(v *string) *RestaurantLocationUpdateOne {
	if v != nil {
		_u.SetGeoaddress(*v)
	}
	return _u
}

// ClearGeoaddress clears the value of the "geoaddress" field.
func (_u *RestaurantLocationUpdateOne) ClearGeoaddress() *RestaurantLocationUpdateOne {
	_u.mutation.ClearGeoaddress()
	return _u
}

// SetGeocity sets the "geocity" field.
func (_u *RestaurantLocationUpdateOne) SetGeocity(v string) *RestaurantLocationUpdateOne {
	_u.mutation.SetGeocity(v)
	return _u
}

// SetNillableGeocity sets the "geocity" field if the given value is not nil.
func (_u *RestaurantLocationUpdateOne) SetNillableGeocity(v *string) *RestaurantLocationUpdateOne {
	if v != nil {
		_u.SetGeocity(*v)
	}
	return _u
}

// ClearGeocity clears the value of the "geocity" field.
func (_u *RestaurantLocationUpdateOne) ClearGeocity() *RestaurantLocationUpdateOne {
	_u.mutation.ClearGeocity()
	return _u
}

// SetGeostate sets the "geostate" field.
func (_u *RestaurantLocationUpdateOne) SetGeostate(v string) *RestaurantLocationUpdateOne {
	_u.mutation.SetGeostate(v)
	return _u
}

// SetNillableGeostate sets the "geostate" field if the given value is not nil.
func (_u *RestaurantLocationUpdateOne) SetNillableGeostate(v *string) *RestaurantLocationUpdateOne {
	if v != nil {
		_u.SetGeostate(*v)
	}
	return _u
}

// ClearGeostate clears the value of the "geostate" field.
func (_u *RestaurantLocationUpdateOne) ClearGeostate() *RestaurantLocationUpdateOne {
	_u.mutation.ClearGeostate()
	return _u
}

// SetGeozip sets the "geozip" field.
func (_u *RestaurantLocationUpdateOne) SetGeozip(v string) *RestaurantLocationUpdateOne {
	_u.mutation.SetGeozip(v)
	return _u
}

// SetNillableGeozip sets the "geozip" field if the given value is not nil.
func (_u *RestaurantLocationUpdateOne) SetNillableGeozip(v *string) *RestaurantLocationUpdateOne {
	if v != nil {
		_u.SetGeozip(*v)
	}
	return _u
}

// ClearGeozip clears the value of the "geozip" field.
func (_u *RestaurantLocationUpdateOne) ClearGeozip() *RestaurantLocationUpdateOne {
	_u.mutation.ClearGeozip()
	return _u
}

// SetCounty sets the "county" field.
func (_u *RestaurantLocationUpdateOne) SetCounty(v string) *RestaurantLocationUpdateOne {
	_u.mutation.SetCounty(v)
	return _u
}

// SetNillableCounty sets the "county" field if the given value is not nil.
func (_u *RestaurantLocationUpdateOne) SetNillableCounty(v *string) *RestaurantLocationUpdateOne {
	if v != nil {
		_u.SetCounty(*v)
	}
	return _u
}

// ClearCounty clears the value of the "county" field.
func (_u *RestaurantLocationUpdateOne) ClearCounty() *RestaurantLocationUpdateOne {
	_u.mutation.ClearCounty()
	return _u
}

// SetDmaMarket sets the "dma_market" field.
func (_u *RestaurantLocationUpdateOne) SetDmaMarket(v string) *RestaurantLocationUpdateOne {
	_u.mutation.SetDmaMarket(v)
	return _u
}

// SetNillableDmaMarket sets the "dma_market" field if the given value is not nil.
func (_u *RestaurantLocationUpdateOne) SetNillableDmaMarket(v *string) *RestaurantLocationUpdateOne {
	if v != nil {
		_u.SetDmaMarket(*v)
	}
	return _u
}

// ClearDmaMarket clears the value of the "dma_market" field.
func (_u *RestaurantLocationUpdateOne) ClearDmaMarket() *RestaurantLocationUpdateOne {
	_u.mutation.ClearDmaMarket()
	return _u
}

// SetSegment sets the "segment" field.
func (_u *RestaurantLocationUpdateOne) SetSegment(v string) *RestaurantLocationUpdateOne {
	_u.mutation.SetSegment(v)
	return _u
}

// SetNillableSegment sets the "segment" field if the given value is not nil.
func (_u *RestaurantLocationUpdateOne) SetNillableSegment(v *string) *RestaurantLocationUpdateOne {
	if v != nil {
		_u.SetSegment(*v)
	}
	return _u
}

// ClearSegment clears the value of the "segment" field.
func (_u *RestaurantLocationUpdateOne) ClearSegment() *RestaurantLocationUpdateOne {
	_u.mutation.ClearSegment()
	return _u
}

// SetSubsegment sets the "subsegment" field.
func (_u *RestaurantLocationUpdateOne) SetSubsegment(v string) *RestaurantLocationUpdateOne {
	_u.mutation.SetSubsegment(v)
	return _u
}

// SetNillableSubsegment sets the "subsegment" field if the given value is not nil.
func (_u *RestaurantLocationUpdateOne) SetNillableSubsegment(v *string) *RestaurantLocationUpdateOne {
	if v != nil {
		_u.SetSubsegment(*v)
	}
	return _u
}

// ClearSubsegment clears the value of the "subsegment" field.
func (_u *RestaurantLocationUpdateOne) ClearSubsegment() *RestaurantLocationUpdateOne {
	_u.mutation.ClearSubsegment()
	return _u
}

// SetCategory sets the "category" field.
func (_u *RestaurantLocationUpdateOne) SetCategory(v string) *RestaurantLocationUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *RestaurantLocationUpdateOne) SetNillableCategory(v *string) *RestaurantLocationUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *RestaurantLocationUpdateOne) ClearCategory() *RestaurantLocationUpdateOne {
	_u.mutation.ClearCategory()
	return _u
}

// SetLatitude sets the "latitude" field.
func (_u *RestaurantLocationUpdateOne) SetLatitude(v float64) *RestaurantLocationUpdateOne {
	_u.mutation.ResetLatitude()
	_u.mutation.SetLatitude(v)
	return _u
}

// SetNillableLatitude sets the "latitude" field if the given value is not nil.
func (_u *RestaurantLocationUpdateOne) SetNillableLatitude(v *float64) *RestaurantLocationUpdateOne {
	if v != nil {
		_u.SetLatitude(*v)
	}
	return _u
}

// AddLatitude adds value to the "latitude" field.
func (_u *RestaurantLocationUpdateOne) AddLatitude(v float64) *RestaurantLocationUpdateOne {
	_u.mutation.AddLatitude(v)
	return _u
}

// ClearLatitude clears the value of the "latitude" field.
func (_u *RestaurantLocationUpdateOne) ClearLatitude() *RestaurantLocationUpdateOne {
	_u.mutation.ClearLatitude()
	return _u
}

// SetLongitude sets the "longitude" field.
func (_u *RestaurantLocationUpdateOne) SetLongitude(v float64) *RestaurantLocationUpdateOne {
	_u.mutation.ResetLongitude()
	_u.mutation.SetLongitude(v)
	return _u
}

// SetNillableLongitude sets the "longitude" field if the given value is not nil.
func (_u *RestaurantLocationUpdateOne) SetNillableLongitude(v *float64) *RestaurantLocationUpdateOne {
	if v != nil {
		_u.SetLongitude(*v)
	}
	return _u
}

// AddLongitude adds value to the "longitude" field.
func (_u *RestaurantLocationUpdateOne) AddLongitude(v float64) *RestaurantLocationUpdateOne {
	_u.mutation.AddLongitude(v)
	return _u
}

// ClearLongitude clears the value of the "longitude" field.
func (_u *RestaurantLocationUpdateOne) ClearLongitude() *RestaurantLocationUpdateOne {
	_u.mutation.ClearLongitude()
	return _u
}

// SetYrBuilt sets the "yr_built" field.
func (_u *RestaurantLocationUpdateOne) SetYrBuilt(v int) *RestaurantLocationUpdateOne {
	_u.mutation.ResetYrBuilt()
	_u.mutation.SetYrBuilt(v)
	return _u
}

// SetNillableYrBuilt sets the "yr_built" field if the given value is not nil.
func (_u *RestaurantLocationUpdateOne) SetNillableYrBuilt(v *int) *RestaurantLocationUpdateOne {
	if v != nil {
		_u.SetYrBuilt(*v)
	}
	return _u
}

// AddYrBuilt adds value to the "yr_built" field.
func (_u *RestaurantLocationUpdateOne) AddYrBuilt(v int) *RestaurantLocationUpdateOne {
	_u.mutation.AddYrBuilt(v)
	return _u
}

// ClearYrBuilt clears the value of the "yr_built" field.
func (_u *RestaurantLocationUpdateOne) ClearYrBuilt() *RestaurantLocationUpdateOne {
	_u.mutation.ClearYrBuilt()
	return _u
}

// SetCoFr sets the "co_fr" field.
func (_u *RestaurantLocationUpdateOne) SetCoFr(v string) *RestaurantLocationUpdateOne {
	_u.mutation.SetCoFr(v)
	return _u
}

// SetNillableCoFr sets the "co_fr" field if the given value is not nil.
func (_u *RestaurantLocationUpdateOne) SetNillableCoFr(v *string) *RestaurantLocationUpdateOne {
	if v != nil {
		_u.SetCoFr(*v)
	}
	return _u
}

// ClearCoFr clears the value of the "co_fr" field.
func (_u *RestaurantLocationUpdateOne) ClearCoFr() *RestaurantLocationUpdateOne {
	_u.mutation.ClearCoFr()
	return _u
}

// AddTrendIDs adds the "trends" edge to the RestaurantTrend entity by IDs.
func (_u *RestaurantLocationUpdateOne) AddTrendIDs(ids ...uuid.UUID) *RestaurantLocationUpdateOne {
	_u.mutation.AddTrendIDs(ids...)
	return _u
}

// AddTrends adds the "trends" edges to the RestaurantTrend entity.
func (_u *RestaurantLocationUpdateOne) AddTrends(v ...*RestaurantTrend) *RestaurantLocationUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTrendIDs(ids...)
}

// Mutation returns the RestaurantLocationMutation object of the builder.
func (_u *RestaurantLocationUpdateOne) Mutation() *RestaurantLocationMutation {
	return _u.mutation
}

// ClearTrends clears all "trends" edges to the RestaurantTrend entity.
func (_u *RestaurantLocationUpdateOne) ClearTrends() *RestaurantLocationUpdateOne {
	_u.mutation.ClearTrends()
	return _u
}

// RemoveTrendIDs removes the "trends" edge to RestaurantTrend entities by IDs.
func (_u *RestaurantLocationUpdateOne) RemoveTrendIDs(ids ...uuid.UUID) *RestaurantLocationUpdateOne {
	_u.mutation.RemoveTrendIDs(ids...)
	return _u
}

// RemoveTrends removes "trends" edges to RestaurantTrend entities.
func (_u *RestaurantLocationUpdateOne) RemoveTrends(v ...*RestaurantTrend) *RestaurantLocationUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTrendIDs(ids...)
}

// Where appends a list predicates to the RestaurantLocationUpdate builder.
func (_u *RestaurantLocationUpdateOne) Where(ps ...predicate.RestaurantLocation) *RestaurantLocationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RestaurantLocationUpdateOne) Select(field string, fields ...string) *RestaurantLocationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RestaurantLocation entity.
func (_u *RestaurantLocationUpdateOne) Save(ctx context.Context) (*RestaurantLocation, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RestaurantLocationUpdateOne) SaveX(ctx context.Context) *RestaurantLocation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RestaurantLocationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RestaurantLocationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RestaurantLocationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := restaurantlocation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RestaurantLocationUpdateOne) check() error {
	if v, ok := _u.mutation.StoreNo(); ok {
		if err := restaurantlocation.StoreNoValidator(v); err != nil {
			return &ValidationError{Name: "store_no", err: fmt.Errorf(`repo: validator failed for field "RestaurantLocation.store_no": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChainNo(); ok {
		if err := restaurantlocation.ChainNoValidator(v); err != nil {
			return &ValidationError{Name: "chain_no", err: fmt.Errorf(`repo: validator failed for field "RestaurantLocation.chain_no": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Chain(); ok {
		if err := restaurantlocation.ChainValidator(v); err != nil {
			return &ValidationError{Name: "chain", err: fmt.Errorf(`repo: validator failed for field "RestaurantLocation.chain": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Geoaddress(); ok {
		if err := restaurantlocation.GeoaddressValidator(v); err != nil {
			return &ValidationError{Name: "geoaddress", err: fmt.Errorf(`repo: validator failed for field "RestaurantLocation.geoaddress": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Geocity(); ok {
		if err := restaurantlocation.GeocityValidator(v); err != nil {
			return &ValidationError{Name: "geocity", err: fmt.Errorf(`repo: validator failed for field "RestaurantLocation.geocity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Geostate(); ok {
		if err := restaurantlocation.GeostateValidator(v); err != nil {
			return &ValidationError{Name: "geostate", err: fmt.Errorf(`repo: validator failed for field "RestaurantLocation.geostate": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Geozip(); ok {
		if err := restaurantlocation.GeozipValidator(v); err != nil {
			return &ValidationError{Name: "geozip", err: fmt.Errorf(`repo: validator failed for field "RestaurantLocation.geozip": %w`, err)}
		}
	}
	if v, ok := _u.mutation.County(); ok {
		if err := restaurantlocation.CountyValidator(v); err != nil {
			return &ValidationError{Name: "county", err: fmt.Errorf(`repo: validator failed for field "RestaurantLocation.county": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DmaMarket(); ok {
		if err := restaurantlocation.DmaMarketValidator(v); err != nil {
			return &ValidationError{Name: "dma_market", err: fmt.Errorf(`repo: validator failed for field "RestaurantLocation.dma_market": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Segment(); ok {
		if err := restaurantlocation.SegmentValidator(v); err != nil {
			return &ValidationError{Name: "segment", err: fmt.Errorf(`repo: validator failed for field "RestaurantLocation.segment": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subsegment(); ok {
		if err := restaurantlocation.SubsegmentValidator(v); err != nil {
			return &ValidationError{Name: "subsegment", err: fmt.Errorf(`repo: validator failed for field "RestaurantLocation.subsegment": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := restaurantlocation.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`repo: validator failed for field "RestaurantLocation.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CoFr(); ok {
		if err := restaurantlocation.CoFrValidator(v); err != nil {
			return &ValidationError{Name: "co_fr", err: fmt.Errorf(`repo: validator failed for field "RestaurantLocation.co_fr": %w`, err)}
		}
	}
	return nil
}

func (_u *RestaurantLocationUpdateOne) sqlSave(ctx context.Context) (_node *RestaurantLocation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(restaurantlocation.Table, restaurantlocation.Columns, sqlgraph.NewFieldSpec(restaurantlocation.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "RestaurantLocation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, restaurantlocation.FieldID)
		for _, f := range fields {
			if !restaurantlocation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != restaurantlocation.FieldID {
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
		_spec.SetField(restaurantlocation.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StoreNo(); ok {
		_spec.SetField(restaurantlocation.FieldStoreNo, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChainNo(); ok {
		_spec.SetField(restaurantlocation.FieldChainNo, field.TypeString, value)
	}
	if _u.mutation.ChainNoCleared() {
		_spec.ClearField(restaurantlocation.FieldChainNo, field.TypeString)
	}
	if value, ok := _u.mutation.Chain(); ok {
		_spec.SetField(restaurantlocation.FieldChain, field.TypeString, value)
	}
	if _u.mutation.ChainCleared() {
		_spec.ClearField(restaurantlocation.FieldChain, field.TypeString)
	}
	if value, ok := _u.mutation.Geoaddress(); ok {
		_spec.SetField(restaurantlocation.FieldGeoaddress, field.TypeString, value)
	}
	if _u.mutation.GeoaddressCleared() {
		_spec.ClearField(restaurantlocation.FieldGeoaddress, field.TypeString)
	}
	if value, ok := _u.mutation.Geocity(); ok {
		_spec.SetField(restaurantlocation.FieldGeocity, field.TypeString, value)
	}
	if _u.mutation.GeocityCleared() {
		_spec.ClearField(restaurantlocation.FieldGeocity, field.TypeString)
	}
	if value, ok := _u.mutation.Geostate(); ok {
		_spec.SetField(restaurantlocation.FieldGeostate, field.TypeString, value)
	}
	if _u.mutation.GeostateCleared() {
		_spec.ClearField(restaurantlocation.FieldGeostate, field.TypeString)
	}
	if value, ok := _u.mutation.Geozip(); ok {
		_spec.SetField(restaurantlocation.FieldGeozip, field.TypeString, value)
	}
	if _u.mutation.GeozipCleared() {
		_spec.ClearField(restaurantlocation.FieldGeozip, field.TypeString)
	}
	if value, ok := _u.mutation.County(); ok {
		_spec.SetField(restaurantlocation.FieldCounty, field.TypeString, value)
	}
	if _u.mutation.CountyCleared() {
		_spec.ClearField(restaurantlocation.FieldCounty, field.TypeString)
	}
	if value, ok := _u.mutation.DmaMarket(); ok {
		_spec.SetField(restaurantlocation.FieldDmaMarket, field.TypeString, value)
	}
	if _u.mutation.DmaMarketCleared() {
		_spec.ClearField(restaurantlocation.FieldDmaMarket, field.TypeString)
	}
	if value, ok := _u.mutation.Segment(); ok {
		_spec.SetField(restaurantlocation.FieldSegment, field.TypeString, value)
	}
	if _u.mutation.SegmentCleared() {
		_spec.ClearField(restaurantlocation.FieldSegment, field.TypeString)
	}
	if value, ok := _u.mutation.Subsegment(); ok {
		_spec.SetField(restaurantlocation.FieldSubsegment, field.TypeString, value)
	}
	if _u.mutation.SubsegmentCleared() {
		_spec.ClearField(restaurantlocation.FieldSubsegment, field.TypeString)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(restaurantlocation.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(restaurantlocation.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.Latitude(); ok {
		_spec.SetField(restaurantlocation.FieldLatitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLatitude(); ok {
		_spec.AddField(restaurantlocation.FieldLatitude, field.TypeFloat64, value)
	}
	if _u.mutation.LatitudeCleared() {
		_spec.ClearField(restaurantlocation.FieldLatitude, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Longitude(); ok {
		_spec.SetField(restaurantlocation.FieldLongitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLongitude(); ok {
		_spec.AddField(restaurantlocation.FieldLongitude, field.TypeFloat64, value)
	}
	if _u.mutation.LongitudeCleared() {
		_spec.ClearField(restaurantlocation.FieldLongitude, field.TypeFloat64)
	}
	if value, ok := _u.mutation.YrBuilt(); ok {
		_spec.SetField(restaurantlocation.FieldYrBuilt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedYrBuilt(); ok {
		_spec.AddField(restaurantlocation.FieldYrBuilt, field.TypeInt, value)
	}
	if _u.mutation.YrBuiltCleared() {
		_spec.ClearField(restaurantlocation.FieldYrBuilt, field.TypeInt)
	}
	if value, ok := _u.mutation.CoFr(); ok {
		_spec.SetField(restaurantlocation.FieldCoFr, field.TypeString, value)
	}
	if _u.mutation.CoFrCleared() {
		_spec.ClearField(restaurantlocation.FieldCoFr, field.TypeString)
	}
	if _u.mutation.TrendsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTrendsIDs(); len(nodes) > 0 && !_u.mutation.TrendsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TrendsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &RestaurantLocation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{restaurantlocation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
