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

// RestaurantTrendCreate is the builder for creating a RestaurantTrend entity.
type RestaurantTrendCreate struct {
	config
	mutation *RestaurantTrendMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *RestaurantTrendCreate) SetCreatedAt(v time.Time) *RestaurantTrendCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RestaurantTrendCreate) SetNillableCreatedAt(v *time.Time) *RestaurantTrendCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *RestaurantTrendCreate) SetUpdatedAt(v time.Time) *RestaurantTrendCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *RestaurantTrendCreate) SetNillableUpdatedAt(v *time.Time) *RestaurantTrendCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetLocationID sets the "location_id" field.
func (_c *RestaurantTrendCreate) SetLocationID(v uuid.UUID) *RestaurantTrendCreate {
	_c.mutation.SetLocationID(v)
	return _c
}

// SetYear sets the "year" field.
func (_c *RestaurantTrendCreate) SetYear(v int) *RestaurantTrendCreate {
	_c.mutation.SetYear(v)
	return _c
}

// SetCurrNatlGrade sets the "curr_natl_grade" field.
func (_c *RestaurantTrendCreate) SetCurrNatlGrade(v string) *RestaurantTrendCreate {
	_c.mutation.SetCurrNatlGrade(v)
	return _c
}

// SetNillableCurrNatlGrade sets the "curr_natl_grade" field if the given value is not nil.
func (_c *RestaurantTrendCreate) SetNillableCurrNatlGrade(v *string) *RestaurantTrendCreate {
	if v != nil {
		_c.SetCurrNatlGrade(*v)
	}
	return _c
}

// SetCurrNatlIndex sets the "curr_natl_index" field.
func (_c *RestaurantTrendCreate) SetCurrNatlIndex(v float64) *RestaurantTrendCreate {
	_c.mutation.SetCurrNatlIndex(v)
	return _c
}

// SetNillableCurrNatlIndex sets the "curr_natl_index" field if the given value is not nil.
func (_c *RestaurantTrendCreate) SetNillableCurrNatlIndex(v *float64) *RestaurantTrendCreate {
	if v != nil {
		_c.SetCurrNatlIndex(*v)
	}
	return _c
}

// SetCurrAnnualSlsK sets the "curr_annual_sls_k" field.
func (_c *RestaurantTrendCreate) SetCurrAnnualSlsK(v float64) *RestaurantTrendCreate {
	_c.mutation.SetCurrAnnualSlsK(v)
	return _c
}

// SetNillableCurrAnnualSlsK sets the "curr_annual_sls_k" field if the given value is not nil.
func (_c *RestaurantTrendCreate) SetNillableCurrAnnualSlsK(v *float64) *RestaurantTrendCreate {
	if v != nil {
		_c.SetCurrAnnualSlsK(*v)
	}
	return _c
}

// SetCurrMktGrade sets the "curr_mkt_grade" field.
func (_c *RestaurantTrendCreate) SetCurrMktGrade(v string) *RestaurantTrendCreate {
	_c.mutation.SetCurrMktGrade(v)
	return _c
}

// SetNillableCurrMktGrade sets the "curr_mkt_grade" field if the given value is not nil.
func (_c *RestaurantTrendCreate) SetNillableCurrMktGrade(v *string) *RestaurantTrendCreate {
	if v != nil {
		_c.SetCurrMktGrade(*v)
	}
	return _c
}

// SetCurrMktIndex sets the "curr_mkt_index" field.
func (_c *RestaurantTrendCreate) SetCurrMktIndex(v float64) *RestaurantTrendCreate {
	_c.mutation.SetCurrMktIndex(v)
	return _c
}

// SetNillableCurrMktIndex sets the "curr_mkt_index" field if the given value is not nil.
func (_c *RestaurantTrendCreate) SetNillableCurrMktIndex(v *float64) *RestaurantTrendCreate {
	if v != nil {
		_c.SetCurrMktIndex(*v)
	}
	return _c
}

// SetPastNatlGrade sets the "past_natl_grade" field.
func (_c *RestaurantTrendCreate) SetPastNatlGrade(v string) *RestaurantTrendCreate {
	_c.mutation.SetPastNatlGrade(v)
	return _c
}

// SetNillablePastNatlGrade sets the "past_natl_grade" field if the given value is not nil.
func (_c *RestaurantTrendCreate) SetNillablePastNatlGrade(v *string) *RestaurantTrendCreate {
	if v != nil {
		_c.SetPastNatlGrade(*v)
	}
	return _c
}

// SetPastNatlIndex sets the "past_natl_index" field.
func (_c *RestaurantTrendCreate) SetPastNatlIndex(v float64) *RestaurantTrendCreate {
	_c.mutation.SetPastNatlIndex(v)
	return _c
}

// SetNillablePastNatlIndex sets the "past_natl_index" field if the given value is not nil.
func (_c *RestaurantTrendCreate) SetNillablePastNatlIndex(v *float64) *RestaurantTrendCreate {
	if v != nil {
		_c.SetPastNatlIndex(*v)
	}
	return _c
}

// SetPastAnnualSlsK sets the "past_annual_sls_k" field.
func (_c *RestaurantTrendCreate) SetPastAnnualSlsK(v float64) *RestaurantTrendCreate {
	_c.mutation.SetPastAnnualSlsK(v)
	return _c
}

// SetNillablePastAnnualSlsK sets the "past_annual_sls_k" field if the given value is not nil.
func (_c *RestaurantTrendCreate) SetNillablePastAnnualSlsK(v *float64) *RestaurantTrendCreate {
	if v != nil {
		_c.SetPastAnnualSlsK(*v)
	}
	return _c
}

// SetPastMktGrade sets the "past_mkt_grade" field.
func (_c *RestaurantTrendCreate) SetPastMktGrade(v string) *RestaurantTrendCreate {
	_c.mutation.SetPastMktGrade(v)
	return _c
}

// SetNillablePastMktGrade sets the "past_mkt_grade" field if the given value is not nil.
func (_c *RestaurantTrendCreate) SetNillablePastMktGrade(v *string) *RestaurantTrendCreate {
	if v != nil {
		_c.SetPastMktGrade(*v)
	}
	return _c
}

// SetPastMktIndex sets the "past_mkt_index" field.
func (_c *RestaurantTrendCreate) SetPastMktIndex(v float64) *RestaurantTrendCreate {
	_c.mutation.SetPastMktIndex(v)
	return _c
}

// SetNillablePastMktIndex sets the "past_mkt_index" field if the given value is not nil.
func (_c *RestaurantTrendCreate) SetNillablePastMktIndex(v *float64) *RestaurantTrendCreate {
	if v != nil {
		_c.SetPastMktIndex(*v)
	}
	return _c
}

// SetSurveyYrLast sets the "survey_yr_last" field.
func (_c *RestaurantTrendCreate) SetSurveyYrLast(v int) *RestaurantTrendCreate {
	_c.mutation.SetSurveyYrLast(v)
	return _c
}

// SetNillableSurveyYrLast sets the "survey_yr_last" field if the given value is not nil.
func (_c *RestaurantTrendCreate) SetNillableSurveyYrLast(v *int) *RestaurantTrendCreate {
	if v != nil {
		_c.SetSurveyYrLast(*v)
	}
	return _c
}

// SetSurveyYrNext sets the "survey_yr_next" field.
func (_c *RestaurantTrendCreate) SetSurveyYrNext(v int) *RestaurantTrendCreate {
	_c.mutation.SetSurveyYrNext(v)
	return _c
}

// SetNillableSurveyYrNext sets the "survey_yr_next" field if the given value is not nil.
func (_c *RestaurantTrendCreate) SetNillableSurveyYrNext(v *int) *RestaurantTrendCreate {
	if v != nil {
		_c.SetSurveyYrNext(*v)
	}
	return _c
}

// SetTotalSurveys sets the "total_surveys" field.
func (_c *RestaurantTrendCreate) SetTotalSurveys(v int) *RestaurantTrendCreate {
	_c.mutation.SetTotalSurveys(v)
	return _c
}

// SetNillableTotalSurveys sets the "total_surveys" field if the given value is not nil.
func (_c *RestaurantTrendCreate) SetNillableTotalSurveys(v *int) *RestaurantTrendCreate {
	if v != nil {
		_c.SetTotalSurveys(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RestaurantTrendCreate) SetID(v uuid.UUID) *RestaurantTrendCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *RestaurantTrendCreate) SetNillableID(v *uuid.UUID) *RestaurantTrendCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetLocation sets the "location" edge to the RestaurantLocation entity.
func (_c *RestaurantTrendCreate) SetLocation(v *RestaurantLocation) *RestaurantTrendCreate {
	return _c.SetLocationID(v.ID)
}

// Mutation returns the RestaurantTrendMutation object of the builder.
func (_c *RestaurantTrendCreate) Mutation() *RestaurantTrendMutation {
	return _c.mutation
}

// Save creates the RestaurantTrend in the database.
func (_c *RestaurantTrendCreate) Save(ctx context.Context) (*RestaurantTrend, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RestaurantTrendCreate) SaveX(ctx context.Context) *RestaurantTrend {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RestaurantTrendCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RestaurantTrendCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RestaurantTrendCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := restauranttrend.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := restauranttrend.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := restauranttrend.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RestaurantTrendCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "RestaurantTrend.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "RestaurantTrend.updated_at"`)}
	}
	if _, ok := _c.mutation.LocationID(); !ok {
		return &ValidationError{Name: "location_id", err: errors.New(`repo: missing required field "RestaurantTrend.location_id"`)}
	}
	if _, ok := _c.mutation.Year(); !ok {
		return &ValidationError{Name: "year", err: errors.New(`repo: missing required field "RestaurantTrend.year"`)}
	}
	if v, ok := _c.mutation.CurrNatlGrade(); ok {
		if err := restauranttrend.CurrNatlGradeValidator(v); err != nil {
			return &ValidationError{Name: "curr_natl_grade", err: fmt.Errorf(`repo: validator failed for field "RestaurantTrend.curr_natl_grade": %w`, err)}
		}
	}
	if v, ok := _c.mutation.CurrMktGrade(); ok {
		if err := restauranttrend.CurrMktGradeValidator(v); err != nil {
			return &ValidationError{Name: "curr_mkt_grade", err: fmt.Errorf(`repo: validator failed for field "RestaurantTrend.curr_mkt_grade": %w`, err)}
		}
	}
	if v, ok := _c.mutation.PastNatlGrade(); ok {
		if err := restauranttrend.PastNatlGradeValidator(v); err != nil {
			return &ValidationError{Name: "past_natl_grade", err: fmt.Errorf(`repo: validator failed for field "RestaurantTrend.past_natl_grade": %w`, err)}
		}
	}
	if v, ok := _c.mutation.PastMktGrade(); ok {
		if err := restauranttrend.PastMktGradeValidator(v); err != nil {
			return &ValidationError{Name: "past_mkt_grade", err: fmt.Errorf(`repo: validator failed for field "RestaurantTrend.past_mkt_grade": %w`, err)}
		}
	}
	if len(_c.mutation.LocationIDs()) == 0 {
		return &ValidationError{Name: "location", err: errors.New(`repo: missing required edge "RestaurantTrend.location"`)}
	}
	return nil
}

func (_c *RestaurantTrendCreate) sqlSave(ctx context.Context) (*RestaurantTrend, error) {
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

func (_c *RestaurantTrendCreate) createSpec() (*RestaurantTrend, *sqlgraph.CreateSpec) {
	var (
		_node = &RestaurantTrend{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(restauranttrend.Table, sqlgraph.NewFieldSpec(restauranttrend.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(restauranttrend.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(restauranttrend.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Year(); ok {
		_spec.SetField(restauranttrend.FieldYear, field.TypeInt, value)
		_node.Year = value
	}
	if value, ok := _c.mutation.CurrNatlGrade(); ok {
		_spec.SetField(restauranttrend.FieldCurrNatlGrade, field.TypeString, value)
		_node.CurrNatlGrade = &value
	}
	if value, ok := _c.mutation.CurrNatlIndex(); ok {
		_spec.SetField(restauranttrend.FieldCurrNatlIndex, field.TypeFloat64, value)
		_node.CurrNatlIndex = &value
	}
	if value, ok := _c.mutation.CurrAnnualSlsK(); ok {
		_spec.SetField(restauranttrend.FieldCurrAnnualSlsK, field.TypeFloat64, value)
		_node.CurrAnnualSlsK = &value
	}
	if value, ok := _c.mutation.CurrMktGrade(); ok {
		_spec.SetField(restauranttrend.FieldCurrMktGrade, field.TypeString, value)
		_node.CurrMktGrade = &value
	}
	if value, ok := _c.mutation.CurrMktIndex(); ok {
		_spec.SetField(restauranttrend.FieldCurrMktIndex, field.TypeFloat64, value)
		_node.CurrMktIndex = &value
	}
	if value, ok := _c.mutation.PastNatlGrade(); ok {
		_spec.SetField(restauranttrend.FieldPastNatlGrade, field.TypeString, value)
		_node.PastNatlGrade = &value
	}
	if value, ok := _c.mutation.PastNatlIndex(); ok {
		_spec.SetField(restauranttrend.FieldPastNatlIndex, field.TypeFloat64, value)
		_node.PastNatlIndex = &value
	}
	if value, ok := _c.mutation.PastAnnualSlsK(); ok {
		_spec.SetField(restauranttrend.FieldPastAnnualSlsK, field.TypeFloat64, value)
		_node.PastAnnualSlsK = &value
	}
	if value, ok := _c.mutation.PastMktGrade(); ok {
		_spec.SetField(restauranttrend.FieldPastMktGrade, field.TypeString, value)
		_node.PastMktGrade = &value
	}
	if value, ok := _c.mutation.PastMktIndex(); ok {
		_spec.SetField(restauranttrend.FieldPastMktIndex, field.TypeFloat64, value)
		_node.PastMktIndex = &value
	}
	if value, ok := _c.mutation.SurveyYrLast(); ok {
		_spec.SetField(restauranttrend.FieldSurveyYrLast, field.TypeInt, value)
		_node.SurveyYrLast = &value
	}
	if value, ok := _c.mutation.SurveyYrNext(); ok {
		_spec.SetField(restauranttrend.FieldSurveyYrNext, field.TypeInt, value)
		_node.SurveyYrNext = &value
	}
	if value, ok := _c.mutation.TotalSurveys(); ok {
		_spec.SetField(restauranttrend.FieldTotalSurveys, field.TypeInt, value)
		_node.TotalSurveys = &value
	}
	if nodes := _c.mutation.LocationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   restauranttrend.LocationTable,
			Columns: []string{restauranttrend.LocationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(restaurantlocation.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.LocationID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RestaurantTrend.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RestaurantTrendUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *RestaurantTrendCreate) OnConflict(opts ...sql.ConflictOption) *RestaurantTrendUpsertOne {
	_c.conflict = opts
	return &RestaurantTrendUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RestaurantTrend.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RestaurantTrendCreate) OnConflictColumns(columns ...string) *RestaurantTrendUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RestaurantTrendUpsertOne{
		create: _c,
	}
}

type (
	// RestaurantTrendUpsertOne is the builder for "upsert"-ing
	//  one RestaurantTrend node.
	RestaurantTrendUpsertOne struct {
		create *RestaurantTrendCreate
	}

	// RestaurantTrendUpsert is the "OnConflict" setter.
	RestaurantTrendUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *RestaurantTrendUpsert) SetUpdatedAt(v time.Time) *RestaurantTrendUpsert {
	u.Set(restauranttrend.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RestaurantTrendUpsert) UpdateUpdatedAt() *RestaurantTrendUpsert {
	u.SetExcluded(restauranttrend.FieldUpdatedAt)
	return u
}

// SetLocationID sets the "location_id" field.
func (u *RestaurantTrendUpsert) SetLocationID(v uuid.UUID) *RestaurantTrendUpsert {
	u.Set(restauranttrend.FieldLocationID, v)
	return u
}

// UpdateLocationID sets the "location_id" field to the value that was provided on create.
func (u *RestaurantTrendUpsert) UpdateLocationID() *RestaurantTrendUpsert {
	u.SetExcluded(restauranttrend.FieldLocationID)
	return u
}

// SetYear sets the "year" field.
func (u *RestaurantTrendUpsert) SetYear(v int) *RestaurantTrendUpsert {
	u.Set(restauranttrend.FieldYear, v)
	return u
}

// UpdateYear sets the "year" field to the value that was provided on create.
func (u *RestaurantTrendUpsert) UpdateYear() *RestaurantTrendUpsert {
	u.SetExcluded(restauranttrend.FieldYear)
	return u
}

// AddYear adds v to the "year" field.
func (u *RestaurantTrendUpsert) AddYear(v int) *RestaurantTrendUpsert {
	u.Add(restauranttrend.FieldYear, v)
	return u
}

// SetCurrNatlGrade sets the "curr_natl_grade" field.
func (u *RestaurantTrendUpsert) SetCurrNatlGrade(v string) *RestaurantTrendUpsert {
	u.Set(restauranttrend.FieldCurrNatlGrade, v)
	return u
}

// UpdateCurrNatlGrade sets the "curr_natl_grade" field to the value that was provided on create.
func (u *RestaurantTrendUpsert) UpdateCurrNatlGrade() *RestaurantTrendUpsert {
	u.SetExcluded(restauranttrend.FieldCurrNatlGrade)
	return u
}

// ClearCurrNatlGrade clears the value of the "curr_natl_grade" field.
func (u *RestaurantTrendUpsert) ClearCurrNatlGrade() *RestaurantTrendUpsert {
	u.SetNull(restauranttrend.FieldCurrNatlGrade)
	return u
}

// SetCurrNatlIndex sets the "curr_natl_index" field.
func (u *RestaurantTrendUpsert) SetCurrNatlIndex(v float64) *RestaurantTrendUpsert {
	u.Set(restauranttrend.FieldCurrNatlIndex, v)
	return u
}

// UpdateCurrNatlIndex sets the "curr_natl_index" field to the value that was provided on create.
func (u *RestaurantTrendUpsert) UpdateCurrNatlIndex() *RestaurantTrendUpsert {
	u.SetExcluded(restauranttrend.FieldCurrNatlIndex)
	return u
}

// AddCurrNatlIndex adds v to the "curr_natl_index" field.
func (u *RestaurantTrendUpsert) AddCurrNatlIndex(v float64) *RestaurantTrendUpsert {
	u.Add(restauranttrend.FieldCurrNatlIndex, v)
	return u
}

// ClearCurrNatlIndex clears the value of the "curr_natl_index" field.
func (u *RestaurantTrendUpsert) ClearCurrNatlIndex() *RestaurantTrendUpsert {
	u.SetNull(restauranttrend.FieldCurrNatlIndex)
	return u
}

// SetCurrAnnualSlsK sets the "curr_annual_sls_k" field.
func (u *RestaurantTrendUpsert) SetCurrAnnualSlsK(v float64) *RestaurantTrendUpsert {
	u.Set(restauranttrend.FieldCurrAnnualSlsK, v)
	return u
}

// UpdateCurrAnnualSlsK sets the "curr_annual_sls_k" field to the value that was provided on create.
func (u *RestaurantTrendUpsert) UpdateCurrAnnualSlsK() *RestaurantTrendUpsert {
	u.SetExcluded(restauranttrend.FieldCurrAnnualSlsK)
	return u
}

// AddCurrAnnualSlsK adds v to the "curr_annual_sls_k" field.
func (u *RestaurantTrendUpsert) AddCurrAnnualSlsK(v float64) *RestaurantTrendUpsert {
	u.Add(restauranttrend.FieldCurrAnnualSlsK, v)
	return u
}

// ClearCurrAnnualSlsK clears the value of the "curr_annual_sls_k" field.
func (u *RestaurantTrendUpsert) ClearCurrAnnualSlsK() *RestaurantTrendUpsert {
	u.SetNull(restauranttrend.FieldCurrAnnualSlsK)
	return u
}

// SetCurrMktGrade sets the "curr_mkt_grade" field.
func (u *RestaurantTrendUpsert) SetCurrMktGrade(v string) *RestaurantTrendUpsert {
	u.Set(restauranttrend.FieldCurrMktGrade, v)
	return u
}

// UpdateCurrMktGrade sets the "curr_mkt_grade" field to the value that was provided on create.
func (u *RestaurantTrendUpsert) UpdateCurrMktGrade() *RestaurantTrendUpsert {
	u.SetExcluded(restauranttrend.FieldCurrMktGrade)
	return u
}

// ClearCurrMktGrade clears the value of the "curr_mkt_grade" field.
func (u *RestaurantTrendUpsert) ClearCurrMktGrade() *RestaurantTrendUpsert {
	u.SetNull(restauranttrend.FieldCurrMktGrade)
	return u
}

// SetCurrMktIndex sets the "curr_mkt_index" field.
func (u *RestaurantTrendUpsert) SetCurrMktIndex(v float64) *RestaurantTrendUpsert {
	u.Set(restauranttrend.FieldCurrMktIndex, v)
	return u
}

// UpdateCurrMktIndex sets the "curr_mkt_index" field to the value that was provided on create.
func (u *RestaurantTrendUpsert) UpdateCurrMktIndex() *RestaurantTrendUpsert {
	u.SetExcluded(restauranttrend.FieldCurrMktIndex)
	return u
}

// AddCurrMktIndex adds v to the "curr_mkt_index" field.
func (u *RestaurantTrendUpsert) AddCurrMktIndex(v float64) *RestaurantTrendUpsert {
	u.Add(restauranttrend.FieldCurrMktIndex, v)
	return u
}

// ClearCurrMktIndex clears the value of the "curr_mkt_index" field.
func (u *RestaurantTrendUpsert) ClearCurrMktIndex() *RestaurantTrendUpsert {
	u.SetNull(restauranttrend.FieldCurrMktIndex)
	return u
}

// SetPastNatlGrade sets the "past_natl_grade" field.
func (u *RestaurantTrendUpsert) SetPastNatlGrade(v string) *RestaurantTrendUpsert {
	u.Set(restauranttrend.FieldPastNatlGrade, v)
	return u
}

// UpdatePastNatlGrade sets the "past_natl_grade" field to the value that was provided on create.
func (u *RestaurantTrendUpsert) UpdatePastNatlGrade() *RestaurantTrendUpsert {
	u.SetExcluded(restauranttrend.FieldPastNatlGrade)
	return u
}

// ClearPastNatlGrade clears the value of the "past_natl_grade" field.
func (u *RestaurantTrendUpsert) ClearPastNatlGrade() *RestaurantTrendUpsert {
	u.SetNull(restauranttrend.FieldPastNatlGrade)
	return u
}

// SetPastNatlIndex sets the "past_natl_index" field.
func (u *RestaurantTrendUpsert) SetPastNatlIndex(v float64) *RestaurantTrendUpsert {
	u.Set(restauranttrend.FieldPastNatlIndex, v)
	return u
}

// UpdatePastNatlIndex sets the "past_natl_index" field to the value that was provided on create.
func (u *RestaurantTrendUpsert) UpdatePastNatlIndex() *RestaurantTrendUpsert {
	u.SetExcluded(restauranttrend.FieldPastNatlIndex)
	return u
}

// AddPastNatlIndex adds v to the "past_natl_index" field.
func (u *RestaurantTrendUpsert) AddPastNatlIndex(v float64) *RestaurantTrendUpsert {
	u.Add(restauranttrend.FieldPastNatlIndex, v)
	return u
}

// ClearPastNatlIndex clears the value of the "past_natl_index" field.
func (u *RestaurantTrendUpsert) ClearPastNatlIndex() *RestaurantTrendUpsert {
	u.SetNull(restauranttrend.FieldPastNatlIndex)
	return u
}

// SetPastAnnualSlsK sets the "past_annual_sls_k" field.
func (u *RestaurantTrendUpsert) SetPastAnnualSlsK(v float64) *RestaurantTrendUpsert {
	u.Set(restauranttrend.FieldPastAnnualSlsK, v)
	return u
}

// UpdatePastAnnualSlsK sets the "past_annual_sls_k" field to the value that was provided on create.
func (u *RestaurantTrendUpsert) UpdatePastAnnualSlsK() *RestaurantTrendUpsert {
	u.SetExcluded(restauranttrend.FieldPastAnnualSlsK)
	return u
}

// AddPastAnnualSlsK adds v to the "past_annual_sls_k" field.
func (u *RestaurantTrendUpsert) AddPastAnnualSlsK(v float64) *RestaurantTrendUpsert {
	u.Add(restauranttrend.FieldPastAnnualSlsK, v)
	return u
}

// ClearPastAnnualSlsK clears the value of the "past_annual_sls_k" field.
func (u *RestaurantTrendUpsert) ClearPastAnnualSlsK() *RestaurantTrendUpsert {
	u.SetNull(restauranttrend.FieldPastAnnualSlsK)
	return u
}

// SetPastMktGrade sets the "past_mkt_grade" field.
func (u *RestaurantTrendUpsert) SetPastMktGrade(v string) *RestaurantTrendUpsert {
	u.Set(restauranttrend.FieldPastMktGrade, v)
	return u
}

// UpdatePastMktGrade sets the "past_mkt_grade" field to the value that was provided on create.
func (u *RestaurantTrendUpsert) UpdatePastMktGrade() *RestaurantTrendUpsert {
	u.SetExcluded(restauranttrend.FieldPastMktGrade)
	return u
}

// ClearPastMktGrade clears the value of the "past_mkt_grade" field.
func (u *RestaurantTrendUpsert) ClearPastMktGrade() *RestaurantTrendUpsert {
	u.SetNull(restauranttrend.FieldPastMktGrade)
	return u
}

// SetPastMktIndex sets the "past_mkt_index" field.
func (u *RestaurantTrendUpsert) SetPastMktIndex(v float64) *RestaurantTrendUpsert {
	u.Set(restauranttrend.FieldPastMktIndex, v)
	return u
}

// UpdatePastMktIndex sets the "past_mkt_index" field to the value that was provided on create.
func (u *RestaurantTrendUpsert) UpdatePastMktIndex() *RestaurantTrendUpsert {
	u.SetExcluded(restauranttrend.FieldPastMktIndex)
	return u
}

// AddPastMktIndex adds v to the "past_mkt_index" field.
func (u *RestaurantTrendUpsert) AddPastMktIndex(v float64) *RestaurantTrendUpsert {
	u.Add(restauranttrend.FieldPastMktIndex, v)
	return u
}

// ClearPastMktIndex clears the value of the "past_mkt_index" field.
func (u *RestaurantTrendUpsert) ClearPastMktIndex() *RestaurantTrendUpsert {
	u.SetNull(restauranttrend.FieldPastMktIndex)
	return u
}

// SetSurveyYrLast sets the "survey_yr_last" field.
func (u *RestaurantTrendUpsert) SetSurveyYrLast(v int) *RestaurantTrendUpsert {
	u.Set(restauranttrend.FieldSurveyYrLast, v)
	return u
}

// UpdateSurveyYrLast sets the "survey_yr_last" field to the value that was provided on create.
func (u *RestaurantTrendUpsert) UpdateSurveyYrLast() *RestaurantTrendUpsert {
	u.SetExcluded(restauranttrend.FieldSurveyYrLast)
	return u
}

// AddSurveyYrLast adds v to the "survey_yr_last" field.
func (u *RestaurantTrendUpsert) AddSurveyYrLast(v int) *RestaurantTrendUpsert {
	u.Add(restauranttrend.FieldSurveyYrLast, v)
	return u
}

// ClearSurveyYrLast clears the value of the "survey_yr_last" field.
func (u *RestaurantTrendUpsert) ClearSurveyYrLast() *RestaurantTrendUpsert {
	u.SetNull(restauranttrend.FieldSurveyYrLast)
	return u
}

// SetSurveyYrNext sets the "survey_yr_next" field.
func (u *RestaurantTrendUpsert) SetSurveyYrNext(v int) *RestaurantTrendUpsert {
	u.Set(restauranttrend.FieldSurveyYrNext, v)
	return u
}

// UpdateSurveyYrNext sets the "survey_yr_next" field to the value that was provided on create.
func (u *RestaurantTrendUpsert) UpdateSurveyYrNext() *RestaurantTrendUpsert {
	u.SetExcluded(restauranttrend.FieldSurveyYrNext)
	return u
}

// AddSurveyYrNext adds v to the "survey_yr_next" field.
func (u *RestaurantTrendUpsert) AddSurveyYrNext(v int) *RestaurantTrendUpsert {
	u.Add(restauranttrend.FieldSurveyYrNext, v)
	return u
}

// ClearSurveyYrNext clears the value of the "survey_yr_next" field.
func (u *RestaurantTrendUpsert) ClearSurveyYrNext() *RestaurantTrendUpsert {
	u.SetNull(restauranttrend.FieldSurveyYrNext)
	return u
}

// SetTotalSurveys sets the "total_surveys" field.
func (u *RestaurantTrendUpsert) SetTotalSurveys(v int) *RestaurantTrendUpsert {
	u.Set(restauranttrend.FieldTotalSurveys, v)
	return u
}

// UpdateTotalSurveys sets the "total_surveys" field to the value that was provided on create.
func (u *RestaurantTrendUpsert) UpdateTotalSurveys() *RestaurantTrendUpsert {
	u.SetExcluded(restauranttrend.FieldTotalSurveys)
	return u
}

// AddTotalSurveys adds v to the "total_surveys" field.
func (u *RestaurantTrendUpsert) AddTotalSurveys(v int) *RestaurantTrendUpsert {
	u.Add(restauranttrend.FieldTotalSurveys, v)
	return u
}

// ClearTotalSurveys clears the value of the "total_surveys" field.
func (u *RestaurantTrendUpsert) ClearTotalSurveys() *RestaurantTrendUpsert {
	u.SetNull(restauranttrend.FieldTotalSurveys)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.RestaurantTrend.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(restauranttrend.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RestaurantTrendUpsertOne) UpdateNewValues() *RestaurantTrendUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(restauranttrend.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(restauranttrend.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RestaurantTrend.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *RestaurantTrendUpsertOne) Ignore() *RestaurantTrendUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RestaurantTrendUpsertOne) DoNothing() *RestaurantTrendUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RestaurantTrendCreate.OnConflict
// documentation for more info.
func (u *RestaurantTrendUpsertOne) Update(set func(*RestaurantTrendUpsert)) *RestaurantTrendUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RestaurantTrendUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *RestaurantTrendUpsertOne) SetUpdatedAt(v time.Time) *RestaurantTrendUpsertOne {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RestaurantTrendUpsertOne) UpdateUpdatedAt() *RestaurantTrendUpsertOne {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetLocationID sets the "location_id" field.
func (u *RestaurantTrendUpsertOne) SetLocationID(v uuid.UUID) *RestaurantTrendUpsertOne {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.SetLocationID(v)
	})
}

// UpdateLocationID sets the "location_id" field to the value that was provided on create.
func (u *RestaurantTrendUpsertOne) UpdateLocationID() *RestaurantTrendUpsertOne {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.UpdateLocationID()
	})
}

// SetYear sets the "year" field.
func (u *RestaurantTrendUpsertOne) SetYear(v int) *RestaurantTrendUpsertOne {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.SetYear(v)
	})
}

// AddYear adds v to the "year" field.
func (u *RestaurantTrendUpsertOne) AddYear(v int) *RestaurantTrendUpsertOne {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.AddYear(v)
	})
}

// UpdateYear sets the "year" field to the value that was provided on create.
func (u *RestaurantTrendUpsertOne) UpdateYear() *RestaurantTrendUpsertOne {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.UpdateYear()
	})
}

// SetCurrNatlGrade sets the "curr_natl_grade" field.
func (u *RestaurantTrendUpsertOne) SetCurrNatlGrade(v string) *RestaurantTrendUpsertOne {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.SetCurrNatlGrade(v)
	})
}

// UpdateCurrNatlGrade sets the "curr_natl_grade" field to the value that was provided on create.
func (u *RestaurantTrendUpsertOne) UpdateCurrNatlGrade() *RestaurantTrendUpsertOne {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.UpdateCurrNatlGrade()
	})
}

// ClearCurrNatlGrade clears the value of the "curr_natl_grade" field.
func (u *RestaurantTrendUpsertOne) ClearCurrNatlGrade() *RestaurantTrendUpsertOne {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.ClearCurrNatlGrade()
	})
}

// SetCurrNatlIndex sets the "curr_natl_index" field.
func (u *RestaurantTrendUpsertOne) SetCurrNatlIndex(v float64) *RestaurantTrendUpsertOne {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.SetCurrNatlIndex(v)
	})
}

// AddCurrNatlIndex adds v to the "curr_natl_index" field.
func (u *RestaurantTrendUpsertOne) AddCurrNatlIndex(v float64) *RestaurantTrendUpsertOne {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.AddCurrNatlIndex(v)
	})
}

// UpdateCurrNatlIndex sets the "curr_natl_index" field to the value that was provided on create.
func (u *RestaurantTrendUpsertOne) UpdateCurrNatlIndex() *RestaurantTrendUpsertOne {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.UpdateCurrNatlIndex()
	})
}

// ClearCurrNatlIndex clears the value of the "curr_natl_index" field.
func (u *RestaurantTrendUpsertOne) ClearCurrNatlIndex() *RestaurantTrendUpsertOne {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.ClearCurrNatlIndex()
	})
}

// SetCurrAnnualSlsK sets the "curr_annual_sls_k" field.
func (u *RestaurantTrendUpsertOne) SetCurrAnnualSlsK(v float64) *RestaurantTrendUpsertOne {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.SetCurrAnnualSlsK(v)
	})
}

// AddCurrAnnualSlsK adds v to the "curr_annual_sls_k" field.
func (u *RestaurantTrendUpsertOne) AddCurrAnnualSlsK(v float64) *RestaurantTrendUpsertOne {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.AddCurrAnnualSlsK(v)
	})
}

// UpdateCurrAnnualSlsK sets the "curr_annual_sls_k" field to the value that was provided on create.
func (u *RestaurantTrendUpsertOne) UpdateCurrAnnualSlsK() *RestaurantTrendUpsertOne {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.UpdateCurrAnnualSlsK()
	})
}

// ClearCurrAnnualSlsK clears the value of the "curr_annual_sls_k" field.
func (u *RestaurantTrendUpsertOne) ClearCurrAnnualSlsK() *RestaurantTrendUpsertOne {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.ClearCurrAnnualSlsK()
	})
}

// SetCurrMktGrade sets the "curr_mkt_grade" field.
func (u *RestaurantTrendUpsertOne) SetCurrMktGrade(v string) *RestaurantTrendUpsertOne {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.SetCurrMktGrade(v)
	})
}

// UpdateCurrMktGrade sets the "curr_mkt_grade" field to the value that was provided on create.
func (u *RestaurantTrendUpsertOne) UpdateCurrMktGrade() *RestaurantTrendUpsertOne {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.UpdateCurrMktGrade()
	})
}

// ClearCurrMktGrade clears the value of the "curr_mkt_grade" field.
func (u *RestaurantTrendUpsertOne) ClearCurrMktGrade() *RestaurantTrendUpsertOne {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.ClearCurrMktGrade()
	})
}

// SetCurrMktIndex sets the "curr_mkt_index" field.
func (u *RestaurantTrendUpsertOne) SetCurrMktIndex(v float64) *RestaurantTrendUpsertOne {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.SetCurrMktIndex(v)
	})
}

// AddCurrMktIndex adds v to the "curr_mkt_index" field.
func (u *RestaurantTrendUpsertOne) AddCurrMktIndex(v float64) *RestaurantTrendUpsertOne {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.AddCurrMktIndex(v)
	})
}

// UpdateCurrMktIndex sets the "curr_mkt_index" field to the value that was provided on create.
func (u *RestaurantTrendUpsertOne) UpdateCurrMktIndex() *RestaurantTrendUpsertOne {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.UpdateCurrMktIndex()
	})
}

// ClearCurrMktIndex clears the value of the "curr_mkt_index" field.
func (u *RestaurantTrendUpsertOne) ClearCurrMktIndex() *RestaurantTrendUpsertOne {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.ClearCurrMktIndex()
	})
}

// SetPastNatlGrade sets the "past_natl_grade" field.
func (u *RestaurantTrendUpsertOne) SetPastNatlGrade(v string) *RestaurantTrendUpsertOne {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.SetPastNatlGrade(v)
	})
}

// UpdatePastNatlGrade sets the "past_natl_grade" field to the value that was provided on create.
func (u *RestaurantTrendUpsertOne) UpdatePastNatlGrade() *RestaurantTrendUpsertOne {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.UpdatePastNatlGrade()
	})
}

// ClearPastNatlGrade clears the value of the "past_natl_grade" field.
func (u *RestaurantTrendUpsertOne) ClearPastNatlGrade() *RestaurantTrendUpsertOne {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.ClearPastNatlGrade()
	})
}

// SetPastNatlIndex sets the "past_natl_index" field.
func (u *RestaurantTrendUpsertOne) SetPastNatlIndex(v float64) *RestaurantTrendUpsertOne {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.SetPastNatlIndex(v)
	})
}

// AddPastNatlIndex adds v to the "past_natl_index" field.
func (u *RestaurantTrendUpsertOne) AddPastNatlIndex(v float64) *RestaurantTrendUpsertOne {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.AddPastNatlIndex(v)
	})
}

// UpdatePastNatlIndex sets the "past_natl_index" field to the value that was provided on create.
func (u *RestaurantTrendUpsertOne) UpdatePastNatlIndex() *RestaurantTrendUpsertOne {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.UpdatePastNatlIndex()
	})
}

// ClearPastNatlIndex clears the value of the "past_natl_index" field.
func (u *RestaurantTrendUpsertOne) ClearPastNatlIndex() *RestaurantTrendUpsertOne {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.ClearPastNatlIndex()
	})
}

// SetPastAnnualSlsK sets the "past_annual_sls_k" field.
func (u *RestaurantTrendUpsertOne) SetPastAnnualSlsK(v float64) *RestaurantTrendUpsertOne {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.SetPastAnnualSlsK(v)
	})
}

// AddPastAnnualSlsK adds v to the "past_annual_sls_k" field.
func (u *RestaurantTrendUpsertOne) AddPastAnnualSlsK(v float64) *RestaurantTrendUpsertOne {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.AddPastAnnualSlsK(v)
	})
}

// UpdatePastAnnualSlsK sets the "past_annual_sls_k" field to the value that was provided on create.
func (u *RestaurantTrendUpsertOne) UpdatePastAnnualSlsK() *RestaurantTrendUpsertOne {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.UpdatePastAnnualSlsK()
	})
}

// ClearPastAnnualSlsK clears the value of the "past_annual_sls_k" field.
func (u *RestaurantTrendUpsertOne) ClearPastAnnualSlsK() *RestaurantTrendUpsertOne {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.ClearPastAnnualSlsK()
	})
}

// SetPastMktGrade sets the "past_mkt_grade" field.
func (u *RestaurantTrendUpsertOne) SetPastMktGrade(v string) *RestaurantTrendUpsertOne {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.SetPastMktGrade(v)
	})
}

// UpdatePastMktGrade sets the "past_mkt_grade" field to the value that was provided on create.
func (u *RestaurantTrendUpsertOne) UpdatePastMktGrade() *RestaurantTrendUpsertOne {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.UpdatePastMktGrade()
	})
}

// ClearPastMktGrade clears the value of the "past_mkt_grade" field.
func (u *RestaurantTrendUpsertOne) ClearPastMktGrade() *RestaurantTrendUpsertOne {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.ClearPastMktGrade()
	})
}

// SetPastMktIndex sets the "past_mkt_index" field.
func (u *RestaurantTrendUpsertOne) SetPastMktIndex(v float64) *RestaurantTrendUpsertOne {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.SetPastMktIndex(v)
	})
}

// AddPastMktIndex adds v to the "past_mkt_index" field.
func (u *RestaurantTrendUpsertOne) AddPastMktIndex(v float64) *RestaurantTrendUpsertOne {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.AddPastMktIndex(v)
	})
}

// UpdatePastMktIndex sets the "past_mkt_index" field to the value that was provided on create.
func (u *RestaurantTrendUpsertOne) UpdatePastMktIndex() *RestaurantTrendUpsertOne {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.UpdatePastMktIndex()
	})
}

// ClearPastMktIndex clears the value of the "past_mkt_index" field.
func (u *RestaurantTrendUpsertOne) ClearPastMktIndex() *RestaurantTrendUpsertOne {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.ClearPastMktIndex()
	})
}

// SetSurveyYrLast sets the "survey_yr_last" field.
func (u *RestaurantTrendUpsertOne) SetSurveyYrLast(v int) *RestaurantTrendUpsertOne {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.SetSurveyYrLast(v)
	})
}

// AddSurveyYrLast adds v to the "survey_yr_last" field.
func (u *RestaurantTrendUpsertOne) AddSurveyYrLast(v int) *RestaurantTrendUpsertOne {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.AddSurveyYrLast(v)
	})
}

// UpdateSurveyYrLast sets the "survey_yr_last" field to the value that was provided on create.
func (u *RestaurantTrendUpsertOne) UpdateSurveyYrLast() *RestaurantTrendUpsertOne {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.UpdateSurveyYrLast()
	})
}

// ClearSurveyYrLast clears the value of the "survey_yr_last" field.
func (u *RestaurantTrendUpsertOne) ClearSurveyYrLast() *RestaurantTrendUpsertOne {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.ClearSurveyYrLast()
	})
}

// SetSurveyYrNext sets the "survey_yr_next" field.
func (u *RestaurantTrendUpsertOne) SetSurveyYrNext(v int) *RestaurantTrendUpsertOne {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.SetSurveyYrNext(v)
	})
}

// AddSurveyYrNext adds v to the "survey_yr_next" field.
func (u *RestaurantTrendUpsertOne) AddSurveyYrNext(v int) *RestaurantTrendUpsertOne {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.AddSurveyYrNext(v)
	})
}

// UpdateSurveyYrNext sets the "survey_yr_next" field to the value that was provided on create.
func (u *RestaurantTrendUpsertOne) UpdateSurveyYrNext() *RestaurantTrendUpsertOne {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.UpdateSurveyYrNext()
	})
}

// ClearSurveyYrNext clears the value of the "survey_yr_next" field.
func (u *RestaurantTrendUpsertOne) ClearSurveyYrNext() *RestaurantTrendUpsertOne {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.ClearSurveyYrNext()
	})
}

// SetTotalSurveys sets the "total_surveys" field.
func (u *RestaurantTrendUpsertOne) SetTotalSurveys(v int) *RestaurantTrendUpsertOne {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.SetTotalSurveys(v)
	})
}

// AddTotalSurveys adds v to the "total_surveys" field.
func (u *RestaurantTrendUpsertOne) AddTotalSurveys(v int) *RestaurantTrendUpsertOne {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.AddTotalSurveys(v)
	})
}

// UpdateTotalSurveys sets the "total_surveys" field to the value that was provided on create.
func (u *RestaurantTrendUpsertOne) UpdateTotalSurveys() *RestaurantTrendUpsertOne {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.UpdateTotalSurveys()
	})
}

// ClearTotalSurveys clears the value of the "total_surveys" field.
func (u *RestaurantTrendUpsertOne) ClearTotalSurveys() *RestaurantTrendUpsertOne {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.ClearTotalSurveys()
	})
}

// Exec executes the query.
func (u *RestaurantTrendUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for RestaurantTrendCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RestaurantTrendUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *RestaurantTrendUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: RestaurantTrendUpsertOne.ID is not supported by MySQL driver. Use RestaurantTrendUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *RestaurantTrendUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// RestaurantTrendCreateBulk is the builder for creating many RestaurantTrend entities in bulk.
type RestaurantTrendCreateBulk struct {
	config
	err      error
	builders []*RestaurantTrendCreate
	conflict []sql.ConflictOption
}

// Save creates the RestaurantTrend entities in the database.
func (_c *RestaurantTrendCreateBulk) Save(ctx context.Context) ([]*RestaurantTrend, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RestaurantTrend, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RestaurantTrendMutation)
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
func (_c *RestaurantTrendCreateBulk) SaveX(ctx context.Context) []*RestaurantTrend {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RestaurantTrendCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RestaurantTrendCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RestaurantTrend.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RestaurantTrendUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *RestaurantTrendCreateBulk) OnConflict(opts ...sql.ConflictOption) *RestaurantTrendUpsertBulk {
	_c.conflict = opts
	return &RestaurantTrendUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RestaurantTrend.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RestaurantTrendCreateBulk) OnConflictColumns(columns ...string) *RestaurantTrendUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RestaurantTrendUpsertBulk{
		create: _c,
	}
}

// RestaurantTrendUpsertBulk is the builder for "upsert"-ing
// a bulk of RestaurantTrend nodes.
type RestaurantTrendUpsertBulk struct {
	create *RestaurantTrendCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.RestaurantTrend.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(restauranttrend.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RestaurantTrendUpsertBulk) UpdateNewValues() *RestaurantTrendUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(restauranttrend.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(restauranttrend.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RestaurantTrend.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *RestaurantTrendUpsertBulk) Ignore() *RestaurantTrendUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RestaurantTrendUpsertBulk) DoNothing() *RestaurantTrendUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RestaurantTrendCreateBulk.OnConflict
// documentation for more info.
func (u *RestaurantTrendUpsertBulk) Update(set func(*RestaurantTrendUpsert)) *RestaurantTrendUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RestaurantTrendUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *RestaurantTrendUpsertBulk) SetUpdatedAt(v time.Time) *RestaurantTrendUpsertBulk {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RestaurantTrendUpsertBulk) UpdateUpdatedAt() *RestaurantTrendUpsertBulk {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetLocationID sets the "location_id" field.
func (u *RestaurantTrendUpsertBulk) SetLocationID(v uuid.UUID) *RestaurantTrendUpsertBulk {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.SetLocationID(v)
	})
}

// UpdateLocationID sets the "location_id" field to the value that was provided on create.
func (u *RestaurantTrendUpsertBulk) UpdateLocationID() *RestaurantTrendUpsertBulk {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.UpdateLocationID()
	})
}

// SetYear sets the "year" field.
func (u *RestaurantTrendUpsertBulk) SetYear(v int) *RestaurantTrendUpsertBulk {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.SetYear(v)
	})
}

// AddYear adds v to the "year" field.
func (u *RestaurantTrendUpsertBulk) AddYear(v int) *RestaurantTrendUpsertBulk {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.AddYear(v)
	})
}

// UpdateYear sets the "year" field to the value that was provided on create.
func (u *RestaurantTrendUpsertBulk) UpdateYear() *RestaurantTrendUpsertBulk {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.UpdateYear()
	})
}

// SetCurrNatlGrade sets the "curr_natl_grade" field.
func (u *RestaurantTrendUpsertBulk) SetCurrNatlGrade(v string) *RestaurantTrendUpsertBulk {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.SetCurrNatlGrade(v)
	})
}

// UpdateCurrNatlGrade sets the "curr_natl_grade" field to the value that was provided on create.
func (u *RestaurantTrendUpsertBulk) UpdateCurrNatlGrade() *RestaurantTrendUpsertBulk {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.UpdateCurrNatlGrade()
	})
}

// ClearCurrNatlGrade clears the value of the "curr_natl_grade" field.
func (u *RestaurantTrendUpsertBulk) ClearCurrNatlGrade() *RestaurantTrendUpsertBulk {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.ClearCurrNatlGrade()
	})
}

// SetCurrNatlIndex sets the "curr_natl_index" field.
func (u *RestaurantTrendUpsertBulk) SetCurrNatlIndex(v float64) *RestaurantTrendUpsertBulk {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.SetCurrNatlIndex(v)
	})
}

// AddCurrNatlIndex adds v to the "curr_natl_index" field.
func (u *RestaurantTrendUpsertBulk) AddCurrNatlIndex(v float64) *RestaurantTrendUpsertBulk {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.AddCurrNatlIndex(v)
	})
}

// UpdateCurrNatlIndex sets the "curr_natl_index" field to the value that was provided on create.
func (u *RestaurantTrendUpsertBulk) UpdateCurrNatlIndex() *RestaurantTrendUpsertBulk {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.UpdateCurrNatlIndex()
	})
}

// ClearCurrNatlIndex clears the value of the "curr_natl_index" field.
func (u *RestaurantTrendUpsertBulk) ClearCurrNatlIndex() *RestaurantTrendUpsertBulk {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.ClearCurrNatlIndex()
	})
}

// SetCurrAnnualSlsK sets the "curr_annual_sls_k" field.
func (u *RestaurantTrendUpsertBulk) SetCurrAnnualSlsK(v float64) *RestaurantTrendUpsertBulk {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.SetCurrAnnualSlsK(v)
	})
}

// AddCurrAnnualSlsK adds v to the "curr_annual_sls_k" field.
func (u *RestaurantTrendUpsertBulk) AddCurrAnnualSlsK(v float64) *RestaurantTrendUpsertBulk {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.AddCurrAnnualSlsK(v)
	})
}

// UpdateCurrAnnualSlsK sets the "curr_annual_sls_k" field to the value that was provided on create.
func (u *RestaurantTrendUpsertBulk) UpdateCurrAnnualSlsK() *RestaurantTrendUpsertBulk {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.UpdateCurrAnnualSlsK()
	})
}

// ClearCurrAnnualSlsK clears the value of the "curr_annual_sls_k" field.
func (u *RestaurantTrendUpsertBulk) ClearCurrAnnualSlsK() *RestaurantTrendUpsertBulk {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.ClearCurrAnnualSlsK()
	})
}

// SetCurrMktGrade sets the "curr_mkt_grade" field.
func (u *RestaurantTrendUpsertBulk) SetCurrMktGrade(v string) *RestaurantTrendUpsertBulk {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.SetCurrMktGrade(v)
	})
}

// UpdateCurrMktGrade sets the "curr_mkt_grade" field to the value that was provided on create.
func (u *RestaurantTrendUpsertBulk) UpdateCurrMktGrade() *RestaurantTrendUpsertBulk {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.UpdateCurrMktGrade()
	})
}

// ClearCurrMktGrade clears the value of the "curr_mkt_grade" field.
func (u *RestaurantTrendUpsertBulk) ClearCurrMktGrade() *RestaurantTrendUpsertBulk {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.ClearCurrMktGrade()
	})
}

// SetCurrMktIndex sets the "curr_mkt_index" field.
func (u *RestaurantTrendUpsertBulk) SetCurrMktIndex(v float64) *RestaurantTrendUpsertBulk {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.SetCurrMktIndex(v)
	})
}

// AddCurrMktIndex adds v to the "curr_mkt_index" field.
func (u *RestaurantTrendUpsertBulk) AddCurrMktIndex(v float64) *RestaurantTrendUpsertBulk {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.AddCurrMktIndex(v)
	})
}

// UpdateCurrMktIndex sets the "curr_mkt_index" field to the value that was provided on create.
func (u *RestaurantTrendUpsertBulk) UpdateCurrMktIndex() *RestaurantTrendUpsertBulk {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.UpdateCurrMktIndex()
	})
}

// ClearCurrMktIndex clears the value of the "curr_mkt_index" field.
func (u *RestaurantTrendUpsertBulk) ClearCurrMktIndex() *RestaurantTrendUpsertBulk {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.ClearCurrMktIndex()
	})
}

// SetPastNatlGrade sets the "past_natl_grade" field.
func (u *RestaurantTrendUpsertBulk) SetPastNatlGrade(v string) *RestaurantTrendUpsertBulk {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.SetPastNatlGrade(v)
	})
}

// UpdatePastNatlGrade sets the "past_natl_grade" field to the value that was provided on create.
func (u *RestaurantTrendUpsertBulk) UpdatePastNatlGrade() *RestaurantTrendUpsertBulk {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.UpdatePastNatlGrade()
	})
}

// ClearPastNatlGrade clears the value of the "past_natl_grade" field.
func (u *RestaurantTrendUpsertBulk) ClearPastNatlGrade() *RestaurantTrendUpsertBulk {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.ClearPastNatlGrade()
	})
}

// SetPastNatlIndex sets the "past_natl_index" field.
func (u *RestaurantTrendUpsertBulk) SetPastNatlIndex(v float64) *RestaurantTrendUpsertBulk {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.SetPastNatlIndex(v)
	})
}

// AddPastNatlIndex adds v to the "past_natl_index" field.
func (u *RestaurantTrendUpsertBulk) AddPastNatlIndex(v float64) *RestaurantTrendUpsertBulk {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.AddPastNatlIndex(v)
	})
}

// UpdatePastNatlIndex sets the "past_natl_index" field to the value that was provided on create.
func (u *RestaurantTrendUpsertBulk) UpdatePastNatlIndex() *RestaurantTrendUpsertBulk {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.UpdatePastNatlIndex()
	})
}

// ClearPastNatlIndex clears the value of the "past_natl_index" field.
func (u *RestaurantTrendUpsertBulk) ClearPastNatlIndex() *RestaurantTrendUpsertBulk {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.ClearPastNatlIndex()
	})
}

// SetPastAnnualSlsK sets the "past_annual_sls_k" field.
func (u *RestaurantTrendUpsertBulk) SetPastAnnualSlsK(v float64) *RestaurantTrendUpsertBulk {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.SetPastAnnualSlsK(v)
	})
}

// AddPastAnnualSlsK adds v to the "past_annual_sls_k" field.
func (u *RestaurantTrendUpsertBulk) AddPastAnnualSlsK(v float64) *RestaurantTrendUpsertBulk {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.AddPastAnnualSlsK(v)
	})
}

// UpdatePastAnnualSlsK sets the "past_annual_sls_k" field to the value that was provided on create.
func (u *RestaurantTrendUpsertBulk) UpdatePastAnnualSlsK() *RestaurantTrendUpsertBulk {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.UpdatePastAnnualSlsK()
	})
}

// ClearPastAnnualSlsK clears the value of the "past_annual_sls_k" field.
func (u *RestaurantTrendUpsertBulk) ClearPastAnnualSlsK() *RestaurantTrendUpsertBulk {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.ClearPastAnnualSlsK()
	})
}

// SetPastMktGrade sets the "past_mkt_grade" field.
func (u *RestaurantTrendUpsertBulk) SetPastMktGrade(v string) *RestaurantTrendUpsertBulk {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.SetPastMktGrade(v)
	})
}

// UpdatePastMktGrade sets the "past_mkt_grade" field to the value that was provided on create.
func (u *RestaurantTrendUpsertBulk) UpdatePastMktGrade() *RestaurantTrendUpsertBulk {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.UpdatePastMktGrade()
	})
}

// ClearPastMktGrade clears the value of the "past_mkt_grade" field.
func (u *RestaurantTrendUpsertBulk) ClearPastMktGrade() *RestaurantTrendUpsertBulk {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.ClearPastMktGrade()
	})
}

// SetPastMktIndex sets the "past_mkt_index" field.
func (u *RestaurantTrendUpsertBulk) SetPastMktIndex(v float64) *RestaurantTrendUpsertBulk {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.SetPastMktIndex(v)
	})
}

// AddPastMktIndex adds v to the "past_mkt_index" field.
func (u *RestaurantTrendUpsertBulk) AddPastMktIndex(v float64) *RestaurantTrendUpsertBulk {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.AddPastMktIndex(v)
	})
}

// UpdatePastMktIndex sets the "past_mkt_index" field to the value that was provided on create.
func (u *RestaurantTrendUpsertBulk) UpdatePastMktIndex() *RestaurantTrendUpsertBulk {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.UpdatePastMktIndex()
	})
}

// ClearPastMktIndex clears the value of the "past_mkt_index" field.
func (u *RestaurantTrendUpsertBulk) ClearPastMktIndex() *RestaurantTrendUpsertBulk {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.ClearPastMktIndex()
	})
}

// SetSurveyYrLast sets the "survey_yr_last" field.
func (u *RestaurantTrendUpsertBulk) SetSurveyYrLast(v int) *RestaurantTrendUpsertBulk {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.SetSurveyYrLast(v)
	})
}

// AddSurveyYrLast adds v to the "survey_yr_last" field.
func (u *RestaurantTrendUpsertBulk) AddSurveyYrLast(v int) *RestaurantTrendUpsertBulk {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.AddSurveyYrLast(v)
	})
}

// UpdateSurveyYrLast sets the "survey_yr_last" field to the value that was provided on create.
func (u *RestaurantTrendUpsertBulk) UpdateSurveyYrLast() *RestaurantTrendUpsertBulk {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.UpdateSurveyYrLast()
	})
}

// ClearSurveyYrLast clears the value of the "survey_yr_last" field.
func (u *RestaurantTrendUpsertBulk) ClearSurveyYrLast() *RestaurantTrendUpsertBulk {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.ClearSurveyYrLast()
	})
}

// SetSurveyYrNext sets the "survey_yr_next" field.
func (u *RestaurantTrendUpsertBulk) SetSurveyYrNext(v int) *RestaurantTrendUpsertBulk {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.SetSurveyYrNext(v)
	})
}

// AddSurveyYrNext adds v to the "survey_yr_next" field.
func (u *RestaurantTrendUpsertBulk) AddSurveyYrNext(v int) *RestaurantTrendUpsertBulk {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.AddSurveyYrNext(v)
	})
}

// UpdateSurveyYrNext sets the "survey_yr_next" field to the value that was provided on create.
func (u *RestaurantTrendUpsertBulk) UpdateSurveyYrNext() *RestaurantTrendUpsertBulk {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.UpdateSurveyYrNext()
	})
}

// ClearSurveyYrNext clears the value of the "survey_yr_next" field.
func (u *RestaurantTrendUpsertBulk) ClearSurveyYrNext() *RestaurantTrendUpsertBulk {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.ClearSurveyYrNext()
	})
}

// SetTotalSurveys sets the "total_surveys" field.
func (u *RestaurantTrendUpsertBulk) SetTotalSurveys(v int) *RestaurantTrendUpsertBulk {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.SetTotalSurveys(v)
	})
}

// AddTotalSurveys adds v to the "total_surveys" field.
func (u *RestaurantTrendUpsertBulk) AddTotalSurveys(v int) *RestaurantTrendUpsertBulk {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.AddTotalSurveys(v)
	})
}

// UpdateTotalSurveys sets the "total_surveys" field to the value that was provided on create.
func (u *RestaurantTrendUpsertBulk) UpdateTotalSurveys() *RestaurantTrendUpsertBulk {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.UpdateTotalSurveys()
	})
}

// ClearTotalSurveys clears the value of the "total_surveys" field.
func (u *RestaurantTrendUpsertBulk) ClearTotalSurveys() *RestaurantTrendUpsertBulk {
	return u.Update(func(s *RestaurantTrendUpsert) {
		s.ClearTotalSurveys()
	})
}

// Exec executes the query.
func (u *RestaurantTrendUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the RestaurantTrendCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for RestaurantTrendCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RestaurantTrendUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
