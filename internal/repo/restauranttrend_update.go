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

// RestaurantTrendUpdate is the builder for updating RestaurantTrend entities.
type RestaurantTrendUpdate struct {
	config
	hooks    []Hook
	mutation *RestaurantTrendMutation
}

// Where appends a list predicates to the RestaurantTrendUpdate builder.
func (_u *RestaurantTrendUpdate) Where(ps ...predicate.RestaurantTrend) *RestaurantTrendUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RestaurantTrendUpdate) SetUpdatedAt(v time.Time) *RestaurantTrendUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetLocationID sets the "location_id" field.
func (_u *RestaurantTrendUpdate) SetLocationID(v uuid.UUID) *RestaurantTrendUpdate {
	_u.mutation.SetLocationID(v)
	return _u
}

// SetNillableLocationID sets the "location_id" field if the given value is not nil.
func (_u *RestaurantTrendUpdate) SetNillableLocationID(v *uuid.UUID) *RestaurantTrendUpdate {
	if v != nil {
		_u.SetLocationID(*v)
	}
	return _u
}

// SetYear sets the "year" field.
func (_u *RestaurantTrendUpdate) SetYear(v int) *RestaurantTrendUpdate {
	_u.mutation.ResetYear()
	_u.mutation.SetYear(v)
	return _u
}

// SetNillableYear sets the "year" field if the given value is not nil.
func (_u *RestaurantTrendUpdate) SetNillableYear(v *int) *RestaurantTrendUpdate {
	if v != nil {
		_u.SetYear(*v)
	}
	return _u
}

// AddYear adds value to the "year" field.
func (_u *RestaurantTrendUpdate) AddYear(v int) *RestaurantTrendUpdate {
	_u.mutation.AddYear(v)
	return _u
}

// SetCurrNatlGrade sets the "curr_natl_grade" field.
func (_u *RestaurantTrendUpdate) SetCurrNatlGrade(v string) *RestaurantTrendUpdate {
	_u.mutation.SetCurrNatlGrade(v)
	return _u
}

// SetNillableCurrNatlGrade sets the "curr_natl_grade" field if the given value is not nil.
func (_u *RestaurantTrendUpdate) SetNillableCurrNatlGrade(v *string) *RestaurantTrendUpdate {
	if v != nil {
		_u.SetCurrNatlGrade(*v)
	}
	return _u
}

// ClearCurrNatlGrade clears the value of the "curr_natl_grade" field.
func (_u *RestaurantTrendUpdate) ClearCurrNatlGrade() *RestaurantTrendUpdate {
	_u.mutation.ClearCurrNatlGrade()
	return _u
}

// SetCurrNatlIndex sets the "curr_natl_index" field.
func (_u *RestaurantTrendUpdate) SetCurrNatlIndex(v float64) *RestaurantTrendUpdate {
	_u.mutation.ResetCurrNatlIndex()
	_u.mutation.SetCurrNatlIndex(v)
	return _u
}

// SetNillableCurrNatlIndex sets the "curr_natl_index" field if the given value is not nil.
func (_u *RestaurantTrendUpdate) SetNillableCurrNatlIndex(v *float64) *RestaurantTrendUpdate {
	if v != nil {
		_u.SetCurrNatlIndex(*v)
	}
	return _u
}

// AddCurrNatlIndex adds value to the "curr_natl_index" field.
func (_u *RestaurantTrendUpdate) AddCurrNatlIndex(v float64) *RestaurantTrendUpdate {
	_u.mutation.AddCurrNatlIndex(v)
	return _u
}

// ClearCurrNatlIndex clears the value of the "curr_natl_index" field.
func (_u *RestaurantTrendUpdate) ClearCurrNatlIndex() *RestaurantTrendUpdate {
	_u.mutation.ClearCurrNatlIndex()
	return _u
}

// SetCurrAnnualSlsK sets the "curr_annual_sls_k" field.
func (_u *RestaurantTrendUpdate) SetCurrAnnualSlsK(v float64) *RestaurantTrendUpdate {
	_u.mutation.ResetCurrAnnualSlsK()
	_u.mutation.SetCurrAnnualSlsK(v)
	return _u
}

// SetNillableCurrAnnualSlsK sets the "curr_annual_sls_k" field if the given value is not nil.
func (_u *RestaurantTrendUpdate) SetNillableCurrAnnualSlsK(v *float64) *RestaurantTrendUpdate {
	if v != nil {
		_u.SetCurrAnnualSlsK(*v)
	}
	return _u
}

// AddCurrAnnualSlsK adds value to the "curr_annual_sls_k" field.
func (_u *RestaurantTrendUpdate) AddCurrAnnualSlsK(v float64) *RestaurantTrendUpdate {
	_u.mutation.AddCurrAnnualSlsK(v)
	return _u
}

// ClearCurrAnnualSlsK clears the value of the "curr_annual_sls_k" field.
func (_u *RestaurantTrendUpdate) ClearCurrAnnualSlsK() *RestaurantTrendUpdate {
	_u.mutation.ClearCurrAnnualSlsK()
	return _u
}

// SetCurrMktGrade sets the "curr_mkt_grade" field.
func (_u *RestaurantTrendUpdate) SetCurrMktGrade(v string) *RestaurantTrendUpdate {
	_u.mutation.SetCurrMktGrade(v)
	return _u
}

// SetNillableCurrMktGrade sets the "curr_mkt_grade" field if the given value is not nil.
func (_u *RestaurantTrendUpdate) SetNillableCurrMktGrade(v *string) *RestaurantTrendUpdate {
	if v != nil {
		_u.SetCurrMktGrade(*v)
	}
	return _u
}

// ClearCurrMktGrade clears the value of the "curr_mkt_grade" field.
func (_u *RestaurantTrendUpdate) ClearCurrMktGrade() *RestaurantTrendUpdate {
	_u.mutation.ClearCurrMktGrade()
	return _u
}

// SetCurrMktIndex sets the "curr_mkt_index" field.
func (_u *RestaurantTrendUpdate) SetCurrMktIndex(v float64) *RestaurantTrendUpdate {
	_u.mutation.ResetCurrMktIndex()
	_u.mutation.SetCurrMktIndex(v)
	return _u
}

// SetNillableCurrMktIndex sets the "curr_mkt_index" field if the given value is not nil.
func (_u *RestaurantTrendUpdate) SetNillableCurrMktIndex(v *float64) *RestaurantTrendUpdate {
	if v != nil {
		_u.SetCurrMktIndex(*v)
	}
	return _u
}

// AddCurrMktIndex adds value to the "curr_mkt_index" field.
func (_u *RestaurantTrendUpdate) AddCurrMktIndex(v float64) *RestaurantTrendUpdate {
	_u.mutation.AddCurrMktIndex(v)
	return _u
}

// ClearCurrMktIndex clears the value of the "curr_mkt_index" field.
func (_u *RestaurantTrendUpdate) ClearCurrMktIndex() *RestaurantTrendUpdate {
	_u.mutation.ClearCurrMktIndex()
	return _u
}

// SetPastNatlGrade sets the "past_natl_grade" field.
func (_u *RestaurantTrendUpdate) SetPastNatlGrade(v string) *RestaurantTrendUpdate {
	_u.mutation.SetPastNatlGrade(v)
	return _u
}

// SetNillablePastNatlGrade sets the "past_natl_grade" field if the given value is not nil.
func (_u *RestaurantTrendUpdate) SetNillablePastNatlGrade(v *string) *RestaurantTrendUpdate {
	if v != nil {
		_u.SetPastNatlGrade(*v)
	}
	return _u
}

// ClearPastNatlGrade clears the value of the "past_natl_grade" field.
func (_u *RestaurantTrendUpdate) ClearPastNatlGrade() *RestaurantTrendUpdate {
	_u.mutation.ClearPastNatlGrade()
	return _u
}

// SetPastNatlIndex sets the "past_natl_index" field.
func (_u *RestaurantTrendUpdate) SetPastNatlIndex(v float64) *RestaurantTrendUpdate {
	_u.mutation.ResetPastNatlIndex()
	_u.mutation.SetPastNatlIndex(v)
	return _u
}

// SetNillablePastNatlIndex sets the "past_natl_index" field if the given value is not nil.
func (_u *RestaurantTrendUpdate) SetNillablePastNatlIndex(v *float64) *RestaurantTrendUpdate {
	if v != nil {
		_u.SetPastNatlIndex(*v)
	}
	return _u
}

// AddPastNatlIndex adds value to the "past_natl_index" field.
func (_u *RestaurantTrendUpdate) AddPastNatlIndex(v float64) *RestaurantTrendUpdate {
	_u.mutation.AddPastNatlIndex(v)
	return _u
}

// ClearPastNatlIndex clears the value of the "past_natl_index" field.
func (_u *RestaurantTrendUpdate) ClearPastNatlIndex() *RestaurantTrendUpdate {
	_u.mutation.ClearPastNatlIndex()
	return _u
}

// SetPastAnnualSlsK sets the "past_annual_sls_k" field.
func (_u *RestaurantTrendUpdate) SetPastAnnualSlsK(v float64) *RestaurantTrendUpdate {
	_u.mutation.ResetPastAnnualSlsK()
	_u.mutation.SetPastAnnualSlsK(v)
	return _u
}

// SetNillablePastAnnualSlsK sets the "past_annual_sls_k" field if the given value is not nil.
func (_u *RestaurantTrendUpdate) SetNillablePastAnnualSlsK(v *float64) *RestaurantTrendUpdate {
	if v != nil {
		_u.SetPastAnnualSlsK(*v)
	}
	return _u
}

// AddPastAnnualSlsK adds value to the "past_annual_sls_k" field.
func (_u *RestaurantTrendUpdate) AddPastAnnualSlsK(v float64) *RestaurantTrendUpdate {
	_u.mutation.AddPastAnnualSlsK(v)
	return _u
}

// ClearPastAnnualSlsK clears the value of the "past_annual_sls_k" field.
func (_u *RestaurantTrendUpdate) ClearPastAnnualSlsK() *RestaurantTrendUpdate {
	_u.mutation.ClearPastAnnualSlsK()
	return _u
}

// SetPastMktGrade sets the "past_mkt_grade" field.
func (_u *RestaurantTrendUpdate) SetPastMktGrade(v string) *RestaurantTrendUpdate {
	_u.mutation.SetPastMktGrade(v)
	return _u
}

// SetNillablePastMktGrade sets the "past_mkt_grade" field if the given value is not nil.
func (_u *RestaurantTrendUpdate) SetNillablePastMktGrade(v *string) *RestaurantTrendUpdate {
	if v != nil {
		_u.SetPastMktGrade(*v)
	}
	return _u
}

// ClearPastMktGrade clears the value of the "past_mkt_grade" field.
func (_u *RestaurantTrendUpdate) ClearPastMktGrade() *RestaurantTrendUpdate {
	_u.mutation.ClearPastMktGrade()
	return _u
}

// SetPastMktIndex sets the "past_mkt_index" field.
func (_u *RestaurantTrendUpdate) SetPastMktIndex(v float64) *RestaurantTrendUpdate {
	_u.mutation.ResetPastMktIndex()
	_u.mutation.SetPastMktIndex(v)
	return _u
}

// SetNillablePastMktIndex sets the "past_mkt_index" field if the given value is not nil.
func (_u *RestaurantTrendUpdate) SetNillablePastMktIndex(v *float64) *RestaurantTrendUpdate {
	if v != nil {
		_u.SetPastMktIndex(*v)
	}
	return _u
}

// AddPastMktIndex adds value to the "past_mkt_index" field.
func (_u *RestaurantTrendUpdate) AddPastMktIndex(v float64) *RestaurantTrendUpdate {
	_u.mutation.AddPastMktIndex(v)
	return _u
}

// ClearPastMktIndex clears the value of the "past_mkt_index" field.
func (_u *RestaurantTrendUpdate) ClearPastMktIndex() *RestaurantTrendUpdate {
	_u.mutation.ClearPastMktIndex()
	return _u
}

// SetSurveyYrLast sets the "survey_yr_last" field.
func (_u *RestaurantTrendUpdate) SetSurveyYrLast(v int) *RestaurantTrendUpdate {
	_u.mutation.ResetSurveyYrLast()
	_u.mutation.SetSurveyYrLast(v)
	return _u
}

// SetNillableSurveyYrLast sets the "survey_yr_last" field if the given value is not nil.
func (_u *RestaurantTrendUpdate) SetNillableSurveyYrLast(v *int) *RestaurantTrendUpdate {
	if v != nil {
		_u.SetSurveyYrLast(*v)
	}
	return _u
}

// AddSurveyYrLast adds value to the "survey_yr_last" field.
func (_u *RestaurantTrendUpdate) AddSurveyYrLast(v int) *RestaurantTrendUpdate {
	_u.mutation.AddSurveyYrLast(v)
	return _u
}

// ClearSurveyYrLast clears the value of the "survey_yr_last" field.
func (_u *RestaurantTrendUpdate) ClearSurveyYrLast() *RestaurantTrendUpdate {
	_u.mutation.ClearSurveyYrLast()
	return _u
}

// SetSurveyYrNext sets the "survey_yr_next" field.
func (_u *RestaurantTrendUpdate) SetSurveyYrNext(v int) *RestaurantTrendUpdate {
	_u.mutation.ResetSurveyYrNext()
	_u.mutation.SetSurveyYrNext(v)
	return _u
}

// SetNillableSurveyYrNext sets the "survey_yr_next" field if the given value is not nil.
func (_u *RestaurantTrendUpdate) SetNillableSurveyYrNext(v *int) *RestaurantTrendUpdate {
	if v != nil {
		_u.SetSurveyYrNext(*v)
	}
	return _u
}

// AddSurveyYrNext adds value to the "survey_yr_next" field.
func (_u *RestaurantTrendUpdate) AddSurveyYrNext(v int) *RestaurantTrendUpdate {
	_u.mutation.AddSurveyYrNext(v)
	return _u
}

// ClearSurveyYrNext clears the value of the "survey_yr_next" field.
func (_u *RestaurantTrendUpdate) ClearSurveyYrNext() *RestaurantTrendUpdate {
	_u.mutation.ClearSurveyYrNext()
	return _u
}

// SetTotalSurveys sets the "total_surveys" field.
func (_u *RestaurantTrendUpdate) SetTotalSurveys(v int) *RestaurantTrendUpdate {
	_u.mutation.ResetTotalSurveys()
	_u.mutation.SetTotalSurveys(v)
	return _u
}

// SetNillableTotalSurveys sets the "total_surveys" field if the given value is not nil.
func (_u *RestaurantTrendUpdate) SetNillableTotalSurveys(v *int) *RestaurantTrendUpdate {
	if v != nil {
		_u.SetTotalSurveys(*v)
	}
	return _u
}

// AddTotalSurveys adds value to the "total_surveys" field.
func (_u *RestaurantTrendUpdate) AddTotalSurveys(v int) *RestaurantTrendUpdate {
	_u.mutation.AddTotalSurveys(v)
	return _u
}

// ClearTotalSurveys clears the value of the "total_surveys" field.
func (_u *RestaurantTrendUpdate) ClearTotalSurveys() *RestaurantTrendUpdate {
	_u.mutation.ClearTotalSurveys()
	return _u
}

// SetLocation sets the "location" edge to the RestaurantLocation entity.
func (_u *RestaurantTrendUpdate) SetLocation(v *RestaurantLocation) *RestaurantTrendUpdate {
	return _u.SetLocationID(v.ID)
}

// Mutation returns the RestaurantTrendMutation object of the builder.
func (_u *RestaurantTrendUpdate) Mutation() *RestaurantTrendMutation {
	return _u.mutation
}

// ClearLocation clears the "location" edge to the RestaurantLocation entity.
func (_u *RestaurantTrendUpdate) ClearLocation() *RestaurantTrendUpdate {
	_u.mutation.ClearLocation()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RestaurantTrendUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RestaurantTrendUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RestaurantTrendUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RestaurantTrendUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RestaurantTrendUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := restauranttrend.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RestaurantTrendUpdate) check() error {
	if v, ok := _u.mutation.CurrNatlGrade(); ok {
		if err := restauranttrend.CurrNatlGradeValidator(v); err != nil {
			return &ValidationError{Name: "curr_natl_grade", err: fmt.Errorf(`repo: validator failed for field "RestaurantTrend.curr_natl_grade": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrMktGrade(); ok {
		if err := restauranttrend.CurrMktGradeValidator(v); err != nil {
			return &ValidationError{Name: "curr_mkt_grade", err: fmt.Errorf(`repo: validator failed for field "RestaurantTrend.curr_mkt_grade": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PastNatlGrade(); ok {
		if err := restauranttrend.PastNatlGradeValidator(v); err != nil {
			return &ValidationError{Name: "past_natl_grade", err: fmt.Errorf(`repo: validator failed for field "RestaurantTrend.past_natl_grade": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PastMktGrade(); ok {
		if err := restauranttrend.PastMktGradeValidator(v); err != nil {
			return &ValidationError{Name: "past_mkt_grade", err: fmt.Errorf(`repo: validator failed for field "RestaurantTrend.past_mkt_grade": %w`, err)}
		}
	}
	if _u.mutation.LocationCleared() && len(_u.mutation.LocationIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "RestaurantTrend.location"`)
	}
	return nil
}

func (_u *RestaurantTrendUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(restauranttrend.Table, restauranttrend.Columns, sqlgraph.NewFieldSpec(restauranttrend.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(restauranttrend.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Year(); ok {
		_spec.SetField(restauranttrend.FieldYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedYear(); ok {
		_spec.AddField(restauranttrend.FieldYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CurrNatlGrade(); ok {
		_spec.SetField(restauranttrend.FieldCurrNatlGrade, field.TypeString, value)
	}
	if _u.mutation.CurrNatlGradeCleared() {
		_spec.ClearField(restauranttrend.FieldCurrNatlGrade, field.TypeString)
	}
	if value, ok := _u.mutation.CurrNatlIndex(); ok {
		_spec.SetField(restauranttrend.FieldCurrNatlIndex, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCurrNatlIndex(); ok {
		_spec.AddField(restauranttrend.FieldCurrNatlIndex, field.TypeFloat64, value)
	}
	if _u.mutation.CurrNatlIndexCleared() {
		_spec.ClearField(restauranttrend.FieldCurrNatlIndex, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CurrAnnualSlsK(); ok {
		_spec.SetField(restauranttrend.FieldCurrAnnualSlsK, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCurrAnnualSlsK(); ok {
		_spec.AddField(restauranttrend.FieldCurrAnnualSlsK, field.TypeFloat64, value)
	}
	if _u.mutation.CurrAnnualSlsKCleared() {
		_spec.ClearField(restauranttrend.FieldCurrAnnualSlsK, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CurrMktGrade(); ok {
		_spec.SetField(restauranttrend.FieldCurrMktGrade, field.TypeString, value)
	}
	if _u.mutation.CurrMktGradeCleared() {
		_spec.ClearField(restauranttrend.FieldCurrMktGrade, field.TypeString)
	}
	if value, ok := _u.mutation.CurrMktIndex(); ok {
		_spec.SetField(restauranttrend.FieldCurrMktIndex, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCurrMktIndex(); ok {
		_spec.AddField(restauranttrend.FieldCurrMktIndex, field.TypeFloat64, value)
	}
	if _u.mutation.CurrMktIndexCleared() {
		_spec.ClearField(restauranttrend.FieldCurrMktIndex, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PastNatlGrade(); ok {
		_spec.SetField(restauranttrend.FieldPastNatlGrade, field.TypeString, value)
	}
	if _u.mutation.PastNatlGradeCleared() {
		_spec.ClearField(restauranttrend.FieldPastNatlGrade, field.TypeString)
	}
	if value, ok := _u.mutation.PastNatlIndex(); ok {
		_spec.SetField(restauranttrend.FieldPastNatlIndex, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPastNatlIndex(); ok {
		_spec.AddField(restauranttrend.FieldPastNatlIndex, field.TypeFloat64, value)
	}
	if _u.mutation.PastNatlIndexCleared() {
		_spec.ClearField(restauranttrend.FieldPastNatlIndex, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PastAnnualSlsK(); ok {
		_spec.SetField(restauranttrend.FieldPastAnnualSlsK, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPastAnnualSlsK(); ok {
		_spec.AddField(restauranttrend.FieldPastAnnualSlsK, field.TypeFloat64, value)
	}
	if _u.mutation.PastAnnualSlsKCleared() {
		_spec.ClearField(restauranttrend.FieldPastAnnualSlsK, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PastMktGrade(); ok {
		_spec.SetField(restauranttrend.FieldPastMktGrade, field.TypeString, value)
	}
	if _u.mutation.PastMktGradeCleared() {
		_spec.ClearField(restauranttrend.FieldPastMktGrade, field.TypeString)
	}
	if value, ok := _u.mutation.PastMktIndex(); ok {
		_spec.SetField(restauranttrend.FieldPastMktIndex, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPastMktIndex(); ok {
		_spec.AddField(restauranttrend.FieldPastMktIndex, field.TypeFloat64, value)
	}
	if _u.mutation.PastMktIndexCleared() {
		_spec.ClearField(restauranttrend.FieldPastMktIndex, field.TypeFloat64)
	}
	if value, ok := _u.mutation.SurveyYrLast(); ok {
		_spec.SetField(restauranttrend.FieldSurveyYrLast, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSurveyYrLast(); ok {
		_spec.AddField(restauranttrend.FieldSurveyYrLast, field.TypeInt, value)
	}
	if _u.mutation.SurveyYrLastCleared() {
		_spec.ClearField(restauranttrend.FieldSurveyYrLast, field.TypeInt)
	}
	if value, ok := _u.mutation.SurveyYrNext(); ok {
		_spec.SetField(restauranttrend.FieldSurveyYrNext, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSurveyYrNext(); ok {
		_spec.AddField(restauranttrend.FieldSurveyYrNext, field.TypeInt, value)
	}
	if _u.mutation.SurveyYrNextCleared() {
		_spec.ClearField(restauranttrend.FieldSurveyYrNext, field.TypeInt)
	}
	if value, ok := _u.mutation.TotalSurveys(); ok {
		_spec.SetField(restauranttrend.FieldTotalSurveys, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalSurveys(); ok {
		_spec.AddField(restauranttrend.FieldTotalSurveys, field.TypeInt, value)
	}
	if _u.mutation.TotalSurveysCleared() {
		_spec.ClearField(restauranttrend.FieldTotalSurveys, field.TypeInt)
	}
	if _u.mutation.LocationCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LocationIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{restauranttrend.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RestaurantTrendUpdateOne is the builder for updating a single RestaurantTrend entity.
type RestaurantTrendUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RestaurantTrendMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RestaurantTrendUpdateOne) SetUpdatedAt(v time.Time) *RestaurantTrendUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetLocationID sets the "location_id" field.
func (_u *RestaurantTrendUpdateOne) SetLocationID(v uuid.UUID) *RestaurantTrendUpdateOne {
	_u.mutation.SetLocationID(v)
	return _u
}

// SetNillableLocationID sets the "location_id" field if the given value is not nil.
func (_u *RestaurantTrendUpdateOne) SetNillableLocationID(v *uuid.UUID) *RestaurantTrendUpdateOne {
	if v != nil {
		_u.SetLocationID(*v)
	}
	return _u
}

// SetYear sets the "year" field.
func (_u *RestaurantTrendUpdateOne) SetYear(v int) *RestaurantTrendUpdateOne {
	_u.mutation.ResetYear()
	_u.mutation.SetYear(v)
	return _u
}

// SetNillableYear sets the "year" field if the given value is not nil.
func (_u *RestaurantTrendUpdateOne) SetNillableYear(v *int) *RestaurantTrendUpdateOne {
	if v != nil {
		_u.SetYear(*v)
	}
	return _u
}

// AddYear adds value to the "year" field.
func (_u *RestaurantTrendUpdateOne) AddYear(v int) *RestaurantTrendUpdateOne {
	_u.mutation.AddYear(v)
	return _u
}

// SetCurrNatlGrade sets the "curr_natl_grade" field.
func (_u *RestaurantTrendUpdateOne) SetCurrNatlGrade(v string) *RestaurantTrendUpdateOne {
	_u.mutation.SetCurrNatlGrade(v)
	return _u
}

// SetNillableCurrNatlGrade sets the "curr_natl_grade" field if the given value is not nil.
func (_u *RestaurantTrendUpdateOne) SetNillableCurrNatlGrade(v *string) *RestaurantTrendUpdateOne {
	if v != nil {
		_u.SetCurrNatlGrade(*v)
	}
	return _u
}

// ClearCurrNatlGrade clears the value of the "curr_natl_grade" field.
func (_u *RestaurantTrendUpdateOne) ClearCurrNatlGrade() *RestaurantTrendUpdateOne {
	_u.mutation.ClearCurrNatlGrade()
	return _u
}

// SetCurrNatlIndex sets the "curr_natl_index" field.
func (_u *RestaurantTrendUpdateOne) SetCurrNatlIndex(v float64) *RestaurantTrendUpdateOne {
	_u.mutation.ResetCurrNatlIndex()
	_u.mutation.SetCurrNatlIndex(v)
	return _u
}

// SetNillableCurrNatlIndex sets the "curr_natl_index" field if the given value is not nil.
func (_u *RestaurantTrendUpdateOne) SetNillableCurrNatlIndex(v *float64) *RestaurantTrendUpdateOne {
	if v != nil {
		_u.SetCurrNatlIndex(*v)
	}
	return _u
}

// AddCurrNatlIndex adds value to the "curr_natl_index" field.
func (_u *RestaurantTrendUpdateOne) AddCurrNatlIndex(v float64) *RestaurantTrendUpdateOne {
	_u.mutation.AddCurrNatlIndex(v)
	return _u
}

// ClearCurrNatlIndex clears the value of the "curr_natl_index" field.
func (_u *RestaurantTrendUpdateOne) ClearCurrNatlIndex() *RestaurantTrendUpdateOne {
	_u.mutation.ClearCurrNatlIndex()
	return _u
}

// SetCurrAnnualSlsK sets the "curr_annual_sls_k" field.
func (_u *RestaurantTrendUpdateOne) SetCurrAnnualSlsK(v float64) *RestaurantTrendUpdateOne {
	_u.mutation.ResetCurrAnnualSlsK()
	_u.mutation.SetCurrAnnualSlsK(v)
	return _u
}

// SetNillableCurrAnnualSlsK sets the "curr_annual_sls_k" field if the given value is not nil.
func (_u *RestaurantTrendUpdateOne) SetNillableCurrAnnualSlsK(v *float64) *RestaurantTrendUpdateOne {
	if v != nil {
		_u.SetCurrAnnualSlsK(*v)
	}
	return _u
}

// AddCurrAnnualSlsK adds value to the "curr_annual_sls_k" field.
func (_u *RestaurantTrendUpdateOne) AddCurrAnnualSlsK(v float64) *RestaurantTrendUpdateOne {
	_u.mutation.AddCurrAnnualSlsK(v)
	return _u
}

// ClearCurrAnnualSlsK clears the value of the "curr_annual_sls_k" field.
func (_u *RestaurantTrendUpdateOne) ClearCurrAnnualSlsK() *RestaurantTrendUpdateOne {
	_u.mutation.ClearCurrAnnualSlsK()
	return _u
}

// SetCurrMktGrade sets the "curr_mkt_grade" field.
func (_u *RestaurantTrendUpdateOne) SetCurrMktGrade(v string) *RestaurantTrendUpdateOne {
	_u.mutation.SetCurrMktGrade(v)
	return _u
}

// SetNillableCurrMktGrade sets the "curr_mkt_grade" field if the given value is not nil.
func (_u *RestaurantTrendUpdateOne) SetNillableCurrMktGrade(v *string) *RestaurantTrendUpdateOne {
	if v != nil {
		_u.SetCurrMktGrade(*v)
	}
	return _u
}

// ClearCurrMktGrade clears the value of the "curr_mkt_grade" field.
func (_u *RestaurantTrendUpdateOne) ClearCurrMktGrade() *RestaurantTrendUpdateOne {
	_u.mutation.ClearCurrMktGrade()
	return _u
}

// SetCurrMktIndex sets the "curr_mkt_index" field.
func (_u *RestaurantTrendUpdateOne) SetCurrMktIndex(v float64) *RestaurantTrendUpdateOne {
	_u.mutation.ResetCurrMktIndex()
	_u.mutation.SetCurrMktIndex(v)
	return _u
}

// SetNillableCurrMktIndex sets the "curr_mkt_index" field if the given value is not nil.
func (_u *RestaurantTrendUpdateOne) SetNillableCurrMktIndex(v *float64) *RestaurantTrendUpdateOne {
	if v != nil {
		_u.SetCurrMktIndex(*v)
	}
	return _u
}

// AddCurrMktIndex adds value to the "curr_mkt_index" field.
func (_u *RestaurantTrendUpdateOne) AddCurrMktIndex(v float64) *RestaurantTrendUpdateOne {
	_u.mutation.AddCurrMktIndex(v)
	return _u
}

// ClearCurrMktIndex clears the value of the "curr_mkt_index" field.
func (_u *RestaurantTrendUpdateOne) ClearCurrMktIndex() *RestaurantTrendUpdateOne {
	_u.mutation.ClearCurrMktIndex()
	return _u
}

// SetPastNatlGrade sets the "past_natl_grade" field.
func (_u *RestaurantTrendUpdateOne) SetPastNatlGrade(v string) *RestaurantTrendUpdateOne {
	_u.mutation.SetPastNatlGrade(v)
	return _u
}

// SetNillablePastNatlGrade sets the "past_natl_grade" field if the given value is not nil.
func (_u *RestaurantTrendUpdateOne) SetNillablePastNatlGrade(v *string) *RestaurantTrendUpdateOne {
	if v != nil {
		_u.SetPastNatlGrade(*v)
	}
	return _u
}

// ClearPastNatlGrade clears the value of the "past_natl_grade" field.
func (_u *RestaurantTrendUpdateOne) ClearPastNatlGrade() *RestaurantTrendUpdateOne {
	_u.mutation.ClearPastNatlGrade()
	return _u
}

// SetPastNatlIndex sets the "past_natl_index" field.
func (_u *RestaurantTrendUpdateOne) SetPastNatlIndex(v float64) *RestaurantTrendUpdateOne {
	_u.mutation.ResetPastNatlIndex()
	_u.mutation.SetPastNatlIndex(v)
	return _u
}

// SetNillablePastNatlIndex sets the "past_natl_index" field if the given value is not nil.
func (_u *RestaurantTrendUpdateOne) SetNillablePastNatlIndex(v *float64) *RestaurantTrendUpdateOne {
	if v != nil {
		_u.SetPastNatlIndex(*v)
	}
	return _u
}

// AddPastNatlIndex adds value to the "past_natl_index" field.
func (_u *RestaurantTrendUpdateOne) AddPastNatlIndex(v float64) *RestaurantTrendUpdateOne {
	_u.mutation.AddPastNatlIndex(v)
	return _u
}

// ClearPastNatlIndex clears the value of the "past_natl_index" field.
func (_u *RestaurantTrendUpdateOne) ClearPastNatlIndex() *RestaurantTrendUpdateOne {
	_u.mutation.ClearPastNatlIndex()
	return _u
}

// SetPastAnnualSlsK sets the "past_annual_sls_k" field.
func (_u *RestaurantTrendUpdateOne) SetPastAnnualSlsK(v float64) *RestaurantTrendUpdateOne {
	_u.mutation.ResetPastAnnualSlsK()
	_u.mutation.SetPastAnnualSlsK(v)
	return _u
}

// SetNillablePastAnnualSlsK sets the "past_annual_sls_k" field if the given value is not nil.
func (_u *RestaurantTrendUpdateOne) SetNillablePastAnnualSlsK(v *float64) *RestaurantTrendUpdateOne {
	if v != nil {
		_u.SetPastAnnualSlsK(*v)
	}
	return _u
}

// AddPastAnnualSlsK adds value to the "past_annual_sls_k" field.
func (_u *RestaurantTrendUpdateOne) AddPastAnnualSlsK(v float64) *RestaurantTrendUpdateOne {
	_u.mutation.AddPastAnnualSlsK(v)
	return _u
}

// ClearPastAnnualSlsK clears the value of the "past_annual_sls_k" field.
func (_u *RestaurantTrendUpdateOne) ClearPastAnnualSlsK() *RestaurantTrendUpdateOne {
	_u.mutation.ClearPastAnnualSlsK()
	return _u
}

// SetPastMktGrade sets the "past_mkt_grade" field.
func (_u *RestaurantTrendUpdateOne) SetPastMktGrade(v string) *RestaurantTrendUpdateOne {
	_u.mutation.SetPastMktGrade(v)
	return _u
}

// SetNillablePastMktGrade sets the "past_mkt_grade" field if the given value is not nil.
func (_u *RestaurantTrendUpdateOne) SetNillablePastMktGrade(v *string) *RestaurantTrendUpdateOne {
	if v != nil {
		_u.SetPastMktGrade(*v)
	}
	return _u
}

// ClearPastMktGrade clears the value of the "past_mkt_grade" field.
func (_u *RestaurantTrendUpdateOne) ClearPastMktGrade() *RestaurantTrendUpdateOne {
	_u.mutation.ClearPastMktGrade()
	return _u
}

// SetPastMktIndex sets the "past_mkt_index" field.
func (_u *RestaurantTrendUpdateOne) SetPastMktIndex(v float64) *RestaurantTrendUpdateOne {
	_u.mutation.ResetPastMktIndex()
	_u.mutation.SetPastMktIndex(v)
	return _u
}

// SetNillablePastMktIndex sets the "past_mkt_index" field if the given value is not nil.
func (_u *RestaurantTrendUpdateOne) SetNillablePastMktIndex(v *float64) *RestaurantTrendUpdateOne {
	if v != nil {
		_u.SetPastMktIndex(*v)
	}
	return _u
}

// AddPastMktIndex adds value to the "past_mkt_index" field.
func (_u *RestaurantTrendUpdateOne) AddPastMktIndex(v float64) *RestaurantTrendUpdateOne {
	_u.mutation.AddPastMktIndex(v)
	return _u
}

// ClearPastMktIndex clears the value of the "past_mkt_index" field.
func (_u *RestaurantTrendUpdateOne) ClearPastMktIndex() *RestaurantTrendUpdateOne {
	_u.mutation.ClearPastMktIndex()
	return _u
}

// SetSurveyYrLast sets the "survey_yr_last" field.
func (_u *RestaurantTrendUpdateOne) SetSurveyYrLast(v int) *RestaurantTrendUpdateOne {
	_u.mutation.ResetSurveyYrLast()
	_u.mutation.SetSurveyYrLast(v)
	return _u
}

// SetNillableSurveyYrLast sets the "survey_yr_last" field if the given value is not nil.
func (_u *RestaurantTrendUpdateOne) SetNillableSurveyYrLast(v *int) *RestaurantTrendUpdateOne {
	if v != nil {
		_u.SetSurveyYrLast(*v)
	}
	return _u
}

// AddSurveyYrLast adds value to the "survey_yr_last" field.
func (_u *RestaurantTrendUpdateOne) AddSurveyYrLast(v int) *RestaurantTrendUpdateOne {
	_u.mutation.AddSurveyYrLast(v)
	return _u
}

// ClearSurveyYrLast clears the value of the "survey_yr_last" field.
func (_u *RestaurantTrendUpdateOne) ClearSurveyYrLast() *RestaurantTrendUpdateOne {
	_u.mutation.ClearSurveyYrLast()
	return _u
}

// SetSurveyYrNext sets the "survey_yr_next" field.
func (_u *RestaurantTrendUpdateOne) SetSurveyYrNext(v int) *RestaurantTrendUpdateOne {
	_u.mutation.ResetSurveyYrNext()
	_u.mutation.SetSurveyYrNext(v)
	return _u
}

// SetNillableSurveyYrNext sets the "survey_yr_next" field if the given value is not nil.
func (_u *RestaurantTrendUpdateOne) SetNillableSurveyYrNext(v *int) *RestaurantTrendUpdateOne {
	if v != nil {
		_u.SetSurveyYrNext(*v)
	}
	return _u
}

// AddSurveyYrNext adds value to the "survey_yr_next" field.
func (_u *RestaurantTrendUpdateOne) AddSurveyYrNext(v int) *RestaurantTrendUpdateOne {
	_u.mutation.AddSurveyYrNext(v)
	return _u
}

// ClearSurveyYrNext clears the value of the "survey_yr_next" field.
func (_u *RestaurantTrendUpdateOne) ClearSurveyYrNext() *RestaurantTrendUpdateOne {
	_u.mutation.ClearSurveyYrNext()
	return _u
}

// SetTotalSurveys sets the "total_surveys" field.
func (_u *RestaurantTrendUpdateOne) SetTotalSurveys(v int) *RestaurantTrendUpdateOne {
	_u.mutation.ResetTotalSurveys()
	_u.mutation.SetTotalSurveys(v)
	return _u
}

// SetNillableTotalSurveys sets the "total_surveys" field if the given value is not nil.
func (_u *RestaurantTrendUpdateOne) SetNillableTotalSurveys(v *int) *RestaurantTrendUpdateOne {
	if v != nil {
		_u.SetTotalSurveys(*v)
	}
	return _u
}

// AddTotalSurveys adds value to the "total_surveys" field.
func (_u *RestaurantTrendUpdateOne) AddTotalSurveys(v int) *RestaurantTrendUpdateOne {
	_u.mutation.AddTotalSurveys(v)
	return _u
}

// ClearTotalSurveys clears the value of the "total_surveys" field.
func (_u *RestaurantTrendUpdateOne) ClearTotalSurveys() *RestaurantTrendUpdateOne {
	_u.mutation.ClearTotalSurveys()
	return _u
}

// SetLocation sets the "location" edge to the RestaurantLocation entity.
func (_u *RestaurantTrendUpdateOne) SetLocation(v *RestaurantLocation) *RestaurantTrendUpdateOne {
	return _u.SetLocationID(v.ID)
}

// Mutation returns the RestaurantTrendMutation object of the builder.
func (_u *RestaurantTrendUpdateOne) Mutation() *RestaurantTrendMutation {
	return _u.mutation
}

// ClearLocation clears the "location" edge to the RestaurantLocation entity.
func (_u *RestaurantTrendUpdateOne) ClearLocation() *RestaurantTrendUpdateOne {
	_u.mutation.ClearLocation()
	return _u
}

// Where appends a list predicates to the RestaurantTrendUpdate builder.
func (_u *RestaurantTrendUpdateOne) Where(ps ...predicate.RestaurantTrend) *RestaurantTrendUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RestaurantTrendUpdateOne) Select(field string, fields ...string) *RestaurantTrendUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RestaurantTrend entity.
func (_u *RestaurantTrendUpdateOne) Save(ctx context.Context) (*RestaurantTrend, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RestaurantTrendUpdateOne) SaveX(ctx context.Context) *RestaurantTrend {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RestaurantTrendUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RestaurantTrendUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RestaurantTrendUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := restauranttrend.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RestaurantTrendUpdateOne) check() error {
	if v, ok := _u.mutation.CurrNatlGrade(); ok {
		if err := restauranttrend.CurrNatlGradeValidator(v); err != nil {
			return &ValidationError{Name: "curr_natl_grade", err: fmt.Errorf(`repo: validator failed for field "RestaurantTrend.curr_natl_grade": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrMktGrade(); ok {
		if err := restauranttrend.CurrMktGradeValidator(v); err != nil {
			return &ValidationError{Name: "curr_mkt_grade", err: fmt.Errorf(`repo: validator failed for field "RestaurantTrend.curr_mkt_grade": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PastNatlGrade(); ok {
		if err := restauranttrend.PastNatlGradeValidator(v); err != nil {
			return &ValidationError{Name: "past_natl_grade", err: fmt.Errorf(`repo: validator failed for field "RestaurantTrend.past_natl_grade": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PastMktGrade(); ok {
		if err := restauranttrend.PastMktGradeValidator(v); err != nil {
			return &ValidationError{Name: "past_mkt_grade", err: fmt.Errorf(`repo: validator failed for field "RestaurantTrend.past_mkt_grade": %w`, err)}
		}
	}
	if _u.mutation.LocationCleared() && len(_u.mutation.LocationIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "RestaurantTrend.location"`)
	}
	return nil
}

func (_u *RestaurantTrendUpdateOne) sqlSave(ctx context.Context) (_node *RestaurantTrend, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(restauranttrend.Table, restauranttrend.Columns, sqlgraph.NewFieldSpec(restauranttrend.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "RestaurantTrend.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, restauranttrend.FieldID)
		for _, f := range fields {
			if !restauranttrend.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != restauranttrend.FieldID {
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
		_spec.SetField(restauranttrend.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Year(); ok {
		_spec.SetField(restauranttrend.FieldYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedYear(); ok {
		_spec.AddField(restauranttrend.FieldYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CurrNatlGrade(); ok {
		_spec.SetField(restauranttrend.FieldCurrNatlGrade, field.TypeString, value)
	}
	if _u.mutation.CurrNatlGradeCleared() {
		_spec.ClearField(restauranttrend.FieldCurrNatlGrade, field.TypeString)
	}
	if value, ok := _u.mutation.CurrNatlIndex(); ok {
		_spec.SetField(restauranttrend.FieldCurrNatlIndex, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCurrNatlIndex(); ok {
		_spec.AddField(restauranttrend.FieldCurrNatlIndex, field.TypeFloat64, value)
	}
	if _u.mutation.CurrNatlIndexCleared() {
		_spec.ClearField(restauranttrend.FieldCurrNatlIndex, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CurrAnnualSlsK(); ok {
		_spec.SetField(restauranttrend.FieldCurrAnnualSlsK, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCurrAnnualSlsK(); ok {
		_spec.AddField(restauranttrend.FieldCurrAnnualSlsK, field.TypeFloat64, value)
	}
	if _u.mutation.CurrAnnualSlsKCleared() {
		_spec.ClearField(restauranttrend.FieldCurrAnnualSlsK, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CurrMktGrade(); ok {
		_spec.SetField(restauranttrend.FieldCurrMktGrade, field.TypeString, value)
	}
	if _u.mutation.CurrMktGradeCleared() {
		_spec.ClearField(restauranttrend.FieldCurrMktGrade, field.TypeString)
	}
	if value, ok := _u.mutation.CurrMktIndex(); ok {
		_spec.SetField(restauranttrend.FieldCurrMktIndex, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCurrMktIndex(); ok {
		_spec.AddField(restauranttrend.FieldCurrMktIndex, field.TypeFloat64, value)
	}
	if _u.mutation.CurrMktIndexCleared() {
		_spec.ClearField(restauranttrend.FieldCurrMktIndex, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PastNatlGrade(); ok {
		_spec.SetField(restauranttrend.FieldPastNatlGrade, field.TypeString, value)
	}
	if _u.mutation.PastNatlGradeCleared() {
		_spec.ClearField(restauranttrend.FieldPastNatlGrade, field.TypeString)
	}
	if value, ok := _u.mutation.PastNatlIndex(); ok {
		_spec.SetField(restauranttrend.FieldPastNatlIndex, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPastNatlIndex(); ok {
		_spec.AddField(restauranttrend.FieldPastNatlIndex, field.TypeFloat64, value)
	}
	if _u.mutation.PastNatlIndexCleared() {
		_spec.ClearField(restauranttrend.FieldPastNatlIndex, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PastAnnualSlsK(); ok {
		_spec.SetField(restauranttrend.FieldPastAnnualSlsK, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPastAnnualSlsK(); ok {
		_spec.AddField(restauranttrend.FieldPastAnnualSlsK, field.TypeFloat64, value)
	}
	if _u.mutation.PastAnnualSlsKCleared() {
		_spec.ClearField(restauranttrend.FieldPastAnnualSlsK, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PastMktGrade(); ok {
		_spec.SetField(restauranttrend.FieldPastMktGrade, field.TypeString, value)
	}
	if _u.mutation.PastMktGradeCleared() {
		_spec.ClearField(restauranttrend.FieldPastMktGrade, field.TypeString)
	}
	if value, ok := _u.mutation.PastMktIndex(); ok {
		_spec.SetField(restauranttrend.FieldPastMktIndex, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPastMktIndex(); ok {
		_spec.AddField(restauranttrend.FieldPastMktIndex, field.TypeFloat64, value)
	}
	if _u.mutation.PastMktIndexCleared() {
		_spec.ClearField(restauranttrend.FieldPastMktIndex, field.TypeFloat64)
	}
	if value, ok := _u.mutation.SurveyYrLast(); ok {
		_spec.SetField(restauranttrend.FieldSurveyYrLast, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSurveyYrLast(); ok {
		_spec.AddField(restauranttrend.FieldSurveyYrLast, field.TypeInt, value)
	}
	if _u.mutation.SurveyYrLastCleared() {
		_spec.ClearField(restauranttrend.FieldSurveyYrLast, field.TypeInt)
	}
	if value, ok := _u.mutation.SurveyYrNext(); ok {
		_spec.SetField(restauranttrend.FieldSurveyYrNext, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSurveyYrNext(); ok {
		_spec.AddField(restauranttrend.FieldSurveyYrNext, field.TypeInt, value)
	}
	if _u.mutation.SurveyYrNextCleared() {
		_spec.ClearField(restauranttrend.FieldSurveyYrNext, field.TypeInt)
	}
	if value, ok := _u.mutation.TotalSurveys(); ok {
		_spec.SetField(restauranttrend.FieldTotalSurveys, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalSurveys(); ok {
		_spec.AddField(restauranttrend.FieldTotalSurveys, field.TypeInt, value)
	}
	if _u.mutation.TotalSurveysCleared() {
		_spec.ClearField(restauranttrend.FieldTotalSurveys, field.TypeInt)
	}
	if _u.mutation.LocationCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LocationIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &RestaurantTrend{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{restauranttrend.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
