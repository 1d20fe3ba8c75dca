// Code generated by ent, DO NOT EDIT.

package restauranttrend

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/oculusgrp/dealdesk_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldEQ(FieldUpdatedAt, v))
}

// LocationID applies equality check predicate on the "location_id" field. It's identical to LocationIDEQ.
func LocationID(v uuid.UUID) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldEQ(FieldLocationID, v))
}

// Year applies equality check predicate on the "year" field. It's identical to YearEQ.
func Year(v int) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldEQ(FieldYear, v))
}

// CurrNatlGrade applies equality check predicate on the "curr_natl_grade" field. It's identical to CurrNatlGradeEQ.
func CurrNatlGrade(v string) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldEQ(FieldCurrNatlGrade, v))
}

// CurrNatlIndex applies equality check predicate on the "curr_natl_index" field. It's identical to CurrNatlIndexEQ.
func CurrNatlIndex(v float64) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldEQ(FieldCurrNatlIndex, v))
}

// CurrAnnualSlsK applies equality check predicate on the "curr_annual_sls_k" field. It's identical to CurrAnnualSlsKEQ.
func CurrAnnualSlsK(v float64) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldEQ(FieldCurrAnnualSlsK, v))
}

// CurrMktGrade applies equality check predicate on the "curr_mkt_grade" field. It's identical to CurrMktGradeEQ.
func CurrMktGrade(v string) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldEQ(FieldCurrMktGrade, v))
}

// CurrMktIndex applies equality check predicate on the "curr_mkt_index" field. It's identical to CurrMktIndexEQ.
func CurrMktIndex(v float64) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldEQ(FieldCurrMktIndex, v))
}

// PastNatlGrade applies equality check predicate on the "past_natl_grade" field. It's identical to PastNatlGradeEQ.
func PastNatlGrade(v string) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldEQ(FieldPastNatlGrade, v))
}

// PastNatlIndex applies equality check predicate on the "past_natl_index" field. It's identical to PastNatlIndexEQ.
func PastNatlIndex(v float64) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldEQ(FieldPastNatlIndex, v))
}

// PastAnnualSlsK applies equality check predicate on the "past_annual_sls_k" field. It's identical to PastAnnualSlsKEQ.
func PastAnnualSlsK(v float64) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldEQ(FieldPastAnnualSlsK, v))
}

// PastMktGrade applies equality check predicate on the "past_mkt_grade" field. It's identical to PastMktGradeEQ.
func PastMktGrade(v string) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldEQ(FieldPastMktGrade, v))
}

// PastMktIndex applies equality check predicate on the "past_mkt_index" field. It's identical to PastMktIndexEQ.
func PastMktIndex(v float64) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldEQ(FieldPastMktIndex, v))
}

// SurveyYrLast applies equality check predicate on the "survey_yr_last" field. It's identical to SurveyYrLastEQ.
func SurveyYrLast(v int) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldEQ(FieldSurveyYrLast, v))
}

// SurveyYrNext applies equality check predicate on the "survey_yr_next" field. It's identical to SurveyYrNextEQ.
func SurveyYrNext(v int) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldEQ(FieldSurveyYrNext, v))
}

// TotalSurveys applies equality check predicate on the "total_surveys" field. It's identical to TotalSurveysEQ.
func TotalSurveys(v int) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldEQ(FieldTotalSurveys, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldLTE(FieldUpdatedAt, v))
}

// LocationIDEQ applies the EQ predicate on the "location_id" field.
func LocationIDEQ(v uuid.UUID) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldEQ(FieldLocationID, v))
}

// LocationIDNEQ applies the NEQ predicate on the "location_id" field.
func LocationIDNEQ(v uuid.UUID) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldNEQ(FieldLocationID, v))
}

// LocationIDIn applies the In predicate on the "location_id" field.
func LocationIDIn(vs ...uuid.UUID) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldIn(FieldLocationID, vs...))
}

// LocationIDNotIn applies the NotIn predicate on the "location_id" field.
func LocationIDNotIn(vs ...uuid.UUID) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldNotIn(FieldLocationID, vs...))
}

// YearEQ applies the EQ predicate on the "year" field.
func YearEQ(v int) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldEQ(FieldYear, v))
}

// YearNEQ applies the NEQ predicate on the "year" field.
func YearNEQ(v int) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldNEQ(FieldYear, v))
}

// YearIn applies the In predicate on the "year" field.
func YearIn(vs ...int) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldIn(FieldYear, vs...))
}

// YearNotIn applies the NotIn predicate on the "year" field.
func YearNotIn(vs ...int) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldNotIn(FieldYear, vs...))
}

// YearGT applies the GT predicate on the "year" field.
func YearGT(v int) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldGT(FieldYear, v))
}

// YearGTE applies the GTE predicate on the "year" field.
func YearGTE(v int) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldGTE(FieldYear, v))
}

// YearLT applies the LT predicate on the "year" field.
func YearLT(v int) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldLT(FieldYear, v))
}

// YearLTE applies the LTE predicate on the "year" field.
func YearLTE(v int) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldLTE(FieldYear, v))
}

// CurrNatlGradeEQ applies the EQ predicate on the "curr_natl_grade" field.
func CurrNatlGradeEQ(v string) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldEQ(FieldCurrNatlGrade, v))
}

// CurrNatlGradeNEQ applies the NEQ predicate on the "curr_natl_grade" field.
func CurrNatlGradeNEQ(v string) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldNEQ(FieldCurrNatlGrade, v))
}

// CurrNatlGradeIn applies the In predicate on the "curr_natl_grade" field.
func CurrNatlGradeIn(vs ...string) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldIn(FieldCurrNatlGrade, vs...))
}

// CurrNatlGradeNotIn applies the NotIn predicate on the "curr_natl_grade" field.
func CurrNatlGradeNotIn(vs ...string) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldNotIn(FieldCurrNatlGrade, vs...))
}

// CurrNatlGradeGT applies the GT predicate on the "curr_natl_grade" field.
func CurrNatlGradeGT(v string) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldGT(FieldCurrNatlGrade, v))
}

// CurrNatlGradeGTE applies the GTE predicate on the "curr_natl_grade" field.
func CurrNatlGradeGTE(v string) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldGTE(FieldCurrNatlGrade, v))
}

// CurrNatlGradeLT applies the LT predicate on the "curr_natl_grade" field.
func CurrNatlGradeLT(v string) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldLT(FieldCurrNatlGrade, v))
}

// CurrNatlGradeLTE applies the LTE predicate on the "curr_natl_grade" field.
func CurrNatlGradeLTE(v string) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldLTE(FieldCurrNatlGrade, v))
}

// CurrNatlGradeContains applies the Contains predicate on the "curr_natl_grade" field.
func CurrNatlGradeContains(v string) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldContains(FieldCurrNatlGrade, v))
}

// CurrNatlGradeHasPrefix applies the HasPrefix predicate on the "curr_natl_grade" field.
func CurrNatlGradeHasPrefix(v string) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldHasPrefix(FieldCurrNatlGrade, v))
}

// CurrNatlGradeHasSuffix applies the HasSuffix predicate on the "curr_natl_grade" field.
func CurrNatlGradeHasSuffix(v string) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldHasSuffix(FieldCurrNatlGrade, v))
}

// CurrNatlGradeIsNil applies the IsNil predicate on the "curr_natl_grade" field.
func CurrNatlGradeIsNil() predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldIsNull(FieldCurrNatlGrade))
}

// CurrNatlGradeNotNil applies the NotNil predicate on the "curr_natl_grade" field.
func CurrNatlGradeNotNil() predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldNotNull(FieldCurrNatlGrade))
}

// CurrNatlGradeEqualFold applies the EqualFold predicate on the "curr_natl_grade" field.
func CurrNatlGradeEqualFold(v string) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldEqualFold(FieldCurrNatlGrade, v))
}

// CurrNatlGradeContainsFold applies the ContainsFold predicate on the "curr_natl_grade" field.
func CurrNatlGradeContainsFold(v string) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldContainsFold(FieldCurrNatlGrade, v))
}

// CurrNatlIndexEQ applies the EQ predicate on the "curr_natl_index" field.
func CurrNatlIndexEQ(v float64) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldEQ(FieldCurrNatlIndex, v))
}

// CurrNatlIndexNEQ applies the NEQ predicate on the "curr_natl_index" field.
func CurrNatlIndexNEQ(v float64) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldNEQ(FieldCurrNatlIndex, v))
}

// CurrNatlIndexIn applies the In predicate on the "curr_natl_index" field.
func CurrNatlIndexIn(vs ...float64) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldIn(FieldCurrNatlIndex, vs...))
}

// CurrNatlIndexNotIn applies the NotIn predicate on the "curr_natl_index" field.
func CurrNatlIndexNotIn(vs ...float64) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldNotIn(FieldCurrNatlIndex, vs...))
}

// CurrNatlIndexGT applies the GT predicate on the "curr_natl_index" field.
func CurrNatlIndexGT(v float64) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldGT(FieldCurrNatlIndex, v))
}

// CurrNatlIndexGTE applies the GTE predicate on the "curr_natl_index" field.
func CurrNatlIndexGTE(v float64) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldGTE(FieldCurrNatlIndex, v))
}

// CurrNatlIndexLT applies the LT predicate on the "curr_natl_index" field.
func CurrNatlIndexLT(v float64) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldLT(FieldCurrNatlIndex, v))
}

// CurrNatlIndexLTE applies the LTE predicate on the "curr_natl_index" field.
func CurrNatlIndexLTE(v float64) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldLTE(FieldCurrNatlIndex, v))
}

// CurrNatlIndexIsNil applies the IsNil predicate on the "curr_natl_index" field.
func CurrNatlIndexIsNil() predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldIsNull(FieldCurrNatlIndex))
}

// CurrNatlIndexNotNil applies the NotNil predicate on the "curr_natl_index" field.
func CurrNatlIndexNotNil() predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldNotNull(FieldCurrNatlIndex))
}

// CurrAnnualSlsKEQ applies the EQ predicate on the "curr_annual_sls_k" field.
func CurrAnnualSlsKEQ(v float64) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldEQ(FieldCurrAnnualSlsK, v))
}

// CurrAnnualSlsKNEQ applies the NEQ predicate on the "curr_annual_sls_k" field.
func CurrAnnualSlsKNEQ(v float64) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldNEQ(FieldCurrAnnualSlsK, v))
}

// CurrAnnualSlsKIn applies the In predicate on the "curr_annual_sls_k" field.
func CurrAnnualSlsKIn(vs ...float64) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldIn(FieldCurrAnnualSlsK, vs...))
}

// CurrAnnualSlsKNotIn applies the NotIn predicate on the "curr_annual_sls_k" field.
func CurrAnnualSlsKNotIn(vs ...float64) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldNotIn(FieldCurrAnnualSlsK, vs...))
}

// CurrAnnualSlsKGT applies the GT predicate on the "curr_annual_sls_k" field.
func CurrAnnualSlsKGT(v float64) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldGT(FieldCurrAnnualSlsK, v))
}

// CurrAnnualSlsKGTE applies the GTE predicate on the "curr_annual_sls_k" field.
func CurrAnnualSlsKGTE(v float64) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldGTE(FieldCurrAnnualSlsK, v))
}

// CurrAnnualSlsKLT applies the LT predicate on the "curr_annual_sls_k" field.
func CurrAnnualSlsKLT(v float64) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldLT(FieldCurrAnnualSlsK, v))
}

// CurrAnnualSlsKLTE applies the LTE predicate on the "curr_annual_sls_k" field.
func CurrAnnualSlsKLTE(v float64) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldLTE(FieldCurrAnnualSlsK, v))
}

// CurrAnnualSlsKIsNil applies the IsNil predicate on the "curr_annual_sls_k" field.
func CurrAnnualSlsKIsNil() predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldIsNull(FieldCurrAnnualSlsK))
}

// CurrAnnualSlsKNotNil applies the NotNil predicate on the "curr_annual_sls_k" field.
func CurrAnnualSlsKNotNil() predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldNotNull(FieldCurrAnnualSlsK))
}

// CurrMktGradeEQ applies the EQ predicate on the "curr_mkt_grade" field.
func CurrMktGradeEQ(v string) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldEQ(FieldCurrMktGrade, v))
}

// CurrMktGradeNEQ applies the NEQ predicate on the "curr_mkt_grade" field.
func CurrMktGradeNEQ(v string) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldNEQ(FieldCurrMktGrade, v))
}

// CurrMktGradeIn applies the In predicate on the "curr_mkt_grade" field.
func CurrMktGradeIn(vs ...string) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldIn(FieldCurrMktGrade, vs...))
}

// CurrMktGradeNotIn applies the NotIn predicate on the "curr_mkt_grade" field.
func CurrMktGradeNotIn(vs ...string) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldNotIn(FieldCurrMktGrade, vs...))
}

// CurrMktGradeGT applies the GT predicate on the "curr_mkt_grade" field.
func CurrMktGradeGT(v string) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldGT(FieldCurrMktGrade, v))
}

// CurrMktGradeGTE applies the GTE predicate on the "curr_mkt_grade" field.
func CurrMktGradeGTE(v string) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldGTE(FieldCurrMktGrade, v))
}

// CurrMktGradeLT applies the LT predicate on the "curr_mkt_grade" field.
func CurrMktGradeLT(v string) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldLT(FieldCurrMktGrade, v))
}

// CurrMktGradeLTE applies the LTE predicate on the "curr_mkt_grade" field.
func CurrMktGradeLTE(v string) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldLTE(FieldCurrMktGrade, v))
}

// CurrMktGradeContains applies the Contains predicate on the "curr_mkt_grade" field.
func CurrMktGradeContains(v string) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldContains(FieldCurrMktGrade, v))
}

// CurrMktGradeHasPrefix applies the HasPrefix predicate on the "curr_mkt_grade" field.
func CurrMktGradeHasPrefix(v string) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldHasPrefix(FieldCurrMktGrade, v))
}

// CurrMktGradeHasSuffix applies the HasSuffix predicate on the "curr_mkt_grade" field.
func CurrMktGradeHasSuffix(v string) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldHasSuffix(FieldCurrMktGrade, v))
}

// CurrMktGradeIsNil applies the IsNil predicate on the "curr_mkt_grade" field.
func CurrMktGradeIsNil() predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldIsNull(FieldCurrMktGrade))
}

// CurrMktGradeNotNil applies the NotNil predicate on the "curr_mkt_grade" field.
func CurrMktGradeNotNil() predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldNotNull(FieldCurrMktGrade))
}

// CurrMktGradeEqualFold applies the EqualFold predicate on the "curr_mkt_grade" field.
func CurrMktGradeEqualFold(v string) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldEqualFold(FieldCurrMktGrade, v))
}

// CurrMktGradeContainsFold applies the ContainsFold predicate on the "curr_mkt_grade" field.
func CurrMktGradeContainsFold(v string) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldContainsFold(FieldCurrMktGrade, v))
}

// CurrMktIndexEQ applies the EQ predicate on the "curr_mkt_index" field.
func CurrMktIndexEQ(v float64) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldEQ(FieldCurrMktIndex, v))
}

// CurrMktIndexNEQ applies the NEQ predicate on the "curr_mkt_index" field.
func CurrMktIndexNEQ(v float64) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldNEQ(FieldCurrMktIndex, v))
}

// CurrMktIndexIn applies the In predicate on the "curr_mkt_index" field.
func CurrMktIndexIn(vs ...float64) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldIn(FieldCurrMktIndex, vs...))
}

// CurrMktIndexNotIn applies the NotIn predicate on the "curr_mkt_index" field.
func CurrMktIndexNotIn(vs ...float64) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldNotIn(FieldCurrMktIndex, vs...))
}

// CurrMktIndexGT applies the GT predicate on the "curr_mkt_index" field.
func CurrMktIndexGT(v float64) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldGT(FieldCurrMktIndex, v))
}

// CurrMktIndexGTE applies the GTE predicate on the "curr_mkt_index" field.
func CurrMktIndexGTE(v float64) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldGTE(FieldCurrMktIndex, v))
}

// CurrMktIndexLT applies the LT predicate on the "curr_mkt_index" field.
func CurrMktIndexLT(v float64) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldLT(FieldCurrMktIndex, v))
}

// CurrMktIndexLTE applies the LTE predicate on the "curr_mkt_index" field.
func CurrMktIndexLTE(v float64) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldLTE(FieldCurrMktIndex, v))
}

// CurrMktIndexIsNil applies the IsNil predicate on the "curr_mkt_index" field.
func CurrMktIndexIsNil() predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldIsNull(FieldCurrMktIndex))
}

// CurrMktIndexNotNil applies the NotNil predicate on the "curr_mkt_index" field.
func CurrMktIndexNotNil() predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldNotNull(FieldCurrMktIndex))
}

// PastNatlGradeEQ applies the EQ predicate on the "past_natl_grade" field.
func PastNatlGradeEQ(v string) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldEQ(FieldPastNatlGrade, v))
}

// PastNatlGradeNEQ applies the NEQ predicate on the "past_natl_grade" field.
func PastNatlGradeNEQ(v string) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldNEQ(FieldPastNatlGrade, v))
}

// PastNatlGradeIn applies the In predicate on the "past_natl_grade" field.
func PastNatlGradeIn(vs ...string) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldIn(FieldPastNatlGrade, vs...))
}

// PastNatlGradeNotIn applies the NotIn predicate on the "past_natl_grade" field.
func PastNatlGradeNotIn(vs ...string) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldNotIn(FieldPastNatlGrade, vs...))
}

// PastNatlGradeGT applies the GT predicate on the "past_natl_grade" field.
func PastNatlGradeGT(v string) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldGT(FieldPastNatlGrade, v))
}

// PastNatlGradeGTE applies the GTE predicate on the "past_natl_grade" field.
func PastNatlGradeGTE(v string) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldGTE(FieldPastNatlGrade, v))
}

// PastNatlGradeLT applies the LT predicate on the "past_natl_grade" field.
func PastNatlGradeLT(v string) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldLT(FieldPastNatlGrade, v))
}

// PastNatlGradeLTE applies the LTE predicate on the "past_natl_grade" field.
func PastNatlGradeLTE(v string) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldLTE(FieldPastNatlGrade, v))
}

// PastNatlGradeContains applies the Contains predicate on the "past_natl_grade" field.
func PastNatlGradeContains(v string) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldContains(FieldPastNatlGrade, v))
}

// PastNatlGradeHasPrefix applies the HasPrefix predicate on the "past_natl_grade" field.
func PastNatlGradeHasPrefix(v string) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldHasPrefix(FieldPastNatlGrade, v))
}

// PastNatlGradeHasSuffix applies the HasSuffix predicate on the "past_natl_grade" field.
func PastNatlGradeHasSuffix(v string) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldHasSuffix(FieldPastNatlGrade, v))
}

// PastNatlGradeIsNil applies the IsNil predicate on the "past_natl_grade" field.
func PastNatlGradeIsNil() predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldIsNull(FieldPastNatlGrade))
}

// PastNatlGradeNotNil applies the NotNil predicate on the "past_natl_grade" field.
func PastNatlGradeNotNil() predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldNotNull(FieldPastNatlGrade))
}

// PastNatlGradeEqualFold applies the EqualFold predicate on the "past_natl_grade" field.
func PastNatlGradeEqualFold(v string) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldEqualFold(FieldPastNatlGrade, v))
}

// PastNatlGradeContainsFold applies the ContainsFold predicate on the "past_natl_grade" field.
func PastNatlGradeContainsFold(v string) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldContainsFold(FieldPastNatlGrade, v))
}

// PastNatlIndexEQ applies the EQ predicate on the "past_natl_index" field.
func PastNatlIndexEQ(v float64) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldEQ(FieldPastNatlIndex, v))
}

// PastNatlIndexNEQ applies the NEQ predicate on the "past_natl_index" field.
func PastNatlIndexNEQ(v float64) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldNEQ(FieldPastNatlIndex, v))
}

// PastNatlIndexIn applies the In predicate on the "past_natl_index" field.
func PastNatlIndexIn(vs ...float64) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldIn(FieldPastNatlIndex, vs...))
}

// PastNatlIndexNotIn applies the NotIn predicate on the "past_natl_index" field.
func PastNatlIndexNotIn(vs ...float64) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldNotIn(FieldPastNatlIndex, vs...))
}

// PastNatlIndexGT applies the GT predicate on the "past_natl_index" field.
func PastNatlIndexGT(v float64) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldGT(FieldPastNatlIndex, v))
}

// PastNatlIndexGTE applies the GTE predicate on the "past_natl_index" field.
func PastNatlIndexGTE(v float64) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldGTE(FieldPastNatlIndex, v))
}

// PastNatlIndexLT applies the LT predicate on the "past_natl_index" field.
func PastNatlIndexLT(v float64) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldLT(FieldPastNatlIndex, v))
}

// PastNatlIndexLTE applies the LTE predicate on the "past_natl_index" field.
func PastNatlIndexLTE(v float64) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldLTE(FieldPastNatlIndex, v))
}

// PastNatlIndexIsNil applies the IsNil predicate on the "past_natl_index" field.
func PastNatlIndexIsNil() predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldIsNull(FieldPastNatlIndex))
}

// PastNatlIndexNotNil applies the NotNil predicate on the "past_natl_index" field.
func PastNatlIndexNotNil() predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldNotNull(FieldPastNatlIndex))
}

// PastAnnualSlsKEQ applies the EQ predicate on the "past_annual_sls_k" field.
func PastAnnualSlsKEQ(v float64) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldEQ(FieldPastAnnualSlsK, v))
}

// PastAnnualSlsKNEQ applies the NEQ predicate on the "past_annual_sls_k" field.
func PastAnnualSlsKNEQ(v float64) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldNEQ(FieldPastAnnualSlsK, v))
}

// PastAnnualSlsKIn applies the In predicate on the "past_annual_sls_k" field.
func PastAnnualSlsKIn(vs ...float64) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldIn(FieldPastAnnualSlsK, vs...))
}

// PastAnnualSlsKNotIn applies the NotIn predicate on the "past_annual_sls_k" field.
func PastAnnualSlsKNotIn(vs ...float64) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldNotIn(FieldPastAnnualSlsK, vs...))
}

// PastAnnualSlsKGT applies the GT predicate on the "past_annual_sls_k" field.
func PastAnnualSlsKGT(v float64) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldGT(FieldPastAnnualSlsK, v))
}

// PastAnnualSlsKGTE applies the GTE predicate on the "past_annual_sls_k" field.
func PastAnnualSlsKGTE(v float64) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldGTE(FieldPastAnnualSlsK, v))
}

// PastAnnualSlsKLT applies the LT predicate on the "past_annual_sls_k" field.
func PastAnnualSlsKLT(v float64) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldLT(FieldPastAnnualSlsK, v))
}

// PastAnnualSlsKLTE applies the LTE predicate on the "past_annual_sls_k" field.
func PastAnnualSlsKLTE(v float64) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldLTE(FieldPastAnnualSlsK, v))
}

// PastAnnualSlsKIsNil applies the IsNil predicate on the "past_annual_sls_k" field.
func PastAnnualSlsKIsNil() predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldIsNull(FieldPastAnnualSlsK))
}

// PastAnnualSlsKNotNil applies the NotNil predicate on the "past_annual_sls_k" field.
func PastAnnualSlsKNotNil() predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldNotNull(FieldPastAnnualSlsK))
}

// PastMktGradeEQ applies the EQ predicate on the "past_mkt_grade" field.
func PastMktGradeEQ(v string) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldEQ(FieldPastMktGrade, v))
}

// PastMktGradeNEQ applies the NEQ predicate on the "past_mkt_grade" field.
func PastMktGradeNEQ(v string) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldNEQ(FieldPastMktGrade, v))
}

// PastMktGradeIn applies the In predicate on the "past_mkt_grade" field.
func PastMktGradeIn(vs ...string) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldIn(FieldPastMktGrade, vs...))
}

// PastMktGradeNotIn applies the NotIn predicate on the "past_mkt_grade" field.
func PastMktGradeNotIn(vs ...string) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldNotIn(FieldPastMktGrade, vs...))
}

// PastMktGradeGT applies the GT predicate on the "past_mkt_grade" field.
func PastMktGradeGT(v string) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldGT(FieldPastMktGrade, v))
}

// PastMktGradeGTE applies the GTE predicate on the "past_mkt_grade" field.
func PastMktGradeGTE(v string) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldGTE(FieldPastMktGrade, v))
}

// PastMktGradeLT applies the LT predicate on the "past_mkt_grade" field.
func PastMktGradeLT(v string) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldLT(FieldPastMktGrade, v))
}

// PastMktGradeLTE applies the LTE predicate on the "past_mkt_grade" field.
func PastMktGradeLTE(v string) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldLTE(FieldPastMktGrade, v))
}

// PastMktGradeContains applies the Contains predicate on the "past_mkt_grade" field.
func PastMktGradeContains(v string) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldContains(FieldPastMktGrade, v))
}

// PastMktGradeHasPrefix applies the HasPrefix predicate on the "past_mkt_grade" field.
func PastMktGradeHasPrefix(v string) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldHasPrefix(FieldPastMktGrade, v))
}

// PastMktGradeHasSuffix applies the HasSuffix predicate on the "past_mkt_grade" field.
func PastMktGradeHasSuffix(v string) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldHasSuffix(FieldPastMktGrade, v))
}

// PastMktGradeIsNil applies the IsNil predicate on the "past_mkt_grade" field.
func PastMktGradeIsNil() predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldIsNull(FieldPastMktGrade))
}

// PastMktGradeNotNil applies the NotNil predicate on the "past_mkt_grade" field.
func PastMktGradeNotNil() predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldNotNull(FieldPastMktGrade))
}

// PastMktGradeEqualFold applies the EqualFold predicate on the "past_mkt_grade" field.
func PastMktGradeEqualFold(v string) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldEqualFold(FieldPastMktGrade, v))
}

// PastMktGradeContainsFold applies the ContainsFold predicate on the "past_mkt_grade" field.
func PastMktGradeContainsFold(v string) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldContainsFold(FieldPastMktGrade, v))
}

// PastMktIndexEQ applies the EQ predicate on the "past_mkt_index" field.
func PastMktIndexEQ(v float64) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldEQ(FieldPastMktIndex, v))
}

// PastMktIndexNEQ applies the NEQ predicate on the "past_mkt_index" field.
func PastMktIndexNEQ(v float64) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldNEQ(FieldPastMktIndex, v))
}

// PastMktIndexIn applies the In predicate on the "past_mkt_index" field.
func PastMktIndexIn(vs ...float64) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldIn(FieldPastMktIndex, vs...))
}

// PastMktIndexNotIn applies the NotIn predicate on the "past_mkt_index" field.
func PastMktIndexNotIn(vs ...float64) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldNotIn(FieldPastMktIndex, vs...))
}

// PastMktIndexGT applies the GT predicate on the "past_mkt_index" field.
func PastMktIndexGT(v float64) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldGT(FieldPastMktIndex, v))
}

// PastMktIndexGTE applies the GTE predicate on the "past_mkt_index" field.
func PastMktIndexGTE(v float64) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldGTE(FieldPastMktIndex, v))
}

// PastMktIndexLT applies the LT predicate on the "past_mkt_index" field.
func PastMktIndexLT(v float64) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldLT(FieldPastMktIndex, v))
}

// PastMktIndexLTE applies the LTE predicate on the "past_mkt_index" field.
func PastMktIndexLTE(v float64) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldLTE(FieldPastMktIndex, v))
}

// PastMktIndexIsNil applies the IsNil predicate on the "past_mkt_index" field.
func PastMktIndexIsNil() predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldIsNull(FieldPastMktIndex))
}

// PastMktIndexNotNil applies the NotNil predicate on the "past_mkt_index" field.
func PastMktIndexNotNil() predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldNotNull(FieldPastMktIndex))
}

// SurveyYrLastEQ applies the EQ predicate on the "survey_yr_last" field.
func SurveyYrLastEQ(v int) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldEQ(FieldSurveyYrLast, v))
}

// SurveyYrLastNEQ applies the NEQ predicate on the "survey_yr_last" field.
func SurveyYrLastNEQ(v int) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldNEQ(FieldSurveyYrLast, v))
}

// SurveyYrLastIn applies the In predicate on the "survey_yr_last" field.
func SurveyYrLastIn(vs ...int) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldIn(FieldSurveyYrLast, vs...))
}

// SurveyYrLastNotIn applies the NotIn predicate on the "survey_yr_last" field.
func SurveyYrLastNotIn(vs ...int) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldNotIn(FieldSurveyYrLast, vs...))
}

// SurveyYrLastGT applies the GT predicate on the "survey_yr_last" field.
func SurveyYrLastGT(v int) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldGT(FieldSurveyYrLast, v))
}

// SurveyYrLastGTE applies the GTE predicate on the "survey_yr_last" field.
func SurveyYrLastGTE(v int) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldGTE(FieldSurveyYrLast, v))
}

// SurveyYrLastLT applies the LT predicate on the "survey_yr_last" field.
func SurveyYrLastLT(v int) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldLT(FieldSurveyYrLast, v))
}

// SurveyYrLastLTE applies the LTE predicate on the "survey_yr_last" field.
func SurveyYrLastLTE(v int) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldLTE(FieldSurveyYrLast, v))
}

// SurveyYrLastIsNil applies the IsNil predicate on the "survey_yr_last" field.
func SurveyYrLastIsNil() predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldIsNull(FieldSurveyYrLast))
}

// SurveyYrLastNotNil applies the NotNil predicate on the "survey_yr_last" field.
func SurveyYrLastNotNil() predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldNotNull(FieldSurveyYrLast))
}

// SurveyYrNextEQ applies the EQ predicate on the "survey_yr_next" field.
func SurveyYrNextEQ(v int) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldEQ(FieldSurveyYrNext, v))
}

// SurveyYrNextNEQ applies the NEQ predicate on the "survey_yr_next" field.
func SurveyYrNextNEQ(v int) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldNEQ(FieldSurveyYrNext, v))
}

// SurveyYrNextIn applies the In predicate on the "survey_yr_next" field.
func SurveyYrNextIn(vs ...int) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldIn(FieldSurveyYrNext, vs...))
}

// SurveyYrNextNotIn applies the NotIn predicate on the "survey_yr_next" field.
func SurveyYrNextNotIn(vs ...int) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldNotIn(FieldSurveyYrNext, vs...))
}

// SurveyYrNextGT applies the GT predicate on the "survey_yr_next" field.
func SurveyYrNextGT(v int) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldGT(FieldSurveyYrNext, v))
}

// SurveyYrNextGTE applies the GTE predicate on the "survey_yr_next" field.
func SurveyYrNextGTE(v int) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldGTE(FieldSurveyYrNext, v))
}

// SurveyYrNextLT applies the LT predicate on the "survey_yr_next" field.
func SurveyYrNextLT(v int) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldLT(FieldSurveyYrNext, v))
}

// SurveyYrNextLTE applies the LTE predicate on the "survey_yr_next" field.
func SurveyYrNextLTE(v int) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldLTE(FieldSurveyYrNext, v))
}

// SurveyYrNextIsNil applies the IsNil predicate on the "survey_yr_next" field.
func SurveyYrNextIsNil() predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldIsNull(FieldSurveyYrNext))
}

// SurveyYrNextNotNil applies the NotNil predicate on the "survey_yr_next" field.
func SurveyYrNextNotNil() predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldNotNull(FieldSurveyYrNext))
}

// TotalSurveysEQ applies the EQ predicate on the "total_surveys" field.
func TotalSurveysEQ(v int) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldEQ(FieldTotalSurveys, v))
}

// TotalSurveysNEQ applies the NEQ predicate on the "total_surveys" field.
func TotalSurveysNEQ(v int) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldNEQ(FieldTotalSurveys, v))
}

// TotalSurveysIn applies the In predicate on the "total_surveys" field.
func TotalSurveysIn(vs ...int) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldIn(FieldTotalSurveys, vs...))
}

// TotalSurveysNotIn applies the NotIn predicate on the "total_surveys" field.
func TotalSurveysNotIn(vs ...int) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldNotIn(FieldTotalSurveys, vs...))
}

// TotalSurveysGT applies the GT predicate on the "total_surveys" field.
func TotalSurveysGT(v int) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldGT(FieldTotalSurveys, v))
}

// TotalSurveysGTE applies the GTE predicate on the "total_surveys" field.
func TotalSurveysGTE(v int) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldGTE(FieldTotalSurveys, v))
}

// TotalSurveysLT applies the LT predicate on the "total_surveys" field.
func TotalSurveysLT(v int) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldLT(FieldTotalSurveys, v))
}

// TotalSurveysLTE applies the LTE predicate on the "total_surveys" field.
func TotalSurveysLTE(v int) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldLTE(FieldTotalSurveys, v))
}

// TotalSurveysIsNil applies the IsNil predicate on the "total_surveys" field.
func TotalSurveysIsNil() predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldIsNull(FieldTotalSurveys))
}

// TotalSurveysNotNil applies the NotNil predicate on the "total_surveys" field.
func TotalSurveysNotNil() predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.FieldNotNull(FieldTotalSurveys))
}

// HasLocation applies the HasEdge predicate on the "location" edge.
func HasLocation() predicate.RestaurantTrend {
	return predicate.RestaurantTrend(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, LocationTable, LocationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLocationWith applies the HasEdge predicate on the "location" edge with a given conditions (other predicates).
func HasLocationWith(preds ...predicate.RestaurantLocation) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(func(s *sql.Selector) {
		step := newLocationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RestaurantTrend) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RestaurantTrend) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RestaurantTrend) predicate.RestaurantTrend {
	return predicate.RestaurantTrend(sql.NotPredicates(p))
}
