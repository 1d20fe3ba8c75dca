// Code generated by ent, DO NOT EDIT.

package deal

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/oculusgrp/dealdesk_backend/internal/repo/predicate"
	"github.com/shopspring/decimal"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Deal {
	return predicate.Deal(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Deal {
	return predicate.Deal(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Deal {
	return predicate.Deal(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Deal {
	return predicate.Deal(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Deal {
	return predicate.Deal(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Deal {
	return predicate.Deal(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Deal {
	return predicate.Deal(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Deal {
	return predicate.Deal(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Deal {
	return predicate.Deal(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Deal {
	return predicate.Deal(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Deal {
	return predicate.Deal(sql.FieldEQ(FieldUpdatedAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.Deal {
	return predicate.Deal(sql.FieldEQ(FieldDeletedAt, v))
}

// ClientID applies equality check predicate on the "client_id" field. It's identical to ClientIDEQ.
func ClientID(v uuid.UUID) predicate.Deal {
	return predicate.Deal(sql.FieldEQ(FieldClientID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Deal {
	return predicate.Deal(sql.FieldEQ(FieldName, v))
}

// PropertyAddress applies equality check predicate on the "property_address" field. It's identical to PropertyAddressEQ.
func PropertyAddress(v string) predicate.Deal {
	return predicate.Deal(sql.FieldEQ(FieldPropertyAddress, v))
}

// Fee applies equality check predicate on the "fee" field. It's identical to FeeEQ.
func Fee(v decimal.Decimal) predicate.Deal {
	return predicate.Deal(sql.FieldEQ(FieldFee, v))
}

// NumberOfPayments applies equality check predicate on the "number_of_payments" field. It's identical to NumberOfPaymentsEQ.
func NumberOfPayments(v int) predicate.Deal {
	return predicate.Deal(sql.FieldEQ(FieldNumberOfPayments, v))
}

// Agci applies equality check predicate on the "agci" field. It's identical to AgciEQ.
func Agci(v decimal.Decimal) predicate.Deal {
	return predicate.Deal(sql.FieldEQ(FieldAgci, v))
}

// OriginationPercent applies equality check predicate on the "origination_percent" field. It's identical to OriginationPercentEQ.
func OriginationPercent(v decimal.Decimal) predicate.Deal {
	return predicate.Deal(sql.FieldEQ(FieldOriginationPercent, v))
}

// SitePercent applies equality check predicate on the "site_percent" field. It's identical to SitePercentEQ.
func SitePercent(v decimal.Decimal) predicate.Deal {
	return predicate.Deal(sql.FieldEQ(FieldSitePercent, v))
}

// DealPercent applies equality check predicate on the "deal_percent" field. It's identical to DealPercentEQ.
func DealPercent(v decimal.Decimal) predicate.Deal {
	return predicate.Deal(sql.FieldEQ(FieldDealPercent, v))
}

// ReferralFeePercent applies equality check predicate on the "referral_fee_percent" field. It's identical to ReferralFeePercentEQ.
func ReferralFeePercent(v decimal.Decimal) predicate.Deal {
	return predicate.Deal(sql.FieldEQ(FieldReferralFeePercent, v))
}

// CommissionVersion applies equality check predicate on the "commission_version" field. It's identical to CommissionVersionEQ.
func CommissionVersion(v int) predicate.Deal {
	return predicate.Deal(sql.FieldEQ(FieldCommissionVersion, v))
}

// ClosedDate applies equality check predicate on the "closed_date" field. It's identical to ClosedDateEQ.
func ClosedDate(v time.Time) predicate.Deal {
	return predicate.Deal(sql.FieldEQ(FieldClosedDate, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Deal {
	return predicate.Deal(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Deal {
	return predicate.Deal(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Deal {
	return predicate.Deal(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Deal {
	return predicate.Deal(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Deal {
	return predicate.Deal(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Deal {
	return predicate.Deal(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Deal {
	return predicate.Deal(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Deal {
	return predicate.Deal(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Deal {
	return predicate.Deal(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Deal {
	return predicate.Deal(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Deal {
	return predicate.Deal(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Deal {
	return predicate.Deal(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Deal {
	return predicate.Deal(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Deal {
	return predicate.Deal(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Deal {
	return predicate.Deal(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Deal {
	return predicate.Deal(sql.FieldLTE(FieldUpdatedAt, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.Deal {
	return predicate.Deal(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.Deal {
	return predicate.Deal(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.Deal {
	return predicate.Deal(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.Deal {
	return predicate.Deal(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.Deal {
	return predicate.Deal(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.Deal {
	return predicate.Deal(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.Deal {
	return predicate.Deal(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.Deal {
	return predicate.Deal(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.Deal {
	return predicate.Deal(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.Deal {
	return predicate.Deal(sql.FieldNotNull(FieldDeletedAt))
}

// ClientIDEQ applies the EQ predicate on the "client_id" field.
func ClientIDEQ(v uuid.UUID) predicate.Deal {
	return predicate.Deal(sql.FieldEQ(FieldClientID, v))
}

// ClientIDNEQ applies the NEQ predicate on the "client_id" field.
func ClientIDNEQ(v uuid.UUID) predicate.Deal {
	return predicate.Deal(sql.FieldNEQ(FieldClientID, v))
}

// ClientIDIn applies the In predicate on the "client_id" field.
func ClientIDIn(vs ...uuid.UUID) predicate.Deal {
	return predicate.Deal(sql.FieldIn(FieldClientID, vs...))
}

// ClientIDNotIn applies the NotIn predicate on the "client_id" field.
func ClientIDNotIn(vs ...uuid.UUID) predicate.Deal {
	return predicate.Deal(sql.FieldNotIn(FieldClientID, vs...))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Deal {
	return predicate.Deal(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Deal {
	return predicate.Deal(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Deal {
	return predicate.Deal(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Deal {
	return predicate.Deal(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Deal {
	return predicate.Deal(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Deal {
	return predicate.Deal(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Deal {
	return predicate.Deal(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Deal {
	return predicate.Deal(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Deal {
	return predicate.Deal(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Deal {
	return predicate.Deal(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Deal {
	return predicate.Deal(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Deal {
	return predicate.Deal(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Deal {
	return predicate.Deal(sql.FieldContainsFold(FieldName, v))
}

// PropertyAddressEQ applies the EQ predicate on the "property_address" field.
func PropertyAddressEQ(v string) predicate.Deal {
	return predicate.Deal(sql.FieldEQ(FieldPropertyAddress, v))
}

// PropertyAddressNEQ applies the NEQ predicate on the "property_address" field.
func PropertyAddressNEQ(v string) predicate.Deal {
	return predicate.Deal(sql.FieldNEQ(FieldPropertyAddress, v))
}

// PropertyAddressIn applies the In predicate on the "property_address" field.
func PropertyAddressIn(vs ...string) predicate.Deal {
	return predicate.Deal(sql.FieldIn(FieldPropertyAddress, vs...))
}

// PropertyAddressNotIn applies the NotIn predicate on the "property_address" field.
func PropertyAddressNotIn(vs ...string) predicate.Deal {
	return predicate.Deal(sql.FieldNotIn(FieldPropertyAddress, vs...))
}

// PropertyAddressGT applies the GT predicate on the "property_address" field.
func PropertyAddressGT(v string) predicate.Deal {
	return predicate.Deal(sql.FieldGT(FieldPropertyAddress, v))
}

// PropertyAddressGTE applies the GTE predicate on the "property_address" field.
func PropertyAddressGTE(v string) predicate.Deal {
	return predicate.Deal(sql.FieldGTE(FieldPropertyAddress, v))
}

// PropertyAddressLT applies the LT predicate on the "property_address" field.
func PropertyAddressLT(v string) predicate.Deal {
	return predicate.Deal(sql.FieldLT(FieldPropertyAddress, v))
}

// PropertyAddressLTE applies the LTE predicate on the "property_address" field.
func PropertyAddressLTE(v string) predicate.Deal {
	return predicate.Deal(sql.FieldLTE(FieldPropertyAddress, v))
}

// PropertyAddressContains applies the Contains predicate on the "property_address" field.
func PropertyAddressContains(v string) predicate.Deal {
	return predicate.Deal(sql.FieldContains(FieldPropertyAddress, v))
}

// PropertyAddressHasPrefix applies the HasPrefix predicate on the "property_address" field.
func PropertyAddressHasPrefix(v string) predicate.Deal {
	return predicate.Deal(sql.FieldHasPrefix(FieldPropertyAddress, v))
}

// PropertyAddressHasSuffix applies the HasSuffix predicate on the "property_address" field.
func PropertyAddressHasSuffix(v string) predicate.Deal {
	return predicate.Deal(sql.FieldHasSuffix(FieldPropertyAddress, v))
}

// PropertyAddressIsNil applies the IsNil predicate on the "property_address" field.
func PropertyAddressIsNil() predicate.Deal {
	return predicate.Deal(sql.FieldIsNull(FieldPropertyAddress))
}

// PropertyAddressNotNil applies the NotNil predicate on the "property_address" field.
func PropertyAddressNotNil() predicate.Deal {
	return predicate.Deal(sql.FieldNotNull(FieldPropertyAddress))
}

// PropertyAddressEqualFold applies the EqualFold predicate on the "property_address" field.
func PropertyAddressEqualFold(v string) predicate.Deal {
	return predicate.Deal(sql.FieldEqualFold(FieldPropertyAddress, v))
}

// PropertyAddressContainsFold applies the ContainsFold predicate on the "property_address" field.
func PropertyAddressContainsFold(v string) predicate.Deal {
	return predicate.Deal(sql.FieldContainsFold(FieldPropertyAddress, v))
}

// StageEQ applies the EQ predicate on the "stage" field.
func StageEQ(v Stage) predicate.Deal {
	return predicate.Deal(sql.FieldEQ(FieldStage, v))
}

// StageNEQ applies the NEQ predicate on the "stage" field.
func StageNEQ(v Stage) predicate.Deal {
	return predicate.Deal(sql.FieldNEQ(FieldStage, v))
}

// StageIn applies the In predicate on the "stage" field.
func StageIn(vs ...Stage) predicate.Deal {
	return predicate.Deal(sql.FieldIn(FieldStage, vs...))
}

// StageNotIn applies the NotIn predicate on the "stage" field.
func StageNotIn(vs ...Stage) predicate.Deal {
	return predicate.Deal(sql.FieldNotIn(FieldStage, vs...))
}

// FeeEQ applies the EQ predicate on the "fee" field.
func FeeEQ(v decimal.Decimal) predicate.Deal {
	return predicate.Deal(sql.FieldEQ(FieldFee, v))
}

// FeeNEQ applies the NEQ predicate on the "fee" field.
func FeeNEQ(v decimal.Decimal) predicate.Deal {
	return predicate.Deal(sql.FieldNEQ(FieldFee, v))
}

// FeeIn applies the In predicate on the "fee" field.
func FeeIn(vs ...decimal.Decimal) predicate.Deal {
	return predicate.Deal(sql.FieldIn(FieldFee, vs...))
}

// FeeNotIn applies the NotIn predicate on the "fee" field.
func FeeNotIn(vs ...decimal.Decimal) predicate.Deal {
	return predicate.Deal(sql.FieldNotIn(FieldFee, vs...))
}

// FeeGT applies the GT predicate on the "fee" field.
func FeeGT(v decimal.Decimal) predicate.Deal {
	return predicate.Deal(sql.FieldGT(FieldFee, v))
}

// FeeGTE applies the GTE predicate on the "fee" field.
func FeeGTE(v decimal.Decimal) predicate.Deal {
	return predicate.Deal(sql.FieldGTE(FieldFee, v))
}

// FeeLT applies the LT predicate on the "fee" field.
func FeeLT(v decimal.Decimal) predicate.Deal {
	return predicate.Deal(sql.FieldLT(FieldFee, v))
}

// FeeLTE applies the LTE predicate on the "fee" field.
func FeeLTE(v decimal.Decimal) predicate.Deal {
	return predicate.Deal(sql.FieldLTE(FieldFee, v))
}

// NumberOfPaymentsEQ applies the EQ predicate on the "number_of_payments" field.
func NumberOfPaymentsEQ(v int) predicate.Deal {
	return predicate.Deal(sql.FieldEQ(FieldNumberOfPayments, v))
}

// NumberOfPaymentsNEQ applies the NEQ predicate on the "number_of_payments" field.
func NumberOfPaymentsNEQ(v int) predicate.Deal {
	return predicate.Deal(sql.FieldNEQ(FieldNumberOfPayments, v))
}

// NumberOfPaymentsIn applies the In predicate on the "number_of_payments" field.
func NumberOfPaymentsIn(vs ...int) predicate.Deal {
	return predicate.Deal(sql.FieldIn(FieldNumberOfPayments, vs...))
}

// NumberOfPaymentsNotIn applies the NotIn predicate on the "number_of_payments" field.
func NumberOfPaymentsNotIn(vs ...int) predicate.Deal {
	return predicate.Deal(sql.FieldNotIn(FieldNumberOfPayments, vs...))
}

// NumberOfPaymentsGT applies the GT predicate on the "number_of_payments" field.
func NumberOfPaymentsGT(v int) predicate.Deal {
	return predicate.Deal(sql.FieldGT(FieldNumberOfPayments, v))
}

// NumberOfPaymentsGTE applies the GTE predicate on the "number_of_payments" field.
func NumberOfPaymentsGTE(v int) predicate.Deal {
	return predicate.Deal(sql.FieldGTE(FieldNumberOfPayments, v))
}

// NumberOfPaymentsLT applies the LT predicate on the "number_of_payments" field.
func NumberOfPaymentsLT(v int) predicate.Deal {
	return predicate.Deal(sql.FieldLT(FieldNumberOfPayments, v))
}

// NumberOfPaymentsLTE applies the LTE predicate on the "number_of_payments" field.
func NumberOfPaymentsLTE(v int) predicate.Deal {
	return predicate.Deal(sql.FieldLTE(FieldNumberOfPayments, v))
}

// AgciEQ applies the EQ predicate on the "agci" field.
func AgciEQ(v decimal.Decimal) predicate.Deal {
	return predicate.Deal(sql.FieldEQ(FieldAgci, v))
}

// AgciNEQ applies the NEQ predicate on the "agci" field.
func AgciNEQ(v decimal.Decimal) predicate.Deal {
	return predicate.Deal(sql.FieldNEQ(FieldAgci, v))
}

// AgciIn applies the In predicate on the "agci" field.
func AgciIn(vs ...decimal.Decimal) predicate.Deal {
	return predicate.Deal(sql.FieldIn(FieldAgci, vs...))
}

// AgciNotIn applies the NotIn predicate on the "agci" field.
func AgciNotIn(vs ...decimal.Decimal) predicate.Deal {
	return predicate.Deal(sql.FieldNotIn(FieldAgci, vs...))
}

// AgciGT applies the GT predicate on the "agci" field.
func AgciGT(v decimal.Decimal) predicate.Deal {
	return predicate.Deal(sql.FieldGT(FieldAgci, v))
}

// AgciGTE applies the GTE predicate on the "agci" field.
func AgciGTE(v decimal.Decimal) predicate.Deal {
	return predicate.Deal(sql.FieldGTE(FieldAgci, v))
}

// AgciLT applies the LT predicate on the "agci" field.
func AgciLT(v decimal.Decimal) predicate.Deal {
	return predicate.Deal(sql.FieldLT(FieldAgci, v))
}

// AgciLTE applies the LTE predicate on the "agci" field.
func AgciLTE(v decimal.Decimal) predicate.Deal {
	return predicate.Deal(sql.FieldLTE(FieldAgci, v))
}

// OriginationPercentEQ applies the EQ predicate on the "origination_percent" field.
func OriginationPercentEQ(v decimal.Decimal) predicate.Deal {
	return predicate.Deal(sql.FieldEQ(FieldOriginationPercent, v))
}

// OriginationPercentNEQ applies the NEQ predicate on the "origination_percent" field.
func OriginationPercentNEQ(v decimal.Decimal) predicate.Deal {
	return predicate.Deal(sql.FieldNEQ(FieldOriginationPercent, v))
}

// OriginationPercentIn applies the In predicate on the "origination_percent" field.
func OriginationPercentIn(vs ...decimal.Decimal) predicate.Deal {
	return predicate.Deal(sql.FieldIn(FieldOriginationPercent, vs...))
}

// OriginationPercentNotIn applies the NotIn predicate on the "origination_percent" field.
func OriginationPercentNotIn(vs ...decimal.Decimal) predicate.Deal {
	return predicate.Deal(sql.FieldNotIn(FieldOriginationPercent, vs...))
}

// OriginationPercentGT applies the GT predicate on the "origination_percent" field.
func OriginationPercentGT(v decimal.Decimal) predicate.Deal {
	return predicate.Deal(sql.FieldGT(FieldOriginationPercent, v))
}

// OriginationPercentGTE applies the GTE predicate on the "origination_percent" field.
func OriginationPercentGTE(v decimal.Decimal) predicate.Deal {
	return predicate.Deal(sql.FieldGTE(FieldOriginationPercent, v))
}

// OriginationPercentLT applies the LT predicate on the "origination_percent" field.
func OriginationPercentLT(v decimal.Decimal) predicate.Deal {
	return predicate.Deal(sql.FieldLT(FieldOriginationPercent, v))
}

// OriginationPercentLTE applies the LTE predicate on the "origination_percent" field.
func OriginationPercentLTE(v decimal.Decimal) predicate.Deal {
	return predicate.Deal(sql.FieldLTE(FieldOriginationPercent, v))
}

// SitePercentEQ applies the EQ predicate on the "site_percent" field.
func SitePercentEQ(v decimal.Decimal) predicate.Deal {
	return predicate.Deal(sql.FieldEQ(FieldSitePercent, v))
}

// SitePercentNEQ applies the NEQ predicate on the "site_percent" field.
func SitePercentNEQ(v decimal.Decimal) predicate.Deal {
	return predicate.Deal(sql.FieldNEQ(FieldSitePercent, v))
}

// SitePercentIn applies the In predicate on the "site_percent" field.
func SitePercentIn(vs ...decimal.Decimal) predicate.Deal {
	return predicate.Deal(sql.FieldIn(FieldSitePercent, vs...))
}

// SitePercentNotIn applies the NotIn predicate on the "site_percent" field.
func SitePercentNotIn(vs ...decimal.Decimal) predicate.Deal {
	return predicate.Deal(sql.FieldNotIn(FieldSitePercent, vs...))
}

// SitePercentGT applies the GT predicate on the "site_percent" field.
func SitePercentGT(v decimal.Decimal) predicate.Deal {
	return predicate.Deal(sql.FieldGT(FieldSitePercent, v))
}

// SitePercentGTE applies the GTE predicate on the "site_percent" field.
func SitePercentGTE(v decimal.Decimal) predicate.Deal {
	return predicate.Deal(sql.FieldGTE(FieldSitePercent, v))
}

// SitePercentLT applies the LT predicate on the "site_percent" field.
func SitePercentLT(v decimal.Decimal) predicate.Deal {
	return predicate.Deal(sql.FieldLT(FieldSitePercent, v))
}

// SitePercentLTE applies the LTE predicate on the "site_percent" field.
func SitePercentLTE(v decimal.Decimal) predicate.Deal {
	return predicate.Deal(sql.FieldLTE(FieldSitePercent, v))
}

// DealPercentEQ applies the EQ predicate on the "deal_percent" field.
func DealPercentEQ(v decimal.Decimal) predicate.Deal {
	return predicate.Deal(sql.FieldEQ(FieldDealPercent, v))
}

// DealPercentNEQ applies the NEQ predicate on the "deal_percent" field.
func DealPercentNEQ(v decimal.Decimal) predicate.Deal {
	return predicate.Deal(sql.FieldNEQ(FieldDealPercent, v))
}

// DealPercentIn applies the In predicate on the "deal_percent" field.
func DealPercentIn(vs ...decimal.Decimal) predicate.Deal {
	return predicate.Deal(sql.FieldIn(FieldDealPercent, vs...))
}

// DealPercentNotIn applies the NotIn predicate on the "deal_percent" field.
func DealPercentNotIn(vs ...decimal.Decimal) predicate.Deal {
	return predicate.Deal(sql.FieldNotIn(FieldDealPercent, vs...))
}

// DealPercentGT applies the GT predicate on the "deal_percent" field.
func DealPercentGT(v decimal.Decimal) predicate.Deal {
	return predicate.Deal(sql.FieldGT(FieldDealPercent, v))
}

// DealPercentGTE applies the GTE predicate on the "deal_percent" field.
func DealPercentGTE(v decimal.Decimal) predicate.Deal {
	return predicate.Deal(sql.FieldGTE(FieldDealPercent, v))
}

// DealPercentLT applies the LT predicate on the "deal_percent" field.
func DealPercentLT(v decimal.Decimal) predicate.Deal {
	return predicate.Deal(sql.FieldLT(FieldDealPercent, v))
}

// DealPercentLTE applies the LTE predicate on the "deal_percent" field.
func DealPercentLTE(v decimal.Decimal) predicate.Deal {
	return predicate.Deal(sql.FieldLTE(FieldDealPercent, v))
}

// ReferralFeePercentEQ applies the EQ predicate on the "referral_fee_percent" field.
func ReferralFeePercentEQ(v decimal.Decimal) predicate.Deal {
	return predicate.Deal(sql.FieldEQ(FieldReferralFeePercent, v))
}

// ReferralFeePercentNEQ applies the NEQ predicate on the "referral_fee_percent" field.
func ReferralFeePercentNEQ(v decimal.Decimal) predicate.Deal {
	return predicate.Deal(sql.FieldNEQ(FieldReferralFeePercent, v))
}

// ReferralFeePercentIn applies the In predicate on the "referral_fee_percent" field.
func ReferralFeePercentIn(vs ...decimal.Decimal) predicate.Deal {
	return predicate.Deal(sql.FieldIn(FieldReferralFeePercent, vs...))
}

// ReferralFeePercentNotIn applies the NotIn predicate on the "referral_fee_percent" field.
func ReferralFeePercentNotIn(vs ...decimal.Decimal) predicate.Deal {
	return predicate.Deal(sql.FieldNotIn(FieldReferralFeePercent, vs...))
}

// ReferralFeePercentGT applies the GT predicate on the "referral_fee_percent" field.
func ReferralFeePercentGT(v decimal.Decimal) predicate.Deal {
	return predicate.Deal(sql.FieldGT(FieldReferralFeePercent, v))
}

// ReferralFeePercentGTE applies the GTE predicate on the "referral_fee_percent" field.
func ReferralFeePercentGTE(v decimal.Decimal) predicate.Deal {
	return predicate.Deal(sql.FieldGTE(FieldReferralFeePercent, v))
}

// ReferralFeePercentLT applies the LT predicate on the "referral_fee_percent" field.
func ReferralFeePercentLT(v decimal.Decimal) predicate.Deal {
	return predicate.Deal(sql.FieldLT(FieldReferralFeePercent, v))
}

// ReferralFeePercentLTE applies the LTE predicate on the "referral_fee_percent" field.
func ReferralFeePercentLTE(v decimal.Decimal) predicate.Deal {
	return predicate.Deal(sql.FieldLTE(FieldReferralFeePercent, v))
}

// CommissionVersionEQ applies the EQ predicate on the "commission_version" field.
func CommissionVersionEQ(v int) predicate.Deal {
	return predicate.Deal(sql.FieldEQ(FieldCommissionVersion, v))
}

// CommissionVersionNEQ applies the NEQ predicate on the "commission_version" field.
func CommissionVersionNEQ(v int) predicate.Deal {
	return predicate.Deal(sql.FieldNEQ(FieldCommissionVersion, v))
}

// CommissionVersionIn applies the In predicate on the "commission_version" field.
func CommissionVersionIn(vs ...int) predicate.Deal {
	return predicate.Deal(sql.FieldIn(FieldCommissionVersion, vs...))
}

// CommissionVersionNotIn applies the NotIn predicate on the "commission_version" field.
func CommissionVersionNotIn(vs ...int) predicate.Deal {
	return predicate.Deal(sql.FieldNotIn(FieldCommissionVersion, vs...))
}

// CommissionVersionGT applies the GT predicate on the "commission_version" field.
func CommissionVersionGT(v int) predicate.Deal {
	return predicate.Deal(sql.FieldGT(FieldCommissionVersion, v))
}

// CommissionVersionGTE applies the GTE predicate on the "commission_version" field.
func CommissionVersionGTE(v int) predicate.Deal {
	return predicate.Deal(sql.FieldGTE(FieldCommissionVersion, v))
}

// CommissionVersionLT applies the LT predicate on the "commission_version" field.
func CommissionVersionLT(v int) predicate.Deal {
	return predicate.Deal(sql.FieldLT(FieldCommissionVersion, v))
}

// CommissionVersionLTE applies the LTE predicate on the "commission_version" field.
func CommissionVersionLTE(v int) predicate.Deal {
	return predicate.Deal(sql.FieldLTE(FieldCommissionVersion, v))
}

// ClosedDateEQ applies the EQ predicate on the "closed_date" field.
func ClosedDateEQ(v time.Time) predicate.Deal {
	return predicate.Deal(sql.FieldEQ(FieldClosedDate, v))
}

// ClosedDateNEQ applies the NEQ predicate on the "closed_date" field.
func ClosedDateNEQ(v time.Time) predicate.Deal {
	return predicate.Deal(sql.FieldNEQ(FieldClosedDate, v))
}

// ClosedDateIn applies the In predicate on the "closed_date" field.
func ClosedDateIn(vs ...time.Time) predicate.Deal {
	return predicate.Deal(sql.FieldIn(FieldClosedDate, vs...))
}

// ClosedDateNotIn applies the NotIn predicate on the "closed_date" field.
func ClosedDateNotIn(vs ...time.Time) predicate.Deal {
	return predicate.Deal(sql.FieldNotIn(FieldClosedDate, vs...))
}

// ClosedDateGT applies the GT predicate on the "closed_date" field.
func ClosedDateGT(v time.Time) predicate.Deal {
	return predicate.Deal(sql.FieldGT(FieldClosedDate, v))
}

// ClosedDateGTE applies the GTE predicate on the "closed_date" field.
func ClosedDateGTE(v time.Time) predicate.Deal {
	return predicate.Deal(sql.FieldGTE(FieldClosedDate, v))
}

// ClosedDateLT applies the LT predicate on the "closed_date" field.
func ClosedDateLT(v time.Time) predicate.Deal {
	return predicate.Deal(sql.FieldLT(FieldClosedDate, v))
}

// ClosedDateLTE applies the LTE predicate on the "closed_date" field.
func ClosedDateLTE(v time.Time) predicate.Deal {
	return predicate.Deal(sql.FieldLTE(FieldClosedDate, v))
}

// ClosedDateIsNil applies the IsNil predicate on the "closed_date" field.
func ClosedDateIsNil() predicate.Deal {
	return predicate.Deal(sql.FieldIsNull(FieldClosedDate))
}

// ClosedDateNotNil applies the NotNil predicate on the "closed_date" field.
func ClosedDateNotNil() predicate.Deal {
	return predicate.Deal(sql.FieldNotNull(FieldClosedDate))
}

// HasCustomer applies the HasEdge predicate on the "customer" edge.
func HasCustomer() predicate.Deal {
	return predicate.Deal(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CustomerTable, CustomerColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCustomerWith applies the HasEdge predicate on the "customer" edge with a given conditions (other predicates).
func HasCustomerWith(preds ...predicate.Customer) predicate.Deal {
	return predicate.Deal(func(s *sql.Selector) {
		step := newCustomerStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPayments applies the HasEdge predicate on the "payments" edge.
func HasPayments() predicate.Deal {
	return predicate.Deal(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, PaymentsTable, PaymentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPaymentsWith applies the HasEdge predicate on the "payments" edge with a given conditions (other predicates).
func HasPaymentsWith(preds ...predicate.Payment) predicate.Deal {
	return predicate.Deal(func(s *sql.Selector) {
		step := newPaymentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasBrokerInterests applies the HasEdge predicate on the "broker_interests" edge.
func HasBrokerInterests() predicate.Deal {
	return predicate.Deal(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, BrokerInterestsTable, BrokerInterestsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBrokerInterestsWith applies the HasEdge predicate on the "broker_interests" edge with a given conditions (other predicates).
func HasBrokerInterestsWith(preds ...predicate.DealBroker) predicate.Deal {
	return predicate.Deal(func(s *sql.Selector) {
		step := newBrokerInterestsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Deal) predicate.Deal {
	return predicate.Deal(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Deal) predicate.Deal {
	return predicate.Deal(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Deal) predicate.Deal {
	return predicate.Deal(sql.NotPredicates(p))
}
