// Code generated by ent, DO NOT EDIT.

package paymentsplit

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/oculusgrp/dealdesk_backend/internal/repo/predicate"
	"github.com/shopspring/decimal"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldEQ(FieldUpdatedAt, v))
}

// PaymentID applies equality check predicate on the "payment_id" field. It's identical to PaymentIDEQ.
func PaymentID(v uuid.UUID) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldEQ(FieldPaymentID, v))
}

// BrokerID applies equality check predicate on the "broker_id" field. It's identical to BrokerIDEQ.
func BrokerID(v uuid.UUID) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldEQ(FieldBrokerID, v))
}

// SplitOriginationPercent applies equality check predicate on the "split_origination_percent" field. It's identical to SplitOriginationPercentEQ.
func SplitOriginationPercent(v decimal.Decimal) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldEQ(FieldSplitOriginationPercent, v))
}

// SplitOriginationUsd applies equality check predicate on the "split_origination_usd" field. It's identical to SplitOriginationUsdEQ.
func SplitOriginationUsd(v decimal.Decimal) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldEQ(FieldSplitOriginationUsd, v))
}

// SplitSitePercent applies equality check predicate on the "split_site_percent" field. It's identical to SplitSitePercentEQ.
func SplitSitePercent(v decimal.Decimal) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldEQ(FieldSplitSitePercent, v))
}

// SplitSiteUsd applies equality check predicate on the "split_site_usd" field. It's identical to SplitSiteUsdEQ.
func SplitSiteUsd(v decimal.Decimal) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldEQ(FieldSplitSiteUsd, v))
}

// SplitDealPercent applies equality check predicate on the "split_deal_percent" field. It's identical to SplitDealPercentEQ.
func SplitDealPercent(v decimal.Decimal) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldEQ(FieldSplitDealPercent, v))
}

// SplitDealUsd applies equality check predicate on the "split_deal_usd" field. It's identical to SplitDealUsdEQ.
func SplitDealUsd(v decimal.Decimal) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldEQ(FieldSplitDealUsd, v))
}

// SplitBrokerTotal applies equality check predicate on the "split_broker_total" field. It's identical to SplitBrokerTotalEQ.
func SplitBrokerTotal(v decimal.Decimal) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldEQ(FieldSplitBrokerTotal, v))
}

// Paid applies equality check predicate on the "paid" field. It's identical to PaidEQ.
func Paid(v bool) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldEQ(FieldPaid, v))
}

// PaidDate applies equality check predicate on the "paid_date" field. It's identical to PaidDateEQ.
func PaidDate(v time.Time) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldEQ(FieldPaidDate, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldLTE(FieldUpdatedAt, v))
}

// PaymentIDEQ applies the EQ predicate on the "payment_id" field.
func PaymentIDEQ(v uuid.UUID) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldEQ(FieldPaymentID, v))
}

// PaymentIDNEQ applies the NEQ predicate on the "payment_id" field.
func PaymentIDNEQ(v uuid.UUID) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldNEQ(FieldPaymentID, v))
}

// PaymentIDIn applies the In predicate on the "payment_id" field.
func PaymentIDIn(vs ...uuid.UUID) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldIn(FieldPaymentID, vs...))
}

// PaymentIDNotIn applies the NotIn predicate on the "payment_id" field.
func PaymentIDNotIn(vs ...uuid.UUID) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldNotIn(FieldPaymentID, vs...))
}

// BrokerIDEQ applies the EQ predicate on the "broker_id" field.
func BrokerIDEQ(v uuid.UUID) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldEQ(FieldBrokerID, v))
}

// BrokerIDNEQ applies the NEQ predicate on the "broker_id" field.
func BrokerIDNEQ(v uuid.UUID) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldNEQ(FieldBrokerID, v))
}

// BrokerIDIn applies the In predicate on the "broker_id" field.
func BrokerIDIn(vs ...uuid.UUID) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldIn(FieldBrokerID, vs...))
}

// BrokerIDNotIn applies the NotIn predicate on the "broker_id" field.
func BrokerIDNotIn(vs ...uuid.UUID) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldNotIn(FieldBrokerID, vs...))
}

// SplitOriginationPercentEQ applies the EQ predicate on the "split_origination_percent" field.
func SplitOriginationPercentEQ(v decimal.Decimal) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldEQ(FieldSplitOriginationPercent, v))
}

// SplitOriginationPercentNEQ applies the NEQ predicate on the "split_origination_percent" field.
func SplitOriginationPercentNEQ(v decimal.Decimal) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldNEQ(FieldSplitOriginationPercent, v))
}

// SplitOriginationPercentIn applies the In predicate on the "split_origination_percent" field.
func SplitOriginationPercentIn(vs ...decimal.Decimal) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldIn(FieldSplitOriginationPercent, vs...))
}

// SplitOriginationPercentNotIn applies the NotIn predicate on the "split_origination_percent" field.
func SplitOriginationPercentNotIn(vs ...decimal.Decimal) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldNotIn(FieldSplitOriginationPercent, vs...))
}

// SplitOriginationPercentGT applies the GT predicate on the "split_origination_percent" field.
func SplitOriginationPercentGT(v decimal.Decimal) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldGT(FieldSplitOriginationPercent, v))
}

// SplitOriginationPercentGTE applies the GTE predicate on the "split_origination_percent" field.
func SplitOriginationPercentGTE(v decimal.Decimal) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldGTE(FieldSplitOriginationPercent, v))
}

// SplitOriginationPercentLT applies the LT predicate on the "split_origination_percent" field.
func SplitOriginationPercentLT(v decimal.Decimal) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldLT(FieldSplitOriginationPercent, v))
}

// SplitOriginationPercentLTE applies the LTE predicate on the "split_origination_percent" field.
func SplitOriginationPercentLTE(v decimal.Decimal) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldLTE(FieldSplitOriginationPercent, v))
}

// SplitOriginationUsdEQ applies the EQ predicate on the "split_origination_usd" field.
func SplitOriginationUsdEQ(v decimal.Decimal) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldEQ(FieldSplitOriginationUsd, v))
}

// SplitOriginationUsdNEQ applies the NEQ predicate on the "split_origination_usd" field.
func SplitOriginationUsdNEQ(v decimal.Decimal) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldNEQ(FieldSplitOriginationUsd, v))
}

// SplitOriginationUsdIn applies the In predicate on the "split_origination_usd" field.
func SplitOriginationUsdIn(vs ...decimal.Decimal) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldIn(FieldSplitOriginationUsd, vs...))
}

// SplitOriginationUsdNotIn applies the NotIn predicate on the "split_origination_usd" field.
func SplitOriginationUsdNotIn(vs ...decimal.Decimal) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldNotIn(FieldSplitOriginationUsd, vs...))
}

// SplitOriginationUsdGT applies the GT predicate on the "split_origination_usd" field.
func SplitOriginationUsdGT(v decimal.Decimal) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldGT(FieldSplitOriginationUsd, v))
}

// SplitOriginationUsdGTE applies the GTE predicate on the "split_origination_usd" field.
func SplitOriginationUsdGTE(v decimal.Decimal) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldGTE(FieldSplitOriginationUsd, v))
}

// SplitOriginationUsdLT applies the LT predicate on the "split_origination_usd" field.
func SplitOriginationUsdLT(v decimal.Decimal) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldLT(FieldSplitOriginationUsd, v))
}

// SplitOriginationUsdLTE applies the LTE predicate on the "split_origination_usd" field.
func SplitOriginationUsdLTE(v decimal.Decimal) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldLTE(FieldSplitOriginationUsd, v))
}

// SplitSitePercentEQ applies the EQ predicate on the "split_site_percent" field.
func SplitSitePercentEQ(v decimal.Decimal) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldEQ(FieldSplitSitePercent, v))
}

// SplitSitePercentNEQ applies the NEQ predicate on the "split_site_percent" field.
func SplitSitePercentNEQ(v decimal.Decimal) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldNEQ(FieldSplitSitePercent, v))
}

// SplitSitePercentIn applies the In predicate on the "split_site_percent" field.
func SplitSitePercentIn(vs ...decimal.Decimal) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldIn(FieldSplitSitePercent, vs...))
}

// SplitSitePercentNotIn applies the NotIn predicate on the "split_site_percent" field.
func SplitSitePercentNotIn(vs ...decimal.Decimal) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldNotIn(FieldSplitSitePercent, vs...))
}

// SplitSitePercentGT applies the GT predicate on the "split_site_percent" field.
func SplitSitePercentGT(v decimal.Decimal) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldGT(FieldSplitSitePercent, v))
}

// SplitSitePercentGTE applies the GTE predicate on the "split_site_percent" field.
func SplitSitePercentGTE(v decimal.Decimal) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldGTE(FieldSplitSitePercent, v))
}

// SplitSitePercentLT applies the LT predicate on the "split_site_percent" field.
func SplitSitePercentLT(v decimal.Decimal) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldLT(FieldSplitSitePercent, v))
}

// SplitSitePercentLTE applies the LTE predicate on the "split_site_percent" field.
func SplitSitePercentLTE(v decimal.Decimal) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldLTE(FieldSplitSitePercent, v))
}

// SplitSiteUsdEQ applies the EQ predicate on the "split_site_usd" field.
func SplitSiteUsdEQ(v decimal.Decimal) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldEQ(FieldSplitSiteUsd, v))
}

// SplitSiteUsdNEQ applies the NEQ predicate on the "split_site_usd" field.
func SplitSiteUsdNEQ(v decimal.Decimal) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldNEQ(FieldSplitSiteUsd, v))
}

// SplitSiteUsdIn applies the In predicate on the "split_site_usd" field.
func SplitSiteUsdIn(vs ...decimal.Decimal) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldIn(FieldSplitSiteUsd, vs...))
}

// SplitSiteUsdNotIn applies the NotIn predicate on the "split_site_usd" field.
func SplitSiteUsdNotIn(vs ...decimal.Decimal) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldNotIn(FieldSplitSiteUsd, vs...))
}

// SplitSiteUsdGT applies the GT predicate on the "split_site_usd" field.
func SplitSiteUsdGT(v decimal.Decimal) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldGT(FieldSplitSiteUsd, v))
}

// SplitSiteUsdGTE applies the GTE predicate on the "split_site_usd" field.
func SplitSiteUsdGTE(v decimal.Decimal) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldGTE(FieldSplitSiteUsd, v))
}

// SplitSiteUsdLT applies the LT predicate on the "split_site_usd" field.
func SplitSiteUsdLT(v decimal.Decimal) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldLT(FieldSplitSiteUsd, v))
}

// SplitSiteUsdLTE applies the LTE predicate on the "split_site_usd" field.
func SplitSiteUsdLTE(v decimal.Decimal) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldLTE(FieldSplitSiteUsd, v))
}

// SplitDealPercentEQ applies the EQ predicate on the "split_deal_percent" field.
func SplitDealPercentEQ(v decimal.Decimal) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldEQ(FieldSplitDealPercent, v))
}

// SplitDealPercentNEQ applies the NEQ predicate on the "split_deal_percent" field.
func SplitDealPercentNEQ(v decimal.Decimal) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldNEQ(FieldSplitDealPercent, v))
}

// SplitDealPercentIn applies the In predicate on the "split_deal_percent" field.
func SplitDealPercentIn(vs ...decimal.Decimal) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldIn(FieldSplitDealPercent, vs...))
}

// SplitDealPercentNotIn applies the NotIn predicate on the "split_deal_percent" field.
func SplitDealPercentNotIn(vs ...decimal.Decimal) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldNotIn(FieldSplitDealPercent, vs...))
}

// SplitDealPercentGT applies the GT predicate on the "split_deal_percent" field.
func SplitDealPercentGT(v decimal.Decimal) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldGT(FieldSplitDealPercent, v))
}

// SplitDealPercentGTE applies the GTE predicate on the "split_deal_percent" field.
func SplitDealPercentGTE(v decimal.Decimal) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldGTE(FieldSplitDealPercent, v))
}

// SplitDealPercentLT applies the LT predicate on the "split_deal_percent" field.
func SplitDealPercentLT(v decimal.Decimal) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldLT(FieldSplitDealPercent, v))
}

// SplitDealPercentLTE applies the LTE predicate on the "split_deal_percent" field.
func SplitDealPercentLTE(v decimal.Decimal) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldLTE(FieldSplitDealPercent, v))
}

// SplitDealUsdEQ applies the EQ predicate on the "split_deal_usd" field.
func SplitDealUsdEQ(v decimal.Decimal) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldEQ(FieldSplitDealUsd, v))
}

// SplitDealUsdNEQ applies the NEQ predicate on the "split_deal_usd" field.
func SplitDealUsdNEQ(v decimal.Decimal) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldNEQ(FieldSplitDealUsd, v))
}

// SplitDealUsdIn applies the In predicate on the "split_deal_usd" field.
func SplitDealUsdIn(vs ...decimal.Decimal) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldIn(FieldSplitDealUsd, vs...))
}

// SplitDealUsdNotIn applies the NotIn predicate on the "split_deal_usd" field.
func SplitDealUsdNotIn(vs ...decimal.Decimal) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldNotIn(FieldSplitDealUsd, vs...))
}

// SplitDealUsdGT applies the GT predicate on the "split_deal_usd" field.
func SplitDealUsdGT(v decimal.Decimal) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldGT(FieldSplitDealUsd, v))
}

// SplitDealUsdGTE applies the GTE predicate on the "split_deal_usd" field.
func SplitDealUsdGTE(v decimal.Decimal) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldGTE(FieldSplitDealUsd, v))
}

// SplitDealUsdLT applies the LT predicate on the "split_deal_usd" field.
func SplitDealUsdLT(v decimal.Decimal) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldLT(FieldSplitDealUsd, v))
}

// SplitDealUsdLTE applies the LTE predicate on the "split_deal_usd" field.
func SplitDealUsdLTE(v decimal.Decimal) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldLTE(FieldSplitDealUsd, v))
}

// SplitBrokerTotalEQ applies the EQ predicate on the "split_broker_total" field.
func SplitBrokerTotalEQ(v decimal.Decimal) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldEQ(FieldSplitBrokerTotal, v))
}

// SplitBrokerTotalNEQ applies the NEQ predicate on the "split_broker_total" field.
func SplitBrokerTotalNEQ(v decimal.Decimal) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldNEQ(FieldSplitBrokerTotal, v))
}

// SplitBrokerTotalIn applies the In predicate on the "split_broker_total" field.
func SplitBrokerTotalIn(vs ...decimal.Decimal) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldIn(FieldSplitBrokerTotal, vs...))
}

// SplitBrokerTotalNotIn applies the NotIn predicate on the "split_broker_total" field.
func SplitBrokerTotalNotIn(vs ...decimal.Decimal) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldNotIn(FieldSplitBrokerTotal, vs...))
}

// SplitBrokerTotalGT applies the GT predicate on the "split_broker_total" field.
func SplitBrokerTotalGT(v decimal.Decimal) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldGT(FieldSplitBrokerTotal, v))
}

// SplitBrokerTotalGTE applies the GTE predicate on the "split_broker_total" field.
func SplitBrokerTotalGTE(v decimal.Decimal) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldGTE(FieldSplitBrokerTotal, v))
}

// SplitBrokerTotalLT applies the LT predicate on the "split_broker_total" field.
func SplitBrokerTotalLT(v decimal.Decimal) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldLT(FieldSplitBrokerTotal, v))
}

// SplitBrokerTotalLTE applies the LTE predicate on the "split_broker_total" field.
func SplitBrokerTotalLTE(v decimal.Decimal) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldLTE(FieldSplitBrokerTotal, v))
}

// PaidEQ applies the EQ predicate on the "paid" field.
func PaidEQ(v bool) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldEQ(FieldPaid, v))
}

// PaidNEQ applies the NEQ predicate on the "paid" field.
func PaidNEQ(v bool) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldNEQ(FieldPaid, v))
}

// PaidDateEQ applies the EQ predicate on the "paid_date" field.
func PaidDateEQ(v time.Time) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldEQ(FieldPaidDate, v))
}

// PaidDateNEQ applies the NEQ predicate on the "paid_date" field.
func PaidDateNEQ(v time.Time) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldNEQ(FieldPaidDate, v))
}

// PaidDateIn applies the In predicate on the "paid_date" field.
func PaidDateIn(vs ...time.Time) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldIn(FieldPaidDate, vs...))
}

// PaidDateNotIn applies the NotIn predicate on the "paid_date" field.
func PaidDateNotIn(vs ...time.Time) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldNotIn(FieldPaidDate, vs...))
}

// PaidDateGT applies the GT predicate on the "paid_date" field.
func PaidDateGT(v time.Time) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldGT(FieldPaidDate, v))
}

// PaidDateGTE applies the GTE predicate on the "paid_date" field.
func PaidDateGTE(v time.Time) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldGTE(FieldPaidDate, v))
}

// PaidDateLT applies the LT predicate on the "paid_date" field.
func PaidDateLT(v time.Time) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldLT(FieldPaidDate, v))
}

// PaidDateLTE applies the LTE predicate on the "paid_date" field.
func PaidDateLTE(v time.Time) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldLTE(FieldPaidDate, v))
}

// PaidDateIsNil applies the IsNil predicate on the "paid_date" field.
func PaidDateIsNil() predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldIsNull(FieldPaidDate))
}

// PaidDateNotNil applies the NotNil predicate on the "paid_date" field.
func PaidDateNotNil() predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.FieldNotNull(FieldPaidDate))
}

// HasPayment applies the HasEdge predicate on the "payment" edge.
func HasPayment() predicate.PaymentSplit {
	return predicate.PaymentSplit(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PaymentTable, PaymentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPaymentWith applies the HasEdge predicate on the "payment" edge with a given conditions (other predicates).
func HasPaymentWith(preds ...predicate.Payment) predicate.PaymentSplit {
	return predicate.PaymentSplit(func(s *sql.Selector) {
		step := newPaymentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasBroker applies the HasEdge predicate on the "broker" edge.
func HasBroker() predicate.PaymentSplit {
	return predicate.PaymentSplit(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, BrokerTable, BrokerColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBrokerWith applies the HasEdge predicate on the "broker" edge with a given conditions (other predicates).
func HasBrokerWith(preds ...predicate.Broker) predicate.PaymentSplit {
	return predicate.PaymentSplit(func(s *sql.Selector) {
		step := newBrokerStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PaymentSplit) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PaymentSplit) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PaymentSplit) predicate.PaymentSplit {
	return predicate.PaymentSplit(sql.NotPredicates(p))
}
