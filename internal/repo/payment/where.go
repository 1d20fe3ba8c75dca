// Code generated by ent, DO NOT EDIT.

package payment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/oculusgrp/dealdesk_backend/internal/repo/predicate"
	"github.com/shopspring/decimal"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Payment {
	return predicate.Payment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Payment {
	return predicate.Payment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Payment {
	return predicate.Payment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Payment {
	return predicate.Payment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Payment {
	return predicate.Payment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Payment {
	return predicate.Payment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Payment {
	return predicate.Payment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Payment {
	return predicate.Payment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Payment {
	return predicate.Payment(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldEQ(FieldUpdatedAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldEQ(FieldDeletedAt, v))
}

// DealID applies equality check predicate on the "deal_id" field. It's identical to DealIDEQ.
func DealID(v uuid.UUID) predicate.Payment {
	return predicate.Payment(sql.FieldEQ(FieldDealID, v))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int) predicate.Payment {
	return predicate.Payment(sql.FieldEQ(FieldSequence, v))
}

// PaymentAmount applies equality check predicate on the "payment_amount" field. It's identical to PaymentAmountEQ.
func PaymentAmount(v decimal.Decimal) predicate.Payment {
	return predicate.Payment(sql.FieldEQ(FieldPaymentAmount, v))
}

// AmountOverride applies equality check predicate on the "amount_override" field. It's identical to AmountOverrideEQ.
func AmountOverride(v bool) predicate.Payment {
	return predicate.Payment(sql.FieldEQ(FieldAmountOverride, v))
}

// Agci applies equality check predicate on the "agci" field. It's identical to AgciEQ.
func Agci(v decimal.Decimal) predicate.Payment {
	return predicate.Payment(sql.FieldEQ(FieldAgci, v))
}

// ReferralFeeUsd applies equality check predicate on the "referral_fee_usd" field. It's identical to ReferralFeeUsdEQ.
func ReferralFeeUsd(v decimal.Decimal) predicate.Payment {
	return predicate.Payment(sql.FieldEQ(FieldReferralFeeUsd, v))
}

// ReferralFeePercentOverride applies equality check predicate on the "referral_fee_percent_override" field. It's identical to ReferralFeePercentOverrideEQ.
func ReferralFeePercentOverride(v decimal.Decimal) predicate.Payment {
	return predicate.Payment(sql.FieldEQ(FieldReferralFeePercentOverride, v))
}

// PaymentDate applies equality check predicate on the "payment_date" field. It's identical to PaymentDateEQ.
func PaymentDate(v time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldEQ(FieldPaymentDate, v))
}

// PaymentReceived applies equality check predicate on the "payment_received" field. It's identical to PaymentReceivedEQ.
func PaymentReceived(v bool) predicate.Payment {
	return predicate.Payment(sql.FieldEQ(FieldPaymentReceived, v))
}

// ReceivedDate applies equality check predicate on the "received_date" field. It's identical to ReceivedDateEQ.
func ReceivedDate(v time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldEQ(FieldReceivedDate, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.Payment {
	return predicate.Payment(sql.FieldEQ(FieldIsActive, v))
}

// CommissionVersion applies equality check predicate on the "commission_version" field. It's identical to CommissionVersionEQ.
func CommissionVersion(v int) predicate.Payment {
	return predicate.Payment(sql.FieldEQ(FieldCommissionVersion, v))
}

// InvoiceNumber applies equality check predicate on the "invoice_number" field. It's identical to InvoiceNumberEQ.
func InvoiceNumber(v string) predicate.Payment {
	return predicate.Payment(sql.FieldEQ(FieldInvoiceNumber, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldLTE(FieldUpdatedAt, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.Payment {
	return predicate.Payment(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.Payment {
	return predicate.Payment(sql.FieldNotNull(FieldDeletedAt))
}

// DealIDEQ applies the EQ predicate on the "deal_id" field.
func DealIDEQ(v uuid.UUID) predicate.Payment {
	return predicate.Payment(sql.FieldEQ(FieldDealID, v))
}

// DealIDNEQ applies the NEQ predicate on the "deal_id" field.
func DealIDNEQ(v uuid.UUID) predicate.Payment {
	return predicate.Payment(sql.FieldNEQ(FieldDealID, v))
}

// DealIDIn applies the In predicate on the "deal_id" field.
func DealIDIn(vs ...uuid.UUID) predicate.Payment {
	return predicate.Payment(sql.FieldIn(FieldDealID, vs...))
}

// DealIDNotIn applies the NotIn predicate on the "deal_id" field.
func DealIDNotIn(vs ...uuid.UUID) predicate.Payment {
	return predicate.Payment(sql.FieldNotIn(FieldDealID, vs...))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int) predicate.Payment {
	return predicate.Payment(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int) predicate.Payment {
	return predicate.Payment(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int) predicate.Payment {
	return predicate.Payment(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int) predicate.Payment {
	return predicate.Payment(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int) predicate.Payment {
	return predicate.Payment(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int) predicate.Payment {
	return predicate.Payment(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int) predicate.Payment {
	return predicate.Payment(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int) predicate.Payment {
	return predicate.Payment(sql.FieldLTE(FieldSequence, v))
}

// PaymentAmountEQ applies the EQ predicate on the "payment_amount" field.
func PaymentAmountEQ(v decimal.Decimal) predicate.Payment {
	return predicate.Payment(sql.FieldEQ(FieldPaymentAmount, v))
}

// PaymentAmountNEQ applies the NEQ predicate on the "payment_amount" field.
func PaymentAmountNEQ(v decimal.Decimal) predicate.Payment {
	return predicate.Payment(sql.FieldNEQ(FieldPaymentAmount, v))
}

// PaymentAmountIn applies the In predicate on the "payment_amount" field.
func PaymentAmountIn(vs ...decimal.Decimal) predicate.Payment {
	return predicate.Payment(sql.FieldIn(FieldPaymentAmount, vs...))
}

// PaymentAmountNotIn applies the NotIn predicate on the "payment_amount" field.
func PaymentAmountNotIn(vs ...decimal.Decimal) predicate.Payment {
	return predicate.Payment(sql.FieldNotIn(FieldPaymentAmount, vs...))
}

// PaymentAmountGT applies the GT predicate on the "payment_amount" field.
func PaymentAmountGT(v decimal.Decimal) predicate.Payment {
	return predicate.Payment(sql.FieldGT(FieldPaymentAmount, v))
}

// PaymentAmountGTE applies the GTE predicate on the "payment_amount" field.
func PaymentAmountGTE(v decimal.Decimal) predicate.Payment {
	return predicate.Payment(sql.FieldGTE(FieldPaymentAmount, v))
}

// PaymentAmountLT applies the LT predicate on the "payment_amount" field.
func PaymentAmountLT(v decimal.Decimal) predicate.Payment {
	return predicate.Payment(sql.FieldLT(FieldPaymentAmount, v))
}

// PaymentAmountLTE applies the LTE predicate on the "payment_amount" field.
func PaymentAmountLTE(v decimal.Decimal) predicate.Payment {
	return predicate.Payment(sql.FieldLTE(FieldPaymentAmount, v))
}

// AmountOverrideEQ applies the EQ predicate on the "amount_override" field.
func AmountOverrideEQ(v bool) predicate.Payment {
	return predicate.Payment(sql.FieldEQ(FieldAmountOverride, v))
}

// AmountOverrideNEQ applies the NEQ predicate on the "amount_override" field.
func AmountOverrideNEQ(v bool) predicate.Payment {
	return predicate.Payment(sql.FieldNEQ(FieldAmountOverride, v))
}

// AgciEQ applies the EQ predicate on the "agci" field.
func AgciEQ(v decimal.Decimal) predicate.Payment {
	return predicate.Payment(sql.FieldEQ(FieldAgci, v))
}

// AgciNEQ applies the NEQ predicate on the "agci" field.
func AgciNEQ(v decimal.Decimal) predicate.Payment {
	return predicate.Payment(sql.FieldNEQ(FieldAgci, v))
}

// AgciIn applies the In predicate on the "agci" field.
func AgciIn(vs ...decimal.Decimal) predicate.Payment {
	return predicate.Payment(sql.FieldIn(FieldAgci, vs...))
}

// AgciNotIn applies the NotIn predicate on the "agci" field.
func AgciNotIn(vs ...decimal.Decimal) predicate.Payment {
	return predicate.Payment(sql.FieldNotIn(FieldAgci, vs...))
}

// AgciGT applies the GT predicate on the "agci" field.
func AgciGT(v decimal.Decimal) predicate.Payment {
	return predicate.Payment(sql.FieldGT(FieldAgci, v))
}

// AgciGTE applies the GTE predicate on the "agci" field.
func AgciGTE(v decimal.Decimal) predicate.Payment {
	return predicate.Payment(sql.FieldGTE(FieldAgci, v))
}

// AgciLT applies the LT predicate on the "agci" field.
func AgciLT(v decimal.Decimal) predicate.Payment {
	return predicate.Payment(sql.FieldLT(FieldAgci, v))
}

// AgciLTE applies the LTE predicate on the "agci" field.
func AgciLTE(v decimal.Decimal) predicate.Payment {
	return predicate.Payment(sql.FieldLTE(FieldAgci, v))
}

// ReferralFeeUsdEQ applies the EQ predicate on the "referral_fee_usd" field.
func ReferralFeeUsdEQ(v decimal.Decimal) predicate.Payment {
	return predicate.Payment(sql.FieldEQ(FieldReferralFeeUsd, v))
}

// ReferralFeeUsdNEQ applies the NEQ predicate on the "referral_fee_usd" field.
func ReferralFeeUsdNEQ(v decimal.Decimal) predicate.Payment {
	return predicate.Payment(sql.FieldNEQ(FieldReferralFeeUsd, v))
}

// ReferralFeeUsdIn applies the In predicate on the "referral_fee_usd" field.
func ReferralFeeUsdIn(vs ...decimal.Decimal) predicate.Payment {
	return predicate.Payment(sql.FieldIn(FieldReferralFeeUsd, vs...))
}

// ReferralFeeUsdNotIn applies the NotIn predicate on the "referral_fee_usd" field.
func ReferralFeeUsdNotIn(vs ...decimal.Decimal) predicate.Payment {
	return predicate.Payment(sql.FieldNotIn(FieldReferralFeeUsd, vs...))
}

// ReferralFeeUsdGT applies the GT predicate on the "referral_fee_usd" field.
func ReferralFeeUsdGT(v decimal.Decimal) predicate.Payment {
	return predicate.Payment(sql.FieldGT(FieldReferralFeeUsd, v))
}

// ReferralFeeUsdGTE applies the GTE predicate on the "referral_fee_usd" field.
func ReferralFeeUsdGTE(v decimal.Decimal) predicate.Payment {
	return predicate.Payment(sql.FieldGTE(FieldReferralFeeUsd, v))
}

// ReferralFeeUsdLT applies the LT predicate on the "referral_fee_usd" field.
func ReferralFeeUsdLT(v decimal.Decimal) predicate.Payment {
	return predicate.Payment(sql.FieldLT(FieldReferralFeeUsd, v))
}

// ReferralFeeUsdLTE applies the LTE predicate on the "referral_fee_usd" field.
func ReferralFeeUsdLTE(v decimal.Decimal) predicate.Payment {
	return predicate.Payment(sql.FieldLTE(FieldReferralFeeUsd, v))
}

// ReferralFeePercentOverrideEQ applies the EQ predicate on the "referral_fee_percent_override" field.
func ReferralFeePercentOverrideEQ(v decimal.Decimal) predicate.Payment {
	return predicate.Payment(sql.FieldEQ(FieldReferralFeePercentOverride, v))
}

// ReferralFeePercentOverrideNEQ applies the NEQ predicate on the "referral_fee_percent_override" field.
func ReferralFeePercentOverrideNEQ(v decimal.Decimal) predicate.Payment {
	return predicate.Payment(sql.FieldNEQ(FieldReferralFeePercentOverride, v))
}

// ReferralFeePercentOverrideIn applies the In predicate on the "referral_fee_percent_override" field.
func ReferralFeePercentOverrideIn(vs ...decimal.Decimal) predicate.Payment {
	return predicate.Payment(sql.FieldIn(FieldReferralFeePercentOverride, vs...))
}

// ReferralFeePercentOverrideNotIn applies the NotIn predicate on the "referral_fee_percent_override" field.
func ReferralFeePercentOverrideNotIn(vs ...decimal.Decimal) predicate.Payment {
	return predicate.Payment(sql.FieldNotIn(FieldReferralFeePercentOverride, vs...))
}

// ReferralFeePercentOverrideGT applies the GT predicate on the "referral_fee_percent_override" field.
func ReferralFeePercentOverrideGT(v decimal.Decimal) predicate.Payment {
	return predicate.Payment(sql.FieldGT(FieldReferralFeePercentOverride, v))
}

// ReferralFeePercentOverrideGTE applies the GTE predicate on the "referral_fee_percent_override" field.
func ReferralFeePercentOverrideGTE(v decimal.Decimal) predicate.Payment {
	return predicate.Payment(sql.FieldGTE(FieldReferralFeePercentOverride, v))
}

// ReferralFeePercentOverrideLT applies the LT predicate on the "referral_fee_percent_override" field.
func ReferralFeePercentOverrideLT(v decimal.Decimal) predicate.Payment {
	return predicate.Payment(sql.FieldLT(FieldReferralFeePercentOverride, v))
}

// ReferralFeePercentOverrideLTE applies the LTE predicate on the "referral_fee_percent_override" field.
func ReferralFeePercentOverrideLTE(v decimal.Decimal) predicate.Payment {
	return predicate.Payment(sql.FieldLTE(FieldReferralFeePercentOverride, v))
}

// ReferralFeePercentOverrideIsNil applies the IsNil predicate on the "referral_fee_percent_override" field.
func ReferralFeePercentOverrideIsNil() predicate.Payment {
	return predicate.Payment(sql.FieldIsNull(FieldReferralFeePercentOverride))
}

// ReferralFeePercentOverrideNotNil applies the NotNil predicate on the "referral_fee_percent_override" field.
func ReferralFeePercentOverrideNotNil() predicate.Payment {
	return predicate.Payment(sql.FieldNotNull(FieldReferralFeePercentOverride))
}

// PaymentDateEQ applies the EQ predicate on the "payment_date" field.
func PaymentDateEQ(v time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldEQ(FieldPaymentDate, v))
}

// PaymentDateNEQ applies the NEQ predicate on the "payment_date" field.
func PaymentDateNEQ(v time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldNEQ(FieldPaymentDate, v))
}

// PaymentDateIn applies the In predicate on the "payment_date" field.
func PaymentDateIn(vs ...time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldIn(FieldPaymentDate, vs...))
}

// PaymentDateNotIn applies the NotIn predicate on the "payment_date" field.
func PaymentDateNotIn(vs ...time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldNotIn(FieldPaymentDate, vs...))
}

// PaymentDateGT applies the GT predicate on the "payment_date" field.
func PaymentDateGT(v time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldGT(FieldPaymentDate, v))
}

// PaymentDateGTE applies the GTE predicate on the "payment_date" field.
func PaymentDateGTE(v time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldGTE(FieldPaymentDate, v))
}

// PaymentDateLT applies the LT predicate on the "payment_date" field.
func PaymentDateLT(v time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldLT(FieldPaymentDate, v))
}

// PaymentDateLTE applies the LTE predicate on the "payment_date" field.
func PaymentDateLTE(v time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldLTE(FieldPaymentDate, v))
}

// PaymentDateIsNil applies the IsNil predicate on the "payment_date" field.
func PaymentDateIsNil() predicate.Payment {
	return predicate.Payment(sql.FieldIsNull(FieldPaymentDate))
}

// PaymentDateNotNil applies the NotNil predicate on the "payment_date" field.
func PaymentDateNotNil() predicate.Payment {
	return predicate.Payment(sql.FieldNotNull(FieldPaymentDate))
}

// PaymentReceivedEQ applies the EQ predicate on the "payment_received" field.
func PaymentReceivedEQ(v bool) predicate.Payment {
	return predicate.Payment(sql.FieldEQ(FieldPaymentReceived, v))
}

// PaymentReceivedNEQ applies the NEQ predicate on the "payment_received" field.
func PaymentReceivedNEQ(v bool) predicate.Payment {
	return predicate.Payment(sql.FieldNEQ(FieldPaymentReceived, v))
}

// ReceivedDateEQ applies the EQ predicate on the "received_date" field.
func ReceivedDateEQ(v time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldEQ(FieldReceivedDate, v))
}

// ReceivedDateNEQ applies the NEQ predicate on the "received_date" field.
func ReceivedDateNEQ(v time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldNEQ(FieldReceivedDate, v))
}

// ReceivedDateIn applies the In predicate on the "received_date" field.
func ReceivedDateIn(vs ...time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldIn(FieldReceivedDate, vs...))
}

// ReceivedDateNotIn applies the NotIn predicate on the "received_date" field.
func ReceivedDateNotIn(vs ...time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldNotIn(FieldReceivedDate, vs...))
}

// ReceivedDateGT applies the GT predicate on the "received_date" field.
func ReceivedDateGT(v time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldGT(FieldReceivedDate, v))
}

// ReceivedDateGTE applies the GTE predicate on the "received_date" field.
func ReceivedDateGTE(v time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldGTE(FieldReceivedDate, v))
}

// ReceivedDateLT applies the LT predicate on the "received_date" field.
func ReceivedDateLT(v time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldLT(FieldReceivedDate, v))
}

// ReceivedDateLTE applies the LTE predicate on the "received_date" field.
func ReceivedDateLTE(v time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldLTE(FieldReceivedDate, v))
}

// ReceivedDateIsNil applies the IsNil predicate on the "received_date" field.
func ReceivedDateIsNil() predicate.Payment {
	return predicate.Payment(sql.FieldIsNull(FieldReceivedDate))
}

// ReceivedDateNotNil applies the NotNil predicate on the "received_date" field.
func ReceivedDateNotNil() predicate.Payment {
	return predicate.Payment(sql.FieldNotNull(FieldReceivedDate))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.Payment {
	return predicate.Payment(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.Payment {
	return predicate.Payment(sql.FieldNEQ(FieldIsActive, v))
}

// CommissionVersionEQ applies the EQ predicate on the "commission_version" field.
func CommissionVersionEQ(v int) predicate.Payment {
	return predicate.Payment(sql.FieldEQ(FieldCommissionVersion, v))
}

// CommissionVersionNEQ applies the NEQ predicate on the "commission_version" field.
func CommissionVersionNEQ(v int) predicate.Payment {
	return predicate.Payment(sql.FieldNEQ(FieldCommissionVersion, v))
}

// CommissionVersionIn applies the In predicate on the "commission_version" field.
func CommissionVersionIn(vs ...int) predicate.Payment {
	return predicate.Payment(sql.FieldIn(FieldCommissionVersion, vs...))
}

// CommissionVersionNotIn applies the NotIn predicate on the "commission_version" field.
func CommissionVersionNotIn(vs ...int) predicate.Payment {
	return predicate.Payment(sql.FieldNotIn(FieldCommissionVersion, vs...))
}

// CommissionVersionGT applies the GT predicate on the "commission_version" field.
func CommissionVersionGT(v int) predicate.Payment {
	return predicate.Payment(sql.FieldGT(FieldCommissionVersion, v))
}

// CommissionVersionGTE applies the GTE predicate on the "commission_version" field.
func CommissionVersionGTE(v int) predicate.Payment {
	return predicate.Payment(sql.FieldGTE(FieldCommissionVersion, v))
}

// CommissionVersionLT applies the LT predicate on the "commission_version" field.
func CommissionVersionLT(v int) predicate.Payment {
	return predicate.Payment(sql.FieldLT(FieldCommissionVersion, v))
}

// CommissionVersionLTE applies the LTE predicate on the "commission_version" field.
func CommissionVersionLTE(v int) predicate.Payment {
	return predicate.Payment(sql.FieldLTE(FieldCommissionVersion, v))
}

// InvoiceNumberEQ applies the EQ predicate on the "invoice_number" field.
func InvoiceNumberEQ(v string) predicate.Payment {
	return predicate.Payment(sql.FieldEQ(FieldInvoiceNumber, v))
}

// InvoiceNumberNEQ applies the NEQ predicate on the "invoice_number" field.
func InvoiceNumberNEQ(v string) predicate.Payment {
	return predicate.Payment(sql.FieldNEQ(FieldInvoiceNumber, v))
}

// InvoiceNumberIn applies the In predicate on the "invoice_number" field.
func InvoiceNumberIn(vs ...string) predicate.Payment {
	return predicate.Payment(sql.FieldIn(FieldInvoiceNumber, vs...))
}

// InvoiceNumberNotIn applies the NotIn predicate on the "invoice_number" field.
func InvoiceNumberNotIn(vs ...string) predicate.Payment {
	return predicate.Payment(sql.FieldNotIn(FieldInvoiceNumber, vs...))
}

// InvoiceNumberGT applies the GT predicate on the "invoice_number" field.
func InvoiceNumberGT(v string) predicate.Payment {
	return predicate.Payment(sql.FieldGT(FieldInvoiceNumber, v))
}

// InvoiceNumberGTE applies the GTE predicate on the "invoice_number" field.
func InvoiceNumberGTE(v string) predicate.Payment {
	return predicate.Payment(sql.FieldGTE(FieldInvoiceNumber, v))
}

// InvoiceNumberLT applies the LT predicate on the "invoice_number" field.
func InvoiceNumberLT(v string) predicate.Payment {
	return predicate.Payment(sql.FieldLT(FieldInvoiceNumber, v))
}

// InvoiceNumberLTE applies the LTE predicate on the "invoice_number" field.
func InvoiceNumberLTE(v string) predicate.Payment {
	return predicate.Payment(sql.FieldLTE(FieldInvoiceNumber, v))
}

// InvoiceNumberContains applies the Contains predicate on the "invoice_number" field.
func InvoiceNumberContains(v string) predicate.Payment {
	return predicate.Payment(sql.FieldContains(FieldInvoiceNumber, v))
}

// InvoiceNumberHasPrefix applies the HasPrefix predicate on the "invoice_number" field.
func InvoiceNumberHasPrefix(v string) predicate.Payment {
	return predicate.Payment(sql.FieldHasPrefix(FieldInvoiceNumber, v))
}

// InvoiceNumberHasSuffix applies the HasSuffix predicate on the "invoice_number" field.
func InvoiceNumberHasSuffix(v string) predicate.Payment {
	return predicate.Payment(sql.FieldHasSuffix(FieldInvoiceNumber, v))
}

// InvoiceNumberIsNil applies the IsNil predicate on the "invoice_number" field.
func InvoiceNumberIsNil() predicate.Payment {
	return predicate.Payment(sql.FieldIsNull(FieldInvoiceNumber))
}

// InvoiceNumberNotNil applies the NotNil predicate on the "invoice_number" field.
func InvoiceNumberNotNil() predicate.Payment {
	return predicate.Payment(sql.FieldNotNull(FieldInvoiceNumber))
}

// InvoiceNumberEqualFold applies the EqualFold predicate on the "invoice_number" field.
func InvoiceNumberEqualFold(v string) predicate.Payment {
	return predicate.Payment(sql.FieldEqualFold(FieldInvoiceNumber, v))
}

// InvoiceNumberContainsFold applies the ContainsFold predicate on the "invoice_number" field.
func InvoiceNumberContainsFold(v string) predicate.Payment {
	return predicate.Payment(sql.FieldContainsFold(FieldInvoiceNumber, v))
}

// HasDeal applies the HasEdge predicate on the "deal" edge.
func HasDeal() predicate.Payment {
	return predicate.Payment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DealTable, DealColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDealWith applies the HasEdge predicate on the "deal" edge with a given conditions (other predicates).
func HasDealWith(preds ...predicate.Deal) predicate.Payment {
	return predicate.Payment(func(s *sql.Selector) {
		step := newDealStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSplits applies the HasEdge predicate on the "splits" edge.
func HasSplits() predicate.Payment {
	return predicate.Payment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SplitsTable, SplitsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSplitsWith applies the HasEdge predicate on the "splits" edge with a given conditions (other predicates).
func HasSplitsWith(preds ...predicate.PaymentSplit) predicate.Payment {
	return predicate.Payment(func(s *sql.Selector) {
		step := newSplitsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Payment) predicate.Payment {
	return predicate.Payment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Payment) predicate.Payment {
	return predicate.Payment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Payment) predicate.Payment {
	return predicate.Payment(sql.NotPredicates(p))
}
