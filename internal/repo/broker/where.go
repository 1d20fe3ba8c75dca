// Code generated by ent, DO NOT EDIT.

package broker

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/oculusgrp/dealdesk_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Broker {
	return predicate.Broker(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Broker {
	return predicate.Broker(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Broker {
	return predicate.Broker(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Broker {
	return predicate.Broker(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Broker {
	return predicate.Broker(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Broker {
	return predicate.Broker(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Broker {
	return predicate.Broker(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Broker {
	return predicate.Broker(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Broker {
	return predicate.Broker(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Broker {
	return predicate.Broker(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Broker {
	return predicate.Broker(sql.FieldEQ(FieldUpdatedAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.Broker {
	return predicate.Broker(sql.FieldEQ(FieldDeletedAt, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.Broker {
	return predicate.Broker(sql.FieldEQ(FieldUserID, v))
}

// DisplayName applies equality check predicate on the "display_name" field. It's identical to DisplayNameEQ.
func DisplayName(v string) predicate.Broker {
	return predicate.Broker(sql.FieldEQ(FieldDisplayName, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.Broker {
	return predicate.Broker(sql.FieldEQ(FieldEmail, v))
}

// Phone applies equality check predicate on the "phone" field. It's identical to PhoneEQ.
func Phone(v string) predicate.Broker {
	return predicate.Broker(sql.FieldEQ(FieldPhone, v))
}

// BankAccountEncrypted applies equality check predicate on the "bank_account_encrypted" field. It's identical to BankAccountEncryptedEQ.
func BankAccountEncrypted(v string) predicate.Broker {
	return predicate.Broker(sql.FieldEQ(FieldBankAccountEncrypted, v))
}

// BankAccountHash applies equality check predicate on the "bank_account_hash" field. It's identical to BankAccountHashEQ.
func BankAccountHash(v string) predicate.Broker {
	return predicate.Broker(sql.FieldEQ(FieldBankAccountHash, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.Broker {
	return predicate.Broker(sql.FieldEQ(FieldIsActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Broker {
	return predicate.Broker(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Broker {
	return predicate.Broker(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Broker {
	return predicate.Broker(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Broker {
	return predicate.Broker(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Broker {
	return predicate.Broker(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Broker {
	return predicate.Broker(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Broker {
	return predicate.Broker(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Broker {
	return predicate.Broker(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Broker {
	return predicate.Broker(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Broker {
	return predicate.Broker(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Broker {
	return predicate.Broker(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Broker {
	return predicate.Broker(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Broker {
	return predicate.Broker(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Broker {
	return predicate.Broker(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Broker {
	return predicate.Broker(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Broker {
	return predicate.Broker(sql.FieldLTE(FieldUpdatedAt, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.Broker {
	return predicate.Broker(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.Broker {
	return predicate.Broker(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.Broker {
	return predicate.Broker(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.Broker {
	return predicate.Broker(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.Broker {
	return predicate.Broker(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.Broker {
	return predicate.Broker(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.Broker {
	return predicate.Broker(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.Broker {
	return predicate.Broker(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.Broker {
	return predicate.Broker(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.Broker {
	return predicate.Broker(sql.FieldNotNull(FieldDeletedAt))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.Broker {
	return predicate.Broker(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.Broker {
	return predicate.Broker(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.Broker {
	return predicate.Broker(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.Broker {
	return predicate.Broker(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v uuid.UUID) predicate.Broker {
	return predicate.Broker(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v uuid.UUID) predicate.Broker {
	return predicate.Broker(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v uuid.UUID) predicate.Broker {
	return predicate.Broker(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v uuid.UUID) predicate.Broker {
	return predicate.Broker(sql.FieldLTE(FieldUserID, v))
}

// UserIDIsNil applies the IsNil predicate on the "user_id" field.
func UserIDIsNil() predicate.Broker {
	return predicate.Broker(sql.FieldIsNull(FieldUserID))
}

// UserIDNotNil applies the NotNil predicate on the "user_id" field.
func UserIDNotNil() predicate.Broker {
	return predicate.Broker(sql.FieldNotNull(FieldUserID))
}

// DisplayNameEQ applies the EQ predicate on the "display_name" field.
func DisplayNameEQ(v string) predicate.Broker {
	return predicate.Broker(sql.FieldEQ(FieldDisplayName, v))
}

// DisplayNameNEQ applies the NEQ predicate on the "display_name" field.
func DisplayNameNEQ(v string) predicate.Broker {
	return predicate.Broker(sql.FieldNEQ(FieldDisplayName, v))
}

// DisplayNameIn applies the In predicate on the "display_name" field.
func DisplayNameIn(vs ...string) predicate.Broker {
	return predicate.Broker(sql.FieldIn(FieldDisplayName, vs...))
}

// DisplayNameNotIn applies the NotIn predicate on the "display_name" field.
func DisplayNameNotIn(vs ...string) predicate.Broker {
	return predicate.Broker(sql.FieldNotIn(FieldDisplayName, vs...))
}

// DisplayNameGT applies the GT predicate on the "display_name" field.
func DisplayNameGT(v string) predicate.Broker {
	return predicate.Broker(sql.FieldGT(FieldDisplayName, v))
}

// DisplayNameGTE applies the GTE predicate on the "display_name" field.
func DisplayNameGTE(v string) predicate.Broker {
	return predicate.Broker(sql.FieldGTE(FieldDisplayName, v))
}

// DisplayNameLT applies the LT predicate on the "display_name" field.
func DisplayNameLT(v string) predicate.Broker {
	return predicate.Broker(sql.FieldLT(FieldDisplayName, v))
}

// DisplayNameLTE applies the LTE predicate on the "display_name" field.
func DisplayNameLTE(v string) predicate.Broker {
	return predicate.Broker(sql.FieldLTE(FieldDisplayName, v))
}

// DisplayNameContains applies the Contains predicate on the "display_name" field.
func DisplayNameContains(v string) predicate.Broker {
	return predicate.Broker(sql.FieldContains(FieldDisplayName, v))
}

// DisplayNameHasPrefix applies the HasPrefix predicate on the "display_name" field.
func DisplayNameHasPrefix(v string) predicate.Broker {
	return predicate.Broker(sql.FieldHasPrefix(FieldDisplayName, v))
}

// DisplayNameHasSuffix applies the HasSuffix predicate on the "display_name" field.
func DisplayNameHasSuffix(v string) predicate.Broker {
	return predicate.Broker(sql.FieldHasSuffix(FieldDisplayName, v))
}

// DisplayNameEqualFold applies the EqualFold predicate on the "display_name" field.
func DisplayNameEqualFold(v string) predicate.Broker {
	return predicate.Broker(sql.FieldEqualFold(FieldDisplayName, v))
}

// DisplayNameContainsFold applies the ContainsFold predicate on the "display_name" field.
func DisplayNameContainsFold(v string) predicate.Broker {
	return predicate.Broker(sql.FieldContainsFold(FieldDisplayName, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.Broker {
	return predicate.Broker(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.Broker {
	return predicate.Broker(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.Broker {
	return predicate.Broker(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.Broker {
	return predicate.Broker(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.Broker {
	return predicate.Broker(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.Broker {
	return predicate.Broker(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.Broker {
	return predicate.Broker(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.Broker {
	return predicate.Broker(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.Broker {
	return predicate.Broker(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.Broker {
	return predicate.Broker(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.Broker {
	return predicate.Broker(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailIsNil applies the IsNil predicate on the "email" field.
func EmailIsNil() predicate.Broker {
	return predicate.Broker(sql.FieldIsNull(FieldEmail))
}

// EmailNotNil applies the NotNil predicate on the "email" field.
func EmailNotNil() predicate.Broker {
	return predicate.Broker(sql.FieldNotNull(FieldEmail))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.Broker {
	return predicate.Broker(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.Broker {
	return predicate.Broker(sql.FieldContainsFold(FieldEmail, v))
}

// PhoneEQ applies the EQ predicate on the "phone" field.
func PhoneEQ(v string) predicate.Broker {
	return predicate.Broker(sql.FieldEQ(FieldPhone, v))
}

// PhoneNEQ applies the NEQ predicate on the "phone" field.
func PhoneNEQ(v string) predicate.Broker {
	return predicate.Broker(sql.FieldNEQ(FieldPhone, v))
}

// PhoneIn applies the In predicate on the "phone" field.
func PhoneIn(vs ...string) predicate.Broker {
	return predicate.Broker(sql.FieldIn(FieldPhone, vs...))
}

// PhoneNotIn applies the NotIn predicate on the "phone" field.
func PhoneNotIn(vs ...string) predicate.Broker {
	return predicate.Broker(sql.FieldNotIn(FieldPhone, vs...))
}

// PhoneGT applies the GT predicate on the "phone" field.
func PhoneGT(v string) predicate.Broker {
	return predicate.Broker(sql.FieldGT(FieldPhone, v))
}

// PhoneGTE applies the GTE predicate on the "phone" field.
func PhoneGTE(v string) predicate.Broker {
	return predicate.Broker(sql.FieldGTE(FieldPhone, v))
}

// PhoneLT applies the LT predicate on the "phone" field.
func PhoneLT(v string) predicate.Broker {
	return predicate.Broker(sql.FieldLT(FieldPhone, v))
}

// PhoneLTE applies the LTE predicate on the "phone" field.
func PhoneLTE(v string) predicate.Broker {
	return predicate.Broker(sql.FieldLTE(FieldPhone, v))
}

// PhoneContains applies the Contains predicate on the "phone" field.
func PhoneContains(v string) predicate.Broker {
	return predicate.Broker(sql.FieldContains(FieldPhone, v))
}

// PhoneHasPrefix applies the HasPrefix predicate on the "phone" field.
func PhoneHasPrefix(v string) predicate.Broker {
	return predicate.Broker(sql.FieldHasPrefix(FieldPhone, v))
}

// PhoneHasSuffix applies the HasSuffix predicate on the "phone" field.
func PhoneHasSuffix(v string) predicate.Broker {
	return predicate.Broker(sql.FieldHasSuffix(FieldPhone, v))
}

// PhoneIsNil applies the IsNil predicate on the "phone" field.
func PhoneIsNil() predicate.Broker {
	return predicate.Broker(sql.FieldIsNull(FieldPhone))
}

// PhoneNotNil applies the NotNil predicate on the "phone" field.
func PhoneNotNil() predicate.Broker {
	return predicate.Broker(sql.FieldNotNull(FieldPhone))
}

// PhoneEqualFold applies the EqualFold predicate on the "phone" field.
func PhoneEqualFold(v string) predicate.Broker {
	return predicate.Broker(sql.FieldEqualFold(FieldPhone, v))
}

// PhoneContainsFold applies the ContainsFold predicate on the "phone" field.
func PhoneContainsFold(v string) predicate.Broker {
	return predicate.Broker(sql.FieldContainsFold(FieldPhone, v))
}

// BankAccountEncryptedEQ applies the EQ predicate on the "bank_account_encrypted" field.
func BankAccountEncryptedEQ(v string) predicate.Broker {
	return predicate.Broker(sql.FieldEQ(FieldBankAccountEncrypted, v))
}

// BankAccountEncryptedNEQ applies the NEQ predicate on the "bank_account_encrypted" field.
func BankAccountEncryptedNEQ(v string) predicate.Broker {
	return predicate.Broker(sql.FieldNEQ(FieldBankAccountEncrypted, v))
}

// BankAccountEncryptedIn applies the In predicate on the "bank_account_encrypted" field.
func BankAccountEncryptedIn(vs ...string) predicate.Broker {
	return predicate.Broker(sql.FieldIn(FieldBankAccountEncrypted, vs...))
}

// BankAccountEncryptedNotIn applies the NotIn predicate on the "bank_account_encrypted" field.
func BankAccountEncryptedNotIn(vs ...string) predicate.Broker {
	return predicate.Broker(sql.FieldNotIn(FieldBankAccountEncrypted, vs...))
}

// BankAccountEncryptedGT applies the GT predicate on the "bank_account_encrypted" field.
func BankAccountEncryptedGT(v string) predicate.Broker {
	return predicate.Broker(sql.FieldGT(FieldBankAccountEncrypted, v))
}

// BankAccountEncryptedGTE applies the GTE predicate on the "bank_account_encrypted" field.
func BankAccountEncryptedGTE(v string) predicate.Broker {
	return predicate.Broker(sql.FieldGTE(FieldBankAccountEncrypted, v))
}

// BankAccountEncryptedLT applies the LT predicate on the "bank_account_encrypted" field.
func BankAccountEncryptedLT(v string) predicate.Broker {
	return predicate.Broker(sql.FieldLT(FieldBankAccountEncrypted, v))
}

// BankAccountEncryptedLTE applies the LTE predicate on the "bank_account_encrypted" field.
func BankAccountEncryptedLTE(v string) predicate.Broker {
	return predicate.Broker(sql.FieldLTE(FieldBankAccountEncrypted, v))
}

// BankAccountEncryptedContains applies the Contains predicate on the "bank_account_encrypted" field.
func BankAccountEncryptedContains(v string) predicate.Broker {
	return predicate.Broker(sql.FieldContains(FieldBankAccountEncrypted, v))
}

// BankAccountEncryptedHasPrefix applies the HasPrefix predicate on the "bank_account_encrypted" field.
func BankAccountEncryptedHasPrefix(v string) predicate.Broker {
	return predicate.Broker(sql.FieldHasPrefix(FieldBankAccountEncrypted, v))
}

// BankAccountEncryptedHasSuffix applies the HasSuffix predicate on the "bank_account_encrypted" field.
func BankAccountEncryptedHasSuffix(v string) predicate.Broker {
	return predicate.Broker(sql.FieldHasSuffix(FieldBankAccountEncrypted, v))
}

// BankAccountEncryptedIsNil applies the IsNil predicate on the "bank_account_encrypted" field.
func BankAccountEncryptedIsNil() predicate.Broker {
	return predicate.Broker(sql.FieldIsNull(FieldBankAccountEncrypted))
}

// BankAccountEncryptedNotNil applies the NotNil predicate on the "bank_account_encrypted" field.
func BankAccountEncryptedNotNil() predicate.Broker {
	return predicate.Broker(sql.FieldNotNull(FieldBankAccountEncrypted))
}

// BankAccountEncryptedEqualFold applies the EqualFold predicate on the "bank_account_encrypted" field.
func BankAccountEncryptedEqualFold(v string) predicate.Broker {
	return predicate.Broker(sql.FieldEqualFold(FieldBankAccountEncrypted, v))
}

// BankAccountEncryptedContainsFold applies the ContainsFold predicate on the "bank_account_encrypted" field.
func BankAccountEncryptedContainsFold(v string) predicate.Broker {
	return predicate.Broker(sql.FieldContainsFold(FieldBankAccountEncrypted, v))
}

// BankAccountHashEQ applies the EQ predicate on the "bank_account_hash" field.
func BankAccountHashEQ(v string) predicate.Broker {
	return predicate.Broker(sql.FieldEQ(FieldBankAccountHash, v))
}

// BankAccountHashNEQ applies the NEQ predicate on the "bank_account_hash" field.
func BankAccountHashNEQ(v string) predicate.Broker {
	return predicate.Broker(sql.FieldNEQ(FieldBankAccountHash, v))
}

// BankAccountHashIn applies the In predicate on the "bank_account_hash" field.
func BankAccountHashIn(vs ...string) predicate.Broker {
	return predicate.Broker(sql.FieldIn(FieldBankAccountHash, vs...))
}

// BankAccountHashNotIn applies the NotIn predicate on the "bank_account_hash" field.
func BankAccountHashNotIn(vs ...string) predicate.Broker {
	return predicate.Broker(sql.FieldNotIn(FieldBankAccountHash, vs...))
}

// BankAccountHashGT applies the GT predicate on the "bank_account_hash" field.
func BankAccountHashGT(v string) predicate.Broker {
	return predicate.Broker(sql.FieldGT(FieldBankAccountHash, v))
}

// BankAccountHashGTE applies the GTE predicate on the "bank_account_hash" field.
func BankAccountHashGTE(v string) predicate.Broker {
	return predicate.Broker(sql.FieldGTE(FieldBankAccountHash, v))
}

// BankAccountHashLT applies the LT predicate on the "bank_account_hash" field.
func BankAccountHashLT(v string) predicate.Broker {
	return predicate.Broker(sql.FieldLT(FieldBankAccountHash, v))
}

// BankAccountHashLTE applies the LTE predicate on the "bank_account_hash" field.
func BankAccountHashLTE(v string) predicate.Broker {
	return predicate.Broker(sql.FieldLTE(FieldBankAccountHash, v))
}

// BankAccountHashContains applies the Contains predicate on the "bank_account_hash" field.
func BankAccountHashContains(v string) predicate.Broker {
	return predicate.Broker(sql.FieldContains(FieldBankAccountHash, v))
}

// BankAccountHashHasPrefix applies the HasPrefix predicate on the "bank_account_hash" field.
func BankAccountHashHasPrefix(v string) predicate.Broker {
	return predicate.Broker(sql.FieldHasPrefix(FieldBankAccountHash, v))
}

// BankAccountHashHasSuffix applies the HasSuffix predicate on the "bank_account_hash" field.
func BankAccountHashHasSuffix(v string) predicate.Broker {
	return predicate.Broker(sql.FieldHasSuffix(FieldBankAccountHash, v))
}

// BankAccountHashIsNil applies the IsNil predicate on the "bank_account_hash" field.
func BankAccountHashIsNil() predicate.Broker {
	return predicate.Broker(sql.FieldIsNull(FieldBankAccountHash))
}

// BankAccountHashNotNil applies the NotNil predicate on the "bank_account_hash" field.
func BankAccountHashNotNil() predicate.Broker {
	return predicate.Broker(sql.FieldNotNull(FieldBankAccountHash))
}

// BankAccountHashEqualFold applies the EqualFold predicate on the "bank_account_hash" field.
func BankAccountHashEqualFold(v string) predicate.Broker {
	return predicate.Broker(sql.FieldEqualFold(FieldBankAccountHash, v))
}

// BankAccountHashContainsFold applies the ContainsFold predicate on the "bank_account_hash" field.
func BankAccountHashContainsFold(v string) predicate.Broker {
	return predicate.Broker(sql.FieldContainsFold(FieldBankAccountHash, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.Broker {
	return predicate.Broker(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.Broker {
	return predicate.Broker(sql.FieldNEQ(FieldIsActive, v))
}

// HasDealInterests applies the HasEdge predicate on the "deal_interests" edge.
func HasDealInterests() predicate.Broker {
	return predicate.Broker(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DealInterestsTable, DealInterestsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDealInterestsWith applies the HasEdge predicate on the "deal_interests" edge with a given conditions (other predicates).
func HasDealInterestsWith(preds ...predicate.DealBroker) predicate.Broker {
	return predicate.Broker(func(s *sql.Selector) {
		step := newDealInterestsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPaymentSplits applies the HasEdge predicate on the "payment_splits" edge.
func HasPaymentSplits() predicate.Broker {
	return predicate.Broker(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, PaymentSplitsTable, PaymentSplitsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPaymentSplitsWith applies the HasEdge predicate on the "payment_splits" edge with a given conditions (other predicates).
func HasPaymentSplitsWith(preds ...predicate.PaymentSplit) predicate.Broker {
	return predicate.Broker(func(s *sql.Selector) {
		step := newPaymentSplitsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Broker) predicate.Broker {
	return predicate.Broker(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Broker) predicate.Broker {
	return predicate.Broker(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Broker) predicate.Broker {
	return predicate.Broker(sql.NotPredicates(p))
}
