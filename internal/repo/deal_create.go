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
	"github.com/oculusgrp/dealdesk_backend/internal/repo/customer"
	"github.com/oculusgrp/dealdesk_backend/internal/repo/deal"
	"github.com/oculusgrp/dealdesk_backend/internal/repo/dealbroker"
	"github.com/oculusgrp/dealdesk_backend/internal/repo/payment"
	"github.com/shopspring/decimal"
)

// DealCreate is the builder for creating a Deal entity.
type DealCreate struct {
	config
	mutation *DealMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *DealCreate) SetCreatedAt(v time.Time) *DealCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DealCreate) SetNillableCreatedAt(v *time.Time) *DealCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DealCreate) SetUpdatedAt(v time.Time) *DealCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DealCreate) SetNillableUpdatedAt(v *time.Time) *DealCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *DealCreate) SetDeletedAt(v time.Time) *DealCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *DealCreate) SetNillableDeletedAt(v *time.Time) *DealCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetClientID sets the "client_id" field.
func (_c *DealCreate) SetClientID(v uuid.UUID) *DealCreate {
	_c.mutation.SetClientID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *DealCreate) SetName(v string) *DealCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetPropertyAddress sets the "property_address" field.
func (_c *DealCreate) SetPropertyAddress(v string) *DealCreate {
	_c.mutation.SetPropertyAddress(v)
	return _c
}

// SetNillablePropertyAddress sets the "property_address" field if the given value is not nil.
func (_c *DealCreate) SetNillablePropertyAddress(v *string) *DealCreate {
	if v != nil {
		_c.SetPropertyAddress(*v)
	}
	return _c
}

// SetStage sets the "stage" field.
func (_c *DealCreate) SetStage(v deal.Stage) *DealCreate {
	_c.mutation.SetStage(v)
	return _c
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_c *DealCreate) SetNillableStage(v *deal.Stage) *DealCreate {
	if v != nil {
		_c.SetStage(*v)
	}
	return _c
}

// SetFee sets the "fee" field.
func (_c *DealCreate) SetFee(v decimal.Decimal) *DealCreate {
	_c.mutation.SetFee(v)
	return _c
}

// SetNumberOfPayments sets the "number_of_payments" field.
func (_c *DealCreate) SetNumberOfPayments(v int) *DealCreate {
	_c.mutation.SetNumberOfPayments(v)
	return _c
}

// SetNillableNumberOfPayments sets the "number_of_payments" field if the given value is not nil.
func (_c *DealCreate) SetNillableNumberOfPayments(v *int) *DealCreate {
	if v != nil {
		_c.SetNumberOfPayments(*v)
	}
	return _c
}

// SetAgci sets the "agci" field.
func (_c *DealCreate) SetAgci(v decimal.Decimal) *DealCreate {
	_c.mutation.SetAgci(v)
	return _c
}

// SetOriginationPercent sets the "origination_percent" field.
func (_c *DealCreate) SetOriginationPercent(v decimal.Decimal) *DealCreate {
	_c.mutation.SetOriginationPercent(v)
	return _c
}

// SetSitePercent sets the "site_percent" field.
func (_c *DealCreate) SetSitePercent(v decimal.Decimal) *DealCreate {
	_c.mutation.SetSitePercent(v)
	return _c
}

// SetDealPercent sets the "deal_percent" field.
func (_c *DealCreate) SetDealPercent(v decimal.Decimal) *DealCreate {
	_c.mutation.SetDealPercent(v)
	return _c
}

// SetReferralFeePercent sets the "referral_fee_percent" field.
func (_c *DealCreate) SetReferralFeePercent(v decimal.Decimal) *DealCreate {
	_c.mutation.SetReferralFeePercent(v)
	return _c
}

// SetCommissionVersion sets the "commission_version" field.
func (_c *DealCreate) SetCommissionVersion(v int) *DealCreate {
	_c.mutation.SetCommissionVersion(v)
	return _c
}

// SetNillableCommissionVersion sets the "commission_version" field if the given value is not nil.
func (_c *DealCreate) SetNillableCommissionVersion(v *int) *DealCreate {
	if v != nil {
		_c.SetCommissionVersion(*v)
	}
	return _c
}

// SetClosedDate sets the "closed_date" field.
func (_c *DealCreate) SetClosedDate(v time.Time) *DealCreate {
	_c.mutation.SetClosedDate(v)
	return _c
}

// SetNillableClosedDate sets the "closed_date" field if the given value is not nil.
func (_c *DealCreate) SetNillableClosedDate(v *time.Time) *DealCreate {
	if v != nil {
		_c.SetClosedDate(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DealCreate) SetID(v uuid.UUID) *DealCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DealCreate) SetNillableID(v *uuid.UUID) *DealCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetCustomerID sets the "customer" edge to the Customer entity by ID.
func (_c *DealCreate) SetCustomerID(id uuid.UUID) *DealCreate {
	_c.mutation.SetCustomerID(id)
	return _c
}

// SetCustomer sets the "customer" edge to the Customer entity.
func (_c *DealCreate) SetCustomer(v *Customer) *DealCreate {
	return _c.SetCustomerID(v.ID)
}

// AddPaymentIDs adds the "payments" edge to the Payment entity by IDs.
func (_c *DealCreate) AddPaymentIDs(ids ...uuid.UUID) *DealCreate {
	_c.mutation.AddPaymentIDs(ids...)
	return _c
}

// AddPayments adds the "payments" edges to the Payment entity.
func (_c *DealCreate) AddPayments(v ...*Payment) *DealCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPaymentIDs(ids...)
}

// AddBrokerInterestIDs adds the "broker_interests" edge to the DealBroker entity by IDs.
func (_c *DealCreate) AddBrokerInterestIDs(ids ...uuid.UUID) *DealCreate {
	_c.mutation.AddBrokerInterestIDs(ids...)
	return _c
}

// AddBrokerInterests adds the "broker_interests" edges to the DealBroker entity.
func (_c *DealCreate) AddBrokerInterests(v ...*DealBroker) *DealCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddBrokerInterestIDs(ids...)
}

// Mutation returns the DealMutation object of the builder.
func (_c *DealCreate) Mutation() *DealMutation {
	return _c.mutation
}

// Save creates the Deal in the database.
func (_c *DealCreate) Save(ctx context.Context) (*Deal, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DealCreate) SaveX(ctx context.Context) *Deal {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DealCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DealCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DealCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := deal.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := deal.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Stage(); !ok {
		v := deal.DefaultStage
		_c.mutation.SetStage(v)
	}
	if _, ok := _c.mutation.NumberOfPayments(); !ok {
		v := deal.DefaultNumberOfPayments
		_c.mutation.SetNumberOfPayments(v)
	}
	if _, ok := _c.mutation.CommissionVersion(); !ok {
		v := deal.DefaultCommissionVersion
		_c.mutation.SetCommissionVersion(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := deal.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DealCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Deal.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Deal.updated_at"`)}
	}
	if _, ok := _c.mutation.ClientID(); !ok {
		return &ValidationError{Name: "client_id", err: errors.New(`repo: missing required field "Deal.client_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`repo: missing required field "Deal.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := deal.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Deal.name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.PropertyAddress(); ok {
		if err := deal.PropertyAddressValidator(v); err != nil {
			return &ValidationError{Name: "property_address", err: fmt.Errorf(`repo: validator failed for field "Deal.property_address": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Stage(); !ok {
		return &ValidationError{Name: "stage", err: errors.New(`repo: missing required field "Deal.stage"`)}
	}
	if v, ok := _c.mutation.Stage(); ok {
		if err := deal.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`repo: validator failed for field "Deal.stage": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Fee(); !ok {
		return &ValidationError{Name: "fee", err: errors.New(`repo: missing required field "Deal.fee"`)}
	}
	if _, ok := _c.mutation.NumberOfPayments(); !ok {
		return &ValidationError{Name: "number_of_payments", err: errors.New(`repo: missing required field "Deal.number_of_payments"`)}
	}
	if _, ok := _c.mutation.Agci(); !ok {
		return &ValidationError{Name: "agci", err: errors.New(`repo: missing required field "Deal.agci"`)}
	}
	if _, ok := _c.mutation.OriginationPercent(); !ok {
		return &ValidationError{Name: "origination_percent", err: errors.New(`repo: missing required field "Deal.origination_percent"`)}
	}
	if _, ok := _c.mutation.SitePercent(); !ok {
		return &ValidationError{Name: "site_percent", err: errors.New(`repo: missing required field "Deal.site_percent"`)}
	}
	if _, ok := _c.mutation.DealPercent(); !ok {
		return &ValidationError{Name: "deal_percent", err: errors.New(`repo: missing required field "Deal.deal_percent"`)}
	}
	if _, ok := _c.mutation.ReferralFeePercent(); !ok {
		return &ValidationError{Name: "referral_fee_percent", err: errors.New(`repo: missing required field "Deal.referral_fee_percent"`)}
	}
	if _, ok := _c.mutation.CommissionVersion(); !ok {
		return &ValidationError{Name: "commission_version", err: errors.New(`repo: missing required field "Deal.commission_version"`)}
	}
	if len(_c.mutation.CustomerIDs()) == 0 {
		return &ValidationError{Name: "customer", err: errors.New(`repo: missing required edge "Deal.customer"`)}
	}
	return nil
}

func (_c *DealCreate) sqlSave(ctx context.Context) (*Deal, error) {
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

func (_c *DealCreate) createSpec() (*Deal, *sqlgraph.CreateSpec) {
	var (
		_node = &Deal{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(deal.Table, sqlgraph.NewFieldSpec(deal.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(deal.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(deal.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(deal.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(deal.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.PropertyAddress(); ok {
		_spec.SetField(deal.FieldPropertyAddress, field.TypeString, value)
		_node.PropertyAddress = &value
	}
	if value, ok := _c.mutation.Stage(); ok {
		_spec.SetField(deal.FieldStage, field.TypeEnum, value)
		_node.Stage = value
	}
	if value, ok := _c.mutation.Fee(); ok {
		_spec.SetField(deal.FieldFee, field.TypeFloat64, value)
		_node.Fee = value
	}
	if value, ok := _c.mutation.NumberOfPayments(); ok {
		_spec.SetField(deal.FieldNumberOfPayments, field.TypeInt, value)
		_node.NumberOfPayments = value
	}
	if value, ok := _c.mutation.Agci(); ok {
		_spec.SetField(deal.FieldAgci, field.TypeFloat64, value)
		_node.Agci = value
	}
	if value, ok := _c.mutation.OriginationPercent(); ok {
		_spec.SetField(deal.FieldOriginationPercent, field.TypeFloat64, value)
		_node.OriginationPercent = value
	}
	if value, ok := _c.mutation.SitePercent(); ok {
		_spec.SetField(deal.FieldSitePercent, field.TypeFloat64, value)
		_node.SitePercent = value
	}
	if value, ok := _c.mutation.DealPercent(); ok {
		_spec.SetField(deal.FieldDealPercent, field.TypeFloat64, value)
		_node.DealPercent = value
	}
	if value, ok := _c.mutation.ReferralFeePercent(); ok {
		_spec.SetField(deal.FieldReferralFeePercent, field.TypeFloat64, value)
		_node.ReferralFeePercent = value
	}
	if value, ok := _c.mutation.CommissionVersion(); ok {
		_spec.SetField(deal.FieldCommissionVersion, field.TypeInt, value)
		_node.CommissionVersion = value
	}
	if value, ok := _c.mutation.ClosedDate(); ok {
		_spec.SetField(deal.FieldClosedDate, field.TypeTime, value)
		_node.ClosedDate = &value
	}
	if nodes := _c.mutation.CustomerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   deal.CustomerTable,
			Columns: []string{deal.CustomerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(customer.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ClientID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PaymentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   deal.PaymentsTable,
			Columns: []string{deal.PaymentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(payment.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.BrokerInterestsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   deal.BrokerInterestsTable,
			Columns: []string{deal.BrokerInterestsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dealbroker.FieldID, field.TypeUUID),
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
//	client.Deal.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DealUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *DealCreate) OnConflict(opts ...sql.ConflictOption) *DealUpsertOne {
	_c.conflict = opts
	return &DealUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Deal.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DealCreate) OnConflictColumns(columns ...string) *DealUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DealUpsertOne{
		create: _c,
	}
}

type (
	// DealUpsertOne is the builder for "upsert"-ing
	//  one Deal node.
	DealUpsertOne struct {
		create *DealCreate
	}

	// DealUpsert is the "OnConflict" setter.
	DealUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *DealUpsert) SetUpdatedAt(v time.Time) *DealUpsert {
	u.Set(deal.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DealUpsert) UpdateUpdatedAt() *DealUpsert {
	u.SetExcluded(deal.FieldUpdatedAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *DealUpsert) SetDeletedAt(v time.Time) *DealUpsert {
	u.Set(deal.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *DealUpsert) UpdateDeletedAt() *DealUpsert {
	u.SetExcluded(deal.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *DealUpsert) ClearDeletedAt() *DealUpsert {
	u.SetNull(deal.FieldDeletedAt)
	return u
}

// SetClientID sets the "client_id" field.
func (u *DealUpsert) SetClientID(v uuid.UUID) *DealUpsert {
	u.Set(deal.FieldClientID, v)
	return u
}

// UpdateClientID sets the "client_id" field to the value that was provided on create.
func (u *DealUpsert) UpdateClientID() *DealUpsert {
	u.SetExcluded(deal.FieldClientID)
	return u
}

// SetName sets the "name" field.
func (u *DealUpsert) SetName(v string) *DealUpsert {
	u.Set(deal.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *DealUpsert) UpdateName() *DealUpsert {
	u.SetExcluded(deal.FieldName)
	return u
}

// SetPropertyAddress sets the "property_address" field.
func (u *DealUpsert) SetPropertyAddress(v string) *DealUpsert {
	u.Set(deal.FieldPropertyAddress, v)
	return u
}

// UpdatePropertyAddress sets the "property_address" field to the value that was provided on create.
func (u *DealUpsert) UpdatePropertyAddress() *DealUpsert {
	u.SetExcluded(deal.FieldPropertyAddress)
	return u
}

// ClearPropertyAddress clears the value of the "property_address" field.
func (u *DealUpsert) ClearPropertyAddress() *DealUpsert {
	u.SetNull(deal.FieldPropertyAddress)
	return u
}

// SetStage sets the "stage" field.
func (u *DealUpsert) SetStage(v deal.Stage) *DealUpsert {
	u.Set(deal.FieldStage, v)
	return u
}

// UpdateStage sets the "stage" field to the value that was provided on create.
func (u *DealUpsert) UpdateStage() *DealUpsert {
	u.SetExcluded(deal.FieldStage)
	return u
}

// SetFee sets the "fee" field.
func (u *DealUpsert) SetFee(v decimal.Decimal) *DealUpsert {
	u.Set(deal.FieldFee, v)
	return u
}

// UpdateFee sets the "fee" field to the value that was provided on create.
func (u *DealUpsert) UpdateFee() *DealUpsert {
	u.SetExcluded(deal.FieldFee)
	return u
}

// AddFee adds v to the "fee" field.
func (u *DealUpsert) AddFee(v decimal.Decimal) *DealUpsert {
	u.Add(deal.FieldFee, v)
	return u
}

// SetNumberOfPayments sets the "number_of_payments" field.
func (u *DealUpsert) SetNumberOfPayments(v int) *DealUpsert {
	u.Set(deal.FieldNumberOfPayments, v)
	return u
}

// UpdateNumberOfPayments sets the "number_of_payments" field to the value that was provided on create.
func (u *DealUpsert) UpdateNumberOfPayments() *DealUpsert {
	u.SetExcluded(deal.FieldNumberOfPayments)
	return u
}

// AddNumberOfPayments adds v to the "number_of_payments" field.
func (u *DealUpsert) AddNumberOfPayments(v int) *DealUpsert {
	u.Add(deal.FieldNumberOfPayments, v)
	return u
}

// SetAgci sets the "agci" field.
func (u *DealUpsert) SetAgci(v decimal.Decimal) *DealUpsert {
	u.Set(deal.FieldAgci, v)
	return u
}

// UpdateAgci sets the "agci" field to the value that was provided on create.
func (u *DealUpsert) UpdateAgci() *DealUpsert {
	u.SetExcluded(deal.FieldAgci)
	return u
}

// AddAgci adds v to the "agci" field.
func (u *DealUpsert) AddAgci(v decimal.Decimal) *DealUpsert {
	u.Add(deal.FieldAgci, v)
	return u
}

// SetOriginationPercent sets the "origination_percent" field.
func (u *DealUpsert) SetOriginationPercent(v decimal.Decimal) *DealUpsert {
	u.Set(deal.FieldOriginationPercent, v)
	return u
}

// UpdateOriginationPercent sets the "origination_percent" field to the value that was provided on create.
func (u *DealUpsert) UpdateOriginationPercent() *DealUpsert {
	u.SetExcluded(deal.FieldOriginationPercent)
	return u
}

// AddOriginationPercent adds v to the "origination_percent" field.
func (u *DealUpsert) AddOriginationPercent(v decimal.Decimal) *DealUpsert {
	u.Add(deal.FieldOriginationPercent, v)
	return u
}

// SetSitePercent sets the "site_percent" field.
func (u *DealUpsert) SetSitePercent(v decimal.Decimal) *DealUpsert {
	u.Set(deal.FieldSitePercent, v)
	return u
}

// UpdateSitePercent sets the "site_percent" field to the value that was provided on create.
func (u *DealUpsert) UpdateSitePercent() *DealUpsert {
	u.SetExcluded(deal.FieldSitePercent)
	return u
}

// AddSitePercent adds v to the "site_percent" field.
func (u *DealUpsert) AddSitePercent(v decimal.Decimal) *DealUpsert {
	u.Add(deal.FieldSitePercent, v)
	return u
}

// SetDealPercent sets the "deal_percent" field.
func (u *DealUpsert) SetDealPercent(v decimal.Decimal) *DealUpsert {
	u.Set(deal.FieldDealPercent, v)
	return u
}

// UpdateDealPercent sets the "deal_percent" field to the value that was provided on create.
func (u *DealUpsert) UpdateDealPercent() *DealUpsert {
	u.SetExcluded(deal.FieldDealPercent)
	return u
}

// AddDealPercent adds v to the "deal_percent" field.
func (u *DealUpsert) AddDealPercent(v decimal.Decimal) *DealUpsert {
	u.Add(deal.FieldDealPercent, v)
	return u
}

// SetReferralFeePercent sets the "referral_fee_percent" field.
func (u *DealUpsert) SetReferralFeePercent(v decimal.Decimal) *DealUpsert {
	u.Set(deal.FieldReferralFeePercent, v)
	return u
}

// UpdateReferralFeePercent sets the "referral_fee_percent" field to the value that was provided on create.
func (u *DealUpsert) UpdateReferralFeePercent() *DealUpsert {
	u.SetExcluded(deal.FieldReferralFeePercent)
	return u
}

// AddReferralFeePercent adds v to the "referral_fee_percent" field.
func (u *DealUpsert) AddReferralFeePercent(v decimal.Decimal) *DealUpsert {
	u.Add(deal.FieldReferralFeePercent, v)
	return u
}

// SetCommissionVersion sets the "commission_version" field.
func (u *DealUpsert) SetCommissionVersion(v int) *DealUpsert {
	u.Set(deal.FieldCommissionVersion, v)
	return u
}

// UpdateCommissionVersion sets the "commission_version" field to the value that was provided on create.
func (u *DealUpsert) UpdateCommissionVersion() *DealUpsert {
	u.SetExcluded(deal.FieldCommissionVersion)
	return u
}

// AddCommissionVersion adds v to the "commission_version" field.
func (u *DealUpsert) AddCommissionVersion(v int) *DealUpsert {
	u.Add(deal.FieldCommissionVersion, v)
	return u
}

// SetClosedDate sets the "closed_date" field.
func (u *DealUpsert) SetClosedDate(v time.Time) *DealUpsert {
	u.Set(deal.FieldClosedDate, v)
	return u
}

// UpdateClosedDate sets the "closed_date" field to the value that was provided on create.
func (u *DealUpsert) UpdateClosedDate() *DealUpsert {
	u.SetExcluded(deal.FieldClosedDate)
	return u
}

// ClearClosedDate clears the value of the "closed_date" field.
func (u *DealUpsert) ClearClosedDate() *DealUpsert {
	u.SetNull(deal.FieldClosedDate)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Deal.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(deal.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DealUpsertOne) UpdateNewValues() *DealUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(deal.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(deal.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Deal.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DealUpsertOne) Ignore() *DealUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DealUpsertOne) DoNothing() *DealUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DealCreate.OnConflict
// documentation for more info.
func (u *DealUpsertOne) Update(set func(*DealUpsert)) *DealUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DealUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DealUpsertOne) SetUpdatedAt(v time.Time) *DealUpsertOne {
	return u.Update(func(s *DealUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DealUpsertOne) UpdateUpdatedAt() *DealUpsertOne {
	return u.Update(func(s *DealUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *DealUpsertOne) SetDeletedAt(v time.Time) *DealUpsertOne {
	return u.Update(func(s *DealUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *DealUpsertOne) UpdateDeletedAt() *DealUpsertOne {
	return u.Update(func(s *DealUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *DealUpsertOne) ClearDeletedAt() *DealUpsertOne {
	return u.Update(func(s *DealUpsert) {
		s.ClearDeletedAt()
	})
}

// SetClientID sets the "client_id" field.
func (u *DealUpsertOne) SetClientID(v uuid.UUID) *DealUpsertOne {
	return u.Update(func(s *DealUpsert) {
		s.SetClientID(v)
	})
}

// UpdateClientID sets the "client_id" field to the value that was provided on create.
func (u *DealUpsertOne) UpdateClientID() *DealUpsertOne {
	return u.Update(func(s *DealUpsert) {
		s.UpdateClientID()
	})
}

// SetName sets the "name" field.
func (u *DealUpsertOne) SetName(v string) *DealUpsertOne {
	return u.Update(func(s *DealUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *DealUpsertOne) UpdateName() *DealUpsertOne {
	return u.Update(func(s *DealUpsert) {
		s.UpdateName()
	})
}

// SetPropertyAddress sets the "property_address" field.
func (u *DealUpsertOne) SetPropertyAddress(v string) *DealUpsertOne {
	return u.Update(func(s *DealUpsert) {
		s.SetPropertyAddress(v)
	})
}

// UpdatePropertyAddress sets the "property_address" field to the value that was provided on create.
func (u *DealUpsertOne) UpdatePropertyAddress() *DealUpsertOne {
	return u.Update(func(s *DealUpsert) {
		s.UpdatePropertyAddress()
	})
}

// ClearPropertyAddress clears the value of the "property_address" field.
func (u *DealUpsertOne) ClearPropertyAddress() *DealUpsertOne {
	return u.Update(func(s *DealUpsert) {
		s.ClearPropertyAddress()
	})
}

// SetStage sets the "stage" field.
func (u *DealUpsertOne) SetStage(v deal.Stage) *DealUpsertOne {
	return u.Update(func(s *DealUpsert) {
		s.SetStage(v)
	})
}

// UpdateStage sets the "stage" field to the value that was provided on create.
func (u *DealUpsertOne) UpdateStage() *DealUpsertOne {
	return u.Update(func(s *DealUpsert) {
		s.UpdateStage()
	})
}

// SetFee sets the "fee" field.
func (u *DealUpsertOne) SetFee(v decimal.Decimal) *DealUpsertOne {
	return u.Update(func(s *DealUpsert) {
		s.SetFee(v)
	})
}

// AddFee adds v to the "fee" field.
func (u *DealUpsertOne) AddFee(v decimal.Decimal) *DealUpsertOne {
	return u.Update(func(s *DealUpsert) {
		s.AddFee(v)
	})
}

// UpdateFee sets the "fee" field to the value that was provided on create.
func (u *DealUpsertOne) UpdateFee() *DealUpsertOne {
	return u.Update(func(s *DealUpsert) {
		s.UpdateFee()
	})
}

// SetNumberOfPayments sets the "number_of_payments" field.
func (u *DealUpsertOne) SetNumberOfPayments(v int) *DealUpsertOne {
	return u.Update(func(s *DealUpsert) {
		s.SetNumberOfPayments(v)
	})
}

// AddNumberOfPayments adds v to the "number_of_payments" field.
func (u *DealUpsertOne) AddNumberOfPayments(v int) *DealUpsertOne {
	return u.Update(func(s *DealUpsert) {
		s.AddNumberOfPayments(v)
	})
}

// UpdateNumberOfPayments sets the "number_of_payments" field to the value that was provided on create.
func (u *DealUpsertOne) UpdateNumberOfPayments() *DealUpsertOne {
	return u.Update(func(s *DealUpsert) {
		s.UpdateNumberOfPayments()
	})
}

// SetAgci sets the "agci" field.
func (u *DealUpsertOne) SetAgci(v decimal.Decimal) *DealUpsertOne {
	return u.Update(func(s *DealUpsert) {
		s.SetAgci(v)
	})
}

// AddAgci adds v to the "agci" field.
func (u *DealUpsertOne) AddAgci(v decimal.Decimal) *DealUpsertOne {
	return u.Update(func(s *DealUpsert) {
		s.AddAgci(v)
	})
}

// UpdateAgci sets the "agci" field to the value that was provided on create.
func (u *DealUpsertOne) UpdateAgci() *DealUpsertOne {
	return u.Update(func(s *DealUpsert) {
		s.UpdateAgci()
	})
}

// SetOriginationPercent sets the "origination_percent" field.
func (u *DealUpsertOne) SetOriginationPercent(v decimal.Decimal) *DealUpsertOne {
	return u.Update(func(s *DealUpsert) {
		s.SetOriginationPercent(v)
	})
}

// AddOriginationPercent adds v to the "origination_percent" field.
func (u *DealUpsertOne) AddOriginationPercent(v decimal.Decimal) *DealUpsertOne {
	return u.Update(func(s *DealUpsert) {
		s.AddOriginationPercent(v)
	})
}

// UpdateOriginationPercent sets the "origination_percent" field to the value that was provided on create.
func (u *DealUpsertOne) UpdateOriginationPercent() *DealUpsertOne {
	return u.Update(func(s *DealUpsert) {
		s.UpdateOriginationPercent()
	})
}

// SetSitePercent sets the "site_percent" field.
func (u *DealUpsertOne) SetSitePercent(v decimal.Decimal) *DealUpsertOne {
	return u.Update(func(s *DealUpsert) {
		s.SetSitePercent(v)
	})
}

// AddSitePercent adds v to the "site_percent" field.
func (u *DealUpsertOne) AddSitePercent(v decimal.Decimal) *DealUpsertOne {
	return u.Update(func(s *DealUpsert) {
		s.AddSitePercent(v)
	})
}

// UpdateSitePercent sets the "site_percent" field to the value that was provided on create.
func (u *DealUpsertOne) UpdateSitePercent() *DealUpsertOne {
	return u.Update(func(s *DealUpsert) {
		s.UpdateSitePercent()
	})
}

// SetDealPercent sets the "deal_percent" field.
func (u *DealUpsertOne) SetDealPercent(v decimal.Decimal) *DealUpsertOne {
	return u.Update(func(s *DealUpsert) {
		s.SetDealPercent(v)
	})
}

// AddDealPercent adds v to the "deal_percent" field.
func (u *DealUpsertOne) AddDealPercent(v decimal.Decimal) *DealUpsertOne {
	return u.Update(func(s *DealUpsert) {
		s.AddDealPercent(v)
	})
}

// UpdateDealPercent sets the "deal_percent" field to the value that was provided on create.
func (u *DealUpsertOne) UpdateDealPercent() *DealUpsertOne {
	return u.Update(func(s *DealUpsert) {
		s.UpdateDealPercent()
	})
}

// SetReferralFeePercent sets the "referral_fee_percent" field.
func (u *DealUpsertOne) SetReferralFeePercent(v decimal.Decimal) *DealUpsertOne {
	return u.Update(func(s *DealUpsert) {
		s.SetReferralFeePercent(v)
	})
}

// AddReferralFeePercent adds v to the "referral_fee_percent" field.
func (u *DealUpsertOne) AddReferralFeePercent(v decimal.Decimal) *DealUpsertOne {
	return u.Update(func(s *DealUpsert) {
		s.AddReferralFeePercent(v)
	})
}

// UpdateReferralFeePercent sets the "referral_fee_percent" field to the value that was provided on create.
func (u *DealUpsertOne) UpdateReferralFeePercent() *DealUpsertOne {
	return u.Update(func(s *DealUpsert) {
		s.UpdateReferralFeePercent()
	})
}

// SetCommissionVersion sets the "commission_version" field.
func (u *DealUpsertOne) SetCommissionVersion(v int) *DealUpsertOne {
	return u.Update(func(s *DealUpsert) {
		s.SetCommissionVersion(v)
	})
}

// AddCommissionVersion adds v to the "commission_version" field.
func (u *DealUpsertOne) AddCommissionVersion(v int) *DealUpsertOne {
	return u.Update(func(s *DealUpsert) {
		s.AddCommissionVersion(v)
	})
}

// UpdateCommissionVersion sets the "commission_version" field to the value that was provided on create.
func (u *DealUpsertOne) UpdateCommissionVersion() *DealUpsertOne {
	return u.Update(func(s *DealUpsert) {
		s.UpdateCommissionVersion()
	})
}

// SetClosedDate sets the "closed_date" field.
func (u *DealUpsertOne) SetClosedDate(v time.Time) *DealUpsertOne {
	return u.Update(func(s *DealUpsert) {
		s.SetClosedDate(v)
	})
}

// UpdateClosedDate sets the "closed_date" field to the value that was provided on create.
func (u *DealUpsertOne) UpdateClosedDate() *DealUpsertOne {
	return u.Update(func(s *DealUpsert) {
		s.UpdateClosedDate()
	})
}

// ClearClosedDate clears the value of the "closed_date" field.
func (u *DealUpsertOne) ClearClosedDate() *DealUpsertOne {
	return u.Update(func(s *DealUpsert) {
		s.ClearClosedDate()
	})
}

// Exec executes the query.
func (u *DealUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for DealCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DealUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DealUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: DealUpsertOne.ID is not supported by MySQL driver. Use DealUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DealUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DealCreateBulk is the builder for creating many Deal entities in bulk.
type DealCreateBulk struct {
	config
	err      error
	builders []*DealCreate
	conflict []sql.ConflictOption
}

// Save creates the Deal entities in the database.
func (_c *DealCreateBulk) Save(ctx context.Context) ([]*Deal, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Deal, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DealMutation)
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
func (_c *DealCreateBulk) SaveX(ctx context.Context) []*Deal {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DealCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DealCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Deal.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DealUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *DealCreateBulk) OnConflict(opts ...sql.ConflictOption) *DealUpsertBulk {
	_c.conflict = opts
	return &DealUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Deal.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DealCreateBulk) OnConflictColumns(columns ...string) *DealUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DealUpsertBulk{
		create: _c,
	}
}

// DealUpsertBulk is the builder for "upsert"-ing
// a bulk of Deal nodes.
type DealUpsertBulk struct {
	create *DealCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Deal.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(deal.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DealUpsertBulk) UpdateNewValues() *DealUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(deal.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(deal.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Deal.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DealUpsertBulk) Ignore() *DealUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DealUpsertBulk) DoNothing() *DealUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DealCreateBulk.OnConflict
// documentation for more info.
func (u *DealUpsertBulk) Update(set func(*DealUpsert)) *DealUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DealUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DealUpsertBulk) SetUpdatedAt(v time.Time) *DealUpsertBulk {
	return u.Update(func(s *DealUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DealUpsertBulk) UpdateUpdatedAt() *DealUpsertBulk {
	return u.Update(func(s *DealUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *DealUpsertBulk) SetDeletedAt(v time.Time) *DealUpsertBulk {
	return u.Update(func(s *DealUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *DealUpsertBulk) UpdateDeletedAt() *DealUpsertBulk {
	return u.Update(func(s *DealUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *DealUpsertBulk) ClearDeletedAt() *DealUpsertBulk {
	return u.Update(func(s *DealUpsert) {
		s.ClearDeletedAt()
	})
}

// SetClientID sets the "client_id" field.
func (u *DealUpsertBulk) SetClientID(v uuid.UUID) *DealUpsertBulk {
	return u.Update(func(s *DealUpsert) {
		s.SetClientID(v)
	})
}

// UpdateClientID sets the "client_id" field to the value that was provided on create.
func (u *DealUpsertBulk) UpdateClientID() *DealUpsertBulk {
	return u.Update(func(s *DealUpsert) {
		s.UpdateClientID()
	})
}

// SetName sets the "name" field.
func (u *DealUpsertBulk) SetName(v string) *DealUpsertBulk {
	return u.Update(func(s *DealUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *DealUpsertBulk) UpdateName() *DealUpsertBulk {
	return u.Update(func(s *DealUpsert) {
		s.UpdateName()
	})
}

// SetPropertyAddress sets the "property_address" field.
func (u *DealUpsertBulk) SetPropertyAddress(v string) *DealUpsertBulk {
	return u.Update(func(s *DealUpsert) {
		s.SetPropertyAddress(v)
	})
}

// UpdatePropertyAddress sets the "property_address" field to the value that was provided on create.
func (u *DealUpsertBulk) UpdatePropertyAddress() *DealUpsertBulk {
	return u.Update(func(s *DealUpsert) {
		s.UpdatePropertyAddress()
	})
}

// ClearPropertyAddress clears the value of the "property_address" field.
func (u *DealUpsertBulk) ClearPropertyAddress() *DealUpsertBulk {
	return u.Update(func(s *DealUpsert) {
		s.ClearPropertyAddress()
	})
}

// SetStage sets the "stage" field.
func (u *DealUpsertBulk) SetStage(v deal.Stage) *DealUpsertBulk {
	return u.Update(func(s *DealUpsert) {
		s.SetStage(v)
	})
}

// UpdateStage sets the "stage" field to the value that was provided on create.
func (u *DealUpsertBulk) UpdateStage() *DealUpsertBulk {
	return u.Update(func(s *DealUpsert) {
		s.UpdateStage()
	})
}

// SetFee sets the "fee" field.
func (u *DealUpsertBulk) SetFee(v decimal.Decimal) *DealUpsertBulk {
	return u.Update(func(s *DealUpsert) {
		s.SetFee(v)
	})
}

// AddFee adds v to the "fee" field.
func (u *DealUpsertBulk) AddFee(v decimal.Decimal) *DealUpsertBulk {
	return u.Update(func(s *DealUpsert) {
		s.AddFee(v)
	})
}

// UpdateFee sets the "fee" field to the value that was provided on create.
func (u *DealUpsertBulk) UpdateFee() *DealUpsertBulk {
	return u.Update(func(s *DealUpsert) {
		s.UpdateFee()
	})
}

// SetNumberOfPayments sets the "number_of_payments" field.
func (u *DealUpsertBulk) SetNumberOfPayments(v int) *DealUpsertBulk {
	return u.Update(func(s *DealUpsert) {
		s.SetNumberOfPayments(v)
	})
}

// AddNumberOfPayments adds v to the "number_of_payments" field.
func (u *DealUpsertBulk) AddNumberOfPayments(v int) *DealUpsertBulk {
	return u.Update(func(s *DealUpsert) {
		s.AddNumberOfPayments(v)
	})
}

// UpdateNumberOfPayments sets the "number_of_payments" field to the value that was provided on create.
func (u *DealUpsertBulk) UpdateNumberOfPayments() *DealUpsertBulk {
	return u.Update(func(s *DealUpsert) {
		s.UpdateNumberOfPayments()
	})
}

// SetAgci sets the "agci" field.
func (u *DealUpsertBulk) SetAgci(v decimal.Decimal) *DealUpsertBulk {
	return u.Update(func(s *DealUpsert) {
		s.SetAgci(v)
	})
}

// AddAgci adds v to the "agci" field.
func (u *DealUpsertBulk) AddAgci(v decimal.Decimal) *DealUpsertBulk {
	return u.Update(func(s *DealUpsert) {
		s.AddAgci(v)
	})
}

// UpdateAgci sets the "agci" field to the value that was provided on create.
func (u *DealUpsertBulk) UpdateAgci() *DealUpsertBulk {
	return u.Update(func(s *DealUpsert) {
		s.UpdateAgci()
	})
}

// SetOriginationPercent sets the "origination_percent" field.
func (u *DealUpsertBulk) SetOriginationPercent(v decimal.Decimal) *DealUpsertBulk {
	return u.Update(func(s *DealUpsert) {
		s.SetOriginationPercent(v)
	})
}

// AddOriginationPercent adds v to the "origination_percent" field.
func (u *DealUpsertBulk) AddOriginationPercent(v decimal.Decimal) *DealUpsertBulk {
	return u.Update(func(s *DealUpsert) {
		s.AddOriginationPercent(v)
	})
}

// UpdateOriginationPercent sets the "origination_percent" field to the value that was provided on create.
func (u *DealUpsertBulk) UpdateOriginationPercent() *DealUpsertBulk {
	return u.Update(func(s *DealUpsert) {
		s.UpdateOriginationPercent()
	})
}

// SetSitePercent sets the "site_percent" field.
func (u *DealUpsertBulk) SetSitePercent(v decimal.Decimal) *DealUpsertBulk {
	return u.Update(func(s *DealUpsert) {
		s.SetSitePercent(v)
	})
}

// AddSitePercent adds v to the "site_percent" field.
func (u *DealUpsertBulk) AddSitePercent(v decimal.Decimal) *DealUpsertBulk {
	return u.Update(func(s *DealUpsert) {
		s.AddSitePercent(v)
	})
}

// UpdateSitePercent sets the "site_percent" field to the value that was provided on create.
func (u *DealUpsertBulk) UpdateSitePercent() *DealUpsertBulk {
	return u.Update(func(s *DealUpsert) {
		s.UpdateSitePercent()
	})
}

// SetDealPercent sets the "deal_percent" field.
func (u *DealUpsertBulk) SetDealPercent(v decimal.Decimal) *DealUpsertBulk {
	return u.Update(func(s *DealUpsert) {
		s.SetDealPercent(v)
	})
}

// AddDealPercent adds v to the "deal_percent" field.
func (u *DealUpsertBulk) AddDealPercent(v decimal.Decimal) *DealUpsertBulk {
	return u.Update(func(s *DealUpsert) {
		s.AddDealPercent(v)
	})
}

// UpdateDealPercent sets the "deal_percent" field to the value that was provided on create.
func (u *DealUpsertBulk) UpdateDealPercent() *DealUpsertBulk {
	return u.Update(func(s *DealUpsert) {
		s.UpdateDealPercent()
	})
}

// SetReferralFeePercent sets the "referral_fee_percent" field.
func (u *DealUpsertBulk) SetReferralFeePercent(v decimal.Decimal) *DealUpsertBulk {
	return u.Update(func(s *DealUpsert) {
		s.SetReferralFeePercent(v)
	})
}

// AddReferralFeePercent adds v to the "referral_fee_percent" field.
func (u *DealUpsertBulk) AddReferralFeePercent(v decimal.Decimal) *DealUpsertBulk {
	return u.Update(func(s *DealUpsert) {
		s.AddReferralFeePercent(v)
	})
}

// UpdateReferralFeePercent sets the "referral_fee_percent" field to the value that was provided on create.
func (u *DealUpsertBulk) UpdateReferralFeePercent() *DealUpsertBulk {
	return u.Update(func(s *DealUpsert) {
		s.UpdateReferralFeePercent()
	})
}

// SetCommissionVersion sets the "commission_version" field.
func (u *DealUpsertBulk) SetCommissionVersion(v int) *DealUpsertBulk {
	return u.Update(func(s *DealUpsert) {
		s.SetCommissionVersion(v)
	})
}

// AddCommissionVersion adds v to the "commission_version" field.
func (u *DealUpsertBulk) AddCommissionVersion(v int) *DealUpsertBulk {
	return u.Update(func(s *DealUpsert) {
		s.AddCommissionVersion(v)
	})
}

// UpdateCommissionVersion sets the "commission_version" field to the value that was provided on create.
func (u *DealUpsertBulk) UpdateCommissionVersion() *DealUpsertBulk {
	return u.Update(func(s *DealUpsert) {
		s.UpdateCommissionVersion()
	})
}

// SetClosedDate sets the "closed_date" field.
func (u *DealUpsertBulk) SetClosedDate(v time.Time) *DealUpsertBulk {
	return u.Update(func(s *DealUpsert) {
		s.SetClosedDate(v)
	})
}

// UpdateClosedDate sets the "closed_date" field to the value that was provided on create.
func (u *DealUpsertBulk) UpdateClosedDate() *DealUpsertBulk {
	return u.Update(func(s *DealUpsert) {
		s.UpdateClosedDate()
	})
}

// ClearClosedDate clears the value of the "closed_date" field.
func (u *DealUpsertBulk) ClearClosedDate() *DealUpsertBulk {
	return u.Update(func(s *DealUpsert) {
		s.ClearClosedDate()
	})
}

// Exec executes the query.
func (u *DealUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the DealCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for DealCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DealUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
