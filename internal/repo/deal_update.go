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
	"github.com/oculusgrp/dealdesk_backend/internal/repo/customer"
	"github.com/oculusgrp/dealdesk_backend/internal/repo/deal"
	"github.com/oculusgrp/dealdesk_backend/internal/repo/dealbroker"
	"github.com/oculusgrp/dealdesk_backend/internal/repo/payment"
	"github.com/oculusgrp/dealdesk_backend/internal/repo/predicate"
	"github.com/shopspring/decimal"
)

// DealUpdate is the builder for updating Deal entities.
type DealUpdate struct {
	config
	hooks    []Hook
	mutation *DealMutation
}

// Where appends a list predicates to the DealUpdate builder.
func (_u *DealUpdate) Where(ps ...predicate.Deal) *DealUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DealUpdate) SetUpdatedAt(v time.Time) *DealUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *DealUpdate) SetDeletedAt(v time.Time) *DealUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *DealUpdate) SetNillableDeletedAt(v *time.Time) *DealUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *DealUpdate) ClearDeletedAt() *DealUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetClientID sets the "client_id" field.
func (_u *DealUpdate) SetClientID(v uuid.UUID) *DealUpdate {
	_u.mutation.SetClientID(v)
	return _u
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (_u *DealUpdate) SetNillableClientID(v *uuid.UUID) *DealUpdate {
	if v != nil {
		_u.SetClientID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *DealUpdate) SetName(v string) *DealUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *DealUpdate) SetNillableName(v *string) *DealUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPropertyAddress sets the "property_address" field.
func (_u *DealUpdate) SetPropertyAddress(v string) *DealUpdate {
	_u.mutation.SetPropertyAddress(v)
	return _u
}

// SetNillablePropertyAddress sets the "property_address" field if the given value is not nil.
func (_u *DealUpdate) SetNillablePropertyAddress(v *string) *DealUpdate {
	if v != nil {
		_u.SetPropertyAddress(*v)
	}
	return _u
}

// ClearPropertyAddress clears the value of the "property_address" field.
func (_u *DealUpdate) ClearPropertyAddress() *DealUpdate {
	_u.mutation.ClearPropertyAddress()
	return _u
}

// SetStage sets the "stage" field.
func (_u *DealUpdate) SetStage(v deal.Stage) *DealUpdate {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *DealUpdate) SetNillableStage(v *deal.Stage) *DealUpdate {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetFee sets the "fee" field.
func (_u *DealUpdate) SetFee(v decimal.Decimal) *DealUpdate {
	_u.mutation.ResetFee()
	_u.mutation.SetFee(v)
	return _u
}

// SetNillableFee sets the "fee" field if the given value is not nil.
func (_u *DealUpdate) SetNillableFee(v *decimal.Decimal) *DealUpdate {
	if v != nil {
		_u.SetFee(*v)
	}
	return _u
}

// AddFee adds value to the "fee" field.
func (_u *DealUpdate) AddFee(v decimal.Decimal) *DealUpdate {
	_u.mutation.AddFee(v)
	return _u
}

// SetNumberOfPayments sets the "number_of_payments" field.
func (_u *DealUpdate) SetNumberOfPayments(v int) *DealUpdate {
	_u.mutation.ResetNumberOfPayments()
	_u.mutation.SetNumberOfPayments(v)
	return _u
}

// SetNillableNumberOfPayments sets the "number_of_payments" field if the given value is not nil.
func (_u *DealUpdate) SetNillableNumberOfPayments(v *int) *DealUpdate {
	if v != nil {
		_u.SetNumberOfPayments(*v)
	}
	return _u
}

// AddNumberOfPayments adds value to the "number_of_payments" field.
func (_u *DealUpdate) AddNumberOfPayments(v int) *DealUpdate {
	_u.mutation.AddNumberOfPayments(v)
	return _u
}

// SetAgci sets the "agci" field.
func (_u *DealUpdate) SetAgci(v decimal.Decimal) *DealUpdate {
	_u.mutation.ResetAgci()
	_u.mutation.SetAgci(v)
	return _u
}

// SetNillableAgci sets the "agci" field if the given value is not nil.
func (_u *DealUpdate) SetNillableAgci(v *decimal.Decimal) *DealUpdate {
	if v != nil {
		_u.SetAgci(*v)
	}
	return _u
}

// AddAgci adds value to the "agci" field.
func (_u *DealUpdate) AddAgci(v decimal.Decimal) *DealUpdate {
	_u.mutation.AddAgci(v)
	return _u
}

// SetOriginationPercent sets the "origination_percent" field.
func (_u *DealUpdate) SetOriginationPercent(v decimal.Decimal) *DealUpdate {
	_u.mutation.ResetOriginationPercent()
	_u.mutation.SetOriginationPercent(v)
	return _u
}

// SetNillableOriginationPercent sets the "origination_percent" field if the given value is not nil.
func (_u *DealUpdate) SetNillableOriginationPercent(v *decimal.Decimal) *DealUpdate {
	if v != nil {
		_u.SetOriginationPercent(*v)
	}
	return _u
}

// AddOriginationPercent adds value to the "origination_percent" field.
func (_u *DealUpdate) AddOriginationPercent(v decimal.Decimal) *DealUpdate {
	_u.mutation.AddOriginationPercent(v)
	return _u
}

// SetSitePercent sets the "site_percent" field.
func (_u *DealUpdate) SetSitePercent(v decimal.Decimal) *DealUpdate {
	_u.mutation.ResetSitePercent()
	_u.mutation.SetSitePercent(v)
	return _u
}

// SetNillableSitePercent sets the "site_percent" field if the given value is not nil.
func (_u *DealUpdate) SetNillableSitePercent(v *decimal.Decimal) *DealUpdate {
	if v != nil {
		_u.SetSitePercent(*v)
	}
	return _u
}

// AddSitePercent adds value to the "site_percent" field.
func (_u *DealUpdate) AddSitePercent(v decimal.Decimal) *DealUpdate {
	_u.mutation.AddSitePercent(v)
	return _u
}

// SetDealPercent sets the "deal_percent" field.
func (_u *DealUpdate) SetDealPercent(v decimal.Decimal) *DealUpdate {
	_u.mutation.ResetDealPercent()
	_u.mutation.SetDealPercent(v)
	return _u
}

// SetNillableDealPercent sets the "deal_percent" field if the given value is not nil.
func (_u *DealUpdate) SetNillableDealPercent(v *decimal.Decimal) *DealUpdate {
	if v != nil {
		_u.SetDealPercent(*v)
	}
	return _u
}

// AddDealPercent adds value to the "deal_percent" field.
func (_u *DealUpdate) AddDealPercent(v decimal.Decimal) *DealUpdate {
	_u.mutation.AddDealPercent(v)
	return _u
}

// SetReferralFeePercent sets the "referral_fee_percent" field.
func (_u *DealUpdate) SetReferralFeePercent(v decimal.Decimal) *DealUpdate {
	_u.mutation.ResetReferralFeePercent()
	_u.mutation.SetReferralFeePercent(v)
	return _u
}

// SetNillableReferralFeePercent sets the "referral_fee_percent" field if the given value is not nil.
func (_u *DealUpdate) SetNillableReferralFeePercent(v *decimal.Decimal) *DealUpdate {
	if v != nil {
		_u.SetReferralFeePercent(*v)
	}
	return _u
}

// AddReferralFeePercent adds value to the "referral_fee_percent" field.
func (_u *DealUpdate) AddReferralFeePercent(v decimal.Decimal) *DealUpdate {
	_u.mutation.AddReferralFeePercent(v)
	return _u
}

// SetCommissionVersion sets the "commission_version" field.
func (_u *DealUpdate) SetCommissionVersion(v int) *DealUpdate {
	_u.mutation.ResetCommissionVersion()
	_u.mutation.SetCommissionVersion(v)
	return _u
}

// SetNillableCommissionVersion sets the "commission_version" field if the given value is not nil.
func (_u *DealUpdate) SetNillableCommissionVersion(v *int) *DealUpdate {
	if v != nil {
		_u.SetCommissionVersion(*v)
	}
	return _u
}

// AddCommissionVersion adds value to the "commission_version" field.
func (_u *DealUpdate) AddCommissionVersion(v int) *DealUpdate {
	_u.mutation.AddCommissionVersion(v)
	return _u
}

// SetClosedDate sets the "closed_date" field.
func (_u *DealUpdate) SetClosedDate(v time.Time) *DealUpdate {
	_u.mutation.SetClosedDate(v)
	return _u
}

// SetNillableClosedDate sets the "closed_date" field if the given value is not nil.
func (_u *DealUpdate) SetNillableClosedDate(v *time.Time) *DealUpdate {
	if v != nil {
		_u.SetClosedDate(*v)
	}
	return _u
}

// ClearClosedDate clears the value of the "closed_date" field.
func (_u *DealUpdate) ClearClosedDate() *DealUpdate {
	_u.mutation.ClearClosedDate()
	return _u
}

// SetCustomerID sets the "customer" edge to the Customer entity by ID.
func (_u *DealUpdate) SetCustomerID(id uuid.UUID) *DealUpdate {
	_u.mutation.SetCustomerID(id)
	return _u
}

// SetCustomer sets the "customer" edge to the Customer entity.
func (_u *DealUpdate) SetCustomer(v *Customer) *DealUpdate {
	return _u.SetCustomerID(v.ID)
}

// AddPaymentIDs adds the "payments" edge to the Payment entity by IDs.
func (_u *DealUpdate) AddPaymentIDs(ids ...uuid.UUID) *DealUpdate {
	_u.mutation.AddPaymentIDs(ids...)
	return _u
}

// AddPayments adds the "payments" edges to the Payment entity.
func (_u *DealUpdate) AddPayments(v ...*Payment) *DealUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPaymentIDs(ids...)
}

// AddBrokerInterestIDs adds the "broker_interests" edge to the DealBroker entity by IDs.
func (_u *DealUpdate) AddBrokerInterestIDs(ids ...uuid.UUID) *DealUpdate {
	_u.mutation.AddBrokerInterestIDs(ids...)
	return _u
}

// AddBrokerInterests adds the "broker_interests" edges to the DealBroker entity.
func (_u *DealUpdate) AddBrokerInterests(v ...*DealBroker) *DealUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBrokerInterestIDs(ids...)
}

// Mutation returns the DealMutation object of the builder.
func (_u *DealUpdate) Mutation() *DealMutation {
	return _u.mutation
}

// ClearCustomer clears the "customer" edge to the Customer entity.
func (_u *DealUpdate) ClearCustomer() *DealUpdate {
	_u.mutation.ClearCustomer()
	return _u
}

// ClearPayments clears all "payments" edges to the Payment entity.
func (_u *DealUpdate) ClearPayments() *DealUpdate {
	_u.mutation.ClearPayments()
	return _u
}

// RemovePaymentIDs removes the "payments" edge to Payment entities by IDs.
func (_u *DealUpdate) RemovePaymentIDs(ids ...uuid.UUID) *DealUpdate {
	_u.mutation.RemovePaymentIDs(ids...)
	return _u
}

// RemovePayments removes "payments" edges to Payment entities.
func (_u *DealUpdate) RemovePayments(v ...*Payment) *DealUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePaymentIDs(ids...)
}

// ClearBrokerInterests clears all "broker_interests" edges to the DealBroker entity.
func (_u *DealUpdate) ClearBrokerInterests() *DealUpdate {
	_u.mutation.ClearBrokerInterests()
	return _u
}

// RemoveBrokerInterestIDs removes the "broker_interests" edge to DealBroker entities by IDs.
func (_u *DealUpdate) RemoveBrokerInterestIDs(ids ...uuid.UUID) *DealUpdate {
	_u.mutation.RemoveBrokerInterestIDs(ids...)
	return _u
}

// RemoveBrokerInterests removes "broker_interests" edges to DealBroker entities.
func (_u *DealUpdate) RemoveBrokerInterests(v ...*DealBroker) *DealUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBrokerInterestIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DealUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DealUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DealUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DealUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DealUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := deal.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DealUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := deal.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Deal.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PropertyAddress(); ok {
		if err := deal.PropertyAddressValidator(v); err != nil {
			return &ValidationError{Name: "property_address", err: fmt.Errorf(`repo: validator failed for field "Deal.property_address": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Stage(); ok {
		if err := deal.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`repo: validator failed for field "Deal.stage": %w`, err)}
		}
	}
	if _u.mutation.CustomerCleared() && len(_u.mutation.CustomerIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Deal.customer"`)
	}
	return nil
}

func (_u *DealUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(deal.Table, deal.Columns, sqlgraph.NewFieldSpec(deal.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(deal.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(deal.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(deal.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(deal.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.PropertyAddress(); ok {
		_spec.SetField(deal.FieldPropertyAddress, field.TypeString, value)
	}
	if _u.mutation.PropertyAddressCleared() {
		_spec.ClearField(deal.FieldPropertyAddress, field.TypeString)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(deal.FieldStage, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Fee(); ok {
		_spec.SetField(deal.FieldFee, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFee(); ok {
		_spec.AddField(deal.FieldFee, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.NumberOfPayments(); ok {
		_spec.SetField(deal.FieldNumberOfPayments, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNumberOfPayments(); ok {
		_spec.AddField(deal.FieldNumberOfPayments, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Agci(); ok {
		_spec.SetField(deal.FieldAgci, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAgci(); ok {
		_spec.AddField(deal.FieldAgci, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.OriginationPercent(); ok {
		_spec.SetField(deal.FieldOriginationPercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOriginationPercent(); ok {
		_spec.AddField(deal.FieldOriginationPercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SitePercent(); ok {
		_spec.SetField(deal.FieldSitePercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSitePercent(); ok {
		_spec.AddField(deal.FieldSitePercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DealPercent(); ok {
		_spec.SetField(deal.FieldDealPercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDealPercent(); ok {
		_spec.AddField(deal.FieldDealPercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ReferralFeePercent(); ok {
		_spec.SetField(deal.FieldReferralFeePercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedReferralFeePercent(); ok {
		_spec.AddField(deal.FieldReferralFeePercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CommissionVersion(); ok {
		_spec.SetField(deal.FieldCommissionVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCommissionVersion(); ok {
		_spec.AddField(deal.FieldCommissionVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ClosedDate(); ok {
		_spec.SetField(deal.FieldClosedDate, field.TypeTime, value)
	}
	if _u.mutation.ClosedDateCleared() {
		_spec.ClearField(deal.FieldClosedDate, field.TypeTime)
	}
	if _u.mutation.CustomerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CustomerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PaymentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPaymentsIDs(); len(nodes) > 0 && !_u.mutation.PaymentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PaymentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BrokerInterestsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBrokerInterestsIDs(); len(nodes) > 0 && !_u.mutation.BrokerInterestsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BrokerInterestsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{deal.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DealUpdateOne is the builder for updating a single Deal entity.
type DealUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DealMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DealUpdateOne) SetUpdatedAt(v time.Time) *DealUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *DealUpdateOne) SetDeletedAt(v time.Time) *DealUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *DealUpdateOne) SetNillableDeletedAt(v *time.Time) *DealUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *DealUpdateOne) ClearDeletedAt() *DealUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetClientID sets the "client_id" field.
func (_u *DealUpdateOne) SetClientID(v uuid.UUID) *DealUpdateOne {
	_u.mutation.SetClientID(v)
	return _u
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (_u *DealUpdateOne) SetNillableClientID(v *uuid.UUID) *DealUpdateOne {
	if v != nil {
		_u.SetClientID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *DealUpdateOne) SetName(v string) *DealUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *DealUpdateOne) SetNillableName(v *string) *DealUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPropertyAddress sets the "property_address" field.
func (_u *DealUpdateOne) SetPropertyAddress(v string) *DealUpdateOne {
	_u.mutation.SetPropertyAddress(v)
	return _u
}

// SetNillablePropertyAddress sets the "property_address" field if the given value is not nil.
func (_u *DealUpdateOne) SetNillablePropertyAddress(v *string) *DealUpdateOne {
	if v != nil {
		_u.SetPropertyAddress(*v)
	}
	return _u
}

// ClearPropertyAddress clears the value of the "property_address" field.
func (_u *DealUpdateOne) ClearPropertyAddress() *DealUpdateOne {
	_u.mutation.ClearPropertyAddress()
	return _u
}

// SetStage sets the "stage" field.
func (_u *DealUpdateOne) SetStage(v deal.Stage) *DealUpdateOne {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *DealUpdateOne) SetNillableStage(v *deal.Stage) *DealUpdateOne {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetFee sets the "fee" field.
func (_u *DealUpdateOne) SetFee(v decimal.Decimal) *DealUpdateOne {
	_u.mutation.ResetFee()
	_u.mutation.SetFee(v)
	return _u
}

// SetNillableFee sets the "fee" field if the given value is not nil.
func (_u *DealUpdateOne) SetNillableFee(v *decimal.Decimal) *DealUpdateOne {
	if v != nil {
		_u.SetFee(*v)
	}
	return _u
}

// AddFee adds value to the "fee" field.
func (_u *DealUpdateOne) AddFee(v decimal.Decimal) *DealUpdateOne {
	_u.mutation.AddFee(v)
	return _u
}

// SetNumberOfPayments sets the "number_of_payments" field.
func (_u *DealUpdateOne) SetNumberOfPayments(v int) *DealUpdateOne {
	_u.mutation.ResetNumberOfPayments()
	_u.mutation.SetNumberOfPayments(v)
	return _u
}

// SetNillableNumberOfPayments sets the "number_of_payments" field if the given value is not nil.
func (_u *DealUpdateOne) SetNillableNumberOfPayments(v *int) *DealUpdateOne {
	if v != nil {
		_u.SetNumberOfPayments(*v)
	}
	return _u
}

// AddNumberOfPayments adds value to the "number_of_payments" field.
func (_u *DealUpdateOne) AddNumberOfPayments(v int) *DealUpdateOne {
	_u.mutation.AddNumberOfPayments(v)
	return _u
}

// SetAgci sets the "agci" field.
func (_u *DealUpdateOne) SetAgci(v decimal.Decimal) *DealUpdateOne {
	_u.mutation.ResetAgci()
	_u.mutation.SetAgci(v)
	return _u
}

// SetNillableAgci sets the "agci" field if the given value is not nil.
func (_u *DealUpdateOne) SetNillableAgci(v *decimal.Decimal) *DealUpdateOne {
	if v != nil {
		_u.SetAgci(*v)
	}
	return _u
}

// AddAgci adds value to the "agci" field.
func (_u *DealUpdateOne) AddAgci(v decimal.Decimal) *DealUpdateOne {
	_u.mutation.AddAgci(v)
	return _u
}

// SetOriginationPercent sets the "origination_percent" field.
func (_u *DealUpdateOne) SetOriginationPercent(v decimal.Decimal) *DealUpdateOne {
	_u.mutation.ResetOriginationPercent()
	_u.mutation.SetOriginationPercent(v)
	return _u
}

// SetNillableOriginationPercent sets the "origination_percent" field if the given value is not nil.
func (_u *DealUpdateOne) SetNillableOriginationPercent(v *decimal.Decimal) *DealUpdateOne {
	if v != nil {
		_u.SetOriginationPercent(*v)
	}
	return _u
}

// AddOriginationPercent adds value to the "origination_percent" field.
func (_u *DealUpdateOne) AddOriginationPercent(v decimal.Decimal) *DealUpdateOne {
	_u.mutation.AddOriginationPercent(v)
	return _u
}

// SetSitePercent sets the "site_percent" field.
func (_u *DealUpdateOne) SetSitePercent(v decimal.Decimal) *DealUpdateOne {
	_u.mutation.ResetSitePercent()
	_u.mutation.SetSitePercent(v)
	return _u
}

// SetNillableSitePercent sets the "site_percent" field if the given value is not nil.
func (_u *DealUpdateOne) SetNillableSitePercent(v *decimal.Decimal) *DealUpdateOne {
	if v != nil {
		_u.SetSitePercent(*v)
	}
	return _u
}

// AddSitePercent adds value to the "site_percent" field.
func (_u *DealUpdateOne) AddSitePercent(v decimal.Decimal) *DealUpdateOne {
	_u.mutation.AddSitePercent(v)
	return _u
}

// SetDealPercent sets the "deal_percent" field.
func (_u *DealUpdateOne) SetDealPercent(v decimal.Decimal) *DealUpdateOne {
	_u.mutation.ResetDealPercent()
	_u.mutation.SetDealPercent(v)
	return _u
}

// SetNillableDealPercent sets the "deal_percent" field if the given value is not nil.
func (_u *DealUpdateOne) SetNillableDealPercent(v *decimal.Decimal) *DealUpdateOne {
	if v != nil {
		_u.SetDealPercent(*v)
	}
	return _u
}

// AddDealPercent adds value to the "deal_percent" field.
func (_u *DealUpdateOne) AddDealPercent(v decimal.Decimal) *DealUpdateOne {
	_u.mutation.AddDealPercent(v)
	return _u
}

// SetReferralFeePercent sets the "referral_fee_percent" field.
func (_u *DealUpdateOne) SetReferralFeePercent(v decimal.Decimal) *DealUpdateOne {
	_u.mutation.ResetReferralFeePercent()
	_u.mutation.SetReferralFeePercent(v)
	return _u
}

// SetNillableReferralFeePercent sets the "referral_fee_percent" field if the given value is not nil.
func (_u *DealUpdateOne) SetNillableReferralFeePercent(v *decimal.Decimal) *DealUpdateOne {
	if v != nil {
		_u.SetReferralFeePercent(*v)
	}
	return _u
}

// AddReferralFeePercent adds value to the "referral_fee_percent" field.
func (_u *DealUpdateOne) AddReferralFeePercent(v decimal.Decimal) *DealUpdateOne {
	_u.mutation.AddReferralFeePercent(v)
	return _u
}

// SetCommissionVersion sets the "commission_version" field.
func (_u *DealUpdateOne) SetCommissionVersion(v int) *DealUpdateOne {
	_u.mutation.ResetCommissionVersion()
	_u.mutation.SetCommissionVersion(v)
	return _u
}

// SetNillableCommissionVersion sets the "commission_version" field if the given value is not nil.
func (_u *DealUpdateOne) SetNillableCommissionVersion(v *int) *DealUpdateOne {
	if v != nil {
		_u.SetCommissionVersion(*v)
	}
	return _u
}

// AddCommissionVersion adds value to the "commission_version" field.
func (_u *DealUpdateOne) AddCommissionVersion(v int) *DealUpdateOne {
	_u.mutation.AddCommissionVersion(v)
	return _u
}

// SetClosedDate sets the "closed_date" field.
func (_u *DealUpdateOne) SetClosedDate(v time.Time) *DealUpdateOne {
	_u.mutation.SetClosedDate(v)
	return _u
}

// SetNillableClosedDate sets the "closed_date" field if the given value is not nil.
func (_u *DealUpdateOne) SetNillableClosedDate(v *time.Time) *DealUpdateOne {
	if v != nil {
		_u.SetClosedDate(*v)
	}
	return _u
}

// ClearClosedDate clears the value of the "closed_date" field.
func (_u *DealUpdateOne) ClearClosedDate() *DealUpdateOne {
	_u.mutation.ClearClosedDate()
	return _u
}

// SetCustomerID sets the "customer" edge to the Customer entity by ID.
func (_u *DealUpdateOne) SetCustomerID(id uuid.UUID) *DealUpdateOne {
	_u.mutation.SetCustomerID(id)
	return _u
}

// SetCustomer sets the "customer" edge to the Customer entity.
func (_u *DealUpdateOne) SetCustomer(v *Customer) *DealUpdateOne {
	return _u.SetCustomerID(v.ID)
}

// AddPaymentIDs adds the "payments" edge to the Payment entity by IDs.
func (_u *DealUpdateOne) AddPaymentIDs(ids ...uuid.UUID) *DealUpdateOne {
	_u.mutation.AddPaymentIDs(ids...)
	return _u
}

// AddPayments adds the "payments" edges to the Payment entity.
func (_u *DealUpdateOne) AddPayments(v ...*Payment) *DealUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPaymentIDs(ids...)
}

// AddBrokerInterestIDs adds the "broker_interests" edge to the DealBroker entity by IDs.
func (_u *DealUpdateOne) AddBrokerInterestIDs(ids ...uuid.UUID) *DealUpdateOne {
	_u.mutation.AddBrokerInterestIDs(ids...)
	return _u
}

// AddBrokerInterests adds the "broker_interests" edges to the DealBroker entity.
func (_u *DealUpdateOne) AddBrokerInterests(v ...*DealBroker) *DealUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBrokerInterestIDs(ids...)
}

// Mutation returns the DealMutation object of the builder.
func (_u *DealUpdateOne) Mutation() *DealMutation {
	return _u.mutation
}

// ClearCustomer clears the "customer" edge to the Customer entity.
func (_u *DealUpdateOne) ClearCustomer() *DealUpdateOne {
	_u.mutation.ClearCustomer()
	return _u
}

// ClearPayments clears all "payments" edges to the Payment entity.
func (_u *DealUpdateOne) ClearPayments() *DealUpdateOne {
	_u.mutation.ClearPayments()
	return _u
}

// RemovePaymentIDs removes the "payments" edge to Payment entities by IDs.
func (_u *DealUpdateOne) RemovePaymentIDs(ids ...uuid.UUID) *DealUpdateOne {
	_u.mutation.RemovePaymentIDs(ids...)
	return _u
}

// RemovePayments removes "payments" edges to Payment entities.
func (_u *DealUpdateOne) RemovePayments(v ...*Payment) *DealUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePaymentIDs(ids...)
}

// ClearBrokerInterests clears all "broker_interests" edges to the DealBroker entity.
func (_u *DealUpdateOne) ClearBrokerInterests() *DealUpdateOne {
	_u.mutation.ClearBrokerInterests()
	return _u
}

// RemoveBrokerInterestIDs removes the "broker_interests" edge to DealBroker entities by IDs.
func (_u *DealUpdateOne) RemoveBrokerInterestIDs(ids ...uuid.UUID) *DealUpdateOne {
	_u.mutation.RemoveBrokerInterestIDs(ids...)
	return _u
}

// RemoveBrokerInterests removes "broker_interests" edges to DealBroker entities.
func (_u *DealUpdateOne) RemoveBrokerInterests(v ...*DealBroker) *DealUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBrokerInterestIDs(ids...)
}

// Where appends a list predicates to the DealUpdate builder.
func (_u *DealUpdateOne) Where(ps ...predicate.Deal) *DealUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DealUpdateOne) Select(field string, fields ...string) *DealUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Deal entity.
func (_u *DealUpdateOne) Save(ctx context.Context) (*Deal, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DealUpdateOne) SaveX(ctx context.Context) *Deal {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DealUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DealUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DealUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := deal.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DealUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := deal.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Deal.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PropertyAddress(); ok {
		if err := deal.PropertyAddressValidator(v); err != nil {
			return &ValidationError{Name: "property_address", err: fmt.Errorf(`repo: validator failed for field "Deal.property_address": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Stage(); ok {
		if err := deal.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`repo: validator failed for field "Deal.stage": %w`, err)}
		}
	}
	if _u.mutation.CustomerCleared() && len(_u.mutation.CustomerIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Deal.customer"`)
	}
	return nil
}

func (_u *DealUpdateOne) sqlSave(ctx context.Context) (_node *Deal, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(deal.Table, deal.Columns, sqlgraph.NewFieldSpec(deal.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Deal.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, deal.FieldID)
		for _, f := range fields {
			if !deal.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != deal.FieldID {
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
		_spec.SetField(deal.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(deal.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(deal.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(deal.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.PropertyAddress(); ok {
		_spec.SetField(deal.FieldPropertyAddress, field.TypeString, value)
	}
	if _u.mutation.PropertyAddressCleared() {
		_spec.ClearField(deal.FieldPropertyAddress, field.TypeString)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(deal.FieldStage, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Fee(); ok {
		_spec.SetField(deal.FieldFee, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFee(); ok {
		_spec.AddField(deal.FieldFee, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.NumberOfPayments(); ok {
		_spec.SetField(deal.FieldNumberOfPayments, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNumberOfPayments(); ok {
		_spec.AddField(deal.FieldNumberOfPayments, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Agci(); ok {
		_spec.SetField(deal.FieldAgci, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAgci(); ok {
		_spec.AddField(deal.FieldAgci, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.OriginationPercent(); ok {
		_spec.SetField(deal.FieldOriginationPercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOriginationPercent(); ok {
		_spec.AddField(deal.FieldOriginationPercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SitePercent(); ok {
		_spec.SetField(deal.FieldSitePercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSitePercent(); ok {
		_spec.AddField(deal.FieldSitePercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DealPercent(); ok {
		_spec.SetField(deal.FieldDealPercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDealPercent(); ok {
		_spec.AddField(deal.FieldDealPercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ReferralFeePercent(); ok {
		_spec.SetField(deal.FieldReferralFeePercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedReferralFeePercent(); ok {
		_spec.AddField(deal.FieldReferralFeePercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CommissionVersion(); ok {
		_spec.SetField(deal.FieldCommissionVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCommissionVersion(); ok {
		_spec.AddField(deal.FieldCommissionVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ClosedDate(); ok {
		_spec.SetField(deal.FieldClosedDate, field.TypeTime, value)
	}
	if _u.mutation.ClosedDateCleared() {
		_spec.ClearField(deal.FieldClosedDate, field.TypeTime)
	}
	if _u.mutation.CustomerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CustomerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PaymentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPaymentsIDs(); len(nodes) > 0 && !_u.mutation.PaymentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PaymentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BrokerInterestsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBrokerInterestsIDs(); len(nodes) > 0 && !_u.mutation.BrokerInterestsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BrokerInterestsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Deal{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{deal.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
