// Code generated by ent, DO NOT EDIT.

package dealbroker

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/oculusgrp/dealdesk_backend/internal/repo/predicate"
	"github.com/shopspring/decimal"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.DealBroker {
	return predicate.DealBroker(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.DealBroker {
	return predicate.DealBroker(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.DealBroker {
	return predicate.DealBroker(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.DealBroker {
	return predicate.DealBroker(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.DealBroker {
	return predicate.DealBroker(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.DealBroker {
	return predicate.DealBroker(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.DealBroker {
	return predicate.DealBroker(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.DealBroker {
	return predicate.DealBroker(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.DealBroker {
	return predicate.DealBroker(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DealBroker {
	return predicate.DealBroker(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.DealBroker {
	return predicate.DealBroker(sql.FieldEQ(FieldUpdatedAt, v))
}

// DealID applies equality check predicate on the "deal_id" field. It's identical to DealIDEQ.
func DealID(v uuid.UUID) predicate.DealBroker {
	return predicate.DealBroker(sql.FieldEQ(FieldDealID, v))
}

// BrokerID applies equality check predicate on the "broker_id" field. It's identical to BrokerIDEQ.
func BrokerID(v uuid.UUID) predicate.DealBroker {
	return predicate.DealBroker(sql.FieldEQ(FieldBrokerID, v))
}

// OriginationPercent applies equality check predicate on the "origination_percent" field. It's identical to OriginationPercentEQ.
func OriginationPercent(v decimal.Decimal) predicate.DealBroker {
	return predicate.DealBroker(sql.FieldEQ(FieldOriginationPercent, v))
}

// SitePercent applies equality check predicate on the "site_percent" field. It's identical to SitePercentEQ.
func SitePercent(v decimal.Decimal) predicate.DealBroker {
	return predicate.DealBroker(sql.FieldEQ(FieldSitePercent, v))
}

// DealPercent applies equality check predicate on the "deal_percent" field. It's identical to DealPercentEQ.
func DealPercent(v decimal.Decimal) predicate.DealBroker {
	return predicate.DealBroker(sql.FieldEQ(FieldDealPercent, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DealBroker {
	return predicate.DealBroker(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DealBroker {
	return predicate.DealBroker(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DealBroker {
	return predicate.DealBroker(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DealBroker {
	return predicate.DealBroker(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DealBroker {
	return predicate.DealBroker(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DealBroker {
	return predicate.DealBroker(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DealBroker {
	return predicate.DealBroker(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DealBroker {
	return predicate.DealBroker(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.DealBroker {
	return predicate.DealBroker(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.DealBroker {
	return predicate.DealBroker(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.DealBroker {
	return predicate.DealBroker(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.DealBroker {
	return predicate.DealBroker(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.DealBroker {
	return predicate.DealBroker(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.DealBroker {
	return predicate.DealBroker(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.DealBroker {
	return predicate.DealBroker(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.DealBroker {
	return predicate.DealBroker(sql.FieldLTE(FieldUpdatedAt, v))
}

// DealIDEQ applies the EQ predicate on the "deal_id" field.
func DealIDEQ(v uuid.UUID) predicate.DealBroker {
	return predicate.DealBroker(sql.FieldEQ(FieldDealID, v))
}

// DealIDNEQ applies the NEQ predicate on the "deal_id" field.
func DealIDNEQ(v uuid.UUID) predicate.DealBroker {
	return predicate.DealBroker(sql.FieldNEQ(FieldDealID, v))
}

// DealIDIn applies the In predicate on the "deal_id" field.
func DealIDIn(vs ...uuid.UUID) predicate.DealBroker {
	return predicate.DealBroker(sql.FieldIn(FieldDealID, vs...))
}

// DealIDNotIn applies the NotIn predicate on the "deal_id" field.
func DealIDNotIn(vs ...uuid.UUID) predicate.DealBroker {
	return predicate.DealBroker(sql.FieldNotIn(FieldDealID, vs...))
}

// BrokerIDEQ applies the EQ predicate on the "broker_id" field.
func BrokerIDEQ(v uuid.UUID) predicate.DealBroker {
	return predicate.DealBroker(sql.FieldEQ(FieldBrokerID, v))
}

// BrokerIDNEQ applies the NEQ predicate on the "broker_id" field.
func BrokerIDNEQ(v uuid.UUID) predicate.DealBroker {
	return predicate.DealBroker(sql.FieldNEQ(FieldBrokerID, v))
}

// BrokerIDIn applies the In predicate on the "broker_id" field.
func BrokerIDIn(vs ...uuid.UUID) predicate.DealBroker {
	return predicate.DealBroker(sql.FieldIn(FieldBrokerID, vs...))
}

// BrokerIDNotIn applies the NotIn predicate on the "broker_id" field.
func BrokerIDNotIn(vs ...uuid.UUID) predicate.DealBroker {
	return predicate.DealBroker(sql.FieldNotIn(FieldBrokerID, vs...))
}

// OriginationPercentEQ applies the EQ predicate on the "origination_percent" field.
func OriginationPercentEQ(v decimal.Decimal) predicate.DealBroker {
	return predicate.DealBroker(sql.FieldEQ(FieldOriginationPercent, v))
}

// OriginationPercentNEQ applies the NEQ predicate on the "origination_percent" field.
func OriginationPercentNEQ(v decimal.Decimal) predicate.DealBroker {
	return predicate.DealBroker(sql.FieldNEQ(FieldOriginationPercent, v))
}

// OriginationPercentIn applies the In predicate on the "origination_percent" field.
func OriginationPercentIn(vs ...decimal.Decimal) predicate.DealBroker {
	return predicate.DealBroker(sql.FieldIn(FieldOriginationPercent, vs...))
}

// OriginationPercentNotIn applies the NotIn predicate on the "origination_percent" field.
func OriginationPercentNotIn(vs ...decimal.Decimal) predicate.DealBroker {
	return predicate.DealBroker(sql.FieldNotIn(FieldOriginationPercent, vs...))
}

// OriginationPercentGT applies the GT predicate on the "origination_percent" field.
func OriginationPercentGT(v decimal.Decimal) predicate.DealBroker {
	return predicate.DealBroker(sql.FieldGT(FieldOriginationPercent, v))
}

// OriginationPercentGTE applies the GTE predicate on the "origination_percent" field.
func OriginationPercentGTE(v decimal.Decimal) predicate.DealBroker {
	return predicate.DealBroker(sql.FieldGTE(FieldOriginationPercent, v))
}

// OriginationPercentLT applies the LT predicate on the "origination_percent" field.
func OriginationPercentLT(v decimal.Decimal) predicate.DealBroker {
	return predicate.DealBroker(sql.FieldLT(FieldOriginationPercent, v))
}

// OriginationPercentLTE applies the LTE predicate on the "origination_percent" field.
func OriginationPercentLTE(v decimal.Decimal) predicate.DealBroker {
	return predicate.DealBroker(sql.FieldLTE(FieldOriginationPercent, v))
}

// SitePercentEQ applies the EQ predicate on the "site_percent" field.
func SitePercentEQ(v decimal.Decimal) predicate.DealBroker {
	return predicate.DealBroker(sql.FieldEQ(FieldSitePercent, v))
}

// SitePercentNEQ applies the NEQ predicate on the "site_percent" field.
func SitePercentNEQ(v decimal.Decimal) predicate.DealBroker {
	return predicate.DealBroker(sql.FieldNEQ(FieldSitePercent, v))
}

// SitePercentIn applies the In predicate on the "site_percent" field.
func SitePercentIn(vs ...decimal.Decimal) predicate.DealBroker {
	return predicate.DealBroker(sql.FieldIn(FieldSitePercent, vs...))
}

// SitePercentNotIn applies the NotIn predicate on the "site_percent" field.
func SitePercentNotIn(vs ...decimal.Decimal) predicate.DealBroker {
	return predicate.DealBroker(sql.FieldNotIn(FieldSitePercent, vs...))
}

// SitePercentGT applies the GT predicate on the "site_percent" field.
func SitePercentGT(v decimal.Decimal) predicate.DealBroker {
	return predicate.DealBroker(sql.FieldGT(FieldSitePercent, v))
}

// SitePercentGTE applies the GTE predicate on the "site_percent" field.
func SitePercentGTE(v decimal.Decimal) predicate.DealBroker {
	return predicate.DealBroker(sql.FieldGTE(FieldSitePercent, v))
}

// SitePercentLT applies the LT predicate on the "site_percent" field.
func SitePercentLT(v decimal.Decimal) predicate.DealBroker {
	return predicate.DealBroker(sql.FieldLT(FieldSitePercent, v))
}

// SitePercentLTE applies the LTE predicate on the "site_percent" field.
func SitePercentLTE(v decimal.Decimal) predicate.DealBroker {
	return predicate.DealBroker(sql.FieldLTE(FieldSitePercent, v))
}

// DealPercentEQ applies the EQ predicate on the "deal_percent" field.
func DealPercentEQ(v decimal.Decimal) predicate.DealBroker {
	return predicate.DealBroker(sql.FieldEQ(FieldDealPercent, v))
}

// DealPercentNEQ applies the NEQ predicate on the "deal_percent" field.
func DealPercentNEQ(v decimal.Decimal) predicate.DealBroker {
	return predicate.DealBroker(sql.FieldNEQ(FieldDealPercent, v))
}

// DealPercentIn applies the In predicate on the "deal_percent" field.
func DealPercentIn(vs ...decimal.Decimal) predicate.DealBroker {
	return predicate.DealBroker(sql.FieldIn(FieldDealPercent, vs...))
}

// DealPercentNotIn applies the NotIn predicate on the "deal_percent" field.
func DealPercentNotIn(vs ...decimal.Decimal) predicate.DealBroker {
	return predicate.DealBroker(sql.FieldNotIn(FieldDealPercent, vs...))
}

// DealPercentGT applies the GT predicate on the "deal_percent" field.
func DealPercentGT(v decimal.Decimal) predicate.DealBroker {
	return predicate.DealBroker(sql.FieldGT(FieldDealPercent, v))
}

// DealPercentGTE applies the GTE predicate on the "deal_percent" field.
func DealPercentGTE(v decimal.Decimal) predicate.DealBroker {
	return predicate.DealBroker(sql.FieldGTE(FieldDealPercent, v))
}

// DealPercentLT applies the LT predicate on the "deal_percent" field.
func DealPercentLT(v decimal.Decimal) predicate.DealBroker {
	return predicate.DealBroker(sql.FieldLT(FieldDealPercent, v))
}

// DealPercentLTE applies the LTE predicate on the "deal_percent" field.
func DealPercentLTE(v decimal.Decimal) predicate.DealBroker {
	return predicate.DealBroker(sql.FieldLTE(FieldDealPercent, v))
}

// HasDeal applies the HasEdge predicate on the "deal" edge.
func HasDeal() predicate.DealBroker {
	return predicate.DealBroker(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DealTable, DealColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDealWith applies the HasEdge predicate on the "deal" edge with a given conditions (other predicates).
func HasDealWith(preds ...predicate.Deal) predicate.DealBroker {
	return predicate.DealBroker(func(s *sql.Selector) {
		step := newDealStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasBroker applies the HasEdge predicate on the "broker" edge.
func HasBroker() predicate.DealBroker {
	return predicate.DealBroker(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, BrokerTable, BrokerColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBrokerWith applies the HasEdge predicate on the "broker" edge with a given conditions (other predicates).
func HasBrokerWith(preds ...predicate.Broker) predicate.DealBroker {
	return predicate.DealBroker(func(s *sql.Selector) {
		step := newBrokerStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DealBroker) predicate.DealBroker {
	return predicate.DealBroker(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DealBroker) predicate.DealBroker {
	return predicate.DealBroker(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DealBroker) predicate.DealBroker {
	return predicate.DealBroker(sql.NotPredicates(p))
}
