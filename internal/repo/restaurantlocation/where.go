// Code generated by ent, DO NOT EDIT.

package restaurantlocation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/oculusgrp/dealdesk_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldEQ(FieldUpdatedAt, v))
}

// StoreNo applies equality check predicate on the "store_no" field. It's identical to StoreNoEQ.
func StoreNo(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldEQ(FieldStoreNo, v))
}

// ChainNo applies equality check predicate on the "chain_no" field. It's identical to ChainNoEQ.
func ChainNo(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldEQ(FieldChainNo, v))
}

// Chain applies equality check predicate on the "chain" field. It's identical to ChainEQ.
func Chain(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldEQ(FieldChain, v))
}

// Geoaddress applies equality check predicate on the "geoaddress" field. It's identical to GeoaddressEQ.
func Geoaddress(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldEQ(FieldGeoaddress, v))
}

// Geocity applies equality check predicate on the "geocity" field. It's identical to GeocityEQ.
func Geocity(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldEQ(FieldGeocity, v))
}

// Geostate applies equality check predicate on the "geostate" field. It's identical to GeostateEQ.
func Geostate(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldEQ(FieldGeostate, v))
}

// Geozip applies equality check predicate on the "geozip" field. It's identical to GeozipEQ.
func Geozip(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldEQ(FieldGeozip, v))
}

// County applies equality check predicate on the "county" field. It's identical to CountyEQ.
func County(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldEQ(FieldCounty, v))
}

// DmaMarket applies equality check predicate on the "dma_market" field. It's identical to DmaMarketEQ.
func DmaMarket(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldEQ(FieldDmaMarket, v))
}

// Segment applies equality check predicate on the "segment" field. It's identical to SegmentEQ.
func Segment(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldEQ(FieldSegment, v))
}

// Subsegment applies equality check predicate on the "subsegment" field. It's identical to SubsegmentEQ.
func Subsegment(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldEQ(FieldSubsegment, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldEQ(FieldCategory, v))
}

// Latitude applies equality check predicate on the "latitude" field. It's identical to LatitudeEQ.
func Latitude(v float64) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldEQ(FieldLatitude, v))
}

// Longitude applies equality check predicate on the "longitude" field. It's identical to LongitudeEQ.
func Longitude(v float64) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldEQ(FieldLongitude, v))
}

// YrBuilt applies equality check predicate on the "yr_built" field. It's identical to YrBuiltEQ.
func YrBuilt(v int) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldEQ(FieldYrBuilt, v))
}

// CoFr applies equality check predicate on the "co_fr" field. It's identical to CoFrEQ.
func CoFr(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldEQ(FieldCoFr, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldLTE(FieldUpdatedAt, v))
}

// StoreNoEQ applies the EQ predicate on the "store_no" field.
func StoreNoEQ(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldEQ(FieldStoreNo, v))
}

// StoreNoNEQ applies the NEQ predicate on the "store_no" field.
func StoreNoNEQ(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldNEQ(FieldStoreNo, v))
}

// StoreNoIn applies the In predicate on the "store_no" field.
func StoreNoIn(vs ...string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldIn(FieldStoreNo, vs...))
}

// StoreNoNotIn applies the NotIn predicate on the "store_no" field.
func StoreNoNotIn(vs ...string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldNotIn(FieldStoreNo, vs...))
}

// StoreNoGT applies the GT predicate on the "store_no" field.
func StoreNoGT(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldGT(FieldStoreNo, v))
}

// StoreNoGTE applies the GTE predicate on the "store_no" field.
func StoreNoGTE(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldGTE(FieldStoreNo, v))
}

// StoreNoLT applies the LT predicate on the "store_no" field.
func StoreNoLT(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldLT(FieldStoreNo, v))
}

// StoreNoLTE applies the LTE predicate on the "store_no" field.
func StoreNoLTE(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldLTE(FieldStoreNo, v))
}

// StoreNoContains applies the Contains predicate on the "store_no" field.
func StoreNoContains(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldContains(FieldStoreNo, v))
}

// StoreNoHasPrefix applies the HasPrefix predicate on the "store_no" field.
func StoreNoHasPrefix(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldHasPrefix(FieldStoreNo, v))
}

// StoreNoHasSuffix applies the HasSuffix predicate on the "store_no" field.
func StoreNoHasSuffix(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldHasSuffix(FieldStoreNo, v))
}

// StoreNoEqualFold applies the EqualFold predicate on the "store_no" field.
func StoreNoEqualFold(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldEqualFold(FieldStoreNo, v))
}

// StoreNoContainsFold applies the ContainsFold predicate on the "store_no" field.
func StoreNoContainsFold(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldContainsFold(FieldStoreNo, v))
}

// ChainNoEQ applies the EQ predicate on the "chain_no" field.
func ChainNoEQ(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldEQ(FieldChainNo, v))
}

// ChainNoNEQ applies the NEQ predicate on the "chain_no" field.
func ChainNoNEQ(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldNEQ(FieldChainNo, v))
}

// ChainNoIn applies the In predicate on the "chain_no" field.
func ChainNoIn(vs ...string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldIn(FieldChainNo, vs...))
}

// ChainNoNotIn applies the NotIn predicate on the "chain_no" field.
func ChainNoNotIn(vs ...string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldNotIn(FieldChainNo, vs...))
}

// ChainNoGT applies the GT predicate on the "chain_no" field.
func ChainNoGT(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldGT(FieldChainNo, v))
}

// ChainNoGTE applies the GTE predicate on the "chain_no" field.
func ChainNoGTE(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldGTE(FieldChainNo, v))
}

// ChainNoLT applies the LT predicate on the "chain_no" field.
func ChainNoLT(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldLT(FieldChainNo, v))
}

// ChainNoLTE applies the LTE predicate on the "chain_no" field.
func ChainNoLTE(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldLTE(FieldChainNo, v))
}

// ChainNoContains applies the Contains predicate on the "chain_no" field.
func ChainNoContains(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldContains(FieldChainNo, v))
}

// ChainNoHasPrefix applies the HasPrefix predicate on the "chain_no" field.
func ChainNoHasPrefix(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldHasPrefix(FieldChainNo, v))
}

// ChainNoHasSuffix applies the HasSuffix predicate on the "chain_no" field.
func ChainNoHasSuffix(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldHasSuffix(FieldChainNo, v))
}

// ChainNoIsNil applies the IsNil predicate on the "chain_no" field.
func ChainNoIsNil() predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldIsNull(FieldChainNo))
}

// ChainNoNotNil applies the NotNil predicate on the "chain_no" field.
func ChainNoNotNil() predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldNotNull(FieldChainNo))
}

// ChainNoEqualFold applies the EqualFold predicate on the "chain_no" field.
func ChainNoEqualFold(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldEqualFold(FieldChainNo, v))
}

// ChainNoContainsFold applies the ContainsFold predicate on the "chain_no" field.
func ChainNoContainsFold(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldContainsFold(FieldChainNo, v))
}

// ChainEQ applies the EQ predicate on the "chain" field.
func ChainEQ(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldEQ(FieldChain, v))
}

// ChainNEQ applies the NEQ predicate on the "chain" field.
func ChainNEQ(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldNEQ(FieldChain, v))
}

// ChainIn applies the In predicate on the "chain" field.
func ChainIn(vs ...string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldIn(FieldChain, vs...))
}

// ChainNotIn applies the NotIn predicate on the "chain" field.
func ChainNotIn(vs ...string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldNotIn(FieldChain, vs...))
}

// ChainGT applies the GT predicate on the "chain" field.
func ChainGT(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldGT(FieldChain, v))
}

// ChainGTE applies the GTE predicate on the "chain" field.
func ChainGTE(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldGTE(FieldChain, v))
}

// ChainLT applies the LT predicate on the "chain" field.
func ChainLT(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldLT(FieldChain, v))
}

// ChainLTE applies the LTE predicate on the "chain" field.
func ChainLTE(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldLTE(FieldChain, v))
}

// ChainContains applies the Contains predicate on the "chain" field.
func ChainContains(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldContains(FieldChain, v))
}

// ChainHasPrefix applies the HasPrefix predicate on the "chain" field.
func ChainHasPrefix(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldHasPrefix(FieldChain, v))
}

// ChainHasSuffix applies the HasSuffix predicate on the "chain" field.
func ChainHasSuffix(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldHasSuffix(FieldChain, v))
}

// ChainIsNil applies the IsNil predicate on the "chain" field.
func ChainIsNil() predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldIsNull(FieldChain))
}

// ChainNotNil applies the NotNil predicate on the "chain" field.
func ChainNotNil() predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldNotNull(FieldChain))
}

// ChainEqualFold applies the EqualFold predicate on the "chain" field.
func ChainEqualFold(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldEqualFold(FieldChain, v))
}

// ChainContainsFold applies the ContainsFold predicate on the "chain" field.
func ChainContainsFold(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldContainsFold(FieldChain, v))
}

// GeoaddressEQ applies the EQ predicate on the "geoaddress" field.
func GeoaddressEQ(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldEQ(FieldGeoaddress, v))
}

// GeoaddressNEQ applies the NEQ predicate on the "geoaddress" field.
func GeoaddressNEQ(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldNEQ(FieldGeoaddress, v))
}

// GeoaddressIn applies the In predicate on the "geoaddress" field.
func GeoaddressIn(vs ...string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldIn(FieldGeoaddress, vs...))
}

// GeoaddressNotIn applies the NotIn predicate on the "geoaddress" field.
func GeoaddressNotIn(vs ...string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldNotIn(FieldGeoaddress, vs...))
}

// GeoaddressGT applies the GT predicate on the "geoaddress" field.
func GeoaddressGT(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldGT(FieldGeoaddress, v))
}

// GeoaddressGTE applies the GTE predicate on the "geoaddress" field.
func GeoaddressGTE(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldGTE(FieldGeoaddress, v))
}

// GeoaddressLT applies the LT predicate on the "geoaddress" field.
func GeoaddressLT(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldLT(FieldGeoaddress, v))
}

// GeoaddressLTE applies the LTE predicate on the "geoaddress" field.
func GeoaddressLTE(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldLTE(FieldGeoaddress, v))
}

// GeoaddressContains applies the Contains predicate on the "geoaddress" field.
func GeoaddressContains(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldContains(FieldGeoaddress, v))
}

// GeoaddressHasPrefix applies the HasPrefix predicate on the "geoaddress" field.
func GeoaddressHasPrefix(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldHasPrefix(FieldGeoaddress, v))
}

// GeoaddressHasSuffix applies the HasSuffix predicate on the "geoaddress" field.
func GeoaddressHasSuffix(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldHasSuffix(FieldGeoaddress, v))
}

// GeoaddressIsNil applies the IsNil predicate on the "geoaddress" field.
func GeoaddressIsNil() predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldIsNull(FieldGeoaddress))
}

// GeoaddressNotNil applies the NotNil predicate on the "geoaddress" field.
func GeoaddressNotNil() predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldNotNull(FieldGeoaddress))
}

// GeoaddressEqualFold applies the EqualFold predicate on the "geoaddress" field.
func GeoaddressEqualFold(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldEqualFold(FieldGeoaddress, v))
}

// GeoaddressContainsFold applies the ContainsFold predicate on the "geoaddress" field.
func GeoaddressContainsFold(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldContainsFold(FieldGeoaddress, v))
}

// GeocityEQ applies the EQ predicate on the "geocity" field.
func GeocityEQ(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldEQ(FieldGeocity, v))
}

// GeocityNEQ applies the NEQ predicate on the "geocity" field.
func GeocityNEQ(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldNEQ(FieldGeocity, v))
}

// GeocityIn applies the In predicate on the "geocity" field.
func GeocityIn(vs ...string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldIn(FieldGeocity, vs...))
}

// GeocityNotIn applies the NotIn predicate on the "geocity" field.
func GeocityNotIn(vs ...string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldNotIn(FieldGeocity, vs...))
}

// GeocityGT applies the GT predicate on the "geocity" field.
func GeocityGT(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldGT(FieldGeocity, v))
}

// GeocityGTE applies the GTE predicate on the "geocity" field.
func GeocityGTE(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldGTE(FieldGeocity, v))
}

// GeocityLT applies the LT predicate on the "geocity" field.
func GeocityLT(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldLT(FieldGeocity, v))
}

// GeocityLTE applies the LTE predicate on the "geocity" field.
func GeocityLTE(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldLTE(FieldGeocity, v))
}

// GeocityContains applies the Contains predicate on the "geocity" field.
func GeocityContains(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldContains(FieldGeocity, v))
}

// GeocityHasPrefix applies the HasPrefix predicate on the "geocity" field.
func GeocityHasPrefix(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldHasPrefix(FieldGeocity, v))
}

// GeocityHasSuffix applies the HasSuffix predicate on the "geocity" field.
func GeocityHasSuffix(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldHasSuffix(FieldGeocity, v))
}

// GeocityIsNil applies the IsNil predicate on the "geocity" field.
func GeocityIsNil() predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldIsNull(FieldGeocity))
}

// GeocityNotNil applies the NotNil predicate on the "geocity" field.
func GeocityNotNil() predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldNotNull(FieldGeocity))
}

// GeocityEqualFold applies the EqualFold predicate on the "geocity" field.
func GeocityEqualFold(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldEqualFold(FieldGeocity, v))
}

// GeocityContainsFold applies the ContainsFold predicate on the "geocity" field.
func GeocityContainsFold(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldContainsFold(FieldGeocity, v))
}

// GeostateEQ applies the EQ predicate on the "geostate" field.
func GeostateEQ(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldEQ(FieldGeostate, v))
}

// GeostateNEQ applies the NEQ predicate on the "geostate" field.
func GeostateNEQ(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldNEQ(FieldGeostate, v))
}

// GeostateIn applies the In predicate on the "geostate" field.
func GeostateIn(vs ...string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldIn(FieldGeostate, vs...))
}

// GeostateNotIn applies the NotIn predicate on the "geostate" field.
func GeostateNotIn(vs ...string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldNotIn(FieldGeostate, vs...))
}

// GeostateGT applies the GT predicate on the "geostate" field.
func GeostateGT(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldGT(FieldGeostate, v))
}

// GeostateGTE applies the GTE predicate on the "geostate" field.
func GeostateGTE(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldGTE(FieldGeostate, v))
}

// GeostateLT applies the LT predicate on the "geostate" field.
func GeostateLT(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldLT(FieldGeostate, v))
}

// GeostateLTE applies the LTE predicate on the "geostate" field.
func GeostateLTE(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldLTE(FieldGeostate, v))
}

// GeostateContains applies the Contains predicate on the "geostate" field.
func GeostateContains(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldContains(FieldGeostate, v))
}

// GeostateHasPrefix applies the HasPrefix predicate on the "geostate" field.
func GeostateHasPrefix(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldHasPrefix(FieldGeostate, v))
}

// GeostateHasSuffix applies the HasSuffix predicate on the "geostate" field.
func GeostateHasSuffix(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldHasSuffix(FieldGeostate, v))
}

// GeostateIsNil applies the IsNil predicate on the "geostate" field.
func GeostateIsNil() predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldIsNull(FieldGeostate))
}

// GeostateNotNil applies the NotNil predicate on the "geostate" field.
func GeostateNotNil() predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldNotNull(FieldGeostate))
}

// GeostateEqualFold applies the EqualFold predicate on the "geostate" field.
func GeostateEqualFold(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldEqualFold(FieldGeostate, v))
}

// GeostateContainsFold applies the ContainsFold predicate on the "geostate" field.
func GeostateContainsFold(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldContainsFold(FieldGeostate, v))
}

// GeozipEQ applies the EQ predicate on the "geozip" field.
func GeozipEQ(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldEQ(FieldGeozip, v))
}

// GeozipNEQ applies the NEQ predicate on the "geozip" field.
func GeozipNEQ(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldNEQ(FieldGeozip, v))
}

// GeozipIn applies the In predicate on the "geozip" field.
func GeozipIn(vs ...string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldIn(FieldGeozip, vs...))
}

// GeozipNotIn applies the NotIn predicate on the "geozip" field.
func GeozipNotIn(vs ...string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldNotIn(FieldGeozip, vs...))
}

// GeozipGT applies the GT predicate on the "geozip" field.
func GeozipGT(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldGT(FieldGeozip, v))
}

// GeozipGTE applies the GTE predicate on the "geozip" field.
func GeozipGTE(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldGTE(FieldGeozip, v))
}

// GeozipLT applies the LT predicate on the "geozip" field.
func GeozipLT(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldLT(FieldGeozip, v))
}

// GeozipLTE applies the LTE predicate on the "geozip" field.
func GeozipLTE(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldLTE(FieldGeozip, v))
}

// GeozipContains applies the Contains predicate on the "geozip" field.
func GeozipContains(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldContains(FieldGeozip, v))
}

// GeozipHasPrefix applies the HasPrefix predicate on the "geozip" field.
func GeozipHasPrefix(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldHasPrefix(FieldGeozip, v))
}

// GeozipHasSuffix applies the HasSuffix predicate on the "geozip" field.
func GeozipHasSuffix(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldHasSuffix(FieldGeozip, v))
}

// GeozipIsNil applies the IsNil predicate on the "geozip" field.
func GeozipIsNil() predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldIsNull(FieldGeozip))
}

// GeozipNotNil applies the NotNil predicate on the "geozip" field.
func GeozipNotNil() predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldNotNull(FieldGeozip))
}

// GeozipEqualFold applies the EqualFold predicate on the "geozip" field.
func GeozipEqualFold(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldEqualFold(FieldGeozip, v))
}

// GeozipContainsFold applies the ContainsFold predicate on the "geozip" field.
func GeozipContainsFold(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldContainsFold(FieldGeozip, v))
}

// CountyEQ applies the EQ predicate on the "county" field.
func CountyEQ(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldEQ(FieldCounty, v))
}

// CountyNEQ applies the NEQ predicate on the "county" field.
func CountyNEQ(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldNEQ(FieldCounty, v))
}

// CountyIn applies the In predicate on the "county" field.
func CountyIn(vs ...string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldIn(FieldCounty, vs...))
}

// CountyNotIn applies the NotIn predicate on the "county" field.
func CountyNotIn(vs ...string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldNotIn(FieldCounty, vs...))
}

// CountyGT applies the GT predicate on the "county" field.
func CountyGT(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldGT(FieldCounty, v))
}

// CountyGTE applies the GTE predicate on the "county" field.
func CountyGTE(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldGTE(FieldCounty, v))
}

// CountyLT applies the LT predicate on the "county" field.
func CountyLT(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldLT(FieldCounty, v))
}

// CountyLTE applies the LTE predicate on the "county" field.
func CountyLTE(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldLTE(FieldCounty, v))
}

// CountyContains applies the Contains predicate on the "county" field.
func CountyContains(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldContains(FieldCounty, v))
}

// CountyHasPrefix applies the HasPrefix predicate on the "county" field.
func CountyHasPrefix(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldHasPrefix(FieldCounty, v))
}

// CountyHasSuffix applies the HasSuffix predicate on the "county" field.
func CountyHasSuffix(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldHasSuffix(FieldCounty, v))
}

// CountyIsNil applies the IsNil predicate on the "county" field.
func CountyIsNil() predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldIsNull(FieldCounty))
}

// CountyNotNil applies the NotNil predicate on the "county" field.
func CountyNotNil() predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldNotNull(FieldCounty))
}

// CountyEqualFold applies the EqualFold predicate on the "county" field.
func CountyEqualFold(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldEqualFold(FieldCounty, v))
}

// CountyContainsFold applies the ContainsFold predicate on the "county" field.
func CountyContainsFold(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldContainsFold(FieldCounty, v))
}

// DmaMarketEQ applies the EQ predicate on the "dma_market" field.
func DmaMarketEQ(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldEQ(FieldDmaMarket, v))
}

// DmaMarketNEQ applies the NEQ predicate on the "dma_market" field.
func DmaMarketNEQ(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldNEQ(FieldDmaMarket, v))
}

// DmaMarketIn applies the In predicate on the "dma_market" field.
func DmaMarketIn(vs ...string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldIn(FieldDmaMarket, vs...))
}

// DmaMarketNotIn applies the NotIn predicate on the "dma_market" field.
func DmaMarketNotIn(vs ...string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldNotIn(FieldDmaMarket, vs...))
}

// DmaMarketGT applies the GT predicate on the "dma_market" field.
func DmaMarketGT(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldGT(FieldDmaMarket, v))
}

// DmaMarketGTE applies the GTE predicate on the "dma_market" field.
func DmaMarketGTE(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldGTE(FieldDmaMarket, v))
}

// DmaMarketLT applies the LT predicate on the "dma_market" field.
func DmaMarketLT(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldLT(FieldDmaMarket, v))
}

// DmaMarketLTE applies the LTE predicate on the "dma_market" field.
func DmaMarketLTE(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldLTE(FieldDmaMarket, v))
}

// DmaMarketContains applies the Contains predicate on the "dma_market" field.
func DmaMarketContains(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldContains(FieldDmaMarket, v))
}

// DmaMarketHasPrefix applies the HasPrefix predicate on the "dma_market" field.
func DmaMarketHasPrefix(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldHasPrefix(FieldDmaMarket, v))
}

// DmaMarketHasSuffix applies the HasSuffix predicate on the "dma_market" field.
func DmaMarketHasSuffix(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldHasSuffix(FieldDmaMarket, v))
}

// DmaMarketIsNil applies the IsNil predicate on the "dma_market" field.
func DmaMarketIsNil() predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldIsNull(FieldDmaMarket))
}

// DmaMarketNotNil applies the NotNil predicate on the "dma_market" field.
func DmaMarketNotNil() predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldNotNull(FieldDmaMarket))
}

// DmaMarketEqualFold applies the EqualFold predicate on the "dma_market" field.
func DmaMarketEqualFold(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldEqualFold(FieldDmaMarket, v))
}

// DmaMarketContainsFold applies the ContainsFold predicate on the "dma_market" field.
func DmaMarketContainsFold(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldContainsFold(FieldDmaMarket, v))
}

// SegmentEQ applies the EQ predicate on the "segment" field.
func SegmentEQ(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldEQ(FieldSegment, v))
}

// SegmentNEQ applies the NEQ predicate on the "segment" field.
func SegmentNEQ(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldNEQ(FieldSegment, v))
}

// SegmentIn applies the In predicate on the "segment" field.
func SegmentIn(vs ...string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldIn(FieldSegment, vs...))
}

// SegmentNotIn applies the NotIn predicate on the "segment" field.
func SegmentNotIn(vs ...string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldNotIn(FieldSegment, vs...))
}

// SegmentGT applies the GT predicate on the "segment" field.
func SegmentGT(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldGT(FieldSegment, v))
}

// SegmentGTE applies the GTE predicate on the "segment" field.
func SegmentGTE(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldGTE(FieldSegment, v))
}

// SegmentLT applies the LT predicate on the "segment" field.
func SegmentLT(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldLT(FieldSegment, v))
}

// SegmentLTE applies the LTE predicate on the "segment" field.
func SegmentLTE(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldLTE(FieldSegment, v))
}

// SegmentContains applies the Contains predicate on the "segment" field.
func SegmentContains(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldContains(FieldSegment, v))
}

// SegmentHasPrefix applies the HasPrefix predicate on the "segment" field.
func SegmentHasPrefix(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldHasPrefix(FieldSegment, v))
}

// SegmentHasSuffix applies the HasSuffix predicate on the "segment" field.
func SegmentHasSuffix(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldHasSuffix(FieldSegment, v))
}

// SegmentIsNil applies the IsNil predicate on the "segment" field.
func SegmentIsNil() predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldIsNull(FieldSegment))
}

// SegmentNotNil applies the NotNil predicate on the "segment" field.
func SegmentNotNil() predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldNotNull(FieldSegment))
}

// SegmentEqualFold applies the EqualFold predicate on the "segment" field.
func SegmentEqualFold(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldEqualFold(FieldSegment, v))
}

// SegmentContainsFold applies the ContainsFold predicate on the "segment" field.
func SegmentContainsFold(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldContainsFold(FieldSegment, v))
}

// SubsegmentEQ applies the EQ predicate on the "subsegment" field.
func SubsegmentEQ(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldEQ(FieldSubsegment, v))
}

// SubsegmentNEQ applies the NEQ predicate on the "subsegment" field.
func SubsegmentNEQ(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldNEQ(FieldSubsegment, v))
}

// SubsegmentIn applies the In predicate on the "subsegment" field.
func SubsegmentIn(vs ...string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldIn(FieldSubsegment, vs...))
}

// SubsegmentNotIn applies the NotIn predicate on the "subsegment" field.
func SubsegmentNotIn(vs ...string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldNotIn(FieldSubsegment, vs...))
}

// SubsegmentGT applies the GT predicate on the "subsegment" field.
func SubsegmentGT(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldGT(FieldSubsegment, v))
}

// SubsegmentGTE applies the GTE predicate on the "subsegment" field.
func SubsegmentGTE(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldGTE(FieldSubsegment, v))
}

// SubsegmentLT applies the LT predicate on the "subsegment" field.
func SubsegmentLT(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldLT(FieldSubsegment, v))
}

// SubsegmentLTE applies the LTE predicate on the "subsegment" field.
func SubsegmentLTE(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldLTE(FieldSubsegment, v))
}

// SubsegmentContains applies the Contains predicate on the "subsegment" field.
func SubsegmentContains(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldContains(FieldSubsegment, v))
}

// SubsegmentHasPrefix applies the HasPrefix predicate on the "subsegment" field.
func SubsegmentHasPrefix(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldHasPrefix(FieldSubsegment, v))
}

// SubsegmentHasSuffix applies the HasSuffix predicate on the "subsegment" field.
func SubsegmentHasSuffix(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldHasSuffix(FieldSubsegment, v))
}

// SubsegmentIsNil applies the IsNil predicate on the "subsegment" field.
func SubsegmentIsNil() predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldIsNull(FieldSubsegment))
}

// SubsegmentNotNil applies the NotNil predicate on the "subsegment" field.
func SubsegmentNotNil() predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldNotNull(FieldSubsegment))
}

// SubsegmentEqualFold applies the EqualFold predicate on the "subsegment" field.
func SubsegmentEqualFold(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldEqualFold(FieldSubsegment, v))
}

// SubsegmentContainsFold applies the ContainsFold predicate on the "subsegment" field.
func SubsegmentContainsFold(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldContainsFold(FieldSubsegment, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryIsNil applies the IsNil predicate on the "category" field.
func CategoryIsNil() predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldIsNull(FieldCategory))
}

// CategoryNotNil applies the NotNil predicate on the "category" field.
func CategoryNotNil() predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldNotNull(FieldCategory))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldContainsFold(FieldCategory, v))
}

// LatitudeEQ applies the EQ predicate on the "latitude" field.
func LatitudeEQ(v float64) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldEQ(FieldLatitude, v))
}

// LatitudeNEQ applies the NEQ predicate on the "latitude" field.
func LatitudeNEQ(v float64) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldNEQ(FieldLatitude, v))
}

// LatitudeIn applies the In predicate on the "latitude" field.
func LatitudeIn(vs ...float64) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldIn(FieldLatitude, vs...))
}

// LatitudeNotIn applies the NotIn predicate on the "latitude" field.
func LatitudeNotIn(vs ...float64) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldNotIn(FieldLatitude, vs...))
}

// LatitudeGT applies the GT predicate on the "latitude" field.
func LatitudeGT(v float64) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldGT(FieldLatitude, v))
}

// LatitudeGTE applies the GTE predicate on the "latitude" field.
func LatitudeGTE(v float64) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldGTE(FieldLatitude, v))
}

// LatitudeLT applies the LT predicate on the "latitude" field.
func LatitudeLT(v float64) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldLT(FieldLatitude, v))
}

// LatitudeLTE applies the LTE predicate on the "latitude" field.
func LatitudeLTE(v float64) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldLTE(FieldLatitude, v))
}

// LatitudeIsNil applies the IsNil predicate on the "latitude" field.
func LatitudeIsNil() predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldIsNull(FieldLatitude))
}

// LatitudeNotNil applies the NotNil predicate on the "latitude" field.
func LatitudeNotNil() predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldNotNull(FieldLatitude))
}

// LongitudeEQ applies the EQ predicate on the "longitude" field.
func LongitudeEQ(v float64) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldEQ(FieldLongitude, v))
}

// LongitudeNEQ applies the NEQ predicate on the "longitude" field.
func LongitudeNEQ(v float64) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldNEQ(FieldLongitude, v))
}

// LongitudeIn applies the In predicate on the "longitude" field.
func LongitudeIn(vs ...float64) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldIn(FieldLongitude, vs...))
}

// LongitudeNotIn applies the NotIn predicate on the "longitude" field.
func LongitudeNotIn(vs ...float64) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldNotIn(FieldLongitude, vs...))
}

// LongitudeGT applies the GT predicate on the "longitude" field.
func LongitudeGT(v float64) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldGT(FieldLongitude, v))
}

// LongitudeGTE applies the GTE predicate on the "longitude" field.
func LongitudeGTE(v float64) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldGTE(FieldLongitude, v))
}

// LongitudeLT applies the LT predicate on the "longitude" field.
func LongitudeLT(v float64) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldLT(FieldLongitude, v))
}

// LongitudeLTE applies the LTE predicate on the "longitude" field.
func LongitudeLTE(v float64) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldLTE(FieldLongitude, v))
}

// LongitudeIsNil applies the IsNil predicate on the "longitude" field.
func LongitudeIsNil() predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldIsNull(FieldLongitude))
}

// LongitudeNotNil applies the NotNil predicate on the "longitude" field.
func LongitudeNotNil() predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldNotNull(FieldLongitude))
}

// YrBuiltEQ applies the EQ predicate on the "yr_built" field.
func YrBuiltEQ(v int) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldEQ(FieldYrBuilt, v))
}

// YrBuiltNEQ applies the NEQ predicate on the "yr_built" field.
func YrBuiltNEQ(v int) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldNEQ(FieldYrBuilt, v))
}

// YrBuiltIn applies the In predicate on the "yr_built" field.
func YrBuiltIn(vs ...int) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldIn(FieldYrBuilt, vs...))
}

// YrBuiltNotIn applies the NotIn predicate on the "yr_built" field.
func YrBuiltNotIn(vs ...int) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldNotIn(FieldYrBuilt, vs...))
}

// YrBuiltGT applies the GT predicate on the "yr_built" field.
func YrBuiltGT(v int) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldGT(FieldYrBuilt, v))
}

// YrBuiltGTE applies the GTE predicate on the "yr_built" field.
func YrBuiltGTE(v int) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldGTE(FieldYrBuilt, v))
}

// YrBuiltLT applies the LT predicate on the "yr_built" field.
func YrBuiltLT(v int) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldLT(FieldYrBuilt, v))
}

// YrBuiltLTE applies the LTE predicate on the "yr_built" field.
func YrBuiltLTE(v int) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldLTE(FieldYrBuilt, v))
}

// YrBuiltIsNil applies the IsNil predicate on the "yr_built" field.
func YrBuiltIsNil() predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldIsNull(FieldYrBuilt))
}

// YrBuiltNotNil applies the NotNil predicate on the "yr_built" field.
func YrBuiltNotNil() predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldNotNull(FieldYrBuilt))
}

// CoFrEQ applies the EQ predicate on the "co_fr" field.
func CoFrEQ(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldEQ(FieldCoFr, v))
}

// CoFrNEQ applies the NEQ predicate on the "co_fr" field.
func CoFrNEQ(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldNEQ(FieldCoFr, v))
}

// CoFrIn applies the In predicate on the "co_fr" field.
func CoFrIn(vs ...string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldIn(FieldCoFr, vs...))
}

// CoFrNotIn applies the NotIn predicate on the "co_fr" field.
func CoFrNotIn(vs ...string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldNotIn(FieldCoFr, vs...))
}

// CoFrGT applies the GT predicate on the "co_fr" field.
func CoFrGT(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldGT(FieldCoFr, v))
}

// CoFrGTE applies the GTE predicate on the "co_fr" field.
func CoFrGTE(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldGTE(FieldCoFr, v))
}

// CoFrLT applies the LT predicate on the "co_fr" field.
func CoFrLT(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldLT(FieldCoFr, v))
}

// CoFrLTE applies the LTE predicate on the "co_fr" field.
func CoFrLTE(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldLTE(FieldCoFr, v))
}

// CoFrContains applies the Contains predicate on the "co_fr" field.
func CoFrContains(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldContains(FieldCoFr, v))
}

// CoFrHasPrefix applies the HasPrefix predicate on the "co_fr" field.
func CoFrHasPrefix(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldHasPrefix(FieldCoFr, v))
}

// CoFrHasSuffix applies the HasSuffix predicate on the "co_fr" field.
func CoFrHasSuffix(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldHasSuffix(FieldCoFr, v))
}

// CoFrIsNil applies the IsNil predicate on the "co_fr" field.
func CoFrIsNil() predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldIsNull(FieldCoFr))
}

// CoFrNotNil applies the NotNil predicate on the "co_fr" field.
func CoFrNotNil() predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldNotNull(FieldCoFr))
}

// CoFrEqualFold applies the EqualFold predicate on the "co_fr" field.
func CoFrEqualFold(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldEqualFold(FieldCoFr, v))
}

// CoFrContainsFold applies the ContainsFold predicate on the "co_fr" field.
func CoFrContainsFold(v string) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.FieldContainsFold(FieldCoFr, v))
}

// HasTrends applies the HasEdge predicate on the "trends" edge.
func HasTrends() predicate.RestaurantLocation {
	return predicate.RestaurantLocation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TrendsTable, TrendsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTrendsWith applies the HasEdge predicate on the "trends" edge with a given conditions (other predicates).
func HasTrendsWith(preds ...predicate.RestaurantTrend) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(func(s *sql.Selector) {
		step := newTrendsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RestaurantLocation) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RestaurantLocation) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RestaurantLocation) predicate.RestaurantLocation {
	return predicate.RestaurantLocation(sql.NotPredicates(p))
}
