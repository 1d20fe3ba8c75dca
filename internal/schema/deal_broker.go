package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// DealBroker is a broker's percentage interest on a deal, one row per
// broker per deal. The schedule generator turns these into one
// PaymentSplit row per payment.
type DealBroker struct {
	ent.Schema
}

func (DealBroker) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (DealBroker) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("deal_id", uuid.UUID{}).
			Comment("FK → deals.id"),

		field.UUID("broker_id", uuid.UUID{}).
			Comment("FK → brokers.id"),

		percentField("origination_percent"),
		percentField("site_percent"),
		percentField("deal_percent"),
	}
}

func (DealBroker) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("deal", Deal.Type).
			Ref("broker_interests").
			Unique().
			Required().
			Field("deal_id"),
		edge.From("broker", Broker.Type).
			Ref("deal_interests").
			Unique().
			Required().
			Field("broker_id"),
	}
}

func (DealBroker) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("deal_id", "broker_id").Unique(),
	}
}
