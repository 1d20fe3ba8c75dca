package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// PaymentSplit is one broker's dollar share of one payment, broken out
// by category. Rows are created by the schedule generator (one per
// broker interest per payment); the dollar values are only ever
// overwritten wholesale by the split recalculator, never incremented.
type PaymentSplit struct {
	ent.Schema
}

func (PaymentSplit) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (PaymentSplit) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("payment_id", uuid.UUID{}).
			Comment("FK → payments.id"),

		field.UUID("broker_id", uuid.UUID{}).
			Comment("FK → brokers.id"),

		percentField("split_origination_percent"),
		splitUSDField("split_origination_usd"),

		percentField("split_site_percent"),
		splitUSDField("split_site_usd"),

		percentField("split_deal_percent"),
		splitUSDField("split_deal_usd"),

		splitUSDField("split_broker_total"),

		field.Bool("paid").
			Default(false),

		field.Time("paid_date").
			Optional().
			Nillable(),
	}
}

func (PaymentSplit) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("payment", Payment.Type).
			Ref("splits").
			Unique().
			Required().
			Field("payment_id"),
		edge.From("broker", Broker.Type).
			Ref("payment_splits").
			Unique().
			Required().
			Field("broker_id"),
	}
}

func (PaymentSplit) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("payment_id", "broker_id").Unique(),
		index.Fields("broker_id", "paid"),
	}
}
