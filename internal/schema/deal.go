package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Deal is a brokerage engagement: a commission (fee) for placing a
// tenant, collected over a schedule of payments and split among the
// brokers on the deal. The commission fields here are the read-only
// inputs of the payment calculators.
type Deal struct {
	ent.Schema
}

func (Deal) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (Deal) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("client_id", uuid.UUID{}).
			Comment("FK → clients.id"),

		field.String("name").
			NotEmpty().
			MaxLen(255),

		field.String("property_address").
			Optional().
			Nillable().
			MaxLen(500),

		// "lost" is the sole terminal-loss stage; every other stage is
		// active from the payment engine's point of view.
		field.Enum("stage").
			Values("prospect", "negotiation", "contract", "closed", "lost", "on_hold").
			Default("prospect"),

		moneyField("fee"),

		field.Int("number_of_payments").
			Default(1).
			Comment("Scheduled payment count; must be positive before payments are written"),

		moneyField("agci"),

		percentField("origination_percent"),
		percentField("site_percent"),
		percentField("deal_percent"),

		percentField("referral_fee_percent"),

		field.Int("commission_version").
			Default(1).
			Comment("Bumped whenever any commission input changes; payments snapshot it at generation time"),

		field.Time("closed_date").
			Optional().
			Nillable(),
	}
}

func (Deal) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("customer", Customer.Type).
			Ref("deals").
			Unique().
			Required().
			Field("client_id"),
		edge.To("payments", Payment.Type),
		edge.To("broker_interests", DealBroker.Type),
	}
}

func (Deal) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("client_id", "stage"),
		index.Fields("stage", "created_at"),
	}
}
