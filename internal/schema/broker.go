package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

// Broker is a commission-earning agent. Payout bank details are stored
// AES-256-GCM encrypted with a hash column for duplicate lookup.
type Broker struct {
	ent.Schema
}

func (Broker) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (Broker) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Optional().
			Nillable().
			Unique().
			Comment("FK → users.id when the broker has a login"),

		field.String("display_name").
			NotEmpty().
			MaxLen(200),

		field.String("email").
			Optional().
			Nillable().
			MaxLen(255),

		field.String("phone").
			Optional().
			Nillable().
			MaxLen(20).
			Comment("E.164, validated on write"),

		field.String("bank_account_encrypted").
			MaxLen(1000).
			Optional().
			Nillable().
			Sensitive().
			Comment("AES-256-GCM encrypted payout account"),

		field.String("bank_account_hash").
			MaxLen(64).
			Optional().
			Nillable().
			Comment("SHA-256 of the plaintext account for uniqueness lookup"),

		field.Bool("is_active").
			Default(true),
	}
}

func (Broker) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("deal_interests", DealBroker.Type),
		edge.To("payment_splits", PaymentSplit.Type),
	}
}
