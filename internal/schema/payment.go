package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment is one scheduled installment of a deal's fee. Amount, AGCI
// and referral fee are derived by the commission calculators on every
// write; amount_override pins the amount against recomputation.
// Payments are archived (soft-deleted) when a deal is lost and only
// hard-deleted during schedule regeneration.
type Payment struct {
	ent.Schema
}

func (Payment) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (Payment) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("deal_id", uuid.UUID{}).
			Comment("FK → deals.id"),

		field.Int("sequence").
			NonNegative().
			Comment("1-based position in the deal's payment schedule"),

		moneyField("payment_amount"),

		field.Bool("amount_override").
			Default(false).
			Comment("True once a human has pinned payment_amount"),

		moneyField("agci"),

		moneyField("referral_fee_usd"),

		// Inlined percentField (money.go): field.Float returns an
		// unexported builder, so Optional/Nillable can't be chained
		// onto the helper's ent.Field return value.
		field.Float("referral_fee_percent_override").
			GoType(decimal.Decimal{}).
			SchemaType(map[string]string{
				dialect.Postgres: "numeric(7,4)",
			}).
			Optional().
			Nillable(),

		field.Time("payment_date").
			Optional().
			Nillable().
			Comment("Expected payment date"),

		field.Bool("payment_received").
			Default(false),

		field.Time("received_date").
			Optional().
			Nillable(),

		field.Bool("is_active").
			Default(true),

		field.Int("commission_version").
			Default(1).
			Comment("Deal commission_version this row was generated under"),

		field.String("invoice_number").
			Optional().
			Nillable().
			MaxLen(50),
	}
}

func (Payment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("deal", Deal.Type).
			Ref("payments").
			Unique().
			Required().
			Field("deal_id"),
		edge.To("splits", PaymentSplit.Type),
	}
}

func (Payment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("deal_id", "sequence"),
		index.Fields("deal_id", "is_active"),
		index.Fields("deal_id", "payment_received"),
	}
}
