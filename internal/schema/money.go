package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/schema/field"
	"github.com/shopspring/decimal"
)

// moneyField is a Postgres numeric(14,2) column surfaced as a
// shopspring decimal. All dollar amounts in the commission tables use
// this instead of float64 so derived values survive round-tripping.
func moneyField(name string) ent.Field {
	return field.Float(name).
		GoType(decimal.Decimal{}).
		SchemaType(map[string]string{
			dialect.Postgres: "numeric(14,2)",
		})
}

// percentField is a 0–100 weight with four decimal places of precision.
func percentField(name string) ent.Field {
	return field.Float(name).
		GoType(decimal.Decimal{}).
		SchemaType(map[string]string{
			dialect.Postgres: "numeric(7,4)",
		})
}

// splitUSDField keeps four decimal places so a broker total is always
// the exact sum of its category parts; cents rounding happens at the
// presentation layer.
func splitUSDField(name string) ent.Field {
	return field.Float(name).
		GoType(decimal.Decimal{}).
		SchemaType(map[string]string{
			dialect.Postgres: "numeric(16,4)",
		})
}
