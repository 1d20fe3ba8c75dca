package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// User is a staff login for the operations app. Brokers may optionally
// be linked to a user row for self-service access to their splits.
type User struct {
	ent.Schema
}

func (User) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("first_name").
			Optional().
			Nillable().
			MaxLen(100),

		field.String("last_name").
			Optional().
			Nillable().
			MaxLen(100),

		field.String("email").
			Unique().
			NotEmpty().
			MaxLen(255),

		field.String("phone").
			Optional().
			Nillable().
			MaxLen(20),

		field.String("password_hash").
			Optional().
			Nillable().
			Sensitive(),

		field.Bool("must_change_password").
			Default(true),

		field.Enum("role").
			Values("admin", "broker", "assistant").
			Default("assistant"),

		field.Enum("status").
			Values("ACTIVE", "SUSPENDED").
			Default("ACTIVE"),

		// audit
		field.Time("last_login_at").
			Optional().
			Nillable(),

		field.Int("failed_login_attempts").
			Default(0).
			NonNegative(),

		field.Time("locked_until").
			Optional().
			Nillable().
			Comment("Account locked until this time after repeated login failures"),

		field.Time("suspended_at").
			Optional().
			Nillable(),
	}
}
