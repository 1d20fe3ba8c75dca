package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// RestaurantTrend is one (location, survey year) sales-trend row.
// The year comes from the feed filename, not the file contents.
type RestaurantTrend struct {
	ent.Schema
}

func (RestaurantTrend) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (RestaurantTrend) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("location_id", uuid.UUID{}).
			Comment("FK → restaurant_locations.id"),

		field.Int("year"),

		field.String("curr_natl_grade").
			Optional().
			Nillable().
			MaxLen(5),

		field.Float("curr_natl_index").
			Optional().
			Nillable(),

		field.Float("curr_annual_sls_k").
			Optional().
			Nillable().
			Comment("Current annual sales in $000"),

		field.String("curr_mkt_grade").
			Optional().
			Nillable().
			MaxLen(5),

		field.Float("curr_mkt_index").
			Optional().
			Nillable(),

		field.String("past_natl_grade").
			Optional().
			Nillable().
			MaxLen(5),

		field.Float("past_natl_index").
			Optional().
			Nillable(),

		field.Float("past_annual_sls_k").
			Optional().
			Nillable(),

		field.String("past_mkt_grade").
			Optional().
			Nillable().
			MaxLen(5),

		field.Float("past_mkt_index").
			Optional().
			Nillable(),

		field.Int("survey_yr_last").
			Optional().
			Nillable(),

		field.Int("survey_yr_next").
			Optional().
			Nillable(),

		field.Int("total_surveys").
			Optional().
			Nillable(),
	}
}

func (RestaurantTrend) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("location", RestaurantLocation.Type).
			Ref("trends").
			Unique().
			Required().
			Field("location_id"),
	}
}

func (RestaurantTrend) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("location_id", "year").Unique(),
		index.Fields("year"),
	}
}
