package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RestaurantLocation is one surveyed restaurant site from the yearly
// trends feed. store_no is the feed's natural key; yearly reloads
// upsert on it.
type RestaurantLocation struct {
	ent.Schema
}

func (RestaurantLocation) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (RestaurantLocation) Fields() []ent.Field {
	return []ent.Field{
		field.String("store_no").
			NotEmpty().
			Unique().
			MaxLen(20),

		field.String("chain_no").
			Optional().
			Nillable().
			MaxLen(20),

		field.String("chain").
			Optional().
			Nillable().
			MaxLen(255),

		field.String("geoaddress").
			Optional().
			Nillable().
			MaxLen(500),

		field.String("geocity").
			Optional().
			Nillable().
			MaxLen(100),

		field.String("geostate").
			Optional().
			Nillable().
			MaxLen(2),

		field.String("geozip").
			Optional().
			Nillable().
			MaxLen(10),

		field.String("county").
			Optional().
			Nillable().
			MaxLen(100),

		field.String("dma_market").
			Optional().
			Nillable().
			MaxLen(200),

		field.String("segment").
			Optional().
			Nillable().
			MaxLen(100),

		field.String("subsegment").
			Optional().
			Nillable().
			MaxLen(100),

		field.String("category").
			Optional().
			Nillable().
			MaxLen(100),

		field.Float("latitude").
			Optional().
			Nillable(),

		field.Float("longitude").
			Optional().
			Nillable(),

		field.Int("yr_built").
			Optional().
			Nillable(),

		field.String("co_fr").
			Optional().
			Nillable().
			MaxLen(10).
			Comment("Company-operated vs franchise flag from the feed"),
	}
}

func (RestaurantLocation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("trends", RestaurantTrend.Type),
	}
}

func (RestaurantLocation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("geostate", "geocity"),
		index.Fields("chain"),
	}
}
