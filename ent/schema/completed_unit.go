package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CompletedUnit records the first time a learner mastered every fact of a
// unit. Rows are never updated; a repeat completion keeps the original.
type CompletedUnit struct {
	ent.Schema
}

func (CompletedUnit) Fields() []ent.Field {
	return []ent.Field{
		field.String("unit_id").
			NotEmpty().
			Unique().
			Immutable().
			Comment("Unit identifier, e.g. add-3"),
		field.String("curriculum").
			NotEmpty().
			Comment("addition or subtraction"),
		field.Int("fact_count").
			NonNegative().
			Default(0).
			Comment("Facts in the unit when it was completed"),
		field.Time("completed_at").
			Default(time.Now).
			Immutable().
			Comment("UTC time of the first completion"),
	}
}

func (CompletedUnit) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("curriculum"),
	}
}
