package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Department is the org unit used for dept-scoped workflow variants and the
// dept_in step condition.
type Department struct {
	ent.Schema
}

// Mixin of the Department.
func (Department) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Department.
func (Department) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty(),
		field.String("code").
			NotEmpty().
			Unique(),
		field.Int("parent_id").
			Optional().
			Nillable(),
		field.Int("lead_user_id").
			Optional().
			Nillable(),
	}
}

// Indexes of the Department.
func (Department) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("parent_id"),
	}
}
