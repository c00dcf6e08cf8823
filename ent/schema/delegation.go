package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Delegation lets a user hand their approval authority to a colleague.
// One row per delegator; setting a new delegate overwrites the old one.
type Delegation struct {
	ent.Schema
}

// Mixin of the Delegation.
func (Delegation) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Delegation.
func (Delegation) Fields() []ent.Field {
	return []ent.Field{
		field.Int("delegator_user_id").
			Unique(),
		field.Int("delegate_user_id").
			Optional().
			Nillable(),
		field.Bool("active").
			Default(false),
		field.Time("revoked_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the Delegation.
func (Delegation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("delegate_user_id", "active"),
	}
}
