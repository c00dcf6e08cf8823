package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User holds the schema definition for platform user accounts.
// role is a free-form tag ("admin", "user", "finance", ...); the admin role
// unlocks the administrative surface and the transfer bypass.
type User struct {
	ent.Schema
}

// Mixin of the User.
func (User) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("username").
			NotEmpty().
			MaxLen(255),
		field.String("password_hash").
			NotEmpty().
			Sensitive(),
		field.String("role").
			NotEmpty().
			Default("user"),
		field.String("dept").
			Optional().
			Nillable(),
		field.Int("manager_id").
			Optional().
			Nillable(),
		field.Int("dept_id").
			Optional().
			Nillable(),
		field.String("position").
			Optional().
			Nillable(),
	}
}

// Indexes of the User.
func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("username").Unique(),
		index.Fields("role"),
	}
}
