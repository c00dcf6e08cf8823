package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Task holds the schema definition for the unit of work actors see in their
// inbox. Exactly one of assignee_user_id / assignee_role is set on creation;
// transfer rewrites the task to a user assignee and clears the role.
//
// step_order 0 is reserved for synthetic resubmit tasks so they sort before
// any real workflow step; null only occurs on legacy rows.
type Task struct {
	ent.Schema
}

// Mixin of the Task.
func (Task) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{},
	}
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.Int("request_id"),
		field.Int("step_order").
			Optional().
			Nillable(),
		field.String("step_key").
			NotEmpty(),
		field.Int("assignee_user_id").
			Optional().
			Nillable(),
		field.String("assignee_role").
			Optional().
			Nillable(),
		field.Enum("status").
			Values("pending", "approved", "rejected", "returned", "canceled").
			Default("pending"),
		field.Int("decided_by").
			Optional().
			Nillable(),
		field.Time("decided_at").
			Optional().
			Nillable(),
		field.String("comment").
			Optional().
			Nillable(),
	}
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("request_id", "step_order"),
		index.Fields("status", "assignee_user_id"),
		index.Fields("status", "assignee_role"),
	}
}
