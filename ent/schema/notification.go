package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Notification is an in-app inbox entry fanned out to watchers and owners
// on terminal and return transitions. Old read notifications are pruned by
// a periodic cleanup job.
type Notification struct {
	ent.Schema
}

// Mixin of the Notification.
func (Notification) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{},
	}
}

// Fields of the Notification.
func (Notification) Fields() []ent.Field {
	return []ent.Field{
		field.Int("user_id"),
		field.Int("request_id").
			Optional().
			Nillable(),
		field.String("event_type").
			NotEmpty(),
		field.Int("actor_user_id").
			Optional().
			Nillable(),
		field.String("message").
			Optional(),
		field.Time("read_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the Notification.
func (Notification) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "read_at"),
		index.Fields("request_id"),
	}
}
