package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RequestEvent is the append-only audit trail of a request. Rows are never
// updated or deleted; id order is the causal order of events.
type RequestEvent struct {
	ent.Schema
}

// Mixin of the RequestEvent.
func (RequestEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{},
	}
}

// Fields of the RequestEvent.
func (RequestEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Int("request_id"),
		// Open string rather than an enum: readers must tolerate event
		// types written by newer code.
		field.String("event_type").
			NotEmpty(),
		field.Int("actor_user_id").
			Optional().
			Nillable(),
		field.String("message").
			Optional(),
	}
}

// Indexes of the RequestEvent.
func (RequestEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("request_id"),
		index.Fields("event_type"),
	}
}
