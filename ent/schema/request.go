package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Request holds the schema definition for user-submitted approval requests.
//
// Lifecycle: created pending, may cycle changes_requested ⇄ pending via
// return+resubmit, and terminates at exactly one of approved, rejected,
// withdrawn, or voided.
type Request struct {
	ent.Schema
}

// Mixin of the Request.
func (Request) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Request.
func (Request) Fields() []ent.Field {
	return []ent.Field{
		field.Int("user_id"),
		field.String("request_type").
			NotEmpty().
			Default("generic"),
		// Chosen catalog variant. Nullable for legacy rows; the engine
		// falls back to request_type → "generic" when it dangles.
		field.String("workflow_key").
			Optional().
			Nillable(),
		field.String("title").
			NotEmpty(),
		field.String("body").
			NotEmpty(),
		field.JSON("payload", map[string]interface{}{}).
			Optional(),
		field.Enum("status").
			Values("pending", "changes_requested", "approved", "rejected", "withdrawn", "voided").
			Default("pending"),
		field.Int("decided_by").
			Optional().
			Nillable(),
		field.Time("decided_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the Request.
func (Request) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("status"),
		index.Fields("request_type"),
	}
}
