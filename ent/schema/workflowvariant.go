package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WorkflowVariant is a named route definition for a request type. Variants
// are either global or scoped to a department; at most one enabled variant
// per (request_type, scope) should be the default, which Upsert enforces.
type WorkflowVariant struct {
	ent.Schema
}

// Mixin of the WorkflowVariant.
func (WorkflowVariant) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the WorkflowVariant.
func (WorkflowVariant) Fields() []ent.Field {
	return []ent.Field{
		field.String("workflow_key").
			NotEmpty().
			Unique(),
		field.String("request_type").
			NotEmpty(),
		field.String("name").
			NotEmpty(),
		field.String("category").
			Default("general"),
		field.Enum("scope_kind").
			Values("global", "dept").
			Default("global"),
		field.String("scope_value").
			Optional().
			Nillable(),
		field.Bool("enabled").
			Default(true),
		field.Bool("is_default").
			Default(false),
	}
}

// Indexes of the WorkflowVariant.
func (WorkflowVariant) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("request_type"),
		index.Fields("request_type", "scope_kind"),
		index.Fields("category"),
	}
}
