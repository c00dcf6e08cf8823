package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WorkflowVariantStep is one step of a variant's route. Steps reference their
// variant by workflow_key so a variant can be replaced wholesale without
// touching historical tasks.
type WorkflowVariantStep struct {
	ent.Schema
}

// Mixin of the WorkflowVariantStep.
func (WorkflowVariantStep) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{},
	}
}

// Fields of the WorkflowVariantStep.
func (WorkflowVariantStep) Fields() []ent.Field {
	return []ent.Field{
		field.String("workflow_key").
			NotEmpty(),
		field.Int("step_order").
			Positive(),
		field.String("step_key").
			NotEmpty(),
		// assignee_kind and condition_kind are open strings on purpose:
		// rows written by newer code with kinds this binary does not know
		// must still load. The engine falls back safely on unknown kinds.
		field.String("assignee_kind").
			NotEmpty(),
		field.String("assignee_value").
			Optional(),
		field.String("condition_kind").
			Optional(),
		field.String("condition_value").
			Optional(),
	}
}

// Indexes of the WorkflowVariantStep.
func (WorkflowVariantStep) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workflow_key", "step_order").
			Unique(),
	}
}
