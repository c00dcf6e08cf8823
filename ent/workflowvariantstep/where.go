// Code generated by ent, DO NOT EDIT.

package workflowvariantstep

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"oaflow.io/oaflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldEQ(FieldCreatedAt, v))
}

// WorkflowKey applies equality check predicate on the "workflow_key" field. It's identical to WorkflowKeyEQ.
func WorkflowKey(v string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldEQ(FieldWorkflowKey, v))
}

// StepOrder applies equality check predicate on the "step_order" field. It's identical to StepOrderEQ.
func StepOrder(v int) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldEQ(FieldStepOrder, v))
}

// StepKey applies equality check predicate on the "step_key" field. It's identical to StepKeyEQ.
func StepKey(v string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldEQ(FieldStepKey, v))
}

// AssigneeKind applies equality check predicate on the "assignee_kind" field. It's identical to AssigneeKindEQ.
func AssigneeKind(v string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldEQ(FieldAssigneeKind, v))
}

// AssigneeValue applies equality check predicate on the "assignee_value" field. It's identical to AssigneeValueEQ.
func AssigneeValue(v string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldEQ(FieldAssigneeValue, v))
}

// ConditionKind applies equality check predicate on the "condition_kind" field. It's identical to ConditionKindEQ.
func ConditionKind(v string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldEQ(FieldConditionKind, v))
}

// ConditionValue applies equality check predicate on the "condition_value" field. It's identical to ConditionValueEQ.
func ConditionValue(v string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldEQ(FieldConditionValue, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldLTE(FieldCreatedAt, v))
}

// WorkflowKeyEQ applies the EQ predicate on the "workflow_key" field.
func WorkflowKeyEQ(v string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldEQ(FieldWorkflowKey, v))
}

// WorkflowKeyNEQ applies the NEQ predicate on the "workflow_key" field.
func WorkflowKeyNEQ(v string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldNEQ(FieldWorkflowKey, v))
}

// WorkflowKeyIn applies the In predicate on the "workflow_key" field.
func WorkflowKeyIn(vs ...string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldIn(FieldWorkflowKey, vs...))
}

// WorkflowKeyNotIn applies the NotIn predicate on the "workflow_key" field.
func WorkflowKeyNotIn(vs ...string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldNotIn(FieldWorkflowKey, vs...))
}

// WorkflowKeyGT applies the GT predicate on the "workflow_key" field.
func WorkflowKeyGT(v string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldGT(FieldWorkflowKey, v))
}

// WorkflowKeyGTE applies the GTE predicate on the "workflow_key" field.
func WorkflowKeyGTE(v string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldGTE(FieldWorkflowKey, v))
}

// WorkflowKeyLT applies the LT predicate on the "workflow_key" field.
func WorkflowKeyLT(v string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldLT(FieldWorkflowKey, v))
}

// WorkflowKeyLTE applies the LTE predicate on the "workflow_key" field.
func WorkflowKeyLTE(v string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldLTE(FieldWorkflowKey, v))
}

// WorkflowKeyContains applies the Contains predicate on the "workflow_key" field.
func WorkflowKeyContains(v string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldContains(FieldWorkflowKey, v))
}

// WorkflowKeyHasPrefix applies the HasPrefix predicate on the "workflow_key" field.
func WorkflowKeyHasPrefix(v string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldHasPrefix(FieldWorkflowKey, v))
}

// WorkflowKeyHasSuffix applies the HasSuffix predicate on the "workflow_key" field.
func WorkflowKeyHasSuffix(v string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldHasSuffix(FieldWorkflowKey, v))
}

// WorkflowKeyEqualFold applies the EqualFold predicate on the "workflow_key" field.
func WorkflowKeyEqualFold(v string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldEqualFold(FieldWorkflowKey, v))
}

// WorkflowKeyContainsFold applies the ContainsFold predicate on the "workflow_key" field.
func WorkflowKeyContainsFold(v string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldContainsFold(FieldWorkflowKey, v))
}

// StepOrderEQ applies the EQ predicate on the "step_order" field.
func StepOrderEQ(v int) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldEQ(FieldStepOrder, v))
}

// StepOrderNEQ applies the NEQ predicate on the "step_order" field.
func StepOrderNEQ(v int) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldNEQ(FieldStepOrder, v))
}

// StepOrderIn applies the In predicate on the "step_order" field.
func StepOrderIn(vs ...int) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldIn(FieldStepOrder, vs...))
}

// StepOrderNotIn applies the NotIn predicate on the "step_order" field.
func StepOrderNotIn(vs ...int) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldNotIn(FieldStepOrder, vs...))
}

// StepOrderGT applies the GT predicate on the "step_order" field.
func StepOrderGT(v int) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldGT(FieldStepOrder, v))
}

// StepOrderGTE applies the GTE predicate on the "step_order" field.
func StepOrderGTE(v int) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldGTE(FieldStepOrder, v))
}

// StepOrderLT applies the LT predicate on the "step_order" field.
func StepOrderLT(v int) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldLT(FieldStepOrder, v))
}

// StepOrderLTE applies the LTE predicate on the "step_order" field.
func StepOrderLTE(v int) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldLTE(FieldStepOrder, v))
}

// StepKeyEQ applies the EQ predicate on the "step_key" field.
func StepKeyEQ(v string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldEQ(FieldStepKey, v))
}

// StepKeyNEQ applies the NEQ predicate on the "step_key" field.
func StepKeyNEQ(v string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldNEQ(FieldStepKey, v))
}

// StepKeyIn applies the In predicate on the "step_key" field.
func StepKeyIn(vs ...string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldIn(FieldStepKey, vs...))
}

// StepKeyNotIn applies the NotIn predicate on the "step_key" field.
func StepKeyNotIn(vs ...string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldNotIn(FieldStepKey, vs...))
}

// StepKeyGT applies the GT predicate on the "step_key" field.
func StepKeyGT(v string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldGT(FieldStepKey, v))
}

// StepKeyGTE applies the GTE predicate on the "step_key" field.
func StepKeyGTE(v string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldGTE(FieldStepKey, v))
}

// StepKeyLT applies the LT predicate on the "step_key" field.
func StepKeyLT(v string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldLT(FieldStepKey, v))
}

// StepKeyLTE applies the LTE predicate on the "step_key" field.
func StepKeyLTE(v string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldLTE(FieldStepKey, v))
}

// StepKeyContains applies the Contains predicate on the "step_key" field.
func StepKeyContains(v string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldContains(FieldStepKey, v))
}

// StepKeyHasPrefix applies the HasPrefix predicate on the "step_key" field.
func StepKeyHasPrefix(v string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldHasPrefix(FieldStepKey, v))
}

// StepKeyHasSuffix applies the HasSuffix predicate on the "step_key" field.
func StepKeyHasSuffix(v string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldHasSuffix(FieldStepKey, v))
}

// StepKeyEqualFold applies the EqualFold predicate on the "step_key" field.
func StepKeyEqualFold(v string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldEqualFold(FieldStepKey, v))
}

// StepKeyContainsFold applies the ContainsFold predicate on the "step_key" field.
func StepKeyContainsFold(v string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldContainsFold(FieldStepKey, v))
}

// AssigneeKindEQ applies the EQ predicate on the "assignee_kind" field.
func AssigneeKindEQ(v string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldEQ(FieldAssigneeKind, v))
}

// AssigneeKindNEQ applies the NEQ predicate on the "assignee_kind" field.
func AssigneeKindNEQ(v string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldNEQ(FieldAssigneeKind, v))
}

// AssigneeKindIn applies the In predicate on the "assignee_kind" field.
func AssigneeKindIn(vs ...string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldIn(FieldAssigneeKind, vs...))
}

// AssigneeKindNotIn applies the NotIn predicate on the "assignee_kind" field.
func AssigneeKindNotIn(vs ...string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldNotIn(FieldAssigneeKind, vs...))
}

// AssigneeKindGT applies the GT predicate on the "assignee_kind" field.
func AssigneeKindGT(v string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldGT(FieldAssigneeKind, v))
}

// AssigneeKindGTE applies the GTE predicate on the "assignee_kind" field.
func AssigneeKindGTE(v string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldGTE(FieldAssigneeKind, v))
}

// AssigneeKindLT applies the LT predicate on the "assignee_kind" field.
func AssigneeKindLT(v string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldLT(FieldAssigneeKind, v))
}

// AssigneeKindLTE applies the LTE predicate on the "assignee_kind" field.
func AssigneeKindLTE(v string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldLTE(FieldAssigneeKind, v))
}

// AssigneeKindContains applies the Contains predicate on the "assignee_kind" field.
func AssigneeKindContains(v string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldContains(FieldAssigneeKind, v))
}

// AssigneeKindHasPrefix applies the HasPrefix predicate on the "assignee_kind" field.
func AssigneeKindHasPrefix(v string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldHasPrefix(FieldAssigneeKind, v))
}

// AssigneeKindHasSuffix applies the HasSuffix predicate on the "assignee_kind" field.
func AssigneeKindHasSuffix(v string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldHasSuffix(FieldAssigneeKind, v))
}

// AssigneeKindEqualFold applies the EqualFold predicate on the "assignee_kind" field.
func AssigneeKindEqualFold(v string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldEqualFold(FieldAssigneeKind, v))
}

// AssigneeKindContainsFold applies the ContainsFold predicate on the "assignee_kind" field.
func AssigneeKindContainsFold(v string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldContainsFold(FieldAssigneeKind, v))
}

// AssigneeValueEQ applies the EQ predicate on the "assignee_value" field.
func AssigneeValueEQ(v string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldEQ(FieldAssigneeValue, v))
}

// AssigneeValueNEQ applies the NEQ predicate on the "assignee_value" field.
func AssigneeValueNEQ(v string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldNEQ(FieldAssigneeValue, v))
}

// AssigneeValueIn applies the In predicate on the "assignee_value" field.
func AssigneeValueIn(vs ...string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldIn(FieldAssigneeValue, vs...))
}

// AssigneeValueNotIn applies the NotIn predicate on the "assignee_value" field.
func AssigneeValueNotIn(vs ...string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldNotIn(FieldAssigneeValue, vs...))
}

// AssigneeValueGT applies the GT predicate on the "assignee_value" field.
func AssigneeValueGT(v string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldGT(FieldAssigneeValue, v))
}

// AssigneeValueGTE applies the GTE predicate on the "assignee_value" field.
func AssigneeValueGTE(v string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldGTE(FieldAssigneeValue, v))
}

// AssigneeValueLT applies the LT predicate on the "assignee_value" field.
func AssigneeValueLT(v string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldLT(FieldAssigneeValue, v))
}

// AssigneeValueLTE applies the LTE predicate on the "assignee_value" field.
func AssigneeValueLTE(v string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldLTE(FieldAssigneeValue, v))
}

// AssigneeValueContains applies the Contains predicate on the "assignee_value" field.
func AssigneeValueContains(v string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldContains(FieldAssigneeValue, v))
}

// AssigneeValueHasPrefix applies the HasPrefix predicate on the "assignee_value" field.
func AssigneeValueHasPrefix(v string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldHasPrefix(FieldAssigneeValue, v))
}

// AssigneeValueHasSuffix applies the HasSuffix predicate on the "assignee_value" field.
func AssigneeValueHasSuffix(v string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldHasSuffix(FieldAssigneeValue, v))
}

// AssigneeValueIsNil applies the IsNil predicate on the "assignee_value" field.
func AssigneeValueIsNil() predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldIsNull(FieldAssigneeValue))
}

// AssigneeValueNotNil applies the NotNil predicate on the "assignee_value" field.
func AssigneeValueNotNil() predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldNotNull(FieldAssigneeValue))
}

// AssigneeValueEqualFold applies the EqualFold predicate on the "assignee_value" field.
func AssigneeValueEqualFold(v string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldEqualFold(FieldAssigneeValue, v))
}

// AssigneeValueContainsFold applies the ContainsFold predicate on the "assignee_value" field.
func AssigneeValueContainsFold(v string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldContainsFold(FieldAssigneeValue, v))
}

// ConditionKindEQ applies the EQ predicate on the "condition_kind" field.
func ConditionKindEQ(v string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldEQ(FieldConditionKind, v))
}

// ConditionKindNEQ applies the NEQ predicate on the "condition_kind" field.
func ConditionKindNEQ(v string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldNEQ(FieldConditionKind, v))
}

// ConditionKindIn applies the In predicate on the "condition_kind" field.
func ConditionKindIn(vs ...string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldIn(FieldConditionKind, vs...))
}

// ConditionKindNotIn applies the NotIn predicate on the "condition_kind" field.
func ConditionKindNotIn(vs ...string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldNotIn(FieldConditionKind, vs...))
}

// ConditionKindGT applies the GT predicate on the "condition_kind" field.
func ConditionKindGT(v string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldGT(FieldConditionKind, v))
}

// ConditionKindGTE applies the GTE predicate on the "condition_kind" field.
func ConditionKindGTE(v string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldGTE(FieldConditionKind, v))
}

// ConditionKindLT applies the LT predicate on the "condition_kind" field.
func ConditionKindLT(v string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldLT(FieldConditionKind, v))
}

// ConditionKindLTE applies the LTE predicate on the "condition_kind" field.
func ConditionKindLTE(v string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldLTE(FieldConditionKind, v))
}

// ConditionKindContains applies the Contains predicate on the "condition_kind" field.
func ConditionKindContains(v string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldContains(FieldConditionKind, v))
}

// ConditionKindHasPrefix applies the HasPrefix predicate on the "condition_kind" field.
func ConditionKindHasPrefix(v string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldHasPrefix(FieldConditionKind, v))
}

// ConditionKindHasSuffix applies the HasSuffix predicate on the "condition_kind" field.
func ConditionKindHasSuffix(v string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldHasSuffix(FieldConditionKind, v))
}

// ConditionKindIsNil applies the IsNil predicate on the "condition_kind" field.
func ConditionKindIsNil() predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldIsNull(FieldConditionKind))
}

// ConditionKindNotNil applies the NotNil predicate on the "condition_kind" field.
func ConditionKindNotNil() predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldNotNull(FieldConditionKind))
}

// ConditionKindEqualFold applies the EqualFold predicate on the "condition_kind" field.
func ConditionKindEqualFold(v string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldEqualFold(FieldConditionKind, v))
}

// ConditionKindContainsFold applies the ContainsFold predicate on the "condition_kind" field.
func ConditionKindContainsFold(v string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldContainsFold(FieldConditionKind, v))
}

// ConditionValueEQ applies the EQ predicate on the "condition_value" field.
func ConditionValueEQ(v string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldEQ(FieldConditionValue, v))
}

// ConditionValueNEQ applies the NEQ predicate on the "condition_value" field.
func ConditionValueNEQ(v string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldNEQ(FieldConditionValue, v))
}

// ConditionValueIn applies the In predicate on the "condition_value" field.
func ConditionValueIn(vs ...string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldIn(FieldConditionValue, vs...))
}

// ConditionValueNotIn applies the NotIn predicate on the "condition_value" field.
func ConditionValueNotIn(vs ...string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldNotIn(FieldConditionValue, vs...))
}

// ConditionValueGT applies the GT predicate on the "condition_value" field.
func ConditionValueGT(v string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldGT(FieldConditionValue, v))
}

// ConditionValueGTE applies the GTE predicate on the "condition_value" field.
func ConditionValueGTE(v string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldGTE(FieldConditionValue, v))
}

// ConditionValueLT applies the LT predicate on the "condition_value" field.
func ConditionValueLT(v string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldLT(FieldConditionValue, v))
}

// ConditionValueLTE applies the LTE predicate on the "condition_value" field.
func ConditionValueLTE(v string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldLTE(FieldConditionValue, v))
}

// ConditionValueContains applies the Contains predicate on the "condition_value" field.
func ConditionValueContains(v string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldContains(FieldConditionValue, v))
}

// ConditionValueHasPrefix applies the HasPrefix predicate on the "condition_value" field.
func ConditionValueHasPrefix(v string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldHasPrefix(FieldConditionValue, v))
}

// ConditionValueHasSuffix applies the HasSuffix predicate on the "condition_value" field.
func ConditionValueHasSuffix(v string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldHasSuffix(FieldConditionValue, v))
}

// ConditionValueIsNil applies the IsNil predicate on the "condition_value" field.
func ConditionValueIsNil() predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldIsNull(FieldConditionValue))
}

// ConditionValueNotNil applies the NotNil predicate on the "condition_value" field.
func ConditionValueNotNil() predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldNotNull(FieldConditionValue))
}

// ConditionValueEqualFold applies the EqualFold predicate on the "condition_value" field.
func ConditionValueEqualFold(v string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldEqualFold(FieldConditionValue, v))
}

// ConditionValueContainsFold applies the ContainsFold predicate on the "condition_value" field.
func ConditionValueContainsFold(v string) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.FieldContainsFold(FieldConditionValue, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WorkflowVariantStep) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WorkflowVariantStep) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WorkflowVariantStep) predicate.WorkflowVariantStep {
	return predicate.WorkflowVariantStep(sql.NotPredicates(p))
}
