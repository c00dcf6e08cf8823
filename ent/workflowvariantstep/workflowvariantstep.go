// Code generated by ent, DO NOT EDIT.

package workflowvariantstep

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the workflowvariantstep type in the database.
	Label = "workflow_variant_step"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldWorkflowKey holds the string denoting the workflow_key field in the database.
	FieldWorkflowKey = "workflow_key"
	// FieldStepOrder holds the string denoting the step_order field in the database.
	FieldStepOrder = "step_order"
	// FieldStepKey holds the string denoting the step_key field in the database.
	FieldStepKey = "step_key"
	// FieldAssigneeKind holds the string denoting the assignee_kind field in the database.
	FieldAssigneeKind = "assignee_kind"
	// FieldAssigneeValue holds the string denoting the assignee_value field in the database.
	FieldAssigneeValue = "assignee_value"
	// FieldConditionKind holds the string denoting the condition_kind field in the database.
	FieldConditionKind = "condition_kind"
	// FieldConditionValue holds the string denoting the condition_value field in the database.
	FieldConditionValue = "condition_value"
	// Table holds the table name of the workflowvariantstep in the database.
	Table = "workflow_variant_steps"
)

// Columns holds all SQL columns for workflowvariantstep fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldWorkflowKey,
	FieldStepOrder,
	FieldStepKey,
	FieldAssigneeKind,
	FieldAssigneeValue,
	FieldConditionKind,
	FieldConditionValue,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// WorkflowKeyValidator is a validator for the "workflow_key" field. It is called by the builders before save.
	WorkflowKeyValidator func(string) error
	// StepOrderValidator is a validator for the "step_order" field. It is called by the builders before save.
	StepOrderValidator func(int) error
	// StepKeyValidator is a validator for the "step_key" field. It is called by the builders before save.
	StepKeyValidator func(string) error
	// AssigneeKindValidator is a validator for the "assignee_kind" field. It is called by the builders before save.
	AssigneeKindValidator func(string) error
)

// OrderOption defines the ordering options for the WorkflowVariantStep queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByWorkflowKey orders the results by the workflow_key field.
func ByWorkflowKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkflowKey, opts...).ToFunc()
}

// ByStepOrder orders the results by the step_order field.
func ByStepOrder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStepOrder, opts...).ToFunc()
}

// ByStepKey orders the results by the step_key field.
func ByStepKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStepKey, opts...).ToFunc()
}

// ByAssigneeKind orders the results by the assignee_kind field.
func ByAssigneeKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssigneeKind, opts...).ToFunc()
}

// ByAssigneeValue orders the results by the assignee_value field.
func ByAssigneeValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssigneeValue, opts...).ToFunc()
}

// ByConditionKind orders the results by the condition_kind field.
func ByConditionKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConditionKind, opts...).ToFunc()
}

// ByConditionValue orders the results by the condition_value field.
func ByConditionValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConditionValue, opts...).ToFunc()
}
