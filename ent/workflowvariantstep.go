// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"oaflow.io/oaflow/ent/workflowvariantstep"
)

// WorkflowVariantStep is the model entity for the WorkflowVariantStep schema.
type WorkflowVariantStep struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// WorkflowKey holds the value of the "workflow_key" field.
	WorkflowKey string `json:"workflow_key,omitempty"`
	// StepOrder holds the value of the "step_order" field.
	StepOrder int `json:"step_order,omitempty"`
	// StepKey holds the value of the "step_key" field.
	StepKey string `json:"step_key,omitempty"`
	// AssigneeKind holds the value of the "assignee_kind" field.
	AssigneeKind string `json:"assignee_kind,omitempty"`
	// AssigneeValue holds the value of the "assignee_value" field.
	AssigneeValue string `json:"assignee_value,omitempty"`
	// ConditionKind holds the value of the "condition_kind" field.
	ConditionKind string `json:"condition_kind,omitempty"`
	// ConditionValue holds the value of the "condition_value" field.
	ConditionValue string `json:"condition_value,omitempty"`
	selectValues   sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WorkflowVariantStep) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case workflowvariantstep.FieldID, workflowvariantstep.FieldStepOrder:
			values[i] = new(sql.NullInt64)
		case workflowvariantstep.FieldWorkflowKey, workflowvariantstep.FieldStepKey, workflowvariantstep.FieldAssigneeKind, workflowvariantstep.FieldAssigneeValue, workflowvariantstep.FieldConditionKind, workflowvariantstep.FieldConditionValue:
			values[i] = new(sql.NullString)
		case workflowvariantstep.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WorkflowVariantStep fields.
func (_m *WorkflowVariantStep) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case workflowvariantstep.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case workflowvariantstep.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case workflowvariantstep.FieldWorkflowKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workflow_key", values[i])
			} else if value.Valid {
				_m.WorkflowKey = value.String
			}
		case workflowvariantstep.FieldStepOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field step_order", values[i])
			} else if value.Valid {
				_m.StepOrder = int(value.Int64)
			}
		case workflowvariantstep.FieldStepKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field step_key", values[i])
			} else if value.Valid {
				_m.StepKey = value.String
			}
		case workflowvariantstep.FieldAssigneeKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assignee_kind", values[i])
			} else if value.Valid {
				_m.AssigneeKind = value.String
			}
		case workflowvariantstep.FieldAssigneeValue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assignee_value", values[i])
			} else if value.Valid {
				_m.AssigneeValue = value.String
			}
		case workflowvariantstep.FieldConditionKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field condition_kind", values[i])
			} else if value.Valid {
				_m.ConditionKind = value.String
			}
		case workflowvariantstep.FieldConditionValue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field condition_value", values[i])
			} else if value.Valid {
				_m.ConditionValue = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the WorkflowVariantStep.
// This includes values selected through modifiers, order, etc.
func (_m *WorkflowVariantStep) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this WorkflowVariantStep.
// Note that you need to call WorkflowVariantStep.Unwrap() before calling this method if this WorkflowVariantStep
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *WorkflowVariantStep) Update() *WorkflowVariantStepUpdateOne {
	return NewWorkflowVariantStepClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the WorkflowVariantStep entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *WorkflowVariantStep) Unwrap() *WorkflowVariantStep {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: WorkflowVariantStep is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *WorkflowVariantStep) String() string {
	var builder strings.Builder
	builder.WriteString("WorkflowVariantStep(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("workflow_key=")
	builder.WriteString(_m.WorkflowKey)
	builder.WriteString(", ")
	builder.WriteString("step_order=")
	builder.WriteString(fmt.Sprintf("%v", _m.StepOrder))
	builder.WriteString(", ")
	builder.WriteString("step_key=")
	builder.WriteString(_m.StepKey)
	builder.WriteString(", ")
	builder.WriteString("assignee_kind=")
	builder.WriteString(_m.AssigneeKind)
	builder.WriteString(", ")
	builder.WriteString("assignee_value=")
	builder.WriteString(_m.AssigneeValue)
	builder.WriteString(", ")
	builder.WriteString("condition_kind=")
	builder.WriteString(_m.ConditionKind)
	builder.WriteString(", ")
	builder.WriteString("condition_value=")
	builder.WriteString(_m.ConditionValue)
	builder.WriteByte(')')
	return builder.String()
}

// WorkflowVariantSteps is a parsable slice of WorkflowVariantStep.
type WorkflowVariantSteps []*WorkflowVariantStep
