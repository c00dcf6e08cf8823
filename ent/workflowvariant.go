// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"oaflow.io/oaflow/ent/workflowvariant"
)

// WorkflowVariant is the model entity for the WorkflowVariant schema.
type WorkflowVariant struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// WorkflowKey holds the value of the "workflow_key" field.
	WorkflowKey string `json:"workflow_key,omitempty"`
	// RequestType holds the value of the "request_type" field.
	RequestType string `json:"request_type,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Category holds the value of the "category" field.
	Category string `json:"category,omitempty"`
	// ScopeKind holds the value of the "scope_kind" field.
	ScopeKind workflowvariant.ScopeKind `json:"scope_kind,omitempty"`
	// ScopeValue holds the value of the "scope_value" field.
	ScopeValue *string `json:"scope_value,omitempty"`
	// Enabled holds the value of the "enabled" field.
	Enabled bool `json:"enabled,omitempty"`
	// IsDefault holds the value of the "is_default" field.
	IsDefault    bool `json:"is_default,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WorkflowVariant) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case workflowvariant.FieldEnabled, workflowvariant.FieldIsDefault:
			values[i] = new(sql.NullBool)
		case workflowvariant.FieldID:
			values[i] = new(sql.NullInt64)
		case workflowvariant.FieldWorkflowKey, workflowvariant.FieldRequestType, workflowvariant.FieldName, workflowvariant.FieldCategory, workflowvariant.FieldScopeKind, workflowvariant.FieldScopeValue:
			values[i] = new(sql.NullString)
		case workflowvariant.FieldCreatedAt, workflowvariant.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WorkflowVariant fields.
func (_m *WorkflowVariant) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case workflowvariant.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case workflowvariant.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case workflowvariant.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case workflowvariant.FieldWorkflowKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workflow_key", values[i])
			} else if value.Valid {
				_m.WorkflowKey = value.String
			}
		case workflowvariant.FieldRequestType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field request_type", values[i])
			} else if value.Valid {
				_m.RequestType = value.String
			}
		case workflowvariant.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case workflowvariant.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case workflowvariant.FieldScopeKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scope_kind", values[i])
			} else if value.Valid {
				_m.ScopeKind = workflowvariant.ScopeKind(value.String)
			}
		case workflowvariant.FieldScopeValue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scope_value", values[i])
			} else if value.Valid {
				_m.ScopeValue = new(string)
				*_m.ScopeValue = value.String
			}
		case workflowvariant.FieldEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field enabled", values[i])
			} else if value.Valid {
				_m.Enabled = value.Bool
			}
		case workflowvariant.FieldIsDefault:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_default", values[i])
			} else if value.Valid {
				_m.IsDefault = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the WorkflowVariant.
// This includes values selected through modifiers, order, etc.
func (_m *WorkflowVariant) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this WorkflowVariant.
// Note that you need to call WorkflowVariant.Unwrap() before calling this method if this WorkflowVariant
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *WorkflowVariant) Update() *WorkflowVariantUpdateOne {
	return NewWorkflowVariantClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the WorkflowVariant entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *WorkflowVariant) Unwrap() *WorkflowVariant {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: WorkflowVariant is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *WorkflowVariant) String() string {
	var builder strings.Builder
	builder.WriteString("WorkflowVariant(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("workflow_key=")
	builder.WriteString(_m.WorkflowKey)
	builder.WriteString(", ")
	builder.WriteString("request_type=")
	builder.WriteString(_m.RequestType)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("scope_kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.ScopeKind))
	builder.WriteString(", ")
	if v := _m.ScopeValue; v != nil {
		builder.WriteString("scope_value=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.Enabled))
	builder.WriteString(", ")
	builder.WriteString("is_default=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsDefault))
	builder.WriteByte(')')
	return builder.String()
}

// WorkflowVariants is a parsable slice of WorkflowVariant.
type WorkflowVariants []*WorkflowVariant
