// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"oaflow.io/oaflow/ent/delegation"
)

// Delegation is the model entity for the Delegation schema.
type Delegation struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// DelegatorUserID holds the value of the "delegator_user_id" field.
	DelegatorUserID int `json:"delegator_user_id,omitempty"`
	// DelegateUserID holds the value of the "delegate_user_id" field.
	DelegateUserID *int `json:"delegate_user_id,omitempty"`
	// Active holds the value of the "active" field.
	Active bool `json:"active,omitempty"`
	// RevokedAt holds the value of the "revoked_at" field.
	RevokedAt    *time.Time `json:"revoked_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Delegation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case delegation.FieldActive:
			values[i] = new(sql.NullBool)
		case delegation.FieldID, delegation.FieldDelegatorUserID, delegation.FieldDelegateUserID:
			values[i] = new(sql.NullInt64)
		case delegation.FieldCreatedAt, delegation.FieldUpdatedAt, delegation.FieldRevokedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Delegation fields.
func (_m *Delegation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case delegation.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case delegation.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case delegation.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case delegation.FieldDelegatorUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field delegator_user_id", values[i])
			} else if value.Valid {
				_m.DelegatorUserID = int(value.Int64)
			}
		case delegation.FieldDelegateUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field delegate_user_id", values[i])
			} else if value.Valid {
				_m.DelegateUserID = new(int)
				*_m.DelegateUserID = int(value.Int64)
			}
		case delegation.FieldActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field active", values[i])
			} else if value.Valid {
				_m.Active = value.Bool
			}
		case delegation.FieldRevokedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field revoked_at", values[i])
			} else if value.Valid {
				_m.RevokedAt = new(time.Time)
				*_m.RevokedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Delegation.
// This includes values selected through modifiers, order, etc.
func (_m *Delegation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Delegation.
// Note that you need to call Delegation.Unwrap() before calling this method if this Delegation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Delegation) Update() *DelegationUpdateOne {
	return NewDelegationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Delegation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Delegation) Unwrap() *Delegation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Delegation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Delegation) String() string {
	var builder strings.Builder
	builder.WriteString("Delegation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("delegator_user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DelegatorUserID))
	builder.WriteString(", ")
	if v := _m.DelegateUserID; v != nil {
		builder.WriteString("delegate_user_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("active=")
	builder.WriteString(fmt.Sprintf("%v", _m.Active))
	builder.WriteString(", ")
	if v := _m.RevokedAt; v != nil {
		builder.WriteString("revoked_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Delegations is a parsable slice of Delegation.
type Delegations []*Delegation
