// Code generated by ent, DO NOT EDIT.

package workflowvariant

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the workflowvariant type in the database.
	Label = "workflow_variant"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldWorkflowKey holds the string denoting the workflow_key field in the database.
	FieldWorkflowKey = "workflow_key"
	// FieldRequestType holds the string denoting the request_type field in the database.
	FieldRequestType = "request_type"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldScopeKind holds the string denoting the scope_kind field in the database.
	FieldScopeKind = "scope_kind"
	// FieldScopeValue holds the string denoting the scope_value field in the database.
	FieldScopeValue = "scope_value"
	// FieldEnabled holds the string denoting the enabled field in the database.
	FieldEnabled = "enabled"
	// FieldIsDefault holds the string denoting the is_default field in the database.
	FieldIsDefault = "is_default"
	// Table holds the table name of the workflowvariant in the database.
	Table = "workflow_variants"
)

// Columns holds all SQL columns for workflowvariant fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldWorkflowKey,
	FieldRequestType,
	FieldName,
	FieldCategory,
	FieldScopeKind,
	FieldScopeValue,
	FieldEnabled,
	FieldIsDefault,
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
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// WorkflowKeyValidator is a validator for the "workflow_key" field. It is called by the builders before save.
	WorkflowKeyValidator func(string) error
	// RequestTypeValidator is a validator for the "request_type" field. It is called by the builders before save.
	RequestTypeValidator func(string) error
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultCategory holds the default value on creation for the "category" field.
	DefaultCategory string
	// DefaultEnabled holds the default value on creation for the "enabled" field.
	DefaultEnabled bool
	// DefaultIsDefault holds the default value on creation for the "is_default" field.
	DefaultIsDefault bool
)

// ScopeKind defines the type for the "scope_kind" enum field.
type ScopeKind string

// ScopeKindGlobal is the default value of the ScopeKind enum.
const DefaultScopeKind = ScopeKindGlobal

// ScopeKind values.
const (
	ScopeKindGlobal ScopeKind = "global"
	ScopeKindDept   ScopeKind = "dept"
)

func (sk ScopeKind) String() string {
	return string(sk)
}

// ScopeKindValidator is a validator for the "scope_kind" field enum values. It is called by the builders before save.
func ScopeKindValidator(sk ScopeKind) error {
	switch sk {
	case ScopeKindGlobal, ScopeKindDept:
		return nil
	default:
		return fmt.Errorf("workflowvariant: invalid enum value for scope_kind field: %q", sk)
	}
}

// OrderOption defines the ordering options for the WorkflowVariant queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByWorkflowKey orders the results by the workflow_key field.
func ByWorkflowKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkflowKey, opts...).ToFunc()
}

// ByRequestType orders the results by the request_type field.
func ByRequestType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequestType, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByScopeKind orders the results by the scope_kind field.
func ByScopeKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScopeKind, opts...).ToFunc()
}

// ByScopeValue orders the results by the scope_value field.
func ByScopeValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScopeValue, opts...).ToFunc()
}

// ByEnabled orders the results by the enabled field.
func ByEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnabled, opts...).ToFunc()
}

// ByIsDefault orders the results by the is_default field.
func ByIsDefault(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsDefault, opts...).ToFunc()
}
