// Code generated by ent, DO NOT EDIT.

package workflowvariant

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"oaflow.io/oaflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldEQ(FieldUpdatedAt, v))
}

// WorkflowKey applies equality check predicate on the "workflow_key" field. It's identical to WorkflowKeyEQ.
func WorkflowKey(v string) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldEQ(FieldWorkflowKey, v))
}

// RequestType applies equality check predicate on the "request_type" field. It's identical to RequestTypeEQ.
func RequestType(v string) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldEQ(FieldRequestType, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldEQ(FieldName, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldEQ(FieldCategory, v))
}

// ScopeValue applies equality check predicate on the "scope_value" field. It's identical to ScopeValueEQ.
func ScopeValue(v string) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldEQ(FieldScopeValue, v))
}

// Enabled applies equality check predicate on the "enabled" field. It's identical to EnabledEQ.
func Enabled(v bool) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldEQ(FieldEnabled, v))
}

// IsDefault applies equality check predicate on the "is_default" field. It's identical to IsDefaultEQ.
func IsDefault(v bool) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldEQ(FieldIsDefault, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldLTE(FieldUpdatedAt, v))
}

// WorkflowKeyEQ applies the EQ predicate on the "workflow_key" field.
func WorkflowKeyEQ(v string) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldEQ(FieldWorkflowKey, v))
}

// WorkflowKeyNEQ applies the NEQ predicate on the "workflow_key" field.
func WorkflowKeyNEQ(v string) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldNEQ(FieldWorkflowKey, v))
}

// WorkflowKeyIn applies the In predicate on the "workflow_key" field.
func WorkflowKeyIn(vs ...string) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldIn(FieldWorkflowKey, vs...))
}

// WorkflowKeyNotIn applies the NotIn predicate on the "workflow_key" field.
func WorkflowKeyNotIn(vs ...string) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldNotIn(FieldWorkflowKey, vs...))
}

// WorkflowKeyGT applies the GT predicate on the "workflow_key" field.
func WorkflowKeyGT(v string) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldGT(FieldWorkflowKey, v))
}

// WorkflowKeyGTE applies the GTE predicate on the "workflow_key" field.
func WorkflowKeyGTE(v string) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldGTE(FieldWorkflowKey, v))
}

// WorkflowKeyLT applies the LT predicate on the "workflow_key" field.
func WorkflowKeyLT(v string) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldLT(FieldWorkflowKey, v))
}

// WorkflowKeyLTE applies the LTE predicate on the "workflow_key" field.
func WorkflowKeyLTE(v string) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldLTE(FieldWorkflowKey, v))
}

// WorkflowKeyContains applies the Contains predicate on the "workflow_key" field.
func WorkflowKeyContains(v string) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldContains(FieldWorkflowKey, v))
}

// WorkflowKeyHasPrefix applies the HasPrefix predicate on the "workflow_key" field.
func WorkflowKeyHasPrefix(v string) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldHasPrefix(FieldWorkflowKey, v))
}

// WorkflowKeyHasSuffix applies the HasSuffix predicate on the "workflow_key" field.
func WorkflowKeyHasSuffix(v string) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldHasSuffix(FieldWorkflowKey, v))
}

// WorkflowKeyEqualFold applies the EqualFold predicate on the "workflow_key" field.
func WorkflowKeyEqualFold(v string) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldEqualFold(FieldWorkflowKey, v))
}

// WorkflowKeyContainsFold applies the ContainsFold predicate on the "workflow_key" field.
func WorkflowKeyContainsFold(v string) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldContainsFold(FieldWorkflowKey, v))
}

// RequestTypeEQ applies the EQ predicate on the "request_type" field.
func RequestTypeEQ(v string) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldEQ(FieldRequestType, v))
}

// RequestTypeNEQ applies the NEQ predicate on the "request_type" field.
func RequestTypeNEQ(v string) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldNEQ(FieldRequestType, v))
}

// RequestTypeIn applies the In predicate on the "request_type" field.
func RequestTypeIn(vs ...string) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldIn(FieldRequestType, vs...))
}

// RequestTypeNotIn applies the NotIn predicate on the "request_type" field.
func RequestTypeNotIn(vs ...string) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldNotIn(FieldRequestType, vs...))
}

// RequestTypeGT applies the GT predicate on the "request_type" field.
func RequestTypeGT(v string) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldGT(FieldRequestType, v))
}

// RequestTypeGTE applies the GTE predicate on the "request_type" field.
func RequestTypeGTE(v string) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldGTE(FieldRequestType, v))
}

// RequestTypeLT applies the LT predicate on the "request_type" field.
func RequestTypeLT(v string) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldLT(FieldRequestType, v))
}

// RequestTypeLTE applies the LTE predicate on the "request_type" field.
func RequestTypeLTE(v string) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldLTE(FieldRequestType, v))
}

// RequestTypeContains applies the Contains predicate on the "request_type" field.
func RequestTypeContains(v string) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldContains(FieldRequestType, v))
}

// RequestTypeHasPrefix applies the HasPrefix predicate on the "request_type" field.
func RequestTypeHasPrefix(v string) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldHasPrefix(FieldRequestType, v))
}

// RequestTypeHasSuffix applies the HasSuffix predicate on the "request_type" field.
func RequestTypeHasSuffix(v string) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldHasSuffix(FieldRequestType, v))
}

// RequestTypeEqualFold applies the EqualFold predicate on the "request_type" field.
func RequestTypeEqualFold(v string) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldEqualFold(FieldRequestType, v))
}

// RequestTypeContainsFold applies the ContainsFold predicate on the "request_type" field.
func RequestTypeContainsFold(v string) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldContainsFold(FieldRequestType, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldContainsFold(FieldName, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldContainsFold(FieldCategory, v))
}

// ScopeKindEQ applies the EQ predicate on the "scope_kind" field.
func ScopeKindEQ(v ScopeKind) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldEQ(FieldScopeKind, v))
}

// ScopeKindNEQ applies the NEQ predicate on the "scope_kind" field.
func ScopeKindNEQ(v ScopeKind) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldNEQ(FieldScopeKind, v))
}

// ScopeKindIn applies the In predicate on the "scope_kind" field.
func ScopeKindIn(vs ...ScopeKind) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldIn(FieldScopeKind, vs...))
}

// ScopeKindNotIn applies the NotIn predicate on the "scope_kind" field.
func ScopeKindNotIn(vs ...ScopeKind) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldNotIn(FieldScopeKind, vs...))
}

// ScopeValueEQ applies the EQ predicate on the "scope_value" field.
func ScopeValueEQ(v string) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldEQ(FieldScopeValue, v))
}

// ScopeValueNEQ applies the NEQ predicate on the "scope_value" field.
func ScopeValueNEQ(v string) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldNEQ(FieldScopeValue, v))
}

// ScopeValueIn applies the In predicate on the "scope_value" field.
func ScopeValueIn(vs ...string) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldIn(FieldScopeValue, vs...))
}

// ScopeValueNotIn applies the NotIn predicate on the "scope_value" field.
func ScopeValueNotIn(vs ...string) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldNotIn(FieldScopeValue, vs...))
}

// ScopeValueGT applies the GT predicate on the "scope_value" field.
func ScopeValueGT(v string) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldGT(FieldScopeValue, v))
}

// ScopeValueGTE applies the GTE predicate on the "scope_value" field.
func ScopeValueGTE(v string) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldGTE(FieldScopeValue, v))
}

// ScopeValueLT applies the LT predicate on the "scope_value" field.
func ScopeValueLT(v string) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldLT(FieldScopeValue, v))
}

// ScopeValueLTE applies the LTE predicate on the "scope_value" field.
func ScopeValueLTE(v string) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldLTE(FieldScopeValue, v))
}

// ScopeValueContains applies the Contains predicate on the "scope_value" field.
func ScopeValueContains(v string) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldContains(FieldScopeValue, v))
}

// ScopeValueHasPrefix applies the HasPrefix predicate on the "scope_value" field.
func ScopeValueHasPrefix(v string) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldHasPrefix(FieldScopeValue, v))
}

// ScopeValueHasSuffix applies the HasSuffix predicate on the "scope_value" field.
func ScopeValueHasSuffix(v string) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldHasSuffix(FieldScopeValue, v))
}

// ScopeValueIsNil applies the IsNil predicate on the "scope_value" field.
func ScopeValueIsNil() predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldIsNull(FieldScopeValue))
}

// ScopeValueNotNil applies the NotNil predicate on the "scope_value" field.
func ScopeValueNotNil() predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldNotNull(FieldScopeValue))
}

// ScopeValueEqualFold applies the EqualFold predicate on the "scope_value" field.
func ScopeValueEqualFold(v string) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldEqualFold(FieldScopeValue, v))
}

// ScopeValueContainsFold applies the ContainsFold predicate on the "scope_value" field.
func ScopeValueContainsFold(v string) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldContainsFold(FieldScopeValue, v))
}

// EnabledEQ applies the EQ predicate on the "enabled" field.
func EnabledEQ(v bool) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldEQ(FieldEnabled, v))
}

// EnabledNEQ applies the NEQ predicate on the "enabled" field.
func EnabledNEQ(v bool) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldNEQ(FieldEnabled, v))
}

// IsDefaultEQ applies the EQ predicate on the "is_default" field.
func IsDefaultEQ(v bool) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldEQ(FieldIsDefault, v))
}

// IsDefaultNEQ applies the NEQ predicate on the "is_default" field.
func IsDefaultNEQ(v bool) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.FieldNEQ(FieldIsDefault, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WorkflowVariant) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WorkflowVariant) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WorkflowVariant) predicate.WorkflowVariant {
	return predicate.WorkflowVariant(sql.NotPredicates(p))
}
