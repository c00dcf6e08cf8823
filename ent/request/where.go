// Code generated by ent, DO NOT EDIT.

package request

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"oaflow.io/oaflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldUserID, v))
}

// RequestType applies equality check predicate on the "request_type" field. It's identical to RequestTypeEQ.
func RequestType(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldRequestType, v))
}

// WorkflowKey applies equality check predicate on the "workflow_key" field. It's identical to WorkflowKeyEQ.
func WorkflowKey(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldWorkflowKey, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldTitle, v))
}

// Body applies equality check predicate on the "body" field. It's identical to BodyEQ.
func Body(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldBody, v))
}

// DecidedBy applies equality check predicate on the "decided_by" field. It's identical to DecidedByEQ.
func DecidedBy(v int) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldDecidedBy, v))
}

// DecidedAt applies equality check predicate on the "decided_at" field. It's identical to DecidedAtEQ.
func DecidedAt(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldDecidedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v int) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v int) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v int) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v int) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldUserID, v))
}

// RequestTypeEQ applies the EQ predicate on the "request_type" field.
func RequestTypeEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldRequestType, v))
}

// RequestTypeNEQ applies the NEQ predicate on the "request_type" field.
func RequestTypeNEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldRequestType, v))
}

// RequestTypeIn applies the In predicate on the "request_type" field.
func RequestTypeIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldRequestType, vs...))
}

// RequestTypeNotIn applies the NotIn predicate on the "request_type" field.
func RequestTypeNotIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldRequestType, vs...))
}

// RequestTypeGT applies the GT predicate on the "request_type" field.
func RequestTypeGT(v string) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldRequestType, v))
}

// RequestTypeGTE applies the GTE predicate on the "request_type" field.
func RequestTypeGTE(v string) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldRequestType, v))
}

// RequestTypeLT applies the LT predicate on the "request_type" field.
func RequestTypeLT(v string) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldRequestType, v))
}

// RequestTypeLTE applies the LTE predicate on the "request_type" field.
func RequestTypeLTE(v string) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldRequestType, v))
}

// RequestTypeContains applies the Contains predicate on the "request_type" field.
func RequestTypeContains(v string) predicate.Request {
	return predicate.Request(sql.FieldContains(FieldRequestType, v))
}

// RequestTypeHasPrefix applies the HasPrefix predicate on the "request_type" field.
func RequestTypeHasPrefix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasPrefix(FieldRequestType, v))
}

// RequestTypeHasSuffix applies the HasSuffix predicate on the "request_type" field.
func RequestTypeHasSuffix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasSuffix(FieldRequestType, v))
}

// RequestTypeEqualFold applies the EqualFold predicate on the "request_type" field.
func RequestTypeEqualFold(v string) predicate.Request {
	return predicate.Request(sql.FieldEqualFold(FieldRequestType, v))
}

// RequestTypeContainsFold applies the ContainsFold predicate on the "request_type" field.
func RequestTypeContainsFold(v string) predicate.Request {
	return predicate.Request(sql.FieldContainsFold(FieldRequestType, v))
}

// WorkflowKeyEQ applies the EQ predicate on the "workflow_key" field.
func WorkflowKeyEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldWorkflowKey, v))
}

// WorkflowKeyNEQ applies the NEQ predicate on the "workflow_key" field.
func WorkflowKeyNEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldWorkflowKey, v))
}

// WorkflowKeyIn applies the In predicate on the "workflow_key" field.
func WorkflowKeyIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldWorkflowKey, vs...))
}

// WorkflowKeyNotIn applies the NotIn predicate on the "workflow_key" field.
func WorkflowKeyNotIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldWorkflowKey, vs...))
}

// WorkflowKeyGT applies the GT predicate on the "workflow_key" field.
func WorkflowKeyGT(v string) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldWorkflowKey, v))
}

// WorkflowKeyGTE applies the GTE predicate on the "workflow_key" field.
func WorkflowKeyGTE(v string) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldWorkflowKey, v))
}

// WorkflowKeyLT applies the LT predicate on the "workflow_key" field.
func WorkflowKeyLT(v string) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldWorkflowKey, v))
}

// WorkflowKeyLTE applies the LTE predicate on the "workflow_key" field.
func WorkflowKeyLTE(v string) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldWorkflowKey, v))
}

// WorkflowKeyContains applies the Contains predicate on the "workflow_key" field.
func WorkflowKeyContains(v string) predicate.Request {
	return predicate.Request(sql.FieldContains(FieldWorkflowKey, v))
}

// WorkflowKeyHasPrefix applies the HasPrefix predicate on the "workflow_key" field.
func WorkflowKeyHasPrefix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasPrefix(FieldWorkflowKey, v))
}

// WorkflowKeyHasSuffix applies the HasSuffix predicate on the "workflow_key" field.
func WorkflowKeyHasSuffix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasSuffix(FieldWorkflowKey, v))
}

// WorkflowKeyIsNil applies the IsNil predicate on the "workflow_key" field.
func WorkflowKeyIsNil() predicate.Request {
	return predicate.Request(sql.FieldIsNull(FieldWorkflowKey))
}

// WorkflowKeyNotNil applies the NotNil predicate on the "workflow_key" field.
func WorkflowKeyNotNil() predicate.Request {
	return predicate.Request(sql.FieldNotNull(FieldWorkflowKey))
}

// WorkflowKeyEqualFold applies the EqualFold predicate on the "workflow_key" field.
func WorkflowKeyEqualFold(v string) predicate.Request {
	return predicate.Request(sql.FieldEqualFold(FieldWorkflowKey, v))
}

// WorkflowKeyContainsFold applies the ContainsFold predicate on the "workflow_key" field.
func WorkflowKeyContainsFold(v string) predicate.Request {
	return predicate.Request(sql.FieldContainsFold(FieldWorkflowKey, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Request {
	return predicate.Request(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Request {
	return predicate.Request(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Request {
	return predicate.Request(sql.FieldContainsFold(FieldTitle, v))
}

// BodyEQ applies the EQ predicate on the "body" field.
func BodyEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldBody, v))
}

// BodyNEQ applies the NEQ predicate on the "body" field.
func BodyNEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldBody, v))
}

// BodyIn applies the In predicate on the "body" field.
func BodyIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldBody, vs...))
}

// BodyNotIn applies the NotIn predicate on the "body" field.
func BodyNotIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldBody, vs...))
}

// BodyGT applies the GT predicate on the "body" field.
func BodyGT(v string) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldBody, v))
}

// BodyGTE applies the GTE predicate on the "body" field.
func BodyGTE(v string) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldBody, v))
}

// BodyLT applies the LT predicate on the "body" field.
func BodyLT(v string) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldBody, v))
}

// BodyLTE applies the LTE predicate on the "body" field.
func BodyLTE(v string) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldBody, v))
}

// BodyContains applies the Contains predicate on the "body" field.
func BodyContains(v string) predicate.Request {
	return predicate.Request(sql.FieldContains(FieldBody, v))
}

// BodyHasPrefix applies the HasPrefix predicate on the "body" field.
func BodyHasPrefix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasPrefix(FieldBody, v))
}

// BodyHasSuffix applies the HasSuffix predicate on the "body" field.
func BodyHasSuffix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasSuffix(FieldBody, v))
}

// BodyEqualFold applies the EqualFold predicate on the "body" field.
func BodyEqualFold(v string) predicate.Request {
	return predicate.Request(sql.FieldEqualFold(FieldBody, v))
}

// BodyContainsFold applies the ContainsFold predicate on the "body" field.
func BodyContainsFold(v string) predicate.Request {
	return predicate.Request(sql.FieldContainsFold(FieldBody, v))
}

// PayloadIsNil applies the IsNil predicate on the "payload" field.
func PayloadIsNil() predicate.Request {
	return predicate.Request(sql.FieldIsNull(FieldPayload))
}

// PayloadNotNil applies the NotNil predicate on the "payload" field.
func PayloadNotNil() predicate.Request {
	return predicate.Request(sql.FieldNotNull(FieldPayload))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldStatus, vs...))
}

// DecidedByEQ applies the EQ predicate on the "decided_by" field.
func DecidedByEQ(v int) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldDecidedBy, v))
}

// DecidedByNEQ applies the NEQ predicate on the "decided_by" field.
func DecidedByNEQ(v int) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldDecidedBy, v))
}

// DecidedByIn applies the In predicate on the "decided_by" field.
func DecidedByIn(vs ...int) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldDecidedBy, vs...))
}

// DecidedByNotIn applies the NotIn predicate on the "decided_by" field.
func DecidedByNotIn(vs ...int) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldDecidedBy, vs...))
}

// DecidedByGT applies the GT predicate on the "decided_by" field.
func DecidedByGT(v int) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldDecidedBy, v))
}

// DecidedByGTE applies the GTE predicate on the "decided_by" field.
func DecidedByGTE(v int) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldDecidedBy, v))
}

// DecidedByLT applies the LT predicate on the "decided_by" field.
func DecidedByLT(v int) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldDecidedBy, v))
}

// DecidedByLTE applies the LTE predicate on the "decided_by" field.
func DecidedByLTE(v int) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldDecidedBy, v))
}

// DecidedByIsNil applies the IsNil predicate on the "decided_by" field.
func DecidedByIsNil() predicate.Request {
	return predicate.Request(sql.FieldIsNull(FieldDecidedBy))
}

// DecidedByNotNil applies the NotNil predicate on the "decided_by" field.
func DecidedByNotNil() predicate.Request {
	return predicate.Request(sql.FieldNotNull(FieldDecidedBy))
}

// DecidedAtEQ applies the EQ predicate on the "decided_at" field.
func DecidedAtEQ(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldDecidedAt, v))
}

// DecidedAtNEQ applies the NEQ predicate on the "decided_at" field.
func DecidedAtNEQ(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldDecidedAt, v))
}

// DecidedAtIn applies the In predicate on the "decided_at" field.
func DecidedAtIn(vs ...time.Time) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldDecidedAt, vs...))
}

// DecidedAtNotIn applies the NotIn predicate on the "decided_at" field.
func DecidedAtNotIn(vs ...time.Time) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldDecidedAt, vs...))
}

// DecidedAtGT applies the GT predicate on the "decided_at" field.
func DecidedAtGT(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldDecidedAt, v))
}

// DecidedAtGTE applies the GTE predicate on the "decided_at" field.
func DecidedAtGTE(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldDecidedAt, v))
}

// DecidedAtLT applies the LT predicate on the "decided_at" field.
func DecidedAtLT(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldDecidedAt, v))
}

// DecidedAtLTE applies the LTE predicate on the "decided_at" field.
func DecidedAtLTE(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldDecidedAt, v))
}

// DecidedAtIsNil applies the IsNil predicate on the "decided_at" field.
func DecidedAtIsNil() predicate.Request {
	return predicate.Request(sql.FieldIsNull(FieldDecidedAt))
}

// DecidedAtNotNil applies the NotNil predicate on the "decided_at" field.
func DecidedAtNotNil() predicate.Request {
	return predicate.Request(sql.FieldNotNull(FieldDecidedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Request) predicate.Request {
	return predicate.Request(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Request) predicate.Request {
	return predicate.Request(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Request) predicate.Request {
	return predicate.Request(sql.NotPredicates(p))
}
