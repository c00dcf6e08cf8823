// Code generated by ent, DO NOT EDIT.

package task

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"oaflow.io/oaflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCreatedAt, v))
}

// RequestID applies equality check predicate on the "request_id" field. It's identical to RequestIDEQ.
func RequestID(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldRequestID, v))
}

// StepOrder applies equality check predicate on the "step_order" field. It's identical to StepOrderEQ.
func StepOrder(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldStepOrder, v))
}

// StepKey applies equality check predicate on the "step_key" field. It's identical to StepKeyEQ.
func StepKey(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldStepKey, v))
}

// AssigneeUserID applies equality check predicate on the "assignee_user_id" field. It's identical to AssigneeUserIDEQ.
func AssigneeUserID(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldAssigneeUserID, v))
}

// AssigneeRole applies equality check predicate on the "assignee_role" field. It's identical to AssigneeRoleEQ.
func AssigneeRole(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldAssigneeRole, v))
}

// DecidedBy applies equality check predicate on the "decided_by" field. It's identical to DecidedByEQ.
func DecidedBy(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldDecidedBy, v))
}

// DecidedAt applies equality check predicate on the "decided_at" field. It's identical to DecidedAtEQ.
func DecidedAt(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldDecidedAt, v))
}

// Comment applies equality check predicate on the "comment" field. It's identical to CommentEQ.
func Comment(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldComment, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldCreatedAt, v))
}

// RequestIDEQ applies the EQ predicate on the "request_id" field.
func RequestIDEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldRequestID, v))
}

// RequestIDNEQ applies the NEQ predicate on the "request_id" field.
func RequestIDNEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldRequestID, v))
}

// RequestIDIn applies the In predicate on the "request_id" field.
func RequestIDIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldRequestID, vs...))
}

// RequestIDNotIn applies the NotIn predicate on the "request_id" field.
func RequestIDNotIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldRequestID, vs...))
}

// RequestIDGT applies the GT predicate on the "request_id" field.
func RequestIDGT(v int) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldRequestID, v))
}

// RequestIDGTE applies the GTE predicate on the "request_id" field.
func RequestIDGTE(v int) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldRequestID, v))
}

// RequestIDLT applies the LT predicate on the "request_id" field.
func RequestIDLT(v int) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldRequestID, v))
}

// RequestIDLTE applies the LTE predicate on the "request_id" field.
func RequestIDLTE(v int) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldRequestID, v))
}

// StepOrderEQ applies the EQ predicate on the "step_order" field.
func StepOrderEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldStepOrder, v))
}

// StepOrderNEQ applies the NEQ predicate on the "step_order" field.
func StepOrderNEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldStepOrder, v))
}

// StepOrderIn applies the In predicate on the "step_order" field.
func StepOrderIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldStepOrder, vs...))
}

// StepOrderNotIn applies the NotIn predicate on the "step_order" field.
func StepOrderNotIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldStepOrder, vs...))
}

// StepOrderGT applies the GT predicate on the "step_order" field.
func StepOrderGT(v int) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldStepOrder, v))
}

// StepOrderGTE applies the GTE predicate on the "step_order" field.
func StepOrderGTE(v int) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldStepOrder, v))
}

// StepOrderLT applies the LT predicate on the "step_order" field.
func StepOrderLT(v int) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldStepOrder, v))
}

// StepOrderLTE applies the LTE predicate on the "step_order" field.
func StepOrderLTE(v int) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldStepOrder, v))
}

// StepOrderIsNil applies the IsNil predicate on the "step_order" field.
func StepOrderIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldStepOrder))
}

// StepOrderNotNil applies the NotNil predicate on the "step_order" field.
func StepOrderNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldStepOrder))
}

// StepKeyEQ applies the EQ predicate on the "step_key" field.
func StepKeyEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldStepKey, v))
}

// StepKeyNEQ applies the NEQ predicate on the "step_key" field.
func StepKeyNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldStepKey, v))
}

// StepKeyIn applies the In predicate on the "step_key" field.
func StepKeyIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldStepKey, vs...))
}

// StepKeyNotIn applies the NotIn predicate on the "step_key" field.
func StepKeyNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldStepKey, vs...))
}

// StepKeyGT applies the GT predicate on the "step_key" field.
func StepKeyGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldStepKey, v))
}

// StepKeyGTE applies the GTE predicate on the "step_key" field.
func StepKeyGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldStepKey, v))
}

// StepKeyLT applies the LT predicate on the "step_key" field.
func StepKeyLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldStepKey, v))
}

// StepKeyLTE applies the LTE predicate on the "step_key" field.
func StepKeyLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldStepKey, v))
}

// StepKeyContains applies the Contains predicate on the "step_key" field.
func StepKeyContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldStepKey, v))
}

// StepKeyHasPrefix applies the HasPrefix predicate on the "step_key" field.
func StepKeyHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldStepKey, v))
}

// StepKeyHasSuffix applies the HasSuffix predicate on the "step_key" field.
func StepKeyHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldStepKey, v))
}

// StepKeyEqualFold applies the EqualFold predicate on the "step_key" field.
func StepKeyEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldStepKey, v))
}

// StepKeyContainsFold applies the ContainsFold predicate on the "step_key" field.
func StepKeyContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldStepKey, v))
}

// AssigneeUserIDEQ applies the EQ predicate on the "assignee_user_id" field.
func AssigneeUserIDEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldAssigneeUserID, v))
}

// AssigneeUserIDNEQ applies the NEQ predicate on the "assignee_user_id" field.
func AssigneeUserIDNEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldAssigneeUserID, v))
}

// AssigneeUserIDIn applies the In predicate on the "assignee_user_id" field.
func AssigneeUserIDIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldAssigneeUserID, vs...))
}

// AssigneeUserIDNotIn applies the NotIn predicate on the "assignee_user_id" field.
func AssigneeUserIDNotIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldAssigneeUserID, vs...))
}

// AssigneeUserIDGT applies the GT predicate on the "assignee_user_id" field.
func AssigneeUserIDGT(v int) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldAssigneeUserID, v))
}

// AssigneeUserIDGTE applies the GTE predicate on the "assignee_user_id" field.
func AssigneeUserIDGTE(v int) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldAssigneeUserID, v))
}

// AssigneeUserIDLT applies the LT predicate on the "assignee_user_id" field.
func AssigneeUserIDLT(v int) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldAssigneeUserID, v))
}

// AssigneeUserIDLTE applies the LTE predicate on the "assignee_user_id" field.
func AssigneeUserIDLTE(v int) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldAssigneeUserID, v))
}

// AssigneeUserIDIsNil applies the IsNil predicate on the "assignee_user_id" field.
func AssigneeUserIDIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldAssigneeUserID))
}

// AssigneeUserIDNotNil applies the NotNil predicate on the "assignee_user_id" field.
func AssigneeUserIDNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldAssigneeUserID))
}

// AssigneeRoleEQ applies the EQ predicate on the "assignee_role" field.
func AssigneeRoleEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldAssigneeRole, v))
}

// AssigneeRoleNEQ applies the NEQ predicate on the "assignee_role" field.
func AssigneeRoleNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldAssigneeRole, v))
}

// AssigneeRoleIn applies the In predicate on the "assignee_role" field.
func AssigneeRoleIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldAssigneeRole, vs...))
}

// AssigneeRoleNotIn applies the NotIn predicate on the "assignee_role" field.
func AssigneeRoleNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldAssigneeRole, vs...))
}

// AssigneeRoleGT applies the GT predicate on the "assignee_role" field.
func AssigneeRoleGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldAssigneeRole, v))
}

// AssigneeRoleGTE applies the GTE predicate on the "assignee_role" field.
func AssigneeRoleGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldAssigneeRole, v))
}

// AssigneeRoleLT applies the LT predicate on the "assignee_role" field.
func AssigneeRoleLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldAssigneeRole, v))
}

// AssigneeRoleLTE applies the LTE predicate on the "assignee_role" field.
func AssigneeRoleLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldAssigneeRole, v))
}

// AssigneeRoleContains applies the Contains predicate on the "assignee_role" field.
func AssigneeRoleContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldAssigneeRole, v))
}

// AssigneeRoleHasPrefix applies the HasPrefix predicate on the "assignee_role" field.
func AssigneeRoleHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldAssigneeRole, v))
}

// AssigneeRoleHasSuffix applies the HasSuffix predicate on the "assignee_role" field.
func AssigneeRoleHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldAssigneeRole, v))
}

// AssigneeRoleIsNil applies the IsNil predicate on the "assignee_role" field.
func AssigneeRoleIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldAssigneeRole))
}

// AssigneeRoleNotNil applies the NotNil predicate on the "assignee_role" field.
func AssigneeRoleNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldAssigneeRole))
}

// AssigneeRoleEqualFold applies the EqualFold predicate on the "assignee_role" field.
func AssigneeRoleEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldAssigneeRole, v))
}

// AssigneeRoleContainsFold applies the ContainsFold predicate on the "assignee_role" field.
func AssigneeRoleContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldAssigneeRole, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldStatus, vs...))
}

// DecidedByEQ applies the EQ predicate on the "decided_by" field.
func DecidedByEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldDecidedBy, v))
}

// DecidedByNEQ applies the NEQ predicate on the "decided_by" field.
func DecidedByNEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldDecidedBy, v))
}

// DecidedByIn applies the In predicate on the "decided_by" field.
func DecidedByIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldDecidedBy, vs...))
}

// DecidedByNotIn applies the NotIn predicate on the "decided_by" field.
func DecidedByNotIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldDecidedBy, vs...))
}

// DecidedByGT applies the GT predicate on the "decided_by" field.
func DecidedByGT(v int) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldDecidedBy, v))
}

// DecidedByGTE applies the GTE predicate on the "decided_by" field.
func DecidedByGTE(v int) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldDecidedBy, v))
}

// DecidedByLT applies the LT predicate on the "decided_by" field.
func DecidedByLT(v int) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldDecidedBy, v))
}

// DecidedByLTE applies the LTE predicate on the "decided_by" field.
func DecidedByLTE(v int) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldDecidedBy, v))
}

// DecidedByIsNil applies the IsNil predicate on the "decided_by" field.
func DecidedByIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldDecidedBy))
}

// DecidedByNotNil applies the NotNil predicate on the "decided_by" field.
func DecidedByNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldDecidedBy))
}

// DecidedAtEQ applies the EQ predicate on the "decided_at" field.
func DecidedAtEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldDecidedAt, v))
}

// DecidedAtNEQ applies the NEQ predicate on the "decided_at" field.
func DecidedAtNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldDecidedAt, v))
}

// DecidedAtIn applies the In predicate on the "decided_at" field.
func DecidedAtIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldDecidedAt, vs...))
}

// DecidedAtNotIn applies the NotIn predicate on the "decided_at" field.
func DecidedAtNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldDecidedAt, vs...))
}

// DecidedAtGT applies the GT predicate on the "decided_at" field.
func DecidedAtGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldDecidedAt, v))
}

// DecidedAtGTE applies the GTE predicate on the "decided_at" field.
func DecidedAtGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldDecidedAt, v))
}

// DecidedAtLT applies the LT predicate on the "decided_at" field.
func DecidedAtLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldDecidedAt, v))
}

// DecidedAtLTE applies the LTE predicate on the "decided_at" field.
func DecidedAtLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldDecidedAt, v))
}

// DecidedAtIsNil applies the IsNil predicate on the "decided_at" field.
func DecidedAtIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldDecidedAt))
}

// DecidedAtNotNil applies the NotNil predicate on the "decided_at" field.
func DecidedAtNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldDecidedAt))
}

// CommentEQ applies the EQ predicate on the "comment" field.
func CommentEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldComment, v))
}

// CommentNEQ applies the NEQ predicate on the "comment" field.
func CommentNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldComment, v))
}

// CommentIn applies the In predicate on the "comment" field.
func CommentIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldComment, vs...))
}

// CommentNotIn applies the NotIn predicate on the "comment" field.
func CommentNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldComment, vs...))
}

// CommentGT applies the GT predicate on the "comment" field.
func CommentGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldComment, v))
}

// CommentGTE applies the GTE predicate on the "comment" field.
func CommentGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldComment, v))
}

// CommentLT applies the LT predicate on the "comment" field.
func CommentLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldComment, v))
}

// CommentLTE applies the LTE predicate on the "comment" field.
func CommentLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldComment, v))
}

// CommentContains applies the Contains predicate on the "comment" field.
func CommentContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldComment, v))
}

// CommentHasPrefix applies the HasPrefix predicate on the "comment" field.
func CommentHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldComment, v))
}

// CommentHasSuffix applies the HasSuffix predicate on the "comment" field.
func CommentHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldComment, v))
}

// CommentIsNil applies the IsNil predicate on the "comment" field.
func CommentIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldComment))
}

// CommentNotNil applies the NotNil predicate on the "comment" field.
func CommentNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldComment))
}

// CommentEqualFold applies the EqualFold predicate on the "comment" field.
func CommentEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldComment, v))
}

// CommentContainsFold applies the ContainsFold predicate on the "comment" field.
func CommentContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldComment, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Task) predicate.Task {
	return predicate.Task(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Task) predicate.Task {
	return predicate.Task(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Task) predicate.Task {
	return predicate.Task(sql.NotPredicates(p))
}
