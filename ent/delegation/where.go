// Code generated by ent, DO NOT EDIT.

package delegation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"oaflow.io/oaflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Delegation {
	return predicate.Delegation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Delegation {
	return predicate.Delegation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Delegation {
	return predicate.Delegation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Delegation {
	return predicate.Delegation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Delegation {
	return predicate.Delegation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Delegation {
	return predicate.Delegation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Delegation {
	return predicate.Delegation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Delegation {
	return predicate.Delegation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Delegation {
	return predicate.Delegation(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Delegation {
	return predicate.Delegation(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Delegation {
	return predicate.Delegation(sql.FieldEQ(FieldUpdatedAt, v))
}

// DelegatorUserID applies equality check predicate on the "delegator_user_id" field. It's identical to DelegatorUserIDEQ.
func DelegatorUserID(v int) predicate.Delegation {
	return predicate.Delegation(sql.FieldEQ(FieldDelegatorUserID, v))
}

// DelegateUserID applies equality check predicate on the "delegate_user_id" field. It's identical to DelegateUserIDEQ.
func DelegateUserID(v int) predicate.Delegation {
	return predicate.Delegation(sql.FieldEQ(FieldDelegateUserID, v))
}

// Active applies equality check predicate on the "active" field. It's identical to ActiveEQ.
func Active(v bool) predicate.Delegation {
	return predicate.Delegation(sql.FieldEQ(FieldActive, v))
}

// RevokedAt applies equality check predicate on the "revoked_at" field. It's identical to RevokedAtEQ.
func RevokedAt(v time.Time) predicate.Delegation {
	return predicate.Delegation(sql.FieldEQ(FieldRevokedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Delegation {
	return predicate.Delegation(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Delegation {
	return predicate.Delegation(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Delegation {
	return predicate.Delegation(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Delegation {
	return predicate.Delegation(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Delegation {
	return predicate.Delegation(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Delegation {
	return predicate.Delegation(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Delegation {
	return predicate.Delegation(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Delegation {
	return predicate.Delegation(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Delegation {
	return predicate.Delegation(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Delegation {
	return predicate.Delegation(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Delegation {
	return predicate.Delegation(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Delegation {
	return predicate.Delegation(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Delegation {
	return predicate.Delegation(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Delegation {
	return predicate.Delegation(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Delegation {
	return predicate.Delegation(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Delegation {
	return predicate.Delegation(sql.FieldLTE(FieldUpdatedAt, v))
}

// DelegatorUserIDEQ applies the EQ predicate on the "delegator_user_id" field.
func DelegatorUserIDEQ(v int) predicate.Delegation {
	return predicate.Delegation(sql.FieldEQ(FieldDelegatorUserID, v))
}

// DelegatorUserIDNEQ applies the NEQ predicate on the "delegator_user_id" field.
func DelegatorUserIDNEQ(v int) predicate.Delegation {
	return predicate.Delegation(sql.FieldNEQ(FieldDelegatorUserID, v))
}

// DelegatorUserIDIn applies the In predicate on the "delegator_user_id" field.
func DelegatorUserIDIn(vs ...int) predicate.Delegation {
	return predicate.Delegation(sql.FieldIn(FieldDelegatorUserID, vs...))
}

// DelegatorUserIDNotIn applies the NotIn predicate on the "delegator_user_id" field.
func DelegatorUserIDNotIn(vs ...int) predicate.Delegation {
	return predicate.Delegation(sql.FieldNotIn(FieldDelegatorUserID, vs...))
}

// DelegatorUserIDGT applies the GT predicate on the "delegator_user_id" field.
func DelegatorUserIDGT(v int) predicate.Delegation {
	return predicate.Delegation(sql.FieldGT(FieldDelegatorUserID, v))
}

// DelegatorUserIDGTE applies the GTE predicate on the "delegator_user_id" field.
func DelegatorUserIDGTE(v int) predicate.Delegation {
	return predicate.Delegation(sql.FieldGTE(FieldDelegatorUserID, v))
}

// DelegatorUserIDLT applies the LT predicate on the "delegator_user_id" field.
func DelegatorUserIDLT(v int) predicate.Delegation {
	return predicate.Delegation(sql.FieldLT(FieldDelegatorUserID, v))
}

// DelegatorUserIDLTE applies the LTE predicate on the "delegator_user_id" field.
func DelegatorUserIDLTE(v int) predicate.Delegation {
	return predicate.Delegation(sql.FieldLTE(FieldDelegatorUserID, v))
}

// DelegateUserIDEQ applies the EQ predicate on the "delegate_user_id" field.
func DelegateUserIDEQ(v int) predicate.Delegation {
	return predicate.Delegation(sql.FieldEQ(FieldDelegateUserID, v))
}

// DelegateUserIDNEQ applies the NEQ predicate on the "delegate_user_id" field.
func DelegateUserIDNEQ(v int) predicate.Delegation {
	return predicate.Delegation(sql.FieldNEQ(FieldDelegateUserID, v))
}

// DelegateUserIDIn applies the In predicate on the "delegate_user_id" field.
func DelegateUserIDIn(vs ...int) predicate.Delegation {
	return predicate.Delegation(sql.FieldIn(FieldDelegateUserID, vs...))
}

// DelegateUserIDNotIn applies the NotIn predicate on the "delegate_user_id" field.
func DelegateUserIDNotIn(vs ...int) predicate.Delegation {
	return predicate.Delegation(sql.FieldNotIn(FieldDelegateUserID, vs...))
}

// DelegateUserIDGT applies the GT predicate on the "delegate_user_id" field.
func DelegateUserIDGT(v int) predicate.Delegation {
	return predicate.Delegation(sql.FieldGT(FieldDelegateUserID, v))
}

// DelegateUserIDGTE applies the GTE predicate on the "delegate_user_id" field.
func DelegateUserIDGTE(v int) predicate.Delegation {
	return predicate.Delegation(sql.FieldGTE(FieldDelegateUserID, v))
}

// DelegateUserIDLT applies the LT predicate on the "delegate_user_id" field.
func DelegateUserIDLT(v int) predicate.Delegation {
	return predicate.Delegation(sql.FieldLT(FieldDelegateUserID, v))
}

// DelegateUserIDLTE applies the LTE predicate on the "delegate_user_id" field.
func DelegateUserIDLTE(v int) predicate.Delegation {
	return predicate.Delegation(sql.FieldLTE(FieldDelegateUserID, v))
}

// DelegateUserIDIsNil applies the IsNil predicate on the "delegate_user_id" field.
func DelegateUserIDIsNil() predicate.Delegation {
	return predicate.Delegation(sql.FieldIsNull(FieldDelegateUserID))
}

// DelegateUserIDNotNil applies the NotNil predicate on the "delegate_user_id" field.
func DelegateUserIDNotNil() predicate.Delegation {
	return predicate.Delegation(sql.FieldNotNull(FieldDelegateUserID))
}

// ActiveEQ applies the EQ predicate on the "active" field.
func ActiveEQ(v bool) predicate.Delegation {
	return predicate.Delegation(sql.FieldEQ(FieldActive, v))
}

// ActiveNEQ applies the NEQ predicate on the "active" field.
func ActiveNEQ(v bool) predicate.Delegation {
	return predicate.Delegation(sql.FieldNEQ(FieldActive, v))
}

// RevokedAtEQ applies the EQ predicate on the "revoked_at" field.
func RevokedAtEQ(v time.Time) predicate.Delegation {
	return predicate.Delegation(sql.FieldEQ(FieldRevokedAt, v))
}

// RevokedAtNEQ applies the NEQ predicate on the "revoked_at" field.
func RevokedAtNEQ(v time.Time) predicate.Delegation {
	return predicate.Delegation(sql.FieldNEQ(FieldRevokedAt, v))
}

// RevokedAtIn applies the In predicate on the "revoked_at" field.
func RevokedAtIn(vs ...time.Time) predicate.Delegation {
	return predicate.Delegation(sql.FieldIn(FieldRevokedAt, vs...))
}

// RevokedAtNotIn applies the NotIn predicate on the "revoked_at" field.
func RevokedAtNotIn(vs ...time.Time) predicate.Delegation {
	return predicate.Delegation(sql.FieldNotIn(FieldRevokedAt, vs...))
}

// RevokedAtGT applies the GT predicate on the "revoked_at" field.
func RevokedAtGT(v time.Time) predicate.Delegation {
	return predicate.Delegation(sql.FieldGT(FieldRevokedAt, v))
}

// RevokedAtGTE applies the GTE predicate on the "revoked_at" field.
func RevokedAtGTE(v time.Time) predicate.Delegation {
	return predicate.Delegation(sql.FieldGTE(FieldRevokedAt, v))
}

// RevokedAtLT applies the LT predicate on the "revoked_at" field.
func RevokedAtLT(v time.Time) predicate.Delegation {
	return predicate.Delegation(sql.FieldLT(FieldRevokedAt, v))
}

// RevokedAtLTE applies the LTE predicate on the "revoked_at" field.
func RevokedAtLTE(v time.Time) predicate.Delegation {
	return predicate.Delegation(sql.FieldLTE(FieldRevokedAt, v))
}

// RevokedAtIsNil applies the IsNil predicate on the "revoked_at" field.
func RevokedAtIsNil() predicate.Delegation {
	return predicate.Delegation(sql.FieldIsNull(FieldRevokedAt))
}

// RevokedAtNotNil applies the NotNil predicate on the "revoked_at" field.
func RevokedAtNotNil() predicate.Delegation {
	return predicate.Delegation(sql.FieldNotNull(FieldRevokedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Delegation) predicate.Delegation {
	return predicate.Delegation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Delegation) predicate.Delegation {
	return predicate.Delegation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Delegation) predicate.Delegation {
	return predicate.Delegation(sql.NotPredicates(p))
}
