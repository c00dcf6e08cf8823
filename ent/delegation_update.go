// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"oaflow.io/oaflow/ent/delegation"
	"oaflow.io/oaflow/ent/predicate"
)

// DelegationUpdate is the builder for updating Delegation entities.
type DelegationUpdate struct {
	config
	hooks    []Hook
	mutation *DelegationMutation
}

// Where appends a list predicates to the DelegationUpdate builder.
func (_u *DelegationUpdate) Where(ps ...predicate.Delegation) *DelegationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DelegationUpdate) SetUpdatedAt(v time.Time) *DelegationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDelegatorUserID sets the "delegator_user_id" field.
func (_u *DelegationUpdate) SetDelegatorUserID(v int) *DelegationUpdate {
	_u.mutation.ResetDelegatorUserID()
	_u.mutation.SetDelegatorUserID(v)
	return _u
}

// SetNillableDelegatorUserID sets the "delegator_user_id" field if the given value is not nil.
func (_u *DelegationUpdate) SetNillableDelegatorUserID(v *int) *DelegationUpdate {
	if v != nil {
		_u.SetDelegatorUserID(*v)
	}
	return _u
}

// AddDelegatorUserID adds value to the "delegator_user_id" field.
func (_u *DelegationUpdate) AddDelegatorUserID(v int) *DelegationUpdate {
	_u.mutation.AddDelegatorUserID(v)
	return _u
}

// SetDelegateUserID sets the "delegate_user_id" field.
func (_u *DelegationUpdate) SetDelegateUserID(v int) *DelegationUpdate {
	_u.mutation.ResetDelegateUserID()
	_u.mutation.SetDelegateUserID(v)
	return _u
}

// SetNillableDelegateUserID sets the "delegate_user_id" field if the given value is not nil.
func (_u *DelegationUpdate) SetNillableDelegateUserID(v *int) *DelegationUpdate {
	if v != nil {
		_u.SetDelegateUserID(*v)
	}
	return _u
}

// AddDelegateUserID adds value to the "delegate_user_id" field.
func (_u *DelegationUpdate) AddDelegateUserID(v int) *DelegationUpdate {
	_u.mutation.AddDelegateUserID(v)
	return _u
}

// ClearDelegateUserID clears the value of the "delegate_user_id" field.
func (_u *DelegationUpdate) ClearDelegateUserID() *DelegationUpdate {
	_u.mutation.ClearDelegateUserID()
	return _u
}

// SetActive sets the "active" field.
func (_u *DelegationUpdate) SetActive(v bool) *DelegationUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *DelegationUpdate) SetNillableActive(v *bool) *DelegationUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetRevokedAt sets the "revoked_at" field.
func (_u *DelegationUpdate) SetRevokedAt(v time.Time) *DelegationUpdate {
	_u.mutation.SetRevokedAt(v)
	return _u
}

// SetNillableRevokedAt sets the "revoked_at" field if the given value is not nil.
func (_u *DelegationUpdate) SetNillableRevokedAt(v *time.Time) *DelegationUpdate {
	if v != nil {
		_u.SetRevokedAt(*v)
	}
	return _u
}

// ClearRevokedAt clears the value of the "revoked_at" field.
func (_u *DelegationUpdate) ClearRevokedAt() *DelegationUpdate {
	_u.mutation.ClearRevokedAt()
	return _u
}

// Mutation returns the DelegationMutation object of the builder.
func (_u *DelegationUpdate) Mutation() *DelegationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DelegationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DelegationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DelegationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DelegationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DelegationUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := delegation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *DelegationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(delegation.Table, delegation.Columns, sqlgraph.NewFieldSpec(delegation.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(delegation.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DelegatorUserID(); ok {
		_spec.SetField(delegation.FieldDelegatorUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDelegatorUserID(); ok {
		_spec.AddField(delegation.FieldDelegatorUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DelegateUserID(); ok {
		_spec.SetField(delegation.FieldDelegateUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDelegateUserID(); ok {
		_spec.AddField(delegation.FieldDelegateUserID, field.TypeInt, value)
	}
	if _u.mutation.DelegateUserIDCleared() {
		_spec.ClearField(delegation.FieldDelegateUserID, field.TypeInt)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(delegation.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RevokedAt(); ok {
		_spec.SetField(delegation.FieldRevokedAt, field.TypeTime, value)
	}
	if _u.mutation.RevokedAtCleared() {
		_spec.ClearField(delegation.FieldRevokedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{delegation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DelegationUpdateOne is the builder for updating a single Delegation entity.
type DelegationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DelegationMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DelegationUpdateOne) SetUpdatedAt(v time.Time) *DelegationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDelegatorUserID sets the "delegator_user_id" field.
func (_u *DelegationUpdateOne) SetDelegatorUserID(v int) *DelegationUpdateOne {
	_u.mutation.ResetDelegatorUserID()
	_u.mutation.SetDelegatorUserID(v)
	return _u
}

// SetNillableDelegatorUserID sets the "delegator_user_id" field if the given value is not nil.
func (_u *DelegationUpdateOne) SetNillableDelegatorUserID(v *int) *DelegationUpdateOne {
	if v != nil {
		_u.SetDelegatorUserID(*v)
	}
	return _u
}

// AddDelegatorUserID adds value to the "delegator_user_id" field.
func (_u *DelegationUpdateOne) AddDelegatorUserID(v int) *DelegationUpdateOne {
	_u.mutation.AddDelegatorUserID(v)
	return _u
}

// SetDelegateUserID sets the "delegate_user_id" field.
func (_u *DelegationUpdateOne) SetDelegateUserID(v int) *DelegationUpdateOne {
	_u.mutation.ResetDelegateUserID()
	_u.mutation.SetDelegateUserID(v)
	return _u
}

// SetNillableDelegateUserID sets the "delegate_user_id" field if the given value is not nil.
func (_u *DelegationUpdateOne) SetNillableDelegateUserID(v *int) *DelegationUpdateOne {
	if v != nil {
		_u.SetDelegateUserID(*v)
	}
	return _u
}

// AddDelegateUserID adds value to the "delegate_user_id" field.
func (_u *DelegationUpdateOne) AddDelegateUserID(v int) *DelegationUpdateOne {
	_u.mutation.AddDelegateUserID(v)
	return _u
}

// ClearDelegateUserID clears the value of the "delegate_user_id" field.
func (_u *DelegationUpdateOne) ClearDelegateUserID() *DelegationUpdateOne {
	_u.mutation.ClearDelegateUserID()
	return _u
}

// SetActive sets the "active" field.
func (_u *DelegationUpdateOne) SetActive(v bool) *DelegationUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *DelegationUpdateOne) SetNillableActive(v *bool) *DelegationUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetRevokedAt sets the "revoked_at" field.
func (_u *DelegationUpdateOne) SetRevokedAt(v time.Time) *DelegationUpdateOne {
	_u.mutation.SetRevokedAt(v)
	return _u
}

// SetNillableRevokedAt sets the "revoked_at" field if the given value is not nil.
func (_u *DelegationUpdateOne) SetNillableRevokedAt(v *time.Time) *DelegationUpdateOne {
	if v != nil {
		_u.SetRevokedAt(*v)
	}
	return _u
}

// ClearRevokedAt clears the value of the "revoked_at" field.
func (_u *DelegationUpdateOne) ClearRevokedAt() *DelegationUpdateOne {
	_u.mutation.ClearRevokedAt()
	return _u
}

// Mutation returns the DelegationMutation object of the builder.
func (_u *DelegationUpdateOne) Mutation() *DelegationMutation {
	return _u.mutation
}

// Where appends a list predicates to the DelegationUpdate builder.
func (_u *DelegationUpdateOne) Where(ps ...predicate.Delegation) *DelegationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DelegationUpdateOne) Select(field string, fields ...string) *DelegationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Delegation entity.
func (_u *DelegationUpdateOne) Save(ctx context.Context) (*Delegation, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DelegationUpdateOne) SaveX(ctx context.Context) *Delegation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DelegationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DelegationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DelegationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := delegation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *DelegationUpdateOne) sqlSave(ctx context.Context) (_node *Delegation, err error) {
	_spec := sqlgraph.NewUpdateSpec(delegation.Table, delegation.Columns, sqlgraph.NewFieldSpec(delegation.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Delegation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, delegation.FieldID)
		for _, f := range fields {
			if !delegation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != delegation.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(delegation.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DelegatorUserID(); ok {
		_spec.SetField(delegation.FieldDelegatorUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDelegatorUserID(); ok {
		_spec.AddField(delegation.FieldDelegatorUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DelegateUserID(); ok {
		_spec.SetField(delegation.FieldDelegateUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDelegateUserID(); ok {
		_spec.AddField(delegation.FieldDelegateUserID, field.TypeInt, value)
	}
	if _u.mutation.DelegateUserIDCleared() {
		_spec.ClearField(delegation.FieldDelegateUserID, field.TypeInt)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(delegation.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RevokedAt(); ok {
		_spec.SetField(delegation.FieldRevokedAt, field.TypeTime, value)
	}
	if _u.mutation.RevokedAtCleared() {
		_spec.ClearField(delegation.FieldRevokedAt, field.TypeTime)
	}
	_node = &Delegation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{delegation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
