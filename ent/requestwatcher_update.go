// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"oaflow.io/oaflow/ent/predicate"
	"oaflow.io/oaflow/ent/requestwatcher"
)

// RequestWatcherUpdate is the builder for updating RequestWatcher entities.
type RequestWatcherUpdate struct {
	config
	hooks    []Hook
	mutation *RequestWatcherMutation
}

// Where appends a list predicates to the RequestWatcherUpdate builder.
func (_u *RequestWatcherUpdate) Where(ps ...predicate.RequestWatcher) *RequestWatcherUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRequestID sets the "request_id" field.
func (_u *RequestWatcherUpdate) SetRequestID(v int) *RequestWatcherUpdate {
	_u.mutation.ResetRequestID()
	_u.mutation.SetRequestID(v)
	return _u
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_u *RequestWatcherUpdate) SetNillableRequestID(v *int) *RequestWatcherUpdate {
	if v != nil {
		_u.SetRequestID(*v)
	}
	return _u
}

// AddRequestID adds value to the "request_id" field.
func (_u *RequestWatcherUpdate) AddRequestID(v int) *RequestWatcherUpdate {
	_u.mutation.AddRequestID(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *RequestWatcherUpdate) SetUserID(v int) *RequestWatcherUpdate {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *RequestWatcherUpdate) SetNillableUserID(v *int) *RequestWatcherUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *RequestWatcherUpdate) AddUserID(v int) *RequestWatcherUpdate {
	_u.mutation.AddUserID(v)
	return _u
}

// SetKind sets the "kind" field.
func (_u *RequestWatcherUpdate) SetKind(v requestwatcher.Kind) *RequestWatcherUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *RequestWatcherUpdate) SetNillableKind(v *requestwatcher.Kind) *RequestWatcherUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// Mutation returns the RequestWatcherMutation object of the builder.
func (_u *RequestWatcherUpdate) Mutation() *RequestWatcherMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RequestWatcherUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RequestWatcherUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RequestWatcherUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RequestWatcherUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RequestWatcherUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := requestwatcher.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "RequestWatcher.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *RequestWatcherUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(requestwatcher.Table, requestwatcher.Columns, sqlgraph.NewFieldSpec(requestwatcher.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RequestID(); ok {
		_spec.SetField(requestwatcher.FieldRequestID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRequestID(); ok {
		_spec.AddField(requestwatcher.FieldRequestID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(requestwatcher.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(requestwatcher.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(requestwatcher.FieldKind, field.TypeEnum, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{requestwatcher.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RequestWatcherUpdateOne is the builder for updating a single RequestWatcher entity.
type RequestWatcherUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RequestWatcherMutation
}

// SetRequestID sets the "request_id" field.
func (_u *RequestWatcherUpdateOne) SetRequestID(v int) *RequestWatcherUpdateOne {
	_u.mutation.ResetRequestID()
	_u.mutation.SetRequestID(v)
	return _u
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_u *RequestWatcherUpdateOne) SetNillableRequestID(v *int) *RequestWatcherUpdateOne {
	if v != nil {
		_u.SetRequestID(*v)
	}
	return _u
}

// AddRequestID adds value to the "request_id" field.
func (_u *RequestWatcherUpdateOne) AddRequestID(v int) *RequestWatcherUpdateOne {
	_u.mutation.AddRequestID(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *RequestWatcherUpdateOne) SetUserID(v int) *RequestWatcherUpdateOne {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *RequestWatcherUpdateOne) SetNillableUserID(v *int) *RequestWatcherUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *RequestWatcherUpdateOne) AddUserID(v int) *RequestWatcherUpdateOne {
	_u.mutation.AddUserID(v)
	return _u
}

// SetKind sets the "kind" field.
func (_u *RequestWatcherUpdateOne) SetKind(v requestwatcher.Kind) *RequestWatcherUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *RequestWatcherUpdateOne) SetNillableKind(v *requestwatcher.Kind) *RequestWatcherUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// Mutation returns the RequestWatcherMutation object of the builder.
func (_u *RequestWatcherUpdateOne) Mutation() *RequestWatcherMutation {
	return _u.mutation
}

// Where appends a list predicates to the RequestWatcherUpdate builder.
func (_u *RequestWatcherUpdateOne) Where(ps ...predicate.RequestWatcher) *RequestWatcherUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RequestWatcherUpdateOne) Select(field string, fields ...string) *RequestWatcherUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RequestWatcher entity.
func (_u *RequestWatcherUpdateOne) Save(ctx context.Context) (*RequestWatcher, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RequestWatcherUpdateOne) SaveX(ctx context.Context) *RequestWatcher {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RequestWatcherUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RequestWatcherUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RequestWatcherUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := requestwatcher.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "RequestWatcher.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *RequestWatcherUpdateOne) sqlSave(ctx context.Context) (_node *RequestWatcher, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(requestwatcher.Table, requestwatcher.Columns, sqlgraph.NewFieldSpec(requestwatcher.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RequestWatcher.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, requestwatcher.FieldID)
		for _, f := range fields {
			if !requestwatcher.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != requestwatcher.FieldID {
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
	if value, ok := _u.mutation.RequestID(); ok {
		_spec.SetField(requestwatcher.FieldRequestID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRequestID(); ok {
		_spec.AddField(requestwatcher.FieldRequestID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(requestwatcher.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(requestwatcher.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(requestwatcher.FieldKind, field.TypeEnum, value)
	}
	_node = &RequestWatcher{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{requestwatcher.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
