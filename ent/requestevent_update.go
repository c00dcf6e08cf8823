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
	"oaflow.io/oaflow/ent/requestevent"
)

// RequestEventUpdate is the builder for updating RequestEvent entities.
type RequestEventUpdate struct {
	config
	hooks    []Hook
	mutation *RequestEventMutation
}

// Where appends a list predicates to the RequestEventUpdate builder.
func (_u *RequestEventUpdate) Where(ps ...predicate.RequestEvent) *RequestEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRequestID sets the "request_id" field.
func (_u *RequestEventUpdate) SetRequestID(v int) *RequestEventUpdate {
	_u.mutation.ResetRequestID()
	_u.mutation.SetRequestID(v)
	return _u
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_u *RequestEventUpdate) SetNillableRequestID(v *int) *RequestEventUpdate {
	if v != nil {
		_u.SetRequestID(*v)
	}
	return _u
}

// AddRequestID adds value to the "request_id" field.
func (_u *RequestEventUpdate) AddRequestID(v int) *RequestEventUpdate {
	_u.mutation.AddRequestID(v)
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *RequestEventUpdate) SetEventType(v string) *RequestEventUpdate {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *RequestEventUpdate) SetNillableEventType(v *string) *RequestEventUpdate {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetActorUserID sets the "actor_user_id" field.
func (_u *RequestEventUpdate) SetActorUserID(v int) *RequestEventUpdate {
	_u.mutation.ResetActorUserID()
	_u.mutation.SetActorUserID(v)
	return _u
}

// SetNillableActorUserID sets the "actor_user_id" field if the given value is not nil.
func (_u *RequestEventUpdate) SetNillableActorUserID(v *int) *RequestEventUpdate {
	if v != nil {
		_u.SetActorUserID(*v)
	}
	return _u
}

// AddActorUserID adds value to the "actor_user_id" field.
func (_u *RequestEventUpdate) AddActorUserID(v int) *RequestEventUpdate {
	_u.mutation.AddActorUserID(v)
	return _u
}

// ClearActorUserID clears the value of the "actor_user_id" field.
func (_u *RequestEventUpdate) ClearActorUserID() *RequestEventUpdate {
	_u.mutation.ClearActorUserID()
	return _u
}

// SetMessage sets the "message" field.
func (_u *RequestEventUpdate) SetMessage(v string) *RequestEventUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *RequestEventUpdate) SetNillableMessage(v *string) *RequestEventUpdate {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// ClearMessage clears the value of the "message" field.
func (_u *RequestEventUpdate) ClearMessage() *RequestEventUpdate {
	_u.mutation.ClearMessage()
	return _u
}

// Mutation returns the RequestEventMutation object of the builder.
func (_u *RequestEventUpdate) Mutation() *RequestEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RequestEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RequestEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RequestEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RequestEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RequestEventUpdate) check() error {
	if v, ok := _u.mutation.EventType(); ok {
		if err := requestevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "RequestEvent.event_type": %w`, err)}
		}
	}
	return nil
}

func (_u *RequestEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(requestevent.Table, requestevent.Columns, sqlgraph.NewFieldSpec(requestevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RequestID(); ok {
		_spec.SetField(requestevent.FieldRequestID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRequestID(); ok {
		_spec.AddField(requestevent.FieldRequestID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(requestevent.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActorUserID(); ok {
		_spec.SetField(requestevent.FieldActorUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedActorUserID(); ok {
		_spec.AddField(requestevent.FieldActorUserID, field.TypeInt, value)
	}
	if _u.mutation.ActorUserIDCleared() {
		_spec.ClearField(requestevent.FieldActorUserID, field.TypeInt)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(requestevent.FieldMessage, field.TypeString, value)
	}
	if _u.mutation.MessageCleared() {
		_spec.ClearField(requestevent.FieldMessage, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{requestevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RequestEventUpdateOne is the builder for updating a single RequestEvent entity.
type RequestEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RequestEventMutation
}

// SetRequestID sets the "request_id" field.
func (_u *RequestEventUpdateOne) SetRequestID(v int) *RequestEventUpdateOne {
	_u.mutation.ResetRequestID()
	_u.mutation.SetRequestID(v)
	return _u
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_u *RequestEventUpdateOne) SetNillableRequestID(v *int) *RequestEventUpdateOne {
	if v != nil {
		_u.SetRequestID(*v)
	}
	return _u
}

// AddRequestID adds value to the "request_id" field.
func (_u *RequestEventUpdateOne) AddRequestID(v int) *RequestEventUpdateOne {
	_u.mutation.AddRequestID(v)
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *RequestEventUpdateOne) SetEventType(v string) *RequestEventUpdateOne {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *RequestEventUpdateOne) SetNillableEventType(v *string) *RequestEventUpdateOne {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetActorUserID sets the "actor_user_id" field.
func (_u *RequestEventUpdateOne) SetActorUserID(v int) *RequestEventUpdateOne {
	_u.mutation.ResetActorUserID()
	_u.mutation.SetActorUserID(v)
	return _u
}

// SetNillableActorUserID sets the "actor_user_id" field if the given value is not nil.
func (_u *RequestEventUpdateOne) SetNillableActorUserID(v *int) *RequestEventUpdateOne {
	if v != nil {
		_u.SetActorUserID(*v)
	}
	return _u
}

// AddActorUserID adds value to the "actor_user_id" field.
func (_u *RequestEventUpdateOne) AddActorUserID(v int) *RequestEventUpdateOne {
	_u.mutation.AddActorUserID(v)
	return _u
}

// ClearActorUserID clears the value of the "actor_user_id" field.
func (_u *RequestEventUpdateOne) ClearActorUserID() *RequestEventUpdateOne {
	_u.mutation.ClearActorUserID()
	return _u
}

// SetMessage sets the "message" field.
func (_u *RequestEventUpdateOne) SetMessage(v string) *RequestEventUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *RequestEventUpdateOne) SetNillableMessage(v *string) *RequestEventUpdateOne {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// ClearMessage clears the value of the "message" field.
func (_u *RequestEventUpdateOne) ClearMessage() *RequestEventUpdateOne {
	_u.mutation.ClearMessage()
	return _u
}

// Mutation returns the RequestEventMutation object of the builder.
func (_u *RequestEventUpdateOne) Mutation() *RequestEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the RequestEventUpdate builder.
func (_u *RequestEventUpdateOne) Where(ps ...predicate.RequestEvent) *RequestEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RequestEventUpdateOne) Select(field string, fields ...string) *RequestEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RequestEvent entity.
func (_u *RequestEventUpdateOne) Save(ctx context.Context) (*RequestEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RequestEventUpdateOne) SaveX(ctx context.Context) *RequestEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RequestEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RequestEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RequestEventUpdateOne) check() error {
	if v, ok := _u.mutation.EventType(); ok {
		if err := requestevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "RequestEvent.event_type": %w`, err)}
		}
	}
	return nil
}

func (_u *RequestEventUpdateOne) sqlSave(ctx context.Context) (_node *RequestEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(requestevent.Table, requestevent.Columns, sqlgraph.NewFieldSpec(requestevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RequestEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, requestevent.FieldID)
		for _, f := range fields {
			if !requestevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != requestevent.FieldID {
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
		_spec.SetField(requestevent.FieldRequestID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRequestID(); ok {
		_spec.AddField(requestevent.FieldRequestID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(requestevent.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActorUserID(); ok {
		_spec.SetField(requestevent.FieldActorUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedActorUserID(); ok {
		_spec.AddField(requestevent.FieldActorUserID, field.TypeInt, value)
	}
	if _u.mutation.ActorUserIDCleared() {
		_spec.ClearField(requestevent.FieldActorUserID, field.TypeInt)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(requestevent.FieldMessage, field.TypeString, value)
	}
	if _u.mutation.MessageCleared() {
		_spec.ClearField(requestevent.FieldMessage, field.TypeString)
	}
	_node = &RequestEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{requestevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
