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
	"oaflow.io/oaflow/ent/notification"
	"oaflow.io/oaflow/ent/predicate"
)

// NotificationUpdate is the builder for updating Notification entities.
type NotificationUpdate struct {
	config
	hooks    []Hook
	mutation *NotificationMutation
}

// Where appends a list predicates to the NotificationUpdate builder.
func (_u *NotificationUpdate) Where(ps ...predicate.Notification) *NotificationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *NotificationUpdate) SetUserID(v int) *NotificationUpdate {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *NotificationUpdate) SetNillableUserID(v *int) *NotificationUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *NotificationUpdate) AddUserID(v int) *NotificationUpdate {
	_u.mutation.AddUserID(v)
	return _u
}

// SetRequestID sets the "request_id" field.
func (_u *NotificationUpdate) SetRequestID(v int) *NotificationUpdate {
	_u.mutation.ResetRequestID()
	_u.mutation.SetRequestID(v)
	return _u
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_u *NotificationUpdate) SetNillableRequestID(v *int) *NotificationUpdate {
	if v != nil {
		_u.SetRequestID(*v)
	}
	return _u
}

// AddRequestID adds value to the "request_id" field.
func (_u *NotificationUpdate) AddRequestID(v int) *NotificationUpdate {
	_u.mutation.AddRequestID(v)
	return _u
}

// ClearRequestID clears the value of the "request_id" field.
func (_u *NotificationUpdate) ClearRequestID() *NotificationUpdate {
	_u.mutation.ClearRequestID()
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *NotificationUpdate) SetEventType(v string) *NotificationUpdate {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *NotificationUpdate) SetNillableEventType(v *string) *NotificationUpdate {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetActorUserID sets the "actor_user_id" field.
func (_u *NotificationUpdate) SetActorUserID(v int) *NotificationUpdate {
	_u.mutation.ResetActorUserID()
	_u.mutation.SetActorUserID(v)
	return _u
}

// SetNillableActorUserID sets the "actor_user_id" field if the given value is not nil.
func (_u *NotificationUpdate) SetNillableActorUserID(v *int) *NotificationUpdate {
	if v != nil {
		_u.SetActorUserID(*v)
	}
	return _u
}

// AddActorUserID adds value to the "actor_user_id" field.
func (_u *NotificationUpdate) AddActorUserID(v int) *NotificationUpdate {
	_u.mutation.AddActorUserID(v)
	return _u
}

// ClearActorUserID clears the value of the "actor_user_id" field.
func (_u *NotificationUpdate) ClearActorUserID() *NotificationUpdate {
	_u.mutation.ClearActorUserID()
	return _u
}

// SetMessage sets the "message" field.
func (_u *NotificationUpdate) SetMessage(v string) *NotificationUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *NotificationUpdate) SetNillableMessage(v *string) *NotificationUpdate {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// ClearMessage clears the value of the "message" field.
func (_u *NotificationUpdate) ClearMessage() *NotificationUpdate {
	_u.mutation.ClearMessage()
	return _u
}

// SetReadAt sets the "read_at" field.
func (_u *NotificationUpdate) SetReadAt(v time.Time) *NotificationUpdate {
	_u.mutation.SetReadAt(v)
	return _u
}

// SetNillableReadAt sets the "read_at" field if the given value is not nil.
func (_u *NotificationUpdate) SetNillableReadAt(v *time.Time) *NotificationUpdate {
	if v != nil {
		_u.SetReadAt(*v)
	}
	return _u
}

// ClearReadAt clears the value of the "read_at" field.
func (_u *NotificationUpdate) ClearReadAt() *NotificationUpdate {
	_u.mutation.ClearReadAt()
	return _u
}

// Mutation returns the NotificationMutation object of the builder.
func (_u *NotificationUpdate) Mutation() *NotificationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *NotificationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NotificationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *NotificationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NotificationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NotificationUpdate) check() error {
	if v, ok := _u.mutation.EventType(); ok {
		if err := notification.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "Notification.event_type": %w`, err)}
		}
	}
	return nil
}

func (_u *NotificationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(notification.Table, notification.Columns, sqlgraph.NewFieldSpec(notification.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(notification.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(notification.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RequestID(); ok {
		_spec.SetField(notification.FieldRequestID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRequestID(); ok {
		_spec.AddField(notification.FieldRequestID, field.TypeInt, value)
	}
	if _u.mutation.RequestIDCleared() {
		_spec.ClearField(notification.FieldRequestID, field.TypeInt)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(notification.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActorUserID(); ok {
		_spec.SetField(notification.FieldActorUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedActorUserID(); ok {
		_spec.AddField(notification.FieldActorUserID, field.TypeInt, value)
	}
	if _u.mutation.ActorUserIDCleared() {
		_spec.ClearField(notification.FieldActorUserID, field.TypeInt)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(notification.FieldMessage, field.TypeString, value)
	}
	if _u.mutation.MessageCleared() {
		_spec.ClearField(notification.FieldMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ReadAt(); ok {
		_spec.SetField(notification.FieldReadAt, field.TypeTime, value)
	}
	if _u.mutation.ReadAtCleared() {
		_spec.ClearField(notification.FieldReadAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{notification.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// NotificationUpdateOne is the builder for updating a single Notification entity.
type NotificationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *NotificationMutation
}

// SetUserID sets the "user_id" field.
func (_u *NotificationUpdateOne) SetUserID(v int) *NotificationUpdateOne {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *NotificationUpdateOne) SetNillableUserID(v *int) *NotificationUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *NotificationUpdateOne) AddUserID(v int) *NotificationUpdateOne {
	_u.mutation.AddUserID(v)
	return _u
}

// SetRequestID sets the "request_id" field.
func (_u *NotificationUpdateOne) SetRequestID(v int) *NotificationUpdateOne {
	_u.mutation.ResetRequestID()
	_u.mutation.SetRequestID(v)
	return _u
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_u *NotificationUpdateOne) SetNillableRequestID(v *int) *NotificationUpdateOne {
	if v != nil {
		_u.SetRequestID(*v)
	}
	return _u
}

// AddRequestID adds value to the "request_id" field.
func (_u *NotificationUpdateOne) AddRequestID(v int) *NotificationUpdateOne {
	_u.mutation.AddRequestID(v)
	return _u
}

// ClearRequestID clears the value of the "request_id" field.
func (_u *NotificationUpdateOne) ClearRequestID() *NotificationUpdateOne {
	_u.mutation.ClearRequestID()
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *NotificationUpdateOne) SetEventType(v string) *NotificationUpdateOne {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *NotificationUpdateOne) SetNillableEventType(v *string) *NotificationUpdateOne {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetActorUserID sets the "actor_user_id" field.
func (_u *NotificationUpdateOne) SetActorUserID(v int) *NotificationUpdateOne {
	_u.mutation.ResetActorUserID()
	_u.mutation.SetActorUserID(v)
	return _u
}

// SetNillableActorUserID sets the "actor_user_id" field if the given value is not nil.
func (_u *NotificationUpdateOne) SetNillableActorUserID(v *int) *NotificationUpdateOne {
	if v != nil {
		_u.SetActorUserID(*v)
	}
	return _u
}

// AddActorUserID adds value to the "actor_user_id" field.
func (_u *NotificationUpdateOne) AddActorUserID(v int) *NotificationUpdateOne {
	_u.mutation.AddActorUserID(v)
	return _u
}

// ClearActorUserID clears the value of the "actor_user_id" field.
func (_u *NotificationUpdateOne) ClearActorUserID() *NotificationUpdateOne {
	_u.mutation.ClearActorUserID()
	return _u
}

// SetMessage sets the "message" field.
func (_u *NotificationUpdateOne) SetMessage(v string) *NotificationUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *NotificationUpdateOne) SetNillableMessage(v *string) *NotificationUpdateOne {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// ClearMessage clears the value of the "message" field.
func (_u *NotificationUpdateOne) ClearMessage() *NotificationUpdateOne {
	_u.mutation.ClearMessage()
	return _u
}

// SetReadAt sets the "read_at" field.
func (_u *NotificationUpdateOne) SetReadAt(v time.Time) *NotificationUpdateOne {
	_u.mutation.SetReadAt(v)
	return _u
}

// SetNillableReadAt sets the "read_at" field if the given value is not nil.
func (_u *NotificationUpdateOne) SetNillableReadAt(v *time.Time) *NotificationUpdateOne {
	if v != nil {
		_u.SetReadAt(*v)
	}
	return _u
}

// ClearReadAt clears the value of the "read_at" field.
func (_u *NotificationUpdateOne) ClearReadAt() *NotificationUpdateOne {
	_u.mutation.ClearReadAt()
	return _u
}

// Mutation returns the NotificationMutation object of the builder.
func (_u *NotificationUpdateOne) Mutation() *NotificationMutation {
	return _u.mutation
}

// Where appends a list predicates to the NotificationUpdate builder.
func (_u *NotificationUpdateOne) Where(ps ...predicate.Notification) *NotificationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *NotificationUpdateOne) Select(field string, fields ...string) *NotificationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Notification entity.
func (_u *NotificationUpdateOne) Save(ctx context.Context) (*Notification, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NotificationUpdateOne) SaveX(ctx context.Context) *Notification {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *NotificationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NotificationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NotificationUpdateOne) check() error {
	if v, ok := _u.mutation.EventType(); ok {
		if err := notification.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "Notification.event_type": %w`, err)}
		}
	}
	return nil
}

func (_u *NotificationUpdateOne) sqlSave(ctx context.Context) (_node *Notification, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(notification.Table, notification.Columns, sqlgraph.NewFieldSpec(notification.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Notification.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, notification.FieldID)
		for _, f := range fields {
			if !notification.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != notification.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(notification.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(notification.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RequestID(); ok {
		_spec.SetField(notification.FieldRequestID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRequestID(); ok {
		_spec.AddField(notification.FieldRequestID, field.TypeInt, value)
	}
	if _u.mutation.RequestIDCleared() {
		_spec.ClearField(notification.FieldRequestID, field.TypeInt)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(notification.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActorUserID(); ok {
		_spec.SetField(notification.FieldActorUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedActorUserID(); ok {
		_spec.AddField(notification.FieldActorUserID, field.TypeInt, value)
	}
	if _u.mutation.ActorUserIDCleared() {
		_spec.ClearField(notification.FieldActorUserID, field.TypeInt)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(notification.FieldMessage, field.TypeString, value)
	}
	if _u.mutation.MessageCleared() {
		_spec.ClearField(notification.FieldMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ReadAt(); ok {
		_spec.SetField(notification.FieldReadAt, field.TypeTime, value)
	}
	if _u.mutation.ReadAtCleared() {
		_spec.ClearField(notification.FieldReadAt, field.TypeTime)
	}
	_node = &Notification{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{notification.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
