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
	"oaflow.io/oaflow/ent/predicate"
	"oaflow.io/oaflow/ent/request"
)

// RequestUpdate is the builder for updating Request entities.
type RequestUpdate struct {
	config
	hooks    []Hook
	mutation *RequestMutation
}

// Where appends a list predicates to the RequestUpdate builder.
func (_u *RequestUpdate) Where(ps ...predicate.Request) *RequestUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RequestUpdate) SetUpdatedAt(v time.Time) *RequestUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *RequestUpdate) SetUserID(v int) *RequestUpdate {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableUserID(v *int) *RequestUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *RequestUpdate) AddUserID(v int) *RequestUpdate {
	_u.mutation.AddUserID(v)
	return _u
}

// SetRequestType sets the "request_type" field.
func (_u *RequestUpdate) SetRequestType(v string) *RequestUpdate {
	_u.mutation.SetRequestType(v)
	return _u
}

// SetNillableRequestType sets the "request_type" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableRequestType(v *string) *RequestUpdate {
	if v != nil {
		_u.SetRequestType(*v)
	}
	return _u
}

// SetWorkflowKey sets the "workflow_key" field.
func (_u *RequestUpdate) SetWorkflowKey(v string) *RequestUpdate {
	_u.mutation.SetWorkflowKey(v)
	return _u
}

// SetNillableWorkflowKey sets the "workflow_key" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableWorkflowKey(v *string) *RequestUpdate {
	if v != nil {
		_u.SetWorkflowKey(*v)
	}
	return _u
}

// ClearWorkflowKey clears the value of the "workflow_key" field.
func (_u *RequestUpdate) ClearWorkflowKey() *RequestUpdate {
	_u.mutation.ClearWorkflowKey()
	return _u
}

// SetTitle sets the "title" field.
func (_u *RequestUpdate) SetTitle(v string) *RequestUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableTitle(v *string) *RequestUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *RequestUpdate) SetBody(v string) *RequestUpdate {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableBody(v *string) *RequestUpdate {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *RequestUpdate) SetPayload(v map[string]interface{}) *RequestUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *RequestUpdate) ClearPayload() *RequestUpdate {
	_u.mutation.ClearPayload()
	return _u
}

// SetStatus sets the "status" field.
func (_u *RequestUpdate) SetStatus(v request.Status) *RequestUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableStatus(v *request.Status) *RequestUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDecidedBy sets the "decided_by" field.
func (_u *RequestUpdate) SetDecidedBy(v int) *RequestUpdate {
	_u.mutation.ResetDecidedBy()
	_u.mutation.SetDecidedBy(v)
	return _u
}

// SetNillableDecidedBy sets the "decided_by" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableDecidedBy(v *int) *RequestUpdate {
	if v != nil {
		_u.SetDecidedBy(*v)
	}
	return _u
}

// AddDecidedBy adds value to the "decided_by" field.
func (_u *RequestUpdate) AddDecidedBy(v int) *RequestUpdate {
	_u.mutation.AddDecidedBy(v)
	return _u
}

// ClearDecidedBy clears the value of the "decided_by" field.
func (_u *RequestUpdate) ClearDecidedBy() *RequestUpdate {
	_u.mutation.ClearDecidedBy()
	return _u
}

// SetDecidedAt sets the "decided_at" field.
func (_u *RequestUpdate) SetDecidedAt(v time.Time) *RequestUpdate {
	_u.mutation.SetDecidedAt(v)
	return _u
}

// SetNillableDecidedAt sets the "decided_at" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableDecidedAt(v *time.Time) *RequestUpdate {
	if v != nil {
		_u.SetDecidedAt(*v)
	}
	return _u
}

// ClearDecidedAt clears the value of the "decided_at" field.
func (_u *RequestUpdate) ClearDecidedAt() *RequestUpdate {
	_u.mutation.ClearDecidedAt()
	return _u
}

// Mutation returns the RequestMutation object of the builder.
func (_u *RequestUpdate) Mutation() *RequestMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RequestUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RequestUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RequestUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RequestUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RequestUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := request.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RequestUpdate) check() error {
	if v, ok := _u.mutation.RequestType(); ok {
		if err := request.RequestTypeValidator(v); err != nil {
			return &ValidationError{Name: "request_type", err: fmt.Errorf(`ent: validator failed for field "Request.request_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := request.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Request.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Body(); ok {
		if err := request.BodyValidator(v); err != nil {
			return &ValidationError{Name: "body", err: fmt.Errorf(`ent: validator failed for field "Request.body": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := request.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Request.status": %w`, err)}
		}
	}
	return nil
}

func (_u *RequestUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(request.Table, request.Columns, sqlgraph.NewFieldSpec(request.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(request.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(request.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(request.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RequestType(); ok {
		_spec.SetField(request.FieldRequestType, field.TypeString, value)
	}
	if value, ok := _u.mutation.WorkflowKey(); ok {
		_spec.SetField(request.FieldWorkflowKey, field.TypeString, value)
	}
	if _u.mutation.WorkflowKeyCleared() {
		_spec.ClearField(request.FieldWorkflowKey, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(request.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(request.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(request.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(request.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(request.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DecidedBy(); ok {
		_spec.SetField(request.FieldDecidedBy, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDecidedBy(); ok {
		_spec.AddField(request.FieldDecidedBy, field.TypeInt, value)
	}
	if _u.mutation.DecidedByCleared() {
		_spec.ClearField(request.FieldDecidedBy, field.TypeInt)
	}
	if value, ok := _u.mutation.DecidedAt(); ok {
		_spec.SetField(request.FieldDecidedAt, field.TypeTime, value)
	}
	if _u.mutation.DecidedAtCleared() {
		_spec.ClearField(request.FieldDecidedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{request.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RequestUpdateOne is the builder for updating a single Request entity.
type RequestUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RequestMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RequestUpdateOne) SetUpdatedAt(v time.Time) *RequestUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *RequestUpdateOne) SetUserID(v int) *RequestUpdateOne {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableUserID(v *int) *RequestUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *RequestUpdateOne) AddUserID(v int) *RequestUpdateOne {
	_u.mutation.AddUserID(v)
	return _u
}

// SetRequestType sets the "request_type" field.
func (_u *RequestUpdateOne) SetRequestType(v string) *RequestUpdateOne {
	_u.mutation.SetRequestType(v)
	return _u
}

// SetNillableRequestType sets the "request_type" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableRequestType(v *string) *RequestUpdateOne {
	if v != nil {
		_u.SetRequestType(*v)
	}
	return _u
}

// SetWorkflowKey sets the "workflow_key" field.
func (_u *RequestUpdateOne) SetWorkflowKey(v string) *RequestUpdateOne {
	_u.mutation.SetWorkflowKey(v)
	return _u
}

// SetNillableWorkflowKey sets the "workflow_key" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableWorkflowKey(v *string) *RequestUpdateOne {
	if v != nil {
		_u.SetWorkflowKey(*v)
	}
	return _u
}

// ClearWorkflowKey clears the value of the "workflow_key" field.
func (_u *RequestUpdateOne) ClearWorkflowKey() *RequestUpdateOne {
	_u.mutation.ClearWorkflowKey()
	return _u
}

// SetTitle sets the "title" field.
func (_u *RequestUpdateOne) SetTitle(v string) *RequestUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableTitle(v *string) *RequestUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *RequestUpdateOne) SetBody(v string) *RequestUpdateOne {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableBody(v *string) *RequestUpdateOne {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *RequestUpdateOne) SetPayload(v map[string]interface{}) *RequestUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *RequestUpdateOne) ClearPayload() *RequestUpdateOne {
	_u.mutation.ClearPayload()
	return _u
}

// SetStatus sets the "status" field.
func (_u *RequestUpdateOne) SetStatus(v request.Status) *RequestUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableStatus(v *request.Status) *RequestUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDecidedBy sets the "decided_by" field.
func (_u *RequestUpdateOne) SetDecidedBy(v int) *RequestUpdateOne {
	_u.mutation.ResetDecidedBy()
	_u.mutation.SetDecidedBy(v)
	return _u
}

// SetNillableDecidedBy sets the "decided_by" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableDecidedBy(v *int) *RequestUpdateOne {
	if v != nil {
		_u.SetDecidedBy(*v)
	}
	return _u
}

// AddDecidedBy adds value to the "decided_by" field.
func (_u *RequestUpdateOne) AddDecidedBy(v int) *RequestUpdateOne {
	_u.mutation.AddDecidedBy(v)
	return _u
}

// ClearDecidedBy clears the value of the "decided_by" field.
func (_u *RequestUpdateOne) ClearDecidedBy() *RequestUpdateOne {
	_u.mutation.ClearDecidedBy()
	return _u
}

// SetDecidedAt sets the "decided_at" field.
func (_u *RequestUpdateOne) SetDecidedAt(v time.Time) *RequestUpdateOne {
	_u.mutation.SetDecidedAt(v)
	return _u
}

// SetNillableDecidedAt sets the "decided_at" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableDecidedAt(v *time.Time) *RequestUpdateOne {
	if v != nil {
		_u.SetDecidedAt(*v)
	}
	return _u
}

// ClearDecidedAt clears the value of the "decided_at" field.
func (_u *RequestUpdateOne) ClearDecidedAt() *RequestUpdateOne {
	_u.mutation.ClearDecidedAt()
	return _u
}

// Mutation returns the RequestMutation object of the builder.
func (_u *RequestUpdateOne) Mutation() *RequestMutation {
	return _u.mutation
}

// Where appends a list predicates to the RequestUpdate builder.
func (_u *RequestUpdateOne) Where(ps ...predicate.Request) *RequestUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RequestUpdateOne) Select(field string, fields ...string) *RequestUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Request entity.
func (_u *RequestUpdateOne) Save(ctx context.Context) (*Request, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RequestUpdateOne) SaveX(ctx context.Context) *Request {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RequestUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RequestUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RequestUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := request.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RequestUpdateOne) check() error {
	if v, ok := _u.mutation.RequestType(); ok {
		if err := request.RequestTypeValidator(v); err != nil {
			return &ValidationError{Name: "request_type", err: fmt.Errorf(`ent: validator failed for field "Request.request_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := request.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Request.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Body(); ok {
		if err := request.BodyValidator(v); err != nil {
			return &ValidationError{Name: "body", err: fmt.Errorf(`ent: validator failed for field "Request.body": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := request.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Request.status": %w`, err)}
		}
	}
	return nil
}

func (_u *RequestUpdateOne) sqlSave(ctx context.Context) (_node *Request, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(request.Table, request.Columns, sqlgraph.NewFieldSpec(request.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Request.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, request.FieldID)
		for _, f := range fields {
			if !request.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != request.FieldID {
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
		_spec.SetField(request.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(request.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(request.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RequestType(); ok {
		_spec.SetField(request.FieldRequestType, field.TypeString, value)
	}
	if value, ok := _u.mutation.WorkflowKey(); ok {
		_spec.SetField(request.FieldWorkflowKey, field.TypeString, value)
	}
	if _u.mutation.WorkflowKeyCleared() {
		_spec.ClearField(request.FieldWorkflowKey, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(request.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(request.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(request.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(request.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(request.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DecidedBy(); ok {
		_spec.SetField(request.FieldDecidedBy, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDecidedBy(); ok {
		_spec.AddField(request.FieldDecidedBy, field.TypeInt, value)
	}
	if _u.mutation.DecidedByCleared() {
		_spec.ClearField(request.FieldDecidedBy, field.TypeInt)
	}
	if value, ok := _u.mutation.DecidedAt(); ok {
		_spec.SetField(request.FieldDecidedAt, field.TypeTime, value)
	}
	if _u.mutation.DecidedAtCleared() {
		_spec.ClearField(request.FieldDecidedAt, field.TypeTime)
	}
	_node = &Request{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{request.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
