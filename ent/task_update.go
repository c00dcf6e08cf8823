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
	"oaflow.io/oaflow/ent/task"
)

// TaskUpdate is the builder for updating Task entities.
type TaskUpdate struct {
	config
	hooks    []Hook
	mutation *TaskMutation
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdate) Where(ps ...predicate.Task) *TaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRequestID sets the "request_id" field.
func (_u *TaskUpdate) SetRequestID(v int) *TaskUpdate {
	_u.mutation.ResetRequestID()
	_u.mutation.SetRequestID(v)
	return _u
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableRequestID(v *int) *TaskUpdate {
	if v != nil {
		_u.SetRequestID(*v)
	}
	return _u
}

// AddRequestID adds value to the "request_id" field.
func (_u *TaskUpdate) AddRequestID(v int) *TaskUpdate {
	_u.mutation.AddRequestID(v)
	return _u
}

// SetStepOrder sets the "step_order" field.
func (_u *TaskUpdate) SetStepOrder(v int) *TaskUpdate {
	_u.mutation.ResetStepOrder()
	_u.mutation.SetStepOrder(v)
	return _u
}

// SetNillableStepOrder sets the "step_order" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableStepOrder(v *int) *TaskUpdate {
	if v != nil {
		_u.SetStepOrder(*v)
	}
	return _u
}

// AddStepOrder adds value to the "step_order" field.
func (_u *TaskUpdate) AddStepOrder(v int) *TaskUpdate {
	_u.mutation.AddStepOrder(v)
	return _u
}

// ClearStepOrder clears the value of the "step_order" field.
func (_u *TaskUpdate) ClearStepOrder() *TaskUpdate {
	_u.mutation.ClearStepOrder()
	return _u
}

// SetStepKey sets the "step_key" field.
func (_u *TaskUpdate) SetStepKey(v string) *TaskUpdate {
	_u.mutation.SetStepKey(v)
	return _u
}

// SetNillableStepKey sets the "step_key" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableStepKey(v *string) *TaskUpdate {
	if v != nil {
		_u.SetStepKey(*v)
	}
	return _u
}

// SetAssigneeUserID sets the "assignee_user_id" field.
func (_u *TaskUpdate) SetAssigneeUserID(v int) *TaskUpdate {
	_u.mutation.ResetAssigneeUserID()
	_u.mutation.SetAssigneeUserID(v)
	return _u
}

// SetNillableAssigneeUserID sets the "assignee_user_id" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableAssigneeUserID(v *int) *TaskUpdate {
	if v != nil {
		_u.SetAssigneeUserID(*v)
	}
	return _u
}

// AddAssigneeUserID adds value to the "assignee_user_id" field.
func (_u *TaskUpdate) AddAssigneeUserID(v int) *TaskUpdate {
	_u.mutation.AddAssigneeUserID(v)
	return _u
}

// ClearAssigneeUserID clears the value of the "assignee_user_id" field.
func (_u *TaskUpdate) ClearAssigneeUserID() *TaskUpdate {
	_u.mutation.ClearAssigneeUserID()
	return _u
}

// SetAssigneeRole sets the "assignee_role" field.
func (_u *TaskUpdate) SetAssigneeRole(v string) *TaskUpdate {
	_u.mutation.SetAssigneeRole(v)
	return _u
}

// SetNillableAssigneeRole sets the "assignee_role" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableAssigneeRole(v *string) *TaskUpdate {
	if v != nil {
		_u.SetAssigneeRole(*v)
	}
	return _u
}

// ClearAssigneeRole clears the value of the "assignee_role" field.
func (_u *TaskUpdate) ClearAssigneeRole() *TaskUpdate {
	_u.mutation.ClearAssigneeRole()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskUpdate) SetStatus(v task.Status) *TaskUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableStatus(v *task.Status) *TaskUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDecidedBy sets the "decided_by" field.
func (_u *TaskUpdate) SetDecidedBy(v int) *TaskUpdate {
	_u.mutation.ResetDecidedBy()
	_u.mutation.SetDecidedBy(v)
	return _u
}

// SetNillableDecidedBy sets the "decided_by" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableDecidedBy(v *int) *TaskUpdate {
	if v != nil {
		_u.SetDecidedBy(*v)
	}
	return _u
}

// AddDecidedBy adds value to the "decided_by" field.
func (_u *TaskUpdate) AddDecidedBy(v int) *TaskUpdate {
	_u.mutation.AddDecidedBy(v)
	return _u
}

// ClearDecidedBy clears the value of the "decided_by" field.
func (_u *TaskUpdate) ClearDecidedBy() *TaskUpdate {
	_u.mutation.ClearDecidedBy()
	return _u
}

// SetDecidedAt sets the "decided_at" field.
func (_u *TaskUpdate) SetDecidedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetDecidedAt(v)
	return _u
}

// SetNillableDecidedAt sets the "decided_at" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableDecidedAt(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetDecidedAt(*v)
	}
	return _u
}

// ClearDecidedAt clears the value of the "decided_at" field.
func (_u *TaskUpdate) ClearDecidedAt() *TaskUpdate {
	_u.mutation.ClearDecidedAt()
	return _u
}

// SetComment sets the "comment" field.
func (_u *TaskUpdate) SetComment(v string) *TaskUpdate {
	_u.mutation.SetComment(v)
	return _u
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableComment(v *string) *TaskUpdate {
	if v != nil {
		_u.SetComment(*v)
	}
	return _u
}

// ClearComment clears the value of the "comment" field.
func (_u *TaskUpdate) ClearComment() *TaskUpdate {
	_u.mutation.ClearComment()
	return _u
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdate) Mutation() *TaskMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdate) check() error {
	if v, ok := _u.mutation.StepKey(); ok {
		if err := task.StepKeyValidator(v); err != nil {
			return &ValidationError{Name: "step_key", err: fmt.Errorf(`ent: validator failed for field "Task.step_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RequestID(); ok {
		_spec.SetField(task.FieldRequestID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRequestID(); ok {
		_spec.AddField(task.FieldRequestID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StepOrder(); ok {
		_spec.SetField(task.FieldStepOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepOrder(); ok {
		_spec.AddField(task.FieldStepOrder, field.TypeInt, value)
	}
	if _u.mutation.StepOrderCleared() {
		_spec.ClearField(task.FieldStepOrder, field.TypeInt)
	}
	if value, ok := _u.mutation.StepKey(); ok {
		_spec.SetField(task.FieldStepKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.AssigneeUserID(); ok {
		_spec.SetField(task.FieldAssigneeUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAssigneeUserID(); ok {
		_spec.AddField(task.FieldAssigneeUserID, field.TypeInt, value)
	}
	if _u.mutation.AssigneeUserIDCleared() {
		_spec.ClearField(task.FieldAssigneeUserID, field.TypeInt)
	}
	if value, ok := _u.mutation.AssigneeRole(); ok {
		_spec.SetField(task.FieldAssigneeRole, field.TypeString, value)
	}
	if _u.mutation.AssigneeRoleCleared() {
		_spec.ClearField(task.FieldAssigneeRole, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DecidedBy(); ok {
		_spec.SetField(task.FieldDecidedBy, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDecidedBy(); ok {
		_spec.AddField(task.FieldDecidedBy, field.TypeInt, value)
	}
	if _u.mutation.DecidedByCleared() {
		_spec.ClearField(task.FieldDecidedBy, field.TypeInt)
	}
	if value, ok := _u.mutation.DecidedAt(); ok {
		_spec.SetField(task.FieldDecidedAt, field.TypeTime, value)
	}
	if _u.mutation.DecidedAtCleared() {
		_spec.ClearField(task.FieldDecidedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Comment(); ok {
		_spec.SetField(task.FieldComment, field.TypeString, value)
	}
	if _u.mutation.CommentCleared() {
		_spec.ClearField(task.FieldComment, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskUpdateOne is the builder for updating a single Task entity.
type TaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskMutation
}

// SetRequestID sets the "request_id" field.
func (_u *TaskUpdateOne) SetRequestID(v int) *TaskUpdateOne {
	_u.mutation.ResetRequestID()
	_u.mutation.SetRequestID(v)
	return _u
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableRequestID(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetRequestID(*v)
	}
	return _u
}

// AddRequestID adds value to the "request_id" field.
func (_u *TaskUpdateOne) AddRequestID(v int) *TaskUpdateOne {
	_u.mutation.AddRequestID(v)
	return _u
}

// SetStepOrder sets the "step_order" field.
func (_u *TaskUpdateOne) SetStepOrder(v int) *TaskUpdateOne {
	_u.mutation.ResetStepOrder()
	_u.mutation.SetStepOrder(v)
	return _u
}

// SetNillableStepOrder sets the "step_order" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableStepOrder(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetStepOrder(*v)
	}
	return _u
}

// AddStepOrder adds value to the "step_order" field.
func (_u *TaskUpdateOne) AddStepOrder(v int) *TaskUpdateOne {
	_u.mutation.AddStepOrder(v)
	return _u
}

// ClearStepOrder clears the value of the "step_order" field.
func (_u *TaskUpdateOne) ClearStepOrder() *TaskUpdateOne {
	_u.mutation.ClearStepOrder()
	return _u
}

// SetStepKey sets the "step_key" field.
func (_u *TaskUpdateOne) SetStepKey(v string) *TaskUpdateOne {
	_u.mutation.SetStepKey(v)
	return _u
}

// SetNillableStepKey sets the "step_key" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableStepKey(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetStepKey(*v)
	}
	return _u
}

// SetAssigneeUserID sets the "assignee_user_id" field.
func (_u *TaskUpdateOne) SetAssigneeUserID(v int) *TaskUpdateOne {
	_u.mutation.ResetAssigneeUserID()
	_u.mutation.SetAssigneeUserID(v)
	return _u
}

// SetNillableAssigneeUserID sets the "assignee_user_id" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableAssigneeUserID(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetAssigneeUserID(*v)
	}
	return _u
}

// AddAssigneeUserID adds value to the "assignee_user_id" field.
func (_u *TaskUpdateOne) AddAssigneeUserID(v int) *TaskUpdateOne {
	_u.mutation.AddAssigneeUserID(v)
	return _u
}

// ClearAssigneeUserID clears the value of the "assignee_user_id" field.
func (_u *TaskUpdateOne) ClearAssigneeUserID() *TaskUpdateOne {
	_u.mutation.ClearAssigneeUserID()
	return _u
}

// SetAssigneeRole sets the "assignee_role" field.
func (_u *TaskUpdateOne) SetAssigneeRole(v string) *TaskUpdateOne {
	_u.mutation.SetAssigneeRole(v)
	return _u
}

// SetNillableAssigneeRole sets the "assignee_role" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableAssigneeRole(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetAssigneeRole(*v)
	}
	return _u
}

// ClearAssigneeRole clears the value of the "assignee_role" field.
func (_u *TaskUpdateOne) ClearAssigneeRole() *TaskUpdateOne {
	_u.mutation.ClearAssigneeRole()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskUpdateOne) SetStatus(v task.Status) *TaskUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableStatus(v *task.Status) *TaskUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDecidedBy sets the "decided_by" field.
func (_u *TaskUpdateOne) SetDecidedBy(v int) *TaskUpdateOne {
	_u.mutation.ResetDecidedBy()
	_u.mutation.SetDecidedBy(v)
	return _u
}

// SetNillableDecidedBy sets the "decided_by" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableDecidedBy(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetDecidedBy(*v)
	}
	return _u
}

// AddDecidedBy adds value to the "decided_by" field.
func (_u *TaskUpdateOne) AddDecidedBy(v int) *TaskUpdateOne {
	_u.mutation.AddDecidedBy(v)
	return _u
}

// ClearDecidedBy clears the value of the "decided_by" field.
func (_u *TaskUpdateOne) ClearDecidedBy() *TaskUpdateOne {
	_u.mutation.ClearDecidedBy()
	return _u
}

// SetDecidedAt sets the "decided_at" field.
func (_u *TaskUpdateOne) SetDecidedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetDecidedAt(v)
	return _u
}

// SetNillableDecidedAt sets the "decided_at" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableDecidedAt(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetDecidedAt(*v)
	}
	return _u
}

// ClearDecidedAt clears the value of the "decided_at" field.
func (_u *TaskUpdateOne) ClearDecidedAt() *TaskUpdateOne {
	_u.mutation.ClearDecidedAt()
	return _u
}

// SetComment sets the "comment" field.
func (_u *TaskUpdateOne) SetComment(v string) *TaskUpdateOne {
	_u.mutation.SetComment(v)
	return _u
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableComment(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetComment(*v)
	}
	return _u
}

// ClearComment clears the value of the "comment" field.
func (_u *TaskUpdateOne) ClearComment() *TaskUpdateOne {
	_u.mutation.ClearComment()
	return _u
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdateOne) Mutation() *TaskMutation {
	return _u.mutation
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdateOne) Where(ps ...predicate.Task) *TaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskUpdateOne) Select(field string, fields ...string) *TaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Task entity.
func (_u *TaskUpdateOne) Save(ctx context.Context) (*Task, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdateOne) SaveX(ctx context.Context) *Task {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdateOne) check() error {
	if v, ok := _u.mutation.StepKey(); ok {
		if err := task.StepKeyValidator(v); err != nil {
			return &ValidationError{Name: "step_key", err: fmt.Errorf(`ent: validator failed for field "Task.step_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TaskUpdateOne) sqlSave(ctx context.Context) (_node *Task, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Task.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, task.FieldID)
		for _, f := range fields {
			if !task.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != task.FieldID {
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
		_spec.SetField(task.FieldRequestID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRequestID(); ok {
		_spec.AddField(task.FieldRequestID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StepOrder(); ok {
		_spec.SetField(task.FieldStepOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepOrder(); ok {
		_spec.AddField(task.FieldStepOrder, field.TypeInt, value)
	}
	if _u.mutation.StepOrderCleared() {
		_spec.ClearField(task.FieldStepOrder, field.TypeInt)
	}
	if value, ok := _u.mutation.StepKey(); ok {
		_spec.SetField(task.FieldStepKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.AssigneeUserID(); ok {
		_spec.SetField(task.FieldAssigneeUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAssigneeUserID(); ok {
		_spec.AddField(task.FieldAssigneeUserID, field.TypeInt, value)
	}
	if _u.mutation.AssigneeUserIDCleared() {
		_spec.ClearField(task.FieldAssigneeUserID, field.TypeInt)
	}
	if value, ok := _u.mutation.AssigneeRole(); ok {
		_spec.SetField(task.FieldAssigneeRole, field.TypeString, value)
	}
	if _u.mutation.AssigneeRoleCleared() {
		_spec.ClearField(task.FieldAssigneeRole, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DecidedBy(); ok {
		_spec.SetField(task.FieldDecidedBy, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDecidedBy(); ok {
		_spec.AddField(task.FieldDecidedBy, field.TypeInt, value)
	}
	if _u.mutation.DecidedByCleared() {
		_spec.ClearField(task.FieldDecidedBy, field.TypeInt)
	}
	if value, ok := _u.mutation.DecidedAt(); ok {
		_spec.SetField(task.FieldDecidedAt, field.TypeTime, value)
	}
	if _u.mutation.DecidedAtCleared() {
		_spec.ClearField(task.FieldDecidedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Comment(); ok {
		_spec.SetField(task.FieldComment, field.TypeString, value)
	}
	if _u.mutation.CommentCleared() {
		_spec.ClearField(task.FieldComment, field.TypeString)
	}
	_node = &Task{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
