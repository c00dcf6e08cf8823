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
	"oaflow.io/oaflow/ent/workflowvariantstep"
)

// WorkflowVariantStepUpdate is the builder for updating WorkflowVariantStep entities.
type WorkflowVariantStepUpdate struct {
	config
	hooks    []Hook
	mutation *WorkflowVariantStepMutation
}

// Where appends a list predicates to the WorkflowVariantStepUpdate builder.
func (_u *WorkflowVariantStepUpdate) Where(ps ...predicate.WorkflowVariantStep) *WorkflowVariantStepUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWorkflowKey sets the "workflow_key" field.
func (_u *WorkflowVariantStepUpdate) SetWorkflowKey(v string) *WorkflowVariantStepUpdate {
	_u.mutation.SetWorkflowKey(v)
	return _u
}

// SetNillableWorkflowKey sets the "workflow_key" field if the given value is not nil.
func (_u *WorkflowVariantStepUpdate) SetNillableWorkflowKey(v *string) *WorkflowVariantStepUpdate {
	if v != nil {
		_u.SetWorkflowKey(*v)
	}
	return _u
}

// SetStepOrder sets the "step_order" field.
func (_u *WorkflowVariantStepUpdate) SetStepOrder(v int) *WorkflowVariantStepUpdate {
	_u.mutation.ResetStepOrder()
	_u.mutation.SetStepOrder(v)
	return _u
}

// SetNillableStepOrder sets the "step_order" field if the given value is not nil.
func (_u *WorkflowVariantStepUpdate) SetNillableStepOrder(v *int) *WorkflowVariantStepUpdate {
	if v != nil {
		_u.SetStepOrder(*v)
	}
	return _u
}

// AddStepOrder adds value to the "step_order" field.
func (_u *WorkflowVariantStepUpdate) AddStepOrder(v int) *WorkflowVariantStepUpdate {
	_u.mutation.AddStepOrder(v)
	return _u
}

// SetStepKey sets the "step_key" field.
func (_u *WorkflowVariantStepUpdate) SetStepKey(v string) *WorkflowVariantStepUpdate {
	_u.mutation.SetStepKey(v)
	return _u
}

// SetNillableStepKey sets the "step_key" field if the given value is not nil.
func (_u *WorkflowVariantStepUpdate) SetNillableStepKey(v *string) *WorkflowVariantStepUpdate {
	if v != nil {
		_u.SetStepKey(*v)
	}
	return _u
}

// SetAssigneeKind sets the "assignee_kind" field.
func (_u *WorkflowVariantStepUpdate) SetAssigneeKind(v string) *WorkflowVariantStepUpdate {
	_u.mutation.SetAssigneeKind(v)
	return _u
}

// SetNillableAssigneeKind sets the "assignee_kind" field if the given value is not nil.
func (_u *WorkflowVariantStepUpdate) SetNillableAssigneeKind(v *string) *WorkflowVariantStepUpdate {
	if v != nil {
		_u.SetAssigneeKind(*v)
	}
	return _u
}

// SetAssigneeValue sets the "assignee_value" field.
func (_u *WorkflowVariantStepUpdate) SetAssigneeValue(v string) *WorkflowVariantStepUpdate {
	_u.mutation.SetAssigneeValue(v)
	return _u
}

// SetNillableAssigneeValue sets the "assignee_value" field if the given value is not nil.
func (_u *WorkflowVariantStepUpdate) SetNillableAssigneeValue(v *string) *WorkflowVariantStepUpdate {
	if v != nil {
		_u.SetAssigneeValue(*v)
	}
	return _u
}

// ClearAssigneeValue clears the value of the "assignee_value" field.
func (_u *WorkflowVariantStepUpdate) ClearAssigneeValue() *WorkflowVariantStepUpdate {
	_u.mutation.ClearAssigneeValue()
	return _u
}

// SetConditionKind sets the "condition_kind" field.
func (_u *WorkflowVariantStepUpdate) SetConditionKind(v string) *WorkflowVariantStepUpdate {
	_u.mutation.SetConditionKind(v)
	return _u
}

// SetNillableConditionKind sets the "condition_kind" field if the given value is not nil.
func (_u *WorkflowVariantStepUpdate) SetNillableConditionKind(v *string) *WorkflowVariantStepUpdate {
	if v != nil {
		_u.SetConditionKind(*v)
	}
	return _u
}

// ClearConditionKind clears the value of the "condition_kind" field.
func (_u *WorkflowVariantStepUpdate) ClearConditionKind() *WorkflowVariantStepUpdate {
	_u.mutation.ClearConditionKind()
	return _u
}

// SetConditionValue sets the "condition_value" field.
func (_u *WorkflowVariantStepUpdate) SetConditionValue(v string) *WorkflowVariantStepUpdate {
	_u.mutation.SetConditionValue(v)
	return _u
}

// SetNillableConditionValue sets the "condition_value" field if the given value is not nil.
func (_u *WorkflowVariantStepUpdate) SetNillableConditionValue(v *string) *WorkflowVariantStepUpdate {
	if v != nil {
		_u.SetConditionValue(*v)
	}
	return _u
}

// ClearConditionValue clears the value of the "condition_value" field.
func (_u *WorkflowVariantStepUpdate) ClearConditionValue() *WorkflowVariantStepUpdate {
	_u.mutation.ClearConditionValue()
	return _u
}

// Mutation returns the WorkflowVariantStepMutation object of the builder.
func (_u *WorkflowVariantStepUpdate) Mutation() *WorkflowVariantStepMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorkflowVariantStepUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowVariantStepUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorkflowVariantStepUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowVariantStepUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowVariantStepUpdate) check() error {
	if v, ok := _u.mutation.WorkflowKey(); ok {
		if err := workflowvariantstep.WorkflowKeyValidator(v); err != nil {
			return &ValidationError{Name: "workflow_key", err: fmt.Errorf(`ent: validator failed for field "WorkflowVariantStep.workflow_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StepOrder(); ok {
		if err := workflowvariantstep.StepOrderValidator(v); err != nil {
			return &ValidationError{Name: "step_order", err: fmt.Errorf(`ent: validator failed for field "WorkflowVariantStep.step_order": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StepKey(); ok {
		if err := workflowvariantstep.StepKeyValidator(v); err != nil {
			return &ValidationError{Name: "step_key", err: fmt.Errorf(`ent: validator failed for field "WorkflowVariantStep.step_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AssigneeKind(); ok {
		if err := workflowvariantstep.AssigneeKindValidator(v); err != nil {
			return &ValidationError{Name: "assignee_kind", err: fmt.Errorf(`ent: validator failed for field "WorkflowVariantStep.assignee_kind": %w`, err)}
		}
	}
	return nil
}

func (_u *WorkflowVariantStepUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflowvariantstep.Table, workflowvariantstep.Columns, sqlgraph.NewFieldSpec(workflowvariantstep.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.WorkflowKey(); ok {
		_spec.SetField(workflowvariantstep.FieldWorkflowKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.StepOrder(); ok {
		_spec.SetField(workflowvariantstep.FieldStepOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepOrder(); ok {
		_spec.AddField(workflowvariantstep.FieldStepOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StepKey(); ok {
		_spec.SetField(workflowvariantstep.FieldStepKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.AssigneeKind(); ok {
		_spec.SetField(workflowvariantstep.FieldAssigneeKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.AssigneeValue(); ok {
		_spec.SetField(workflowvariantstep.FieldAssigneeValue, field.TypeString, value)
	}
	if _u.mutation.AssigneeValueCleared() {
		_spec.ClearField(workflowvariantstep.FieldAssigneeValue, field.TypeString)
	}
	if value, ok := _u.mutation.ConditionKind(); ok {
		_spec.SetField(workflowvariantstep.FieldConditionKind, field.TypeString, value)
	}
	if _u.mutation.ConditionKindCleared() {
		_spec.ClearField(workflowvariantstep.FieldConditionKind, field.TypeString)
	}
	if value, ok := _u.mutation.ConditionValue(); ok {
		_spec.SetField(workflowvariantstep.FieldConditionValue, field.TypeString, value)
	}
	if _u.mutation.ConditionValueCleared() {
		_spec.ClearField(workflowvariantstep.FieldConditionValue, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflowvariantstep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorkflowVariantStepUpdateOne is the builder for updating a single WorkflowVariantStep entity.
type WorkflowVariantStepUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkflowVariantStepMutation
}

// SetWorkflowKey sets the "workflow_key" field.
func (_u *WorkflowVariantStepUpdateOne) SetWorkflowKey(v string) *WorkflowVariantStepUpdateOne {
	_u.mutation.SetWorkflowKey(v)
	return _u
}

// SetNillableWorkflowKey sets the "workflow_key" field if the given value is not nil.
func (_u *WorkflowVariantStepUpdateOne) SetNillableWorkflowKey(v *string) *WorkflowVariantStepUpdateOne {
	if v != nil {
		_u.SetWorkflowKey(*v)
	}
	return _u
}

// SetStepOrder sets the "step_order" field.
func (_u *WorkflowVariantStepUpdateOne) SetStepOrder(v int) *WorkflowVariantStepUpdateOne {
	_u.mutation.ResetStepOrder()
	_u.mutation.SetStepOrder(v)
	return _u
}

// SetNillableStepOrder sets the "step_order" field if the given value is not nil.
func (_u *WorkflowVariantStepUpdateOne) SetNillableStepOrder(v *int) *WorkflowVariantStepUpdateOne {
	if v != nil {
		_u.SetStepOrder(*v)
	}
	return _u
}

// AddStepOrder adds value to the "step_order" field.
func (_u *WorkflowVariantStepUpdateOne) AddStepOrder(v int) *WorkflowVariantStepUpdateOne {
	_u.mutation.AddStepOrder(v)
	return _u
}

// SetStepKey sets the "step_key" field.
func (_u *WorkflowVariantStepUpdateOne) SetStepKey(v string) *WorkflowVariantStepUpdateOne {
	_u.mutation.SetStepKey(v)
	return _u
}

// SetNillableStepKey sets the "step_key" field if the given value is not nil.
func (_u *WorkflowVariantStepUpdateOne) SetNillableStepKey(v *string) *WorkflowVariantStepUpdateOne {
	if v != nil {
		_u.SetStepKey(*v)
	}
	return _u
}

// SetAssigneeKind sets the "assignee_kind" field.
func (_u *WorkflowVariantStepUpdateOne) SetAssigneeKind(v string) *WorkflowVariantStepUpdateOne {
	_u.mutation.SetAssigneeKind(v)
	return _u
}

// SetNillableAssigneeKind sets the "assignee_kind" field if the given value is not nil.
func (_u *WorkflowVariantStepUpdateOne) SetNillableAssigneeKind(v *string) *WorkflowVariantStepUpdateOne {
	if v != nil {
		_u.SetAssigneeKind(*v)
	}
	return _u
}

// SetAssigneeValue sets the "assignee_value" field.
func (_u *WorkflowVariantStepUpdateOne) SetAssigneeValue(v string) *WorkflowVariantStepUpdateOne {
	_u.mutation.SetAssigneeValue(v)
	return _u
}

// SetNillableAssigneeValue sets the "assignee_value" field if the given value is not nil.
func (_u *WorkflowVariantStepUpdateOne) SetNillableAssigneeValue(v *string) *WorkflowVariantStepUpdateOne {
	if v != nil {
		_u.SetAssigneeValue(*v)
	}
	return _u
}

// ClearAssigneeValue clears the value of the "assignee_value" field.
func (_u *WorkflowVariantStepUpdateOne) ClearAssigneeValue() *WorkflowVariantStepUpdateOne {
	_u.mutation.ClearAssigneeValue()
	return _u
}

// SetConditionKind sets the "condition_kind" field.
func (_u *WorkflowVariantStepUpdateOne) SetConditionKind(v string) *WorkflowVariantStepUpdateOne {
	_u.mutation.SetConditionKind(v)
	return _u
}

// SetNillableConditionKind sets the "condition_kind" field if the given value is not nil.
func (_u *WorkflowVariantStepUpdateOne) SetNillableConditionKind(v *string) *WorkflowVariantStepUpdateOne {
	if v != nil {
		_u.SetConditionKind(*v)
	}
	return _u
}

// ClearConditionKind clears the value of the "condition_kind" field.
func (_u *WorkflowVariantStepUpdateOne) ClearConditionKind() *WorkflowVariantStepUpdateOne {
	_u.mutation.ClearConditionKind()
	return _u
}

// SetConditionValue sets the "condition_value" field.
func (_u *WorkflowVariantStepUpdateOne) SetConditionValue(v string) *WorkflowVariantStepUpdateOne {
	_u.mutation.SetConditionValue(v)
	return _u
}

// SetNillableConditionValue sets the "condition_value" field if the given value is not nil.
func (_u *WorkflowVariantStepUpdateOne) SetNillableConditionValue(v *string) *WorkflowVariantStepUpdateOne {
	if v != nil {
		_u.SetConditionValue(*v)
	}
	return _u
}

// ClearConditionValue clears the value of the "condition_value" field.
func (_u *WorkflowVariantStepUpdateOne) ClearConditionValue() *WorkflowVariantStepUpdateOne {
	_u.mutation.ClearConditionValue()
	return _u
}

// Mutation returns the WorkflowVariantStepMutation object of the builder.
func (_u *WorkflowVariantStepUpdateOne) Mutation() *WorkflowVariantStepMutation {
	return _u.mutation
}

// Where appends a list predicates to the WorkflowVariantStepUpdate builder.
func (_u *WorkflowVariantStepUpdateOne) Where(ps ...predicate.WorkflowVariantStep) *WorkflowVariantStepUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorkflowVariantStepUpdateOne) Select(field string, fields ...string) *WorkflowVariantStepUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WorkflowVariantStep entity.
func (_u *WorkflowVariantStepUpdateOne) Save(ctx context.Context) (*WorkflowVariantStep, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowVariantStepUpdateOne) SaveX(ctx context.Context) *WorkflowVariantStep {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorkflowVariantStepUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowVariantStepUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowVariantStepUpdateOne) check() error {
	if v, ok := _u.mutation.WorkflowKey(); ok {
		if err := workflowvariantstep.WorkflowKeyValidator(v); err != nil {
			return &ValidationError{Name: "workflow_key", err: fmt.Errorf(`ent: validator failed for field "WorkflowVariantStep.workflow_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StepOrder(); ok {
		if err := workflowvariantstep.StepOrderValidator(v); err != nil {
			return &ValidationError{Name: "step_order", err: fmt.Errorf(`ent: validator failed for field "WorkflowVariantStep.step_order": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StepKey(); ok {
		if err := workflowvariantstep.StepKeyValidator(v); err != nil {
			return &ValidationError{Name: "step_key", err: fmt.Errorf(`ent: validator failed for field "WorkflowVariantStep.step_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AssigneeKind(); ok {
		if err := workflowvariantstep.AssigneeKindValidator(v); err != nil {
			return &ValidationError{Name: "assignee_kind", err: fmt.Errorf(`ent: validator failed for field "WorkflowVariantStep.assignee_kind": %w`, err)}
		}
	}
	return nil
}

func (_u *WorkflowVariantStepUpdateOne) sqlSave(ctx context.Context) (_node *WorkflowVariantStep, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflowvariantstep.Table, workflowvariantstep.Columns, sqlgraph.NewFieldSpec(workflowvariantstep.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WorkflowVariantStep.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workflowvariantstep.FieldID)
		for _, f := range fields {
			if !workflowvariantstep.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != workflowvariantstep.FieldID {
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
	if value, ok := _u.mutation.WorkflowKey(); ok {
		_spec.SetField(workflowvariantstep.FieldWorkflowKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.StepOrder(); ok {
		_spec.SetField(workflowvariantstep.FieldStepOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepOrder(); ok {
		_spec.AddField(workflowvariantstep.FieldStepOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StepKey(); ok {
		_spec.SetField(workflowvariantstep.FieldStepKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.AssigneeKind(); ok {
		_spec.SetField(workflowvariantstep.FieldAssigneeKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.AssigneeValue(); ok {
		_spec.SetField(workflowvariantstep.FieldAssigneeValue, field.TypeString, value)
	}
	if _u.mutation.AssigneeValueCleared() {
		_spec.ClearField(workflowvariantstep.FieldAssigneeValue, field.TypeString)
	}
	if value, ok := _u.mutation.ConditionKind(); ok {
		_spec.SetField(workflowvariantstep.FieldConditionKind, field.TypeString, value)
	}
	if _u.mutation.ConditionKindCleared() {
		_spec.ClearField(workflowvariantstep.FieldConditionKind, field.TypeString)
	}
	if value, ok := _u.mutation.ConditionValue(); ok {
		_spec.SetField(workflowvariantstep.FieldConditionValue, field.TypeString, value)
	}
	if _u.mutation.ConditionValueCleared() {
		_spec.ClearField(workflowvariantstep.FieldConditionValue, field.TypeString)
	}
	_node = &WorkflowVariantStep{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflowvariantstep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
