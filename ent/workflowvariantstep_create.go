// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"oaflow.io/oaflow/ent/workflowvariantstep"
)

// WorkflowVariantStepCreate is the builder for creating a WorkflowVariantStep entity.
type WorkflowVariantStepCreate struct {
	config
	mutation *WorkflowVariantStepMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *WorkflowVariantStepCreate) SetCreatedAt(v time.Time) *WorkflowVariantStepCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WorkflowVariantStepCreate) SetNillableCreatedAt(v *time.Time) *WorkflowVariantStepCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetWorkflowKey sets the "workflow_key" field.
func (_c *WorkflowVariantStepCreate) SetWorkflowKey(v string) *WorkflowVariantStepCreate {
	_c.mutation.SetWorkflowKey(v)
	return _c
}

// SetStepOrder sets the "step_order" field.
func (_c *WorkflowVariantStepCreate) SetStepOrder(v int) *WorkflowVariantStepCreate {
	_c.mutation.SetStepOrder(v)
	return _c
}

// SetStepKey sets the "step_key" field.
func (_c *WorkflowVariantStepCreate) SetStepKey(v string) *WorkflowVariantStepCreate {
	_c.mutation.SetStepKey(v)
	return _c
}

// SetAssigneeKind sets the "assignee_kind" field.
func (_c *WorkflowVariantStepCreate) SetAssigneeKind(v string) *WorkflowVariantStepCreate {
	_c.mutation.SetAssigneeKind(v)
	return _c
}

// SetAssigneeValue sets the "assignee_value" field.
func (_c *WorkflowVariantStepCreate) SetAssigneeValue(v string) *WorkflowVariantStepCreate {
	_c.mutation.SetAssigneeValue(v)
	return _c
}

// SetNillableAssigneeValue sets the "assignee_value" field if the given value is not nil.
func (_c *WorkflowVariantStepCreate) SetNillableAssigneeValue(v *string) *WorkflowVariantStepCreate {
	if v != nil {
		_c.SetAssigneeValue(*v)
	}
	return _c
}

// SetConditionKind sets the "condition_kind" field.
func (_c *WorkflowVariantStepCreate) SetConditionKind(v string) *WorkflowVariantStepCreate {
	_c.mutation.SetConditionKind(v)
	return _c
}

// SetNillableConditionKind sets the "condition_kind" field if the given value is not nil.
func (_c *WorkflowVariantStepCreate) SetNillableConditionKind(v *string) *WorkflowVariantStepCreate {
	if v != nil {
		_c.SetConditionKind(*v)
	}
	return _c
}

// SetConditionValue sets the "condition_value" field.
func (_c *WorkflowVariantStepCreate) SetConditionValue(v string) *WorkflowVariantStepCreate {
	_c.mutation.SetConditionValue(v)
	return _c
}

// SetNillableConditionValue sets the "condition_value" field if the given value is not nil.
func (_c *WorkflowVariantStepCreate) SetNillableConditionValue(v *string) *WorkflowVariantStepCreate {
	if v != nil {
		_c.SetConditionValue(*v)
	}
	return _c
}

// Mutation returns the WorkflowVariantStepMutation object of the builder.
func (_c *WorkflowVariantStepCreate) Mutation() *WorkflowVariantStepMutation {
	return _c.mutation
}

// Save creates the WorkflowVariantStep in the database.
func (_c *WorkflowVariantStepCreate) Save(ctx context.Context) (*WorkflowVariantStep, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WorkflowVariantStepCreate) SaveX(ctx context.Context) *WorkflowVariantStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkflowVariantStepCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkflowVariantStepCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WorkflowVariantStepCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := workflowvariantstep.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WorkflowVariantStepCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "WorkflowVariantStep.created_at"`)}
	}
	if _, ok := _c.mutation.WorkflowKey(); !ok {
		return &ValidationError{Name: "workflow_key", err: errors.New(`ent: missing required field "WorkflowVariantStep.workflow_key"`)}
	}
	if v, ok := _c.mutation.WorkflowKey(); ok {
		if err := workflowvariantstep.WorkflowKeyValidator(v); err != nil {
			return &ValidationError{Name: "workflow_key", err: fmt.Errorf(`ent: validator failed for field "WorkflowVariantStep.workflow_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StepOrder(); !ok {
		return &ValidationError{Name: "step_order", err: errors.New(`ent: missing required field "WorkflowVariantStep.step_order"`)}
	}
	if v, ok := _c.mutation.StepOrder(); ok {
		if err := workflowvariantstep.StepOrderValidator(v); err != nil {
			return &ValidationError{Name: "step_order", err: fmt.Errorf(`ent: validator failed for field "WorkflowVariantStep.step_order": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StepKey(); !ok {
		return &ValidationError{Name: "step_key", err: errors.New(`ent: missing required field "WorkflowVariantStep.step_key"`)}
	}
	if v, ok := _c.mutation.StepKey(); ok {
		if err := workflowvariantstep.StepKeyValidator(v); err != nil {
			return &ValidationError{Name: "step_key", err: fmt.Errorf(`ent: validator failed for field "WorkflowVariantStep.step_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AssigneeKind(); !ok {
		return &ValidationError{Name: "assignee_kind", err: errors.New(`ent: missing required field "WorkflowVariantStep.assignee_kind"`)}
	}
	if v, ok := _c.mutation.AssigneeKind(); ok {
		if err := workflowvariantstep.AssigneeKindValidator(v); err != nil {
			return &ValidationError{Name: "assignee_kind", err: fmt.Errorf(`ent: validator failed for field "WorkflowVariantStep.assignee_kind": %w`, err)}
		}
	}
	return nil
}

func (_c *WorkflowVariantStepCreate) sqlSave(ctx context.Context) (*WorkflowVariantStep, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WorkflowVariantStepCreate) createSpec() (*WorkflowVariantStep, *sqlgraph.CreateSpec) {
	var (
		_node = &WorkflowVariantStep{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(workflowvariantstep.Table, sqlgraph.NewFieldSpec(workflowvariantstep.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(workflowvariantstep.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.WorkflowKey(); ok {
		_spec.SetField(workflowvariantstep.FieldWorkflowKey, field.TypeString, value)
		_node.WorkflowKey = value
	}
	if value, ok := _c.mutation.StepOrder(); ok {
		_spec.SetField(workflowvariantstep.FieldStepOrder, field.TypeInt, value)
		_node.StepOrder = value
	}
	if value, ok := _c.mutation.StepKey(); ok {
		_spec.SetField(workflowvariantstep.FieldStepKey, field.TypeString, value)
		_node.StepKey = value
	}
	if value, ok := _c.mutation.AssigneeKind(); ok {
		_spec.SetField(workflowvariantstep.FieldAssigneeKind, field.TypeString, value)
		_node.AssigneeKind = value
	}
	if value, ok := _c.mutation.AssigneeValue(); ok {
		_spec.SetField(workflowvariantstep.FieldAssigneeValue, field.TypeString, value)
		_node.AssigneeValue = value
	}
	if value, ok := _c.mutation.ConditionKind(); ok {
		_spec.SetField(workflowvariantstep.FieldConditionKind, field.TypeString, value)
		_node.ConditionKind = value
	}
	if value, ok := _c.mutation.ConditionValue(); ok {
		_spec.SetField(workflowvariantstep.FieldConditionValue, field.TypeString, value)
		_node.ConditionValue = value
	}
	return _node, _spec
}

// WorkflowVariantStepCreateBulk is the builder for creating many WorkflowVariantStep entities in bulk.
type WorkflowVariantStepCreateBulk struct {
	config
	err      error
	builders []*WorkflowVariantStepCreate
}

// Save creates the WorkflowVariantStep entities in the database.
func (_c *WorkflowVariantStepCreateBulk) Save(ctx context.Context) ([]*WorkflowVariantStep, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WorkflowVariantStep, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WorkflowVariantStepMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *WorkflowVariantStepCreateBulk) SaveX(ctx context.Context) []*WorkflowVariantStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkflowVariantStepCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkflowVariantStepCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
