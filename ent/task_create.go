// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"oaflow.io/oaflow/ent/task"
)

// TaskCreate is the builder for creating a Task entity.
type TaskCreate struct {
	config
	mutation *TaskMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *TaskCreate) SetCreatedAt(v time.Time) *TaskCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableCreatedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetRequestID sets the "request_id" field.
func (_c *TaskCreate) SetRequestID(v int) *TaskCreate {
	_c.mutation.SetRequestID(v)
	return _c
}

// SetStepOrder sets the "step_order" field.
func (_c *TaskCreate) SetStepOrder(v int) *TaskCreate {
	_c.mutation.SetStepOrder(v)
	return _c
}

// SetNillableStepOrder sets the "step_order" field if the given value is not nil.
func (_c *TaskCreate) SetNillableStepOrder(v *int) *TaskCreate {
	if v != nil {
		_c.SetStepOrder(*v)
	}
	return _c
}

// SetStepKey sets the "step_key" field.
func (_c *TaskCreate) SetStepKey(v string) *TaskCreate {
	_c.mutation.SetStepKey(v)
	return _c
}

// SetAssigneeUserID sets the "assignee_user_id" field.
func (_c *TaskCreate) SetAssigneeUserID(v int) *TaskCreate {
	_c.mutation.SetAssigneeUserID(v)
	return _c
}

// SetNillableAssigneeUserID sets the "assignee_user_id" field if the given value is not nil.
func (_c *TaskCreate) SetNillableAssigneeUserID(v *int) *TaskCreate {
	if v != nil {
		_c.SetAssigneeUserID(*v)
	}
	return _c
}

// SetAssigneeRole sets the "assignee_role" field.
func (_c *TaskCreate) SetAssigneeRole(v string) *TaskCreate {
	_c.mutation.SetAssigneeRole(v)
	return _c
}

// SetNillableAssigneeRole sets the "assignee_role" field if the given value is not nil.
func (_c *TaskCreate) SetNillableAssigneeRole(v *string) *TaskCreate {
	if v != nil {
		_c.SetAssigneeRole(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *TaskCreate) SetStatus(v task.Status) *TaskCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TaskCreate) SetNillableStatus(v *task.Status) *TaskCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetDecidedBy sets the "decided_by" field.
func (_c *TaskCreate) SetDecidedBy(v int) *TaskCreate {
	_c.mutation.SetDecidedBy(v)
	return _c
}

// SetNillableDecidedBy sets the "decided_by" field if the given value is not nil.
func (_c *TaskCreate) SetNillableDecidedBy(v *int) *TaskCreate {
	if v != nil {
		_c.SetDecidedBy(*v)
	}
	return _c
}

// SetDecidedAt sets the "decided_at" field.
func (_c *TaskCreate) SetDecidedAt(v time.Time) *TaskCreate {
	_c.mutation.SetDecidedAt(v)
	return _c
}

// SetNillableDecidedAt sets the "decided_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableDecidedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetDecidedAt(*v)
	}
	return _c
}

// SetComment sets the "comment" field.
func (_c *TaskCreate) SetComment(v string) *TaskCreate {
	_c.mutation.SetComment(v)
	return _c
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (_c *TaskCreate) SetNillableComment(v *string) *TaskCreate {
	if v != nil {
		_c.SetComment(*v)
	}
	return _c
}

// Mutation returns the TaskMutation object of the builder.
func (_c *TaskCreate) Mutation() *TaskMutation {
	return _c.mutation
}

// Save creates the Task in the database.
func (_c *TaskCreate) Save(ctx context.Context) (*Task, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TaskCreate) SaveX(ctx context.Context) *Task {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TaskCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := task.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := task.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TaskCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Task.created_at"`)}
	}
	if _, ok := _c.mutation.RequestID(); !ok {
		return &ValidationError{Name: "request_id", err: errors.New(`ent: missing required field "Task.request_id"`)}
	}
	if _, ok := _c.mutation.StepKey(); !ok {
		return &ValidationError{Name: "step_key", err: errors.New(`ent: missing required field "Task.step_key"`)}
	}
	if v, ok := _c.mutation.StepKey(); ok {
		if err := task.StepKeyValidator(v); err != nil {
			return &ValidationError{Name: "step_key", err: fmt.Errorf(`ent: validator failed for field "Task.step_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Task.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	return nil
}

func (_c *TaskCreate) sqlSave(ctx context.Context) (*Task, error) {
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

func (_c *TaskCreate) createSpec() (*Task, *sqlgraph.CreateSpec) {
	var (
		_node = &Task{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(task.Table, sqlgraph.NewFieldSpec(task.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(task.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.RequestID(); ok {
		_spec.SetField(task.FieldRequestID, field.TypeInt, value)
		_node.RequestID = value
	}
	if value, ok := _c.mutation.StepOrder(); ok {
		_spec.SetField(task.FieldStepOrder, field.TypeInt, value)
		_node.StepOrder = &value
	}
	if value, ok := _c.mutation.StepKey(); ok {
		_spec.SetField(task.FieldStepKey, field.TypeString, value)
		_node.StepKey = value
	}
	if value, ok := _c.mutation.AssigneeUserID(); ok {
		_spec.SetField(task.FieldAssigneeUserID, field.TypeInt, value)
		_node.AssigneeUserID = &value
	}
	if value, ok := _c.mutation.AssigneeRole(); ok {
		_spec.SetField(task.FieldAssigneeRole, field.TypeString, value)
		_node.AssigneeRole = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.DecidedBy(); ok {
		_spec.SetField(task.FieldDecidedBy, field.TypeInt, value)
		_node.DecidedBy = &value
	}
	if value, ok := _c.mutation.DecidedAt(); ok {
		_spec.SetField(task.FieldDecidedAt, field.TypeTime, value)
		_node.DecidedAt = &value
	}
	if value, ok := _c.mutation.Comment(); ok {
		_spec.SetField(task.FieldComment, field.TypeString, value)
		_node.Comment = &value
	}
	return _node, _spec
}

// TaskCreateBulk is the builder for creating many Task entities in bulk.
type TaskCreateBulk struct {
	config
	err      error
	builders []*TaskCreate
}

// Save creates the Task entities in the database.
func (_c *TaskCreateBulk) Save(ctx context.Context) ([]*Task, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Task, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TaskMutation)
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
func (_c *TaskCreateBulk) SaveX(ctx context.Context) []*Task {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
