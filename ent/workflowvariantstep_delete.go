// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"oaflow.io/oaflow/ent/predicate"
	"oaflow.io/oaflow/ent/workflowvariantstep"
)

// WorkflowVariantStepDelete is the builder for deleting a WorkflowVariantStep entity.
type WorkflowVariantStepDelete struct {
	config
	hooks    []Hook
	mutation *WorkflowVariantStepMutation
}

// Where appends a list predicates to the WorkflowVariantStepDelete builder.
func (_d *WorkflowVariantStepDelete) Where(ps ...predicate.WorkflowVariantStep) *WorkflowVariantStepDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *WorkflowVariantStepDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *WorkflowVariantStepDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *WorkflowVariantStepDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(workflowvariantstep.Table, sqlgraph.NewFieldSpec(workflowvariantstep.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// WorkflowVariantStepDeleteOne is the builder for deleting a single WorkflowVariantStep entity.
type WorkflowVariantStepDeleteOne struct {
	_d *WorkflowVariantStepDelete
}

// Where appends a list predicates to the WorkflowVariantStepDelete builder.
func (_d *WorkflowVariantStepDeleteOne) Where(ps ...predicate.WorkflowVariantStep) *WorkflowVariantStepDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *WorkflowVariantStepDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{workflowvariantstep.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *WorkflowVariantStepDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
