// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"oaflow.io/oaflow/ent/workflowvariant"
)

// WorkflowVariantCreate is the builder for creating a WorkflowVariant entity.
type WorkflowVariantCreate struct {
	config
	mutation *WorkflowVariantMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *WorkflowVariantCreate) SetCreatedAt(v time.Time) *WorkflowVariantCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WorkflowVariantCreate) SetNillableCreatedAt(v *time.Time) *WorkflowVariantCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *WorkflowVariantCreate) SetUpdatedAt(v time.Time) *WorkflowVariantCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *WorkflowVariantCreate) SetNillableUpdatedAt(v *time.Time) *WorkflowVariantCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetWorkflowKey sets the "workflow_key" field.
func (_c *WorkflowVariantCreate) SetWorkflowKey(v string) *WorkflowVariantCreate {
	_c.mutation.SetWorkflowKey(v)
	return _c
}

// SetRequestType sets the "request_type" field.
func (_c *WorkflowVariantCreate) SetRequestType(v string) *WorkflowVariantCreate {
	_c.mutation.SetRequestType(v)
	return _c
}

// SetName sets the "name" field.
func (_c *WorkflowVariantCreate) SetName(v string) *WorkflowVariantCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *WorkflowVariantCreate) SetCategory(v string) *WorkflowVariantCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *WorkflowVariantCreate) SetNillableCategory(v *string) *WorkflowVariantCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetScopeKind sets the "scope_kind" field.
func (_c *WorkflowVariantCreate) SetScopeKind(v workflowvariant.ScopeKind) *WorkflowVariantCreate {
	_c.mutation.SetScopeKind(v)
	return _c
}

// SetNillableScopeKind sets the "scope_kind" field if the given value is not nil.
func (_c *WorkflowVariantCreate) SetNillableScopeKind(v *workflowvariant.ScopeKind) *WorkflowVariantCreate {
	if v != nil {
		_c.SetScopeKind(*v)
	}
	return _c
}

// SetScopeValue sets the "scope_value" field.
func (_c *WorkflowVariantCreate) SetScopeValue(v string) *WorkflowVariantCreate {
	_c.mutation.SetScopeValue(v)
	return _c
}

// SetNillableScopeValue sets the "scope_value" field if the given value is not nil.
func (_c *WorkflowVariantCreate) SetNillableScopeValue(v *string) *WorkflowVariantCreate {
	if v != nil {
		_c.SetScopeValue(*v)
	}
	return _c
}

// SetEnabled sets the "enabled" field.
func (_c *WorkflowVariantCreate) SetEnabled(v bool) *WorkflowVariantCreate {
	_c.mutation.SetEnabled(v)
	return _c
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_c *WorkflowVariantCreate) SetNillableEnabled(v *bool) *WorkflowVariantCreate {
	if v != nil {
		_c.SetEnabled(*v)
	}
	return _c
}

// SetIsDefault sets the "is_default" field.
func (_c *WorkflowVariantCreate) SetIsDefault(v bool) *WorkflowVariantCreate {
	_c.mutation.SetIsDefault(v)
	return _c
}

// SetNillableIsDefault sets the "is_default" field if the given value is not nil.
func (_c *WorkflowVariantCreate) SetNillableIsDefault(v *bool) *WorkflowVariantCreate {
	if v != nil {
		_c.SetIsDefault(*v)
	}
	return _c
}

// Mutation returns the WorkflowVariantMutation object of the builder.
func (_c *WorkflowVariantCreate) Mutation() *WorkflowVariantMutation {
	return _c.mutation
}

// Save creates the WorkflowVariant in the database.
func (_c *WorkflowVariantCreate) Save(ctx context.Context) (*WorkflowVariant, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WorkflowVariantCreate) SaveX(ctx context.Context) *WorkflowVariant {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkflowVariantCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkflowVariantCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WorkflowVariantCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := workflowvariant.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := workflowvariant.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Category(); !ok {
		v := workflowvariant.DefaultCategory
		_c.mutation.SetCategory(v)
	}
	if _, ok := _c.mutation.ScopeKind(); !ok {
		v := workflowvariant.DefaultScopeKind
		_c.mutation.SetScopeKind(v)
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		v := workflowvariant.DefaultEnabled
		_c.mutation.SetEnabled(v)
	}
	if _, ok := _c.mutation.IsDefault(); !ok {
		v := workflowvariant.DefaultIsDefault
		_c.mutation.SetIsDefault(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WorkflowVariantCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "WorkflowVariant.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "WorkflowVariant.updated_at"`)}
	}
	if _, ok := _c.mutation.WorkflowKey(); !ok {
		return &ValidationError{Name: "workflow_key", err: errors.New(`ent: missing required field "WorkflowVariant.workflow_key"`)}
	}
	if v, ok := _c.mutation.WorkflowKey(); ok {
		if err := workflowvariant.WorkflowKeyValidator(v); err != nil {
			return &ValidationError{Name: "workflow_key", err: fmt.Errorf(`ent: validator failed for field "WorkflowVariant.workflow_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RequestType(); !ok {
		return &ValidationError{Name: "request_type", err: errors.New(`ent: missing required field "WorkflowVariant.request_type"`)}
	}
	if v, ok := _c.mutation.RequestType(); ok {
		if err := workflowvariant.RequestTypeValidator(v); err != nil {
			return &ValidationError{Name: "request_type", err: fmt.Errorf(`ent: validator failed for field "WorkflowVariant.request_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "WorkflowVariant.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := workflowvariant.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "WorkflowVariant.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "WorkflowVariant.category"`)}
	}
	if _, ok := _c.mutation.ScopeKind(); !ok {
		return &ValidationError{Name: "scope_kind", err: errors.New(`ent: missing required field "WorkflowVariant.scope_kind"`)}
	}
	if v, ok := _c.mutation.ScopeKind(); ok {
		if err := workflowvariant.ScopeKindValidator(v); err != nil {
			return &ValidationError{Name: "scope_kind", err: fmt.Errorf(`ent: validator failed for field "WorkflowVariant.scope_kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		return &ValidationError{Name: "enabled", err: errors.New(`ent: missing required field "WorkflowVariant.enabled"`)}
	}
	if _, ok := _c.mutation.IsDefault(); !ok {
		return &ValidationError{Name: "is_default", err: errors.New(`ent: missing required field "WorkflowVariant.is_default"`)}
	}
	return nil
}

func (_c *WorkflowVariantCreate) sqlSave(ctx context.Context) (*WorkflowVariant, error) {
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

func (_c *WorkflowVariantCreate) createSpec() (*WorkflowVariant, *sqlgraph.CreateSpec) {
	var (
		_node = &WorkflowVariant{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(workflowvariant.Table, sqlgraph.NewFieldSpec(workflowvariant.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(workflowvariant.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(workflowvariant.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.WorkflowKey(); ok {
		_spec.SetField(workflowvariant.FieldWorkflowKey, field.TypeString, value)
		_node.WorkflowKey = value
	}
	if value, ok := _c.mutation.RequestType(); ok {
		_spec.SetField(workflowvariant.FieldRequestType, field.TypeString, value)
		_node.RequestType = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(workflowvariant.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(workflowvariant.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.ScopeKind(); ok {
		_spec.SetField(workflowvariant.FieldScopeKind, field.TypeEnum, value)
		_node.ScopeKind = value
	}
	if value, ok := _c.mutation.ScopeValue(); ok {
		_spec.SetField(workflowvariant.FieldScopeValue, field.TypeString, value)
		_node.ScopeValue = &value
	}
	if value, ok := _c.mutation.Enabled(); ok {
		_spec.SetField(workflowvariant.FieldEnabled, field.TypeBool, value)
		_node.Enabled = value
	}
	if value, ok := _c.mutation.IsDefault(); ok {
		_spec.SetField(workflowvariant.FieldIsDefault, field.TypeBool, value)
		_node.IsDefault = value
	}
	return _node, _spec
}

// WorkflowVariantCreateBulk is the builder for creating many WorkflowVariant entities in bulk.
type WorkflowVariantCreateBulk struct {
	config
	err      error
	builders []*WorkflowVariantCreate
}

// Save creates the WorkflowVariant entities in the database.
func (_c *WorkflowVariantCreateBulk) Save(ctx context.Context) ([]*WorkflowVariant, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WorkflowVariant, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WorkflowVariantMutation)
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
func (_c *WorkflowVariantCreateBulk) SaveX(ctx context.Context) []*WorkflowVariant {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkflowVariantCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkflowVariantCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
