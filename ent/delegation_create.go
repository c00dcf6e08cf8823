// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"oaflow.io/oaflow/ent/delegation"
)

// DelegationCreate is the builder for creating a Delegation entity.
type DelegationCreate struct {
	config
	mutation *DelegationMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *DelegationCreate) SetCreatedAt(v time.Time) *DelegationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DelegationCreate) SetNillableCreatedAt(v *time.Time) *DelegationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DelegationCreate) SetUpdatedAt(v time.Time) *DelegationCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DelegationCreate) SetNillableUpdatedAt(v *time.Time) *DelegationCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDelegatorUserID sets the "delegator_user_id" field.
func (_c *DelegationCreate) SetDelegatorUserID(v int) *DelegationCreate {
	_c.mutation.SetDelegatorUserID(v)
	return _c
}

// SetDelegateUserID sets the "delegate_user_id" field.
func (_c *DelegationCreate) SetDelegateUserID(v int) *DelegationCreate {
	_c.mutation.SetDelegateUserID(v)
	return _c
}

// SetNillableDelegateUserID sets the "delegate_user_id" field if the given value is not nil.
func (_c *DelegationCreate) SetNillableDelegateUserID(v *int) *DelegationCreate {
	if v != nil {
		_c.SetDelegateUserID(*v)
	}
	return _c
}

// SetActive sets the "active" field.
func (_c *DelegationCreate) SetActive(v bool) *DelegationCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *DelegationCreate) SetNillableActive(v *bool) *DelegationCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetRevokedAt sets the "revoked_at" field.
func (_c *DelegationCreate) SetRevokedAt(v time.Time) *DelegationCreate {
	_c.mutation.SetRevokedAt(v)
	return _c
}

// SetNillableRevokedAt sets the "revoked_at" field if the given value is not nil.
func (_c *DelegationCreate) SetNillableRevokedAt(v *time.Time) *DelegationCreate {
	if v != nil {
		_c.SetRevokedAt(*v)
	}
	return _c
}

// Mutation returns the DelegationMutation object of the builder.
func (_c *DelegationCreate) Mutation() *DelegationMutation {
	return _c.mutation
}

// Save creates the Delegation in the database.
func (_c *DelegationCreate) Save(ctx context.Context) (*Delegation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DelegationCreate) SaveX(ctx context.Context) *Delegation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DelegationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DelegationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DelegationCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := delegation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := delegation.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Active(); !ok {
		v := delegation.DefaultActive
		_c.mutation.SetActive(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DelegationCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Delegation.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Delegation.updated_at"`)}
	}
	if _, ok := _c.mutation.DelegatorUserID(); !ok {
		return &ValidationError{Name: "delegator_user_id", err: errors.New(`ent: missing required field "Delegation.delegator_user_id"`)}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "Delegation.active"`)}
	}
	return nil
}

func (_c *DelegationCreate) sqlSave(ctx context.Context) (*Delegation, error) {
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

func (_c *DelegationCreate) createSpec() (*Delegation, *sqlgraph.CreateSpec) {
	var (
		_node = &Delegation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(delegation.Table, sqlgraph.NewFieldSpec(delegation.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(delegation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(delegation.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DelegatorUserID(); ok {
		_spec.SetField(delegation.FieldDelegatorUserID, field.TypeInt, value)
		_node.DelegatorUserID = value
	}
	if value, ok := _c.mutation.DelegateUserID(); ok {
		_spec.SetField(delegation.FieldDelegateUserID, field.TypeInt, value)
		_node.DelegateUserID = &value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(delegation.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	if value, ok := _c.mutation.RevokedAt(); ok {
		_spec.SetField(delegation.FieldRevokedAt, field.TypeTime, value)
		_node.RevokedAt = &value
	}
	return _node, _spec
}

// DelegationCreateBulk is the builder for creating many Delegation entities in bulk.
type DelegationCreateBulk struct {
	config
	err      error
	builders []*DelegationCreate
}

// Save creates the Delegation entities in the database.
func (_c *DelegationCreateBulk) Save(ctx context.Context) ([]*Delegation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Delegation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DelegationMutation)
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
func (_c *DelegationCreateBulk) SaveX(ctx context.Context) []*Delegation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DelegationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DelegationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
