// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"oaflow.io/oaflow/ent/requestwatcher"
)

// RequestWatcherCreate is the builder for creating a RequestWatcher entity.
type RequestWatcherCreate struct {
	config
	mutation *RequestWatcherMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *RequestWatcherCreate) SetCreatedAt(v time.Time) *RequestWatcherCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RequestWatcherCreate) SetNillableCreatedAt(v *time.Time) *RequestWatcherCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetRequestID sets the "request_id" field.
func (_c *RequestWatcherCreate) SetRequestID(v int) *RequestWatcherCreate {
	_c.mutation.SetRequestID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *RequestWatcherCreate) SetUserID(v int) *RequestWatcherCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *RequestWatcherCreate) SetKind(v requestwatcher.Kind) *RequestWatcherCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_c *RequestWatcherCreate) SetNillableKind(v *requestwatcher.Kind) *RequestWatcherCreate {
	if v != nil {
		_c.SetKind(*v)
	}
	return _c
}

// Mutation returns the RequestWatcherMutation object of the builder.
func (_c *RequestWatcherCreate) Mutation() *RequestWatcherMutation {
	return _c.mutation
}

// Save creates the RequestWatcher in the database.
func (_c *RequestWatcherCreate) Save(ctx context.Context) (*RequestWatcher, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RequestWatcherCreate) SaveX(ctx context.Context) *RequestWatcher {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RequestWatcherCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RequestWatcherCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RequestWatcherCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := requestwatcher.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.Kind(); !ok {
		v := requestwatcher.DefaultKind
		_c.mutation.SetKind(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RequestWatcherCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RequestWatcher.created_at"`)}
	}
	if _, ok := _c.mutation.RequestID(); !ok {
		return &ValidationError{Name: "request_id", err: errors.New(`ent: missing required field "RequestWatcher.request_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "RequestWatcher.user_id"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "RequestWatcher.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := requestwatcher.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "RequestWatcher.kind": %w`, err)}
		}
	}
	return nil
}

func (_c *RequestWatcherCreate) sqlSave(ctx context.Context) (*RequestWatcher, error) {
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

func (_c *RequestWatcherCreate) createSpec() (*RequestWatcher, *sqlgraph.CreateSpec) {
	var (
		_node = &RequestWatcher{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(requestwatcher.Table, sqlgraph.NewFieldSpec(requestwatcher.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(requestwatcher.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.RequestID(); ok {
		_spec.SetField(requestwatcher.FieldRequestID, field.TypeInt, value)
		_node.RequestID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(requestwatcher.FieldUserID, field.TypeInt, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(requestwatcher.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	return _node, _spec
}

// RequestWatcherCreateBulk is the builder for creating many RequestWatcher entities in bulk.
type RequestWatcherCreateBulk struct {
	config
	err      error
	builders []*RequestWatcherCreate
}

// Save creates the RequestWatcher entities in the database.
func (_c *RequestWatcherCreateBulk) Save(ctx context.Context) ([]*RequestWatcher, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RequestWatcher, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RequestWatcherMutation)
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
func (_c *RequestWatcherCreateBulk) SaveX(ctx context.Context) []*RequestWatcher {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RequestWatcherCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RequestWatcherCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
