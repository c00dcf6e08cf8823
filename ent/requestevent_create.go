// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"oaflow.io/oaflow/ent/requestevent"
)

// RequestEventCreate is the builder for creating a RequestEvent entity.
type RequestEventCreate struct {
	config
	mutation *RequestEventMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *RequestEventCreate) SetCreatedAt(v time.Time) *RequestEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RequestEventCreate) SetNillableCreatedAt(v *time.Time) *RequestEventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetRequestID sets the "request_id" field.
func (_c *RequestEventCreate) SetRequestID(v int) *RequestEventCreate {
	_c.mutation.SetRequestID(v)
	return _c
}

// SetEventType sets the "event_type" field.
func (_c *RequestEventCreate) SetEventType(v string) *RequestEventCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetActorUserID sets the "actor_user_id" field.
func (_c *RequestEventCreate) SetActorUserID(v int) *RequestEventCreate {
	_c.mutation.SetActorUserID(v)
	return _c
}

// SetNillableActorUserID sets the "actor_user_id" field if the given value is not nil.
func (_c *RequestEventCreate) SetNillableActorUserID(v *int) *RequestEventCreate {
	if v != nil {
		_c.SetActorUserID(*v)
	}
	return _c
}

// SetMessage sets the "message" field.
func (_c *RequestEventCreate) SetMessage(v string) *RequestEventCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_c *RequestEventCreate) SetNillableMessage(v *string) *RequestEventCreate {
	if v != nil {
		_c.SetMessage(*v)
	}
	return _c
}

// Mutation returns the RequestEventMutation object of the builder.
func (_c *RequestEventCreate) Mutation() *RequestEventMutation {
	return _c.mutation
}

// Save creates the RequestEvent in the database.
func (_c *RequestEventCreate) Save(ctx context.Context) (*RequestEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RequestEventCreate) SaveX(ctx context.Context) *RequestEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RequestEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RequestEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RequestEventCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := requestevent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RequestEventCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RequestEvent.created_at"`)}
	}
	if _, ok := _c.mutation.RequestID(); !ok {
		return &ValidationError{Name: "request_id", err: errors.New(`ent: missing required field "RequestEvent.request_id"`)}
	}
	if _, ok := _c.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`ent: missing required field "RequestEvent.event_type"`)}
	}
	if v, ok := _c.mutation.EventType(); ok {
		if err := requestevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "RequestEvent.event_type": %w`, err)}
		}
	}
	return nil
}

func (_c *RequestEventCreate) sqlSave(ctx context.Context) (*RequestEvent, error) {
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

func (_c *RequestEventCreate) createSpec() (*RequestEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &RequestEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(requestevent.Table, sqlgraph.NewFieldSpec(requestevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(requestevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.RequestID(); ok {
		_spec.SetField(requestevent.FieldRequestID, field.TypeInt, value)
		_node.RequestID = value
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(requestevent.FieldEventType, field.TypeString, value)
		_node.EventType = value
	}
	if value, ok := _c.mutation.ActorUserID(); ok {
		_spec.SetField(requestevent.FieldActorUserID, field.TypeInt, value)
		_node.ActorUserID = &value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(requestevent.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	return _node, _spec
}

// RequestEventCreateBulk is the builder for creating many RequestEvent entities in bulk.
type RequestEventCreateBulk struct {
	config
	err      error
	builders []*RequestEventCreate
}

// Save creates the RequestEvent entities in the database.
func (_c *RequestEventCreateBulk) Save(ctx context.Context) ([]*RequestEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RequestEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RequestEventMutation)
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
func (_c *RequestEventCreateBulk) SaveX(ctx context.Context) []*RequestEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RequestEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RequestEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
