// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"oaflow.io/oaflow/ent/request"
)

// RequestCreate is the builder for creating a Request entity.
type RequestCreate struct {
	config
	mutation *RequestMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *RequestCreate) SetCreatedAt(v time.Time) *RequestCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RequestCreate) SetNillableCreatedAt(v *time.Time) *RequestCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *RequestCreate) SetUpdatedAt(v time.Time) *RequestCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *RequestCreate) SetNillableUpdatedAt(v *time.Time) *RequestCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *RequestCreate) SetUserID(v int) *RequestCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetRequestType sets the "request_type" field.
func (_c *RequestCreate) SetRequestType(v string) *RequestCreate {
	_c.mutation.SetRequestType(v)
	return _c
}

// SetNillableRequestType sets the "request_type" field if the given value is not nil.
func (_c *RequestCreate) SetNillableRequestType(v *string) *RequestCreate {
	if v != nil {
		_c.SetRequestType(*v)
	}
	return _c
}

// SetWorkflowKey sets the "workflow_key" field.
func (_c *RequestCreate) SetWorkflowKey(v string) *RequestCreate {
	_c.mutation.SetWorkflowKey(v)
	return _c
}

// SetNillableWorkflowKey sets the "workflow_key" field if the given value is not nil.
func (_c *RequestCreate) SetNillableWorkflowKey(v *string) *RequestCreate {
	if v != nil {
		_c.SetWorkflowKey(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *RequestCreate) SetTitle(v string) *RequestCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetBody sets the "body" field.
func (_c *RequestCreate) SetBody(v string) *RequestCreate {
	_c.mutation.SetBody(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *RequestCreate) SetPayload(v map[string]interface{}) *RequestCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *RequestCreate) SetStatus(v request.Status) *RequestCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *RequestCreate) SetNillableStatus(v *request.Status) *RequestCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetDecidedBy sets the "decided_by" field.
func (_c *RequestCreate) SetDecidedBy(v int) *RequestCreate {
	_c.mutation.SetDecidedBy(v)
	return _c
}

// SetNillableDecidedBy sets the "decided_by" field if the given value is not nil.
func (_c *RequestCreate) SetNillableDecidedBy(v *int) *RequestCreate {
	if v != nil {
		_c.SetDecidedBy(*v)
	}
	return _c
}

// SetDecidedAt sets the "decided_at" field.
func (_c *RequestCreate) SetDecidedAt(v time.Time) *RequestCreate {
	_c.mutation.SetDecidedAt(v)
	return _c
}

// SetNillableDecidedAt sets the "decided_at" field if the given value is not nil.
func (_c *RequestCreate) SetNillableDecidedAt(v *time.Time) *RequestCreate {
	if v != nil {
		_c.SetDecidedAt(*v)
	}
	return _c
}

// Mutation returns the RequestMutation object of the builder.
func (_c *RequestCreate) Mutation() *RequestMutation {
	return _c.mutation
}

// Save creates the Request in the database.
func (_c *RequestCreate) Save(ctx context.Context) (*Request, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RequestCreate) SaveX(ctx context.Context) *Request {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RequestCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RequestCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RequestCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := request.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := request.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.RequestType(); !ok {
		v := request.DefaultRequestType
		_c.mutation.SetRequestType(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := request.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RequestCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Request.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Request.updated_at"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Request.user_id"`)}
	}
	if _, ok := _c.mutation.RequestType(); !ok {
		return &ValidationError{Name: "request_type", err: errors.New(`ent: missing required field "Request.request_type"`)}
	}
	if v, ok := _c.mutation.RequestType(); ok {
		if err := request.RequestTypeValidator(v); err != nil {
			return &ValidationError{Name: "request_type", err: fmt.Errorf(`ent: validator failed for field "Request.request_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Request.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := request.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Request.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Body(); !ok {
		return &ValidationError{Name: "body", err: errors.New(`ent: missing required field "Request.body"`)}
	}
	if v, ok := _c.mutation.Body(); ok {
		if err := request.BodyValidator(v); err != nil {
			return &ValidationError{Name: "body", err: fmt.Errorf(`ent: validator failed for field "Request.body": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Request.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := request.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Request.status": %w`, err)}
		}
	}
	return nil
}

func (_c *RequestCreate) sqlSave(ctx context.Context) (*Request, error) {
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

func (_c *RequestCreate) createSpec() (*Request, *sqlgraph.CreateSpec) {
	var (
		_node = &Request{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(request.Table, sqlgraph.NewFieldSpec(request.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(request.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(request.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(request.FieldUserID, field.TypeInt, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.RequestType(); ok {
		_spec.SetField(request.FieldRequestType, field.TypeString, value)
		_node.RequestType = value
	}
	if value, ok := _c.mutation.WorkflowKey(); ok {
		_spec.SetField(request.FieldWorkflowKey, field.TypeString, value)
		_node.WorkflowKey = &value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(request.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Body(); ok {
		_spec.SetField(request.FieldBody, field.TypeString, value)
		_node.Body = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(request.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(request.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.DecidedBy(); ok {
		_spec.SetField(request.FieldDecidedBy, field.TypeInt, value)
		_node.DecidedBy = &value
	}
	if value, ok := _c.mutation.DecidedAt(); ok {
		_spec.SetField(request.FieldDecidedAt, field.TypeTime, value)
		_node.DecidedAt = &value
	}
	return _node, _spec
}

// RequestCreateBulk is the builder for creating many Request entities in bulk.
type RequestCreateBulk struct {
	config
	err      error
	builders []*RequestCreate
}

// Save creates the Request entities in the database.
func (_c *RequestCreateBulk) Save(ctx context.Context) ([]*Request, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Request, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RequestMutation)
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
func (_c *RequestCreateBulk) SaveX(ctx context.Context) []*Request {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RequestCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RequestCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
