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
	"oaflow.io/oaflow/ent/workflowvariant"
)

// WorkflowVariantUpdate is the builder for updating WorkflowVariant entities.
type WorkflowVariantUpdate struct {
	config
	hooks    []Hook
	mutation *WorkflowVariantMutation
}

// Where appends a list predicates to the WorkflowVariantUpdate builder.
func (_u *WorkflowVariantUpdate) Where(ps ...predicate.WorkflowVariant) *WorkflowVariantUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkflowVariantUpdate) SetUpdatedAt(v time.Time) *WorkflowVariantUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetWorkflowKey sets the "workflow_key" field.
func (_u *WorkflowVariantUpdate) SetWorkflowKey(v string) *WorkflowVariantUpdate {
	_u.mutation.SetWorkflowKey(v)
	return _u
}

// SetNillableWorkflowKey sets the "workflow_key" field if the given value is not nil.
func (_u *WorkflowVariantUpdate) SetNillableWorkflowKey(v *string) *WorkflowVariantUpdate {
	if v != nil {
		_u.SetWorkflowKey(*v)
	}
	return _u
}

// SetRequestType sets the "request_type" field.
func (_u *WorkflowVariantUpdate) SetRequestType(v string) *WorkflowVariantUpdate {
	_u.mutation.SetRequestType(v)
	return _u
}

// SetNillableRequestType sets the "request_type" field if the given value is not nil.
func (_u *WorkflowVariantUpdate) SetNillableRequestType(v *string) *WorkflowVariantUpdate {
	if v != nil {
		_u.SetRequestType(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *WorkflowVariantUpdate) SetName(v string) *WorkflowVariantUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *WorkflowVariantUpdate) SetNillableName(v *string) *WorkflowVariantUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *WorkflowVariantUpdate) SetCategory(v string) *WorkflowVariantUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *WorkflowVariantUpdate) SetNillableCategory(v *string) *WorkflowVariantUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetScopeKind sets the "scope_kind" field.
func (_u *WorkflowVariantUpdate) SetScopeKind(v workflowvariant.ScopeKind) *WorkflowVariantUpdate {
	_u.mutation.SetScopeKind(v)
	return _u
}

// SetNillableScopeKind sets the "scope_kind" field if the given value is not nil.
func (_u *WorkflowVariantUpdate) SetNillableScopeKind(v *workflowvariant.ScopeKind) *WorkflowVariantUpdate {
	if v != nil {
		_u.SetScopeKind(*v)
	}
	return _u
}

// SetScopeValue sets the "scope_value" field.
func (_u *WorkflowVariantUpdate) SetScopeValue(v string) *WorkflowVariantUpdate {
	_u.mutation.SetScopeValue(v)
	return _u
}

// SetNillableScopeValue sets the "scope_value" field if the given value is not nil.
func (_u *WorkflowVariantUpdate) SetNillableScopeValue(v *string) *WorkflowVariantUpdate {
	if v != nil {
		_u.SetScopeValue(*v)
	}
	return _u
}

// ClearScopeValue clears the value of the "scope_value" field.
func (_u *WorkflowVariantUpdate) ClearScopeValue() *WorkflowVariantUpdate {
	_u.mutation.ClearScopeValue()
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *WorkflowVariantUpdate) SetEnabled(v bool) *WorkflowVariantUpdate {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *WorkflowVariantUpdate) SetNillableEnabled(v *bool) *WorkflowVariantUpdate {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetIsDefault sets the "is_default" field.
func (_u *WorkflowVariantUpdate) SetIsDefault(v bool) *WorkflowVariantUpdate {
	_u.mutation.SetIsDefault(v)
	return _u
}

// SetNillableIsDefault sets the "is_default" field if the given value is not nil.
func (_u *WorkflowVariantUpdate) SetNillableIsDefault(v *bool) *WorkflowVariantUpdate {
	if v != nil {
		_u.SetIsDefault(*v)
	}
	return _u
}

// Mutation returns the WorkflowVariantMutation object of the builder.
func (_u *WorkflowVariantUpdate) Mutation() *WorkflowVariantMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorkflowVariantUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowVariantUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorkflowVariantUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowVariantUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkflowVariantUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workflowvariant.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowVariantUpdate) check() error {
	if v, ok := _u.mutation.WorkflowKey(); ok {
		if err := workflowvariant.WorkflowKeyValidator(v); err != nil {
			return &ValidationError{Name: "workflow_key", err: fmt.Errorf(`ent: validator failed for field "WorkflowVariant.workflow_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RequestType(); ok {
		if err := workflowvariant.RequestTypeValidator(v); err != nil {
			return &ValidationError{Name: "request_type", err: fmt.Errorf(`ent: validator failed for field "WorkflowVariant.request_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := workflowvariant.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "WorkflowVariant.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ScopeKind(); ok {
		if err := workflowvariant.ScopeKindValidator(v); err != nil {
			return &ValidationError{Name: "scope_kind", err: fmt.Errorf(`ent: validator failed for field "WorkflowVariant.scope_kind": %w`, err)}
		}
	}
	return nil
}

func (_u *WorkflowVariantUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflowvariant.Table, workflowvariant.Columns, sqlgraph.NewFieldSpec(workflowvariant.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workflowvariant.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.WorkflowKey(); ok {
		_spec.SetField(workflowvariant.FieldWorkflowKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.RequestType(); ok {
		_spec.SetField(workflowvariant.FieldRequestType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(workflowvariant.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(workflowvariant.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScopeKind(); ok {
		_spec.SetField(workflowvariant.FieldScopeKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ScopeValue(); ok {
		_spec.SetField(workflowvariant.FieldScopeValue, field.TypeString, value)
	}
	if _u.mutation.ScopeValueCleared() {
		_spec.ClearField(workflowvariant.FieldScopeValue, field.TypeString)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(workflowvariant.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsDefault(); ok {
		_spec.SetField(workflowvariant.FieldIsDefault, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflowvariant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorkflowVariantUpdateOne is the builder for updating a single WorkflowVariant entity.
type WorkflowVariantUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkflowVariantMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkflowVariantUpdateOne) SetUpdatedAt(v time.Time) *WorkflowVariantUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetWorkflowKey sets the "workflow_key" field.
func (_u *WorkflowVariantUpdateOne) SetWorkflowKey(v string) *WorkflowVariantUpdateOne {
	_u.mutation.SetWorkflowKey(v)
	return _u
}

// SetNillableWorkflowKey sets the "workflow_key" field if the given value is not nil.
func (_u *WorkflowVariantUpdateOne) SetNillableWorkflowKey(v *string) *WorkflowVariantUpdateOne {
	if v != nil {
		_u.SetWorkflowKey(*v)
	}
	return _u
}

// SetRequestType sets the "request_type" field.
func (_u *WorkflowVariantUpdateOne) SetRequestType(v string) *WorkflowVariantUpdateOne {
	_u.mutation.SetRequestType(v)
	return _u
}

// SetNillableRequestType sets the "request_type" field if the given value is not nil.
func (_u *WorkflowVariantUpdateOne) SetNillableRequestType(v *string) *WorkflowVariantUpdateOne {
	if v != nil {
		_u.SetRequestType(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *WorkflowVariantUpdateOne) SetName(v string) *WorkflowVariantUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *WorkflowVariantUpdateOne) SetNillableName(v *string) *WorkflowVariantUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *WorkflowVariantUpdateOne) SetCategory(v string) *WorkflowVariantUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *WorkflowVariantUpdateOne) SetNillableCategory(v *string) *WorkflowVariantUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetScopeKind sets the "scope_kind" field.
func (_u *WorkflowVariantUpdateOne) SetScopeKind(v workflowvariant.ScopeKind) *WorkflowVariantUpdateOne {
	_u.mutation.SetScopeKind(v)
	return _u
}

// SetNillableScopeKind sets the "scope_kind" field if the given value is not nil.
func (_u *WorkflowVariantUpdateOne) SetNillableScopeKind(v *workflowvariant.ScopeKind) *WorkflowVariantUpdateOne {
	if v != nil {
		_u.SetScopeKind(*v)
	}
	return _u
}

// SetScopeValue sets the "scope_value" field.
func (_u *WorkflowVariantUpdateOne) SetScopeValue(v string) *WorkflowVariantUpdateOne {
	_u.mutation.SetScopeValue(v)
	return _u
}

// SetNillableScopeValue sets the "scope_value" field if the given value is not nil.
func (_u *WorkflowVariantUpdateOne) SetNillableScopeValue(v *string) *WorkflowVariantUpdateOne {
	if v != nil {
		_u.SetScopeValue(*v)
	}
	return _u
}

// ClearScopeValue clears the value of the "scope_value" field.
func (_u *WorkflowVariantUpdateOne) ClearScopeValue() *WorkflowVariantUpdateOne {
	_u.mutation.ClearScopeValue()
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *WorkflowVariantUpdateOne) SetEnabled(v bool) *WorkflowVariantUpdateOne {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *WorkflowVariantUpdateOne) SetNillableEnabled(v *bool) *WorkflowVariantUpdateOne {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetIsDefault sets the "is_default" field.
func (_u *WorkflowVariantUpdateOne) SetIsDefault(v bool) *WorkflowVariantUpdateOne {
	_u.mutation.SetIsDefault(v)
	return _u
}

// SetNillableIsDefault sets the "is_default" field if the given value is not nil.
func (_u *WorkflowVariantUpdateOne) SetNillableIsDefault(v *bool) *WorkflowVariantUpdateOne {
	if v != nil {
		_u.SetIsDefault(*v)
	}
	return _u
}

// Mutation returns the WorkflowVariantMutation object of the builder.
func (_u *WorkflowVariantUpdateOne) Mutation() *WorkflowVariantMutation {
	return _u.mutation
}

// Where appends a list predicates to the WorkflowVariantUpdate builder.
func (_u *WorkflowVariantUpdateOne) Where(ps ...predicate.WorkflowVariant) *WorkflowVariantUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorkflowVariantUpdateOne) Select(field string, fields ...string) *WorkflowVariantUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WorkflowVariant entity.
func (_u *WorkflowVariantUpdateOne) Save(ctx context.Context) (*WorkflowVariant, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowVariantUpdateOne) SaveX(ctx context.Context) *WorkflowVariant {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorkflowVariantUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowVariantUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkflowVariantUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workflowvariant.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowVariantUpdateOne) check() error {
	if v, ok := _u.mutation.WorkflowKey(); ok {
		if err := workflowvariant.WorkflowKeyValidator(v); err != nil {
			return &ValidationError{Name: "workflow_key", err: fmt.Errorf(`ent: validator failed for field "WorkflowVariant.workflow_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RequestType(); ok {
		if err := workflowvariant.RequestTypeValidator(v); err != nil {
			return &ValidationError{Name: "request_type", err: fmt.Errorf(`ent: validator failed for field "WorkflowVariant.request_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := workflowvariant.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "WorkflowVariant.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ScopeKind(); ok {
		if err := workflowvariant.ScopeKindValidator(v); err != nil {
			return &ValidationError{Name: "scope_kind", err: fmt.Errorf(`ent: validator failed for field "WorkflowVariant.scope_kind": %w`, err)}
		}
	}
	return nil
}

func (_u *WorkflowVariantUpdateOne) sqlSave(ctx context.Context) (_node *WorkflowVariant, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflowvariant.Table, workflowvariant.Columns, sqlgraph.NewFieldSpec(workflowvariant.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WorkflowVariant.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workflowvariant.FieldID)
		for _, f := range fields {
			if !workflowvariant.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != workflowvariant.FieldID {
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
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workflowvariant.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.WorkflowKey(); ok {
		_spec.SetField(workflowvariant.FieldWorkflowKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.RequestType(); ok {
		_spec.SetField(workflowvariant.FieldRequestType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(workflowvariant.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(workflowvariant.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScopeKind(); ok {
		_spec.SetField(workflowvariant.FieldScopeKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ScopeValue(); ok {
		_spec.SetField(workflowvariant.FieldScopeValue, field.TypeString, value)
	}
	if _u.mutation.ScopeValueCleared() {
		_spec.ClearField(workflowvariant.FieldScopeValue, field.TypeString)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(workflowvariant.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsDefault(); ok {
		_spec.SetField(workflowvariant.FieldIsDefault, field.TypeBool, value)
	}
	_node = &WorkflowVariant{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflowvariant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
