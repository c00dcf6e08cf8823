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
	"oaflow.io/oaflow/ent/user"
)

// UserUpdate is the builder for updating User entities.
type UserUpdate struct {
	config
	hooks    []Hook
	mutation *UserMutation
}

// Where appends a list predicates to the UserUpdate builder.
func (_u *UserUpdate) Where(ps ...predicate.User) *UserUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserUpdate) SetUpdatedAt(v time.Time) *UserUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUsername sets the "username" field.
func (_u *UserUpdate) SetUsername(v string) *UserUpdate {
	_u.mutation.SetUsername(v)
	return _u
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_u *UserUpdate) SetNillableUsername(v *string) *UserUpdate {
	if v != nil {
		_u.SetUsername(*v)
	}
	return _u
}

// SetPasswordHash sets the "password_hash" field.
func (_u *UserUpdate) SetPasswordHash(v string) *UserUpdate {
	_u.mutation.SetPasswordHash(v)
	return _u
}

// SetNillablePasswordHash sets the "password_hash" field if the given value is not nil.
func (_u *UserUpdate) SetNillablePasswordHash(v *string) *UserUpdate {
	if v != nil {
		_u.SetPasswordHash(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *UserUpdate) SetRole(v string) *UserUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *UserUpdate) SetNillableRole(v *string) *UserUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetDept sets the "dept" field.
func (_u *UserUpdate) SetDept(v string) *UserUpdate {
	_u.mutation.SetDept(v)
	return _u
}

// SetNillableDept sets the "dept" field if the given value is not nil.
func (_u *UserUpdate) SetNillableDept(v *string) *UserUpdate {
	if v != nil {
		_u.SetDept(*v)
	}
	return _u
}

// ClearDept clears the value of the "dept" field.
func (_u *UserUpdate) ClearDept() *UserUpdate {
	_u.mutation.ClearDept()
	return _u
}

// SetManagerID sets the "manager_id" field.
func (_u *UserUpdate) SetManagerID(v int) *UserUpdate {
	_u.mutation.ResetManagerID()
	_u.mutation.SetManagerID(v)
	return _u
}

// SetNillableManagerID sets the "manager_id" field if the given value is not nil.
func (_u *UserUpdate) SetNillableManagerID(v *int) *UserUpdate {
	if v != nil {
		_u.SetManagerID(*v)
	}
	return _u
}

// AddManagerID adds value to the "manager_id" field.
func (_u *UserUpdate) AddManagerID(v int) *UserUpdate {
	_u.mutation.AddManagerID(v)
	return _u
}

// ClearManagerID clears the value of the "manager_id" field.
func (_u *UserUpdate) ClearManagerID() *UserUpdate {
	_u.mutation.ClearManagerID()
	return _u
}

// SetDeptID sets the "dept_id" field.
func (_u *UserUpdate) SetDeptID(v int) *UserUpdate {
	_u.mutation.ResetDeptID()
	_u.mutation.SetDeptID(v)
	return _u
}

// SetNillableDeptID sets the "dept_id" field if the given value is not nil.
func (_u *UserUpdate) SetNillableDeptID(v *int) *UserUpdate {
	if v != nil {
		_u.SetDeptID(*v)
	}
	return _u
}

// AddDeptID adds value to the "dept_id" field.
func (_u *UserUpdate) AddDeptID(v int) *UserUpdate {
	_u.mutation.AddDeptID(v)
	return _u
}

// ClearDeptID clears the value of the "dept_id" field.
func (_u *UserUpdate) ClearDeptID() *UserUpdate {
	_u.mutation.ClearDeptID()
	return _u
}

// SetPosition sets the "position" field.
func (_u *UserUpdate) SetPosition(v string) *UserUpdate {
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *UserUpdate) SetNillablePosition(v *string) *UserUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// ClearPosition clears the value of the "position" field.
func (_u *UserUpdate) ClearPosition() *UserUpdate {
	_u.mutation.ClearPosition()
	return _u
}

// Mutation returns the UserMutation object of the builder.
func (_u *UserUpdate) Mutation() *UserMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := user.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserUpdate) check() error {
	if v, ok := _u.mutation.Username(); ok {
		if err := user.UsernameValidator(v); err != nil {
			return &ValidationError{Name: "username", err: fmt.Errorf(`ent: validator failed for field "User.username": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PasswordHash(); ok {
		if err := user.PasswordHashValidator(v); err != nil {
			return &ValidationError{Name: "password_hash", err: fmt.Errorf(`ent: validator failed for field "User.password_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Role(); ok {
		if err := user.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "User.role": %w`, err)}
		}
	}
	return nil
}

func (_u *UserUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(user.Table, user.Columns, sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(user.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Username(); ok {
		_spec.SetField(user.FieldUsername, field.TypeString, value)
	}
	if value, ok := _u.mutation.PasswordHash(); ok {
		_spec.SetField(user.FieldPasswordHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(user.FieldRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.Dept(); ok {
		_spec.SetField(user.FieldDept, field.TypeString, value)
	}
	if _u.mutation.DeptCleared() {
		_spec.ClearField(user.FieldDept, field.TypeString)
	}
	if value, ok := _u.mutation.ManagerID(); ok {
		_spec.SetField(user.FieldManagerID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedManagerID(); ok {
		_spec.AddField(user.FieldManagerID, field.TypeInt, value)
	}
	if _u.mutation.ManagerIDCleared() {
		_spec.ClearField(user.FieldManagerID, field.TypeInt)
	}
	if value, ok := _u.mutation.DeptID(); ok {
		_spec.SetField(user.FieldDeptID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDeptID(); ok {
		_spec.AddField(user.FieldDeptID, field.TypeInt, value)
	}
	if _u.mutation.DeptIDCleared() {
		_spec.ClearField(user.FieldDeptID, field.TypeInt)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(user.FieldPosition, field.TypeString, value)
	}
	if _u.mutation.PositionCleared() {
		_spec.ClearField(user.FieldPosition, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{user.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserUpdateOne is the builder for updating a single User entity.
type UserUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserUpdateOne) SetUpdatedAt(v time.Time) *UserUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUsername sets the "username" field.
func (_u *UserUpdateOne) SetUsername(v string) *UserUpdateOne {
	_u.mutation.SetUsername(v)
	return _u
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableUsername(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetUsername(*v)
	}
	return _u
}

// SetPasswordHash sets the "password_hash" field.
func (_u *UserUpdateOne) SetPasswordHash(v string) *UserUpdateOne {
	_u.mutation.SetPasswordHash(v)
	return _u
}

// SetNillablePasswordHash sets the "password_hash" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillablePasswordHash(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetPasswordHash(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *UserUpdateOne) SetRole(v string) *UserUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableRole(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetDept sets the "dept" field.
func (_u *UserUpdateOne) SetDept(v string) *UserUpdateOne {
	_u.mutation.SetDept(v)
	return _u
}

// SetNillableDept sets the "dept" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableDept(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetDept(*v)
	}
	return _u
}

// ClearDept clears the value of the "dept" field.
func (_u *UserUpdateOne) ClearDept() *UserUpdateOne {
	_u.mutation.ClearDept()
	return _u
}

// SetManagerID sets the "manager_id" field.
func (_u *UserUpdateOne) SetManagerID(v int) *UserUpdateOne {
	_u.mutation.ResetManagerID()
	_u.mutation.SetManagerID(v)
	return _u
}

// SetNillableManagerID sets the "manager_id" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableManagerID(v *int) *UserUpdateOne {
	if v != nil {
		_u.SetManagerID(*v)
	}
	return _u
}

// AddManagerID adds value to the "manager_id" field.
func (_u *UserUpdateOne) AddManagerID(v int) *UserUpdateOne {
	_u.mutation.AddManagerID(v)
	return _u
}

// ClearManagerID clears the value of the "manager_id" field.
func (_u *UserUpdateOne) ClearManagerID() *UserUpdateOne {
	_u.mutation.ClearManagerID()
	return _u
}

// SetDeptID sets the "dept_id" field.
func (_u *UserUpdateOne) SetDeptID(v int) *UserUpdateOne {
	_u.mutation.ResetDeptID()
	_u.mutation.SetDeptID(v)
	return _u
}

// SetNillableDeptID sets the "dept_id" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableDeptID(v *int) *UserUpdateOne {
	if v != nil {
		_u.SetDeptID(*v)
	}
	return _u
}

// AddDeptID adds value to the "dept_id" field.
func (_u *UserUpdateOne) AddDeptID(v int) *UserUpdateOne {
	_u.mutation.AddDeptID(v)
	return _u
}

// ClearDeptID clears the value of the "dept_id" field.
func (_u *UserUpdateOne) ClearDeptID() *UserUpdateOne {
	_u.mutation.ClearDeptID()
	return _u
}

// SetPosition sets the "position" field.
func (_u *UserUpdateOne) SetPosition(v string) *UserUpdateOne {
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillablePosition(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// ClearPosition clears the value of the "position" field.
func (_u *UserUpdateOne) ClearPosition() *UserUpdateOne {
	_u.mutation.ClearPosition()
	return _u
}

// Mutation returns the UserMutation object of the builder.
func (_u *UserUpdateOne) Mutation() *UserMutation {
	return _u.mutation
}

// Where appends a list predicates to the UserUpdate builder.
func (_u *UserUpdateOne) Where(ps ...predicate.User) *UserUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserUpdateOne) Select(field string, fields ...string) *UserUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated User entity.
func (_u *UserUpdateOne) Save(ctx context.Context) (*User, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserUpdateOne) SaveX(ctx context.Context) *User {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := user.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserUpdateOne) check() error {
	if v, ok := _u.mutation.Username(); ok {
		if err := user.UsernameValidator(v); err != nil {
			return &ValidationError{Name: "username", err: fmt.Errorf(`ent: validator failed for field "User.username": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PasswordHash(); ok {
		if err := user.PasswordHashValidator(v); err != nil {
			return &ValidationError{Name: "password_hash", err: fmt.Errorf(`ent: validator failed for field "User.password_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Role(); ok {
		if err := user.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "User.role": %w`, err)}
		}
	}
	return nil
}

func (_u *UserUpdateOne) sqlSave(ctx context.Context) (_node *User, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(user.Table, user.Columns, sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "User.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, user.FieldID)
		for _, f := range fields {
			if !user.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != user.FieldID {
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
		_spec.SetField(user.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Username(); ok {
		_spec.SetField(user.FieldUsername, field.TypeString, value)
	}
	if value, ok := _u.mutation.PasswordHash(); ok {
		_spec.SetField(user.FieldPasswordHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(user.FieldRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.Dept(); ok {
		_spec.SetField(user.FieldDept, field.TypeString, value)
	}
	if _u.mutation.DeptCleared() {
		_spec.ClearField(user.FieldDept, field.TypeString)
	}
	if value, ok := _u.mutation.ManagerID(); ok {
		_spec.SetField(user.FieldManagerID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedManagerID(); ok {
		_spec.AddField(user.FieldManagerID, field.TypeInt, value)
	}
	if _u.mutation.ManagerIDCleared() {
		_spec.ClearField(user.FieldManagerID, field.TypeInt)
	}
	if value, ok := _u.mutation.DeptID(); ok {
		_spec.SetField(user.FieldDeptID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDeptID(); ok {
		_spec.AddField(user.FieldDeptID, field.TypeInt, value)
	}
	if _u.mutation.DeptIDCleared() {
		_spec.ClearField(user.FieldDeptID, field.TypeInt)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(user.FieldPosition, field.TypeString, value)
	}
	if _u.mutation.PositionCleared() {
		_spec.ClearField(user.FieldPosition, field.TypeString)
	}
	_node = &User{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{user.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
