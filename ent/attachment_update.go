// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"oaflow.io/oaflow/ent/attachment"
	"oaflow.io/oaflow/ent/predicate"
)

// AttachmentUpdate is the builder for updating Attachment entities.
type AttachmentUpdate struct {
	config
	hooks    []Hook
	mutation *AttachmentMutation
}

// Where appends a list predicates to the AttachmentUpdate builder.
func (_u *AttachmentUpdate) Where(ps ...predicate.Attachment) *AttachmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRequestID sets the "request_id" field.
func (_u *AttachmentUpdate) SetRequestID(v int) *AttachmentUpdate {
	_u.mutation.ResetRequestID()
	_u.mutation.SetRequestID(v)
	return _u
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_u *AttachmentUpdate) SetNillableRequestID(v *int) *AttachmentUpdate {
	if v != nil {
		_u.SetRequestID(*v)
	}
	return _u
}

// AddRequestID adds value to the "request_id" field.
func (_u *AttachmentUpdate) AddRequestID(v int) *AttachmentUpdate {
	_u.mutation.AddRequestID(v)
	return _u
}

// SetUploadedBy sets the "uploaded_by" field.
func (_u *AttachmentUpdate) SetUploadedBy(v int) *AttachmentUpdate {
	_u.mutation.ResetUploadedBy()
	_u.mutation.SetUploadedBy(v)
	return _u
}

// SetNillableUploadedBy sets the "uploaded_by" field if the given value is not nil.
func (_u *AttachmentUpdate) SetNillableUploadedBy(v *int) *AttachmentUpdate {
	if v != nil {
		_u.SetUploadedBy(*v)
	}
	return _u
}

// AddUploadedBy adds value to the "uploaded_by" field.
func (_u *AttachmentUpdate) AddUploadedBy(v int) *AttachmentUpdate {
	_u.mutation.AddUploadedBy(v)
	return _u
}

// SetFilename sets the "filename" field.
func (_u *AttachmentUpdate) SetFilename(v string) *AttachmentUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *AttachmentUpdate) SetNillableFilename(v *string) *AttachmentUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetContentType sets the "content_type" field.
func (_u *AttachmentUpdate) SetContentType(v string) *AttachmentUpdate {
	_u.mutation.SetContentType(v)
	return _u
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (_u *AttachmentUpdate) SetNillableContentType(v *string) *AttachmentUpdate {
	if v != nil {
		_u.SetContentType(*v)
	}
	return _u
}

// SetSizeBytes sets the "size_bytes" field.
func (_u *AttachmentUpdate) SetSizeBytes(v int64) *AttachmentUpdate {
	_u.mutation.ResetSizeBytes()
	_u.mutation.SetSizeBytes(v)
	return _u
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_u *AttachmentUpdate) SetNillableSizeBytes(v *int64) *AttachmentUpdate {
	if v != nil {
		_u.SetSizeBytes(*v)
	}
	return _u
}

// AddSizeBytes adds value to the "size_bytes" field.
func (_u *AttachmentUpdate) AddSizeBytes(v int64) *AttachmentUpdate {
	_u.mutation.AddSizeBytes(v)
	return _u
}

// SetStoragePath sets the "storage_path" field.
func (_u *AttachmentUpdate) SetStoragePath(v string) *AttachmentUpdate {
	_u.mutation.SetStoragePath(v)
	return _u
}

// SetNillableStoragePath sets the "storage_path" field if the given value is not nil.
func (_u *AttachmentUpdate) SetNillableStoragePath(v *string) *AttachmentUpdate {
	if v != nil {
		_u.SetStoragePath(*v)
	}
	return _u
}

// Mutation returns the AttachmentMutation object of the builder.
func (_u *AttachmentUpdate) Mutation() *AttachmentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AttachmentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttachmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AttachmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttachmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttachmentUpdate) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := attachment.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Attachment.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StoragePath(); ok {
		if err := attachment.StoragePathValidator(v); err != nil {
			return &ValidationError{Name: "storage_path", err: fmt.Errorf(`ent: validator failed for field "Attachment.storage_path": %w`, err)}
		}
	}
	return nil
}

func (_u *AttachmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attachment.Table, attachment.Columns, sqlgraph.NewFieldSpec(attachment.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RequestID(); ok {
		_spec.SetField(attachment.FieldRequestID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRequestID(); ok {
		_spec.AddField(attachment.FieldRequestID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UploadedBy(); ok {
		_spec.SetField(attachment.FieldUploadedBy, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUploadedBy(); ok {
		_spec.AddField(attachment.FieldUploadedBy, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(attachment.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentType(); ok {
		_spec.SetField(attachment.FieldContentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.SizeBytes(); ok {
		_spec.SetField(attachment.FieldSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSizeBytes(); ok {
		_spec.AddField(attachment.FieldSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.StoragePath(); ok {
		_spec.SetField(attachment.FieldStoragePath, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attachment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AttachmentUpdateOne is the builder for updating a single Attachment entity.
type AttachmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttachmentMutation
}

// SetRequestID sets the "request_id" field.
func (_u *AttachmentUpdateOne) SetRequestID(v int) *AttachmentUpdateOne {
	_u.mutation.ResetRequestID()
	_u.mutation.SetRequestID(v)
	return _u
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_u *AttachmentUpdateOne) SetNillableRequestID(v *int) *AttachmentUpdateOne {
	if v != nil {
		_u.SetRequestID(*v)
	}
	return _u
}

// AddRequestID adds value to the "request_id" field.
func (_u *AttachmentUpdateOne) AddRequestID(v int) *AttachmentUpdateOne {
	_u.mutation.AddRequestID(v)
	return _u
}

// SetUploadedBy sets the "uploaded_by" field.
func (_u *AttachmentUpdateOne) SetUploadedBy(v int) *AttachmentUpdateOne {
	_u.mutation.ResetUploadedBy()
	_u.mutation.SetUploadedBy(v)
	return _u
}

// SetNillableUploadedBy sets the "uploaded_by" field if the given value is not nil.
func (_u *AttachmentUpdateOne) SetNillableUploadedBy(v *int) *AttachmentUpdateOne {
	if v != nil {
		_u.SetUploadedBy(*v)
	}
	return _u
}

// AddUploadedBy adds value to the "uploaded_by" field.
func (_u *AttachmentUpdateOne) AddUploadedBy(v int) *AttachmentUpdateOne {
	_u.mutation.AddUploadedBy(v)
	return _u
}

// SetFilename sets the "filename" field.
func (_u *AttachmentUpdateOne) SetFilename(v string) *AttachmentUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *AttachmentUpdateOne) SetNillableFilename(v *string) *AttachmentUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetContentType sets the "content_type" field.
func (_u *AttachmentUpdateOne) SetContentType(v string) *AttachmentUpdateOne {
	_u.mutation.SetContentType(v)
	return _u
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (_u *AttachmentUpdateOne) SetNillableContentType(v *string) *AttachmentUpdateOne {
	if v != nil {
		_u.SetContentType(*v)
	}
	return _u
}

// SetSizeBytes sets the "size_bytes" field.
func (_u *AttachmentUpdateOne) SetSizeBytes(v int64) *AttachmentUpdateOne {
	_u.mutation.ResetSizeBytes()
	_u.mutation.SetSizeBytes(v)
	return _u
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_u *AttachmentUpdateOne) SetNillableSizeBytes(v *int64) *AttachmentUpdateOne {
	if v != nil {
		_u.SetSizeBytes(*v)
	}
	return _u
}

// AddSizeBytes adds value to the "size_bytes" field.
func (_u *AttachmentUpdateOne) AddSizeBytes(v int64) *AttachmentUpdateOne {
	_u.mutation.AddSizeBytes(v)
	return _u
}

// SetStoragePath sets the "storage_path" field.
func (_u *AttachmentUpdateOne) SetStoragePath(v string) *AttachmentUpdateOne {
	_u.mutation.SetStoragePath(v)
	return _u
}

// SetNillableStoragePath sets the "storage_path" field if the given value is not nil.
func (_u *AttachmentUpdateOne) SetNillableStoragePath(v *string) *AttachmentUpdateOne {
	if v != nil {
		_u.SetStoragePath(*v)
	}
	return _u
}

// Mutation returns the AttachmentMutation object of the builder.
func (_u *AttachmentUpdateOne) Mutation() *AttachmentMutation {
	return _u.mutation
}

// Where appends a list predicates to the AttachmentUpdate builder.
func (_u *AttachmentUpdateOne) Where(ps ...predicate.Attachment) *AttachmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AttachmentUpdateOne) Select(field string, fields ...string) *AttachmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Attachment entity.
func (_u *AttachmentUpdateOne) Save(ctx context.Context) (*Attachment, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttachmentUpdateOne) SaveX(ctx context.Context) *Attachment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AttachmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttachmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttachmentUpdateOne) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := attachment.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Attachment.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StoragePath(); ok {
		if err := attachment.StoragePathValidator(v); err != nil {
			return &ValidationError{Name: "storage_path", err: fmt.Errorf(`ent: validator failed for field "Attachment.storage_path": %w`, err)}
		}
	}
	return nil
}

func (_u *AttachmentUpdateOne) sqlSave(ctx context.Context) (_node *Attachment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attachment.Table, attachment.Columns, sqlgraph.NewFieldSpec(attachment.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Attachment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attachment.FieldID)
		for _, f := range fields {
			if !attachment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attachment.FieldID {
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
	if value, ok := _u.mutation.RequestID(); ok {
		_spec.SetField(attachment.FieldRequestID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRequestID(); ok {
		_spec.AddField(attachment.FieldRequestID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UploadedBy(); ok {
		_spec.SetField(attachment.FieldUploadedBy, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUploadedBy(); ok {
		_spec.AddField(attachment.FieldUploadedBy, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(attachment.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentType(); ok {
		_spec.SetField(attachment.FieldContentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.SizeBytes(); ok {
		_spec.SetField(attachment.FieldSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSizeBytes(); ok {
		_spec.AddField(attachment.FieldSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.StoragePath(); ok {
		_spec.SetField(attachment.FieldStoragePath, field.TypeString, value)
	}
	_node = &Attachment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attachment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
