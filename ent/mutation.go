// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"oaflow.io/oaflow/ent/attachment"
	"oaflow.io/oaflow/ent/delegation"
	"oaflow.io/oaflow/ent/department"
	"oaflow.io/oaflow/ent/notification"
	"oaflow.io/oaflow/ent/predicate"
	"oaflow.io/oaflow/ent/request"
	"oaflow.io/oaflow/ent/requestevent"
	"oaflow.io/oaflow/ent/requestwatcher"
	"oaflow.io/oaflow/ent/task"
	"oaflow.io/oaflow/ent/user"
	"oaflow.io/oaflow/ent/workflowvariant"
	"oaflow.io/oaflow/ent/workflowvariantstep"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAttachment          = "Attachment"
	TypeDelegation          = "Delegation"
	TypeDepartment          = "Department"
	TypeNotification        = "Notification"
	TypeRequest             = "Request"
	TypeRequestEvent        = "RequestEvent"
	TypeRequestWatcher      = "RequestWatcher"
	TypeTask                = "Task"
	TypeUser                = "User"
	TypeWorkflowVariant     = "WorkflowVariant"
	TypeWorkflowVariantStep = "WorkflowVariantStep"
)

// AttachmentMutation represents an operation that mutates the Attachment nodes in the graph.
type AttachmentMutation struct {
	config
	op             Op
	typ            string
	id             *int
	created_at     *time.Time
	request_id     *int
	addrequest_id  *int
	uploaded_by    *int
	adduploaded_by *int
	filename       *string
	content_type   *string
	size_bytes     *int64
	addsize_bytes  *int64
	storage_path   *string
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*Attachment, error)
	predicates     []predicate.Attachment
}

var _ ent.Mutation = (*AttachmentMutation)(nil)

// attachmentOption allows management of the mutation configuration using functional options.
type attachmentOption func(*AttachmentMutation)

// newAttachmentMutation creates new mutation for the Attachment entity.
func newAttachmentMutation(c config, op Op, opts ...attachmentOption) *AttachmentMutation {
	m := &AttachmentMutation{
		config:        c,
		op:            op,
		typ:           TypeAttachment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAttachmentID sets the ID field of the mutation.
func withAttachmentID(id int) attachmentOption {
	return func(m *AttachmentMutation) {
		var (
			err   error
			once  sync.Once
			value *Attachment
		)
		m.oldValue = func(ctx context.Context) (*Attachment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Attachment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAttachment sets the old Attachment of the mutation.
func withAttachment(node *Attachment) attachmentOption {
	return func(m *AttachmentMutation) {
		m.oldValue = func(context.Context) (*Attachment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AttachmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AttachmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AttachmentMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AttachmentMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Attachment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *AttachmentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AttachmentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Attachment entity.
// If the Attachment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttachmentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AttachmentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetRequestID sets the "request_id" field.
func (m *AttachmentMutation) SetRequestID(i int) {
	m.request_id = &i
	m.addrequest_id = nil
}

// RequestID returns the value of the "request_id" field in the mutation.
func (m *AttachmentMutation) RequestID() (r int, exists bool) {
	v := m.request_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestID returns the old "request_id" field's value of the Attachment entity.
// If the Attachment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttachmentMutation) OldRequestID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestID: %w", err)
	}
	return oldValue.RequestID, nil
}

// AddRequestID adds i to the "request_id" field.
func (m *AttachmentMutation) AddRequestID(i int) {
	if m.addrequest_id != nil {
		*m.addrequest_id += i
	} else {
		m.addrequest_id = &i
	}
}

// AddedRequestID returns the value that was added to the "request_id" field in this mutation.
func (m *AttachmentMutation) AddedRequestID() (r int, exists bool) {
	v := m.addrequest_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetRequestID resets all changes to the "request_id" field.
func (m *AttachmentMutation) ResetRequestID() {
	m.request_id = nil
	m.addrequest_id = nil
}

// SetUploadedBy sets the "uploaded_by" field.
func (m *AttachmentMutation) SetUploadedBy(i int) {
	m.uploaded_by = &i
	m.adduploaded_by = nil
}

// UploadedBy returns the value of the "uploaded_by" field in the mutation.
func (m *AttachmentMutation) UploadedBy() (r int, exists bool) {
	v := m.uploaded_by
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedBy returns the old "uploaded_by" field's value of the Attachment entity.
// If the Attachment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttachmentMutation) OldUploadedBy(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedBy: %w", err)
	}
	return oldValue.UploadedBy, nil
}

// AddUploadedBy adds i to the "uploaded_by" field.
func (m *AttachmentMutation) AddUploadedBy(i int) {
	if m.adduploaded_by != nil {
		*m.adduploaded_by += i
	} else {
		m.adduploaded_by = &i
	}
}

// AddedUploadedBy returns the value that was added to the "uploaded_by" field in this mutation.
func (m *AttachmentMutation) AddedUploadedBy() (r int, exists bool) {
	v := m.adduploaded_by
	if v == nil {
		return
	}
	return *v, true
}

// ResetUploadedBy resets all changes to the "uploaded_by" field.
func (m *AttachmentMutation) ResetUploadedBy() {
	m.uploaded_by = nil
	m.adduploaded_by = nil
}

// SetFilename sets the "filename" field.
func (m *AttachmentMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *AttachmentMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the Attachment entity.
// If the Attachment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttachmentMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *AttachmentMutation) ResetFilename() {
	m.filename = nil
}

// SetContentType sets the "content_type" field.
func (m *AttachmentMutation) SetContentType(s string) {
	m.content_type = &s
}

// ContentType returns the value of the "content_type" field in the mutation.
func (m *AttachmentMutation) ContentType() (r string, exists bool) {
	v := m.content_type
	if v == nil {
		return
	}
	return *v, true
}

// OldContentType returns the old "content_type" field's value of the Attachment entity.
// If the Attachment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttachmentMutation) OldContentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentType: %w", err)
	}
	return oldValue.ContentType, nil
}

// ResetContentType resets all changes to the "content_type" field.
func (m *AttachmentMutation) ResetContentType() {
	m.content_type = nil
}

// SetSizeBytes sets the "size_bytes" field.
func (m *AttachmentMutation) SetSizeBytes(i int64) {
	m.size_bytes = &i
	m.addsize_bytes = nil
}

// SizeBytes returns the value of the "size_bytes" field in the mutation.
func (m *AttachmentMutation) SizeBytes() (r int64, exists bool) {
	v := m.size_bytes
	if v == nil {
		return
	}
	return *v, true
}

// OldSizeBytes returns the old "size_bytes" field's value of the Attachment entity.
// If the Attachment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttachmentMutation) OldSizeBytes(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSizeBytes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSizeBytes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSizeBytes: %w", err)
	}
	return oldValue.SizeBytes, nil
}

// AddSizeBytes adds i to the "size_bytes" field.
func (m *AttachmentMutation) AddSizeBytes(i int64) {
	if m.addsize_bytes != nil {
		*m.addsize_bytes += i
	} else {
		m.addsize_bytes = &i
	}
}

// AddedSizeBytes returns the value that was added to the "size_bytes" field in this mutation.
func (m *AttachmentMutation) AddedSizeBytes() (r int64, exists bool) {
	v := m.addsize_bytes
	if v == nil {
		return
	}
	return *v, true
}

// ResetSizeBytes resets all changes to the "size_bytes" field.
func (m *AttachmentMutation) ResetSizeBytes() {
	m.size_bytes = nil
	m.addsize_bytes = nil
}

// SetStoragePath sets the "storage_path" field.
func (m *AttachmentMutation) SetStoragePath(s string) {
	m.storage_path = &s
}

// StoragePath returns the value of the "storage_path" field in the mutation.
func (m *AttachmentMutation) StoragePath() (r string, exists bool) {
	v := m.storage_path
	if v == nil {
		return
	}
	return *v, true
}

// OldStoragePath returns the old "storage_path" field's value of the Attachment entity.
// If the Attachment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttachmentMutation) OldStoragePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStoragePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStoragePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStoragePath: %w", err)
	}
	return oldValue.StoragePath, nil
}

// ResetStoragePath resets all changes to the "storage_path" field.
func (m *AttachmentMutation) ResetStoragePath() {
	m.storage_path = nil
}

// Where appends a list predicates to the AttachmentMutation builder.
func (m *AttachmentMutation) Where(ps ...predicate.Attachment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AttachmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AttachmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Attachment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AttachmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AttachmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Attachment).
func (m *AttachmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AttachmentMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, attachment.FieldCreatedAt)
	}
	if m.request_id != nil {
		fields = append(fields, attachment.FieldRequestID)
	}
	if m.uploaded_by != nil {
		fields = append(fields, attachment.FieldUploadedBy)
	}
	if m.filename != nil {
		fields = append(fields, attachment.FieldFilename)
	}
	if m.content_type != nil {
		fields = append(fields, attachment.FieldContentType)
	}
	if m.size_bytes != nil {
		fields = append(fields, attachment.FieldSizeBytes)
	}
	if m.storage_path != nil {
		fields = append(fields, attachment.FieldStoragePath)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AttachmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case attachment.FieldCreatedAt:
		return m.CreatedAt()
	case attachment.FieldRequestID:
		return m.RequestID()
	case attachment.FieldUploadedBy:
		return m.UploadedBy()
	case attachment.FieldFilename:
		return m.Filename()
	case attachment.FieldContentType:
		return m.ContentType()
	case attachment.FieldSizeBytes:
		return m.SizeBytes()
	case attachment.FieldStoragePath:
		return m.StoragePath()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AttachmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case attachment.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case attachment.FieldRequestID:
		return m.OldRequestID(ctx)
	case attachment.FieldUploadedBy:
		return m.OldUploadedBy(ctx)
	case attachment.FieldFilename:
		return m.OldFilename(ctx)
	case attachment.FieldContentType:
		return m.OldContentType(ctx)
	case attachment.FieldSizeBytes:
		return m.OldSizeBytes(ctx)
	case attachment.FieldStoragePath:
		return m.OldStoragePath(ctx)
	}
	return nil, fmt.Errorf("unknown Attachment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttachmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case attachment.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case attachment.FieldRequestID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestID(v)
		return nil
	case attachment.FieldUploadedBy:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedBy(v)
		return nil
	case attachment.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case attachment.FieldContentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentType(v)
		return nil
	case attachment.FieldSizeBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSizeBytes(v)
		return nil
	case attachment.FieldStoragePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStoragePath(v)
		return nil
	}
	return fmt.Errorf("unknown Attachment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AttachmentMutation) AddedFields() []string {
	var fields []string
	if m.addrequest_id != nil {
		fields = append(fields, attachment.FieldRequestID)
	}
	if m.adduploaded_by != nil {
		fields = append(fields, attachment.FieldUploadedBy)
	}
	if m.addsize_bytes != nil {
		fields = append(fields, attachment.FieldSizeBytes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AttachmentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case attachment.FieldRequestID:
		return m.AddedRequestID()
	case attachment.FieldUploadedBy:
		return m.AddedUploadedBy()
	case attachment.FieldSizeBytes:
		return m.AddedSizeBytes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttachmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case attachment.FieldRequestID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRequestID(v)
		return nil
	case attachment.FieldUploadedBy:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUploadedBy(v)
		return nil
	case attachment.FieldSizeBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSizeBytes(v)
		return nil
	}
	return fmt.Errorf("unknown Attachment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AttachmentMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AttachmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AttachmentMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Attachment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AttachmentMutation) ResetField(name string) error {
	switch name {
	case attachment.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case attachment.FieldRequestID:
		m.ResetRequestID()
		return nil
	case attachment.FieldUploadedBy:
		m.ResetUploadedBy()
		return nil
	case attachment.FieldFilename:
		m.ResetFilename()
		return nil
	case attachment.FieldContentType:
		m.ResetContentType()
		return nil
	case attachment.FieldSizeBytes:
		m.ResetSizeBytes()
		return nil
	case attachment.FieldStoragePath:
		m.ResetStoragePath()
		return nil
	}
	return fmt.Errorf("unknown Attachment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AttachmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AttachmentMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AttachmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AttachmentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AttachmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AttachmentMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AttachmentMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Attachment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AttachmentMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Attachment edge %s", name)
}

// DelegationMutation represents an operation that mutates the Delegation nodes in the graph.
type DelegationMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	created_at           *time.Time
	updated_at           *time.Time
	delegator_user_id    *int
	adddelegator_user_id *int
	delegate_user_id     *int
	adddelegate_user_id  *int
	active               *bool
	revoked_at           *time.Time
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*Delegation, error)
	predicates           []predicate.Delegation
}

var _ ent.Mutation = (*DelegationMutation)(nil)

// delegationOption allows management of the mutation configuration using functional options.
type delegationOption func(*DelegationMutation)

// newDelegationMutation creates new mutation for the Delegation entity.
func newDelegationMutation(c config, op Op, opts ...delegationOption) *DelegationMutation {
	m := &DelegationMutation{
		config:        c,
		op:            op,
		typ:           TypeDelegation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDelegationID sets the ID field of the mutation.
func withDelegationID(id int) delegationOption {
	return func(m *DelegationMutation) {
		var (
			err   error
			once  sync.Once
			value *Delegation
		)
		m.oldValue = func(ctx context.Context) (*Delegation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Delegation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDelegation sets the old Delegation of the mutation.
func withDelegation(node *Delegation) delegationOption {
	return func(m *DelegationMutation) {
		m.oldValue = func(context.Context) (*Delegation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DelegationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DelegationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DelegationMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DelegationMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Delegation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *DelegationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DelegationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Delegation entity.
// If the Delegation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DelegationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DelegationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DelegationMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DelegationMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Delegation entity.
// If the Delegation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DelegationMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DelegationMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDelegatorUserID sets the "delegator_user_id" field.
func (m *DelegationMutation) SetDelegatorUserID(i int) {
	m.delegator_user_id = &i
	m.adddelegator_user_id = nil
}

// DelegatorUserID returns the value of the "delegator_user_id" field in the mutation.
func (m *DelegationMutation) DelegatorUserID() (r int, exists bool) {
	v := m.delegator_user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDelegatorUserID returns the old "delegator_user_id" field's value of the Delegation entity.
// If the Delegation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DelegationMutation) OldDelegatorUserID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDelegatorUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDelegatorUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDelegatorUserID: %w", err)
	}
	return oldValue.DelegatorUserID, nil
}

// AddDelegatorUserID adds i to the "delegator_user_id" field.
func (m *DelegationMutation) AddDelegatorUserID(i int) {
	if m.adddelegator_user_id != nil {
		*m.adddelegator_user_id += i
	} else {
		m.adddelegator_user_id = &i
	}
}

// AddedDelegatorUserID returns the value that was added to the "delegator_user_id" field in this mutation.
func (m *DelegationMutation) AddedDelegatorUserID() (r int, exists bool) {
	v := m.adddelegator_user_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetDelegatorUserID resets all changes to the "delegator_user_id" field.
func (m *DelegationMutation) ResetDelegatorUserID() {
	m.delegator_user_id = nil
	m.adddelegator_user_id = nil
}

// SetDelegateUserID sets the "delegate_user_id" field.
func (m *DelegationMutation) SetDelegateUserID(i int) {
	m.delegate_user_id = &i
	m.adddelegate_user_id = nil
}

// DelegateUserID returns the value of the "delegate_user_id" field in the mutation.
func (m *DelegationMutation) DelegateUserID() (r int, exists bool) {
	v := m.delegate_user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDelegateUserID returns the old "delegate_user_id" field's value of the Delegation entity.
// If the Delegation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DelegationMutation) OldDelegateUserID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDelegateUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDelegateUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDelegateUserID: %w", err)
	}
	return oldValue.DelegateUserID, nil
}

// AddDelegateUserID adds i to the "delegate_user_id" field.
func (m *DelegationMutation) AddDelegateUserID(i int) {
	if m.adddelegate_user_id != nil {
		*m.adddelegate_user_id += i
	} else {
		m.adddelegate_user_id = &i
	}
}

// AddedDelegateUserID returns the value that was added to the "delegate_user_id" field in this mutation.
func (m *DelegationMutation) AddedDelegateUserID() (r int, exists bool) {
	v := m.adddelegate_user_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearDelegateUserID clears the value of the "delegate_user_id" field.
func (m *DelegationMutation) ClearDelegateUserID() {
	m.delegate_user_id = nil
	m.adddelegate_user_id = nil
	m.clearedFields[delegation.FieldDelegateUserID] = struct{}{}
}

// DelegateUserIDCleared returns if the "delegate_user_id" field was cleared in this mutation.
func (m *DelegationMutation) DelegateUserIDCleared() bool {
	_, ok := m.clearedFields[delegation.FieldDelegateUserID]
	return ok
}

// ResetDelegateUserID resets all changes to the "delegate_user_id" field.
func (m *DelegationMutation) ResetDelegateUserID() {
	m.delegate_user_id = nil
	m.adddelegate_user_id = nil
	delete(m.clearedFields, delegation.FieldDelegateUserID)
}

// SetActive sets the "active" field.
func (m *DelegationMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *DelegationMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the Delegation entity.
// If the Delegation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DelegationMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *DelegationMutation) ResetActive() {
	m.active = nil
}

// SetRevokedAt sets the "revoked_at" field.
func (m *DelegationMutation) SetRevokedAt(t time.Time) {
	m.revoked_at = &t
}

// RevokedAt returns the value of the "revoked_at" field in the mutation.
func (m *DelegationMutation) RevokedAt() (r time.Time, exists bool) {
	v := m.revoked_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRevokedAt returns the old "revoked_at" field's value of the Delegation entity.
// If the Delegation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DelegationMutation) OldRevokedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRevokedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRevokedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRevokedAt: %w", err)
	}
	return oldValue.RevokedAt, nil
}

// ClearRevokedAt clears the value of the "revoked_at" field.
func (m *DelegationMutation) ClearRevokedAt() {
	m.revoked_at = nil
	m.clearedFields[delegation.FieldRevokedAt] = struct{}{}
}

// RevokedAtCleared returns if the "revoked_at" field was cleared in this mutation.
func (m *DelegationMutation) RevokedAtCleared() bool {
	_, ok := m.clearedFields[delegation.FieldRevokedAt]
	return ok
}

// ResetRevokedAt resets all changes to the "revoked_at" field.
func (m *DelegationMutation) ResetRevokedAt() {
	m.revoked_at = nil
	delete(m.clearedFields, delegation.FieldRevokedAt)
}

// Where appends a list predicates to the DelegationMutation builder.
func (m *DelegationMutation) Where(ps ...predicate.Delegation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DelegationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DelegationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Delegation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DelegationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DelegationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Delegation).
func (m *DelegationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DelegationMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.created_at != nil {
		fields = append(fields, delegation.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, delegation.FieldUpdatedAt)
	}
	if m.delegator_user_id != nil {
		fields = append(fields, delegation.FieldDelegatorUserID)
	}
	if m.delegate_user_id != nil {
		fields = append(fields, delegation.FieldDelegateUserID)
	}
	if m.active != nil {
		fields = append(fields, delegation.FieldActive)
	}
	if m.revoked_at != nil {
		fields = append(fields, delegation.FieldRevokedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DelegationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case delegation.FieldCreatedAt:
		return m.CreatedAt()
	case delegation.FieldUpdatedAt:
		return m.UpdatedAt()
	case delegation.FieldDelegatorUserID:
		return m.DelegatorUserID()
	case delegation.FieldDelegateUserID:
		return m.DelegateUserID()
	case delegation.FieldActive:
		return m.Active()
	case delegation.FieldRevokedAt:
		return m.RevokedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DelegationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case delegation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case delegation.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case delegation.FieldDelegatorUserID:
		return m.OldDelegatorUserID(ctx)
	case delegation.FieldDelegateUserID:
		return m.OldDelegateUserID(ctx)
	case delegation.FieldActive:
		return m.OldActive(ctx)
	case delegation.FieldRevokedAt:
		return m.OldRevokedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Delegation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DelegationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case delegation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case delegation.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case delegation.FieldDelegatorUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDelegatorUserID(v)
		return nil
	case delegation.FieldDelegateUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDelegateUserID(v)
		return nil
	case delegation.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	case delegation.FieldRevokedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRevokedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Delegation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DelegationMutation) AddedFields() []string {
	var fields []string
	if m.adddelegator_user_id != nil {
		fields = append(fields, delegation.FieldDelegatorUserID)
	}
	if m.adddelegate_user_id != nil {
		fields = append(fields, delegation.FieldDelegateUserID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DelegationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case delegation.FieldDelegatorUserID:
		return m.AddedDelegatorUserID()
	case delegation.FieldDelegateUserID:
		return m.AddedDelegateUserID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DelegationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case delegation.FieldDelegatorUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDelegatorUserID(v)
		return nil
	case delegation.FieldDelegateUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDelegateUserID(v)
		return nil
	}
	return fmt.Errorf("unknown Delegation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DelegationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(delegation.FieldDelegateUserID) {
		fields = append(fields, delegation.FieldDelegateUserID)
	}
	if m.FieldCleared(delegation.FieldRevokedAt) {
		fields = append(fields, delegation.FieldRevokedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DelegationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DelegationMutation) ClearField(name string) error {
	switch name {
	case delegation.FieldDelegateUserID:
		m.ClearDelegateUserID()
		return nil
	case delegation.FieldRevokedAt:
		m.ClearRevokedAt()
		return nil
	}
	return fmt.Errorf("unknown Delegation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DelegationMutation) ResetField(name string) error {
	switch name {
	case delegation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case delegation.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case delegation.FieldDelegatorUserID:
		m.ResetDelegatorUserID()
		return nil
	case delegation.FieldDelegateUserID:
		m.ResetDelegateUserID()
		return nil
	case delegation.FieldActive:
		m.ResetActive()
		return nil
	case delegation.FieldRevokedAt:
		m.ResetRevokedAt()
		return nil
	}
	return fmt.Errorf("unknown Delegation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DelegationMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DelegationMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DelegationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DelegationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DelegationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DelegationMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DelegationMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Delegation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DelegationMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Delegation edge %s", name)
}

// DepartmentMutation represents an operation that mutates the Department nodes in the graph.
type DepartmentMutation struct {
	config
	op              Op
	typ             string
	id              *int
	created_at      *time.Time
	updated_at      *time.Time
	name            *string
	code            *string
	parent_id       *int
	addparent_id    *int
	lead_user_id    *int
	addlead_user_id *int
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*Department, error)
	predicates      []predicate.Department
}

var _ ent.Mutation = (*DepartmentMutation)(nil)

// departmentOption allows management of the mutation configuration using functional options.
type departmentOption func(*DepartmentMutation)

// newDepartmentMutation creates new mutation for the Department entity.
func newDepartmentMutation(c config, op Op, opts ...departmentOption) *DepartmentMutation {
	m := &DepartmentMutation{
		config:        c,
		op:            op,
		typ:           TypeDepartment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDepartmentID sets the ID field of the mutation.
func withDepartmentID(id int) departmentOption {
	return func(m *DepartmentMutation) {
		var (
			err   error
			once  sync.Once
			value *Department
		)
		m.oldValue = func(ctx context.Context) (*Department, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Department.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDepartment sets the old Department of the mutation.
func withDepartment(node *Department) departmentOption {
	return func(m *DepartmentMutation) {
		m.oldValue = func(context.Context) (*Department, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DepartmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DepartmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DepartmentMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DepartmentMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Department.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *DepartmentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DepartmentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Department entity.
// If the Department object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DepartmentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DepartmentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DepartmentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DepartmentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Department entity.
// If the Department object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DepartmentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DepartmentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetName sets the "name" field.
func (m *DepartmentMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *DepartmentMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Department entity.
// If the Department object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DepartmentMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *DepartmentMutation) ResetName() {
	m.name = nil
}

// SetCode sets the "code" field.
func (m *DepartmentMutation) SetCode(s string) {
	m.code = &s
}

// Code returns the value of the "code" field in the mutation.
func (m *DepartmentMutation) Code() (r string, exists bool) {
	v := m.code
	if v == nil {
		return
	}
	return *v, true
}

// OldCode returns the old "code" field's value of the Department entity.
// If the Department object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DepartmentMutation) OldCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCode: %w", err)
	}
	return oldValue.Code, nil
}

// ResetCode resets all changes to the "code" field.
func (m *DepartmentMutation) ResetCode() {
	m.code = nil
}

// SetParentID sets the "parent_id" field.
func (m *DepartmentMutation) SetParentID(i int) {
	m.parent_id = &i
	m.addparent_id = nil
}

// ParentID returns the value of the "parent_id" field in the mutation.
func (m *DepartmentMutation) ParentID() (r int, exists bool) {
	v := m.parent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentID returns the old "parent_id" field's value of the Department entity.
// If the Department object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DepartmentMutation) OldParentID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentID: %w", err)
	}
	return oldValue.ParentID, nil
}

// AddParentID adds i to the "parent_id" field.
func (m *DepartmentMutation) AddParentID(i int) {
	if m.addparent_id != nil {
		*m.addparent_id += i
	} else {
		m.addparent_id = &i
	}
}

// AddedParentID returns the value that was added to the "parent_id" field in this mutation.
func (m *DepartmentMutation) AddedParentID() (r int, exists bool) {
	v := m.addparent_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearParentID clears the value of the "parent_id" field.
func (m *DepartmentMutation) ClearParentID() {
	m.parent_id = nil
	m.addparent_id = nil
	m.clearedFields[department.FieldParentID] = struct{}{}
}

// ParentIDCleared returns if the "parent_id" field was cleared in this mutation.
func (m *DepartmentMutation) ParentIDCleared() bool {
	_, ok := m.clearedFields[department.FieldParentID]
	return ok
}

// ResetParentID resets all changes to the "parent_id" field.
func (m *DepartmentMutation) ResetParentID() {
	m.parent_id = nil
	m.addparent_id = nil
	delete(m.clearedFields, department.FieldParentID)
}

// SetLeadUserID sets the "lead_user_id" field.
func (m *DepartmentMutation) SetLeadUserID(i int) {
	m.lead_user_id = &i
	m.addlead_user_id = nil
}

// LeadUserID returns the value of the "lead_user_id" field in the mutation.
func (m *DepartmentMutation) LeadUserID() (r int, exists bool) {
	v := m.lead_user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLeadUserID returns the old "lead_user_id" field's value of the Department entity.
// If the Department object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DepartmentMutation) OldLeadUserID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeadUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeadUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeadUserID: %w", err)
	}
	return oldValue.LeadUserID, nil
}

// AddLeadUserID adds i to the "lead_user_id" field.
func (m *DepartmentMutation) AddLeadUserID(i int) {
	if m.addlead_user_id != nil {
		*m.addlead_user_id += i
	} else {
		m.addlead_user_id = &i
	}
}

// AddedLeadUserID returns the value that was added to the "lead_user_id" field in this mutation.
func (m *DepartmentMutation) AddedLeadUserID() (r int, exists bool) {
	v := m.addlead_user_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearLeadUserID clears the value of the "lead_user_id" field.
func (m *DepartmentMutation) ClearLeadUserID() {
	m.lead_user_id = nil
	m.addlead_user_id = nil
	m.clearedFields[department.FieldLeadUserID] = struct{}{}
}

// LeadUserIDCleared returns if the "lead_user_id" field was cleared in this mutation.
func (m *DepartmentMutation) LeadUserIDCleared() bool {
	_, ok := m.clearedFields[department.FieldLeadUserID]
	return ok
}

// ResetLeadUserID resets all changes to the "lead_user_id" field.
func (m *DepartmentMutation) ResetLeadUserID() {
	m.lead_user_id = nil
	m.addlead_user_id = nil
	delete(m.clearedFields, department.FieldLeadUserID)
}

// Where appends a list predicates to the DepartmentMutation builder.
func (m *DepartmentMutation) Where(ps ...predicate.Department) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DepartmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DepartmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Department, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DepartmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DepartmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Department).
func (m *DepartmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DepartmentMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.created_at != nil {
		fields = append(fields, department.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, department.FieldUpdatedAt)
	}
	if m.name != nil {
		fields = append(fields, department.FieldName)
	}
	if m.code != nil {
		fields = append(fields, department.FieldCode)
	}
	if m.parent_id != nil {
		fields = append(fields, department.FieldParentID)
	}
	if m.lead_user_id != nil {
		fields = append(fields, department.FieldLeadUserID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DepartmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case department.FieldCreatedAt:
		return m.CreatedAt()
	case department.FieldUpdatedAt:
		return m.UpdatedAt()
	case department.FieldName:
		return m.Name()
	case department.FieldCode:
		return m.Code()
	case department.FieldParentID:
		return m.ParentID()
	case department.FieldLeadUserID:
		return m.LeadUserID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DepartmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case department.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case department.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case department.FieldName:
		return m.OldName(ctx)
	case department.FieldCode:
		return m.OldCode(ctx)
	case department.FieldParentID:
		return m.OldParentID(ctx)
	case department.FieldLeadUserID:
		return m.OldLeadUserID(ctx)
	}
	return nil, fmt.Errorf("unknown Department field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DepartmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case department.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case department.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case department.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case department.FieldCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCode(v)
		return nil
	case department.FieldParentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentID(v)
		return nil
	case department.FieldLeadUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeadUserID(v)
		return nil
	}
	return fmt.Errorf("unknown Department field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DepartmentMutation) AddedFields() []string {
	var fields []string
	if m.addparent_id != nil {
		fields = append(fields, department.FieldParentID)
	}
	if m.addlead_user_id != nil {
		fields = append(fields, department.FieldLeadUserID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DepartmentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case department.FieldParentID:
		return m.AddedParentID()
	case department.FieldLeadUserID:
		return m.AddedLeadUserID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DepartmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case department.FieldParentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddParentID(v)
		return nil
	case department.FieldLeadUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLeadUserID(v)
		return nil
	}
	return fmt.Errorf("unknown Department numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DepartmentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(department.FieldParentID) {
		fields = append(fields, department.FieldParentID)
	}
	if m.FieldCleared(department.FieldLeadUserID) {
		fields = append(fields, department.FieldLeadUserID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DepartmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DepartmentMutation) ClearField(name string) error {
	switch name {
	case department.FieldParentID:
		m.ClearParentID()
		return nil
	case department.FieldLeadUserID:
		m.ClearLeadUserID()
		return nil
	}
	return fmt.Errorf("unknown Department nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DepartmentMutation) ResetField(name string) error {
	switch name {
	case department.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case department.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case department.FieldName:
		m.ResetName()
		return nil
	case department.FieldCode:
		m.ResetCode()
		return nil
	case department.FieldParentID:
		m.ResetParentID()
		return nil
	case department.FieldLeadUserID:
		m.ResetLeadUserID()
		return nil
	}
	return fmt.Errorf("unknown Department field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DepartmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DepartmentMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DepartmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DepartmentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DepartmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DepartmentMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DepartmentMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Department unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DepartmentMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Department edge %s", name)
}

// NotificationMutation represents an operation that mutates the Notification nodes in the graph.
type NotificationMutation struct {
	config
	op               Op
	typ              string
	id               *int
	created_at       *time.Time
	user_id          *int
	adduser_id       *int
	request_id       *int
	addrequest_id    *int
	event_type       *string
	actor_user_id    *int
	addactor_user_id *int
	message          *string
	read_at          *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*Notification, error)
	predicates       []predicate.Notification
}

var _ ent.Mutation = (*NotificationMutation)(nil)

// notificationOption allows management of the mutation configuration using functional options.
type notificationOption func(*NotificationMutation)

// newNotificationMutation creates new mutation for the Notification entity.
func newNotificationMutation(c config, op Op, opts ...notificationOption) *NotificationMutation {
	m := &NotificationMutation{
		config:        c,
		op:            op,
		typ:           TypeNotification,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withNotificationID sets the ID field of the mutation.
func withNotificationID(id int) notificationOption {
	return func(m *NotificationMutation) {
		var (
			err   error
			once  sync.Once
			value *Notification
		)
		m.oldValue = func(ctx context.Context) (*Notification, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Notification.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withNotification sets the old Notification of the mutation.
func withNotification(node *Notification) notificationOption {
	return func(m *NotificationMutation) {
		m.oldValue = func(context.Context) (*Notification, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m NotificationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m NotificationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *NotificationMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *NotificationMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Notification.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *NotificationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *NotificationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *NotificationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUserID sets the "user_id" field.
func (m *NotificationMutation) SetUserID(i int) {
	m.user_id = &i
	m.adduser_id = nil
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *NotificationMutation) UserID() (r int, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldUserID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// AddUserID adds i to the "user_id" field.
func (m *NotificationMutation) AddUserID(i int) {
	if m.adduser_id != nil {
		*m.adduser_id += i
	} else {
		m.adduser_id = &i
	}
}

// AddedUserID returns the value that was added to the "user_id" field in this mutation.
func (m *NotificationMutation) AddedUserID() (r int, exists bool) {
	v := m.adduser_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserID resets all changes to the "user_id" field.
func (m *NotificationMutation) ResetUserID() {
	m.user_id = nil
	m.adduser_id = nil
}

// SetRequestID sets the "request_id" field.
func (m *NotificationMutation) SetRequestID(i int) {
	m.request_id = &i
	m.addrequest_id = nil
}

// RequestID returns the value of the "request_id" field in the mutation.
func (m *NotificationMutation) RequestID() (r int, exists bool) {
	v := m.request_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestID returns the old "request_id" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldRequestID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestID: %w", err)
	}
	return oldValue.RequestID, nil
}

// AddRequestID adds i to the "request_id" field.
func (m *NotificationMutation) AddRequestID(i int) {
	if m.addrequest_id != nil {
		*m.addrequest_id += i
	} else {
		m.addrequest_id = &i
	}
}

// AddedRequestID returns the value that was added to the "request_id" field in this mutation.
func (m *NotificationMutation) AddedRequestID() (r int, exists bool) {
	v := m.addrequest_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearRequestID clears the value of the "request_id" field.
func (m *NotificationMutation) ClearRequestID() {
	m.request_id = nil
	m.addrequest_id = nil
	m.clearedFields[notification.FieldRequestID] = struct{}{}
}

// RequestIDCleared returns if the "request_id" field was cleared in this mutation.
func (m *NotificationMutation) RequestIDCleared() bool {
	_, ok := m.clearedFields[notification.FieldRequestID]
	return ok
}

// ResetRequestID resets all changes to the "request_id" field.
func (m *NotificationMutation) ResetRequestID() {
	m.request_id = nil
	m.addrequest_id = nil
	delete(m.clearedFields, notification.FieldRequestID)
}

// SetEventType sets the "event_type" field.
func (m *NotificationMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *NotificationMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *NotificationMutation) ResetEventType() {
	m.event_type = nil
}

// SetActorUserID sets the "actor_user_id" field.
func (m *NotificationMutation) SetActorUserID(i int) {
	m.actor_user_id = &i
	m.addactor_user_id = nil
}

// ActorUserID returns the value of the "actor_user_id" field in the mutation.
func (m *NotificationMutation) ActorUserID() (r int, exists bool) {
	v := m.actor_user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldActorUserID returns the old "actor_user_id" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldActorUserID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActorUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActorUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActorUserID: %w", err)
	}
	return oldValue.ActorUserID, nil
}

// AddActorUserID adds i to the "actor_user_id" field.
func (m *NotificationMutation) AddActorUserID(i int) {
	if m.addactor_user_id != nil {
		*m.addactor_user_id += i
	} else {
		m.addactor_user_id = &i
	}
}

// AddedActorUserID returns the value that was added to the "actor_user_id" field in this mutation.
func (m *NotificationMutation) AddedActorUserID() (r int, exists bool) {
	v := m.addactor_user_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearActorUserID clears the value of the "actor_user_id" field.
func (m *NotificationMutation) ClearActorUserID() {
	m.actor_user_id = nil
	m.addactor_user_id = nil
	m.clearedFields[notification.FieldActorUserID] = struct{}{}
}

// ActorUserIDCleared returns if the "actor_user_id" field was cleared in this mutation.
func (m *NotificationMutation) ActorUserIDCleared() bool {
	_, ok := m.clearedFields[notification.FieldActorUserID]
	return ok
}

// ResetActorUserID resets all changes to the "actor_user_id" field.
func (m *NotificationMutation) ResetActorUserID() {
	m.actor_user_id = nil
	m.addactor_user_id = nil
	delete(m.clearedFields, notification.FieldActorUserID)
}

// SetMessage sets the "message" field.
func (m *NotificationMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *NotificationMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ClearMessage clears the value of the "message" field.
func (m *NotificationMutation) ClearMessage() {
	m.message = nil
	m.clearedFields[notification.FieldMessage] = struct{}{}
}

// MessageCleared returns if the "message" field was cleared in this mutation.
func (m *NotificationMutation) MessageCleared() bool {
	_, ok := m.clearedFields[notification.FieldMessage]
	return ok
}

// ResetMessage resets all changes to the "message" field.
func (m *NotificationMutation) ResetMessage() {
	m.message = nil
	delete(m.clearedFields, notification.FieldMessage)
}

// SetReadAt sets the "read_at" field.
func (m *NotificationMutation) SetReadAt(t time.Time) {
	m.read_at = &t
}

// ReadAt returns the value of the "read_at" field in the mutation.
func (m *NotificationMutation) ReadAt() (r time.Time, exists bool) {
	v := m.read_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReadAt returns the old "read_at" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldReadAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReadAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReadAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReadAt: %w", err)
	}
	return oldValue.ReadAt, nil
}

// ClearReadAt clears the value of the "read_at" field.
func (m *NotificationMutation) ClearReadAt() {
	m.read_at = nil
	m.clearedFields[notification.FieldReadAt] = struct{}{}
}

// ReadAtCleared returns if the "read_at" field was cleared in this mutation.
func (m *NotificationMutation) ReadAtCleared() bool {
	_, ok := m.clearedFields[notification.FieldReadAt]
	return ok
}

// ResetReadAt resets all changes to the "read_at" field.
func (m *NotificationMutation) ResetReadAt() {
	m.read_at = nil
	delete(m.clearedFields, notification.FieldReadAt)
}

// Where appends a list predicates to the NotificationMutation builder.
func (m *NotificationMutation) Where(ps ...predicate.Notification) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the NotificationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *NotificationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Notification, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *NotificationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *NotificationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Notification).
func (m *NotificationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *NotificationMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, notification.FieldCreatedAt)
	}
	if m.user_id != nil {
		fields = append(fields, notification.FieldUserID)
	}
	if m.request_id != nil {
		fields = append(fields, notification.FieldRequestID)
	}
	if m.event_type != nil {
		fields = append(fields, notification.FieldEventType)
	}
	if m.actor_user_id != nil {
		fields = append(fields, notification.FieldActorUserID)
	}
	if m.message != nil {
		fields = append(fields, notification.FieldMessage)
	}
	if m.read_at != nil {
		fields = append(fields, notification.FieldReadAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *NotificationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case notification.FieldCreatedAt:
		return m.CreatedAt()
	case notification.FieldUserID:
		return m.UserID()
	case notification.FieldRequestID:
		return m.RequestID()
	case notification.FieldEventType:
		return m.EventType()
	case notification.FieldActorUserID:
		return m.ActorUserID()
	case notification.FieldMessage:
		return m.Message()
	case notification.FieldReadAt:
		return m.ReadAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *NotificationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case notification.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case notification.FieldUserID:
		return m.OldUserID(ctx)
	case notification.FieldRequestID:
		return m.OldRequestID(ctx)
	case notification.FieldEventType:
		return m.OldEventType(ctx)
	case notification.FieldActorUserID:
		return m.OldActorUserID(ctx)
	case notification.FieldMessage:
		return m.OldMessage(ctx)
	case notification.FieldReadAt:
		return m.OldReadAt(ctx)
	}
	return nil, fmt.Errorf("unknown Notification field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NotificationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case notification.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case notification.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case notification.FieldRequestID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestID(v)
		return nil
	case notification.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case notification.FieldActorUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActorUserID(v)
		return nil
	case notification.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case notification.FieldReadAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReadAt(v)
		return nil
	}
	return fmt.Errorf("unknown Notification field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *NotificationMutation) AddedFields() []string {
	var fields []string
	if m.adduser_id != nil {
		fields = append(fields, notification.FieldUserID)
	}
	if m.addrequest_id != nil {
		fields = append(fields, notification.FieldRequestID)
	}
	if m.addactor_user_id != nil {
		fields = append(fields, notification.FieldActorUserID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *NotificationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case notification.FieldUserID:
		return m.AddedUserID()
	case notification.FieldRequestID:
		return m.AddedRequestID()
	case notification.FieldActorUserID:
		return m.AddedActorUserID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NotificationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case notification.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserID(v)
		return nil
	case notification.FieldRequestID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRequestID(v)
		return nil
	case notification.FieldActorUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddActorUserID(v)
		return nil
	}
	return fmt.Errorf("unknown Notification numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *NotificationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(notification.FieldRequestID) {
		fields = append(fields, notification.FieldRequestID)
	}
	if m.FieldCleared(notification.FieldActorUserID) {
		fields = append(fields, notification.FieldActorUserID)
	}
	if m.FieldCleared(notification.FieldMessage) {
		fields = append(fields, notification.FieldMessage)
	}
	if m.FieldCleared(notification.FieldReadAt) {
		fields = append(fields, notification.FieldReadAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *NotificationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *NotificationMutation) ClearField(name string) error {
	switch name {
	case notification.FieldRequestID:
		m.ClearRequestID()
		return nil
	case notification.FieldActorUserID:
		m.ClearActorUserID()
		return nil
	case notification.FieldMessage:
		m.ClearMessage()
		return nil
	case notification.FieldReadAt:
		m.ClearReadAt()
		return nil
	}
	return fmt.Errorf("unknown Notification nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *NotificationMutation) ResetField(name string) error {
	switch name {
	case notification.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case notification.FieldUserID:
		m.ResetUserID()
		return nil
	case notification.FieldRequestID:
		m.ResetRequestID()
		return nil
	case notification.FieldEventType:
		m.ResetEventType()
		return nil
	case notification.FieldActorUserID:
		m.ResetActorUserID()
		return nil
	case notification.FieldMessage:
		m.ResetMessage()
		return nil
	case notification.FieldReadAt:
		m.ResetReadAt()
		return nil
	}
	return fmt.Errorf("unknown Notification field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *NotificationMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *NotificationMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *NotificationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *NotificationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *NotificationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *NotificationMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *NotificationMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Notification unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *NotificationMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Notification edge %s", name)
}

// RequestMutation represents an operation that mutates the Request nodes in the graph.
type RequestMutation struct {
	config
	op            Op
	typ           string
	id            *int
	created_at    *time.Time
	updated_at    *time.Time
	user_id       *int
	adduser_id    *int
	request_type  *string
	workflow_key  *string
	title         *string
	body          *string
	payload       *map[string]interface{}
	status        *request.Status
	decided_by    *int
	adddecided_by *int
	decided_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Request, error)
	predicates    []predicate.Request
}

var _ ent.Mutation = (*RequestMutation)(nil)

// requestOption allows management of the mutation configuration using functional options.
type requestOption func(*RequestMutation)

// newRequestMutation creates new mutation for the Request entity.
func newRequestMutation(c config, op Op, opts ...requestOption) *RequestMutation {
	m := &RequestMutation{
		config:        c,
		op:            op,
		typ:           TypeRequest,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRequestID sets the ID field of the mutation.
func withRequestID(id int) requestOption {
	return func(m *RequestMutation) {
		var (
			err   error
			once  sync.Once
			value *Request
		)
		m.oldValue = func(ctx context.Context) (*Request, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Request.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRequest sets the old Request of the mutation.
func withRequest(node *Request) requestOption {
	return func(m *RequestMutation) {
		m.oldValue = func(context.Context) (*Request, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RequestMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RequestMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RequestMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RequestMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Request.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *RequestMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RequestMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RequestMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *RequestMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *RequestMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *RequestMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetUserID sets the "user_id" field.
func (m *RequestMutation) SetUserID(i int) {
	m.user_id = &i
	m.adduser_id = nil
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *RequestMutation) UserID() (r int, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldUserID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// AddUserID adds i to the "user_id" field.
func (m *RequestMutation) AddUserID(i int) {
	if m.adduser_id != nil {
		*m.adduser_id += i
	} else {
		m.adduser_id = &i
	}
}

// AddedUserID returns the value that was added to the "user_id" field in this mutation.
func (m *RequestMutation) AddedUserID() (r int, exists bool) {
	v := m.adduser_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserID resets all changes to the "user_id" field.
func (m *RequestMutation) ResetUserID() {
	m.user_id = nil
	m.adduser_id = nil
}

// SetRequestType sets the "request_type" field.
func (m *RequestMutation) SetRequestType(s string) {
	m.request_type = &s
}

// RequestType returns the value of the "request_type" field in the mutation.
func (m *RequestMutation) RequestType() (r string, exists bool) {
	v := m.request_type
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestType returns the old "request_type" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldRequestType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestType: %w", err)
	}
	return oldValue.RequestType, nil
}

// ResetRequestType resets all changes to the "request_type" field.
func (m *RequestMutation) ResetRequestType() {
	m.request_type = nil
}

// SetWorkflowKey sets the "workflow_key" field.
func (m *RequestMutation) SetWorkflowKey(s string) {
	m.workflow_key = &s
}

// WorkflowKey returns the value of the "workflow_key" field in the mutation.
func (m *RequestMutation) WorkflowKey() (r string, exists bool) {
	v := m.workflow_key
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkflowKey returns the old "workflow_key" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldWorkflowKey(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkflowKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkflowKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkflowKey: %w", err)
	}
	return oldValue.WorkflowKey, nil
}

// ClearWorkflowKey clears the value of the "workflow_key" field.
func (m *RequestMutation) ClearWorkflowKey() {
	m.workflow_key = nil
	m.clearedFields[request.FieldWorkflowKey] = struct{}{}
}

// WorkflowKeyCleared returns if the "workflow_key" field was cleared in this mutation.
func (m *RequestMutation) WorkflowKeyCleared() bool {
	_, ok := m.clearedFields[request.FieldWorkflowKey]
	return ok
}

// ResetWorkflowKey resets all changes to the "workflow_key" field.
func (m *RequestMutation) ResetWorkflowKey() {
	m.workflow_key = nil
	delete(m.clearedFields, request.FieldWorkflowKey)
}

// SetTitle sets the "title" field.
func (m *RequestMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *RequestMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *RequestMutation) ResetTitle() {
	m.title = nil
}

// SetBody sets the "body" field.
func (m *RequestMutation) SetBody(s string) {
	m.body = &s
}

// Body returns the value of the "body" field in the mutation.
func (m *RequestMutation) Body() (r string, exists bool) {
	v := m.body
	if v == nil {
		return
	}
	return *v, true
}

// OldBody returns the old "body" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBody: %w", err)
	}
	return oldValue.Body, nil
}

// ResetBody resets all changes to the "body" field.
func (m *RequestMutation) ResetBody() {
	m.body = nil
}

// SetPayload sets the "payload" field.
func (m *RequestMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *RequestMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *RequestMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[request.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *RequestMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[request.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *RequestMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, request.FieldPayload)
}

// SetStatus sets the "status" field.
func (m *RequestMutation) SetStatus(r request.Status) {
	m.status = &r
}

// Status returns the value of the "status" field in the mutation.
func (m *RequestMutation) Status() (r request.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldStatus(ctx context.Context) (v request.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *RequestMutation) ResetStatus() {
	m.status = nil
}

// SetDecidedBy sets the "decided_by" field.
func (m *RequestMutation) SetDecidedBy(i int) {
	m.decided_by = &i
	m.adddecided_by = nil
}

// DecidedBy returns the value of the "decided_by" field in the mutation.
func (m *RequestMutation) DecidedBy() (r int, exists bool) {
	v := m.decided_by
	if v == nil {
		return
	}
	return *v, true
}

// OldDecidedBy returns the old "decided_by" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldDecidedBy(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecidedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecidedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecidedBy: %w", err)
	}
	return oldValue.DecidedBy, nil
}

// AddDecidedBy adds i to the "decided_by" field.
func (m *RequestMutation) AddDecidedBy(i int) {
	if m.adddecided_by != nil {
		*m.adddecided_by += i
	} else {
		m.adddecided_by = &i
	}
}

// AddedDecidedBy returns the value that was added to the "decided_by" field in this mutation.
func (m *RequestMutation) AddedDecidedBy() (r int, exists bool) {
	v := m.adddecided_by
	if v == nil {
		return
	}
	return *v, true
}

// ClearDecidedBy clears the value of the "decided_by" field.
func (m *RequestMutation) ClearDecidedBy() {
	m.decided_by = nil
	m.adddecided_by = nil
	m.clearedFields[request.FieldDecidedBy] = struct{}{}
}

// DecidedByCleared returns if the "decided_by" field was cleared in this mutation.
func (m *RequestMutation) DecidedByCleared() bool {
	_, ok := m.clearedFields[request.FieldDecidedBy]
	return ok
}

// ResetDecidedBy resets all changes to the "decided_by" field.
func (m *RequestMutation) ResetDecidedBy() {
	m.decided_by = nil
	m.adddecided_by = nil
	delete(m.clearedFields, request.FieldDecidedBy)
}

// SetDecidedAt sets the "decided_at" field.
func (m *RequestMutation) SetDecidedAt(t time.Time) {
	m.decided_at = &t
}

// DecidedAt returns the value of the "decided_at" field in the mutation.
func (m *RequestMutation) DecidedAt() (r time.Time, exists bool) {
	v := m.decided_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDecidedAt returns the old "decided_at" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldDecidedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecidedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecidedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecidedAt: %w", err)
	}
	return oldValue.DecidedAt, nil
}

// ClearDecidedAt clears the value of the "decided_at" field.
func (m *RequestMutation) ClearDecidedAt() {
	m.decided_at = nil
	m.clearedFields[request.FieldDecidedAt] = struct{}{}
}

// DecidedAtCleared returns if the "decided_at" field was cleared in this mutation.
func (m *RequestMutation) DecidedAtCleared() bool {
	_, ok := m.clearedFields[request.FieldDecidedAt]
	return ok
}

// ResetDecidedAt resets all changes to the "decided_at" field.
func (m *RequestMutation) ResetDecidedAt() {
	m.decided_at = nil
	delete(m.clearedFields, request.FieldDecidedAt)
}

// Where appends a list predicates to the RequestMutation builder.
func (m *RequestMutation) Where(ps ...predicate.Request) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RequestMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RequestMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Request, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RequestMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RequestMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Request).
func (m *RequestMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RequestMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.created_at != nil {
		fields = append(fields, request.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, request.FieldUpdatedAt)
	}
	if m.user_id != nil {
		fields = append(fields, request.FieldUserID)
	}
	if m.request_type != nil {
		fields = append(fields, request.FieldRequestType)
	}
	if m.workflow_key != nil {
		fields = append(fields, request.FieldWorkflowKey)
	}
	if m.title != nil {
		fields = append(fields, request.FieldTitle)
	}
	if m.body != nil {
		fields = append(fields, request.FieldBody)
	}
	if m.payload != nil {
		fields = append(fields, request.FieldPayload)
	}
	if m.status != nil {
		fields = append(fields, request.FieldStatus)
	}
	if m.decided_by != nil {
		fields = append(fields, request.FieldDecidedBy)
	}
	if m.decided_at != nil {
		fields = append(fields, request.FieldDecidedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RequestMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case request.FieldCreatedAt:
		return m.CreatedAt()
	case request.FieldUpdatedAt:
		return m.UpdatedAt()
	case request.FieldUserID:
		return m.UserID()
	case request.FieldRequestType:
		return m.RequestType()
	case request.FieldWorkflowKey:
		return m.WorkflowKey()
	case request.FieldTitle:
		return m.Title()
	case request.FieldBody:
		return m.Body()
	case request.FieldPayload:
		return m.Payload()
	case request.FieldStatus:
		return m.Status()
	case request.FieldDecidedBy:
		return m.DecidedBy()
	case request.FieldDecidedAt:
		return m.DecidedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RequestMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case request.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case request.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case request.FieldUserID:
		return m.OldUserID(ctx)
	case request.FieldRequestType:
		return m.OldRequestType(ctx)
	case request.FieldWorkflowKey:
		return m.OldWorkflowKey(ctx)
	case request.FieldTitle:
		return m.OldTitle(ctx)
	case request.FieldBody:
		return m.OldBody(ctx)
	case request.FieldPayload:
		return m.OldPayload(ctx)
	case request.FieldStatus:
		return m.OldStatus(ctx)
	case request.FieldDecidedBy:
		return m.OldDecidedBy(ctx)
	case request.FieldDecidedAt:
		return m.OldDecidedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Request field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RequestMutation) SetField(name string, value ent.Value) error {
	switch name {
	case request.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case request.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case request.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case request.FieldRequestType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestType(v)
		return nil
	case request.FieldWorkflowKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkflowKey(v)
		return nil
	case request.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case request.FieldBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBody(v)
		return nil
	case request.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case request.FieldStatus:
		v, ok := value.(request.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case request.FieldDecidedBy:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecidedBy(v)
		return nil
	case request.FieldDecidedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecidedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Request field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RequestMutation) AddedFields() []string {
	var fields []string
	if m.adduser_id != nil {
		fields = append(fields, request.FieldUserID)
	}
	if m.adddecided_by != nil {
		fields = append(fields, request.FieldDecidedBy)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RequestMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case request.FieldUserID:
		return m.AddedUserID()
	case request.FieldDecidedBy:
		return m.AddedDecidedBy()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RequestMutation) AddField(name string, value ent.Value) error {
	switch name {
	case request.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserID(v)
		return nil
	case request.FieldDecidedBy:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDecidedBy(v)
		return nil
	}
	return fmt.Errorf("unknown Request numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RequestMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(request.FieldWorkflowKey) {
		fields = append(fields, request.FieldWorkflowKey)
	}
	if m.FieldCleared(request.FieldPayload) {
		fields = append(fields, request.FieldPayload)
	}
	if m.FieldCleared(request.FieldDecidedBy) {
		fields = append(fields, request.FieldDecidedBy)
	}
	if m.FieldCleared(request.FieldDecidedAt) {
		fields = append(fields, request.FieldDecidedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RequestMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RequestMutation) ClearField(name string) error {
	switch name {
	case request.FieldWorkflowKey:
		m.ClearWorkflowKey()
		return nil
	case request.FieldPayload:
		m.ClearPayload()
		return nil
	case request.FieldDecidedBy:
		m.ClearDecidedBy()
		return nil
	case request.FieldDecidedAt:
		m.ClearDecidedAt()
		return nil
	}
	return fmt.Errorf("unknown Request nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RequestMutation) ResetField(name string) error {
	switch name {
	case request.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case request.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case request.FieldUserID:
		m.ResetUserID()
		return nil
	case request.FieldRequestType:
		m.ResetRequestType()
		return nil
	case request.FieldWorkflowKey:
		m.ResetWorkflowKey()
		return nil
	case request.FieldTitle:
		m.ResetTitle()
		return nil
	case request.FieldBody:
		m.ResetBody()
		return nil
	case request.FieldPayload:
		m.ResetPayload()
		return nil
	case request.FieldStatus:
		m.ResetStatus()
		return nil
	case request.FieldDecidedBy:
		m.ResetDecidedBy()
		return nil
	case request.FieldDecidedAt:
		m.ResetDecidedAt()
		return nil
	}
	return fmt.Errorf("unknown Request field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RequestMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RequestMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RequestMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RequestMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RequestMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RequestMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RequestMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Request unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RequestMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Request edge %s", name)
}

// RequestEventMutation represents an operation that mutates the RequestEvent nodes in the graph.
type RequestEventMutation struct {
	config
	op               Op
	typ              string
	id               *int
	created_at       *time.Time
	request_id       *int
	addrequest_id    *int
	event_type       *string
	actor_user_id    *int
	addactor_user_id *int
	message          *string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*RequestEvent, error)
	predicates       []predicate.RequestEvent
}

var _ ent.Mutation = (*RequestEventMutation)(nil)

// requesteventOption allows management of the mutation configuration using functional options.
type requesteventOption func(*RequestEventMutation)

// newRequestEventMutation creates new mutation for the RequestEvent entity.
func newRequestEventMutation(c config, op Op, opts ...requesteventOption) *RequestEventMutation {
	m := &RequestEventMutation{
		config:        c,
		op:            op,
		typ:           TypeRequestEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRequestEventID sets the ID field of the mutation.
func withRequestEventID(id int) requesteventOption {
	return func(m *RequestEventMutation) {
		var (
			err   error
			once  sync.Once
			value *RequestEvent
		)
		m.oldValue = func(ctx context.Context) (*RequestEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RequestEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRequestEvent sets the old RequestEvent of the mutation.
func withRequestEvent(node *RequestEvent) requesteventOption {
	return func(m *RequestEventMutation) {
		m.oldValue = func(context.Context) (*RequestEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RequestEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RequestEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RequestEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RequestEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RequestEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *RequestEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RequestEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RequestEvent entity.
// If the RequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RequestEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetRequestID sets the "request_id" field.
func (m *RequestEventMutation) SetRequestID(i int) {
	m.request_id = &i
	m.addrequest_id = nil
}

// RequestID returns the value of the "request_id" field in the mutation.
func (m *RequestEventMutation) RequestID() (r int, exists bool) {
	v := m.request_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestID returns the old "request_id" field's value of the RequestEvent entity.
// If the RequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestEventMutation) OldRequestID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestID: %w", err)
	}
	return oldValue.RequestID, nil
}

// AddRequestID adds i to the "request_id" field.
func (m *RequestEventMutation) AddRequestID(i int) {
	if m.addrequest_id != nil {
		*m.addrequest_id += i
	} else {
		m.addrequest_id = &i
	}
}

// AddedRequestID returns the value that was added to the "request_id" field in this mutation.
func (m *RequestEventMutation) AddedRequestID() (r int, exists bool) {
	v := m.addrequest_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetRequestID resets all changes to the "request_id" field.
func (m *RequestEventMutation) ResetRequestID() {
	m.request_id = nil
	m.addrequest_id = nil
}

// SetEventType sets the "event_type" field.
func (m *RequestEventMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *RequestEventMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the RequestEvent entity.
// If the RequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestEventMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *RequestEventMutation) ResetEventType() {
	m.event_type = nil
}

// SetActorUserID sets the "actor_user_id" field.
func (m *RequestEventMutation) SetActorUserID(i int) {
	m.actor_user_id = &i
	m.addactor_user_id = nil
}

// ActorUserID returns the value of the "actor_user_id" field in the mutation.
func (m *RequestEventMutation) ActorUserID() (r int, exists bool) {
	v := m.actor_user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldActorUserID returns the old "actor_user_id" field's value of the RequestEvent entity.
// If the RequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestEventMutation) OldActorUserID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActorUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActorUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActorUserID: %w", err)
	}
	return oldValue.ActorUserID, nil
}

// AddActorUserID adds i to the "actor_user_id" field.
func (m *RequestEventMutation) AddActorUserID(i int) {
	if m.addactor_user_id != nil {
		*m.addactor_user_id += i
	} else {
		m.addactor_user_id = &i
	}
}

// AddedActorUserID returns the value that was added to the "actor_user_id" field in this mutation.
func (m *RequestEventMutation) AddedActorUserID() (r int, exists bool) {
	v := m.addactor_user_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearActorUserID clears the value of the "actor_user_id" field.
func (m *RequestEventMutation) ClearActorUserID() {
	m.actor_user_id = nil
	m.addactor_user_id = nil
	m.clearedFields[requestevent.FieldActorUserID] = struct{}{}
}

// ActorUserIDCleared returns if the "actor_user_id" field was cleared in this mutation.
func (m *RequestEventMutation) ActorUserIDCleared() bool {
	_, ok := m.clearedFields[requestevent.FieldActorUserID]
	return ok
}

// ResetActorUserID resets all changes to the "actor_user_id" field.
func (m *RequestEventMutation) ResetActorUserID() {
	m.actor_user_id = nil
	m.addactor_user_id = nil
	delete(m.clearedFields, requestevent.FieldActorUserID)
}

// SetMessage sets the "message" field.
func (m *RequestEventMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *RequestEventMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the RequestEvent entity.
// If the RequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestEventMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ClearMessage clears the value of the "message" field.
func (m *RequestEventMutation) ClearMessage() {
	m.message = nil
	m.clearedFields[requestevent.FieldMessage] = struct{}{}
}

// MessageCleared returns if the "message" field was cleared in this mutation.
func (m *RequestEventMutation) MessageCleared() bool {
	_, ok := m.clearedFields[requestevent.FieldMessage]
	return ok
}

// ResetMessage resets all changes to the "message" field.
func (m *RequestEventMutation) ResetMessage() {
	m.message = nil
	delete(m.clearedFields, requestevent.FieldMessage)
}

// Where appends a list predicates to the RequestEventMutation builder.
func (m *RequestEventMutation) Where(ps ...predicate.RequestEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RequestEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RequestEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RequestEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RequestEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RequestEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RequestEvent).
func (m *RequestEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RequestEventMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.created_at != nil {
		fields = append(fields, requestevent.FieldCreatedAt)
	}
	if m.request_id != nil {
		fields = append(fields, requestevent.FieldRequestID)
	}
	if m.event_type != nil {
		fields = append(fields, requestevent.FieldEventType)
	}
	if m.actor_user_id != nil {
		fields = append(fields, requestevent.FieldActorUserID)
	}
	if m.message != nil {
		fields = append(fields, requestevent.FieldMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RequestEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case requestevent.FieldCreatedAt:
		return m.CreatedAt()
	case requestevent.FieldRequestID:
		return m.RequestID()
	case requestevent.FieldEventType:
		return m.EventType()
	case requestevent.FieldActorUserID:
		return m.ActorUserID()
	case requestevent.FieldMessage:
		return m.Message()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RequestEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case requestevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case requestevent.FieldRequestID:
		return m.OldRequestID(ctx)
	case requestevent.FieldEventType:
		return m.OldEventType(ctx)
	case requestevent.FieldActorUserID:
		return m.OldActorUserID(ctx)
	case requestevent.FieldMessage:
		return m.OldMessage(ctx)
	}
	return nil, fmt.Errorf("unknown RequestEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RequestEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case requestevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case requestevent.FieldRequestID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestID(v)
		return nil
	case requestevent.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case requestevent.FieldActorUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActorUserID(v)
		return nil
	case requestevent.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	}
	return fmt.Errorf("unknown RequestEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RequestEventMutation) AddedFields() []string {
	var fields []string
	if m.addrequest_id != nil {
		fields = append(fields, requestevent.FieldRequestID)
	}
	if m.addactor_user_id != nil {
		fields = append(fields, requestevent.FieldActorUserID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RequestEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case requestevent.FieldRequestID:
		return m.AddedRequestID()
	case requestevent.FieldActorUserID:
		return m.AddedActorUserID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RequestEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case requestevent.FieldRequestID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRequestID(v)
		return nil
	case requestevent.FieldActorUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddActorUserID(v)
		return nil
	}
	return fmt.Errorf("unknown RequestEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RequestEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(requestevent.FieldActorUserID) {
		fields = append(fields, requestevent.FieldActorUserID)
	}
	if m.FieldCleared(requestevent.FieldMessage) {
		fields = append(fields, requestevent.FieldMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RequestEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RequestEventMutation) ClearField(name string) error {
	switch name {
	case requestevent.FieldActorUserID:
		m.ClearActorUserID()
		return nil
	case requestevent.FieldMessage:
		m.ClearMessage()
		return nil
	}
	return fmt.Errorf("unknown RequestEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RequestEventMutation) ResetField(name string) error {
	switch name {
	case requestevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case requestevent.FieldRequestID:
		m.ResetRequestID()
		return nil
	case requestevent.FieldEventType:
		m.ResetEventType()
		return nil
	case requestevent.FieldActorUserID:
		m.ResetActorUserID()
		return nil
	case requestevent.FieldMessage:
		m.ResetMessage()
		return nil
	}
	return fmt.Errorf("unknown RequestEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RequestEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RequestEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RequestEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RequestEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RequestEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RequestEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RequestEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown RequestEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RequestEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown RequestEvent edge %s", name)
}

// RequestWatcherMutation represents an operation that mutates the RequestWatcher nodes in the graph.
type RequestWatcherMutation struct {
	config
	op            Op
	typ           string
	id            *int
	created_at    *time.Time
	request_id    *int
	addrequest_id *int
	user_id       *int
	adduser_id    *int
	kind          *requestwatcher.Kind
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*RequestWatcher, error)
	predicates    []predicate.RequestWatcher
}

var _ ent.Mutation = (*RequestWatcherMutation)(nil)

// requestwatcherOption allows management of the mutation configuration using functional options.
type requestwatcherOption func(*RequestWatcherMutation)

// newRequestWatcherMutation creates new mutation for the RequestWatcher entity.
func newRequestWatcherMutation(c config, op Op, opts ...requestwatcherOption) *RequestWatcherMutation {
	m := &RequestWatcherMutation{
		config:        c,
		op:            op,
		typ:           TypeRequestWatcher,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRequestWatcherID sets the ID field of the mutation.
func withRequestWatcherID(id int) requestwatcherOption {
	return func(m *RequestWatcherMutation) {
		var (
			err   error
			once  sync.Once
			value *RequestWatcher
		)
		m.oldValue = func(ctx context.Context) (*RequestWatcher, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RequestWatcher.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRequestWatcher sets the old RequestWatcher of the mutation.
func withRequestWatcher(node *RequestWatcher) requestwatcherOption {
	return func(m *RequestWatcherMutation) {
		m.oldValue = func(context.Context) (*RequestWatcher, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RequestWatcherMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RequestWatcherMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RequestWatcherMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RequestWatcherMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RequestWatcher.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *RequestWatcherMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RequestWatcherMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RequestWatcher entity.
// If the RequestWatcher object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestWatcherMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RequestWatcherMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetRequestID sets the "request_id" field.
func (m *RequestWatcherMutation) SetRequestID(i int) {
	m.request_id = &i
	m.addrequest_id = nil
}

// RequestID returns the value of the "request_id" field in the mutation.
func (m *RequestWatcherMutation) RequestID() (r int, exists bool) {
	v := m.request_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestID returns the old "request_id" field's value of the RequestWatcher entity.
// If the RequestWatcher object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestWatcherMutation) OldRequestID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestID: %w", err)
	}
	return oldValue.RequestID, nil
}

// AddRequestID adds i to the "request_id" field.
func (m *RequestWatcherMutation) AddRequestID(i int) {
	if m.addrequest_id != nil {
		*m.addrequest_id += i
	} else {
		m.addrequest_id = &i
	}
}

// AddedRequestID returns the value that was added to the "request_id" field in this mutation.
func (m *RequestWatcherMutation) AddedRequestID() (r int, exists bool) {
	v := m.addrequest_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetRequestID resets all changes to the "request_id" field.
func (m *RequestWatcherMutation) ResetRequestID() {
	m.request_id = nil
	m.addrequest_id = nil
}

// SetUserID sets the "user_id" field.
func (m *RequestWatcherMutation) SetUserID(i int) {
	m.user_id = &i
	m.adduser_id = nil
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *RequestWatcherMutation) UserID() (r int, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the RequestWatcher entity.
// If the RequestWatcher object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestWatcherMutation) OldUserID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// AddUserID adds i to the "user_id" field.
func (m *RequestWatcherMutation) AddUserID(i int) {
	if m.adduser_id != nil {
		*m.adduser_id += i
	} else {
		m.adduser_id = &i
	}
}

// AddedUserID returns the value that was added to the "user_id" field in this mutation.
func (m *RequestWatcherMutation) AddedUserID() (r int, exists bool) {
	v := m.adduser_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserID resets all changes to the "user_id" field.
func (m *RequestWatcherMutation) ResetUserID() {
	m.user_id = nil
	m.adduser_id = nil
}

// SetKind sets the "kind" field.
func (m *RequestWatcherMutation) SetKind(r requestwatcher.Kind) {
	m.kind = &r
}

// Kind returns the value of the "kind" field in the mutation.
func (m *RequestWatcherMutation) Kind() (r requestwatcher.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the RequestWatcher entity.
// If the RequestWatcher object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestWatcherMutation) OldKind(ctx context.Context) (v requestwatcher.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *RequestWatcherMutation) ResetKind() {
	m.kind = nil
}

// Where appends a list predicates to the RequestWatcherMutation builder.
func (m *RequestWatcherMutation) Where(ps ...predicate.RequestWatcher) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RequestWatcherMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RequestWatcherMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RequestWatcher, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RequestWatcherMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RequestWatcherMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RequestWatcher).
func (m *RequestWatcherMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RequestWatcherMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.created_at != nil {
		fields = append(fields, requestwatcher.FieldCreatedAt)
	}
	if m.request_id != nil {
		fields = append(fields, requestwatcher.FieldRequestID)
	}
	if m.user_id != nil {
		fields = append(fields, requestwatcher.FieldUserID)
	}
	if m.kind != nil {
		fields = append(fields, requestwatcher.FieldKind)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RequestWatcherMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case requestwatcher.FieldCreatedAt:
		return m.CreatedAt()
	case requestwatcher.FieldRequestID:
		return m.RequestID()
	case requestwatcher.FieldUserID:
		return m.UserID()
	case requestwatcher.FieldKind:
		return m.Kind()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RequestWatcherMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case requestwatcher.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case requestwatcher.FieldRequestID:
		return m.OldRequestID(ctx)
	case requestwatcher.FieldUserID:
		return m.OldUserID(ctx)
	case requestwatcher.FieldKind:
		return m.OldKind(ctx)
	}
	return nil, fmt.Errorf("unknown RequestWatcher field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RequestWatcherMutation) SetField(name string, value ent.Value) error {
	switch name {
	case requestwatcher.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case requestwatcher.FieldRequestID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestID(v)
		return nil
	case requestwatcher.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case requestwatcher.FieldKind:
		v, ok := value.(requestwatcher.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	}
	return fmt.Errorf("unknown RequestWatcher field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RequestWatcherMutation) AddedFields() []string {
	var fields []string
	if m.addrequest_id != nil {
		fields = append(fields, requestwatcher.FieldRequestID)
	}
	if m.adduser_id != nil {
		fields = append(fields, requestwatcher.FieldUserID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RequestWatcherMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case requestwatcher.FieldRequestID:
		return m.AddedRequestID()
	case requestwatcher.FieldUserID:
		return m.AddedUserID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RequestWatcherMutation) AddField(name string, value ent.Value) error {
	switch name {
	case requestwatcher.FieldRequestID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRequestID(v)
		return nil
	case requestwatcher.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserID(v)
		return nil
	}
	return fmt.Errorf("unknown RequestWatcher numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RequestWatcherMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RequestWatcherMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RequestWatcherMutation) ClearField(name string) error {
	return fmt.Errorf("unknown RequestWatcher nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RequestWatcherMutation) ResetField(name string) error {
	switch name {
	case requestwatcher.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case requestwatcher.FieldRequestID:
		m.ResetRequestID()
		return nil
	case requestwatcher.FieldUserID:
		m.ResetUserID()
		return nil
	case requestwatcher.FieldKind:
		m.ResetKind()
		return nil
	}
	return fmt.Errorf("unknown RequestWatcher field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RequestWatcherMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RequestWatcherMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RequestWatcherMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RequestWatcherMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RequestWatcherMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RequestWatcherMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RequestWatcherMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown RequestWatcher unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RequestWatcherMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown RequestWatcher edge %s", name)
}

// TaskMutation represents an operation that mutates the Task nodes in the graph.
type TaskMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	created_at          *time.Time
	request_id          *int
	addrequest_id       *int
	step_order          *int
	addstep_order       *int
	step_key            *string
	assignee_user_id    *int
	addassignee_user_id *int
	assignee_role       *string
	status              *task.Status
	decided_by          *int
	adddecided_by       *int
	decided_at          *time.Time
	comment             *string
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*Task, error)
	predicates          []predicate.Task
}

var _ ent.Mutation = (*TaskMutation)(nil)

// taskOption allows management of the mutation configuration using functional options.
type taskOption func(*TaskMutation)

// newTaskMutation creates new mutation for the Task entity.
func newTaskMutation(c config, op Op, opts ...taskOption) *TaskMutation {
	m := &TaskMutation{
		config:        c,
		op:            op,
		typ:           TypeTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskID sets the ID field of the mutation.
func withTaskID(id int) taskOption {
	return func(m *TaskMutation) {
		var (
			err   error
			once  sync.Once
			value *Task
		)
		m.oldValue = func(ctx context.Context) (*Task, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Task.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTask sets the old Task of the mutation.
func withTask(node *Task) taskOption {
	return func(m *TaskMutation) {
		m.oldValue = func(context.Context) (*Task, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Task.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetRequestID sets the "request_id" field.
func (m *TaskMutation) SetRequestID(i int) {
	m.request_id = &i
	m.addrequest_id = nil
}

// RequestID returns the value of the "request_id" field in the mutation.
func (m *TaskMutation) RequestID() (r int, exists bool) {
	v := m.request_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestID returns the old "request_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldRequestID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestID: %w", err)
	}
	return oldValue.RequestID, nil
}

// AddRequestID adds i to the "request_id" field.
func (m *TaskMutation) AddRequestID(i int) {
	if m.addrequest_id != nil {
		*m.addrequest_id += i
	} else {
		m.addrequest_id = &i
	}
}

// AddedRequestID returns the value that was added to the "request_id" field in this mutation.
func (m *TaskMutation) AddedRequestID() (r int, exists bool) {
	v := m.addrequest_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetRequestID resets all changes to the "request_id" field.
func (m *TaskMutation) ResetRequestID() {
	m.request_id = nil
	m.addrequest_id = nil
}

// SetStepOrder sets the "step_order" field.
func (m *TaskMutation) SetStepOrder(i int) {
	m.step_order = &i
	m.addstep_order = nil
}

// StepOrder returns the value of the "step_order" field in the mutation.
func (m *TaskMutation) StepOrder() (r int, exists bool) {
	v := m.step_order
	if v == nil {
		return
	}
	return *v, true
}

// OldStepOrder returns the old "step_order" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStepOrder(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepOrder: %w", err)
	}
	return oldValue.StepOrder, nil
}

// AddStepOrder adds i to the "step_order" field.
func (m *TaskMutation) AddStepOrder(i int) {
	if m.addstep_order != nil {
		*m.addstep_order += i
	} else {
		m.addstep_order = &i
	}
}

// AddedStepOrder returns the value that was added to the "step_order" field in this mutation.
func (m *TaskMutation) AddedStepOrder() (r int, exists bool) {
	v := m.addstep_order
	if v == nil {
		return
	}
	return *v, true
}

// ClearStepOrder clears the value of the "step_order" field.
func (m *TaskMutation) ClearStepOrder() {
	m.step_order = nil
	m.addstep_order = nil
	m.clearedFields[task.FieldStepOrder] = struct{}{}
}

// StepOrderCleared returns if the "step_order" field was cleared in this mutation.
func (m *TaskMutation) StepOrderCleared() bool {
	_, ok := m.clearedFields[task.FieldStepOrder]
	return ok
}

// ResetStepOrder resets all changes to the "step_order" field.
func (m *TaskMutation) ResetStepOrder() {
	m.step_order = nil
	m.addstep_order = nil
	delete(m.clearedFields, task.FieldStepOrder)
}

// SetStepKey sets the "step_key" field.
func (m *TaskMutation) SetStepKey(s string) {
	m.step_key = &s
}

// StepKey returns the value of the "step_key" field in the mutation.
func (m *TaskMutation) StepKey() (r string, exists bool) {
	v := m.step_key
	if v == nil {
		return
	}
	return *v, true
}

// OldStepKey returns the old "step_key" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStepKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepKey: %w", err)
	}
	return oldValue.StepKey, nil
}

// ResetStepKey resets all changes to the "step_key" field.
func (m *TaskMutation) ResetStepKey() {
	m.step_key = nil
}

// SetAssigneeUserID sets the "assignee_user_id" field.
func (m *TaskMutation) SetAssigneeUserID(i int) {
	m.assignee_user_id = &i
	m.addassignee_user_id = nil
}

// AssigneeUserID returns the value of the "assignee_user_id" field in the mutation.
func (m *TaskMutation) AssigneeUserID() (r int, exists bool) {
	v := m.assignee_user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAssigneeUserID returns the old "assignee_user_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldAssigneeUserID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssigneeUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssigneeUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssigneeUserID: %w", err)
	}
	return oldValue.AssigneeUserID, nil
}

// AddAssigneeUserID adds i to the "assignee_user_id" field.
func (m *TaskMutation) AddAssigneeUserID(i int) {
	if m.addassignee_user_id != nil {
		*m.addassignee_user_id += i
	} else {
		m.addassignee_user_id = &i
	}
}

// AddedAssigneeUserID returns the value that was added to the "assignee_user_id" field in this mutation.
func (m *TaskMutation) AddedAssigneeUserID() (r int, exists bool) {
	v := m.addassignee_user_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearAssigneeUserID clears the value of the "assignee_user_id" field.
func (m *TaskMutation) ClearAssigneeUserID() {
	m.assignee_user_id = nil
	m.addassignee_user_id = nil
	m.clearedFields[task.FieldAssigneeUserID] = struct{}{}
}

// AssigneeUserIDCleared returns if the "assignee_user_id" field was cleared in this mutation.
func (m *TaskMutation) AssigneeUserIDCleared() bool {
	_, ok := m.clearedFields[task.FieldAssigneeUserID]
	return ok
}

// ResetAssigneeUserID resets all changes to the "assignee_user_id" field.
func (m *TaskMutation) ResetAssigneeUserID() {
	m.assignee_user_id = nil
	m.addassignee_user_id = nil
	delete(m.clearedFields, task.FieldAssigneeUserID)
}

// SetAssigneeRole sets the "assignee_role" field.
func (m *TaskMutation) SetAssigneeRole(s string) {
	m.assignee_role = &s
}

// AssigneeRole returns the value of the "assignee_role" field in the mutation.
func (m *TaskMutation) AssigneeRole() (r string, exists bool) {
	v := m.assignee_role
	if v == nil {
		return
	}
	return *v, true
}

// OldAssigneeRole returns the old "assignee_role" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldAssigneeRole(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssigneeRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssigneeRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssigneeRole: %w", err)
	}
	return oldValue.AssigneeRole, nil
}

// ClearAssigneeRole clears the value of the "assignee_role" field.
func (m *TaskMutation) ClearAssigneeRole() {
	m.assignee_role = nil
	m.clearedFields[task.FieldAssigneeRole] = struct{}{}
}

// AssigneeRoleCleared returns if the "assignee_role" field was cleared in this mutation.
func (m *TaskMutation) AssigneeRoleCleared() bool {
	_, ok := m.clearedFields[task.FieldAssigneeRole]
	return ok
}

// ResetAssigneeRole resets all changes to the "assignee_role" field.
func (m *TaskMutation) ResetAssigneeRole() {
	m.assignee_role = nil
	delete(m.clearedFields, task.FieldAssigneeRole)
}

// SetStatus sets the "status" field.
func (m *TaskMutation) SetStatus(t task.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TaskMutation) Status() (r task.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStatus(ctx context.Context) (v task.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TaskMutation) ResetStatus() {
	m.status = nil
}

// SetDecidedBy sets the "decided_by" field.
func (m *TaskMutation) SetDecidedBy(i int) {
	m.decided_by = &i
	m.adddecided_by = nil
}

// DecidedBy returns the value of the "decided_by" field in the mutation.
func (m *TaskMutation) DecidedBy() (r int, exists bool) {
	v := m.decided_by
	if v == nil {
		return
	}
	return *v, true
}

// OldDecidedBy returns the old "decided_by" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldDecidedBy(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecidedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecidedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecidedBy: %w", err)
	}
	return oldValue.DecidedBy, nil
}

// AddDecidedBy adds i to the "decided_by" field.
func (m *TaskMutation) AddDecidedBy(i int) {
	if m.adddecided_by != nil {
		*m.adddecided_by += i
	} else {
		m.adddecided_by = &i
	}
}

// AddedDecidedBy returns the value that was added to the "decided_by" field in this mutation.
func (m *TaskMutation) AddedDecidedBy() (r int, exists bool) {
	v := m.adddecided_by
	if v == nil {
		return
	}
	return *v, true
}

// ClearDecidedBy clears the value of the "decided_by" field.
func (m *TaskMutation) ClearDecidedBy() {
	m.decided_by = nil
	m.adddecided_by = nil
	m.clearedFields[task.FieldDecidedBy] = struct{}{}
}

// DecidedByCleared returns if the "decided_by" field was cleared in this mutation.
func (m *TaskMutation) DecidedByCleared() bool {
	_, ok := m.clearedFields[task.FieldDecidedBy]
	return ok
}

// ResetDecidedBy resets all changes to the "decided_by" field.
func (m *TaskMutation) ResetDecidedBy() {
	m.decided_by = nil
	m.adddecided_by = nil
	delete(m.clearedFields, task.FieldDecidedBy)
}

// SetDecidedAt sets the "decided_at" field.
func (m *TaskMutation) SetDecidedAt(t time.Time) {
	m.decided_at = &t
}

// DecidedAt returns the value of the "decided_at" field in the mutation.
func (m *TaskMutation) DecidedAt() (r time.Time, exists bool) {
	v := m.decided_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDecidedAt returns the old "decided_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldDecidedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecidedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecidedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecidedAt: %w", err)
	}
	return oldValue.DecidedAt, nil
}

// ClearDecidedAt clears the value of the "decided_at" field.
func (m *TaskMutation) ClearDecidedAt() {
	m.decided_at = nil
	m.clearedFields[task.FieldDecidedAt] = struct{}{}
}

// DecidedAtCleared returns if the "decided_at" field was cleared in this mutation.
func (m *TaskMutation) DecidedAtCleared() bool {
	_, ok := m.clearedFields[task.FieldDecidedAt]
	return ok
}

// ResetDecidedAt resets all changes to the "decided_at" field.
func (m *TaskMutation) ResetDecidedAt() {
	m.decided_at = nil
	delete(m.clearedFields, task.FieldDecidedAt)
}

// SetComment sets the "comment" field.
func (m *TaskMutation) SetComment(s string) {
	m.comment = &s
}

// Comment returns the value of the "comment" field in the mutation.
func (m *TaskMutation) Comment() (r string, exists bool) {
	v := m.comment
	if v == nil {
		return
	}
	return *v, true
}

// OldComment returns the old "comment" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldComment(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComment: %w", err)
	}
	return oldValue.Comment, nil
}

// ClearComment clears the value of the "comment" field.
func (m *TaskMutation) ClearComment() {
	m.comment = nil
	m.clearedFields[task.FieldComment] = struct{}{}
}

// CommentCleared returns if the "comment" field was cleared in this mutation.
func (m *TaskMutation) CommentCleared() bool {
	_, ok := m.clearedFields[task.FieldComment]
	return ok
}

// ResetComment resets all changes to the "comment" field.
func (m *TaskMutation) ResetComment() {
	m.comment = nil
	delete(m.clearedFields, task.FieldComment)
}

// Where appends a list predicates to the TaskMutation builder.
func (m *TaskMutation) Where(ps ...predicate.Task) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Task, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Task).
func (m *TaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.created_at != nil {
		fields = append(fields, task.FieldCreatedAt)
	}
	if m.request_id != nil {
		fields = append(fields, task.FieldRequestID)
	}
	if m.step_order != nil {
		fields = append(fields, task.FieldStepOrder)
	}
	if m.step_key != nil {
		fields = append(fields, task.FieldStepKey)
	}
	if m.assignee_user_id != nil {
		fields = append(fields, task.FieldAssigneeUserID)
	}
	if m.assignee_role != nil {
		fields = append(fields, task.FieldAssigneeRole)
	}
	if m.status != nil {
		fields = append(fields, task.FieldStatus)
	}
	if m.decided_by != nil {
		fields = append(fields, task.FieldDecidedBy)
	}
	if m.decided_at != nil {
		fields = append(fields, task.FieldDecidedAt)
	}
	if m.comment != nil {
		fields = append(fields, task.FieldComment)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case task.FieldCreatedAt:
		return m.CreatedAt()
	case task.FieldRequestID:
		return m.RequestID()
	case task.FieldStepOrder:
		return m.StepOrder()
	case task.FieldStepKey:
		return m.StepKey()
	case task.FieldAssigneeUserID:
		return m.AssigneeUserID()
	case task.FieldAssigneeRole:
		return m.AssigneeRole()
	case task.FieldStatus:
		return m.Status()
	case task.FieldDecidedBy:
		return m.DecidedBy()
	case task.FieldDecidedAt:
		return m.DecidedAt()
	case task.FieldComment:
		return m.Comment()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case task.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case task.FieldRequestID:
		return m.OldRequestID(ctx)
	case task.FieldStepOrder:
		return m.OldStepOrder(ctx)
	case task.FieldStepKey:
		return m.OldStepKey(ctx)
	case task.FieldAssigneeUserID:
		return m.OldAssigneeUserID(ctx)
	case task.FieldAssigneeRole:
		return m.OldAssigneeRole(ctx)
	case task.FieldStatus:
		return m.OldStatus(ctx)
	case task.FieldDecidedBy:
		return m.OldDecidedBy(ctx)
	case task.FieldDecidedAt:
		return m.OldDecidedAt(ctx)
	case task.FieldComment:
		return m.OldComment(ctx)
	}
	return nil, fmt.Errorf("unknown Task field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case task.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case task.FieldRequestID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestID(v)
		return nil
	case task.FieldStepOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepOrder(v)
		return nil
	case task.FieldStepKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepKey(v)
		return nil
	case task.FieldAssigneeUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssigneeUserID(v)
		return nil
	case task.FieldAssigneeRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssigneeRole(v)
		return nil
	case task.FieldStatus:
		v, ok := value.(task.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case task.FieldDecidedBy:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecidedBy(v)
		return nil
	case task.FieldDecidedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecidedAt(v)
		return nil
	case task.FieldComment:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComment(v)
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskMutation) AddedFields() []string {
	var fields []string
	if m.addrequest_id != nil {
		fields = append(fields, task.FieldRequestID)
	}
	if m.addstep_order != nil {
		fields = append(fields, task.FieldStepOrder)
	}
	if m.addassignee_user_id != nil {
		fields = append(fields, task.FieldAssigneeUserID)
	}
	if m.adddecided_by != nil {
		fields = append(fields, task.FieldDecidedBy)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case task.FieldRequestID:
		return m.AddedRequestID()
	case task.FieldStepOrder:
		return m.AddedStepOrder()
	case task.FieldAssigneeUserID:
		return m.AddedAssigneeUserID()
	case task.FieldDecidedBy:
		return m.AddedDecidedBy()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case task.FieldRequestID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRequestID(v)
		return nil
	case task.FieldStepOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStepOrder(v)
		return nil
	case task.FieldAssigneeUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAssigneeUserID(v)
		return nil
	case task.FieldDecidedBy:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDecidedBy(v)
		return nil
	}
	return fmt.Errorf("unknown Task numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(task.FieldStepOrder) {
		fields = append(fields, task.FieldStepOrder)
	}
	if m.FieldCleared(task.FieldAssigneeUserID) {
		fields = append(fields, task.FieldAssigneeUserID)
	}
	if m.FieldCleared(task.FieldAssigneeRole) {
		fields = append(fields, task.FieldAssigneeRole)
	}
	if m.FieldCleared(task.FieldDecidedBy) {
		fields = append(fields, task.FieldDecidedBy)
	}
	if m.FieldCleared(task.FieldDecidedAt) {
		fields = append(fields, task.FieldDecidedAt)
	}
	if m.FieldCleared(task.FieldComment) {
		fields = append(fields, task.FieldComment)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskMutation) ClearField(name string) error {
	switch name {
	case task.FieldStepOrder:
		m.ClearStepOrder()
		return nil
	case task.FieldAssigneeUserID:
		m.ClearAssigneeUserID()
		return nil
	case task.FieldAssigneeRole:
		m.ClearAssigneeRole()
		return nil
	case task.FieldDecidedBy:
		m.ClearDecidedBy()
		return nil
	case task.FieldDecidedAt:
		m.ClearDecidedAt()
		return nil
	case task.FieldComment:
		m.ClearComment()
		return nil
	}
	return fmt.Errorf("unknown Task nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskMutation) ResetField(name string) error {
	switch name {
	case task.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case task.FieldRequestID:
		m.ResetRequestID()
		return nil
	case task.FieldStepOrder:
		m.ResetStepOrder()
		return nil
	case task.FieldStepKey:
		m.ResetStepKey()
		return nil
	case task.FieldAssigneeUserID:
		m.ResetAssigneeUserID()
		return nil
	case task.FieldAssigneeRole:
		m.ResetAssigneeRole()
		return nil
	case task.FieldStatus:
		m.ResetStatus()
		return nil
	case task.FieldDecidedBy:
		m.ResetDecidedBy()
		return nil
	case task.FieldDecidedAt:
		m.ResetDecidedAt()
		return nil
	case task.FieldComment:
		m.ResetComment()
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Task unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Task edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op            Op
	typ           string
	id            *int
	created_at    *time.Time
	updated_at    *time.Time
	username      *string
	password_hash *string
	role          *string
	dept          *string
	manager_id    *int
	addmanager_id *int
	dept_id       *int
	adddept_id    *int
	position      *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*User, error)
	predicates    []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id int) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetUsername sets the "username" field.
func (m *UserMutation) SetUsername(s string) {
	m.username = &s
}

// Username returns the value of the "username" field in the mutation.
func (m *UserMutation) Username() (r string, exists bool) {
	v := m.username
	if v == nil {
		return
	}
	return *v, true
}

// OldUsername returns the old "username" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUsername(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsername is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsername requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsername: %w", err)
	}
	return oldValue.Username, nil
}

// ResetUsername resets all changes to the "username" field.
func (m *UserMutation) ResetUsername() {
	m.username = nil
}

// SetPasswordHash sets the "password_hash" field.
func (m *UserMutation) SetPasswordHash(s string) {
	m.password_hash = &s
}

// PasswordHash returns the value of the "password_hash" field in the mutation.
func (m *UserMutation) PasswordHash() (r string, exists bool) {
	v := m.password_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPasswordHash returns the old "password_hash" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPasswordHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPasswordHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPasswordHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPasswordHash: %w", err)
	}
	return oldValue.PasswordHash, nil
}

// ResetPasswordHash resets all changes to the "password_hash" field.
func (m *UserMutation) ResetPasswordHash() {
	m.password_hash = nil
}

// SetRole sets the "role" field.
func (m *UserMutation) SetRole(s string) {
	m.role = &s
}

// Role returns the value of the "role" field in the mutation.
func (m *UserMutation) Role() (r string, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldRole(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *UserMutation) ResetRole() {
	m.role = nil
}

// SetDept sets the "dept" field.
func (m *UserMutation) SetDept(s string) {
	m.dept = &s
}

// Dept returns the value of the "dept" field in the mutation.
func (m *UserMutation) Dept() (r string, exists bool) {
	v := m.dept
	if v == nil {
		return
	}
	return *v, true
}

// OldDept returns the old "dept" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldDept(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDept is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDept requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDept: %w", err)
	}
	return oldValue.Dept, nil
}

// ClearDept clears the value of the "dept" field.
func (m *UserMutation) ClearDept() {
	m.dept = nil
	m.clearedFields[user.FieldDept] = struct{}{}
}

// DeptCleared returns if the "dept" field was cleared in this mutation.
func (m *UserMutation) DeptCleared() bool {
	_, ok := m.clearedFields[user.FieldDept]
	return ok
}

// ResetDept resets all changes to the "dept" field.
func (m *UserMutation) ResetDept() {
	m.dept = nil
	delete(m.clearedFields, user.FieldDept)
}

// SetManagerID sets the "manager_id" field.
func (m *UserMutation) SetManagerID(i int) {
	m.manager_id = &i
	m.addmanager_id = nil
}

// ManagerID returns the value of the "manager_id" field in the mutation.
func (m *UserMutation) ManagerID() (r int, exists bool) {
	v := m.manager_id
	if v == nil {
		return
	}
	return *v, true
}

// OldManagerID returns the old "manager_id" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldManagerID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldManagerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldManagerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldManagerID: %w", err)
	}
	return oldValue.ManagerID, nil
}

// AddManagerID adds i to the "manager_id" field.
func (m *UserMutation) AddManagerID(i int) {
	if m.addmanager_id != nil {
		*m.addmanager_id += i
	} else {
		m.addmanager_id = &i
	}
}

// AddedManagerID returns the value that was added to the "manager_id" field in this mutation.
func (m *UserMutation) AddedManagerID() (r int, exists bool) {
	v := m.addmanager_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearManagerID clears the value of the "manager_id" field.
func (m *UserMutation) ClearManagerID() {
	m.manager_id = nil
	m.addmanager_id = nil
	m.clearedFields[user.FieldManagerID] = struct{}{}
}

// ManagerIDCleared returns if the "manager_id" field was cleared in this mutation.
func (m *UserMutation) ManagerIDCleared() bool {
	_, ok := m.clearedFields[user.FieldManagerID]
	return ok
}

// ResetManagerID resets all changes to the "manager_id" field.
func (m *UserMutation) ResetManagerID() {
	m.manager_id = nil
	m.addmanager_id = nil
	delete(m.clearedFields, user.FieldManagerID)
}

// SetDeptID sets the "dept_id" field.
func (m *UserMutation) SetDeptID(i int) {
	m.dept_id = &i
	m.adddept_id = nil
}

// DeptID returns the value of the "dept_id" field in the mutation.
func (m *UserMutation) DeptID() (r int, exists bool) {
	v := m.dept_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDeptID returns the old "dept_id" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldDeptID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeptID: %w", err)
	}
	return oldValue.DeptID, nil
}

// AddDeptID adds i to the "dept_id" field.
func (m *UserMutation) AddDeptID(i int) {
	if m.adddept_id != nil {
		*m.adddept_id += i
	} else {
		m.adddept_id = &i
	}
}

// AddedDeptID returns the value that was added to the "dept_id" field in this mutation.
func (m *UserMutation) AddedDeptID() (r int, exists bool) {
	v := m.adddept_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearDeptID clears the value of the "dept_id" field.
func (m *UserMutation) ClearDeptID() {
	m.dept_id = nil
	m.adddept_id = nil
	m.clearedFields[user.FieldDeptID] = struct{}{}
}

// DeptIDCleared returns if the "dept_id" field was cleared in this mutation.
func (m *UserMutation) DeptIDCleared() bool {
	_, ok := m.clearedFields[user.FieldDeptID]
	return ok
}

// ResetDeptID resets all changes to the "dept_id" field.
func (m *UserMutation) ResetDeptID() {
	m.dept_id = nil
	m.adddept_id = nil
	delete(m.clearedFields, user.FieldDeptID)
}

// SetPosition sets the "position" field.
func (m *UserMutation) SetPosition(s string) {
	m.position = &s
}

// Position returns the value of the "position" field in the mutation.
func (m *UserMutation) Position() (r string, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPosition(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// ClearPosition clears the value of the "position" field.
func (m *UserMutation) ClearPosition() {
	m.position = nil
	m.clearedFields[user.FieldPosition] = struct{}{}
}

// PositionCleared returns if the "position" field was cleared in this mutation.
func (m *UserMutation) PositionCleared() bool {
	_, ok := m.clearedFields[user.FieldPosition]
	return ok
}

// ResetPosition resets all changes to the "position" field.
func (m *UserMutation) ResetPosition() {
	m.position = nil
	delete(m.clearedFields, user.FieldPosition)
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, user.FieldUpdatedAt)
	}
	if m.username != nil {
		fields = append(fields, user.FieldUsername)
	}
	if m.password_hash != nil {
		fields = append(fields, user.FieldPasswordHash)
	}
	if m.role != nil {
		fields = append(fields, user.FieldRole)
	}
	if m.dept != nil {
		fields = append(fields, user.FieldDept)
	}
	if m.manager_id != nil {
		fields = append(fields, user.FieldManagerID)
	}
	if m.dept_id != nil {
		fields = append(fields, user.FieldDeptID)
	}
	if m.position != nil {
		fields = append(fields, user.FieldPosition)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldUpdatedAt:
		return m.UpdatedAt()
	case user.FieldUsername:
		return m.Username()
	case user.FieldPasswordHash:
		return m.PasswordHash()
	case user.FieldRole:
		return m.Role()
	case user.FieldDept:
		return m.Dept()
	case user.FieldManagerID:
		return m.ManagerID()
	case user.FieldDeptID:
		return m.DeptID()
	case user.FieldPosition:
		return m.Position()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case user.FieldUsername:
		return m.OldUsername(ctx)
	case user.FieldPasswordHash:
		return m.OldPasswordHash(ctx)
	case user.FieldRole:
		return m.OldRole(ctx)
	case user.FieldDept:
		return m.OldDept(ctx)
	case user.FieldManagerID:
		return m.OldManagerID(ctx)
	case user.FieldDeptID:
		return m.OldDeptID(ctx)
	case user.FieldPosition:
		return m.OldPosition(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case user.FieldUsername:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsername(v)
		return nil
	case user.FieldPasswordHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPasswordHash(v)
		return nil
	case user.FieldRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case user.FieldDept:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDept(v)
		return nil
	case user.FieldManagerID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetManagerID(v)
		return nil
	case user.FieldDeptID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeptID(v)
		return nil
	case user.FieldPosition:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	var fields []string
	if m.addmanager_id != nil {
		fields = append(fields, user.FieldManagerID)
	}
	if m.adddept_id != nil {
		fields = append(fields, user.FieldDeptID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case user.FieldManagerID:
		return m.AddedManagerID()
	case user.FieldDeptID:
		return m.AddedDeptID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	case user.FieldManagerID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddManagerID(v)
		return nil
	case user.FieldDeptID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDeptID(v)
		return nil
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldDept) {
		fields = append(fields, user.FieldDept)
	}
	if m.FieldCleared(user.FieldManagerID) {
		fields = append(fields, user.FieldManagerID)
	}
	if m.FieldCleared(user.FieldDeptID) {
		fields = append(fields, user.FieldDeptID)
	}
	if m.FieldCleared(user.FieldPosition) {
		fields = append(fields, user.FieldPosition)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldDept:
		m.ClearDept()
		return nil
	case user.FieldManagerID:
		m.ClearManagerID()
		return nil
	case user.FieldDeptID:
		m.ClearDeptID()
		return nil
	case user.FieldPosition:
		m.ClearPosition()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case user.FieldUsername:
		m.ResetUsername()
		return nil
	case user.FieldPasswordHash:
		m.ResetPasswordHash()
		return nil
	case user.FieldRole:
		m.ResetRole()
		return nil
	case user.FieldDept:
		m.ResetDept()
		return nil
	case user.FieldManagerID:
		m.ResetManagerID()
		return nil
	case user.FieldDeptID:
		m.ResetDeptID()
		return nil
	case user.FieldPosition:
		m.ResetPosition()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown User edge %s", name)
}

// WorkflowVariantMutation represents an operation that mutates the WorkflowVariant nodes in the graph.
type WorkflowVariantMutation struct {
	config
	op            Op
	typ           string
	id            *int
	created_at    *time.Time
	updated_at    *time.Time
	workflow_key  *string
	request_type  *string
	name          *string
	category      *string
	scope_kind    *workflowvariant.ScopeKind
	scope_value   *string
	enabled       *bool
	is_default    *bool
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*WorkflowVariant, error)
	predicates    []predicate.WorkflowVariant
}

var _ ent.Mutation = (*WorkflowVariantMutation)(nil)

// workflowvariantOption allows management of the mutation configuration using functional options.
type workflowvariantOption func(*WorkflowVariantMutation)

// newWorkflowVariantMutation creates new mutation for the WorkflowVariant entity.
func newWorkflowVariantMutation(c config, op Op, opts ...workflowvariantOption) *WorkflowVariantMutation {
	m := &WorkflowVariantMutation{
		config:        c,
		op:            op,
		typ:           TypeWorkflowVariant,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorkflowVariantID sets the ID field of the mutation.
func withWorkflowVariantID(id int) workflowvariantOption {
	return func(m *WorkflowVariantMutation) {
		var (
			err   error
			once  sync.Once
			value *WorkflowVariant
		)
		m.oldValue = func(ctx context.Context) (*WorkflowVariant, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WorkflowVariant.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorkflowVariant sets the old WorkflowVariant of the mutation.
func withWorkflowVariant(node *WorkflowVariant) workflowvariantOption {
	return func(m *WorkflowVariantMutation) {
		m.oldValue = func(context.Context) (*WorkflowVariant, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorkflowVariantMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorkflowVariantMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorkflowVariantMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorkflowVariantMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WorkflowVariant.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *WorkflowVariantMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WorkflowVariantMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the WorkflowVariant entity.
// If the WorkflowVariant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowVariantMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WorkflowVariantMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *WorkflowVariantMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *WorkflowVariantMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the WorkflowVariant entity.
// If the WorkflowVariant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowVariantMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *WorkflowVariantMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetWorkflowKey sets the "workflow_key" field.
func (m *WorkflowVariantMutation) SetWorkflowKey(s string) {
	m.workflow_key = &s
}

// WorkflowKey returns the value of the "workflow_key" field in the mutation.
func (m *WorkflowVariantMutation) WorkflowKey() (r string, exists bool) {
	v := m.workflow_key
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkflowKey returns the old "workflow_key" field's value of the WorkflowVariant entity.
// If the WorkflowVariant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowVariantMutation) OldWorkflowKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkflowKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkflowKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkflowKey: %w", err)
	}
	return oldValue.WorkflowKey, nil
}

// ResetWorkflowKey resets all changes to the "workflow_key" field.
func (m *WorkflowVariantMutation) ResetWorkflowKey() {
	m.workflow_key = nil
}

// SetRequestType sets the "request_type" field.
func (m *WorkflowVariantMutation) SetRequestType(s string) {
	m.request_type = &s
}

// RequestType returns the value of the "request_type" field in the mutation.
func (m *WorkflowVariantMutation) RequestType() (r string, exists bool) {
	v := m.request_type
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestType returns the old "request_type" field's value of the WorkflowVariant entity.
// If the WorkflowVariant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowVariantMutation) OldRequestType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestType: %w", err)
	}
	return oldValue.RequestType, nil
}

// ResetRequestType resets all changes to the "request_type" field.
func (m *WorkflowVariantMutation) ResetRequestType() {
	m.request_type = nil
}

// SetName sets the "name" field.
func (m *WorkflowVariantMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *WorkflowVariantMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the WorkflowVariant entity.
// If the WorkflowVariant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowVariantMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *WorkflowVariantMutation) ResetName() {
	m.name = nil
}

// SetCategory sets the "category" field.
func (m *WorkflowVariantMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *WorkflowVariantMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the WorkflowVariant entity.
// If the WorkflowVariant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowVariantMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *WorkflowVariantMutation) ResetCategory() {
	m.category = nil
}

// SetScopeKind sets the "scope_kind" field.
func (m *WorkflowVariantMutation) SetScopeKind(wk workflowvariant.ScopeKind) {
	m.scope_kind = &wk
}

// ScopeKind returns the value of the "scope_kind" field in the mutation.
func (m *WorkflowVariantMutation) ScopeKind() (r workflowvariant.ScopeKind, exists bool) {
	v := m.scope_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldScopeKind returns the old "scope_kind" field's value of the WorkflowVariant entity.
// If the WorkflowVariant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowVariantMutation) OldScopeKind(ctx context.Context) (v workflowvariant.ScopeKind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScopeKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScopeKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScopeKind: %w", err)
	}
	return oldValue.ScopeKind, nil
}

// ResetScopeKind resets all changes to the "scope_kind" field.
func (m *WorkflowVariantMutation) ResetScopeKind() {
	m.scope_kind = nil
}

// SetScopeValue sets the "scope_value" field.
func (m *WorkflowVariantMutation) SetScopeValue(s string) {
	m.scope_value = &s
}

// ScopeValue returns the value of the "scope_value" field in the mutation.
func (m *WorkflowVariantMutation) ScopeValue() (r string, exists bool) {
	v := m.scope_value
	if v == nil {
		return
	}
	return *v, true
}

// OldScopeValue returns the old "scope_value" field's value of the WorkflowVariant entity.
// If the WorkflowVariant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowVariantMutation) OldScopeValue(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScopeValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScopeValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScopeValue: %w", err)
	}
	return oldValue.ScopeValue, nil
}

// ClearScopeValue clears the value of the "scope_value" field.
func (m *WorkflowVariantMutation) ClearScopeValue() {
	m.scope_value = nil
	m.clearedFields[workflowvariant.FieldScopeValue] = struct{}{}
}

// ScopeValueCleared returns if the "scope_value" field was cleared in this mutation.
func (m *WorkflowVariantMutation) ScopeValueCleared() bool {
	_, ok := m.clearedFields[workflowvariant.FieldScopeValue]
	return ok
}

// ResetScopeValue resets all changes to the "scope_value" field.
func (m *WorkflowVariantMutation) ResetScopeValue() {
	m.scope_value = nil
	delete(m.clearedFields, workflowvariant.FieldScopeValue)
}

// SetEnabled sets the "enabled" field.
func (m *WorkflowVariantMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *WorkflowVariantMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the WorkflowVariant entity.
// If the WorkflowVariant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowVariantMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *WorkflowVariantMutation) ResetEnabled() {
	m.enabled = nil
}

// SetIsDefault sets the "is_default" field.
func (m *WorkflowVariantMutation) SetIsDefault(b bool) {
	m.is_default = &b
}

// IsDefault returns the value of the "is_default" field in the mutation.
func (m *WorkflowVariantMutation) IsDefault() (r bool, exists bool) {
	v := m.is_default
	if v == nil {
		return
	}
	return *v, true
}

// OldIsDefault returns the old "is_default" field's value of the WorkflowVariant entity.
// If the WorkflowVariant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowVariantMutation) OldIsDefault(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsDefault is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsDefault requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsDefault: %w", err)
	}
	return oldValue.IsDefault, nil
}

// ResetIsDefault resets all changes to the "is_default" field.
func (m *WorkflowVariantMutation) ResetIsDefault() {
	m.is_default = nil
}

// Where appends a list predicates to the WorkflowVariantMutation builder.
func (m *WorkflowVariantMutation) Where(ps ...predicate.WorkflowVariant) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorkflowVariantMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorkflowVariantMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WorkflowVariant, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorkflowVariantMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorkflowVariantMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WorkflowVariant).
func (m *WorkflowVariantMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorkflowVariantMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.created_at != nil {
		fields = append(fields, workflowvariant.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, workflowvariant.FieldUpdatedAt)
	}
	if m.workflow_key != nil {
		fields = append(fields, workflowvariant.FieldWorkflowKey)
	}
	if m.request_type != nil {
		fields = append(fields, workflowvariant.FieldRequestType)
	}
	if m.name != nil {
		fields = append(fields, workflowvariant.FieldName)
	}
	if m.category != nil {
		fields = append(fields, workflowvariant.FieldCategory)
	}
	if m.scope_kind != nil {
		fields = append(fields, workflowvariant.FieldScopeKind)
	}
	if m.scope_value != nil {
		fields = append(fields, workflowvariant.FieldScopeValue)
	}
	if m.enabled != nil {
		fields = append(fields, workflowvariant.FieldEnabled)
	}
	if m.is_default != nil {
		fields = append(fields, workflowvariant.FieldIsDefault)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorkflowVariantMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case workflowvariant.FieldCreatedAt:
		return m.CreatedAt()
	case workflowvariant.FieldUpdatedAt:
		return m.UpdatedAt()
	case workflowvariant.FieldWorkflowKey:
		return m.WorkflowKey()
	case workflowvariant.FieldRequestType:
		return m.RequestType()
	case workflowvariant.FieldName:
		return m.Name()
	case workflowvariant.FieldCategory:
		return m.Category()
	case workflowvariant.FieldScopeKind:
		return m.ScopeKind()
	case workflowvariant.FieldScopeValue:
		return m.ScopeValue()
	case workflowvariant.FieldEnabled:
		return m.Enabled()
	case workflowvariant.FieldIsDefault:
		return m.IsDefault()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorkflowVariantMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case workflowvariant.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case workflowvariant.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case workflowvariant.FieldWorkflowKey:
		return m.OldWorkflowKey(ctx)
	case workflowvariant.FieldRequestType:
		return m.OldRequestType(ctx)
	case workflowvariant.FieldName:
		return m.OldName(ctx)
	case workflowvariant.FieldCategory:
		return m.OldCategory(ctx)
	case workflowvariant.FieldScopeKind:
		return m.OldScopeKind(ctx)
	case workflowvariant.FieldScopeValue:
		return m.OldScopeValue(ctx)
	case workflowvariant.FieldEnabled:
		return m.OldEnabled(ctx)
	case workflowvariant.FieldIsDefault:
		return m.OldIsDefault(ctx)
	}
	return nil, fmt.Errorf("unknown WorkflowVariant field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowVariantMutation) SetField(name string, value ent.Value) error {
	switch name {
	case workflowvariant.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case workflowvariant.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case workflowvariant.FieldWorkflowKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkflowKey(v)
		return nil
	case workflowvariant.FieldRequestType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestType(v)
		return nil
	case workflowvariant.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case workflowvariant.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case workflowvariant.FieldScopeKind:
		v, ok := value.(workflowvariant.ScopeKind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScopeKind(v)
		return nil
	case workflowvariant.FieldScopeValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScopeValue(v)
		return nil
	case workflowvariant.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case workflowvariant.FieldIsDefault:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsDefault(v)
		return nil
	}
	return fmt.Errorf("unknown WorkflowVariant field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorkflowVariantMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorkflowVariantMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowVariantMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown WorkflowVariant numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorkflowVariantMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(workflowvariant.FieldScopeValue) {
		fields = append(fields, workflowvariant.FieldScopeValue)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorkflowVariantMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorkflowVariantMutation) ClearField(name string) error {
	switch name {
	case workflowvariant.FieldScopeValue:
		m.ClearScopeValue()
		return nil
	}
	return fmt.Errorf("unknown WorkflowVariant nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorkflowVariantMutation) ResetField(name string) error {
	switch name {
	case workflowvariant.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case workflowvariant.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case workflowvariant.FieldWorkflowKey:
		m.ResetWorkflowKey()
		return nil
	case workflowvariant.FieldRequestType:
		m.ResetRequestType()
		return nil
	case workflowvariant.FieldName:
		m.ResetName()
		return nil
	case workflowvariant.FieldCategory:
		m.ResetCategory()
		return nil
	case workflowvariant.FieldScopeKind:
		m.ResetScopeKind()
		return nil
	case workflowvariant.FieldScopeValue:
		m.ResetScopeValue()
		return nil
	case workflowvariant.FieldEnabled:
		m.ResetEnabled()
		return nil
	case workflowvariant.FieldIsDefault:
		m.ResetIsDefault()
		return nil
	}
	return fmt.Errorf("unknown WorkflowVariant field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorkflowVariantMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorkflowVariantMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorkflowVariantMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorkflowVariantMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorkflowVariantMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorkflowVariantMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorkflowVariantMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown WorkflowVariant unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorkflowVariantMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown WorkflowVariant edge %s", name)
}

// WorkflowVariantStepMutation represents an operation that mutates the WorkflowVariantStep nodes in the graph.
type WorkflowVariantStepMutation struct {
	config
	op              Op
	typ             string
	id              *int
	created_at      *time.Time
	workflow_key    *string
	step_order      *int
	addstep_order   *int
	step_key        *string
	assignee_kind   *string
	assignee_value  *string
	condition_kind  *string
	condition_value *string
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*WorkflowVariantStep, error)
	predicates      []predicate.WorkflowVariantStep
}

var _ ent.Mutation = (*WorkflowVariantStepMutation)(nil)

// workflowvariantstepOption allows management of the mutation configuration using functional options.
type workflowvariantstepOption func(*WorkflowVariantStepMutation)

// newWorkflowVariantStepMutation creates new mutation for the WorkflowVariantStep entity.
func newWorkflowVariantStepMutation(c config, op Op, opts ...workflowvariantstepOption) *WorkflowVariantStepMutation {
	m := &WorkflowVariantStepMutation{
		config:        c,
		op:            op,
		typ:           TypeWorkflowVariantStep,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorkflowVariantStepID sets the ID field of the mutation.
func withWorkflowVariantStepID(id int) workflowvariantstepOption {
	return func(m *WorkflowVariantStepMutation) {
		var (
			err   error
			once  sync.Once
			value *WorkflowVariantStep
		)
		m.oldValue = func(ctx context.Context) (*WorkflowVariantStep, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WorkflowVariantStep.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorkflowVariantStep sets the old WorkflowVariantStep of the mutation.
func withWorkflowVariantStep(node *WorkflowVariantStep) workflowvariantstepOption {
	return func(m *WorkflowVariantStepMutation) {
		m.oldValue = func(context.Context) (*WorkflowVariantStep, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorkflowVariantStepMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorkflowVariantStepMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorkflowVariantStepMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorkflowVariantStepMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WorkflowVariantStep.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *WorkflowVariantStepMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WorkflowVariantStepMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the WorkflowVariantStep entity.
// If the WorkflowVariantStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowVariantStepMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WorkflowVariantStepMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetWorkflowKey sets the "workflow_key" field.
func (m *WorkflowVariantStepMutation) SetWorkflowKey(s string) {
	m.workflow_key = &s
}

// WorkflowKey returns the value of the "workflow_key" field in the mutation.
func (m *WorkflowVariantStepMutation) WorkflowKey() (r string, exists bool) {
	v := m.workflow_key
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkflowKey returns the old "workflow_key" field's value of the WorkflowVariantStep entity.
// If the WorkflowVariantStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowVariantStepMutation) OldWorkflowKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkflowKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkflowKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkflowKey: %w", err)
	}
	return oldValue.WorkflowKey, nil
}

// ResetWorkflowKey resets all changes to the "workflow_key" field.
func (m *WorkflowVariantStepMutation) ResetWorkflowKey() {
	m.workflow_key = nil
}

// SetStepOrder sets the "step_order" field.
func (m *WorkflowVariantStepMutation) SetStepOrder(i int) {
	m.step_order = &i
	m.addstep_order = nil
}

// StepOrder returns the value of the "step_order" field in the mutation.
func (m *WorkflowVariantStepMutation) StepOrder() (r int, exists bool) {
	v := m.step_order
	if v == nil {
		return
	}
	return *v, true
}

// OldStepOrder returns the old "step_order" field's value of the WorkflowVariantStep entity.
// If the WorkflowVariantStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowVariantStepMutation) OldStepOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepOrder: %w", err)
	}
	return oldValue.StepOrder, nil
}

// AddStepOrder adds i to the "step_order" field.
func (m *WorkflowVariantStepMutation) AddStepOrder(i int) {
	if m.addstep_order != nil {
		*m.addstep_order += i
	} else {
		m.addstep_order = &i
	}
}

// AddedStepOrder returns the value that was added to the "step_order" field in this mutation.
func (m *WorkflowVariantStepMutation) AddedStepOrder() (r int, exists bool) {
	v := m.addstep_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetStepOrder resets all changes to the "step_order" field.
func (m *WorkflowVariantStepMutation) ResetStepOrder() {
	m.step_order = nil
	m.addstep_order = nil
}

// SetStepKey sets the "step_key" field.
func (m *WorkflowVariantStepMutation) SetStepKey(s string) {
	m.step_key = &s
}

// StepKey returns the value of the "step_key" field in the mutation.
func (m *WorkflowVariantStepMutation) StepKey() (r string, exists bool) {
	v := m.step_key
	if v == nil {
		return
	}
	return *v, true
}

// OldStepKey returns the old "step_key" field's value of the WorkflowVariantStep entity.
// If the WorkflowVariantStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowVariantStepMutation) OldStepKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepKey: %w", err)
	}
	return oldValue.StepKey, nil
}

// ResetStepKey resets all changes to the "step_key" field.
func (m *WorkflowVariantStepMutation) ResetStepKey() {
	m.step_key = nil
}

// SetAssigneeKind sets the "assignee_kind" field.
func (m *WorkflowVariantStepMutation) SetAssigneeKind(s string) {
	m.assignee_kind = &s
}

// AssigneeKind returns the value of the "assignee_kind" field in the mutation.
func (m *WorkflowVariantStepMutation) AssigneeKind() (r string, exists bool) {
	v := m.assignee_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldAssigneeKind returns the old "assignee_kind" field's value of the WorkflowVariantStep entity.
// If the WorkflowVariantStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowVariantStepMutation) OldAssigneeKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssigneeKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssigneeKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssigneeKind: %w", err)
	}
	return oldValue.AssigneeKind, nil
}

// ResetAssigneeKind resets all changes to the "assignee_kind" field.
func (m *WorkflowVariantStepMutation) ResetAssigneeKind() {
	m.assignee_kind = nil
}

// SetAssigneeValue sets the "assignee_value" field.
func (m *WorkflowVariantStepMutation) SetAssigneeValue(s string) {
	m.assignee_value = &s
}

// AssigneeValue returns the value of the "assignee_value" field in the mutation.
func (m *WorkflowVariantStepMutation) AssigneeValue() (r string, exists bool) {
	v := m.assignee_value
	if v == nil {
		return
	}
	return *v, true
}

// OldAssigneeValue returns the old "assignee_value" field's value of the WorkflowVariantStep entity.
// If the WorkflowVariantStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowVariantStepMutation) OldAssigneeValue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssigneeValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssigneeValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssigneeValue: %w", err)
	}
	return oldValue.AssigneeValue, nil
}

// ClearAssigneeValue clears the value of the "assignee_value" field.
func (m *WorkflowVariantStepMutation) ClearAssigneeValue() {
	m.assignee_value = nil
	m.clearedFields[workflowvariantstep.FieldAssigneeValue] = struct{}{}
}

// AssigneeValueCleared returns if the "assignee_value" field was cleared in this mutation.
func (m *WorkflowVariantStepMutation) AssigneeValueCleared() bool {
	_, ok := m.clearedFields[workflowvariantstep.FieldAssigneeValue]
	return ok
}

// ResetAssigneeValue resets all changes to the "assignee_value" field.
func (m *WorkflowVariantStepMutation) ResetAssigneeValue() {
	m.assignee_value = nil
	delete(m.clearedFields, workflowvariantstep.FieldAssigneeValue)
}

// SetConditionKind sets the "condition_kind" field.
func (m *WorkflowVariantStepMutation) SetConditionKind(s string) {
	m.condition_kind = &s
}

// ConditionKind returns the value of the "condition_kind" field in the mutation.
func (m *WorkflowVariantStepMutation) ConditionKind() (r string, exists bool) {
	v := m.condition_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldConditionKind returns the old "condition_kind" field's value of the WorkflowVariantStep entity.
// If the WorkflowVariantStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowVariantStepMutation) OldConditionKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConditionKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConditionKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConditionKind: %w", err)
	}
	return oldValue.ConditionKind, nil
}

// ClearConditionKind clears the value of the "condition_kind" field.
func (m *WorkflowVariantStepMutation) ClearConditionKind() {
	m.condition_kind = nil
	m.clearedFields[workflowvariantstep.FieldConditionKind] = struct{}{}
}

// ConditionKindCleared returns if the "condition_kind" field was cleared in this mutation.
func (m *WorkflowVariantStepMutation) ConditionKindCleared() bool {
	_, ok := m.clearedFields[workflowvariantstep.FieldConditionKind]
	return ok
}

// ResetConditionKind resets all changes to the "condition_kind" field.
func (m *WorkflowVariantStepMutation) ResetConditionKind() {
	m.condition_kind = nil
	delete(m.clearedFields, workflowvariantstep.FieldConditionKind)
}

// SetConditionValue sets the "condition_value" field.
func (m *WorkflowVariantStepMutation) SetConditionValue(s string) {
	m.condition_value = &s
}

// ConditionValue returns the value of the "condition_value" field in the mutation.
func (m *WorkflowVariantStepMutation) ConditionValue() (r string, exists bool) {
	v := m.condition_value
	if v == nil {
		return
	}
	return *v, true
}

// OldConditionValue returns the old "condition_value" field's value of the WorkflowVariantStep entity.
// If the WorkflowVariantStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowVariantStepMutation) OldConditionValue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConditionValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConditionValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConditionValue: %w", err)
	}
	return oldValue.ConditionValue, nil
}

// ClearConditionValue clears the value of the "condition_value" field.
func (m *WorkflowVariantStepMutation) ClearConditionValue() {
	m.condition_value = nil
	m.clearedFields[workflowvariantstep.FieldConditionValue] = struct{}{}
}

// ConditionValueCleared returns if the "condition_value" field was cleared in this mutation.
func (m *WorkflowVariantStepMutation) ConditionValueCleared() bool {
	_, ok := m.clearedFields[workflowvariantstep.FieldConditionValue]
	return ok
}

// ResetConditionValue resets all changes to the "condition_value" field.
func (m *WorkflowVariantStepMutation) ResetConditionValue() {
	m.condition_value = nil
	delete(m.clearedFields, workflowvariantstep.FieldConditionValue)
}

// Where appends a list predicates to the WorkflowVariantStepMutation builder.
func (m *WorkflowVariantStepMutation) Where(ps ...predicate.WorkflowVariantStep) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorkflowVariantStepMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorkflowVariantStepMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WorkflowVariantStep, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorkflowVariantStepMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorkflowVariantStepMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WorkflowVariantStep).
func (m *WorkflowVariantStepMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorkflowVariantStepMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.created_at != nil {
		fields = append(fields, workflowvariantstep.FieldCreatedAt)
	}
	if m.workflow_key != nil {
		fields = append(fields, workflowvariantstep.FieldWorkflowKey)
	}
	if m.step_order != nil {
		fields = append(fields, workflowvariantstep.FieldStepOrder)
	}
	if m.step_key != nil {
		fields = append(fields, workflowvariantstep.FieldStepKey)
	}
	if m.assignee_kind != nil {
		fields = append(fields, workflowvariantstep.FieldAssigneeKind)
	}
	if m.assignee_value != nil {
		fields = append(fields, workflowvariantstep.FieldAssigneeValue)
	}
	if m.condition_kind != nil {
		fields = append(fields, workflowvariantstep.FieldConditionKind)
	}
	if m.condition_value != nil {
		fields = append(fields, workflowvariantstep.FieldConditionValue)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorkflowVariantStepMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case workflowvariantstep.FieldCreatedAt:
		return m.CreatedAt()
	case workflowvariantstep.FieldWorkflowKey:
		return m.WorkflowKey()
	case workflowvariantstep.FieldStepOrder:
		return m.StepOrder()
	case workflowvariantstep.FieldStepKey:
		return m.StepKey()
	case workflowvariantstep.FieldAssigneeKind:
		return m.AssigneeKind()
	case workflowvariantstep.FieldAssigneeValue:
		return m.AssigneeValue()
	case workflowvariantstep.FieldConditionKind:
		return m.ConditionKind()
	case workflowvariantstep.FieldConditionValue:
		return m.ConditionValue()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorkflowVariantStepMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case workflowvariantstep.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case workflowvariantstep.FieldWorkflowKey:
		return m.OldWorkflowKey(ctx)
	case workflowvariantstep.FieldStepOrder:
		return m.OldStepOrder(ctx)
	case workflowvariantstep.FieldStepKey:
		return m.OldStepKey(ctx)
	case workflowvariantstep.FieldAssigneeKind:
		return m.OldAssigneeKind(ctx)
	case workflowvariantstep.FieldAssigneeValue:
		return m.OldAssigneeValue(ctx)
	case workflowvariantstep.FieldConditionKind:
		return m.OldConditionKind(ctx)
	case workflowvariantstep.FieldConditionValue:
		return m.OldConditionValue(ctx)
	}
	return nil, fmt.Errorf("unknown WorkflowVariantStep field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowVariantStepMutation) SetField(name string, value ent.Value) error {
	switch name {
	case workflowvariantstep.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case workflowvariantstep.FieldWorkflowKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkflowKey(v)
		return nil
	case workflowvariantstep.FieldStepOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepOrder(v)
		return nil
	case workflowvariantstep.FieldStepKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepKey(v)
		return nil
	case workflowvariantstep.FieldAssigneeKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssigneeKind(v)
		return nil
	case workflowvariantstep.FieldAssigneeValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssigneeValue(v)
		return nil
	case workflowvariantstep.FieldConditionKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConditionKind(v)
		return nil
	case workflowvariantstep.FieldConditionValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConditionValue(v)
		return nil
	}
	return fmt.Errorf("unknown WorkflowVariantStep field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorkflowVariantStepMutation) AddedFields() []string {
	var fields []string
	if m.addstep_order != nil {
		fields = append(fields, workflowvariantstep.FieldStepOrder)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorkflowVariantStepMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case workflowvariantstep.FieldStepOrder:
		return m.AddedStepOrder()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowVariantStepMutation) AddField(name string, value ent.Value) error {
	switch name {
	case workflowvariantstep.FieldStepOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStepOrder(v)
		return nil
	}
	return fmt.Errorf("unknown WorkflowVariantStep numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorkflowVariantStepMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(workflowvariantstep.FieldAssigneeValue) {
		fields = append(fields, workflowvariantstep.FieldAssigneeValue)
	}
	if m.FieldCleared(workflowvariantstep.FieldConditionKind) {
		fields = append(fields, workflowvariantstep.FieldConditionKind)
	}
	if m.FieldCleared(workflowvariantstep.FieldConditionValue) {
		fields = append(fields, workflowvariantstep.FieldConditionValue)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorkflowVariantStepMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorkflowVariantStepMutation) ClearField(name string) error {
	switch name {
	case workflowvariantstep.FieldAssigneeValue:
		m.ClearAssigneeValue()
		return nil
	case workflowvariantstep.FieldConditionKind:
		m.ClearConditionKind()
		return nil
	case workflowvariantstep.FieldConditionValue:
		m.ClearConditionValue()
		return nil
	}
	return fmt.Errorf("unknown WorkflowVariantStep nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorkflowVariantStepMutation) ResetField(name string) error {
	switch name {
	case workflowvariantstep.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case workflowvariantstep.FieldWorkflowKey:
		m.ResetWorkflowKey()
		return nil
	case workflowvariantstep.FieldStepOrder:
		m.ResetStepOrder()
		return nil
	case workflowvariantstep.FieldStepKey:
		m.ResetStepKey()
		return nil
	case workflowvariantstep.FieldAssigneeKind:
		m.ResetAssigneeKind()
		return nil
	case workflowvariantstep.FieldAssigneeValue:
		m.ResetAssigneeValue()
		return nil
	case workflowvariantstep.FieldConditionKind:
		m.ResetConditionKind()
		return nil
	case workflowvariantstep.FieldConditionValue:
		m.ResetConditionValue()
		return nil
	}
	return fmt.Errorf("unknown WorkflowVariantStep field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorkflowVariantStepMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorkflowVariantStepMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorkflowVariantStepMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorkflowVariantStepMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorkflowVariantStepMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorkflowVariantStepMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorkflowVariantStepMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown WorkflowVariantStep unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorkflowVariantStepMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown WorkflowVariantStep edge %s", name)
}
