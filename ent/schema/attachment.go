package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Attachment records a file uploaded against a request. The bytes live on
// disk under storage_path; the row carries the sanitized display name.
type Attachment struct {
	ent.Schema
}

// Mixin of the Attachment.
func (Attachment) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{},
	}
}

// Fields of the Attachment.
func (Attachment) Fields() []ent.Field {
	return []ent.Field{
		field.Int("request_id"),
		field.Int("uploaded_by"),
		field.String("filename").
			NotEmpty(),
		field.String("content_type").
			Default("application/octet-stream"),
		field.Int64("size_bytes"),
		field.String("storage_path").
			NotEmpty().
			Unique(),
	}
}

// Indexes of the Attachment.
func (Attachment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("request_id"),
	}
}
