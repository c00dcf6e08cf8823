package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RequestWatcher subscribes a user to a request's lifecycle notifications.
// "cc" watchers are added by the request owner, "follow" watchers add
// themselves.
type RequestWatcher struct {
	ent.Schema
}

// Mixin of the RequestWatcher.
func (RequestWatcher) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{},
	}
}

// Fields of the RequestWatcher.
func (RequestWatcher) Fields() []ent.Field {
	return []ent.Field{
		field.Int("request_id"),
		field.Int("user_id"),
		field.Enum("kind").
			Values("cc", "follow").
			Default("follow"),
	}
}

// Indexes of the RequestWatcher.
func (RequestWatcher) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("request_id", "user_id", "kind").
			Unique(),
		index.Fields("user_id"),
	}
}
