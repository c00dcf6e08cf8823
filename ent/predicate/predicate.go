// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Attachment is the predicate function for attachment builders.
type Attachment func(*sql.Selector)

// Delegation is the predicate function for delegation builders.
type Delegation func(*sql.Selector)

// Department is the predicate function for department builders.
type Department func(*sql.Selector)

// Notification is the predicate function for notification builders.
type Notification func(*sql.Selector)

// Request is the predicate function for request builders.
type Request func(*sql.Selector)

// RequestEvent is the predicate function for requestevent builders.
type RequestEvent func(*sql.Selector)

// RequestWatcher is the predicate function for requestwatcher builders.
type RequestWatcher func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// WorkflowVariant is the predicate function for workflowvariant builders.
type WorkflowVariant func(*sql.Selector)

// WorkflowVariantStep is the predicate function for workflowvariantstep builders.
type WorkflowVariantStep func(*sql.Selector)
