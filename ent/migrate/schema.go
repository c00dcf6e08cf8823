// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AttachmentsColumns holds the columns for the "attachments" table.
	AttachmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "request_id", Type: field.TypeInt},
		{Name: "uploaded_by", Type: field.TypeInt},
		{Name: "filename", Type: field.TypeString},
		{Name: "content_type", Type: field.TypeString, Default: "application/octet-stream"},
		{Name: "size_bytes", Type: field.TypeInt64},
		{Name: "storage_path", Type: field.TypeString, Unique: true},
	}
	// AttachmentsTable holds the schema information for the "attachments" table.
	AttachmentsTable = &schema.Table{
		Name:       "attachments",
		Columns:    AttachmentsColumns,
		PrimaryKey: []*schema.Column{AttachmentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attachment_request_id",
				Unique:  false,
				Columns: []*schema.Column{AttachmentsColumns[2]},
			},
		},
	}
	// DelegationsColumns holds the columns for the "delegations" table.
	DelegationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "delegator_user_id", Type: field.TypeInt, Unique: true},
		{Name: "delegate_user_id", Type: field.TypeInt, Nullable: true},
		{Name: "active", Type: field.TypeBool, Default: false},
		{Name: "revoked_at", Type: field.TypeTime, Nullable: true},
	}
	// DelegationsTable holds the schema information for the "delegations" table.
	DelegationsTable = &schema.Table{
		Name:       "delegations",
		Columns:    DelegationsColumns,
		PrimaryKey: []*schema.Column{DelegationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "delegation_delegate_user_id_active",
				Unique:  false,
				Columns: []*schema.Column{DelegationsColumns[4], DelegationsColumns[5]},
			},
		},
	}
	// DepartmentsColumns holds the columns for the "departments" table.
	DepartmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString},
		{Name: "code", Type: field.TypeString, Unique: true},
		{Name: "parent_id", Type: field.TypeInt, Nullable: true},
		{Name: "lead_user_id", Type: field.TypeInt, Nullable: true},
	}
	// DepartmentsTable holds the schema information for the "departments" table.
	DepartmentsTable = &schema.Table{
		Name:       "departments",
		Columns:    DepartmentsColumns,
		PrimaryKey: []*schema.Column{DepartmentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "department_parent_id",
				Unique:  false,
				Columns: []*schema.Column{DepartmentsColumns[5]},
			},
		},
	}
	// NotificationsColumns holds the columns for the "notifications" table.
	NotificationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeInt},
		{Name: "request_id", Type: field.TypeInt, Nullable: true},
		{Name: "event_type", Type: field.TypeString},
		{Name: "actor_user_id", Type: field.TypeInt, Nullable: true},
		{Name: "message", Type: field.TypeString, Nullable: true},
		{Name: "read_at", Type: field.TypeTime, Nullable: true},
	}
	// NotificationsTable holds the schema information for the "notifications" table.
	NotificationsTable = &schema.Table{
		Name:       "notifications",
		Columns:    NotificationsColumns,
		PrimaryKey: []*schema.Column{NotificationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "notification_user_id_read_at",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[2], NotificationsColumns[7]},
			},
			{
				Name:    "notification_request_id",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[3]},
			},
		},
	}
	// RequestsColumns holds the columns for the "requests" table.
	RequestsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeInt},
		{Name: "request_type", Type: field.TypeString, Default: "generic"},
		{Name: "workflow_key", Type: field.TypeString, Nullable: true},
		{Name: "title", Type: field.TypeString},
		{Name: "body", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "changes_requested", "approved", "rejected", "withdrawn", "voided"}, Default: "pending"},
		{Name: "decided_by", Type: field.TypeInt, Nullable: true},
		{Name: "decided_at", Type: field.TypeTime, Nullable: true},
	}
	// RequestsTable holds the schema information for the "requests" table.
	RequestsTable = &schema.Table{
		Name:       "requests",
		Columns:    RequestsColumns,
		PrimaryKey: []*schema.Column{RequestsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "request_user_id",
				Unique:  false,
				Columns: []*schema.Column{RequestsColumns[3]},
			},
			{
				Name:    "request_status",
				Unique:  false,
				Columns: []*schema.Column{RequestsColumns[9]},
			},
			{
				Name:    "request_request_type",
				Unique:  false,
				Columns: []*schema.Column{RequestsColumns[4]},
			},
		},
	}
	// RequestEventsColumns holds the columns for the "request_events" table.
	RequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "request_id", Type: field.TypeInt},
		{Name: "event_type", Type: field.TypeString},
		{Name: "actor_user_id", Type: field.TypeInt, Nullable: true},
		{Name: "message", Type: field.TypeString, Nullable: true},
	}
	// RequestEventsTable holds the schema information for the "request_events" table.
	RequestEventsTable = &schema.Table{
		Name:       "request_events",
		Columns:    RequestEventsColumns,
		PrimaryKey: []*schema.Column{RequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "requestevent_request_id",
				Unique:  false,
				Columns: []*schema.Column{RequestEventsColumns[2]},
			},
			{
				Name:    "requestevent_event_type",
				Unique:  false,
				Columns: []*schema.Column{RequestEventsColumns[3]},
			},
		},
	}
	// RequestWatchersColumns holds the columns for the "request_watchers" table.
	RequestWatchersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "request_id", Type: field.TypeInt},
		{Name: "user_id", Type: field.TypeInt},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"cc", "follow"}, Default: "follow"},
	}
	// RequestWatchersTable holds the schema information for the "request_watchers" table.
	RequestWatchersTable = &schema.Table{
		Name:       "request_watchers",
		Columns:    RequestWatchersColumns,
		PrimaryKey: []*schema.Column{RequestWatchersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "requestwatcher_request_id_user_id_kind",
				Unique:  true,
				Columns: []*schema.Column{RequestWatchersColumns[2], RequestWatchersColumns[3], RequestWatchersColumns[4]},
			},
			{
				Name:    "requestwatcher_user_id",
				Unique:  false,
				Columns: []*schema.Column{RequestWatchersColumns[3]},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "request_id", Type: field.TypeInt},
		{Name: "step_order", Type: field.TypeInt, Nullable: true},
		{Name: "step_key", Type: field.TypeString},
		{Name: "assignee_user_id", Type: field.TypeInt, Nullable: true},
		{Name: "assignee_role", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "approved", "rejected", "returned", "canceled"}, Default: "pending"},
		{Name: "decided_by", Type: field.TypeInt, Nullable: true},
		{Name: "decided_at", Type: field.TypeTime, Nullable: true},
		{Name: "comment", Type: field.TypeString, Nullable: true},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "task_request_id_step_order",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[2], TasksColumns[3]},
			},
			{
				Name:    "task_status_assignee_user_id",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[7], TasksColumns[5]},
			},
			{
				Name:    "task_status_assignee_role",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[7], TasksColumns[6]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "username", Type: field.TypeString, Size: 255},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "role", Type: field.TypeString, Default: "user"},
		{Name: "dept", Type: field.TypeString, Nullable: true},
		{Name: "manager_id", Type: field.TypeInt, Nullable: true},
		{Name: "dept_id", Type: field.TypeInt, Nullable: true},
		{Name: "position", Type: field.TypeString, Nullable: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_username",
				Unique:  true,
				Columns: []*schema.Column{UsersColumns[3]},
			},
			{
				Name:    "user_role",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[5]},
			},
		},
	}
	// WorkflowVariantsColumns holds the columns for the "workflow_variants" table.
	WorkflowVariantsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "workflow_key", Type: field.TypeString, Unique: true},
		{Name: "request_type", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "category", Type: field.TypeString, Default: "general"},
		{Name: "scope_kind", Type: field.TypeEnum, Enums: []string{"global", "dept"}, Default: "global"},
		{Name: "scope_value", Type: field.TypeString, Nullable: true},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "is_default", Type: field.TypeBool, Default: false},
	}
	// WorkflowVariantsTable holds the schema information for the "workflow_variants" table.
	WorkflowVariantsTable = &schema.Table{
		Name:       "workflow_variants",
		Columns:    WorkflowVariantsColumns,
		PrimaryKey: []*schema.Column{WorkflowVariantsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "workflowvariant_request_type",
				Unique:  false,
				Columns: []*schema.Column{WorkflowVariantsColumns[4]},
			},
			{
				Name:    "workflowvariant_request_type_scope_kind",
				Unique:  false,
				Columns: []*schema.Column{WorkflowVariantsColumns[4], WorkflowVariantsColumns[7]},
			},
			{
				Name:    "workflowvariant_category",
				Unique:  false,
				Columns: []*schema.Column{WorkflowVariantsColumns[6]},
			},
		},
	}
	// WorkflowVariantStepsColumns holds the columns for the "workflow_variant_steps" table.
	WorkflowVariantStepsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "workflow_key", Type: field.TypeString},
		{Name: "step_order", Type: field.TypeInt},
		{Name: "step_key", Type: field.TypeString},
		{Name: "assignee_kind", Type: field.TypeString},
		{Name: "assignee_value", Type: field.TypeString, Nullable: true},
		{Name: "condition_kind", Type: field.TypeString, Nullable: true},
		{Name: "condition_value", Type: field.TypeString, Nullable: true},
	}
	// WorkflowVariantStepsTable holds the schema information for the "workflow_variant_steps" table.
	WorkflowVariantStepsTable = &schema.Table{
		Name:       "workflow_variant_steps",
		Columns:    WorkflowVariantStepsColumns,
		PrimaryKey: []*schema.Column{WorkflowVariantStepsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "workflowvariantstep_workflow_key_step_order",
				Unique:  true,
				Columns: []*schema.Column{WorkflowVariantStepsColumns[2], WorkflowVariantStepsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttachmentsTable,
		DelegationsTable,
		DepartmentsTable,
		NotificationsTable,
		RequestsTable,
		RequestEventsTable,
		RequestWatchersTable,
		TasksTable,
		UsersTable,
		WorkflowVariantsTable,
		WorkflowVariantStepsTable,
	}
)

func init() {
}
