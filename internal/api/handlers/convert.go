package handlers

import (
	"time"

	"oaflow.io/oaflow/ent"
	"oaflow.io/oaflow/internal/workflow"
)

// Wire shapes. Field sets mirror what the frontend renders; enrichment
// usernames ride along so the client needs no extra round trips.

type userRef struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

type workflowRef struct {
	Key      string  `json:"key"`
	Name     *string `json:"name"`
	Category *string `json:"category"`
}

type pendingTaskJSON struct {
	ID               int     `json:"id"`
	StepKey          string  `json:"step_key"`
	AssigneeUserID   *int    `json:"assignee_user_id"`
	AssigneeUsername *string `json:"assignee_username"`
	AssigneeRole     *string `json:"assignee_role"`
}

type requestJSON struct {
	ID          int                    `json:"id"`
	Type        string                 `json:"type"`
	Workflow    *workflowRef           `json:"workflow"`
	Title       string                 `json:"title"`
	Body        string                 `json:"body"`
	Payload     map[string]interface{} `json:"payload"`
	Status      string                 `json:"status"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
	Owner       userRef                `json:"owner"`
	PendingTask *pendingTaskJSON       `json:"pending_task"`
	DecidedBy   *userRef               `json:"decided_by"`
	DecidedAt   *time.Time             `json:"decided_at"`
}

type taskJSON struct {
	ID                int        `json:"id"`
	RequestID         int        `json:"request_id"`
	StepOrder         *int       `json:"step_order"`
	StepKey           string     `json:"step_key"`
	AssigneeUserID    *int       `json:"assignee_user_id"`
	AssigneeUsername  *string    `json:"assignee_username"`
	AssigneeRole      *string    `json:"assignee_role"`
	Status            string     `json:"status"`
	DecidedBy         *int       `json:"decided_by"`
	DecidedByUsername *string    `json:"decided_by_username"`
	DecidedAt         *time.Time `json:"decided_at"`
	Comment           *string    `json:"comment"`
	CreatedAt         time.Time  `json:"created_at"`
}

type eventJSON struct {
	ID            int       `json:"id"`
	RequestID     int       `json:"request_id"`
	EventType     string    `json:"event_type"`
	ActorUserID   *int      `json:"actor_user_id"`
	ActorUsername *string   `json:"actor_username"`
	Message       string    `json:"message"`
	CreatedAt     time.Time `json:"created_at"`
}

type watcherJSON struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	Username  *string   `json:"username"`
	Kind      string    `json:"kind"`
	CreatedAt time.Time `json:"created_at"`
}

type notificationJSON struct {
	ID          int        `json:"id"`
	RequestID   *int       `json:"request_id"`
	EventType   string     `json:"event_type"`
	ActorUserID *int       `json:"actor_user_id"`
	Message     string     `json:"message"`
	CreatedAt   time.Time  `json:"created_at"`
	ReadAt      *time.Time `json:"read_at"`
}

type attachmentJSON struct {
	ID          int       `json:"id"`
	RequestID   int       `json:"request_id"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	UploadedBy  int       `json:"uploaded_by"`
	CreatedAt   time.Time `json:"created_at"`
}

type inboxRequestJSON struct {
	ID            int    `json:"id"`
	Type          string `json:"type"`
	Title         string `json:"title"`
	Status        string `json:"status"`
	OwnerUsername string `json:"owner_username"`
}

type inboxItemJSON struct {
	Task    taskJSON         `json:"task"`
	Request inboxRequestJSON `json:"request"`
}

type userJSON struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	Dept      *string   `json:"dept"`
	DeptID    *int      `json:"dept_id"`
	Position  *string   `json:"position"`
	ManagerID *int      `json:"manager_id"`
	CreatedAt time.Time `json:"created_at"`
}

type variantJSON struct {
	Key         string  `json:"key"`
	RequestType string  `json:"request_type"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	ScopeKind   string  `json:"scope_kind"`
	ScopeValue  *string `json:"scope_value"`
	Enabled     bool    `json:"enabled"`
	IsDefault   bool    `json:"is_default"`
}

type stepJSON struct {
	StepOrder      int     `json:"step_order"`
	StepKey        string  `json:"step_key"`
	AssigneeKind   string  `json:"assignee_kind"`
	AssigneeValue  *string `json:"assignee_value"`
	ConditionKind  *string `json:"condition_kind"`
	ConditionValue *string `json:"condition_value"`
}

func toRequestJSON(sum workflow.RequestSummary) requestJSON {
	r := sum.Request
	out := requestJSON{
		ID:        r.ID,
		Type:      r.RequestType,
		Title:     r.Title,
		Body:      r.Body,
		Payload:   r.Payload,
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
		Owner:     userRef{ID: r.UserID, Username: sum.OwnerUsername},
		DecidedAt: r.DecidedAt,
	}
	if r.WorkflowKey != nil {
		out.Workflow = &workflowRef{
			Key:      *r.WorkflowKey,
			Name:     sum.WorkflowName,
			Category: sum.WorkflowCategory,
		}
	}
	if sum.PendingTask != nil {
		out.PendingTask = &pendingTaskJSON{
			ID:               sum.PendingTask.ID,
			StepKey:          sum.PendingTask.StepKey,
			AssigneeUserID:   sum.PendingTask.AssigneeUserID,
			AssigneeUsername: sum.PendingAssignee,
			AssigneeRole:     sum.PendingTask.AssigneeRole,
		}
	}
	if r.DecidedBy != nil {
		ref := userRef{ID: *r.DecidedBy}
		if sum.DecidedByUsername != nil {
			ref.Username = *sum.DecidedByUsername
		}
		out.DecidedBy = &ref
	}
	return out
}

func toTaskJSON(t *ent.Task, names map[int]string) taskJSON {
	return taskJSON{
		ID:                t.ID,
		RequestID:         t.RequestID,
		StepOrder:         t.StepOrder,
		StepKey:           t.StepKey,
		AssigneeUserID:    t.AssigneeUserID,
		AssigneeUsername:  nameFor(names, t.AssigneeUserID),
		AssigneeRole:      t.AssigneeRole,
		Status:            string(t.Status),
		DecidedBy:         t.DecidedBy,
		DecidedByUsername: nameFor(names, t.DecidedBy),
		DecidedAt:         t.DecidedAt,
		Comment:           t.Comment,
		CreatedAt:         t.CreatedAt,
	}
}

func toEventJSON(e *ent.RequestEvent, names map[int]string) eventJSON {
	return eventJSON{
		ID:            e.ID,
		RequestID:     e.RequestID,
		EventType:     e.EventType,
		ActorUserID:   e.ActorUserID,
		ActorUsername: nameFor(names, e.ActorUserID),
		Message:       e.Message,
		CreatedAt:     e.CreatedAt,
	}
}

func toWatcherJSON(w *ent.RequestWatcher, names map[int]string) watcherJSON {
	id := w.UserID
	return watcherJSON{
		ID:        w.ID,
		UserID:    w.UserID,
		Username:  nameFor(names, &id),
		Kind:      string(w.Kind),
		CreatedAt: w.CreatedAt,
	}
}

func toNotificationJSON(n *ent.Notification) notificationJSON {
	return notificationJSON{
		ID:          n.ID,
		RequestID:   n.RequestID,
		EventType:   n.EventType,
		ActorUserID: n.ActorUserID,
		Message:     n.Message,
		CreatedAt:   n.CreatedAt,
		ReadAt:      n.ReadAt,
	}
}

func toAttachmentJSON(a *ent.Attachment) attachmentJSON {
	return attachmentJSON{
		ID:          a.ID,
		RequestID:   a.RequestID,
		Filename:    a.Filename,
		ContentType: a.ContentType,
		Size:        a.SizeBytes,
		UploadedBy:  a.UploadedBy,
		CreatedAt:   a.CreatedAt,
	}
}

func toInboxItemJSON(item workflow.InboxItem) inboxItemJSON {
	return inboxItemJSON{
		Task: toTaskJSON(item.Task, nil),
		Request: inboxRequestJSON{
			ID:            item.Task.RequestID,
			Type:          item.RequestType,
			Title:         item.Title,
			Status:        string(item.RequestStatus),
			OwnerUsername: item.OwnerUsername,
		},
	}
}

func toUserJSON(u *ent.User) userJSON {
	return userJSON{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role,
		Dept:      u.Dept,
		DeptID:    u.DeptID,
		Position:  u.Position,
		ManagerID: u.ManagerID,
		CreatedAt: u.CreatedAt,
	}
}

func toVariantJSON(v *ent.WorkflowVariant) variantJSON {
	return variantJSON{
		Key:         v.WorkflowKey,
		RequestType: v.RequestType,
		Name:        v.Name,
		Category:    v.Category,
		ScopeKind:   string(v.ScopeKind),
		ScopeValue:  v.ScopeValue,
		Enabled:     v.Enabled,
		IsDefault:   v.IsDefault,
	}
}

func toStepJSON(s *ent.WorkflowVariantStep) stepJSON {
	return stepJSON{
		StepOrder:      s.StepOrder,
		StepKey:        s.StepKey,
		AssigneeKind:   s.AssigneeKind,
		AssigneeValue:  strOrNil(s.AssigneeValue),
		ConditionKind:  strOrNil(s.ConditionKind),
		ConditionValue: strOrNil(s.ConditionValue),
	}
}

func strOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func nameFor(names map[int]string, id *int) *string {
	if id == nil || names == nil {
		return nil
	}
	if name, ok := names[*id]; ok {
		return &name
	}
	return nil
}
