package workflow

import (
	"context"
	"sort"
	"strings"

	"oaflow.io/oaflow/ent"
	"oaflow.io/oaflow/ent/delegation"
	"oaflow.io/oaflow/ent/predicate"
	"oaflow.io/oaflow/ent/request"
	"oaflow.io/oaflow/ent/requestevent"
	"oaflow.io/oaflow/ent/requestwatcher"
	"oaflow.io/oaflow/ent/task"
	"oaflow.io/oaflow/ent/user"
	"oaflow.io/oaflow/ent/workflowvariant"
	apperrors "oaflow.io/oaflow/internal/pkg/errors"
)

// ListScope selects which requests a listing returns.
type ListScope string

const (
	// ScopeDefault lists own requests, or all for admins.
	ScopeDefault ListScope = "default"
	// ScopeMine always lists only the caller's requests.
	ScopeMine ListScope = "mine"
	// ScopeAll lists every request; admin only.
	ScopeAll ListScope = "all"
)

// RequestSummary is a listing row: the request plus the display fields the
// client needs without further round trips.
type RequestSummary struct {
	Request           *ent.Request
	OwnerUsername     string
	DecidedByUsername *string
	WorkflowName      *string
	WorkflowCategory  *string
	PendingTask       *ent.Task
	PendingAssignee   *string
}

// RequestDetail is the full view of a single request.
type RequestDetail struct {
	Summary  RequestSummary
	Tasks    []*ent.Task
	Events   []*ent.RequestEvent
	Watchers []*ent.RequestWatcher
	// Usernames maps every user id referenced by the tasks and events to
	// its username, for display.
	Usernames map[int]string
}

// ListRequests returns requests visible to the actor, newest first. The
// optional q filters on title or body, case-insensitively.
func (s *Service) ListRequests(ctx context.Context, actor Actor, scope ListScope, q string) ([]RequestSummary, error) {
	query := s.client.Request.Query().Order(ent.Desc(request.FieldID))
	switch scope {
	case ScopeAll:
		if !actor.IsAdmin() {
			return nil, apperrors.ErrNotAuthorized()
		}
	case ScopeMine:
		query = query.Where(request.UserIDEQ(actor.ID))
	default:
		if !actor.IsAdmin() {
			query = query.Where(request.UserIDEQ(actor.ID))
		}
	}
	rows, err := query.All(ctx)
	if err != nil {
		return nil, err
	}

	if q = strings.TrimSpace(q); q != "" {
		ql := strings.ToLower(q)
		filtered := rows[:0]
		for _, r := range rows {
			if strings.Contains(strings.ToLower(r.Title), ql) || strings.Contains(strings.ToLower(r.Body), ql) {
				filtered = append(filtered, r)
			}
		}
		rows = filtered
	}

	return s.summarize(ctx, rows)
}

// GetRequest returns the full detail of a request. Non-admins only see
// their own requests.
func (s *Service) GetRequest(ctx context.Context, actor Actor, requestID int) (*RequestDetail, error) {
	r, err := s.client.Request.Get(ctx, requestID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.ErrRequestNotFound()
		}
		return nil, err
	}
	if !actor.IsAdmin() && r.UserID != actor.ID {
		return nil, apperrors.ErrNotAuthorized()
	}

	summaries, err := s.summarize(ctx, []*ent.Request{r})
	if err != nil {
		return nil, err
	}

	tasks, err := s.client.Task.Query().
		Where(task.RequestIDEQ(requestID)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	// Step order when present, creation order for synthetic tasks.
	sort.SliceStable(tasks, func(i, j int) bool {
		return taskSortKey(tasks[i]) < taskSortKey(tasks[j])
	})

	events, err := s.client.RequestEvent.Query().
		Where(requestevent.RequestIDEQ(requestID)).
		Order(ent.Asc(requestevent.FieldID)).
		All(ctx)
	if err != nil {
		return nil, err
	}

	watchers, err := s.client.RequestWatcher.Query().
		Where(requestwatcher.RequestIDEQ(requestID)).
		Order(ent.Asc(requestwatcher.FieldID)).
		All(ctx)
	if err != nil {
		return nil, err
	}

	ids := map[int]struct{}{r.UserID: {}}
	for _, t := range tasks {
		if t.AssigneeUserID != nil {
			ids[*t.AssigneeUserID] = struct{}{}
		}
		if t.DecidedBy != nil {
			ids[*t.DecidedBy] = struct{}{}
		}
	}
	for _, e := range events {
		if e.ActorUserID != nil {
			ids[*e.ActorUserID] = struct{}{}
		}
	}
	for _, w := range watchers {
		ids[w.UserID] = struct{}{}
	}
	usernames, err := s.usernames(ctx, ids)
	if err != nil {
		return nil, err
	}

	return &RequestDetail{
		Summary:   summaries[0],
		Tasks:     tasks,
		Events:    events,
		Watchers:  watchers,
		Usernames: usernames,
	}, nil
}

// InboxItem is a pending task the actor can act on, with its request
// context.
type InboxItem struct {
	Task          *ent.Task
	RequestType   string
	Title         string
	RequestStatus request.Status
	OwnerUsername string
}

// Inbox lists pending tasks actionable by the actor: direct assignment,
// role match, or an active delegation. Resubmit tasks surface while their
// request awaits changes; all other tasks only while it is pending.
func (s *Service) Inbox(ctx context.Context, actor Actor) ([]InboxItem, error) {
	delegators, err := s.client.Delegation.Query().
		Where(delegation.DelegateUserIDEQ(actor.ID), delegation.ActiveEQ(true)).
		Select(delegation.FieldDelegatorUserID).
		Ints(ctx)
	if err != nil {
		return nil, err
	}

	assignee := []predicate.Task{
		task.AssigneeUserIDEQ(actor.ID),
		task.AssigneeRoleEQ(actor.Role),
	}
	if len(delegators) > 0 {
		assignee = append(assignee, task.AssigneeUserIDIn(delegators...))
	}

	tasks, err := s.client.Task.Query().
		Where(task.StatusEQ(task.StatusPending), task.Or(assignee...)).
		Order(ent.Desc(task.FieldID)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	if len(tasks) == 0 {
		return []InboxItem{}, nil
	}

	reqIDs := make([]int, 0, len(tasks))
	seen := map[int]struct{}{}
	for _, t := range tasks {
		if _, ok := seen[t.RequestID]; !ok {
			seen[t.RequestID] = struct{}{}
			reqIDs = append(reqIDs, t.RequestID)
		}
	}
	reqs, err := s.client.Request.Query().Where(request.IDIn(reqIDs...)).All(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[int]*ent.Request, len(reqs))
	ownerIDs := map[int]struct{}{}
	for _, r := range reqs {
		byID[r.ID] = r
		ownerIDs[r.UserID] = struct{}{}
	}
	usernames, err := s.usernames(ctx, ownerIDs)
	if err != nil {
		return nil, err
	}

	items := make([]InboxItem, 0, len(tasks))
	for _, t := range tasks {
		r := byID[t.RequestID]
		if r == nil {
			continue
		}
		actionable := r.Status == request.StatusPending ||
			(r.Status == request.StatusChangesRequested && t.StepKey == "resubmit")
		if !actionable {
			continue
		}
		items = append(items, InboxItem{
			Task:          t,
			RequestType:   r.RequestType,
			Title:         r.Title,
			RequestStatus: r.Status,
			OwnerUsername: usernames[r.UserID],
		})
	}
	return items, nil
}

// summarize resolves display fields for a page of requests in three batch
// queries instead of one per row.
// Summary enriches a single request for serialization.
func (s *Service) Summary(ctx context.Context, req *ent.Request) (RequestSummary, error) {
	rows, err := s.summarize(ctx, []*ent.Request{req})
	if err != nil {
		return RequestSummary{}, err
	}
	return rows[0], nil
}

func (s *Service) summarize(ctx context.Context, rows []*ent.Request) ([]RequestSummary, error) {
	if len(rows) == 0 {
		return []RequestSummary{}, nil
	}

	reqIDs := make([]int, 0, len(rows))
	userIDs := map[int]struct{}{}
	wfKeys := map[string]struct{}{}
	for _, r := range rows {
		reqIDs = append(reqIDs, r.ID)
		userIDs[r.UserID] = struct{}{}
		if r.DecidedBy != nil {
			userIDs[*r.DecidedBy] = struct{}{}
		}
		if r.WorkflowKey != nil {
			wfKeys[*r.WorkflowKey] = struct{}{}
		}
	}

	pending, err := s.client.Task.Query().
		Where(task.RequestIDIn(reqIDs...), task.StatusEQ(task.StatusPending)).
		Order(ent.Asc(task.FieldID)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	// Newest pending task per request; ascending scan so the last write
	// wins.
	pendingByReq := map[int]*ent.Task{}
	for _, t := range pending {
		pendingByReq[t.RequestID] = t
		if t.AssigneeUserID != nil {
			userIDs[*t.AssigneeUserID] = struct{}{}
		}
	}

	usernames, err := s.usernames(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	variants, err := s.variantsByKey(ctx, wfKeys)
	if err != nil {
		return nil, err
	}

	out := make([]RequestSummary, 0, len(rows))
	for _, r := range rows {
		sum := RequestSummary{
			Request:       r,
			OwnerUsername: usernames[r.UserID],
			PendingTask:   pendingByReq[r.ID],
		}
		if r.DecidedBy != nil {
			if name, ok := usernames[*r.DecidedBy]; ok {
				sum.DecidedByUsername = &name
			}
		}
		if r.WorkflowKey != nil {
			if wf, ok := variants[*r.WorkflowKey]; ok {
				sum.WorkflowName = &wf.Name
				sum.WorkflowCategory = &wf.Category
			}
		}
		if sum.PendingTask != nil && sum.PendingTask.AssigneeUserID != nil {
			if name, ok := usernames[*sum.PendingTask.AssigneeUserID]; ok {
				sum.PendingAssignee = &name
			}
		}
		out = append(out, sum)
	}
	return out, nil
}

func (s *Service) usernames(ctx context.Context, ids map[int]struct{}) (map[int]string, error) {
	if len(ids) == 0 {
		return map[int]string{}, nil
	}
	list := make([]int, 0, len(ids))
	for id := range ids {
		list = append(list, id)
	}
	users, err := s.client.User.Query().Where(user.IDIn(list...)).All(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[int]string, len(users))
	for _, u := range users {
		out[u.ID] = u.Username
	}
	return out, nil
}

func (s *Service) variantsByKey(ctx context.Context, keys map[string]struct{}) (map[string]*ent.WorkflowVariant, error) {
	if len(keys) == 0 {
		return map[string]*ent.WorkflowVariant{}, nil
	}
	list := make([]string, 0, len(keys))
	for k := range keys {
		list = append(list, k)
	}
	variants, err := s.client.WorkflowVariant.Query().
		Where(workflowvariant.WorkflowKeyIn(list...)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]*ent.WorkflowVariant, len(variants))
	for _, v := range variants {
		out[v.WorkflowKey] = v
	}
	return out, nil
}

func taskSortKey(t *ent.Task) int {
	if t.StepOrder != nil {
		return *t.StepOrder
	}
	return t.ID
}
