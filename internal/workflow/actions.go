package workflow

import (
	"context"
	"fmt"
	"strings"
	"time"

	"oaflow.io/oaflow/ent"
	"oaflow.io/oaflow/ent/delegation"
	"oaflow.io/oaflow/ent/request"
	"oaflow.io/oaflow/ent/requestwatcher"
	"oaflow.io/oaflow/ent/task"
	"oaflow.io/oaflow/ent/user"
	"oaflow.io/oaflow/ent/workflowvariant"
	"oaflow.io/oaflow/internal/catalog"
	"oaflow.io/oaflow/internal/infrastructure"
	apperrors "oaflow.io/oaflow/internal/pkg/errors"
	"oaflow.io/oaflow/internal/pkg/metrics"
)

// Service drives the request and task state machines. Every operation runs
// inside a single transaction: all effects of a verb are visible together
// or not at all.
type Service struct {
	client *ent.Client
}

// NewService creates a workflow service.
func NewService(client *ent.Client) *Service {
	return &Service{client: client}
}

// CreateInput is the payload for creating a request.
type CreateInput struct {
	Type     string
	Workflow *string
	Title    string
	Body     string
	Payload  map[string]interface{}
}

// CreateRequest creates a request, resolves its workflow variant and
// materializes the first step's tasks.
func (s *Service) CreateRequest(ctx context.Context, actor Actor, in CreateInput) (*ent.Request, error) {
	requestType := strings.TrimSpace(in.Type)
	if requestType == "" {
		requestType = "generic"
	}
	title := strings.TrimSpace(in.Title)
	body := strings.TrimSpace(in.Body)
	if title == "" || body == "" {
		return nil, apperrors.BadRequest(apperrors.CodeMissingFields, "title and body are required")
	}

	var out *ent.Request
	err := infrastructure.WithTx(ctx, s.client, func(tx *ent.Tx) error {
		var workflowKey string
		if in.Workflow != nil && *in.Workflow != "" {
			wf, err := tx.WorkflowVariant.Query().
				Where(workflowvariant.WorkflowKeyEQ(*in.Workflow)).
				Only(ctx)
			if err != nil {
				if ent.IsNotFound(err) {
					return apperrors.BadRequest(apperrors.CodeInvalidWorkflow, "unknown workflow")
				}
				return err
			}
			if !wf.Enabled {
				return apperrors.BadRequest(apperrors.CodeInvalidWorkflow, "workflow is disabled")
			}
			requestType = wf.RequestType
			workflowKey = wf.WorkflowKey
		} else {
			resolved, err := catalog.ResolveDefault(ctx, tx.WorkflowVariant, requestType, actor.Dept)
			if err != nil {
				return err
			}
			if resolved != nil {
				workflowKey = *resolved
			} else {
				workflowKey = requestType
			}
		}

		create := tx.Request.Create().
			SetUserID(actor.ID).
			SetRequestType(requestType).
			SetWorkflowKey(workflowKey).
			SetTitle(title).
			SetBody(body)
		if in.Payload != nil {
			create = create.SetPayload(in.Payload)
		}
		req, err := create.Save(ctx)
		if err != nil {
			return err
		}

		if err := appendEvent(ctx, tx, req.ID, EventCreated, &actor.ID,
			fmt.Sprintf("type=%s workflow=%s", requestType, workflowKey)); err != nil {
			return err
		}
		if err := startWorkflow(ctx, tx, req, actor, workflowKey); err != nil {
			return err
		}
		out = req
		return nil
	})
	if err != nil {
		return nil, err
	}
	metrics.RequestsCreated.WithLabelValues(requestType).Inc()
	return out, nil
}

// Decide approves or rejects a pending task and advances the request.
// decision must be "approved" or "rejected".
func (s *Service) Decide(ctx context.Context, actor Actor, taskID int, decision string, comment *string) (*ent.Request, error) {
	if decision != string(task.StatusApproved) && decision != string(task.StatusRejected) {
		return nil, apperrors.BadRequest(apperrors.CodeMissingFields, "decision must be approved or rejected")
	}

	var out *ent.Request
	err := infrastructure.WithTx(ctx, s.client, func(tx *ent.Tx) error {
		t, req, err := loadPendingTask(ctx, tx, taskID)
		if err != nil {
			return err
		}
		ok, err := canAct(ctx, tx, actor, t)
		if err != nil {
			return err
		}
		if !ok {
			return apperrors.ErrNotAuthorized()
		}
		if req.Status != request.StatusPending {
			return apperrors.ErrRequestAlreadyDecided()
		}

		if err := decideTask(ctx, tx, t.ID, task.Status(decision), actor.ID, comment); err != nil {
			return err
		}
		if err := appendEvent(ctx, tx, req.ID, EventTaskDecided, &actor.ID,
			fmt.Sprintf("task=%d step=%s decision=%s", t.ID, t.StepKey, decision)); err != nil {
			return err
		}

		out, err = s.advance(ctx, tx, actor, req, t, decision, comment)
		return err
	})
	if err != nil {
		return nil, err
	}
	metrics.TasksDecided.WithLabelValues(decision).Inc()
	return out, nil
}

// DecideNewest decides the newest pending task of a request; the shortcut
// behind the request-level approve and reject endpoints.
func (s *Service) DecideNewest(ctx context.Context, actor Actor, requestID int, decision string) (*ent.Request, error) {
	t, err := s.client.Task.Query().
		Where(task.RequestIDEQ(requestID), task.StatusEQ(task.StatusPending)).
		Order(ent.Desc(task.FieldID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.CodeNotFound, "no pending task for request")
		}
		return nil, err
	}
	return s.Decide(ctx, actor, t.ID, decision, nil)
}

// advance applies the post-decision state machine: group voting for
// parallel steps, conditional selection of the next step, or terminal
// approval or rejection.
func (s *Service) advance(ctx context.Context, tx *ent.Tx, actor Actor, req *ent.Request, t *ent.Task, decision string, comment *string) (*ent.Request, error) {
	workflowKey := ""
	if req.WorkflowKey != nil {
		workflowKey = *req.WorkflowKey
	}
	if workflowKey == "" {
		resolved, err := catalog.ResolveDefault(ctx, tx.WorkflowVariant, req.RequestType, actor.Dept)
		if err != nil {
			return nil, err
		}
		if resolved != nil {
			workflowKey = *resolved
		} else {
			workflowKey = req.RequestType
		}
	}

	steps, err := loadSteps(ctx, tx, workflowKey, req.RequestType)
	if err != nil {
		return nil, err
	}

	currentOrder := t.StepOrder
	if currentOrder == nil {
		for _, st := range steps {
			if st.StepKey == t.StepKey {
				o := st.StepOrder
				currentOrder = &o
				break
			}
		}
	}

	owner, err := tx.User.Get(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	var currentStep *ent.WorkflowVariantStep
	if currentOrder != nil {
		for _, st := range steps {
			if st.StepOrder == *currentOrder {
				currentStep = st
				break
			}
		}
	}
	isUsersAny := currentStep != nil && currentStep.AssigneeKind == "users_any"
	isUsersAll := currentStep != nil && currentStep.AssigneeKind == "users_all"

	if decision == string(task.StatusRejected) {
		if isUsersAny && currentOrder != nil {
			group, err := listGroup(ctx, tx, req.ID, *currentOrder)
			if err != nil {
				return nil, err
			}
			for _, g := range group {
				// One "no" among many does not kill an any-of step.
				if g.Status == task.StatusPending || g.Status == task.StatusApproved {
					return tx.Request.Get(ctx, req.ID)
				}
			}
		}
		// A terminal request must leave no pending work behind; users_all
		// siblings that never voted are canceled, not rejected.
		if err := cancelAllPending(ctx, tx, req.ID, actor.ID); err != nil {
			return nil, err
		}
		if err := setRequestStatus(ctx, tx, req.ID, request.StatusRejected, &actor.ID); err != nil {
			return nil, err
		}
		if err := appendEvent(ctx, tx, req.ID, EventRequestRejected, &actor.ID, deref(comment)); err != nil {
			return nil, err
		}
		metrics.RequestsClosed.WithLabelValues(string(request.StatusRejected)).Inc()
		return tx.Request.Get(ctx, req.ID)
	}

	if isUsersAll && currentOrder != nil {
		group, err := listGroup(ctx, tx, req.ID, *currentOrder)
		if err != nil {
			return nil, err
		}
		for _, g := range group {
			if g.Status != task.StatusApproved {
				return tx.Request.Get(ctx, req.ID)
			}
		}
	}

	if isUsersAny && currentOrder != nil {
		// First approver wins; pending siblings are canceled.
		now := time.Now().UTC()
		if _, err := tx.Task.Update().
			Where(
				task.RequestIDEQ(req.ID),
				task.StepOrderEQ(*currentOrder),
				task.StatusEQ(task.StatusPending),
				task.IDNEQ(t.ID),
			).
			SetStatus(task.StatusCanceled).
			SetDecidedBy(actor.ID).
			SetDecidedAt(now).
			SetComment("canceled").
			Save(ctx); err != nil {
			return nil, err
		}
	}

	if currentOrder != nil {
		group, err := listGroup(ctx, tx, req.ID, *currentOrder)
		if err != nil {
			return nil, err
		}
		for _, g := range group {
			if g.Status == task.StatusPending {
				return tx.Request.Get(ctx, req.ID)
			}
		}
	}

	next := FindNextStep(steps, currentOrder, req.Payload, owner.Dept)
	if next != nil {
		creator := actorFromUser(owner)
		stepKey, err := createTasksForStep(ctx, tx, req.ID, creator, next)
		if err != nil {
			return nil, err
		}
		if err := appendEvent(ctx, tx, req.ID, EventTaskCreated, nil, fmt.Sprintf("step=%s", stepKey)); err != nil {
			return nil, err
		}
		if err := setRequestStatus(ctx, tx, req.ID, request.StatusPending, nil); err != nil {
			return nil, err
		}
		return tx.Request.Get(ctx, req.ID)
	}

	if err := setRequestStatus(ctx, tx, req.ID, request.StatusApproved, &actor.ID); err != nil {
		return nil, err
	}
	if err := appendEvent(ctx, tx, req.ID, EventRequestApproved, &actor.ID, deref(comment)); err != nil {
		return nil, err
	}
	metrics.RequestsClosed.WithLabelValues(string(request.StatusApproved)).Inc()
	return tx.Request.Get(ctx, req.ID)
}

// Return sends the request back to its owner for changes: the acting task
// becomes returned, every other pending task is canceled, and a synthetic
// resubmit task (step_order 0) is created for the owner.
func (s *Service) Return(ctx context.Context, actor Actor, taskID int, comment *string) (*ent.Request, error) {
	var out *ent.Request
	err := infrastructure.WithTx(ctx, s.client, func(tx *ent.Tx) error {
		t, req, err := loadPendingTask(ctx, tx, taskID)
		if err != nil {
			return err
		}
		ok, err := canAct(ctx, tx, actor, t)
		if err != nil {
			return err
		}
		if !ok {
			return apperrors.ErrNotAuthorized()
		}
		if req.Status != request.StatusPending {
			return apperrors.ErrRequestAlreadyDecided()
		}

		if err := decideTask(ctx, tx, t.ID, task.StatusReturned, actor.ID, comment); err != nil {
			return err
		}
		if err := appendEvent(ctx, tx, req.ID, EventTaskReturned, &actor.ID,
			fmt.Sprintf("task=%d step=%s", t.ID, t.StepKey)); err != nil {
			return err
		}

		if err := cancelAllPending(ctx, tx, req.ID, actor.ID); err != nil {
			return err
		}
		if err := setRequestStatus(ctx, tx, req.ID, request.StatusChangesRequested, nil); err != nil {
			return err
		}
		if err := appendEvent(ctx, tx, req.ID, EventChangesRequested, &actor.ID, deref(comment)); err != nil {
			return err
		}

		if _, err := tx.Task.Create().
			SetRequestID(req.ID).
			SetStepOrder(0).
			SetStepKey("resubmit").
			SetAssigneeUserID(req.UserID).
			Save(ctx); err != nil {
			return err
		}
		if err := appendEvent(ctx, tx, req.ID, EventTaskCreated, nil, "step=resubmit"); err != nil {
			return err
		}

		out, err = tx.Request.Get(ctx, req.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Transfer reassigns a pending task to another user, clearing any role
// assignee. Admins may transfer any pending task.
func (s *Service) Transfer(ctx context.Context, actor Actor, taskID, newAssigneeID int) (*ent.Request, error) {
	var out *ent.Request
	err := infrastructure.WithTx(ctx, s.client, func(tx *ent.Tx) error {
		t, req, err := loadPendingTask(ctx, tx, taskID)
		if err != nil {
			return err
		}
		if !actor.IsAdmin() {
			ok, err := canAct(ctx, tx, actor, t)
			if err != nil {
				return err
			}
			if !ok {
				return apperrors.ErrNotAuthorized()
			}
		}
		if req.Status != request.StatusPending {
			return apperrors.ErrRequestAlreadyDecided()
		}
		if err := requireUser(ctx, tx, newAssigneeID); err != nil {
			return err
		}

		n, err := tx.Task.Update().
			Where(task.IDEQ(t.ID), task.StatusEQ(task.StatusPending)).
			SetAssigneeUserID(newAssigneeID).
			ClearAssigneeRole().
			Save(ctx)
		if err != nil {
			return err
		}
		if n == 0 {
			return apperrors.ErrTaskAlreadyDecided()
		}
		if err := appendEvent(ctx, tx, req.ID, EventTaskTransferred, &actor.ID,
			fmt.Sprintf("task=%d to_user_id=%d", t.ID, newAssigneeID)); err != nil {
			return err
		}
		out, err = tx.Request.Get(ctx, req.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AddSign creates an additional pending task at the same step for another
// user: the step effectively becomes an all-must-approve group for this
// request instance, because advance now sees multiple tasks at the order.
func (s *Service) AddSign(ctx context.Context, actor Actor, taskID, assigneeID int) (*ent.Request, error) {
	var out *ent.Request
	err := infrastructure.WithTx(ctx, s.client, func(tx *ent.Tx) error {
		t, req, err := loadPendingTask(ctx, tx, taskID)
		if err != nil {
			return err
		}
		ok, err := canAct(ctx, tx, actor, t)
		if err != nil {
			return err
		}
		if !ok {
			return apperrors.ErrNotAuthorized()
		}
		if req.Status != request.StatusPending {
			return apperrors.ErrRequestAlreadyDecided()
		}
		if err := requireUser(ctx, tx, assigneeID); err != nil {
			return err
		}

		create := tx.Task.Create().
			SetRequestID(req.ID).
			SetStepKey(t.StepKey).
			SetAssigneeUserID(assigneeID)
		if t.StepOrder != nil {
			create = create.SetStepOrder(*t.StepOrder)
		}
		if _, err := create.Save(ctx); err != nil {
			return err
		}
		if err := appendEvent(ctx, tx, req.ID, EventTaskAddsigned, &actor.ID,
			fmt.Sprintf("task=%d to_user_id=%d", t.ID, assigneeID)); err != nil {
			return err
		}
		out, err = tx.Request.Get(ctx, req.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ResubmitInput is the replacement content for a returned request.
type ResubmitInput struct {
	Title   string
	Body    string
	Payload map[string]interface{}
}

// Resubmit lets the owner of a changes_requested request replace its
// content and restart the workflow. Pending tasks (the resubmit task) are
// canceled with decided_by = owner: the owner owns the cancellation, not
// the decision.
func (s *Service) Resubmit(ctx context.Context, actor Actor, requestID int, in ResubmitInput) (*ent.Request, error) {
	title := strings.TrimSpace(in.Title)
	body := strings.TrimSpace(in.Body)
	if title == "" || body == "" {
		return nil, apperrors.BadRequest(apperrors.CodeMissingFields, "title and body are required")
	}

	var out *ent.Request
	err := infrastructure.WithTx(ctx, s.client, func(tx *ent.Tx) error {
		req, err := tx.Request.Get(ctx, requestID)
		if err != nil {
			if ent.IsNotFound(err) {
				return apperrors.ErrRequestNotFound()
			}
			return err
		}
		if req.UserID != actor.ID {
			return apperrors.ErrNotAuthorized()
		}
		if req.Status != request.StatusChangesRequested {
			return apperrors.Conflict(apperrors.CodeNotEditable, "request is not awaiting changes")
		}

		if err := cancelAllPending(ctx, tx, req.ID, actor.ID); err != nil {
			return err
		}

		upd := tx.Request.UpdateOneID(req.ID).
			SetTitle(title).
			SetBody(body).
			SetStatus(request.StatusPending).
			ClearDecidedBy().
			ClearDecidedAt()
		if in.Payload != nil {
			upd = upd.SetPayload(in.Payload)
		} else {
			upd = upd.ClearPayload()
		}
		req, err = upd.Save(ctx)
		if err != nil {
			return err
		}
		if err := appendEvent(ctx, tx, req.ID, EventResubmitted, &actor.ID, ""); err != nil {
			return err
		}

		workflowKey := ""
		if req.WorkflowKey != nil {
			workflowKey = *req.WorkflowKey
		}
		if workflowKey == "" {
			resolved, err := catalog.ResolveDefault(ctx, tx.WorkflowVariant, req.RequestType, actor.Dept)
			if err != nil {
				return err
			}
			if resolved != nil {
				workflowKey = *resolved
			} else {
				workflowKey = req.RequestType
			}
		}
		if err := startWorkflow(ctx, tx, req, actor, workflowKey); err != nil {
			return err
		}
		out, err = tx.Request.Get(ctx, req.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Withdraw lets the owner close their own pending or changes_requested
// request.
func (s *Service) Withdraw(ctx context.Context, actor Actor, requestID int) (*ent.Request, error) {
	return s.closeRequest(ctx, actor, requestID, request.StatusWithdrawn, EventWithdrawn, false)
}

// Void lets an admin close any pending or changes_requested request.
func (s *Service) Void(ctx context.Context, actor Actor, requestID int) (*ent.Request, error) {
	return s.closeRequest(ctx, actor, requestID, request.StatusVoided, EventVoided, true)
}

func (s *Service) closeRequest(ctx context.Context, actor Actor, requestID int, status request.Status, eventType string, adminOnly bool) (*ent.Request, error) {
	var out *ent.Request
	err := infrastructure.WithTx(ctx, s.client, func(tx *ent.Tx) error {
		req, err := tx.Request.Get(ctx, requestID)
		if err != nil {
			if ent.IsNotFound(err) {
				return apperrors.ErrRequestNotFound()
			}
			return err
		}
		if adminOnly {
			if !actor.IsAdmin() {
				return apperrors.ErrNotAuthorized()
			}
		} else if req.UserID != actor.ID {
			return apperrors.ErrNotAuthorized()
		}
		if req.Status != request.StatusPending && req.Status != request.StatusChangesRequested {
			return apperrors.Conflict(apperrors.CodeNotEditable, "request is already closed")
		}

		if err := cancelAllPending(ctx, tx, req.ID, actor.ID); err != nil {
			return err
		}
		if err := setRequestStatus(ctx, tx, req.ID, status, nil); err != nil {
			return err
		}
		if err := appendEvent(ctx, tx, req.ID, eventType, &actor.ID, ""); err != nil {
			return err
		}
		out, err = tx.Request.Get(ctx, req.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	metrics.RequestsClosed.WithLabelValues(string(status)).Inc()
	return out, nil
}

// AddWatchers subscribes users to a request's notifications. Only the
// owner or an admin may add watchers; duplicates are ignored.
func (s *Service) AddWatchers(ctx context.Context, actor Actor, requestID int, kind string, userIDs []int) error {
	if kind != string(requestwatcher.KindCc) && kind != string(requestwatcher.KindFollow) {
		return apperrors.BadRequest(apperrors.CodeInvalidKind, "kind must be cc or follow")
	}
	if len(userIDs) == 0 {
		return apperrors.BadRequest(apperrors.CodeMissingFields, "user_ids must not be empty")
	}

	return infrastructure.WithTx(ctx, s.client, func(tx *ent.Tx) error {
		req, err := tx.Request.Get(ctx, requestID)
		if err != nil {
			if ent.IsNotFound(err) {
				return apperrors.ErrRequestNotFound()
			}
			return err
		}
		if !actor.IsAdmin() && req.UserID != actor.ID {
			return apperrors.ErrNotAuthorized()
		}

		for _, uid := range userIDs {
			exists, err := tx.User.Query().Where(user.IDEQ(uid)).Exist(ctx)
			if err != nil {
				return err
			}
			if !exists {
				return apperrors.BadRequest(apperrors.CodeInvalidUserID, fmt.Sprintf("user %d does not exist", uid))
			}
			dup, err := tx.RequestWatcher.Query().
				Where(
					requestwatcher.RequestIDEQ(requestID),
					requestwatcher.UserIDEQ(uid),
					requestwatcher.KindEQ(requestwatcher.Kind(kind)),
				).
				Exist(ctx)
			if err != nil {
				return err
			}
			if dup {
				continue
			}
			if _, err := tx.RequestWatcher.Create().
				SetRequestID(requestID).
				SetUserID(uid).
				SetKind(requestwatcher.Kind(kind)).
				Save(ctx); err != nil {
				return err
			}
		}
		return nil
	})
}

// loadPendingTask loads a task and its request, rejecting missing or
// already-decided tasks.
func loadPendingTask(ctx context.Context, tx *ent.Tx, taskID int) (*ent.Task, *ent.Request, error) {
	t, err := tx.Task.Get(ctx, taskID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil, apperrors.ErrTaskNotFound()
		}
		return nil, nil, err
	}
	if t.Status != task.StatusPending {
		return nil, nil, apperrors.ErrTaskAlreadyDecided()
	}
	req, err := tx.Request.Get(ctx, t.RequestID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil, apperrors.ErrRequestNotFound()
		}
		return nil, nil, err
	}
	return t, req, nil
}

// canAct implements the authorization rule for task verbs: direct user
// assignee, role match, or an active delegation from the assignee.
func canAct(ctx context.Context, tx *ent.Tx, actor Actor, t *ent.Task) (bool, error) {
	if t.AssigneeUserID != nil && *t.AssigneeUserID == actor.ID {
		return true, nil
	}
	if t.AssigneeRole != nil && *t.AssigneeRole == actor.Role {
		return true, nil
	}
	if t.AssigneeUserID == nil {
		return false, nil
	}
	return tx.Delegation.Query().
		Where(
			delegation.DelegatorUserIDEQ(*t.AssigneeUserID),
			delegation.DelegateUserIDEQ(actor.ID),
			delegation.ActiveEQ(true),
		).
		Exist(ctx)
}

// decideTask writes the terminal status, decider and timestamp atomically,
// conditioned on the task still being pending. A zero row count means a
// concurrent writer won; callers surface it as task_already_decided.
func decideTask(ctx context.Context, tx *ent.Tx, taskID int, status task.Status, decidedBy int, comment *string) error {
	n, err := tx.Task.Update().
		Where(task.IDEQ(taskID), task.StatusEQ(task.StatusPending)).
		SetStatus(status).
		SetDecidedBy(decidedBy).
		SetDecidedAt(time.Now().UTC()).
		SetNillableComment(comment).
		Save(ctx)
	if err != nil {
		return err
	}
	if n == 0 {
		return apperrors.ErrTaskAlreadyDecided()
	}
	return nil
}

func cancelAllPending(ctx context.Context, tx *ent.Tx, requestID, decidedBy int) error {
	_, err := tx.Task.Update().
		Where(task.RequestIDEQ(requestID), task.StatusEQ(task.StatusPending)).
		SetStatus(task.StatusCanceled).
		SetDecidedBy(decidedBy).
		SetDecidedAt(time.Now().UTC()).
		SetComment("canceled").
		Save(ctx)
	return err
}

// setRequestStatus updates a request's status; decided_by/decided_at are
// only stamped on terminal approve/reject with a known decider.
func setRequestStatus(ctx context.Context, tx *ent.Tx, requestID int, status request.Status, decidedBy *int) error {
	upd := tx.Request.UpdateOneID(requestID).SetStatus(status)
	if decidedBy != nil && (status == request.StatusApproved || status == request.StatusRejected) {
		upd = upd.SetDecidedBy(*decidedBy).SetDecidedAt(time.Now().UTC())
	}
	_, err := upd.Save(ctx)
	return err
}

func listGroup(ctx context.Context, tx *ent.Tx, requestID, stepOrder int) ([]*ent.Task, error) {
	return tx.Task.Query().
		Where(task.RequestIDEQ(requestID), task.StepOrderEQ(stepOrder)).
		Order(ent.Asc(task.FieldID)).
		All(ctx)
}

func requireUser(ctx context.Context, tx *ent.Tx, userID int) error {
	exists, err := tx.User.Query().Where(user.IDEQ(userID)).Exist(ctx)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.BadRequest(apperrors.CodeInvalidUserID, "assignee does not exist")
	}
	return nil
}

func actorFromUser(u *ent.User) Actor {
	return Actor{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role,
		Dept:      u.Dept,
		ManagerID: u.ManagerID,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
