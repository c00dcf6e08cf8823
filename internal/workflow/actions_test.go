package workflow

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oaflow.io/oaflow/ent"
	"oaflow.io/oaflow/ent/request"
	"oaflow.io/oaflow/ent/requestevent"
	"oaflow.io/oaflow/ent/task"
	apperrors "oaflow.io/oaflow/internal/pkg/errors"
	"oaflow.io/oaflow/internal/testutil"
)

func newService(t *testing.T) (*ent.Client, *Service) {
	t.Helper()
	client := testutil.OpenEntPostgres(t, "workflow")
	return client, NewService(client)
}

func strPtr(s string) *string { return &s }

func requestTasks(t *testing.T, client *ent.Client, requestID int) []*ent.Task {
	t.Helper()
	tasks, err := client.Task.Query().
		Where(task.RequestIDEQ(requestID)).
		Order(ent.Asc(task.FieldID)).
		All(context.Background())
	require.NoError(t, err)
	return tasks
}

func pendingTasks(t *testing.T, client *ent.Client, requestID int) []*ent.Task {
	t.Helper()
	var out []*ent.Task
	for _, tk := range requestTasks(t, client, requestID) {
		if tk.Status == task.StatusPending {
			out = append(out, tk)
		}
	}
	return out
}

func eventTypes(t *testing.T, client *ent.Client, requestID int) []string {
	t.Helper()
	events, err := client.RequestEvent.Query().
		Where(requestevent.RequestIDEQ(requestID)).
		Order(ent.Asc(requestevent.FieldID)).
		All(context.Background())
	require.NoError(t, err)
	out := make([]string, 0, len(events))
	for _, e := range events {
		out = append(out, e.EventType)
	}
	return out
}

// assertLifecycleInvariants checks the cross-row rules that must hold
// after every operation, for every request in the database.
func assertLifecycleInvariants(t *testing.T, client *ent.Client) {
	t.Helper()
	ctx := context.Background()

	requests, err := client.Request.Query().All(ctx)
	require.NoError(t, err)
	for _, r := range requests {
		tasks := requestTasks(t, client, r.ID)

		var pending []*ent.Task
		for _, tk := range tasks {
			switch tk.Status {
			case task.StatusPending:
				pending = append(pending, tk)
				assert.Nil(t, tk.DecidedBy, "pending task %d has decided_by", tk.ID)
				assert.Nil(t, tk.DecidedAt, "pending task %d has decided_at", tk.ID)
			default:
				assert.NotNil(t, tk.DecidedBy, "decided task %d lacks decided_by", tk.ID)
				assert.NotNil(t, tk.DecidedAt, "decided task %d lacks decided_at", tk.ID)
			}
		}

		switch r.Status {
		case request.StatusApproved, request.StatusRejected, request.StatusWithdrawn, request.StatusVoided:
			assert.Empty(t, pending, "terminal request %d has pending tasks", r.ID)
		case request.StatusChangesRequested:
			if assert.Len(t, pending, 1, "changes_requested request %d", r.ID) {
				tk := pending[0]
				assert.Equal(t, "resubmit", tk.StepKey)
				if assert.NotNil(t, tk.StepOrder) {
					assert.Equal(t, 0, *tk.StepOrder)
				}
				if assert.NotNil(t, tk.AssigneeUserID) {
					assert.Equal(t, r.UserID, *tk.AssigneeUserID)
				}
			}
		}
	}
}

func TestSimpleLeaveApproval(t *testing.T) {
	client, svc := newService(t)
	ctx := context.Background()

	admin := testutil.CreateUser(t, client, "admin", testutil.WithRole("admin"))
	alice := testutil.CreateUser(t, client, "alice", testutil.WithManager(admin.ID))
	testutil.CreateVariant(t, client, "leave", "leave", true,
		testutil.Step("manager", "manager", ""))

	req, err := svc.CreateRequest(ctx, actorFromUser(alice), CreateInput{
		Type:  "leave",
		Title: "Annual leave",
		Body:  "Two days off",
		Payload: map[string]interface{}{
			"start_date": "2026-01-01",
			"end_date":   "2026-01-02",
			"days":       2.0,
			"reason":     "r",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, request.StatusPending, req.Status)

	tasks := pendingTasks(t, client, req.ID)
	require.Len(t, tasks, 1)
	require.NotNil(t, tasks[0].AssigneeUserID)
	assert.Equal(t, admin.ID, *tasks[0].AssigneeUserID)

	req, err = svc.Decide(ctx, actorFromUser(admin), tasks[0].ID, "approved", nil)
	require.NoError(t, err)
	assert.Equal(t, request.StatusApproved, req.Status)
	require.NotNil(t, req.DecidedBy)
	assert.Equal(t, admin.ID, *req.DecidedBy)
	assert.NotNil(t, req.DecidedAt)

	all := requestTasks(t, client, req.ID)
	require.Len(t, all, 1)
	assert.Equal(t, task.StatusApproved, all[0].Status)

	assert.Equal(t,
		[]string{"created", "task_created", "task_decided", "request_approved"},
		eventTypes(t, client, req.ID))
	assertLifecycleInvariants(t, client)
}

func TestExpenseThresholdSkip(t *testing.T) {
	client, svc := newService(t)
	ctx := context.Background()

	admin := testutil.CreateUser(t, client, "admin", testutil.WithRole("admin"))
	manager := testutil.CreateUser(t, client, "manager")
	bob := testutil.CreateUser(t, client, "bob", testutil.WithManager(manager.ID))
	testutil.CreateVariant(t, client, "expense", "expense", true,
		testutil.Step("manager", "manager", ""),
		testutil.CondStep("gm", "role", "admin", "min_amount", "5000"),
		testutil.Step("finance", "role", "admin"))

	req, err := svc.CreateRequest(ctx, actorFromUser(bob), CreateInput{
		Type:    "expense",
		Title:   "Taxi",
		Body:    "Client visit",
		Payload: map[string]interface{}{"amount": 100.0, "category": "x"},
	})
	require.NoError(t, err)

	tasks := pendingTasks(t, client, req.ID)
	require.Len(t, tasks, 1)
	req, err = svc.Decide(ctx, actorFromUser(manager), tasks[0].ID, "approved", nil)
	require.NoError(t, err)
	assert.Equal(t, request.StatusPending, req.Status)

	tasks = pendingTasks(t, client, req.ID)
	require.Len(t, tasks, 1)
	assert.Equal(t, "finance", tasks[0].StepKey, "gm is skipped below the threshold")

	req, err = svc.Decide(ctx, actorFromUser(admin), tasks[0].ID, "approved", nil)
	require.NoError(t, err)
	assert.Equal(t, request.StatusApproved, req.Status)

	for _, tk := range requestTasks(t, client, req.ID) {
		assert.NotEqual(t, "gm", tk.StepKey, "no gm task may ever exist")
	}
	assertLifecycleInvariants(t, client)
}

func TestExpenseThresholdInclude(t *testing.T) {
	client, svc := newService(t)
	ctx := context.Background()

	admin := testutil.CreateUser(t, client, "admin", testutil.WithRole("admin"))
	manager := testutil.CreateUser(t, client, "manager")
	bob := testutil.CreateUser(t, client, "bob", testutil.WithManager(manager.ID))
	testutil.CreateVariant(t, client, "expense", "expense", true,
		testutil.Step("manager", "manager", ""),
		testutil.CondStep("gm", "role", "admin", "min_amount", "5000"),
		testutil.Step("finance", "role", "admin"))

	req, err := svc.CreateRequest(ctx, actorFromUser(bob), CreateInput{
		Type:    "expense",
		Title:   "Conference",
		Body:    "Booth and travel",
		Payload: map[string]interface{}{"amount": 6000.0, "category": "x"},
	})
	require.NoError(t, err)

	for _, approver := range []*ent.User{manager, admin, admin} {
		tasks := pendingTasks(t, client, req.ID)
		require.Len(t, tasks, 1)
		req, err = svc.Decide(ctx, actorFromUser(approver), tasks[0].ID, "approved", nil)
		require.NoError(t, err)
	}
	assert.Equal(t, request.StatusApproved, req.Status)

	var orders []int
	for _, tk := range requestTasks(t, client, req.ID) {
		require.NotNil(t, tk.StepOrder)
		orders = append(orders, *tk.StepOrder)
	}
	assert.Equal(t, []int{1, 2, 3}, orders)
	assertLifecycleInvariants(t, client)
}

func TestReturnAndResubmit(t *testing.T) {
	client, svc := newService(t)
	ctx := context.Background()

	admin := testutil.CreateUser(t, client, "admin", testutil.WithRole("admin"))
	alice := testutil.CreateUser(t, client, "alice")
	testutil.CreateVariant(t, client, "generic", "generic", true,
		testutil.Step("review", "role", "admin"))

	req, err := svc.CreateRequest(ctx, actorFromUser(alice), CreateInput{
		Type: "generic", Title: "Draft", Body: "First try",
	})
	require.NoError(t, err)

	tasks := pendingTasks(t, client, req.ID)
	require.Len(t, tasks, 1)
	req, err = svc.Return(ctx, actorFromUser(admin), tasks[0].ID, strPtr("fix"))
	require.NoError(t, err)
	assert.Equal(t, request.StatusChangesRequested, req.Status)

	pending := pendingTasks(t, client, req.ID)
	require.Len(t, pending, 1)
	assert.Equal(t, "resubmit", pending[0].StepKey)
	require.NotNil(t, pending[0].StepOrder)
	assert.Equal(t, 0, *pending[0].StepOrder)
	require.NotNil(t, pending[0].AssigneeUserID)
	assert.Equal(t, alice.ID, *pending[0].AssigneeUserID)

	types := eventTypes(t, client, req.ID)
	assert.Subset(t, types, []string{"task_returned", "changes_requested", "task_created"})
	assertLifecycleInvariants(t, client)

	resubmitTaskID := pending[0].ID
	req, err = svc.Resubmit(ctx, actorFromUser(alice), req.ID, ResubmitInput{
		Title: "Draft v2", Body: "Second try",
	})
	require.NoError(t, err)
	assert.Equal(t, request.StatusPending, req.Status)
	assert.Equal(t, "Draft v2", req.Title)

	rt, err := client.Task.Get(ctx, resubmitTaskID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusCanceled, rt.Status)
	require.NotNil(t, rt.DecidedBy)
	assert.Equal(t, alice.ID, *rt.DecidedBy, "owner owns the cancellation")

	pending = pendingTasks(t, client, req.ID)
	require.Len(t, pending, 1)
	assert.Equal(t, "review", pending[0].StepKey)
	assertLifecycleInvariants(t, client)
}

func TestUsersAnyFirstApprovalWins(t *testing.T) {
	client, svc := newService(t)
	ctx := context.Background()

	a := testutil.CreateUser(t, client, "a")
	b := testutil.CreateUser(t, client, "b")
	c := testutil.CreateUser(t, client, "c")
	owner := testutil.CreateUser(t, client, "owner")
	testutil.CreateVariant(t, client, "anysign", "anysign", true,
		testutil.Step("anysign", "users_any", fmt.Sprintf("%d,%d,%d", a.ID, b.ID, c.ID)))

	req, err := svc.CreateRequest(ctx, actorFromUser(owner), CreateInput{
		Type: "anysign", Title: "Sign-off", Body: "Anyone may approve",
	})
	require.NoError(t, err)
	require.Len(t, pendingTasks(t, client, req.ID), 3)

	var bTask *ent.Task
	for _, tk := range pendingTasks(t, client, req.ID) {
		if tk.AssigneeUserID != nil && *tk.AssigneeUserID == b.ID {
			bTask = tk
		}
	}
	require.NotNil(t, bTask)

	req, err = svc.Decide(ctx, actorFromUser(b), bTask.ID, "approved", nil)
	require.NoError(t, err)
	assert.Equal(t, request.StatusApproved, req.Status)

	for _, tk := range requestTasks(t, client, req.ID) {
		switch {
		case tk.ID == bTask.ID:
			assert.Equal(t, task.StatusApproved, tk.Status)
		default:
			assert.Equal(t, task.StatusCanceled, tk.Status)
			require.NotNil(t, tk.Comment)
			assert.Equal(t, "canceled", *tk.Comment)
			require.NotNil(t, tk.DecidedBy)
			assert.Equal(t, b.ID, *tk.DecidedBy)
		}
	}
	assertLifecycleInvariants(t, client)
}

func TestUsersAnyRejectTolerance(t *testing.T) {
	client, svc := newService(t)
	ctx := context.Background()

	a := testutil.CreateUser(t, client, "a")
	b := testutil.CreateUser(t, client, "b")
	c := testutil.CreateUser(t, client, "c")
	owner := testutil.CreateUser(t, client, "owner")
	testutil.CreateVariant(t, client, "anysign", "anysign", true,
		testutil.Step("anysign", "users_any", fmt.Sprintf("%d,%d,%d", a.ID, b.ID, c.ID)))

	req, err := svc.CreateRequest(ctx, actorFromUser(owner), CreateInput{
		Type: "anysign", Title: "Sign-off", Body: "Anyone may approve",
	})
	require.NoError(t, err)

	tasks := pendingTasks(t, client, req.ID)
	require.Len(t, tasks, 3)

	req, err = svc.Decide(ctx, actorFromUser(a), tasks[0].ID, "rejected", strPtr("no"))
	require.NoError(t, err)
	assert.Equal(t, request.StatusPending, req.Status, "one no among many does not kill the step")
	assert.Len(t, pendingTasks(t, client, req.ID), 2)

	req, err = svc.Decide(ctx, actorFromUser(b), tasks[1].ID, "rejected", nil)
	require.NoError(t, err)
	assert.Equal(t, request.StatusPending, req.Status)

	req, err = svc.Decide(ctx, actorFromUser(c), tasks[2].ID, "rejected", nil)
	require.NoError(t, err)
	assert.Equal(t, request.StatusRejected, req.Status, "the last reject terminates the step")
	assertLifecycleInvariants(t, client)
}

func TestUsersAllNeedsEveryApproval(t *testing.T) {
	client, svc := newService(t)
	ctx := context.Background()

	a := testutil.CreateUser(t, client, "a")
	b := testutil.CreateUser(t, client, "b")
	c := testutil.CreateUser(t, client, "c")
	owner := testutil.CreateUser(t, client, "owner")
	testutil.CreateVariant(t, client, "countersign", "countersign", true,
		testutil.Step("countersign", "users_all", fmt.Sprintf("%d,%d,%d", a.ID, b.ID, c.ID)))

	req, err := svc.CreateRequest(ctx, actorFromUser(owner), CreateInput{
		Type: "countersign", Title: "Joint sign", Body: "All must approve",
	})
	require.NoError(t, err)
	tasks := pendingTasks(t, client, req.ID)
	require.Len(t, tasks, 3)

	for i, u := range []*ent.User{a, b} {
		req, err = svc.Decide(ctx, actorFromUser(u), tasks[i].ID, "approved", nil)
		require.NoError(t, err)
		assert.Equal(t, request.StatusPending, req.Status, "request waits for the full group")
	}

	req, err = svc.Decide(ctx, actorFromUser(c), tasks[2].ID, "approved", nil)
	require.NoError(t, err)
	assert.Equal(t, request.StatusApproved, req.Status)
	assertLifecycleInvariants(t, client)
}

func TestUsersAllSingleRejectTerminates(t *testing.T) {
	client, svc := newService(t)
	ctx := context.Background()

	a := testutil.CreateUser(t, client, "a")
	b := testutil.CreateUser(t, client, "b")
	c := testutil.CreateUser(t, client, "c")
	owner := testutil.CreateUser(t, client, "owner")
	testutil.CreateVariant(t, client, "countersign", "countersign", true,
		testutil.Step("countersign", "users_all", fmt.Sprintf("%d,%d,%d", a.ID, b.ID, c.ID)))

	req, err := svc.CreateRequest(ctx, actorFromUser(owner), CreateInput{
		Type: "countersign", Title: "Joint sign", Body: "All must approve",
	})
	require.NoError(t, err)
	tasks := pendingTasks(t, client, req.ID)
	require.Len(t, tasks, 3)

	req, err = svc.Decide(ctx, actorFromUser(b), tasks[1].ID, "rejected", strPtr("veto"))
	require.NoError(t, err)
	assert.Equal(t, request.StatusRejected, req.Status)

	for _, tk := range requestTasks(t, client, req.ID) {
		if tk.ID == tasks[1].ID {
			assert.Equal(t, task.StatusRejected, tk.Status)
		} else {
			assert.Equal(t, task.StatusCanceled, tk.Status, "undecided siblings are canceled, not left pending")
		}
	}
	assertLifecycleInvariants(t, client)
}

func TestDelegationAuthorizesDecide(t *testing.T) {
	client, svc := newService(t)
	ctx := context.Background()

	admin := testutil.CreateUser(t, client, "admin", testutil.WithRole("admin"))
	proxy := testutil.CreateUser(t, client, "proxy")
	owner := testutil.CreateUser(t, client, "owner")
	testutil.CreateVariant(t, client, "signoff", "signoff", true,
		testutil.Step("signoff", "user", fmt.Sprintf("%d", admin.ID)))

	req, err := svc.CreateRequest(ctx, actorFromUser(owner), CreateInput{
		Type: "signoff", Title: "Needs admin", Body: "b",
	})
	require.NoError(t, err)
	tasks := pendingTasks(t, client, req.ID)
	require.Len(t, tasks, 1)

	// Without a delegation the proxy is rejected.
	_, err = svc.Decide(ctx, actorFromUser(proxy), tasks[0].ID, "approved", nil)
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotAuthorized, appErr.Code)

	require.NoError(t, svc.SetDelegation(ctx, actorFromUser(admin), &proxy.ID))

	req, err = svc.Decide(ctx, actorFromUser(proxy), tasks[0].ID, "approved", nil)
	require.NoError(t, err)
	assert.Equal(t, request.StatusApproved, req.Status)

	decided, err := client.Task.Get(ctx, tasks[0].ID)
	require.NoError(t, err)
	require.NotNil(t, decided.DecidedBy)
	assert.Equal(t, proxy.ID, *decided.DecidedBy)
	assertLifecycleInvariants(t, client)
}

func TestDecideAlreadyDecidedConflict(t *testing.T) {
	client, svc := newService(t)
	ctx := context.Background()

	admin := testutil.CreateUser(t, client, "admin", testutil.WithRole("admin"))
	alice := testutil.CreateUser(t, client, "alice")
	testutil.CreateVariant(t, client, "generic", "generic", true,
		testutil.Step("review", "role", "admin"))

	req, err := svc.CreateRequest(ctx, actorFromUser(alice), CreateInput{
		Type: "generic", Title: "t", Body: "b",
	})
	require.NoError(t, err)
	tasks := pendingTasks(t, client, req.ID)
	require.Len(t, tasks, 1)

	_, err = svc.Decide(ctx, actorFromUser(admin), tasks[0].ID, "approved", nil)
	require.NoError(t, err)

	_, err = svc.Decide(ctx, actorFromUser(admin), tasks[0].ID, "approved", nil)
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeTaskAlreadyDecided, appErr.Code)

	got, err := client.Request.Get(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, request.StatusApproved, got.Status, "the conflict leaves state untouched")
}

func TestWithdraw(t *testing.T) {
	client, svc := newService(t)
	ctx := context.Background()

	testutil.CreateUser(t, client, "admin", testutil.WithRole("admin"))
	alice := testutil.CreateUser(t, client, "alice")
	mallory := testutil.CreateUser(t, client, "mallory")
	testutil.CreateVariant(t, client, "generic", "generic", true,
		testutil.Step("review", "role", "admin"))

	req, err := svc.CreateRequest(ctx, actorFromUser(alice), CreateInput{
		Type: "generic", Title: "t", Body: "b",
	})
	require.NoError(t, err)

	_, err = svc.Withdraw(ctx, actorFromUser(mallory), req.ID)
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotAuthorized, appErr.Code)

	req, err = svc.Withdraw(ctx, actorFromUser(alice), req.ID)
	require.NoError(t, err)
	assert.Equal(t, request.StatusWithdrawn, req.Status)
	assert.Empty(t, pendingTasks(t, client, req.ID))

	_, err = svc.Withdraw(ctx, actorFromUser(alice), req.ID)
	appErr, ok = apperrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotEditable, appErr.Code)
	assertLifecycleInvariants(t, client)
}

func TestVoidIsAdminOnly(t *testing.T) {
	client, svc := newService(t)
	ctx := context.Background()

	admin := testutil.CreateUser(t, client, "admin", testutil.WithRole("admin"))
	alice := testutil.CreateUser(t, client, "alice")
	testutil.CreateVariant(t, client, "generic", "generic", true,
		testutil.Step("review", "role", "admin"))

	req, err := svc.CreateRequest(ctx, actorFromUser(alice), CreateInput{
		Type: "generic", Title: "t", Body: "b",
	})
	require.NoError(t, err)

	_, err = svc.Void(ctx, actorFromUser(alice), req.ID)
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotAuthorized, appErr.Code)

	req, err = svc.Void(ctx, actorFromUser(admin), req.ID)
	require.NoError(t, err)
	assert.Equal(t, request.StatusVoided, req.Status)
	assertLifecycleInvariants(t, client)
}

func TestTransferReassignsTask(t *testing.T) {
	client, svc := newService(t)
	ctx := context.Background()

	admin := testutil.CreateUser(t, client, "admin", testutil.WithRole("admin"))
	carol := testutil.CreateUser(t, client, "carol")
	alice := testutil.CreateUser(t, client, "alice")
	testutil.CreateVariant(t, client, "generic", "generic", true,
		testutil.Step("review", "role", "admin"))

	req, err := svc.CreateRequest(ctx, actorFromUser(alice), CreateInput{
		Type: "generic", Title: "t", Body: "b",
	})
	require.NoError(t, err)
	tasks := pendingTasks(t, client, req.ID)
	require.Len(t, tasks, 1)

	_, err = svc.Transfer(ctx, actorFromUser(admin), tasks[0].ID, carol.ID+1000)
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeInvalidUserID, appErr.Code)

	_, err = svc.Transfer(ctx, actorFromUser(admin), tasks[0].ID, carol.ID)
	require.NoError(t, err)

	moved, err := client.Task.Get(ctx, tasks[0].ID)
	require.NoError(t, err)
	require.NotNil(t, moved.AssigneeUserID)
	assert.Equal(t, carol.ID, *moved.AssigneeUserID)
	assert.Nil(t, moved.AssigneeRole, "role assignment is cleared on transfer")

	types := eventTypes(t, client, req.ID)
	assert.Contains(t, types, "task_transferred")
}

func TestAddSignExtendsGroup(t *testing.T) {
	client, svc := newService(t)
	ctx := context.Background()

	admin := testutil.CreateUser(t, client, "admin", testutil.WithRole("admin"))
	dave := testutil.CreateUser(t, client, "dave")
	alice := testutil.CreateUser(t, client, "alice")
	testutil.CreateVariant(t, client, "generic", "generic", true,
		testutil.Step("review", "role", "admin"))

	req, err := svc.CreateRequest(ctx, actorFromUser(alice), CreateInput{
		Type: "generic", Title: "t", Body: "b",
	})
	require.NoError(t, err)
	tasks := pendingTasks(t, client, req.ID)
	require.Len(t, tasks, 1)

	_, err = svc.AddSign(ctx, actorFromUser(admin), tasks[0].ID, dave.ID)
	require.NoError(t, err)
	require.Len(t, pendingTasks(t, client, req.ID), 2)

	// The original approver alone no longer completes the step.
	req, err = svc.Decide(ctx, actorFromUser(admin), tasks[0].ID, "approved", nil)
	require.NoError(t, err)
	assert.Equal(t, request.StatusPending, req.Status)

	remaining := pendingTasks(t, client, req.ID)
	require.Len(t, remaining, 1)
	req, err = svc.Decide(ctx, actorFromUser(dave), remaining[0].ID, "approved", nil)
	require.NoError(t, err)
	assert.Equal(t, request.StatusApproved, req.Status)
	assertLifecycleInvariants(t, client)
}

func TestCreateRejectsUnknownOrDisabledWorkflow(t *testing.T) {
	client, svc := newService(t)
	ctx := context.Background()

	alice := testutil.CreateUser(t, client, "alice")

	_, err := svc.CreateRequest(ctx, actorFromUser(alice), CreateInput{
		Type: "generic", Workflow: strPtr("nope"), Title: "t", Body: "b",
	})
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeInvalidWorkflow, appErr.Code)

	v := testutil.CreateVariant(t, client, "expense_v2", "expense", false,
		testutil.Step("review", "role", "admin"))
	_, err = client.WorkflowVariant.UpdateOneID(v.ID).SetEnabled(false).Save(ctx)
	require.NoError(t, err)

	_, err = svc.CreateRequest(ctx, actorFromUser(alice), CreateInput{
		Type: "generic", Workflow: strPtr("expense_v2"), Title: "t", Body: "b",
	})
	appErr, ok = apperrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeInvalidWorkflow, appErr.Code)
}

func TestCreateWithoutAnyVariantFallsBackToAdminTask(t *testing.T) {
	client, svc := newService(t)
	ctx := context.Background()

	alice := testutil.CreateUser(t, client, "alice")

	req, err := svc.CreateRequest(ctx, actorFromUser(alice), CreateInput{
		Type: "mystery", Title: "t", Body: "b",
	})
	require.NoError(t, err)

	tasks := pendingTasks(t, client, req.ID)
	require.Len(t, tasks, 1)
	assert.Equal(t, "admin", tasks[0].StepKey)
	require.NotNil(t, tasks[0].AssigneeRole)
	assert.Equal(t, "admin", *tasks[0].AssigneeRole)
	require.NotNil(t, tasks[0].StepOrder)
	assert.Equal(t, 1, *tasks[0].StepOrder)
}

func TestPayloadRoundTrip(t *testing.T) {
	client, svc := newService(t)
	ctx := context.Background()

	alice := testutil.CreateUser(t, client, "alice")
	testutil.CreateVariant(t, client, "generic", "generic", true,
		testutil.Step("review", "role", "admin"))

	payload := map[string]interface{}{
		"amount":   1234.5,
		"category": "travel",
		"nested":   map[string]interface{}{"k": "v"},
	}
	req, err := svc.CreateRequest(ctx, actorFromUser(alice), CreateInput{
		Type: "generic", Title: "t", Body: "b", Payload: payload,
	})
	require.NoError(t, err)

	got, err := client.Request.Get(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, payload, got.Payload)
}

func TestDecideNewestTargetsLatestPendingTask(t *testing.T) {
	client, svc := newService(t)
	ctx := context.Background()

	admin := testutil.CreateUser(t, client, "admin", testutil.WithRole("admin"))
	alice := testutil.CreateUser(t, client, "alice")
	testutil.CreateVariant(t, client, "generic", "generic", true,
		testutil.Step("review", "role", "admin"))

	req, err := svc.CreateRequest(ctx, actorFromUser(alice), CreateInput{
		Type: "generic", Title: "t", Body: "b",
	})
	require.NoError(t, err)

	req, err = svc.DecideNewest(ctx, actorFromUser(admin), req.ID, "approved")
	require.NoError(t, err)
	assert.Equal(t, request.StatusApproved, req.Status)

	_, err = svc.DecideNewest(ctx, actorFromUser(admin), req.ID, "approved")
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestInboxVisibility(t *testing.T) {
	client, svc := newService(t)
	ctx := context.Background()

	admin := testutil.CreateUser(t, client, "admin", testutil.WithRole("admin"))
	proxy := testutil.CreateUser(t, client, "proxy")
	lead := testutil.CreateUser(t, client, "lead")
	alice := testutil.CreateUser(t, client, "alice", testutil.WithManager(lead.ID))
	testutil.CreateVariant(t, client, "generic", "generic", true,
		testutil.Step("manager", "manager", ""),
		testutil.Step("review", "role", "admin"))

	_, err := svc.CreateRequest(ctx, actorFromUser(alice), CreateInput{
		Type: "generic", Title: "t", Body: "b",
	})
	require.NoError(t, err)

	// Direct assignment.
	items, err := svc.Inbox(ctx, actorFromUser(lead))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "manager", items[0].Task.StepKey)
	assert.Equal(t, "alice", items[0].OwnerUsername)

	// Delegation from the direct assignee.
	require.NoError(t, svc.SetDelegation(ctx, actorFromUser(lead), &proxy.ID))
	items, err = svc.Inbox(ctx, actorFromUser(proxy))
	require.NoError(t, err)
	require.Len(t, items, 1)

	// Role match after the step advances.
	_, err = svc.Decide(ctx, actorFromUser(lead), items[0].Task.ID, "approved", nil)
	require.NoError(t, err)
	items, err = svc.Inbox(ctx, actorFromUser(admin))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "review", items[0].Task.StepKey)

	// Returned requests surface only the resubmit task, only to the owner.
	_, err = svc.Return(ctx, actorFromUser(admin), items[0].Task.ID, strPtr("fix"))
	require.NoError(t, err)
	items, err = svc.Inbox(ctx, actorFromUser(admin))
	require.NoError(t, err)
	assert.Empty(t, items)
	items, err = svc.Inbox(ctx, actorFromUser(alice))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "resubmit", items[0].Task.StepKey)
	assert.Equal(t, request.StatusChangesRequested, items[0].RequestStatus)
}

func TestSetDelegationValidation(t *testing.T) {
	client, svc := newService(t)
	ctx := context.Background()

	alice := testutil.CreateUser(t, client, "alice")
	bob := testutil.CreateUser(t, client, "bob")

	err := svc.SetDelegation(ctx, actorFromUser(alice), &alice.ID)
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeInvalidDelegate, appErr.Code)

	ghost := bob.ID + 1000
	err = svc.SetDelegation(ctx, actorFromUser(alice), &ghost)
	appErr, ok = apperrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeInvalidDelegate, appErr.Code)

	require.NoError(t, svc.SetDelegation(ctx, actorFromUser(alice), &bob.ID))
	d, err := svc.GetDelegation(ctx, actorFromUser(alice))
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.True(t, d.Active)
	require.NotNil(t, d.DelegateUserID)
	assert.Equal(t, bob.ID, *d.DelegateUserID)

	// Clearing deactivates but keeps the row.
	require.NoError(t, svc.SetDelegation(ctx, actorFromUser(alice), nil))
	d, err = svc.GetDelegation(ctx, actorFromUser(alice))
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.False(t, d.Active)
	assert.NotNil(t, d.RevokedAt)
}
