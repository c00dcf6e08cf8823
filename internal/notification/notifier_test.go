package notification

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oaflow.io/oaflow/ent"
	"oaflow.io/oaflow/ent/notification"
	"oaflow.io/oaflow/ent/request"
	"oaflow.io/oaflow/ent/requestwatcher"
	"oaflow.io/oaflow/internal/testutil"
)

func TestNotifies(t *testing.T) {
	for _, et := range []string{
		"changes_requested", "resubmitted", "withdrawn", "voided",
		"request_approved", "request_rejected", "task_transferred",
	} {
		assert.True(t, Notifies(et), et)
	}
	for _, et := range []string{"created", "task_created", "task_decided", "task_returned", "task_addsigned"} {
		assert.False(t, Notifies(et), et)
	}
}

func seedRequest(t *testing.T, client *ent.Client, ownerID int) *ent.Request {
	t.Helper()
	req, err := client.Request.Create().
		SetUserID(ownerID).
		SetRequestType("generic").
		SetTitle("t").
		SetBody("b").
		SetStatus(request.StatusPending).
		Save(context.Background())
	require.NoError(t, err)
	return req
}

func addWatcher(t *testing.T, client *ent.Client, requestID, userID int) {
	t.Helper()
	_, err := client.RequestWatcher.Create().
		SetRequestID(requestID).
		SetUserID(userID).
		SetKind(requestwatcher.KindCc).
		Save(context.Background())
	require.NoError(t, err)
}

func TestFanOutRecipients(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "notification")
	ctx := context.Background()

	owner := testutil.CreateUser(t, client, "owner")
	w1 := testutil.CreateUser(t, client, "w1")
	w2 := testutil.CreateUser(t, client, "w2")
	actor := testutil.CreateUser(t, client, "actor")

	req := seedRequest(t, client, owner.ID)
	addWatcher(t, client, req.ID, w2.ID)
	addWatcher(t, client, req.ID, w1.ID)
	addWatcher(t, client, req.ID, actor.ID)

	tx, err := client.Tx(ctx)
	require.NoError(t, err)
	require.NoError(t, FanOut(ctx, tx, req.ID, "request_approved", &actor.ID, "done"))
	require.NoError(t, tx.Commit())

	rows, err := client.Notification.Query().
		Order(ent.Asc(notification.FieldID)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 3, "watchers plus owner minus actor")

	var recipients []int
	for _, n := range rows {
		recipients = append(recipients, n.UserID)
		assert.Equal(t, "request_approved", n.EventType)
		require.NotNil(t, n.RequestID)
		assert.Equal(t, req.ID, *n.RequestID)
		require.NotNil(t, n.ActorUserID)
		assert.Equal(t, actor.ID, *n.ActorUserID)
		assert.Equal(t, "done", n.Message)
	}
	assert.Equal(t, []int{owner.ID, w1.ID, w2.ID}, recipients, "insertion order is ascending user id")
}

func TestFanOutSkipsAuditOnlyEvents(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "notification")
	ctx := context.Background()

	owner := testutil.CreateUser(t, client, "owner")
	req := seedRequest(t, client, owner.ID)

	tx, err := client.Tx(ctx)
	require.NoError(t, err)
	require.NoError(t, FanOut(ctx, tx, req.ID, "task_created", nil, "step=review"))
	require.NoError(t, tx.Commit())

	count, err := client.Notification.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestFanOutActorIsOnlyRecipient(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "notification")
	ctx := context.Background()

	owner := testutil.CreateUser(t, client, "owner")
	req := seedRequest(t, client, owner.ID)

	// The owner withdrawing their own unwatched request notifies nobody.
	tx, err := client.Tx(ctx)
	require.NoError(t, err)
	require.NoError(t, FanOut(ctx, tx, req.ID, "withdrawn", &owner.ID, ""))
	require.NoError(t, tx.Commit())

	count, err := client.Notification.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestServiceReadModel(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "notification")
	ctx := context.Background()
	svc := NewService(client)

	alice := testutil.CreateUser(t, client, "alice")
	bob := testutil.CreateUser(t, client, "bob")

	var last *ent.Notification
	for i := 0; i < 3; i++ {
		n, err := client.Notification.Create().
			SetUserID(alice.ID).
			SetEventType("request_approved").
			Save(ctx)
		require.NoError(t, err)
		last = n
	}

	list, err := svc.List(ctx, alice.ID, 2)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, last.ID, list[0].ID, "newest first")

	count, err := svc.UnreadCount(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	ok, err := svc.MarkRead(ctx, last.ID, alice.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.MarkRead(ctx, last.ID, alice.ID)
	require.NoError(t, err)
	assert.True(t, ok, "marking an already-read row is idempotent")

	ok, err = svc.MarkRead(ctx, last.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, ok, "foreign notifications are invisible")

	count, err = svc.UnreadCount(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
