package jobs

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/riverqueue/river"
	"github.com/stretchr/testify/require"

	"oaflow.io/oaflow/ent"
	"oaflow.io/oaflow/internal/pkg/logger"
	"oaflow.io/oaflow/internal/testutil"
)

func init() {
	_ = logger.Init("error", "json")
}

func TestNotificationCleanupArgsKind(t *testing.T) {
	t.Parallel()

	if got := (NotificationCleanupArgs{}).Kind(); got != "notification_cleanup" {
		t.Fatalf("Kind() = %q, want %q", got, "notification_cleanup")
	}
}

func TestNotificationCleanupArgsInsertOpts(t *testing.T) {
	t.Parallel()

	opts := (NotificationCleanupArgs{}).InsertOpts()
	if opts.Queue != river.QueueDefault {
		t.Fatalf("Queue = %q, want %q", opts.Queue, river.QueueDefault)
	}
	if opts.MaxAttempts != 1 {
		t.Fatalf("MaxAttempts = %d, want 1", opts.MaxAttempts)
	}
	if opts.UniqueOpts.ByPeriod != 24*time.Hour {
		t.Fatalf("UniqueOpts.ByPeriod = %s, want %s", opts.UniqueOpts.ByPeriod, 24*time.Hour)
	}
	if !opts.UniqueOpts.ByQueue {
		t.Fatal("UniqueOpts.ByQueue = false, want true")
	}
	if !opts.UniqueOpts.ByArgs {
		t.Fatal("UniqueOpts.ByArgs = false, want true")
	}
}

func TestNewNotificationCleanupWorkerRetention(t *testing.T) {
	t.Parallel()

	t.Run("defaults to ninety days when non-positive", func(t *testing.T) {
		w := NewNotificationCleanupWorker(nil, 0)
		if w.retention != DefaultNotificationRetention {
			t.Fatalf("retention = %s, want %s", w.retention, DefaultNotificationRetention)
		}
	})

	t.Run("uses explicit retention when provided", func(t *testing.T) {
		want := 7 * 24 * time.Hour
		w := NewNotificationCleanupWorker(nil, want)
		if w.retention != want {
			t.Fatalf("retention = %s, want %s", w.retention, want)
		}
	})
}

func TestNotificationCleanupWorkerWork_Uninitialized(t *testing.T) {
	t.Parallel()

	t.Run("nil receiver", func(t *testing.T) {
		var w *NotificationCleanupWorker
		err := w.Work(context.Background(), nil)
		if err == nil || !strings.Contains(err.Error(), "not initialized") {
			t.Fatalf("Work() error = %v, want contains %q", err, "not initialized")
		}
	})

	t.Run("nil ent client", func(t *testing.T) {
		w := &NotificationCleanupWorker{}
		err := w.Work(context.Background(), nil)
		if err == nil || !strings.Contains(err.Error(), "not initialized") {
			t.Fatalf("Work() error = %v, want contains %q", err, "not initialized")
		}
	})
}

func TestNotificationCleanupWorkerWork_PrunesOnlyReadAndExpired(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "jobs")
	ctx := context.Background()

	user := testutil.CreateUser(t, client, "reader")
	old := time.Now().UTC().Add(-48 * time.Hour)
	readAt := time.Now().UTC().Add(-36 * time.Hour)

	create := func(createdAt time.Time, read bool) *ent.Notification {
		c := client.Notification.Create().
			SetUserID(user.ID).
			SetEventType("request_approved").
			SetCreatedAt(createdAt)
		if read {
			c = c.SetReadAt(readAt)
		}
		n, err := c.Save(ctx)
		require.NoError(t, err)
		return n
	}

	expiredRead := create(old, true)
	expiredUnread := create(old, false)
	freshRead := create(time.Now().UTC(), true)

	w := NewNotificationCleanupWorker(client, 24*time.Hour)
	require.NoError(t, w.Work(ctx, nil))

	_, err := client.Notification.Get(ctx, expiredRead.ID)
	require.True(t, ent.IsNotFound(err), "expired read notification must be pruned")

	_, err = client.Notification.Get(ctx, expiredUnread.ID)
	require.NoError(t, err, "unread notifications are kept regardless of age")

	_, err = client.Notification.Get(ctx, freshRead.ID)
	require.NoError(t, err, "recent notifications are kept")
}
