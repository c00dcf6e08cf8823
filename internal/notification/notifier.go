// Package notification derives per-user inbox rows from request events.
package notification

import (
	"context"
	"sort"
	"time"

	"oaflow.io/oaflow/ent"
	"oaflow.io/oaflow/ent/notification"
	"oaflow.io/oaflow/ent/request"
	"oaflow.io/oaflow/ent/requestwatcher"
	"oaflow.io/oaflow/internal/pkg/metrics"
)

// notifyTypes is the set of event types that fan out to watchers and the
// owner. Everything else is audit-only.
var notifyTypes = map[string]struct{}{
	"changes_requested": {},
	"resubmitted":       {},
	"withdrawn":         {},
	"voided":            {},
	"request_approved":  {},
	"request_rejected":  {},
	"task_transferred":  {},
}

// Notifies reports whether an event type triggers notification fan-out.
func Notifies(eventType string) bool {
	_, ok := notifyTypes[eventType]
	return ok
}

// FanOut inserts one notification row per recipient of the event, inside
// the caller's transaction. Recipients are the request's watchers plus the
// owner, minus the actor, deduplicated and inserted in ascending user id
// order for determinism.
func FanOut(ctx context.Context, tx *ent.Tx, requestID int, eventType string, actorUserID *int, message string) error {
	if !Notifies(eventType) {
		return nil
	}

	ownerID, err := tx.Request.Query().
		Where(request.IDEQ(requestID)).
		Select(request.FieldUserID).
		Int(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil
		}
		return err
	}

	watcherIDs, err := tx.RequestWatcher.Query().
		Where(requestwatcher.RequestIDEQ(requestID)).
		Select(requestwatcher.FieldUserID).
		Ints(ctx)
	if err != nil {
		return err
	}

	recipients := make(map[int]struct{}, len(watcherIDs)+1)
	for _, id := range watcherIDs {
		recipients[id] = struct{}{}
	}
	recipients[ownerID] = struct{}{}
	if actorUserID != nil {
		delete(recipients, *actorUserID)
	}
	if len(recipients) == 0 {
		return nil
	}

	ordered := make([]int, 0, len(recipients))
	for id := range recipients {
		ordered = append(ordered, id)
	}
	sort.Ints(ordered)

	for _, uid := range ordered {
		create := tx.Notification.Create().
			SetUserID(uid).
			SetRequestID(requestID).
			SetEventType(eventType)
		if actorUserID != nil {
			create = create.SetActorUserID(*actorUserID)
		}
		if message != "" {
			create = create.SetMessage(message)
		}
		if _, err := create.Save(ctx); err != nil {
			return err
		}
	}
	metrics.NotificationsFanned.Add(float64(len(ordered)))
	return nil
}

// Service exposes the per-user notification read model.
type Service struct {
	client *ent.Client
}

// NewService creates a notification service.
func NewService(client *ent.Client) *Service {
	return &Service{client: client}
}

// List returns the newest notifications for a user, capped at limit.
func (s *Service) List(ctx context.Context, userID, limit int) ([]*ent.Notification, error) {
	if limit <= 0 {
		limit = 200
	}
	return s.client.Notification.Query().
		Where(notification.UserIDEQ(userID)).
		Order(ent.Desc(notification.FieldID)).
		Limit(limit).
		All(ctx)
}

// UnreadCount returns the number of unread notifications for a user.
func (s *Service) UnreadCount(ctx context.Context, userID int) (int, error) {
	return s.client.Notification.Query().
		Where(
			notification.UserIDEQ(userID),
			notification.ReadAtIsNil(),
		).
		Count(ctx)
}

// MarkRead stamps read_at on a notification owned by the user. Returns
// false when no such notification exists; marking an already-read row
// again succeeds without changing it.
func (s *Service) MarkRead(ctx context.Context, notificationID, userID int) (bool, error) {
	n, err := s.client.Notification.Update().
		Where(
			notification.IDEQ(notificationID),
			notification.UserIDEQ(userID),
			notification.ReadAtIsNil(),
		).
		SetReadAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return true, nil
	}
	return s.client.Notification.Query().
		Where(
			notification.IDEQ(notificationID),
			notification.UserIDEQ(userID),
		).
		Exist(ctx)
}
