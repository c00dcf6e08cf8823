package workflow

import (
	"context"

	"oaflow.io/oaflow/ent"
	"oaflow.io/oaflow/internal/notification"
)

// Event types recorded in the audit trail. The notify subset additionally
// fans out to watchers (see the notification package).
const (
	EventCreated          = "created"
	EventTaskCreated      = "task_created"
	EventTaskDecided      = "task_decided"
	EventTaskReturned     = "task_returned"
	EventTaskTransferred  = "task_transferred"
	EventTaskAddsigned    = "task_addsigned"
	EventChangesRequested = "changes_requested"
	EventResubmitted      = "resubmitted"
	EventWithdrawn        = "withdrawn"
	EventVoided           = "voided"
	EventRequestApproved  = "request_approved"
	EventRequestRejected  = "request_rejected"
)

// appendEvent writes an audit line and, for qualifying event types, the
// notification fan-out, inside the caller's transaction.
func appendEvent(ctx context.Context, tx *ent.Tx, requestID int, eventType string, actorUserID *int, message string) error {
	create := tx.RequestEvent.Create().
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
	return notification.FanOut(ctx, tx, requestID, eventType, actorUserID, message)
}
