package workflow

import (
	"context"
	"time"

	"oaflow.io/oaflow/ent"
	"oaflow.io/oaflow/ent/delegation"
	"oaflow.io/oaflow/ent/user"
	"oaflow.io/oaflow/internal/infrastructure"
	apperrors "oaflow.io/oaflow/internal/pkg/errors"
)

// SetDelegation upserts the actor's single delegation row. A nil delegate
// deactivates it; otherwise the delegate must exist and differ from the
// actor.
func (s *Service) SetDelegation(ctx context.Context, actor Actor, delegateID *int) error {
	if delegateID != nil {
		if *delegateID == actor.ID {
			return apperrors.BadRequest(apperrors.CodeInvalidDelegate, "cannot delegate to yourself")
		}
		exists, err := s.client.User.Query().Where(user.IDEQ(*delegateID)).Exist(ctx)
		if err != nil {
			return err
		}
		if !exists {
			return apperrors.BadRequest(apperrors.CodeInvalidDelegate, "delegate does not exist")
		}
	}

	active := delegateID != nil
	return infrastructure.WithTx(ctx, s.client, func(tx *ent.Tx) error {
		existing, err := tx.Delegation.Query().
			Where(delegation.DelegatorUserIDEQ(actor.ID)).
			Only(ctx)
		if err != nil && !ent.IsNotFound(err) {
			return err
		}

		if existing != nil {
			upd := tx.Delegation.UpdateOneID(existing.ID).SetActive(active)
			if delegateID != nil {
				upd = upd.SetDelegateUserID(*delegateID).ClearRevokedAt()
			} else {
				upd = upd.ClearDelegateUserID().SetRevokedAt(time.Now().UTC())
			}
			_, err = upd.Save(ctx)
			return err
		}

		create := tx.Delegation.Create().
			SetDelegatorUserID(actor.ID).
			SetActive(active)
		if delegateID != nil {
			create = create.SetDelegateUserID(*delegateID)
		} else {
			create = create.SetRevokedAt(time.Now().UTC())
		}
		_, err = create.Save(ctx)
		return err
	})
}

// GetDelegation returns the actor's delegation row, or nil when none was
// ever set.
func (s *Service) GetDelegation(ctx context.Context, actor Actor) (*ent.Delegation, error) {
	d, err := s.client.Delegation.Query().
		Where(delegation.DelegatorUserIDEQ(actor.ID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return d, nil
}
