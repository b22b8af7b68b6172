package pool

import (
	"context"

	"github.com/google/uuid"

	"encore.dev/beta/errs"

	"encore.app/billing/model"
	"encore.app/billing/store"
)

// CompletePool releases every unclaimed contribution to the destination and
// marks the pool completed. Only the creator may complete, and only once the
// collected amount has reached the target.
func (b *business) CompletePool(ctx context.Context, poolID int64, actor, destination string) error {
	return b.pools.ExecuteWithLock(ctx, poolID, func(q store.Querier, current store.Pool) error {
		if actor != current.Creator {
			return &errs.Error{Code: errs.PermissionDenied, Message: "only the pool creator can complete the pool"}
		}
		if current.Status != string(model.PoolStatusActive) {
			return &errs.Error{Code: errs.FailedPrecondition, Message: "pool is not active"}
		}
		if current.CollectedAmount != current.TotalAmount {
			return &errs.Error{Code: errs.FailedPrecondition, Message: "pool is not fully funded"}
		}

		if destination == "" {
			destination = current.Payee
		}

		contributions, err := q.ListUnclaimedContributionsByPool(ctx, poolID)
		if err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to list contributions"}
		}

		referenceID := uuid.NewString()
		for _, contribution := range contributions {
			if err := b.ledger.Release(ctx, q, contribution.Contributor, destination, current.Asset, contribution.Amount, reasonPoolPayout, referenceID); err != nil {
				return err
			}
			if err := q.MarkContributionClaimed(ctx, contribution.ID); err != nil {
				return &errs.Error{Code: errs.Internal, Message: "failed to mark contribution claimed"}
			}
		}

		if _, err := q.UpdatePoolStatus(ctx, store.UpdatePoolStatusParams{
			ID:     poolID,
			Status: string(model.PoolStatusCompleted),
		}); err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to update pool status"}
		}
		return nil
	})
}
