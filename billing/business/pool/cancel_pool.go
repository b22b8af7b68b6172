package pool

import (
	"context"

	"encore.dev/beta/errs"

	"encore.app/billing/model"
	"encore.app/billing/store"
)

// CancelPool refunds every unclaimed contribution back to its contributor and
// marks the pool cancelled. Only the creator may cancel an active pool.
func (b *business) CancelPool(ctx context.Context, poolID int64, actor string) error {
	return b.pools.ExecuteWithLock(ctx, poolID, func(q store.Querier, current store.Pool) error {
		if actor != current.Creator {
			return &errs.Error{Code: errs.PermissionDenied, Message: "only the pool creator can cancel the pool"}
		}
		if current.Status != string(model.PoolStatusActive) {
			return &errs.Error{Code: errs.FailedPrecondition, Message: "pool is not active"}
		}

		if err := refundUnclaimed(ctx, q, b.ledger, current); err != nil {
			return err
		}

		if _, err := q.UpdatePoolStatus(ctx, store.UpdatePoolStatusParams{
			ID:     poolID,
			Status: string(model.PoolStatusCancelled),
		}); err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to update pool status"}
		}
		return nil
	})
}
