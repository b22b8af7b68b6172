package pool

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"

	"encore.app/billing/model"
	"encore.app/billing/store"
)

// ExpirePool refunds all unclaimed contributions of a lapsed pool and
// cancels it. Fails the precondition if the pool is no longer active or the
// deadline has not passed, which makes duplicated invocations safe.
func (b *business) ExpirePool(ctx context.Context, poolID int64) error {
	return b.pools.ExecuteWithLock(ctx, poolID, func(q store.Querier, current store.Pool) error {
		if current.Status != string(model.PoolStatusActive) {
			return &errs.Error{Code: errs.FailedPrecondition, Message: "pool is not active"}
		}
		if current.Deadline.Time.After(time.Now()) {
			return &errs.Error{Code: errs.FailedPrecondition, Message: "pool deadline has not passed"}
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

// RefundExpiredPools sweeps active pools whose deadline has passed. Each pool
// is processed in its own transaction so one failure does not block the rest
// of the batch; pools completed or cancelled since listing are skipped.
func (b *business) RefundExpiredPools(ctx context.Context, now time.Time, limit int32) (int, error) {
	expired, err := b.queries.ListExpiredActivePools(ctx, store.ListExpiredActivePoolsParams{
		Deadline: pgtype.Timestamptz{Time: now, Valid: true},
		Limit:    limit,
	})
	if err != nil {
		return 0, &errs.Error{Code: errs.Internal, Message: "failed to list expired pools"}
	}

	var swept int
	for _, dbPool := range expired {
		if err := b.ExpirePool(ctx, dbPool.ID); err != nil {
			var e *errs.Error
			if errors.As(err, &e) && e.Code == errs.FailedPrecondition {
				continue
			}
			return swept, err
		}
		swept++
	}

	return swept, nil
}
