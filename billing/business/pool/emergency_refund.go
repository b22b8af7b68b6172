package pool

import (
	"context"
	"time"

	"github.com/google/uuid"

	"encore.dev/beta/errs"

	"encore.app/billing/business/ledger"
	"encore.app/billing/model"
	"encore.app/billing/store"
)

// EmergencyRefund lets a contributor reclaim their own escrowed contributions
// from an active pool whose deadline has passed without completion. Returns
// the total amount refunded.
func (b *business) EmergencyRefund(ctx context.Context, poolID int64, contributor string) (int64, error) {
	var refunded int64
	err := b.pools.ExecuteWithLock(ctx, poolID, func(q store.Querier, current store.Pool) error {
		if current.Status != string(model.PoolStatusActive) {
			return &errs.Error{Code: errs.FailedPrecondition, Message: "pool is not active"}
		}
		if current.Deadline.Time.After(time.Now()) {
			return &errs.Error{Code: errs.InvalidArgument, Message: "pool deadline has not passed"}
		}

		contributions, err := q.ListUnclaimedContributionsByContributor(ctx, store.ListUnclaimedContributionsByContributorParams{
			PoolID:      poolID,
			Contributor: contributor,
		})
		if err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to list contributions"}
		}
		if len(contributions) == 0 {
			return &errs.Error{Code: errs.NotFound, Message: "no refundable contribution found"}
		}

		referenceID := uuid.NewString()
		for _, contribution := range contributions {
			if err := b.ledger.RefundHold(ctx, q, contribution.Contributor, current.Asset, contribution.Amount, reasonPoolRefund, referenceID); err != nil {
				return err
			}
			if err := q.MarkContributionClaimed(ctx, contribution.ID); err != nil {
				return &errs.Error{Code: errs.Internal, Message: "failed to mark contribution claimed"}
			}
			refunded += contribution.Amount
		}

		if _, err := q.UpdatePoolCollected(ctx, store.UpdatePoolCollectedParams{
			ID:              poolID,
			CollectedAmount: current.CollectedAmount - refunded,
		}); err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to update pool"}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return refunded, nil
}

// refundUnclaimed returns every unclaimed contribution of the pool to its
// contributor. Callers hold the pool row lock.
func refundUnclaimed(ctx context.Context, q store.Querier, ledgerBusiness ledger.Business, current store.Pool) error {
	contributions, err := q.ListUnclaimedContributionsByPool(ctx, current.ID)
	if err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to list contributions"}
	}

	referenceID := uuid.NewString()
	for _, contribution := range contributions {
		if err := ledgerBusiness.RefundHold(ctx, q, contribution.Contributor, current.Asset, contribution.Amount, reasonPoolRefund, referenceID); err != nil {
			return err
		}
		if err := q.MarkContributionClaimed(ctx, contribution.ID); err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to mark contribution claimed"}
		}
	}
	return nil
}
