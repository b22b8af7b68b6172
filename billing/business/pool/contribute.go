package pool

import (
	"context"
	"time"

	"github.com/google/uuid"

	"encore.dev/beta/errs"

	"encore.app/billing/model"
	"encore.app/billing/store"
)

const (
	reasonPoolHold   = "pool contribution hold"
	reasonPoolPayout = "pool payout"
	reasonPoolRefund = "pool contribution refund"
)

// Contribute escrows amount from the contributor towards the pool target.
// Bounds checks, the participant cap and the collected <= target invariant
// all run under the pool row lock, so concurrent contributions cannot
// overshoot the target.
func (b *business) Contribute(ctx context.Context, poolID int64, contributor string, amount int64) (*model.Contribution, error) {
	if amount <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "amount must be greater than 0"}
	}

	var contribution *model.Contribution
	err := b.pools.ExecuteWithLock(ctx, poolID, func(q store.Querier, current store.Pool) error {
		if current.Status != string(model.PoolStatusActive) {
			return &errs.Error{Code: errs.FailedPrecondition, Message: "pool is not active"}
		}
		if !current.Deadline.Time.After(time.Now()) {
			return &errs.Error{Code: errs.FailedPrecondition, Message: "pool deadline has passed"}
		}
		if !current.AllowPublicJoin && contributor != current.Creator {
			return &errs.Error{Code: errs.PermissionDenied, Message: "pool is not open for public contributions"}
		}

		if current.MinContribution > 0 && amount < current.MinContribution {
			return &errs.Error{Code: errs.InvalidArgument, Message: "amount is below the minimum contribution"}
		}
		if current.MaxContribution > 0 && amount > current.MaxContribution {
			return &errs.Error{Code: errs.InvalidArgument, Message: "amount is above the maximum contribution"}
		}
		if current.CollectedAmount+amount > current.TotalAmount {
			return &errs.Error{Code: errs.FailedPrecondition, Message: "contribution would exceed target amount"}
		}

		if current.MaxParticipants > 0 {
			participants, err := q.CountDistinctContributors(ctx, poolID)
			if err != nil {
				return &errs.Error{Code: errs.Internal, Message: "failed to count participants"}
			}
			if participants >= int64(current.MaxParticipants) {
				existing, err := q.ListUnclaimedContributionsByContributor(ctx, store.ListUnclaimedContributionsByContributorParams{
					PoolID:      poolID,
					Contributor: contributor,
				})
				if err != nil {
					return &errs.Error{Code: errs.Internal, Message: "failed to check contributor"}
				}
				if len(existing) == 0 {
					return &errs.Error{Code: errs.FailedPrecondition, Message: "pool is full"}
				}
			}
		}

		referenceID := uuid.NewString()
		if err := b.ledger.Hold(ctx, q, contributor, current.Asset, amount, reasonPoolHold, referenceID); err != nil {
			return err
		}

		dbContribution, err := q.CreateContribution(ctx, store.CreateContributionParams{
			PoolID:      poolID,
			Contributor: contributor,
			Amount:      amount,
		})
		if err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to record contribution"}
		}

		if _, err := q.UpdatePoolCollected(ctx, store.UpdatePoolCollectedParams{
			ID:              poolID,
			CollectedAmount: current.CollectedAmount + amount,
		}); err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to update pool"}
		}

		contribution = convertDBContributionToModel(dbContribution)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return contribution, nil
}
