package reward

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"encore.app/billing/model"
	"encore.app/billing/store"
)

// MintOrUpgrade recomputes the recipient's tier from confirmed payment
// history. The first confirmed payment mints a record; later refreshes
// upgrade the latest record in place. A refresh never lowers the tier.
func (b *business) MintOrUpgrade(ctx context.Context, recipient string) (*model.RewardRecord, error) {
	var record *model.RewardRecord
	err := b.tx.RunInTx(ctx, func(q store.Querier) error {
		stats, err := q.GetConfirmedPaymentStats(ctx, recipient)
		if err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to load payment stats"}
		}
		if stats.PaymentsCompleted == 0 {
			return &errs.Error{Code: errs.FailedPrecondition, Message: "no confirmed payments yet"}
		}

		tier := TierFor(stats.PaymentsCompleted)

		current, err := q.GetLatestRewardByRecipientForUpdate(ctx, recipient)
		if err != nil {
			if !errors.Is(err, pgx.ErrNoRows) {
				return &errs.Error{Code: errs.Internal, Message: "failed to load reward record"}
			}

			minted, err := q.CreateRewardRecord(ctx, store.CreateRewardRecordParams{
				Recipient:         recipient,
				Tier:              string(tier),
				PaymentsCompleted: stats.PaymentsCompleted,
				TotalValue:        stats.TotalValue,
				Achievement:       achievementFor(tier),
			})
			if err != nil {
				return &errs.Error{Code: errs.Internal, Message: "failed to mint reward"}
			}
			record = convertDBRewardToModel(minted)
			return nil
		}

		if tier.Rank() < model.RewardTier(current.Tier).Rank() {
			tier = model.RewardTier(current.Tier)
		}

		updated, err := q.UpdateRewardRecord(ctx, store.UpdateRewardRecordParams{
			ID:                current.ID,
			Tier:              string(tier),
			PaymentsCompleted: stats.PaymentsCompleted,
			TotalValue:        stats.TotalValue,
			Achievement:       achievementFor(tier),
		})
		if err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to upgrade reward"}
		}
		record = convertDBRewardToModel(updated)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return record, nil
}

// ClaimReward is the user-facing entry point for MintOrUpgrade.
func (b *business) ClaimReward(ctx context.Context, recipient string) (*model.RewardRecord, error) {
	return b.MintOrUpgrade(ctx, recipient)
}
