package reward

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"encore.app/billing/model"
)

// GetReward returns the recipient's latest reward record.
func (b *business) GetReward(ctx context.Context, recipient string) (*model.RewardRecord, error) {
	dbReward, err := b.queries.GetLatestRewardByRecipient(ctx, recipient)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "reward not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get reward"}
	}

	return convertDBRewardToModel(dbReward), nil
}

func (b *business) ListRewards(ctx context.Context, recipient string) ([]model.RewardRecord, error) {
	dbRewards, err := b.queries.ListRewardsByRecipient(ctx, recipient)
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to list rewards"}
	}

	rewards := make([]model.RewardRecord, 0, len(dbRewards))
	for _, dbReward := range dbRewards {
		rewards = append(rewards, *convertDBRewardToModel(dbReward))
	}

	return rewards, nil
}
