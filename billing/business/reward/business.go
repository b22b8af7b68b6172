package reward

import (
	"context"

	"encore.app/billing/domain"
	"encore.app/billing/model"
	"encore.app/billing/store"
)

type Business interface {
	MintOrUpgrade(ctx context.Context, recipient string) (*model.RewardRecord, error)
	ClaimReward(ctx context.Context, recipient string) (*model.RewardRecord, error)
	GetReward(ctx context.Context, recipient string) (*model.RewardRecord, error)
	ListRewards(ctx context.Context, recipient string) ([]model.RewardRecord, error)
}

type business struct {
	queries store.Querier
	tx      domain.TxRunner
}

// NewRewardBusiness creates the reward engine. Rewards derive entirely from
// confirmed payment history; tier refreshes take a row lock on the latest
// record so concurrent refreshes never downgrade.
func NewRewardBusiness(queries store.Querier, tx domain.TxRunner) Business {
	return &business{
		queries: queries,
		tx:      tx,
	}
}

func convertDBRewardToModel(dbReward store.RewardRecord) *model.RewardRecord {
	return &model.RewardRecord{
		ID:                dbReward.ID,
		Recipient:         dbReward.Recipient,
		Tier:              model.RewardTier(dbReward.Tier),
		PaymentsCompleted: dbReward.PaymentsCompleted,
		TotalValue:        dbReward.TotalValue,
		Achievement:       dbReward.Achievement,
		MintedAt:          dbReward.MintedAt.Time,
		UpdatedAt:         dbReward.UpdatedAt.Time,
	}
}
