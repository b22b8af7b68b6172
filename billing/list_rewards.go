package billing

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/billing/model"
)

type GetRewardsRequest struct {
	Actor string `header:"X-Wallet-Address" validate:"required"`
}

type GetRewardsResponse struct {
	Rewards []model.RewardRecord `json:"rewards"`
}

//encore:api public path=/v1/rewards method=GET
func (s *Service) ListRewards(ctx context.Context, req *GetRewardsRequest) (*GetRewardsResponse, error) {
	rewards, err := s.rewards.ListRewards(ctx, req.Actor)
	if err != nil {
		rlog.Error("failed to get rewards", "error", err)
		return nil, err
	}

	return &GetRewardsResponse{
		Rewards: rewards,
	}, nil
}

// Validate implements validation for GetRewardsRequest
func (r *GetRewardsRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	return nil
}
