package billing

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/billing/model"
)

type ClaimRewardRequest struct {
	Actor string `header:"X-Wallet-Address" json:"-" validate:"required"`
}

type RewardResponse struct {
	Reward model.RewardRecord `json:"reward"`
}

// ClaimReward mints or upgrades the caller's reward from their confirmed
// payment history.
//
//encore:api public path=/v1/rewards/claim method=POST
func (s *Service) ClaimReward(ctx context.Context, req *ClaimRewardRequest) (*RewardResponse, error) {
	reward, err := s.rewards.ClaimReward(ctx, req.Actor)
	if err != nil {
		rlog.Error("failed to claim reward", "error", err)
		return nil, err
	}

	return &RewardResponse{
		Reward: *reward,
	}, nil
}

// Validate implements validation for ClaimRewardRequest
func (r *ClaimRewardRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	return nil
}
