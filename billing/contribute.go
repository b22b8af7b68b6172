package billing

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/billing/model"
)

type ContributeRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`
	Actor          string `header:"X-Wallet-Address" json:"-" validate:"required"`

	Amount int64 `json:"amount" validate:"required,min=1"`
}

type ContributionResponse struct {
	Contribution model.Contribution `json:"contribution"`
}

// Contribute escrows the contributor's amount towards the pool target.
//
//encore:api public path=/v1/pools/:id/contributions method=POST tag:idempotency
func (s *Service) Contribute(ctx context.Context, id int64, req *ContributeRequest) (*ContributionResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid pool ID"}
	}

	contribution, err := s.pools.Contribute(ctx, id, req.Actor, req.Amount)
	if err != nil {
		rlog.Error("failed to contribute", "error", err, "pool_id", id)
		return nil, err
	}

	return &ContributionResponse{
		Contribution: *contribution,
	}, nil
}

// Validate implements validation for ContributeRequest
func (r *ContributeRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	return nil
}
