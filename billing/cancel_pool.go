package billing

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
)

type CancelPoolRequest struct {
	Actor string `header:"X-Wallet-Address" json:"-" validate:"required"`
}

// CancelPool refunds all contributors and closes the pool. Creator only.
//
//encore:api public path=/v1/pools/:id/cancel method=POST
func (s *Service) CancelPool(ctx context.Context, id int64, req *CancelPoolRequest) (*PoolResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid pool ID"}
	}

	err := s.pools.CancelPool(ctx, id, req.Actor)
	if err != nil {
		rlog.Error("failed to cancel pool", "error", err, "pool_id", id)
		return nil, err
	}

	pool, err := s.pools.GetPool(ctx, id)
	if err != nil {
		rlog.Error("failed to get cancelled pool", "error", err, "pool_id", id)
		return nil, err
	}

	return &PoolResponse{
		Pool: *pool,
	}, nil
}

// Validate implements validation for CancelPoolRequest
func (r *CancelPoolRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	return nil
}
