package billing

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
)

type CompletePoolRequest struct {
	Actor string `header:"X-Wallet-Address" json:"-" validate:"required"`

	Destination string `json:"destination,omitempty"`
}

// CompletePool pays a fully funded pool out to the destination. The creator
// only; with no destination given the pool's payee receives the funds.
//
//encore:api public path=/v1/pools/:id/complete method=POST
func (s *Service) CompletePool(ctx context.Context, id int64, req *CompletePoolRequest) (*PoolResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid pool ID"}
	}

	err := s.pools.CompletePool(ctx, id, req.Actor, req.Destination)
	if err != nil {
		rlog.Error("failed to complete pool", "error", err, "pool_id", id)
		return nil, err
	}

	pool, err := s.pools.GetPool(ctx, id)
	if err != nil {
		rlog.Error("failed to get completed pool", "error", err, "pool_id", id)
		return nil, err
	}

	return &PoolResponse{
		Pool: *pool,
	}, nil
}

// Validate implements validation for CompletePoolRequest
func (r *CompletePoolRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	return nil
}
