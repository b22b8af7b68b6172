package billing

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
)

//encore:api public path=/v1/pools/:id method=GET
func (s *Service) GetPool(ctx context.Context, id int64) (*PoolResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid pool ID"}
	}

	result, err := s.pools.GetPool(ctx, id)
	if err != nil {
		rlog.Error("failed to get pool", "error", err, "id", id)
		return nil, err
	}

	return &PoolResponse{
		Pool: *result,
	}, nil
}
