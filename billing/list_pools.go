package billing

import (
	"context"

	"encore.dev/rlog"

	"encore.app/billing/model"
)

type GetPoolsRequest struct {
	PublicOnly bool `query:"public_only"`
	Limit      int  `query:"limit"`
	Offset     int  `query:"offset"`
}

type GetPoolsResponse struct {
	Pools  []model.Pool `json:"pools"`
	Limit  int          `json:"limit"`
	Offset int          `json:"offset"`
}

//encore:api public path=/v1/pools method=GET
func (s *Service) ListPools(ctx context.Context, req *GetPoolsRequest) (*GetPoolsResponse, error) {
	if req.Limit <= 0 {
		req.Limit = 10
	}
	if req.Limit > 100 {
		req.Limit = 100
	}

	pools, err := s.pools.ListActivePools(ctx, req.PublicOnly, int32(req.Limit), int32(req.Offset))
	if err != nil {
		rlog.Error("failed to get pools", "error", err)
		return nil, err
	}

	response := &GetPoolsResponse{
		Pools:  make([]model.Pool, len(pools)),
		Limit:  req.Limit,
		Offset: req.Offset,
	}

	for i, pool := range pools {
		response.Pools[i] = *pool
	}

	return response, nil
}
