package pool

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"

	"encore.app/billing/model"
	"encore.app/billing/store"
)

// GetPool returns the pool with its contributions.
func (b *business) GetPool(ctx context.Context, id int64) (*model.Pool, error) {
	dbPool, err := b.queries.GetPool(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "pool not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get pool"}
	}

	dbContributions, err := b.queries.ListContributionsByPool(ctx, id)
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to list contributions"}
	}

	pool := convertDBPoolToModel(dbPool)
	pool.Contributions = make([]model.Contribution, 0, len(dbContributions))
	for _, dbContribution := range dbContributions {
		pool.Contributions = append(pool.Contributions, *convertDBContributionToModel(dbContribution))
	}

	return pool, nil
}

// ListActivePools returns active pools with a future deadline. With
// publicOnly set, pools closed to public contributions are filtered out.
func (b *business) ListActivePools(ctx context.Context, publicOnly bool, limit, offset int32) ([]*model.Pool, error) {
	if limit <= 0 {
		limit = 50
	}

	dbPools, err := b.queries.ListActivePools(ctx, store.ListActivePoolsParams{
		Deadline: pgtype.Timestamptz{Time: time.Now(), Valid: true},
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to list pools"}
	}

	pools := make([]*model.Pool, 0, len(dbPools))
	for _, dbPool := range dbPools {
		if publicOnly && !dbPool.AllowPublicJoin {
			continue
		}
		pools = append(pools, convertDBPoolToModel(dbPool))
	}

	return pools, nil
}
