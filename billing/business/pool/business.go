package pool

import (
	"context"
	"time"

	"encore.app/billing/business/ledger"
	"encore.app/billing/domain"
	"encore.app/billing/model"
	"encore.app/billing/store"
)

type Business interface {
	CreatePool(ctx context.Context, pool *model.Pool) (*model.Pool, error)
	GetPool(ctx context.Context, id int64) (*model.Pool, error)
	ListActivePools(ctx context.Context, publicOnly bool, limit, offset int32) ([]*model.Pool, error)

	Contribute(ctx context.Context, poolID int64, contributor string, amount int64) (*model.Contribution, error)
	CompletePool(ctx context.Context, poolID int64, actor, destination string) error
	CancelPool(ctx context.Context, poolID int64, actor string) error
	EmergencyRefund(ctx context.Context, poolID int64, contributor string) (int64, error)
	ExpirePool(ctx context.Context, poolID int64) error
	RefundExpiredPools(ctx context.Context, now time.Time, limit int32) (int, error)
}

type business struct {
	queries store.Querier
	pools   domain.PoolStateMachine
	ledger  ledger.Business
}

// NewPoolBusiness creates the pool engine. All pool mutations run under the
// pool row lock; contributor funds move through the ledger inside the same
// transaction, so an insufficient balance rolls the whole call back.
func NewPoolBusiness(queries store.Querier, pools domain.PoolStateMachine, ledgerBusiness ledger.Business) Business {
	return &business{
		queries: queries,
		pools:   pools,
		ledger:  ledgerBusiness,
	}
}

func convertDBPoolToModel(dbPool store.Pool) *model.Pool {
	pool := &model.Pool{
		ID:              dbPool.ID,
		Creator:         dbPool.Creator,
		Payee:           dbPool.Payee,
		Asset:           dbPool.Asset,
		TotalAmount:     dbPool.TotalAmount,
		CollectedAmount: dbPool.CollectedAmount,
		MinContribution: dbPool.MinContribution,
		MaxContribution: dbPool.MaxContribution,
		MaxParticipants: dbPool.MaxParticipants,
		Deadline:        dbPool.Deadline.Time,
		Status:          model.PoolStatus(dbPool.Status),
		SplitType:       model.SplitType(dbPool.SplitType),
		AllowPublicJoin: dbPool.AllowPublicJoin,
		IdempotencyKey:  dbPool.IdempotencyKey,
		CreatedAt:       dbPool.CreatedAt.Time,
		UpdatedAt:       dbPool.UpdatedAt.Time,
	}

	if dbPool.Description.Valid {
		pool.Description = &dbPool.Description.String
	}

	if dbPool.Category.Valid {
		pool.Category = &dbPool.Category.String
	}

	return pool
}

func convertDBContributionToModel(dbContribution store.Contribution) *model.Contribution {
	return &model.Contribution{
		ID:          dbContribution.ID,
		PoolID:      dbContribution.PoolID,
		Contributor: dbContribution.Contributor,
		Amount:      dbContribution.Amount,
		Claimed:     dbContribution.Claimed,
		CreatedAt:   dbContribution.CreatedAt.Time,
	}
}
