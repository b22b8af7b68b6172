package pool

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"

	"encore.app/billing/model"
	"encore.app/billing/store"
)

// CreatePool registers a new contribution pool. The deadline must be in the
// future and the contribution limits must be coherent; a pool starts active
// with nothing collected.
func (b *business) CreatePool(ctx context.Context, pool *model.Pool) (*model.Pool, error) {
	if pool.TotalAmount <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "total amount must be greater than 0"}
	}
	if !pool.Deadline.After(time.Now()) {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "deadline must be in the future"}
	}
	if pool.MinContribution < 0 || pool.MaxContribution < 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "contribution limits must not be negative"}
	}
	if pool.MaxContribution > 0 && pool.MinContribution > pool.MaxContribution {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "minimum contribution exceeds maximum"}
	}
	if pool.MaxParticipants < 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "max participants must not be negative"}
	}

	splitType := pool.SplitType
	if splitType == "" {
		splitType = model.SplitTypeCustom
	}

	var description, category pgtype.Text
	if pool.Description != nil {
		description = pgtype.Text{String: *pool.Description, Valid: true}
	}
	if pool.Category != nil {
		category = pgtype.Text{String: *pool.Category, Valid: true}
	}

	dbPool, err := b.queries.CreatePool(ctx, store.CreatePoolParams{
		Creator:         pool.Creator,
		Payee:           pool.Payee,
		Asset:           pool.Asset,
		TotalAmount:     pool.TotalAmount,
		MinContribution: pool.MinContribution,
		MaxContribution: pool.MaxContribution,
		MaxParticipants: pool.MaxParticipants,
		Deadline:        pgtype.Timestamptz{Time: pool.Deadline, Valid: true},
		Status:          string(model.PoolStatusActive),
		SplitType:       string(splitType),
		Description:     description,
		Category:        category,
		AllowPublicJoin: pool.AllowPublicJoin,
		IdempotencyKey:  pool.IdempotencyKey,
	})
	if err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			return nil, &errs.Error{Code: errs.AlreadyExists, Message: "pool is duplicated"}
		}

		return nil, &errs.Error{Code: errs.Internal, Message: "failed to create pool"}
	}

	return convertDBPoolToModel(dbPool), nil
}
