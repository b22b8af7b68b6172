package domain

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"encore.app/billing/store"
)

// PoolStateMachine serializes mutations of a single pool and its
// contributions. Contribution bounds and the collected <= target invariant
// are enforced under the pool row lock.
type PoolStateMachine interface {
	ExecuteWithLock(ctx context.Context, poolID int64, businessLogic func(q store.Querier, current store.Pool) error) error
}

type poolStateMachine struct {
	tx *TxManager
}

func NewPoolStateMachine(tx *TxManager) PoolStateMachine {
	return &poolStateMachine{tx: tx}
}

func (sm *poolStateMachine) ExecuteWithLock(ctx context.Context, poolID int64, businessLogic func(q store.Querier, current store.Pool) error) error {
	return sm.tx.RunInTx(ctx, func(q store.Querier) error {
		current, err := q.GetPoolForUpdate(ctx, poolID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return &errs.Error{Code: errs.NotFound, Message: "pool not found"}
			}
			return &errs.Error{Code: errs.Internal, Message: "failed to lock pool"}
		}
		return businessLogic(q, current)
	})
}
