package domain

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"encore.app/billing/store"
)

// BillStateMachine serializes all mutations of a single bill behind a
// row-level lock. Business logic runs inside the lock via the callback and
// shares the surrounding transaction through the passed queries.
type BillStateMachine interface {
	// ExecuteWithLock locks the bill row, re-reads its current state and runs
	// businessLogic inside the transaction. Any error rolls everything back.
	ExecuteWithLock(ctx context.Context, billID int64, businessLogic func(q store.Querier, current store.Bill) error) error
}

type billStateMachine struct {
	tx *TxManager
}

func NewBillStateMachine(tx *TxManager) BillStateMachine {
	return &billStateMachine{tx: tx}
}

func (sm *billStateMachine) ExecuteWithLock(ctx context.Context, billID int64, businessLogic func(q store.Querier, current store.Bill) error) error {
	return sm.tx.RunInTx(ctx, func(q store.Querier) error {
		// SELECT FOR UPDATE holds the row until commit/rollback, so the
		// status guards inside businessLogic are re-checked atomically
		// with the mutation.
		current, err := q.GetBillForUpdate(ctx, billID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return &errs.Error{Code: errs.NotFound, Message: "bill not found"}
			}
			return &errs.Error{Code: errs.Internal, Message: "failed to lock bill"}
		}
		return businessLogic(q, current)
	})
}
