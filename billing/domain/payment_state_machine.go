package domain

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"encore.app/billing/store"
)

// PaymentStateMachine serializes mutations of a single payment. The
// escrowed -> confirmed and escrowed -> refunded transitions fire at most
// once because the status guard runs under the row lock.
type PaymentStateMachine interface {
	ExecuteWithLock(ctx context.Context, paymentID int64, businessLogic func(q store.Querier, current store.Payment) error) error
}

type paymentStateMachine struct {
	tx *TxManager
}

func NewPaymentStateMachine(tx *TxManager) PaymentStateMachine {
	return &paymentStateMachine{tx: tx}
}

func (sm *paymentStateMachine) ExecuteWithLock(ctx context.Context, paymentID int64, businessLogic func(q store.Querier, current store.Payment) error) error {
	return sm.tx.RunInTx(ctx, func(q store.Querier) error {
		current, err := q.GetPaymentForUpdate(ctx, paymentID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return &errs.Error{Code: errs.NotFound, Message: "payment not found"}
			}
			return &errs.Error{Code: errs.Internal, Message: "failed to lock payment"}
		}
		return businessLogic(q, current)
	})
}
