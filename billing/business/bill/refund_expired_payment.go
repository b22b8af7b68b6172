package bill

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"

	"encore.app/billing/model"
	"encore.app/billing/store"
)

const reasonBillRefund = "bill escrow refund"

// RefundExpiredPayment returns a lapsed escrow to the payer. Callable by
// anyone (the sweep included) once the confirmation deadline has passed; the
// escrowed status guard makes the refund fire exactly once.
func (b *business) RefundExpiredPayment(ctx context.Context, paymentID int64) error {
	return b.payments.ExecuteWithLock(ctx, paymentID, func(q store.Querier, current store.Payment) error {
		if current.Status != string(model.PaymentStatusEscrowed) {
			return &errs.Error{Code: errs.FailedPrecondition, Message: "payment is not in escrow"}
		}

		if time.Now().Before(current.ConfirmationDeadline.Time) {
			return &errs.Error{Code: errs.InvalidArgument, Message: "confirmation deadline has not passed"}
		}

		if err := b.ledger.RefundHold(ctx, q, current.Payer, current.Asset, current.Amount, reasonBillRefund, current.ReferenceID); err != nil {
			return err
		}

		if _, err := q.UpdatePaymentStatus(ctx, store.UpdatePaymentStatusParams{
			ID:        current.ID,
			Status:    string(model.PaymentStatusRefunded),
			ProofHash: pgtype.Text{},
		}); err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to refund payment"}
		}
		return nil
	})
}

// RefundExpiredEscrows sweeps escrowed payments whose confirmation deadline
// lapsed and refunds each. One payment per transaction; a racing confirmation
// loses the guard check and is skipped, not failed.
func (b *business) RefundExpiredEscrows(ctx context.Context, now time.Time, limit int32) (int, error) {
	expired, err := b.queries.ListExpiredEscrowedPayments(ctx, store.ListExpiredEscrowedPaymentsParams{
		ConfirmationDeadline: timestamptz(now),
		Limit:                limit,
	})
	if err != nil {
		return 0, &errs.Error{Code: errs.Internal, Message: "failed to list expired escrows"}
	}

	var refunded int
	for _, payment := range expired {
		err := b.RefundExpiredPayment(ctx, payment.ID)
		if err != nil {
			var e *errs.Error
			if errors.As(err, &e) && e.Code == errs.FailedPrecondition {
				continue
			}
			return refunded, err
		}
		refunded++
	}

	return refunded, nil
}
