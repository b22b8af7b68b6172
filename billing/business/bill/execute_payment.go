package bill

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"

	"encore.app/billing/model"
	"encore.app/billing/store"
)

const reasonBillEscrow = "bill payment escrow"

// ExecutePayment charges one due installment of a bill into escrow. Only the
// payer may execute, and only while the bill is active and due. The hold, the
// payment row and the schedule advance commit atomically; a second execution
// for the same installment fails the NotDue guard because next_payment_at
// already moved.
func (b *business) ExecutePayment(ctx context.Context, billID int64, actor string) (*model.Payment, error) {
	var payment *model.Payment

	err := b.bills.ExecuteWithLock(ctx, billID, func(q store.Querier, current store.Bill) error {
		if current.Payer != actor {
			return &errs.Error{Code: errs.PermissionDenied, Message: "only the bill payer can execute a payment"}
		}

		if current.Status != string(model.BillStatusActive) {
			return &errs.Error{Code: errs.FailedPrecondition, Message: "bill is not active"}
		}

		now := time.Now()
		if now.Before(current.NextPaymentAt.Time) {
			return &errs.Error{Code: errs.InvalidArgument, Message: "bill is not due yet"}
		}

		referenceID := uuid.NewString()
		if err := b.ledger.Hold(ctx, q, current.Payer, current.Asset, current.Amount, reasonBillEscrow, referenceID); err != nil {
			return err
		}

		dbPayment, err := q.CreatePayment(ctx, store.CreatePaymentParams{
			BillID:               current.ID,
			Payer:                current.Payer,
			Payee:                current.Payee,
			Asset:                current.Asset,
			Amount:               current.Amount,
			Status:               string(model.PaymentStatusEscrowed),
			ExecutedAt:           pgtype.Timestamptz{Time: now, Valid: true},
			ConfirmationDeadline: pgtype.Timestamptz{Time: now.Add(ConfirmationWindow), Valid: true},
			ReferenceID:          referenceID,
		})
		if err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to create payment"}
		}

		completed := current.CompletedPayments + 1
		status := model.BillStatusActive
		if completed >= current.TotalPayments {
			status = model.BillStatusCompleted
		}

		next := current.NextPaymentAt.Time
		if current.FrequencySeconds > 0 {
			next = next.Add(time.Duration(current.FrequencySeconds) * time.Second)
		}

		if _, err := q.UpdateBillSchedule(ctx, store.UpdateBillScheduleParams{
			ID:                current.ID,
			Status:            string(status),
			NextPaymentAt:     pgtype.Timestamptz{Time: next, Valid: true},
			CompletedPayments: completed,
			Streak:            current.Streak + 1,
			TotalPaid:         current.TotalPaid + current.Amount,
		}); err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to advance bill schedule"}
		}

		payment = convertDBPaymentToModel(dbPayment)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return payment, nil
}
