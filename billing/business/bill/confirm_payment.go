package bill

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"

	"encore.app/billing/model"
	"encore.app/billing/store"
)

const reasonBillRelease = "bill payment release"

// ConfirmPayment settles an escrowed payment to the payee. Only the payee may
// confirm; the escrowed status guard under the row lock makes a double
// confirmation impossible.
func (b *business) ConfirmPayment(ctx context.Context, paymentID int64, actor, proofHash string) error {
	return b.payments.ExecuteWithLock(ctx, paymentID, func(q store.Querier, current store.Payment) error {
		if current.Payee != actor {
			return &errs.Error{Code: errs.PermissionDenied, Message: "only the payee can confirm a payment"}
		}

		if current.Status != string(model.PaymentStatusEscrowed) {
			return &errs.Error{Code: errs.FailedPrecondition, Message: "payment is not in escrow"}
		}

		if err := b.ledger.Release(ctx, q, current.Payer, current.Payee, current.Asset, current.Amount, reasonBillRelease, current.ReferenceID); err != nil {
			return err
		}

		var proof pgtype.Text
		if proofHash != "" {
			proof = pgtype.Text{String: proofHash, Valid: true}
		}

		if _, err := q.UpdatePaymentStatus(ctx, store.UpdatePaymentStatusParams{
			ID:        current.ID,
			Status:    string(model.PaymentStatusConfirmed),
			ProofHash: proof,
		}); err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to confirm payment"}
		}
		return nil
	})
}
