package bill

import (
	"context"

	"encore.dev/beta/errs"

	"encore.app/billing/model"
	"encore.app/billing/store"
)

// UpdateBillStatus pauses, resumes or cancels a bill on behalf of its payer.
// Repeating a cancel is a no-op; any other transition is validated against
// the bill transition table.
func (b *business) UpdateBillStatus(ctx context.Context, billID int64, actor string, status model.BillStatus) error {
	if status != model.BillStatusActive && status != model.BillStatusPaused && status != model.BillStatusCancelled {
		return &errs.Error{Code: errs.InvalidArgument, Message: "unsupported status transition"}
	}

	return b.bills.ExecuteWithLock(ctx, billID, func(q store.Querier, current store.Bill) error {
		if current.Payer != actor {
			return &errs.Error{Code: errs.PermissionDenied, Message: "only the bill payer can change bill status"}
		}

		currentStatus := model.BillStatus(current.Status)
		if currentStatus == status {
			// Idempotent: repeated pause/cancel requests succeed quietly.
			return nil
		}

		if !currentStatus.CanTransitionTo(status) {
			return &errs.Error{Code: errs.FailedPrecondition, Message: "bill is in a terminal status"}
		}

		if _, err := q.UpdateBillStatus(ctx, store.UpdateBillStatusParams{
			ID:     current.ID,
			Status: string(status),
		}); err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to update bill status"}
		}
		return nil
	})
}
