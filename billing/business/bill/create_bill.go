package bill

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"

	"encore.app/billing/model"
	"encore.app/billing/store"
)

// CreateBill registers a new bill. The bill is due immediately: the first
// payment may be executed as soon as the bill exists.
func (b *business) CreateBill(ctx context.Context, bill *model.Bill) (*model.Bill, error) {
	if bill.Amount <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "amount must be greater than 0"}
	}
	if bill.TotalPayments <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "total payments must be greater than 0"}
	}
	if bill.Frequency < 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "frequency must not be negative"}
	}

	workflowID := fmt.Sprintf("bill-%s", bill.IdempotencyKey)

	var description, category pgtype.Text
	if bill.Description != nil {
		description = pgtype.Text{String: *bill.Description, Valid: true}
	}
	if bill.Category != nil {
		category = pgtype.Text{String: *bill.Category, Valid: true}
	}

	dbBill, err := b.queries.CreateBill(ctx, store.CreateBillParams{
		Payer:            bill.Payer,
		Payee:            bill.Payee,
		Asset:            bill.Asset,
		Amount:           bill.Amount,
		FrequencySeconds: bill.Frequency,
		NextPaymentAt:    pgtype.Timestamptz{Time: time.Now(), Valid: true},
		TotalPayments:    bill.TotalPayments,
		Status:           string(model.BillStatusActive),
		Description:      description,
		Category:         category,
		IdempotencyKey:   bill.IdempotencyKey,
		WorkflowID:       pgtype.Text{String: workflowID, Valid: true},
	})
	if err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			return nil, &errs.Error{Code: errs.AlreadyExists, Message: "bill is duplicated"}
		}

		return nil, &errs.Error{Code: errs.Internal, Message: "failed to create bill"}
	}

	return convertDBBillToModel(dbBill), nil
}
