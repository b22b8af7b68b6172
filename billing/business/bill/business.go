package bill

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"encore.app/billing/business/ledger"
	"encore.app/billing/domain"
	"encore.app/billing/model"
	"encore.app/billing/store"
)

// ConfirmationWindow is how long a payee has to confirm an escrowed payment
// before the payer may reclaim it.
const ConfirmationWindow = 7 * 24 * time.Hour

type Business interface {
	CreateBill(ctx context.Context, bill *model.Bill) (*model.Bill, error)
	GetBill(ctx context.Context, id int64) (*model.Bill, error)
	ListBills(ctx context.Context, user string, asPayee bool, limit, offset int32) ([]*model.Bill, int64, error)
	ListDueBills(ctx context.Context, now time.Time, limit int32) ([]*model.Bill, error)
	UpdateBillStatus(ctx context.Context, billID int64, actor string, status model.BillStatus) error

	ExecutePayment(ctx context.Context, billID int64, actor string) (*model.Payment, error)
	ConfirmPayment(ctx context.Context, paymentID int64, actor, proofHash string) error
	RefundExpiredPayment(ctx context.Context, paymentID int64) error
	RefundExpiredEscrows(ctx context.Context, now time.Time, limit int32) (int, error)
	GetPayment(ctx context.Context, id int64) (*model.Payment, error)
	ListPayments(ctx context.Context, user string, limit, offset int32) ([]model.Payment, error)
	EscrowBalance(ctx context.Context, user, asset string) (int64, error)
}

type business struct {
	queries  store.Querier
	bills    domain.BillStateMachine
	payments domain.PaymentStateMachine
	ledger   ledger.Business
}

// NewBillBusiness creates the bill engine. Bill and payment mutations run
// under their state machines' row locks; balance movements go through the
// ledger inside the same transaction.
func NewBillBusiness(
	queries store.Querier,
	bills domain.BillStateMachine,
	payments domain.PaymentStateMachine,
	ledgerBusiness ledger.Business,
) Business {
	return &business{
		queries:  queries,
		bills:    bills,
		payments: payments,
		ledger:   ledgerBusiness,
	}
}

func timestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func convertDBBillToModel(dbBill store.Bill) *model.Bill {
	bill := &model.Bill{
		ID:                dbBill.ID,
		Payer:             dbBill.Payer,
		Payee:             dbBill.Payee,
		Asset:             dbBill.Asset,
		Amount:            dbBill.Amount,
		Frequency:         dbBill.FrequencySeconds,
		NextPaymentAt:     dbBill.NextPaymentAt.Time,
		TotalPayments:     dbBill.TotalPayments,
		CompletedPayments: dbBill.CompletedPayments,
		Streak:            dbBill.Streak,
		TotalPaid:         dbBill.TotalPaid,
		Status:            model.BillStatus(dbBill.Status),
		IdempotencyKey:    dbBill.IdempotencyKey,
		CreatedAt:         dbBill.CreatedAt.Time,
		UpdatedAt:         dbBill.UpdatedAt.Time,
	}

	if dbBill.Description.Valid {
		bill.Description = &dbBill.Description.String
	}

	if dbBill.Category.Valid {
		bill.Category = &dbBill.Category.String
	}

	if dbBill.WorkflowID.Valid {
		bill.WorkflowID = &dbBill.WorkflowID.String
	}

	return bill
}

func convertDBPaymentToModel(dbPayment store.Payment) *model.Payment {
	payment := &model.Payment{
		ID:                   dbPayment.ID,
		BillID:               dbPayment.BillID,
		Payer:                dbPayment.Payer,
		Payee:                dbPayment.Payee,
		Asset:                dbPayment.Asset,
		Amount:               dbPayment.Amount,
		Status:               model.PaymentStatus(dbPayment.Status),
		ExecutedAt:           dbPayment.ExecutedAt.Time,
		ConfirmationDeadline: dbPayment.ConfirmationDeadline.Time,
		ReferenceID:          dbPayment.ReferenceID,
		CreatedAt:            dbPayment.CreatedAt.Time,
		UpdatedAt:            dbPayment.UpdatedAt.Time,
	}

	if dbPayment.ProofHash.Valid {
		payment.ProofHash = &dbPayment.ProofHash.String
	}

	return payment
}
