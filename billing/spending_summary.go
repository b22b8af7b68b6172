package billing

import (
	"context"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/billing/model"
)

type SpendingSummaryRequest struct {
	Actor string `header:"X-Wallet-Address" validate:"required"`

	Asset string `query:"asset"`
}

type SpendingSummaryResponse struct {
	TotalMonthlySpend int64            `json:"total_monthly_spend"`
	Categories        map[string]int64 `json:"categories"`
	AveragePayment    int64            `json:"average_payment"`
	DueSoon           int              `json:"due_soon"`
	PaymentRate       float64          `json:"payment_rate"`
	EscrowBalance     int64            `json:"escrow_balance"`
}

const monthSeconds = 30 * 24 * 60 * 60

// SpendingSummary aggregates the caller's bills and payment history into one
// snapshot: normalized monthly spend of active bills, spend per category,
// average payment size, bills due within a week, the share of executed
// payments that got confirmed, and funds currently locked in escrow.
//
//encore:api public path=/v1/summary/spending method=GET
func (s *Service) SpendingSummary(ctx context.Context, req *SpendingSummaryRequest) (*SpendingSummaryResponse, error) {
	asset := req.Asset
	if asset == "" {
		asset = model.DefaultAsset
	}

	bills, _, err := s.bills.ListBills(ctx, req.Actor, false, 100, 0)
	if err != nil {
		rlog.Error("failed to list bills for summary", "error", err)
		return nil, err
	}

	payments, err := s.bills.ListPayments(ctx, req.Actor, 100, 0)
	if err != nil {
		rlog.Error("failed to list payments for summary", "error", err)
		return nil, err
	}

	escrowed, err := s.bills.EscrowBalance(ctx, req.Actor, asset)
	if err != nil {
		rlog.Error("failed to get escrow balance for summary", "error", err)
		return nil, err
	}

	response := &SpendingSummaryResponse{
		Categories:    make(map[string]int64),
		EscrowBalance: escrowed,
	}

	weekAhead := time.Now().Add(7 * 24 * time.Hour)
	for _, bill := range bills {
		if bill.Status != model.BillStatusActive {
			continue
		}

		monthly := bill.Amount
		if bill.Frequency > 0 {
			monthly = bill.Amount * monthSeconds / bill.Frequency
		}
		response.TotalMonthlySpend += monthly

		category := "uncategorized"
		if bill.Category != nil && *bill.Category != "" {
			category = *bill.Category
		}
		response.Categories[category] += monthly

		if bill.NextPaymentAt.Before(weekAhead) {
			response.DueSoon++
		}
	}

	var confirmed, total, confirmedValue int64
	for _, payment := range payments {
		if payment.Payer != req.Actor {
			continue
		}
		total++
		if payment.Status == model.PaymentStatusConfirmed {
			confirmed++
			confirmedValue += payment.Amount
		}
	}
	if confirmed > 0 {
		response.AveragePayment = confirmedValue / confirmed
	}
	if total > 0 {
		response.PaymentRate = float64(confirmed) / float64(total)
	}

	return response, nil
}

// Validate implements validation for SpendingSummaryRequest
func (r *SpendingSummaryRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	return nil
}
