package billing

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
)

// RefundExpiredPayment returns an escrowed payment to the payer after the
// confirmation window lapsed. Anyone may trigger it; the deadline check
// decides eligibility.
//
//encore:api public path=/v1/payments/:id/refund method=POST
func (s *Service) RefundExpiredPayment(ctx context.Context, id int64) (*PaymentResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid payment ID"}
	}

	err := s.bills.RefundExpiredPayment(ctx, id)
	if err != nil {
		rlog.Error("failed to refund payment", "error", err, "payment_id", id)
		return nil, err
	}

	payment, err := s.bills.GetPayment(ctx, id)
	if err != nil {
		rlog.Error("failed to get refunded payment", "error", err, "payment_id", id)
		return nil, err
	}

	return &PaymentResponse{
		Payment: *payment,
	}, nil
}
