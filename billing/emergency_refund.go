package billing

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
)

type EmergencyRefundRequest struct {
	Actor string `header:"X-Wallet-Address" json:"-" validate:"required"`
}

type EmergencyRefundResponse struct {
	RefundedAmount int64 `json:"refunded_amount"`
}

// EmergencyRefund lets a contributor reclaim their escrowed contributions
// from a pool that missed its deadline.
//
//encore:api public path=/v1/pools/:id/emergency-refund method=POST
func (s *Service) EmergencyRefund(ctx context.Context, id int64, req *EmergencyRefundRequest) (*EmergencyRefundResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid pool ID"}
	}

	refunded, err := s.pools.EmergencyRefund(ctx, id, req.Actor)
	if err != nil {
		rlog.Error("failed to emergency refund", "error", err, "pool_id", id)
		return nil, err
	}

	return &EmergencyRefundResponse{
		RefundedAmount: refunded,
	}, nil
}

// Validate implements validation for EmergencyRefundRequest
func (r *EmergencyRefundRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	return nil
}
