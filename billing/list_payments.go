package billing

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/billing/model"
)

type GetPaymentsRequest struct {
	Actor string `header:"X-Wallet-Address" validate:"required"`

	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

type GetPaymentsResponse struct {
	Payments []model.Payment `json:"payments"`
	Limit    int             `json:"limit"`
	Offset   int             `json:"offset"`
}

//encore:api public path=/v1/payments method=GET
func (s *Service) ListPayments(ctx context.Context, req *GetPaymentsRequest) (*GetPaymentsResponse, error) {
	if req.Limit <= 0 {
		req.Limit = 10
	}
	if req.Limit > 100 {
		req.Limit = 100
	}

	payments, err := s.bills.ListPayments(ctx, req.Actor, int32(req.Limit), int32(req.Offset))
	if err != nil {
		rlog.Error("failed to get payments", "error", err)
		return nil, err
	}

	return &GetPaymentsResponse{
		Payments: payments,
		Limit:    req.Limit,
		Offset:   req.Offset,
	}, nil
}

// Validate implements validation for GetPaymentsRequest
func (r *GetPaymentsRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	return nil
}
