package billing

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/billing/model"
)

type GetBillsRequest struct {
	Actor string `header:"X-Wallet-Address" validate:"required"`

	Role   string `query:"role"`
	Limit  int    `query:"limit"`
	Offset int    `query:"offset"`
}

type GetBillsResponse struct {
	Bills      []model.Bill `json:"bills"`
	TotalCount int64        `json:"total_count"`
	Limit      int          `json:"limit"`
	Offset     int          `json:"offset"`
}

//encore:api public path=/v1/bills method=GET
func (s *Service) ListBills(ctx context.Context, req *GetBillsRequest) (*GetBillsResponse, error) {
	if req.Limit <= 0 {
		req.Limit = 10
	}
	if req.Limit > 100 {
		req.Limit = 100
	}

	asPayee := req.Role == "payee"

	bills, totalCount, err := s.bills.ListBills(ctx, req.Actor, asPayee, int32(req.Limit), int32(req.Offset))
	if err != nil {
		rlog.Error("failed to get bills", "error", err)
		return nil, err
	}

	response := &GetBillsResponse{
		Bills:      make([]model.Bill, len(bills)),
		TotalCount: totalCount,
		Limit:      req.Limit,
		Offset:     req.Offset,
	}

	for i, bill := range bills {
		response.Bills[i] = *bill
	}

	return response, nil
}

// Validate implements validation for GetBillsRequest
func (r *GetBillsRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	if r.Role != "" && r.Role != "payer" && r.Role != "payee" {
		return &errs.Error{Code: errs.InvalidArgument, Message: "role must be payer or payee"}
	}

	return nil
}
