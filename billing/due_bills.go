package billing

import (
	"context"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/billing/model"
)

type DueBillsRequest struct {
	Actor string `header:"X-Wallet-Address" validate:"required"`

	Limit int `query:"limit"`
}

type DueBillsResponse struct {
	Bills []model.Bill `json:"bills"`
	AsOf  time.Time    `json:"as_of"`
}

// DueBills returns the caller's active bills whose next payment is due now.
//
//encore:api public path=/v1/due-bills method=GET
func (s *Service) DueBills(ctx context.Context, req *DueBillsRequest) (*DueBillsResponse, error) {
	if req.Limit <= 0 {
		req.Limit = 50
	}
	if req.Limit > 200 {
		req.Limit = 200
	}

	now := time.Now()
	due, err := s.bills.ListDueBills(ctx, now, int32(req.Limit))
	if err != nil {
		rlog.Error("failed to list due bills", "error", err)
		return nil, err
	}

	response := &DueBillsResponse{
		Bills: make([]model.Bill, 0, len(due)),
		AsOf:  now,
	}
	for _, bill := range due {
		if bill.Payer == req.Actor {
			response.Bills = append(response.Bills, *bill)
		}
	}

	return response, nil
}

// Validate implements validation for DueBillsRequest
func (r *DueBillsRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	return nil
}
