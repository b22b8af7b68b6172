package billing

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/billing/model"
)

type DepositRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`
	Actor          string `header:"X-Wallet-Address" json:"-" validate:"required"`

	Asset  string `json:"asset" validate:"omitempty,uppercase,max=10"`
	Amount int64  `json:"amount" validate:"required,min=1"`
}

type AccountResponse struct {
	Account model.Account `json:"account"`
}

// Deposit credits the caller's account. The idempotency key doubles as the
// ledger reference so a replay never books twice.
//
//encore:api public path=/v1/accounts/deposit method=POST tag:idempotency
func (s *Service) Deposit(ctx context.Context, req *DepositRequest) (*AccountResponse, error) {
	asset := req.Asset
	if asset == "" {
		asset = model.DefaultAsset
	}

	account, err := s.ledger.Deposit(ctx, req.Actor, asset, req.Amount, req.IdempotencyKey)
	if err != nil {
		rlog.Error("failed to deposit", "error", err)
		return nil, err
	}

	return &AccountResponse{
		Account: *account,
	}, nil
}

// Validate implements validation for DepositRequest
func (r *DepositRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	return nil
}
