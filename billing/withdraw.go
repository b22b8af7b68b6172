package billing

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/billing/model"
)

type WithdrawRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`
	Actor          string `header:"X-Wallet-Address" json:"-" validate:"required"`

	Asset  string `json:"asset" validate:"omitempty,uppercase,max=10"`
	Amount int64  `json:"amount" validate:"required,min=1"`
}

// Withdraw debits the caller's available balance. Escrowed funds cannot be
// withdrawn.
//
//encore:api public path=/v1/accounts/withdraw method=POST tag:idempotency
func (s *Service) Withdraw(ctx context.Context, req *WithdrawRequest) (*AccountResponse, error) {
	asset := req.Asset
	if asset == "" {
		asset = model.DefaultAsset
	}

	account, err := s.ledger.Withdraw(ctx, req.Actor, asset, req.Amount, req.IdempotencyKey)
	if err != nil {
		rlog.Error("failed to withdraw", "error", err)
		return nil, err
	}

	return &AccountResponse{
		Account: *account,
	}, nil
}

// Validate implements validation for WithdrawRequest
func (r *WithdrawRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	return nil
}
