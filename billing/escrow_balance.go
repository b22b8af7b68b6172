package billing

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/billing/model"
)

type EscrowBalanceRequest struct {
	Actor string `header:"X-Wallet-Address" validate:"required"`

	Asset string `query:"asset"`
}

type EscrowBalanceResponse struct {
	Asset    string `json:"asset"`
	Escrowed int64  `json:"escrowed"`
}

// GetEscrowBalance sums the caller's open obligations: escrowed bill payments
// plus unclaimed contributions to active pools.
//
//encore:api public path=/v1/accounts/escrow method=GET
func (s *Service) GetEscrowBalance(ctx context.Context, req *EscrowBalanceRequest) (*EscrowBalanceResponse, error) {
	asset := req.Asset
	if asset == "" {
		asset = model.DefaultAsset
	}

	escrowed, err := s.bills.EscrowBalance(ctx, req.Actor, asset)
	if err != nil {
		rlog.Error("failed to get escrow balance", "error", err)
		return nil, err
	}

	return &EscrowBalanceResponse{
		Asset:    asset,
		Escrowed: escrowed,
	}, nil
}

// Validate implements validation for EscrowBalanceRequest
func (r *EscrowBalanceRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	return nil
}
