package billing

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/billing/model"
)

type GetBalanceRequest struct {
	Actor string `header:"X-Wallet-Address" validate:"required"`

	Asset string `query:"asset"`
}

type GetBalanceResponse struct {
	Account   model.Account `json:"account"`
	Available int64         `json:"available"`
}

//encore:api public path=/v1/accounts/balance method=GET
func (s *Service) GetBalance(ctx context.Context, req *GetBalanceRequest) (*GetBalanceResponse, error) {
	asset := req.Asset
	if asset == "" {
		asset = model.DefaultAsset
	}

	account, err := s.ledger.GetBalance(ctx, req.Actor, asset)
	if err != nil {
		rlog.Error("failed to get balance", "error", err)
		return nil, err
	}

	return &GetBalanceResponse{
		Account:   *account,
		Available: account.Available(),
	}, nil
}

// Validate implements validation for GetBalanceRequest
func (r *GetBalanceRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	return nil
}

type GetLedgerEntriesRequest struct {
	Actor string `header:"X-Wallet-Address" validate:"required"`

	Asset string `query:"asset"`
	Limit int    `query:"limit"`
}

type GetLedgerEntriesResponse struct {
	Entries []model.LedgerEntry `json:"entries"`
}

//encore:api public path=/v1/accounts/entries method=GET
func (s *Service) ListLedgerEntries(ctx context.Context, req *GetLedgerEntriesRequest) (*GetLedgerEntriesResponse, error) {
	asset := req.Asset
	if asset == "" {
		asset = model.DefaultAsset
	}
	if req.Limit <= 0 {
		req.Limit = 50
	}
	if req.Limit > 200 {
		req.Limit = 200
	}

	entries, err := s.ledger.Entries(ctx, req.Actor, asset, int32(req.Limit))
	if err != nil {
		rlog.Error("failed to get ledger entries", "error", err)
		return nil, err
	}

	return &GetLedgerEntriesResponse{
		Entries: entries,
	}, nil
}

// Validate implements validation for GetLedgerEntriesRequest
func (r *GetLedgerEntriesRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	return nil
}
