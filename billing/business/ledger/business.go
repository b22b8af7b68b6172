package ledger

import (
	"context"

	"encore.app/billing/domain"
	"encore.app/billing/model"
	"encore.app/billing/store"
)

// Business is the token ledger: balances and escrow holds for one fungible
// asset per account. Hold, Release, RefundHold and Transfer take the calling
// engine's transaction-aware queries so that balance movements commit or roll
// back together with the engine's own mutations. Every movement appends an
// immutable ledger entry.
type Business interface {
	Deposit(ctx context.Context, address, asset string, amount int64, reference string) (*model.Account, error)
	Withdraw(ctx context.Context, address, asset string, amount int64, reference string) (*model.Account, error)
	GetBalance(ctx context.Context, address, asset string) (*model.Account, error)
	Entries(ctx context.Context, address, asset string, limit int32) ([]model.LedgerEntry, error)

	Hold(ctx context.Context, q store.Querier, address, asset string, amount int64, reason, reference string) error
	Release(ctx context.Context, q store.Querier, holder, to, asset string, amount int64, reason, reference string) error
	RefundHold(ctx context.Context, q store.Querier, holder, asset string, amount int64, reason, reference string) error
	Transfer(ctx context.Context, q store.Querier, from, to, asset string, amount int64, reason, reference string) error
}

type business struct {
	tx      domain.TxRunner
	queries store.Querier
}

func NewLedgerBusiness(tx domain.TxRunner, queries store.Querier) Business {
	return &business{
		tx:      tx,
		queries: queries,
	}
}
