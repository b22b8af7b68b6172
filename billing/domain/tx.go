package domain

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"encore.dev/beta/errs"

	"encore.app/billing/store"
)

// TxRunner runs a function inside one database transaction.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(q store.Querier) error) error
}

// TxManager owns transaction boundaries for engine operations. Every engine
// call runs inside exactly one transaction: either all sub-mutations commit
// or none do.
type TxManager struct {
	db      *pgxpool.Pool
	queries *store.Queries
}

func NewTxManager(db *pgxpool.Pool) *TxManager {
	return &TxManager{
		db:      db,
		queries: store.New(db),
	}
}

// RunInTx executes fn with transaction-aware queries. The transaction is
// rolled back if fn returns an error.
func (m *TxManager) RunInTx(ctx context.Context, fn func(q store.Querier) error) error {
	tx, err := m.db.Begin(ctx)
	if err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to start transaction"}
	}
	defer tx.Rollback(ctx)

	if err := fn(m.queries.WithTx(tx)); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to commit transaction"}
	}
	return nil
}
