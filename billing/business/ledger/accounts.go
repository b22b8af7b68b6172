package ledger

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"encore.app/billing/model"
	"encore.app/billing/store"
)

// lockAccount locks the account row for the remainder of the transaction,
// creating the account on first touch.
func lockAccount(ctx context.Context, q store.Querier, address, asset string) (store.Account, error) {
	account, err := q.GetAccountForUpdate(ctx, store.GetAccountForUpdateParams{Address: address, Asset: asset})
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return store.Account{}, &errs.Error{Code: errs.Internal, Message: "failed to lock account"}
	}

	account, err = q.CreateAccount(ctx, store.CreateAccountParams{Address: address, Asset: asset})
	if err != nil {
		return store.Account{}, &errs.Error{Code: errs.Internal, Message: "failed to create account"}
	}
	return account, nil
}

func (b *business) GetBalance(ctx context.Context, address, asset string) (*model.Account, error) {
	account, err := b.queries.GetAccount(ctx, store.GetAccountParams{Address: address, Asset: asset})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// An untouched account is an empty one, not an error.
			return &model.Account{Address: address, Asset: asset}, nil
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get account"}
	}
	return convertDBAccountToModel(account), nil
}

func (b *business) Entries(ctx context.Context, address, asset string, limit int32) ([]model.LedgerEntry, error) {
	rows, err := b.queries.ListLedgerEntries(ctx, store.ListLedgerEntriesParams{
		Address: address,
		Asset:   asset,
		Limit:   limit,
	})
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to list ledger entries"}
	}

	entries := make([]model.LedgerEntry, len(rows))
	for i, row := range rows {
		entries[i] = model.LedgerEntry{
			ID:          row.ID,
			ReferenceID: row.ReferenceID,
			Address:     row.Address,
			Asset:       row.Asset,
			Delta:       row.Delta,
			Reason:      row.Reason,
			CreatedAt:   row.CreatedAt.Time,
		}
	}
	return entries, nil
}

func convertDBAccountToModel(account store.Account) *model.Account {
	return &model.Account{
		Address:   account.Address,
		Asset:     account.Asset,
		Balance:   account.Balance,
		Escrowed:  account.Escrowed,
		CreatedAt: account.CreatedAt.Time,
		UpdatedAt: account.UpdatedAt.Time,
	}
}
