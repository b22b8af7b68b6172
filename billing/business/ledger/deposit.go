package ledger

import (
	"context"

	"encore.dev/beta/errs"

	"encore.app/billing/model"
	"encore.app/billing/store"
)

const (
	reasonDeposit  = "deposit"
	reasonWithdraw = "withdraw"
)

// Deposit credits funds verified on the external transfer rail.
func (b *business) Deposit(ctx context.Context, address, asset string, amount int64, reference string) (*model.Account, error) {
	if amount <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "amount must be greater than 0"}
	}

	var result *model.Account
	err := b.tx.RunInTx(ctx, func(q store.Querier) error {
		account, err := lockAccount(ctx, q, address, asset)
		if err != nil {
			return err
		}

		updated, err := q.UpdateAccountBalances(ctx, store.UpdateAccountBalancesParams{
			Address:  address,
			Asset:    asset,
			Balance:  account.Balance + amount,
			Escrowed: account.Escrowed,
		})
		if err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to credit account"}
		}

		if _, err := q.CreateLedgerEntry(ctx, store.CreateLedgerEntryParams{
			ReferenceID: reference,
			Address:     address,
			Asset:       asset,
			Delta:       amount,
			Reason:      reasonDeposit,
		}); err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to record ledger entry"}
		}

		result = convertDBAccountToModel(updated)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
