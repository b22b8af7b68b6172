package ledger

import (
	"context"

	"encore.dev/beta/errs"

	"encore.app/billing/model"
	"encore.app/billing/store"
)

// Withdraw debits spendable funds back to the external transfer rail.
// Escrowed funds cannot be withdrawn.
func (b *business) Withdraw(ctx context.Context, address, asset string, amount int64, reference string) (*model.Account, error) {
	if amount <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "amount must be greater than 0"}
	}

	var result *model.Account
	err := b.tx.RunInTx(ctx, func(q store.Querier) error {
		account, err := lockAccount(ctx, q, address, asset)
		if err != nil {
			return err
		}

		if account.Balance-account.Escrowed < amount {
			return &errs.Error{Code: errs.FailedPrecondition, Message: "insufficient balance"}
		}

		updated, err := q.UpdateAccountBalances(ctx, store.UpdateAccountBalancesParams{
			Address:  address,
			Asset:    asset,
			Balance:  account.Balance - amount,
			Escrowed: account.Escrowed,
		})
		if err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to debit account"}
		}

		if _, err := q.CreateLedgerEntry(ctx, store.CreateLedgerEntryParams{
			ReferenceID: reference,
			Address:     address,
			Asset:       asset,
			Delta:       -amount,
			Reason:      reasonWithdraw,
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
