package ledger

import (
	"context"

	"encore.dev/beta/errs"

	"encore.app/billing/store"
)

// Hold moves amount from the account's available balance into escrow. Fails
// with insufficient balance if available < amount; no partial holds.
func (b *business) Hold(ctx context.Context, q store.Querier, address, asset string, amount int64, reason, reference string) error {
	if amount <= 0 {
		return &errs.Error{Code: errs.InvalidArgument, Message: "amount must be greater than 0"}
	}

	account, err := lockAccount(ctx, q, address, asset)
	if err != nil {
		return err
	}

	if account.Balance-account.Escrowed < amount {
		return &errs.Error{Code: errs.FailedPrecondition, Message: "insufficient balance"}
	}

	if _, err := q.UpdateAccountBalances(ctx, store.UpdateAccountBalancesParams{
		Address:  address,
		Asset:    asset,
		Balance:  account.Balance,
		Escrowed: account.Escrowed + amount,
	}); err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to hold funds"}
	}

	if _, err := q.CreateLedgerEntry(ctx, store.CreateLedgerEntryParams{
		ReferenceID: reference,
		Address:     address,
		Asset:       asset,
		Delta:       -amount,
		Reason:      reason,
	}); err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to record ledger entry"}
	}
	return nil
}

// RefundHold returns escrowed funds to the holder's available balance.
func (b *business) RefundHold(ctx context.Context, q store.Querier, holder, asset string, amount int64, reason, reference string) error {
	if amount <= 0 {
		return &errs.Error{Code: errs.InvalidArgument, Message: "amount must be greater than 0"}
	}

	account, err := lockAccount(ctx, q, holder, asset)
	if err != nil {
		return err
	}

	if account.Escrowed < amount {
		return &errs.Error{Code: errs.FailedPrecondition, Message: "refund exceeds escrowed funds"}
	}

	if _, err := q.UpdateAccountBalances(ctx, store.UpdateAccountBalancesParams{
		Address:  holder,
		Asset:    asset,
		Balance:  account.Balance,
		Escrowed: account.Escrowed - amount,
	}); err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to refund hold"}
	}

	if _, err := q.CreateLedgerEntry(ctx, store.CreateLedgerEntryParams{
		ReferenceID: reference,
		Address:     holder,
		Asset:       asset,
		Delta:       amount,
		Reason:      reason,
	}); err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to record ledger entry"}
	}
	return nil
}
