package ledger

import (
	"context"

	"encore.dev/beta/errs"

	"encore.app/billing/store"
)

// Release settles escrowed funds to a destination account. The holder's total
// balance and escrow both shrink; the destination's available balance grows.
func (b *business) Release(ctx context.Context, q store.Querier, holder, to, asset string, amount int64, reason, reference string) error {
	if amount <= 0 {
		return &errs.Error{Code: errs.InvalidArgument, Message: "amount must be greater than 0"}
	}

	account, err := lockAccount(ctx, q, holder, asset)
	if err != nil {
		return err
	}

	if account.Escrowed < amount {
		return &errs.Error{Code: errs.FailedPrecondition, Message: "release exceeds escrowed funds"}
	}

	if _, err := q.UpdateAccountBalances(ctx, store.UpdateAccountBalancesParams{
		Address:  holder,
		Asset:    asset,
		Balance:  account.Balance - amount,
		Escrowed: account.Escrowed - amount,
	}); err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to release escrow"}
	}

	if _, err := q.CreateLedgerEntry(ctx, store.CreateLedgerEntryParams{
		ReferenceID: reference,
		Address:     holder,
		Asset:       asset,
		Delta:       -amount,
		Reason:      reason,
	}); err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to record ledger entry"}
	}

	dest, err := lockAccount(ctx, q, to, asset)
	if err != nil {
		return err
	}

	if _, err := q.UpdateAccountBalances(ctx, store.UpdateAccountBalancesParams{
		Address:  to,
		Asset:    asset,
		Balance:  dest.Balance + amount,
		Escrowed: dest.Escrowed,
	}); err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to credit destination"}
	}

	if _, err := q.CreateLedgerEntry(ctx, store.CreateLedgerEntryParams{
		ReferenceID: reference,
		Address:     to,
		Asset:       asset,
		Delta:       amount,
		Reason:      reason,
	}); err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to record ledger entry"}
	}
	return nil
}

// Transfer moves available funds directly between two accounts.
func (b *business) Transfer(ctx context.Context, q store.Querier, from, to, asset string, amount int64, reason, reference string) error {
	if amount <= 0 {
		return &errs.Error{Code: errs.InvalidArgument, Message: "amount must be greater than 0"}
	}

	source, err := lockAccount(ctx, q, from, asset)
	if err != nil {
		return err
	}

	if source.Balance-source.Escrowed < amount {
		return &errs.Error{Code: errs.FailedPrecondition, Message: "insufficient balance"}
	}

	if _, err := q.UpdateAccountBalances(ctx, store.UpdateAccountBalancesParams{
		Address:  from,
		Asset:    asset,
		Balance:  source.Balance - amount,
		Escrowed: source.Escrowed,
	}); err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to debit source"}
	}

	if _, err := q.CreateLedgerEntry(ctx, store.CreateLedgerEntryParams{
		ReferenceID: reference,
		Address:     from,
		Asset:       asset,
		Delta:       -amount,
		Reason:      reason,
	}); err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to record ledger entry"}
	}

	dest, err := lockAccount(ctx, q, to, asset)
	if err != nil {
		return err
	}

	if _, err := q.UpdateAccountBalances(ctx, store.UpdateAccountBalancesParams{
		Address:  to,
		Asset:    asset,
		Balance:  dest.Balance + amount,
		Escrowed: dest.Escrowed,
	}); err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to credit destination"}
	}

	if _, err := q.CreateLedgerEntry(ctx, store.CreateLedgerEntryParams{
		ReferenceID: reference,
		Address:     to,
		Asset:       asset,
		Delta:       amount,
		Reason:      reason,
	}); err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to record ledger entry"}
	}
	return nil
}
