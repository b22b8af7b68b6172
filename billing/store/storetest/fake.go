// Package storetest provides an in-memory store.Querier for tests that need
// state to survive across calls, such as lifecycle scenarios spanning several
// engine operations. Row-lock queries behave like plain reads; callers are
// expected to run single-goroutine tests.
package storetest

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.app/billing/store"
)

type accountKey struct {
	Address string
	Asset   string
}

// Fake is an in-memory implementation of store.Querier backed by maps.
type Fake struct {
	mu sync.Mutex

	accounts      map[accountKey]store.Account
	bills         map[int64]store.Bill
	payments      map[int64]store.Payment
	pools         map[int64]store.Pool
	contributions map[int64]store.Contribution
	rewards       map[int64]store.RewardRecord
	entries       []store.LedgerEntry

	billKeys map[string]bool
	poolKeys map[string]bool

	nextID int64
}

var _ store.Querier = (*Fake)(nil)

func NewFake() *Fake {
	return &Fake{
		accounts:      make(map[accountKey]store.Account),
		bills:         make(map[int64]store.Bill),
		payments:      make(map[int64]store.Payment),
		pools:         make(map[int64]store.Pool),
		contributions: make(map[int64]store.Contribution),
		rewards:       make(map[int64]store.RewardRecord),
		billKeys:      make(map[string]bool),
		poolKeys:      make(map[string]bool),
	}
}

func (f *Fake) nextSequence() int64 {
	f.nextID++
	return f.nextID
}

func now() pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: time.Now(), Valid: true}
}

func uniqueViolation(constraint string) error {
	return &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: constraint}
}

// SeedAccount sets an account's balances directly, bypassing the ledger.
func (f *Fake) SeedAccount(address, asset string, balance, escrowed int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.accounts[accountKey{Address: address, Asset: asset}] = store.Account{
		Address:   address,
		Asset:     asset,
		Balance:   balance,
		Escrowed:  escrowed,
		CreatedAt: now(),
		UpdatedAt: now(),
	}
}

// SetPoolDeadline rewrites a pool's deadline so a test can lapse it without
// sleeping.
func (f *Fake) SetPoolDeadline(poolID int64, deadline time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	pool, ok := f.pools[poolID]
	if !ok {
		return
	}
	pool.Deadline = pgtype.Timestamptz{Time: deadline, Valid: true}
	f.pools[poolID] = pool
}

// SetPaymentDeadline rewrites a payment's confirmation deadline.
func (f *Fake) SetPaymentDeadline(paymentID int64, deadline time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	payment, ok := f.payments[paymentID]
	if !ok {
		return
	}
	payment.ConfirmationDeadline = pgtype.Timestamptz{Time: deadline, Valid: true}
	f.payments[paymentID] = payment
}

// SetBillDue rewrites a bill's next payment time.
func (f *Fake) SetBillDue(billID int64, due time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	bill, ok := f.bills[billID]
	if !ok {
		return
	}
	bill.NextPaymentAt = pgtype.Timestamptz{Time: due, Valid: true}
	f.bills[billID] = bill
}

// Accounts

func (f *Fake) CreateAccount(_ context.Context, arg store.CreateAccountParams) (store.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := accountKey{Address: arg.Address, Asset: arg.Asset}
	if _, ok := f.accounts[key]; ok {
		return store.Account{}, uniqueViolation("accounts_pkey")
	}
	account := store.Account{
		Address:   arg.Address,
		Asset:     arg.Asset,
		CreatedAt: now(),
		UpdatedAt: now(),
	}
	f.accounts[key] = account
	return account, nil
}

func (f *Fake) GetAccount(_ context.Context, arg store.GetAccountParams) (store.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	account, ok := f.accounts[accountKey{Address: arg.Address, Asset: arg.Asset}]
	if !ok {
		return store.Account{}, pgx.ErrNoRows
	}
	return account, nil
}

func (f *Fake) GetAccountForUpdate(ctx context.Context, arg store.GetAccountForUpdateParams) (store.Account, error) {
	return f.GetAccount(ctx, store.GetAccountParams{Address: arg.Address, Asset: arg.Asset})
}

func (f *Fake) UpdateAccountBalances(_ context.Context, arg store.UpdateAccountBalancesParams) (store.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := accountKey{Address: arg.Address, Asset: arg.Asset}
	account, ok := f.accounts[key]
	if !ok {
		return store.Account{}, pgx.ErrNoRows
	}
	account.Balance = arg.Balance
	account.Escrowed = arg.Escrowed
	account.UpdatedAt = now()
	f.accounts[key] = account
	return account, nil
}

func (f *Fake) CreateLedgerEntry(_ context.Context, arg store.CreateLedgerEntryParams) (store.LedgerEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	entry := store.LedgerEntry{
		ID:          f.nextSequence(),
		ReferenceID: arg.ReferenceID,
		Address:     arg.Address,
		Asset:       arg.Asset,
		Delta:       arg.Delta,
		Reason:      arg.Reason,
		CreatedAt:   now(),
	}
	f.entries = append(f.entries, entry)
	return entry, nil
}

func (f *Fake) ListLedgerEntries(_ context.Context, arg store.ListLedgerEntriesParams) ([]store.LedgerEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var items []store.LedgerEntry
	for i := len(f.entries) - 1; i >= 0; i-- {
		entry := f.entries[i]
		if entry.Address == arg.Address && entry.Asset == arg.Asset {
			items = append(items, entry)
		}
		if int32(len(items)) == arg.Limit {
			break
		}
	}
	return items, nil
}

// Bills

func (f *Fake) CreateBill(_ context.Context, arg store.CreateBillParams) (store.Bill, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.billKeys[arg.IdempotencyKey] {
		return store.Bill{}, uniqueViolation("bills_idempotency_key_key")
	}
	f.billKeys[arg.IdempotencyKey] = true
	bill := store.Bill{
		ID:               f.nextSequence(),
		Payer:            arg.Payer,
		Payee:            arg.Payee,
		Asset:            arg.Asset,
		Amount:           arg.Amount,
		FrequencySeconds: arg.FrequencySeconds,
		NextPaymentAt:    arg.NextPaymentAt,
		TotalPayments:    arg.TotalPayments,
		Status:           arg.Status,
		Description:      arg.Description,
		Category:         arg.Category,
		IdempotencyKey:   arg.IdempotencyKey,
		WorkflowID:       arg.WorkflowID,
		CreatedAt:        now(),
		UpdatedAt:        now(),
	}
	f.bills[bill.ID] = bill
	return bill, nil
}

func (f *Fake) GetBill(_ context.Context, id int64) (store.Bill, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	bill, ok := f.bills[id]
	if !ok {
		return store.Bill{}, pgx.ErrNoRows
	}
	return bill, nil
}

func (f *Fake) GetBillForUpdate(ctx context.Context, id int64) (store.Bill, error) {
	return f.GetBill(ctx, id)
}

func (f *Fake) UpdateBillSchedule(_ context.Context, arg store.UpdateBillScheduleParams) (store.Bill, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	bill, ok := f.bills[arg.ID]
	if !ok {
		return store.Bill{}, pgx.ErrNoRows
	}
	bill.Status = arg.Status
	bill.NextPaymentAt = arg.NextPaymentAt
	bill.CompletedPayments = arg.CompletedPayments
	bill.Streak = arg.Streak
	bill.TotalPaid = arg.TotalPaid
	bill.UpdatedAt = now()
	f.bills[arg.ID] = bill
	return bill, nil
}

func (f *Fake) UpdateBillStatus(_ context.Context, arg store.UpdateBillStatusParams) (store.Bill, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	bill, ok := f.bills[arg.ID]
	if !ok {
		return store.Bill{}, pgx.ErrNoRows
	}
	bill.Status = arg.Status
	bill.UpdatedAt = now()
	f.bills[arg.ID] = bill
	return bill, nil
}

func (f *Fake) CountBillsByPayer(_ context.Context, payer string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, bill := range f.bills {
		if bill.Payer == payer {
			count++
		}
	}
	return count, nil
}

func (f *Fake) ListBillsByPayer(_ context.Context, arg store.ListBillsByPayerParams) ([]store.Bill, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var items []store.Bill
	for _, bill := range f.bills {
		if bill.Payer == arg.Payer {
			items = append(items, bill)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID > items[j].ID })
	return page(items, arg.Limit, arg.Offset), nil
}

func (f *Fake) ListBillsByPayee(_ context.Context, arg store.ListBillsByPayeeParams) ([]store.Bill, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var items []store.Bill
	for _, bill := range f.bills {
		if bill.Payee == arg.Payee {
			items = append(items, bill)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID > items[j].ID })
	return page(items, arg.Limit, arg.Offset), nil
}

func (f *Fake) ListDueBills(_ context.Context, arg store.ListDueBillsParams) ([]store.Bill, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var items []store.Bill
	for _, bill := range f.bills {
		if bill.Status == "active" && !bill.NextPaymentAt.Time.After(arg.NextPaymentAt.Time) {
			items = append(items, bill)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].NextPaymentAt.Time.Before(items[j].NextPaymentAt.Time) })
	return limit(items, arg.Limit), nil
}

// Payments

func (f *Fake) CreatePayment(_ context.Context, arg store.CreatePaymentParams) (store.Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	payment := store.Payment{
		ID:                   f.nextSequence(),
		BillID:               arg.BillID,
		Payer:                arg.Payer,
		Payee:                arg.Payee,
		Asset:                arg.Asset,
		Amount:               arg.Amount,
		Status:               arg.Status,
		ExecutedAt:           arg.ExecutedAt,
		ConfirmationDeadline: arg.ConfirmationDeadline,
		ReferenceID:          arg.ReferenceID,
		CreatedAt:            now(),
		UpdatedAt:            now(),
	}
	f.payments[payment.ID] = payment
	return payment, nil
}

func (f *Fake) GetPayment(_ context.Context, id int64) (store.Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	payment, ok := f.payments[id]
	if !ok {
		return store.Payment{}, pgx.ErrNoRows
	}
	return payment, nil
}

func (f *Fake) GetPaymentForUpdate(ctx context.Context, id int64) (store.Payment, error) {
	return f.GetPayment(ctx, id)
}

func (f *Fake) UpdatePaymentStatus(_ context.Context, arg store.UpdatePaymentStatusParams) (store.Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	payment, ok := f.payments[arg.ID]
	if !ok {
		return store.Payment{}, pgx.ErrNoRows
	}
	payment.Status = arg.Status
	if arg.ProofHash.Valid {
		payment.ProofHash = arg.ProofHash
	}
	payment.UpdatedAt = now()
	f.payments[arg.ID] = payment
	return payment, nil
}

func (f *Fake) ListPaymentsByBill(_ context.Context, billID int64) ([]store.Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var items []store.Payment
	for _, payment := range f.payments {
		if payment.BillID == billID {
			items = append(items, payment)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (f *Fake) ListPaymentsByUser(_ context.Context, arg store.ListPaymentsByUserParams) ([]store.Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var items []store.Payment
	for _, payment := range f.payments {
		if payment.Payer == arg.Address || payment.Payee == arg.Address {
			items = append(items, payment)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID > items[j].ID })
	return page(items, arg.Limit, arg.Offset), nil
}

func (f *Fake) ListExpiredEscrowedPayments(_ context.Context, arg store.ListExpiredEscrowedPaymentsParams) ([]store.Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var items []store.Payment
	for _, payment := range f.payments {
		if payment.Status == "escrowed" && payment.ConfirmationDeadline.Time.Before(arg.ConfirmationDeadline.Time) {
			items = append(items, payment)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].ConfirmationDeadline.Time.Before(items[j].ConfirmationDeadline.Time)
	})
	return limit(items, arg.Limit), nil
}

func (f *Fake) SumEscrowedPaymentsByPayer(_ context.Context, arg store.SumEscrowedPaymentsByPayerParams) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var sum int64
	for _, payment := range f.payments {
		if payment.Payer == arg.Payer && payment.Asset == arg.Asset &&
			(payment.Status == "pending" || payment.Status == "escrowed") {
			sum += payment.Amount
		}
	}
	return sum, nil
}

func (f *Fake) GetConfirmedPaymentStats(_ context.Context, payer string) (store.GetConfirmedPaymentStatsRow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var row store.GetConfirmedPaymentStatsRow
	for _, payment := range f.payments {
		if payment.Payer == payer && payment.Status == "confirmed" {
			row.PaymentsCompleted++
			row.TotalValue += payment.Amount
		}
	}
	return row, nil
}

// Pools

func (f *Fake) CreatePool(_ context.Context, arg store.CreatePoolParams) (store.Pool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.poolKeys[arg.IdempotencyKey] {
		return store.Pool{}, uniqueViolation("pools_idempotency_key_key")
	}
	f.poolKeys[arg.IdempotencyKey] = true
	pool := store.Pool{
		ID:              f.nextSequence(),
		Creator:         arg.Creator,
		Payee:           arg.Payee,
		Asset:           arg.Asset,
		TotalAmount:     arg.TotalAmount,
		MinContribution: arg.MinContribution,
		MaxContribution: arg.MaxContribution,
		MaxParticipants: arg.MaxParticipants,
		Deadline:        arg.Deadline,
		Status:          arg.Status,
		SplitType:       arg.SplitType,
		Description:     arg.Description,
		Category:        arg.Category,
		AllowPublicJoin: arg.AllowPublicJoin,
		IdempotencyKey:  arg.IdempotencyKey,
		CreatedAt:       now(),
		UpdatedAt:       now(),
	}
	f.pools[pool.ID] = pool
	return pool, nil
}

func (f *Fake) GetPool(_ context.Context, id int64) (store.Pool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	pool, ok := f.pools[id]
	if !ok {
		return store.Pool{}, pgx.ErrNoRows
	}
	return pool, nil
}

func (f *Fake) GetPoolForUpdate(ctx context.Context, id int64) (store.Pool, error) {
	return f.GetPool(ctx, id)
}

func (f *Fake) UpdatePoolCollected(_ context.Context, arg store.UpdatePoolCollectedParams) (store.Pool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	pool, ok := f.pools[arg.ID]
	if !ok {
		return store.Pool{}, pgx.ErrNoRows
	}
	pool.CollectedAmount = arg.CollectedAmount
	pool.UpdatedAt = now()
	f.pools[arg.ID] = pool
	return pool, nil
}

func (f *Fake) UpdatePoolStatus(_ context.Context, arg store.UpdatePoolStatusParams) (store.Pool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	pool, ok := f.pools[arg.ID]
	if !ok {
		return store.Pool{}, pgx.ErrNoRows
	}
	pool.Status = arg.Status
	pool.UpdatedAt = now()
	f.pools[arg.ID] = pool
	return pool, nil
}

func (f *Fake) ListActivePools(_ context.Context, arg store.ListActivePoolsParams) ([]store.Pool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var items []store.Pool
	for _, pool := range f.pools {
		if pool.Status == "active" && pool.Deadline.Time.After(arg.Deadline.Time) {
			items = append(items, pool)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return page(items, arg.Limit, arg.Offset), nil
}

func (f *Fake) ListExpiredActivePools(_ context.Context, arg store.ListExpiredActivePoolsParams) ([]store.Pool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var items []store.Pool
	for _, pool := range f.pools {
		if pool.Status == "active" && pool.Deadline.Time.Before(arg.Deadline.Time) {
			items = append(items, pool)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Deadline.Time.Before(items[j].Deadline.Time) })
	return limit(items, arg.Limit), nil
}

// Contributions

func (f *Fake) CreateContribution(_ context.Context, arg store.CreateContributionParams) (store.Contribution, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	contribution := store.Contribution{
		ID:          f.nextSequence(),
		PoolID:      arg.PoolID,
		Contributor: arg.Contributor,
		Amount:      arg.Amount,
		CreatedAt:   now(),
	}
	f.contributions[contribution.ID] = contribution
	return contribution, nil
}

func (f *Fake) MarkContributionClaimed(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	contribution, ok := f.contributions[id]
	if !ok {
		return pgx.ErrNoRows
	}
	contribution.Claimed = true
	f.contributions[id] = contribution
	return nil
}

func (f *Fake) CountDistinctContributors(_ context.Context, poolID int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	seen := make(map[string]bool)
	for _, contribution := range f.contributions {
		if contribution.PoolID == poolID {
			seen[contribution.Contributor] = true
		}
	}
	return int64(len(seen)), nil
}

func (f *Fake) ListContributionsByPool(_ context.Context, poolID int64) ([]store.Contribution, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var items []store.Contribution
	for _, contribution := range f.contributions {
		if contribution.PoolID == poolID {
			items = append(items, contribution)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (f *Fake) ListUnclaimedContributionsByPool(_ context.Context, poolID int64) ([]store.Contribution, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var items []store.Contribution
	for _, contribution := range f.contributions {
		if contribution.PoolID == poolID && !contribution.Claimed {
			items = append(items, contribution)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (f *Fake) ListUnclaimedContributionsByContributor(_ context.Context, arg store.ListUnclaimedContributionsByContributorParams) ([]store.Contribution, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var items []store.Contribution
	for _, contribution := range f.contributions {
		if contribution.PoolID == arg.PoolID && contribution.Contributor == arg.Contributor && !contribution.Claimed {
			items = append(items, contribution)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (f *Fake) SumOpenContributionsByContributor(_ context.Context, arg store.SumOpenContributionsByContributorParams) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var sum int64
	for _, contribution := range f.contributions {
		if contribution.Contributor != arg.Contributor || contribution.Claimed {
			continue
		}
		pool, ok := f.pools[contribution.PoolID]
		if !ok || pool.Asset != arg.Asset || pool.Status != "active" {
			continue
		}
		sum += contribution.Amount
	}
	return sum, nil
}

// Rewards

func (f *Fake) CreateRewardRecord(_ context.Context, arg store.CreateRewardRecordParams) (store.RewardRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	record := store.RewardRecord{
		ID:                f.nextSequence(),
		Recipient:         arg.Recipient,
		Tier:              arg.Tier,
		PaymentsCompleted: arg.PaymentsCompleted,
		TotalValue:        arg.TotalValue,
		Achievement:       arg.Achievement,
		MintedAt:          now(),
		UpdatedAt:         now(),
	}
	f.rewards[record.ID] = record
	return record, nil
}

func (f *Fake) UpdateRewardRecord(_ context.Context, arg store.UpdateRewardRecordParams) (store.RewardRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	record, ok := f.rewards[arg.ID]
	if !ok {
		return store.RewardRecord{}, pgx.ErrNoRows
	}
	record.Tier = arg.Tier
	record.PaymentsCompleted = arg.PaymentsCompleted
	record.TotalValue = arg.TotalValue
	record.Achievement = arg.Achievement
	record.UpdatedAt = now()
	f.rewards[arg.ID] = record
	return record, nil
}

func (f *Fake) GetLatestRewardByRecipient(_ context.Context, recipient string) (store.RewardRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var latest store.RewardRecord
	found := false
	for _, record := range f.rewards {
		if record.Recipient == recipient && record.ID > latest.ID {
			latest = record
			found = true
		}
	}
	if !found {
		return store.RewardRecord{}, pgx.ErrNoRows
	}
	return latest, nil
}

func (f *Fake) GetLatestRewardByRecipientForUpdate(ctx context.Context, recipient string) (store.RewardRecord, error) {
	return f.GetLatestRewardByRecipient(ctx, recipient)
}

func (f *Fake) ListRewardsByRecipient(_ context.Context, recipient string) ([]store.RewardRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var items []store.RewardRecord
	for _, record := range f.rewards {
		if record.Recipient == recipient {
			items = append(items, record)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func page[T any](items []T, lim, offset int32) []T {
	if int(offset) >= len(items) {
		return nil
	}
	items = items[offset:]
	return limit(items, lim)
}

func limit[T any](items []T, lim int32) []T {
	if lim > 0 && int(lim) < len(items) {
		return items[:lim]
	}
	return items
}
