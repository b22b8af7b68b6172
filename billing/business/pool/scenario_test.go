package pool

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"encore.dev/beta/errs"

	"encore.app/billing/business/ledger"
	"encore.app/billing/model"
	"encore.app/billing/store"
	"encore.app/billing/store/storetest"
)

type fakeTxRunner struct{ q store.Querier }

func (s *fakeTxRunner) RunInTx(ctx context.Context, fn func(q store.Querier) error) error {
	return fn(s.q)
}

type poolLockStub struct{ q store.Querier }

func (s *poolLockStub) ExecuteWithLock(ctx context.Context, poolID int64, fn func(q store.Querier, current store.Pool) error) error {
	current, err := s.q.GetPoolForUpdate(ctx, poolID)
	if err != nil {
		return &errs.Error{Code: errs.NotFound, Message: "pool not found"}
	}
	return fn(s.q, current)
}

func newScenario(t *testing.T) (Business, ledger.Business, *storetest.Fake) {
	t.Helper()
	fake := storetest.NewFake()
	ledgerBiz := ledger.NewLedgerBusiness(&fakeTxRunner{q: fake}, fake)
	biz := NewPoolBusiness(fake, &poolLockStub{q: fake}, ledgerBiz)
	return biz, ledgerBiz, fake
}

func TestPoolFundAndComplete(t *testing.T) {
	ctx := context.Background()
	biz, ledgerBiz, _ := newScenario(t)

	_, err := ledgerBiz.Deposit(ctx, "bob", "USDC", 400, "seed-bob")
	require.NoError(t, err)
	_, err = ledgerBiz.Deposit(ctx, "carol", "USDC", 400, "seed-carol")
	require.NoError(t, err)

	created, err := biz.CreatePool(ctx, &model.Pool{
		Creator:         "alice",
		Payee:           "landlord",
		Asset:           "USDC",
		TotalAmount:     300,
		MinContribution: 10,
		MaxContribution: 200,
		Deadline:        time.Now().Add(48 * time.Hour),
		AllowPublicJoin: true,
		IdempotencyKey:  "fund-complete-1",
	})
	require.NoError(t, err)
	assert.Equal(t, model.PoolStatusActive, created.Status)

	_, err = biz.Contribute(ctx, created.ID, "bob", 150)
	require.NoError(t, err)
	_, err = biz.Contribute(ctx, created.ID, "carol", 150)
	require.NoError(t, err)

	funded, err := biz.GetPool(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(300), funded.CollectedAmount)

	// only the creator may disburse
	err = biz.CompletePool(ctx, created.ID, "bob", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "only the pool creator")

	require.NoError(t, biz.CompletePool(ctx, created.ID, "alice", ""))

	completed, err := biz.GetPool(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, model.PoolStatusCompleted, completed.Status)

	payee, err := ledgerBiz.GetBalance(ctx, "landlord", "USDC")
	require.NoError(t, err)
	assert.Equal(t, int64(300), payee.Balance)

	for _, contributor := range []string{"bob", "carol"} {
		account, err := ledgerBiz.GetBalance(ctx, contributor, "USDC")
		require.NoError(t, err)
		assert.Equal(t, int64(250), account.Balance)
		assert.Equal(t, int64(0), account.Escrowed)
	}

	// completing twice trips the status guard
	err = biz.CompletePool(ctx, created.ID, "alice", "")
	require.Error(t, err)
}

func TestPoolDeadlineRefundScenario(t *testing.T) {
	ctx := context.Background()
	biz, ledgerBiz, fake := newScenario(t)

	_, err := ledgerBiz.Deposit(ctx, "bob", "USDC", 400, "seed-bob")
	require.NoError(t, err)

	created, err := biz.CreatePool(ctx, &model.Pool{
		Creator:         "alice",
		Payee:           "landlord",
		Asset:           "USDC",
		TotalAmount:     300,
		MinContribution: 10,
		MaxContribution: 200,
		Deadline:        time.Now().Add(48 * time.Hour),
		AllowPublicJoin: true,
		IdempotencyKey:  "deadline-refund-1",
	})
	require.NoError(t, err)

	_, err = biz.Contribute(ctx, created.ID, "bob", 120)
	require.NoError(t, err)

	fake.SetPoolDeadline(created.ID, time.Now().Add(-time.Hour))

	require.NoError(t, biz.ExpirePool(ctx, created.ID))

	// a second expiry attempt is a guarded no-op for callers that check
	err = biz.ExpirePool(ctx, created.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pool is not active")

	cancelled, err := biz.GetPool(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, model.PoolStatusCancelled, cancelled.Status)

	account, err := ledgerBiz.GetBalance(ctx, "bob", "USDC")
	require.NoError(t, err)
	assert.Equal(t, int64(400), account.Balance)
	assert.Equal(t, int64(0), account.Escrowed)
}
