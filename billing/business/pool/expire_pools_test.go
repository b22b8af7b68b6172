package pool

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"encore.app/billing/mocks/business/ledger_business"
	"encore.app/billing/mocks/domain/state_machine"
	"encore.app/billing/mocks/store/store_querier"
	"encore.app/billing/store"
)

func TestRefundExpiredPools(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := store_querier.NewMockQuerier(ctrl)
	mockLedger := ledger_business.NewMockBusiness(ctrl)
	mockPools := state_machine.NewMockPoolStateMachine(ctrl)

	business := &business{
		queries: mockQuerier,
		pools:   mockPools,
		ledger:  mockLedger,
	}

	first := expiredPool()
	second := expiredPool()
	second.ID = 2

	mockQuerier.EXPECT().
		ListExpiredActivePools(gomock.Any(), gomock.Any()).
		Return([]store.Pool{first, second}, nil)

	mockPools.EXPECT().
		ExecuteWithLock(gomock.Any(), first.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, fn func(store.Querier, store.Pool) error) error {
			return fn(mockQuerier, first)
		})
	mockQuerier.EXPECT().
		ListUnclaimedContributionsByPool(gomock.Any(), first.ID).
		Return([]store.Contribution{
			{ID: 1, PoolID: first.ID, Contributor: "bob", Amount: 2000},
		}, nil)
	mockLedger.EXPECT().
		RefundHold(gomock.Any(), mockQuerier, "bob", first.Asset, int64(2000), "pool contribution refund", gomock.Any()).
		Return(nil)
	mockQuerier.EXPECT().
		MarkContributionClaimed(gomock.Any(), int64(1)).
		Return(nil)
	mockQuerier.EXPECT().
		UpdatePoolStatus(gomock.Any(), store.UpdatePoolStatusParams{ID: first.ID, Status: "cancelled"}).
		Return(store.Pool{}, nil)

	// the second pool was completed between listing and locking
	second.Status = "completed"
	mockPools.EXPECT().
		ExecuteWithLock(gomock.Any(), second.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, fn func(store.Querier, store.Pool) error) error {
			return fn(mockQuerier, second)
		})

	swept, err := business.RefundExpiredPools(context.Background(), time.Now(), 100)
	assert.NoError(t, err)
	assert.Equal(t, 1, swept)
}

func TestExpirePoolDeadlineNotPassed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := store_querier.NewMockQuerier(ctrl)
	mockLedger := ledger_business.NewMockBusiness(ctrl)
	mockPools := state_machine.NewMockPoolStateMachine(ctrl)

	business := &business{
		queries: mockQuerier,
		pools:   mockPools,
		ledger:  mockLedger,
	}

	current := activePool()
	mockPools.EXPECT().
		ExecuteWithLock(gomock.Any(), current.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, fn func(store.Querier, store.Pool) error) error {
			return fn(mockQuerier, current)
		})

	err := business.ExpirePool(context.Background(), current.ID)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "pool deadline has not passed")
}
