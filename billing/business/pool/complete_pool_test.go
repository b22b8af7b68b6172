package pool

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"encore.app/billing/mocks/business/ledger_business"
	"encore.app/billing/mocks/domain/state_machine"
	"encore.app/billing/mocks/store/store_querier"
	"encore.app/billing/store"
)

func TestCompletePool(t *testing.T) {
	testCases := []struct {
		name          string
		actor         string
		current       store.Pool
		expectedError string
	}{
		{
			name:  "happy_case",
			actor: "alice",
			current: func() store.Pool {
				p := activePool()
				p.CollectedAmount = p.TotalAmount
				return p
			}(),
		},
		{
			name:          "only_creator_may_complete",
			actor:         "bob",
			current:       activePool(),
			expectedError: "only the pool creator can complete the pool",
		},
		{
			name:  "cancelled_pool",
			actor: "alice",
			current: func() store.Pool {
				p := activePool()
				p.Status = "cancelled"
				return p
			}(),
			expectedError: "pool is not active",
		},
		{
			name:          "not_fully_funded",
			actor:         "alice",
			current:       activePool(),
			expectedError: "pool is not fully funded",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
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

			mockPools.EXPECT().
				ExecuteWithLock(gomock.Any(), tc.current.ID, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ int64, fn func(store.Querier, store.Pool) error) error {
					return fn(mockQuerier, tc.current)
				})

			if tc.expectedError == "" {
				contributions := []store.Contribution{
					{ID: 1, PoolID: tc.current.ID, Contributor: "alice", Amount: 6000},
					{ID: 2, PoolID: tc.current.ID, Contributor: "bob", Amount: 4000},
				}
				mockQuerier.EXPECT().
					ListUnclaimedContributionsByPool(gomock.Any(), tc.current.ID).
					Return(contributions, nil)
				for _, c := range contributions {
					mockLedger.EXPECT().
						Release(gomock.Any(), mockQuerier, c.Contributor, tc.current.Payee, tc.current.Asset, c.Amount, "pool payout", gomock.Any()).
						Return(nil)
					mockQuerier.EXPECT().
						MarkContributionClaimed(gomock.Any(), c.ID).
						Return(nil)
				}
				mockQuerier.EXPECT().
					UpdatePoolStatus(gomock.Any(), store.UpdatePoolStatusParams{
						ID:     tc.current.ID,
						Status: "completed",
					}).
					Return(store.Pool{}, nil)
			}

			err := business.CompletePool(context.Background(), tc.current.ID, tc.actor, "")

			if tc.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCompletePoolCustomDestination(t *testing.T) {
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
	current.CollectedAmount = current.TotalAmount

	mockPools.EXPECT().
		ExecuteWithLock(gomock.Any(), current.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, fn func(store.Querier, store.Pool) error) error {
			return fn(mockQuerier, current)
		})

	mockQuerier.EXPECT().
		ListUnclaimedContributionsByPool(gomock.Any(), current.ID).
		Return([]store.Contribution{
			{ID: 1, PoolID: current.ID, Contributor: "alice", Amount: 10000},
		}, nil)
	mockLedger.EXPECT().
		Release(gomock.Any(), mockQuerier, "alice", "utility-co", current.Asset, int64(10000), "pool payout", gomock.Any()).
		Return(nil)
	mockQuerier.EXPECT().
		MarkContributionClaimed(gomock.Any(), int64(1)).
		Return(nil)
	mockQuerier.EXPECT().
		UpdatePoolStatus(gomock.Any(), gomock.Any()).
		Return(store.Pool{}, nil)

	err := business.CompletePool(context.Background(), current.ID, "alice", "utility-co")
	assert.NoError(t, err)
}
