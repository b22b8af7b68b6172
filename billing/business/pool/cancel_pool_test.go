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

func TestCancelPool(t *testing.T) {
	testCases := []struct {
		name          string
		actor         string
		current       store.Pool
		expectedError string
	}{
		{
			name:    "happy_case",
			actor:   "alice",
			current: activePool(),
		},
		{
			name:          "only_creator_may_cancel",
			actor:         "bob",
			current:       activePool(),
			expectedError: "only the pool creator can cancel the pool",
		},
		{
			name:  "already_completed",
			actor: "alice",
			current: func() store.Pool {
				p := activePool()
				p.Status = "completed"
				return p
			}(),
			expectedError: "pool is not active",
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
					{ID: 1, PoolID: tc.current.ID, Contributor: "bob", Amount: 1500},
					{ID: 2, PoolID: tc.current.ID, Contributor: "carol", Amount: 500},
				}
				mockQuerier.EXPECT().
					ListUnclaimedContributionsByPool(gomock.Any(), tc.current.ID).
					Return(contributions, nil)
				for _, c := range contributions {
					mockLedger.EXPECT().
						RefundHold(gomock.Any(), mockQuerier, c.Contributor, tc.current.Asset, c.Amount, "pool contribution refund", gomock.Any()).
						Return(nil)
					mockQuerier.EXPECT().
						MarkContributionClaimed(gomock.Any(), c.ID).
						Return(nil)
				}
				mockQuerier.EXPECT().
					UpdatePoolStatus(gomock.Any(), store.UpdatePoolStatusParams{
						ID:     tc.current.ID,
						Status: "cancelled",
					}).
					Return(store.Pool{}, nil)
			}

			err := business.CancelPool(context.Background(), tc.current.ID, tc.actor)

			if tc.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
