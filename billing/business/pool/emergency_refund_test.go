package pool

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"encore.app/billing/mocks/business/ledger_business"
	"encore.app/billing/mocks/domain/state_machine"
	"encore.app/billing/mocks/store/store_querier"
	"encore.app/billing/store"
)

func expiredPool() store.Pool {
	p := activePool()
	p.Deadline = pgtype.Timestamptz{Time: time.Now().Add(-time.Hour), Valid: true}
	return p
}

func TestEmergencyRefund(t *testing.T) {
	testCases := []struct {
		name           string
		current        store.Pool
		contributions  []store.Contribution
		expectList     bool
		expectRefunded int64
		expectedError  string
	}{
		{
			name:    "happy_case",
			current: expiredPool(),
			contributions: []store.Contribution{
				{ID: 1, PoolID: 1, Contributor: "bob", Amount: 1200},
				{ID: 2, PoolID: 1, Contributor: "bob", Amount: 800},
			},
			expectList:     true,
			expectRefunded: 2000,
		},
		{
			name: "cancelled_pool",
			current: func() store.Pool {
				p := expiredPool()
				p.Status = "cancelled"
				return p
			}(),
			expectedError: "pool is not active",
		},
		{
			name:          "deadline_not_passed",
			current:       activePool(),
			expectedError: "pool deadline has not passed",
		},
		{
			name:          "nothing_to_refund",
			current:       expiredPool(),
			contributions: nil,
			expectList:    true,
			expectedError: "no refundable contribution found",
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

			if tc.expectList {
				mockQuerier.EXPECT().
					ListUnclaimedContributionsByContributor(gomock.Any(), store.ListUnclaimedContributionsByContributorParams{
						PoolID:      tc.current.ID,
						Contributor: "bob",
					}).
					Return(tc.contributions, nil)
			}

			if tc.expectedError == "" {
				for _, c := range tc.contributions {
					mockLedger.EXPECT().
						RefundHold(gomock.Any(), mockQuerier, c.Contributor, tc.current.Asset, c.Amount, "pool contribution refund", gomock.Any()).
						Return(nil)
					mockQuerier.EXPECT().
						MarkContributionClaimed(gomock.Any(), c.ID).
						Return(nil)
				}
				mockQuerier.EXPECT().
					UpdatePoolCollected(gomock.Any(), store.UpdatePoolCollectedParams{
						ID:              tc.current.ID,
						CollectedAmount: tc.current.CollectedAmount - tc.expectRefunded,
					}).
					Return(store.Pool{}, nil)
			}

			refunded, err := business.EmergencyRefund(context.Background(), tc.current.ID, "bob")

			if tc.expectedError != "" {
				assert.Error(t, err)
				assert.Zero(t, refunded)
				assert.Contains(t, err.Error(), tc.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expectRefunded, refunded)
			}
		})
	}
}
