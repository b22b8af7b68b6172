package pool

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"encore.app/billing/mocks/business/ledger_business"
	"encore.app/billing/mocks/domain/state_machine"
	"encore.app/billing/mocks/store/store_querier"
	"encore.app/billing/store"
)

func activePool() store.Pool {
	return store.Pool{
		ID:              1,
		Creator:         "alice",
		Payee:           "landlord",
		Asset:           "USDC",
		TotalAmount:     10000,
		CollectedAmount: 2000,
		MinContribution: 500,
		MaxContribution: 5000,
		Deadline:        pgtype.Timestamptz{Time: time.Now().Add(24 * time.Hour), Valid: true},
		Status:          "active",
		SplitType:       "custom",
		AllowPublicJoin: true,
	}
}

func TestContribute(t *testing.T) {
	testCases := []struct {
		name          string
		contributor   string
		amount        int64
		current       store.Pool
		holdError     error
		expectHold    bool
		expectedError string
	}{
		{
			name:        "happy_case",
			contributor: "bob",
			amount:      1000,
			current:     activePool(),
			expectHold:  true,
		},
		{
			name:          "zero_amount",
			contributor:   "bob",
			amount:        0,
			current:       activePool(),
			expectedError: "amount must be greater than 0",
		},
		{
			name:        "completed_pool",
			contributor: "bob",
			amount:      1000,
			current: func() store.Pool {
				p := activePool()
				p.Status = "completed"
				return p
			}(),
			expectedError: "pool is not active",
		},
		{
			name:        "deadline_passed",
			contributor: "bob",
			amount:      1000,
			current: func() store.Pool {
				p := activePool()
				p.Deadline = pgtype.Timestamptz{Time: time.Now().Add(-time.Hour), Valid: true}
				return p
			}(),
			expectedError: "pool deadline has passed",
		},
		{
			name:        "private_pool_rejects_stranger",
			contributor: "bob",
			amount:      1000,
			current: func() store.Pool {
				p := activePool()
				p.AllowPublicJoin = false
				return p
			}(),
			expectedError: "pool is not open for public contributions",
		},
		{
			name:        "private_pool_allows_creator",
			contributor: "alice",
			amount:      1000,
			current: func() store.Pool {
				p := activePool()
				p.AllowPublicJoin = false
				return p
			}(),
			expectHold: true,
		},
		{
			name:          "below_minimum",
			contributor:   "bob",
			amount:        100,
			current:       activePool(),
			expectedError: "amount is below the minimum contribution",
		},
		{
			name:          "above_maximum",
			contributor:   "bob",
			amount:        6000,
			current:       activePool(),
			expectedError: "amount is above the maximum contribution",
		},
		{
			name:        "overshoots_target",
			contributor: "bob",
			amount:      1000,
			current: func() store.Pool {
				p := activePool()
				p.CollectedAmount = 9500
				return p
			}(),
			expectedError: "contribution would exceed target amount",
		},
		{
			name:          "insufficient_balance",
			contributor:   "bob",
			amount:        1000,
			current:       activePool(),
			expectHold:    true,
			holdError:     &errs.Error{Code: errs.FailedPrecondition, Message: "insufficient balance"},
			expectedError: "insufficient balance",
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

			if tc.amount > 0 {
				mockPools.EXPECT().
					ExecuteWithLock(gomock.Any(), tc.current.ID, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ int64, fn func(store.Querier, store.Pool) error) error {
						return fn(mockQuerier, tc.current)
					})
			}

			if tc.expectHold {
				mockLedger.EXPECT().
					Hold(gomock.Any(), mockQuerier, tc.contributor, tc.current.Asset, tc.amount, "pool contribution hold", gomock.Any()).
					Return(tc.holdError)
			}

			if tc.expectHold && tc.holdError == nil {
				mockQuerier.EXPECT().
					CreateContribution(gomock.Any(), store.CreateContributionParams{
						PoolID:      tc.current.ID,
						Contributor: tc.contributor,
						Amount:      tc.amount,
					}).
					Return(store.Contribution{
						ID:          7,
						PoolID:      tc.current.ID,
						Contributor: tc.contributor,
						Amount:      tc.amount,
					}, nil)

				mockQuerier.EXPECT().
					UpdatePoolCollected(gomock.Any(), store.UpdatePoolCollectedParams{
						ID:              tc.current.ID,
						CollectedAmount: tc.current.CollectedAmount + tc.amount,
					}).
					Return(store.Pool{}, nil)
			}

			contribution, err := business.Contribute(context.Background(), tc.current.ID, tc.contributor, tc.amount)

			if tc.expectedError != "" {
				assert.Error(t, err)
				assert.Nil(t, contribution)
				assert.Contains(t, err.Error(), tc.expectedError)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, contribution)
				assert.Equal(t, tc.amount, contribution.Amount)
				assert.Equal(t, tc.contributor, contribution.Contributor)
			}
		})
	}
}

func TestContributeParticipantCap(t *testing.T) {
	testCases := []struct {
		name          string
		existing      []store.Contribution
		expectedError string
	}{
		{
			name:          "new_contributor_rejected_when_full",
			existing:      nil,
			expectedError: "pool is full",
		},
		{
			name: "existing_contributor_may_top_up",
			existing: []store.Contribution{
				{ID: 3, PoolID: 1, Contributor: "bob", Amount: 500},
			},
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

			current := activePool()
			current.MaxParticipants = 2

			mockPools.EXPECT().
				ExecuteWithLock(gomock.Any(), current.ID, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ int64, fn func(store.Querier, store.Pool) error) error {
					return fn(mockQuerier, current)
				})

			mockQuerier.EXPECT().
				CountDistinctContributors(gomock.Any(), current.ID).
				Return(int64(2), nil)

			mockQuerier.EXPECT().
				ListUnclaimedContributionsByContributor(gomock.Any(), store.ListUnclaimedContributionsByContributorParams{
					PoolID:      current.ID,
					Contributor: "bob",
				}).
				Return(tc.existing, nil)

			if tc.expectedError == "" {
				mockLedger.EXPECT().
					Hold(gomock.Any(), mockQuerier, "bob", current.Asset, int64(1000), "pool contribution hold", gomock.Any()).
					Return(nil)
				mockQuerier.EXPECT().
					CreateContribution(gomock.Any(), gomock.Any()).
					Return(store.Contribution{ID: 8, PoolID: current.ID, Contributor: "bob", Amount: 1000}, nil)
				mockQuerier.EXPECT().
					UpdatePoolCollected(gomock.Any(), gomock.Any()).
					Return(store.Pool{}, nil)
			}

			contribution, err := business.Contribute(context.Background(), current.ID, "bob", 1000)

			if tc.expectedError != "" {
				assert.Error(t, err)
				assert.Nil(t, contribution)
				assert.Contains(t, err.Error(), tc.expectedError)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, contribution)
			}
		})
	}
}
