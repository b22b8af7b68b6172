package pool

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"encore.app/billing/mocks/business/ledger_business"
	"encore.app/billing/mocks/domain/state_machine"
	"encore.app/billing/mocks/store/store_querier"
	"encore.app/billing/model"
	"encore.app/billing/store"
)

func poolFixture() *model.Pool {
	return &model.Pool{
		Creator:         "alice",
		Payee:           "landlord",
		Asset:           "USDC",
		TotalAmount:     10000,
		MinContribution: 500,
		MaxContribution: 5000,
		Deadline:        time.Now().Add(48 * time.Hour),
		SplitType:       model.SplitTypeCustom,
		AllowPublicJoin: true,
		IdempotencyKey:  "key-42",
	}
}

func TestCreatePool(t *testing.T) {
	testCases := []struct {
		name          string
		pool          *model.Pool
		storeError    error
		expectStore   bool
		expectedError string
	}{
		{
			name:        "happy_case",
			pool:        poolFixture(),
			expectStore: true,
		},
		{
			name: "zero_target",
			pool: func() *model.Pool {
				p := poolFixture()
				p.TotalAmount = 0
				return p
			}(),
			expectedError: "total amount must be greater than 0",
		},
		{
			name: "past_deadline",
			pool: func() *model.Pool {
				p := poolFixture()
				p.Deadline = time.Now().Add(-time.Minute)
				return p
			}(),
			expectedError: "deadline must be in the future",
		},
		{
			name: "negative_minimum",
			pool: func() *model.Pool {
				p := poolFixture()
				p.MinContribution = -1
				return p
			}(),
			expectedError: "contribution limits must not be negative",
		},
		{
			name: "minimum_above_maximum",
			pool: func() *model.Pool {
				p := poolFixture()
				p.MinContribution = 6000
				return p
			}(),
			expectedError: "minimum contribution exceeds maximum",
		},
		{
			name: "negative_participant_cap",
			pool: func() *model.Pool {
				p := poolFixture()
				p.MaxParticipants = -2
				return p
			}(),
			expectedError: "max participants must not be negative",
		},
		{
			name:          "duplicate_error",
			pool:          poolFixture(),
			expectStore:   true,
			storeError:    &pgconn.PgError{Code: pgerrcode.UniqueViolation},
			expectedError: "pool is duplicated",
		},
		{
			name:          "general_error",
			pool:          poolFixture(),
			expectStore:   true,
			storeError:    assert.AnError,
			expectedError: "failed to create pool",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQuerier := store_querier.NewMockQuerier(ctrl)
			mockLedger := ledger_business.NewMockBusiness(ctrl)
			mockPools := state_machine.NewMockPoolStateMachine(ctrl)

			business := NewPoolBusiness(mockQuerier, mockPools, mockLedger)

			if tc.expectStore {
				mockQuerier.EXPECT().
					CreatePool(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, arg store.CreatePoolParams) (store.Pool, error) {
						if tc.storeError != nil {
							return store.Pool{}, tc.storeError
						}
						assert.Equal(t, "active", arg.Status)
						assert.Equal(t, "custom", arg.SplitType)
						assert.Equal(t, tc.pool.IdempotencyKey, arg.IdempotencyKey)
						return store.Pool{
							ID:          1,
							Creator:     arg.Creator,
							Payee:       arg.Payee,
							Asset:       arg.Asset,
							TotalAmount: arg.TotalAmount,
							Deadline:    arg.Deadline,
							Status:      arg.Status,
							SplitType:   arg.SplitType,
						}, nil
					})
			}

			created, err := business.CreatePool(context.Background(), tc.pool)

			if tc.expectedError != "" {
				assert.Error(t, err)
				assert.Nil(t, created)
				assert.Contains(t, err.Error(), tc.expectedError)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, created)
				assert.Equal(t, model.PoolStatusActive, created.Status)
			}
		})
	}
}
