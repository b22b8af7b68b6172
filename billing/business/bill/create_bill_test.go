package bill

import (
	"context"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"encore.app/billing/mocks/store/store_querier"
	"encore.app/billing/model"
	"encore.app/billing/store"
)

func TestCreateBill(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := store_querier.NewMockQuerier(ctrl)
	business := &business{queries: mockQuerier}

	testCases := []struct {
		name          string
		input         *model.Bill
		mockReturn    store.Bill
		mockError     error
		expectStore   bool
		expectedError string
		expectSuccess bool
	}{
		{
			name: "happy_case",
			input: &model.Bill{
				Payer:          "alice",
				Payee:          "bob",
				Asset:          "USDC",
				Amount:         5000,
				Frequency:      2592000,
				TotalPayments:  12,
				IdempotencyKey: "test-key-123",
			},
			mockReturn: store.Bill{
				ID:             1,
				Payer:          "alice",
				Payee:          "bob",
				Asset:          "USDC",
				Amount:         5000,
				Status:         "active",
				IdempotencyKey: "test-key-123",
			},
			expectStore:   true,
			expectSuccess: true,
		},
		{
			name: "zero_amount",
			input: &model.Bill{
				Payer:         "alice",
				Payee:         "bob",
				Asset:         "USDC",
				Amount:        0,
				TotalPayments: 1,
			},
			expectedError: "amount must be greater than 0",
		},
		{
			name: "zero_total_payments",
			input: &model.Bill{
				Payer:  "alice",
				Payee:  "bob",
				Asset:  "USDC",
				Amount: 5000,
			},
			expectedError: "total payments must be greater than 0",
		},
		{
			name: "negative_frequency",
			input: &model.Bill{
				Payer:         "alice",
				Payee:         "bob",
				Asset:         "USDC",
				Amount:        5000,
				Frequency:     -60,
				TotalPayments: 1,
			},
			expectedError: "frequency must not be negative",
		},
		{
			name: "duplicate_error",
			input: &model.Bill{
				Payer:          "alice",
				Payee:          "bob",
				Asset:          "USDC",
				Amount:         5000,
				TotalPayments:  1,
				IdempotencyKey: "duplicate-key",
			},
			mockError:     &pgconn.PgError{Code: pgerrcode.UniqueViolation},
			expectStore:   true,
			expectedError: "bill is duplicated",
		},
		{
			name: "general_error",
			input: &model.Bill{
				Payer:          "alice",
				Payee:          "bob",
				Asset:          "USDC",
				Amount:         5000,
				TotalPayments:  1,
				IdempotencyKey: "test-key",
			},
			mockError:     assert.AnError,
			expectStore:   true,
			expectedError: "failed to create bill",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.expectStore {
				mockQuerier.EXPECT().
					CreateBill(gomock.Any(), gomock.Any()).
					Return(tc.mockReturn, tc.mockError)
			}

			result, err := business.CreateBill(context.Background(), tc.input)

			if tc.expectSuccess {
				assert.NoError(t, err)
				assert.NotNil(t, result)
				assert.Equal(t, tc.mockReturn.ID, result.ID)
				assert.Equal(t, model.BillStatusActive, result.Status)
				assert.Equal(t, tc.mockReturn.IdempotencyKey, result.IdempotencyKey)
			} else {
				assert.Error(t, err)
				assert.Nil(t, result)
				assert.Contains(t, err.Error(), tc.expectedError)
			}
		})
	}
}

func TestCreateBillSetsSchedule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := store_querier.NewMockQuerier(ctrl)
	business := &business{queries: mockQuerier}

	var captured store.CreateBillParams
	mockQuerier.EXPECT().
		CreateBill(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg store.CreateBillParams) (store.Bill, error) {
			captured = arg
			return store.Bill{ID: 7, Status: "active"}, nil
		})

	_, err := business.CreateBill(context.Background(), &model.Bill{
		Payer:          "alice",
		Payee:          "bob",
		Asset:          "USDC",
		Amount:         100,
		TotalPayments:  3,
		IdempotencyKey: "key-7",
	})

	assert.NoError(t, err)
	assert.Equal(t, "active", captured.Status)
	assert.Equal(t, "bill-key-7", captured.WorkflowID.String)
	// the first payment is due immediately
	assert.False(t, captured.NextPaymentAt.Time.IsZero())
	assert.True(t, captured.NextPaymentAt.Valid)
}
