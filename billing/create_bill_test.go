package billing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.temporal.io/sdk/mocks"
	"go.uber.org/mock/gomock"

	"encore.app/billing/mocks/business/bill_business"
	"encore.app/billing/model"
)

// Run tests using `encore test`, which compiles the Encore app and then runs `go test`.
// It supports all the same flags that the `go test` command does.

func TestCreateBill(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBusiness := bill_business.NewMockBusiness(ctrl)
	mockTemporal := mocks.NewClient(t)

	service := &Service{
		bills:    mockBusiness,
		temporal: mockTemporal,
	}

	testCases := []struct {
		name               string
		request            *CreateBillRequest
		mockBusinessReturn *model.Bill
		mockBusinessError  error
		mockTemporalError  error
		expectedError      string
		expectWorkflow     bool
	}{
		{
			name: "successful_bill_creation_with_workflow",
			request: &CreateBillRequest{
				IdempotencyKey:   "test-key-123",
				Payer:            "alice",
				Payee:            "acme-power",
				Asset:            "USDC",
				Amount:           5000,
				FrequencySeconds: 2592000,
				TotalPayments:    12,
			},
			mockBusinessReturn: &model.Bill{
				ID:             1,
				Payer:          "alice",
				Payee:          "acme-power",
				Asset:          "USDC",
				Amount:         5000,
				TotalPayments:  12,
				Status:         model.BillStatusActive,
				IdempotencyKey: "test-key-123",
			},
			expectWorkflow: true,
		},
		{
			name: "workflow_start_failure_does_not_fail_request",
			request: &CreateBillRequest{
				IdempotencyKey: "test-key-456",
				Payer:          "alice",
				Payee:          "acme-power",
				Amount:         5000,
				TotalPayments:  1,
			},
			mockBusinessReturn: &model.Bill{
				ID:             2,
				Payer:          "alice",
				Payee:          "acme-power",
				Asset:          "USDC",
				Amount:         5000,
				TotalPayments:  1,
				Status:         model.BillStatusActive,
				IdempotencyKey: "test-key-456",
			},
			mockTemporalError: errors.New("temporal unavailable"),
			expectWorkflow:    true,
		},
		{
			name: "bill_creation_fails",
			request: &CreateBillRequest{
				IdempotencyKey: "test-key-789",
				Payer:          "alice",
				Payee:          "acme-power",
				Amount:         5000,
				TotalPayments:  12,
			},
			mockBusinessError: errors.New("database error"),
			expectedError:     "database error",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockBusiness.EXPECT().
				CreateBill(gomock.Any(), gomock.Any()).
				Return(tc.mockBusinessReturn, tc.mockBusinessError).
				Times(1)

			if tc.expectWorkflow {
				mockTemporal.On("ExecuteWorkflow",
					mock.Anything,
					mock.Anything,
					mock.Anything,
					mock.Anything,
				).Return(nil, tc.mockTemporalError).Once()
			}

			response, err := service.CreateBill(context.Background(), tc.request)

			if tc.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				assert.Nil(t, response)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, response)
				assert.Equal(t, tc.mockBusinessReturn.ID, response.Bill.ID)
				assert.Equal(t, tc.mockBusinessReturn.Status, response.Bill.Status)
				assert.Equal(t, tc.mockBusinessReturn.IdempotencyKey, response.Bill.IdempotencyKey)
			}
		})
	}
}

func TestCreateBillDefaultsAsset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBusiness := bill_business.NewMockBusiness(ctrl)
	mockTemporal := mocks.NewClient(t)

	service := &Service{
		bills:    mockBusiness,
		temporal: mockTemporal,
	}

	mockBusiness.EXPECT().
		CreateBill(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, bill *model.Bill) (*model.Bill, error) {
			assert.Equal(t, model.DefaultAsset, bill.Asset)
			return bill, nil
		})
	mockTemporal.On("ExecuteWorkflow", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, nil).Once()

	_, err := service.CreateBill(context.Background(), &CreateBillRequest{
		IdempotencyKey: "test-key-asset",
		Payer:          "alice",
		Payee:          "acme-power",
		Amount:         100,
		TotalPayments:  1,
	})
	assert.NoError(t, err)
}

// TestCreateBillRequest_Validation tests the validation logic
func TestCreateBillRequest_Validation(t *testing.T) {
	testCases := []struct {
		name          string
		request       *CreateBillRequest
		expectedError string
	}{
		{
			name: "valid_request",
			request: &CreateBillRequest{
				Payer:         "alice",
				Payee:         "acme-power",
				Amount:        5000,
				TotalPayments: 12,
			},
		},
		{
			name: "missing_payer",
			request: &CreateBillRequest{
				Payee:         "acme-power",
				Amount:        5000,
				TotalPayments: 12,
			},
			expectedError: "required",
		},
		{
			name: "zero_amount",
			request: &CreateBillRequest{
				Payer:         "alice",
				Payee:         "acme-power",
				Amount:        0,
				TotalPayments: 12,
			},
			expectedError: "required",
		},
		{
			name: "zero_total_payments",
			request: &CreateBillRequest{
				Payer:         "alice",
				Payee:         "acme-power",
				Amount:        5000,
				TotalPayments: 0,
			},
			expectedError: "required",
		},
		{
			name: "lowercase_asset",
			request: &CreateBillRequest{
				Payer:         "alice",
				Payee:         "acme-power",
				Asset:         "usdc",
				Amount:        5000,
				TotalPayments: 12,
			},
			expectedError: "uppercase",
		},
		{
			name: "self_payment",
			request: &CreateBillRequest{
				Payer:         "alice",
				Payee:         "alice",
				Amount:        5000,
				TotalPayments: 12,
			},
			expectedError: "payer and payee must differ",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.request.Validate()

			if tc.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
