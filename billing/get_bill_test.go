package billing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.temporal.io/sdk/mocks"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"encore.app/billing/mocks/business/bill_business"
	"encore.app/billing/model"
)

func TestGetBill(t *testing.T) {
	testCases := []struct {
		name          string
		billID        int64
		mockReturn    *model.Bill
		mockError     error
		expectCall    bool
		expectedError string
	}{
		{
			name:   "successful_bill_retrieval",
			billID: 1,
			mockReturn: &model.Bill{
				ID:             1,
				Payer:          "alice",
				Payee:          "acme-power",
				Asset:          "USDC",
				Amount:         5000,
				Status:         model.BillStatusActive,
				IdempotencyKey: "test-key-123",
			},
			expectCall: true,
		},
		{
			name:          "invalid_bill_id_zero",
			billID:        0,
			expectedError: "invalid bill ID",
		},
		{
			name:          "invalid_bill_id_negative",
			billID:        -5,
			expectedError: "invalid bill ID",
		},
		{
			name:          "bill_not_found",
			billID:        999,
			mockError:     &errs.Error{Code: errs.NotFound, Message: "bill not found"},
			expectCall:    true,
			expectedError: "bill not found",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockBusiness := bill_business.NewMockBusiness(ctrl)
			mockTemporal := mocks.NewClient(t)

			service := &Service{
				bills:    mockBusiness,
				temporal: mockTemporal,
			}

			if tc.expectCall {
				mockBusiness.EXPECT().
					GetBill(gomock.Any(), tc.billID).
					Return(tc.mockReturn, tc.mockError).
					Times(1)
			}

			response, err := service.GetBill(context.Background(), tc.billID)

			if tc.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				assert.Nil(t, response)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, response)
				assert.Equal(t, tc.mockReturn.ID, response.Bill.ID)
				assert.Equal(t, tc.mockReturn.Status, response.Bill.Status)
			}
		})
	}
}
