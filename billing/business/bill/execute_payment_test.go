package bill

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
	"encore.app/billing/model"
	"encore.app/billing/store"
)

func dueBill(payer string) store.Bill {
	return store.Bill{
		ID:                1,
		Payer:             payer,
		Payee:             "bob",
		Asset:             "USDC",
		Amount:            5000,
		FrequencySeconds:  2592000,
		NextPaymentAt:     pgtype.Timestamptz{Time: time.Now().Add(-time.Minute), Valid: true},
		TotalPayments:     12,
		CompletedPayments: 3,
		Streak:            3,
		TotalPaid:         15000,
		Status:            "active",
	}
}

func TestExecutePayment(t *testing.T) {
	testCases := []struct {
		name          string
		actor         string
		current       store.Bill
		holdError     error
		expectHold    bool
		expectedError string
	}{
		{
			name:       "happy_case",
			actor:      "alice",
			current:    dueBill("alice"),
			expectHold: true,
		},
		{
			name:          "wrong_actor",
			actor:         "mallory",
			current:       dueBill("alice"),
			expectedError: "only the bill payer can execute a payment",
		},
		{
			name:  "paused_bill",
			actor: "alice",
			current: func() store.Bill {
				b := dueBill("alice")
				b.Status = "paused"
				return b
			}(),
			expectedError: "bill is not active",
		},
		{
			name:  "not_due_yet",
			actor: "alice",
			current: func() store.Bill {
				b := dueBill("alice")
				b.NextPaymentAt = pgtype.Timestamptz{Time: time.Now().Add(time.Hour), Valid: true}
				return b
			}(),
			expectedError: "bill is not due yet",
		},
		{
			name:          "insufficient_balance",
			actor:         "alice",
			current:       dueBill("alice"),
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
			mockBills := state_machine.NewMockBillStateMachine(ctrl)

			business := &business{
				queries: mockQuerier,
				bills:   mockBills,
				ledger:  mockLedger,
			}

			mockBills.EXPECT().
				ExecuteWithLock(gomock.Any(), tc.current.ID, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ int64, fn func(store.Querier, store.Bill) error) error {
					return fn(mockQuerier, tc.current)
				})

			if tc.expectHold {
				mockLedger.EXPECT().
					Hold(gomock.Any(), mockQuerier, tc.current.Payer, tc.current.Asset, tc.current.Amount, "bill payment escrow", gomock.Any()).
					Return(tc.holdError)
			}

			if tc.expectHold && tc.holdError == nil {
				mockQuerier.EXPECT().
					CreatePayment(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, arg store.CreatePaymentParams) (store.Payment, error) {
						assert.Equal(t, tc.current.ID, arg.BillID)
						assert.Equal(t, string(model.PaymentStatusEscrowed), arg.Status)
						assert.NotEmpty(t, arg.ReferenceID)
						assert.Equal(t, arg.ExecutedAt.Time.Add(ConfirmationWindow), arg.ConfirmationDeadline.Time)
						return store.Payment{ID: 10, BillID: arg.BillID, Status: arg.Status, Amount: arg.Amount}, nil
					})

				mockQuerier.EXPECT().
					UpdateBillSchedule(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, arg store.UpdateBillScheduleParams) (store.Bill, error) {
						assert.Equal(t, tc.current.CompletedPayments+1, arg.CompletedPayments)
						assert.Equal(t, "active", arg.Status)
						assert.Equal(t, tc.current.Streak+1, arg.Streak)
						assert.Equal(t, tc.current.TotalPaid+tc.current.Amount, arg.TotalPaid)
						assert.True(t, arg.NextPaymentAt.Time.After(tc.current.NextPaymentAt.Time))
						return store.Bill{}, nil
					})
			}

			payment, err := business.ExecutePayment(context.Background(), tc.current.ID, tc.actor)

			if tc.expectedError != "" {
				assert.Error(t, err)
				assert.Nil(t, payment)
				assert.Contains(t, err.Error(), tc.expectedError)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, payment)
				assert.Equal(t, model.PaymentStatusEscrowed, payment.Status)
			}
		})
	}
}

func TestExecutePaymentCompletesBill(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := store_querier.NewMockQuerier(ctrl)
	mockLedger := ledger_business.NewMockBusiness(ctrl)
	mockBills := state_machine.NewMockBillStateMachine(ctrl)

	business := &business{
		queries: mockQuerier,
		bills:   mockBills,
		ledger:  mockLedger,
	}

	current := dueBill("alice")
	current.TotalPayments = 4
	current.CompletedPayments = 3

	mockBills.EXPECT().
		ExecuteWithLock(gomock.Any(), current.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, fn func(store.Querier, store.Bill) error) error {
			return fn(mockQuerier, current)
		})

	mockLedger.EXPECT().
		Hold(gomock.Any(), mockQuerier, "alice", "USDC", int64(5000), "bill payment escrow", gomock.Any()).
		Return(nil)

	mockQuerier.EXPECT().
		CreatePayment(gomock.Any(), gomock.Any()).
		Return(store.Payment{ID: 11, Status: "escrowed"}, nil)

	mockQuerier.EXPECT().
		UpdateBillSchedule(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg store.UpdateBillScheduleParams) (store.Bill, error) {
			// the final installment completes the bill
			assert.Equal(t, "completed", arg.Status)
			assert.Equal(t, int32(4), arg.CompletedPayments)
			return store.Bill{}, nil
		})

	payment, err := business.ExecutePayment(context.Background(), current.ID, "alice")
	assert.NoError(t, err)
	assert.NotNil(t, payment)
}
