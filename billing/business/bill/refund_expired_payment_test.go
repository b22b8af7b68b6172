package bill

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

func TestRefundExpiredPayment(t *testing.T) {
	testCases := []struct {
		name          string
		current       store.Payment
		expectRefund  bool
		expectedError string
	}{
		{
			name: "happy_case",
			current: func() store.Payment {
				p := escrowedPayment()
				p.ConfirmationDeadline = pgtype.Timestamptz{Time: time.Now().Add(-time.Hour), Valid: true}
				return p
			}(),
			expectRefund: true,
		},
		{
			name:          "deadline_not_passed",
			current:       escrowedPayment(),
			expectedError: "confirmation deadline has not passed",
		},
		{
			name: "already_confirmed",
			current: func() store.Payment {
				p := escrowedPayment()
				p.Status = "confirmed"
				return p
			}(),
			expectedError: "payment is not in escrow",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQuerier := store_querier.NewMockQuerier(ctrl)
			mockLedger := ledger_business.NewMockBusiness(ctrl)
			mockPayments := state_machine.NewMockPaymentStateMachine(ctrl)

			business := &business{
				queries:  mockQuerier,
				payments: mockPayments,
				ledger:   mockLedger,
			}

			mockPayments.EXPECT().
				ExecuteWithLock(gomock.Any(), tc.current.ID, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ int64, fn func(store.Querier, store.Payment) error) error {
					return fn(mockQuerier, tc.current)
				})

			if tc.expectRefund {
				mockLedger.EXPECT().
					RefundHold(gomock.Any(), mockQuerier, "alice", "USDC", int64(5000), "bill escrow refund", "ref-10").
					Return(nil)

				mockQuerier.EXPECT().
					UpdatePaymentStatus(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, arg store.UpdatePaymentStatusParams) (store.Payment, error) {
						assert.Equal(t, "refunded", arg.Status)
						return store.Payment{}, nil
					})
			}

			err := business.RefundExpiredPayment(context.Background(), tc.current.ID)

			if tc.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRefundExpiredEscrowsSkipsRacedConfirmation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := store_querier.NewMockQuerier(ctrl)
	mockLedger := ledger_business.NewMockBusiness(ctrl)
	mockPayments := state_machine.NewMockPaymentStateMachine(ctrl)

	business := &business{
		queries:  mockQuerier,
		payments: mockPayments,
		ledger:   mockLedger,
	}

	lapsed := escrowedPayment()
	lapsed.ConfirmationDeadline = pgtype.Timestamptz{Time: time.Now().Add(-time.Hour), Valid: true}

	raced := lapsed
	raced.ID = 11
	// confirmed between the listing and the lock
	racedCurrent := raced
	racedCurrent.Status = "confirmed"

	mockQuerier.EXPECT().
		ListExpiredEscrowedPayments(gomock.Any(), gomock.Any()).
		Return([]store.Payment{lapsed, raced}, nil)

	mockPayments.EXPECT().
		ExecuteWithLock(gomock.Any(), lapsed.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, fn func(store.Querier, store.Payment) error) error {
			return fn(mockQuerier, lapsed)
		})
	mockPayments.EXPECT().
		ExecuteWithLock(gomock.Any(), raced.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, fn func(store.Querier, store.Payment) error) error {
			return fn(mockQuerier, racedCurrent)
		})

	mockLedger.EXPECT().
		RefundHold(gomock.Any(), mockQuerier, "alice", "USDC", int64(5000), "bill escrow refund", "ref-10").
		Return(nil)
	mockQuerier.EXPECT().
		UpdatePaymentStatus(gomock.Any(), gomock.Any()).
		Return(store.Payment{}, nil)

	refunded, err := business.RefundExpiredEscrows(context.Background(), time.Now(), 100)
	assert.NoError(t, err)
	assert.Equal(t, 1, refunded)
}
