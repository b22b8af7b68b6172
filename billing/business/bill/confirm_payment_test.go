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

func escrowedPayment() store.Payment {
	return store.Payment{
		ID:                   10,
		BillID:               1,
		Payer:                "alice",
		Payee:                "bob",
		Asset:                "USDC",
		Amount:               5000,
		Status:               "escrowed",
		ConfirmationDeadline: pgtype.Timestamptz{Time: time.Now().Add(24 * time.Hour), Valid: true},
		ReferenceID:          "ref-10",
	}
}

func TestConfirmPayment(t *testing.T) {
	testCases := []struct {
		name          string
		actor         string
		proofHash     string
		current       store.Payment
		expectRelease bool
		expectedError string
	}{
		{
			name:          "happy_case",
			actor:         "bob",
			proofHash:     "0xabc",
			current:       escrowedPayment(),
			expectRelease: true,
		},
		{
			name:          "payer_cannot_confirm",
			actor:         "alice",
			current:       escrowedPayment(),
			expectedError: "only the payee can confirm a payment",
		},
		{
			name:  "already_confirmed",
			actor: "bob",
			current: func() store.Payment {
				p := escrowedPayment()
				p.Status = "confirmed"
				return p
			}(),
			expectedError: "payment is not in escrow",
		},
		{
			name:  "already_refunded",
			actor: "bob",
			current: func() store.Payment {
				p := escrowedPayment()
				p.Status = "refunded"
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

			if tc.expectRelease {
				mockLedger.EXPECT().
					Release(gomock.Any(), mockQuerier, "alice", "bob", "USDC", int64(5000), "bill payment release", "ref-10").
					Return(nil)

				mockQuerier.EXPECT().
					UpdatePaymentStatus(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, arg store.UpdatePaymentStatusParams) (store.Payment, error) {
						assert.Equal(t, "confirmed", arg.Status)
						assert.Equal(t, tc.proofHash, arg.ProofHash.String)
						return store.Payment{}, nil
					})
			}

			err := business.ConfirmPayment(context.Background(), tc.current.ID, tc.actor, tc.proofHash)

			if tc.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
