package reward

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"encore.app/billing/mocks/store/store_querier"
	"encore.app/billing/model"
	"encore.app/billing/store"
)

type txRunnerStub struct {
	q store.Querier
}

func (s *txRunnerStub) RunInTx(ctx context.Context, fn func(q store.Querier) error) error {
	return fn(s.q)
}

func TestMintOrUpgrade(t *testing.T) {
	testCases := []struct {
		name         string
		stats        store.GetConfirmedPaymentStatsRow
		current      store.RewardRecord
		currentErr   error
		expectMint   bool
		expectedTier string
	}{
		{
			name:         "first_payment_mints_bronze",
			stats:        store.GetConfirmedPaymentStatsRow{PaymentsCompleted: 1, TotalValue: 5000},
			currentErr:   pgx.ErrNoRows,
			expectMint:   true,
			expectedTier: "bronze",
		},
		{
			name:         "fifth_payment_upgrades_to_silver",
			stats:        store.GetConfirmedPaymentStatsRow{PaymentsCompleted: 5, TotalValue: 25000},
			current:      store.RewardRecord{ID: 3, Recipient: "alice", Tier: "bronze", PaymentsCompleted: 4},
			expectedTier: "silver",
		},
		{
			name:         "refresh_never_downgrades",
			stats:        store.GetConfirmedPaymentStatsRow{PaymentsCompleted: 3, TotalValue: 15000},
			current:      store.RewardRecord{ID: 3, Recipient: "alice", Tier: "gold", PaymentsCompleted: 12},
			expectedTier: "gold",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQuerier := store_querier.NewMockQuerier(ctrl)
			business := NewRewardBusiness(mockQuerier, &txRunnerStub{q: mockQuerier})

			mockQuerier.EXPECT().
				GetConfirmedPaymentStats(gomock.Any(), "alice").
				Return(tc.stats, nil)
			mockQuerier.EXPECT().
				GetLatestRewardByRecipientForUpdate(gomock.Any(), "alice").
				Return(tc.current, tc.currentErr)

			if tc.expectMint {
				mockQuerier.EXPECT().
					CreateRewardRecord(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, arg store.CreateRewardRecordParams) (store.RewardRecord, error) {
						assert.Equal(t, "alice", arg.Recipient)
						assert.Equal(t, tc.expectedTier, arg.Tier)
						assert.Equal(t, tc.stats.PaymentsCompleted, arg.PaymentsCompleted)
						assert.Equal(t, tc.stats.TotalValue, arg.TotalValue)
						assert.NotEmpty(t, arg.Achievement)
						return store.RewardRecord{ID: 1, Recipient: arg.Recipient, Tier: arg.Tier, PaymentsCompleted: arg.PaymentsCompleted, TotalValue: arg.TotalValue, Achievement: arg.Achievement}, nil
					})
			} else {
				mockQuerier.EXPECT().
					UpdateRewardRecord(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, arg store.UpdateRewardRecordParams) (store.RewardRecord, error) {
						assert.Equal(t, tc.current.ID, arg.ID)
						assert.Equal(t, tc.expectedTier, arg.Tier)
						assert.Equal(t, tc.stats.PaymentsCompleted, arg.PaymentsCompleted)
						return store.RewardRecord{ID: arg.ID, Recipient: "alice", Tier: arg.Tier, PaymentsCompleted: arg.PaymentsCompleted, TotalValue: arg.TotalValue, Achievement: arg.Achievement}, nil
					})
			}

			record, err := business.MintOrUpgrade(context.Background(), "alice")
			assert.NoError(t, err)
			assert.NotNil(t, record)
			assert.Equal(t, model.RewardTier(tc.expectedTier), record.Tier)
		})
	}
}

func TestMintOrUpgradeRequiresConfirmedPayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := store_querier.NewMockQuerier(ctrl)
	business := NewRewardBusiness(mockQuerier, &txRunnerStub{q: mockQuerier})

	mockQuerier.EXPECT().
		GetConfirmedPaymentStats(gomock.Any(), "alice").
		Return(store.GetConfirmedPaymentStatsRow{}, nil)

	record, err := business.MintOrUpgrade(context.Background(), "alice")
	assert.Error(t, err)
	assert.Nil(t, record)
	assert.Contains(t, err.Error(), "no confirmed payments yet")
}
