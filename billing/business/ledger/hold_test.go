package ledger

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"encore.app/billing/mocks/store/store_querier"
	"encore.app/billing/store"
)

func fundedAccount(address string, balance, escrowed int64) store.Account {
	return store.Account{
		Address:  address,
		Asset:    "USDC",
		Balance:  balance,
		Escrowed: escrowed,
	}
}

func TestHold(t *testing.T) {
	testCases := []struct {
		name          string
		account       store.Account
		amount        int64
		expectedError string
	}{
		{
			name:    "happy_case",
			account: fundedAccount("alice", 10000, 2000),
			amount:  5000,
		},
		{
			name:          "zero_amount",
			account:       fundedAccount("alice", 10000, 0),
			amount:        0,
			expectedError: "amount must be greater than 0",
		},
		{
			name:          "escrow_counts_against_available",
			account:       fundedAccount("alice", 10000, 6000),
			amount:        5000,
			expectedError: "insufficient balance",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQuerier := store_querier.NewMockQuerier(ctrl)
			business := &business{queries: mockQuerier}

			if tc.amount > 0 {
				mockQuerier.EXPECT().
					GetAccountForUpdate(gomock.Any(), store.GetAccountForUpdateParams{
						Address: tc.account.Address,
						Asset:   tc.account.Asset,
					}).
					Return(tc.account, nil)
			}

			if tc.expectedError == "" {
				mockQuerier.EXPECT().
					UpdateAccountBalances(gomock.Any(), store.UpdateAccountBalancesParams{
						Address:  tc.account.Address,
						Asset:    tc.account.Asset,
						Balance:  tc.account.Balance,
						Escrowed: tc.account.Escrowed + tc.amount,
					}).
					Return(store.Account{}, nil)
				mockQuerier.EXPECT().
					CreateLedgerEntry(gomock.Any(), store.CreateLedgerEntryParams{
						ReferenceID: "ref-1",
						Address:     tc.account.Address,
						Asset:       tc.account.Asset,
						Delta:       -tc.amount,
						Reason:      "bill payment escrow",
					}).
					Return(store.LedgerEntry{}, nil)
			}

			err := business.Hold(context.Background(), mockQuerier, tc.account.Address, tc.account.Asset, tc.amount, "bill payment escrow", "ref-1")

			if tc.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestHoldCreatesAccountOnFirstTouch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := store_querier.NewMockQuerier(ctrl)
	business := &business{queries: mockQuerier}

	mockQuerier.EXPECT().
		GetAccountForUpdate(gomock.Any(), gomock.Any()).
		Return(store.Account{}, pgx.ErrNoRows)
	mockQuerier.EXPECT().
		CreateAccount(gomock.Any(), store.CreateAccountParams{Address: "alice", Asset: "USDC"}).
		Return(fundedAccount("alice", 0, 0), nil)

	err := business.Hold(context.Background(), mockQuerier, "alice", "USDC", 100, "bill payment escrow", "ref-1")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "insufficient balance")
}

func TestRefundHold(t *testing.T) {
	testCases := []struct {
		name          string
		account       store.Account
		amount        int64
		expectedError string
	}{
		{
			name:    "happy_case",
			account: fundedAccount("alice", 10000, 5000),
			amount:  5000,
		},
		{
			name:          "exceeds_escrow",
			account:       fundedAccount("alice", 10000, 2000),
			amount:        5000,
			expectedError: "refund exceeds escrowed funds",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQuerier := store_querier.NewMockQuerier(ctrl)
			business := &business{queries: mockQuerier}

			mockQuerier.EXPECT().
				GetAccountForUpdate(gomock.Any(), gomock.Any()).
				Return(tc.account, nil)

			if tc.expectedError == "" {
				mockQuerier.EXPECT().
					UpdateAccountBalances(gomock.Any(), store.UpdateAccountBalancesParams{
						Address:  tc.account.Address,
						Asset:    tc.account.Asset,
						Balance:  tc.account.Balance,
						Escrowed: tc.account.Escrowed - tc.amount,
					}).
					Return(store.Account{}, nil)
				mockQuerier.EXPECT().
					CreateLedgerEntry(gomock.Any(), store.CreateLedgerEntryParams{
						ReferenceID: "ref-2",
						Address:     tc.account.Address,
						Asset:       tc.account.Asset,
						Delta:       tc.amount,
						Reason:      "bill escrow refund",
					}).
					Return(store.LedgerEntry{}, nil)
			}

			err := business.RefundHold(context.Background(), mockQuerier, tc.account.Address, tc.account.Asset, tc.amount, "bill escrow refund", "ref-2")

			if tc.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
