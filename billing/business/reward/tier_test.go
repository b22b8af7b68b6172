package reward

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"encore.app/billing/model"
)

func TestTierFor(t *testing.T) {
	testCases := []struct {
		payments int64
		expected model.RewardTier
	}{
		{0, model.RewardTierBronze},
		{1, model.RewardTierBronze},
		{4, model.RewardTierBronze},
		{5, model.RewardTierSilver},
		{9, model.RewardTierSilver},
		{10, model.RewardTierGold},
		{19, model.RewardTierGold},
		{20, model.RewardTierPlatinum},
		{49, model.RewardTierPlatinum},
		{50, model.RewardTierDiamond},
		{1000, model.RewardTierDiamond},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, TierFor(tc.payments), "payments=%d", tc.payments)
	}
}

func TestTierRankOrdering(t *testing.T) {
	tiers := []model.RewardTier{
		model.RewardTierBronze,
		model.RewardTierSilver,
		model.RewardTierGold,
		model.RewardTierPlatinum,
		model.RewardTierDiamond,
	}
	for i := 1; i < len(tiers); i++ {
		assert.Greater(t, tiers[i].Rank(), tiers[i-1].Rank())
	}
}
