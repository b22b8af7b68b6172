package reward

import (
	"encore.app/billing/model"
)

// TierFor maps a confirmed payment count to a reward tier. The count alone
// decides the tier; total value is carried on the record for display only.
func TierFor(paymentsCompleted int64) model.RewardTier {
	switch {
	case paymentsCompleted >= 50:
		return model.RewardTierDiamond
	case paymentsCompleted >= 20:
		return model.RewardTierPlatinum
	case paymentsCompleted >= 10:
		return model.RewardTierGold
	case paymentsCompleted >= 5:
		return model.RewardTierSilver
	default:
		return model.RewardTierBronze
	}
}

func achievementFor(tier model.RewardTier) string {
	switch tier {
	case model.RewardTierDiamond:
		return "Diamond Payer"
	case model.RewardTierPlatinum:
		return "Platinum Payer"
	case model.RewardTierGold:
		return "Gold Payer"
	case model.RewardTierSilver:
		return "Silver Payer"
	default:
		return "Bronze Payer"
	}
}
