package model

import (
	"time"
)

type RewardRecord struct {
	ID                int64      `json:"id"`
	Recipient         string     `json:"recipient"`
	Tier              RewardTier `json:"tier"`
	PaymentsCompleted int64      `json:"payments_completed"`
	TotalValue        int64      `json:"total_value"`
	Achievement       string     `json:"achievement"`
	MintedAt          time.Time  `json:"minted_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

type RewardTier string

const (
	RewardTierBronze   RewardTier = "bronze"
	RewardTierSilver   RewardTier = "silver"
	RewardTierGold     RewardTier = "gold"
	RewardTierPlatinum RewardTier = "platinum"
	RewardTierDiamond  RewardTier = "diamond"
)

// Rank orders tiers for comparison; higher is better.
func (t RewardTier) Rank() int {
	switch t {
	case RewardTierSilver:
		return 1
	case RewardTierGold:
		return 2
	case RewardTierPlatinum:
		return 3
	case RewardTierDiamond:
		return 4
	default:
		return 0
	}
}
