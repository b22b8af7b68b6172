package model

import (
	"time"
)

type Pool struct {
	ID              int64      `json:"id"`
	Creator         string     `json:"creator"`
	Payee           string     `json:"payee"`
	Asset           string     `json:"asset"`
	TotalAmount     int64      `json:"total_amount"`
	CollectedAmount int64      `json:"collected_amount"`
	MinContribution int64      `json:"min_contribution"`
	MaxContribution int64      `json:"max_contribution"`
	MaxParticipants int32      `json:"max_participants"`
	Deadline        time.Time  `json:"deadline"`
	Status          PoolStatus `json:"status"`
	SplitType       SplitType  `json:"split_type"`
	Description     *string    `json:"description,omitempty"`
	Category        *string    `json:"category,omitempty"`
	AllowPublicJoin bool       `json:"allow_public_join"`
	IdempotencyKey  string     `json:"idempotency_key"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`

	Contributions []Contribution `json:"contributions,omitempty"`
}

type PoolStatus string

const (
	PoolStatusActive    PoolStatus = "active"
	PoolStatusCompleted PoolStatus = "completed"
	PoolStatusCancelled PoolStatus = "cancelled"
)

type SplitType string

const (
	SplitTypeEqual  SplitType = "equal"
	SplitTypeCustom SplitType = "custom"
)

var poolTransitions = map[PoolStatus][]PoolStatus{
	PoolStatusActive:    {PoolStatusCompleted, PoolStatusCancelled},
	PoolStatusCompleted: {},
	PoolStatusCancelled: {},
}

func (s PoolStatus) CanTransitionTo(target PoolStatus) bool {
	for _, allowed := range poolTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

func (s PoolStatus) Terminal() bool {
	return len(poolTransitions[s]) == 0
}

// FullyFunded reports whether the pool has reached its target.
func (p *Pool) FullyFunded() bool {
	return p.CollectedAmount == p.TotalAmount
}

type Contribution struct {
	ID          int64     `json:"id"`
	PoolID      int64     `json:"pool_id"`
	Contributor string    `json:"contributor"`
	Amount      int64     `json:"amount"`
	Claimed     bool      `json:"claimed"`
	CreatedAt   time.Time `json:"created_at"`
}
