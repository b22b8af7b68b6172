package model

import (
	"time"
)

type Bill struct {
	ID                int64      `json:"id"`
	Payer             string     `json:"payer"`
	Payee             string     `json:"payee"`
	Asset             string     `json:"asset"`
	Amount            int64      `json:"amount"`
	Frequency         int64      `json:"frequency_seconds"`
	NextPaymentAt     time.Time  `json:"next_payment_at"`
	TotalPayments     int32      `json:"total_payments"`
	CompletedPayments int32      `json:"completed_payments"`
	Streak            int32      `json:"streak"`
	TotalPaid         int64      `json:"total_paid"`
	Status            BillStatus `json:"status"`
	Description       *string    `json:"description,omitempty"`
	Category          *string    `json:"category,omitempty"`
	IdempotencyKey    string     `json:"idempotency_key"`
	WorkflowID        *string    `json:"workflow_id,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

type BillStatus string

const (
	BillStatusActive    BillStatus = "active"
	BillStatusPaused    BillStatus = "paused"
	BillStatusCancelled BillStatus = "cancelled"
	BillStatusCompleted BillStatus = "completed"
)

// billTransitions is the exhaustive transition table for bill statuses.
// Completed and cancelled are terminal.
var billTransitions = map[BillStatus][]BillStatus{
	BillStatusActive:    {BillStatusPaused, BillStatusCancelled, BillStatusCompleted},
	BillStatusPaused:    {BillStatusActive, BillStatusCancelled},
	BillStatusCancelled: {},
	BillStatusCompleted: {},
}

// CanTransitionTo reports whether a bill may move from s to target.
func (s BillStatus) CanTransitionTo(target BillStatus) bool {
	for _, allowed := range billTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// Terminal reports whether s admits no further transitions.
func (s BillStatus) Terminal() bool {
	return len(billTransitions[s]) == 0
}

// OneTime reports whether the bill has no recurrence.
func (b *Bill) OneTime() bool {
	return b.Frequency == 0
}
