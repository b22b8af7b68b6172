package model

import (
	"time"
)

type Payment struct {
	ID                   int64         `json:"id"`
	BillID               int64         `json:"bill_id"`
	Payer                string        `json:"payer"`
	Payee                string        `json:"payee"`
	Asset                string        `json:"asset"`
	Amount               int64         `json:"amount"`
	Status               PaymentStatus `json:"status"`
	ExecutedAt           time.Time     `json:"executed_at"`
	ConfirmationDeadline time.Time     `json:"confirmation_deadline"`
	ProofHash            *string       `json:"proof_hash,omitempty"`
	ReferenceID          string        `json:"reference_id"`
	CreatedAt            time.Time     `json:"created_at"`
	UpdatedAt            time.Time     `json:"updated_at"`
}

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusEscrowed  PaymentStatus = "escrowed"
	PaymentStatusConfirmed PaymentStatus = "confirmed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// paymentTransitions: pending -> escrowed -> {confirmed | refunded}.
// Confirmed, refunded and failed are terminal.
var paymentTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentStatusPending:   {PaymentStatusEscrowed, PaymentStatusFailed},
	PaymentStatusEscrowed:  {PaymentStatusConfirmed, PaymentStatusRefunded, PaymentStatusFailed},
	PaymentStatusConfirmed: {},
	PaymentStatusFailed:    {},
	PaymentStatusRefunded:  {},
}

func (s PaymentStatus) CanTransitionTo(target PaymentStatus) bool {
	for _, allowed := range paymentTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

func (s PaymentStatus) Terminal() bool {
	return len(paymentTransitions[s]) == 0
}
