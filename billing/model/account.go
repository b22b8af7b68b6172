package model

import (
	"time"
)

// DefaultAsset is used when a request does not name an asset.
const DefaultAsset = "USDC"

// Account tracks one user's holdings of one asset. The balance covers both
// spendable and escrowed funds: available = balance - escrowed.
type Account struct {
	Address   string    `json:"address"`
	Asset     string    `json:"asset"`
	Balance   int64     `json:"balance"`
	Escrowed  int64     `json:"escrowed"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Available is the portion of the balance not held against an open obligation.
func (a *Account) Available() int64 {
	return a.Balance - a.Escrowed
}

// LedgerEntry is an immutable audit row appended by every balance mutation.
type LedgerEntry struct {
	ID          int64     `json:"id"`
	ReferenceID string    `json:"reference_id"`
	Address     string    `json:"address"`
	Asset       string    `json:"asset"`
	Delta       int64     `json:"delta"`
	Reason      string    `json:"reason"`
	CreatedAt   time.Time `json:"created_at"`
}
