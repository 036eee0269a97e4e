package journals

import (
	"time"

	"github.com/google/uuid"
)

// JournalEntry is an append-only posting fact. Entries are written once by the
// transaction-posting flows and never updated or deleted; the reporting
// engine is strictly read-only over this set.
type JournalEntry struct {
	ID              int64      `json:"id"`
	AccountID       int64      `json:"account_id"`
	TransactionDate time.Time  `json:"transaction_date"`
	Debit           float64    `json:"debit"`
	Credit          float64    `json:"credit"`
	Description     string     `json:"description"`
	ReferenceID     *uuid.UUID `json:"reference_id,omitempty"`
	ReferenceType   string     `json:"reference_type,omitempty"`
	CreatedBy       string     `json:"created_by,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// Totals carries independent debit and credit sums for one account.
type Totals struct {
	Debit  float64
	Credit float64
}

// Filter narrows entry queries. A zero AccountID with an empty AccountIDs
// list means all accounts. Date bounds are optional; From and Through are
// inclusive while Before is strict, which is what the general ledger's
// opening balance needs (state before the period begins).
type Filter struct {
	AccountID  int64
	AccountIDs []int64
	From       *time.Time
	Through    *time.Time
	Before     *time.Time
}
