package ledger

import (
	"time"

	"github.com/meridian-erp/meridian-erp/internal/accounting/accounts"
	"github.com/meridian-erp/meridian-erp/internal/accounting/journals"
)

// Row is a journal entry annotated with the running balance after the entry
// has been applied.
type Row struct {
	journals.JournalEntry
	Balance float64 `json:"balance"`
}

// Ledger is the chronological transaction listing for one account over a
// date range. OpeningBalance reflects all activity strictly before StartDate;
// TotalDebit and TotalCredit cover only the selected window.
type Ledger struct {
	Account        accounts.Account `json:"account"`
	StartDate      *time.Time       `json:"start_date,omitempty"`
	EndDate        *time.Time       `json:"end_date,omitempty"`
	OpeningBalance float64          `json:"opening_balance"`
	Entries        []Row            `json:"entries"`
	ClosingBalance float64          `json:"closing_balance"`
	TotalDebit     float64          `json:"total_debit"`
	TotalCredit    float64          `json:"total_credit"`
}
