package reports

import (
	"math"
	"time"

	"github.com/meridian-erp/meridian-erp/internal/accounting/accounts"
	"github.com/meridian-erp/meridian-erp/internal/accounting/balance"
)

// balanceEpsilon tolerates floating point noise when reconciling totals and
// when suppressing zero balances from presentation.
const balanceEpsilon = 0.01

// TrialBalanceRow re-expresses one signed balance as a non-negative
// debit/credit pair. A negative balance on a debit-normal account shows up in
// the credit column, and vice versa; this is the display convention and is
// distinct from the raw posted sums.
type TrialBalanceRow struct {
	AccountID   int64                `json:"account_id"`
	AccountCode string               `json:"account_code"`
	AccountName string               `json:"account_name"`
	AccountType accounts.AccountType `json:"account_type"`
	Debit       float64              `json:"debit"`
	Credit      float64              `json:"credit"`
}

// TrialBalance is the full-ledger snapshot with a balanced verdict.
type TrialBalance struct {
	AsOfDate    *time.Time        `json:"as_of_date,omitempty"`
	Rows        []TrialBalanceRow `json:"rows"`
	TotalDebit  float64           `json:"total_debit"`
	TotalCredit float64           `json:"total_credit"`
	IsBalanced  bool              `json:"is_balanced"`
	Difference  float64           `json:"difference"`
}

// TypeTotals aggregates trial balance rows for one account type.
type TypeTotals struct {
	Debit   float64 `json:"debit"`
	Credit  float64 `json:"credit"`
	Balance float64 `json:"balance"`
}

// BuildTrialBalance converts computed balances into the presentation layout.
// Balances arrive ordered by account code and the ordering is preserved.
func BuildTrialBalance(asOf *time.Time, balances []balance.Balance) TrialBalance {
	tb := TrialBalance{AsOfDate: asOf, Rows: make([]TrialBalanceRow, 0, len(balances))}
	for _, b := range balances {
		row := TrialBalanceRow{
			AccountID:   b.AccountID,
			AccountCode: b.AccountCode,
			AccountName: b.AccountName,
			AccountType: b.AccountType,
		}
		row.Debit, row.Credit = presentationPair(b)
		tb.Rows = append(tb.Rows, row)
		tb.TotalDebit += row.Debit
		tb.TotalCredit += row.Credit
	}
	tb.Difference = math.Abs(tb.TotalDebit - tb.TotalCredit)
	tb.IsBalanced = tb.Difference < balanceEpsilon
	return tb
}

// BuildTrialBalanceByType regroups balances by account type, summing the
// presentation pair and the signed balance per group.
func BuildTrialBalanceByType(balances []balance.Balance) map[accounts.AccountType]TypeTotals {
	groups := make(map[accounts.AccountType]TypeTotals)
	for _, b := range balances {
		totals := groups[b.AccountType]
		debit, credit := presentationPair(b)
		totals.Debit += debit
		totals.Credit += credit
		totals.Balance += b.Balance
		groups[b.AccountType] = totals
	}
	return groups
}

func presentationPair(b balance.Balance) (debit, credit float64) {
	amount := b.Balance
	normalDebit := b.AccountType.DebitNormal()
	if amount < 0 {
		amount = -amount
		normalDebit = !normalDebit
	}
	if normalDebit {
		return amount, 0
	}
	return 0, amount
}
