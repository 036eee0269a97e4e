package reports

import (
	"math"
	"time"

	"github.com/meridian-erp/meridian-erp/internal/accounting/accounts"
)

// AccountTotals pairs an account with its raw posted sums over a filter. The
// report builders derive the signed amount through the account type so every
// report applies the same convention.
type AccountTotals struct {
	Account accounts.Account
	Debit   float64
	Credit  float64
}

// BalanceSheetAccount is one non-zero line item.
type BalanceSheetAccount struct {
	AccountCode string  `json:"account_code"`
	AccountName string  `json:"account_name"`
	Balance     float64 `json:"balance"`
}

// BalanceSheetSection groups line items for one classification.
type BalanceSheetSection struct {
	Accounts []BalanceSheetAccount `json:"accounts"`
	Total    float64               `json:"total"`
}

// BalanceSheet partitions balances into assets, liabilities, and equity and
// checks the accounting identity.
type BalanceSheet struct {
	AsOfDate                  *time.Time          `json:"as_of_date,omitempty"`
	Assets                    BalanceSheetSection `json:"assets"`
	Liabilities               BalanceSheetSection `json:"liabilities"`
	Equity                    BalanceSheetSection `json:"equity"`
	TotalLiabilitiesAndEquity float64             `json:"total_liabilities_and_equity"`
	IsBalanced                bool                `json:"is_balanced"`
	Difference                float64             `json:"difference"`
}

// BalanceSheetSummary carries only the per-type totals. It is derived from
// the type aggregate, not from the line-item path, so near-zero accounts that
// the full report suppresses still contribute here.
type BalanceSheetSummary struct {
	TotalAssets      float64 `json:"total_assets"`
	TotalLiabilities float64 `json:"total_liabilities"`
	TotalEquity      float64 `json:"total_equity"`
	IsBalanced       bool    `json:"is_balanced"`
}

// BuildBalanceSheet aggregates per-account totals into sections. Accounts
// whose balance rounds to zero are left out of the line items; revenue and
// expense accounts never appear here regardless of balance.
func BuildBalanceSheet(asOf *time.Time, rows []AccountTotals) BalanceSheet {
	bs := BalanceSheet{
		AsOfDate:    asOf,
		Assets:      BalanceSheetSection{Accounts: []BalanceSheetAccount{}},
		Liabilities: BalanceSheetSection{Accounts: []BalanceSheetAccount{}},
		Equity:      BalanceSheetSection{Accounts: []BalanceSheetAccount{}},
	}
	for _, row := range rows {
		amount := row.Account.Type.SignedBalance(row.Debit, row.Credit)
		if math.Abs(amount) < balanceEpsilon {
			continue
		}
		item := BalanceSheetAccount{
			AccountCode: row.Account.Code,
			AccountName: row.Account.Name,
			Balance:     amount,
		}
		switch row.Account.Type {
		case accounts.AccountTypeAsset:
			bs.Assets.Accounts = append(bs.Assets.Accounts, item)
			bs.Assets.Total += amount
		case accounts.AccountTypeLiability:
			bs.Liabilities.Accounts = append(bs.Liabilities.Accounts, item)
			bs.Liabilities.Total += amount
		case accounts.AccountTypeEquity:
			bs.Equity.Accounts = append(bs.Equity.Accounts, item)
			bs.Equity.Total += amount
		}
	}
	bs.TotalLiabilitiesAndEquity = bs.Liabilities.Total + bs.Equity.Total
	bs.Difference = math.Abs(bs.Assets.Total - bs.TotalLiabilitiesAndEquity)
	bs.IsBalanced = bs.Difference < balanceEpsilon
	return bs
}

// BuildBalanceSheetSummary derives the summary from per-type balance totals.
func BuildBalanceSheetSummary(byType map[accounts.AccountType]float64) BalanceSheetSummary {
	summary := BalanceSheetSummary{
		TotalAssets:      byType[accounts.AccountTypeAsset],
		TotalLiabilities: byType[accounts.AccountTypeLiability],
		TotalEquity:      byType[accounts.AccountTypeEquity],
	}
	summary.IsBalanced = math.Abs(summary.TotalAssets-(summary.TotalLiabilities+summary.TotalEquity)) < balanceEpsilon
	return summary
}
