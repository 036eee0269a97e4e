package balance

import "github.com/meridian-erp/meridian-erp/internal/accounting/accounts"

// Balance is the computed position of one account as of a date.
// TotalDebit and TotalCredit are the raw posted sums; Balance carries the
// sign convention for the account type applied to them.
type Balance struct {
	AccountID   int64                `json:"account_id"`
	AccountCode string               `json:"account_code"`
	AccountName string               `json:"account_name"`
	AccountType accounts.AccountType `json:"account_type"`
	TotalDebit  float64              `json:"total_debit"`
	TotalCredit float64              `json:"total_credit"`
	Balance     float64              `json:"balance"`
}
