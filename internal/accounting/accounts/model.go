package accounts

import "time"

// AccountType enumerates CoA categories.
type AccountType string

const (
	AccountTypeAsset         AccountType = "ASSET"
	AccountTypeLiability     AccountType = "LIABILITY"
	AccountTypeEquity        AccountType = "EQUITY"
	AccountTypeRevenue       AccountType = "REVENUE"
	AccountTypeCostOfService AccountType = "COST_OF_SERVICE"
	AccountTypeExpense       AccountType = "EXPENSE"
)

// DebitNormal reports whether the type carries a debit-normal balance.
// Asset, expense, and cost-of-service accounts increase with debits; the
// remaining types increase with credits.
func (t AccountType) DebitNormal() bool {
	switch t {
	case AccountTypeAsset, AccountTypeExpense, AccountTypeCostOfService:
		return true
	default:
		return false
	}
}

// SignedBalance derives the signed balance from independent debit and credit
// sums. Every balance, running balance, and period amount in the reporting
// engine must go through this one routine so the sign convention cannot
// drift between reports.
func (t AccountType) SignedBalance(debit, credit float64) float64 {
	if t.DebitNormal() {
		return debit - credit
	}
	return credit - debit
}

// Valid reports whether the type is one of the known categories.
func (t AccountType) Valid() bool {
	switch t {
	case AccountTypeAsset, AccountTypeLiability, AccountTypeEquity,
		AccountTypeRevenue, AccountTypeCostOfService, AccountTypeExpense:
		return true
	}
	return false
}

// Account models a chart of accounts node. Accounts are created by the
// account-management flows and are immutable from the reporting engine's
// point of view.
type Account struct {
	ID        int64       `json:"id"`
	Code      string      `json:"code"`
	Name      string      `json:"name"`
	Type      AccountType `json:"type"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}
