package reports

import (
	"math"
	"time"

	"github.com/meridian-erp/meridian-erp/internal/accounting/accounts"
)

// IncomeStatementLine is one revenue, cost-of-service, or expense line.
type IncomeStatementLine struct {
	AccountCode string  `json:"account_code"`
	AccountName string  `json:"account_name"`
	Amount      float64 `json:"amount"`
}

// IncomeStatementSection groups lines of one nature with their total.
type IncomeStatementSection struct {
	Accounts []IncomeStatementLine `json:"accounts"`
	Total    float64               `json:"total"`
}

// IncomeStatement is the period P&L. Unlike the balance sheet this covers
// activity within [StartDate, EndDate], not a point-in-time position.
type IncomeStatement struct {
	StartDate         *time.Time             `json:"start_date,omitempty"`
	EndDate           *time.Time             `json:"end_date,omitempty"`
	Revenue           IncomeStatementSection `json:"revenue"`
	CostOfService     IncomeStatementSection `json:"cost_of_service"`
	Expenses          IncomeStatementSection `json:"expenses"`
	GrossProfit       float64                `json:"gross_profit"`
	NetProfit         float64                `json:"net_profit"`
	GrossProfitMargin float64                `json:"gross_profit_margin"`
	NetProfitMargin   float64                `json:"net_profit_margin"`
}

// IncomeStatementSummary is the totals-only projection of the full statement.
type IncomeStatementSummary struct {
	TotalRevenue      float64 `json:"total_revenue"`
	TotalCOGS         float64 `json:"total_cogs"`
	GrossProfit       float64 `json:"gross_profit"`
	TotalExpenses     float64 `json:"total_expenses"`
	NetProfit         float64 `json:"net_profit"`
	GrossProfitMargin float64 `json:"gross_profit_margin"`
	NetProfitMargin   float64 `json:"net_profit_margin"`
}

// BuildIncomeStatement aggregates period totals for revenue, cost-of-service,
// and expense accounts. Rows of any other type must be filtered out before
// this is called. Margins are zero when revenue is zero, never NaN or Inf.
func BuildIncomeStatement(start, end *time.Time, rows []AccountTotals) IncomeStatement {
	is := IncomeStatement{
		StartDate:     start,
		EndDate:       end,
		Revenue:       IncomeStatementSection{Accounts: []IncomeStatementLine{}},
		CostOfService: IncomeStatementSection{Accounts: []IncomeStatementLine{}},
		Expenses:      IncomeStatementSection{Accounts: []IncomeStatementLine{}},
	}
	for _, row := range rows {
		amount := row.Account.Type.SignedBalance(row.Debit, row.Credit)
		if math.Abs(amount) < balanceEpsilon {
			continue
		}
		line := IncomeStatementLine{
			AccountCode: row.Account.Code,
			AccountName: row.Account.Name,
			Amount:      amount,
		}
		switch row.Account.Type {
		case accounts.AccountTypeRevenue:
			is.Revenue.Accounts = append(is.Revenue.Accounts, line)
			is.Revenue.Total += amount
		case accounts.AccountTypeCostOfService:
			is.CostOfService.Accounts = append(is.CostOfService.Accounts, line)
			is.CostOfService.Total += amount
		case accounts.AccountTypeExpense:
			is.Expenses.Accounts = append(is.Expenses.Accounts, line)
			is.Expenses.Total += amount
		}
	}
	is.GrossProfit = is.Revenue.Total - is.CostOfService.Total
	is.NetProfit = is.GrossProfit - is.Expenses.Total
	if is.Revenue.Total != 0 {
		is.GrossProfitMargin = is.GrossProfit / is.Revenue.Total * 100
		is.NetProfitMargin = is.NetProfit / is.Revenue.Total * 100
	}
	return is
}

// Summary projects the statement totals, discarding line items.
func (is IncomeStatement) Summary() IncomeStatementSummary {
	return IncomeStatementSummary{
		TotalRevenue:      is.Revenue.Total,
		TotalCOGS:         is.CostOfService.Total,
		GrossProfit:       is.GrossProfit,
		TotalExpenses:     is.Expenses.Total,
		NetProfit:         is.NetProfit,
		GrossProfitMargin: is.GrossProfitMargin,
		NetProfitMargin:   is.NetProfitMargin,
	}
}
