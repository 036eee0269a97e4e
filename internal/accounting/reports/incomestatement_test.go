package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/meridian-erp/meridian-erp/internal/accounting/accounts"
)

func TestBuildIncomeStatementProfitAndMargins(t *testing.T) {
	rows := []AccountTotals{
		totals("4000", "Sales", accounts.AccountTypeRevenue, 0, 5000),
		totals("5000", "Delivery", accounts.AccountTypeCostOfService, 1000, 0),
		totals("6000", "Rent", accounts.AccountTypeExpense, 3000, 0),
	}

	is := BuildIncomeStatement(nil, nil, rows)

	assert.Equal(t, 5000.0, is.Revenue.Total)
	assert.Equal(t, 1000.0, is.CostOfService.Total)
	assert.Equal(t, 3000.0, is.Expenses.Total)
	assert.Equal(t, 4000.0, is.GrossProfit)
	assert.Equal(t, 1000.0, is.NetProfit)
	assert.InDelta(t, 80.0, is.GrossProfitMargin, 1e-9)
	assert.InDelta(t, 20.0, is.NetProfitMargin, 1e-9)
}

func TestBuildIncomeStatementZeroRevenue(t *testing.T) {
	rows := []AccountTotals{
		totals("6000", "Rent", accounts.AccountTypeExpense, 3000, 0),
	}

	is := BuildIncomeStatement(nil, nil, rows)

	assert.Equal(t, 0.0, is.Revenue.Total)
	assert.Equal(t, -3000.0, is.NetProfit)
	assert.Equal(t, 0.0, is.GrossProfitMargin)
	assert.Equal(t, 0.0, is.NetProfitMargin)
}

func TestBuildIncomeStatementSkipsNearZeroLines(t *testing.T) {
	rows := []AccountTotals{
		totals("4000", "Sales", accounts.AccountTypeRevenue, 0, 5000),
		totals("4100", "Rounding", accounts.AccountTypeRevenue, 99.995, 100),
	}

	is := BuildIncomeStatement(nil, nil, rows)

	assert.Len(t, is.Revenue.Accounts, 1)
	assert.Equal(t, "4000", is.Revenue.Accounts[0].AccountCode)
	assert.Equal(t, 5000.0, is.Revenue.Total)
}

func TestBuildIncomeStatementNegativeLinesStay(t *testing.T) {
	// A refund-heavy revenue account carries a negative signed amount and is
	// reported as-is, not flipped or dropped.
	rows := []AccountTotals{
		totals("4000", "Sales", accounts.AccountTypeRevenue, 0, 5000),
		totals("4100", "Refunds", accounts.AccountTypeRevenue, 700, 0),
	}

	is := BuildIncomeStatement(nil, nil, rows)

	assert.Len(t, is.Revenue.Accounts, 2)
	assert.Equal(t, -700.0, is.Revenue.Accounts[1].Amount)
	assert.Equal(t, 4300.0, is.Revenue.Total)
}

func TestIncomeStatementSummaryProjection(t *testing.T) {
	rows := []AccountTotals{
		totals("4000", "Sales", accounts.AccountTypeRevenue, 0, 5000),
		totals("5000", "Delivery", accounts.AccountTypeCostOfService, 1000, 0),
		totals("6000", "Rent", accounts.AccountTypeExpense, 3000, 0),
	}

	summary := BuildIncomeStatement(nil, nil, rows).Summary()

	assert.Equal(t, 5000.0, summary.TotalRevenue)
	assert.Equal(t, 1000.0, summary.TotalCOGS)
	assert.Equal(t, 4000.0, summary.GrossProfit)
	assert.Equal(t, 3000.0, summary.TotalExpenses)
	assert.Equal(t, 1000.0, summary.NetProfit)
	assert.InDelta(t, 80.0, summary.GrossProfitMargin, 1e-9)
	assert.InDelta(t, 20.0, summary.NetProfitMargin, 1e-9)
}
