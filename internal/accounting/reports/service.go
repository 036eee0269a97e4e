package reports

import (
	"context"
	"time"

	"github.com/meridian-erp/meridian-erp/internal/accounting/accounts"
	"github.com/meridian-erp/meridian-erp/internal/accounting/balance"
	"github.com/meridian-erp/meridian-erp/internal/accounting/journals"
)

// Service composes the trial balance, balance sheet, and income statement
// reports. All operations are stateless reads over the entry set.
type Service struct {
	accounts accounts.Repository
	journals journals.Repository
	balances *balance.Service
}

func NewService(accountRepo accounts.Repository, journalRepo journals.Repository, balances *balance.Service) *Service {
	return &Service{accounts: accountRepo, journals: journalRepo, balances: balances}
}

// TrialBalance builds the full-ledger snapshot as of the given date.
func (s *Service) TrialBalance(ctx context.Context, asOf *time.Time) (TrialBalance, error) {
	balances, err := s.balances.ComputeAll(ctx, asOf)
	if err != nil {
		return TrialBalance{}, err
	}
	return BuildTrialBalance(asOf, balances), nil
}

// TrialBalanceByType regroups the trial balance by account type.
func (s *Service) TrialBalanceByType(ctx context.Context, asOf *time.Time) (map[accounts.AccountType]TypeTotals, error) {
	balances, err := s.balances.ComputeAll(ctx, asOf)
	if err != nil {
		return nil, err
	}
	return BuildTrialBalanceByType(balances), nil
}

// BalanceSheet builds the line-item report. The aggregation runs directly
// over the journal sums rather than through the balance engine; both paths
// share the sign routine, so the results agree.
func (s *Service) BalanceSheet(ctx context.Context, asOf *time.Time) (BalanceSheet, error) {
	rows, err := s.accountTotals(ctx, journals.Filter{Through: asOf}, nil)
	if err != nil {
		return BalanceSheet{}, err
	}
	return BuildBalanceSheet(asOf, rows), nil
}

// BalanceSheetSummary derives totals from the type aggregate. This path does
// not suppress near-zero accounts the way the full report does; the two
// views are deliberately independent.
func (s *Service) BalanceSheetSummary(ctx context.Context, asOf *time.Time) (BalanceSheetSummary, error) {
	byType, err := s.balances.SummaryByType(ctx, asOf)
	if err != nil {
		return BalanceSheetSummary{}, err
	}
	return BuildBalanceSheetSummary(byType), nil
}

// IncomeStatement builds the period P&L over [start, end].
func (s *Service) IncomeStatement(ctx context.Context, start, end *time.Time) (IncomeStatement, error) {
	keep := func(t accounts.AccountType) bool {
		switch t {
		case accounts.AccountTypeRevenue, accounts.AccountTypeCostOfService, accounts.AccountTypeExpense:
			return true
		}
		return false
	}
	rows, err := s.accountTotals(ctx, journals.Filter{From: start, Through: end}, keep)
	if err != nil {
		return IncomeStatement{}, err
	}
	return BuildIncomeStatement(start, end, rows), nil
}

// IncomeStatementSummary always goes through the full statement; there is no
// shortcut path here, unlike the balance sheet summary.
func (s *Service) IncomeStatementSummary(ctx context.Context, start, end *time.Time) (IncomeStatementSummary, error) {
	is, err := s.IncomeStatement(ctx, start, end)
	if err != nil {
		return IncomeStatementSummary{}, err
	}
	return is.Summary(), nil
}

func (s *Service) accountTotals(ctx context.Context, filter journals.Filter, keep func(accounts.AccountType) bool) ([]AccountTotals, error) {
	directory, err := s.accounts.List(ctx)
	if err != nil {
		return nil, err
	}
	sums, err := s.journals.SumEntriesByAccount(ctx, filter)
	if err != nil {
		return nil, err
	}
	rows := make([]AccountTotals, 0, len(directory))
	for _, account := range directory {
		if keep != nil && !keep(account.Type) {
			continue
		}
		totals := sums[account.ID]
		rows = append(rows, AccountTotals{Account: account, Debit: totals.Debit, Credit: totals.Credit})
	}
	return rows, nil
}
