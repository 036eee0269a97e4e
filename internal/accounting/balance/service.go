package balance

import (
	"context"
	"time"

	"github.com/meridian-erp/meridian-erp/internal/accounting/accounts"
	"github.com/meridian-erp/meridian-erp/internal/accounting/journals"
)

// Service computes account balances from the journal entry set. Every
// computation is a pure function of (accounts, entries, asOf); no state is
// cached between calls.
type Service struct {
	accounts accounts.Repository
	journals journals.Repository
}

func NewService(accountRepo accounts.Repository, journalRepo journals.Repository) *Service {
	return &Service{accounts: accountRepo, journals: journalRepo}
}

// Compute returns the balance for one account. The asOf bound is inclusive.
// An account with no entries yields zeroed totals, not an error; only a
// missing account is an error.
func (s *Service) Compute(ctx context.Context, accountID int64, asOf *time.Time) (Balance, error) {
	account, err := s.accounts.Find(ctx, accountID)
	if err != nil {
		return Balance{}, err
	}
	totals, err := s.journals.SumEntries(ctx, journals.Filter{AccountID: accountID, Through: asOf})
	if err != nil {
		return Balance{}, err
	}
	return build(account, totals), nil
}

// ComputeAll returns balances for every account in the directory, ordered by
// account code ascending (the directory's own ordering).
func (s *Service) ComputeAll(ctx context.Context, asOf *time.Time) ([]Balance, error) {
	directory, err := s.accounts.List(ctx)
	if err != nil {
		return nil, err
	}
	sums, err := s.journals.SumEntriesByAccount(ctx, journals.Filter{Through: asOf})
	if err != nil {
		return nil, err
	}
	balances := make([]Balance, 0, len(directory))
	for _, account := range directory {
		balances = append(balances, build(account, sums[account.ID]))
	}
	return balances, nil
}

// SummaryByType groups ComputeAll output by account type and sums the signed
// balances per group.
func (s *Service) SummaryByType(ctx context.Context, asOf *time.Time) (map[accounts.AccountType]float64, error) {
	balances, err := s.ComputeAll(ctx, asOf)
	if err != nil {
		return nil, err
	}
	summary := make(map[accounts.AccountType]float64, len(balances))
	for _, b := range balances {
		summary[b.AccountType] += b.Balance
	}
	return summary, nil
}

func build(account accounts.Account, totals journals.Totals) Balance {
	return Balance{
		AccountID:   account.ID,
		AccountCode: account.Code,
		AccountName: account.Name,
		AccountType: account.Type,
		TotalDebit:  totals.Debit,
		TotalCredit: totals.Credit,
		Balance:     account.Type.SignedBalance(totals.Debit, totals.Credit),
	}
}
