package ledger

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/meridian-erp/meridian-erp/internal/accounting/accounts"
	"github.com/meridian-erp/meridian-erp/internal/accounting/journals"
	"github.com/meridian-erp/meridian-erp/internal/accounting/shared"
)

const bulkConcurrency = 4

// Service produces general ledger listings. It shares the journal filter and
// sign convention with the balance engine but walks the entries itself to
// attach per-row running balances.
type Service struct {
	accounts accounts.Repository
	journals journals.Repository
}

func NewService(accountRepo accounts.Repository, journalRepo journals.Repository) *Service {
	return &Service{accounts: accountRepo, journals: journalRepo}
}

// Get builds the ledger for a single account. A missing account is an error;
// an account with no entries in range yields an empty listing whose closing
// balance equals the opening balance.
func (s *Service) Get(ctx context.Context, accountID int64, start, end *time.Time) (Ledger, error) {
	account, err := s.accounts.Find(ctx, accountID)
	if err != nil {
		return Ledger{}, err
	}

	var opening float64
	if start != nil {
		// Opening balance is the state before the period begins, so the
		// bound is strict, unlike the inclusive asOfDate used elsewhere.
		totals, err := s.journals.SumEntries(ctx, journals.Filter{AccountID: accountID, Before: start})
		if err != nil {
			return Ledger{}, err
		}
		opening = account.Type.SignedBalance(totals.Debit, totals.Credit)
	}

	entries, err := s.journals.FindEntries(ctx, journals.Filter{AccountID: accountID, From: start, Through: end})
	if err != nil {
		return Ledger{}, err
	}

	result := Ledger{
		Account:        account,
		StartDate:      start,
		EndDate:        end,
		OpeningBalance: opening,
		Entries:        make([]Row, 0, len(entries)),
	}
	running := opening
	for _, entry := range entries {
		running += account.Type.SignedBalance(entry.Debit, entry.Credit)
		result.Entries = append(result.Entries, Row{JournalEntry: entry, Balance: running})
		result.TotalDebit += entry.Debit
		result.TotalCredit += entry.Credit
	}
	result.ClosingBalance = running
	return result, nil
}

// GetBulk runs Get for each account id independently. Ids that resolve to a
// missing account are dropped; every other failure aborts the batch. Each
// account's running-balance walk is local to its own goroutine, so the
// listings never share accumulators.
func (s *Service) GetBulk(ctx context.Context, accountIDs []int64, start, end *time.Time) ([]Ledger, error) {
	results := make([]*Ledger, len(accountIDs))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(bulkConcurrency)
	for i, id := range accountIDs {
		g.Go(func() error {
			ledger, err := s.Get(ctx, id, start, end)
			if err != nil {
				if errors.Is(err, shared.ErrAccountNotFound) {
					return nil
				}
				return err
			}
			mu.Lock()
			results[i] = &ledger
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ledgers := make([]Ledger, 0, len(accountIDs))
	for _, l := range results {
		if l != nil {
			ledgers = append(ledgers, *l)
		}
	}
	return ledgers, nil
}
