package journals

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository encapsulates read-only queries over the journal entry set.
type Repository interface {
	// FindEntries returns entries matching the filter ordered by
	// (transaction_date, id) ascending. The id tiebreak keeps same-day
	// postings in a stable order regardless of storage engine ordering.
	FindEntries(ctx context.Context, filter Filter) ([]JournalEntry, error)
	// SumEntries returns independent debit and credit sums over the filter.
	SumEntries(ctx context.Context, filter Filter) (Totals, error)
	// SumEntriesByAccount groups the sums by account id.
	SumEntriesByAccount(ctx context.Context, filter Filter) (map[int64]Totals, error)
}

type repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Repository {
	return &repository{db: db}
}

func (f Filter) where() (string, []any) {
	var clauses []string
	var args []any
	next := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	if f.AccountID > 0 {
		clauses = append(clauses, "account_id = "+next(f.AccountID))
	}
	if len(f.AccountIDs) > 0 {
		clauses = append(clauses, "account_id = ANY("+next(f.AccountIDs)+")")
	}
	if f.From != nil {
		clauses = append(clauses, "transaction_date >= "+next(*f.From))
	}
	if f.Through != nil {
		clauses = append(clauses, "transaction_date <= "+next(*f.Through))
	}
	if f.Before != nil {
		clauses = append(clauses, "transaction_date < "+next(*f.Before))
	}
	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

func (r *repository) FindEntries(ctx context.Context, filter Filter) ([]JournalEntry, error) {
	where, args := filter.where()
	query := `SELECT id, account_id, transaction_date, COALESCE(debit,0), COALESCE(credit,0), description, reference_id, reference_type, created_by, created_at
FROM journal_entries` + where + ` ORDER BY transaction_date ASC, id ASC`
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapQueryError("find entries", err)
	}
	defer rows.Close()
	var entries []JournalEntry
	for rows.Next() {
		var e JournalEntry
		err := rows.Scan(&e.ID, &e.AccountID, &e.TransactionDate, &e.Debit, &e.Credit, &e.Description, &e.ReferenceID, &e.ReferenceType, &e.CreatedBy, &e.CreatedAt)
		if err != nil {
			return nil, wrapQueryError("scan entry", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *repository) SumEntries(ctx context.Context, filter Filter) (Totals, error) {
	where, args := filter.where()
	query := `SELECT COALESCE(SUM(debit),0), COALESCE(SUM(credit),0) FROM journal_entries` + where
	var t Totals
	if err := r.db.QueryRow(ctx, query, args...).Scan(&t.Debit, &t.Credit); err != nil {
		return Totals{}, wrapQueryError("sum entries", err)
	}
	return t, nil
}

func (r *repository) SumEntriesByAccount(ctx context.Context, filter Filter) (map[int64]Totals, error) {
	where, args := filter.where()
	query := `SELECT account_id, COALESCE(SUM(debit),0), COALESCE(SUM(credit),0) FROM journal_entries` + where + ` GROUP BY account_id`
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapQueryError("sum entries by account", err)
	}
	defer rows.Close()
	sums := make(map[int64]Totals)
	for rows.Next() {
		var accountID int64
		var t Totals
		if err := rows.Scan(&accountID, &t.Debit, &t.Credit); err != nil {
			return nil, wrapQueryError("scan sums", err)
		}
		sums[accountID] = t
	}
	return sums, rows.Err()
}

// wrapQueryError keeps the SQLSTATE visible on storage failures so the
// boundary can log something actionable without masking the cause.
func wrapQueryError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return fmt.Errorf("journals: %s (sqlstate %s): %w", op, pgErr.Code, err)
	}
	return fmt.Errorf("journals: %s: %w", op, err)
}
