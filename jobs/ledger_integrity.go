package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"math"

	"github.com/hibiken/asynq"

	"github.com/meridian-erp/meridian-erp/internal/accounting/journals"
	"github.com/meridian-erp/meridian-erp/internal/accounting/shared"
	jobmetrics "github.com/meridian-erp/meridian-erp/internal/jobs"
)

const integrityEpsilon = 0.01

// LedgerIntegrityJob sums debits against credits over the journal. A
// well-formed double-entry ledger always balances globally; a gap above the
// epsilon means an external writer posted a lopsided entry.
type LedgerIntegrityJob struct {
	Journals journals.Repository
	Logger   *slog.Logger
	Metrics  *jobmetrics.Metrics
}

// NewLedgerIntegrityJob wires dependencies for the integrity handler.
func NewLedgerIntegrityJob(journalRepo journals.Repository, logger *slog.Logger, metrics *jobmetrics.Metrics) *LedgerIntegrityJob {
	return &LedgerIntegrityJob{Journals: journalRepo, Logger: logger, Metrics: metrics}
}

// Handle processes TaskLedgerIntegrity tasks.
func (j *LedgerIntegrityJob) Handle(ctx context.Context, t *asynq.Task) error {
	if j == nil || j.Journals == nil {
		return errors.New("ledger integrity: handler not configured")
	}
	var payload LedgerIntegrityPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return asynq.SkipRetry
	}
	asOf, err := shared.ParseDate(payload.AsOfDate)
	if err != nil {
		return asynq.SkipRetry
	}

	tracker := j.metrics().Track(TaskLedgerIntegrity)
	var resultErr error
	defer func() {
		resultErr = tracker.End(resultErr)
	}()

	totals, err := j.Journals.SumEntries(ctx, journals.Filter{Through: asOf})
	if err != nil {
		resultErr = err
		j.logger().Error("ledger integrity scan", slog.Any("error", err))
		return resultErr
	}

	gap := math.Abs(totals.Debit - totals.Credit)
	if gap >= integrityEpsilon {
		j.metrics().AddImbalance()
		j.logger().Error("ledger out of balance",
			slog.Float64("total_debit", totals.Debit),
			slog.Float64("total_credit", totals.Credit),
			slog.Float64("difference", gap),
		)
		return resultErr
	}
	j.logger().Info("ledger integrity check passed",
		slog.Float64("total_debit", totals.Debit),
		slog.Float64("total_credit", totals.Credit),
	)
	return resultErr
}

func (j *LedgerIntegrityJob) logger() *slog.Logger {
	if j.Logger != nil {
		return j.Logger
	}
	return slog.Default()
}

func (j *LedgerIntegrityJob) metrics() *jobmetrics.Metrics {
	if j.Metrics != nil {
		return j.Metrics
	}
	return jobmetrics.NewMetrics(nil)
}
