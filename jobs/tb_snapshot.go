package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/meridian-erp/meridian-erp/internal/accounting/reports"
	"github.com/meridian-erp/meridian-erp/internal/accounting/shared"
	jobmetrics "github.com/meridian-erp/meridian-erp/internal/jobs"
)

const (
	snapshotKeyPrefix = "meridian:reports:tb:"
	snapshotTTL       = 24 * time.Hour
)

// TrialBalanceSnapshotJob builds the trial balance off-peak and parks the
// JSON payload in Redis so dashboards can read yesterday's snapshot without
// touching the database.
type TrialBalanceSnapshotJob struct {
	Reports *reports.Service
	Redis   *redis.Client
	Logger  *slog.Logger
	Metrics *jobmetrics.Metrics
	clock   func() time.Time
}

// NewTrialBalanceSnapshotJob wires dependencies for the snapshot handler.
func NewTrialBalanceSnapshotJob(reportSvc *reports.Service, redisClient *redis.Client, logger *slog.Logger, metrics *jobmetrics.Metrics) *TrialBalanceSnapshotJob {
	return &TrialBalanceSnapshotJob{
		Reports: reportSvc,
		Redis:   redisClient,
		Logger:  logger,
		Metrics: metrics,
		clock: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// Handle processes TaskTrialBalanceSnapshot tasks.
func (j *TrialBalanceSnapshotJob) Handle(ctx context.Context, t *asynq.Task) error {
	if j == nil || j.Reports == nil || j.Redis == nil {
		return errors.New("tb snapshot: handler not configured")
	}
	var payload TrialBalanceSnapshotPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return asynq.SkipRetry
	}
	asOf, err := shared.ParseDate(payload.AsOfDate)
	if err != nil {
		return asynq.SkipRetry
	}
	if asOf == nil {
		yesterday := j.clock().AddDate(0, 0, -1).Truncate(24 * time.Hour)
		asOf = &yesterday
	}

	tracker := j.metrics().Track(TaskTrialBalanceSnapshot)
	var resultErr error
	defer func() {
		resultErr = tracker.End(resultErr)
	}()

	tb, err := j.Reports.TrialBalance(ctx, asOf)
	if err != nil {
		resultErr = err
		j.logger().Error("build trial balance snapshot", slog.Any("error", err))
		return resultErr
	}
	data, err := json.Marshal(tb)
	if err != nil {
		resultErr = err
		return resultErr
	}
	key := snapshotKeyPrefix + asOf.Format("2006-01-02")
	if err := j.Redis.Set(ctx, key, data, snapshotTTL).Err(); err != nil {
		resultErr = err
		j.logger().Error("store trial balance snapshot", slog.String("key", key), slog.Any("error", err))
		return resultErr
	}
	j.logger().Info("trial balance snapshot stored", slog.String("key", key), slog.Int("rows", len(tb.Rows)))
	return resultErr
}

func (j *TrialBalanceSnapshotJob) logger() *slog.Logger {
	if j.Logger != nil {
		return j.Logger
	}
	return slog.Default()
}

func (j *TrialBalanceSnapshotJob) metrics() *jobmetrics.Metrics {
	if j.Metrics != nil {
		return j.Metrics
	}
	return jobmetrics.NewMetrics(nil)
}
