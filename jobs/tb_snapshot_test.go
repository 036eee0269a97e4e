package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/hibiken/asynq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	"github.com/meridian-erp/meridian-erp/internal/accounting/accounts"
	"github.com/meridian-erp/meridian-erp/internal/accounting/balance"
	"github.com/meridian-erp/meridian-erp/internal/accounting/journals"
	"github.com/meridian-erp/meridian-erp/internal/accounting/reports"
	jobmetrics "github.com/meridian-erp/meridian-erp/internal/jobs"
)

func snapshotFixture(t *testing.T) (*TrialBalanceSnapshotJob, *miniredis.Miniredis) {
	t.Helper()
	accountRepo := &fakeAccountRepo{accounts: map[int64]accounts.Account{
		1: {ID: 1, Code: "1000", Name: "Cash", Type: accounts.AccountTypeAsset},
		2: {ID: 2, Code: "3000", Name: "Capital", Type: accounts.AccountTypeEquity},
	}}
	journalRepo := &fakeJournalRepo{entries: []journals.JournalEntry{
		posting(1, 1, "2024-01-02", 6000, 0),
		posting(2, 2, "2024-01-02", 0, 6000),
	}}
	reportSvc := reports.NewService(accountRepo, journalRepo, balance.NewService(accountRepo, journalRepo))

	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	job := NewTrialBalanceSnapshotJob(reportSvc, client, discardLogger(), jobmetrics.NewMetrics(prometheus.NewRegistry()))
	return job, srv
}

func TestTrialBalanceSnapshotStoresPayload(t *testing.T) {
	job, srv := snapshotFixture(t)
	task, err := NewTrialBalanceSnapshotTask(TrialBalanceSnapshotPayload{AsOfDate: "2024-01-31"})
	if err != nil {
		t.Fatalf("new task: %v", err)
	}

	if err := job.Handle(context.Background(), task); err != nil {
		t.Fatalf("Handle: %v", err)
	}

	stored, err := srv.Get("meridian:reports:tb:2024-01-31")
	if err != nil {
		t.Fatalf("snapshot key missing: %v", err)
	}
	var tb reports.TrialBalance
	if err := json.Unmarshal([]byte(stored), &tb); err != nil {
		t.Fatalf("unmarshal snapshot: %v", err)
	}
	if !tb.IsBalanced || len(tb.Rows) != 2 {
		t.Fatalf("snapshot = %+v, want balanced 2-row trial balance", tb)
	}
	if ttl := srv.TTL("meridian:reports:tb:2024-01-31"); ttl != 24*time.Hour {
		t.Fatalf("ttl = %v, want 24h", ttl)
	}
}

func TestTrialBalanceSnapshotDefaultsToYesterday(t *testing.T) {
	job, srv := snapshotFixture(t)
	job.clock = func() time.Time {
		return time.Date(2024, 2, 2, 9, 30, 0, 0, time.UTC)
	}
	task, err := NewTrialBalanceSnapshotTask(TrialBalanceSnapshotPayload{})
	if err != nil {
		t.Fatalf("new task: %v", err)
	}

	if err := job.Handle(context.Background(), task); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if !srv.Exists("meridian:reports:tb:2024-02-01") {
		t.Fatalf("expected snapshot keyed by yesterday, keys: %v", srv.Keys())
	}
}

func TestTrialBalanceSnapshotBadPayload(t *testing.T) {
	job, _ := snapshotFixture(t)

	task := asynq.NewTask(TaskTrialBalanceSnapshot, []byte("{not json"))
	if err := job.Handle(context.Background(), task); !errors.Is(err, asynq.SkipRetry) {
		t.Fatalf("err = %v, want SkipRetry", err)
	}
}

func TestTrialBalanceSnapshotStorageFailure(t *testing.T) {
	job, _ := snapshotFixture(t)
	storageErr := errors.New("connection refused")
	job.Reports = reports.NewService(
		&fakeAccountRepo{},
		&fakeJournalRepo{err: storageErr},
		balance.NewService(&fakeAccountRepo{}, &fakeJournalRepo{err: storageErr}),
	)
	task, err := NewTrialBalanceSnapshotTask(TrialBalanceSnapshotPayload{AsOfDate: "2024-01-31"})
	if err != nil {
		t.Fatalf("new task: %v", err)
	}

	if err := job.Handle(context.Background(), task); !errors.Is(err, storageErr) {
		t.Fatalf("err = %v, want storage error to propagate", err)
	}
}
