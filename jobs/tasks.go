package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskLedgerIntegrity verifies the journal's debits and credits balance.
	TaskLedgerIntegrity = "ledger:integrity"
	// TaskTrialBalanceSnapshot warms the trial balance snapshot in Redis.
	TaskTrialBalanceSnapshot = "reports:tb_snapshot"
)

// LedgerIntegrityPayload scopes the integrity scan. An empty AsOfDate means
// the whole journal.
type LedgerIntegrityPayload struct {
	AsOfDate string `json:"as_of_date,omitempty"`
}

// NewLedgerIntegrityTask constructs an Asynq task for the integrity scan.
func NewLedgerIntegrityTask(payload LedgerIntegrityPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskLedgerIntegrity, data), nil
}

// TrialBalanceSnapshotPayload scopes the snapshot warmup.
type TrialBalanceSnapshotPayload struct {
	AsOfDate string `json:"as_of_date,omitempty"`
}

// NewTrialBalanceSnapshotTask constructs an Asynq task for the warmup.
func NewTrialBalanceSnapshotTask(payload TrialBalanceSnapshotPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskTrialBalanceSnapshot, data), nil
}
