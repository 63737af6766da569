// Package service defines the interfaces between the CLI and its
// collaborators: the job source, the snapshot store, and the exporter.
package service

import (
	"context"
	"time"

	"github.com/sudsywork/sudsy/internal/model"
)

// JobSource supplies the scheduled job list. The production implementation
// fetches it over HTTP; tests substitute fixtures.
type JobSource interface {
	FetchJobs(ctx context.Context) ([]model.Job, error)
}

// JobStore is the local snapshot cache. It is a soft dependency: the
// classifier, resolver, and filter never touch it, and every command except
// sync/offline viewing works without one configured.
type JobStore interface {
	SaveSnapshot(ctx context.Context, jobs []model.Job, fetchedAt time.Time) error
	LoadSnapshot(ctx context.Context) ([]model.Job, time.Time, error)
	Migrate(ctx context.Context) error
	Close() error
}

// ScheduleExporter writes a filtered schedule somewhere the office can see
// it (currently Google Sheets).
type ScheduleExporter interface {
	Export(ctx context.Context, rows []ScheduleRow) error
}

// ScheduleRow is one exported line: a job annotated with its resolved
// service tag and checklist size.
type ScheduleRow struct {
	Job            model.Job
	Tag            model.ServiceTag
	ChecklistItems int
}

// RetryOptions configures retry behavior for transient failures.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
