package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sudsywork/sudsy/internal/config"
	"github.com/sudsywork/sudsy/internal/jobsource"
	"github.com/sudsywork/sudsy/internal/model"
	"github.com/sudsywork/sudsy/internal/schedule"
	"github.com/sudsywork/sudsy/internal/storage"
)

// viewFlags are the filter flags shared by jobs, run, and export.
type viewFlags struct {
	window  string
	search  string
	date    string
	offline bool
}

func (f *viewFlags) windowMode() (model.WindowMode, error) {
	return model.ParseWindowMode(f.window)
}

// now resolves the reference date: time.Now unless --date overrides it,
// which keeps week-boundary behavior reproducible when planning ahead.
func (f *viewFlags) now() (time.Time, error) {
	if f.date == "" {
		return time.Now(), nil
	}
	t, err := time.ParseInLocation("2006-01-02", f.date, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q (expected YYYY-MM-DD): %w", f.date, err)
	}
	return t, nil
}

// newSourceClient builds the job source client from configuration.
func newSourceClient() (*jobsource.Client, error) {
	baseURL := config.SourceURL()
	if baseURL == "" {
		return nil, fmt.Errorf("no job source configured: set source.url in the config file or SUDSY_SOURCE_URL")
	}
	return jobsource.NewClient(baseURL), nil
}

// openStore opens the snapshot cache with migrations applied.
func openStore(ctx context.Context) (*storage.SQLiteStore, error) {
	store, err := storage.NewSQLiteStore(config.DatabasePath())
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot cache: %w", err)
	}
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to migrate snapshot cache: %w", err)
	}
	return store, nil
}

// loadJobs returns the raw job list, either fetched live or read from the
// snapshot cache when --offline is set. Live fetch failures degrade to an
// empty list for display commands; offline reads are explicit and fail
// loudly so a crew knows their snapshot is missing.
func loadJobs(ctx context.Context, offline bool) ([]model.Job, error) {
	if offline {
		store, err := openStore(ctx)
		if err != nil {
			return nil, err
		}
		defer func() { _ = store.Close() }()

		jobs, fetchedAt, err := store.LoadSnapshot(ctx)
		if err != nil {
			return nil, fmt.Errorf("offline snapshot unavailable (run 'sudsy sync' first): %w", err)
		}
		slog.Info("Using offline snapshot", "fetched_at", fetchedAt.Format(time.RFC3339), "jobs", len(jobs))
		return jobs, nil
	}

	client, err := newSourceClient()
	if err != nil {
		return nil, err
	}
	return client.FetchOrEmpty(ctx), nil
}

// visibleJobs applies the window and search filters from the flags.
func visibleJobs(ctx context.Context, flags *viewFlags) ([]model.Job, error) {
	mode, err := flags.windowMode()
	if err != nil {
		return nil, err
	}
	now, err := flags.now()
	if err != nil {
		return nil, err
	}

	jobs, err := loadJobs(ctx, flags.offline)
	if err != nil {
		return nil, err
	}

	return schedule.Filter(jobs, now, mode, flags.search), nil
}
