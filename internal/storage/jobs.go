package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sudsywork/sudsy/internal/common"
	"github.com/sudsywork/sudsy/internal/model"
)

// SaveSnapshot replaces the cached job list with the given jobs. The whole
// snapshot is swapped in one transaction so an interrupted sync never
// leaves a half-written schedule.
func (s *SQLiteStore) SaveSnapshot(ctx context.Context, jobs []model.Job, fetchedAt time.Time) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin snapshot transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM jobs`); err != nil {
		return fmt.Errorf("failed to clear previous snapshot: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO jobs
		(source_id, date, start_time, end_time, client, address, title, service_type, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, job := range jobs {
		dateStr := ""
		if !job.Date.IsZero() {
			dateStr = job.Date.Format("2006-01-02")
		}
		if _, err := stmt.ExecContext(ctx,
			job.ID, dateStr, job.Start, job.End,
			job.Client, job.Address, job.Title, job.ServiceType, job.Notes,
		); err != nil {
			return fmt.Errorf("failed to insert job: %w", err)
		}
	}

	if _, err := tx.ExecContext(ctx, `INSERT INTO snapshot_meta (id, fetched_at) VALUES (1, ?)
		ON CONFLICT(id) DO UPDATE SET fetched_at = excluded.fetched_at`,
		fetchedAt.Format(time.RFC3339)); err != nil {
		return fmt.Errorf("failed to record fetch time: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}

	return nil
}

// LoadSnapshot returns the cached job list and when it was fetched.
// Returns common.ErrNoSnapshot when sync has never run.
func (s *SQLiteStore) LoadSnapshot(ctx context.Context) ([]model.Job, time.Time, error) {
	var fetchedAtStr string
	err := s.db.QueryRowContext(ctx, `SELECT fetched_at FROM snapshot_meta WHERE id = 1`).Scan(&fetchedAtStr)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, time.Time{}, common.ErrNoSnapshot
	}
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to read snapshot metadata: %w", err)
	}

	fetchedAt, err := time.Parse(time.RFC3339, fetchedAtStr)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to parse snapshot fetch time: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `SELECT source_id, date, start_time, end_time, client, address, title, service_type, notes
		FROM jobs ORDER BY rowid_ord`)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to query jobs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var jobs []model.Job
	for rows.Next() {
		var job model.Job
		var dateStr string
		if err := rows.Scan(&job.ID, &dateStr, &job.Start, &job.End,
			&job.Client, &job.Address, &job.Title, &job.ServiceType, &job.Notes); err != nil {
			return nil, time.Time{}, fmt.Errorf("failed to scan job: %w", err)
		}
		if dateStr != "" {
			if t, err := time.ParseInLocation("2006-01-02", dateStr, time.Local); err == nil {
				job.Date = model.Date(t)
			}
		}
		jobs = append(jobs, job)
	}

	if err := rows.Err(); err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to iterate jobs: %w", err)
	}

	return jobs, fetchedAt, nil
}
