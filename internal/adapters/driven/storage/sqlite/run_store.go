package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/shiftsync/internal/core/domain"
	"github.com/custodia-labs/shiftsync/internal/core/ports/driven"
)

// runStore implements driven.RunStore.
type runStore struct {
	store *Store
}

var _ driven.RunStore = (*runStore)(nil)

// Save persists one run record.
func (s *runStore) Save(ctx context.Context, record *domain.RunRecord) error {
	if record == nil || record.ID == "" {
		return domain.ErrInvalidInput
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO runs (id, started_at, finished_at, messages_seen, shifts_parsed,
			created, updated, skipped_overlap, error)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			finished_at = excluded.finished_at,
			messages_seen = excluded.messages_seen,
			shifts_parsed = excluded.shifts_parsed,
			created = excluded.created,
			updated = excluded.updated,
			skipped_overlap = excluded.skipped_overlap,
			error = excluded.error
	`,
		record.ID,
		record.StartedAt.UTC().Format(time.RFC3339Nano),
		record.FinishedAt.UTC().Format(time.RFC3339Nano),
		record.MessagesSeen,
		record.ShiftsParsed,
		record.Created,
		record.Updated,
		record.SkippedOverlap,
		record.Error,
	)
	if err != nil {
		return fmt.Errorf("saving run record: %w", err)
	}
	return nil
}

// ListRecent returns up to limit records, newest first.
func (s *runStore) ListRecent(ctx context.Context, limit int) ([]domain.RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, started_at, finished_at, messages_seen, shifts_parsed,
			created, updated, skipped_overlap, error
		FROM runs
		ORDER BY started_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying run records: %w", err)
	}
	defer rows.Close()

	var records []domain.RunRecord //nolint:prealloc // size unknown from query
	for rows.Next() {
		var record domain.RunRecord
		var startedAt, finishedAt string
		if err := rows.Scan(
			&record.ID,
			&startedAt,
			&finishedAt,
			&record.MessagesSeen,
			&record.ShiftsParsed,
			&record.Created,
			&record.Updated,
			&record.SkippedOverlap,
			&record.Error,
		); err != nil {
			return nil, fmt.Errorf("scanning run record: %w", err)
		}

		record.StartedAt, err = time.Parse(time.RFC3339Nano, startedAt)
		if err != nil {
			return nil, fmt.Errorf("parsing started_at: %w", err)
		}
		record.FinishedAt, err = time.Parse(time.RFC3339Nano, finishedAt)
		if err != nil {
			return nil, fmt.Errorf("parsing finished_at: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating run records: %w", err)
	}
	return records, nil
}
