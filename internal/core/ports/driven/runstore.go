package driven

import (
	"context"

	"github.com/custodia-labs/shiftsync/internal/core/domain"
)

// RunStore persists run history locally. Purely observational: the
// sync algorithm never reads it, and a write failure must not fail a
// run.
type RunStore interface {
	// Save persists one run record.
	Save(ctx context.Context, record *domain.RunRecord) error

	// ListRecent returns up to limit records, newest first.
	ListRecent(ctx context.Context, limit int) ([]domain.RunRecord, error)
}
