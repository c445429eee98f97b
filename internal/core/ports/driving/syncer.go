package driving

import (
	"context"

	"github.com/custodia-labs/shiftsync/internal/core/domain"
)

// ScheduleSyncer runs one schedule synchronisation pass: fetch recent
// notifications, parse shifts, reconcile each against the calendar.
// Run either completes and returns aggregate counts, or returns the
// underlying failure with no counts; callers cannot distinguish "zero
// shifts found" from "table format drifted" except by the absence of
// an error.
type ScheduleSyncer interface {
	Run(ctx context.Context) (*domain.RunResult, error)
}
