package services

import (
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/shiftsync/internal/core/domain"
	"github.com/custodia-labs/shiftsync/internal/core/ports/driven"
	"github.com/custodia-labs/shiftsync/internal/logger"
)

// Reconciler decides create/update/skip per shift against the event
// store. It never deletes: a shift whose boundaries were corrected in
// a republication gets a new event and the stale one is left behind.
type Reconciler struct {
	events     driven.EventStore
	calendarID string
	title      string
	colorID    string
}

// NewReconciler creates a reconciler writing to calendarID. Every
// event it creates carries title as its display label and colorID as
// its calendar colour (empty for the calendar default).
func NewReconciler(events driven.EventStore, calendarID, title, colorID string) *Reconciler {
	return &Reconciler{
		events:     events,
		calendarID: calendarID,
		title:      title,
		colorID:    colorID,
	}
}

// Upsert reconciles one shift against the event store.
func (r *Reconciler) Upsert(ctx context.Context, shift domain.Shift) (domain.UpsertOutcome, error) {
	if !shift.Valid() {
		return 0, fmt.Errorf("%w: %s", domain.ErrInvalidShift, shift.Start)
	}

	// 1. Compute the shift's identity.
	fingerprint := domain.Fingerprint(shift)

	// 2. Look for an event we created earlier for this exact shift,
	// bounded to the shift's calendar day. AddDate keeps the window a
	// full civil day even when a DST transition makes it 23 or 25 hours.
	dayStart := shift.Day()
	dayEnd := dayStart.AddDate(0, 0, 1)
	existing, err := r.events.FindByFingerprint(ctx, r.calendarID, fingerprint, dayStart, dayEnd)
	if err != nil {
		return 0, fmt.Errorf("find by fingerprint: %w", err)
	}

	// 3. Found: overwrite in place. This is how shift-time corrections
	// in a republished schedule propagate without duplication.
	if existing != nil {
		existing.Start = shift.Start
		existing.End = shift.End
		existing.Title = r.title
		existing.Fingerprint = fingerprint
		existing.ColorID = r.colorID
		if _, err := r.events.Update(ctx, r.calendarID, existing); err != nil {
			return 0, fmt.Errorf("update event: %w", err)
		}
		logger.Debug("Updated event %s for shift %s (%s)", existing.ID, shift.Start.Format(time.RFC3339), fingerprint)
		return domain.OutcomeUpdated, nil
	}

	// 4. Not ours yet: protect manual events of the same kind that
	// already occupy this interval. Events carrying a fingerprint are
	// ours and do not block: a shift whose boundaries were corrected
	// must still be created, orphaning the stale event.
	overlapping, err := r.events.FindOverlapping(ctx, r.calendarID, shift.Start, shift.End)
	if err != nil {
		return 0, fmt.Errorf("find overlapping: %w", err)
	}
	for _, ev := range overlapping {
		if ev.Fingerprint == "" && ev.Overlaps(shift.Start, shift.End) && ev.TitleMatches(r.title) {
			logger.Debug("Skipping shift %s: overlaps event %q (%s)", shift.Start.Format(time.RFC3339), ev.Title, ev.ID)
			return domain.OutcomeSkippedOverlap, nil
		}
	}

	// 5. Insert a fresh event carrying the fingerprint.
	created, err := r.events.Insert(ctx, r.calendarID, &domain.CalendarEvent{
		Title:               r.title,
		Start:               shift.Start,
		End:                 shift.End,
		Fingerprint:         fingerprint,
		ColorID:             r.colorID,
		UseDefaultReminders: true,
	})
	if err != nil {
		return 0, fmt.Errorf("insert event: %w", err)
	}
	logger.Debug("Created event %s for shift %s (%s)", created.ID, shift.Start.Format(time.RFC3339), fingerprint)
	return domain.OutcomeCreated, nil
}
