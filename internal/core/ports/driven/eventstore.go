package driven

import (
	"context"
	"time"

	"github.com/custodia-labs/shiftsync/internal/core/domain"
)

// EventStore is the writable view of the external calendar.
// Every call is a blocking network round-trip; failures propagate to
// the caller unretried.
type EventStore interface {
	// FindByFingerprint returns the event inside [dayStart, dayEnd)
	// whose private metadata carries the given fingerprint, or nil if
	// none exists.
	FindByFingerprint(ctx context.Context, calendarID, fingerprint string, dayStart, dayEnd time.Time) (*domain.CalendarEvent, error)

	// FindOverlapping returns all events whose time range intersects
	// [start, end), regardless of ownership.
	FindOverlapping(ctx context.Context, calendarID string, start, end time.Time) ([]domain.CalendarEvent, error)

	// Insert creates a new event and returns it with its assigned ID.
	Insert(ctx context.Context, calendarID string, event *domain.CalendarEvent) (*domain.CalendarEvent, error)

	// Update overwrites an existing event by ID.
	Update(ctx context.Context, calendarID string, event *domain.CalendarEvent) (*domain.CalendarEvent, error)
}
