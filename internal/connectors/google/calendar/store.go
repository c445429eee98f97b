package calendar

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/calendar/v3"

	"github.com/custodia-labs/shiftsync/internal/connectors/google"
	"github.com/custodia-labs/shiftsync/internal/core/domain"
	"github.com/custodia-labs/shiftsync/internal/core/ports/driven"
)

// listPageSize bounds event list calls. A day window holds at most a
// handful of events; a fortnight well under this.
const listPageSize = 100

// Ensure Store implements the interface.
var _ driven.EventStore = (*Store)(nil)

// Store reads and writes calendar events via the Google Calendar API.
type Store struct {
	svc     *calendar.Service
	limiter *google.RateLimiter
}

// NewStore creates a Calendar-backed event store.
func NewStore(svc *calendar.Service) *Store {
	return &Store{
		svc:     svc,
		limiter: google.NewRateLimiter(google.ServiceCalendar),
	}
}

// FindByFingerprint returns the event in [dayStart, dayEnd) carrying
// the fingerprint in its private metadata, or nil when none exists.
// The fingerprint filter is applied server-side.
func (s *Store) FindByFingerprint(
	ctx context.Context,
	calendarID, fingerprint string,
	dayStart, dayEnd time.Time,
) (*domain.CalendarEvent, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	resp, err := s.svc.Events.List(calendarID).
		PrivateExtendedProperty(domain.FingerprintKey + "=" + fingerprint).
		TimeMin(dayStart.Format(time.RFC3339)).
		TimeMax(dayEnd.Format(time.RFC3339)).
		SingleEvents(true).
		MaxResults(listPageSize).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("list events by fingerprint: %w", google.WrapError(err))
	}

	for _, item := range resp.Items {
		if ev, ok := fromAPIEvent(item); ok {
			return &ev, nil
		}
	}
	return nil, nil
}

// FindOverlapping returns all timed events intersecting [start, end).
func (s *Store) FindOverlapping(
	ctx context.Context,
	calendarID string,
	start, end time.Time,
) ([]domain.CalendarEvent, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	resp, err := s.svc.Events.List(calendarID).
		TimeMin(start.Format(time.RFC3339)).
		TimeMax(end.Format(time.RFC3339)).
		SingleEvents(true).
		MaxResults(listPageSize).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("list overlapping events: %w", google.WrapError(err))
	}

	var events []domain.CalendarEvent
	for _, item := range resp.Items {
		if ev, ok := fromAPIEvent(item); ok {
			events = append(events, ev)
		}
	}
	return events, nil
}

// Insert creates a new event and returns it with its assigned ID.
func (s *Store) Insert(
	ctx context.Context,
	calendarID string,
	event *domain.CalendarEvent,
) (*domain.CalendarEvent, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	inserted, err := s.svc.Events.Insert(calendarID, toAPIEvent(event)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("insert event: %w", google.WrapError(err))
	}

	created := *event
	created.ID = inserted.Id
	return &created, nil
}

// Update overwrites an existing event by ID.
func (s *Store) Update(
	ctx context.Context,
	calendarID string,
	event *domain.CalendarEvent,
) (*domain.CalendarEvent, error) {
	if event.ID == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	updated, err := s.svc.Events.Update(calendarID, event.ID, toAPIEvent(event)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("update event %s: %w", event.ID, google.WrapError(err))
	}

	result := *event
	result.ID = updated.Id
	return &result, nil
}
