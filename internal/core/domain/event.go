package domain

import (
	"strings"
	"time"
)

// FingerprintKey is the private-metadata key under which an event's
// shift fingerprint is stored in the calendar.
const FingerprintKey = "shiftFingerprint"

// CalendarEvent references an event owned by the external event store.
// Only events whose Fingerprint matches one we computed are considered
// ours; anything else is treated as a manual event and never touched.
type CalendarEvent struct {
	ID          string
	Title       string
	Start       time.Time
	End         time.Time
	Fingerprint string
	ColorID     string
	// UseDefaultReminders carries the calendar's default notification
	// behaviour onto events we create.
	UseDefaultReminders bool
}

// TitleMatches reports whether the event's display title starts with
// the given shift title, case-insensitively and ignoring surrounding
// whitespace. Used to protect manually created events of the same kind
// from being duplicated by a coincidental schedule match.
func (e CalendarEvent) TitleMatches(shiftTitle string) bool {
	title := strings.ToLower(strings.TrimSpace(e.Title))
	return strings.HasPrefix(title, strings.ToLower(strings.TrimSpace(shiftTitle)))
}

// Overlaps reports whether the event's time range intersects [start, end).
func (e CalendarEvent) Overlaps(start, end time.Time) bool {
	return e.Start.Before(end) && e.End.After(start)
}
