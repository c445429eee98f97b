package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// FingerprintLength is the number of hex characters kept from the
// digest. 48 bits is far beyond accidental collision at the few
// hundred events a personal calendar sees.
const FingerprintLength = 12

// Shift is a single work interval parsed from one schedule table row.
// Start and End are timezone-aware instants on the same calendar day
// (the source format never spans midnight). Location is always empty
// in this schema but kept so the event mapping stays explicit.
type Shift struct {
	Start    time.Time
	End      time.Time
	Title    string
	Location string
}

// Valid reports whether the shift has a well-formed interval.
func (s Shift) Valid() bool {
	return !s.Start.IsZero() && !s.End.IsZero() && s.Start.Before(s.End)
}

// Day returns midnight of the shift's calendar day in the shift's own
// location, suitable as the lower bound of a day-bounded event query.
func (s Shift) Day() time.Time {
	y, m, d := s.Start.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, s.Start.Location())
}

// Fingerprint derives the stable identity of a shift from its date and
// time-of-day boundaries. Title and Location are deliberately excluded:
// the same interval published in two overlapping notifications must
// hash identically, which is what makes re-processing idempotent.
//
// The fingerprint is boundary-sensitive. A republication that corrects
// a shift's times yields a new fingerprint, so the corrected shift is
// created as a new event and the stale one is left in place; the
// reconciler never deletes.
func Fingerprint(s Shift) string {
	key := fmt.Sprintf("%s|%s|%s",
		s.Start.Format("2006-01-02"),
		s.Start.Format("15:04"),
		s.End.Format("15:04"),
	)
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])[:FingerprintLength]
}
