package driven

import (
	"time"

	"github.com/custodia-labs/shiftsync/internal/core/domain"
)

// ScheduleParser extracts shifts from a raw notification body.
// A body without a recognisable schedule table yields an empty slice,
// not an error: reminder emails share the sender and subject of real
// publications and must not abort a run.
type ScheduleParser interface {
	Parse(html string, loc *time.Location) []domain.Shift
}

// TableRow is one data row of a located schedule table, reduced to the
// cell text the parser needs.
type TableRow struct {
	// DateCell is column 0, format "<weekday-abbrev> mm/dd".
	DateCell string
	// TimeCell is column 1, format "HH:MM - HH:MM" or a day-off
	// sentinel.
	TimeCell string
}

// TableExtractor locates a candidate table by its header set and
// extracts data rows. It exists as a seam so alternate notification
// formats can be supported without touching reconciliation.
type TableExtractor interface {
	// Extract returns the data rows of the first table whose header
	// cells contain all the given labels (case-insensitive), in
	// document order. No matching table yields a nil slice.
	Extract(html string, headerLabels []string) []TableRow
}
