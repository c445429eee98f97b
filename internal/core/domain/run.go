package domain

import "time"

// RunResult aggregates the outcomes of one sync run.
// SkippedOverlap is tracked for the run history but is not part of the
// entry-point payload, which reports only created and updated counts.
type RunResult struct {
	Created        int `json:"created"`
	Updated        int `json:"updated"`
	SkippedOverlap int `json:"-"`
}

// RunRecord is one row of the local run history. It exists purely for
// observability; the sync algorithm itself only reads the calendar.
type RunRecord struct {
	ID             string
	StartedAt      time.Time
	FinishedAt     time.Time
	MessagesSeen   int
	ShiftsParsed   int
	Created        int
	Updated        int
	SkippedOverlap int
	// Error holds the failure message when the run aborted, empty on
	// success.
	Error string
}

// Succeeded reports whether the recorded run completed without error.
func (r RunRecord) Succeeded() bool {
	return r.Error == ""
}
