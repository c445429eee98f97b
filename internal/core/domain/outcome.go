package domain

// UpsertOutcome is the closed set of results of reconciling one shift
// against the event store. There is no delete outcome; the reconciler
// never removes events.
type UpsertOutcome int

const (
	// OutcomeCreated means a new event was inserted for the shift.
	OutcomeCreated UpsertOutcome = iota
	// OutcomeUpdated means an existing event with the same fingerprint
	// was overwritten in place.
	OutcomeUpdated
	// OutcomeSkippedOverlap means a manual event of the same kind
	// already occupies the shift's interval, so nothing was written.
	OutcomeSkippedOverlap
)

// String returns a human-readable name for logging.
func (o UpsertOutcome) String() string {
	switch o {
	case OutcomeCreated:
		return "created"
	case OutcomeUpdated:
		return "updated"
	case OutcomeSkippedOverlap:
		return "skipped_overlap"
	default:
		return "unknown"
	}
}
