package driven

import "context"

// MessageRef identifies one notification message in the source.
type MessageRef struct {
	// ID is the source's opaque message identifier.
	ID string
}

// MessageFilter bounds which recent notifications a run considers.
type MessageFilter struct {
	// Sender restricts matches to this from-address.
	Sender string
	// Subject is the fixed subject string of schedule publications.
	Subject string
	// NewerThanDays is the recency window in days.
	NewerThanDays int
	// MaxResults caps how many messages are returned.
	MaxResults int64
}

// MessageSource lists and fetches notification emails.
// Implementations return ListRecent results newest-first, as the
// underlying mail APIs do; callers decide processing order.
type MessageSource interface {
	// ListRecent returns references to recent messages matching the
	// filter, newest-first.
	ListRecent(ctx context.Context, filter MessageFilter) ([]MessageRef, error)

	// FetchBody returns the decoded body of a message. For multi-part
	// messages the first HTML-bearing part is preferred, falling back
	// to any non-empty part.
	FetchBody(ctx context.Context, id string) (string, error)
}
