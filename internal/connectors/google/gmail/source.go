package gmail

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/gmail/v1"

	"github.com/custodia-labs/shiftsync/internal/connectors/google"
	"github.com/custodia-labs/shiftsync/internal/core/ports/driven"
)

// gmailUser is the special value addressing the authenticated user.
const gmailUser = "me"

// Ensure Source implements the interface.
var _ driven.MessageSource = (*Source)(nil)

// Source lists and fetches notification emails via the Gmail API.
type Source struct {
	svc     *gmail.Service
	limiter *google.RateLimiter
}

// NewSource creates a Gmail-backed message source.
func NewSource(svc *gmail.Service) *Source {
	return &Source{
		svc:     svc,
		limiter: google.NewRateLimiter(google.ServiceGmail),
	}
}

// ListRecent returns references to messages matching the filter,
// newest-first as the Gmail API orders them.
func (s *Source) ListRecent(ctx context.Context, filter driven.MessageFilter) ([]driven.MessageRef, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	call := s.svc.Users.Messages.List(gmailUser).
		Q(buildQuery(filter)).
		Context(ctx)
	if filter.MaxResults > 0 {
		call = call.MaxResults(filter.MaxResults)
	}

	resp, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", google.WrapError(err))
	}

	refs := make([]driven.MessageRef, 0, len(resp.Messages))
	for _, msg := range resp.Messages {
		refs = append(refs, driven.MessageRef{ID: msg.Id})
	}
	return refs, nil
}

// FetchBody returns the decoded body of a message, preferring the
// first HTML part and falling back to any non-empty part.
func (s *Source) FetchBody(ctx context.Context, id string) (string, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return "", err
	}

	msg, err := s.svc.Users.Messages.Get(gmailUser, id).
		Format("full").
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("get message %s: %w", id, google.WrapError(err))
	}

	return ExtractBody(msg.Payload), nil
}

// buildQuery assembles the Gmail search query for the notification
// window: fixed sender, fixed subject, bounded recency.
func buildQuery(filter driven.MessageFilter) string {
	var parts []string
	if filter.Sender != "" {
		parts = append(parts, "from:"+filter.Sender)
	}
	if filter.Subject != "" {
		parts = append(parts, fmt.Sprintf("subject:%q", filter.Subject))
	}
	if filter.NewerThanDays > 0 {
		parts = append(parts, fmt.Sprintf("newer_than:%dd", filter.NewerThanDays))
	}
	return strings.Join(parts, " ")
}
