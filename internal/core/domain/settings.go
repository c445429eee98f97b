package domain

import (
	"fmt"
	"time"
)

// Default values applied by Settings.ApplyDefaults.
const (
	DefaultCalendarID   = "primary"
	DefaultTimezone     = "America/Toronto"
	DefaultSubject      = "Your work schedule has been published"
	DefaultEventTitle   = "Work"
	DefaultLookbackDays = 14
	DefaultMaxMessages  = 5
)

// Settings is the configuration payload for a sync run. It is
// constructed once at process start and passed by reference into each
// component; no component reads ambient state directly.
type Settings struct {
	// Credential exchange fields. google-auth style: the refresh token
	// plus client id/secret are exchanged for short-lived access tokens
	// on demand.
	RefreshToken string `toml:"refresh_token"`
	TokenURI     string `toml:"token_uri"`
	ClientID     string `toml:"client_id"`
	ClientSecret string `toml:"client_secret"`

	// CalendarID is the target calendar. Defaults to "primary".
	CalendarID string `toml:"calendar_id"`
	// Timezone is the IANA zone all parsed shifts are localised to.
	Timezone string `toml:"timezone"`
	// SenderFilter restricts which emails are considered schedule
	// notifications. Required; there is no sane default.
	SenderFilter string `toml:"sender_filter"`
	// SubjectFilter is the fixed subject line of schedule publications.
	SubjectFilter string `toml:"subject_filter"`

	// EventTitle is the display label given to every created event.
	EventTitle string `toml:"event_title"`
	// EventColorID is the calendar colour applied to created events.
	// Empty means the calendar default.
	EventColorID string `toml:"event_color_id"`

	// LookbackDays bounds the notification window: only messages newer
	// than this many days are considered.
	LookbackDays int `toml:"lookback_days"`
	// MaxMessages caps how many recent notifications one run processes.
	MaxMessages int64 `toml:"max_messages"`
}

// ApplyDefaults fills optional fields that were left unset.
func (s *Settings) ApplyDefaults() {
	if s.CalendarID == "" {
		s.CalendarID = DefaultCalendarID
	}
	if s.Timezone == "" {
		s.Timezone = DefaultTimezone
	}
	if s.SubjectFilter == "" {
		s.SubjectFilter = DefaultSubject
	}
	if s.EventTitle == "" {
		s.EventTitle = DefaultEventTitle
	}
	if s.LookbackDays <= 0 {
		s.LookbackDays = DefaultLookbackDays
	}
	if s.MaxMessages <= 0 {
		s.MaxMessages = DefaultMaxMessages
	}
}

// Validate checks that all required fields are present and the
// timezone resolves. Returns ErrInvalidSettings describing the first
// problem found.
func (s *Settings) Validate() error {
	required := []struct {
		name, value string
	}{
		{"refresh_token", s.RefreshToken},
		{"token_uri", s.TokenURI},
		{"client_id", s.ClientID},
		{"client_secret", s.ClientSecret},
		{"sender_filter", s.SenderFilter},
	}
	for _, f := range required {
		if f.value == "" {
			return fmt.Errorf("%w: missing %s", ErrInvalidSettings, f.name)
		}
	}
	if _, err := time.LoadLocation(s.Timezone); err != nil {
		return fmt.Errorf("%w: timezone %q: %v", ErrInvalidSettings, s.Timezone, err)
	}
	return nil
}

// Location resolves the configured timezone. Validate must have
// succeeded first.
func (s *Settings) Location() (*time.Location, error) {
	return time.LoadLocation(s.Timezone)
}
