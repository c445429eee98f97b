package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSettings() Settings {
	return Settings{
		RefreshToken: "refresh",
		TokenURI:     "https://oauth2.googleapis.com/token",
		ClientID:     "client",
		ClientSecret: "secret",
		SenderFilter: "scheduler@example.com",
	}
}

func TestSettings_ApplyDefaults(t *testing.T) {
	s := validSettings()
	s.ApplyDefaults()

	assert.Equal(t, DefaultCalendarID, s.CalendarID)
	assert.Equal(t, DefaultTimezone, s.Timezone)
	assert.Equal(t, DefaultSubject, s.SubjectFilter)
	assert.Equal(t, DefaultEventTitle, s.EventTitle)
	assert.Equal(t, DefaultLookbackDays, s.LookbackDays)
	assert.Equal(t, int64(DefaultMaxMessages), s.MaxMessages)
}

func TestSettings_ApplyDefaults_KeepsExplicitValues(t *testing.T) {
	s := validSettings()
	s.CalendarID = "work@group.calendar.google.com"
	s.Timezone = "Europe/Berlin"
	s.LookbackDays = 30
	s.ApplyDefaults()

	assert.Equal(t, "work@group.calendar.google.com", s.CalendarID)
	assert.Equal(t, "Europe/Berlin", s.Timezone)
	assert.Equal(t, 30, s.LookbackDays)
}

func TestSettings_Validate(t *testing.T) {
	s := validSettings()
	s.ApplyDefaults()
	require.NoError(t, s.Validate())
}

func TestSettings_Validate_MissingRequired(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Settings)
	}{
		{"refresh_token", func(s *Settings) { s.RefreshToken = "" }},
		{"token_uri", func(s *Settings) { s.TokenURI = "" }},
		{"client_id", func(s *Settings) { s.ClientID = "" }},
		{"client_secret", func(s *Settings) { s.ClientSecret = "" }},
		{"sender_filter", func(s *Settings) { s.SenderFilter = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSettings()
			s.ApplyDefaults()
			tt.mutate(&s)

			err := s.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidSettings)
			assert.Contains(t, err.Error(), tt.name)
		})
	}
}

func TestSettings_Validate_BadTimezone(t *testing.T) {
	s := validSettings()
	s.ApplyDefaults()
	s.Timezone = "Mars/Olympus_Mons"

	err := s.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidSettings)
}

func TestSettings_Location(t *testing.T) {
	s := validSettings()
	s.ApplyDefaults()

	loc, err := s.Location()
	require.NoError(t, err)
	assert.Equal(t, "America/Toronto", loc.String())
}
