package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/shiftsync/internal/core/domain"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

const minimalSettings = `
refresh_token = "refresh"
token_uri = "https://oauth2.googleapis.com/token"
client_id = "client"
client_secret = "secret"
sender_filter = "scheduler@example.com"
`

func TestLoad_MinimalWithDefaults(t *testing.T) {
	path := writeSettings(t, minimalSettings)
	store, err := NewSettingsStore(path)
	require.NoError(t, err)

	settings, err := store.Load()
	require.NoError(t, err)

	assert.Equal(t, "refresh", settings.RefreshToken)
	assert.Equal(t, "scheduler@example.com", settings.SenderFilter)
	assert.Equal(t, domain.DefaultCalendarID, settings.CalendarID)
	assert.Equal(t, domain.DefaultTimezone, settings.Timezone)
	assert.Equal(t, domain.DefaultEventTitle, settings.EventTitle)
	assert.Equal(t, domain.DefaultLookbackDays, settings.LookbackDays)
	assert.Equal(t, int64(domain.DefaultMaxMessages), settings.MaxMessages)
}

func TestLoad_FullSettings(t *testing.T) {
	path := writeSettings(t, minimalSettings+`
calendar_id = "work@group.calendar.google.com"
timezone = "Europe/Berlin"
subject_filter = "Dienstplan"
event_title = "Schicht"
event_color_id = "5"
lookback_days = 30
max_messages = 10
`)
	store, err := NewSettingsStore(path)
	require.NoError(t, err)

	settings, err := store.Load()
	require.NoError(t, err)

	assert.Equal(t, "work@group.calendar.google.com", settings.CalendarID)
	assert.Equal(t, "Europe/Berlin", settings.Timezone)
	assert.Equal(t, "Dienstplan", settings.SubjectFilter)
	assert.Equal(t, "Schicht", settings.EventTitle)
	assert.Equal(t, "5", settings.EventColorID)
	assert.Equal(t, 30, settings.LookbackDays)
	assert.Equal(t, int64(10), settings.MaxMessages)
}

func TestLoad_MissingFile(t *testing.T) {
	store, err := NewSettingsStore(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)

	_, err = store.Load()
	require.Error(t, err)
}

func TestLoad_MalformedTOML(t *testing.T) {
	path := writeSettings(t, `refresh_token = [unclosed`)
	store, err := NewSettingsStore(path)
	require.NoError(t, err)

	_, err = store.Load()
	require.Error(t, err)
}

func TestLoad_MissingRequiredField(t *testing.T) {
	path := writeSettings(t, `
refresh_token = "refresh"
token_uri = "https://oauth2.googleapis.com/token"
client_id = "client"
client_secret = "secret"
`)
	store, err := NewSettingsStore(path)
	require.NoError(t, err)

	_, err = store.Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidSettings)
	assert.Contains(t, err.Error(), "sender_filter")
}

func TestPath(t *testing.T) {
	store, err := NewSettingsStore("/tmp/custom.toml")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.toml", store.Path())
}
