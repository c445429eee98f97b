package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/calendar/v3"

	"github.com/custodia-labs/shiftsync/internal/core/domain"
)

func TestToAPIEvent(t *testing.T) {
	loc, err := time.LoadLocation("America/Toronto")
	require.NoError(t, err)

	event := &domain.CalendarEvent{
		Title:               "Work",
		Start:               time.Date(2024, 10, 7, 9, 0, 0, 0, loc),
		End:                 time.Date(2024, 10, 7, 17, 0, 0, 0, loc),
		Fingerprint:         "abcdef123456",
		ColorID:             "5",
		UseDefaultReminders: true,
	}

	apiEvent := toAPIEvent(event)

	assert.Equal(t, "Work", apiEvent.Summary)
	assert.Equal(t, "2024-10-07T09:00:00-04:00", apiEvent.Start.DateTime)
	assert.Equal(t, "America/Toronto", apiEvent.Start.TimeZone)
	assert.Equal(t, "2024-10-07T17:00:00-04:00", apiEvent.End.DateTime)
	assert.Equal(t, "5", apiEvent.ColorId)
	require.NotNil(t, apiEvent.ExtendedProperties)
	assert.Equal(t, "abcdef123456", apiEvent.ExtendedProperties.Private[domain.FingerprintKey])
	require.NotNil(t, apiEvent.Reminders)
	assert.True(t, apiEvent.Reminders.UseDefault)
	assert.Contains(t, apiEvent.Reminders.ForceSendFields, "UseDefault")
}

func TestToAPIEvent_OptionalFieldsOmitted(t *testing.T) {
	event := &domain.CalendarEvent{
		Title: "Work",
		Start: time.Date(2024, 10, 7, 9, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 10, 7, 17, 0, 0, 0, time.UTC),
	}

	apiEvent := toAPIEvent(event)
	assert.Empty(t, apiEvent.ColorId)
	assert.Nil(t, apiEvent.ExtendedProperties)
}

func TestFromAPIEvent(t *testing.T) {
	apiEvent := &calendar.Event{
		Id:      "ev-1",
		Summary: "Work - swap",
		Start:   &calendar.EventDateTime{DateTime: "2024-10-07T12:00:00-04:00"},
		End:     &calendar.EventDateTime{DateTime: "2024-10-07T20:00:00-04:00"},
		ColorId: "7",
		ExtendedProperties: &calendar.EventExtendedProperties{
			Private: map[string]string{domain.FingerprintKey: "deadbeef0123"},
		},
	}

	event, ok := fromAPIEvent(apiEvent)
	require.True(t, ok)
	assert.Equal(t, "ev-1", event.ID)
	assert.Equal(t, "Work - swap", event.Title)
	assert.Equal(t, "deadbeef0123", event.Fingerprint)
	assert.Equal(t, "7", event.ColorID)
	assert.True(t, event.Start.Equal(time.Date(2024, 10, 7, 16, 0, 0, 0, time.UTC)))
	assert.True(t, event.End.Equal(time.Date(2024, 10, 8, 0, 0, 0, 0, time.UTC)))
}

func TestFromAPIEvent_NoFingerprint(t *testing.T) {
	apiEvent := &calendar.Event{
		Id:    "ev-2",
		Start: &calendar.EventDateTime{DateTime: "2024-10-07T12:00:00-04:00"},
		End:   &calendar.EventDateTime{DateTime: "2024-10-07T20:00:00-04:00"},
	}

	event, ok := fromAPIEvent(apiEvent)
	require.True(t, ok)
	assert.Empty(t, event.Fingerprint)
}

func TestFromAPIEvent_AllDayEventNotConvertible(t *testing.T) {
	apiEvent := &calendar.Event{
		Id:    "ev-3",
		Start: &calendar.EventDateTime{Date: "2024-10-07"},
		End:   &calendar.EventDateTime{Date: "2024-10-08"},
	}

	_, ok := fromAPIEvent(apiEvent)
	assert.False(t, ok)
}

func TestFromAPIEvent_Malformed(t *testing.T) {
	_, ok := fromAPIEvent(nil)
	assert.False(t, ok)

	_, ok = fromAPIEvent(&calendar.Event{})
	assert.False(t, ok)

	_, ok = fromAPIEvent(&calendar.Event{
		Start: &calendar.EventDateTime{DateTime: "not a time"},
		End:   &calendar.EventDateTime{DateTime: "2024-10-07T20:00:00-04:00"},
	})
	assert.False(t, ok)
}
