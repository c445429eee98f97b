package calendar

import (
	"time"

	"google.golang.org/api/calendar/v3"

	"github.com/custodia-labs/shiftsync/internal/core/domain"
)

// toAPIEvent converts a domain event to the Calendar API shape.
func toAPIEvent(event *domain.CalendarEvent) *calendar.Event {
	apiEvent := &calendar.Event{
		Summary: event.Title,
		Start: &calendar.EventDateTime{
			DateTime: event.Start.Format(time.RFC3339),
			TimeZone: event.Start.Location().String(),
		},
		End: &calendar.EventDateTime{
			DateTime: event.End.Format(time.RFC3339),
			TimeZone: event.End.Location().String(),
		},
		Reminders: &calendar.EventReminders{
			UseDefault: event.UseDefaultReminders,
			// UseDefault is a bool; force it onto the wire even when
			// false so the API does not treat it as unset.
			ForceSendFields: []string{"UseDefault"},
		},
	}

	if event.ColorID != "" {
		apiEvent.ColorId = event.ColorID
	}
	if event.Fingerprint != "" {
		apiEvent.ExtendedProperties = &calendar.EventExtendedProperties{
			Private: map[string]string{
				domain.FingerprintKey: event.Fingerprint,
			},
		}
	}
	return apiEvent
}

// fromAPIEvent converts an API event to the domain shape. All-day
// events carry a Date instead of a DateTime and are not comparable to
// shift intervals, so they are reported as not convertible.
func fromAPIEvent(apiEvent *calendar.Event) (domain.CalendarEvent, bool) {
	if apiEvent == nil || apiEvent.Start == nil || apiEvent.End == nil {
		return domain.CalendarEvent{}, false
	}
	if apiEvent.Start.DateTime == "" || apiEvent.End.DateTime == "" {
		return domain.CalendarEvent{}, false
	}

	start, err := time.Parse(time.RFC3339, apiEvent.Start.DateTime)
	if err != nil {
		return domain.CalendarEvent{}, false
	}
	end, err := time.Parse(time.RFC3339, apiEvent.End.DateTime)
	if err != nil {
		return domain.CalendarEvent{}, false
	}

	event := domain.CalendarEvent{
		ID:      apiEvent.Id,
		Title:   apiEvent.Summary,
		Start:   start,
		End:     end,
		ColorID: apiEvent.ColorId,
	}
	if apiEvent.ExtendedProperties != nil {
		event.Fingerprint = apiEvent.ExtendedProperties.Private[domain.FingerprintKey]
	}
	if apiEvent.Reminders != nil {
		event.UseDefaultReminders = apiEvent.Reminders.UseDefault
	}
	return event, true
}
