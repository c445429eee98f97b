// Package calendar implements the EventStore port on top of the
// Google Calendar API. Shift fingerprints live in each event's private
// extended properties, which the API can filter on server-side.
package calendar
