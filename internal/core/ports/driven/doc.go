// Package driven defines the interfaces the core depends on:
// the notification message source, the calendar event store, the
// schedule parser, and local persistence. Adapters under
// internal/connectors and internal/adapters/driven implement them.
package driven
