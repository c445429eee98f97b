// Package services contains the core sync logic: the Reconciler that
// maps one shift onto the event store exactly once, and the
// SyncService that drives a bounded window of recent notifications
// through parse and reconciliation.
package services
