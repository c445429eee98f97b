// Package sqlite persists local run history for shiftsync.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite
// implementation that requires no CGO. The run history is strictly
// observational: the sync algorithm only ever reads the calendar, so
// losing this database loses nothing but the `shiftsync history`
// output.
//
// # Schema
//
// The schema is managed through versioned migrations embedded from the
// migrations/ directory.
//
// # Data Location
//
// By default, the database is stored at ~/.shiftsync/data/runs.db
package sqlite
