// Package shifttable parses the fixed tabular layout of work-schedule
// notification emails: a "published from X to Y" header carrying the
// reference year, followed by a table with date / time / department /
// job columns and a "day off" sentinel for free days.
//
// Extraction is tolerant by design. The notification format is not
// contractually guaranteed, so malformed rows are skipped silently and
// a body without a matching table yields no shifts rather than an
// error (reminder emails share the sender and subject of real
// publications).
package shifttable
