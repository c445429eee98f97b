// Package google provides shared plumbing for the Gmail and Calendar
// connectors: API service construction, a refresh-token based
// oauth2.TokenSource, error classification, and per-service rate
// limiting.
package google
