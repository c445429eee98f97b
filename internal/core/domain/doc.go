// Package domain contains the core business types for shiftsync:
// shifts parsed from schedule notification emails, the fingerprint
// identity that makes calendar synchronisation idempotent, and the
// outcome types reported by a sync run.
//
// Domain types have no dependencies on adapters or external services.
package domain
