package driven

import "github.com/custodia-labs/shiftsync/internal/core/domain"

// SettingsStore loads the configuration payload. Missing or unreadable
// settings are fatal to the run before any network work.
type SettingsStore interface {
	Load() (*domain.Settings, error)
}
