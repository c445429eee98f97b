package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/shiftsync/internal/core/domain"
	"github.com/custodia-labs/shiftsync/internal/core/ports/driven"
)

// Ensure SettingsStore implements the interface.
var _ driven.SettingsStore = (*SettingsStore)(nil)

// SettingsStore loads sync settings from a TOML file.
type SettingsStore struct {
	filePath string
}

// NewSettingsStore creates a store reading from filePath. If filePath
// is empty, defaults to ~/.shiftsync/config.toml.
func NewSettingsStore(filePath string) (*SettingsStore, error) {
	if filePath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		filePath = filepath.Join(home, ".shiftsync", "config.toml")
	}
	return &SettingsStore{filePath: filePath}, nil
}

// Load reads, defaults and validates the settings. A missing or
// malformed file is fatal: the run must abort before any network work.
func (s *SettingsStore) Load() (*domain.Settings, error) {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return nil, fmt.Errorf("read settings %s: %w", s.filePath, err)
	}

	var settings domain.Settings
	if err := toml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parse settings %s: %w", s.filePath, err)
	}

	settings.ApplyDefaults()
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("settings %s: %w", s.filePath, err)
	}
	return &settings, nil
}

// Path returns the settings file path.
func (s *SettingsStore) Path() string {
	return s.filePath
}
