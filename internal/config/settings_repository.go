package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"

	"todo-tracker/internal/logging"
)

// SettingsRepository owns the settings file. Update is the only way to change
// settings, so every change is written to disk straight away.
type SettingsRepository struct {
	path     string
	settings Settings
}

// NewSettingsRepository returns a repository for the file at path holding
// default settings until LoadOrCreate is called.
func NewSettingsRepository(path string) *SettingsRepository {
	return &SettingsRepository{path: path, settings: DefaultSettings()}
}

// Path returns the settings file location.
func (r *SettingsRepository) Path() string {
	return r.path
}

// LoadOrCreate reads the settings file, writing the defaults first when it
// does not exist. Keys missing from the file keep their default values.
func (r *SettingsRepository) LoadOrCreate() (Settings, error) {
	settings := DefaultSettings()

	if _, err := os.Stat(r.path); errors.Is(err, os.ErrNotExist) {
		if err := write(r.path, settings); err != nil {
			return settings, err
		}
		logging.Debugf("created settings file %s", r.path)
		r.settings = settings
		return settings, nil
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		return settings, fmt.Errorf("read settings: %w", err)
	}
	if err := toml.Unmarshal(data, &settings); err != nil {
		return DefaultSettings(), fmt.Errorf("parse settings %s: %w", r.path, err)
	}
	if err := settings.Validate(); err != nil {
		return DefaultSettings(), err
	}

	r.settings = settings
	return settings, nil
}

// Get returns the current settings.
func (r *SettingsRepository) Get() Settings {
	return r.settings
}

// Update applies fn to a copy of the settings and persists the result. The
// in-memory settings only change when the write succeeds.
func (r *SettingsRepository) Update(fn func(*Settings)) error {
	next := r.settings
	fn(&next)
	if err := next.Validate(); err != nil {
		return err
	}
	if err := write(r.path, next); err != nil {
		return err
	}
	r.settings = next
	logging.Debugf("updated settings file %s", r.path)
	return nil
}

// Reset restores and persists the default settings.
func (r *SettingsRepository) Reset() error {
	return r.Update(func(s *Settings) {
		*s = DefaultSettings()
	})
}

// Marshal renders the current settings as TOML.
func (r *SettingsRepository) Marshal() ([]byte, error) {
	return MarshalSettings(r.settings)
}

// MarshalSettings renders settings as TOML, the settings file format.
func MarshalSettings(settings Settings) ([]byte, error) {
	return toml.Marshal(settings)
}

func write(path string, settings Settings) error {
	data, err := MarshalSettings(settings)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create settings directory: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
