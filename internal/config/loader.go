package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"todo-tracker/internal/logging"
)

// Loader builds a Config from defaults, the environment and flag overrides,
// in that order.
type Loader struct {
	config *Config
}

func NewLoader() *Loader {
	return &Loader{config: NewConfig()}
}

// Load reads the environment and validates the result.
func (l *Loader) Load() (*Config, error) {
	return l.LoadWithOverrides(nil)
}

// LoadWithOverrides is Load with command line overrides applied last.
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}
	if overrides != nil {
		l.config.ApplyOverrides(overrides)
	}
	if err := l.config.Validate(); err != nil {
		return nil, err
	}
	return l.config, nil
}

// EnsureDataDir creates the data directory with the configured permissions.
func (c *Config) EnsureDataDir() error {
	if err := os.MkdirAll(c.Storage.Dir, os.FileMode(c.Storage.DirPermissions)); err != nil {
		return fmt.Errorf("failed to create data directory %s: %w", c.Storage.Dir, err)
	}
	return nil
}

// ConfigOverrides holds command line flag overrides. Nil fields are left alone.
type ConfigOverrides struct {
	DataDir      *string
	Storage      *string
	DBFilename   *string
	JSONFilename *string
	SettingsFile *string

	TaskNameMaxLength *int

	Timeout *time.Duration
	Verbose *bool

	ListDefaultFormat *string
}

func override[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

// ApplyOverrides copies every set override into the configuration.
func (c *Config) ApplyOverrides(o *ConfigOverrides) {
	override(&c.Storage.Dir, o.DataDir)
	override(&c.Storage.Backend, o.Storage)
	override(&c.Storage.DBFilename, o.DBFilename)
	override(&c.Storage.JSONFilename, o.JSONFilename)
	override(&c.Settings.Filename, o.SettingsFile)
	override(&c.Validation.TaskNameMaxLength, o.TaskNameMaxLength)
	override(&c.Application.Timeout, o.Timeout)
	override(&c.Application.Verbose, o.Verbose)
	override(&c.Commands.ListDefaultFormat, o.ListDefaultFormat)
}

// envValue parses the environment variable key into dst. Unset variables
// leave dst alone; unparsable ones are logged and ignored.
func envValue[T any](key string, dst *T, parse func(string) (T, error)) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return
	}
	v, err := parse(raw)
	if err != nil {
		logging.Logger().Warn("ignoring invalid environment value", "key", key, "value", raw)
		return
	}
	*dst = v
}

func parseString(s string) (string, error) { return s, nil }

func parseFileMode(s string) (uint32, error) {
	u, err := strconv.ParseUint(s, 8, 32)
	return uint32(u), err
}
