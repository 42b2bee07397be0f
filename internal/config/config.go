package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Storage backends understood by CreateStorage.
const (
	StorageJSON   = "json"
	StorageSQLite = "sqlite"
)

// Config holds all configuration options for the task tracker
type Config struct {
	Storage     StorageConfig
	Settings    SettingsConfig
	Validation  ValidationConfig
	Application ApplicationConfig
	Commands    CommandsConfig
}

// StorageConfig holds storage-related configuration
type StorageConfig struct {
	Dir            string        `env:"TD_DATA_DIR"`
	Backend        string        `env:"TD_STORAGE"`
	JSONFilename   string        `env:"TD_JSON_FILENAME"`
	DBFilename     string        `env:"TD_DB_FILENAME"`
	QueryTimeout   time.Duration `env:"TD_DB_QUERY_TIMEOUT"`
	WriteTimeout   time.Duration `env:"TD_DB_WRITE_TIMEOUT"`
	DirPermissions uint32        `env:"TD_DATA_DIR_PERMISSIONS"`
}

// SettingsConfig locates the persisted UI settings
type SettingsConfig struct {
	Filename string `env:"TD_SETTINGS_FILE"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	TaskNameMinLength int `env:"TD_VALIDATION_TASK_NAME_MIN"`
	TaskNameMaxLength int `env:"TD_VALIDATION_TASK_NAME_MAX"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"TD_APP_TIMEOUT"`
	Verbose bool          `env:"TD_APP_VERBOSE"`
}

// CommandsConfig holds command-specific defaults
type CommandsConfig struct {
	ListDefaultFormat string `env:"TD_LIST_DEFAULT_FORMAT"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDir := filepath.Join(homeDir, ".config", "td")

	return &Config{
		Storage: StorageConfig{
			Dir:            defaultDir,
			Backend:        StorageJSON,
			JSONFilename:   "tasks.json",
			DBFilename:     "td.db",
			QueryTimeout:   10 * time.Second,
			WriteTimeout:   5 * time.Second,
			DirPermissions: 0755,
		},
		Settings: SettingsConfig{
			Filename: "settings.toml",
		},
		Validation: ValidationConfig{
			TaskNameMinLength: 1,
			TaskNameMaxLength: 255,
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
		},
		Commands: CommandsConfig{
			ListDefaultFormat: "plain",
		},
	}
}

// GetJSONPath returns the full path to the JSON task file
func (c *Config) GetJSONPath() string {
	return filepath.Join(c.Storage.Dir, c.Storage.JSONFilename)
}

// GetDatabasePath returns the full path to the SQLite database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Storage.Dir, c.Storage.DBFilename)
}

// GetSettingsPath returns the settings file path. Absolute filenames are used as is.
func (c *Config) GetSettingsPath() string {
	if filepath.IsAbs(c.Settings.Filename) {
		return c.Settings.Filename
	}
	return filepath.Join(c.Storage.Dir, c.Settings.Filename)
}

// GetQueryTimeout returns the database query timeout
func (c *Config) GetQueryTimeout() time.Duration {
	return c.Storage.QueryTimeout
}

// GetWriteTimeout returns the database write timeout
func (c *Config) GetWriteTimeout() time.Duration {
	return c.Storage.WriteTimeout
}

// LoadFromEnvironment reads the TD_* variables. Invalid values keep the
// current setting.
func (c *Config) LoadFromEnvironment() error {
	envValue("TD_DATA_DIR", &c.Storage.Dir, parseString)
	envValue("TD_STORAGE", &c.Storage.Backend, parseString)
	envValue("TD_JSON_FILENAME", &c.Storage.JSONFilename, parseString)
	envValue("TD_DB_FILENAME", &c.Storage.DBFilename, parseString)
	envValue("TD_DB_QUERY_TIMEOUT", &c.Storage.QueryTimeout, time.ParseDuration)
	envValue("TD_DB_WRITE_TIMEOUT", &c.Storage.WriteTimeout, time.ParseDuration)
	envValue("TD_DATA_DIR_PERMISSIONS", &c.Storage.DirPermissions, parseFileMode)

	envValue("TD_SETTINGS_FILE", &c.Settings.Filename, parseString)

	envValue("TD_VALIDATION_TASK_NAME_MIN", &c.Validation.TaskNameMinLength, strconv.Atoi)
	envValue("TD_VALIDATION_TASK_NAME_MAX", &c.Validation.TaskNameMaxLength, strconv.Atoi)

	envValue("TD_APP_TIMEOUT", &c.Application.Timeout, time.ParseDuration)
	envValue("TD_APP_VERBOSE", &c.Application.Verbose, strconv.ParseBool)

	envValue("TD_LIST_DEFAULT_FORMAT", &c.Commands.ListDefaultFormat, parseString)
	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Storage.Dir == "" {
		return &ConfigError{Field: "storage.dir", Message: "data directory cannot be empty"}
	}
	switch c.Storage.Backend {
	case StorageJSON:
		if c.Storage.JSONFilename == "" {
			return &ConfigError{Field: "storage.json_filename", Message: "task file name cannot be empty"}
		}
	case StorageSQLite:
		if c.Storage.DBFilename == "" {
			return &ConfigError{Field: "storage.db_filename", Message: "database filename cannot be empty"}
		}
	default:
		return &ConfigError{Field: "storage.backend", Message: "storage must be one of: json, sqlite"}
	}
	if c.Storage.QueryTimeout <= 0 {
		return &ConfigError{Field: "storage.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Storage.WriteTimeout <= 0 {
		return &ConfigError{Field: "storage.write_timeout", Message: "write timeout must be positive"}
	}

	if c.Settings.Filename == "" {
		return &ConfigError{Field: "settings.filename", Message: "settings filename cannot be empty"}
	}

	if c.Validation.TaskNameMinLength < 1 {
		return &ConfigError{Field: "validation.task_name_min_length", Message: "task name minimum length must be at least 1"}
	}
	if c.Validation.TaskNameMaxLength < c.Validation.TaskNameMinLength {
		return &ConfigError{Field: "validation.task_name_max_length", Message: "task name maximum length must be greater than minimum length"}
	}

	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	switch c.Commands.ListDefaultFormat {
	case "plain", "json":
	default:
		return &ConfigError{Field: "commands.list_default_format", Message: "list format must be one of: plain, json"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
