package config

import (
	"fmt"

	"todo-tracker/internal/repository"
	"todo-tracker/internal/repository/jsonfile"
	"todo-tracker/internal/repository/sqlite"
)

// CreateStorage opens the storage backend selected by the configuration
func CreateStorage(config *Config) (repository.Storage, error) {
	if err := config.EnsureDataDir(); err != nil {
		return nil, err
	}

	switch config.Storage.Backend {
	case StorageSQLite:
		repo, err := sqlite.NewWithOptions(config.GetDatabasePath(), sqlite.Options{
			QueryTimeout: config.GetQueryTimeout(),
			WriteTimeout: config.GetWriteTimeout(),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		return repo, nil
	case StorageJSON:
		store, err := jsonfile.Open(config.GetJSONPath())
		if err != nil {
			return nil, fmt.Errorf("failed to open task file: %w", err)
		}
		return store, nil
	default:
		return nil, &ConfigError{Field: "storage.backend", Message: fmt.Sprintf("unknown storage %q", config.Storage.Backend)}
	}
}

// CreateTestStorage creates an in-memory SQLite storage for testing
func CreateTestStorage() (repository.Storage, error) {
	repo, err := sqlite.New(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize test database: %w", err)
	}
	return repo, nil
}
