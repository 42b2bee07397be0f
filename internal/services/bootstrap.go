package services

import (
	"context"

	"todo-tracker/internal/config"
	"todo-tracker/internal/errors"
	"todo-tracker/internal/logging"
	"todo-tracker/internal/store"
	"todo-tracker/internal/validation"
)

// Open wires the configured storage backend, the task store and the settings
// file into a TaskService. A storage that cannot be opened or read is fatal.
func Open(ctx context.Context, cfg *config.Config, opts ...Option) (TaskService, error) {
	storage, err := config.CreateStorage(cfg)
	if err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewStorageError("open storage", err)
	}

	s, err := store.Open(ctx, storage)
	if err != nil {
		storage.Close()
		return nil, err
	}

	settings := config.NewSettingsRepository(cfg.GetSettingsPath())
	if _, err := settings.LoadOrCreate(); err != nil {
		storage.Close()
		return nil, errors.WrapError(err, errors.ErrorTypeInvalidInput, "load settings "+settings.Path())
	}

	logging.Debugf("opened %s storage in %s", cfg.Storage.Backend, cfg.Storage.Dir)
	opts = append([]Option{WithValidator(validation.NewTaskValidatorWithConfig(cfg))}, opts...)
	return NewTaskService(s, settings, opts...), nil
}
