package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"todo-tracker/internal/config"
	"todo-tracker/internal/domain"
	"todo-tracker/internal/repository"
	"todo-tracker/internal/services"
	"todo-tracker/internal/store"
)

var fixedNow = time.Date(2024, 1, 31, 9, 0, 0, 0, time.Local)

func rentTask() domain.Task {
	return domain.Task{ID: 1, Name: "Pay rent", Date: time.Date(2024, 1, 31, 23, 59, 59, 0, time.Local), Repeats: domain.Monthly(), Group: "Home"}
}

// setupTestService returns a service over in-memory storage with a fixed clock.
func setupTestService(t *testing.T, tasks ...domain.Task) (services.TaskService, *repository.MemoryStorage) {
	t.Helper()

	storage := repository.NewMemoryStorage(tasks...)
	s, err := store.Open(context.Background(), storage)
	require.NoError(t, err)

	settings := config.NewSettingsRepository(filepath.Join(t.TempDir(), "settings.toml"))
	_, err = settings.LoadOrCreate()
	require.NoError(t, err)
	require.NoError(t, settings.Update(func(s *config.Settings) { s.SetCharIcons() }))

	return services.NewTaskService(s, settings, services.WithClock(func() time.Time { return fixedNow })), storage
}

// runCommand executes the root command against service and returns its output.
func runCommand(t *testing.T, service services.TaskService, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	root := NewRootCommand(config.NewConfig(),
		func(context.Context, *config.Config) (services.TaskService, error) { return service, nil },
		func(context.Context, services.TaskService) error { out.WriteString("tui started"); return nil },
	)
	root.SetOutput(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func setupTestApp(t *testing.T, tasks ...domain.Task) (*App, *bytes.Buffer) {
	t.Helper()

	service, _ := setupTestService(t, tasks...)
	var out bytes.Buffer
	return NewApp(service, config.NewConfig()).WithOutput(&out), &out
}
