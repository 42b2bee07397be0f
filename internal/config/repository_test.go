package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-tracker/internal/domain"
)

func TestCreateStorage(t *testing.T) {
	tests := []struct {
		name     string
		backend  string
		wantFile string
	}{
		{"json backend", StorageJSON, "tasks.json"},
		{"sqlite backend", StorageSQLite, "td.db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			t.Setenv("TD_DATA_DIR", dir)
			t.Setenv("TD_STORAGE", tt.backend)

			cfg, err := NewLoader().Load()
			require.NoError(t, err)

			storage, err := CreateStorage(cfg)
			require.NoError(t, err)
			defer storage.Close()

			task := domain.Task{ID: 1, Name: "Test Task", Date: time.Now(), Repeats: domain.Never()}
			require.NoError(t, storage.Save(context.Background(), []domain.Task{task}))

			tasks, err := storage.Load(context.Background())
			require.NoError(t, err)
			assert.Len(t, tasks, 1)

			_, err = os.Stat(filepath.Join(dir, tt.wantFile))
			assert.NoError(t, err)
		})
	}
}

func TestCreateStorage_UnknownBackend(t *testing.T) {
	cfg := NewConfig()
	cfg.Storage.Backend = "postgres"

	_, err := CreateStorage(cfg)

	var cfgErr *ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestCreateTestStorage(t *testing.T) {
	storage, err := CreateTestStorage()
	require.NoError(t, err)
	defer storage.Close()

	tasks, err := storage.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tasks)
}
