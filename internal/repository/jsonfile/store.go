// Package jsonfile stores tasks as a JSON array in a single file.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"todo-tracker/internal/domain"
	apperrors "todo-tracker/internal/errors"
	"todo-tracker/internal/logging"
	"todo-tracker/internal/repository"
)

const filePerm = 0o644

// ErrLocked is returned by Open when another process holds the task file.
var ErrLocked = errors.New("task file is in use by another td process")

// Store is a repository.Storage backed by one JSON file. It holds an
// exclusive lock on path+".lock" until Close.
type Store struct {
	path string
	lock *flock.Flock
}

var _ repository.Storage = (*Store)(nil)

// Open locks the task file, creating it with an empty array when missing.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, apperrors.NewStorageError("create data directory", err)
	}

	lock := flock.New(path + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return nil, apperrors.NewStorageError("lock task file", err)
	}
	if !locked {
		return nil, apperrors.NewStorageError("lock task file", ErrLocked)
	}

	s := &Store{path: path, lock: lock}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := atomicWrite(path, []byte("[]\n")); err != nil {
			_ = lock.Unlock()
			return nil, apperrors.NewStorageError("create task file", err)
		}
		logging.Debugf("created task file %s", path)
	}
	return s, nil
}

// Path returns the task file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads and validates the whole file.
func (s *Store) Load(ctx context.Context) ([]domain.Task, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, apperrors.NewStorageError("read task file", err)
	}
	if err := validateDocument(data); err != nil {
		return nil, apperrors.NewStorageError("validate task file", err)
	}

	var records []repository.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, apperrors.NewStorageError("decode task file", err)
	}

	tasks := make([]domain.Task, 0, len(records))
	for _, r := range records {
		task, err := r.Task()
		if err != nil {
			return nil, apperrors.NewStorageError("decode task file", err)
		}
		tasks = append(tasks, task)
	}
	logging.Debugf("loaded %d tasks from %s", len(tasks), s.path)
	return tasks, nil
}

// Save replaces the file content with tasks, in the order given.
func (s *Store) Save(ctx context.Context, tasks []domain.Task) error {
	if err := ctx.Err(); err != nil {
		return apperrors.NewStorageError("save tasks", err)
	}
	data, err := json.MarshalIndent(repository.ToRecords(tasks), "", "  ")
	if err != nil {
		return apperrors.NewStorageError("encode tasks", err)
	}
	if err := atomicWrite(s.path, append(data, '\n')); err != nil {
		return apperrors.NewStorageError("write task file", err)
	}
	logging.Debugf("saved %d tasks to %s", len(tasks), s.path)
	return nil
}

// Close releases the file lock.
func (s *Store) Close() error {
	return s.lock.Unlock()
}

// atomicWrite writes data to a temp file, syncs it and renames it over path.
func atomicWrite(path string, data []byte) error {
	tmpPath := path + ".tmp"
	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write data: %w", err)
	}

	if err := f.Sync(); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("sync file: %w", err)
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename file: %w", err)
	}
	return nil
}
