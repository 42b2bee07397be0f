// Package repository defines how the task collection is persisted and the
// record shape shared by the storage backends.
package repository

import (
	"context"

	"todo-tracker/internal/domain"
)

// Storage loads and saves the whole task collection. Save always receives
// every task; backends replace what they hold.
type Storage interface {
	Load(ctx context.Context) ([]domain.Task, error)
	Save(ctx context.Context, tasks []domain.Task) error
	Close() error
}
