package repository

import (
	"context"
	"sync"

	"todo-tracker/internal/domain"
)

// MemoryStorage keeps the collection in memory. Saves counts calls to Save.
type MemoryStorage struct {
	mu      sync.Mutex
	tasks   []domain.Task
	Saves   int
	SaveErr error
	LoadErr error
}

// NewMemoryStorage returns a storage preloaded with tasks.
func NewMemoryStorage(tasks ...domain.Task) *MemoryStorage {
	return &MemoryStorage{tasks: cloneAll(tasks)}
}

func (m *MemoryStorage) Load(ctx context.Context) ([]domain.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return cloneAll(m.tasks), nil
}

func (m *MemoryStorage) Save(ctx context.Context, tasks []domain.Task) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Saves++
	m.tasks = cloneAll(tasks)
	return nil
}

func (m *MemoryStorage) Close() error {
	return nil
}

// Snapshot returns what was last saved.
func (m *MemoryStorage) Snapshot() []domain.Task {
	m.mu.Lock()
	defer m.mu.Unlock()
	return cloneAll(m.tasks)
}

func cloneAll(tasks []domain.Task) []domain.Task {
	out := make([]domain.Task, len(tasks))
	for i, t := range tasks {
		out[i] = t.Clone()
	}
	return out
}
