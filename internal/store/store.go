// Package store holds the authoritative task collection. It assigns ids and
// writes the whole collection to storage after every change.
package store

import (
	"context"

	"todo-tracker/internal/domain"
	apperrors "todo-tracker/internal/errors"
	"todo-tracker/internal/logging"
	"todo-tracker/internal/query"
	"todo-tracker/internal/repository"
)

// Store is not safe for concurrent use; one process owns one store.
type Store struct {
	storage   repository.Storage
	tasks     map[int64]domain.Task
	currentID int64
}

// Open loads every task from storage. Tasks without an id get one after the
// highest stored id, and duplicate ids are rejected.
func Open(ctx context.Context, storage repository.Storage) (*Store, error) {
	loaded, err := storage.Load(ctx)
	if err != nil {
		if apperrors.IsStorage(err) {
			return nil, err
		}
		return nil, apperrors.NewStorageError("load tasks", err)
	}

	s := &Store{
		storage: storage,
		tasks:   make(map[int64]domain.Task, len(loaded)),
	}

	var unassigned []domain.Task
	for _, t := range loaded {
		if !t.HasID() {
			unassigned = append(unassigned, t)
			continue
		}
		if _, dup := s.tasks[t.ID]; dup {
			return nil, apperrors.NewStorageError("load tasks", apperrors.NewInvalidInputError("id", t.ID, "duplicate task id"))
		}
		s.tasks[t.ID] = t
		if t.ID > s.currentID {
			s.currentID = t.ID
		}
	}
	for _, t := range unassigned {
		s.currentID++
		t.ID = s.currentID
		s.tasks[t.ID] = t
	}

	logging.Debugf("store opened with %d tasks, current id %d", len(s.tasks), s.currentID)
	return s, nil
}

// Add stores task under a fresh id and persists. Any id on task is ignored.
func (s *Store) Add(ctx context.Context, task domain.Task) (int64, error) {
	id := s.insert(task)
	if err := s.persist(ctx); err != nil {
		return 0, err
	}
	logging.Debugf("added task %d %q", id, task.Name)
	return id, nil
}

func (s *Store) insert(task domain.Task) int64 {
	s.currentID++
	task.ID = s.currentID
	s.tasks[task.ID] = task.Clone()
	return task.ID
}

// Get returns a copy of the task with id.
func (s *Store) Get(id int64) (domain.Task, bool) {
	t, ok := s.tasks[id]
	if !ok {
		return domain.Task{}, false
	}
	return t.Clone(), true
}

// Delete removes a task and persists. A missing id returns a not found error
// without touching storage.
func (s *Store) Delete(ctx context.Context, id int64) (int64, error) {
	if _, ok := s.tasks[id]; !ok {
		return 0, apperrors.NewTaskNotFoundError(id)
	}
	delete(s.tasks, id)
	if err := s.persist(ctx); err != nil {
		return 0, err
	}
	logging.Debugf("deleted task %d", id)
	return id, nil
}

// SetComplete marks a task complete or incomplete and persists. Completing a
// recurring task keeps it and adds its successor under a new id, which is
// returned; otherwise the task's own id is returned.
func (s *Store) SetComplete(ctx context.Context, id int64, complete bool) (int64, error) {
	task, ok := s.tasks[id]
	if !ok {
		return 0, apperrors.NewTaskNotFoundError(id)
	}

	current := id
	if complete {
		successor, ok := task.MarkComplete()
		s.tasks[id] = task
		if ok {
			current = s.insert(successor)
			logging.Debugf("task %d recurs as task %d on %s", id, current, successor.Date.Format(repository.DateLayout))
		}
	} else {
		task.MarkIncomplete()
		s.tasks[id] = task
	}

	if err := s.persist(ctx); err != nil {
		return 0, err
	}
	return current, nil
}

// ToggleComplete flips a task's completion state, see SetComplete.
func (s *Store) ToggleComplete(ctx context.Context, id int64) (int64, error) {
	task, ok := s.tasks[id]
	if !ok {
		return 0, apperrors.NewTaskNotFoundError(id)
	}
	return s.SetComplete(ctx, id, !task.Complete)
}

// Update replaces an existing task, keeping its id, and persists.
func (s *Store) Update(ctx context.Context, task domain.Task) error {
	if _, ok := s.tasks[task.ID]; !ok {
		return apperrors.NewTaskNotFoundError(task.ID)
	}
	s.tasks[task.ID] = task.Clone()
	if err := s.persist(ctx); err != nil {
		return err
	}
	logging.Debugf("updated task %d", task.ID)
	return nil
}

// Tasks returns copies of all tasks sorted by date, then id.
func (s *Store) Tasks() []domain.Task {
	tasks := make([]domain.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		tasks = append(tasks, t.Clone())
	}
	query.SortByDate(tasks)
	return tasks
}

// Len returns the number of stored tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// CurrentID returns the highest id handed out so far.
func (s *Store) CurrentID() int64 {
	return s.currentID
}

// Close releases the underlying storage.
func (s *Store) Close() error {
	return s.storage.Close()
}

func (s *Store) persist(ctx context.Context) error {
	if err := s.storage.Save(ctx, s.Tasks()); err != nil {
		if apperrors.IsStorage(err) {
			return err
		}
		return apperrors.NewStorageError("save tasks", err)
	}
	return nil
}
