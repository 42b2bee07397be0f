package services

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"todo-tracker/internal/config"
	"todo-tracker/internal/domain"
	"todo-tracker/internal/errors"
	"todo-tracker/internal/form"
	"todo-tracker/internal/importer"
	"todo-tracker/internal/logging"
	"todo-tracker/internal/query"
	"todo-tracker/internal/store"
	"todo-tracker/internal/validation"
)

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	store         *store.Store
	settings      *config.SettingsRepository
	taskValidator *validation.TaskValidator
	now           func() time.Time
}

// Option customises a TaskService.
type Option func(*taskServiceImpl)

// WithClock replaces time.Now, used by tests.
func WithClock(now func() time.Time) Option {
	return func(t *taskServiceImpl) { t.now = now }
}

// WithValidator replaces the default task validator.
func WithValidator(v *validation.TaskValidator) Option {
	return func(t *taskServiceImpl) { t.taskValidator = v }
}

// NewTaskService creates a new TaskService instance
func NewTaskService(s *store.Store, settings *config.SettingsRepository, opts ...Option) TaskService {
	svc := &taskServiceImpl{
		store:         s,
		settings:      settings,
		taskValidator: validation.NewTaskValidator(),
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

func (t *taskServiceImpl) formats() config.DateFormatSettings {
	return t.settings.Get().DateFormats
}

// CreateTask validates the form and stores a new task.
func (t *taskServiceImpl) CreateTask(ctx context.Context, f form.TaskForm) (domain.Task, error) {
	task, err := f.Submit(t.taskValidator, t.formats(), t.now())
	if err != nil {
		return domain.Task{}, err
	}

	id, err := t.store.Add(ctx, task)
	if err != nil {
		return domain.Task{}, err
	}
	return t.GetTask(id)
}

// GetTask retrieves a task by its ID
func (t *taskServiceImpl) GetTask(id int64) (domain.Task, error) {
	if err := t.taskValidator.ValidateTaskID(id); err != nil {
		return domain.Task{}, errors.NewValidationError("invalid task ID", err)
	}

	task, ok := t.store.Get(id)
	if !ok {
		return domain.Task{}, errors.NewTaskNotFoundError(id)
	}
	return task, nil
}

// UpdateTask validates the form and replaces the task with the form's ID.
func (t *taskServiceImpl) UpdateTask(ctx context.Context, f form.TaskForm) (domain.Task, error) {
	if _, err := t.GetTask(f.ID); err != nil {
		return domain.Task{}, err
	}

	task, err := f.Submit(t.taskValidator, t.formats(), t.now())
	if err != nil {
		return domain.Task{}, err
	}

	if err := t.store.Update(ctx, task); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

// DeleteTask removes a task and returns what was deleted.
func (t *taskServiceImpl) DeleteTask(ctx context.Context, id int64) (domain.Task, error) {
	task, err := t.GetTask(id)
	if err != nil {
		return domain.Task{}, err
	}

	if _, err := t.store.Delete(ctx, id); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

// SetCompletion marks, clears or toggles completion.
func (t *taskServiceImpl) SetCompletion(ctx context.Context, id int64, status CompletionStatus) (CompletionResult, error) {
	if _, err := t.GetTask(id); err != nil {
		return CompletionResult{}, err
	}

	var (
		current int64
		err     error
	)
	switch status {
	case StatusComplete:
		current, err = t.store.SetComplete(ctx, id, true)
	case StatusIncomplete:
		current, err = t.store.SetComplete(ctx, id, false)
	case StatusToggle, "":
		current, err = t.store.ToggleComplete(ctx, id)
	default:
		return CompletionResult{}, errors.NewInvalidInputError("status", status,
			fmt.Sprintf("expected %s, %s or %s", StatusComplete, StatusIncomplete, StatusToggle))
	}
	if err != nil {
		return CompletionResult{}, err
	}

	task, _ := t.store.Get(id)
	result := CompletionResult{Task: task}
	if current != id {
		successor, _ := t.store.Get(current)
		result.Successor = &successor
	}
	return result, nil
}

// ListTasks returns the filtered tasks sorted by date.
func (t *taskServiceImpl) ListTasks(opts query.Options) []domain.Task {
	return query.Apply(t.store.Tasks(), opts, t.now())
}

// ListByDay returns the filtered tasks grouped by calendar day.
func (t *taskServiceImpl) ListByDay(opts query.Options) []query.DayGroup {
	return query.GroupByDay(t.ListTasks(opts))
}

// Groups lists every group label in use.
func (t *taskServiceImpl) Groups() []string {
	return query.Groups(t.store.Tasks())
}

// ImportYAML validates every task in the document before adding any of them.
func (t *taskServiceImpl) ImportYAML(ctx context.Context, data []byte) ([]domain.Task, error) {
	input, err := importer.Parse(data)
	if err != nil {
		return nil, err
	}

	tasks, err := importer.Tasks(input, t.taskValidator, t.formats(), t.now())
	if err != nil {
		return nil, err
	}

	added := make([]domain.Task, 0, len(tasks))
	for _, task := range tasks {
		id, err := t.store.Add(ctx, task)
		if err != nil {
			return added, err
		}
		task.ID = id
		added = append(added, task)
	}
	logging.Debugf("imported %d tasks", len(added))
	return added, nil
}

// Settings returns the current settings.
func (t *taskServiceImpl) Settings() config.Settings {
	return t.settings.Get()
}

// UpdateSettings applies fn and persists the settings file.
func (t *taskServiceImpl) UpdateSettings(fn func(*config.Settings)) error {
	if err := t.settings.Update(fn); err != nil {
		var cfgErr *config.ConfigError
		if stderrors.As(err, &cfgErr) {
			return errors.NewValidationError("invalid settings", err)
		}
		return errors.NewStorageError("save settings", err)
	}
	return nil
}

// Close releases the task storage.
func (t *taskServiceImpl) Close() error {
	return t.store.Close()
}
