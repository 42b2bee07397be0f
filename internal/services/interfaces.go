package services

import (
	"context"

	"todo-tracker/internal/config"
	"todo-tracker/internal/domain"
	"todo-tracker/internal/form"
	"todo-tracker/internal/query"
)

// CompletionStatus selects what SetCompletion does to a task.
type CompletionStatus string

const (
	StatusComplete   CompletionStatus = "complete"
	StatusIncomplete CompletionStatus = "incomplete"
	StatusToggle     CompletionStatus = "toggle"
)

// CompletionResult reports the task that was changed and, when completing a
// recurring task, the successor that was created.
type CompletionResult struct {
	Task      domain.Task
	Successor *domain.Task
}

// TaskService is the single entry point the CLI and TUI use to read and
// change tasks.
type TaskService interface {
	// Task CRUD operations
	CreateTask(ctx context.Context, f form.TaskForm) (domain.Task, error)
	GetTask(id int64) (domain.Task, error)
	UpdateTask(ctx context.Context, f form.TaskForm) (domain.Task, error)
	DeleteTask(ctx context.Context, id int64) (domain.Task, error)

	// Completion
	SetCompletion(ctx context.Context, id int64, status CompletionStatus) (CompletionResult, error)

	// Queries
	ListTasks(opts query.Options) []domain.Task
	ListByDay(opts query.Options) []query.DayGroup
	Groups() []string

	// Bulk import, all or nothing
	ImportYAML(ctx context.Context, data []byte) ([]domain.Task, error)

	// Settings
	Settings() config.Settings
	UpdateSettings(fn func(*config.Settings)) error

	Close() error
}
