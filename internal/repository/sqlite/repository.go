// Package sqlite stores tasks in a SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"todo-tracker/internal/domain"
	"todo-tracker/internal/errors"
	"todo-tracker/internal/logging"
	"todo-tracker/internal/repository"
	"todo-tracker/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

const taskColumns = `id, name, date, repeats, description, url, task_group, complete, position`

// Options tunes query deadlines. Zero values disable the deadline.
type Options struct {
	QueryTimeout time.Duration
	WriteTimeout time.Duration
}

// SQLiteRepository implements repository.Storage
type SQLiteRepository struct {
	db   *sql.DB
	opts Options
}

var _ repository.Storage = (*SQLiteRepository)(nil)

// New creates a new SQLite repository instance
func New(dbPath string) (*SQLiteRepository, error) {
	return NewWithOptions(dbPath, Options{})
}

// NewWithOptions opens the database, creating its directory, and runs migrations
func NewWithOptions(dbPath string, opts Options) (*SQLiteRepository, error) {
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, errors.NewStorageError("create data directory", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewStorageError("open database", err)
	}
	// A single connection keeps :memory: databases alive between calls.
	db.SetMaxOpenConns(1)

	if err := migrations.RunMigrations(context.Background(), db); err != nil {
		db.Close()
		return nil, errors.NewStorageError("run migrations", err)
	}

	return &SQLiteRepository{db: db, opts: opts}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// Load returns every task in the order it was last saved
func (r *SQLiteRepository) Load(ctx context.Context) ([]domain.Task, error) {
	ctx, cancel := withTimeout(ctx, r.opts.QueryTimeout)
	defer cancel()

	query := `SELECT ` + taskColumns + ` FROM tasks ORDER BY position ASC, id ASC`
	rows, err := QueryMultiple(ctx, r.db, query, ScanTasks, "tasks")
	if err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		task, err := row.task()
		if err != nil {
			return nil, HandleDatabaseError("decode tasks", err)
		}
		tasks = append(tasks, task)
	}
	logging.Debugf("loaded %d tasks from sqlite", len(tasks))
	return tasks, nil
}

// Save replaces the table content with tasks in one transaction
func (r *SQLiteRepository) Save(ctx context.Context, tasks []domain.Task) error {
	ctx, cancel := withTimeout(ctx, r.opts.WriteTimeout)
	defer cancel()

	err := WithTransaction(ctx, r.db, "save tasks", func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM tasks`); err != nil {
			return err
		}

		stmt, err := tx.PrepareContext(ctx, `INSERT INTO tasks (`+taskColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for i, task := range tasks {
			row := rowFromTask(task, i)
			if _, err := stmt.ExecContext(ctx, row.ID, row.Name, row.Date, row.Repeats,
				row.Description, row.URL, row.Group, row.Complete, row.Position); err != nil {
				return fmt.Errorf("insert task %d: %w", task.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	logging.Debugf("saved %d tasks to sqlite", len(tasks))
	return nil
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
