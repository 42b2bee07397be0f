package cli

import (
	"context"
	"strings"

	"todo-tracker/internal/form"
)

// AddOptions are the add command's flags and arguments.
type AddOptions struct {
	Name        string
	Date        string
	Repeats     string
	Group       string
	Description string
	URL         string
	Format      string
}

// AddCommand handles the add command
type AddCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{app: app, errorHandler: NewErrorHandler()}
}

// Execute creates the task and prints it
func (c *AddCommand) Execute(ctx context.Context, opts AddOptions) error {
	printer, err := c.app.printer(opts.Format)
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	task, err := c.app.service.CreateTask(ctx, form.TaskForm{
		Name:        strings.TrimSpace(opts.Name),
		Date:        opts.Date,
		Repeats:     opts.Repeats,
		Group:       opts.Group,
		Description: opts.Description,
		URL:         opts.URL,
	})
	if err != nil {
		return c.errorHandler.Handle("add task", err)
	}

	return printer.Task(task)
}
