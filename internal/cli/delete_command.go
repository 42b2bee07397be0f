package cli

import (
	"context"
)

// DeleteCommand handles the delete command
type DeleteCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{app: app, errorHandler: NewErrorHandler()}
}

// Execute deletes the task with id. A missing id prints
// "Task with id N not found" and fails.
func (c *DeleteCommand) Execute(ctx context.Context, id int64, format string) error {
	printer, err := c.app.printer(format)
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	task, err := c.app.service.DeleteTask(ctx, id)
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	return printer.Deleted(task)
}
