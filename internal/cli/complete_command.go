package cli

import (
	"context"

	"todo-tracker/internal/services"
)

// CompleteCommand handles the complete command
type CompleteCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewCompleteCommand creates a new complete command handler
func NewCompleteCommand(app *App) *CompleteCommand {
	return &CompleteCommand{app: app, errorHandler: NewErrorHandler()}
}

// Execute applies status to the task with id and prints the result,
// including the next occurrence of a recurring task.
func (c *CompleteCommand) Execute(ctx context.Context, id int64, status, format string) error {
	printer, err := c.app.printer(format)
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	result, err := c.app.service.SetCompletion(ctx, id, services.CompletionStatus(status))
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	return printer.Completion(result.Task, result.Successor)
}
