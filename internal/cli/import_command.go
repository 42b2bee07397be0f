package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"todo-tracker/internal/errors"
)

// ImportCommand handles the import command
type ImportCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewImportCommand creates a new import command handler
func NewImportCommand(app *App) *ImportCommand {
	return &ImportCommand{app: app, errorHandler: NewErrorHandler()}
}

// Execute reads a YAML task list from path, or stdin when path is "-".
func (c *ImportCommand) Execute(ctx context.Context, path, format string) error {
	printer, err := c.app.printer(format)
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	var data []byte
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return c.errorHandler.HandleSimple(errors.NewInvalidInputError("file", path, err.Error()))
	}

	tasks, err := c.app.service.ImportYAML(ctx, data)
	if err != nil {
		return c.errorHandler.Handle("import tasks", err)
	}

	if printer.format == FormatJSON {
		return printer.Tasks(tasks)
	}
	_, err = fmt.Fprintf(c.app.out, "Imported %d tasks\n", len(tasks))
	return err
}
