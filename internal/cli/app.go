package cli

import (
	"io"
	"os"

	"todo-tracker/internal/config"
	"todo-tracker/internal/services"
)

// App carries what every command handler needs.
type App struct {
	service services.TaskService
	config  *config.Config
	out     io.Writer
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(service services.TaskService, cfg *config.Config) *App {
	return &App{
		service: service,
		config:  cfg,
		out:     os.Stdout,
	}
}

// WithOutput redirects command output, used by tests.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// printer returns an output printer for format, falling back to the
// configured list format.
func (a *App) printer(format string) (*Printer, error) {
	if format == "" && a.config != nil {
		format = a.config.Commands.ListDefaultFormat
	}
	return NewPrinter(a.out, format, a.service.Settings())
}
