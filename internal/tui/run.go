package tui

import (
	"context"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"todo-tracker/internal/logging"
	"todo-tracker/internal/services"
)

// debugLogFile receives log output while the alt screen owns the terminal.
var debugLogFile = filepath.Join(os.TempDir(), "td-debug.log")

// Run starts the full screen interface and blocks until it exits. A storage
// failure inside the interface is returned as the error.
func Run(ctx context.Context, service services.TaskService) error {
	restore := redirectLogs()
	defer restore()

	program := tea.NewProgram(New(ctx, service), tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := program.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok && m.fatal != nil {
		return m.fatal
	}
	return nil
}

// redirectLogs sends logging to debugLogFile in debug mode and discards it
// otherwise. The returned func restores stderr logging.
func redirectLogs() func() {
	var w io.Writer = io.Discard
	var f *os.File
	if logging.DebugEnabled() {
		var err error
		f, err = os.OpenFile(debugLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err == nil {
			w = f
		}
	}
	logging.SetOutput(w)

	return func() {
		logging.SetLogger(nil)
		if f != nil {
			f.Close()
		}
	}
}
