package logging

import (
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"
)

// Options configures a logger built by New.
type Options struct {
	Level           log.Level
	Formatter       log.Formatter
	ReportTimestamp bool
	Prefix          string
}

// DefaultOptions returns text output at info level, prefixed with "td".
func DefaultOptions() Options {
	return Options{
		Level:     log.InfoLevel,
		Formatter: log.TextFormatter,
		Prefix:    "td",
	}
}

var (
	mu     sync.Mutex
	logger *log.Logger
)

// New creates a charmbracelet logger writing to w.
func New(w io.Writer, opts Options) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           opts.Level,
		Formatter:       opts.Formatter,
		ReportTimestamp: opts.ReportTimestamp,
		Prefix:          opts.Prefix,
	})
}

// Logger returns the process wide logger, writing to stderr by default.
// Its level follows DebugEnabled.
func Logger() *log.Logger {
	mu.Lock()
	defer mu.Unlock()

	if logger == nil {
		logger = New(os.Stderr, DefaultOptions())
	}
	if DebugEnabled() {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.InfoLevel)
	}
	return logger
}

// SetLogger replaces the process wide logger. Passing nil restores the default.
func SetLogger(l *log.Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

// SetOutput redirects the process wide logger.
func SetOutput(w io.Writer) {
	SetLogger(New(w, DefaultOptions()))
}
