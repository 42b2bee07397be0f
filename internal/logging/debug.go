package logging

import (
	"fmt"
	"os"
	"strings"
	"sync/atomic"
)

var verbose atomic.Bool

// DebugEnabled returns true if debug mode is enabled via the TD_DEBUG
// environment variable or SetVerbose.
func DebugEnabled() bool {
	return os.Getenv("TD_DEBUG") != "" || verbose.Load()
}

// SetVerbose turns debug output on or off regardless of TD_DEBUG.
func SetVerbose(v bool) {
	verbose.Store(v)
}

// Debugf logs a formatted debug message only if debug mode is enabled
func Debugf(format string, args ...interface{}) {
	if DebugEnabled() {
		Logger().Debug(strings.TrimRight(fmt.Sprintf(format, args...), "\n"))
	}
}

// Debugln logs a debug message only if debug mode is enabled
func Debugln(args ...interface{}) {
	if DebugEnabled() {
		Logger().Debug(strings.TrimRight(fmt.Sprintln(args...), "\n"))
	}
}
