package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetLogger(nil)
		SetVerbose(false)
	})
	return &buf
}

func TestDebugEnabled(t *testing.T) {
	tests := []struct {
		name    string
		env     string
		verbose bool
		want    bool
	}{
		{"not set", "", false, false},
		{"set to 1", "1", false, true},
		{"set to true", "true", false, true},
		{"verbose flag", "", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TD_DEBUG", tt.env)
			SetVerbose(tt.verbose)
			defer SetVerbose(false)

			assert.Equal(t, tt.want, DebugEnabled())
		})
	}
}

func TestDebugf(t *testing.T) {
	t.Run("disabled writes nothing", func(t *testing.T) {
		t.Setenv("TD_DEBUG", "")
		buf := captureOutput(t)

		Debugf("saved %d tasks\n", 3)

		assert.Empty(t, buf.String())
	})

	t.Run("enabled writes the message", func(t *testing.T) {
		t.Setenv("TD_DEBUG", "1")
		buf := captureOutput(t)

		Debugf("saved %d tasks\n", 3)

		assert.Contains(t, buf.String(), "saved 3 tasks")
		assert.Contains(t, buf.String(), "td")
	})
}

func TestDebugln(t *testing.T) {
	t.Setenv("TD_DEBUG", "")
	buf := captureOutput(t)
	SetVerbose(true)

	Debugln("loaded", 2, "tasks")

	assert.Contains(t, buf.String(), "loaded 2 tasks")
}

func TestLogger_InfoAlwaysWritten(t *testing.T) {
	t.Setenv("TD_DEBUG", "")
	buf := captureOutput(t)

	Logger().Info("settings reset")
	Logger().Debug("hidden")

	assert.Contains(t, buf.String(), "settings reset")
	assert.NotContains(t, buf.String(), "hidden")
}
