package cli

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-tracker/internal/config"
	"todo-tracker/internal/domain"
	"todo-tracker/internal/query"
	"todo-tracker/internal/repository"
)

func TestRootCommand_NoSubcommandStartsTUI(t *testing.T) {
	service, _ := setupTestService(t)

	out, err := runCommand(t, service)

	require.NoError(t, err)
	assert.Equal(t, "tui started", out)
}

func TestAddCommand(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		wantErr     string
		wantOutput  string
		wantRepeats domain.Repeat
	}{
		{
			name:        "joins name arguments",
			args:        []string{"add", "Buy", "milk"},
			wantOutput:  "[ ] 1  Wed Jan 31  Buy milk\n",
			wantRepeats: domain.Never(),
		},
		{
			name:        "recurring with group",
			args:        []string{"add", "Standup", "--date", "01-02-2024 09:30", "--repeats", "mon,fri", "--group", "Work"},
			wantOutput:  "[ ] 1  Thu Feb 1 at 09:30  Standup  (r) Mon,Fri  #Work\n",
			wantRepeats: domain.DaysOf(domain.Monday, domain.Friday),
		},
		{
			name:    "invalid repeat",
			args:    []string{"add", "x", "--repeats", "sometimes"},
			wantErr: "failed to add task",
		},
		{
			name:    "invalid date",
			args:    []string{"add", "x", "--date", "2024/01/31"},
			wantErr: "DD-MM-YYYY",
		},
		{
			name:    "blank name",
			args:    []string{"add", "  "},
			wantErr: "name is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, storage := setupTestService(t)

			out, err := runCommand(t, service, tt.args...)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Zero(t, storage.Saves)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOutput, out)
			saved := storage.Snapshot()
			require.Len(t, saved, 1)
			assert.True(t, tt.wantRepeats.Equal(saved[0].Repeats))
		})
	}
}

func TestAddCommand_JSONUsesRecordShape(t *testing.T) {
	service, _ := setupTestService(t)

	out, err := runCommand(t, service, "add", "Pay rent", "--date", "31-01-2024", "--repeats", "monthly", "--format", "json")

	require.NoError(t, err)
	var record repository.Record
	require.NoError(t, json.Unmarshal([]byte(out), &record))
	assert.Equal(t, int64(1), record.ID)
	assert.Equal(t, "2024-01-31T23:59:59", record.Date)
	assert.True(t, domain.Monthly().Equal(record.Repeats))
	assert.Nil(t, record.Group)
}

func TestDeleteCommand(t *testing.T) {
	t.Run("deletes existing task", func(t *testing.T) {
		service, storage := setupTestService(t, rentTask())

		out, err := runCommand(t, service, "rm", "--id", "1")

		require.NoError(t, err)
		assert.Equal(t, "Deleted task 1: Pay rent\n", out)
		assert.Empty(t, storage.Snapshot())
	})

	t.Run("missing id fails with not found message", func(t *testing.T) {
		service, storage := setupTestService(t, rentTask())

		_, err := runCommand(t, service, "delete", "--id", "42")

		require.Error(t, err)
		assert.Equal(t, "Task with id 42 not found", err.Error())
		assert.Zero(t, storage.Saves)
	})

	t.Run("id is required", func(t *testing.T) {
		service, _ := setupTestService(t)

		_, err := runCommand(t, service, "rm")

		assert.Error(t, err)
	})
}

func TestCompleteCommand(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantOutput string
		wantTasks  int
	}{
		{
			name:       "completing recurring task prints next occurrence",
			args:       []string{"complete", "--id", "1", "--status", "complete"},
			wantOutput: "[x] 1  Wed Jan 31  Pay rent  (r) Monthly  #Home\nnext: [ ] 2  Thu Feb 29  Pay rent  (r) Monthly  #Home\n",
			wantTasks:  2,
		},
		{
			name:       "toggle alias",
			args:       []string{"toggle", "--id", "1"},
			wantOutput: "[x] 1  Wed Jan 31  Pay rent  (r) Monthly  #Home\nnext: [ ] 2  Thu Feb 29  Pay rent  (r) Monthly  #Home\n",
			wantTasks:  2,
		},
		{
			name:       "incomplete",
			args:       []string{"complete", "--id", "1", "--status", "incomplete"},
			wantOutput: "[ ] 1  Wed Jan 31  Pay rent  (r) Monthly  #Home\n",
			wantTasks:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, storage := setupTestService(t, rentTask())

			out, err := runCommand(t, service, tt.args...)

			require.NoError(t, err)
			assert.Equal(t, tt.wantOutput, out)
			assert.Len(t, storage.Snapshot(), tt.wantTasks)
		})
	}

	t.Run("missing id", func(t *testing.T) {
		service, _ := setupTestService(t)

		_, err := runCommand(t, service, "complete", "--id", "5")

		require.Error(t, err)
		assert.Equal(t, "Task with id 5 not found", err.Error())
	})

	t.Run("bad status", func(t *testing.T) {
		service, _ := setupTestService(t, rentTask())

		_, err := runCommand(t, service, "complete", "--id", "1", "--status", "done")

		assert.Error(t, err)
	})
}

func TestListCommand(t *testing.T) {
	tasks := []domain.Task{
		rentTask(),
		{ID: 2, Name: "Old", Date: time.Date(2024, 1, 30, 23, 59, 59, 0, time.Local), Complete: true},
		{ID: 3, Name: "Standup", Date: time.Date(2024, 2, 1, 9, 30, 0, 0, time.Local), Group: "work"},
		{ID: 4, Name: "Read", Date: time.Date(2024, 1, 31, 8, 0, 0, 0, time.Local), Description: "see https://example.com/book"},
	}

	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr bool
	}{
		{
			name: "default hides complete and groups by day",
			args: []string{"ls"},
			want: "Wed Jan 31\n" +
				"  [ ] 4  Wed Jan 31 at 08:00  Read  https://example.com/book\n" +
				"  [ ] 1  Wed Jan 31  Pay rent  (r) Monthly  #Home\n" +
				"\n" +
				"Thu Feb 1\n" +
				"  [ ] 3  Thu Feb 1 at 09:30  Standup  #work\n",
		},
		{
			name: "show complete with past filter",
			args: []string{"list", "--show-complete", "--filter", "past"},
			want: "Tue Jan 30\n" +
				"  [x] 2  Tue Jan 30  Old\n" +
				"\n" +
				"Wed Jan 31\n" +
				"  [ ] 4  Wed Jan 31 at 08:00  Read  https://example.com/book\n",
		},
		{
			name: "group filter ignores case",
			args: []string{"ls", "--group", "WORK"},
			want: "Thu Feb 1\n  [ ] 3  Thu Feb 1 at 09:30  Standup  #work\n",
		},
		{
			name: "exact date",
			args: []string{"ls", "--date", "01-02-2024"},
			want: "Thu Feb 1\n  [ ] 3  Thu Feb 1 at 09:30  Standup  #work\n",
		},
		{
			name: "nothing matches",
			args: []string{"ls", "--group", "garden"},
			want: "No tasks found\n",
		},
		{name: "unknown filter", args: []string{"ls", "--filter", "soon"}, wantErr: true},
		{name: "unknown format", args: []string{"ls", "--format", "xml"}, wantErr: true},
		{name: "bad date", args: []string{"ls", "--date", "yesterday"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := setupTestService(t, tasks...)

			out, err := runCommand(t, service, tt.args...)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestListCommand_JSON(t *testing.T) {
	app, out := setupTestApp(t, rentTask(), domain.Task{ID: 2, Name: "b", Date: fixedNow.Add(time.Hour)})

	err := NewListCommand(app).Execute(context.Background(), ListOptions{Format: FormatJSON, Filter: "today"})

	require.NoError(t, err)
	var records []repository.Record
	require.NoError(t, json.Unmarshal(out.Bytes(), &records))
	require.Len(t, records, 2)
	assert.Equal(t, int64(2), records[0].ID)
	require.NotNil(t, records[1].Group)
	assert.Equal(t, "Home", *records[1].Group)
}

func TestConfigCommand(t *testing.T) {
	t.Run("show prints toml", func(t *testing.T) {
		service, _ := setupTestService(t)

		out, err := runCommand(t, service, "config")

		require.NoError(t, err)
		assert.Contains(t, out, "[keybindings]")
		assert.Contains(t, out, "input_date_format")
	})

	t.Run("mode and icons", func(t *testing.T) {
		service, _ := setupTestService(t)

		_, err := runCommand(t, service, "config", "--mode", "normal", "--icons", "special", "--show-complete=false")

		require.NoError(t, err)
		settings := service.Settings()
		assert.Equal(t, "ctrl+q", settings.KeyBindings.Quit)
		assert.False(t, settings.ShowComplete)
		assert.NotEqual(t, "[x]", settings.Icons.Complete)
	})

	t.Run("unknown mode changes nothing", func(t *testing.T) {
		service, _ := setupTestService(t)
		before := service.Settings()

		_, err := runCommand(t, service, "config", "--mode", "emacs", "--show-complete=false")

		require.Error(t, err)
		assert.Equal(t, before, service.Settings())
	})

	t.Run("reset", func(t *testing.T) {
		service, _ := setupTestService(t)

		_, err := runCommand(t, service, "config", "--reset")

		require.NoError(t, err)
		assert.Equal(t, config.DefaultSettings(), service.Settings())
	})
}

func TestImportCommand(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(good, []byte("tasks:\n  - name: a\n  - name: b\n    repeats: weekly\n"), 0o644))
	require.NoError(t, os.WriteFile(bad, []byte("tasks:\n  - name: a\n  - name: b\n    repeats: often\n"), 0o644))

	t.Run("imports every task", func(t *testing.T) {
		service, _ := setupTestService(t)

		out, err := runCommand(t, service, "import", good)

		require.NoError(t, err)
		assert.Equal(t, "Imported 2 tasks\n", out)
		assert.Len(t, service.ListTasks(query.Options{ShowComplete: true}), 2)
	})

	t.Run("invalid entry imports nothing", func(t *testing.T) {
		service, storage := setupTestService(t)

		_, err := runCommand(t, service, "import", bad)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "task 2")
		assert.Zero(t, storage.Saves)
	})

	t.Run("missing file", func(t *testing.T) {
		service, _ := setupTestService(t)

		_, err := runCommand(t, service, "import", filepath.Join(dir, "nope.yaml"))

		assert.Error(t, err)
	})
}
