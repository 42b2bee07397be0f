package form

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-tracker/internal/config"
	"todo-tracker/internal/domain"
	apperrors "todo-tracker/internal/errors"
	"todo-tracker/internal/validation"
)

func TestTaskForm_Submit(t *testing.T) {
	formats := config.DefaultSettings().DateFormats
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.Local)
	v := validation.NewTaskValidator()

	tests := []struct {
		name       string
		form       TaskForm
		want       domain.Task
		wantFields []string
	}{
		{
			name: "full form",
			form: TaskForm{Name: " Pay rent ", Date: "31-01-2024", Repeats: "monthly", Group: "Home", URL: "https://bank.example"},
			want: domain.Task{
				Name:    "Pay rent",
				Date:    time.Date(2024, 1, 31, 23, 59, 59, 0, time.Local),
				Repeats: domain.Monthly(),
				Group:   "Home",
				URL:     "https://bank.example",
			},
		},
		{
			name: "empty date is end of today",
			form: TaskForm{Name: "Stretch", Repeats: "Mon,Thu"},
			want: domain.Task{
				Name:    "Stretch",
				Date:    time.Date(2024, 1, 15, 23, 59, 59, 0, time.Local),
				Repeats: domain.DaysOf(domain.Monday, domain.Thursday),
			},
		},
		{
			name: "keeps id and time of day",
			form: TaskForm{ID: 7, Name: "Dentist", Date: "02-02-2024 14:30", Description: "bring card"},
			want: domain.Task{
				ID:          7,
				Name:        "Dentist",
				Date:        time.Date(2024, 2, 2, 14, 30, 0, 0, time.Local),
				Repeats:     domain.Never(),
				Description: "bring card",
			},
		},
		{
			name:       "empty name",
			form:       TaskForm{Name: "   "},
			wantFields: []string{validation.FieldName},
		},
		{
			name:       "every bad field is reported",
			form:       TaskForm{Name: "", Date: "someday", Repeats: "Mon,Blursday", URL: "not a url"},
			wantFields: []string{validation.FieldName, validation.FieldRepeats, validation.FieldDate, validation.FieldURL},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			got, err := tt.form.Submit(v, formats, now)

			// Assert
			if len(tt.wantFields) > 0 {
				require.Error(t, err)
				assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeValidation))
				ve, ok := validation.AsValidationError(err)
				require.True(t, ok)
				for _, field := range tt.wantFields {
					assert.NotEmpty(t, ve.GetFieldErrors(field), "missing error for %s", field)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want.ID, got.ID)
			assert.Equal(t, tt.want.Name, got.Name)
			assert.True(t, tt.want.Date.Equal(got.Date), "date %v want %v", got.Date, tt.want.Date)
			assert.True(t, tt.want.Repeats.Equal(got.Repeats))
			assert.Equal(t, tt.want.Group, got.Group)
			assert.Equal(t, tt.want.URL, got.URL)
			assert.Equal(t, tt.want.Description, got.Description)
		})
	}
}

func TestFromTask_RoundTrip(t *testing.T) {
	formats := config.DefaultSettings().DateFormats
	task := domain.Task{
		ID:          3,
		Name:        "Team sync",
		Date:        time.Date(2024, 5, 6, 9, 0, 0, 0, time.Local),
		Repeats:     domain.DaysOf(domain.Monday, domain.Friday),
		Group:       "Work",
		Description: "notes at https://wiki.example/sync",
	}

	f := FromTask(task, formats)

	assert.Equal(t, "06-05-2024 09:00", f.Date)
	assert.Equal(t, "Mon,Fri", f.Repeats)

	back, err := f.Submit(validation.NewTaskValidator(), formats, time.Now())
	require.NoError(t, err)
	assert.Equal(t, task.ID, back.ID)
	assert.True(t, task.Date.Equal(back.Date))
	assert.True(t, task.Repeats.Equal(back.Repeats))
	assert.Equal(t, task.Description, back.Description)
}

func TestFromTask_DateOnly(t *testing.T) {
	formats := config.DefaultSettings().DateFormats
	task := domain.Task{Name: "Bins", Date: time.Date(2024, 5, 6, 23, 59, 59, 0, time.Local)}

	assert.Equal(t, "06-05-2024", FromTask(task, formats).Date)
	assert.Equal(t, "DD-MM-YYYY or DD-MM-YYYY HH:MM", DateHint(formats))
}
