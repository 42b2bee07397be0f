// Package form turns the string fields typed into the CLI or the TUI into
// validated tasks and back.
package form

import (
	"strings"
	"time"

	"todo-tracker/internal/config"
	"todo-tracker/internal/domain"
	apperrors "todo-tracker/internal/errors"
	"todo-tracker/internal/validation"
)

// TaskForm holds raw user input. ID is zero for a new task.
type TaskForm struct {
	ID          int64
	Name        string
	Date        string
	Repeats     string
	Group       string
	Description string
	URL         string
	Complete    bool
}

// FromTask fills a form with task's values, dates rendered with the input layouts.
func FromTask(task domain.Task, formats config.DateFormatSettings) TaskForm {
	return TaskForm{
		ID:          task.ID,
		Name:        task.Name,
		Date:        domain.FormatInput(task.Date, formats.Formats()),
		Repeats:     task.Repeats.String(),
		Group:       task.Group,
		Description: task.Description,
		URL:         task.URL,
		Complete:    task.Complete,
	}
}

// DateHint describes the accepted date inputs, e.g. "DD-MM-YYYY or DD-MM-YYYY HH:MM".
func DateHint(formats config.DateFormatSettings) string {
	return formats.InputDateHint + " or " + formats.InputDateTimeHint
}

// Submit validates the form and builds a task. Every invalid field is
// reported in one validation error; nothing is returned for partial input.
func (f TaskForm) Submit(v *validation.TaskValidator, formats config.DateFormatSettings, now time.Time) (domain.Task, error) {
	ve := validation.NewValidationError()

	name, err := v.GetValidTaskName(f.Name)
	ve.Merge(err)

	repeats, err := v.ValidateRepeats(f.Repeats)
	ve.Merge(err)

	date, err := v.ValidateDate(f.Date, formats.Formats(), DateHint(formats), now)
	ve.Merge(err)

	group := strings.TrimSpace(f.Group)
	ve.Merge(v.ValidateGroup(group))

	url := strings.TrimSpace(f.URL)
	ve.Merge(v.ValidateURL(url))

	if ve.HasErrors() {
		return domain.Task{}, apperrors.NewValidationError("invalid task", ve)
	}

	return domain.Task{
		ID:          f.ID,
		Name:        name,
		Date:        date,
		Repeats:     repeats,
		Description: strings.TrimSpace(f.Description),
		URL:         url,
		Group:       group,
		Complete:    f.Complete,
	}, nil
}
