// Package importer reads task lists from YAML documents.
package importer

import (
	"bytes"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"todo-tracker/internal/config"
	"todo-tracker/internal/domain"
	apperrors "todo-tracker/internal/errors"
	"todo-tracker/internal/form"
	"todo-tracker/internal/validation"
)

// YAMLTask is a single entry of the tasks list. Dates use the configured
// input layouts, like the task form.
type YAMLTask struct {
	Name        string `yaml:"name"`
	Date        string `yaml:"date,omitempty"`
	Repeats     string `yaml:"repeats,omitempty"`
	Group       string `yaml:"group,omitempty"`
	Description string `yaml:"description,omitempty"`
	URL         string `yaml:"url,omitempty"`
	Complete    bool   `yaml:"complete,omitempty"`
}

// YAMLInput is the document root.
type YAMLInput struct {
	Tasks []YAMLTask `yaml:"tasks"`
}

// Form converts the entry into a task form.
func (yt YAMLTask) Form() form.TaskForm {
	return form.TaskForm{
		Name:        yt.Name,
		Date:        yt.Date,
		Repeats:     yt.Repeats,
		Group:       yt.Group,
		Description: yt.Description,
		URL:         yt.URL,
		Complete:    yt.Complete,
	}
}

// Parse decodes a YAML document. Unknown keys are rejected.
func Parse(data []byte) (YAMLInput, error) {
	var input YAMLInput
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&input); err != nil {
		return YAMLInput{}, apperrors.NewInvalidInputError("yaml", nil, fmt.Sprintf("YAML parse error: %v", err))
	}
	if len(input.Tasks) == 0 {
		return YAMLInput{}, apperrors.NewInvalidInputError("yaml", nil, "no tasks found in YAML")
	}
	return input, nil
}

// Tasks validates every entry and returns the tasks ready to be added. If any
// entry is invalid no tasks are returned and the error lists every problem,
// prefixed with the entry's position.
func Tasks(input YAMLInput, v *validation.TaskValidator, formats config.DateFormatSettings, now time.Time) ([]domain.Task, error) {
	tasks := make([]domain.Task, 0, len(input.Tasks))
	combined := validation.NewValidationError()

	for i, yt := range input.Tasks {
		task, err := yt.Form().Submit(v, formats, now)
		if err != nil {
			ve, ok := validation.AsValidationError(err)
			if !ok {
				return nil, err
			}
			for _, fe := range ve.Errors {
				combined.AddError(fmt.Sprintf("tasks[%d].%s", i, fe.Field), fe.Type, fmt.Sprintf("task %d: %s", i+1, fe.Message), fe.Value)
			}
			continue
		}
		tasks = append(tasks, task)
	}

	if combined.HasErrors() {
		return nil, apperrors.NewValidationError("invalid import", combined)
	}
	return tasks, nil
}
