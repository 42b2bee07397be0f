package validation

import (
	"strings"
	"time"

	"todo-tracker/internal/config"
	"todo-tracker/internal/domain"
)

// TaskValidator provides validation for Task-related operations
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// NewTaskValidatorWithConfig creates a task validator using configured limits
func NewTaskValidatorWithConfig(cfg *config.Config) *TaskValidator {
	return &TaskValidator{
		validator: NewValidatorWithConfig(cfg),
	}
}

// ValidateTaskName validates a task name for creation or update
func (tv *TaskValidator) ValidateTaskName(name string) error {
	validationError := NewValidationError()

	trimmedName := tv.validator.TrimAndValidateString(name)

	if !tv.validator.IsNonEmptyString(trimmedName) {
		validationError.AddRequiredError(FieldName)
		return validationError
	}

	if !tv.validator.IsValidTaskNameLength(trimmedName) {
		validationError.AddInvalidLengthError(FieldName, trimmedName,
			tv.validator.getTaskNameMinLength(), tv.validator.getTaskNameMaxLength())
	}

	if !tv.validator.IsSingleLine(trimmedName) {
		validationError.AddInvalidCharacterError(FieldName, trimmedName)
	}

	return validationError.ErrOrNil()
}

// ValidateTaskID validates a task ID
func (tv *TaskValidator) ValidateTaskID(id int64) error {
	if !tv.validator.IsValidTaskID(id) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError(FieldID, id, "must be a positive integer")
		return validationError
	}
	return nil
}

// ValidateRepeats parses a repeat rule, reporting failures as field errors
func (tv *TaskValidator) ValidateRepeats(s string) (domain.Repeat, error) {
	repeat, err := domain.ParseRepeat(s)
	if err != nil {
		validationError := NewValidationError()
		validationError.AddInvalidValueError(FieldRepeats, s,
			"expected Never, Daily, Weekly, Monthly, Yearly or days like Mon,Wed")
		return domain.Repeat{}, validationError
	}
	return repeat, nil
}

// ValidateDate parses a due date with the input layouts. An empty string is
// the end of today; hint describes the expected input in error messages.
func (tv *TaskValidator) ValidateDate(s string, formats domain.DateFormats, hint string, now time.Time) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return domain.Today(now), nil
	}
	date, err := domain.ParseDate(s, formats)
	if err != nil {
		validationError := NewValidationError()
		validationError.AddInvalidFormatError(FieldDate, s, hint)
		return time.Time{}, validationError
	}
	return date, nil
}

// ValidateGroup checks an optional group label
func (tv *TaskValidator) ValidateGroup(group string) error {
	validationError := NewValidationError()
	if !tv.validator.IsValidStringLength(group, 0, maxGroupLength) {
		validationError.AddInvalidLengthError(FieldGroup, group, 0, maxGroupLength)
	}
	if !tv.validator.IsSingleLine(group) {
		validationError.AddInvalidCharacterError(FieldGroup, group)
	}
	return validationError.ErrOrNil()
}

// ValidateURL checks an optional link
func (tv *TaskValidator) ValidateURL(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	if !tv.validator.IsValidURL(raw) {
		validationError := NewValidationError()
		validationError.AddInvalidFormatError(FieldURL, raw, "http:// or https:// URL")
		return validationError
	}
	return nil
}

// ValidateTask validates a domain.Task before it is stored
func (tv *TaskValidator) ValidateTask(task domain.Task) error {
	validationError := NewValidationError()

	validationError.Merge(tv.ValidateTaskName(task.Name))
	validationError.Merge(tv.ValidateGroup(task.Group))
	validationError.Merge(tv.ValidateURL(task.URL))

	if task.ID != 0 {
		validationError.Merge(tv.ValidateTaskID(task.ID))
	}
	if task.Date.IsZero() {
		validationError.AddRequiredError(FieldDate)
	}

	return validationError.ErrOrNil()
}

// GetValidTaskName returns a cleaned task name if valid
func (tv *TaskValidator) GetValidTaskName(name string) (string, error) {
	if err := tv.ValidateTaskName(name); err != nil {
		return "", err
	}
	return tv.validator.TrimAndValidateString(name), nil
}
