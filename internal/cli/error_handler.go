package cli

import (
	"fmt"

	"todo-tracker/internal/errors"
	"todo-tracker/internal/logging"
	"todo-tracker/internal/validation"
)

// ErrorHandler turns service errors into one line diagnostics.
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// Handle prefixes the user message with the operation that failed.
func (eh *ErrorHandler) Handle(operation string, err error) error {
	if err == nil {
		return nil
	}
	if errors.ShouldLogError(err) {
		logging.Logger().Debug("command failed", "operation", operation, "err", err)
	}
	return fmt.Errorf("failed to %s: %s", operation, eh.message(err))
}

// HandleSimple returns the user message without operation context. Task
// not found errors print exactly "Task with id N not found".
func (eh *ErrorHandler) HandleSimple(err error) error {
	if err == nil {
		return nil
	}
	if errors.ShouldLogError(err) {
		logging.Logger().Debug("command failed", "err", err)
	}
	return fmt.Errorf("%s", eh.message(err))
}

func (eh *ErrorHandler) message(err error) string {
	if _, ok := errors.AsAppError(err); ok {
		return errors.GetUserMessage(err)
	}
	if ve, ok := validation.AsValidationError(err); ok {
		return ve.GetUserFriendlyMessage()
	}
	return err.Error()
}

// IsValidationError checks if an error is a validation error
func (eh *ErrorHandler) IsValidationError(err error) bool {
	if validation.IsValidationError(err) {
		return true
	}
	return errors.IsErrorType(err, errors.ErrorTypeValidation)
}

// IsNotFoundError checks if an error is a not found error
func (eh *ErrorHandler) IsNotFoundError(err error) bool {
	return errors.IsNotFound(err)
}

// IsStorageError checks if an error is a storage error
func (eh *ErrorHandler) IsStorageError(err error) bool {
	return errors.IsStorage(err)
}

// GetErrorCode returns the error code for structured errors
func (eh *ErrorHandler) GetErrorCode(err error) string {
	return errors.GetErrorCode(err)
}
