package cli

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"todo-tracker/internal/errors"
	"todo-tracker/internal/validation"
)

func TestErrorHandler_HandleSimple(t *testing.T) {
	ve := validation.NewValidationError()
	ve.AddRequiredError(validation.FieldName)

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"not found", errors.NewTaskNotFoundError(7), "Task with id 7 not found"},
		{"wrapped validation", errors.NewValidationError("invalid task", ve), "name is required"},
		{"bare validation", ve, "name is required"},
		{"plain error", stderrors.New("boom"), "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.EqualError(t, NewErrorHandler().HandleSimple(tt.err), tt.want)
		})
	}

	assert.NoError(t, NewErrorHandler().HandleSimple(nil))
}

func TestErrorHandler_Handle(t *testing.T) {
	err := NewErrorHandler().Handle("delete task", errors.NewTaskNotFoundError(3))

	assert.EqualError(t, err, "failed to delete task: Task with id 3 not found")
}

func TestErrorHandler_Classification(t *testing.T) {
	eh := NewErrorHandler()

	assert.True(t, eh.IsNotFoundError(errors.NewTaskNotFoundError(1)))
	assert.True(t, eh.IsValidationError(validation.NewValidationError()))
	assert.True(t, eh.IsValidationError(errors.NewValidationError("x", nil)))
	assert.True(t, eh.IsStorageError(errors.NewStorageError("save tasks", stderrors.New("disk full"))))
	assert.Equal(t, "NOT_FOUND", eh.GetErrorCode(errors.NewTaskNotFoundError(1)))
}
