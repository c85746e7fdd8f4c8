package validation

import (
	"fmt"

	"task-cli/internal/domain"
	"task-cli/internal/errors"
)

// InvalidTaskIDMessage is shown when an id argument is not an integer.
const InvalidTaskIDMessage = "Invalid task ID. Must be an integer."

// TaskValidator validates task arguments and loaded task records
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// ParseTaskID converts a command-line argument into a task id.
// Any integer is accepted; non-positive ids are simply never found.
func (tv *TaskValidator) ParseTaskID(arg string) (int64, error) {
	id, ok := tv.validator.ParseInteger(arg)
	if !ok {
		return 0, errors.NewInvalidArgumentError("task_id", arg, InvalidTaskIDMessage)
	}
	return id, nil
}

// ValidateTask checks a single stored task. index is its position in the collection.
func (tv *TaskValidator) ValidateTask(index int, task domain.Task) *ValidationError {
	ve := NewValidationError()

	if !tv.validator.IsValidTaskID(task.ID) {
		ve.AddError(index, "id", ErrorTypeInvalidValue,
			fmt.Sprintf("id must be a positive integer, got %d", task.ID), task.ID)
	}
	if !tv.validator.IsKnownStatus(string(task.Status)) {
		ve.AddError(index, "status", ErrorTypeInvalidValue,
			fmt.Sprintf("unknown status %q", task.Status), task.Status)
	}
	if task.CreatedAt.IsZero() {
		ve.AddError(index, "createdAt", ErrorTypeInvalidValue, "createdAt is missing", nil)
	}
	if task.UpdatedAt.IsZero() {
		ve.AddError(index, "updatedAt", ErrorTypeInvalidValue, "updatedAt is missing", nil)
	}

	return ve
}

// ValidateCollection checks every task and the uniqueness of ids.
// It returns nil or a *ValidationError listing every problem.
func (tv *TaskValidator) ValidateCollection(tasks []*domain.Task) error {
	ve := NewValidationError()
	seen := make(map[int64]int, len(tasks))

	for i, task := range tasks {
		ve.Errors = append(ve.Errors, tv.ValidateTask(i, *task).Errors...)

		if first, dup := seen[task.ID]; dup {
			ve.AddError(i, "id", ErrorTypeDuplicate,
				fmt.Sprintf("id %d already used by task #%d", task.ID, first+1), task.ID)
			continue
		}
		seen[task.ID] = i
	}

	if ve.HasErrors() {
		return ve
	}
	return nil
}
