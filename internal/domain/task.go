package domain

import "time"

// Status is the lifecycle state of a task.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in-progress"
	StatusDone       Status = "done"
)

// Statuses lists every valid status in lifecycle order.
var Statuses = []Status{StatusTodo, StatusInProgress, StatusDone}

// IsValid reports whether s is one of the enumerated statuses.
func (s Status) IsValid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	default:
		return false
	}
}

func (s Status) String() string {
	return string(s)
}

// Task represents a task in the domain model.
// This is a pure domain model without storage-specific concerns.
type Task struct {
	ID          int64     `json:"id" yaml:"id"`
	Description string    `json:"description" yaml:"description"`
	Status      Status    `json:"status" yaml:"status"`
	CreatedAt   time.Time `json:"createdAt" yaml:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" yaml:"updatedAt"`
}

// NewTask creates a todo task whose timestamps are both set to now.
func NewTask(id int64, description string, now time.Time) Task {
	return Task{
		ID:          id,
		Description: description,
		Status:      StatusTodo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// SetDescription replaces the description and refreshes UpdatedAt.
func (t *Task) SetDescription(description string, now time.Time) {
	t.Description = description
	t.touch(now)
}

// SetStatus changes the status and refreshes UpdatedAt. Any status may follow any other.
func (t *Task) SetStatus(status Status, now time.Time) {
	t.Status = status
	t.touch(now)
}

// touch keeps UpdatedAt >= CreatedAt even if the clock went backwards.
func (t *Task) touch(now time.Time) {
	if now.Before(t.CreatedAt) {
		now = t.CreatedAt
	}
	t.UpdatedAt = now
}

// IsValid checks if the task has valid data.
func (t Task) IsValid() bool {
	return t.ID > 0 && t.Status.IsValid()
}

// String returns the task description for display purposes.
func (t Task) String() string {
	return t.Description
}
