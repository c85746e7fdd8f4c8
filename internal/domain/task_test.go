package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var baseTime = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func TestNewTask(t *testing.T) {
	tests := []struct {
		name        string
		id          int64
		description string
	}{
		{name: "creates task with description", id: 1, description: "buy milk"},
		{name: "creates task with empty description", id: 2, description: ""},
		{name: "creates task with special characters", id: 3, description: "Task-with_special@chars! ünïcode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := NewTask(tt.id, tt.description, baseTime)
			assert.Equal(t, tt.id, task.ID)
			assert.Equal(t, tt.description, task.Description)
			assert.Equal(t, StatusTodo, task.Status)
			assert.Equal(t, baseTime, task.CreatedAt)
			assert.Equal(t, task.CreatedAt, task.UpdatedAt)
		})
	}
}

func TestTask_SetDescription(t *testing.T) {
	task := NewTask(1, "buy milk", baseTime)
	later := baseTime.Add(time.Minute)

	task.SetDescription("buy oat milk", later)

	assert.Equal(t, "buy oat milk", task.Description)
	assert.Equal(t, StatusTodo, task.Status)
	assert.Equal(t, baseTime, task.CreatedAt)
	assert.Equal(t, later, task.UpdatedAt)
}

func TestTask_SetStatus(t *testing.T) {
	tests := []struct {
		name string
		from Status
		to   Status
	}{
		{"todo to in-progress", StatusTodo, StatusInProgress},
		{"in-progress to done", StatusInProgress, StatusDone},
		{"done back to in-progress", StatusDone, StatusInProgress},
		{"todo straight to done", StatusTodo, StatusDone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := NewTask(1, "x", baseTime)
			task.Status = tt.from
			later := baseTime.Add(time.Hour)

			task.SetStatus(tt.to, later)

			assert.Equal(t, tt.to, task.Status)
			assert.Equal(t, later, task.UpdatedAt)
			assert.Equal(t, baseTime, task.CreatedAt)
		})
	}
}

func TestTask_UpdatedAtNeverBeforeCreatedAt(t *testing.T) {
	task := NewTask(1, "x", baseTime)

	task.SetDescription("y", baseTime.Add(-time.Hour))

	assert.Equal(t, baseTime, task.UpdatedAt)
}

func TestTask_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		task     Task
		expected bool
	}{
		{name: "valid task", task: Task{ID: 1, Status: StatusTodo}, expected: true},
		{name: "valid task with empty description", task: Task{ID: 4, Status: StatusDone}, expected: true},
		{name: "zero ID", task: Task{ID: 0, Status: StatusTodo}, expected: false},
		{name: "negative ID", task: Task{ID: -1, Status: StatusTodo}, expected: false},
		{name: "unknown status", task: Task{ID: 1, Status: "blocked"}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.task.IsValid())
		})
	}
}

func TestStatus_IsValid(t *testing.T) {
	for _, s := range Statuses {
		assert.True(t, s.IsValid(), s.String())
	}
	assert.False(t, Status("").IsValid())
	assert.False(t, Status("DONE").IsValid())
	assert.False(t, Status("in_progress").IsValid())
}

func TestTask_String(t *testing.T) {
	assert.Equal(t, "walk dog", Task{ID: 1, Description: "walk dog"}.String())
}
