package services

import (
	"context"
	"time"

	"task-cli/internal/domain"
)

// TaskService exposes one operation per user action on the task collection.
// Each call loads the collection, applies the change and saves only if something changed.
type TaskService interface {
	AddTask(ctx context.Context, description string) (*domain.Task, error)
	UpdateTask(ctx context.Context, id int64, description string) (*domain.Task, error)
	DeleteTask(ctx context.Context, id int64) (*domain.Task, error)
	MarkInProgress(ctx context.Context, id int64) (*domain.Task, error)
	MarkDone(ctx context.Context, id int64) (*domain.Task, error)
	SetStatus(ctx context.Context, id int64, status domain.Status) (*domain.Task, error)
	// ListTasks returns tasks whose status equals filter, or all tasks for an empty filter.
	ListTasks(ctx context.Context, filter string) ([]*domain.Task, error)
}

// Clock returns the current time
type Clock func() time.Time
