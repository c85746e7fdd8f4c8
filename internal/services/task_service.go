package services

import (
	"context"
	"fmt"
	"time"

	"task-cli/internal/domain"
	"task-cli/internal/errors"
	"task-cli/internal/logging"
	"task-cli/internal/repository"
)

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	store repository.Store
	now   Clock
}

// Option configures a TaskService
type Option func(*taskServiceImpl)

// WithClock replaces time.Now as the source of task timestamps
func WithClock(clock Clock) Option {
	return func(s *taskServiceImpl) {
		s.now = clock
	}
}

// NewTaskService creates a new TaskService backed by store
func NewTaskService(store repository.Store, opts ...Option) TaskService {
	s := &taskServiceImpl{
		store: store,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddTask appends a todo task with the next free id.
// Descriptions are stored as given; an empty one is accepted.
func (s *taskServiceImpl) AddTask(ctx context.Context, description string) (*domain.Task, error) {
	c, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	task := domain.NewTask(c.NextID(), description, s.timestamp())
	c.Append(&task)

	if err := s.store.Save(ctx, c); err != nil {
		return nil, err
	}

	logging.Debug("task added", "id", task.ID)
	return &task, nil
}

// UpdateTask replaces the description of an existing task
func (s *taskServiceImpl) UpdateTask(ctx context.Context, id int64, description string) (*domain.Task, error) {
	return s.mutate(ctx, id, "updated", func(t *domain.Task, now time.Time) {
		t.SetDescription(description, now)
	})
}

// DeleteTask removes a task and returns it
func (s *taskServiceImpl) DeleteTask(ctx context.Context, id int64) (*domain.Task, error) {
	c, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	task, ok := c.Remove(id)
	if !ok {
		return nil, errors.NewNotFoundError("Task", id)
	}

	if err := s.store.Save(ctx, c); err != nil {
		return nil, err
	}

	logging.Debug("task deleted", "id", id)
	return task, nil
}

// MarkInProgress sets the status of a task to in-progress
func (s *taskServiceImpl) MarkInProgress(ctx context.Context, id int64) (*domain.Task, error) {
	return s.SetStatus(ctx, id, domain.StatusInProgress)
}

// MarkDone sets the status of a task to done
func (s *taskServiceImpl) MarkDone(ctx context.Context, id int64) (*domain.Task, error) {
	return s.SetStatus(ctx, id, domain.StatusDone)
}

// SetStatus sets the status of a task. No transition is forbidden.
func (s *taskServiceImpl) SetStatus(ctx context.Context, id int64, status domain.Status) (*domain.Task, error) {
	if !status.IsValid() {
		return nil, errors.NewInvalidArgumentError("status", string(status), fmt.Sprintf("Invalid status: %s", status))
	}
	return s.mutate(ctx, id, "marked "+status.String(), func(t *domain.Task, now time.Time) {
		t.SetStatus(status, now)
	})
}

// ListTasks returns the matching tasks in stored order. Nothing is saved.
func (s *taskServiceImpl) ListTasks(ctx context.Context, filter string) ([]*domain.Task, error) {
	c, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return c.Filter(filter), nil
}

// mutate loads the collection, applies fn to the task with the given id and saves.
// When the id is absent nothing is written.
func (s *taskServiceImpl) mutate(ctx context.Context, id int64, action string, fn func(*domain.Task, time.Time)) (*domain.Task, error) {
	c, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	task, ok := c.FindByID(id)
	if !ok {
		return nil, errors.NewNotFoundError("Task", id)
	}

	fn(task, s.timestamp())

	if err := s.store.Save(ctx, c); err != nil {
		return nil, err
	}

	logging.Debug("task "+action, "id", id)
	return task, nil
}

// timestamp drops the monotonic reading so stored and compared times agree
func (s *taskServiceImpl) timestamp() time.Time {
	return s.now().Round(0)
}
