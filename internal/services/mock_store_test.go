package services

import (
	"context"
	"errors"

	"task-cli/internal/domain"
)

// mockStore keeps the collection in memory and counts how often it is written
type mockStore struct {
	tasks   []domain.Task
	loads   int
	saves   int
	loadErr error
	saveErr error
}

var errDiskFull = errors.New("disk full")

func newMockStore(tasks ...domain.Task) *mockStore {
	return &mockStore{tasks: tasks}
}

// Load hands out copies so unsaved mutations never leak back into the store
func (m *mockStore) Load(ctx context.Context) (*domain.Collection, error) {
	m.loads++
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	ptrs := make([]*domain.Task, len(m.tasks))
	for i := range m.tasks {
		t := m.tasks[i]
		ptrs[i] = &t
	}
	return domain.NewCollection(ptrs...), nil
}

func (m *mockStore) Save(ctx context.Context, c *domain.Collection) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.tasks = m.tasks[:0:0]
	for _, t := range c.Tasks() {
		m.tasks = append(m.tasks, *t)
	}
	return nil
}

func (m *mockStore) Path() string { return "memory" }

func (m *mockStore) Close() error { return nil }
