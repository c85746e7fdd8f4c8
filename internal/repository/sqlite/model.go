package sqlite

import (
	"fmt"

	"task-cli/internal/domain"
)

// taskRow mirrors one row of the tasks table
type taskRow struct {
	ID          int64
	Position    int
	Description string
	Status      string
	CreatedAt   string
	UpdatedAt   string
}

func rowFromDomain(position int, t *domain.Task) taskRow {
	return taskRow{
		ID:          t.ID,
		Position:    position,
		Description: t.Description,
		Status:      string(t.Status),
		CreatedAt:   FormatTimeForDB(t.CreatedAt),
		UpdatedAt:   FormatTimeForDB(t.UpdatedAt),
	}
}

func (r taskRow) toDomain() (*domain.Task, error) {
	createdAt, err := ParseTimeFromDB(r.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("task %d created_at: %w", r.ID, err)
	}
	updatedAt, err := ParseTimeFromDB(r.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("task %d updated_at: %w", r.ID, err)
	}
	return &domain.Task{
		ID:          r.ID,
		Description: r.Description,
		Status:      domain.Status(r.Status),
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}, nil
}
