package jsonfile

import (
	"fmt"
	"time"

	"task-cli/internal/domain"
)

// record is the on-disk shape of a task. Field names are part of the file format.
type record struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// zone-less layouts found in task files written without an offset
var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

// FormatTimestamp formats t as RFC 3339 with nanoseconds for storage
func FormatTimestamp(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}

// ParseTimestamp parses an RFC 3339 timestamp, falling back to zone-less
// ISO-8601 forms interpreted in local time
func ParseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
}

func fromDomain(t *domain.Task) record {
	return record{
		ID:          t.ID,
		Description: t.Description,
		Status:      string(t.Status),
		CreatedAt:   FormatTimestamp(t.CreatedAt),
		UpdatedAt:   FormatTimestamp(t.UpdatedAt),
	}
}

func (r record) toDomain() (*domain.Task, error) {
	createdAt, err := ParseTimestamp(r.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("task %d createdAt: %w", r.ID, err)
	}
	updatedAt, err := ParseTimestamp(r.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("task %d updatedAt: %w", r.ID, err)
	}
	return &domain.Task{
		ID:          r.ID,
		Description: r.Description,
		Status:      domain.Status(r.Status),
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}, nil
}
