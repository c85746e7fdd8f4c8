// Package repository defines the persistence contract for the task collection.
package repository

import (
	"context"

	"task-cli/internal/domain"
)

// Store loads and saves the whole task collection.
// Every Save rewrites the full collection; there are no partial writes.
type Store interface {
	// Load reads the persisted collection. A missing file is an empty collection.
	Load(ctx context.Context) (*domain.Collection, error)
	// Save replaces the persisted collection with c.
	Save(ctx context.Context, c *domain.Collection) error
	// Path returns the location of the persisted file.
	Path() string
	// Close releases any resources held by the store.
	Close() error
}
