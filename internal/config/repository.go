package config

import (
	"context"
	"os"

	apperrors "task-cli/internal/errors"
	"task-cli/internal/repository"
	"task-cli/internal/repository/jsonfile"
	"task-cli/internal/repository/sqlite"
)

// CreateStore opens the store selected by the configuration.
// The store directory is created when missing.
func CreateStore(ctx context.Context, config *Config) (repository.Store, error) {
	if err := os.MkdirAll(config.Store.Dir, 0755); err != nil {
		return nil, apperrors.NewStorageError("create directory "+config.Store.Dir, err)
	}

	path := config.GetStorePath()
	switch config.Store.Backend {
	case BackendSQLite:
		store, err := sqlite.New(ctx, path)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		store, err := jsonfile.New(path, jsonfile.WithPermissions(config.Store.FilePermissions))
		if err != nil {
			return nil, err
		}
		return store, nil
	}
}
