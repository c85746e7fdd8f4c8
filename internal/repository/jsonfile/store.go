// Package jsonfile stores the task collection as an indented JSON array in a single file.
package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"os"

	"task-cli/internal/domain"
	"task-cli/internal/errors"
	"task-cli/internal/logging"
	"task-cli/internal/repository"
	"task-cli/internal/validation"
)

// DefaultFileName is the task file used when no other name is configured.
const DefaultFileName = "tasks.json"

const defaultPerm os.FileMode = 0o644

// Store implements repository.Store on top of a JSON file
type Store struct {
	path      string
	perm      os.FileMode
	validator *validation.TaskValidator
}

var _ repository.Store = (*Store)(nil)

// Option configures a Store
type Option func(*Store)

// WithPermissions sets the mode of the task file written by Save
func WithPermissions(perm os.FileMode) Option {
	return func(s *Store) {
		s.perm = perm
	}
}

// New opens the task file at path, creating it with an empty collection if it does not exist
func New(path string, opts ...Option) (*Store, error) {
	s := &Store{
		path:      path,
		perm:      defaultPerm,
		validator: validation.NewTaskValidator(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.ensureExists(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the location of the task file
func (s *Store) Path() string {
	return s.path
}

// Close is a no-op; the file is not held open between operations
func (s *Store) Close() error {
	return nil
}

// Load reads and validates the whole collection
func (s *Store) Load(ctx context.Context) (*domain.Collection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		if err := s.ensureExists(); err != nil {
			return nil, err
		}
		return domain.NewCollection(), nil
	}
	if err != nil {
		return nil, errors.NewStorageError("read "+s.path, err)
	}

	tasks, err := s.decode(data)
	if err != nil {
		return nil, err
	}

	logging.Debug("tasks loaded", "path", s.path, "count", len(tasks))
	return domain.NewCollection(tasks...), nil
}

// Save replaces the task file with the full collection
func (s *Store) Save(ctx context.Context, c *domain.Collection) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := encode(c)
	if err != nil {
		return errors.NewStorageError("encode tasks", err)
	}
	if err := writeFileAtomic(s.path, data, s.perm); err != nil {
		logging.Error("task file write failed", "path", s.path, "error", err)
		return errors.NewStorageError("write "+s.path, err)
	}

	logging.Debug("tasks saved", "path", s.path, "count", c.Len())
	return nil
}

func (s *Store) ensureExists() error {
	_, err := os.Stat(s.path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return errors.NewStorageError("stat "+s.path, err)
	}

	logging.Debug("creating empty task file", "path", s.path)
	if err := writeFileAtomic(s.path, []byte("[]\n"), s.perm); err != nil {
		return errors.NewStorageError("create "+s.path, err)
	}
	return nil
}

func (s *Store) decode(data []byte) ([]*domain.Task, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, errors.NewCorruptStoreError(s.path, "expected a JSON array of tasks", nil)
	}

	var records []record
	if err := json.Unmarshal(trimmed, &records); err != nil {
		return nil, errors.NewCorruptStoreError(s.path, "invalid JSON", err)
	}

	tasks := make([]*domain.Task, 0, len(records))
	for _, r := range records {
		task, err := r.toDomain()
		if err != nil {
			return nil, errors.NewCorruptStoreError(s.path, "invalid timestamp", err)
		}
		tasks = append(tasks, task)
	}

	if err := s.validator.ValidateCollection(tasks); err != nil {
		return nil, errors.NewCorruptStoreError(s.path, "invalid task records", err)
	}
	return tasks, nil
}

func encode(c *domain.Collection) ([]byte, error) {
	tasks := c.Tasks()
	records := make([]record, 0, len(tasks))
	for _, t := range tasks {
		records = append(records, fromDomain(t))
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
