// Package sqlite stores the task collection in a single SQLite database file.
package sqlite

import (
	"context"
	"database/sql"

	"task-cli/internal/domain"
	"task-cli/internal/errors"
	"task-cli/internal/logging"
	"task-cli/internal/repository"
	"task-cli/internal/repository/sqlite/migrations"
	"task-cli/internal/validation"

	_ "modernc.org/sqlite"
)

// DefaultFileName is the database file used when no other name is configured.
const DefaultFileName = "tasks.db"

// Store implements repository.Store with a SQLite database
type Store struct {
	db        *sql.DB
	path      string
	validator *validation.TaskValidator
}

var _ repository.Store = (*Store)(nil)

// New opens (creating if needed) the database at path and applies pending migrations
func New(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, HandleDatabaseError(path, "open database", err)
	}
	// One process, one command: a single connection keeps :memory: databases coherent.
	db.SetMaxOpenConns(1)

	if err := migrations.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, HandleDatabaseError(path, "run migrations", err)
	}

	return &Store{
		db:        db,
		path:      path,
		validator: validation.NewTaskValidator(),
	}, nil
}

// Path returns the database file location
func (s *Store) Path() string {
	return s.path
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// Load reads every task ordered by its stored position
func (s *Store) Load(ctx context.Context) (*domain.Collection, error) {
	query := `
	SELECT id, position, description, status, created_at, updated_at
	FROM tasks
	ORDER BY position ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, HandleDatabaseError(s.path, "query tasks", err)
	}
	defer rows.Close()

	taskRows, err := scanTaskRows(rows)
	if err != nil {
		return nil, errors.NewCorruptStoreError(s.path, "unreadable task row", err)
	}

	tasks := make([]*domain.Task, 0, len(taskRows))
	for _, row := range taskRows {
		task, err := row.toDomain()
		if err != nil {
			return nil, errors.NewCorruptStoreError(s.path, "invalid timestamp", err)
		}
		tasks = append(tasks, task)
	}

	if err := s.validator.ValidateCollection(tasks); err != nil {
		return nil, errors.NewCorruptStoreError(s.path, "invalid task records", err)
	}

	logging.Debug("tasks loaded", "path", s.path, "count", len(tasks))
	return domain.NewCollection(tasks...), nil
}

// Save replaces the contents of the tasks table in one transaction
func (s *Store) Save(ctx context.Context, c *domain.Collection) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return HandleDatabaseError(s.path, "begin transaction", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM tasks`); err != nil {
		return HandleDatabaseError(s.path, "clear tasks", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO tasks (id, position, description, status, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return HandleDatabaseError(s.path, "prepare insert", err)
	}
	defer stmt.Close()

	for i, task := range c.Tasks() {
		row := rowFromDomain(i, task)
		if _, err := stmt.ExecContext(ctx, row.ID, row.Position, row.Description, row.Status, row.CreatedAt, row.UpdatedAt); err != nil {
			return HandleDatabaseError(s.path, "insert task", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return HandleDatabaseError(s.path, "commit", err)
	}

	logging.Debug("tasks saved", "path", s.path, "count", c.Len())
	return nil
}
