package sqlite

import (
	"strings"

	"task-cli/internal/errors"
)

// HandleDatabaseError converts database errors to structured app errors.
// A file that SQLite does not recognise is reported as a corrupt store.
func HandleDatabaseError(path string, operation string, err error) error {
	if isNotADatabase(err) {
		return errors.NewCorruptStoreError(path, "not a SQLite database", err)
	}
	return errors.NewStorageError(operation, err)
}

func isNotADatabase(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "file is not a database") || strings.Contains(msg, "file is encrypted or is not a database")
}
