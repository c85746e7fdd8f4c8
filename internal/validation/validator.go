package validation

import (
	"strconv"
	"strings"

	"task-cli/internal/domain"
)

// Validator provides common validation utilities
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// IsValidTaskID checks if a task ID is valid (positive)
func (v *Validator) IsValidTaskID(id int64) bool {
	return id > 0
}

// IsKnownStatus checks if s is one of the enumerated statuses
func (v *Validator) IsKnownStatus(s string) bool {
	return domain.Status(s).IsValid()
}

// ParseInteger parses a base-10 integer, tolerating surrounding whitespace
func (v *Validator) ParseInteger(s string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
