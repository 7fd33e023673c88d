package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// isUniqueConstraintError detects uniqueness constraint violations raised by the store.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	lower := strings.ToLower(err.Error())
	return strings.Contains(lower, "unique constraint") ||
		strings.Contains(lower, "duplicate")
}
