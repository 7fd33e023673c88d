package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	apperrors "github.com/charlesng35/marketadmin/pkg/errors"
)

// FilterAll is the filter value that selects every record.
const FilterAll = "all"

func ensureContext(ctx context.Context) context.Context {
	if ctx != nil {
		return ctx
	}
	return context.Background()
}

func defaultIfEmpty(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

// parseFilter validates a list filter against the allowed values. An empty value or "all"
// selects everything and reports apply=false.
func parseFilter[T ~string](field, value string, allowed []T) (selected T, apply bool, err error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" || value == FilterAll {
		return selected, false, nil
	}
	for _, candidate := range allowed {
		if string(candidate) == value {
			return candidate, true, nil
		}
	}
	return selected, false, apperrors.NewValidation("unknown %s filter %q", field, value)
}

// parseEnum validates a required enum field, falling back to def when blank.
func parseEnum[T ~string](field, value string, allowed []T, def T) (T, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		if def == "" {
			var zero T
			return zero, apperrors.NewValidation("%s is required", field)
		}
		return def, nil
	}
	for _, candidate := range allowed {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	var zero T
	return zero, apperrors.NewValidation("invalid %s %q", field, value)
}

// findByID loads a single record by primary key, translating a missing row into a NotFound
// error naming entity.
func findByID[T any](tx *gorm.DB, entity string, id uint) (*T, error) {
	var record T
	if err := tx.First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound(entity, id)
		}
		return nil, fmt.Errorf("load %s: %w", entity, err)
	}
	return &record, nil
}

// passThrough returns domain errors untouched and wraps store errors with the service prefix.
func passThrough(prefix string, err error) error {
	if err == nil {
		return nil
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return fmt.Errorf("%s: %w", prefix, err)
}

// updateRecord loads the record, asks apply for the column updates and writes them in one
// transaction. Callers hold the owning service's mutex.
func updateRecord[T any](ctx context.Context, db *gorm.DB, entity string, id uint, apply func(*T) (map[string]any, error)) (*T, error) {
	var updated T
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		record, err := findByID[T](tx, entity, id)
		if err != nil {
			return err
		}
		updates, err := apply(record)
		if err != nil {
			return err
		}
		if err := tx.Model(record).Updates(updates).Error; err != nil {
			return fmt.Errorf("update %s: %w", entity, err)
		}
		return tx.First(&updated, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
