package database

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Config contains options for the in-memory collection store.
type Config struct {
	// Name identifies the in-memory database. Handles opened with the same name share data;
	// an empty name yields a private database.
	Name string
	// Debug logs every statement through the gorm logger.
	Debug bool
}

// Open initialises a gorm.DB backed by an in-memory SQLite database.
func Open(cfg Config) (*gorm.DB, error) {
	db, err := openSQLite(cfg)
	if err != nil {
		return nil, fmt.Errorf("open in-memory database: %w", err)
	}
	return db, nil
}

// AutoMigrateAndSeed convenience helper used during application start-up.
func AutoMigrateAndSeed(db *gorm.DB) error {
	if db == nil {
		return errors.New("nil database handle")
	}

	if err := AutoMigrate(db); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	if err := SeedData(db); err != nil {
		return fmt.Errorf("seed data: %w", err)
	}

	return nil
}

// Close releases the underlying connection, discarding the in-memory data.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
