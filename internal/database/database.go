package database

import (
	"fmt"

	"customer-tracker/internal/database/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Options struct {
	LogLevel    logger.LogLevel
	AutoMigrate bool
}

// Initialize opens the SQLite store and idempotently creates the schema from
// the GORM models. Safe to call on every startup. The returned handle is held
// for the process lifetime; one interactive session drives it sequentially.
func Initialize(path string, opts *Options) (*gorm.DB, error) {
	// Defaults
	if opts == nil {
		opts = &Options{AutoMigrate: true}
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Error
	}

	// Open DB. TranslateError maps unique-constraint failures to
	// gorm.ErrDuplicatedKey so the repositories can surface conflicts.
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:         logger.Default.LogMode(opts.LogLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// Value-pair cascades run in the repository layer, but the pragma still
	// guards any stored data written by other tools against torn references.
	if err := db.Exec(`PRAGMA foreign_keys = ON`).Error; err != nil {
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	// Single operator, single process: one connection keeps every operation
	// on a consistent snapshot and lets in-memory test databases persist.
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	}

	if opts.AutoMigrate {
		all := []interface{}{
			&models.Customer{},
			&models.Product{},
			&models.Assignment{},
		}
		if err := db.AutoMigrate(all...); err != nil {
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}
	}

	return db, nil
}
