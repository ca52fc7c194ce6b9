package database

import (
	"fmt"

	"hospital-food-manager/config"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NewSQLiteConnection opens a file-backed (or ":memory:") database for local
// development. SQLite allows a single writer, so the pool is capped at one
// open connection.
func NewSQLiteConnection(cfg config.DBConfig) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.SQLitePath), gormConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	cfg.MaxOpenConns = 1
	cfg.MaxIdleConns = 1
	if err := configurePool(db, cfg); err != nil {
		return nil, err
	}

	return db, nil
}
