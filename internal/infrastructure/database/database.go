package database

import (
	"fmt"
	"strings"

	"hospital-food-manager/config"
	"hospital-food-manager/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects using the configured driver and, when enabled, creates any
// missing tables.
func Open(cfg config.DBConfig, log *logrus.Logger) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	switch cfg.Driver {
	case config.DriverPostgres, "":
		db, err = NewPostgresConnection(cfg)
	case config.DriverSQLite:
		db, err = NewSQLiteConnection(cfg)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	log.WithField("driver", db.Dialector.Name()).Info("Database connection established")

	if cfg.AutoMigrate {
		if err := AutoMigrate(db, log); err != nil {
			return nil, err
		}
	}

	return db, nil
}

func AutoMigrate(db *gorm.DB, log *logrus.Logger) error {
	if err := db.AutoMigrate(entity.All()...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database schema migrated")
	return nil
}

func gormConfig(cfg config.DBConfig) *gorm.Config {
	return &gorm.Config{
		Logger: logger.Default.LogMode(parseLogLevel(cfg.LogLevel)),
	}
}

func configurePool(db *gorm.DB, cfg config.DBConfig) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	return nil
}

func parseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
