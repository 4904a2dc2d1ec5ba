package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rohitchirag97/HazriPro-Server/internal/infrastructure/repositories"
)

// Open creates a new database connection. TranslateError is enabled so
// unique-index violations surface as gorm.ErrDuplicatedKey, which the
// repositories map to domain conflict errors.
func Open(dsn string) (*gorm.DB, error) {
	config := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	}

	return gorm.Open(postgres.Open(dsn), config)
}

// AutoMigrate performs database migration for all persisted entities
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&repositories.DBUser{},
		&repositories.DBEmployee{},
		&repositories.DBCompany{},
		&repositories.DBShift{},
		&repositories.DBDepartment{},
	); err != nil {
		return fmt.Errorf("failed to migrate tables: %w", err)
	}
	return nil
}
