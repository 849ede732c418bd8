package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"kas-dashboard-svc/internal/config"
	"kas-dashboard-svc/internal/models"
)

// Database wraps the gorm connection holding the service's own tables
type Database struct {
	DB *gorm.DB
}

// NewDatabase opens the PostgreSQL connection described by cfg
func NewDatabase(cfg *config.DatabaseConfig) (*Database, error) {
	db, err := gorm.Open(postgres.Open(cfg.GetDSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return &Database{DB: db}, nil
}

// Wrap uses an already opened connection, e.g. an in-memory sqlite in tests
func Wrap(db *gorm.DB) *Database {
	return &Database{DB: db}
}

// AutoMigrate creates or updates the export history table
func (d *Database) AutoMigrate() error {
	return d.DB.AutoMigrate(&models.ExportLog{})
}

// Close closes the underlying connection pool
func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
