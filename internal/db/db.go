// Package db provides a GORM-based database layer for Stickerdex.
// It uses the pure-Go SQLite driver.
package db

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/emotebox/stickerdex/internal/models"
)

// DB wraps the GORM database connection with Stickerdex-specific operations.
type DB struct {
	*gorm.DB
	path string
}

// Config holds database configuration options.
type Config struct {
	Path        string
	Debug       bool
	MaxIdleConn int
	MaxOpenConn int
}

// DefaultConfig returns sensible defaults.
func DefaultConfig(path string) Config {
	return Config{
		Path:        path,
		Debug:       false,
		MaxIdleConn: 1,
		MaxOpenConn: 1,
	}
}

// New creates a new database connection and runs migrations.
func New(cfg Config) (*DB, error) {
	// Ensure directory exists
	dir := filepath.Dir(cfg.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	// Configure GORM logger
	logLevel := logger.Silent
	if cfg.Debug {
		logLevel = logger.Info
	}

	// Build DSN with DELETE journal mode for simpler transaction handling
	// (WAL mode has visibility issues with the pure-Go SQLite driver)
	dsn := fmt.Sprintf("%s?_pragma=journal_mode(DELETE)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)", cfg.Path)

	// Open database with pure-Go SQLite driver
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                 logger.Default.LogMode(logLevel),
		SkipDefaultTransaction: true, // Better performance for read operations
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Configure connection pool
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConn)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConn)
	sqlDB.SetConnMaxLifetime(time.Hour)

	wrapped := &DB{DB: db, path: cfg.Path}

	// Run auto-migrations
	if err := wrapped.migrate(); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	// Seed default catalog metadata
	if err := wrapped.seedCatalogMeta(); err != nil {
		return nil, fmt.Errorf("seed catalog meta: %w", err)
	}

	return wrapped, nil
}

// migrate runs GORM auto-migrations for all models.
func (db *DB) migrate() error {
	return db.AutoMigrate(
		&models.User{},
		&models.Sticker{},
		&models.Tag{},
		&models.StickerTag{},
		&models.CatalogMeta{},
	)
}

// seedCatalogMeta inserts default catalog metadata if not present.
func (db *DB) seedCatalogMeta() error {
	defaults := []models.CatalogMeta{
		{Key: models.MetaSchemaVersion, Value: "1"},
		{Key: models.MetaLastImportAt, Value: ""},
		{Key: models.MetaLastExportAt, Value: ""},
	}

	for _, meta := range defaults {
		// Only insert if not exists
		result := db.Where("key = ?", meta.Key).FirstOrCreate(&meta)
		if result.Error != nil {
			return result.Error
		}
	}

	return nil
}

// Path returns the database file path.
func (db *DB) Path() string {
	return db.path
}

// Close closes the database connection.
func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Transaction executes a function within a database transaction.
// The callback receives a *DB wrapper that uses the transaction.
// If the callback returns an error, the transaction is rolled back.
// If the callback returns nil, the transaction is committed.
func (d *DB) Transaction(fc func(tx *DB) error) error {
	return d.DB.Transaction(func(tx *gorm.DB) error {
		wrappedTx := &DB{DB: tx, path: d.path}
		return fc(wrappedTx)
	})
}

// GetStats returns aggregate statistics about the catalog.
func (db *DB) GetStats() (*models.CatalogStats, error) {
	var stats models.CatalogStats

	if err := db.Model(&models.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	if err := db.Model(&models.Sticker{}).Count(&stats.TotalStickers).Error; err != nil {
		return nil, fmt.Errorf("count stickers: %w", err)
	}

	if err := db.Model(&models.Tag{}).Count(&stats.TotalTags).Error; err != nil {
		return nil, fmt.Errorf("count tags: %w", err)
	}

	if err := db.Model(&models.Sticker{}).Where("animated = ?", true).Count(&stats.AnimatedCount).Error; err != nil {
		return nil, fmt.Errorf("count animated: %w", err)
	}

	// Get database file size
	if info, err := os.Stat(db.path); err == nil {
		stats.DBSizeBytes = info.Size()
	}

	stats.LastUpdated = time.Now()

	return &stats, nil
}
