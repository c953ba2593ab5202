package database

import (
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"manjai/server/internal/models"
)

// Database wraps the gorm connection to the sqlite user store.
type Database struct {
	db *gorm.DB
}

func NewDatabase(dbPath string) (*Database, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %v", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	return &Database{db: db}, nil
}

// NewMemoryDatabase opens a private in-memory database, used by tests.
func NewMemoryDatabase() (*Database, error) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	// A single connection keeps every query on the same in-memory
	// database instance.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	return &Database{db: db}, nil
}

// GetDB exposes the underlying gorm handle.
func (d *Database) GetDB() *gorm.DB {
	return d.db
}

// RunMigrations creates or updates the users table.
func (d *Database) RunMigrations() error {
	return d.db.AutoMigrate(&models.User{})
}

func (d *Database) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
