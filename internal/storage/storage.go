// Package storage provides naming-history tracking using GORM and SQLite.
// The history is opt-in: when enabled, every successfully derived token is
// recorded, and later runs get an advisory when they reproduce one.
package storage

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Sentinel errors following Dave Cheney's principle: define errors as values
var (
	ErrNilToken = errors.New("token record cannot be nil")
	ErrNotFound = errors.New("token not found")
)

// GeneratedToken records one derived name.
type GeneratedToken struct {
	ID uint `gorm:"primaryKey"`

	Token         string `gorm:"not null;uniqueIndex:idx_unique_token"`
	FileName      string `gorm:"not null"`
	CanonicalName string `gorm:"not null"`
	SourceInput   string

	GeneratedAt time.Time `gorm:"not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Store defines the interface for naming-history operations
type Store interface {
	Close() error
	RecordToken(*GeneratedToken) error
	GetToken(token string) (*GeneratedToken, error)
	TokenExists(token string) (bool, error)
	ListAll() ([]*GeneratedToken, error)
}

// DB wraps gorm.DB with our history operations
type DB struct {
	db *gorm.DB
}

// Config holds database configuration
type Config struct {
	DatabasePath string
	LogLevel     string // silent, error, warn, info
}

// InitDB initializes the database connection and runs migrations
func InitDB(cfg Config) (*DB, error) {
	logLevel := logger.Silent
	switch cfg.LogLevel {
	case "error":
		logLevel = logger.Error
	case "warn":
		logLevel = logger.Warn
	case "info":
		logLevel = logger.Info
	}

	db, err := gorm.Open(sqlite.Open(cfg.DatabasePath), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&GeneratedToken{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database connection
func (d *DB) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying SQL DB: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}

// RecordToken creates a new history record
func (d *DB) RecordToken(token *GeneratedToken) error {
	if token == nil {
		return ErrNilToken
	}
	if token.GeneratedAt.IsZero() {
		token.GeneratedAt = time.Now()
	}
	if err := d.db.Create(token).Error; err != nil {
		return fmt.Errorf("failed to record token: %w", err)
	}
	return nil
}

// GetToken retrieves a history record by token
func (d *DB) GetToken(token string) (*GeneratedToken, error) {
	var record GeneratedToken
	err := d.db.Where("token = ?", token).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get token: %w", err)
	}
	return &record, nil
}

// TokenExists checks whether a token was recorded by an earlier run
func (d *DB) TokenExists(token string) (bool, error) {
	var count int64
	err := d.db.Model(&GeneratedToken{}).Where("token = ?", token).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check token existence: %w", err)
	}
	return count > 0, nil
}

// ListAll returns every history record, newest first
func (d *DB) ListAll() ([]*GeneratedToken, error) {
	var records []*GeneratedToken
	if err := d.db.Order("generated_at desc").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list tokens: %w", err)
	}
	return records, nil
}
