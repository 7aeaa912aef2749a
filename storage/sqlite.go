package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// slot is a row of the slots table.
type slot struct {
	Name      string `gorm:"primaryKey"`
	Value     []byte
	UpdatedAt time.Time
}

// SQLite is a Backend storing slots as rows of a SQLite database.
type SQLite struct {
	db *gorm.DB
}

// OpenSQLite opens (or creates) the database file at path.
//
// Use ":memory:" for a transient database.
func OpenSQLite(path string) (*SQLite, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if path == ":memory:" {
		// every connection would get its own empty database.
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("get sql db: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	} else {
		_ = db.Exec("PRAGMA journal_mode = WAL;").Error
	}
	if err := db.AutoMigrate(&slot{}); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	return &SQLite{db: db}, nil
}

// Get reads the row of this key.
func (s *SQLite) Get(key string) ([]byte, error) {
	var row slot
	err := s.db.Where("name = ?", key).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notExist(key)
	}
	if err != nil {
		return nil, fmt.Errorf("read slot %q: %w", key, err)
	}
	return row.Value, nil
}

// Put inserts or replaces the row of this key.
func (s *SQLite) Put(key string, value []byte) error {
	row := slot{Name: key, Value: value, UpdatedAt: time.Now().UTC()}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("write slot %q: %w", key, err)
	}
	return nil
}

// Close releases the database.
func (s *SQLite) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
