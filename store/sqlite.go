package store

import (
	"errors"
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// highScore is the single-row table holding the persisted best
type highScore struct {
	ID    uint `gorm:"primarykey"`
	Value int
}

// Sqlite persists the best score in a SQLite database via gorm
// An empty path keeps the database in memory
type Sqlite struct {
	db *gorm.DB
}

func NewSqlite(path string) (*Sqlite, error) {
	dsn := path
	if dsn == "" {
		dsn = "file::memory:?cache=shared"
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("store: open sqlite %q: %w", dsn, err)
	}
	if err := db.AutoMigrate(&highScore{}); err != nil {
		return nil, fmt.Errorf("store: migrate: %w", err)
	}
	return &Sqlite{db: db}, nil
}

func (s *Sqlite) Load() (int, error) {
	var row highScore
	err := s.db.First(&row, 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("store: load high score: %w", err)
	}
	return row.Value, nil
}

func (s *Sqlite) Save(value int) error {
	row := highScore{ID: 1, Value: value}
	if err := s.db.Save(&row).Error; err != nil {
		return fmt.Errorf("store: save high score: %w", err)
	}
	return nil
}

func (s *Sqlite) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("store: close: %w", err)
	}
	return sqlDB.Close()
}
