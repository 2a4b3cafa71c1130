package store

import (
	"fmt"

	"github.com/lixenwraith/swish/config"
)

// HighScores persists the best score across runs
type HighScores interface {
	// Load returns the persisted best score, zero when none exists
	Load() (int, error)
	// Save persists a new best score
	Save(value int) error
	// Close releases backend resources
	Close() error
}

// New creates the backend selected by cfg
func New(cfg config.StoreConfig) (HighScores, error) {
	switch cfg.Backend {
	case "memory":
		return NewMemory(), nil
	case "sqlite":
		return NewSqlite(cfg.Path)
	default:
		return nil, fmt.Errorf("store: unknown backend %q", cfg.Backend)
	}
}
