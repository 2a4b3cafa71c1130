package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/swish/config"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New builds the process logger from config.
// With a file path the logger writes JSON lines there; otherwise it writes
// a console writer to stderr. Terminal mode passes a file because tcell
// owns the screen.
func New(cfg config.LogConfig) (zerolog.Logger, io.Closer, error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("logging: parse level %q: %w", cfg.Level, err)
	}

	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return zerolog.Nop(), nopCloser{}, fmt.Errorf("logging: open %s: %w", cfg.File, err)
		}
		logger := zerolog.New(f).Level(level).With().Timestamp().Logger()
		return logger, f, nil
	}

	writer := zerolog.ConsoleWriter{Out: os.Stderr}
	logger := zerolog.New(writer).Level(level).With().Timestamp().Logger()
	return logger, nopCloser{}, nil
}
