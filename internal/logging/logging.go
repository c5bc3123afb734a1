package logging

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config controls logger construction.
type Config struct {
	// Level is a zerolog level name ("debug", "info", ...). Invalid or
	// empty values fall back to info.
	Level string

	// Format selects "console" (human-readable, default) or "json".
	Format string

	// File, when set, appends logs to the given path in addition to stderr.
	File string
}

// New creates a zerolog logger from cfg. File open failures degrade to
// stderr-only logging rather than failing startup; the returned error
// reports the degradation so callers can warn about it.
func New(cfg Config) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		lvl = zerolog.InfoLevel
	}

	var writers []io.Writer
	if cfg.Format == "json" {
		writers = append(writers, os.Stderr)
	} else {
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
	}

	var openErr error
	if cfg.File != "" {
		logFile, fileErr := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if fileErr != nil {
			openErr = fileErr
		} else {
			writers = append(writers, logFile)
		}
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(lvl).
		With().
		Timestamp().
		Logger()

	return logger, openErr
}

// ComponentLogger returns a child logger tagged with a component name.
func ComponentLogger(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}

// FromContext returns the logger attached to ctx, or a disabled logger
// when none was attached.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}
