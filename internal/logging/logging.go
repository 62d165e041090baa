// Package logging configures the process-wide zerolog logger.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config controls log level and output format.
type Config struct {
	Level      string `json:"level"`       // debug, info, warn, error
	Format     string `json:"format"`      // "json" or "pretty"
	TimeFormat string `json:"time_format"` // timestamp layout, RFC3339 when empty
}

// New builds a logger from the config. Unparseable levels fall back to info.
func New(cfg Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	timeFormat := cfg.TimeFormat
	if timeFormat == "" {
		timeFormat = time.RFC3339
	}

	var output io.Writer = os.Stderr
	if cfg.Format == "pretty" {
		output = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: timeFormat}
	}

	zerolog.TimeFieldFormat = timeFormat
	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}

// Nop returns a disabled logger for callers that want silence.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
