// Package logger builds the zerolog logger every component derives its
// tagged sub-logger from (component/client/handler/job fields).
package logger

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config holds logger configuration.
type Config struct {
	Level  string // trace, debug, info, warn, error; unknown values mean info
	Pretty bool   // Human-readable console output for local development
}

// New creates the root structured logger. Production output is one JSON
// object per line on stdout; dev mode switches to the colorized console
// writer.
func New(cfg Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339

	logger := zerolog.New(os.Stdout)
	if cfg.Pretty {
		logger = logger.Output(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: "15:04:05",
		})
	}

	return logger.With().Timestamp().Caller().Logger()
}

// SetGlobalLogger routes the package-level zerolog/log helpers through the
// given logger so stray log.Info() calls land in the same stream.
func SetGlobalLogger(l zerolog.Logger) {
	log.Logger = l
}
