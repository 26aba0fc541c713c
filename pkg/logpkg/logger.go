// Package logpkg builds application loggers.
package logpkg

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"

	"github.com/go-petr/pet-atm/pkg/configpkg"
)

// New returns logger configured for the environment.
//
// Logs go to stderr so they never mix with the console protocol on stdout.
func New(config configpkg.Config) zerolog.Logger {
	return newLogger(config, os.Stderr)
}

func newLogger(config configpkg.Config, output io.Writer) zerolog.Logger {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	logLevel, err := zerolog.ParseLevel(config.LogLevel)
	if err != nil || config.LogLevel == "" {
		logLevel = zerolog.ErrorLevel
	}

	log := zerolog.New(output).
		Level(logLevel).
		With().
		Timestamp().
		Logger()

	if config.Environement == "development" {
		log = log.
			Output(zerolog.ConsoleWriter{Out: output, TimeFormat: time.RFC3339}).
			Level(zerolog.TraceLevel).
			With().
			Caller().
			Logger()
	}

	return log
}

// WithSession attaches a logger tagged with a fresh session ID to ctx.
func WithSession(ctx context.Context, logger zerolog.Logger) (context.Context, string) {
	sessionID := uuid.NewString()

	l := logger.With().Str("session_id", sessionID).Logger()

	return l.WithContext(ctx), sessionID
}
