package logpkg

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/pet-atm/pkg/configpkg"
)

func TestNewLevel(t *testing.T) {
	testCases := []struct {
		name      string
		config    configpkg.Config
		wantLevel zerolog.Level
	}{
		{
			name:      "Default",
			config:    configpkg.Config{},
			wantLevel: zerolog.ErrorLevel,
		},
		{
			name:      "Info",
			config:    configpkg.Config{LogLevel: "info"},
			wantLevel: zerolog.InfoLevel,
		},
		{
			name:      "Development",
			config:    configpkg.Config{LogLevel: "error", Environement: "development"},
			wantLevel: zerolog.TraceLevel,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer

			l := newLogger(tc.config, &buf)
			require.Equal(t, tc.wantLevel, l.GetLevel())
		})
	}
}

func TestWithSession(t *testing.T) {
	var buf bytes.Buffer

	l := newLogger(configpkg.Config{LogLevel: "info"}, &buf)

	ctx, sessionID := WithSession(context.Background(), l)
	_, err := uuid.Parse(sessionID)
	require.NoError(t, err)

	zerolog.Ctx(ctx).Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, sessionID, entry["session_id"])
	require.Equal(t, "hello", entry["message"])
}
