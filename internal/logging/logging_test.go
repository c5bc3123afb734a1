package logging_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/roster/internal/logging"
)

func TestNew_LevelParsing(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  zerolog.Level
	}{
		{name: "debug", level: "debug", want: zerolog.DebugLevel},
		{name: "warn", level: "warn", want: zerolog.WarnLevel},
		{name: "empty falls back to info", level: "", want: zerolog.InfoLevel},
		{name: "garbage falls back to info", level: "nope", want: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := logging.New(logging.Config{Level: tt.level})
			require.NoError(t, err)
			assert.Equal(t, tt.want, logger.GetLevel())
		})
	}
}

func TestNew_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.log")

	logger, err := logging.New(logging.Config{Level: "info", File: path})
	require.NoError(t, err)
	logger.Info().Msg("hello")

	assert.FileExists(t, path)
}

func TestNew_BadFileDegradesToStderr(t *testing.T) {
	_, err := logging.New(logging.Config{
		Level: "info",
		File:  filepath.Join(t.TempDir(), "missing-dir", "roster.log"),
	})
	assert.Error(t, err)
}

func TestTraceID_RoundTrip(t *testing.T) {
	ctx := context.Background()

	id := logging.NewTraceID()
	require.NotEmpty(t, id)

	ctx = logging.ContextWithTraceID(ctx, id)
	assert.Equal(t, id, logging.TraceIDFromContext(ctx))
	assert.Equal(t, id, logging.GetOrGenerateTraceID(ctx))

	fresh := logging.GetOrGenerateTraceID(context.Background())
	assert.NotEmpty(t, fresh)
	assert.NotEqual(t, id, fresh)
}

func TestWithTraceID_StampsEvents(t *testing.T) {
	var buf bytes.Buffer
	id := logging.NewTraceID()

	logger := logging.WithTraceID(zerolog.New(&buf), id)
	logger.Info().Msg("started")

	assert.Contains(t, buf.String(), `"trace_id":"`+id+`"`)
}
