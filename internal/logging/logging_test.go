package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/fixtab/internal/logging"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for input, want := range tests {
		t.Run(input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, want, logging.ParseLevel(input))
		})
	}
}

// Setup replaces the default logger, so these tests do not run in parallel.

func TestSetupJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.Setup(&buf, "warn", "json")
	logger.Info("hidden")
	logger.Warn("shown", "line", 3)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "shown", rec["msg"])
	assert.Equal(t, "WARN", rec["level"])
	assert.EqualValues(t, 3, rec["line"])
	assert.Same(t, logger, slog.Default())
}

func TestSetupText(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.Setup(&buf, "debug", "text")
	logger.Debug("parsing file", "path", "hotels.txt")
	assert.Contains(t, buf.String(), `msg="parsing file" path=hotels.txt`)
}
