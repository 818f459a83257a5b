package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLoggerIsSilent(t *testing.T) {
	SetLogger(nil)
	assert.False(t, Logger().Enabled(t.Context(), slog.LevelError))
}

func TestInit_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	l := Init("debug", "text", &buf)
	t.Cleanup(func() { SetLogger(nil) })

	require.Same(t, l, Logger())
	WithSession("abc").Debug("highlight started", "regions", 2)

	out := buf.String()
	assert.Contains(t, out, "session_id=abc")
	assert.Contains(t, out, "regions=2")
	assert.Contains(t, out, "level=DEBUG")
}

func TestInit_JSONFormatFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	Init("warn", "json", &buf)
	t.Cleanup(func() { SetLogger(nil) })

	Logger().Info("dropped")
	Logger().Warn("kept")

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), `"msg":"kept"`)
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}
