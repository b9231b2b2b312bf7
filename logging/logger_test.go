package logging

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger_DefaultDiscards(t *testing.T) {
	SetLogger(nil)
	assert.NotNil(t, Logger())
	assert.False(t, Logger().Enabled(t.Context(), slog.LevelError))
}

func TestBufferedHandler(t *testing.T) {
	h := NewBufferedHandler(&slog.HandlerOptions{Level: slog.LevelInfo})
	SetLogger(slog.New(h))
	defer SetLogger(nil)

	Logger().Debug("hidden")
	Logger().WithGroup("job").Info("converted", "entities", 3)

	assert.False(t, h.Contains("hidden"))
	assert.True(t, h.Contains("converted"))
	assert.True(t, h.Contains("job.entities=3"))

	h.Reset()
	assert.Empty(t, h.String())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel(" WARN "))
	assert.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
}
