package oas

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNopLogger(t *testing.T) {
	assert.NotPanics(t, func() {
		var l Logger = NopLogger{}
		l.Debug("message", "key", "value")
		l.Warn("message", "key", "value")
	})
}

func TestSlogLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	var l Logger = slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	l.Debug("debug message", "n", 1)
	l.Warn("warn message")

	out := buf.String()
	for _, want := range []string{"level=DEBUG", "debug message", "n=1", "level=WARN", "warn message"} {
		assert.Contains(t, out, want)
	}
}
