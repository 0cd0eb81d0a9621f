package oas

import "log/slog"

// Logger receives the encoder's diagnostics: Debug when an encode starts and
// ends, Warn when legacy callback mode drops an expression.
//
// Attributes are alternating key-value pairs as in log/slog, so a
// *slog.Logger can be passed directly:
//
//	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
//	enc := oas.NewEncoder(oas.WithLogger(slog.New(handler)))
type Logger interface {
	Debug(msg string, attrs ...any)
	Warn(msg string, attrs ...any)
}

// NopLogger discards everything. It is the encoder's default.
type NopLogger struct{}

// Debug implements Logger.
func (NopLogger) Debug(string, ...any) {}

// Warn implements Logger.
func (NopLogger) Warn(string, ...any) {}

var (
	_ Logger = NopLogger{}
	_ Logger = (*slog.Logger)(nil)
)
