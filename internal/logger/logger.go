// Package logger wraps zerolog.Logger with the constructors and context
// helpers used by logenv and its CLI.
//
// Logger embeds zerolog.Logger, so Debug, Info, Warn and Error are available
// directly. Library code obtains the logger from the context passed to
// Builder.Build; without one, logging is disabled.
package logger

import (
	"context"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// New returns a JSON Logger writing to w at the given level
// ("trace", "debug", "info", "warn", "error"). Unknown levels fall back to info.
func New(w io.Writer, level string) *Logger {
	l := zerolog.New(w).With().
		Str("component", "logenv").
		Timestamp().
		Logger().
		Level(ParseLevel(level))

	return &Logger{l}
}

// Nop returns a Logger that discards all output.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// WithContext returns a copy of ctx carrying l.
func WithContext(ctx context.Context, l *Logger) context.Context {
	return l.Logger.WithContext(ctx)
}

// FromContext returns the Logger carried by ctx.
// If ctx carries none, the returned Logger is disabled; it is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*zerolog.Ctx(ctx)}
}
