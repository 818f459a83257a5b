// Package logging holds the module-wide structured logger.
//
// Nothing is logged until Init or SetLogger is called; the default logger
// discards every record without formatting it.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"
)

// nopHandler drops every record. Enabled reports false so callers skip
// formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// Init installs a logger writing to w (stderr when nil).
// level: "debug", "info", "warn", "error" (defaults to "info")
// format: "json" or "text" (defaults to "text")
func Init(level, format string, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var handler slog.Handler
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	l := slog.New(handler)
	SetLogger(l)
	return l
}

// ParseLevel maps a level name to a slog.Level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SetLogger replaces the package logger. Pass nil to silence logging.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the current package logger. Safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// WithSession returns a logger with the session_id field.
func WithSession(sessionID string) *slog.Logger {
	return Logger().With("session_id", sessionID)
}

// WithError returns a logger with the error field.
func WithError(err error) *slog.Logger {
	return Logger().With("error", err)
}
