package errors

import (
	"context"
	"log/slog"

	"github.com/go-drift/spotlight/pkg/logging"
)

// LogHandler is an ErrorHandler that writes errors to a slog logger.
type LogHandler struct {
	// Logger receives the records; nil uses logging.Logger().
	Logger *slog.Logger
	// Verbose adds stack traces to panic records.
	Verbose bool
}

func (h *LogHandler) logger() *slog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return logging.Logger()
}

// HandleError logs a SpotlightError. Rejected calls (invalid argument or
// state) are logged at warn level, everything else at error level.
func (h *LogHandler) HandleError(err *SpotlightError) {
	if err == nil {
		return
	}
	level := slog.LevelError
	if err.Kind == KindInvalidArgument || err.Kind == KindInvalidState {
		level = slog.LevelWarn
	}
	h.logger().Log(context.Background(), level, "spotlight error",
		"op", err.Op,
		"kind", err.Kind.String(),
		"error", err.Err,
	)
}

// HandlePanic logs a PanicError at error level.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	attrs := []any{"op", err.Op, "value", err.Value}
	if h.Verbose && err.StackTrace != "" {
		attrs = append(attrs, "stack", err.StackTrace)
	}
	h.logger().Error("spotlight panic", attrs...)
}
