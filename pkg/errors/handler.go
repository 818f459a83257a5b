package errors

import (
	"fmt"
	"runtime"
	"strings"
	"sync/atomic"
	"time"
)

type handlerSlot struct{ h ErrorHandler }

var handler atomic.Pointer[handlerSlot]

func init() {
	handler.Store(&handlerSlot{h: &LogHandler{}})
}

// SetHandler installs the handler that receives reported errors and
// recovered panics. Pass nil to restore the default LogHandler.
func SetHandler(h ErrorHandler) {
	if h == nil {
		h = &LogHandler{}
	}
	handler.Store(&handlerSlot{h: h})
}

// Handler returns the installed error handler.
func Handler() ErrorHandler {
	return handler.Load().h
}

// Report forwards the SpotlightError in err's chain to the installed
// handler, stamping its Timestamp, and returns err unchanged so callers can
// report at the point they return. Errors without a SpotlightError in their
// chain are returned without being reported.
func Report(err error) error {
	var se *SpotlightError
	if !As(err, &se) {
		return err
	}
	if se.Timestamp.IsZero() {
		se.Timestamp = time.Now()
	}
	Handler().HandleError(se)
	return err
}

// Recover reports a panic in the surrounding function and stops it.
// Usage: defer errors.Recover("platform.Loop.RunPending")
func Recover(op string) {
	if r := recover(); r != nil {
		reportPanic(op, r)
	}
}

// RecoverWithCallback is like Recover and then hands the panic value to
// callback.
func RecoverWithCallback(op string, callback func(r any)) {
	if r := recover(); r != nil {
		reportPanic(op, r)
		if callback != nil {
			callback(r)
		}
	}
}

func reportPanic(op string, value any) {
	Handler().HandlePanic(&PanicError{
		Op:         op,
		Value:      value,
		StackTrace: stack(4),
		Timestamp:  time.Now(),
	})
}

// stack formats the calling goroutine's frames, skipping the innermost
// skip frames.
func stack(skip int) string {
	var pcs [32]uintptr
	n := runtime.Callers(skip, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])
	var sb strings.Builder
	for n > 0 {
		frame, more := frames.Next()
		fmt.Fprintf(&sb, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
		if !more {
			break
		}
	}
	return sb.String()
}
