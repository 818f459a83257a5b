// Package errors provides structured error handling for the spotlight overlay.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindInvalidArgument indicates the caller passed unusable input.
	KindInvalidArgument
	// KindInvalidState indicates the call is not allowed in the current state.
	KindInvalidState
	// KindRender indicates a rendering or export error.
	KindRender
	// KindConfig indicates a configuration load or validation error.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid_argument"
	case KindInvalidState:
		return "invalid_state"
	case KindRender:
		return "render"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Sentinel causes wrapped by SpotlightError. Match with errors.Is.
var (
	ErrNoTargets      = stderrors.New("at least one target is required")
	ErrSessionActive  = stderrors.New("a session is already active")
	ErrControllerUsed = stderrors.New("controller already presented a session")
	ErrTargetDetached = stderrors.New("target is not attached to the surface")
)

// SpotlightError represents a structured error raised by the overlay.
type SpotlightError struct {
	// Op is the operation that failed (e.g., "spotlight.Highlight").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *SpotlightError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *SpotlightError) Unwrap() error {
	return e.Err
}

// New returns a SpotlightError stamped with the current time.
func New(op string, kind ErrorKind, err error) *SpotlightError {
	return &SpotlightError{Op: op, Kind: kind, Err: err, Timestamp: time.Now()}
}

// InvalidArgument wraps err as a KindInvalidArgument error.
func InvalidArgument(op string, err error) *SpotlightError {
	return New(op, KindInvalidArgument, err)
}

// InvalidState wraps err as a KindInvalidState error.
func InvalidState(op string, err error) *SpotlightError {
	return New(op, KindInvalidState, err)
}

// KindOf returns the kind of the first SpotlightError in err's chain,
// or KindUnknown.
func KindOf(err error) ErrorKind {
	var se *SpotlightError
	if stderrors.As(err, &se) {
		return se.Kind
	}
	return KindUnknown
}

// IsKind reports whether err's chain holds a SpotlightError of kind.
func IsKind(err error, kind ErrorKind) bool {
	return err != nil && KindOf(err) == kind
}

// Is forwards to the standard library so callers need one errors import.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As forwards to the standard library so callers need one errors import.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "platform.Loop.RunPending").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by the overlay.
type ErrorHandler interface {
	// HandleError is called when an error is reported.
	HandleError(err *SpotlightError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
