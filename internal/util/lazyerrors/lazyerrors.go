// Package lazyerrors provides a way to wrap errors with a call site,
// without the cost of a full stack trace on every allocation.
package lazyerrors

import (
	"errors"
	"fmt"
	"runtime"
)

// wrapped is an error annotated with the file:line of the call that created it.
type wrapped struct {
	err    error
	caller string
}

// Error implements the error interface.
func (w *wrapped) Error() string {
	return fmt.Sprintf("%s: %s", w.caller, w.err)
}

// Unwrap allows errors.Is / errors.As to see through the wrapper.
func (w *wrapped) Unwrap() error {
	return w.err
}

// caller returns "file:line" for the function that called into this package,
// skipping this package's own frames.
func caller() string {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return "unknown"
	}

	return fmt.Sprintf("%s:%d", file, line)
}

// New creates a new error with msg, annotated with the caller's location.
func New(msg string) error {
	return &wrapped{err: errors.New(msg), caller: caller()}
}

// Error wraps err with the caller's location. It returns nil if err is nil.
func Error(err error) error {
	if err == nil {
		return nil
	}

	return &wrapped{err: err, caller: caller()}
}

// Errorf creates a new error from format and args (as [fmt.Errorf] would),
// annotated with the caller's location.
func Errorf(format string, args ...any) error {
	return &wrapped{err: fmt.Errorf(format, args...), caller: caller()}
}
