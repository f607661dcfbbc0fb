package oerror

import (
	"errors"
	"fmt"
)

// Error is the error type returned by the host-facing parts of treefall, such as settings loading and
// handler dispatch. The physics core itself never returns errors.
type Error struct {
	Err   string
	cause error
}

// New returns a new *Error with a message formatted from the format and args passed. If one of the
// args is an error, it is kept as the cause of the returned error.
func New(format string, args ...any) *Error {
	e := &Error{Err: fmt.Sprintf(format, args...)}
	for _, a := range args {
		if err, ok := a.(error); ok {
			e.cause = err
			break
		}
	}
	return e
}

func (e *Error) Error() string {
	return e.Err
}

// Unwrap returns the error that caused e, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether err is an *Error with the same message as e.
func (e *Error) Is(err error) bool {
	var o *Error
	if !errors.As(err, &o) {
		return false
	}
	return o.Err == e.Err
}
