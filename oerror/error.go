package oerror

import "fmt"

// Error is the error type returned for invalid configuration and misuse of the simulation
// runner. Failed geometry queries are never errors.
type Error struct {
	Err string
}

func New(format string, args ...any) *Error {
	return &Error{Err: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	return e.Err
}
