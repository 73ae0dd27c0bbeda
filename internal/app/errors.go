package app

import (
	"errors"
	"strings"
)

// ErrQuit is returned by the editor loop once the application reaches the
// exit mode. main treats it as a clean shutdown.
var ErrQuit = errors.New("quit requested")

// OperationError is a startup failure: what quill was doing (Op), what it was
// doing it to (Target, may be empty) and why it failed.
type OperationError struct {
	Op     string
	Target string
	Err    error
}

func NewOperationError(op, target string, err error) *OperationError {
	return &OperationError{Op: op, Target: target, Err: err}
}

// Error reads "op target: cause", dropping the parts that are empty.
func (e *OperationError) Error() string {
	parts := make([]string, 0, 2)
	for _, s := range []string{e.Op, e.Target} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	msg := strings.Join(parts, " ")
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *OperationError) Unwrap() error { return e.Err }
