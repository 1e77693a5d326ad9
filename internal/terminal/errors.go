package terminal

import "errors"

// ErrInterrupted is returned by ReadKey when a termination signal arrives
// while waiting for input.
var ErrInterrupted = errors.New("interrupted by signal")

// FatalError reports a terminal operation the editor cannot continue
// without: reading or writing terminal attributes, or sizing the window.
type FatalError struct {
	Op  string
	Err error
}

func (e *FatalError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *FatalError) Unwrap() error { return e.Err }
