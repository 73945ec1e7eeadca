package logger

import "errors"

// ErrWrite is returned when console output cannot be written.
var ErrWrite = errors.New("logger: failed to write output")
