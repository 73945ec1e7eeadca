package color

import "errors"

// ErrInvalidChoice is returned when a color choice cannot be parsed.
var ErrInvalidChoice = errors.New("color: invalid choice")
