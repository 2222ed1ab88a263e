package colour

import (
	"errors"
	"fmt"
)

// ErrInvalidFormat is returned when a string is not a 6-digit hex colour.
var ErrInvalidFormat = errors.New("invalid hex colour format")

// FormatError records the input that failed to parse.
type FormatError struct {
	Input string
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: %q (expected #RRGGBB)", ErrInvalidFormat, e.Input)
}

// Unwrap allows errors.Is(err, ErrInvalidFormat).
func (e *FormatError) Unwrap() error {
	return ErrInvalidFormat
}
