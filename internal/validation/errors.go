package validation

import (
	"errors"
	"fmt"
)

// ErrInvalidInput marks errors caused by user input. They are raised before
// anything is written.
var ErrInvalidInput = errors.New("invalid input")

var ErrPasswordMismatch = fmt.Errorf("%w: passwords do not match", ErrInvalidInput)

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
