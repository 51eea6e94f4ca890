package tracker

import (
	"errors"
	"fmt"
)

// ErrNoProfile is returned by operations that need a stored profile when
// nobody has logged in on this device yet.
var ErrNoProfile = errors.New("no profile stored")

// ValidationError rejects a mutation before anything is written.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err carries a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
