package roster

import (
	"errors"
	"fmt"
)

// ValidationError is implemented by every user-correctable failure returned
// from Validate.
type ValidationError interface {
	error
	isValidationError()
}

// EmptyNameError reports a name slot that is blank after trimming.
type EmptyNameError struct {
	// Index is the zero-based slot of the first blank name.
	Index int
}

func (e *EmptyNameError) Error() string {
	return fmt.Sprintf("player %d has an empty name", e.Index+1)
}

func (*EmptyNameError) isValidationError() {}

// NoPlayersError reports a roster with no players at all.
type NoPlayersError struct{}

func (*NoPlayersError) Error() string {
	return "please add at least one player"
}

func (*NoPlayersError) isValidationError() {}

// InsufficientPlayersError reports fewer players than requested teams.
type InsufficientPlayersError struct {
	Required  int
	Available int
}

func (e *InsufficientPlayersError) Error() string {
	return fmt.Sprintf("need at least %d players for %d teams, have %d", e.Required, e.Required, e.Available)
}

func (*InsufficientPlayersError) isValidationError() {}

// IsValidationError reports whether err (or anything it wraps) is a
// ValidationError.
func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}
