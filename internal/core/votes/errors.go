package votes

import (
	"errors"
	"fmt"
)

var (
	// ErrVoteNotFound indicates no vote exists for the (user, quote) pair
	ErrVoteNotFound = errors.New("vote not found")

	// ErrDuplicateVote indicates the user already voted in this direction
	// on this quote; repeat same-direction votes are rejected unchanged
	ErrDuplicateVote = errors.New("user already voted in this direction")

	// ErrInvalidDirection indicates the vote direction is not "up" or "down"
	ErrInvalidDirection = errors.New("invalid vote direction: must be 'up' or 'down'")
)

// ValidationError indicates a required field is missing or malformed
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

// NewValidationError creates a validation error for a field
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
