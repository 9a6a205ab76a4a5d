package quotes

import "errors"

var (
	// ErrNotFound indicates the requested quote doesn't exist
	ErrNotFound = errors.New("quote not found")

	// ErrEmptyText indicates a create/update was attempted with empty or
	// whitespace-only quote text
	ErrEmptyText = errors.New("quote text is required")
)
