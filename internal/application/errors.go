package application

import "errors"

// Sentinel errors for common conditions
var (
	// ErrAborted means the user ended an interactive flow with empty
	// input. It is informational, not a failure.
	ErrAborted = errors.New("aborted")

	ErrNotFound = errors.New("not found")
)
