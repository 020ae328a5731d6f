package domain

import "errors"

// Sentinel errors for the reservation domain. Callers match these with
// errors.Is after wrapping with fmt.Errorf("%w: ...").
var (
	// ErrInvalidRequest indicates the caller supplied input that fails
	// boundary validation. Core operations are never invoked with it.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrNotFound indicates a booking or alert id that does not exist
	// in the repository.
	ErrNotFound = errors.New("not found")
)
