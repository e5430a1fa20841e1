package services

import "errors"

// Service error taxonomy. Errors are wrapped with a context message via
// fmt.Errorf("%w: ...") and mapped to HTTP statuses in the controllers.
var (
	// ErrValidation marks malformed or missing input.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound marks an unknown identifier.
	ErrNotFound = errors.New("not found")
	// ErrForbidden marks a caller who does not own the resource.
	ErrForbidden = errors.New("forbidden")
	// ErrConflict marks a uniqueness violation.
	ErrConflict = errors.New("conflict")
	// ErrInvalidCredentials marks a failed sign-in. The message is the
	// same for unknown email and wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
