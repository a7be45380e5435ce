package remoteauth

import (
	"errors"
	"fmt"
)

// Standard errors for the remoteauth package
var (
	// ErrInvalidConfig indicates the shared token or auth URL is missing or malformed
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNotInitialized indicates the default settings could not be created
	ErrNotInitialized = errors.New("remoteauth not initialized")

	// ErrRequiredField indicates a mandatory identity field was missing or blank
	ErrRequiredField = errors.New("required field missing")
)

// RequiredFieldError reports which identity field failed validation.
type RequiredFieldError struct {
	Field string // "name" or "email"
	Err   error  // Underlying validation error
}

// Error implements the error interface
func (e *RequiredFieldError) Error() string {
	return fmt.Sprintf("%s: %s", ErrRequiredField, e.Field)
}

// Is matches ErrRequiredField
func (e *RequiredFieldError) Is(target error) bool {
	return target == ErrRequiredField
}

// Unwrap returns the underlying validation error
func (e *RequiredFieldError) Unwrap() error {
	return e.Err
}

func configError(key string) error {
	return fmt.Errorf("%w: %s is not set", ErrInvalidConfig, key)
}
