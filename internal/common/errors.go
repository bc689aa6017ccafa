// Package common contains shared constants and sentinel errors used across
// EventHub client components. Callers should use errors.Is to match these
// values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Session errors.
	ErrNotAuthenticated = errors.New("not authenticated")

	// Local form validation errors (detected before any network call).
	// Each wraps ErrValidation so callers can match the whole class.
	ErrValidation       = errors.New("validation error")
	ErrPasswordMismatch = fmt.Errorf("%w: passwords do not match", ErrValidation)
	ErrPasswordTooShort = fmt.Errorf("%w: password must be at least 6 characters", ErrValidation)
	ErrFieldRequired    = fmt.Errorf("%w: required field is empty", ErrValidation)
)
