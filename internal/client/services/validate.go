package services

import (
	"fmt"

	"github.com/avryabov/eventhub-cli/internal/common"
)

// ValidateNewPassword applies the local password rules checked before any
// network call: the password and its confirmation must match, and the
// password must be at least common.MinPasswordLength characters. Violations
// short-circuit the submit with a local error; no request is made.
func ValidateNewPassword(password, confirm string) error {
	if password != confirm {
		return common.ErrPasswordMismatch
	}
	if len([]rune(password)) < common.MinPasswordLength {
		return common.ErrPasswordTooShort
	}
	return nil
}

// requireFields takes name/value pairs and returns ErrFieldRequired naming
// the first empty value.
func requireFields(pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] == "" {
			return fmt.Errorf("%w: %s", common.ErrFieldRequired, pairs[i])
		}
	}
	return nil
}
