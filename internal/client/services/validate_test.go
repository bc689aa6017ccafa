package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avryabov/eventhub-cli/internal/common"
)

func TestValidateNewPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		confirm  string
		wantErr  error
	}{
		{"ok", "secret1", "secret1", nil},
		{"mismatch", "secret1", "secret2", common.ErrPasswordMismatch},
		{"too short", "abc", "abc", common.ErrPasswordTooShort},
		// Mismatch is reported before length.
		{"short and mismatched", "a", "b", common.ErrPasswordMismatch},
		// Length is counted in runes, not bytes.
		{"cyrillic six runes", "пароль", "пароль", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNewPassword(tt.password, tt.confirm)
			if tt.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestRequireFields_FirstEmptyNamed(t *testing.T) {
	err := requireFields("phone", "+7", "full_name", "", "city", "")
	require.ErrorIs(t, err, common.ErrFieldRequired)
	assert.Contains(t, err.Error(), "full_name")

	require.NoError(t, requireFields("phone", "+7"))
}
