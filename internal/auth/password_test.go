package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{"valid", "Sup3rSecret", nil},
		{"too short", "Ab1", ErrPasswordTooShort},
		{"no uppercase", "abcdefgh1", ErrPasswordNoUpper},
		{"no lowercase", "ABCDEFGH1", ErrPasswordNoLower},
		{"no digit", "Abcdefghi", ErrPasswordNoDigit},
		{"all lowercase", "abcdefgh", ErrPasswordNoUpper},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("Sup3rSecret")
	assert.NoError(t, err)
	assert.NotEqual(t, "Sup3rSecret", hash)

	assert.True(t, CheckPassword("Sup3rSecret", hash))
	assert.False(t, CheckPassword("WrongPassw0rd", hash))
}
