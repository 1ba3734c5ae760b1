package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenRoundTrip(t *testing.T) {
	manager := NewTokenManager("test-secret", time.Hour)

	token, err := manager.Issue(42)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	userID, err := manager.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestTokenExpired(t *testing.T) {
	manager := NewTokenManager("test-secret", -time.Minute)

	token, err := manager.Issue(42)
	assert.NoError(t, err)

	_, err = manager.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenWrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-one", time.Hour)
	verifier := NewTokenManager("secret-two", time.Hour)

	token, err := issuer.Issue(42)
	assert.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenGarbage(t *testing.T) {
	manager := NewTokenManager("test-secret", time.Hour)

	_, err := manager.Verify("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
