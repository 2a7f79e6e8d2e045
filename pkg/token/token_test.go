package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRememberTokenRoundTrip(t *testing.T) {
	m := NewManager("test-secret", 30*24*time.Hour)

	tok, err := m.GenerateRememberToken("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, err := m.ValidateRememberToken(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestRememberTokenWrongSecret(t *testing.T) {
	m := NewManager("secret-a", time.Hour)
	other := NewManager("secret-b", time.Hour)

	tok, err := m.GenerateRememberToken("user-123")
	require.NoError(t, err)

	_, err = other.ValidateRememberToken(tok)
	assert.Error(t, err)
}

func TestRememberTokenExpired(t *testing.T) {
	m := NewManager("test-secret", -time.Minute)

	tok, err := m.GenerateRememberToken("user-123")
	require.NoError(t, err)

	_, err = m.ValidateRememberToken(tok)
	assert.Error(t, err)
}

func TestRememberTokenGarbage(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	_, err := m.ValidateRememberToken("not.a.token")
	assert.Error(t, err)
}
