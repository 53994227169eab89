package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"comercialsoares.com/app/internal/config"
)

func TestCheckPlaintext(t *testing.T) {
	c := NewChecker(config.AuthConfig{Password: "S600ad"})
	assert.True(t, c.Check("S600ad"))
	assert.False(t, c.Check("wrong"))
	assert.False(t, c.Check(""))
}

func TestCheckBcryptHashWins(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("segredo"), bcrypt.MinCost)
	require.NoError(t, err)

	c := NewChecker(config.AuthConfig{Password: "ignored", PasswordHash: string(hash)})
	assert.True(t, c.Check("segredo"))
	assert.False(t, c.Check("ignored"), "plaintext must be ignored when a hash is configured")
}

func TestCheckNoSecretConfigured(t *testing.T) {
	c := NewChecker(config.AuthConfig{})
	assert.False(t, c.Check(""), "empty config must never authenticate")
}
