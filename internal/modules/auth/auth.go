package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"

	"comercialsoares.com/app/internal/config"
)

// Checker validates the single shared operator secret. There is no user
// model, no lockout and no rate limiting; a wrong secret is just a boolean
// failure shown as generic text.
type Checker struct {
	cfg config.AuthConfig
}

func NewChecker(cfg config.AuthConfig) *Checker { return &Checker{cfg: cfg} }

// Check is constant-time for the plaintext path. When POS_PASSWORD_HASH is
// set it wins over POS_PASSWORD.
func (c *Checker) Check(secret string) bool {
	if c.cfg.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(c.cfg.PasswordHash), []byte(secret)) == nil
	}
	if c.cfg.Password == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(c.cfg.Password), []byte(secret)) == 1
}
