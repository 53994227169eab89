package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"time"

	"strings"

	"github.com/gin-gonic/gin"
)

var ErrInvalid = errors.New("invalid session cookie")

// Claims is the persisted "logged in" flag. It is not a capability token:
// there is a single shared operator secret, so the cookie only records that
// the gate was passed and when it stops counting.
type Claims struct {
	LoggedIn  bool  `json:"li"`
	IssuedAt  int64 `json:"iat"`
	ExpiresAt int64 `json:"exp"`
}

// Codec signs the claims with HMAC-SHA256, cookie value format
// base64(json).base64(hmac).
type Codec struct {
	Secret     []byte
	CookieName string
	Secure     bool
	TTL        time.Duration
}

func NewCodec(secret []byte, cookieName string, secure bool, ttl time.Duration) *Codec {
	return &Codec{Secret: secret, CookieName: cookieName, Secure: secure, TTL: ttl}
}

func (c *Codec) Encode(cl Claims) (string, error) {
	b, err := json.Marshal(cl)
	if err != nil {
		return "", err
	}
	payload := base64.RawURLEncoding.EncodeToString(b)
	return payload + "." + sign(c.Secret, payload), nil
}

func (c *Codec) Decode(v string) (Claims, error) {
	parts := strings.Split(v, ".")
	if len(parts) != 2 {
		return Claims{}, ErrInvalid
	}
	payload, sig := parts[0], parts[1]
	if !verify(c.Secret, payload, sig) {
		return Claims{}, ErrInvalid
	}
	raw, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return Claims{}, ErrInvalid
	}
	var cl Claims
	if err := json.Unmarshal(raw, &cl); err != nil {
		return Claims{}, ErrInvalid
	}
	if !cl.LoggedIn || time.Now().Unix() > cl.ExpiresAt {
		return Claims{}, ErrInvalid
	}
	return cl, nil
}

// Set marks the browser session as logged in.
func (c *Codec) Set(ctx *gin.Context) error {
	now := time.Now()
	val, err := c.Encode(Claims{
		LoggedIn:  true,
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(c.TTL).Unix(),
	})
	if err != nil {
		return err
	}
	ctx.SetSameSite(2) // Lax
	ctx.SetCookie(c.CookieName, val, int(c.TTL.Seconds()), "/", "", c.Secure, true)
	return nil
}

func (c *Codec) Clear(ctx *gin.Context) {
	ctx.SetSameSite(2) // Lax
	ctx.SetCookie(c.CookieName, "", -1, "/", "", c.Secure, true)
}

// IsLoggedIn checks and, on a tampered or expired cookie, clears it.
func (c *Codec) IsLoggedIn(ctx *gin.Context) bool {
	v, err := ctx.Cookie(c.CookieName)
	if err != nil || v == "" {
		return false
	}
	if _, err := c.Decode(v); err != nil {
		c.Clear(ctx)
		return false
	}
	return true
}

func sign(secret []byte, payload string) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

func verify(secret []byte, payload, sig string) bool {
	return hmac.Equal([]byte(sign(secret, payload)), []byte(sig))
}
