package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodecRoundTrip(t *testing.T) {
	c := NewCodec([]byte("secret"), "sess", false, time.Hour)
	now := time.Now()
	v, err := c.Encode(Claims{LoggedIn: true, IssuedAt: now.Unix(), ExpiresAt: now.Add(time.Hour).Unix()})
	require.NoError(t, err)

	cl, err := c.Decode(v)
	require.NoError(t, err)
	assert.True(t, cl.LoggedIn)
}

func TestCodecRejectsTampering(t *testing.T) {
	c := NewCodec([]byte("secret"), "sess", false, time.Hour)
	now := time.Now()
	v, err := c.Encode(Claims{LoggedIn: true, IssuedAt: now.Unix(), ExpiresAt: now.Add(time.Hour).Unix()})
	require.NoError(t, err)

	_, err = c.Decode(v + "x")
	assert.ErrorIs(t, err, ErrInvalid)
	_, err = c.Decode("garbage")
	assert.ErrorIs(t, err, ErrInvalid)

	other := NewCodec([]byte("other-secret"), "sess", false, time.Hour)
	_, err = other.Decode(v)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestCodecRejectsExpired(t *testing.T) {
	c := NewCodec([]byte("secret"), "sess", false, time.Hour)
	past := time.Now().Add(-2 * time.Hour)
	v, err := c.Encode(Claims{LoggedIn: true, IssuedAt: past.Unix(), ExpiresAt: past.Add(time.Hour).Unix()})
	require.NoError(t, err)

	_, err = c.Decode(v)
	assert.ErrorIs(t, err, ErrInvalid)
}
