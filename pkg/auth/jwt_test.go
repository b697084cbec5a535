package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_GenerateAndParse(t *testing.T) {
	m := NewTokenManager("secret", "news-admin", time.Hour)

	tok, err := m.Generate(7, "editor")
	require.NoError(t, err)
	assert.Equal(t, 3600, tok.ExpiresIn)

	claims, err := m.Parse(tok.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.AdminID)
	assert.Equal(t, "editor", claims.Username)
	assert.NotEmpty(t, claims.ID)
}

func TestTokenManager_RejectsForeignAndExpired(t *testing.T) {
	m := NewTokenManager("secret", "news-admin", time.Hour)
	other := NewTokenManager("another", "news-admin", time.Hour)

	tok, err := other.Generate(1, "x")
	require.NoError(t, err)
	_, err = m.Parse(tok.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = m.Parse("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	base := time.Now()
	m.now = func() time.Time { return base }
	tok, err = m.Generate(1, "x")
	require.NoError(t, err)
	m.now = func() time.Time { return base.Add(2 * time.Hour) }
	_, err = m.Parse(tok.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_Revoke(t *testing.T) {
	m := NewTokenManager("secret", "news-admin", time.Hour)
	tok, err := m.Generate(1, "editor")
	require.NoError(t, err)

	claims, err := m.Parse(tok.AccessToken)
	require.NoError(t, err)
	m.Revoke(claims)

	_, err = m.Parse(tok.AccessToken)
	assert.ErrorIs(t, err, ErrRevokedToken)
}

func TestTokenBlacklist_Expiry(t *testing.T) {
	b := NewTokenBlacklist()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return base }

	b.Add("a", base.Add(time.Minute))
	assert.True(t, b.Contains("a"))
	assert.False(t, b.Contains("b"))

	b.now = func() time.Time { return base.Add(2 * time.Minute) }
	assert.False(t, b.Contains("a"))

	b.Add("b", base.Add(time.Hour))
	assert.Equal(t, 1, b.Len())
}
