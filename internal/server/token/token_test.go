package token

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return Config{
		AccessSecret:  []byte("access-secret-at-least-32-chars-long!!"),
		RefreshSecret: []byte("refresh-secret-at-least-32-chars-long!"),
		Issuer:        "cleanup-backend",
		AccessTTL:     15 * time.Minute,
		RefreshTTL:    30 * 24 * time.Hour,
	}
}

func TestCodec_AccessTokenRoundTrip(t *testing.T) {
	c := NewCodec(testConfig())

	tok, err := c.IssueAccessToken("admin-1", "admin@x.com", "Admin User")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := c.VerifyAccessToken(tok)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", claims.ID)
	assert.Equal(t, "admin@x.com", claims.Email)
	assert.Equal(t, "Admin User", claims.Name)
	assert.Equal(t, "cleanup-backend", claims.Issuer)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), claims.ExpiresAt.Time, 5*time.Second)
}

func TestCodec_RefreshTokenRoundTrip(t *testing.T) {
	c := NewCodec(testConfig())

	tok, err := c.IssueRefreshToken("admin-1")
	require.NoError(t, err)

	claims, err := c.VerifyRefreshToken(tok)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", claims.ID)
	assert.WithinDuration(t, time.Now().Add(30*24*time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestCodec_CrossSecretVerificationFails(t *testing.T) {
	c := NewCodec(testConfig())

	accessTok, err := c.IssueAccessToken("admin-1", "admin@x.com", "Admin User")
	require.NoError(t, err)
	refreshTok, err := c.IssueRefreshToken("admin-1")
	require.NoError(t, err)

	// An access token must never verify as a refresh token, and vice versa.
	_, err = c.VerifyRefreshToken(accessTok)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = c.VerifyAccessToken(refreshTok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestCodec_ExpiredTokenFails(t *testing.T) {
	cfg := testConfig()
	cfg.AccessTTL = -1 * time.Second
	cfg.RefreshTTL = -1 * time.Second
	c := NewCodec(cfg)

	accessTok, err := c.IssueAccessToken("admin-1", "admin@x.com", "Admin User")
	require.NoError(t, err)
	_, err = c.VerifyAccessToken(accessTok)
	assert.ErrorIs(t, err, ErrInvalidToken)

	refreshTok, err := c.IssueRefreshToken("admin-1")
	require.NoError(t, err)
	_, err = c.VerifyRefreshToken(refreshTok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestCodec_NotYetExpiredTokenSucceeds(t *testing.T) {
	cfg := testConfig()
	cfg.AccessTTL = 2 * time.Second
	c := NewCodec(cfg)

	tok, err := c.IssueAccessToken("admin-1", "admin@x.com", "Admin User")
	require.NoError(t, err)

	// One second before expiry the token is still valid.
	claims, err := c.VerifyAccessToken(tok)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", claims.ID)
}

func TestCodec_InvalidTokensFailIdentically(t *testing.T) {
	c := NewCodec(testConfig())

	valid, err := c.IssueAccessToken("admin-1", "admin@x.com", "Admin User")
	require.NoError(t, err)

	// Tamper with the payload but keep the original signature.
	parts := strings.Split(valid, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + ".eyJpZCI6ImV2aWwifQ." + parts[2]

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "garbage", token: "not-a-jwt"},
		{name: "two segments", token: parts[0] + "." + parts[1]},
		{name: "tampered payload", token: tampered},
		{name: "truncated signature", token: parts[0] + "." + parts[1] + "." + parts[2][:10]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := c.VerifyAccessToken(tt.token)
			// Every failure collapses into the same sentinel: callers cannot
			// learn whether the signature or the expiry was at fault.
			assert.ErrorIs(t, err, ErrInvalidToken)
			assert.Nil(t, claims)
		})
	}
}

func TestCodec_DifferentSecretsProduceDifferentSignatures(t *testing.T) {
	c1 := NewCodec(testConfig())

	cfg2 := testConfig()
	cfg2.AccessSecret = []byte("another-access-secret-32-chars-min!!!!")
	c2 := NewCodec(cfg2)

	tok, err := c1.IssueAccessToken("admin-1", "admin@x.com", "Admin User")
	require.NoError(t, err)

	_, err = c2.VerifyAccessToken(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
