// Package token signs and verifies the two classes of bearer tokens used
// by the admin API: short-lived access tokens and long-lived refresh
// tokens. Tokens are stateless HS256 JWTs; validity is purely a function
// of signature and expiry, there is no server-side revocation.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for every verification failure: malformed
// token, wrong signature, wrong signing algorithm, or expiry. Callers must
// not be able to tell these cases apart.
var ErrInvalidToken = errors.New("invalid token")

// Config holds the codec settings. The two secrets must differ so that a
// leaked refresh token cannot be replayed as an access token.
type Config struct {
	AccessSecret  []byte
	RefreshSecret []byte
	Issuer        string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

// AccessClaims are the claims carried by an access token. They reflect
// the admin record at issuance time; the route gate trusts them without a
// database round trip until the token expires.
type AccessClaims struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// RefreshClaims are the minimal claims carried by a refresh token.
type RefreshClaims struct {
	ID string `json:"id"`
	jwt.RegisteredClaims
}

// Codec issues and verifies admin tokens.
type Codec struct {
	cfg Config
}

// NewCodec creates a token codec from an immutable config.
func NewCodec(cfg Config) *Codec {
	return &Codec{cfg: cfg}
}

// AccessTTL returns the configured access token lifetime.
func (c *Codec) AccessTTL() time.Duration { return c.cfg.AccessTTL }

// RefreshTTL returns the configured refresh token lifetime.
func (c *Codec) RefreshTTL() time.Duration { return c.cfg.RefreshTTL }

// IssueAccessToken signs an access token for the given admin identity.
func (c *Codec) IssueAccessToken(id, email, name string) (string, error) {
	now := time.Now()
	claims := AccessClaims{
		ID:    id,
		Email: email,
		Name:  name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(c.cfg.AccessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    c.cfg.Issuer,
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.cfg.AccessSecret)
	if err != nil {
		return "", fmt.Errorf("sign access token: %w", err)
	}
	return signed, nil
}

// IssueRefreshToken signs a refresh token carrying only the admin id.
func (c *Codec) IssueRefreshToken(id string) (string, error) {
	now := time.Now()
	claims := RefreshClaims{
		ID: id,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(c.cfg.RefreshTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    c.cfg.Issuer,
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.cfg.RefreshSecret)
	if err != nil {
		return "", fmt.Errorf("sign refresh token: %w", err)
	}
	return signed, nil
}

// VerifyAccessToken verifies an access token against the access secret.
// Any failure returns ErrInvalidToken.
func (c *Codec) VerifyAccessToken(tokenString string) (*AccessClaims, error) {
	var claims AccessClaims
	if err := c.parse(tokenString, &claims, c.cfg.AccessSecret); err != nil {
		return nil, err
	}
	return &claims, nil
}

// VerifyRefreshToken verifies a refresh token against the refresh secret.
// Any failure returns ErrInvalidToken.
func (c *Codec) VerifyRefreshToken(tokenString string) (*RefreshClaims, error) {
	var claims RefreshClaims
	if err := c.parse(tokenString, &claims, c.cfg.RefreshSecret); err != nil {
		return nil, err
	}
	return &claims, nil
}

func (c *Codec) parse(tokenString string, claims jwt.Claims, secret []byte) error {
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !tok.Valid {
		return ErrInvalidToken
	}
	return nil
}
