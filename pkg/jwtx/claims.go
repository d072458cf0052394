// Package jwtx implements the edge layer's credential tokens: short-lived
// HS256 access tokens and longer-lived refresh tokens signed with a shared
// process-wide secret. Validity is entirely a function of the signature and
// the embedded expiry; nothing is stored server-side.
package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Default token TTLs. Both can be overridden per-service via configuration.
const (
	// DefaultAccessTokenTTL is the default lifetime for access tokens.
	DefaultAccessTokenTTL = 24 * time.Hour

	// DefaultRefreshTokenTTL is the default lifetime for refresh tokens.
	DefaultRefreshTokenTTL = 7 * 24 * time.Hour
)

// Token kinds carried in the "kind" claim. A verifier pinned to one kind
// rejects the other, so a leaked refresh token is never usable as an access
// credential even though both verify under the same secret.
const (
	KindAccess  = "access"
	KindRefresh = "refresh"
)

// Claims are the token claims shared by access and refresh tokens. Refresh
// tokens carry only subject identity: no email, no authorization claims.
type Claims struct {
	jwt.RegisteredClaims

	// Email of the authenticated user. Access tokens only.
	Email string `json:"email,omitempty"`

	// Kind distinguishes access tokens from refresh tokens.
	Kind string `json:"kind,omitempty"`
}

// NewAccessClaims builds claims for a short-lived access token.
func NewAccessClaims(subject, email, issuer string, ttl time.Duration, now time.Time) Claims {
	c := newBaseClaims(subject, issuer, ttl, now)
	c.Email = email
	c.Kind = KindAccess
	return c
}

// NewRefreshClaims builds claims for a refresh token. Deliberately minimal:
// the only identity it carries is the subject.
func NewRefreshClaims(subject, issuer string, ttl time.Duration, now time.Time) Claims {
	c := newBaseClaims(subject, issuer, ttl, now)
	c.Kind = KindRefresh
	return c
}

func newBaseClaims(subject, issuer string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
	}
}

// NewJTI returns a URL-safe random identifier for the "jti" claim.
func NewJTI() string {
	var b [20]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}

// ValidateIssuer checks if the issuer matches expected value.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil // nothing to enforce
	}

	if c.Issuer != expected {
		return ErrIssuer
	}

	return nil
}

// ValidateKind checks the token is of the expected kind.
func (c *Claims) ValidateKind(expected string) error {
	if expected == "" {
		return nil // nothing to enforce
	}

	if c.Kind != expected {
		return ErrKind
	}

	return nil
}
