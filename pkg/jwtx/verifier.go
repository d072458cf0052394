package jwtx

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Verifier validates a JWT and gives you back the claims if it's legit.
type Verifier interface {
	Verify(token string) (Claims, error)
}

var (
	ErrMalformed  = errors.New("jwtx: malformed token")
	ErrInvalidSig = errors.New("jwtx: invalid signature")

	ErrIssuer      = errors.New("jwtx: issuer mismatch")
	ErrExpired     = errors.New("jwtx: token expired")
	ErrNotYetValid = errors.New("jwtx: token not yet valid")
	ErrKind        = errors.New("jwtx: wrong token kind")
)

// HS256Verifier validates JWTs signed using HS256 with the shared secret.
// Each verifier is pinned to a token kind so access and refresh tokens are
// not interchangeable.
type HS256Verifier struct {
	secret []byte
	issuer string
	kind   string
}

// NewVerifierHS256 creates a verifier for tokens of the given kind. An empty
// issuer or kind disables that check.
func NewVerifierHS256(secret []byte, issuer, kind string) *HS256Verifier {
	return &HS256Verifier{secret: secret, issuer: issuer, kind: kind}
}

// Verify validates the JWT string and returns its parsed Claims.
//
// Expiry is strict: a token is rejected from the instant now >= exp. This is
// a pure function of the token, the secret, and the clock; repeated calls
// with the same unexpired token always return the same result.
func (v *HS256Verifier) Verify(tokenStr string) (Claims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	token, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return Claims{}, ErrMalformed
		case errors.Is(err, jwt.ErrTokenExpired):
			return Claims{}, ErrExpired
		case errors.Is(err, jwt.ErrTokenNotValidYet):
			return Claims{}, ErrNotYetValid
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return Claims{}, ErrInvalidSig
		default:
			return Claims{}, fmt.Errorf("jwtx: parse or verify: %w", err)
		}
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Claims{}, ErrMalformed
	}

	// Now check all the claim requirements
	if err := claims.ValidateIssuer(v.issuer); err != nil {
		return Claims{}, err
	}
	if err := claims.ValidateKind(v.kind); err != nil {
		return Claims{}, err
	}

	return *claims, nil
}
