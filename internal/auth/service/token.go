// Package service implements the auth token service's business logic:
// credential verification and the token lifecycle (issue, verify, refresh).
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bychefiza/edge/internal/auth/domain"
	"github.com/bychefiza/edge/internal/auth/store"
	"github.com/bychefiza/edge/pkg/cryptox"
	"github.com/bychefiza/edge/pkg/jwtx"
	"github.com/bychefiza/edge/pkg/slogx"
)

var (
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrInvalidRefresh     = errors.New("invalid_refresh_token")
	ErrInvalidToken       = errors.New("invalid_token")
)

// dummyHash is a well-formed Argon2id hash that matches no password. Login
// verifies against it when the email is unknown, so unknown accounts and
// wrong passwords take the same time.
const dummyHash = "$argon2id$v=19$m=19456,t=2,p=1$AAAAAAAAAAAAAAAAAAAAAA$" +
	"AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"

// TokenService owns issuance, verification, and refresh of the edge layer's
// credential tokens. It keeps no state of its own: validity is a pure
// function of the token, the signing secret, and the clock.
type TokenService struct {
	Signer          jwtx.Signer
	AccessVerifier  jwtx.Verifier
	RefreshVerifier jwtx.Verifier
	Store           store.Store
	Issuer          string
	AccessTTL       time.Duration
	RefreshTTL      time.Duration
}

// Login resolves the credential record for email, verifies the password, and
// on success issues an access/refresh token pair. Every failure mode maps to
// ErrInvalidCredentials; callers must not be able to tell them apart.
func (s *TokenService) Login(
	ctx context.Context,
	email, password string,
) (*domain.TokenPair, *domain.User, error) {
	l := slogx.FromContext(ctx)
	now := time.Now().UTC()

	cred, err := s.Store.Credentials().FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Burn the same hashing work as a real comparison.
			_ = cryptox.VerifyPassword(password, dummyHash)
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("credential lookup: %w", err)
	}

	if err := cryptox.VerifyPassword(password, cred.PasswordHash); err != nil {
		l.Info("login rejected", "email", cred.Email)
		return nil, nil, ErrInvalidCredentials
	}

	access, err := s.Signer.Sign(
		jwtx.NewAccessClaims(cred.SubjectID, cred.Email, s.Issuer, s.AccessTTL, now))
	if err != nil {
		return nil, nil, fmt.Errorf("sign access token: %w", err)
	}

	refresh, err := s.Signer.Sign(
		jwtx.NewRefreshClaims(cred.SubjectID, s.Issuer, s.RefreshTTL, now))
	if err != nil {
		return nil, nil, fmt.Errorf("sign refresh token: %w", err)
	}

	l.Info("user logged in", "email", cred.Email)

	pair := &domain.TokenPair{AccessToken: access, RefreshToken: refresh}
	user := &domain.User{ID: cred.SubjectID, Email: cred.Email, Username: cred.Username}
	return pair, user, nil
}

// Refresh rotates a refresh token into a new access token. The new token's
// subject matches the refresh token's and its expiry is now + AccessTTL. It
// carries no email claim; a token minted through refresh stays minimal.
func (s *TokenService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	l := slogx.FromContext(ctx)
	now := time.Now().UTC()

	claims, err := s.RefreshVerifier.Verify(refreshToken)
	if err != nil {
		l.Info("refresh rejected", "err", err)
		return "", ErrInvalidRefresh
	}

	access, err := s.Signer.Sign(
		jwtx.NewAccessClaims(claims.Subject, "", s.Issuer, s.AccessTTL, now))
	if err != nil {
		return "", fmt.Errorf("sign access token: %w", err)
	}

	return access, nil
}

// Verify checks an access token and returns its claims. A pure query: no
// side effects, same result for the same unexpired token.
func (s *TokenService) Verify(ctx context.Context, accessToken string) (jwtx.Claims, error) {
	claims, err := s.AccessVerifier.Verify(accessToken)
	if err != nil {
		return jwtx.Claims{}, ErrInvalidToken
	}
	return claims, nil
}
