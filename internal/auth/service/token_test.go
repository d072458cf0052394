package service_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bychefiza/edge/internal/auth/domain"
	"github.com/bychefiza/edge/internal/auth/service"
	"github.com/bychefiza/edge/internal/auth/store/drivers/memory"
	"github.com/bychefiza/edge/pkg/cryptox"
	"github.com/bychefiza/edge/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer   = "edge-auth-test"
	testEmail    = "a@b.com"
	testPassword = "password123"
)

var testSecret = []byte("test-signing-secret")

func TestMain(m *testing.M) {
	pepperPath := filepath.Join(os.TempDir(), "edge-service-test-pepper")
	cryptox.SetPepperPath(pepperPath)

	os.Remove(pepperPath)
	defer os.Remove(pepperPath)

	os.Exit(m.Run())
}

// newTestTokenService builds a TokenService over an in-memory store seeded
// with one known credential.
func newTestTokenService(t *testing.T) (*service.TokenService, domain.Credential) {
	t.Helper()

	signer, err := jwtx.NewSignerHS256(testSecret)
	require.NoError(t, err)

	hash, err := cryptox.HashPassword(testPassword)
	require.NoError(t, err)

	cred := domain.Credential{
		SubjectID:    "01JTESTSUBJECT0000000000AA",
		Email:        testEmail,
		Username:     "testuser",
		PasswordHash: hash,
	}

	st := memory.NewStore()
	require.NoError(t, st.Credentials().Insert(context.Background(), cred))

	svc := &service.TokenService{
		Signer:          signer,
		AccessVerifier:  jwtx.NewVerifierHS256(testSecret, testIssuer, jwtx.KindAccess),
		RefreshVerifier: jwtx.NewVerifierHS256(testSecret, testIssuer, jwtx.KindRefresh),
		Store:           st,
		Issuer:          testIssuer,
		AccessTTL:       time.Hour,
		RefreshTTL:      24 * time.Hour,
	}

	return svc, cred
}

func TestTokenService_Login(t *testing.T) {
	svc, cred := newTestTokenService(t)
	ctx := context.Background()

	t.Run("issues verifiable pair for valid credentials", func(t *testing.T) {
		pair, user, err := svc.Login(ctx, testEmail, testPassword)
		require.NoError(t, err)
		require.NotNil(t, pair)
		require.NotEmpty(t, pair.AccessToken)
		require.NotEmpty(t, pair.RefreshToken)

		require.Equal(t, cred.SubjectID, user.ID)
		require.Equal(t, cred.Email, user.Email)
		require.Equal(t, cred.Username, user.Username)

		// The freshly issued access token verifies to the same subject.
		claims, err := svc.Verify(ctx, pair.AccessToken)
		require.NoError(t, err)
		require.Equal(t, cred.SubjectID, claims.Subject)
		require.Equal(t, cred.Email, claims.Email)
	})

	t.Run("email lookup is case-insensitive", func(t *testing.T) {
		_, user, err := svc.Login(ctx, "A@B.COM", testPassword)
		require.NoError(t, err)
		require.Equal(t, cred.SubjectID, user.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		pair, user, err := svc.Login(ctx, testEmail, "wrong")
		require.ErrorIs(t, err, service.ErrInvalidCredentials)
		require.Nil(t, pair)
		require.Nil(t, user)
	})

	t.Run("unknown email is indistinguishable from wrong password", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "nobody@b.com", testPassword)
		require.ErrorIs(t, err, service.ErrInvalidCredentials)
	})
}

func TestTokenService_Refresh(t *testing.T) {
	svc, cred := newTestTokenService(t)
	ctx := context.Background()

	pair, _, err := svc.Login(ctx, testEmail, testPassword)
	require.NoError(t, err)

	t.Run("mints access token for refresh token's subject", func(t *testing.T) {
		before := time.Now().UTC()
		access, err := svc.Refresh(ctx, pair.RefreshToken)
		require.NoError(t, err)

		claims, err := svc.Verify(ctx, access)
		require.NoError(t, err)
		require.Equal(t, cred.SubjectID, claims.Subject)

		// exp = now + access TTL
		require.WithinDuration(t, before.Add(svc.AccessTTL), claims.ExpiresAt.Time, 2*time.Second)

		// Reissued tokens stay minimal: no email claim to copy from.
		require.Empty(t, claims.Email)
	})

	t.Run("rejects an access token", func(t *testing.T) {
		_, err := svc.Refresh(ctx, pair.AccessToken)
		require.ErrorIs(t, err, service.ErrInvalidRefresh)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := svc.Refresh(ctx, "not.a.token")
		require.ErrorIs(t, err, service.ErrInvalidRefresh)
	})

	t.Run("rejects expired refresh token", func(t *testing.T) {
		signer, err := jwtx.NewSignerHS256(testSecret)
		require.NoError(t, err)

		stale, err := signer.Sign(jwtx.NewRefreshClaims(
			cred.SubjectID, testIssuer, time.Hour, time.Now().UTC().Add(-2*time.Hour)))
		require.NoError(t, err)

		_, err = svc.Refresh(ctx, stale)
		require.ErrorIs(t, err, service.ErrInvalidRefresh)
	})
}

func TestTokenService_Verify(t *testing.T) {
	svc, cred := newTestTokenService(t)
	ctx := context.Background()

	pair, _, err := svc.Login(ctx, testEmail, testPassword)
	require.NoError(t, err)

	t.Run("idempotent for the same token", func(t *testing.T) {
		first, err := svc.Verify(ctx, pair.AccessToken)
		require.NoError(t, err)

		for range 3 {
			again, err := svc.Verify(ctx, pair.AccessToken)
			require.NoError(t, err)
			require.Equal(t, first, again)
		}
	})

	t.Run("expired token fails regardless of signature", func(t *testing.T) {
		signer, err := jwtx.NewSignerHS256(testSecret)
		require.NoError(t, err)

		stale, err := signer.Sign(jwtx.NewAccessClaims(
			cred.SubjectID, cred.Email, testIssuer, time.Minute, time.Now().UTC().Add(-time.Hour)))
		require.NoError(t, err)

		_, err = svc.Verify(ctx, stale)
		require.ErrorIs(t, err, service.ErrInvalidToken)
	})

	t.Run("refresh token is not an access credential", func(t *testing.T) {
		_, err := svc.Verify(ctx, pair.RefreshToken)
		require.ErrorIs(t, err, service.ErrInvalidToken)
	})
}
