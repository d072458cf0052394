package jwtx_test

import (
	"testing"
	"time"

	"github.com/bychefiza/edge/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const testIssuer = "edge-auth-test"

var testSecret = []byte("test-signing-secret")

func newTestSigner(t *testing.T) *jwtx.HS256Signer {
	t.Helper()

	signer, err := jwtx.NewSignerHS256(testSecret)
	require.NoError(t, err)
	return signer
}

func TestNewSignerHS256(t *testing.T) {
	t.Run("rejects short secret", func(t *testing.T) {
		_, err := jwtx.NewSignerHS256([]byte("short"))
		require.Error(t, err)
	})

	t.Run("accepts adequate secret", func(t *testing.T) {
		signer, err := jwtx.NewSignerHS256(testSecret)
		require.NoError(t, err)
		require.Equal(t, "HS256", signer.Alg())
	})
}

func TestAccessTokenRoundTrip(t *testing.T) {
	signer := newTestSigner(t)
	verifier := jwtx.NewVerifierHS256(testSecret, testIssuer, jwtx.KindAccess)

	now := time.Now().UTC()
	claims := jwtx.NewAccessClaims("user-123", "a@b.com", testIssuer, time.Hour, now)

	token, err := signer.Sign(claims)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-123", got.Subject)
	require.Equal(t, "a@b.com", got.Email)
	require.Equal(t, jwtx.KindAccess, got.Kind)
	require.WithinDuration(t, now.Add(time.Hour), got.ExpiresAt.Time, time.Second)
}

func TestVerify_Expired(t *testing.T) {
	signer := newTestSigner(t)
	verifier := jwtx.NewVerifierHS256(testSecret, testIssuer, jwtx.KindAccess)

	// Issued in the past so the signature is valid but the expiry is stale.
	issued := time.Now().UTC().Add(-2 * time.Hour)
	claims := jwtx.NewAccessClaims("user-123", "a@b.com", testIssuer, time.Hour, issued)

	token, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrExpired)
}

func TestVerify_WrongSecret(t *testing.T) {
	signer := newTestSigner(t)
	verifier := jwtx.NewVerifierHS256([]byte("a-different-secret"), testIssuer, jwtx.KindAccess)

	token, err := signer.Sign(
		jwtx.NewAccessClaims("user-123", "a@b.com", testIssuer, time.Hour, time.Now().UTC()))
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrInvalidSig)
}

func TestVerify_Malformed(t *testing.T) {
	verifier := jwtx.NewVerifierHS256(testSecret, testIssuer, jwtx.KindAccess)

	for _, tok := range []string{"", "garbage", "a.b", "a.b.c.d"} {
		_, err := verifier.Verify(tok)
		require.ErrorIs(t, err, jwtx.ErrMalformed, "token %q", tok)
	}
}

func TestVerify_IssuerMismatch(t *testing.T) {
	signer := newTestSigner(t)
	verifier := jwtx.NewVerifierHS256(testSecret, "someone-else", jwtx.KindAccess)

	token, err := signer.Sign(
		jwtx.NewAccessClaims("user-123", "a@b.com", testIssuer, time.Hour, time.Now().UTC()))
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrIssuer)
}

func TestVerify_KindSeparation(t *testing.T) {
	signer := newTestSigner(t)
	accessVerifier := jwtx.NewVerifierHS256(testSecret, testIssuer, jwtx.KindAccess)
	refreshVerifier := jwtx.NewVerifierHS256(testSecret, testIssuer, jwtx.KindRefresh)

	now := time.Now().UTC()

	refreshToken, err := signer.Sign(
		jwtx.NewRefreshClaims("user-123", testIssuer, time.Hour, now))
	require.NoError(t, err)

	accessToken, err := signer.Sign(
		jwtx.NewAccessClaims("user-123", "a@b.com", testIssuer, time.Hour, now))
	require.NoError(t, err)

	t.Run("refresh token is not an access credential", func(t *testing.T) {
		_, err := accessVerifier.Verify(refreshToken)
		require.ErrorIs(t, err, jwtx.ErrKind)
	})

	t.Run("access token cannot be used to refresh", func(t *testing.T) {
		_, err := refreshVerifier.Verify(accessToken)
		require.ErrorIs(t, err, jwtx.ErrKind)
	})
}

func TestRefreshClaims_LeastPrivilege(t *testing.T) {
	claims := jwtx.NewRefreshClaims("user-123", testIssuer, time.Hour, time.Now().UTC())

	require.Equal(t, "user-123", claims.Subject)
	require.Empty(t, claims.Email, "refresh tokens must not carry email")
	require.Equal(t, jwtx.KindRefresh, claims.Kind)
}

func TestVerify_Idempotent(t *testing.T) {
	signer := newTestSigner(t)
	verifier := jwtx.NewVerifierHS256(testSecret, testIssuer, jwtx.KindAccess)

	token, err := signer.Sign(
		jwtx.NewAccessClaims("user-123", "a@b.com", testIssuer, time.Hour, time.Now().UTC()))
	require.NoError(t, err)

	first, err := verifier.Verify(token)
	require.NoError(t, err)

	for range 5 {
		again, err := verifier.Verify(token)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}
