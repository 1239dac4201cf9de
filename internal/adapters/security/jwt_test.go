package security

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillstream/lms-backend/internal/domain"
	"github.com/skillstream/lms-backend/internal/ports"
)

func newTestIssuer(t *testing.T) *JWTIssuer {
	t.Helper()
	issuer, err := NewJWTIssuer("access-secret", "refresh-secret", "activation-secret", 5*time.Minute, 3*24*time.Hour)
	require.NoError(t, err)
	return issuer
}

func TestNewJWTIssuerRequiresSecrets(t *testing.T) {
	t.Parallel()

	_, err := NewJWTIssuer("", "refresh", "activation", time.Minute, time.Hour)
	require.Error(t, err)
	_, err = NewJWTIssuer("access", "refresh", "", time.Minute, time.Hour)
	require.Error(t, err)
}

func TestSessionTokenRoundTrip(t *testing.T) {
	t.Parallel()

	issuer := newTestIssuer(t)
	userID := uuid.New()

	access, err := issuer.IssueAccessToken(userID)
	require.NoError(t, err)
	refresh, err := issuer.IssueRefreshToken(userID)
	require.NoError(t, err)

	claims, err := issuer.Verify(access, ports.TokenAccess)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.True(t, claims.ExpiresAt.After(claims.IssuedAt))

	claims, err = issuer.Verify(refresh, ports.TokenRefresh)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
}

func TestSessionTokenKindsDoNotCross(t *testing.T) {
	t.Parallel()

	issuer := newTestIssuer(t)
	userID := uuid.New()

	access, err := issuer.IssueAccessToken(userID)
	require.NoError(t, err)
	refresh, err := issuer.IssueRefreshToken(userID)
	require.NoError(t, err)

	_, err = issuer.Verify(access, ports.TokenRefresh)
	require.ErrorIs(t, err, domain.ErrTokenInvalid)
	_, err = issuer.Verify(refresh, ports.TokenAccess)
	require.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestExpiredSessionToken(t *testing.T) {
	t.Parallel()

	issuer := newTestIssuer(t)
	issuer.nowFn = func() time.Time { return time.Now().UTC().Add(-time.Hour) }

	token, err := issuer.IssueAccessToken(uuid.New())
	require.NoError(t, err)

	issuer.nowFn = func() time.Time { return time.Now().UTC() }
	_, err = issuer.Verify(token, ports.TokenAccess)
	require.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestTamperedSessionToken(t *testing.T) {
	t.Parallel()

	issuer := newTestIssuer(t)
	other, err := NewJWTIssuer("other-access", "other-refresh", "other-activation", 5*time.Minute, time.Hour)
	require.NoError(t, err)

	token, err := other.IssueAccessToken(uuid.New())
	require.NoError(t, err)

	_, err = issuer.Verify(token, ports.TokenAccess)
	require.ErrorIs(t, err, domain.ErrTokenInvalid)

	_, err = issuer.Verify("not-a-jwt", ports.TokenAccess)
	require.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestSessionTokenWithoutRegisteredClaims(t *testing.T) {
	t.Parallel()

	issuer := newTestIssuer(t)

	// Correct secret, correct alg, but no iat/exp. Verify must reject it
	// instead of panicking on the missing timestamps.
	bare := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionJWTClaims{
		UserID: uuid.New().String(),
	})
	signed, err := bare.SignedString([]byte("access-secret"))
	require.NoError(t, err)

	_, err = issuer.Verify(signed, ports.TokenAccess)
	require.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestActivationTokenRoundTrip(t *testing.T) {
	t.Parallel()

	issuer := newTestIssuer(t)
	pending := domain.PendingUser{
		Name:         "Ada",
		Email:        "ada@example.com",
		PasswordHash: "hash",
	}

	token, code, err := issuer.IssueActivationToken(pending)
	require.NoError(t, err)
	require.Len(t, code, 4)

	got, err := issuer.VerifyActivationToken(token, code)
	require.NoError(t, err)
	assert.Equal(t, pending, got)
}

func TestActivationCodeMismatch(t *testing.T) {
	t.Parallel()

	issuer := newTestIssuer(t)
	token, _, err := issuer.IssueActivationToken(domain.PendingUser{Email: "ada@example.com"})
	require.NoError(t, err)

	_, err = issuer.VerifyActivationToken(token, "0000")
	require.ErrorIs(t, err, domain.ErrCodeMismatch)
}

func TestActivationTokenExpiry(t *testing.T) {
	t.Parallel()

	issuer := newTestIssuer(t)
	issuer.nowFn = func() time.Time { return time.Now().UTC().Add(-time.Hour) }
	token, code, err := issuer.IssueActivationToken(domain.PendingUser{Email: "ada@example.com"})
	require.NoError(t, err)

	issuer.nowFn = func() time.Time { return time.Now().UTC() }
	_, err = issuer.VerifyActivationToken(token, code)
	require.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestActivationCodeRange(t *testing.T) {
	t.Parallel()

	for i := 0; i < 50; i++ {
		code, err := randomActivationCode()
		require.NoError(t, err)
		require.Len(t, code, 4)
		assert.GreaterOrEqual(t, code, "1000")
		assert.LessOrEqual(t, code, "9999")
	}
}
