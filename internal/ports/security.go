package ports

import (
	"time"

	"github.com/google/uuid"
	"github.com/skillstream/lms-backend/internal/domain"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenKind selects the secret and TTL a token is issued and verified with.
// A token of one kind never verifies as another.
type TokenKind string

const (
	TokenAccess  TokenKind = "access"
	TokenRefresh TokenKind = "refresh"
)

// Claims is the verified content of an access or refresh token.
type Claims struct {
	UserID    uuid.UUID
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenIssuer mints and verifies the signed, time-limited credentials used
// by the session pipeline. Pure computation, no I/O.
type TokenIssuer interface {
	IssueAccessToken(userID uuid.UUID) (string, error)
	IssueRefreshToken(userID uuid.UUID) (string, error)
	Verify(token string, kind TokenKind) (Claims, error)

	// IssueActivationToken embeds the pending registration plus a fresh
	// 4-digit code; the code travels out-of-band (email) and the token
	// round-trips through the client.
	IssueActivationToken(pending domain.PendingUser) (token string, code string, err error)
	VerifyActivationToken(token, suppliedCode string) (domain.PendingUser, error)

	AccessTTL() time.Duration
	RefreshTTL() time.Duration
}
