package security

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/skillstream/lms-backend/internal/domain"
	"github.com/skillstream/lms-backend/internal/ports"
)

const activationTTL = 5 * time.Minute

// JWTIssuer implements HS256 token issuance for the session pipeline.
// Each token kind signs with its own secret so an access token can never
// pass verification on the refresh or activation path.
type JWTIssuer struct {
	accessSecret     []byte
	refreshSecret    []byte
	activationSecret []byte
	accessTTL        time.Duration
	refreshTTL       time.Duration
	nowFn            func() time.Time
}

// NewJWTIssuer builds the issuer from configured secrets and TTLs.
func NewJWTIssuer(accessSecret, refreshSecret, activationSecret string, accessTTL, refreshTTL time.Duration) (*JWTIssuer, error) {
	if accessSecret == "" || refreshSecret == "" || activationSecret == "" {
		return nil, errors.New("jwt access/refresh/activation secrets are required")
	}
	if accessTTL <= 0 {
		accessTTL = 5 * time.Minute
	}
	if refreshTTL <= 0 {
		refreshTTL = 3 * 24 * time.Hour
	}
	return &JWTIssuer{
		accessSecret:     []byte(accessSecret),
		refreshSecret:    []byte(refreshSecret),
		activationSecret: []byte(activationSecret),
		accessTTL:        accessTTL,
		refreshTTL:       refreshTTL,
		nowFn:            func() time.Time { return time.Now().UTC() },
	}, nil
}

func (i *JWTIssuer) AccessTTL() time.Duration  { return i.accessTTL }
func (i *JWTIssuer) RefreshTTL() time.Duration { return i.refreshTTL }

type sessionJWTClaims struct {
	UserID string `json:"id"`
	jwt.RegisteredClaims
}

type activationJWTClaims struct {
	Pending domain.PendingUser `json:"user"`
	Code    string             `json:"activation_code"`
	jwt.RegisteredClaims
}

func (i *JWTIssuer) IssueAccessToken(userID uuid.UUID) (string, error) {
	return i.issueSession(userID, i.accessSecret, i.accessTTL)
}

func (i *JWTIssuer) IssueRefreshToken(userID uuid.UUID) (string, error) {
	return i.issueSession(userID, i.refreshSecret, i.refreshTTL)
}

func (i *JWTIssuer) issueSession(userID uuid.UUID, secret []byte, ttl time.Duration) (string, error) {
	now := i.nowFn()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionJWTClaims{
		UserID: userID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})
	return token.SignedString(secret)
}

// Verify parses a session token of the given kind. Expiry and signature
// failures map to distinct sentinels because callers react differently: an
// expired access token redirects to refresh, a tampered one to login.
func (i *JWTIssuer) Verify(raw string, kind ports.TokenKind) (ports.Claims, error) {
	secret := i.accessSecret
	if kind == ports.TokenRefresh {
		secret = i.refreshSecret
	}

	parsed, err := jwt.ParseWithClaims(raw, &sessionJWTClaims{}, func(token *jwt.Token) (any, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %s", token.Method.Alg())
		}
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return ports.Claims{}, domain.ErrTokenExpired
		}
		return ports.Claims{}, domain.ErrTokenInvalid
	}

	claims, ok := parsed.Claims.(*sessionJWTClaims)
	if !ok || !parsed.Valid {
		return ports.Claims{}, domain.ErrTokenInvalid
	}
	// Tokens signed here always carry iat and exp; anything else minted with
	// the right secret but bare registered claims is rejected, not trusted.
	if claims.IssuedAt == nil || claims.ExpiresAt == nil {
		return ports.Claims{}, domain.ErrTokenInvalid
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return ports.Claims{}, domain.ErrTokenInvalid
	}

	return ports.Claims{
		UserID:    userID,
		IssuedAt:  claims.IssuedAt.Time.UTC(),
		ExpiresAt: claims.ExpiresAt.Time.UTC(),
	}, nil
}

// IssueActivationToken embeds the pending registration and a fresh 4-digit
// code in a short-lived token. The code is uniform over 1000-9999 and drawn
// from crypto/rand so it cannot be predicted from anything the client sees.
func (i *JWTIssuer) IssueActivationToken(pending domain.PendingUser) (string, string, error) {
	code, err := randomActivationCode()
	if err != nil {
		return "", "", fmt.Errorf("generate activation code: %w", err)
	}

	now := i.nowFn()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, activationJWTClaims{
		Pending: pending,
		Code:    code,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(activationTTL)),
		},
	})
	signed, err := token.SignedString(i.activationSecret)
	if err != nil {
		return "", "", err
	}
	return signed, code, nil
}

func (i *JWTIssuer) VerifyActivationToken(raw, suppliedCode string) (domain.PendingUser, error) {
	parsed, err := jwt.ParseWithClaims(raw, &activationJWTClaims{}, func(token *jwt.Token) (any, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %s", token.Method.Alg())
		}
		return i.activationSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.PendingUser{}, domain.ErrTokenExpired
		}
		return domain.PendingUser{}, domain.ErrTokenInvalid
	}

	claims, ok := parsed.Claims.(*activationJWTClaims)
	if !ok || !parsed.Valid {
		return domain.PendingUser{}, domain.ErrTokenInvalid
	}
	if claims.Code != suppliedCode {
		return domain.PendingUser{}, domain.ErrCodeMismatch
	}
	return claims.Pending, nil
}

func randomActivationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(9000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%04d", n.Int64()+1000), nil
}
