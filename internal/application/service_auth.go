package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/skillstream/lms-backend/internal/domain"
	"github.com/skillstream/lms-backend/internal/ports"
)

// Register begins a credential registration. The account is not persisted
// yet: the pending user rides inside the activation token and only becomes
// a row once the emailed code is confirmed.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (RegisterResponse, error) {
	email, err := normalizeEmail(req.Email)
	if err != nil {
		return RegisterResponse{}, err
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return RegisterResponse{}, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	if err := domain.ValidatePassword(req.Password); err != nil {
		return RegisterResponse{}, err
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return RegisterResponse{}, fmt.Errorf("%w: email already exists", domain.ErrConflict)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return RegisterResponse{}, err
	}

	passwordHash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return RegisterResponse{}, fmt.Errorf("hash password: %w", err)
	}

	token, code, err := s.tokens.IssueActivationToken(domain.PendingUser{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
	})
	if err != nil {
		return RegisterResponse{}, fmt.Errorf("issue activation token: %w", err)
	}

	if err := s.mailer.Send(ctx, ports.Mail{
		To:      email,
		Subject: "Activate your account",
		Body:    activationMailBody(name, code),
	}); err != nil {
		return RegisterResponse{}, fmt.Errorf("send activation mail: %w", err)
	}

	return RegisterResponse{
		Message:         fmt.Sprintf("Please check your mail: %s to activate your account", email),
		ActivationToken: token,
	}, nil
}

// Activate completes registration. Email uniqueness is re-checked here to
// close the race where the address was taken after the token was issued.
func (s *Service) Activate(ctx context.Context, req ActivateRequest) (domain.User, error) {
	pending, err := s.tokens.VerifyActivationToken(req.ActivationToken, strings.TrimSpace(req.ActivationCode))
	if err != nil {
		return domain.User{}, err
	}

	if _, err := s.users.GetByEmail(ctx, pending.Email); err == nil {
		return domain.User{}, fmt.Errorf("%w: email already exists", domain.ErrConflict)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return domain.User{}, err
	}

	user, err := s.users.Create(ctx, ports.CreateUserParams{
		Name:         pending.Name,
		Email:        pending.Email,
		PasswordHash: pending.PasswordHash,
		Role:         s.cfg.DefaultRole,
		IsVerified:   true,
	})
	if err != nil {
		return domain.User{}, err
	}

	now := s.nowFn()
	payload, _ := json.Marshal(map[string]any{
		"user_id":       user.UserID,
		"email":         user.Email,
		"registered_at": now,
	})
	if err := s.outbox.Enqueue(ctx, ports.OutboxEvent{
		EventID:      uuid.New(),
		EventType:    eventTypeUserRegistered,
		PartitionKey: user.UserID.String(),
		Payload:      payload,
		OccurredAt:   now,
	}); err != nil {
		appLogger().WarnContext(ctx, "failed to enqueue registration event",
			"operation", "activate",
			"outcome", "warning",
			"user_id", user.UserID,
			"error", err,
		)
	}

	return user, nil
}

// Login authenticates by credentials. Unknown email and wrong password
// collapse into the same ErrInvalidCredentials so responses cannot be used
// to enumerate accounts.
func (s *Service) Login(ctx context.Context, req LoginRequest) (AuthSession, error) {
	email, err := normalizeEmail(req.Email)
	if err != nil {
		return AuthSession{}, err
	}
	if req.Password == "" {
		return AuthSession{}, fmt.Errorf("%w: please enter email and password", domain.ErrInvalidInput)
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return AuthSession{}, domain.ErrInvalidCredentials
		}
		return AuthSession{}, err
	}
	if !user.HasPassword() {
		return AuthSession{}, domain.ErrInvalidCredentials
	}
	if err := s.hasher.Compare(user.PasswordHash, req.Password); err != nil {
		return AuthSession{}, domain.ErrInvalidCredentials
	}

	return s.openSession(ctx, user)
}

// SocialAuth logs in via an external identity, creating a minimal account
// (no password hash) on first sight of the email.
func (s *Service) SocialAuth(ctx context.Context, req SocialAuthRequest) (AuthSession, error) {
	email, err := normalizeEmail(req.Email)
	if err != nil {
		return AuthSession{}, err
	}

	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		user, err = s.users.Create(ctx, ports.CreateUserParams{
			Name:       strings.TrimSpace(req.Name),
			Email:      email,
			Avatar:     domain.Avatar{URL: strings.TrimSpace(req.Avatar)},
			Role:       s.cfg.DefaultRole,
			IsVerified: true,
		})
	}
	if err != nil {
		return AuthSession{}, err
	}

	return s.openSession(ctx, user)
}

// openSession writes the session snapshot and mints the token pair. The
// snapshot write happens first so a token never refers to a missing session.
func (s *Service) openSession(ctx context.Context, user domain.User) (AuthSession, error) {
	if err := s.cacheSession(ctx, user); err != nil {
		return AuthSession{}, err
	}

	accessToken, err := s.tokens.IssueAccessToken(user.UserID)
	if err != nil {
		return AuthSession{}, fmt.Errorf("sign access token: %w", err)
	}
	refreshToken, err := s.tokens.IssueRefreshToken(user.UserID)
	if err != nil {
		return AuthSession{}, fmt.Errorf("sign refresh token: %w", err)
	}

	return AuthSession{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Authenticate resolves a caller's identity from an access token. Token
// verification is stateless; the session lookup is the authority for "is
// this session still live", which is what makes logout effective server-side
// even while the token stays cryptographically valid.
func (s *Service) Authenticate(ctx context.Context, accessToken string) (domain.User, error) {
	if strings.TrimSpace(accessToken) == "" {
		return domain.User{}, domain.ErrNotAuthenticated
	}

	claims, err := s.tokens.Verify(accessToken, ports.TokenAccess)
	if err != nil {
		return domain.User{}, domain.ErrSessionExpired
	}

	user, err := s.sessions.Get(ctx, claims.UserID)
	if err != nil {
		return domain.User{}, err
	}
	if user == nil {
		return domain.User{}, domain.ErrUserNotFound
	}
	return *user, nil
}

// RefreshTokens rotates the token pair. It succeeds only when the refresh
// token verifies AND a session entry still exists for its subject; every
// other combination reports the same ErrRefreshFailed.
func (s *Service) RefreshTokens(ctx context.Context, refreshToken string) (AuthSession, error) {
	claims, err := s.tokens.Verify(refreshToken, ports.TokenRefresh)
	if err != nil {
		return AuthSession{}, domain.ErrRefreshFailed
	}

	user, err := s.sessions.Get(ctx, claims.UserID)
	if err != nil {
		return AuthSession{}, err
	}
	if user == nil {
		return AuthSession{}, domain.ErrRefreshFailed
	}

	newAccess, err := s.tokens.IssueAccessToken(user.UserID)
	if err != nil {
		return AuthSession{}, fmt.Errorf("sign access token: %w", err)
	}
	newRefresh, err := s.tokens.IssueRefreshToken(user.UserID)
	if err != nil {
		return AuthSession{}, fmt.Errorf("sign refresh token: %w", err)
	}

	return AuthSession{
		User:         *user,
		AccessToken:  newAccess,
		RefreshToken: newRefresh,
	}, nil
}

// Logout deletes the caller's session entry. Deletion is idempotent: a
// second logout finds nothing to remove and still succeeds.
func (s *Service) Logout(ctx context.Context, userID uuid.UUID) error {
	if err := s.sessions.Delete(ctx, userID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func activationMailBody(name, code string) string {
	return fmt.Sprintf(
		"<p>Hello %s,</p><p>Your activation code is <strong>%s</strong>. It expires in 5 minutes.</p>",
		name, code,
	)
}
