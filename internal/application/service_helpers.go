package application

import (
	"context"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"

	"github.com/skillstream/lms-backend/internal/domain"
)

// normalizeEmail canonicalizes and validates email format before
// persistence/comparison.
func normalizeEmail(email string) (string, error) {
	trimmed := strings.ToLower(strings.TrimSpace(email))
	if trimmed == "" {
		return "", fmt.Errorf("%w: email is required", domain.ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(trimmed); err != nil {
		return "", fmt.Errorf("%w: invalid email", domain.ErrInvalidInput)
	}
	return trimmed, nil
}

// cacheSession overwrites the Redis snapshot after a user mutation. Every
// mutating path must call this; a missed re-write leaves a stale cached
// identity or role behind.
func (s *Service) cacheSession(ctx context.Context, user domain.User) error {
	if err := s.sessions.Put(ctx, user); err != nil {
		return fmt.Errorf("write session cache: %w", err)
	}
	return nil
}

func appLogger() *slog.Logger {
	return slog.Default().With(
		"module", "application",
		"layer", "application",
	)
}
