package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/skillstream/lms-backend/internal/domain"
)

// Me returns the caller's profile straight from the session snapshot. No
// database read happens here, which is why every user mutation must rewrite
// the snapshot.
func (s *Service) Me(ctx context.Context, userID uuid.UUID) (domain.User, error) {
	user, err := s.sessions.Get(ctx, userID)
	if err != nil {
		return domain.User{}, err
	}
	if user == nil {
		return domain.User{}, domain.ErrUserNotFound
	}
	return *user, nil
}

// UpdateUserInfo changes the caller's name and/or email. A requested email
// that belongs to another account is a conflict.
func (s *Service) UpdateUserInfo(ctx context.Context, userID uuid.UUID, req UpdateUserInfoRequest) (domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return domain.User{}, err
	}

	if req.Email != "" {
		email, err := normalizeEmail(req.Email)
		if err != nil {
			return domain.User{}, err
		}
		if email != user.Email {
			existing, err := s.users.GetByEmail(ctx, email)
			if err == nil && existing.UserID != userID {
				return domain.User{}, fmt.Errorf("%w: email already exists", domain.ErrConflict)
			}
			if err != nil && !errors.Is(err, domain.ErrNotFound) {
				return domain.User{}, err
			}
			user.Email = email
		}
	}
	if name := strings.TrimSpace(req.Name); name != "" {
		user.Name = name
	}
	user.UpdatedAt = s.nowFn()

	updated, err := s.users.Update(ctx, user)
	if err != nil {
		return domain.User{}, err
	}
	if err := s.cacheSession(ctx, updated); err != nil {
		return domain.User{}, err
	}
	return updated, nil
}

// UpdatePassword rotates the caller's password after verifying the old one.
// Social-auth accounts have no password to rotate.
func (s *Service) UpdatePassword(ctx context.Context, userID uuid.UUID, req UpdatePasswordRequest) (domain.User, error) {
	if req.OldPassword == "" || req.NewPassword == "" {
		return domain.User{}, fmt.Errorf("%w: please enter old and new password", domain.ErrInvalidInput)
	}
	if err := domain.ValidatePassword(req.NewPassword); err != nil {
		return domain.User{}, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return domain.User{}, err
	}
	if !user.HasPassword() {
		return domain.User{}, domain.ErrNoPasswordAuth
	}
	if err := s.hasher.Compare(user.PasswordHash, req.OldPassword); err != nil {
		return domain.User{}, domain.ErrInvalidCredentials
	}

	hash, err := s.hasher.Hash(req.NewPassword)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}
	user.PasswordHash = hash
	user.UpdatedAt = s.nowFn()

	updated, err := s.users.Update(ctx, user)
	if err != nil {
		return domain.User{}, err
	}
	if err := s.cacheSession(ctx, updated); err != nil {
		return domain.User{}, err
	}
	return updated, nil
}

// UpdateAvatar replaces the caller's profile image. The previous provider
// asset is destroyed before the new upload so orphans never accumulate.
func (s *Service) UpdateAvatar(ctx context.Context, userID uuid.UUID, req UpdateAvatarRequest) (domain.User, error) {
	data := strings.TrimSpace(req.Avatar)
	if data == "" {
		return domain.User{}, fmt.Errorf("%w: avatar payload is required", domain.ErrInvalidInput)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return domain.User{}, err
	}

	if user.Avatar.PublicID != "" {
		if err := s.media.Destroy(ctx, user.Avatar.PublicID); err != nil {
			return domain.User{}, fmt.Errorf("destroy old avatar: %w", err)
		}
	}
	asset, err := s.media.Upload(ctx, data, "avatars")
	if err != nil {
		return domain.User{}, fmt.Errorf("upload avatar: %w", err)
	}

	user.Avatar = domain.Avatar{PublicID: asset.PublicID, URL: asset.URL}
	user.UpdatedAt = s.nowFn()

	updated, err := s.users.Update(ctx, user)
	if err != nil {
		return domain.User{}, err
	}
	if err := s.cacheSession(ctx, updated); err != nil {
		return domain.User{}, err
	}
	return updated, nil
}

// ListUsers returns all accounts for the admin dashboard.
func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// UpdateRole changes an account's role. When the target has a live session
// its snapshot is rewritten so the new role takes effect on their very next
// request; a logged-out target gets no snapshot fabricated for it.
func (s *Service) UpdateRole(ctx context.Context, req UpdateRoleRequest) (domain.User, error) {
	role := strings.ToLower(strings.TrimSpace(req.Role))
	if role != domain.RoleUser && role != domain.RoleAdmin {
		return domain.User{}, fmt.Errorf("%w: unknown role %q", domain.ErrInvalidInput, req.Role)
	}

	user, err := s.users.GetByID(ctx, req.UserID)
	if err != nil {
		return domain.User{}, err
	}
	user.Role = role
	user.UpdatedAt = s.nowFn()

	updated, err := s.users.Update(ctx, user)
	if err != nil {
		return domain.User{}, err
	}
	live, err := s.sessions.Get(ctx, updated.UserID)
	if err != nil {
		return domain.User{}, err
	}
	if live != nil {
		if err := s.cacheSession(ctx, updated); err != nil {
			return domain.User{}, err
		}
	}
	return updated, nil
}
