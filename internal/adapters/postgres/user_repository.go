package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/skillstream/lms-backend/internal/domain"
	"github.com/skillstream/lms-backend/internal/ports"
	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

func (r *userRepository) Create(ctx context.Context, params ports.CreateUserParams) (domain.User, error) {
	now := time.Now().UTC()
	rec := toUserModel(domain.User{
		UserID:       uuid.New(),
		Name:         params.Name,
		Email:        params.Email,
		PasswordHash: params.PasswordHash,
		Avatar:       params.Avatar,
		Role:         params.Role,
		IsVerified:   params.IsVerified,
		Courses:      []uuid.UUID{},
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.User{}, fmt.Errorf("%w: email already exists", domain.ErrConflict)
		}
		return domain.User{}, err
	}
	return toDomainUser(rec), nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	var rec userModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, domain.ErrNotFound
		}
		return domain.User{}, err
	}
	return toDomainUser(rec), nil
}

func (r *userRepository) GetByID(ctx context.Context, userID uuid.UUID) (domain.User, error) {
	var rec userModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, domain.ErrNotFound
		}
		return domain.User{}, err
	}
	return toDomainUser(rec), nil
}

func (r *userRepository) Update(ctx context.Context, user domain.User) (domain.User, error) {
	rec := toUserModel(user)
	res := r.db.WithContext(ctx).
		Model(&userModel{}).
		Where("user_id = ?", user.UserID).
		Updates(map[string]any{
			"name":          rec.Name,
			"email":         rec.Email,
			"password_hash": rec.PasswordHash,
			"avatar":        rec.Avatar,
			"role":          rec.Role,
			"is_verified":   rec.IsVerified,
			"courses":       rec.Courses,
			"updated_at":    rec.UpdatedAt,
		})
	if res.Error != nil {
		if isUniqueViolation(res.Error) {
			return domain.User{}, fmt.Errorf("%w: email already exists", domain.ErrConflict)
		}
		return domain.User{}, res.Error
	}
	if res.RowsAffected == 0 {
		return domain.User{}, domain.ErrNotFound
	}
	return user, nil
}

func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	var rows []userModel
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	users := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, toDomainUser(row))
	}
	return users, nil
}

func (r *userRepository) CountCreatedByMonth(ctx context.Context, since time.Time) ([]domain.MonthCount, error) {
	return countCreatedByMonth(ctx, r.db, "users", since)
}
