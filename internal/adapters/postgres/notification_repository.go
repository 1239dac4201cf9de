package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/skillstream/lms-backend/internal/domain"
	"gorm.io/gorm"
)

type notificationRepository struct {
	db *gorm.DB
}

func (r *notificationRepository) Create(ctx context.Context, row domain.Notification) (domain.Notification, error) {
	rec := toNotificationModel(row)
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return domain.Notification{}, err
	}
	return toDomainNotification(rec), nil
}

func (r *notificationRepository) GetByID(ctx context.Context, notificationID uuid.UUID) (domain.Notification, error) {
	var rec notificationModel
	if err := r.db.WithContext(ctx).Where("notification_id = ?", notificationID).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Notification{}, domain.ErrNotFound
		}
		return domain.Notification{}, err
	}
	return toDomainNotification(rec), nil
}

func (r *notificationRepository) Update(ctx context.Context, row domain.Notification) error {
	res := r.db.WithContext(ctx).
		Model(&notificationModel{}).
		Where("notification_id = ?", row.NotificationID).
		Updates(map[string]any{
			"status":     row.Status,
			"updated_at": row.UpdatedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *notificationRepository) ListNewestFirst(ctx context.Context) ([]domain.Notification, error) {
	var rows []notificationModel
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	items := make([]domain.Notification, 0, len(rows))
	for _, row := range rows {
		items = append(items, toDomainNotification(row))
	}
	return items, nil
}

func (r *notificationRepository) DeleteReadOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("status = ?", domain.NotificationRead).
		Where("created_at < ?", cutoff).
		Delete(&notificationModel{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
