package application

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/skillstream/lms-backend/internal/domain"
	"github.com/skillstream/lms-backend/internal/ports"
)

// createNotification records an unread dashboard entry and enqueues the
// matching outbox event.
func (s *Service) createNotification(ctx context.Context, actorID uuid.UUID, title, message string) error {
	now := s.nowFn()
	row, err := s.notifications.Create(ctx, domain.Notification{
		NotificationID: uuid.New(),
		UserID:         actorID,
		Title:          title,
		Message:        message,
		Status:         domain.NotificationUnread,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if err != nil {
		return err
	}

	payload, _ := json.Marshal(map[string]any{
		"notification_id": row.NotificationID,
		"user_id":         row.UserID,
		"title":           row.Title,
		"created_at":      row.CreatedAt,
	})
	if err := s.outbox.Enqueue(ctx, ports.OutboxEvent{
		EventID:      uuid.New(),
		EventType:    eventTypeNotificationCreated,
		PartitionKey: row.UserID.String(),
		Payload:      payload,
		OccurredAt:   now,
	}); err != nil {
		appLogger().WarnContext(ctx, "failed to enqueue notification event",
			"operation", "create_notification",
			"outcome", "warning",
			"notification_id", row.NotificationID,
			"error", err,
		)
	}
	return nil
}

// ListNotifications returns all entries, newest first, for the admin
// dashboard.
func (s *Service) ListNotifications(ctx context.Context) ([]domain.Notification, error) {
	return s.notifications.ListNewestFirst(ctx)
}

// MarkNotificationRead flips one entry to read and returns the refreshed
// listing so the dashboard can repaint from a single response. Marking an
// already-read entry is harmless.
func (s *Service) MarkNotificationRead(ctx context.Context, notificationID uuid.UUID) ([]domain.Notification, error) {
	row, err := s.notifications.GetByID(ctx, notificationID)
	if err != nil {
		return nil, err
	}
	row.MarkRead(s.nowFn())
	if err := s.notifications.Update(ctx, row); err != nil {
		return nil, err
	}
	return s.notifications.ListNewestFirst(ctx)
}

// CleanupReadNotifications deletes read entries older than the retention
// window. The worker calls this on a schedule.
func (s *Service) CleanupReadNotifications(ctx context.Context) (int64, error) {
	cutoff := s.nowFn().Add(-s.cfg.NotificationRetention)
	deleted, err := s.notifications.DeleteReadOlderThan(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	if deleted > 0 {
		appLogger().InfoContext(ctx, "swept read notifications",
			"operation", "cleanup_notifications",
			"outcome", "success",
			"deleted", deleted,
		)
	}
	return deleted, nil
}
