package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	NotificationUnread = "unread"
	NotificationRead   = "read"
)

// Notification is an in-app event entry surfaced on the admin dashboard.
type Notification struct {
	NotificationID uuid.UUID `json:"notification_id"`
	UserID         uuid.UUID `json:"user_id"`
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// MarkRead transitions the notification to read. Already-read entries keep
// their original read timestamp semantics (UpdatedAt advances regardless).
func (n *Notification) MarkRead(at time.Time) {
	n.Status = NotificationRead
	n.UpdatedAt = at.UTC()
}
