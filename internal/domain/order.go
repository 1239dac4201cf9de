package domain

import (
	"time"

	"github.com/google/uuid"
)

// PaymentInfo is the provider's opaque confirmation reference. The gateway
// protocol itself lives outside this service; we only record the outcome.
type PaymentInfo struct {
	Provider  string `json:"provider,omitempty"`
	PaymentID string `json:"payment_id,omitempty"`
	Status    string `json:"status,omitempty"`
}

// Order records a single course purchase.
type Order struct {
	OrderID     uuid.UUID   `json:"order_id"`
	CourseID    uuid.UUID   `json:"course_id"`
	UserID      uuid.UUID   `json:"user_id"`
	Payment     PaymentInfo `json:"payment_info"`
	CoursePrice float64     `json:"course_price"`
	CreatedAt   time.Time   `json:"created_at"`
}
