package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Avatar is a reference to an uploaded profile image.
type Avatar struct {
	PublicID string `json:"public_id,omitempty"`
	URL      string `json:"url,omitempty"`
}

// User is the canonical account aggregate. PasswordHash is empty for
// social-auth accounts; everything else applies to both account kinds.
type User struct {
	UserID       uuid.UUID   `json:"user_id"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"-"`
	Avatar       Avatar      `json:"avatar"`
	Role         string      `json:"role"`
	IsVerified   bool        `json:"is_verified"`
	Courses      []uuid.UUID `json:"courses"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// HasPassword reports whether this account supports credential login.
func (u User) HasPassword() bool { return u.PasswordHash != "" }

// HasPurchased reports whether courseID is in the user's purchased list.
func (u User) HasPurchased(courseID uuid.UUID) bool {
	for _, id := range u.Courses {
		if id == courseID {
			return true
		}
	}
	return false
}

// PendingUser is a not-yet-persisted registration carried inside an
// activation token. The account does not exist until activation succeeds.
type PendingUser struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
}
