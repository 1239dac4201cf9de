package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/skillstream/lms-backend/internal/domain"
)

// SessionStore holds the serialized user snapshot keyed by user ID. The
// entry itself never expires; the access token's expiry bounds its use and
// the store round-trip is the liveness authority for a session.
type SessionStore interface {
	Put(ctx context.Context, user domain.User) error
	Get(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	Delete(ctx context.Context, userID uuid.UUID) error
}

// CatalogCache is the cache-aside layer for course reads. Writes never
// invalidate it; cached entries go stale until the TTL lapses or the key is
// overwritten by the next read-through (accepted staleness, see DESIGN.md).
type CatalogCache interface {
	GetCourse(ctx context.Context, courseID uuid.UUID) (*domain.Course, error)
	PutCourse(ctx context.Context, course domain.Course, ttl time.Duration) error
	GetAllCourses(ctx context.Context) ([]domain.Course, error)
	PutAllCourses(ctx context.Context, courses []domain.Course, ttl time.Duration) error
}
