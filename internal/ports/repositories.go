package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/skillstream/lms-backend/internal/domain"
)

// CreateUserParams captures the inputs for account creation. PasswordHash
// stays empty for social-auth accounts.
type CreateUserParams struct {
	Name         string
	Email        string
	PasswordHash string
	Avatar       domain.Avatar
	Role         string
	IsVerified   bool
}

// UserRepository defines persistence operations for account records.
// Email uniqueness is enforced at the store; Create surfaces it as ErrConflict.
type UserRepository interface {
	Create(ctx context.Context, params CreateUserParams) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	GetByID(ctx context.Context, userID uuid.UUID) (domain.User, error)
	Update(ctx context.Context, user domain.User) (domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	CountCreatedByMonth(ctx context.Context, since time.Time) ([]domain.MonthCount, error)
}

// CourseRepository owns catalog persistence including the serialized
// section content. Reviews and questions have their own repositories.
type CourseRepository interface {
	Create(ctx context.Context, course domain.Course) (domain.Course, error)
	GetByID(ctx context.Context, courseID uuid.UUID) (domain.Course, error)
	Update(ctx context.Context, course domain.Course) (domain.Course, error)
	Delete(ctx context.Context, courseID uuid.UUID) error
	List(ctx context.Context) ([]domain.Course, error)
	CountCreatedByMonth(ctx context.Context, since time.Time) ([]domain.MonthCount, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, review domain.Review) (domain.Review, error)
	GetByID(ctx context.Context, reviewID uuid.UUID) (domain.Review, error)
	Update(ctx context.Context, review domain.Review) (domain.Review, error)
	ListByCourse(ctx context.Context, courseID uuid.UUID) ([]domain.Review, error)
}

type QuestionRepository interface {
	Create(ctx context.Context, question domain.Question) (domain.Question, error)
	GetByID(ctx context.Context, questionID uuid.UUID) (domain.Question, error)
	Update(ctx context.Context, question domain.Question) (domain.Question, error)
	ListByCourse(ctx context.Context, courseID uuid.UUID) ([]domain.Question, error)
}

type OrderRepository interface {
	Create(ctx context.Context, order domain.Order) (domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	CountCreatedByMonth(ctx context.Context, since time.Time) ([]domain.MonthCount, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, row domain.Notification) (domain.Notification, error)
	GetByID(ctx context.Context, notificationID uuid.UUID) (domain.Notification, error)
	Update(ctx context.Context, row domain.Notification) error
	ListNewestFirst(ctx context.Context) ([]domain.Notification, error)
	DeleteReadOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type LayoutRepository interface {
	Create(ctx context.Context, layout domain.Layout) (domain.Layout, error)
	GetByType(ctx context.Context, layoutType string) (domain.Layout, error)
	Update(ctx context.Context, layout domain.Layout) (domain.Layout, error)
}

// OutboxEvent is the write-side event payload prior to storage.
type OutboxEvent struct {
	EventID      uuid.UUID
	EventType    string
	PartitionKey string
	Payload      []byte
	OccurredAt   time.Time
}

// OutboxRecord is durable outbox state including retry metadata.
type OutboxRecord struct {
	OutboxID     uuid.UUID
	EventType    string
	PartitionKey string
	Payload      []byte
	RetryCount   int
	LastError    *string
	CreatedAt    time.Time
	PublishedAt  *time.Time
}

// OutboxRepository controls the publish-retry workflow for domain events.
// Writes go through the outbox so broker delivery never blocks a request.
// Dead-lettered records leave the unpublished set for good; they stay in
// the table for inspection but are never listed again.
type OutboxRepository interface {
	Enqueue(ctx context.Context, event OutboxEvent) error
	ListUnpublished(ctx context.Context, limit int) ([]OutboxRecord, error)
	MarkPublished(ctx context.Context, outboxID uuid.UUID, at time.Time) error
	MarkFailed(ctx context.Context, outboxID uuid.UUID, errMsg string, at time.Time) error
	MarkDeadLettered(ctx context.Context, outboxID uuid.UUID, reason string, at time.Time) error
}
