package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/skillstream/lms-backend/internal/domain"
	"github.com/skillstream/lms-backend/internal/ports"
	"gorm.io/gorm"
)

type Repositories struct {
	Users         ports.UserRepository
	Courses       ports.CourseRepository
	Reviews       ports.ReviewRepository
	Questions     ports.QuestionRepository
	Orders        ports.OrderRepository
	Notifications ports.NotificationRepository
	Layouts       ports.LayoutRepository
	Outbox        ports.OutboxRepository
}

func NewRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Users:         &userRepository{db: db},
		Courses:       &courseRepository{db: db},
		Reviews:       &reviewRepository{db: db},
		Questions:     &questionRepository{db: db},
		Orders:        &orderRepository{db: db},
		Notifications: &notificationRepository{db: db},
		Layouts:       &layoutRepository{db: db},
		Outbox:        &outboxRepository{db: db},
	}
}

func isUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

type monthRow struct {
	Month time.Time
	Count int64
}

// countCreatedByMonth buckets a table's created_at by calendar month. The
// label format matches what the analytics series expects.
func countCreatedByMonth(ctx context.Context, db *gorm.DB, table string, since time.Time) ([]domain.MonthCount, error) {
	var rows []monthRow
	err := db.WithContext(ctx).
		Raw(`SELECT date_trunc('month', created_at) AS month, COUNT(*) AS count
			FROM `+table+`
			WHERE created_at >= ?
			GROUP BY 1
			ORDER BY 1`, since).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.MonthCount, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.MonthCount{
			Month: row.Month.UTC().Format("Jan 2006"),
			Count: row.Count,
		})
	}
	return out, nil
}
