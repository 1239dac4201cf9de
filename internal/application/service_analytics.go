package application

import (
	"context"
	"time"

	"github.com/skillstream/lms-backend/internal/domain"
)

const analyticsMonths = 12

// UserAnalytics returns registrations per month over the trailing year.
func (s *Service) UserAnalytics(ctx context.Context) ([]domain.MonthCount, error) {
	return s.monthlySeries(ctx, s.users.CountCreatedByMonth)
}

// CourseAnalytics returns courses created per month over the trailing year.
func (s *Service) CourseAnalytics(ctx context.Context) ([]domain.MonthCount, error) {
	return s.monthlySeries(ctx, s.courses.CountCreatedByMonth)
}

// OrderAnalytics returns orders per month over the trailing year.
func (s *Service) OrderAnalytics(ctx context.Context) ([]domain.MonthCount, error) {
	return s.monthlySeries(ctx, s.orders.CountCreatedByMonth)
}

// monthlySeries fills the trailing 12 calendar months (oldest first) from a
// sparse store count, zeroing months with no rows.
func (s *Service) monthlySeries(ctx context.Context, count func(context.Context, time.Time) ([]domain.MonthCount, error)) ([]domain.MonthCount, error) {
	now := s.nowFn()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(analyticsMonths - 1), 0)

	rows, err := count(ctx, start)
	if err != nil {
		return nil, err
	}
	byMonth := make(map[string]int64, len(rows))
	for _, r := range rows {
		byMonth[r.Month] = r.Count
	}

	series := make([]domain.MonthCount, 0, analyticsMonths)
	for i := 0; i < analyticsMonths; i++ {
		label := start.AddDate(0, i, 0).Format("Jan 2006")
		series = append(series, domain.MonthCount{Month: label, Count: byMonth[label]})
	}
	return series, nil
}
