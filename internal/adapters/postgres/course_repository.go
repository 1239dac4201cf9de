package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/skillstream/lms-backend/internal/domain"
	"gorm.io/gorm"
)

type courseRepository struct {
	db *gorm.DB
}

func (r *courseRepository) Create(ctx context.Context, course domain.Course) (domain.Course, error) {
	rec := toCourseModel(course)
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return domain.Course{}, err
	}
	return toDomainCourse(rec), nil
}

func (r *courseRepository) GetByID(ctx context.Context, courseID uuid.UUID) (domain.Course, error) {
	var rec courseModel
	if err := r.db.WithContext(ctx).Where("course_id = ?", courseID).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Course{}, domain.ErrNotFound
		}
		return domain.Course{}, err
	}
	return toDomainCourse(rec), nil
}

func (r *courseRepository) Update(ctx context.Context, course domain.Course) (domain.Course, error) {
	rec := toCourseModel(course)
	res := r.db.WithContext(ctx).
		Model(&courseModel{}).
		Where("course_id = ?", course.CourseID).
		Updates(map[string]any{
			"name":            rec.Name,
			"description":     rec.Description,
			"categories":      rec.Categories,
			"price":           rec.Price,
			"estimated_price": rec.EstimatedPrice,
			"thumbnail":       rec.Thumbnail,
			"tags":            rec.Tags,
			"level":           rec.Level,
			"demo_url":        rec.DemoURL,
			"benefits":        rec.Benefits,
			"prerequisites":   rec.Prerequisites,
			"sections":        rec.Sections,
			"rating":          rec.Rating,
			"purchased":       rec.Purchased,
			"updated_at":      rec.UpdatedAt,
		})
	if res.Error != nil {
		return domain.Course{}, res.Error
	}
	if res.RowsAffected == 0 {
		return domain.Course{}, domain.ErrNotFound
	}
	return course, nil
}

func (r *courseRepository) Delete(ctx context.Context, courseID uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("course_id = ?", courseID).Delete(&courseModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *courseRepository) List(ctx context.Context) ([]domain.Course, error) {
	var rows []courseModel
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	courses := make([]domain.Course, 0, len(rows))
	for _, row := range rows {
		courses = append(courses, toDomainCourse(row))
	}
	return courses, nil
}

func (r *courseRepository) CountCreatedByMonth(ctx context.Context, since time.Time) ([]domain.MonthCount, error) {
	return countCreatedByMonth(ctx, r.db, "courses", since)
}
