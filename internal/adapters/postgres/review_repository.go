package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/skillstream/lms-backend/internal/domain"
	"gorm.io/gorm"
)

type reviewRepository struct {
	db *gorm.DB
}

func (r *reviewRepository) Create(ctx context.Context, review domain.Review) (domain.Review, error) {
	rec := toReviewModel(review)
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return domain.Review{}, err
	}
	return toDomainReview(rec), nil
}

func (r *reviewRepository) GetByID(ctx context.Context, reviewID uuid.UUID) (domain.Review, error) {
	var rec reviewModel
	if err := r.db.WithContext(ctx).Where("review_id = ?", reviewID).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Review{}, domain.ErrNotFound
		}
		return domain.Review{}, err
	}
	return toDomainReview(rec), nil
}

func (r *reviewRepository) Update(ctx context.Context, review domain.Review) (domain.Review, error) {
	rec := toReviewModel(review)
	res := r.db.WithContext(ctx).
		Model(&reviewModel{}).
		Where("review_id = ?", review.ReviewID).
		Updates(map[string]any{
			"rating":  rec.Rating,
			"comment": rec.Comment,
			"replies": rec.Replies,
		})
	if res.Error != nil {
		return domain.Review{}, res.Error
	}
	if res.RowsAffected == 0 {
		return domain.Review{}, domain.ErrNotFound
	}
	return review, nil
}

func (r *reviewRepository) ListByCourse(ctx context.Context, courseID uuid.UUID) ([]domain.Review, error) {
	var rows []reviewModel
	if err := r.db.WithContext(ctx).
		Where("course_id = ?", courseID).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	reviews := make([]domain.Review, 0, len(rows))
	for _, row := range rows {
		reviews = append(reviews, toDomainReview(row))
	}
	return reviews, nil
}
