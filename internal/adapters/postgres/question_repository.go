package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/skillstream/lms-backend/internal/domain"
	"gorm.io/gorm"
)

type questionRepository struct {
	db *gorm.DB
}

func (r *questionRepository) Create(ctx context.Context, question domain.Question) (domain.Question, error) {
	rec := toQuestionModel(question)
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return domain.Question{}, err
	}
	return toDomainQuestion(rec), nil
}

func (r *questionRepository) GetByID(ctx context.Context, questionID uuid.UUID) (domain.Question, error) {
	var rec questionModel
	if err := r.db.WithContext(ctx).Where("question_id = ?", questionID).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Question{}, domain.ErrNotFound
		}
		return domain.Question{}, err
	}
	return toDomainQuestion(rec), nil
}

func (r *questionRepository) Update(ctx context.Context, question domain.Question) (domain.Question, error) {
	rec := toQuestionModel(question)
	res := r.db.WithContext(ctx).
		Model(&questionModel{}).
		Where("question_id = ?", question.QuestionID).
		Updates(map[string]any{
			"question": rec.Question,
			"replies":  rec.Replies,
		})
	if res.Error != nil {
		return domain.Question{}, res.Error
	}
	if res.RowsAffected == 0 {
		return domain.Question{}, domain.ErrNotFound
	}
	return question, nil
}

func (r *questionRepository) ListByCourse(ctx context.Context, courseID uuid.UUID) ([]domain.Question, error) {
	var rows []questionModel
	if err := r.db.WithContext(ctx).
		Where("course_id = ?", courseID).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	questions := make([]domain.Question, 0, len(rows))
	for _, row := range rows {
		questions = append(questions, toDomainQuestion(row))
	}
	return questions, nil
}
