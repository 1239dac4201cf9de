package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/skillstream/lms-backend/internal/domain"
	"gorm.io/gorm"
)

type layoutRepository struct {
	db *gorm.DB
}

func (r *layoutRepository) Create(ctx context.Context, layout domain.Layout) (domain.Layout, error) {
	rec := toLayoutModel(layout)
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.Layout{}, fmt.Errorf("%w: %s layout already exists", domain.ErrConflict, layout.Type)
		}
		return domain.Layout{}, err
	}
	return toDomainLayout(rec), nil
}

func (r *layoutRepository) GetByType(ctx context.Context, layoutType string) (domain.Layout, error) {
	var rec layoutModel
	if err := r.db.WithContext(ctx).Where("type = ?", layoutType).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Layout{}, domain.ErrNotFound
		}
		return domain.Layout{}, err
	}
	return toDomainLayout(rec), nil
}

func (r *layoutRepository) Update(ctx context.Context, layout domain.Layout) (domain.Layout, error) {
	rec := toLayoutModel(layout)
	res := r.db.WithContext(ctx).
		Model(&layoutModel{}).
		Where("layout_id = ?", layout.LayoutID).
		Updates(map[string]any{
			"banner":     rec.Banner,
			"faq":        rec.FAQ,
			"categories": rec.Categories,
			"updated_at": rec.UpdatedAt,
		})
	if res.Error != nil {
		return domain.Layout{}, res.Error
	}
	if res.RowsAffected == 0 {
		return domain.Layout{}, domain.ErrNotFound
	}
	return layout, nil
}
