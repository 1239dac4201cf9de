package postgres

import (
	"context"
	"time"

	"github.com/skillstream/lms-backend/internal/domain"
	"gorm.io/gorm"
)

type orderRepository struct {
	db *gorm.DB
}

func (r *orderRepository) Create(ctx context.Context, order domain.Order) (domain.Order, error) {
	rec := toOrderModel(order)
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return domain.Order{}, err
	}
	return toDomainOrder(rec), nil
}

func (r *orderRepository) List(ctx context.Context) ([]domain.Order, error) {
	var rows []orderModel
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	orders := make([]domain.Order, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, toDomainOrder(row))
	}
	return orders, nil
}

func (r *orderRepository) CountCreatedByMonth(ctx context.Context, since time.Time) ([]domain.MonthCount, error) {
	return countCreatedByMonth(ctx, r.db, "orders", since)
}
