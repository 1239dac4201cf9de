package application

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/skillstream/lms-backend/internal/domain"
	"github.com/skillstream/lms-backend/internal/ports"
)

// CreateOrder purchases a course for the caller. The duplicate check runs
// first so a repeat purchase conflicts without touching payment or storage.
// Steps after persistence (enrollment, counters, notification, email) run
// in order; an email failure fails the request but does not roll back the
// committed order.
func (s *Service) CreateOrder(ctx context.Context, user domain.User, req CreateOrderRequest) (domain.Order, error) {
	if user.HasPurchased(req.CourseID) {
		return domain.Order{}, domain.ErrAlreadyOwned
	}

	course, err := s.courses.GetByID(ctx, req.CourseID)
	if err != nil {
		return domain.Order{}, err
	}

	if err := s.payments.Confirm(ctx, req.Payment); err != nil {
		return domain.Order{}, fmt.Errorf("confirm payment: %w", err)
	}

	now := s.nowFn()
	order, err := s.orders.Create(ctx, domain.Order{
		OrderID:     uuid.New(),
		CourseID:    course.CourseID,
		UserID:      user.UserID,
		Payment:     req.Payment,
		CoursePrice: course.Price,
		CreatedAt:   now,
	})
	if err != nil {
		return domain.Order{}, err
	}

	enrolled, err := s.users.GetByID(ctx, user.UserID)
	if err != nil {
		return domain.Order{}, err
	}
	enrolled.Courses = append(enrolled.Courses, course.CourseID)
	enrolled.UpdatedAt = now
	enrolled, err = s.users.Update(ctx, enrolled)
	if err != nil {
		return domain.Order{}, err
	}
	if err := s.cacheSession(ctx, enrolled); err != nil {
		return domain.Order{}, err
	}

	course.Purchased++
	course.UpdatedAt = now
	if _, err := s.courses.Update(ctx, course); err != nil {
		return domain.Order{}, err
	}

	if err := s.createNotification(ctx, user.UserID, "New Order",
		fmt.Sprintf("You have a new order for %s", course.Name)); err != nil {
		return domain.Order{}, err
	}

	if err := s.mailer.Send(ctx, orderConfirmationMail(enrolled, course, order)); err != nil {
		return domain.Order{}, fmt.Errorf("send order mail: %w", err)
	}

	payload, _ := json.Marshal(map[string]any{
		"order_id":   order.OrderID,
		"course_id":  course.CourseID,
		"user_id":    user.UserID,
		"price":      order.CoursePrice,
		"created_at": order.CreatedAt,
	})
	if err := s.outbox.Enqueue(ctx, ports.OutboxEvent{
		EventID:      uuid.New(),
		EventType:    eventTypeOrderCreated,
		PartitionKey: user.UserID.String(),
		Payload:      payload,
		OccurredAt:   now,
	}); err != nil {
		appLogger().WarnContext(ctx, "failed to enqueue order event",
			"operation", "create_order",
			"outcome", "warning",
			"order_id", order.OrderID,
			"error", err,
		)
	}

	return order, nil
}

// ListOrders returns every order for the admin dashboard.
func (s *Service) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return s.orders.List(ctx)
}

func orderConfirmationMail(user domain.User, course domain.Course, order domain.Order) ports.Mail {
	return ports.Mail{
		To:      user.Email,
		Subject: "Order Confirmation",
		Body: fmt.Sprintf(
			"<p>Hello %s,</p><p>Thank you for purchasing <strong>%s</strong>.</p><p>Order %s, total $%.2f.</p>",
			user.Name, course.Name, order.OrderID, order.CoursePrice,
		),
	}
}
