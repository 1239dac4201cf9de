package postgres

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/skillstream/lms-backend/internal/domain"
)

// jsonColumn marshals a value for a jsonb column. Empty collections are
// stored as valid JSON so reads never hit a null blob.
func jsonColumn(v any) string {
	raw, err := json.Marshal(v)
	if err != nil {
		return "null"
	}
	return string(raw)
}

func fromJSONColumn[T any](raw string) T {
	var v T
	if raw != "" {
		_ = json.Unmarshal([]byte(raw), &v)
	}
	return v
}

func toUserModel(u domain.User) userModel {
	courses := u.Courses
	if courses == nil {
		courses = []uuid.UUID{}
	}
	return userModel{
		UserID:       u.UserID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Avatar:       jsonColumn(u.Avatar),
		Role:         u.Role,
		IsVerified:   u.IsVerified,
		Courses:      jsonColumn(courses),
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func toDomainUser(row userModel) domain.User {
	return domain.User{
		UserID:       row.UserID,
		Name:         row.Name,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		Avatar:       fromJSONColumn[domain.Avatar](row.Avatar),
		Role:         row.Role,
		IsVerified:   row.IsVerified,
		Courses:      fromJSONColumn[[]uuid.UUID](row.Courses),
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

func toCourseModel(c domain.Course) courseModel {
	return courseModel{
		CourseID:       c.CourseID,
		Name:           c.Name,
		Description:    c.Description,
		Categories:     c.Categories,
		Price:          c.Price,
		EstimatedPrice: c.EstimatedPrice,
		Thumbnail:      jsonColumn(c.Thumbnail),
		Tags:           c.Tags,
		Level:          c.Level,
		DemoURL:        c.DemoURL,
		Benefits:       jsonColumn(c.Benefits),
		Prerequisites:  jsonColumn(c.Prerequisites),
		Sections:       jsonColumn(c.Sections),
		Rating:         c.Rating,
		Purchased:      c.Purchased,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func toDomainCourse(row courseModel) domain.Course {
	return domain.Course{
		CourseID:       row.CourseID,
		Name:           row.Name,
		Description:    row.Description,
		Categories:     row.Categories,
		Price:          row.Price,
		EstimatedPrice: row.EstimatedPrice,
		Thumbnail:      fromJSONColumn[domain.Thumbnail](row.Thumbnail),
		Tags:           row.Tags,
		Level:          row.Level,
		DemoURL:        row.DemoURL,
		Benefits:       fromJSONColumn[[]string](row.Benefits),
		Prerequisites:  fromJSONColumn[[]string](row.Prerequisites),
		Sections:       fromJSONColumn[[]domain.CourseSection](row.Sections),
		Rating:         row.Rating,
		Purchased:      row.Purchased,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}

func toReviewModel(r domain.Review) reviewModel {
	replies := r.Replies
	if replies == nil {
		replies = []domain.ReviewReply{}
	}
	return reviewModel{
		ReviewID:  r.ReviewID,
		CourseID:  r.CourseID,
		UserID:    r.UserID,
		UserName:  r.UserName,
		Rating:    r.Rating,
		Comment:   r.Comment,
		Replies:   jsonColumn(replies),
		CreatedAt: r.CreatedAt,
	}
}

func toDomainReview(row reviewModel) domain.Review {
	return domain.Review{
		ReviewID:  row.ReviewID,
		CourseID:  row.CourseID,
		UserID:    row.UserID,
		UserName:  row.UserName,
		Rating:    row.Rating,
		Comment:   row.Comment,
		Replies:   fromJSONColumn[[]domain.ReviewReply](row.Replies),
		CreatedAt: row.CreatedAt,
	}
}

func toQuestionModel(q domain.Question) questionModel {
	replies := q.Replies
	if replies == nil {
		replies = []domain.QuestionReply{}
	}
	return questionModel{
		QuestionID: q.QuestionID,
		CourseID:   q.CourseID,
		SectionID:  q.SectionID,
		UserID:     q.UserID,
		UserName:   q.UserName,
		Question:   q.Question,
		Replies:    jsonColumn(replies),
		CreatedAt:  q.CreatedAt,
	}
}

func toDomainQuestion(row questionModel) domain.Question {
	return domain.Question{
		QuestionID: row.QuestionID,
		CourseID:   row.CourseID,
		SectionID:  row.SectionID,
		UserID:     row.UserID,
		UserName:   row.UserName,
		Question:   row.Question,
		Replies:    fromJSONColumn[[]domain.QuestionReply](row.Replies),
		CreatedAt:  row.CreatedAt,
	}
}

func toOrderModel(o domain.Order) orderModel {
	return orderModel{
		OrderID:     o.OrderID,
		CourseID:    o.CourseID,
		UserID:      o.UserID,
		Payment:     jsonColumn(o.Payment),
		CoursePrice: o.CoursePrice,
		CreatedAt:   o.CreatedAt,
	}
}

func toDomainOrder(row orderModel) domain.Order {
	return domain.Order{
		OrderID:     row.OrderID,
		CourseID:    row.CourseID,
		UserID:      row.UserID,
		Payment:     fromJSONColumn[domain.PaymentInfo](row.Payment),
		CoursePrice: row.CoursePrice,
		CreatedAt:   row.CreatedAt,
	}
}

func toNotificationModel(n domain.Notification) notificationModel {
	return notificationModel{
		NotificationID: n.NotificationID,
		UserID:         n.UserID,
		Title:          n.Title,
		Message:        n.Message,
		Status:         n.Status,
		CreatedAt:      n.CreatedAt,
		UpdatedAt:      n.UpdatedAt,
	}
}

func toDomainNotification(row notificationModel) domain.Notification {
	return domain.Notification{
		NotificationID: row.NotificationID,
		UserID:         row.UserID,
		Title:          row.Title,
		Message:        row.Message,
		Status:         row.Status,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}

func toLayoutModel(l domain.Layout) layoutModel {
	return layoutModel{
		LayoutID:   l.LayoutID,
		Type:       l.Type,
		Banner:     jsonColumn(l.Banner),
		FAQ:        jsonColumn(l.FAQ),
		Categories: jsonColumn(l.Categories),
		CreatedAt:  l.CreatedAt,
		UpdatedAt:  l.UpdatedAt,
	}
}

func toDomainLayout(row layoutModel) domain.Layout {
	return domain.Layout{
		LayoutID:   row.LayoutID,
		Type:       row.Type,
		Banner:     fromJSONColumn[*domain.Banner](row.Banner),
		FAQ:        fromJSONColumn[[]domain.FAQItem](row.FAQ),
		Categories: fromJSONColumn[[]domain.Category](row.Categories),
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
}
