package application

import (
	"github.com/google/uuid"
	"github.com/skillstream/lms-backend/internal/domain"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterResponse returns the activation token the client must round-trip
// on activation. The 4-digit code travels only by email.
type RegisterResponse struct {
	Message         string `json:"message"`
	ActivationToken string `json:"activation_token"`
}

type ActivateRequest struct {
	ActivationToken string `json:"activation_token"`
	ActivationCode  string `json:"activation_code"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SocialAuthRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
}

// AuthSession is an authenticated outcome: the fresh user snapshot plus the
// token pair the HTTP adapter turns into cookies.
type AuthSession struct {
	User         domain.User
	AccessToken  string
	RefreshToken string
}

type UpdateUserInfoRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type UpdatePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

type UpdateAvatarRequest struct {
	Avatar string `json:"avatar"`
}

type UpdateRoleRequest struct {
	UserID uuid.UUID `json:"user_id"`
	Role   string    `json:"role"`
}

// CourseInput is the write shape for catalog create/edit. Thumbnail is the
// raw upload payload (data URL); the stored reference comes back on Course.
type CourseInput struct {
	Name           string                 `json:"name"`
	Description    string                 `json:"description"`
	Categories     string                 `json:"categories"`
	Price          float64                `json:"price"`
	EstimatedPrice float64                `json:"estimated_price"`
	Thumbnail      string                 `json:"thumbnail"`
	Tags           string                 `json:"tags"`
	Level          string                 `json:"level"`
	DemoURL        string                 `json:"demo_url"`
	Benefits       []string               `json:"benefits"`
	Prerequisites  []string               `json:"prerequisites"`
	Sections       []domain.CourseSection `json:"sections"`
}

type AddQuestionRequest struct {
	CourseID  uuid.UUID `json:"course_id"`
	SectionID uuid.UUID `json:"section_id"`
	Question  string    `json:"question"`
}

type AddAnswerRequest struct {
	QuestionID uuid.UUID `json:"question_id"`
	Answer     string    `json:"answer"`
}

type AddReviewRequest struct {
	Rating  float64 `json:"rating"`
	Comment string  `json:"comment"`
}

type ReplyReviewRequest struct {
	ReviewID uuid.UUID `json:"review_id"`
	Comment  string    `json:"comment"`
}

type CreateOrderRequest struct {
	CourseID uuid.UUID          `json:"course_id"`
	Payment  domain.PaymentInfo `json:"payment_info"`
}

// LayoutInput is the write shape for site layout blocks. Only the fields
// matching Type are consulted; Banner.Image carries the raw upload payload.
type LayoutInput struct {
	Type       string            `json:"type"`
	Image      string            `json:"image"`
	Title      string            `json:"title"`
	Subtitle   string            `json:"subtitle"`
	FAQ        []domain.FAQItem  `json:"faq"`
	Categories []domain.Category `json:"categories"`
}
