package domain

import (
	"time"

	"github.com/google/uuid"
)

// Thumbnail is a reference to an uploaded course image.
type Thumbnail struct {
	PublicID string `json:"public_id,omitempty"`
	URL      string `json:"url,omitempty"`
}

// SectionLink is supplementary material attached to a course section.
type SectionLink struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// CourseSection is one unit of course content. Video material is only
// served to purchasers; previews strip it via Preview.
type CourseSection struct {
	SectionID   uuid.UUID     `json:"section_id"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	VideoURL    string        `json:"video_url,omitempty"`
	VideoLength int           `json:"video_length,omitempty"`
	Suggestion  string        `json:"suggestion,omitempty"`
	Links       []SectionLink `json:"links,omitempty"`
}

// Course is the catalog aggregate. Sections ride along as a JSON blob in
// storage; reviews and questions are separate entities keyed by CourseID.
type Course struct {
	CourseID       uuid.UUID       `json:"course_id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Categories     string          `json:"categories,omitempty"`
	Price          float64         `json:"price"`
	EstimatedPrice float64         `json:"estimated_price,omitempty"`
	Thumbnail      Thumbnail       `json:"thumbnail"`
	Tags           string          `json:"tags,omitempty"`
	Level          string          `json:"level,omitempty"`
	DemoURL        string          `json:"demo_url,omitempty"`
	Benefits       []string        `json:"benefits,omitempty"`
	Prerequisites  []string        `json:"prerequisites,omitempty"`
	Sections       []CourseSection `json:"sections,omitempty"`
	Rating         float64         `json:"rating"`
	Purchased      int             `json:"purchased"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// Preview returns the course with paid material removed. Section titles
// stay visible so the catalog page can show the curriculum outline.
func (c Course) Preview() Course {
	sections := make([]CourseSection, 0, len(c.Sections))
	for _, s := range c.Sections {
		sections = append(sections, CourseSection{
			SectionID:   s.SectionID,
			Title:       s.Title,
			VideoLength: s.VideoLength,
		})
	}
	c.Sections = sections
	return c
}

// ReviewReply is an admin response attached to a review.
type ReviewReply struct {
	UserID    uuid.UUID `json:"user_id"`
	UserName  string    `json:"user_name"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// Review is a purchaser's rating and comment on a course.
type Review struct {
	ReviewID  uuid.UUID     `json:"review_id"`
	CourseID  uuid.UUID     `json:"course_id"`
	UserID    uuid.UUID     `json:"user_id"`
	UserName  string        `json:"user_name"`
	Rating    float64       `json:"rating"`
	Comment   string        `json:"comment"`
	Replies   []ReviewReply `json:"replies,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}

// QuestionReply is an answer attached to a course question.
type QuestionReply struct {
	UserID    uuid.UUID `json:"user_id"`
	UserName  string    `json:"user_name"`
	Answer    string    `json:"answer"`
	CreatedAt time.Time `json:"created_at"`
}

// Question is a learner's question on a course section.
type Question struct {
	QuestionID uuid.UUID       `json:"question_id"`
	CourseID   uuid.UUID       `json:"course_id"`
	SectionID  uuid.UUID       `json:"section_id"`
	UserID     uuid.UUID       `json:"user_id"`
	UserName   string          `json:"user_name"`
	Question   string          `json:"question"`
	Replies    []QuestionReply `json:"replies,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}
