package postgres

import (
	"time"

	"github.com/google/uuid"
)

type userModel struct {
	UserID       uuid.UUID `gorm:"column:user_id;type:uuid;primaryKey"`
	Name         string    `gorm:"column:name"`
	Email        string    `gorm:"column:email"`
	PasswordHash string    `gorm:"column:password_hash"`
	Avatar       string    `gorm:"column:avatar;type:jsonb"`
	Role         string    `gorm:"column:role"`
	IsVerified   bool      `gorm:"column:is_verified"`
	Courses      string    `gorm:"column:courses;type:jsonb"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (userModel) TableName() string { return "users" }

type courseModel struct {
	CourseID       uuid.UUID `gorm:"column:course_id;type:uuid;primaryKey"`
	Name           string    `gorm:"column:name"`
	Description    string    `gorm:"column:description"`
	Categories     string    `gorm:"column:categories"`
	Price          float64   `gorm:"column:price"`
	EstimatedPrice float64   `gorm:"column:estimated_price"`
	Thumbnail      string    `gorm:"column:thumbnail;type:jsonb"`
	Tags           string    `gorm:"column:tags"`
	Level          string    `gorm:"column:level"`
	DemoURL        string    `gorm:"column:demo_url"`
	Benefits       string    `gorm:"column:benefits;type:jsonb"`
	Prerequisites  string    `gorm:"column:prerequisites;type:jsonb"`
	Sections       string    `gorm:"column:sections;type:jsonb"`
	Rating         float64   `gorm:"column:rating"`
	Purchased      int       `gorm:"column:purchased"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (courseModel) TableName() string { return "courses" }

type reviewModel struct {
	ReviewID  uuid.UUID `gorm:"column:review_id;type:uuid;primaryKey"`
	CourseID  uuid.UUID `gorm:"column:course_id"`
	UserID    uuid.UUID `gorm:"column:user_id"`
	UserName  string    `gorm:"column:user_name"`
	Rating    float64   `gorm:"column:rating"`
	Comment   string    `gorm:"column:comment"`
	Replies   string    `gorm:"column:replies;type:jsonb"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (reviewModel) TableName() string { return "reviews" }

type questionModel struct {
	QuestionID uuid.UUID `gorm:"column:question_id;type:uuid;primaryKey"`
	CourseID   uuid.UUID `gorm:"column:course_id"`
	SectionID  uuid.UUID `gorm:"column:section_id"`
	UserID     uuid.UUID `gorm:"column:user_id"`
	UserName   string    `gorm:"column:user_name"`
	Question   string    `gorm:"column:question"`
	Replies    string    `gorm:"column:replies;type:jsonb"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (questionModel) TableName() string { return "questions" }

type orderModel struct {
	OrderID     uuid.UUID `gorm:"column:order_id;type:uuid;primaryKey"`
	CourseID    uuid.UUID `gorm:"column:course_id"`
	UserID      uuid.UUID `gorm:"column:user_id"`
	Payment     string    `gorm:"column:payment_info;type:jsonb"`
	CoursePrice float64   `gorm:"column:course_price"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (orderModel) TableName() string { return "orders" }

type notificationModel struct {
	NotificationID uuid.UUID `gorm:"column:notification_id;type:uuid;primaryKey"`
	UserID         uuid.UUID `gorm:"column:user_id"`
	Title          string    `gorm:"column:title"`
	Message        string    `gorm:"column:message"`
	Status         string    `gorm:"column:status"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (notificationModel) TableName() string { return "notifications" }

type layoutModel struct {
	LayoutID   uuid.UUID `gorm:"column:layout_id;type:uuid;primaryKey"`
	Type       string    `gorm:"column:type"`
	Banner     string    `gorm:"column:banner;type:jsonb"`
	FAQ        string    `gorm:"column:faq;type:jsonb"`
	Categories string    `gorm:"column:categories;type:jsonb"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (layoutModel) TableName() string { return "layouts" }

type outboxModel struct {
	OutboxID       uuid.UUID  `gorm:"column:outbox_id;type:uuid;primaryKey"`
	EventType      string     `gorm:"column:event_type"`
	PartitionKey   string     `gorm:"column:partition_key"`
	Payload        string     `gorm:"column:payload;type:jsonb"`
	RetryCount     int        `gorm:"column:retry_count"`
	LastError      *string    `gorm:"column:last_error"`
	CreatedAt      time.Time  `gorm:"column:created_at"`
	PublishedAt    *time.Time `gorm:"column:published_at"`
	DeadLetteredAt *time.Time `gorm:"column:dead_lettered_at"`
}

func (outboxModel) TableName() string { return "event_outbox" }
