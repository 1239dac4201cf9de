package application

import (
	"time"

	"github.com/skillstream/lms-backend/internal/ports"
)

// Config carries the tunables the business rules depend on. Everything else
// (ports, secrets) arrives through Dependencies.
type Config struct {
	DefaultRole     string
	CatalogCacheTTL time.Duration
	// NotificationRetention bounds how long read notifications survive
	// before the worker sweeps them.
	NotificationRetention time.Duration
}

// Service implements every use-case of the platform. All collaborators are
// injected at construction so tests can substitute fakes for the stores,
// cache, and third-party clients.
type Service struct {
	cfg           Config
	users         ports.UserRepository
	courses       ports.CourseRepository
	reviews       ports.ReviewRepository
	questions     ports.QuestionRepository
	orders        ports.OrderRepository
	notifications ports.NotificationRepository
	layouts       ports.LayoutRepository
	outbox        ports.OutboxRepository
	sessions      ports.SessionStore
	catalogCache  ports.CatalogCache
	hasher        ports.PasswordHasher
	tokens        ports.TokenIssuer
	mailer        ports.Mailer
	media         ports.MediaUploader
	payments      ports.PaymentVerifier
	nowFn         func() time.Time
}

type Dependencies struct {
	Config        Config
	Users         ports.UserRepository
	Courses       ports.CourseRepository
	Reviews       ports.ReviewRepository
	Questions     ports.QuestionRepository
	Orders        ports.OrderRepository
	Notifications ports.NotificationRepository
	Layouts       ports.LayoutRepository
	Outbox        ports.OutboxRepository
	Sessions      ports.SessionStore
	CatalogCache  ports.CatalogCache
	Hasher        ports.PasswordHasher
	Tokens        ports.TokenIssuer
	Mailer        ports.Mailer
	Media         ports.MediaUploader
	Payments      ports.PaymentVerifier
}

func NewService(deps Dependencies) *Service {
	cfg := deps.Config
	if cfg.DefaultRole == "" {
		cfg.DefaultRole = "user"
	}
	if cfg.CatalogCacheTTL <= 0 {
		cfg.CatalogCacheTTL = 7 * 24 * time.Hour
	}
	if cfg.NotificationRetention <= 0 {
		cfg.NotificationRetention = 30 * 24 * time.Hour
	}
	return &Service{
		cfg:           cfg,
		users:         deps.Users,
		courses:       deps.Courses,
		reviews:       deps.Reviews,
		questions:     deps.Questions,
		orders:        deps.Orders,
		notifications: deps.Notifications,
		layouts:       deps.Layouts,
		outbox:        deps.Outbox,
		sessions:      deps.Sessions,
		catalogCache:  deps.CatalogCache,
		hasher:        deps.Hasher,
		tokens:        deps.Tokens,
		mailer:        deps.Mailer,
		media:         deps.Media,
		payments:      deps.Payments,
		nowFn:         func() time.Time { return time.Now().UTC() },
	}
}
