package application_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/skillstream/lms-backend/internal/adapters/security"
	"github.com/skillstream/lms-backend/internal/application"
	"github.com/skillstream/lms-backend/internal/domain"
	"github.com/skillstream/lms-backend/internal/ports"
)

type fixture struct {
	service       *application.Service
	users         *fakeUsers
	courses       *fakeCourses
	reviews       *fakeReviews
	questions     *fakeQuestions
	orders        *fakeOrders
	notifications *fakeNotifications
	layouts       *fakeLayouts
	outbox        *fakeOutbox
	sessions      *fakeSessions
	catalog       *fakeCatalog
	mailer        *fakeMailer
	media         *fakeMedia
	payments      *fakePayments
}

func newFixture() *fixture {
	return newFixtureWithConfig(application.Config{})
}

func newFixtureWithConfig(cfg application.Config) *fixture {
	users := &fakeUsers{
		byID:    map[uuid.UUID]domain.User{},
		byEmail: map[string]uuid.UUID{},
	}
	courses := &fakeCourses{byID: map[uuid.UUID]domain.Course{}}
	reviews := &fakeReviews{byID: map[uuid.UUID]domain.Review{}}
	questions := &fakeQuestions{byID: map[uuid.UUID]domain.Question{}}
	orders := &fakeOrders{}
	notifications := &fakeNotifications{byID: map[uuid.UUID]domain.Notification{}}
	layouts := &fakeLayouts{byType: map[string]domain.Layout{}}
	outbox := &fakeOutbox{}
	sessions := &fakeSessions{byUser: map[uuid.UUID]domain.User{}}
	catalog := &fakeCatalog{courses: map[uuid.UUID]domain.Course{}}
	mailer := &fakeMailer{}
	media := &fakeMedia{}
	payments := &fakePayments{}

	tokens, err := security.NewJWTIssuer(
		"test-access-secret", "test-refresh-secret", "test-activation-secret",
		5*time.Minute, 3*24*time.Hour,
	)
	if err != nil {
		panic(err)
	}

	svc := application.NewService(application.Dependencies{
		Config:        cfg,
		Users:         users,
		Courses:       courses,
		Reviews:       reviews,
		Questions:     questions,
		Orders:        orders,
		Notifications: notifications,
		Layouts:       layouts,
		Outbox:        outbox,
		Sessions:      sessions,
		CatalogCache:  catalog,
		Hasher:        &fakeHasher{},
		Tokens:        tokens,
		Mailer:        mailer,
		Media:         media,
		Payments:      payments,
	})

	return &fixture{
		service:       svc,
		users:         users,
		courses:       courses,
		reviews:       reviews,
		questions:     questions,
		orders:        orders,
		notifications: notifications,
		layouts:       layouts,
		outbox:        outbox,
		sessions:      sessions,
		catalog:       catalog,
		mailer:        mailer,
		media:         media,
		payments:      payments,
	}
}

type fakeUsers struct {
	mu      sync.Mutex
	byID    map[uuid.UUID]domain.User
	byEmail map[string]uuid.UUID
}

func (f *fakeUsers) Create(_ context.Context, params ports.CreateUserParams) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byEmail[params.Email]; ok {
		return domain.User{}, domain.ErrConflict
	}
	now := time.Now().UTC()
	u := domain.User{
		UserID:       uuid.New(),
		Name:         params.Name,
		Email:        params.Email,
		PasswordHash: params.PasswordHash,
		Avatar:       params.Avatar,
		Role:         params.Role,
		IsVerified:   params.IsVerified,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	f.byID[u.UserID] = u
	f.byEmail[u.Email] = u.UserID
	return u, nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id, ok := f.byEmail[email]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return f.byID[id], nil
}

func (f *fakeUsers) GetByID(_ context.Context, userID uuid.UUID) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byID[userID]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return u, nil
}

func (f *fakeUsers) Update(_ context.Context, user domain.User) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	prev, ok := f.byID[user.UserID]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	if prev.Email != user.Email {
		delete(f.byEmail, prev.Email)
		f.byEmail[user.Email] = user.UserID
	}
	f.byID[user.UserID] = user
	return user, nil
}

func (f *fakeUsers) List(_ context.Context) ([]domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.User, 0, len(f.byID))
	for _, u := range f.byID {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUsers) CountCreatedByMonth(_ context.Context, since time.Time) ([]domain.MonthCount, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	counts := map[string]int64{}
	for _, u := range f.byID {
		if u.CreatedAt.Before(since) {
			continue
		}
		counts[u.CreatedAt.Format("Jan 2006")]++
	}
	out := make([]domain.MonthCount, 0, len(counts))
	for month, count := range counts {
		out = append(out, domain.MonthCount{Month: month, Count: count})
	}
	return out, nil
}

type fakeCourses struct {
	mu       sync.Mutex
	byID     map[uuid.UUID]domain.Course
	getCalls int
}

func (f *fakeCourses) Create(_ context.Context, course domain.Course) (domain.Course, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byID[course.CourseID] = course
	return course, nil
}

func (f *fakeCourses) GetByID(_ context.Context, courseID uuid.UUID) (domain.Course, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getCalls++
	c, ok := f.byID[courseID]
	if !ok {
		return domain.Course{}, domain.ErrNotFound
	}
	return c, nil
}

func (f *fakeCourses) Update(_ context.Context, course domain.Course) (domain.Course, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[course.CourseID]; !ok {
		return domain.Course{}, domain.ErrNotFound
	}
	f.byID[course.CourseID] = course
	return course, nil
}

func (f *fakeCourses) Delete(_ context.Context, courseID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[courseID]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, courseID)
	return nil
}

func (f *fakeCourses) List(_ context.Context) ([]domain.Course, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Course, 0, len(f.byID))
	for _, c := range f.byID {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCourses) CountCreatedByMonth(_ context.Context, since time.Time) ([]domain.MonthCount, error) {
	return nil, nil
}

type fakeReviews struct {
	mu   sync.Mutex
	byID map[uuid.UUID]domain.Review
}

func (f *fakeReviews) Create(_ context.Context, review domain.Review) (domain.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byID[review.ReviewID] = review
	return review, nil
}

func (f *fakeReviews) GetByID(_ context.Context, reviewID uuid.UUID) (domain.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.byID[reviewID]
	if !ok {
		return domain.Review{}, domain.ErrNotFound
	}
	return r, nil
}

func (f *fakeReviews) Update(_ context.Context, review domain.Review) (domain.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[review.ReviewID]; !ok {
		return domain.Review{}, domain.ErrNotFound
	}
	f.byID[review.ReviewID] = review
	return review, nil
}

func (f *fakeReviews) ListByCourse(_ context.Context, courseID uuid.UUID) ([]domain.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Review
	for _, r := range f.byID {
		if r.CourseID == courseID {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeQuestions struct {
	mu   sync.Mutex
	byID map[uuid.UUID]domain.Question
}

func (f *fakeQuestions) Create(_ context.Context, question domain.Question) (domain.Question, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byID[question.QuestionID] = question
	return question, nil
}

func (f *fakeQuestions) GetByID(_ context.Context, questionID uuid.UUID) (domain.Question, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	q, ok := f.byID[questionID]
	if !ok {
		return domain.Question{}, domain.ErrNotFound
	}
	return q, nil
}

func (f *fakeQuestions) Update(_ context.Context, question domain.Question) (domain.Question, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[question.QuestionID]; !ok {
		return domain.Question{}, domain.ErrNotFound
	}
	f.byID[question.QuestionID] = question
	return question, nil
}

func (f *fakeQuestions) ListByCourse(_ context.Context, courseID uuid.UUID) ([]domain.Question, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Question
	for _, q := range f.byID {
		if q.CourseID == courseID {
			out = append(out, q)
		}
	}
	return out, nil
}

type fakeOrders struct {
	mu     sync.Mutex
	orders []domain.Order
}

func (f *fakeOrders) Create(_ context.Context, order domain.Order) (domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.orders = append(f.orders, order)
	return order, nil
}

func (f *fakeOrders) List(_ context.Context) ([]domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.Order(nil), f.orders...), nil
}

func (f *fakeOrders) CountCreatedByMonth(_ context.Context, since time.Time) ([]domain.MonthCount, error) {
	return nil, nil
}

func (f *fakeOrders) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.orders)
}

type fakeNotifications struct {
	mu   sync.Mutex
	byID map[uuid.UUID]domain.Notification
}

func (f *fakeNotifications) Create(_ context.Context, row domain.Notification) (domain.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byID[row.NotificationID] = row
	return row, nil
}

func (f *fakeNotifications) GetByID(_ context.Context, notificationID uuid.UUID) (domain.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n, ok := f.byID[notificationID]
	if !ok {
		return domain.Notification{}, domain.ErrNotFound
	}
	return n, nil
}

func (f *fakeNotifications) Update(_ context.Context, row domain.Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[row.NotificationID]; !ok {
		return domain.ErrNotFound
	}
	f.byID[row.NotificationID] = row
	return nil
}

func (f *fakeNotifications) ListNewestFirst(_ context.Context) ([]domain.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Notification, 0, len(f.byID))
	for _, n := range f.byID {
		out = append(out, n)
	}
	return out, nil
}

func (f *fakeNotifications) DeleteReadOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var deleted int64
	for id, n := range f.byID {
		if n.Status == domain.NotificationRead && n.UpdatedAt.Before(cutoff) {
			delete(f.byID, id)
			deleted++
		}
	}
	return deleted, nil
}

func (f *fakeNotifications) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.byID)
}

type fakeLayouts struct {
	mu     sync.Mutex
	byType map[string]domain.Layout
}

func (f *fakeLayouts) Create(_ context.Context, layout domain.Layout) (domain.Layout, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byType[layout.Type]; ok {
		return domain.Layout{}, domain.ErrConflict
	}
	f.byType[layout.Type] = layout
	return layout, nil
}

func (f *fakeLayouts) GetByType(_ context.Context, layoutType string) (domain.Layout, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	l, ok := f.byType[layoutType]
	if !ok {
		return domain.Layout{}, domain.ErrNotFound
	}
	return l, nil
}

func (f *fakeLayouts) Update(_ context.Context, layout domain.Layout) (domain.Layout, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byType[layout.Type]; !ok {
		return domain.Layout{}, domain.ErrNotFound
	}
	f.byType[layout.Type] = layout
	return layout, nil
}

type fakeOutbox struct {
	mu     sync.Mutex
	events []ports.OutboxEvent
}

func (f *fakeOutbox) Enqueue(_ context.Context, event ports.OutboxEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
	return nil
}

func (f *fakeOutbox) ListUnpublished(_ context.Context, limit int) ([]ports.OutboxRecord, error) {
	return nil, nil
}

func (f *fakeOutbox) MarkPublished(_ context.Context, outboxID uuid.UUID, at time.Time) error {
	return nil
}

func (f *fakeOutbox) MarkFailed(_ context.Context, outboxID uuid.UUID, errMsg string, at time.Time) error {
	return nil
}

func (f *fakeOutbox) MarkDeadLettered(_ context.Context, outboxID uuid.UUID, reason string, at time.Time) error {
	return nil
}

func (f *fakeOutbox) eventTypes() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.events))
	for _, e := range f.events {
		out = append(out, e.EventType)
	}
	return out
}

type fakeSessions struct {
	mu     sync.Mutex
	byUser map[uuid.UUID]domain.User
}

func (f *fakeSessions) Put(_ context.Context, user domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byUser[user.UserID] = user
	return nil
}

func (f *fakeSessions) Get(_ context.Context, userID uuid.UUID) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byUser[userID]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (f *fakeSessions) Delete(_ context.Context, userID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.byUser, userID)
	return nil
}

type fakeCatalog struct {
	mu      sync.Mutex
	courses map[uuid.UUID]domain.Course
	listing []domain.Course
	haveAll bool
}

func (f *fakeCatalog) GetCourse(_ context.Context, courseID uuid.UUID) (*domain.Course, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.courses[courseID]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (f *fakeCatalog) PutCourse(_ context.Context, course domain.Course, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.courses[course.CourseID] = course
	return nil
}

func (f *fakeCatalog) GetAllCourses(_ context.Context) ([]domain.Course, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.haveAll {
		return nil, nil
	}
	return append([]domain.Course(nil), f.listing...), nil
}

func (f *fakeCatalog) PutAllCourses(_ context.Context, courses []domain.Course, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listing = append([]domain.Course(nil), courses...)
	f.haveAll = true
	return nil
}

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return errors.New("hash mismatch")
	}
	return nil
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []ports.Mail
	err  error
}

func (f *fakeMailer) Send(_ context.Context, mail ports.Mail) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, mail)
	return nil
}

func (f *fakeMailer) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

func (f *fakeMailer) last() ports.Mail {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.sent) == 0 {
		return ports.Mail{}
	}
	return f.sent[len(f.sent)-1]
}

type fakeMedia struct {
	mu        sync.Mutex
	uploads   int
	destroyed []string
}

func (f *fakeMedia) Upload(_ context.Context, data string, folder string) (ports.UploadedAsset, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.uploads++
	id := folder + "/" + uuid.NewString()
	return ports.UploadedAsset{PublicID: id, URL: "https://cdn.test/" + id}, nil
}

func (f *fakeMedia) Destroy(_ context.Context, publicID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.destroyed = append(f.destroyed, publicID)
	return nil
}

type fakePayments struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (f *fakePayments) Confirm(_ context.Context, _ domain.PaymentInfo) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.err
}

func (f *fakePayments) confirmations() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// activationCodeFromBody pulls the emailed 4-digit code out of the
// activation mail markup.
func activationCodeFromBody(body string) string {
	const openTag, closeTag = "<strong>", "</strong>"
	start := strings.Index(body, openTag)
	if start < 0 {
		return ""
	}
	rest := body[start+len(openTag):]
	end := strings.Index(rest, closeTag)
	if end < 0 {
		return ""
	}
	return rest[:end]
}
