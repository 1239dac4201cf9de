package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/skillstream/lms-backend/internal/domain"
	"github.com/skillstream/lms-backend/internal/ports"
)

// CreateCourse adds a catalog entry. The thumbnail payload, when present,
// is pushed to the media provider before the row is written.
func (s *Service) CreateCourse(ctx context.Context, input CourseInput) (domain.Course, error) {
	course, err := s.courseFromInput(input)
	if err != nil {
		return domain.Course{}, err
	}

	if data := strings.TrimSpace(input.Thumbnail); data != "" {
		asset, err := s.media.Upload(ctx, data, "courses")
		if err != nil {
			return domain.Course{}, fmt.Errorf("upload thumbnail: %w", err)
		}
		course.Thumbnail = domain.Thumbnail{PublicID: asset.PublicID, URL: asset.URL}
	}

	now := s.nowFn()
	course.CourseID = uuid.New()
	course.CreatedAt = now
	course.UpdatedAt = now
	return s.courses.Create(ctx, course)
}

// EditCourse rewrites a catalog entry. A new thumbnail payload replaces the
// stored asset; cached copies are left to age out on their TTL.
func (s *Service) EditCourse(ctx context.Context, courseID uuid.UUID, input CourseInput) (domain.Course, error) {
	existing, err := s.courses.GetByID(ctx, courseID)
	if err != nil {
		return domain.Course{}, err
	}

	updated, err := s.courseFromInput(input)
	if err != nil {
		return domain.Course{}, err
	}
	updated.CourseID = existing.CourseID
	updated.Thumbnail = existing.Thumbnail
	updated.Rating = existing.Rating
	updated.Purchased = existing.Purchased
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = s.nowFn()

	if data := strings.TrimSpace(input.Thumbnail); data != "" {
		if existing.Thumbnail.PublicID != "" {
			if err := s.media.Destroy(ctx, existing.Thumbnail.PublicID); err != nil {
				return domain.Course{}, fmt.Errorf("destroy old thumbnail: %w", err)
			}
		}
		asset, err := s.media.Upload(ctx, data, "courses")
		if err != nil {
			return domain.Course{}, fmt.Errorf("upload thumbnail: %w", err)
		}
		updated.Thumbnail = domain.Thumbnail{PublicID: asset.PublicID, URL: asset.URL}
	}

	return s.courses.Update(ctx, updated)
}

func (s *Service) courseFromInput(input CourseInput) (domain.Course, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return domain.Course{}, fmt.Errorf("%w: course name is required", domain.ErrInvalidInput)
	}
	if input.Price < 0 {
		return domain.Course{}, fmt.Errorf("%w: price must not be negative", domain.ErrInvalidInput)
	}
	sections := make([]domain.CourseSection, len(input.Sections))
	copy(sections, input.Sections)
	for i := range sections {
		if sections[i].SectionID == uuid.Nil {
			sections[i].SectionID = uuid.New()
		}
	}
	return domain.Course{
		Name:           name,
		Description:    input.Description,
		Categories:     input.Categories,
		Price:          input.Price,
		EstimatedPrice: input.EstimatedPrice,
		Tags:           input.Tags,
		Level:          input.Level,
		DemoURL:        input.DemoURL,
		Benefits:       input.Benefits,
		Prerequisites:  input.Prerequisites,
		Sections:       sections,
	}, nil
}

// GetSingleCourse serves the public preview of one course, cache-aside.
func (s *Service) GetSingleCourse(ctx context.Context, courseID uuid.UUID) (domain.Course, error) {
	cached, err := s.catalogCache.GetCourse(ctx, courseID)
	if err != nil {
		appLogger().WarnContext(ctx, "catalog cache read failed",
			"operation", "get_single_course",
			"outcome", "warning",
			"error", err,
		)
	}
	if cached != nil {
		return *cached, nil
	}

	course, err := s.courses.GetByID(ctx, courseID)
	if err != nil {
		return domain.Course{}, err
	}
	preview := course.Preview()
	if err := s.catalogCache.PutCourse(ctx, preview, s.cfg.CatalogCacheTTL); err != nil {
		appLogger().WarnContext(ctx, "catalog cache write failed",
			"operation", "get_single_course",
			"outcome", "warning",
			"error", err,
		)
	}
	return preview, nil
}

// GetAllCourses serves the public catalog listing, cache-aside on a single
// collection key.
func (s *Service) GetAllCourses(ctx context.Context) ([]domain.Course, error) {
	cached, err := s.catalogCache.GetAllCourses(ctx)
	if err != nil {
		appLogger().WarnContext(ctx, "catalog cache read failed",
			"operation", "get_all_courses",
			"outcome", "warning",
			"error", err,
		)
	}
	if cached != nil {
		return cached, nil
	}

	courses, err := s.courses.List(ctx)
	if err != nil {
		return nil, err
	}
	previews := make([]domain.Course, 0, len(courses))
	for _, c := range courses {
		previews = append(previews, c.Preview())
	}
	if err := s.catalogCache.PutAllCourses(ctx, previews, s.cfg.CatalogCacheTTL); err != nil {
		appLogger().WarnContext(ctx, "catalog cache write failed",
			"operation", "get_all_courses",
			"outcome", "warning",
			"error", err,
		)
	}
	return previews, nil
}

// GetCourseContent serves the full paid material. Only purchasers (and
// admins) get past the ownership check.
func (s *Service) GetCourseContent(ctx context.Context, user domain.User, courseID uuid.UUID) (domain.Course, error) {
	if user.Role != domain.RoleAdmin && !user.HasPurchased(courseID) {
		return domain.Course{}, domain.ErrNotPurchased
	}
	return s.courses.GetByID(ctx, courseID)
}

// AdminListCourses returns full course records, bypassing both the cache
// and the preview transform.
func (s *Service) AdminListCourses(ctx context.Context) ([]domain.Course, error) {
	return s.courses.List(ctx)
}

// DeleteCourse removes a catalog entry and its stored thumbnail.
func (s *Service) DeleteCourse(ctx context.Context, courseID uuid.UUID) error {
	course, err := s.courses.GetByID(ctx, courseID)
	if err != nil {
		return err
	}
	if course.Thumbnail.PublicID != "" {
		if err := s.media.Destroy(ctx, course.Thumbnail.PublicID); err != nil {
			appLogger().WarnContext(ctx, "failed to destroy thumbnail",
				"operation", "delete_course",
				"outcome", "warning",
				"course_id", courseID,
				"error", err,
			)
		}
	}
	return s.courses.Delete(ctx, courseID)
}

// AddQuestion records a learner's question on a course section and raises
// an admin notification.
func (s *Service) AddQuestion(ctx context.Context, user domain.User, req AddQuestionRequest) (domain.Question, error) {
	text := strings.TrimSpace(req.Question)
	if text == "" {
		return domain.Question{}, fmt.Errorf("%w: question text is required", domain.ErrInvalidInput)
	}

	course, err := s.courses.GetByID(ctx, req.CourseID)
	if err != nil {
		return domain.Question{}, err
	}
	if !sectionExists(course, req.SectionID) {
		return domain.Question{}, fmt.Errorf("%w: invalid section id", domain.ErrInvalidInput)
	}

	question, err := s.questions.Create(ctx, domain.Question{
		QuestionID: uuid.New(),
		CourseID:   course.CourseID,
		SectionID:  req.SectionID,
		UserID:     user.UserID,
		UserName:   user.Name,
		Question:   text,
		CreatedAt:  s.nowFn(),
	})
	if err != nil {
		return domain.Question{}, err
	}

	if err := s.createNotification(ctx, user.UserID, "New Question Received",
		fmt.Sprintf("%s asked a question in %s", user.Name, course.Name)); err != nil {
		return domain.Question{}, err
	}
	return question, nil
}

// AddAnswer appends a reply to a question. When someone other than the
// question's author answers, the author gets a notification and an email;
// authors answering their own question trigger neither.
func (s *Service) AddAnswer(ctx context.Context, user domain.User, req AddAnswerRequest) (domain.Question, error) {
	text := strings.TrimSpace(req.Answer)
	if text == "" {
		return domain.Question{}, fmt.Errorf("%w: answer text is required", domain.ErrInvalidInput)
	}

	question, err := s.questions.GetByID(ctx, req.QuestionID)
	if err != nil {
		return domain.Question{}, err
	}
	question.Replies = append(question.Replies, domain.QuestionReply{
		UserID:    user.UserID,
		UserName:  user.Name,
		Answer:    text,
		CreatedAt: s.nowFn(),
	})

	updated, err := s.questions.Update(ctx, question)
	if err != nil {
		return domain.Question{}, err
	}

	if user.UserID == question.UserID {
		return updated, nil
	}

	course, err := s.courses.GetByID(ctx, question.CourseID)
	if err != nil {
		return domain.Question{}, err
	}
	if err := s.createNotification(ctx, question.UserID, "New Question Reply Received",
		fmt.Sprintf("You have a new reply in %s", course.Name)); err != nil {
		return domain.Question{}, err
	}

	author, err := s.users.GetByID(ctx, question.UserID)
	if err != nil {
		return domain.Question{}, err
	}
	if err := s.mailer.Send(ctx, mailForAnswer(author, course)); err != nil {
		return domain.Question{}, fmt.Errorf("send reply mail: %w", err)
	}
	return updated, nil
}

func mailForAnswer(author domain.User, course domain.Course) ports.Mail {
	return ports.Mail{
		To:      author.Email,
		Subject: "Question Reply",
		Body: fmt.Sprintf(
			"<p>Hello %s,</p><p>Your question in <strong>%s</strong> has a new reply.</p>",
			author.Name, course.Name,
		),
	}
}

// AddReview records a purchaser's rating and recomputes the course's
// average from all reviews on record.
func (s *Service) AddReview(ctx context.Context, user domain.User, courseID uuid.UUID, req AddReviewRequest) (domain.Course, error) {
	if !user.HasPurchased(courseID) {
		return domain.Course{}, domain.ErrNotPurchased
	}
	if req.Rating < 1 || req.Rating > 5 {
		return domain.Course{}, fmt.Errorf("%w: rating must be between 1 and 5", domain.ErrInvalidInput)
	}

	course, err := s.courses.GetByID(ctx, courseID)
	if err != nil {
		return domain.Course{}, err
	}

	if _, err := s.reviews.Create(ctx, domain.Review{
		ReviewID:  uuid.New(),
		CourseID:  courseID,
		UserID:    user.UserID,
		UserName:  user.Name,
		Rating:    req.Rating,
		Comment:   strings.TrimSpace(req.Comment),
		CreatedAt: s.nowFn(),
	}); err != nil {
		return domain.Course{}, err
	}

	all, err := s.reviews.ListByCourse(ctx, courseID)
	if err != nil {
		return domain.Course{}, err
	}
	var sum float64
	for _, r := range all {
		sum += r.Rating
	}
	if len(all) > 0 {
		course.Rating = sum / float64(len(all))
	}
	course.UpdatedAt = s.nowFn()

	updated, err := s.courses.Update(ctx, course)
	if err != nil {
		return domain.Course{}, err
	}

	if err := s.createNotification(ctx, user.UserID, "New Review Received",
		fmt.Sprintf("%s reviewed %s", user.Name, course.Name)); err != nil {
		return domain.Course{}, err
	}
	return updated, nil
}

// ReplyReview appends an admin response to a review.
func (s *Service) ReplyReview(ctx context.Context, user domain.User, req ReplyReviewRequest) (domain.Review, error) {
	text := strings.TrimSpace(req.Comment)
	if text == "" {
		return domain.Review{}, fmt.Errorf("%w: comment is required", domain.ErrInvalidInput)
	}

	review, err := s.reviews.GetByID(ctx, req.ReviewID)
	if err != nil {
		return domain.Review{}, err
	}
	review.Replies = append(review.Replies, domain.ReviewReply{
		UserID:    user.UserID,
		UserName:  user.Name,
		Comment:   text,
		CreatedAt: s.nowFn(),
	})
	return s.reviews.Update(ctx, review)
}

// ListCourseReviews returns a course's reviews, newest storage order.
func (s *Service) ListCourseReviews(ctx context.Context, courseID uuid.UUID) ([]domain.Review, error) {
	if _, err := s.courses.GetByID(ctx, courseID); err != nil {
		return nil, err
	}
	return s.reviews.ListByCourse(ctx, courseID)
}

// ListCourseQuestions returns a course's questions for purchasers viewing
// course content.
func (s *Service) ListCourseQuestions(ctx context.Context, user domain.User, courseID uuid.UUID) ([]domain.Question, error) {
	if user.Role != domain.RoleAdmin && !user.HasPurchased(courseID) {
		return nil, domain.ErrNotPurchased
	}
	return s.questions.ListByCourse(ctx, courseID)
}

func sectionExists(course domain.Course, sectionID uuid.UUID) bool {
	for _, sec := range course.Sections {
		if sec.SectionID == sectionID {
			return true
		}
	}
	return false
}
