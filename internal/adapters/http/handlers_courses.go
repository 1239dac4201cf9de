package http

import (
	"net/http"

	"github.com/skillstream/lms-backend/internal/application"
	"github.com/skillstream/lms-backend/internal/domain"
)

func (h *Handler) createCourse(w http.ResponseWriter, r *http.Request) {
	var req application.CourseInput
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "create_course", err)
		return
	}

	course, err := h.service.CreateCourse(r.Context(), req)
	if err != nil {
		writeMappedError(r.Context(), w, "create_course", err)
		return
	}
	writeSuccess(w, http.StatusCreated, map[string]any{"course": course})
}

func (h *Handler) editCourse(w http.ResponseWriter, r *http.Request) {
	courseID, err := uuidParam(r, "id")
	if err != nil {
		writeValidationError(r.Context(), w, "edit_course", err)
		return
	}
	var req application.CourseInput
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "edit_course", err)
		return
	}

	course, err := h.service.EditCourse(r.Context(), courseID, req)
	if err != nil {
		writeMappedError(r.Context(), w, "edit_course", err)
		return
	}
	writeSuccess(w, http.StatusCreated, map[string]any{"course": course})
}

func (h *Handler) getSingleCourse(w http.ResponseWriter, r *http.Request) {
	courseID, err := uuidParam(r, "id")
	if err != nil {
		writeValidationError(r.Context(), w, "get_single_course", err)
		return
	}

	course, err := h.service.GetSingleCourse(r.Context(), courseID)
	if err != nil {
		writeMappedError(r.Context(), w, "get_single_course", err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"course": course})
}

func (h *Handler) getAllCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.service.GetAllCourses(r.Context())
	if err != nil {
		writeMappedError(r.Context(), w, "get_all_courses", err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"courses": courses})
}

func (h *Handler) getCourseContent(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		writeMappedError(r.Context(), w, "get_course_content", domain.ErrNotAuthenticated)
		return
	}
	courseID, err := uuidParam(r, "id")
	if err != nil {
		writeValidationError(r.Context(), w, "get_course_content", err)
		return
	}

	course, err := h.service.GetCourseContent(r.Context(), user, courseID)
	if err != nil {
		writeMappedError(r.Context(), w, "get_course_content", err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"content": course.Sections})
}

func (h *Handler) adminListCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.service.AdminListCourses(r.Context())
	if err != nil {
		writeMappedError(r.Context(), w, "admin_list_courses", err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"courses": courses})
}

func (h *Handler) deleteCourse(w http.ResponseWriter, r *http.Request) {
	courseID, err := uuidParam(r, "id")
	if err != nil {
		writeValidationError(r.Context(), w, "delete_course", err)
		return
	}
	if err := h.service.DeleteCourse(r.Context(), courseID); err != nil {
		writeMappedError(r.Context(), w, "delete_course", err)
		return
	}
	writeMessage(w, http.StatusOK, "course deleted successfully")
}

func (h *Handler) addQuestion(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		writeMappedError(r.Context(), w, "add_question", domain.ErrNotAuthenticated)
		return
	}
	var req application.AddQuestionRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "add_question", err)
		return
	}

	question, err := h.service.AddQuestion(r.Context(), user, req)
	if err != nil {
		writeMappedError(r.Context(), w, "add_question", err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"question": question})
}

func (h *Handler) addAnswer(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		writeMappedError(r.Context(), w, "add_answer", domain.ErrNotAuthenticated)
		return
	}
	var req application.AddAnswerRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "add_answer", err)
		return
	}

	question, err := h.service.AddAnswer(r.Context(), user, req)
	if err != nil {
		writeMappedError(r.Context(), w, "add_answer", err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"question": question})
}

func (h *Handler) addReview(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		writeMappedError(r.Context(), w, "add_review", domain.ErrNotAuthenticated)
		return
	}
	courseID, err := uuidParam(r, "id")
	if err != nil {
		writeValidationError(r.Context(), w, "add_review", err)
		return
	}
	var req application.AddReviewRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "add_review", err)
		return
	}

	course, err := h.service.AddReview(r.Context(), user, courseID, req)
	if err != nil {
		writeMappedError(r.Context(), w, "add_review", err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"course": course})
}

func (h *Handler) replyReview(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		writeMappedError(r.Context(), w, "reply_review", domain.ErrNotAuthenticated)
		return
	}
	var req application.ReplyReviewRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "reply_review", err)
		return
	}

	review, err := h.service.ReplyReview(r.Context(), user, req)
	if err != nil {
		writeMappedError(r.Context(), w, "reply_review", err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"review": review})
}

func (h *Handler) listCourseReviews(w http.ResponseWriter, r *http.Request) {
	courseID, err := uuidParam(r, "id")
	if err != nil {
		writeValidationError(r.Context(), w, "list_course_reviews", err)
		return
	}

	reviews, err := h.service.ListCourseReviews(r.Context(), courseID)
	if err != nil {
		writeMappedError(r.Context(), w, "list_course_reviews", err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"reviews": reviews})
}

func (h *Handler) listCourseQuestions(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		writeMappedError(r.Context(), w, "list_course_questions", domain.ErrNotAuthenticated)
		return
	}
	courseID, err := uuidParam(r, "id")
	if err != nil {
		writeValidationError(r.Context(), w, "list_course_questions", err)
		return
	}

	questions, err := h.service.ListCourseQuestions(r.Context(), user, courseID)
	if err != nil {
		writeMappedError(r.Context(), w, "list_course_questions", err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"questions": questions})
}
