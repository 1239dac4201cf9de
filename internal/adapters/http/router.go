package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/skillstream/lms-backend/internal/domain"
)

// NewRouter registers the full HTTP surface and middleware stack.
// Centralizing routes here keeps auth and error behavior consistent across
// endpoints.
func NewRouter(handler *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(recoverMiddleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.healthz)
	r.Get("/readyz", handler.readyz)

	adminOnly := handler.requireRole(domain.RoleAdmin)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/register", handler.register)
		r.Post("/activate", handler.activate)
		r.Post("/login", handler.login)
		r.Post("/social-auth", handler.socialAuth)
		r.Get("/refresh-token", handler.refreshToken)

		r.Get("/course/{id}", handler.getSingleCourse)
		r.Get("/courses", handler.getAllCourses)
		r.Get("/course/{id}/reviews", handler.listCourseReviews)
		r.Get("/layout", handler.getLayout)

		r.Group(func(r chi.Router) {
			r.Use(handler.authGate)

			r.Get("/logout", handler.logout)
			r.Get("/me", handler.me)
			r.Put("/update-user-info", handler.updateUserInfo)
			r.Put("/update-password", handler.updatePassword)
			r.Put("/update-avatar", handler.updateAvatar)

			r.Get("/course/{id}/content", handler.getCourseContent)
			r.Get("/course/{id}/questions", handler.listCourseQuestions)
			r.Post("/question", handler.addQuestion)
			r.Post("/answer", handler.addAnswer)
			r.Post("/course/{id}/review", handler.addReview)

			r.Post("/order", handler.createOrder)

			r.Group(func(r chi.Router) {
				r.Use(adminOnly)

				r.Get("/users", handler.listUsers)
				r.Put("/update-role", handler.updateRole)

				r.Post("/course", handler.createCourse)
				r.Put("/course/{id}", handler.editCourse)
				r.Delete("/course/{id}", handler.deleteCourse)
				r.Get("/admin/courses", handler.adminListCourses)
				r.Post("/review-reply", handler.replyReview)

				r.Get("/orders", handler.listOrders)

				r.Get("/notifications", handler.listNotifications)
				r.Put("/notification/{id}", handler.markNotificationRead)

				r.Post("/layout", handler.createLayout)
				r.Put("/layout", handler.editLayout)

				r.Get("/users/analytics", handler.userAnalytics)
				r.Get("/courses/analytics", handler.courseAnalytics)
				r.Get("/orders/analytics", handler.orderAnalytics)
			})
		})
	})

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		writeError(w, http.StatusNotFound, fmt.Sprintf("route %s not found", req.URL.Path))
	})

	return r
}
