package http

import "net/http"

func (h *Handler) userAnalytics(w http.ResponseWriter, r *http.Request) {
	series, err := h.service.UserAnalytics(r.Context())
	if err != nil {
		writeMappedError(r.Context(), w, "user_analytics", err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"analytics": series})
}

func (h *Handler) courseAnalytics(w http.ResponseWriter, r *http.Request) {
	series, err := h.service.CourseAnalytics(r.Context())
	if err != nil {
		writeMappedError(r.Context(), w, "course_analytics", err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"analytics": series})
}

func (h *Handler) orderAnalytics(w http.ResponseWriter, r *http.Request) {
	series, err := h.service.OrderAnalytics(r.Context())
	if err != nil {
		writeMappedError(r.Context(), w, "order_analytics", err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"analytics": series})
}
