package http

import "net/http"

func (h *Handler) listNotifications(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListNotifications(r.Context())
	if err != nil {
		writeMappedError(r.Context(), w, "list_notifications", err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"notifications": items})
}

func (h *Handler) markNotificationRead(w http.ResponseWriter, r *http.Request) {
	notificationID, err := uuidParam(r, "id")
	if err != nil {
		writeValidationError(r.Context(), w, "mark_notification_read", err)
		return
	}

	items, err := h.service.MarkNotificationRead(r.Context(), notificationID)
	if err != nil {
		writeMappedError(r.Context(), w, "mark_notification_read", err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"notifications": items})
}
