package http

import (
	"net/http"

	"github.com/skillstream/lms-backend/internal/application"
	"github.com/skillstream/lms-backend/internal/domain"
)

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		writeMappedError(r.Context(), w, "me", domain.ErrNotAuthenticated)
		return
	}
	// Re-read the snapshot rather than echoing the gate's copy so the
	// response reflects any mutation committed between gate and handler.
	fresh, err := h.service.Me(r.Context(), user.UserID)
	if err != nil {
		writeMappedError(r.Context(), w, "me", err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"user": fresh})
}

func (h *Handler) updateUserInfo(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		writeMappedError(r.Context(), w, "update_user_info", domain.ErrNotAuthenticated)
		return
	}
	var req application.UpdateUserInfoRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "update_user_info", err)
		return
	}

	updated, err := h.service.UpdateUserInfo(r.Context(), user.UserID, req)
	if err != nil {
		writeMappedError(r.Context(), w, "update_user_info", err)
		return
	}
	writeSuccess(w, http.StatusCreated, map[string]any{"user": updated})
}

func (h *Handler) updatePassword(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		writeMappedError(r.Context(), w, "update_password", domain.ErrNotAuthenticated)
		return
	}
	var req application.UpdatePasswordRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "update_password", err)
		return
	}

	updated, err := h.service.UpdatePassword(r.Context(), user.UserID, req)
	if err != nil {
		writeMappedError(r.Context(), w, "update_password", err)
		return
	}
	writeSuccess(w, http.StatusCreated, map[string]any{"user": updated})
}

func (h *Handler) updateAvatar(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		writeMappedError(r.Context(), w, "update_avatar", domain.ErrNotAuthenticated)
		return
	}
	var req application.UpdateAvatarRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "update_avatar", err)
		return
	}

	updated, err := h.service.UpdateAvatar(r.Context(), user.UserID, req)
	if err != nil {
		writeMappedError(r.Context(), w, "update_avatar", err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"user": updated})
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		writeMappedError(r.Context(), w, "list_users", err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"users": users})
}

func (h *Handler) updateRole(w http.ResponseWriter, r *http.Request) {
	var req application.UpdateRoleRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "update_role", err)
		return
	}

	updated, err := h.service.UpdateRole(r.Context(), req)
	if err != nil {
		writeMappedError(r.Context(), w, "update_role", err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"user": updated})
}
