package http

import (
	"net/http"

	"github.com/skillstream/lms-backend/internal/application"
	"github.com/skillstream/lms-backend/internal/domain"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req application.RegisterRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "register", err)
		return
	}

	res, err := h.service.Register(r.Context(), req)
	if err != nil {
		writeMappedError(r.Context(), w, "register", err)
		return
	}
	writeSuccess(w, http.StatusCreated, map[string]any{
		"message":          res.Message,
		"activation_token": res.ActivationToken,
	})
}

func (h *Handler) activate(w http.ResponseWriter, r *http.Request) {
	var req application.ActivateRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "activate", err)
		return
	}

	user, err := h.service.Activate(r.Context(), req)
	if err != nil {
		writeMappedError(r.Context(), w, "activate", err)
		return
	}
	writeSuccess(w, http.StatusCreated, map[string]any{"user": user})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req application.LoginRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "login", err)
		return
	}

	session, err := h.service.Login(r.Context(), req)
	if err != nil {
		writeMappedError(r.Context(), w, "login", err)
		return
	}
	h.cookies.setSession(w, session)
	writeSuccess(w, http.StatusOK, map[string]any{
		"user":         session.User,
		"access_token": session.AccessToken,
	})
}

func (h *Handler) socialAuth(w http.ResponseWriter, r *http.Request) {
	var req application.SocialAuthRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "social_auth", err)
		return
	}

	session, err := h.service.SocialAuth(r.Context(), req)
	if err != nil {
		writeMappedError(r.Context(), w, "social_auth", err)
		return
	}
	h.cookies.setSession(w, session)
	writeSuccess(w, http.StatusOK, map[string]any{
		"user":         session.User,
		"access_token": session.AccessToken,
	})
}

// logout clears cookies unconditionally. The session delete is idempotent,
// so a repeat logout still reports success.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		writeMappedError(r.Context(), w, "logout", domain.ErrNotAuthenticated)
		return
	}
	if err := h.service.Logout(r.Context(), user.UserID); err != nil {
		writeMappedError(r.Context(), w, "logout", err)
		return
	}
	h.cookies.clearSession(w)
	writeMessage(w, http.StatusOK, "logged out successfully")
}

func (h *Handler) refreshToken(w http.ResponseWriter, r *http.Request) {
	token := refreshTokenFromRequest(r)
	if token == "" {
		writeMappedError(r.Context(), w, "refresh_token", domain.ErrRefreshFailed)
		return
	}

	session, err := h.service.RefreshTokens(r.Context(), token)
	if err != nil {
		writeMappedError(r.Context(), w, "refresh_token", err)
		return
	}
	h.cookies.setSession(w, session)
	writeSuccess(w, http.StatusOK, map[string]any{
		"access_token": session.AccessToken,
	})
}
