package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/skillstream/lms-backend/internal/application"
	"github.com/skillstream/lms-backend/internal/domain"
)

// Handler is the HTTP adapter entrypoint. It holds only the application
// service plus the cookie policy, keeping the adapter boundary clean.
type Handler struct {
	service *application.Service
	cookies CookiePolicy
}

func NewHandler(service *application.Service, cookies CookiePolicy) *Handler {
	return &Handler{service: service, cookies: cookies}
}

func (h *Handler) healthz(w http.ResponseWriter, _ *http.Request) {
	writeMessage(w, http.StatusOK, "ok")
}

func (h *Handler) readyz(w http.ResponseWriter, _ *http.Request) {
	writeMessage(w, http.StatusOK, "ready")
}

// authGate resolves the caller from the access_token cookie and stashes the
// session snapshot on the request context. Requests with no cookie fail
// before any verification work happens.
func (h *Handler) authGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := accessTokenFromRequest(r)
		if token == "" {
			writeMappedError(r.Context(), w, "auth_gate", domain.ErrNotAuthenticated)
			return
		}

		user, err := h.service.Authenticate(r.Context(), token)
		if err != nil {
			writeMappedError(r.Context(), w, "auth_gate", err)
			return
		}

		next.ServeHTTP(w, r.WithContext(contextWithUser(r.Context(), user)))
	})
}

// requireRole guards admin endpoints. The message names the required role
// so the dashboard can surface it verbatim.
func (h *Handler) requireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := userFromContext(r.Context())
			if !ok {
				writeMappedError(r.Context(), w, "require_role", domain.ErrNotAuthenticated)
				return
			}
			for _, role := range roles {
				if user.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			err := fmt.Errorf("%w: role %s is required to access this resource", domain.ErrForbidden, strings.Join(roles, " or "))
			writeMappedError(r.Context(), w, "require_role", err)
		})
	}
}
