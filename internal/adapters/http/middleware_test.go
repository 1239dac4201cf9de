package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/skillstream/lms-backend/internal/application"
	"github.com/skillstream/lms-backend/internal/domain"
)

func TestMapDomainError(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "invalid input", err: fmt.Errorf("%w: name is required", domain.ErrInvalidInput), wantStatus: http.StatusBadRequest},
		{name: "invalid credentials", err: domain.ErrInvalidCredentials, wantStatus: http.StatusBadRequest},
		{name: "not authenticated", err: domain.ErrNotAuthenticated, wantStatus: http.StatusBadRequest},
		{name: "session expired", err: domain.ErrSessionExpired, wantStatus: http.StatusBadRequest},
		{name: "refresh failed", err: domain.ErrRefreshFailed, wantStatus: http.StatusBadRequest},
		{name: "conflict", err: fmt.Errorf("%w: email already exists", domain.ErrConflict), wantStatus: http.StatusBadRequest},
		{name: "already owned", err: domain.ErrAlreadyOwned, wantStatus: http.StatusBadRequest},
		{name: "not found", err: domain.ErrNotFound, wantStatus: http.StatusNotFound},
		{name: "upstream failure", err: errors.New("smtp dial timeout"), wantStatus: http.StatusInternalServerError},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			status, msg := mapDomainError(tc.err)
			if status != tc.wantStatus {
				t.Fatalf("expected status %d, got %d", tc.wantStatus, status)
			}
			if msg != tc.err.Error() {
				t.Fatalf("expected message %q, got %q", tc.err.Error(), msg)
			}
		})
	}
}

func TestDecodeBody(t *testing.T) {
	t.Parallel()

	type payload struct {
		Name string `json:"name"`
	}

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Ada"}`))
	var dst payload
	if err := decodeBody(r, &dst); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if dst.Name != "Ada" {
		t.Fatalf("unexpected payload: %+v", dst)
	}

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Ada","extra":true}`))
	if err := decodeBody(r, &payload{}); err == nil {
		t.Fatalf("expected rejection of unknown field")
	}

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Ada"}{"name":"Eve"}`))
	if err := decodeBody(r, &payload{}); err == nil {
		t.Fatalf("expected rejection of trailing JSON value")
	}
}

func TestRouterUnknownRoute(t *testing.T) {
	t.Parallel()

	handler := NewHandler(application.NewService(application.Dependencies{}), CookiePolicy{})
	router := NewRouter(handler)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	var body apiError
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Success {
		t.Fatalf("expected success=false in error envelope")
	}
	if body.Message != "route /nope not found" {
		t.Fatalf("unexpected message %q", body.Message)
	}
}

func TestAuthGateRejectsMissingCookie(t *testing.T) {
	t.Parallel()

	handler := NewHandler(application.NewService(application.Dependencies{}), CookiePolicy{})
	router := NewRouter(handler)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/me", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var body apiError
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Message != domain.ErrNotAuthenticated.Error() {
		t.Fatalf("unexpected message %q", body.Message)
	}
}

func TestRequireRole(t *testing.T) {
	t.Parallel()

	handler := NewHandler(nil, CookiePolicy{})
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	guarded := handler.requireRole(domain.RoleAdmin)(next)

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
	guarded.ServeHTTP(rec, r.WithContext(contextWithUser(r.Context(), domain.User{Role: domain.RoleUser})))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for wrong role, got %d", rec.Code)
	}
	var body apiError
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !strings.Contains(body.Message, "role admin is required") {
		t.Fatalf("message should name the required role, got %q", body.Message)
	}

	rec = httptest.NewRecorder()
	guarded.ServeHTTP(rec, r.WithContext(contextWithUser(r.Context(), domain.User{Role: domain.RoleAdmin})))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected pass-through for admin, got %d", rec.Code)
	}

	// No user on the context at all.
	rec = httptest.NewRecorder()
	guarded.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/users", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without identity, got %d", rec.Code)
	}
}

func TestRecoverMiddleware(t *testing.T) {
	t.Parallel()

	panicking := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})
	rec := httptest.NewRecorder()
	recoverMiddleware(panicking).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 after panic, got %d", rec.Code)
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	t.Parallel()

	var seen string
	next := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = requestIDFromContext(r.Context())
	})

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("X-Request-Id", "req-42")
	requestIDMiddleware(next).ServeHTTP(rec, r)
	if seen != "req-42" {
		t.Fatalf("expected forwarded request id, got %q", seen)
	}

	requestIDMiddleware(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	if seen == "" || seen == "req-42" {
		t.Fatalf("expected a generated request id, got %q", seen)
	}
}
