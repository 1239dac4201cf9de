package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/skillstream/lms-backend/internal/application"
)

const (
	cookieAccessToken  = "access_token"
	cookieRefreshToken = "refresh_token"
)

// CookiePolicy carries the knobs that differ per environment. Secure is
// forced on in production so session cookies never travel over plain HTTP.
type CookiePolicy struct {
	Secure     bool
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

func (p CookiePolicy) write(w http.ResponseWriter, name, value string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl / time.Second),
		HttpOnly: true,
		Secure:   p.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// setSession writes both token cookies for a fresh or rotated pair.
func (p CookiePolicy) setSession(w http.ResponseWriter, session application.AuthSession) {
	p.write(w, cookieAccessToken, session.AccessToken, p.AccessTTL)
	p.write(w, cookieRefreshToken, session.RefreshToken, p.RefreshTTL)
}

// clearSession expires both cookies immediately.
func (p CookiePolicy) clearSession(w http.ResponseWriter) {
	for _, name := range []string{cookieAccessToken, cookieRefreshToken} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   p.Secure,
			SameSite: http.SameSiteLaxMode,
		})
	}
}

func accessTokenFromRequest(r *http.Request) string {
	if c, err := r.Cookie(cookieAccessToken); err == nil {
		return strings.TrimSpace(c.Value)
	}
	return ""
}

func refreshTokenFromRequest(r *http.Request) string {
	if c, err := r.Cookie(cookieRefreshToken); err == nil {
		return strings.TrimSpace(c.Value)
	}
	return ""
}
