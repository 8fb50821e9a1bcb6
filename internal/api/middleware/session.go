package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/interviewdesk/dashboard/internal/core/domain"
)

const (
	SessionCookie     = "imd_session"
	SessionContextKey = "session"
)

// SessionRestorer resolves a session token into the request's session.
type SessionRestorer interface {
	Restore(ctx context.Context, token string) domain.Session
}

// Session restores the caller's session before any handler runs and stores it
// in the context under SessionContextKey. The token is read from the session
// cookie, falling back to an Authorization: Bearer header. An unreadable
// stored session is dropped along with its cookie.
func Session(restorer SessionRestorer, cookieSecure bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := restorer.Restore(c.Request().Context(), sessionToken(c))
			if sess.Cleared {
				ClearSessionCookie(c, cookieSecure)
				SetFlash(c, domain.Notice{Level: domain.NoticeError, Message: "Invalid session"}, cookieSecure)
			}

			c.Set(SessionContextKey, sess)
			return next(c)
		}
	}
}

// CurrentSession returns the session restored by Session, or an unknown
// session when the middleware did not run.
func CurrentSession(c echo.Context) domain.Session {
	sess, _ := c.Get(SessionContextKey).(domain.Session)
	return sess
}

func sessionToken(c echo.Context) string {
	if ck, err := c.Cookie(SessionCookie); err == nil && ck.Value != "" {
		return ck.Value
	}

	parts := strings.SplitN(c.Request().Header.Get("Authorization"), " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// SetSessionCookie writes the session token cookie.
func SetSessionCookie(c echo.Context, token string, expires time.Time, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie expires the session token cookie.
func ClearSessionCookie(c echo.Context, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}
