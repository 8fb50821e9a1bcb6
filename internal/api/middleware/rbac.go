package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/interviewdesk/dashboard/internal/pkg/metrics"
	"github.com/interviewdesk/dashboard/internal/core/domain"
)

// LoginPath is where the guards send callers they turn away.
const LoginPath = "/login"

// RequireRole renders the route only for sessions whose role is required or
// admin. Anyone else is redirected to the login page with a notice; the
// session itself is never modified.
func RequireRole(required domain.Role, cookieSecure bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := CurrentSession(c)
			if !sess.Authenticated() {
				metrics.GuardDecisionsTotal.WithLabelValues(string(required), "unauthenticated").Inc()
				return deny(c, domain.ErrUnauthenticated, cookieSecure)
			}
			if !sess.Identity.Role.Allows(required) {
				metrics.GuardDecisionsTotal.WithLabelValues(string(required), "denied").Inc()
				return deny(c, domain.ErrForbidden, cookieSecure)
			}

			metrics.GuardDecisionsTotal.WithLabelValues(string(required), "allowed").Inc()
			return next(c)
		}
	}
}

// RequireIdentity renders the route for any authenticated session.
func RequireIdentity(cookieSecure bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !CurrentSession(c).Authenticated() {
				metrics.GuardDecisionsTotal.WithLabelValues("any", "unauthenticated").Inc()
				return deny(c, domain.ErrUnauthenticated, cookieSecure)
			}
			return next(c)
		}
	}
}

func deny(c echo.Context, reason error, cookieSecure bool) error {
	msg := "Please login first"
	if reason == domain.ErrForbidden {
		msg = "Access denied"
	}
	SetFlash(c, domain.Notice{Level: domain.NoticeError, Message: msg}, cookieSecure)
	return c.Redirect(http.StatusFound, LoginPath)
}
