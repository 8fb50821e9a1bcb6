package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/interviewdesk/dashboard/internal/api/middleware"
	"github.com/interviewdesk/dashboard/internal/core/domain"
)

// ctxSession returns the authenticated session restored by the Session
// middleware. Routes are guarded before they get here, so a missing identity
// means the route was registered without its guard; reject with 401.
func ctxSession(c echo.Context) (domain.Session, error) {
	sess := middleware.CurrentSession(c)
	if !sess.Authenticated() {
		return domain.Session{}, echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}
	return sess, nil
}
