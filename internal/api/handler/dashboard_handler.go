package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/interviewdesk/dashboard/internal/core/ports"
)

type DashboardHandler struct {
	service ports.DashboardService
}

func NewDashboardHandler(service ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Show returns the weekly dashboard of the caller's own role.
//
// @Summary      Weekly dashboard
// @Tags         dashboard
// @Produce      json
// @Param        role         path      string  true   "Route role"
// @Param        interviewer  query     string  false  "Interviewer filter (case-insensitive)"
// @Success      200          {object}  domain.Dashboard
// @Router       /{role} [get]
func (h *DashboardHandler) Show(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.service.Weekly(sess.Identity.Role, c.QueryParam("interviewer")))
}
