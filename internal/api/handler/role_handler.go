package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/interviewdesk/dashboard/internal/core/domain"
	"github.com/interviewdesk/dashboard/internal/core/ports"
	"github.com/interviewdesk/dashboard/internal/core/service"
)

type RoleHandler struct {
	service ports.RoleService
}

func NewRoleHandler(service ports.RoleService) *RoleHandler {
	return &RoleHandler{service: service}
}

// List returns the role-management table with the session's reassignments.
//
// @Summary      List users for role management
// @Tags         roles
// @Produce      json
// @Param        q      query     string  false  "Name filter"
// @Param        sort   query     string  false  "id, name, status or role; prefix with - for descending"
// @Param        page   query     int     false  "Page (1-based)"
// @Param        limit  query     int     false  "Rows per page (max 100)"
// @Success      200    {object}  roleTableResponse
// @Failure      403    {object}  errorResponse
// @Failure      502    {object}  errorResponse
// @Router       /admin/users [get]
func (h *RoleHandler) List(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	q, err := bindTableQuery(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	users, err := h.service.ListManaged(c.Request().Context(), sess)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, roleTableResponse{
		Roles: roleOptions(),
		Table: service.ApplyTable(users, q),
	})
}

// ChangeRole reassigns a user's role in the admin's view.
//
// @Summary      Change a user's role
// @Tags         roles
// @Accept       json
// @Produce      json
// @Param        id    path      int                true  "User id"
// @Param        body  body      changeRoleRequest  true  "New role"
// @Success      200   {object}  noticeResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /admin/users/{id}/role [patch]
func (h *RoleHandler) ChangeRole(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return domain.ErrCandidateNotFound
	}

	var req changeRoleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	notice, err := h.service.ChangeRole(c.Request().Context(), sess, id, req.Role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, noticeResponse{Notice: notice})
}
