package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/interviewdesk/dashboard/internal/api/middleware"
	"github.com/interviewdesk/dashboard/internal/core/domain"
	"github.com/interviewdesk/dashboard/internal/core/ports"
)

type AuthHandler struct {
	identity     ports.IdentityService
	cookieSecure bool
}

func NewAuthHandler(identity ports.IdentityService, cookieSecure bool) *AuthHandler {
	return &AuthHandler{identity: identity, cookieSecure: cookieSecure}
}

// LoginView returns what the login form needs, including any pending notice.
//
// @Summary      Login form
// @Tags         auth
// @Produce      json
// @Success      200  {object}  loginViewResponse
// @Router       /login [get]
func (h *AuthHandler) LoginView(c echo.Context) error {
	return c.JSON(http.StatusOK, loginViewResponse{
		Roles: roleOptions(),
		Defaults: loginDefaults{
			Username: "emilys",
			Password: "emilyspass",
			Role:     domain.RoleAdmin,
		},
		Notice: middleware.ConsumeFlash(c, h.cookieSecure),
	})
}

// Login authenticates against the directory and opens a session for the
// chosen role.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials and role"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	res, err := h.identity.Login(c.Request().Context(), domain.Credentials{
		Username: req.Username,
		Password: req.Password,
		Role:     domain.Role(req.Role),
	})
	if err != nil {
		return err
	}

	middleware.SetSessionCookie(c, res.Token, res.ExpiresAt, h.cookieSecure)
	return c.JSON(http.StatusOK, loginResponse{
		Token:    res.Token,
		Identity: newIdentityResponse(res.Session.Identity),
		Notice:   res.Notice,
		Redirect: res.Redirect,
	})
}

// Logout closes the session and sends the caller to the login page. It is
// safe to call without a session.
//
// @Summary      Logout
// @Tags         auth
// @Success      303
// @Router       /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	sess := middleware.CurrentSession(c)
	notice := h.identity.Logout(c.Request().Context(), sess.ID)

	middleware.ClearSessionCookie(c, h.cookieSecure)
	middleware.SetFlash(c, notice, h.cookieSecure)
	return c.Redirect(http.StatusSeeOther, middleware.LoginPath)
}

// Home sends anonymous callers to the login page and everyone else to the
// dashboard of their role.
//
// @Summary      Entry point
// @Tags         auth
// @Success      302
// @Router       / [get]
func (h *AuthHandler) Home(c echo.Context) error {
	sess := middleware.CurrentSession(c)
	if !sess.Authenticated() {
		return c.Redirect(http.StatusFound, middleware.LoginPath)
	}
	return c.Redirect(http.StatusFound, sess.Identity.Role.HomePath())
}

// Me returns the current identity and its navigation.
//
// @Summary      Current identity
// @Tags         auth
// @Produce      json
// @Success      200  {object}  identityResponse
// @Failure      302
// @Router       /me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newIdentityResponse(sess.Identity))
}
