package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/interviewdesk/dashboard/docs"
	"github.com/interviewdesk/dashboard/internal/api/handler"
	"github.com/interviewdesk/dashboard/internal/api/middleware"
	"github.com/interviewdesk/dashboard/internal/core/domain"
	"github.com/interviewdesk/dashboard/internal/core/ports"
	"github.com/interviewdesk/dashboard/internal/infrastructure/http/handlers"
)

// Dependencies are the services and probes the router wires into handlers.
type Dependencies struct {
	Identity   ports.IdentityService
	Candidates ports.CandidateService
	Feedback   ports.FeedbackService
	Roles      ports.RoleService
	Dashboard  ports.DashboardService
	// Probes are checked by the readiness endpoint, keyed by dependency name.
	Probes       map[string]handlers.Pinger
	CookieSecure bool
	Log          zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(deps.Log))
	e.Use(echoprometheus.NewMiddleware("interview"))
	e.Use(middleware.Session(deps.Identity, deps.CookieSecure))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Identity, deps.CookieSecure)
	candidateHandler := handler.NewCandidateHandler(deps.Candidates)
	feedbackHandler := handler.NewFeedbackHandler(deps.Feedback)
	roleHandler := handler.NewRoleHandler(deps.Roles)
	dashboardHandler := handler.NewDashboardHandler(deps.Dashboard)

	// --- Auth routes ---
	e.GET("/", authHandler.Home)
	e.GET(middleware.LoginPath, authHandler.LoginView)
	e.POST(middleware.LoginPath, authHandler.Login)
	e.POST("/logout", authHandler.Logout)
	e.GET("/me", authHandler.Me, middleware.RequireIdentity(deps.CookieSecure))

	// --- Role areas: /admin, /ta_member, /panelist ---
	for _, role := range domain.Roles() {
		g := e.Group(role.HomePath(), middleware.RequireRole(role, deps.CookieSecure))
		g.GET("", dashboardHandler.Show)
		g.GET("/candidate", candidateHandler.List)
		g.GET("/candidate/:id", candidateHandler.Detail)
		g.POST("/candidate/:id/feedback", feedbackHandler.Submit)

		if role == domain.RoleAdmin {
			g.GET("/users", roleHandler.List)
			g.PATCH("/users/:id/role", roleHandler.ChangeRole)
		}
	}

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(deps.Probes)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			evt := log.Info()
			if v.Error != nil {
				evt = log.Warn().Err(v.Error)
			}
			evt.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
