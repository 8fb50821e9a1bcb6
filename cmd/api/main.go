package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/interviewdesk/dashboard/internal/api"
	"github.com/interviewdesk/dashboard/internal/core/ports"
	"github.com/interviewdesk/dashboard/internal/core/service"
	"github.com/interviewdesk/dashboard/internal/infrastructure/db/memory"
	redisstore "github.com/interviewdesk/dashboard/internal/infrastructure/db/redis"
	"github.com/interviewdesk/dashboard/internal/infrastructure/directory"
	"github.com/interviewdesk/dashboard/internal/infrastructure/http/handlers"
	"github.com/interviewdesk/dashboard/internal/pkg/config"
	"github.com/interviewdesk/dashboard/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title        Interview Dashboard API
// @version      1.0
// @description  Backend for the role-gated interview management dashboard.
// @BasePath     /
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.IsDevelopment(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		sessions ports.SessionStore
		views    ports.ViewStateStore
		cleanup  = func() {}
	)
	switch cfg.Session.Backend {
	case config.BackendMemory:
		store := memory.NewStore(cfg.Session.TTL)
		sessions, views = store, store
		log.Warn().Msg("using in-memory session store; sessions are lost on restart")
	default:
		rdb, err := redisstore.Connect(ctx, redisstore.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		})
		if err != nil {
			log.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("failed to connect to redis")
		}
		sessions = redisstore.NewSessionStore(rdb, cfg.Session.TTL)
		views = redisstore.NewViewStateStore(rdb, cfg.Session.TTL)
		cleanup = func() { _ = rdb.Close() }
	}
	defer cleanup()

	dir := directory.New(directory.Config{
		BaseURL:      cfg.Upstream.BaseURL,
		Timeout:      cfg.Upstream.Timeout,
		MaxRetries:   cfg.Upstream.MaxRetries,
		RetryBackoff: cfg.Upstream.RetryBackoff,
	}, logger.Component("directory"))

	e := api.NewRouter(api.Dependencies{
		Identity:   service.NewIdentityService(dir, sessions, views, cfg.Session.Secret, cfg.Session.TTL, log),
		Candidates: service.NewCandidateService(dir, views, log),
		Feedback:   service.NewFeedbackService(dir, views, log),
		Roles:      service.NewRoleService(dir, views, log),
		Dashboard:  service.NewDashboardService(),
		Probes: map[string]handlers.Pinger{
			"sessions":  sessions,
			"directory": dir,
		},
		CookieSecure: cfg.Session.CookieSecure,
		Log:          log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Str("session_backend", cfg.Session.Backend).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
