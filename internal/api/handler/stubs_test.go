package handler

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/interviewdesk/dashboard/internal/api/middleware"
	"github.com/interviewdesk/dashboard/internal/core/domain"
	"github.com/interviewdesk/dashboard/internal/core/ports"
)

type stubIdentityService struct {
	loginFn   func(ctx context.Context, creds domain.Credentials) (*ports.LoginResult, error)
	restoreFn func(ctx context.Context, token string) domain.Session
	logoutFn  func(ctx context.Context, sid string) domain.Notice
}

func (s *stubIdentityService) Login(ctx context.Context, creds domain.Credentials) (*ports.LoginResult, error) {
	return s.loginFn(ctx, creds)
}

func (s *stubIdentityService) Restore(ctx context.Context, token string) domain.Session {
	return s.restoreFn(ctx, token)
}

func (s *stubIdentityService) Logout(ctx context.Context, sid string) domain.Notice {
	return s.logoutFn(ctx, sid)
}

type stubCandidateService struct {
	listFn   func(ctx context.Context, set domain.RoleSet) ([]domain.Candidate, error)
	detailFn func(ctx context.Context, sess domain.Session, rawID string) (*domain.CandidateDetail, error)
}

func (s *stubCandidateService) ListCandidates(ctx context.Context, set domain.RoleSet) ([]domain.Candidate, error) {
	return s.listFn(ctx, set)
}

func (s *stubCandidateService) GetCandidateDetail(ctx context.Context, sess domain.Session, rawID string) (*domain.CandidateDetail, error) {
	return s.detailFn(ctx, sess, rawID)
}

type stubFeedbackService struct {
	submitFn func(ctx context.Context, sess domain.Session, candidateID int, form domain.FeedbackForm) (*domain.FeedbackEntry, error)
}

func (s *stubFeedbackService) Submit(ctx context.Context, sess domain.Session, candidateID int, form domain.FeedbackForm) (*domain.FeedbackEntry, error) {
	return s.submitFn(ctx, sess, candidateID, form)
}

type stubRoleService struct {
	listFn   func(ctx context.Context, sess domain.Session) ([]domain.Candidate, error)
	changeFn func(ctx context.Context, sess domain.Session, userID int, role string) (domain.Notice, error)
}

func (s *stubRoleService) ListManaged(ctx context.Context, sess domain.Session) ([]domain.Candidate, error) {
	return s.listFn(ctx, sess)
}

func (s *stubRoleService) ChangeRole(ctx context.Context, sess domain.Session, userID int, role string) (domain.Notice, error) {
	return s.changeFn(ctx, sess, userID, role)
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func withSession(c echo.Context, role domain.Role) {
	c.Set(middleware.SessionContextKey, domain.Session{
		ID:       "sid",
		State:    domain.AuthAuthenticated,
		Identity: domain.Identity{Username: "emilys", Role: role},
	})
}
