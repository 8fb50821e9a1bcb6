package ports

import (
	"context"
	"time"

	"github.com/interviewdesk/dashboard/internal/core/domain"
)

// LoginResult is returned by a successful login.
type LoginResult struct {
	Session   domain.Session
	Token     string
	ExpiresAt time.Time
	Notice    domain.Notice
	Redirect  string
}

type IdentityService interface {
	Login(ctx context.Context, creds domain.Credentials) (*LoginResult, error)
	// Restore never fails: anything unusable resolves to an anonymous session.
	Restore(ctx context.Context, token string) domain.Session
	Logout(ctx context.Context, sid string) domain.Notice
}
