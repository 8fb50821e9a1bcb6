package ports

import (
	"context"

	"github.com/interviewdesk/dashboard/internal/core/domain"
)

// Directory is the external candidate directory API.
type Directory interface {
	// Authenticate returns domain.ErrInvalidCredentials when the directory
	// rejects the username/password pair.
	Authenticate(ctx context.Context, username, password string) error
	ListUsers(ctx context.Context) ([]domain.User, error)
	// GetUser returns domain.ErrCandidateNotFound for unknown ids.
	GetUser(ctx context.Context, id int) (domain.User, error)
	ListTodos(ctx context.Context, userID int) ([]domain.ScheduleItem, error)
	ListPosts(ctx context.Context, userID int) ([]domain.FeedbackEntry, error)
	CreatePost(ctx context.Context, entry domain.FeedbackEntry) (domain.FeedbackEntry, error)
	Ping(ctx context.Context) error
}
