package ports

import (
	"context"

	"github.com/interviewdesk/dashboard/internal/core/domain"
)

// TableQuery carries the filter, sort and paging parameters of a table view.
type TableQuery struct {
	Search string // optional: case-insensitive match on the full name
	Sort   string // id, name, status or role; "-" prefix for descending
	Page   int    // 1-based
	Limit  int    // rows per page (capped at 100 by service)
}

// TablePage is one page of a table view.
type TablePage struct {
	Items      []domain.Candidate `json:"items"`
	Total      int                `json:"total"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"totalPages"`
}

type CandidateService interface {
	ListCandidates(ctx context.Context, set domain.RoleSet) ([]domain.Candidate, error)
	// GetCandidateDetail returns domain.ErrCandidateNotFound for a non-numeric
	// or unknown id. Feedback is only loaded for roles that may submit it.
	GetCandidateDetail(ctx context.Context, sess domain.Session, rawID string) (*domain.CandidateDetail, error)
}

type FeedbackService interface {
	Submit(ctx context.Context, sess domain.Session, candidateID int, form domain.FeedbackForm) (*domain.FeedbackEntry, error)
}

type RoleService interface {
	ListManaged(ctx context.Context, sess domain.Session) ([]domain.Candidate, error)
	ChangeRole(ctx context.Context, sess domain.Session, userID int, role string) (domain.Notice, error)
}

type DashboardService interface {
	Weekly(role domain.Role, interviewer string) domain.Dashboard
}
