package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/interviewdesk/dashboard/internal/pkg/metrics"
	"github.com/interviewdesk/dashboard/internal/core/domain"
	"github.com/interviewdesk/dashboard/internal/core/ports"
)

// RoleService backs the admin role-management view. Reassignments only change
// the admin's own view for the rest of the session; nothing is sent upstream.
type RoleService struct {
	directory ports.Directory
	views     ports.ViewStateStore
	log       zerolog.Logger
}

func NewRoleService(directory ports.Directory, views ports.ViewStateStore, log zerolog.Logger) *RoleService {
	return &RoleService{directory: directory, views: views, log: log}
}

// ListManaged returns the staff table with the session's reassignments applied.
func (s *RoleService) ListManaged(ctx context.Context, sess domain.Session) ([]domain.Candidate, error) {
	if !sess.Identity.Role.CanManageRoles() {
		return nil, fmt.Errorf("list managed users: %w", domain.ErrForbidden)
	}

	users, err := s.directory.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list managed users: %w", err)
	}
	overrides := s.overrides(ctx, sess.ID)

	out := make([]domain.Candidate, 0, len(users))
	for _, u := range users {
		c := domain.NewCandidate(u, domain.RoleSetStaff)
		if r, ok := overrides[u.ID]; ok {
			c.Role = string(r)
		}
		out = append(out, c)
	}
	return out, nil
}

// ChangeRole reassigns userID to rawRole. Choosing the current role is a
// no-op reported with an info notice.
func (s *RoleService) ChangeRole(ctx context.Context, sess domain.Session, userID int, rawRole string) (domain.Notice, error) {
	if !sess.Identity.Role.CanManageRoles() {
		return domain.Notice{}, fmt.Errorf("change role: %w", domain.ErrForbidden)
	}
	role, err := domain.ParseRole(rawRole)
	if err != nil {
		return domain.Notice{}, err
	}

	user, err := s.directory.GetUser(ctx, userID)
	if err != nil {
		return domain.Notice{}, fmt.Errorf("change role: %w", err)
	}

	current := domain.AssignedRole(userID, domain.RoleSetStaff)
	if r, ok := s.overrides(ctx, sess.ID)[userID]; ok {
		current = string(r)
	}
	if current == string(role) {
		metrics.RoleChangesTotal.WithLabelValues("unchanged").Inc()
		return domain.Notice{
			Level:   domain.NoticeInfo,
			Message: fmt.Sprintf("%s already has role %s", user.FirstName, role),
		}, nil
	}

	if err := s.views.SetRoleOverride(ctx, sess.ID, userID, role); err != nil {
		return domain.Notice{}, fmt.Errorf("change role: %w", err)
	}
	metrics.RoleChangesTotal.WithLabelValues("changed").Inc()
	s.log.Info().Int("user_id", userID).Str("from", current).Str("to", string(role)).Msg("role reassigned")

	return domain.Notice{
		Level:   domain.NoticeSuccess,
		Message: fmt.Sprintf("Role updated to %s for %s", role, user.FirstName),
	}, nil
}

func (s *RoleService) overrides(ctx context.Context, sid string) map[int]domain.Role {
	overrides, err := s.views.RoleOverrides(ctx, sid)
	if err != nil {
		s.log.Warn().Err(err).Msg("role overrides unavailable")
		return nil
	}
	return overrides
}
