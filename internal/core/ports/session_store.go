package ports

import (
	"context"

	"github.com/interviewdesk/dashboard/internal/core/domain"
)

// SessionStore persists the identity of a browser session.
type SessionStore interface {
	Save(ctx context.Context, sid string, identity domain.Identity) error
	// Load returns domain.ErrSessionNotFound when nothing is stored and
	// domain.ErrSessionCorrupt when the stored record cannot be decoded.
	Load(ctx context.Context, sid string) (domain.Identity, error)
	// Delete is idempotent.
	Delete(ctx context.Context, sid string) error
	Ping(ctx context.Context) error
}

// ViewStateStore keeps the optimistic, session-scoped state of the views:
// feedback added during the session and local role reassignments. Nothing in
// it outlives the session.
type ViewStateStore interface {
	// PrependFeedback puts entry in front of the session's feedback list.
	PrependFeedback(ctx context.Context, sid string, entry domain.FeedbackEntry) error
	// Feedback returns the session's entries for candidateID, most recent first.
	Feedback(ctx context.Context, sid string, candidateID int) ([]domain.FeedbackEntry, error)
	SetRoleOverride(ctx context.Context, sid string, userID int, role domain.Role) error
	RoleOverrides(ctx context.Context, sid string) (map[int]domain.Role, error)
	Clear(ctx context.Context, sid string) error
}
