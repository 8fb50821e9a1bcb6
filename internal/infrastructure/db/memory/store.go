// Package memory provides in-process session and view-state stores. They are
// used when SESSION_BACKEND=memory and in tests; state is lost on restart.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/interviewdesk/dashboard/internal/core/domain"
)

const defaultTTL = 8 * time.Hour

type sessionRecord struct {
	identity  domain.Identity
	raw       []byte // set when a record was seeded unparsed
	expiresAt time.Time
}

type viewState struct {
	feedback  []domain.FeedbackEntry // most recent first
	roles     map[int]domain.Role
	expiresAt time.Time
}

// Store implements both ports.SessionStore and ports.ViewStateStore.
type Store struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	sessions map[string]sessionRecord
	views    map[string]*viewState
}

// NewStore creates an empty Store whose entries expire after ttl.
func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Store{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]sessionRecord),
		views:    make(map[string]*viewState),
	}
}

func (s *Store) Save(_ context.Context, sid string, identity domain.Identity) error {
	if err := identity.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sid] = sessionRecord{identity: identity, expiresAt: s.now().Add(s.ttl)}
	return nil
}

// SaveRaw stores an undecoded record, the way a tampered or stale entry would
// look in a shared store.
func (s *Store) SaveRaw(sid string, raw []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sid] = sessionRecord{raw: raw, expiresAt: s.now().Add(s.ttl)}
}

func (s *Store) Load(_ context.Context, sid string) (domain.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.sessions[sid]
	if !ok || !s.now().Before(rec.expiresAt) {
		delete(s.sessions, sid)
		return domain.Identity{}, domain.ErrSessionNotFound
	}
	if rec.raw != nil {
		return decodeIdentity(rec.raw)
	}
	return rec.identity, nil
}

func (s *Store) Delete(_ context.Context, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sid)
	return nil
}

func (s *Store) Ping(_ context.Context) error {
	return nil
}

func (s *Store) PrependFeedback(_ context.Context, sid string, entry domain.FeedbackEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := s.view(sid)
	v.feedback = append([]domain.FeedbackEntry{entry}, v.feedback...)
	return nil
}

func (s *Store) Feedback(_ context.Context, sid string, candidateID int) ([]domain.FeedbackEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := s.view(sid)
	entries := make([]domain.FeedbackEntry, 0, len(v.feedback))
	for _, e := range v.feedback {
		if e.OwnerID == candidateID {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

func (s *Store) SetRoleOverride(_ context.Context, sid string, userID int, role domain.Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view(sid).roles[userID] = role
	return nil
}

func (s *Store) RoleOverrides(_ context.Context, sid string) (map[int]domain.Role, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := s.view(sid)
	out := make(map[int]domain.Role, len(v.roles))
	for id, r := range v.roles {
		out[id] = r
	}
	return out, nil
}

func (s *Store) Clear(_ context.Context, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.views, sid)
	return nil
}

// view returns the live view state of sid, creating or resetting it when
// missing or expired. Caller must hold s.mu.
func (s *Store) view(sid string) *viewState {
	now := s.now()
	v, ok := s.views[sid]
	if !ok || !now.Before(v.expiresAt) {
		v = &viewState{roles: make(map[int]domain.Role)}
		s.views[sid] = v
	}
	v.expiresAt = now.Add(s.ttl)
	return v
}
