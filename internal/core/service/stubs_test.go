package service

import (
	"context"
	"strconv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/interviewdesk/dashboard/internal/core/domain"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// In-memory stub directory
// ---------------------------------------------------------------------------

type stubDirectory struct {
	mu sync.Mutex

	users    map[int]domain.User
	order    []int
	todos    map[int][]domain.ScheduleItem
	posts    map[int][]domain.FeedbackEntry
	password string

	listErr   error // if set, ListUsers returns this error
	todosErr  error
	postsErr  error
	createErr error

	authCalls   int
	createCalls int
	postsCalls  int
	nextPostID  int
}

func newStubDirectory(users ...domain.User) *stubDirectory {
	d := &stubDirectory{
		users:      make(map[int]domain.User),
		todos:      make(map[int][]domain.ScheduleItem),
		posts:      make(map[int][]domain.FeedbackEntry),
		password:   "emilyspass",
		nextPostID: 252,
	}
	for _, u := range users {
		d.users[u.ID] = u
		d.order = append(d.order, u.ID)
	}
	return d
}

func (d *stubDirectory) Authenticate(_ context.Context, username, password string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.authCalls++
	if password != d.password {
		return domain.ErrInvalidCredentials
	}
	return nil
}

func (d *stubDirectory) ListUsers(_ context.Context) ([]domain.User, error) {
	if d.listErr != nil {
		return nil, d.listErr
	}
	out := make([]domain.User, 0, len(d.order))
	for _, id := range d.order {
		out = append(out, d.users[id])
	}
	return out, nil
}

func (d *stubDirectory) GetUser(_ context.Context, id int) (domain.User, error) {
	u, ok := d.users[id]
	if !ok {
		return domain.User{}, domain.ErrCandidateNotFound
	}
	return u, nil
}

func (d *stubDirectory) ListTodos(_ context.Context, userID int) ([]domain.ScheduleItem, error) {
	if d.todosErr != nil {
		return nil, d.todosErr
	}
	return d.todos[userID], nil
}

func (d *stubDirectory) ListPosts(_ context.Context, userID int) ([]domain.FeedbackEntry, error) {
	d.mu.Lock()
	d.postsCalls++
	d.mu.Unlock()
	if d.postsErr != nil {
		return nil, d.postsErr
	}
	return d.posts[userID], nil
}

func (d *stubDirectory) CreatePost(_ context.Context, entry domain.FeedbackEntry) (domain.FeedbackEntry, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.createCalls++
	if d.createErr != nil {
		return domain.FeedbackEntry{}, d.createErr
	}
	entry.ID = strconv.Itoa(d.nextPostID)
	d.nextPostID++
	return entry, nil
}

func (d *stubDirectory) Ping(_ context.Context) error {
	return nil
}

// ---------------------------------------------------------------------------
// In-memory stub session + view state store
// ---------------------------------------------------------------------------

type stubStore struct {
	mu       sync.Mutex
	sessions map[string]domain.Identity
	corrupt  map[string]bool
	feedback map[string][]domain.FeedbackEntry
	roles    map[string]map[int]domain.Role
	deleted  []string
	cleared  []string
}

func newStubStore() *stubStore {
	return &stubStore{
		sessions: make(map[string]domain.Identity),
		corrupt:  make(map[string]bool),
		feedback: make(map[string][]domain.FeedbackEntry),
		roles:    make(map[string]map[int]domain.Role),
	}
}

func (s *stubStore) Save(_ context.Context, sid string, identity domain.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sid] = identity
	delete(s.corrupt, sid)
	return nil
}

func (s *stubStore) Load(_ context.Context, sid string) (domain.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.corrupt[sid] {
		return domain.Identity{}, domain.ErrSessionCorrupt
	}
	id, ok := s.sessions[sid]
	if !ok {
		return domain.Identity{}, domain.ErrSessionNotFound
	}
	return id, nil
}

func (s *stubStore) Delete(_ context.Context, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sid)
	delete(s.corrupt, sid)
	s.deleted = append(s.deleted, sid)
	return nil
}

func (s *stubStore) Ping(_ context.Context) error {
	return nil
}

func (s *stubStore) PrependFeedback(_ context.Context, sid string, entry domain.FeedbackEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.feedback[sid] = append([]domain.FeedbackEntry{entry}, s.feedback[sid]...)
	return nil
}

func (s *stubStore) Feedback(_ context.Context, sid string, candidateID int) ([]domain.FeedbackEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.FeedbackEntry
	for _, e := range s.feedback[sid] {
		if e.OwnerID == candidateID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *stubStore) SetRoleOverride(_ context.Context, sid string, userID int, role domain.Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.roles[sid] == nil {
		s.roles[sid] = make(map[int]domain.Role)
	}
	s.roles[sid][userID] = role
	return nil
}

func (s *stubStore) RoleOverrides(_ context.Context, sid string) (map[int]domain.Role, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[int]domain.Role)
	for id, r := range s.roles[sid] {
		out[id] = r
	}
	return out, nil
}

func (s *stubStore) Clear(_ context.Context, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.feedback, sid)
	delete(s.roles, sid)
	s.cleared = append(s.cleared, sid)
	return nil
}

// ---------------------------------------------------------------------------
// Fixtures
// ---------------------------------------------------------------------------

func user(id int, first, last string) domain.User {
	return domain.User{ID: id, FirstName: first, LastName: last, Username: first}
}

func adminSession() domain.Session {
	return domain.Session{ID: "sid-admin", State: domain.AuthAuthenticated, Identity: domain.Identity{Username: "emilys", Role: domain.RoleAdmin}}
}

func sessionAs(role domain.Role) domain.Session {
	return domain.Session{ID: "sid-" + string(role), State: domain.AuthAuthenticated, Identity: domain.Identity{Username: "u", Role: role}}
}
