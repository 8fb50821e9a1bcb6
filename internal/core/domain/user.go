package domain

import (
	"errors"
	"fmt"
)

// Role is the closed set of dashboard roles chosen at login.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleTAMember Role = "ta_member"
	RolePanelist Role = "panelist"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRole        = errors.New("invalid role")
	ErrUnauthenticated    = errors.New("please login first")
	ErrForbidden          = errors.New("access denied")
	ErrSessionNotFound    = errors.New("session not found")
	ErrSessionCorrupt     = errors.New("invalid session")
)

// Roles lists every role in the order offered by the login form.
func Roles() []Role {
	return []Role{RoleAdmin, RoleTAMember, RolePanelist}
}

// ParseRole converts a raw role string, rejecting anything outside the enum.
func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleAdmin, RoleTAMember, RolePanelist:
		return r, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
	}
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

// Label is the human-readable role name used in notices.
func (r Role) Label() string {
	switch r {
	case RoleAdmin:
		return "Admin"
	case RoleTAMember:
		return "TA Member"
	case RolePanelist:
		return "Panelist"
	default:
		return string(r)
	}
}

// Allows reports whether a holder of r may open a view gated on required.
// Admin passes every gate.
func (r Role) Allows(required Role) bool {
	return r == required || r == RoleAdmin
}

func (r Role) CanSubmitFeedback() bool {
	switch r {
	case RoleAdmin, RolePanelist:
		return true
	default:
		return false
	}
}

func (r Role) CanManageRoles() bool {
	return r == RoleAdmin
}

// HomePath is the dashboard route of the role.
func (r Role) HomePath() string {
	return "/" + string(r)
}

// MenuItem is one sidebar link.
type MenuItem struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

// MenuSection groups the links belonging to one role area.
type MenuSection struct {
	Role  Role       `json:"role"`
	Title string     `json:"title"`
	Items []MenuItem `json:"items"`
}

func (r Role) section() MenuSection {
	switch r {
	case RoleAdmin:
		return MenuSection{Role: r, Title: r.Label(), Items: []MenuItem{
			{Label: "Dashboard", Path: "/admin"},
			{Label: "Role Management", Path: "/admin/users"},
		}}
	case RoleTAMember:
		return MenuSection{Role: r, Title: r.Label(), Items: []MenuItem{
			{Label: "Dashboard", Path: "/ta_member"},
			{Label: "Candidate Management", Path: "/ta_member/candidate"},
			{Label: "Reports", Path: "/ta_member"},
		}}
	case RolePanelist:
		return MenuSection{Role: r, Title: r.Label(), Items: []MenuItem{
			{Label: "Dashboard", Path: "/panelist"},
			{Label: "Candidate Management", Path: "/panelist/candidate"},
			{Label: "Submissions", Path: "/panelist"},
		}}
	default:
		return MenuSection{}
	}
}

// Menu returns the sidebar for r. Admin sees every role section.
func (r Role) Menu() []MenuSection {
	if r == RoleAdmin {
		all := make([]MenuSection, 0, len(Roles()))
		for _, role := range Roles() {
			all = append(all, role.section())
		}
		return all
	}
	if !r.Valid() {
		return nil
	}
	return []MenuSection{r.section()}
}

// Identity is the authenticated actor kept in the session record.
type Identity struct {
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// Validate checks the invariants of a stored or freshly built identity.
func (i Identity) Validate() error {
	if i.Username == "" {
		return fmt.Errorf("%w: empty username", ErrSessionCorrupt)
	}
	if !i.Role.Valid() {
		return fmt.Errorf("%w: unknown role %q", ErrSessionCorrupt, i.Role)
	}
	return nil
}

// AuthState is the restoration state of a request's session.
type AuthState int

const (
	AuthUnknown AuthState = iota
	AuthAnonymous
	AuthAuthenticated
)

func (s AuthState) String() string {
	switch s {
	case AuthAnonymous:
		return "anonymous"
	case AuthAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Session is the resolved identity of a request. Identity is only meaningful
// when State is AuthAuthenticated.
type Session struct {
	ID       string
	State    AuthState
	Identity Identity
	// Cleared is set when a stored record was unreadable and has been removed.
	Cleared bool
}

func (s Session) Authenticated() bool {
	return s.State == AuthAuthenticated
}

// Anonymous returns a restored session with no identity.
func Anonymous() Session {
	return Session{State: AuthAnonymous}
}

// Credentials is what the login form submits.
type Credentials struct {
	Username string
	Password string
	Role     Role
}

// NoticeLevel classifies a one-shot notification.
type NoticeLevel string

const (
	NoticeSuccess NoticeLevel = "success"
	NoticeInfo    NoticeLevel = "info"
	NoticeWarn    NoticeLevel = "warn"
	NoticeError   NoticeLevel = "error"
)

// Notice is a one-shot notification shown to the user once.
type Notice struct {
	Level   NoticeLevel `json:"level"`
	Message string      `json:"message"`
}
