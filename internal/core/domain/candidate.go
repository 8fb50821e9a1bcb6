package domain

import (
	"errors"
	"strings"
)

var ErrCandidateNotFound = errors.New("user not found")
var ErrUpstreamUnavailable = errors.New("candidate directory unavailable")

// Coordinates represents a geographic point.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Address represents a postal address as returned by the directory.
type Address struct {
	Address     string      `json:"address"`
	City        string      `json:"city"`
	State       string      `json:"state"`
	PostalCode  string      `json:"postalCode"`
	Coordinates Coordinates `json:"coordinates"`
}

// Company is the current employer of a user.
type Company struct {
	Name       string `json:"name"`
	Department string `json:"department"`
	Title      string `json:"title"`
}

// User is a person record from the candidate directory.
type User struct {
	ID         int     `json:"id"`
	FirstName  string  `json:"firstName"`
	LastName   string  `json:"lastName"`
	MaidenName string  `json:"maidenName,omitempty"`
	Age        int     `json:"age"`
	Gender     string  `json:"gender"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone"`
	Username   string  `json:"username"`
	BirthDate  string  `json:"birthDate"`
	Image      string  `json:"image"`
	Address    Address `json:"address"`
	Company    Company `json:"company"`
}

// FullName joins first and last name.
func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// InterviewStatus is the synthetic interview state shown in tables.
type InterviewStatus string

const (
	StatusScheduled InterviewStatus = "Scheduled"
	StatusCompleted InterviewStatus = "Completed"
	StatusNoShow    InterviewStatus = "No-show"
)

var interviewStatuses = [...]InterviewStatus{StatusScheduled, StatusCompleted, StatusNoShow}

// RoleSet selects which table of synthetic role labels a view assigns.
type RoleSet int

const (
	// RoleSetStaff labels users for the role-management view.
	RoleSetStaff RoleSet = iota
	// RoleSetTrack labels users for the candidate-management view.
	RoleSetTrack
)

// Entries is the label table indexed by id modulo its length. Staff is ordered
// so that id 1 maps to ta_member and id 2 to panelist.
func (s RoleSet) Entries() []string {
	switch s {
	case RoleSetStaff:
		return []string{string(RolePanelist), string(RoleTAMember)}
	case RoleSetTrack:
		return []string{"Frontend", "Backend", "Fullstack"}
	default:
		return nil
	}
}

func (s RoleSet) String() string {
	switch s {
	case RoleSetStaff:
		return "staff"
	case RoleSetTrack:
		return "track"
	default:
		return "unknown"
	}
}

// index returns id mod n in [0, n).
func index(id, n int) int {
	i := id % n
	if i < 0 {
		i += n
	}
	return i
}

// AssignedRole derives the synthetic role label of a user. It depends on the
// id only, so repeated fetches always agree.
func AssignedRole(id int, set RoleSet) string {
	entries := set.Entries()
	if len(entries) == 0 {
		return ""
	}
	return entries[index(id, len(entries))]
}

// InterviewStatusFor derives the synthetic interview status of a user.
func InterviewStatusFor(id int) InterviewStatus {
	return interviewStatuses[index(id, len(interviewStatuses))]
}

// Candidate is a directory user decorated with derived display fields. The
// derived fields are never persisted.
type Candidate struct {
	User
	Role            string          `json:"role"`
	InterviewStatus InterviewStatus `json:"interviewStatus"`
}

// NewCandidate decorates u with the fields derived for set.
func NewCandidate(u User, set RoleSet) Candidate {
	return Candidate{
		User:            u,
		Role:            AssignedRole(u.ID, set),
		InterviewStatus: InterviewStatusFor(u.ID),
	}
}

// ScheduleItem is an upstream todo shown as an interview schedule entry.
type ScheduleItem struct {
	ID          int    `json:"id"`
	Description string `json:"todo"`
	Completed   bool   `json:"completed"`
	OwnerID     int    `json:"userId"`
}

// CandidateDetail is everything the detail view needs for one candidate.
type CandidateDetail struct {
	User     User            `json:"user"`
	Schedule []ScheduleItem  `json:"schedule"`
	Feedback []FeedbackEntry `json:"feedback"`
}
