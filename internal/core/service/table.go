package service

import (
	"cmp"
	"slices"
	"strings"

	"github.com/interviewdesk/dashboard/internal/core/domain"
	"github.com/interviewdesk/dashboard/internal/core/ports"
)

const (
	defaultTableLimit = 10
	maxTableLimit     = 100
)

// ApplyTable filters, sorts and paginates candidates for a table view. The
// input slice is not modified.
func ApplyTable(candidates []domain.Candidate, q ports.TableQuery) ports.TablePage {
	limit := q.Limit
	if limit <= 0 {
		limit = defaultTableLimit
	}
	if limit > maxTableLimit {
		limit = maxTableLimit
	}
	page := q.Page
	if page < 1 {
		page = 1
	}

	search := strings.ToLower(strings.TrimSpace(q.Search))
	rows := make([]domain.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if search != "" && !strings.Contains(strings.ToLower(c.FullName()), search) {
			continue
		}
		rows = append(rows, c)
	}

	key, desc := strings.CutPrefix(q.Sort, "-")
	slices.SortStableFunc(rows, func(a, b domain.Candidate) int {
		var n int
		switch key {
		case "name":
			n = cmp.Compare(strings.ToLower(a.FullName()), strings.ToLower(b.FullName()))
		case "status":
			n = cmp.Compare(a.InterviewStatus, b.InterviewStatus)
		case "role":
			n = cmp.Compare(a.Role, b.Role)
		default:
			n = cmp.Compare(a.ID, b.ID)
		}
		if desc {
			return -n
		}
		return n
	})

	total := len(rows)
	totalPages := (total + limit - 1) / limit

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := min(start+limit, total)

	return ports.TablePage{
		Items:      rows[start:end],
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}
