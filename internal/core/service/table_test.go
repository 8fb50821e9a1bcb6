package service

import (
	"testing"

	"github.com/interviewdesk/dashboard/internal/core/domain"
	"github.com/interviewdesk/dashboard/internal/core/ports"
)

func candidates(n int) []domain.Candidate {
	names := []string{"Emily", "Michael", "Sophia", "James", "Emma"}
	out := make([]domain.Candidate, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, domain.NewCandidate(user(i, names[(i-1)%len(names)], "Doe"), domain.RoleSetTrack))
	}
	return out
}

func TestApplyTable_DefaultLimit(t *testing.T) {
	page := ApplyTable(candidates(25), ports.TableQuery{})
	if page.Limit != 10 || len(page.Items) != 10 || page.TotalPages != 3 || page.Total != 25 {
		t.Fatalf("unexpected page: limit=%d items=%d pages=%d total=%d", page.Limit, len(page.Items), page.TotalPages, page.Total)
	}
}

func TestApplyTable_LimitCappedAt100(t *testing.T) {
	page := ApplyTable(candidates(150), ports.TableQuery{Limit: 500})
	if page.Limit != 100 || len(page.Items) != 100 {
		t.Fatalf("expected cap at 100, got limit=%d items=%d", page.Limit, len(page.Items))
	}
}

func TestApplyTable_PageBeyondEnd(t *testing.T) {
	page := ApplyTable(candidates(5), ports.TableQuery{Page: 4, Limit: 2})
	if len(page.Items) != 0 || page.TotalPages != 3 || page.Page != 4 {
		t.Fatalf("unexpected page: %+v", page)
	}
}

func TestApplyTable_SearchCaseInsensitive(t *testing.T) {
	page := ApplyTable(candidates(10), ports.TableQuery{Search: "EMI"})
	if page.Total != 2 {
		t.Fatalf("expected 2 matches for Emily, got %d", page.Total)
	}
	for _, c := range page.Items {
		if c.FirstName != "Emily" {
			t.Errorf("unexpected match %s", c.FullName())
		}
	}
}

func TestApplyTable_SortDescendingByID(t *testing.T) {
	page := ApplyTable(candidates(4), ports.TableQuery{Sort: "-id"})
	if page.Items[0].ID != 4 || page.Items[3].ID != 1 {
		t.Fatalf("expected descending ids, got %d..%d", page.Items[0].ID, page.Items[3].ID)
	}
}

func TestApplyTable_SortByNameKeepsInputIntact(t *testing.T) {
	in := candidates(5)
	page := ApplyTable(in, ports.TableQuery{Sort: "name"})
	if page.Items[0].FirstName != "Emily" || page.Items[4].FirstName != "Sophia" {
		t.Fatalf("unexpected order: %s .. %s", page.Items[0].FirstName, page.Items[4].FirstName)
	}
	if in[0].ID != 1 || in[4].ID != 5 {
		t.Fatalf("input slice was reordered")
	}
}
