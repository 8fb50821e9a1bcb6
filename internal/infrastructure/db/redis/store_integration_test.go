package redis

import (
	"context"
	"errors"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/interviewdesk/dashboard/internal/core/domain"
)

// testClient connects to REDIS_TEST_ADDR (default localhost:6379, db 15) and
// skips the test when no server answers.
func testClient(t *testing.T) *redis.Client {
	t.Helper()
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	client, err := Connect(context.Background(), Config{Addr: addr, DB: 15, Timeout: time.Second})
	if err != nil {
		t.Skipf("redis not available at %s: %v", addr, err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func testSID(t *testing.T) string {
	return t.Name() + "-" + strconv.FormatInt(time.Now().UnixNano(), 36)
}

func TestSessionStore_Redis(t *testing.T) {
	client := testClient(t)
	ctx := context.Background()
	store := NewSessionStore(client, time.Minute)
	sid := testSID(t)
	t.Cleanup(func() { _ = client.Del(ctx, userKey(sid)).Err() })

	if _, err := store.Load(ctx, sid); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}

	want := domain.Identity{Username: "emilys", Role: domain.RoleTAMember}
	if err := store.Save(ctx, sid, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := store.Load(ctx, sid)
	if err != nil || got != want {
		t.Fatalf("load: got %+v, %v", got, err)
	}
	if ttl := client.TTL(ctx, userKey(sid)).Val(); ttl <= 0 || ttl > time.Minute {
		t.Fatalf("expected ttl within a minute, got %v", ttl)
	}

	if err := client.Set(ctx, userKey(sid), `{"username":`, time.Minute).Err(); err != nil {
		t.Fatalf("seed corrupt record: %v", err)
	}
	if _, err := store.Load(ctx, sid); !errors.Is(err, domain.ErrSessionCorrupt) {
		t.Fatalf("expected ErrSessionCorrupt, got %v", err)
	}

	if err := store.Delete(ctx, sid); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := store.Delete(ctx, sid); err != nil {
		t.Fatalf("second delete: %v", err)
	}
}

func TestViewStateStore_FeedbackMostRecentFirst(t *testing.T) {
	client := testClient(t)
	ctx := context.Background()
	views := NewViewStateStore(client, time.Minute)
	sid := testSID(t)
	t.Cleanup(func() { _ = views.Clear(ctx, sid) })

	for _, e := range []domain.FeedbackEntry{
		{ID: "first", OwnerID: 3, Title: "Score: 6", Tags: []string{}},
		{ID: "other", OwnerID: 4, Title: "Score: 2", Tags: []string{}},
		{ID: "second", OwnerID: 3, Title: "Score: 9", Tags: []string{}, Local: true},
	} {
		if err := views.PrependFeedback(ctx, sid, e); err != nil {
			t.Fatalf("prepend %s: %v", e.ID, err)
		}
	}

	got, err := views.Feedback(ctx, sid, 3)
	if err != nil {
		t.Fatalf("feedback: %v", err)
	}
	if len(got) != 2 || got[0].ID != "second" || got[1].ID != "first" || !got[0].Local {
		t.Fatalf("unexpected entries: %+v", got)
	}
	if ttl := client.TTL(ctx, feedbackKey(sid)).Val(); ttl <= 0 || ttl > time.Minute {
		t.Fatalf("expected feedback ttl within a minute, got %v", ttl)
	}
}

func TestViewStateStore_RoleOverridesAndClear(t *testing.T) {
	client := testClient(t)
	ctx := context.Background()
	views := NewViewStateStore(client, time.Minute)
	sid := testSID(t)
	t.Cleanup(func() { _ = views.Clear(ctx, sid) })

	if err := views.SetRoleOverride(ctx, sid, 2, domain.RoleTAMember); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := views.SetRoleOverride(ctx, sid, 2, domain.RoleAdmin); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if err := views.SetRoleOverride(ctx, sid, 5, domain.RolePanelist); err != nil {
		t.Fatalf("set: %v", err)
	}
	// Unparseable fields are skipped rather than failing the view.
	if err := client.HSet(ctx, rolesKey(sid), "x", "guest").Err(); err != nil {
		t.Fatalf("seed: %v", err)
	}

	got, err := views.RoleOverrides(ctx, sid)
	if err != nil {
		t.Fatalf("overrides: %v", err)
	}
	if len(got) != 2 || got[2] != domain.RoleAdmin || got[5] != domain.RolePanelist {
		t.Fatalf("unexpected overrides: %+v", got)
	}
	if ttl := client.TTL(ctx, rolesKey(sid)).Val(); ttl <= 0 || ttl > time.Minute {
		t.Fatalf("expected roles ttl within a minute, got %v", ttl)
	}

	if err := views.PrependFeedback(ctx, sid, domain.FeedbackEntry{ID: "a", OwnerID: 2}); err != nil {
		t.Fatalf("prepend: %v", err)
	}
	if err := views.Clear(ctx, sid); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if n := client.Exists(ctx, feedbackKey(sid), rolesKey(sid)).Val(); n != 0 {
		t.Fatalf("expected both keys removed, %d remain", n)
	}
	if got, _ := views.RoleOverrides(ctx, sid); len(got) != 0 {
		t.Fatalf("expected no overrides after clear, got %+v", got)
	}
}
