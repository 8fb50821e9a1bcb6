package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/interviewdesk/dashboard/internal/core/domain"
)

func newIdentityService(dir *stubDirectory, store *stubStore) *IdentityService {
	return NewIdentityService(dir, store, store, "secret", time.Hour, discardLogger)
}

func TestIdentityService_Login_Success(t *testing.T) {
	store := newStubStore()
	svc := newIdentityService(newStubDirectory(), store)

	res, err := svc.Login(context.Background(), domain.Credentials{Username: "emilys", Password: "emilyspass", Role: domain.RolePanelist})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Notice.Message != "Logged in as Panelist" || res.Notice.Level != domain.NoticeSuccess {
		t.Errorf("unexpected notice: %+v", res.Notice)
	}
	if res.Redirect != "/panelist" {
		t.Errorf("expected redirect /panelist, got %q", res.Redirect)
	}
	if res.Token == "" || res.Session.ID == "" {
		t.Fatalf("expected token and session id")
	}
	stored := store.sessions[res.Session.ID]
	if stored.Username != "emilys" || stored.Role != domain.RolePanelist {
		t.Errorf("unexpected stored identity: %+v", stored)
	}
}

func TestIdentityService_LoginThenRestore_SameIdentity(t *testing.T) {
	ctx := context.Background()
	svc := newIdentityService(newStubDirectory(), newStubStore())

	for _, role := range domain.Roles() {
		res, err := svc.Login(ctx, domain.Credentials{Username: "emilys", Password: "emilyspass", Role: role})
		if err != nil {
			t.Fatalf("login as %s: %v", role, err)
		}

		sess := svc.Restore(ctx, res.Token)
		if !sess.Authenticated() {
			t.Fatalf("expected authenticated session for %s, got %s", role, sess.State)
		}
		if sess.Identity != res.Session.Identity {
			t.Errorf("restored %+v, expected %+v", sess.Identity, res.Session.Identity)
		}
	}
}

func TestIdentityService_Login_InvalidCredentials(t *testing.T) {
	store := newStubStore()
	svc := newIdentityService(newStubDirectory(), store)

	_, err := svc.Login(context.Background(), domain.Credentials{Username: "emilys", Password: "nope", Role: domain.RoleAdmin})
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if len(store.sessions) != 0 {
		t.Errorf("no session must be stored on failure")
	}
}

func TestIdentityService_Login_EmptyCredentialsSkipsDirectory(t *testing.T) {
	dir := newStubDirectory()
	svc := newIdentityService(dir, newStubStore())

	_, err := svc.Login(context.Background(), domain.Credentials{Username: "", Password: "", Role: domain.RoleAdmin})
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if dir.authCalls != 0 {
		t.Errorf("directory must not be called, got %d calls", dir.authCalls)
	}
}

func TestIdentityService_Login_InvalidRole(t *testing.T) {
	svc := newIdentityService(newStubDirectory(), newStubStore())

	_, err := svc.Login(context.Background(), domain.Credentials{Username: "emilys", Password: "emilyspass", Role: "guest"})
	if !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestIdentityService_Restore_Anonymous(t *testing.T) {
	svc := newIdentityService(newStubDirectory(), newStubStore())

	if s := svc.Restore(context.Background(), ""); s.State != domain.AuthAnonymous {
		t.Errorf("empty token: expected anonymous, got %s", s.State)
	}
	if s := svc.Restore(context.Background(), "garbage"); s.State != domain.AuthAnonymous {
		t.Errorf("garbage token: expected anonymous, got %s", s.State)
	}
}

func TestIdentityService_Restore_ForeignSignature(t *testing.T) {
	svc := newIdentityService(newStubDirectory(), newStubStore())

	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sid": "x", "exp": time.Now().Add(time.Hour).Unix()})
	signed, _ := forged.SignedString([]byte("other-secret"))

	if s := svc.Restore(context.Background(), signed); s.Authenticated() {
		t.Fatalf("token signed with another secret must not authenticate")
	}
}

func TestIdentityService_Restore_Expired(t *testing.T) {
	ctx := context.Background()
	svc := newIdentityService(newStubDirectory(), newStubStore())

	res, err := svc.Login(ctx, domain.Credentials{Username: "emilys", Password: "emilyspass", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	svc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	if s := svc.Restore(ctx, res.Token); s.Authenticated() {
		t.Fatalf("expired token must not authenticate")
	}
}

func TestIdentityService_Restore_CorruptRecordIsCleared(t *testing.T) {
	ctx := context.Background()
	store := newStubStore()
	svc := newIdentityService(newStubDirectory(), store)

	res, _ := svc.Login(ctx, domain.Credentials{Username: "emilys", Password: "emilyspass", Role: domain.RoleAdmin})
	store.corrupt[res.Session.ID] = true

	sess := svc.Restore(ctx, res.Token)
	if sess.State != domain.AuthAnonymous || !sess.Cleared {
		t.Fatalf("expected cleared anonymous session, got %+v", sess)
	}
	if len(store.deleted) != 1 || store.deleted[0] != res.Session.ID {
		t.Errorf("corrupt record must be deleted, deleted=%v", store.deleted)
	}
}

func TestIdentityService_Logout(t *testing.T) {
	ctx := context.Background()
	store := newStubStore()
	svc := newIdentityService(newStubDirectory(), store)

	res, _ := svc.Login(ctx, domain.Credentials{Username: "emilys", Password: "emilyspass", Role: domain.RoleAdmin})
	_ = store.PrependFeedback(ctx, res.Session.ID, domain.FeedbackEntry{ID: "1", OwnerID: 1})

	notice := svc.Logout(ctx, res.Session.ID)
	if notice.Message != "Logged out successfully" || notice.Level != domain.NoticeWarn {
		t.Errorf("unexpected notice: %+v", notice)
	}
	if s := svc.Restore(ctx, res.Token); s.Authenticated() {
		t.Fatalf("session must be anonymous after logout")
	}
	if len(store.feedback[res.Session.ID]) != 0 {
		t.Errorf("view state must be cleared on logout")
	}
}

func TestIdentityService_Logout_Idempotent(t *testing.T) {
	store := newStubStore()
	svc := newIdentityService(newStubDirectory(), store)

	svc.Logout(context.Background(), "")
	svc.Logout(context.Background(), "unknown")
	svc.Logout(context.Background(), "unknown")

	if len(store.deleted) != 2 {
		t.Errorf("expected 2 delete calls for non-empty sids, got %d", len(store.deleted))
	}
}
