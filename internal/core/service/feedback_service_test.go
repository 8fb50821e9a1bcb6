package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/interviewdesk/dashboard/internal/core/domain"
)

func validForm() domain.FeedbackForm {
	return domain.FeedbackForm{OverallScore: 8, Strengths: "Clear communicator", Improvements: "System design depth"}
}

func TestFeedbackService_Submit_Remote(t *testing.T) {
	ctx := context.Background()
	dir := newStubDirectory()
	store := newStubStore()
	svc := NewFeedbackService(dir, store, discardLogger)
	sess := sessionAs(domain.RolePanelist)

	entry, err := svc.Submit(ctx, sess, 3, validForm())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if entry.Local {
		t.Errorf("expected durable entry")
	}
	if entry.Title != "Score: 8" {
		t.Errorf("unexpected title %q", entry.Title)
	}
	if entry.Body != "**Strengths:** Clear communicator\n\n**Improvements:** System design depth" {
		t.Errorf("unexpected body %q", entry.Body)
	}
	if entry.Reactions != 0 || entry.Tags == nil || len(entry.Tags) != 0 {
		t.Errorf("expected zero reactions and empty tags, got %+v", entry)
	}
	if got := store.feedback[sess.ID]; len(got) != 1 || got[0].ID != entry.ID {
		t.Errorf("entry must be prepended exactly once, got %+v", got)
	}
}

func TestFeedbackService_Submit_FallbackOnUpstreamFailure(t *testing.T) {
	ctx := context.Background()
	dir := newStubDirectory()
	dir.createErr = fmt.Errorf("%w: create_post", domain.ErrUpstreamUnavailable)
	store := newStubStore()
	svc := NewFeedbackService(dir, store, discardLogger)
	sess := sessionAs(domain.RoleAdmin)

	entry, err := svc.Submit(ctx, sess, 3, validForm())
	if err != nil {
		t.Fatalf("fallback must not surface an error, got %v", err)
	}
	if !entry.Local || !strings.HasPrefix(entry.ID, "local-") {
		t.Errorf("expected local entry, got %+v", entry)
	}
	if len(store.feedback[sess.ID]) != 1 {
		t.Errorf("expected exactly one visible entry, got %d", len(store.feedback[sess.ID]))
	}
}

func TestFeedbackService_Submit_ScoreOutOfRangeRejectedBeforeNetwork(t *testing.T) {
	dir := newStubDirectory()
	svc := NewFeedbackService(dir, newStubStore(), discardLogger)

	for _, score := range []int{0, 11, -1} {
		form := validForm()
		form.OverallScore = score
		_, err := svc.Submit(context.Background(), sessionAs(domain.RolePanelist), 3, form)
		if !errors.Is(err, domain.ErrInvalidFeedback) {
			t.Errorf("score %d: expected ErrInvalidFeedback, got %v", score, err)
		}
	}
	if dir.createCalls != 0 {
		t.Fatalf("no network call expected, got %d", dir.createCalls)
	}
}

func TestFeedbackService_Submit_TextLengthBoundary(t *testing.T) {
	svc := NewFeedbackService(newStubDirectory(), newStubStore(), discardLogger)
	sess := sessionAs(domain.RolePanelist)

	form := validForm()
	form.Strengths = "abcde"
	if _, err := svc.Submit(context.Background(), sess, 3, form); err != nil {
		t.Fatalf("5 characters must pass, got %v", err)
	}

	form.Strengths = "héllo"
	if _, err := svc.Submit(context.Background(), sess, 3, form); err != nil {
		t.Fatalf("5 characters with multibyte rune must pass, got %v", err)
	}

	form.Improvements = "abcd"
	_, err := svc.Submit(context.Background(), sess, 3, form)
	if !errors.Is(err, domain.ErrInvalidFeedback) || !strings.Contains(err.Error(), "improvements") {
		t.Fatalf("4 characters must fail on improvements, got %v", err)
	}
}

func TestFeedbackService_Submit_TAMemberForbidden(t *testing.T) {
	dir := newStubDirectory()
	svc := NewFeedbackService(dir, newStubStore(), discardLogger)

	_, err := svc.Submit(context.Background(), sessionAs(domain.RoleTAMember), 3, validForm())
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if dir.createCalls != 0 {
		t.Fatalf("no network call expected")
	}
}

func TestFeedbackService_Submit_Anonymous(t *testing.T) {
	svc := NewFeedbackService(newStubDirectory(), newStubStore(), discardLogger)

	if _, err := svc.Submit(context.Background(), domain.Anonymous(), 3, validForm()); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestFeedbackService_Submit_CancelledRequestLeavesNoEntry(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	dir := newStubDirectory()
	dir.createErr = context.Canceled
	store := newStubStore()
	svc := NewFeedbackService(dir, store, discardLogger)
	sess := sessionAs(domain.RolePanelist)

	cancel()
	if _, err := svc.Submit(ctx, sess, 3, validForm()); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(store.feedback[sess.ID]) != 0 {
		t.Fatalf("cancelled submission must not be recorded")
	}
}

func TestFeedbackService_Submit_MostRecentFirst(t *testing.T) {
	ctx := context.Background()
	store := newStubStore()
	svc := NewFeedbackService(newStubDirectory(), store, discardLogger)
	sess := sessionAs(domain.RolePanelist)

	first, _ := svc.Submit(ctx, sess, 3, validForm())
	second, _ := svc.Submit(ctx, sess, 3, validForm())

	got, _ := store.Feedback(ctx, sess.ID, 3)
	if len(got) != 2 || got[0].ID != second.ID || got[1].ID != first.ID {
		t.Fatalf("expected most recent first, got %+v", got)
	}
}
