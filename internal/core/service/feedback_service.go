package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/interviewdesk/dashboard/internal/pkg/metrics"
	"github.com/interviewdesk/dashboard/internal/core/domain"
	"github.com/interviewdesk/dashboard/internal/core/ports"
)

// FeedbackService submits interview feedback. A submission that fails upstream
// is kept for the session as a local entry instead of being lost.
type FeedbackService struct {
	directory ports.Directory
	views     ports.ViewStateStore
	validate  *validator.Validate
	log       zerolog.Logger
}

func NewFeedbackService(directory ports.Directory, views ports.ViewStateStore, log zerolog.Logger) *FeedbackService {
	return &FeedbackService{
		directory: directory,
		views:     views,
		validate:  validator.New(),
		log:       log,
	}
}

// Submit validates form and creates the feedback entry for candidateID. The
// entry is visible in the session's timeline exactly once, whether it was
// created upstream or synthesised locally.
func (s *FeedbackService) Submit(ctx context.Context, sess domain.Session, candidateID int, form domain.FeedbackForm) (*domain.FeedbackEntry, error) {
	// 1. Capability check.
	if !sess.Authenticated() {
		return nil, domain.ErrUnauthenticated
	}
	if !sess.Identity.Role.CanSubmitFeedback() {
		return nil, fmt.Errorf("submit feedback: %w", domain.ErrForbidden)
	}

	// 2. Validation, before any network call.
	if err := s.validateForm(form); err != nil {
		metrics.FeedbackSubmissionsTotal.WithLabelValues("rejected").Inc()
		return nil, err
	}
	if candidateID <= 0 {
		return nil, domain.ErrCandidateNotFound
	}

	// 3. Remote create, falling back to a local entry.
	entry := form.Entry(candidateID)
	created, err := s.directory.CreatePost(ctx, entry)
	switch {
	case err == nil:
		entry = created
		metrics.FeedbackSubmissionsTotal.WithLabelValues("remote").Inc()
	case ctx.Err() != nil:
		return nil, fmt.Errorf("submit feedback: %w", ctx.Err())
	default:
		s.log.Warn().Err(err).Int("candidate_id", candidateID).Msg("feedback kept locally")
		entry.ID = "local-" + uuid.NewString()
		entry.Local = true
		metrics.FeedbackSubmissionsTotal.WithLabelValues("fallback").Inc()
	}

	// 4. Prepend to the session timeline.
	if err := s.views.PrependFeedback(ctx, sess.ID, entry); err != nil {
		s.log.Error().Err(err).Int("candidate_id", candidateID).Msg("failed to record feedback in session")
	}
	return &entry, nil
}

func (s *FeedbackService) validateForm(form domain.FeedbackForm) error {
	err := s.validate.Struct(form)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return fmt.Errorf("%w: %v", domain.ErrInvalidFeedback, err)
	}
	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		msgs = append(msgs, feedbackFieldError(fe))
	}
	return fmt.Errorf("%w: %s", domain.ErrInvalidFeedback, strings.Join(msgs, "; "))
}

func feedbackFieldError(fe validator.FieldError) string {
	switch fe.Field() {
	case "OverallScore":
		return "overallScore must be between 1 and 10"
	case "Strengths":
		return "strengths must be at least 5 characters"
	case "Improvements":
		return "improvements must be at least 5 characters"
	default:
		return fmt.Sprintf("%s failed validation (%s)", strings.ToLower(fe.Field()), fe.Tag())
	}
}
