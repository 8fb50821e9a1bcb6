package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/interviewdesk/dashboard/internal/core/domain"
	"github.com/interviewdesk/dashboard/internal/core/ports"
)

// CandidateService aggregates directory data into the candidate views.
type CandidateService struct {
	directory ports.Directory
	views     ports.ViewStateStore
	log       zerolog.Logger
}

func NewCandidateService(directory ports.Directory, views ports.ViewStateStore, log zerolog.Logger) *CandidateService {
	return &CandidateService{directory: directory, views: views, log: log}
}

// ListCandidates returns every directory user, in directory order, decorated
// with the fields derived for set.
func (s *CandidateService) ListCandidates(ctx context.Context, set domain.RoleSet) ([]domain.Candidate, error) {
	users, err := s.directory.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}

	candidates := make([]domain.Candidate, 0, len(users))
	for _, u := range users {
		candidates = append(candidates, domain.NewCandidate(u, set))
	}
	return candidates, nil
}

// GetCandidateDetail loads a user with its schedule and, for roles that may
// submit feedback, its feedback timeline. Schedule and feedback are fetched
// concurrently; the first failure cancels the other.
func (s *CandidateService) GetCandidateDetail(ctx context.Context, sess domain.Session, rawID string) (*domain.CandidateDetail, error) {
	id, err := strconv.Atoi(rawID)
	if err != nil || id <= 0 {
		return nil, domain.ErrCandidateNotFound
	}

	user, err := s.directory.GetUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("candidate detail: %w", err)
	}

	detail := &domain.CandidateDetail{User: user}
	withFeedback := sess.Identity.Role.CanSubmitFeedback()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		schedule, err := s.directory.ListTodos(gctx, id)
		if err != nil {
			return err
		}
		detail.Schedule = schedule
		return nil
	})
	if withFeedback {
		g.Go(func() error {
			remote, err := s.directory.ListPosts(gctx, id)
			if err != nil {
				return err
			}
			detail.Feedback = remote
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("candidate detail: %w", err)
	}

	if withFeedback {
		local, err := s.views.Feedback(ctx, sess.ID, id)
		if err != nil {
			s.log.Warn().Err(err).Int("candidate_id", id).Msg("session feedback unavailable")
		}
		detail.Feedback = append(local, detail.Feedback...)
		if detail.Feedback == nil {
			detail.Feedback = []domain.FeedbackEntry{}
		}
	}
	return detail, nil
}
