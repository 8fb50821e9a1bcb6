package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/interviewdesk/dashboard/internal/pkg/metrics"
	"github.com/interviewdesk/dashboard/internal/core/domain"
	"github.com/interviewdesk/dashboard/internal/core/ports"
)

const defaultSessionTTL = 8 * time.Hour

// IdentityService implements login, session restoration and logout.
type IdentityService struct {
	directory ports.Directory
	sessions  ports.SessionStore
	views     ports.ViewStateStore
	secret    []byte
	ttl       time.Duration
	now       func() time.Time
	log       zerolog.Logger
}

func NewIdentityService(
	directory ports.Directory,
	sessions ports.SessionStore,
	views ports.ViewStateStore,
	secret string,
	ttl time.Duration,
	log zerolog.Logger,
) *IdentityService {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &IdentityService{
		directory: directory,
		sessions:  sessions,
		views:     views,
		secret:    []byte(secret),
		ttl:       ttl,
		now:       time.Now,
		log:       log,
	}
}

// Login checks the credentials with the directory and opens a session for the
// chosen role.
func (s *IdentityService) Login(ctx context.Context, creds domain.Credentials) (*ports.LoginResult, error) {
	if !creds.Role.Valid() {
		return nil, fmt.Errorf("login: %w", domain.ErrInvalidRole)
	}
	if creds.Username == "" || creds.Password == "" {
		metrics.LoginsTotal.WithLabelValues(string(creds.Role), "invalid_credentials").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	if err := s.directory.Authenticate(ctx, creds.Username, creds.Password); err != nil {
		result := "error"
		if errors.Is(err, domain.ErrInvalidCredentials) {
			result = "invalid_credentials"
		}
		metrics.LoginsTotal.WithLabelValues(string(creds.Role), result).Inc()
		return nil, fmt.Errorf("login: %w", err)
	}

	identity := domain.Identity{Username: creds.Username, Role: creds.Role}
	sid := uuid.NewString()
	if err := s.sessions.Save(ctx, sid, identity); err != nil {
		metrics.LoginsTotal.WithLabelValues(string(creds.Role), "error").Inc()
		return nil, fmt.Errorf("login: %w", err)
	}

	expiresAt := s.now().Add(s.ttl)
	token, err := s.issueToken(sid, identity.Username, expiresAt)
	if err != nil {
		_ = s.sessions.Delete(ctx, sid)
		return nil, fmt.Errorf("login: sign token: %w", err)
	}

	metrics.LoginsTotal.WithLabelValues(string(creds.Role), "success").Inc()
	s.log.Info().Str("username", identity.Username).Str("role", string(identity.Role)).Msg("session opened")

	return &ports.LoginResult{
		Session:   domain.Session{ID: sid, State: domain.AuthAuthenticated, Identity: identity},
		Token:     token,
		ExpiresAt: expiresAt,
		Notice:    domain.Notice{Level: domain.NoticeSuccess, Message: "Logged in as " + identity.Role.Label()},
		Redirect:  identity.Role.HomePath(),
	}, nil
}

// Restore resolves a session token. Missing, forged or expired tokens and
// missing records resolve to an anonymous session; an unreadable record is
// deleted first and reported through Session.Cleared.
func (s *IdentityService) Restore(ctx context.Context, token string) domain.Session {
	if token == "" {
		return domain.Anonymous()
	}

	sid, err := s.parseToken(token)
	if err != nil {
		s.log.Debug().Err(err).Msg("session token rejected")
		return domain.Anonymous()
	}

	sess := domain.Session{ID: sid, State: domain.AuthAnonymous}
	identity, err := s.sessions.Load(ctx, sid)
	switch {
	case err == nil:
		sess.State = domain.AuthAuthenticated
		sess.Identity = identity
	case errors.Is(err, domain.ErrSessionNotFound):
	case errors.Is(err, domain.ErrSessionCorrupt):
		s.log.Warn().Err(err).Str("sid", sid).Msg("discarding unreadable session")
		if delErr := s.sessions.Delete(ctx, sid); delErr != nil {
			s.log.Warn().Err(delErr).Str("sid", sid).Msg("failed to delete session")
		}
		sess.Cleared = true
	default:
		s.log.Error().Err(err).Str("sid", sid).Msg("session lookup failed")
	}
	return sess
}

// Logout removes the identity and all view state of the session. It succeeds
// for unknown or empty session ids.
func (s *IdentityService) Logout(ctx context.Context, sid string) domain.Notice {
	notice := domain.Notice{Level: domain.NoticeWarn, Message: "Logged out successfully"}
	if sid == "" {
		return notice
	}

	if err := s.sessions.Delete(ctx, sid); err != nil {
		s.log.Warn().Err(err).Str("sid", sid).Msg("failed to delete session")
	}
	if err := s.views.Clear(ctx, sid); err != nil {
		s.log.Warn().Err(err).Str("sid", sid).Msg("failed to clear view state")
	}
	s.log.Info().Str("sid", sid).Msg("session closed")
	return notice
}

func (s *IdentityService) issueToken(sid, username string, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sid":      sid,
		"username": username,
		"exp":      expiresAt.Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

func (s *IdentityService) parseToken(token string) (string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !tkn.Valid {
		return "", fmt.Errorf("parse token: %w", err)
	}

	sid, _ := claims["sid"].(string)
	if sid == "" {
		return "", errors.New("parse token: missing sid")
	}
	return sid, nil
}
