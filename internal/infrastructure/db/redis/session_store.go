package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/interviewdesk/dashboard/internal/core/domain"
)

const defaultSessionTTL = 8 * time.Hour

// SessionStore keeps session identities in Redis.
// Key format: session:<sid>:user
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore creates a SessionStore whose records expire after ttl.
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &SessionStore{client: client, ttl: ttl}
}

func (s *SessionStore) Save(ctx context.Context, sid string, identity domain.Identity) error {
	payload, err := EncodeIdentity(identity)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, userKey(sid), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *SessionStore) Load(ctx context.Context, sid string) (domain.Identity, error) {
	raw, err := s.client.Get(ctx, userKey(sid)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.Identity{}, domain.ErrSessionNotFound
		}
		return domain.Identity{}, fmt.Errorf("load session: %w", err)
	}
	return DecodeIdentity(raw)
}

func (s *SessionStore) Delete(ctx context.Context, sid string) error {
	if err := s.client.Del(ctx, userKey(sid)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *SessionStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// EncodeIdentity serialises the identity record as {"username","role"}.
func EncodeIdentity(identity domain.Identity) ([]byte, error) {
	if err := identity.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(identity)
}

// DecodeIdentity parses a stored identity record. Anything that does not
// decode to a valid identity is domain.ErrSessionCorrupt.
func DecodeIdentity(raw []byte) (domain.Identity, error) {
	var identity domain.Identity
	if err := json.Unmarshal(raw, &identity); err != nil {
		return domain.Identity{}, fmt.Errorf("%w: %v", domain.ErrSessionCorrupt, err)
	}
	if err := identity.Validate(); err != nil {
		return domain.Identity{}, err
	}
	return identity, nil
}

func userKey(sid string) string {
	return fmt.Sprintf("session:%s:user", sid)
}
