package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/interviewdesk/dashboard/internal/core/domain"
)

// ViewStateStore keeps optimistic view state per session.
// Key format: session:<sid>:feedback (list) and session:<sid>:roles (hash).
// Both keys share the session TTL and are dropped on logout.
type ViewStateStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewViewStateStore creates a ViewStateStore whose keys expire after ttl.
func NewViewStateStore(client *redis.Client, ttl time.Duration) *ViewStateStore {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &ViewStateStore{client: client, ttl: ttl}
}

func (v *ViewStateStore) PrependFeedback(ctx context.Context, sid string, entry domain.FeedbackEntry) error {
	payload, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode feedback: %w", err)
	}

	key := feedbackKey(sid)
	pipe := v.client.TxPipeline()
	pipe.LPush(ctx, key, payload)
	pipe.Expire(ctx, key, v.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("prepend feedback: %w", err)
	}
	return nil
}

func (v *ViewStateStore) Feedback(ctx context.Context, sid string, candidateID int) ([]domain.FeedbackEntry, error) {
	raw, err := v.client.LRange(ctx, feedbackKey(sid), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}

	entries := make([]domain.FeedbackEntry, 0, len(raw))
	for _, item := range raw {
		var entry domain.FeedbackEntry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			continue
		}
		if entry.OwnerID == candidateID {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

func (v *ViewStateStore) SetRoleOverride(ctx context.Context, sid string, userID int, role domain.Role) error {
	key := rolesKey(sid)
	pipe := v.client.TxPipeline()
	pipe.HSet(ctx, key, strconv.Itoa(userID), string(role))
	pipe.Expire(ctx, key, v.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("set role override: %w", err)
	}
	return nil
}

func (v *ViewStateStore) RoleOverrides(ctx context.Context, sid string) (map[int]domain.Role, error) {
	raw, err := v.client.HGetAll(ctx, rolesKey(sid)).Result()
	if err != nil {
		return nil, fmt.Errorf("list role overrides: %w", err)
	}

	overrides := make(map[int]domain.Role, len(raw))
	for field, value := range raw {
		id, err := strconv.Atoi(field)
		if err != nil {
			continue
		}
		role, err := domain.ParseRole(value)
		if err != nil {
			continue
		}
		overrides[id] = role
	}
	return overrides, nil
}

func (v *ViewStateStore) Clear(ctx context.Context, sid string) error {
	if err := v.client.Del(ctx, feedbackKey(sid), rolesKey(sid)).Err(); err != nil {
		return fmt.Errorf("clear view state: %w", err)
	}
	return nil
}

func feedbackKey(sid string) string {
	return fmt.Sprintf("session:%s:feedback", sid)
}

func rolesKey(sid string) string {
	return fmt.Sprintf("session:%s:roles", sid)
}
