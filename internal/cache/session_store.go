package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/connectik/connectik_api/internal/models"
	"github.com/connectik/connectik_api/internal/utils"
)

// SessionStore keeps authenticated admin sessions server-side, keyed by an
// opaque session id.
type SessionStore interface {
	Create(ctx context.Context, session *models.AdminSession) (string, error)
	Get(ctx context.Context, id string) (*models.AdminSession, error)
	Destroy(ctx context.Context, id string) error
}

// sessionRecord is the JSON stored under each session key.
type sessionRecord struct {
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// RedisSessionStore stores sessions as JSON with a sliding TTL: every
// successful Get pushes the expiry back by ttl.
type RedisSessionStore struct {
	redis *RedisClient
	ttl   time.Duration
}

// NewRedisSessionStore creates a new RedisSessionStore.
func NewRedisSessionStore(redis *RedisClient, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{
		redis: redis,
		ttl:   ttl,
	}
}

func (s *RedisSessionStore) key(id string) string {
	return fmt.Sprintf("session:admin:%s", id)
}

// Create stores session under a fresh random id and returns the id.
func (s *RedisSessionStore) Create(ctx context.Context, session *models.AdminSession) (string, error) {
	id, err := utils.GenerateSessionID()
	if err != nil {
		return "", fmt.Errorf("failed to generate session id: %w", err)
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now()
	}

	data, err := json.Marshal(sessionRecord{
		Email:     session.Email,
		Name:      session.Name,
		CreatedAt: session.CreatedAt,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := s.redis.Set(ctx, s.key(id), string(data), s.ttl); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}
	return id, nil
}

// Get returns the session for id and renews its TTL. Unknown or expired ids
// return utils.ErrSessionNotFound.
func (s *RedisSessionStore) Get(ctx context.Context, id string) (*models.AdminSession, error) {
	if id == "" {
		return nil, utils.ErrSessionNotFound
	}

	raw, err := s.redis.GetAndTouch(ctx, s.key(id), s.ttl)
	if errors.Is(err, redis.Nil) {
		return nil, utils.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var rec sessionRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &models.AdminSession{
		Email:     rec.Email,
		Name:      rec.Name,
		CreatedAt: rec.CreatedAt,
	}, nil
}

// Destroy removes the session. Destroying an unknown id is not an error.
func (s *RedisSessionStore) Destroy(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	if err := s.redis.Delete(ctx, s.key(id)); err != nil {
		return fmt.Errorf("failed to destroy session: %w", err)
	}
	return nil
}
