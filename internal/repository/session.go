package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Satvik-Mishra/shop_attendance_system/internal/models"
	"github.com/Satvik-Mishra/shop_attendance_system/internal/service"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisSessionStore keeps employee sessions in Redis under opaque tokens
// with a TTL. No session state lives in process memory.
type RedisSessionStore struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) service.SessionStore {
	return &RedisSessionStore{
		redisClient: client,
		ttl:         ttl,
	}
}

func sessionKey(token string) string {
	return fmt.Sprintf("session:%s", token)
}

// Create stores the session and returns its token
func (s *RedisSessionStore) Create(ctx context.Context, session *models.Session) (string, error) {
	token := uuid.NewString()
	val, err := json.Marshal(session)
	if err != nil {
		return "", fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := s.redisClient.Set(ctx, sessionKey(token), val, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}
	return token, nil
}

// Get resolves a token to its session
func (s *RedisSessionStore) Get(ctx context.Context, token string) (*models.Session, error) {
	val, err := s.redisClient.Get(ctx, sessionKey(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, service.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	session := &models.Session{}
	if err := json.Unmarshal(val, session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return session, nil
}

// Delete removes a session
func (s *RedisSessionStore) Delete(ctx context.Context, token string) error {
	if err := s.redisClient.Del(ctx, sessionKey(token)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
