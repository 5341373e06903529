package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	alertQueueKey = "attendance_alerts"
)

// Event carries an out-of-radius check-in alert
type Event struct {
	ShopID         string    `json:"shop_id"`
	UserName       string    `json:"user_name"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	DistanceMeters float64   `json:"distance_meters"`
	RadiusMeters   float64   `json:"radius_meters"`
	Timestamp      time.Time `json:"timestamp"`
}

// Publisher enqueues alert events for asynchronous delivery
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// RedisPublisher is a Publisher backed by a Redis list
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher creates a new RedisPublisher
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish pushes the event onto the alert queue
func (p *RedisPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal alert event: %w", err)
	}

	if err := p.redisClient.LPush(ctx, alertQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish alert event to Redis: %w", err)
	}
	return nil
}
