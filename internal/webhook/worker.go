package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/Satvik-Mishra/shop_attendance_system/internal/config"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Worker drains the alert queue and delivers events to the configured
// webhook endpoint
type Worker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
}

// NewWorker creates a new Worker
func NewWorker(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config) *Worker {
	return &Worker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
	}
}

// Start launches the queue-draining goroutine
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Starting webhook worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping webhook worker.")
				return
			default:
				// Blocking pop from the queue tail; 0 waits indefinitely
				result, err := w.redisClient.BRPop(ctx, 0, alertQueueKey).Result()
				if err != nil {
					if errors.Is(err, context.Canceled) {
						continue
					}
					w.logger.WithError(err).Error("Failed to pop alert event from Redis")
					time.Sleep(w.cfg.WebhookTimeout)
					continue
				}

				// result[0] is the key, result[1] the payload
				payload := result[1]
				var event Event
				if err := json.Unmarshal([]byte(payload), &event); err != nil {
					w.logger.WithError(err).Error("Failed to unmarshal alert event from Redis")
					continue
				}

				w.deliver(ctx, event, payload)
			}
		}
	}()
}

func (w *Worker) deliver(ctx context.Context, event Event, rawPayload string) {
	log := w.logger.WithField("shop_id", event.ShopID).WithField("user", event.UserName)
	log.Debug("Delivering out-of-radius alert...")

	if w.cfg.WebhookURL == "" {
		log.Warn("Webhook URL is not configured. Skipping alert delivery.")
		return
	}

	maxRetries := w.cfg.WebhookMaxRetries
	baseDelay := w.cfg.WebhookBaseDelay

	for i := 0; i < maxRetries; i++ {
		req, err := http.NewRequestWithContext(ctx, "POST", w.cfg.WebhookURL, bytes.NewBufferString(rawPayload))
		if err != nil {
			log.WithError(err).Errorf("Failed to create webhook request. Retries left: %d", maxRetries-1-i)
			continue
		}

		req.Header.Set("Content-Type", "application/json")

		// Sign the payload when a secret is configured
		if w.cfg.WebhookSecret != "" {
			signature := generateHMACSHA256(rawPayload, w.cfg.WebhookSecret)
			req.Header.Set("X-Webhook-Signature", signature)
		}

		resp, err := w.httpClient.Do(req)
		if err != nil {
			log.WithError(err).Warnf("Failed to send webhook. Retrying in %v. Retries left: %d", baseDelay, maxRetries-1-i)
			time.Sleep(baseDelay)
			baseDelay *= 2
			continue
		}
		resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			log.Info("Alert delivered successfully.")
			return
		}
		log.Warnf("Alert delivery failed with status code %d. Retrying in %v. Retries left: %d", resp.StatusCode, baseDelay, maxRetries-1-i)
		time.Sleep(baseDelay)
		baseDelay *= 2
	}

	log.Errorf("Failed to deliver alert after %d retries.", maxRetries)
}

// generateHMACSHA256 generates an HMAC-SHA256 signature for the payload
func generateHMACSHA256(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
