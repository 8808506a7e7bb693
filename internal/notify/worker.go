package notify

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

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/coastal_verification_system/internal/config"
	"github.com/shenikar/coastal_verification_system/internal/observability"
	"github.com/sirupsen/logrus"
)

// Worker - воркер доставки уведомлений репортерам
type Worker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	cfg         *config.Config
	metrics     *observability.Metrics
	httpClient  *http.Client
}

// NewWorker создает новый Worker
func NewWorker(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config, metrics *observability.Metrics) *Worker {
	return &Worker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		metrics:     metrics,
		httpClient: &http.Client{
			Timeout: cfg.NotifyTimeout,
		},
	}
}

// Start запускает горутину обработки очереди уведомлений
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Starting notification worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping notification worker.")
				return
			default:
				// BRPOP - блокирующее извлечение из правой части списка,
				// 0 означает бесконечное ожидание
				result, err := w.redisClient.BRPop(ctx, 0, notificationQueueKey).Result()
				if err != nil {
					if errors.Is(err, context.Canceled) {
						continue
					}
					w.logger.WithError(err).Error("Failed to pop notification event from Redis")
					time.Sleep(w.cfg.NotifyTimeout)
					continue
				}

				// result[0] - ключ, result[1] - значение
				payload := result[1]
				var event Event
				if err := json.Unmarshal([]byte(payload), &event); err != nil {
					w.logger.WithError(err).Error("Failed to unmarshal notification event from Redis")
					continue
				}

				w.deliver(ctx, event, payload)
			}
		}
	}()
}

// deliver отправляет уведомление с ограниченным числом попыток.
// Исчерпание попыток логируется, событие не возвращается в очередь.
func (w *Worker) deliver(ctx context.Context, event Event, rawPayload string) {
	log := w.logger.WithField("report_id", event.ReportID).WithField("outcome", event.Outcome)
	log.Debug("Delivering reporter notification...")

	if w.cfg.NotifyURL == "" {
		log.Warn("Notification URL is not configured. Skipping delivery.")
		return
	}

	maxRetries := w.cfg.NotifyMaxRetries
	baseDelay := w.cfg.NotifyBaseDelay

	for i := 0; i < maxRetries; i++ {
		req, err := http.NewRequestWithContext(ctx, "POST", w.cfg.NotifyURL, bytes.NewBufferString(rawPayload))
		if err != nil {
			log.WithError(err).Errorf("Failed to create notification request. Retries left: %d", maxRetries-1-i)
			continue
		}

		req.Header.Set("Content-Type", "application/json")

		// Добавляем HMAC подпись, если NOTIFY_SECRET задан
		if w.cfg.NotifySecret != "" {
			signature := generateHMACSHA256(rawPayload, w.cfg.NotifySecret)
			req.Header.Set("X-Notification-Signature", signature)
		}

		resp, err := w.httpClient.Do(req)
		if err != nil {
			log.WithError(err).Warnf("Failed to send notification. Retrying in %v. Retries left: %d", baseDelay, maxRetries-1-i)
			time.Sleep(baseDelay)
			baseDelay *= 2
			continue
		}
		resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			log.Info("Notification delivered successfully.")
			if w.metrics != nil {
				w.metrics.NotificationsTotal.WithLabelValues("delivered").Inc()
			}
			return
		}

		log.Warnf("Notification delivery failed with status code %d. Retrying in %v. Retries left: %d", resp.StatusCode, baseDelay, maxRetries-1-i)
		time.Sleep(baseDelay)
		baseDelay *= 2
	}

	if w.metrics != nil {
		w.metrics.NotificationsTotal.WithLabelValues("failed").Inc()
	}
	log.Errorf("Failed to deliver notification after %d retries.", maxRetries)
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
