package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	notificationQueueKey = "reporter_notifications"
)

// Event - уведомление репортеру об исходе верификации его отчета
type Event struct {
	ReportID  uuid.UUID `json:"report_id"`
	Outcome   string    `json:"outcome"` // verified или rejected
	Reason    string    `json:"reason"`
	Timestamp time.Time `json:"timestamp"`
}

// Publisher - интерфейс для публикации уведомлений
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// RedisPublisher - реализация Publisher, использующая очередь в Redis
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish публикует уведомление в очередь Redis; доставка fire-and-forget,
// сбои доставки обрабатывает воркер и в сервис не возвращаются
func (p *RedisPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal notification event: %w", err)
	}

	// LPUSH в левую часть списка, воркер читает BRPOP справа
	if err := p.redisClient.LPush(ctx, notificationQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish notification event to Redis: %w", err)
	}
	return nil
}
