package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/forest_fire_monitoring/internal/models"
)

const (
	alertQueueKey = "alert_events"
)

// AlertEvent - событие о новой тревоге, порожденной симуляцией,
// для доставки внешним потребителям
type AlertEvent struct {
	ID        uuid.UUID    `json:"id"`
	Timestamp time.Time    `json:"timestamp"`
	Alert     models.Alert `json:"alert"`
}

// Publisher - интерфейс для публикации событий о тревогах
type Publisher interface {
	Publish(ctx context.Context, event AlertEvent) error
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

// Publish кладет событие о тревоге в очередь Redis
func (p *RedisPublisher) Publish(ctx context.Context, event AlertEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal alert event: %w", err)
	}

	// LPUSH добавляет событие в левую часть списка (очереди)
	if err := p.redisClient.LPush(ctx, alertQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish alert event to Redis: %w", err)
	}
	return nil
}
