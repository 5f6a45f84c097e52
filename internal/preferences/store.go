// Package preferences хранит немногочисленные настройки панели
// (тема оформления, логотип для отчетов) как пары ключ-значение в Redis -
// замена browser local storage из оригинальной панели. Значения непрозрачны
// для сервиса: сырая строка или data-URI.
package preferences

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "preference:"

// Store - хранилище настроек панели поверх Redis
type Store struct {
	redisClient *redis.Client
}

// NewStore создает новый Store
func NewStore(client *redis.Client) *Store {
	return &Store{
		redisClient: client,
	}
}

// Get возвращает значение настройки; второй результат false, если
// настройка не задана
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := s.redisClient.Get(ctx, keyPrefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get preference %q: %w", key, err)
	}
	return val, true, nil
}

// Set сохраняет значение настройки без срока жизни
func (s *Store) Set(ctx context.Context, key, value string) error {
	if err := s.redisClient.Set(ctx, keyPrefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set preference %q: %w", key, err)
	}
	return nil
}
