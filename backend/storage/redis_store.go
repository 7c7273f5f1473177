package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"promtlearn/backend/models"
)

// RedisProgressStore сохраняет состояние прогресса в Redis одним JSON-значением
type RedisProgressStore struct {
	client *redis.Client
}

func NewRedisProgressStore(client *redis.Client) *RedisProgressStore {
	return &RedisProgressStore{client: client}
}

func progressKey(userID uint) string {
	return fmt.Sprintf("progress:%d", userID)
}

func (s *RedisProgressStore) Load(ctx context.Context, userID uint) (*models.ProgressState, error) {
	data, err := s.client.Get(ctx, progressKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load progress: %w", err)
	}

	var state models.ProgressState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("decode progress: %w", err)
	}
	if state.CompletedLessonIDs == nil {
		state.CompletedLessonIDs = []int{}
	}
	return &state, nil
}

func (s *RedisProgressStore) Save(ctx context.Context, userID uint, state *models.ProgressState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode progress: %w", err)
	}
	// No TTL: progress lives until an explicit reset.
	if err := s.client.Set(ctx, progressKey(userID), data, 0).Err(); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

func (s *RedisProgressStore) Delete(ctx context.Context, userID uint) error {
	if err := s.client.Del(ctx, progressKey(userID)).Err(); err != nil {
		return fmt.Errorf("delete progress: %w", err)
	}
	return nil
}
