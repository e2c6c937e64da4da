package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"fest-proposal-service/internal/model"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const eventCacheTTL = 10 * time.Minute

// RedisEventCacheManager is a read-through cache for live events. Browsing
// and registration both resolve events far more often than an approval
// rewrites one, so event reads are served from redis and the entry is
// dropped whenever a proposal lands.
type RedisEventCacheManager interface {
	// Get returns the cached event, or nil on a miss.
	Get(ctx context.Context, eventID uuid.UUID) (*model.Event, error)
	Set(ctx context.Context, event *model.Event) error
	// Invalidate drops the entry. Idempotent: deleting a missing key is fine.
	Invalidate(ctx context.Context, eventID uuid.UUID) error
}

type RedisEventCacheManagerImpl struct {
	client *redis.Client
}

func NewRedisEventCacheManager(client *redis.Client) RedisEventCacheManager {
	return &RedisEventCacheManagerImpl{
		client: client,
	}
}

func (m *RedisEventCacheManagerImpl) getEventKey(eventID uuid.UUID) string {
	return fmt.Sprintf("event:%s", eventID)
}

func (m *RedisEventCacheManagerImpl) Get(ctx context.Context, eventID uuid.UUID) (*model.Event, error) {
	raw, err := m.client.Get(ctx, m.getEventKey(eventID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var event model.Event
	if err := json.Unmarshal([]byte(raw), &event); err != nil {
		// A corrupt entry behaves like a miss; the caller will re-fetch and
		// overwrite it.
		return nil, nil
	}
	return &event, nil
}

func (m *RedisEventCacheManagerImpl) Set(ctx context.Context, event *model.Event) error {
	raw, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return m.client.Set(ctx, m.getEventKey(event.ID), raw, eventCacheTTL).Err()
}

func (m *RedisEventCacheManagerImpl) Invalidate(ctx context.Context, eventID uuid.UUID) error {
	return m.client.Del(ctx, m.getEventKey(eventID)).Err()
}
