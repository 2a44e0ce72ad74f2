package cart

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// MemoryPersister keeps carts in process memory. Used by tests and as a
// fallback when Redis is not configured.
type MemoryPersister struct {
	mu    sync.RWMutex
	carts map[string][]byte
}

func NewMemoryPersister() *MemoryPersister {
	return &MemoryPersister{carts: make(map[string][]byte)}
}

func (m *MemoryPersister) Save(_ context.Context, key string, lines []Line) error {
	data, err := json.Marshal(lines)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.carts[key] = data
	return nil
}

func (m *MemoryPersister) Load(_ context.Context, key string) ([]Line, error) {
	m.mu.RLock()
	data, ok := m.carts[key]
	m.mu.RUnlock()

	if !ok {
		return nil, nil
	}

	var lines []Line
	if err := json.Unmarshal(data, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func (m *MemoryPersister) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.carts, key)
	return nil
}

// RedisPersister stores each cart as one JSON value under its own key,
// namespaced apart from theme state.
type RedisPersister struct {
	client *redis.Client
	ttl    time.Duration
}

const redisKeyPrefix = "cart:"

// Carts of visitors who never return are dropped after 30 days.
const defaultCartTTL = 30 * 24 * time.Hour

func NewRedisPersister(client *redis.Client) *RedisPersister {
	return &RedisPersister{client: client, ttl: defaultCartTTL}
}

func (r *RedisPersister) Save(ctx context.Context, key string, lines []Line) error {
	data, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, redisKeyPrefix+key, data, r.ttl).Err()
}

func (r *RedisPersister) Load(ctx context.Context, key string) ([]Line, error) {
	data, err := r.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var lines []Line
	if err := json.Unmarshal(data, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func (r *RedisPersister) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, redisKeyPrefix+key).Err()
}
