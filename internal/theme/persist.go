package theme

import (
	"context"
	"errors"
	"sync"

	"github.com/redis/go-redis/v9"
)

// MemoryPersister keeps preferences in process memory.
type MemoryPersister struct {
	mu    sync.RWMutex
	modes map[string]Mode
}

func NewMemoryPersister() *MemoryPersister {
	return &MemoryPersister{modes: make(map[string]Mode)}
}

func (m *MemoryPersister) Save(_ context.Context, key string, mode Mode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.modes[key] = mode
	return nil
}

func (m *MemoryPersister) Load(_ context.Context, key string) (Mode, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.modes[key], nil
}

// RedisPersister namespaces theme state apart from carts. Preferences
// have no TTL; a theme choice should outlive an abandoned cart.
type RedisPersister struct {
	client *redis.Client
}

const redisKeyPrefix = "theme:"

func NewRedisPersister(client *redis.Client) *RedisPersister {
	return &RedisPersister{client: client}
}

func (r *RedisPersister) Save(ctx context.Context, key string, mode Mode) error {
	return r.client.Set(ctx, redisKeyPrefix+key, string(mode), 0).Err()
}

func (r *RedisPersister) Load(ctx context.Context, key string) (Mode, error) {
	val, err := r.client.Get(ctx, redisKeyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return Mode(val), nil
}
