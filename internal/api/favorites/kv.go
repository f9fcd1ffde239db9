package favorites

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
)

// The whole favorites set lives under one key, stored as a JSON array of
// spot IDs. Absence of the key means no favorites yet.
const favoritesKey = "userFavoriteSpots"

// KV persists the favorite spot ID list.
type KV interface {
	Load(ctx context.Context) ([]string, error)
	Save(ctx context.Context, ids []string) error
}

var _ KV = (*RedisKV)(nil)
var _ KV = (*MemoryKV)(nil)

type RedisKV struct {
	client *redis.Client
}

func NewRedisKV(client *redis.Client) *RedisKV {
	return &RedisKV{client: client}
}

func (kv *RedisKV) Load(ctx context.Context) ([]string, error) {
	raw, err := kv.client.Get(ctx, favoritesKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load favorites: %w", err)
	}
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, fmt.Errorf("failed to decode favorites: %w", err)
	}
	return ids, nil
}

func (kv *RedisKV) Save(ctx context.Context, ids []string) error {
	raw, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("failed to encode favorites: %w", err)
	}
	// No expiry: favorites survive restarts until removed.
	if err := kv.client.Set(ctx, favoritesKey, raw, 0).Err(); err != nil {
		return fmt.Errorf("failed to save favorites: %w", err)
	}
	return nil
}

// MemoryKV is an in-process KV for tests and redis-less development.
type MemoryKV struct {
	mu  sync.Mutex
	ids []string
	set bool
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{}
}

func (kv *MemoryKV) Load(ctx context.Context) ([]string, error) {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	if !kv.set {
		return nil, nil
	}
	out := make([]string, len(kv.ids))
	copy(out, kv.ids)
	return out, nil
}

func (kv *MemoryKV) Save(ctx context.Context, ids []string) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	kv.ids = make([]string, len(ids))
	copy(kv.ids, ids)
	kv.set = true
	return nil
}
