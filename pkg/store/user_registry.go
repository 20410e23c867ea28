package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
)

// MemoryUserRegistry keeps the registered-user set in memory.
type MemoryUserRegistry struct {
	mu    sync.RWMutex
	users map[string]struct{}
}

// NewMemoryUserRegistry constructs an in-memory user registry.
func NewMemoryUserRegistry() *MemoryUserRegistry {
	return &MemoryUserRegistry{users: make(map[string]struct{})}
}

// MarkRegistered records the user id. Repeated calls are no-ops.
func (r *MemoryUserRegistry) MarkRegistered(_ context.Context, userID string) error {
	r.mu.Lock()
	r.users[userID] = struct{}{}
	r.mu.Unlock()
	return nil
}

// IsRegistered reports whether the user id was ever marked.
func (r *MemoryUserRegistry) IsRegistered(_ context.Context, userID string) (bool, error) {
	r.mu.RLock()
	_, ok := r.users[userID]
	r.mu.RUnlock()
	return ok, nil
}

// Close is a no-op for the in-memory registry.
func (r *MemoryUserRegistry) Close() error {
	return nil
}

// RedisUserRegistry stores the registered-user set in Redis, one key per
// user id under the "users:" namespace.
type RedisUserRegistry struct {
	client *redis.Client
}

// NewRedisUserRegistry builds a Redis-backed user registry.
func NewRedisUserRegistry(addr, password string) *RedisUserRegistry {
	return &RedisUserRegistry{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
		}),
	}
}

// MarkRegistered writes the membership key. SetNX keeps the first write and
// makes repeated marks no-ops; entries never expire.
func (r *RedisUserRegistry) MarkRegistered(ctx context.Context, userID string) error {
	if err := r.client.SetNX(ctx, userRedisKey(userID), userID, 0).Err(); err != nil {
		return fmt.Errorf("mark registered: %w", err)
	}
	return nil
}

// IsRegistered reports whether the membership key exists.
func (r *RedisUserRegistry) IsRegistered(ctx context.Context, userID string) (bool, error) {
	n, err := r.client.Exists(ctx, userRedisKey(userID)).Result()
	if err != nil {
		return false, fmt.Errorf("check registered: %w", err)
	}
	return n > 0, nil
}

// Close releases the underlying client.
func (r *RedisUserRegistry) Close() error {
	return r.client.Close()
}

func userRedisKey(userID string) string {
	return fmt.Sprintf("users:%s", userID)
}
