package cache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Outcome distinguishes a true miss from a read degraded by a cache failure.
// Callers treat both as "go to the durable store", but tests and logs can tell
// them apart.
type Outcome int

const (
	Hit Outcome = iota
	Miss
	Degraded
)

func (o Outcome) String() string {
	switch o {
	case Hit:
		return "hit"
	case Miss:
		return "miss"
	case Degraded:
		return "degraded"
	default:
		return "unknown"
	}
}

// commands is the slice of go-redis used by the store. *redis.Client satisfies
// it; unit tests fake it with the redis.New*Result helpers.
type commands interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// Store is a cache-aside key-value layer over Redis. It is never authoritative:
// absence is always a valid state, and every failure degrades to the durable
// store instead of surfacing to the caller.
type Store struct {
	client commands
	ttl    time.Duration
}

func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

func newStoreWithCommands(client commands, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

// Get returns the cached payload for key. A nil payload with Miss means the
// key is absent; Degraded means the cache itself failed and the caller should
// fall through to the durable store.
func (s *Store) Get(ctx context.Context, key string) ([]byte, Outcome) {
	val, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, Miss
		}
		slog.Warn("cache read failed, degrading to store", "key", key, "error", err.Error())
		return nil, Degraded
	}
	return val, Hit
}

// Set stores payload under key with the configured TTL. Errors are returned so
// the caller can log them, but no caller treats them as fatal.
func (s *Store) Set(ctx context.Context, key string, payload []byte) error {
	return s.client.Set(ctx, key, payload, s.ttl).Err()
}

// Invalidate removes key. Deleting an absent key is a no-op, never an error.
func (s *Store) Invalidate(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}

func (s *Store) TTL() time.Duration {
	return s.ttl
}
