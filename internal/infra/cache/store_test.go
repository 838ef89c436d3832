//go:build unit

package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCommands is an in-memory stand-in for the go-redis client. Setting
// failWith makes every call fail, simulating an unreachable cache.
type fakeCommands struct {
	data     map[string]string
	failWith error
	setCalls int
	delCalls int
}

func newFakeCommands() *fakeCommands {
	return &fakeCommands{data: map[string]string{}}
}

func (f *fakeCommands) Get(ctx context.Context, key string) *redis.StringCmd {
	if f.failWith != nil {
		return redis.NewStringResult("", f.failWith)
	}
	val, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(val, nil)
}

func (f *fakeCommands) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	f.setCalls++
	if f.failWith != nil {
		return redis.NewStatusResult("", f.failWith)
	}
	switch v := value.(type) {
	case []byte:
		f.data[key] = string(v)
	case string:
		f.data[key] = v
	}
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeCommands) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	f.delCalls++
	if f.failWith != nil {
		return redis.NewIntResult(0, f.failWith)
	}
	var removed int64
	for _, key := range keys {
		if _, ok := f.data[key]; ok {
			delete(f.data, key)
			removed++
		}
	}
	return redis.NewIntResult(removed, nil)
}

func TestStore_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("hit returns the stored payload", func(t *testing.T) {
		fake := newFakeCommands()
		store := newStoreWithCommands(fake, time.Minute)

		require.NoError(t, store.Set(ctx, "k", []byte(`{"a":1}`)))

		payload, outcome := store.Get(ctx, "k")
		assert.Equal(t, Hit, outcome)
		assert.Equal(t, []byte(`{"a":1}`), payload)
	})

	t.Run("absent key is a miss", func(t *testing.T) {
		store := newStoreWithCommands(newFakeCommands(), time.Minute)

		payload, outcome := store.Get(ctx, "nope")
		assert.Equal(t, Miss, outcome)
		assert.Nil(t, payload)
	})

	t.Run("cache failure degrades instead of erroring", func(t *testing.T) {
		fake := newFakeCommands()
		fake.failWith = errors.New("connection refused")
		store := newStoreWithCommands(fake, time.Minute)

		payload, outcome := store.Get(ctx, "k")
		assert.Equal(t, Degraded, outcome)
		assert.Nil(t, payload)
	})
}

func TestStore_Set(t *testing.T) {
	ctx := context.Background()

	t.Run("set failure is returned to the caller", func(t *testing.T) {
		fake := newFakeCommands()
		fake.failWith = errors.New("connection refused")
		store := newStoreWithCommands(fake, time.Minute)

		require.Error(t, store.Set(ctx, "k", []byte("v")))
	})
}

func TestStore_Invalidate(t *testing.T) {
	ctx := context.Background()

	t.Run("removes the key", func(t *testing.T) {
		fake := newFakeCommands()
		store := newStoreWithCommands(fake, time.Minute)

		require.NoError(t, store.Set(ctx, "k", []byte("v")))
		require.NoError(t, store.Invalidate(ctx, "k"))

		_, outcome := store.Get(ctx, "k")
		assert.Equal(t, Miss, outcome)
	})

	t.Run("absent key is a no-op", func(t *testing.T) {
		store := newStoreWithCommands(newFakeCommands(), time.Minute)
		require.NoError(t, store.Invalidate(ctx, "never-set"))
	})
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "hit", Hit.String())
	assert.Equal(t, "miss", Miss.String())
	assert.Equal(t, "degraded", Degraded.String())
}
