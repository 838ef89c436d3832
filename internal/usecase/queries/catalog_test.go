//go:build unit

package queries_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"artshop/internal/infra/cache"
	"artshop/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decimals compare by value, not representation
var cmpDecimal = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

type fakeReadStore struct {
	items []*queries.ArtworkView
	err   error
	calls int
}

func (f *fakeReadStore) ListArtworks(ctx context.Context) ([]*queries.ArtworkView, error) {
	f.calls++
	return f.items, f.err
}

type fakeCache struct {
	payload []byte
	outcome cache.Outcome
	setKey  string
	setData []byte
	setErr  error
}

func (f *fakeCache) Get(ctx context.Context, key string) ([]byte, cache.Outcome) {
	return f.payload, f.outcome
}

func (f *fakeCache) Set(ctx context.Context, key string, payload []byte) error {
	f.setKey = key
	f.setData = payload
	return f.setErr
}

func sampleViews() []*queries.ArtworkView {
	return []*queries.ArtworkView{
		{
			ID:       uuid.New(),
			Title:    "Nocturne",
			Price:    decimal.NewFromInt(250),
			Category: "painting",
			Stock:    3,
		},
	}
}

func TestCatalogQueries_List(t *testing.T) {
	ctx := context.Background()

	t.Run("hit never touches the durable store", func(t *testing.T) {
		items := sampleViews()
		payload, err := json.Marshal(items)
		require.NoError(t, err)

		store := &fakeReadStore{}
		q := queries.NewCatalogQueries(store, &fakeCache{payload: payload, outcome: cache.Hit})

		got, err := q.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, cmp.Diff(items, got, cmpDecimal))
		assert.Zero(t, store.calls)
	})

	t.Run("miss reads the store and repopulates the cache", func(t *testing.T) {
		items := sampleViews()
		store := &fakeReadStore{items: items}
		c := &fakeCache{outcome: cache.Miss}
		q := queries.NewCatalogQueries(store, c)

		got, err := q.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, items, got)
		assert.Equal(t, 1, store.calls)
		assert.Equal(t, cache.KeyCatalogListing, c.setKey)
		assert.NotEmpty(t, c.setData)
	})

	t.Run("degraded cache falls through to the store", func(t *testing.T) {
		items := sampleViews()
		store := &fakeReadStore{items: items}
		q := queries.NewCatalogQueries(store, &fakeCache{outcome: cache.Degraded})

		got, err := q.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, items, got)
		assert.Equal(t, 1, store.calls)
	})

	t.Run("corrupt cache entry is treated as a miss", func(t *testing.T) {
		items := sampleViews()
		store := &fakeReadStore{items: items}
		c := &fakeCache{payload: []byte("{not json"), outcome: cache.Hit}
		q := queries.NewCatalogQueries(store, c)

		got, err := q.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, items, got)
		assert.Equal(t, 1, store.calls)
	})

	t.Run("cache population failure is not fatal", func(t *testing.T) {
		store := &fakeReadStore{items: sampleViews()}
		q := queries.NewCatalogQueries(store, &fakeCache{outcome: cache.Miss, setErr: errors.New("connection refused")})

		got, err := q.List(ctx)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("store failure surfaces when cache misses", func(t *testing.T) {
		store := &fakeReadStore{err: errors.New("connection reset")}
		q := queries.NewCatalogQueries(store, &fakeCache{outcome: cache.Miss})

		_, err := q.List(ctx)
		require.Error(t, err)
	})
}
