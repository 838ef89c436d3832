package queries

import (
	"context"
	"encoding/json"
	"log/slog"

	"artshop/internal/infra/cache"
)

// CatalogReadStore is the durable-store side of the catalog read path.
type CatalogReadStore interface {
	ListArtworks(ctx context.Context) ([]*ArtworkView, error)
}

// CacheStore is the cache-aside layer the read path checks first.
type CacheStore interface {
	Get(ctx context.Context, key string) ([]byte, cache.Outcome)
	Set(ctx context.Context, key string, payload []byte) error
}

type CatalogQueries interface {
	List(ctx context.Context) ([]*ArtworkView, error)
}

type catalogQueriesImpl struct {
	store CatalogReadStore
	cache CacheStore
}

func NewCatalogQueries(store CatalogReadStore, cacheStore CacheStore) CatalogQueries {
	return &catalogQueriesImpl{store: store, cache: cacheStore}
}

// List serves the catalog listing cache-aside: a hit never touches the durable
// store; a miss (or degraded read) queries it and repopulates the cache.
func (q *catalogQueriesImpl) List(ctx context.Context) ([]*ArtworkView, error) {
	if payload, outcome := q.cache.Get(ctx, cache.KeyCatalogListing); outcome == cache.Hit {
		var items []*ArtworkView
		if err := json.Unmarshal(payload, &items); err == nil {
			return items, nil
		}
		// Unreadable payload: fall through as a miss and overwrite below.
		slog.Warn("discarding corrupt catalog cache entry")
	}

	items, err := q.store.ListArtworks(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(items); err == nil {
		if err := q.cache.Set(ctx, cache.KeyCatalogListing, payload); err != nil {
			slog.Warn("failed to populate catalog cache", "error", err.Error())
		}
	}
	return items, nil
}
