package queries

import (
	"context"
	"encoding/json"
	"log/slog"

	"artshop/internal/infra/cache"

	"github.com/google/uuid"
)

type ReviewReadStore interface {
	ListByArtwork(ctx context.Context, artworkID uuid.UUID) ([]*ReviewView, error)
}

type ReviewQueries interface {
	ListByArtwork(ctx context.Context, artworkID uuid.UUID) ([]*ReviewView, error)
}

type reviewQueriesImpl struct {
	store ReviewReadStore
	cache CacheStore
}

func NewReviewQueries(store ReviewReadStore, cacheStore CacheStore) ReviewQueries {
	return &reviewQueriesImpl{store: store, cache: cacheStore}
}

func (q *reviewQueriesImpl) ListByArtwork(ctx context.Context, artworkID uuid.UUID) ([]*ReviewView, error) {
	key := cache.KeyArtworkReviews(artworkID)

	if payload, outcome := q.cache.Get(ctx, key); outcome == cache.Hit {
		var items []*ReviewView
		if err := json.Unmarshal(payload, &items); err == nil {
			return items, nil
		}
		slog.Warn("discarding corrupt review cache entry", "artwork_id", artworkID.String())
	}

	items, err := q.store.ListByArtwork(ctx, artworkID)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(items); err == nil {
		if err := q.cache.Set(ctx, key, payload); err != nil {
			slog.Warn("failed to populate review cache", "artwork_id", artworkID.String(), "error", err.Error())
		}
	}
	return items, nil
}
