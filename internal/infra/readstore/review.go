package readstore

import (
	"context"

	"artshop/internal/infra"
	"artshop/internal/infra/db"
	"artshop/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewReadStore struct {
	db db.DBTX
}

func NewReviewReadStore(dbtx db.DBTX) *ReviewReadStore {
	return &ReviewReadStore{db: dbtx}
}

const listReviewsByArtworkSQL = `
SELECT r.id, r.rating, r.comment, u.username, r.created_at
FROM reviews r
JOIN users u ON u.id = r.user_id
WHERE r.artwork_id = $1
ORDER BY r.created_at DESC, r.id`

// ListByArtwork reads all reviews for one artwork, newest first. This is the
// per-item query the cache layer fronts.
func (r *ReviewReadStore) ListByArtwork(ctx context.Context, artworkID uuid.UUID) ([]*queries.ReviewView, error) {
	rows, err := r.db.Query(ctx, listReviewsByArtworkSQL, artworkID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews by artwork", err)
	}
	defer rows.Close()

	var items []*queries.ReviewView
	for rows.Next() {
		var v queries.ReviewView
		if err := rows.Scan(&v.ID, &v.Rating, &v.Comment, &v.Username, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan review row", err)
		}
		items = append(items, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate review rows", err)
	}
	return items, nil
}
