package readstore

import (
	"context"
	"errors"

	"artshop/internal/infra"
	"artshop/internal/infra/db"
	"artshop/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CatalogReadStore struct {
	db db.DBTX
}

func NewCatalogReadStore(dbtx db.DBTX) *CatalogReadStore {
	return &CatalogReadStore{db: dbtx}
}

const listArtworksSQL = `
SELECT a.id, a.title, a.description, a.price, c.name, i.quantity, a.image_url
FROM artworks a
JOIN categories c ON c.id = a.category_id
JOIN inventory i ON i.artwork_id = a.id
ORDER BY a.created_at DESC, a.id`

// ListArtworks reads the full catalog listing with live stock. This is the
// expensive query the cache layer fronts.
func (r *CatalogReadStore) ListArtworks(ctx context.Context) ([]*queries.ArtworkView, error) {
	rows, err := r.db.Query(ctx, listArtworksSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list artworks", err)
	}
	defer rows.Close()

	var items []*queries.ArtworkView
	for rows.Next() {
		var v queries.ArtworkView
		if err := rows.Scan(&v.ID, &v.Title, &v.Description, &v.Price, &v.Category, &v.Stock, &v.ImageURL); err != nil {
			return nil, infra.WrapRepoErr("failed to scan artwork row", err)
		}
		items = append(items, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate artwork rows", err)
	}
	return items, nil
}

func (r *CatalogReadStore) FindArtworkByID(ctx context.Context, id uuid.UUID) (*queries.ArtworkView, error) {
	const sql = `
SELECT a.id, a.title, a.description, a.price, c.name, i.quantity, a.image_url
FROM artworks a
JOIN categories c ON c.id = a.category_id
JOIN inventory i ON i.artwork_id = a.id
WHERE a.id = $1`

	var v queries.ArtworkView
	err := r.db.QueryRow(ctx, sql, id).Scan(
		&v.ID, &v.Title, &v.Description, &v.Price, &v.Category, &v.Stock, &v.ImageURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("artwork not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get artwork by id", err)
	}
	return &v, nil
}

func (r *CatalogReadStore) CategoryIDByName(ctx context.Context, name string) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, `SELECT id FROM categories WHERE name = $1`, name).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, infra.WrapRepoErr("category not found", err, infra.KindNotFound)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to get category by name", err)
	}
	return id, nil
}
