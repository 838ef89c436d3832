package repository

import (
	"context"
	"errors"
	"log/slog"

	"artshop/internal/domain/catalog"
	"artshop/internal/infra"
	"artshop/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CatalogRepository mutates artworks together with their stock records, which
// always travel in the same transaction.
type CatalogRepository struct {
	pool *pgxpool.Pool
}

func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{pool: pool}
}

func (r *CatalogRepository) CreateArtwork(ctx context.Context, a *catalog.Artwork, initialStock int) (uuid.UUID, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to begin catalog transaction", err)
	}
	defer rollback(ctx, tx)

	var id uuid.UUID
	err = tx.QueryRow(ctx,
		`INSERT INTO artworks (id, title, description, price, category_id, image_url, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $7) RETURNING id`,
		a.ID(), a.Title().Value(), a.Description(), a.Price().Amount(), a.CategoryID(), a.ImageURL(), a.CreatedAt()).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create artwork", err)
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO inventory (artwork_id, quantity) VALUES ($1, $2)`,
		id, initialStock); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create stock record", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to commit catalog transaction", err)
	}
	return id, nil
}

func (r *CatalogRepository) UpdateArtwork(ctx context.Context, id uuid.UUID, params commands.UpdateArtworkParams) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return infra.WrapRepoErr("failed to begin catalog transaction", err)
	}
	defer rollback(ctx, tx)

	tag, err := tx.Exec(ctx,
		`UPDATE artworks SET
		   title       = COALESCE($2, title),
		   description = COALESCE($3, description),
		   price       = COALESCE($4, price),
		   category_id = COALESCE($5, category_id),
		   image_url   = COALESCE($6, image_url),
		   updated_at  = now()
		 WHERE id = $1`,
		id, params.Title, params.Description, params.Price, params.CategoryID, params.ImageURL)
	if err != nil {
		return infra.WrapRepoErr("failed to update artwork", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("artwork not found", pgx.ErrNoRows, infra.KindNotFound)
	}

	if params.Stock != nil {
		if _, err := tx.Exec(ctx,
			`UPDATE inventory SET quantity = $2 WHERE artwork_id = $1`,
			id, *params.Stock); err != nil {
			return infra.WrapRepoErr("failed to update stock record", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("failed to commit catalog transaction", err)
	}
	return nil
}

// DeleteArtwork removes the stock record and the artwork. Artworks referenced
// by order lines are protected by the foreign key and surface as
// KindForeignKeyViolated.
func (r *CatalogRepository) DeleteArtwork(ctx context.Context, id uuid.UUID) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return infra.WrapRepoErr("failed to begin catalog transaction", err)
	}
	defer rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM inventory WHERE artwork_id = $1`, id); err != nil {
		return infra.WrapRepoErr("failed to delete stock record", err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM artworks WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete artwork", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("artwork not found", pgx.ErrNoRows, infra.KindNotFound)
	}

	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("failed to commit catalog transaction", err)
	}
	return nil
}

func rollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil {
		if !errors.Is(err, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback transaction", "error", err.Error())
		}
	}
}
