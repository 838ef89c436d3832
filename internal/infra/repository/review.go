package repository

import (
	"context"

	"artshop/internal/domain/review"
	"artshop/internal/infra"
	"artshop/internal/infra/db"

	"github.com/google/uuid"
)

type ReviewRepository struct {
	db db.DBTX
}

func NewReviewRepository(dbtx db.DBTX) *ReviewRepository {
	return &ReviewRepository{db: dbtx}
}

func (r *ReviewRepository) Create(ctx context.Context, rev *review.Review) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx,
		`INSERT INTO reviews (id, user_id, artwork_id, rating, comment, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		rev.ID(), rev.UserID(), rev.ArtworkID(), rev.Rating().Value(), rev.Comment().String(), rev.CreatedAt()).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create review", err)
	}
	return id, nil
}
