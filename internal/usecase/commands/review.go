package commands

import (
	"context"
	"log/slog"

	"artshop/internal/domain/review"
	"artshop/internal/infra"
	"artshop/internal/infra/cache"
	"artshop/internal/infra/notify"
	"artshop/internal/pkg/clock"
	"artshop/internal/pkg/errs"

	"github.com/google/uuid"
)

type CreateReviewInput struct {
	ArtworkID uuid.UUID
	Rating    int
	Comment   string
}

type ReviewCommands interface {
	Create(ctx context.Context, userID uuid.UUID, input CreateReviewInput) (uuid.UUID, error)
}

type reviewCommandsImpl struct {
	repo      ReviewRepository
	catalog   CatalogReads
	cache     CacheInvalidator
	publisher EventPublisher
	clock     clock.Clock
}

func NewReviewCommands(repo ReviewRepository, catalogReads CatalogReads, cacheStore CacheInvalidator, publisher EventPublisher, clk clock.Clock) ReviewCommands {
	return &reviewCommandsImpl{
		repo:      repo,
		catalog:   catalogReads,
		cache:     cacheStore,
		publisher: publisher,
		clock:     clk,
	}
}

func (c *reviewCommandsImpl) Create(ctx context.Context, userID uuid.UUID, input CreateReviewInput) (uuid.UUID, error) {
	if _, err := c.catalog.FindArtworkByID(ctx, input.ArtworkID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, errs.Mark(err, errs.ErrArtworkNotFound)
		}
		return uuid.Nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}

	rev, err := review.NewReview(userID, input.ArtworkID, input.Rating, input.Comment, c.clock.Now())
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	id, err := c.repo.Create(ctx, rev)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}

	if err := c.cache.Invalidate(ctx, cache.KeyArtworkReviews(input.ArtworkID)); err != nil {
		slog.Warn("failed to invalidate review cache",
			"artwork_id", input.ArtworkID.String(), "error", err.Error())
	}
	c.publisher.Publish(ctx, notify.TopicReviews, notify.NewReview(input.ArtworkID, input.Rating))

	return id, nil
}
