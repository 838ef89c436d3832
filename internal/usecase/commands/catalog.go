package commands

import (
	"context"
	"log/slog"

	"artshop/internal/domain/catalog"
	"artshop/internal/infra"
	"artshop/internal/infra/cache"
	"artshop/internal/infra/notify"
	"artshop/internal/pkg/clock"
	"artshop/internal/pkg/errs"

	"github.com/google/uuid"
)

type CreateArtworkInput struct {
	Title       string
	Description string
	Price       string
	Category    string
	Stock       int
	ImageURL    *string
}

type UpdateArtworkInput struct {
	Title       *string
	Description *string
	Price       *string
	Category    *string
	Stock       *int
	ImageURL    *string
}

type CatalogCommands interface {
	CreateArtwork(ctx context.Context, input CreateArtworkInput) (uuid.UUID, error)
	UpdateArtwork(ctx context.Context, id uuid.UUID, input UpdateArtworkInput) error
	DeleteArtwork(ctx context.Context, id uuid.UUID) error
}

type catalogCommandsImpl struct {
	repo      CatalogRepository
	reads     CatalogReads
	cache     CacheInvalidator
	publisher EventPublisher
	clock     clock.Clock
}

func NewCatalogCommands(repo CatalogRepository, reads CatalogReads, cacheStore CacheInvalidator, publisher EventPublisher, clk clock.Clock) CatalogCommands {
	return &catalogCommandsImpl{
		repo:      repo,
		reads:     reads,
		cache:     cacheStore,
		publisher: publisher,
		clock:     clk,
	}
}

func (c *catalogCommandsImpl) CreateArtwork(ctx context.Context, input CreateArtworkInput) (uuid.UUID, error) {
	title, err := catalog.NewTitle(input.Title)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	price, err := catalog.NewPriceFromString(input.Price)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if input.Stock < 0 {
		return uuid.Nil, errs.Mark(catalog.ErrNegativeStock, errs.ErrDomainValidation)
	}

	categoryID, err := c.reads.CategoryIDByName(ctx, input.Category)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, errs.Mark(err, errs.ErrCategoryNotFound)
		}
		return uuid.Nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}

	artwork := catalog.NewArtwork(title, input.Description, price, categoryID, input.ImageURL, c.clock.Now())

	id, err := c.repo.CreateArtwork(ctx, artwork, input.Stock)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}

	c.invalidateListing(ctx, id)
	c.publisher.Publish(ctx, notify.TopicArtworks, notify.NewArtwork(id, title.Value(), price.Amount()))

	return id, nil
}

func (c *catalogCommandsImpl) UpdateArtwork(ctx context.Context, id uuid.UUID, input UpdateArtworkInput) error {
	params := UpdateArtworkParams{
		Description: input.Description,
		ImageURL:    input.ImageURL,
	}

	if input.Title != nil {
		title, err := catalog.NewTitle(*input.Title)
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		v := title.Value()
		params.Title = &v
	}

	if input.Price != nil {
		price, err := catalog.NewPriceFromString(*input.Price)
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		amount := price.Amount()
		params.Price = &amount
	}

	if input.Stock != nil {
		if *input.Stock < 0 {
			return errs.Mark(catalog.ErrNegativeStock, errs.ErrDomainValidation)
		}
		params.Stock = input.Stock
	}

	if input.Category != nil {
		categoryID, err := c.reads.CategoryIDByName(ctx, *input.Category)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrCategoryNotFound)
			}
			return errs.Mark(err, errs.ErrStoreUnavailable)
		}
		params.CategoryID = &categoryID
	}

	if err := c.repo.UpdateArtwork(ctx, id, params); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrArtworkNotFound)
		}
		return errs.Mark(err, errs.ErrStoreUnavailable)
	}

	c.invalidateListing(ctx, id)
	return nil
}

func (c *catalogCommandsImpl) DeleteArtwork(ctx context.Context, id uuid.UUID) error {
	if err := c.repo.DeleteArtwork(ctx, id); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return errs.Mark(err, errs.ErrArtworkNotFound)
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return errs.Mark(err, errs.ErrArtworkInUse)
		default:
			return errs.Mark(err, errs.ErrStoreUnavailable)
		}
	}

	c.invalidateListing(ctx, id)
	if err := c.cache.Invalidate(ctx, cache.KeyArtworkReviews(id)); err != nil {
		slog.Warn("failed to invalidate review cache", "artwork_id", id.String(), "error", err.Error())
	}
	return nil
}

func (c *catalogCommandsImpl) invalidateListing(ctx context.Context, artworkID uuid.UUID) {
	if err := c.cache.Invalidate(ctx, cache.KeyCatalogListing); err != nil {
		slog.Warn("failed to invalidate catalog listing",
			"artwork_id", artworkID.String(), "error", err.Error())
	}
}
