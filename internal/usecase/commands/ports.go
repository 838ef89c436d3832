package commands

import (
	"context"

	"artshop/internal/domain/catalog"
	"artshop/internal/domain/order"
	"artshop/internal/domain/review"
	"artshop/internal/domain/user"
	"artshop/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderEngine is the transactional order-placement core. An error return means
// nothing was persisted.
type OrderEngine interface {
	PlaceOrder(ctx context.Context, req *order.Request) (uuid.UUID, error)
}

// UpdateArtworkParams carries the optional fields of an admin update; nil
// fields are left untouched.
type UpdateArtworkParams struct {
	Title       *string
	Description *string
	Price       *decimal.Decimal
	CategoryID  *uuid.UUID
	Stock       *int
	ImageURL    *string
}

type CatalogRepository interface {
	CreateArtwork(ctx context.Context, a *catalog.Artwork, initialStock int) (uuid.UUID, error)
	UpdateArtwork(ctx context.Context, id uuid.UUID, params UpdateArtworkParams) error
	DeleteArtwork(ctx context.Context, id uuid.UUID) error
}

type ReviewRepository interface {
	Create(ctx context.Context, rev *review.Review) (uuid.UUID, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, userID uuid.UUID) error
}

type UserReads interface {
	FindByUsername(ctx context.Context, username string) (*queries.AuthorizedUserView, string, error)
	FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
}

type CatalogReads interface {
	FindArtworkByID(ctx context.Context, id uuid.UUID) (*queries.ArtworkView, error)
	CategoryIDByName(ctx context.Context, name string) (uuid.UUID, error)
}

// CacheInvalidator drops derived cache entries after a committed write.
// Invalidation is best-effort: failures are logged, never propagated, so a
// flaky cache can serve stale data for at most one TTL but cannot fail writes.
type CacheInvalidator interface {
	Invalidate(ctx context.Context, key string) error
}

// EventPublisher fans out notification events. Fire-and-forget by contract.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, event any)
}

// SessionStore issues and revokes opaque bearer tokens.
type SessionStore interface {
	Issue(ctx context.Context, userID uuid.UUID, username string, role user.Role) (string, error)
	Revoke(ctx context.Context, userID uuid.UUID) error
}
