package components

import (
	"artshop/internal/infra/db"
	"artshop/internal/infra/readstore"
	repo_impl "artshop/internal/infra/repository"
	"artshop/internal/usecase/commands"
	"artshop/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		// Order placement engine
		fx.Annotate(
			repo_impl.NewOrderRepository,
			fx.As(new(commands.OrderEngine)),
		),
		// User
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(commands.UserReads)),
			fx.As(new(queries.UserReadStore)),
		),
		// Catalog
		fx.Annotate(
			repo_impl.NewCatalogRepository,
			fx.As(new(commands.CatalogRepository)),
		),
		fx.Annotate(
			readstore.NewCatalogReadStore,
			fx.As(new(commands.CatalogReads)),
			fx.As(new(queries.CatalogReadStore)),
		),
		// Order read side
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(queries.OrderReadStore)),
		),
		// Review
		fx.Annotate(
			repo_impl.NewReviewRepository,
			fx.As(new(commands.ReviewRepository)),
		),
		fx.Annotate(
			readstore.NewReviewReadStore,
			fx.As(new(queries.ReviewReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
