package components

import (
	"artshop/internal/handler/middleware"
	"artshop/internal/infra/cache"
	"artshop/internal/infra/notify"
	"artshop/internal/infra/session"
	"artshop/internal/pkg/config"
	"artshop/internal/usecase/commands"
	"artshop/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// RedisComponentsModule wires the three Redis-backed services: the cache-aside
// store, the session manager and the notification publisher.
var RedisComponentsModule = fx.Module("redis-components",
	fx.Provide(
		fx.Annotate(
			NewCacheStore,
			fx.As(new(queries.CacheStore)),
			fx.As(new(commands.CacheInvalidator)),
		),
		fx.Annotate(
			NewSessionManager,
			fx.As(new(commands.SessionStore)),
			fx.As(new(middleware.TokenValidator)),
		),
		fx.Annotate(
			notify.NewPublisher,
			fx.As(new(commands.EventPublisher)),
		),
	),
)

func NewCacheStore(client *redis.Client, cfg config.Config) *cache.Store {
	return cache.NewStore(client, cfg.Cache.TTL)
}

func NewSessionManager(client *redis.Client, cfg config.Config) *session.Manager {
	return session.NewManager(client, cfg.Session.TTL)
}
