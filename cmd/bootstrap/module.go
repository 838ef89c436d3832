package bootstrap

import (
	"artshop/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	RedisModule,
	components.PersistenceModule,
	components.RedisComponentsModule,
	components.UseCaseModule,
	components.HandlerModule,
)
