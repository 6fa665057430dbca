package bootstrap

import (
	"smartstay-gateway/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	StartupModule,
	components.GatewayModule,
	components.UseCaseModule,
	components.HandlerModule,
)
