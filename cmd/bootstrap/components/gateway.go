package components

import (
	"smartstay-gateway/internal/handler/api"
	"smartstay-gateway/internal/infra/gemini"
	"smartstay-gateway/internal/infra/liteapi"
	"smartstay-gateway/internal/infra/metrics"
	"smartstay-gateway/internal/pkg/clock"
	"smartstay-gateway/internal/usecase/assistant"
	"smartstay-gateway/internal/usecase/commands"
	"smartstay-gateway/internal/usecase/queries"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		clock.NewRealClock,
		metrics.NewRecorder,
		// Inventory vendor
		fx.Annotate(
			liteapi.NewClient,
			fx.As(fx.Self()),
			fx.As(new(queries.InventoryReader)),
			fx.As(new(commands.BookingWriter)),
			fx.As(new(api.LiteAPIProbe)),
		),
		// Generative-AI vendor
		fx.Annotate(
			gemini.NewClient,
			fx.As(fx.Self()),
			fx.As(new(assistant.Generator)),
			fx.As(new(api.GeminiProbe)),
		),
	),
)
