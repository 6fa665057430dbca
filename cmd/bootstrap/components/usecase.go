package components

import (
	"smartstay-gateway/internal/usecase"
	"smartstay-gateway/internal/usecase/assistant"
	"smartstay-gateway/internal/usecase/commands"
	"smartstay-gateway/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseQueriesModule,
	usecaseCommandsModule,
	usecaseAssistantModule,
	usecaseFlowModule,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewHotelQueries,
		queries.NewBookingQueries,
		queries.NewReferenceQueries,
	),
)

var usecaseAssistantModule = fx.Module("usecase/assistant",
	fx.Provide(
		assistant.NewAssistant,
	),
)

// The wizard runs client-side; the gateway adapter lets it drive the same use cases.
var usecaseFlowModule = fx.Module("usecase/flow",
	fx.Provide(
		usecase.NewFlowGateway,
	),
)
