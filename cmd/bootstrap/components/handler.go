package components

import (
	"smartstay-gateway/internal/handler"
	"smartstay-gateway/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewHotelHandler,
		api.NewBookingHandler,
		api.NewReferenceHandler,
		api.NewAssistantHandler,
		api.NewHealthHandler,
		handler.NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)
