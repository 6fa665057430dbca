package bootstrap

import (
	"log/slog"

	"smartstay-gateway/internal/handler/middleware"
	"smartstay-gateway/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

// NewLogger shares the request logger's handler so both write the same format.
func NewLogger(cfg config.Config) *slog.Logger {
	return middleware.NewLogger(cfg.Log).GetSlogLogger()
}
