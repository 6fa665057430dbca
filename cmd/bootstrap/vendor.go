package bootstrap

import (
	"log/slog"

	"smartstay-gateway/internal/pkg/config"

	"go.uber.org/fx"
)

var StartupModule = fx.Module("startup",
	fx.Invoke(LogConfigSummary),
)

// LogConfigSummary prints what the gateway will talk to. Keys appear only as
// their last four characters.
func LogConfigSummary(cfg config.Config, logger *slog.Logger) {
	logger.Info("Gateway configuration",
		slog.String("port", cfg.Server.Port),
		slog.Any("client_origins", cfg.CORS.AllowOrigins),
		slog.String("liteapi_base_url", cfg.LiteAPI.BaseURL),
		slog.String("liteapi_auth_scheme", cfg.LiteAPI.AuthScheme),
		slog.String("liteapi_key_suffix", config.MaskSecret(cfg.LiteAPI.Key)),
		slog.String("gemini_model", cfg.Gemini.Model),
		slog.Any("gemini_fallback_models", cfg.Gemini.FallbackModels),
		slog.String("gemini_key_suffix", config.MaskSecret(cfg.Gemini.Key())),
	)
	if cfg.LiteAPI.Key == "" {
		logger.Warn("LITEAPI_KEY is not set; inventory calls will fail with a configuration error")
	}
	if cfg.Gemini.Key() == "" {
		logger.Warn("GEMINI_API_KEY is not set; AI calls will fail with a configuration error")
	}
}
