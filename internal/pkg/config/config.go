package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments with no safe fallback
// - default: Values common across all environments (timeouts, vendor URLs, etc.)
// - vendor credentials are optional: a missing key surfaces per call as a
//   configuration error and is reported by the health probes
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	CORS      CORSConfig
	Log       LogConfig
	LiteAPI   LiteAPIConfig
	Gemini    GeminiConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" default:"5000"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CLIENT_ORIGIN" default:"http://localhost:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Content-Type,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// Auth schemes understood by the inventory client.
const (
	AuthSchemeAPIKey = "apikey"
	AuthSchemeBearer = "bearer"
	AuthSchemeHMAC   = "hmac"
	AuthSchemeNone   = "none"
)

type LiteAPIConfig struct {
	BaseURL        string        `envconfig:"LITEAPI_BASE_URL" default:"https://api.liteapi.travel/v3.0"`
	Key            string        `envconfig:"LITEAPI_KEY"`
	AuthHeaderName string        `envconfig:"LITEAPI_AUTH_HEADER_NAME" default:"X-API-Key"`
	AuthScheme     string        `envconfig:"LITEAPI_AUTH_SCHEME" default:"apikey"`
	Timeout        time.Duration `envconfig:"LITEAPI_TIMEOUT" default:"20s"`
	HMACSecret     string        `envconfig:"LITEAPI_HMAC_SECRET"`
	HMACTTL        time.Duration `envconfig:"LITEAPI_HMAC_TTL" default:"5m"`
	DefaultCountry string        `envconfig:"LITEAPI_DEFAULT_COUNTRY" default:"IN"`
	// forwarded as the vendor's own `timeout` query parameter (seconds)
	VendorTimeout string `envconfig:"LITEAPI_VENDOR_TIMEOUT" default:"1.5"`
}

type GeminiConfig struct {
	APIKey         string        `envconfig:"GEMINI_API_KEY"`
	GoogleAPIKey   string        `envconfig:"GOOGLE_API_KEY"`
	Model          string        `envconfig:"GEMINI_MODEL" default:"gemini-1.5-flash"`
	FallbackModels []string      `envconfig:"GEMINI_FALLBACK_MODELS" default:"gemini-2.5-flash,gemini-1.5-flash"`
	BaseURL        string        `envconfig:"GEMINI_BASE_URL"`
	Timeout        time.Duration `envconfig:"GEMINI_TIMEOUT" default:"30s"`
}

// Key returns GEMINI_API_KEY, falling back to GOOGLE_API_KEY.
func (c GeminiConfig) Key() string {
	if c.APIKey != "" {
		return c.APIKey
	}
	return c.GoogleAPIKey
}

type RateLimitConfig struct {
	AIPerSecond float64 `envconfig:"RATE_LIMIT_AI_PER_SECOND" default:"2"`
	AIBurst     int     `envconfig:"RATE_LIMIT_AI_BURST" default:"10"`
}

// MaskSecret keeps only the last four characters of a secret for logs and probes.
func MaskSecret(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 4 {
		return s
	}
	return s[len(s)-4:]
}

func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		CORS: CORSConfig{
			AllowOrigins:  []string{"http://localhost:5173"},
			AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:  []string{"Content-Type", "Authorization"},
			ExposeHeaders: []string{"Content-Length"},
			MaxAge:        12 * time.Hour,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		LiteAPI: LiteAPIConfig{
			BaseURL:        "http://127.0.0.1:0/v3.0",
			Key:            "test-liteapi-key",
			AuthHeaderName: "X-API-Key",
			AuthScheme:     AuthSchemeAPIKey,
			Timeout:        5 * time.Second,
			HMACTTL:        5 * time.Minute,
			DefaultCountry: "IN",
			VendorTimeout:  "1.5",
		},
		Gemini: GeminiConfig{
			APIKey:         "test-gemini-key",
			Model:          "gemini-1.5-flash",
			FallbackModels: []string{"gemini-2.5-flash", "gemini-1.5-flash"},
			Timeout:        5 * time.Second,
		},
		RateLimit: RateLimitConfig{
			AIPerSecond: 100,
			AIBurst:     100,
		},
	}
}
