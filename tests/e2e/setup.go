//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"smartstay-gateway/cmd/bootstrap"
	"smartstay-gateway/cmd/bootstrap/components"
	"smartstay-gateway/internal/pkg/config"
	"smartstay-gateway/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

// ------------------------------------------------------------
// Per-suite environment: fake vendors plus the real fx graph
// ------------------------------------------------------------
func setupE2EEnvironment(t *testing.T, mutate func(*config.Config)) (*gin.Engine, *usecase.FlowGateway, config.Config, *FakeLiteAPI, *FakeGemini) {
	gin.SetMode(gin.TestMode)
	gin.EnableJsonDecoderDisallowUnknownFields()

	lite := NewFakeLiteAPI()
	liteSrv := httptest.NewServer(lite)
	t.Cleanup(liteSrv.Close)

	gem := NewFakeGemini()
	gemSrv := httptest.NewServer(gem)
	t.Cleanup(gemSrv.Close)

	cfg := createTestConfig(liteSrv.URL, gemSrv.URL)
	if mutate != nil {
		mutate(&cfg)
	}

	router, flow, app := buildE2EApp(cfg)
	require.NotNil(t, router, "router setup failed")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("Failed to stop fx app", "error", err.Error())
		}
	})

	return router, flow, cfg, lite, gem
}

func createTestConfig(liteURL, geminiURL string) config.Config {
	cfg := config.NewTestConfig()
	cfg.LiteAPI.BaseURL = liteURL + "/v3.0"
	cfg.Gemini.BaseURL = geminiURL + "/"
	return cfg
}

// ------------------------------------------------------------
// Builds the application graph the binary uses, minus the listener
// ------------------------------------------------------------
func buildE2EApp(cfg config.Config) (*gin.Engine, *usecase.FlowGateway, *fx.App) {
	var (
		router *gin.Engine
		flow   *usecase.FlowGateway
	)

	testConfigModule := fx.Module("testconfig",
		fx.Provide(func() config.Config { return cfg }),
	)

	app := fx.New(
		testConfigModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		components.GatewayModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&router, &flow),

		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to start fx app: %v", err))
	}

	return router, flow, app
}

// ------------------------------------------------------------
// Shared suite for e2e tests
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	Flow   *usecase.FlowGateway
	Config config.Config
	Lite   *FakeLiteAPI
	Gemini *FakeGemini

	// Configure adjusts the test config before the app is built.
	Configure func(*config.Config)
}

func (s *SharedSuite) SetupSharedSuite(t *testing.T) {
	s.Router, s.Flow, s.Config, s.Lite, s.Gemini = setupE2EEnvironment(t, s.Configure)
	require.NotEmpty(t, s.Config, "config missing")
	require.NotNil(t, s.Router, "router setup failed")
}

func (s *SharedSuite) SetupSuite() {
	s.SetupSharedSuite(s.T())
}

func (s *SharedSuite) SetupSubTest() {
	s.Lite.Reset()
	s.Gemini.Reset()
}
