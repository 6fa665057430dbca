package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"smartstay-gateway/internal/handler/api"
	"smartstay-gateway/internal/handler/middleware"
	"smartstay-gateway/internal/infra/metrics"
	"smartstay-gateway/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Hotel     *api.HotelHandler
	Booking   *api.BookingHandler
	Reference *api.ReferenceHandler
	Assistant *api.AssistantHandler
	Health    *api.HealthHandler
}

func NewHandlers(hotel *api.HotelHandler, booking *api.BookingHandler, ref *api.ReferenceHandler, ai *api.AssistantHandler, health *api.HealthHandler) Handlers {
	return Handlers{Hotel: hotel, Booking: booking, Reference: ref, Assistant: ai, Health: health}
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, rec *metrics.Recorder) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cfg, h, rec)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, rec *metrics.Recorder) {
	engine.GET("/metrics", gin.WrapH(rec.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.GET("/health", h.Health.Service)

	lite := apiGroup.Group("/liteapi")
	{
		addRoutes(lite, []route{
			{Method: http.MethodGet, Path: "/health", Handler: h.Health.LiteAPI},

			{Method: http.MethodGet, Path: "/hotels/search", Handler: h.Hotel.Search},
			{Method: http.MethodGet, Path: "/hotels/:id", Handler: h.Hotel.Details},
			{Method: http.MethodGet, Path: "/reviews", Handler: h.Hotel.Reviews},
			{Method: http.MethodPost, Path: "/rates", Handler: h.Hotel.Rates},
			{Method: http.MethodGet, Path: "/rates/minimum", Handler: h.Hotel.MinimumRates},
			{Method: http.MethodGet, Path: "/rates/availability", Handler: h.Hotel.RateAvailability},

			{Method: http.MethodPost, Path: "/prebook", Handler: h.Booking.Prebook},
			{Method: http.MethodPost, Path: "/book", Handler: h.Booking.Book},
			{Method: http.MethodGet, Path: "/bookings", Handler: h.Booking.List},
			{Method: http.MethodGet, Path: "/bookings/:id", Handler: h.Booking.Get},
			{Method: http.MethodPut, Path: "/bookings/:id", Handler: h.Booking.Cancel},

			{Method: http.MethodGet, Path: "/data/:kind", Handler: h.Reference.Data},
			{Method: http.MethodGet, Path: "/analytics/:kind", Handler: h.Reference.Analytics},
		})

		// vendor-shaped paths kept for older clients
		addRoutes(lite, []route{
			{Method: http.MethodGet, Path: "/data/hotel", Handler: h.Hotel.Details},
			{Method: http.MethodGet, Path: "/data/hotels", Handler: h.Hotel.List},
			{Method: http.MethodGet, Path: "/data/reviews", Handler: h.Hotel.Reviews},
			{Method: http.MethodGet, Path: "/rates/minimumRateAvailability", Handler: h.Hotel.MinimumRates},
			{Method: http.MethodGet, Path: "/rates/rateAvailability", Handler: h.Hotel.RateAvailability},
			{Method: http.MethodPost, Path: "/rates/prebook", Handler: h.Booking.Prebook},
			{Method: http.MethodPost, Path: "/rates/book", Handler: h.Booking.Book},
		})
	}

	limit := middleware.RateLimit(middleware.NewRateLimiter(cfg.RateLimit))
	gemini := apiGroup.Group("/gemini")
	{
		addRoutes(gemini, []route{
			{Method: http.MethodGet, Path: "/health", Handler: h.Health.Gemini},
			{Method: http.MethodPost, Path: "/chat", Handler: h.Assistant.Chat, Mw: []gin.HandlerFunc{limit}},
			{Method: http.MethodPost, Path: "/summarize-hotel", Handler: h.Assistant.SummarizeHotel, Mw: []gin.HandlerFunc{limit}},
			{Method: http.MethodPost, Path: "/compare", Handler: h.Assistant.CompareHotels, Mw: []gin.HandlerFunc{limit}},
			{Method: http.MethodPost, Path: "/smart-filter", Handler: h.Assistant.SmartFilter, Mw: []gin.HandlerFunc{limit}},
			{Method: http.MethodPost, Path: "/travel-plan", Handler: h.Assistant.TravelPlan, Mw: []gin.HandlerFunc{limit}},
		})
	}
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
