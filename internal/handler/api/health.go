package api

import (
	"net/http"

	resdto "smartstay-gateway/internal/handler/dto/response"
	"smartstay-gateway/internal/infra/gemini"
	"smartstay-gateway/internal/infra/liteapi"
	"smartstay-gateway/internal/pkg/clock"

	"github.com/gin-gonic/gin"
)

type LiteAPIProbe interface {
	Health() liteapi.Health
}

type GeminiProbe interface {
	Health() gemini.Health
	Models() []string
}

// HealthHandler reports configuration state. Probes always answer 200; the
// body says whether the vendor can be used. Keys appear only as a masked suffix.
type HealthHandler struct {
	lite  LiteAPIProbe
	gem   GeminiProbe
	clock clock.Clock
}

func NewHealthHandler(lite LiteAPIProbe, gem GeminiProbe, clk clock.Clock) *HealthHandler {
	return &HealthHandler{lite: lite, gem: gem, clock: clk}
}

// @Summary Service health
// @Tags health
// @Produce json
// @Success 200 {object} resdto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Service(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.HealthResponse{
		OK:               true,
		Service:          resdto.ServiceName,
		Time:             h.clock.Now().UTC(),
		GeminiConfigured: h.gem.Health().Configured,
		LiteAPIBase:      resdto.PresentOrMissing(h.lite.Health().BaseURL),
	})
}

// @Summary Inventory vendor health
// @Description Configuration probe; does not call the vendor
// @Tags health
// @Produce json
// @Success 200 {object} liteapi.Health
// @Router /liteapi/health [get]
func (h *HealthHandler) LiteAPI(c *gin.Context) {
	c.JSON(http.StatusOK, h.lite.Health())
}

// @Summary AI vendor health
// @Description Configuration probe; does not call the vendor
// @Tags health
// @Produce json
// @Success 200 {object} map[string]any
// @Router /gemini/health [get]
func (h *HealthHandler) Gemini(c *gin.Context) {
	hl := h.gem.Health()
	c.JSON(http.StatusOK, gin.H{
		"ok":         hl.Configured,
		"configured": hl.Configured,
		"model":      hl.Model,
		"models":     h.gem.Models(),
		"keySuffix":  hl.KeySuffix,
	})
}
