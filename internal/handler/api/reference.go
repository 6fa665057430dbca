package api

import (
	"net/http"

	"smartstay-gateway/internal/domain/hotel"
	reqdto "smartstay-gateway/internal/handler/dto/request"
	"smartstay-gateway/internal/handler/httperr"
	"smartstay-gateway/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReferenceHandler struct {
	q queries.ReferenceQueries
}

func NewReferenceHandler(q queries.ReferenceQueries) *ReferenceHandler {
	return &ReferenceHandler{q: q}
}

// @Summary Reference data
// @Description Static vendor data: currencies, countries, cities, facilities, iata, hotelTypes, chains, places
// @Tags reference
// @Produce json
// @Param kind path string true "Data kind"
// @Param countryCode query string false "Required for cities"
// @Param iataCode query string false "Required for iata"
// @Param textQuery query string false "Required for places"
// @Success 200 {object} map[string]any
// @Failure 400 {object} httperr.Response
// @Router /liteapi/data/{kind} [get]
func (h *ReferenceHandler) Data(c *gin.Context) {
	kind := hotel.ReferenceKind(c.Param("kind"))
	body, err := h.q.Reference(c.Request.Context(), kind, c.Request.URL.Query())
	if err != nil {
		httperr.Abort(c, err, "Failed to fetch "+string(kind))
		return
	}
	c.JSON(http.StatusOK, body)
}

// @Summary Analytics report
// @Tags reference
// @Produce json
// @Param kind path string true "weekly, market or detailed"
// @Param from query string true "YYYY-MM-DD"
// @Param to query string true "YYYY-MM-DD"
// @Success 200 {object} map[string]any
// @Failure 400 {object} httperr.Response
// @Router /liteapi/analytics/{kind} [get]
func (h *ReferenceHandler) Analytics(c *gin.Context) {
	var req reqdto.AnalyticsQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "from and to are required", nil)
		return
	}
	kind := hotel.AnalyticsKind(c.Param("kind"))
	body, err := h.q.Analytics(c.Request.Context(), kind, req.ToDomain())
	if err != nil {
		httperr.Abort(c, err, "Failed to fetch analytics")
		return
	}
	c.JSON(http.StatusOK, body)
}
