package api

import (
	"net/http"
	"strings"

	reqdto "smartstay-gateway/internal/handler/dto/request"
	"smartstay-gateway/internal/handler/httperr"
	"smartstay-gateway/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type HotelHandler struct {
	q queries.HotelQueries
}

func NewHotelHandler(q queries.HotelQueries) *HotelHandler {
	return &HotelHandler{q: q}
}

// @Summary Search hotels
// @Description Search hotels by place, coordinates or country. Results are normalized hotel summaries, priced when checkin and checkout are given.
// @Tags hotels
// @Produce json
// @Param placeId query string false "Place ID"
// @Param latitude query number false "Latitude"
// @Param longitude query number false "Longitude"
// @Param radius query int false "Radius in meters"
// @Param countryCode query string false "ISO country code"
// @Param cityName query string false "City name"
// @Param aiSearch query string false "Free-text search"
// @Param facilities query string false "Comma separated facility IDs"
// @Param starRating query string false "Comma separated star ratings"
// @Param checkin query string false "Check-in date (YYYY-MM-DD)"
// @Param checkout query string false "Check-out date (YYYY-MM-DD)"
// @Param adults query int false "Adults per room (default 2)"
// @Param children query string false "Comma separated child ages"
// @Param rooms query int false "Rooms (default 1)"
// @Param currency query string false "Price currency (default USD)"
// @Param offset query int false "Offset"
// @Param limit query int false "Limit (default 100)"
// @Success 200 {object} queries.SearchResult
// @Failure 400 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /liteapi/hotels/search [get]
func (h *HotelHandler) Search(c *gin.Context) {
	var req reqdto.SearchHotelsQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	sq, err := req.ToDomain()
	if err != nil {
		httperr.Abort(c, err, "Invalid request")
		return
	}
	res, err := h.q.Search(c.Request.Context(), sq)
	if err != nil {
		httperr.Abort(c, err, "Failed to search hotels")
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary List hotels
// @Description Raw vendor hotel list for a country
// @Tags hotels
// @Produce json
// @Param countryCode query string true "ISO country code"
// @Success 200 {object} map[string]any
// @Failure 400 {object} httperr.Response
// @Router /liteapi/data/hotels [get]
func (h *HotelHandler) List(c *gin.Context) {
	body, err := h.q.ListHotels(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		httperr.Abort(c, err, "Failed to fetch hotels")
		return
	}
	c.JSON(http.StatusOK, body)
}

// @Summary Hotel details
// @Description Vendor hotel details, addressed by path or by hotelId query
// @Tags hotels
// @Produce json
// @Param id path string false "Hotel ID"
// @Param hotelId query string false "Hotel ID"
// @Success 200 {object} map[string]any
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /liteapi/hotels/{id} [get]
func (h *HotelHandler) Details(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		id = strings.TrimSpace(c.Query("hotelId"))
	}
	body, err := h.q.GetDetails(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err, "Failed to fetch hotel details")
		return
	}
	c.JSON(http.StatusOK, body)
}

// @Summary Hotel reviews
// @Tags hotels
// @Produce json
// @Param hotelId query string true "Hotel ID"
// @Param limit query int false "Max reviews (default 20)"
// @Param getSentiment query bool false "Include sentiment analysis (default true)"
// @Success 200 {object} map[string]any
// @Failure 400 {object} httperr.Response
// @Router /liteapi/reviews [get]
func (h *HotelHandler) Reviews(c *gin.Context) {
	var req reqdto.ReviewsQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "hotelId is required", nil)
		return
	}
	id, limit, sentiment := req.Values(queries.DefaultReviewLimit)
	body, err := h.q.GetReviews(c.Request.Context(), id, limit, sentiment)
	if err != nil {
		httperr.Abort(c, err, "Failed to fetch reviews")
		return
	}
	c.JSON(http.StatusOK, body)
}

// @Summary Search rates
// @Description Live offers for one or more hotels. When previous offers are sent, each fresh offer carries change flags.
// @Tags rates
// @Accept json
// @Produce json
// @Param request body reqdto.RatesRequest true "Rate search"
// @Success 200 {object} queries.RatesResult
// @Failure 400 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /liteapi/rates [post]
func (h *HotelHandler) Rates(c *gin.Context) {
	var req reqdto.RatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "hotelIds, checkin and checkout are required", nil)
		return
	}
	res, err := h.q.SearchRates(c.Request.Context(), req.ToDomain())
	if err != nil {
		httperr.Abort(c, err, "Failed to fetch rates")
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Minimum rates
// @Tags rates
// @Produce json
// @Param hotelIds query string true "Comma separated hotel IDs"
// @Param checkin query string true "YYYY-MM-DD"
// @Param checkout query string true "YYYY-MM-DD"
// @Param adults query int true "Adults"
// @Success 200 {object} map[string]any
// @Failure 400 {object} httperr.Response
// @Router /liteapi/rates/minimum [get]
func (h *HotelHandler) MinimumRates(c *gin.Context) {
	var req reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	body, err := h.q.MinimumRates(c.Request.Context(), req.ToDomain())
	if err != nil {
		httperr.Abort(c, err, "Failed to fetch minimum rates")
		return
	}
	c.JSON(http.StatusOK, body)
}

// @Summary Rate availability
// @Tags rates
// @Produce json
// @Param hotelId query string true "Hotel ID"
// @Param checkin query string true "YYYY-MM-DD"
// @Param checkout query string true "YYYY-MM-DD"
// @Param adults query int true "Adults"
// @Success 200 {object} map[string]any
// @Failure 400 {object} httperr.Response
// @Router /liteapi/rates/availability [get]
func (h *HotelHandler) RateAvailability(c *gin.Context) {
	var req reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	body, err := h.q.RateAvailability(c.Request.Context(), req.ToDomain())
	if err != nil {
		httperr.Abort(c, err, "Failed to fetch rate availability")
		return
	}
	c.JSON(http.StatusOK, body)
}
