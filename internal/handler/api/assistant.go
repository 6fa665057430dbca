package api

import (
	"net/http"

	reqdto "smartstay-gateway/internal/handler/dto/request"
	resdto "smartstay-gateway/internal/handler/dto/response"
	"smartstay-gateway/internal/handler/httperr"
	"smartstay-gateway/internal/usecase/assistant"

	"github.com/gin-gonic/gin"
)

type AssistantHandler struct {
	uc assistant.Assistant
}

func NewAssistantHandler(uc assistant.Assistant) *AssistantHandler {
	return &AssistantHandler{uc: uc}
}

// @Summary Chat
// @Description Sends the whole conversation and returns one assistant reply
// @Tags gemini
// @Accept json
// @Produce json
// @Param request body reqdto.ChatRequest true "Chat history"
// @Success 200 {object} resdto.ChatResponse
// @Failure 400 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /gemini/chat [post]
func (h *AssistantHandler) Chat(c *gin.Context) {
	var req reqdto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "messages are required", nil)
		return
	}
	res, err := h.uc.Chat(c.Request.Context(), req.Messages, req.Persona)
	if err != nil {
		httperr.Abort(c, err, "Gemini chat failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromChatReply(res))
}

// @Summary Summarize hotel
// @Tags gemini
// @Accept json
// @Produce json
// @Param request body reqdto.SummarizeHotelRequest true "Hotel"
// @Success 200 {object} resdto.SummaryResponse
// @Failure 400 {object} httperr.Response
// @Router /gemini/summarize-hotel [post]
func (h *AssistantHandler) SummarizeHotel(c *gin.Context) {
	var req reqdto.SummarizeHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "hotel is required", nil)
		return
	}
	res, err := h.uc.SummarizeHotel(c.Request.Context(), req.Hotel)
	if err != nil {
		httperr.Abort(c, err, "Gemini summarize failed")
		return
	}
	c.JSON(http.StatusOK, resdto.SummaryResponse{Summary: res.Text, Model: res.Model})
}

// @Summary Compare hotels
// @Tags gemini
// @Accept json
// @Produce json
// @Param request body reqdto.CompareHotelsRequest true "Up to three hotels"
// @Success 200 {object} resdto.ComparisonResponse
// @Failure 400 {object} httperr.Response
// @Router /gemini/compare [post]
func (h *AssistantHandler) CompareHotels(c *gin.Context) {
	var req reqdto.CompareHotelsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "one to three hotels are required", nil)
		return
	}
	res, err := h.uc.CompareHotels(c.Request.Context(), req.Hotels)
	if err != nil {
		httperr.Abort(c, err, "Gemini compare failed")
		return
	}
	c.JSON(http.StatusOK, resdto.ComparisonResponse{Comparison: res.Text, Model: res.Model})
}

// @Summary Smart filter
// @Description Turns a free-text request into a filter object. Unparseable replies come back as text.
// @Tags gemini
// @Accept json
// @Produce json
// @Param request body reqdto.SmartFilterRequest true "Query"
// @Success 200 {object} resdto.FilterResponse
// @Failure 400 {object} httperr.Response
// @Router /gemini/smart-filter [post]
func (h *AssistantHandler) SmartFilter(c *gin.Context) {
	var req reqdto.SmartFilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "query is required", nil)
		return
	}
	res, err := h.uc.SmartFilter(c.Request.Context(), req.Query)
	if err != nil {
		httperr.Abort(c, err, "Gemini smart filter failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FilterResponse{Filter: res.Filter, Model: res.Model})
}

// @Summary Travel plan
// @Tags gemini
// @Accept json
// @Produce json
// @Param request body reqdto.TravelPlanRequest true "Destination and days (default 3)"
// @Success 200 {object} resdto.PlanResponse
// @Failure 400 {object} httperr.Response
// @Router /gemini/travel-plan [post]
func (h *AssistantHandler) TravelPlan(c *gin.Context) {
	var req reqdto.TravelPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "destination is required and days must be between 1 and 30", nil)
		return
	}
	destination, days, prefs := req.ToDomain()
	res, err := h.uc.TravelPlan(c.Request.Context(), destination, days, prefs)
	if err != nil {
		httperr.Abort(c, err, "Gemini travel plan failed")
		return
	}
	c.JSON(http.StatusOK, resdto.PlanResponse{Plan: res.Text, Model: res.Model})
}
