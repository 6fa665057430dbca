package api

import (
	"net/http"

	reqdto "smartstay-gateway/internal/handler/dto/request"
	"smartstay-gateway/internal/handler/httperr"
	"smartstay-gateway/internal/usecase/commands"
	"smartstay-gateway/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Prebook an offer
// @Description Places a vendor-side hold on an offer. Warnings list price, cancellation and board changes.
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.PrebookRequest true "Prebook request"
// @Success 200 {object} hotel.PrebookResult
// @Failure 400 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /liteapi/prebook [post]
func (h *BookingHandler) Prebook(c *gin.Context) {
	var req reqdto.PrebookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	offerID, usePaymentSDK := req.ToDomain()
	res, err := h.cmds.Prebook(c.Request.Context(), offerID, usePaymentSDK)
	if err != nil {
		httperr.Abort(c, err, "Failed to prebook rate")
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Book a prebooked offer
// @Description Confirms a booking. Payment must already be tokenized; card fields are rejected.
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.BookRequest true "Book request"
// @Success 200 {object} hotel.BookingResult
// @Failure 400 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /liteapi/book [post]
func (h *BookingHandler) Book(c *gin.Context) {
	var req reqdto.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	res, err := h.cmds.Book(c.Request.Context(), req.ToDomain())
	if err != nil {
		httperr.Abort(c, err, "Failed to book rate")
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary List bookings
// @Tags bookings
// @Produce json
// @Param clientReference query string false "Client reference"
// @Success 200 {object} map[string]any
// @Router /liteapi/bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	body, err := h.q.ListBookings(c.Request.Context(), c.Query("clientReference"))
	if err != nil {
		httperr.Abort(c, err, "Failed to fetch bookings")
		return
	}
	c.JSON(http.StatusOK, body)
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} map[string]any
// @Failure 404 {object} httperr.Response
// @Router /liteapi/bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	body, err := h.q.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Abort(c, err, "Failed to fetch booking")
		return
	}
	c.JSON(http.StatusOK, body)
}

// @Summary Cancel booking
// @Description Cancels a booking. A non-refundable refusal is reported in the result, not as an error.
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} hotel.CancellationResult
// @Failure 400 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /liteapi/bookings/{id} [put]
func (h *BookingHandler) Cancel(c *gin.Context) {
	res, err := h.cmds.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Abort(c, err, "Failed to cancel booking")
		return
	}
	c.JSON(http.StatusOK, res)
}
