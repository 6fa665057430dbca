//go:build unit

package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"smartstay-gateway/internal/domain/hotel"
	"smartstay-gateway/internal/handler/api"
	"smartstay-gateway/internal/infra"
	"smartstay-gateway/internal/pkg/errs"
	"smartstay-gateway/tests/common/builder"
	"smartstay-gateway/tests/common/httptest"
	"smartstay-gateway/tests/common/testutil"
	commandsmock "smartstay-gateway/tests/mock/commands"
	queriesmock "smartstay-gateway/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/prebook", s.handler.Prebook)
	s.router.POST("/book", s.handler.Book)
	s.router.GET("/bookings", s.handler.List)
	s.router.GET("/bookings/:id", s.handler.Get)
	s.router.PUT("/bookings/:id", s.handler.Cancel)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

// ================================================================================
// TestPrebook
// ================================================================================

func (s *BookingHandlerTestSuite) TestPrebook() {
	s.Run("success: warnings are always a list", func() {
		s.mockCommands.EXPECT().Prebook(gomock.Any(), "off-1", true).
			Return(&hotel.PrebookResult{PrebookID: "pb-1", TotalPrice: 210, Warnings: []string{}}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/prebook", map[string]any{"offerId": "off-1", "usePaymentSdk": true})
		s.Equal(http.StatusOK, rec.Code)

		var body map[string]any
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Equal("pb-1", body["prebookId"])
		s.Equal([]any{}, body["warnings"])
	})

	s.Run("rateId is accepted for offerId", func() {
		s.mockCommands.EXPECT().Prebook(gomock.Any(), "rate-9", false).
			Return(&hotel.PrebookResult{PrebookID: "pb-9", Warnings: []string{}}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/prebook", map[string]any{"rateId": "rate-9"})
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: missing offer id surfaces the use case message", func() {
		s.mockCommands.EXPECT().Prebook(gomock.Any(), "", false).Return(nil, errs.Validationf("offerId is required"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/prebook", map[string]any{})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "offerId is required")
	})

	s.Run("error: vendor rejection is forwarded", func() {
		s.mockCommands.EXPECT().Prebook(gomock.Any(), "gone", false).
			Return(nil, &infra.UpstreamError{Vendor: infra.VendorLiteAPI, Status: http.StatusConflict, Body: []byte(`{"error":{"code":4002,"message":"rate expired"}}`)})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/prebook", map[string]any{"offerId": "gone"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Failed to prebook rate")
	})

	s.Run("error: vendor 2xx-class status mismatch becomes 502", func() {
		s.mockCommands.EXPECT().Prebook(gomock.Any(), "odd", false).
			Return(nil, &infra.UpstreamError{Vendor: infra.VendorLiteAPI, Status: http.StatusFound, Body: []byte("moved")})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/prebook", map[string]any{"offerId": "odd"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "Failed to prebook rate")

		var detail string
		httptest.AssertErrorDetail(s.T(), rec, http.StatusBadGateway, &detail)
		s.Equal("moved", detail)
	})
}

// ================================================================================
// TestBook
// ================================================================================

func (s *BookingHandlerTestSuite) TestBook() {
	b := builder.NewBookingBuilder()
	reqBody := testutil.DtoMap(s.T(), b.BuildBookRequestDTO())

	s.Run("success: flat holder and transaction id", func() {
		want := b.BuildResult("bk-1")
		s.mockCommands.EXPECT().Book(gomock.Any(), b.BuildDomain()).Return(&want, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/book", reqBody)

		var res hotel.BookingResult
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		if diff := cmp.Diff(want, res); diff != "" {
			s.T().Errorf("booking result mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("success: holder object and guest numbering", func() {
		body := testutil.DtoMap(s.T(), reqBody,
			testutil.Field("holderName", nil),
			testutil.Field("email", nil),
			testutil.Field("holder", map[string]any{"firstName": "Ravi", "lastName": "Menon", "email": "ravi@example.com", "phone": "+91"}),
			testutil.Field("guests", []map[string]any{{"firstName": "Ravi", "lastName": "Menon"}, {"firstName": "Anu"}}),
		)
		s.mockCommands.EXPECT().Book(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req hotel.BookRequest) (*hotel.BookingResult, error) {
				s.Equal(hotel.Holder{Name: "Ravi Menon", Email: "ravi@example.com", Phone: "+91"}, req.Holder)
				s.Equal([]hotel.Guest{
					{OccupancyNumber: 1, FirstName: "Ravi", LastName: "Menon"},
					{OccupancyNumber: 2, FirstName: "Anu"},
				}, req.Guests)
				return &hotel.BookingResult{BookingID: "BK-2"}, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/book", body)
		s.Equal(http.StatusOK, rec.Code)
	})

	rawCard := []struct {
		field string
		value string
	}{
		{field: "cardNumber", value: "4242424242424242"},
		{field: "cvc", value: "123"},
		{field: "cvv", value: "123"},
		{field: "expiry", value: "12/30"},
	}
	for _, tc := range rawCard {
		s.Run("error: raw card field "+tc.field+" is rejected", func() {
			payment := map[string]any{"method": "ACC_CREDIT_CARD", "holderName": "Asha Rao", tc.field: tc.value}
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/book", testutil.DtoMap(s.T(), reqBody, testutil.Field("payment", payment)))
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		})
	}

	s.Run("error: 400 without prebookId", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/book", testutil.DtoMap(s.T(), reqBody, testutil.Field("prebookId", nil)))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: malformed guest email", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/book",
			testutil.DtoMap(s.T(), reqBody, testutil.Field("guests", []map[string]any{{"firstName": "A", "email": "nope"}})))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: use case validation", func() {
		s.mockCommands.EXPECT().Book(gomock.Any(), gomock.Any()).Return(nil, errs.Validationf("holder email is required"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/book", testutil.DtoMap(s.T(), reqBody, testutil.Field("email", nil)))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "holder email is required")
	})

	s.Run("error: vendor failure", func() {
		s.mockCommands.EXPECT().Book(gomock.Any(), gomock.Any()).
			Return(nil, &infra.UpstreamError{Vendor: infra.VendorLiteAPI, Status: http.StatusInternalServerError, Body: []byte(`{"error":"payment declined"}`)})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/book", reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to book rate")
	})
}

// ================================================================================
// TestBookings
// ================================================================================

func (s *BookingHandlerTestSuite) TestBookings() {
	s.Run("list by client reference", func() {
		s.mockQueries.EXPECT().ListBookings(gomock.Any(), "ref-1").Return(json.RawMessage(`{"data":[{"bookingId":"BK-1"}]}`), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?clientReference=ref-1", nil)
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"data":[{"bookingId":"BK-1"}]}`, rec.Body.String())
	})

	s.Run("get one", func() {
		s.mockQueries.EXPECT().GetBooking(gomock.Any(), "BK-1").Return(json.RawMessage(`{"data":{"bookingId":"BK-1"}}`), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/BK-1", nil)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("get unknown booking forwards 404", func() {
		s.mockQueries.EXPECT().GetBooking(gomock.Any(), "nope").
			Return(nil, &infra.UpstreamError{Vendor: infra.VendorLiteAPI, Status: http.StatusNotFound, Body: []byte(`{"error":"not found"}`)})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/nope", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Failed to fetch booking")
	})
}

func (s *BookingHandlerTestSuite) TestCancel() {
	s.Run("refundable", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), "BK-1").
			Return(&hotel.CancellationResult{BookingID: "BK-1", CanCancel: true, RefundAmount: 150.25, CancellationFee: 20}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/bookings/BK-1", nil)
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"bookingId":"BK-1","canCancel":true,"refundAmount":150.25,"cancellationFee":20,"isNonRefundable":false}`, rec.Body.String())
	})

	s.Run("non-refundable is a 200 result", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), "BK-2").
			Return(&hotel.CancellationResult{BookingID: "BK-2", IsNonRefundable: true}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/bookings/BK-2", nil)
		s.Equal(http.StatusOK, rec.Code)

		var res hotel.CancellationResult
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &res))
		s.True(res.IsNonRefundable)
		s.False(res.CanCancel)
		s.Zero(res.RefundAmount)
	})

	s.Run("error: vendor failure", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), "BK-3").
			Return(nil, &infra.UpstreamError{Vendor: infra.VendorLiteAPI, Status: http.StatusBadRequest, Body: []byte(`{"error":"already cancelled"}`)})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/bookings/BK-3", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Failed to cancel booking")
	})
}
