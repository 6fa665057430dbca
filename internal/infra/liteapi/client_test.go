//go:build unit

package liteapi_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"smartstay-gateway/internal/domain/hotel"
	"smartstay-gateway/internal/infra"
	"smartstay-gateway/internal/infra/liteapi"
	"smartstay-gateway/internal/infra/metrics"
	"smartstay-gateway/internal/pkg/clock"
	"smartstay-gateway/internal/pkg/config"
	"smartstay-gateway/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type captured struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

type ClientTestSuite struct {
	suite.Suite
	server   *httptest.Server
	mu       sync.Mutex
	requests []captured
	status   int
	response string
	delay    time.Duration

	cfg      config.Config
	recorder *metrics.Recorder
	clock    *clock.MockClock
	logger   *slog.Logger
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) SetupTest() {
	s.requests = nil
	s.status = http.StatusOK
	s.response = `{"data":[]}`
	s.delay = 0

	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		s.mu.Lock()
		s.requests = append(s.requests, captured{
			Method: r.Method,
			Path:   r.URL.EscapedPath(),
			Query:  r.URL.Query(),
			Header: r.Header.Clone(),
			Body:   body,
		})
		status, response, delay := s.status, s.response, s.delay
		s.mu.Unlock()

		if delay > 0 {
			select {
			case <-time.After(delay):
			case <-r.Context().Done():
				return
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))

	s.cfg = config.NewTestConfig()
	s.cfg.LiteAPI.BaseURL = s.server.URL + "/v3.0"
	s.recorder = metrics.NewRecorder()
	s.clock = clock.NewMockClock(time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC))
	s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (s *ClientTestSuite) TearDownTest() {
	s.server.Close()
}

// reset restarts the fake vendor with fresh state inside a subtest.
func (s *ClientTestSuite) reset() {
	s.server.Close()
	s.SetupTest()
}

func (s *ClientTestSuite) client() *liteapi.Client {
	return liteapi.NewClient(s.cfg, s.logger, s.recorder, s.clock)
}

func (s *ClientTestSuite) last() captured {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Require().NotEmpty(s.requests)
	return s.requests[len(s.requests)-1]
}

func (s *ClientTestSuite) metricsBody() string {
	rec := httptest.NewRecorder()
	s.recorder.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	return rec.Body.String()
}

// ================================================================================
// Auth schemes
// ================================================================================

func (s *ClientTestSuite) TestAuthSchemes() {
	ctx := context.Background()

	s.Run("apikey sends the key in the configured header", func() {
		_, err := s.client().HotelDetails(ctx, "lp1")
		s.Require().NoError(err)
		req := s.last()
		s.Equal("test-liteapi-key", req.Header.Get("X-API-Key"))
		s.Empty(req.Header.Get("Authorization"))
		s.Equal("application/json", req.Header.Get("Accept"))
	})

	s.Run("bearer prefixes the key", func() {
		s.cfg.LiteAPI.AuthScheme = config.AuthSchemeBearer
		s.cfg.LiteAPI.AuthHeaderName = "Authorization"
		_, err := s.client().HotelDetails(ctx, "lp1")
		s.Require().NoError(err)
		s.Equal("Bearer test-liteapi-key", s.last().Header.Get("Authorization"))
	})

	s.Run("none sends no credentials", func() {
		s.cfg.LiteAPI.AuthScheme = config.AuthSchemeNone
		s.cfg.LiteAPI.AuthHeaderName = "X-API-Key"
		s.cfg.LiteAPI.Key = ""
		_, err := s.client().HotelDetails(ctx, "lp1")
		s.Require().NoError(err)
		s.Empty(s.last().Header.Get("X-API-Key"))
	})

	s.Run("hmac signs a short-lived token with the secret", func() {
		s.cfg.LiteAPI.AuthScheme = config.AuthSchemeHMAC
		s.cfg.LiteAPI.Key = "test-liteapi-key"
		s.cfg.LiteAPI.HMACSecret = "shared-secret"
		s.cfg.LiteAPI.HMACTTL = 2 * time.Minute

		_, err := s.client().HotelDetails(ctx, "lp1")
		s.Require().NoError(err)
		req := s.last()
		s.Equal("test-liteapi-key", req.Header.Get("X-API-Key"))

		raw := strings.TrimPrefix(req.Header.Get("Authorization"), "Bearer ")
		claims := &jwt.RegisteredClaims{}
		token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
			return []byte("shared-secret"), nil
		}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithTimeFunc(s.clock.Now))
		s.Require().NoError(err)
		s.True(token.Valid)
		s.Equal("test-liteapi-key", claims.Subject)
		s.Equal(s.clock.Now().Unix(), claims.IssuedAt.Unix())
		s.Equal(s.clock.Now().Add(2*time.Minute).Unix(), claims.ExpiresAt.Unix())

		s.clock.Advance(3 * time.Minute)
		_, err = jwt.ParseWithClaims(raw, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
			return []byte("shared-secret"), nil
		}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithTimeFunc(s.clock.Now))
		s.ErrorIs(err, jwt.ErrTokenExpired)
	})
}

// ================================================================================
// Configuration errors
// ================================================================================

func (s *ClientTestSuite) TestConfigurationErrors() {
	cases := []struct {
		name   string
		mutate func(c *config.LiteAPIConfig)
	}{
		{name: "empty base url", mutate: func(c *config.LiteAPIConfig) { c.BaseURL = "" }},
		{name: "non-http base url", mutate: func(c *config.LiteAPIConfig) { c.BaseURL = "ftp://api.liteapi.travel" }},
		{name: "relative base url", mutate: func(c *config.LiteAPIConfig) { c.BaseURL = "api.liteapi.travel/v3.0" }},
		{name: "missing key", mutate: func(c *config.LiteAPIConfig) { c.Key = "" }},
		{name: "hmac without secret", mutate: func(c *config.LiteAPIConfig) { c.AuthScheme = config.AuthSchemeHMAC }},
		{name: "unknown scheme", mutate: func(c *config.LiteAPIConfig) { c.AuthScheme = "oauth" }},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.reset()
			tc.mutate(&s.cfg.LiteAPI)
			c := s.client()

			_, err := c.HotelDetails(context.Background(), "lp1")
			s.ErrorIs(err, errs.ErrConfiguration)
			s.NotErrorIs(err, errs.ErrUpstream)
			s.Empty(s.requests, "no request may leave a misconfigured client")
			s.False(c.Health().OK)
		})
	}
}

// ================================================================================
// Upstream failures
// ================================================================================

func (s *ClientTestSuite) TestUpstreamErrors() {
	ctx := context.Background()

	s.Run("non-2xx carries vendor status and body verbatim", func() {
		s.status = http.StatusNotFound
		s.response = `{"error":{"code":4004,"message":"hotel not found"}}`

		_, err := s.client().HotelDetails(ctx, "missing")
		s.Require().Error(err)
		s.ErrorIs(err, errs.ErrUpstream)
		s.NotErrorIs(err, errs.ErrTimeout)

		up, ok := infra.AsUpstream(err)
		s.Require().True(ok)
		s.Equal(http.StatusNotFound, up.Status)
		s.JSONEq(s.response, string(up.Body))
		s.Equal(infra.VendorLiteAPI, up.Vendor)
		s.Contains(s.metricsBody(), `smartstay_upstream_requests_total{operation="hotel_details",outcome="error",vendor="liteapi"} 1`)
	})

	s.Run("timeout is marked as both timeout and upstream", func() {
		s.reset()
		s.delay = 500 * time.Millisecond
		s.cfg.LiteAPI.Timeout = 20 * time.Millisecond

		_, err := s.client().HotelDetails(ctx, "slow")
		s.ErrorIs(err, errs.ErrTimeout)
		s.ErrorIs(err, errs.ErrUpstream)
		up, ok := infra.AsUpstream(err)
		s.Require().True(ok)
		s.Equal(http.StatusGatewayTimeout, up.Status)
		s.Contains(s.metricsBody(), `outcome="timeout"`)
	})

	s.Run("success is counted", func() {
		s.reset()
		_, err := s.client().Bookings(ctx, "ref-1")
		s.Require().NoError(err)
		s.Contains(s.metricsBody(), `smartstay_upstream_requests_total{operation="list_bookings",outcome="success",vendor="liteapi"} 1`)
	})
}

// ================================================================================
// Vendor request shaping
// ================================================================================

func (s *ClientTestSuite) TestSearchHotels() {
	ctx := context.Background()

	s.Run("country selector with filters", func() {
		minRating := 8.5
		q, err := hotel.SearchQuery{
			CityName:         "Mumbai",
			AISearch:         "quiet hotel near the sea",
			Facilities:       []string{"7", "23"},
			StrictFacilities: true,
			MinRating:        &minRating,
			StarRating:       []int{4, 5},
			Limit:            20,
		}.WithDefaults("IN")
		s.Require().NoError(err)

		_, err = s.client().SearchHotels(ctx, q)
		s.Require().NoError(err)

		req := s.last()
		s.Equal(http.MethodGet, req.Method)
		s.Equal("/v3.0/data/hotels", req.Path)
		s.Equal("IN", req.Query.Get("countryCode"))
		s.Equal("Mumbai", req.Query.Get("cityName"))
		s.Equal("quiet hotel near the sea", req.Query.Get("aiSearch"))
		s.Equal("7,23", req.Query.Get("facilityIds"))
		s.Equal("true", req.Query.Get("strictFacilitiesFiltering"))
		s.Equal("8.5", req.Query.Get("minRating"))
		s.Equal("4,5", req.Query.Get("starRating"))
		s.Equal("0", req.Query.Get("offset"))
		s.Equal("20", req.Query.Get("limit"))
		s.Equal("1.5", req.Query.Get("timeout"))
		s.Empty(req.Query.Get("placeId"))
	})

	s.Run("coordinates selector", func() {
		lat, lng, radius := 19.076, 72.8777, 5000
		_, err := s.client().SearchHotels(ctx, hotel.SearchQuery{Latitude: &lat, Longitude: &lng, Radius: &radius, Limit: 10})
		s.Require().NoError(err)
		req := s.last()
		s.Equal("19.076", req.Query.Get("latitude"))
		s.Equal("72.8777", req.Query.Get("longitude"))
		s.Equal("5000", req.Query.Get("radius"))
		s.Empty(req.Query.Get("countryCode"))
	})

	s.Run("two selectors never reach the vendor", func() {
		s.reset()
		_, err := s.client().SearchHotels(ctx, hotel.SearchQuery{PlaceID: "ChIJ", CountryCode: "IN"})
		s.ErrorIs(err, errs.ErrValidation)
		s.Empty(s.requests)
	})
}

func (s *ClientTestSuite) TestBookingPayloads() {
	ctx := context.Background()

	s.Run("rates post", func() {
		_, err := s.client().Rates(ctx, hotel.RateSearch{
			HotelIDs: []string{"lp1", "lp2"}, Checkin: "2026-12-01", Checkout: "2026-12-04",
		}.WithDefaults())
		s.Require().NoError(err)

		req := s.last()
		s.Equal(http.MethodPost, req.Method)
		s.Equal("/v3.0/hotels/rates", req.Path)
		s.Equal("application/json", req.Header.Get("Content-Type"))
		s.JSONEq(`{"hotelIds":["lp1","lp2"],"checkin":"2026-12-01","checkout":"2026-12-04",
			"occupancies":[{"adults":2}],"currency":"USD","guestNationality":"US","timeout":1.5}`, string(req.Body))
	})

	s.Run("prebook post", func() {
		_, err := s.client().Prebook(ctx, "off-1", true)
		s.Require().NoError(err)
		req := s.last()
		s.Equal("/v3.0/rates/prebook", req.Path)
		s.JSONEq(`{"offerId":"off-1","usePaymentSdk":true}`, string(req.Body))
	})

	s.Run("book post splits the holder and defaults the guest", func() {
		_, err := s.client().Book(ctx, hotel.BookRequest{
			PrebookID:       "pb-1",
			Holder:          hotel.Holder{Name: "Asha Rao Menon", Email: "asha@example.com"},
			Payment:         hotel.Payment{Method: "TRANSACTION_ID", Token: "tx-9", HolderName: "Asha Menon"},
			ClientReference: "ref-1",
		})
		s.Require().NoError(err)

		var body map[string]any
		s.Require().NoError(json.Unmarshal(s.last().Body, &body))
		s.Equal("pb-1", body["prebookId"])
		s.Equal(map[string]any{"firstName": "Asha Rao", "lastName": "Menon", "email": "asha@example.com"}, body["holder"])
		s.Equal(map[string]any{"method": "TRANSACTION_ID", "transactionId": "tx-9", "holderName": "Asha Menon"}, body["payment"])
		s.Len(body["guests"], 1)
		s.Equal("ref-1", body["clientReference"])
	})

	s.Run("cancel is a put with an empty object", func() {
		_, err := s.client().Cancel(ctx, "bk/1")
		s.Require().NoError(err)
		req := s.last()
		s.Equal(http.MethodPut, req.Method)
		s.Equal("/v3.0/bookings/bk%2F1", req.Path)
		s.JSONEq(`{}`, string(req.Body))
	})

	s.Run("reference data", func() {
		_, err := s.client().Reference(ctx, hotel.RefCities, url.Values{"countryCode": {"IN"}})
		s.Require().NoError(err)
		req := s.last()
		s.Equal("/v3.0/data/cities", req.Path)
		s.Equal("IN", req.Query.Get("countryCode"))
	})

	s.Run("analytics", func() {
		_, err := s.client().Analytics(ctx, hotel.AnalyticsDetailed, hotel.AnalyticsRange{From: "2026-01-01", To: "2026-01-31"})
		s.Require().NoError(err)
		req := s.last()
		s.Equal("/v3.0/analytics/report", req.Path)
		s.JSONEq(`{"from":"2026-01-01","to":"2026-01-31"}`, string(req.Body))
	})
}

func TestHealth(t *testing.T) {
	cfg := config.NewTestConfig()
	cfg.LiteAPI.Key = "abcdef123456"
	c := liteapi.NewClient(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), metrics.NewRecorder(), clock.NewRealClock())

	h := c.Health()
	assert.True(t, h.OK)
	assert.True(t, h.KeyConfigured)
	assert.Equal(t, "3456", h.KeySuffix)
	assert.Equal(t, "X-API-Key", h.AuthHeaderName)

	b, err := json.Marshal(h)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "abcdef123456")
}
