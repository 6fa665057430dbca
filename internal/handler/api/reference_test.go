//go:build unit

package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"testing"
	"time"

	"smartstay-gateway/internal/domain/hotel"
	"smartstay-gateway/internal/handler/api"
	resdto "smartstay-gateway/internal/handler/dto/response"
	"smartstay-gateway/internal/infra/gemini"
	"smartstay-gateway/internal/infra/liteapi"
	"smartstay-gateway/internal/pkg/clock"
	"smartstay-gateway/internal/pkg/errs"
	"smartstay-gateway/tests/common/httptest"
	queriesmock "smartstay-gateway/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReferenceHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	setup := func(t *testing.T) (*gin.Engine, *queriesmock.MockReferenceQueries) {
		ctrl := gomock.NewController(t)
		q := queriesmock.NewMockReferenceQueries(ctrl)
		h := api.NewReferenceHandler(q)
		r := gin.New()
		r.GET("/data/:kind", h.Data)
		r.GET("/analytics/:kind", h.Analytics)
		return r, q
	}

	t.Run("reference kind and params are forwarded", func(t *testing.T) {
		r, q := setup(t)
		q.EXPECT().Reference(gomock.Any(), hotel.RefCities, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ hotel.ReferenceKind, params url.Values) (json.RawMessage, error) {
				assert.Equal(t, "IN", params.Get("countryCode"))
				return json.RawMessage(`{"data":[{"city":"Mumbai"}]}`), nil
			})

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/data/cities?countryCode=IN", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"data":[{"city":"Mumbai"}]}`, rec.Body.String())
	})

	t.Run("unknown kind is a 400", func(t *testing.T) {
		r, q := setup(t)
		q.EXPECT().Reference(gomock.Any(), hotel.ReferenceKind("planets"), gomock.Any()).
			Return(nil, errs.Validationf(`unknown reference data "planets"`))

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/data/planets", nil)
		httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "unknown reference data")
	})

	t.Run("analytics range", func(t *testing.T) {
		r, q := setup(t)
		q.EXPECT().Analytics(gomock.Any(), hotel.AnalyticsWeekly, hotel.AnalyticsRange{From: "2026-01-01", To: "2026-01-31"}).
			Return(json.RawMessage(`{"data":{}}`), nil)

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/analytics/weekly?from=2026-01-01&to=2026-01-31", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("analytics without range", func(t *testing.T) {
		r, _ := setup(t)
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/analytics/weekly", nil)
		httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "from and to are required")
	})
}

type fakeLiteProbe struct{ h liteapi.Health }

func (f fakeLiteProbe) Health() liteapi.Health { return f.h }

type fakeGeminiProbe struct {
	h      gemini.Health
	models []string
}

func (f fakeGeminiProbe) Health() gemini.Health { return f.h }
func (f fakeGeminiProbe) Models() []string      { return f.models }

func TestHealthHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	now := time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)

	setup := func(lite liteapi.Health, gem gemini.Health) *gin.Engine {
		h := api.NewHealthHandler(fakeLiteProbe{h: lite}, fakeGeminiProbe{h: gem, models: []string{gem.Model, "gemini-2.5-flash"}}, clock.NewMockClock(now))
		r := gin.New()
		r.GET("/api/health", h.Service)
		r.GET("/api/liteapi/health", h.LiteAPI)
		r.GET("/api/gemini/health", h.Gemini)
		return r
	}

	t.Run("service health never echoes secrets", func(t *testing.T) {
		r := setup(
			liteapi.Health{OK: true, BaseURL: "https://api.liteapi.travel/v3.0", KeyConfigured: true, KeySuffix: "3456"},
			gemini.Health{Configured: true, Model: "gemini-1.5-flash", KeySuffix: "wxyz"},
		)
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/api/health", nil)

		var body resdto.HealthResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.True(t, body.OK)
		assert.Equal(t, resdto.ServiceName, body.Service)
		assert.True(t, body.Time.Equal(now))
		assert.True(t, body.GeminiConfigured)
		assert.Equal(t, "set", body.LiteAPIBase)
		assert.NotContains(t, rec.Body.String(), "3456")
	})

	t.Run("missing configuration is reported, not failed", func(t *testing.T) {
		r := setup(liteapi.Health{OK: false, Error: "LiteAPI key not configured"}, gemini.Health{Model: "gemini-1.5-flash"})

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/api/health", nil)
		var body resdto.HealthResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.False(t, body.GeminiConfigured)
		assert.Equal(t, "missing", body.LiteAPIBase)

		rec = httptest.PerformRequest(t, r, http.MethodGet, "/api/liteapi/health", nil)
		var lite liteapi.Health
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &lite)
		assert.False(t, lite.OK)
		assert.Equal(t, "LiteAPI key not configured", lite.Error)
	})

	t.Run("gemini probe lists candidate models", func(t *testing.T) {
		r := setup(liteapi.Health{OK: true}, gemini.Health{Configured: true, Model: "gemini-1.5-flash", KeySuffix: "wxyz"})

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/api/gemini/health", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"ok":true,"configured":true,"model":"gemini-1.5-flash","models":["gemini-1.5-flash","gemini-2.5-flash"],"keySuffix":"wxyz"}`, rec.Body.String())
	})
}
