//go:build unit

package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"smartstay-gateway/internal/infra/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecorder(t *testing.T) {
	t.Run("observe counts per label set", func(t *testing.T) {
		r := metrics.NewRecorder()
		r.Observe("liteapi", "prebook", metrics.OutcomeSuccess, 120*time.Millisecond)
		r.Observe("liteapi", "prebook", metrics.OutcomeSuccess, 80*time.Millisecond)
		r.Observe("liteapi", "prebook", metrics.OutcomeError, time.Second)

		n, err := testutil.GatherAndCount(r.Registry(), "smartstay_upstream_requests_total")
		assert.NoError(t, err)
		assert.Equal(t, 2, n)

		rec := httptest.NewRecorder()
		r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `smartstay_upstream_requests_total{operation="prebook",outcome="success",vendor="liteapi"} 2`)
		assert.Contains(t, rec.Body.String(), `smartstay_upstream_request_duration_seconds_count{operation="prebook",vendor="liteapi"} 3`)
	})

	t.Run("count leaves the histogram alone", func(t *testing.T) {
		r := metrics.NewRecorder()
		r.Count("gemini", "gemini-1.5-pro", metrics.OutcomeSkipped)

		n, err := testutil.GatherAndCount(r.Registry(), "smartstay_upstream_request_duration_seconds")
		assert.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("nil recorder is a no-op", func(t *testing.T) {
		var r *metrics.Recorder
		assert.NotPanics(t, func() { r.Observe("gemini", "chat", metrics.OutcomeSuccess, 0) })
		assert.NotPanics(t, func() { r.Count("gemini", "chat", metrics.OutcomeSkipped) })
	})
}
