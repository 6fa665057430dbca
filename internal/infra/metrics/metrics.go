package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "smartstay"

const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
	OutcomeTimeout = "timeout"
	OutcomeSkipped = "skipped"
)

// Recorder counts and times outbound vendor calls. Each Recorder owns its
// registry so tests can build as many as they like.
type Recorder struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	r := &Recorder{
		registry: reg,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_requests_total",
			Help:      "Outbound vendor calls by vendor, operation and outcome.",
		}, []string{"vendor", "operation", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_request_duration_seconds",
			Help:      "Latency of outbound vendor calls.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"vendor", "operation"}),
	}
	reg.MustRegister(
		r.requests,
		r.duration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// Observe records one finished call.
func (r *Recorder) Observe(vendor, operation, outcome string, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.requests.WithLabelValues(vendor, operation, outcome).Inc()
	r.duration.WithLabelValues(vendor, operation).Observe(elapsed.Seconds())
}

// Count records an outcome that made no call of its own, such as a skipped
// fallback model.
func (r *Recorder) Count(vendor, operation, outcome string) {
	if r == nil {
		return
	}
	r.requests.WithLabelValues(vendor, operation, outcome).Inc()
}

func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}
