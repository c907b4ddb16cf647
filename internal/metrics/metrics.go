package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	registerOnce sync.Once

	httpRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "moodscript_http_requests_total",
		Help: "Total number of handled HTTP requests.",
	}, []string{"method", "path", "status"})

	httpRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "moodscript_http_request_duration_seconds",
		Help:    "Duration of HTTP requests.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	httpRequestsInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "moodscript_http_requests_in_flight",
		Help: "Number of HTTP requests being served.",
	})

	rateLimitedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "moodscript_rate_limited_total",
		Help: "Requests rejected by the rate limiter.",
	}, []string{"scope"})

	entriesCreatedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "moodscript_entries_created_total",
		Help: "Journal entries published.",
	})

	outboundDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "moodscript_outbound_request_duration_seconds",
		Help:    "Duration of calls to image and quote providers.",
		Buckets: prometheus.DefBuckets,
	}, []string{"target", "status"})
)

// MustRegister registers package metrics in registerer. Repeated calls are no-ops.
func MustRegister(registerer prometheus.Registerer) {
	registerOnce.Do(func() {
		registerer.MustRegister(
			httpRequestsTotal,
			httpRequestDuration,
			httpRequestsInFlight,
			rateLimitedTotal,
			entriesCreatedTotal,
			outboundDuration,
		)
	})
}

func Handler() http.Handler {
	return promhttp.Handler()
}

const unmatchedRoute = "unmatched"

// Middleware records every request under its chi route pattern. Requests
// that match no route share one label so raw paths never become series.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		httpRequestsInFlight.Inc()
		defer httpRequestsInFlight.Dec()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		path := unmatchedRoute
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				path = pattern
			}
		}
		labels := []string{r.Method, path, strconv.Itoa(status)}
		httpRequestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
		httpRequestsTotal.WithLabelValues(labels...).Inc()
	})
}

func RateLimited(scope string) {
	rateLimitedTotal.WithLabelValues(scope).Inc()
}

func EntryCreated() {
	entriesCreatedTotal.Inc()
}

// OutboundObserver returns a callback for outbound clients reporting under target.
func OutboundObserver(target string) func(status int, elapsed time.Duration) {
	return func(status int, elapsed time.Duration) {
		outboundDuration.WithLabelValues(target, strconv.Itoa(status)).Observe(elapsed.Seconds())
	}
}
