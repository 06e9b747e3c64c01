package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"dispatch-platform/internal/logx"
)

var metricLabels = []string{"method", "path", "status"}

var (
	requestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, metricLabels)
	requestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests.",
		Buckets: prometheus.DefBuckets,
	}, metricLabels)
)

func init() {
	prometheus.MustRegister(requestsTotal, requestDuration)
}

// Observability records request metrics labelled by route pattern and writes
// one access line per request. Server errors are logged at error level.
func Observability(logger logx.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			elapsed := time.Since(start)
			status := ww.Status()
			// raw paths carry ids and would blow up label cardinality
			path := routePattern(r)
			lv := []string{r.Method, path, strconv.Itoa(status)}
			requestsTotal.WithLabelValues(lv...).Inc()
			requestDuration.WithLabelValues(lv...).Observe(elapsed.Seconds())

			log := logger.Info
			if status >= http.StatusInternalServerError {
				log = logger.Error
			}
			log("http request",
				logx.String("req_id", chimw.GetReqID(r.Context())),
				logx.String("method", r.Method),
				logx.String("path", path),
				logx.Int("status", status),
				logx.Int("bytes", ww.BytesWritten()),
				logx.String("remote_ip", r.RemoteAddr),
				logx.Duration("duration", elapsed),
			)
		})
	}
}

func routePattern(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil {
		if p := rc.RoutePattern(); p != "" {
			return p
		}
	}
	return r.URL.Path
}
