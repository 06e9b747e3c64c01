package ratelimit

import (
	"io"
	"net"
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"dispatch-platform/internal/logx"
)

// KeyFunc derives the bucket key of a request.
type KeyFunc func(r *http.Request) string

// Middleware rejects requests whose bucket is empty with 429.
type Middleware struct {
	logger  logx.Logger
	counter prometheus.Counter
	limiter Limiter
	key     KeyFunc
}

// New creates a Middleware keyed by client IP. A nil limiter allows everything.
func New(logger logx.Logger, counter prometheus.Counter, limiter Limiter) *Middleware {
	if limiter == nil {
		limiter = NopLimiter{}
	}
	return &Middleware{
		logger:  logger,
		counter: counter,
		limiter: limiter,
		key:     clientIP,
	}
}

// WithKey replaces the bucket key function.
func (m *Middleware) WithKey(k KeyFunc) *Middleware {
	if k != nil {
		m.key = k
	}
	return m
}

// TenantIPKey keys buckets by tenant selector and client IP, so tenants
// behind one NAT do not share a bucket.
func TenantIPKey(header string) KeyFunc {
	return func(r *http.Request) string {
		sel := strings.ToLower(strings.TrimSpace(r.Header.Get(header)))
		if sel == "" {
			return clientIP(r)
		}
		return sel + "|" + clientIP(r)
	}
}

// Handler returns chi-style middleware.
func (m *Middleware) Handler() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := m.key(r)
			if m.limiter.Allow(key) {
				next.ServeHTTP(w, r)
				return
			}

			if m.counter != nil {
				m.counter.Inc()
			}
			m.logger.Warn("rate limit exceeded",
				logx.String("key", key),
				logx.String("method", r.Method),
				logx.String("path", r.URL.Path),
			)
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)
			if _, err := io.WriteString(w, `{"error":"too many requests"}`); err != nil {
				// the client may have hung up
				m.logger.Debug("rate limit response write failed",
					logx.String("key", key),
					logx.Err(err),
				)
			}
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil && host != "" {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return "unknown"
}
