package app

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"dispatch-platform/internal/metrics"
)

type metricsOut struct {
	dig.Out

	RateLimitExceededTotal    prometheus.Counter `name:"rate_limit_exceeded_total"`
	GatewayRetriesTotal       prometheus.Counter `name:"gateway_retries_total"`
	AssignConflictsTotal      prometheus.Counter `name:"dispatch_assign_conflicts_total"`
	GeocodeFallbackTotal      prometheus.Counter `name:"matcher_geocode_fallback_total"`
	QuoteFailuresTotal        prometheus.Counter `name:"quote_failures_total"`
	EventPublishFailuresTotal prometheus.Counter `name:"order_events_publish_failures_total"`
}

// provideMetrics registers the service counters with the default registry,
// reusing counters that are already registered.
func provideMetrics() (metricsOut, error) {
	reg := prometheus.DefaultRegisterer
	var out metricsOut

	counters := []struct {
		name string
		dst  *prometheus.Counter
		c    prometheus.Counter
	}{
		{"rate_limit_exceeded_total", &out.RateLimitExceededTotal, metrics.NewRateLimitExceededTotal()},
		{"gateway_retries_total", &out.GatewayRetriesTotal, metrics.NewGatewayRetriesTotal()},
		{"dispatch_assign_conflicts_total", &out.AssignConflictsTotal, metrics.NewAssignConflictsTotal()},
		{"matcher_geocode_fallback_total", &out.GeocodeFallbackTotal, metrics.NewGeocodeFallbackTotal()},
		{"quote_failures_total", &out.QuoteFailuresTotal, metrics.NewQuoteFailuresTotal()},
		{"order_events_publish_failures_total", &out.EventPublishFailuresTotal, metrics.NewEventPublishFailuresTotal()},
	}
	for _, c := range counters {
		got, err := metrics.RegisterCounter(reg, c.c)
		if err != nil {
			return metricsOut{}, fmt.Errorf("register %s: %w", c.name, err)
		}
		*c.dst = got
	}
	return out, nil
}
