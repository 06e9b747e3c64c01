package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// NewRateLimitExceededTotal returns a Prometheus counter for the number of rejected HTTP requests due to rate limiting
func NewRateLimitExceededTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Total number of rejected HTTP requests due to rate limiting",
	})
}

// NewGatewayRetriesTotal returns a Prometheus counter for the number of retry attempts performed by gateways
func NewGatewayRetriesTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "gateway_retries_total",
		Help: "Total number of retry attempts performed by gateways",
	})
}

// NewAssignConflictsTotal counts assign calls that lost the check-and-set.
func NewAssignConflictsTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dispatch_assign_conflicts_total",
		Help: "Total number of order assignments rejected because the order was already assigned",
	})
}

// NewGeocodeFallbackTotal counts candidate searches that fell back to unordered results.
func NewGeocodeFallbackTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "matcher_geocode_fallback_total",
		Help: "Total number of candidate searches returned unordered because geocoding failed",
	})
}

// NewQuoteFailuresTotal counts quotes that failed for lack of a route.
func NewQuoteFailuresTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "quote_failures_total",
		Help: "Total number of quotes that failed because no route was available",
	})
}

// NewEventPublishFailuresTotal counts order events that could not be published.
func NewEventPublishFailuresTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "order_events_publish_failures_total",
		Help: "Total number of order transition events that failed to publish",
	})
}

// RegisterCounter registers c with reg. When an equal counter is already
// registered, the existing one is returned instead.
func RegisterCounter(reg prometheus.Registerer, c prometheus.Counter) (prometheus.Counter, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
		}
		return nil, err
	}
	return c, nil
}
