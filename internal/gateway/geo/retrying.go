package geo

import (
	"context"
	"errors"
	"net"
	"net/url"
	"time"

	"dispatch-platform/internal/domain"
	"dispatch-platform/internal/logx"
)

type provider interface {
	Geocode(ctx context.Context, address string) (domain.Place, error)
	Route(ctx context.Context, origin, destination string) (domain.Route, error)
}

type counter interface {
	Inc()
}

// RetryConfig describes RetryingGateway behaviour.
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// RetryingGateway retries temporary provider failures with exponential backoff.
type RetryingGateway struct {
	next    provider
	logger  logx.Logger
	retries counter
	cfg     RetryConfig
}

// NewRetryingGateway wraps next; it returns nil when next is nil.
func NewRetryingGateway(next provider, logger logx.Logger, retries counter, cfg RetryConfig) *RetryingGateway {
	if next == nil {
		return nil
	}
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &RetryingGateway{next: next, logger: logger, retries: retries, cfg: cfg}
}

// Geocode retries Client.Geocode.
func (g *RetryingGateway) Geocode(ctx context.Context, address string) (domain.Place, error) {
	return retry(ctx, g, "Geocode", func() (domain.Place, error) {
		return g.next.Geocode(ctx, address)
	})
}

// Route retries Client.Route.
func (g *RetryingGateway) Route(ctx context.Context, origin, destination string) (domain.Route, error) {
	return retry(ctx, g, "Route", func() (domain.Route, error) {
		return g.next.Route(ctx, origin, destination)
	})
}

func retry[T any](ctx context.Context, g *RetryingGateway, method string, call func() (T, error)) (T, error) {
	var (
		zero    T
		lastErr error
	)
	for attempt := 1; attempt <= g.cfg.MaxAttempts; attempt++ {
		v, err := call()
		if err == nil {
			return v, nil
		}
		lastErr = err
		if ctx.Err() != nil || attempt == g.cfg.MaxAttempts || !isRetryable(err) {
			break
		}
		delay := backoff(g.cfg.BaseDelay, g.cfg.MaxDelay, attempt)
		if g.retries != nil {
			g.retries.Inc()
		}
		g.logger.Warn("geo gateway retry",
			logx.String("method", method),
			logx.Int("attempt", attempt),
			logx.Duration("delay", delay),
			logx.Err(err),
		)
		if !sleepWithContext(ctx, delay) {
			break
		}
	}
	return zero, lastErr
}

// isRetryable reports whether err is a transport failure or a temporary provider status.
func isRetryable(err error) bool {
	if errors.Is(err, ErrNoResult) || errors.Is(err, context.Canceled) {
		return false
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.Temporary()
	}
	var ue *url.Error
	if errors.As(err, &ue) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne)
}

// backoff computes the delay before the next attempt.
func backoff(base, max time.Duration, attempt int) time.Duration {
	d := base
	for i := 1; i < attempt; i++ {
		if d >= max {
			return max
		}
		d <<= 1
	}
	if d > max {
		return max
	}
	return d
}

func sleepWithContext(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
