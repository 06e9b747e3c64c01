package ratelimit

import "time"

// Limiter decides whether a request with the given key may proceed.
type Limiter interface {
	Allow(key string) bool
}

// Clock is the time source of a limiter; tests substitute a manual one.
type Clock interface {
	Now() time.Time
}

// RealClock reads the wall clock.
type RealClock struct{}

// Now returns time.Now.
func (RealClock) Now() time.Time { return time.Now() }

// NopLimiter admits everything; it stands in when limiting is switched off.
type NopLimiter struct{}

// Allow always reports true.
func (NopLimiter) Allow(string) bool { return true }

var (
	_ Limiter = NopLimiter{}
	_ Limiter = (*TokenBucketLimiter)(nil)
)
