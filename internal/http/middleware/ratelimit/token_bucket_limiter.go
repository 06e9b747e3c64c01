package ratelimit

import (
	"math"
	"sync"
	"time"
)

// Config stores TokenBucketLimiter settings.
type Config struct {
	Rate       float64       // tokens per second
	Burst      int           // bucket capacity
	TTL        time.Duration // idle buckets older than this are dropped; 0 keeps them
	MaxBuckets int           // 0 is unbounded
}

func (c Config) normalized() Config {
	if c.Rate <= 0 {
		c.Rate = 1
	}
	if c.Burst <= 0 {
		c.Burst = 1
	}
	if c.MaxBuckets < 0 {
		c.MaxBuckets = 0
	}
	return c
}

// sweepEvery is how often idle buckets are collected.
func (c Config) sweepEvery() time.Duration {
	return max(time.Minute, c.TTL/2)
}

type bucket struct {
	tokens  float64
	updated time.Time
}

func (b *bucket) take(now time.Time, rate, capacity float64) bool {
	if elapsed := now.Sub(b.updated); elapsed > 0 {
		b.tokens = math.Min(capacity, b.tokens+elapsed.Seconds()*rate)
		b.updated = now
	}
	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

// TokenBucketLimiter keeps one token bucket per key behind a single lock.
type TokenBucketLimiter struct {
	cfg   Config
	clock Clock

	mu        sync.Mutex
	buckets   map[string]*bucket
	lastSweep time.Time
}

// NewTokenBucketLimiter returns a limiter reading time from clock. A nil
// clock means the wall clock.
func NewTokenBucketLimiter(clock Clock, cfg Config) *TokenBucketLimiter {
	if clock == nil {
		clock = RealClock{}
	}
	return &TokenBucketLimiter{
		cfg:     cfg.normalized(),
		clock:   clock,
		buckets: map[string]*bucket{},
	}
}

// Allow takes one token from the bucket of key. A new key is denied while
// MaxBuckets buckets exist and none of them has been idle past TTL.
func (l *TokenBucketLimiter) Allow(key string) bool {
	now := l.clock.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.cfg.TTL > 0 && (l.lastSweep.IsZero() || now.Sub(l.lastSweep) >= l.cfg.sweepEvery()) {
		l.lastSweep = now
		l.dropIdle(now)
	}

	b, ok := l.buckets[key]
	if !ok {
		if l.full() {
			l.dropIdle(now)
			if l.full() {
				return false
			}
		}
		b = &bucket{tokens: float64(l.cfg.Burst), updated: now}
		l.buckets[key] = b
	}
	return b.take(now, l.cfg.Rate, float64(l.cfg.Burst))
}

func (l *TokenBucketLimiter) full() bool {
	return l.cfg.MaxBuckets > 0 && len(l.buckets) >= l.cfg.MaxBuckets
}

// dropIdle must be called with l.mu held.
func (l *TokenBucketLimiter) dropIdle(now time.Time) {
	if l.cfg.TTL <= 0 {
		return
	}
	for k, b := range l.buckets {
		if now.Sub(b.updated) > l.cfg.TTL {
			delete(l.buckets, k)
		}
	}
}
