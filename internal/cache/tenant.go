// Package cache keeps resolved tenants close to the request path.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	redis "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"dispatch-platform/internal/domain"
)

// TenantCache stores tenants by subdomain.
type TenantCache interface {
	Get(ctx context.Context, subdomain string) (*domain.Tenant, bool, error)
	Set(ctx context.Context, t *domain.Tenant) error
	Invalidate(ctx context.Context, subdomain string) error
}

// tombstone marks a recently invalidated key. Get reports it as a miss and
// Set cannot overwrite it until it expires.
const tombstone = "-"

const defaultInvalidationHold = 30 * time.Second

// RedisTenantCache is a TenantCache backed by redis string keys with a TTL.
//
// Invalidate leaves a tombstone for the hold period instead of deleting the
// key, and Set only writes absent keys. A resolver that read the store before
// an invalidation therefore cannot repopulate the entry with the old tenant,
// as long as the hold outlasts a resolve.
type RedisTenantCache struct {
	client *redis.Client
	ttl    time.Duration
	hold   time.Duration
	prefix string
}

// NewRedisTenantCache creates a cache over client.
func NewRedisTenantCache(client *redis.Client, ttl time.Duration) *RedisTenantCache {
	return &RedisTenantCache{client: client, ttl: ttl, hold: defaultInvalidationHold, prefix: "dispatch:tenant:"}
}

// WithInvalidationHold sets how long an invalidated key refuses writes.
func (c *RedisTenantCache) WithInvalidationHold(d time.Duration) *RedisTenantCache {
	if d > 0 {
		c.hold = d
	}
	return c
}

func (c *RedisTenantCache) key(subdomain string) string { return c.prefix + subdomain }

// Get returns the cached tenant; ok is false on a miss.
func (c *RedisTenantCache) Get(ctx context.Context, subdomain string) (*domain.Tenant, bool, error) {
	raw, err := c.client.Get(ctx, c.key(subdomain)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache get %q: %w", subdomain, err)
	}
	if string(raw) == tombstone {
		return nil, false, nil
	}
	t, err := decodeTenant(raw)
	if err != nil {
		return nil, false, fmt.Errorf("cache decode %q: %w", subdomain, err)
	}
	return t, true, nil
}

// Set stores t under its subdomain unless the key is held by an entry or a
// tombstone.
func (c *RedisTenantCache) Set(ctx context.Context, t *domain.Tenant) error {
	raw, err := encodeTenant(t)
	if err != nil {
		return err
	}
	if err := c.client.SetNX(ctx, c.key(t.Subdomain), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set %q: %w", t.Subdomain, err)
	}
	return nil
}

// Invalidate replaces the cached entry with a tombstone.
func (c *RedisTenantCache) Invalidate(ctx context.Context, subdomain string) error {
	if err := c.client.Set(ctx, c.key(subdomain), tombstone, c.hold).Err(); err != nil {
		return fmt.Errorf("cache invalidate %q: %w", subdomain, err)
	}
	return nil
}

// Nop is a TenantCache that never hits.
type Nop struct{}

// Get always misses.
func (Nop) Get(context.Context, string) (*domain.Tenant, bool, error) { return nil, false, nil }

// Set does nothing.
func (Nop) Set(context.Context, *domain.Tenant) error { return nil }

// Invalidate does nothing.
func (Nop) Invalidate(context.Context, string) error { return nil }

type cachedTenant struct {
	ID               uuid.UUID       `json:"id"`
	Subdomain        string          `json:"subdomain"`
	Name             string          `json:"name"`
	Active           bool            `json:"active"`
	BasePrice        decimal.Decimal `json:"base_price"`
	PerKmRate        decimal.Decimal `json:"per_km_rate"`
	ExpressSurcharge decimal.Decimal `json:"express_surcharge"`
	HeavySurcharge   decimal.Decimal `json:"heavy_surcharge"`
	MinPrice         decimal.Decimal `json:"min_price"`
	MaxPrice         decimal.Decimal `json:"max_price"`
	RoundToWhole     bool            `json:"round_to_whole_unit"`
	Currency         string          `json:"currency"`
	Timezone         string          `json:"timezone"`
	CreatedAt        time.Time       `json:"created_at"`
}

func encodeTenant(t *domain.Tenant) ([]byte, error) {
	p := t.Pricing
	return json.Marshal(cachedTenant{
		ID: t.ID, Subdomain: t.Subdomain, Name: t.Name, Active: t.Active,
		BasePrice: p.BasePrice, PerKmRate: p.PerKmRate,
		ExpressSurcharge: p.ExpressSurcharge, HeavySurcharge: p.HeavySurcharge,
		MinPrice: p.MinPrice, MaxPrice: p.MaxPrice, RoundToWhole: p.RoundToWholeUnit,
		Currency: t.Locale.Currency, Timezone: t.Locale.Timezone, CreatedAt: t.CreatedAt,
	})
}

func decodeTenant(raw []byte) (*domain.Tenant, error) {
	var c cachedTenant
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	return &domain.Tenant{
		ID: c.ID, Subdomain: c.Subdomain, Name: c.Name, Active: c.Active,
		Pricing: domain.Pricing{
			BasePrice: c.BasePrice, PerKmRate: c.PerKmRate,
			ExpressSurcharge: c.ExpressSurcharge, HeavySurcharge: c.HeavySurcharge,
			MinPrice: c.MinPrice, MaxPrice: c.MaxPrice, RoundToWholeUnit: c.RoundToWhole,
		},
		Locale:    domain.Locale{Currency: c.Currency, Timezone: c.Timezone},
		CreatedAt: c.CreatedAt,
	}, nil
}
