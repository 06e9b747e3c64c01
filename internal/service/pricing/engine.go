// Package pricing quotes deliveries from route distance and tenant pricing.
package pricing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"dispatch-platform/internal/apperr"
	"dispatch-platform/internal/domain"
	"dispatch-platform/internal/logx"
)

// Request describes a prospective delivery.
type Request struct {
	Origin      string
	Destination string
	Express     bool
	Heavy       bool
}

// Engine computes quotes. It never caches or persists them.
type Engine struct {
	tenants          tenantReader
	routes           router
	failures         counter
	logger           logx.Logger
	operationTimeout time.Duration
}

// NewEngine creates a quote Engine. failures may be nil.
func NewEngine(tenants tenantReader, routes router, failures counter, logger logx.Logger, timeout time.Duration) *Engine {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Engine{
		tenants:          tenants,
		routes:           routes,
		failures:         failures,
		logger:           logger,
		operationTimeout: timeout,
	}
}

// Quote routes origin to destination and prices the result with the tenant's
// configuration. Any routing failure is apperr.ErrRouteUnavailable.
func (e *Engine) Quote(ctx context.Context, tenantID uuid.UUID, req Request) (domain.Quote, error) {
	req.Origin = strings.TrimSpace(req.Origin)
	req.Destination = strings.TrimSpace(req.Destination)
	if req.Origin == "" || req.Destination == "" {
		return domain.Quote{}, apperr.ErrInvalid
	}

	t, err := e.tenant(ctx, tenantID)
	if err != nil {
		return domain.Quote{}, err
	}

	route, err := e.routes.Route(ctx, req.Origin, req.Destination)
	if err != nil {
		if e.failures != nil {
			e.failures.Inc()
		}
		e.logger.Warn("quote routing failed",
			logx.String("tenant_id", tenantID.String()),
			logx.Err(err),
		)
		return domain.Quote{}, fmt.Errorf("%w: %w", apperr.ErrRouteUnavailable, err)
	}

	return domain.Quote{
		DistanceKm:  route.DistanceKm,
		DurationMin: route.DurationMin,
		Price:       Price(t.Pricing, t.Locale.Currency, route.DistanceKm, req.Express, req.Heavy),
		Currency:    t.Locale.Currency,
	}, nil
}

func (e *Engine) tenant(ctx context.Context, id uuid.UUID) (*domain.Tenant, error) {
	ctx, cancel := context.WithTimeout(ctx, e.operationTimeout)
	defer cancel()
	t, err := e.tenants.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, apperr.ErrTenantNotFound
	}
	return t, nil
}

// Price applies the formula base + km*perKm + surcharges, clamps the result to
// [MinPrice, MaxPrice] and rounds up to the currency's smallest unit, or to a
// whole unit when the tenant asks for it. The result never exceeds MaxPrice.
func Price(p domain.Pricing, currency string, distanceKm float64, express, heavy bool) decimal.Decimal {
	if distanceKm < 0 {
		distanceKm = 0
	}
	raw := p.BasePrice.Add(decimal.NewFromFloat(distanceKm).Mul(p.PerKmRate))
	if express {
		raw = raw.Add(p.ExpressSurcharge)
	}
	if heavy {
		raw = raw.Add(p.HeavySurcharge)
	}
	clamped := decimal.Max(p.MinPrice, decimal.Min(raw, p.MaxPrice))

	scale := domain.MinorUnitScale(currency)
	if p.RoundToWholeUnit {
		scale = 0
	}
	out := clamped.RoundCeil(scale)
	if out.GreaterThan(p.MaxPrice) {
		return p.MaxPrice
	}
	return out
}
