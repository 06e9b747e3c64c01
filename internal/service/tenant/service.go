// Package tenant resolves tenant selectors and administers tenants.
package tenant

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"dispatch-platform/internal/apperr"
	"dispatch-platform/internal/cache"
	"dispatch-platform/internal/domain"
	"dispatch-platform/internal/logx"
	"dispatch-platform/internal/tenantctx"
)

// NewTenant is the input for tenant creation. Nil pricing or locale means defaults.
type NewTenant struct {
	Subdomain string
	Name      string
	Pricing   *domain.Pricing
	Locale    *domain.Locale
}

// Service resolves request scopes and manages tenants.
type Service struct {
	repo             tenantRepository
	cache            tenantCache
	logger           logx.Logger
	operationTimeout time.Duration
	now              func() time.Time
}

// NewService creates a tenant Service. A nil cache disables caching.
func NewService(r tenantRepository, c tenantCache, logger logx.Logger, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if c == nil {
		c = cache.Nop{}
	}
	return &Service{
		repo:             r,
		cache:            c,
		logger:           logger,
		operationTimeout: timeout,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// Resolve maps a tenant selector to a request scope.
// Unknown, malformed and inactive selectors all yield ErrTenantNotFound.
func (s *Service) Resolve(ctx context.Context, selector string) (tenantctx.Scope, error) {
	sub := domain.NormalizeSubdomain(selector)
	if !domain.ValidSubdomain(sub) {
		return tenantctx.Scope{}, apperr.ErrTenantNotFound
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	t, ok, err := s.cache.Get(ctx, sub)
	if err != nil {
		s.logger.Warn("tenant cache read failed", logx.String("subdomain", sub), logx.Err(err))
		ok = false
	}
	if !ok {
		t, err = s.repo.GetBySubdomain(ctx, sub)
		if err != nil {
			return tenantctx.Scope{}, err
		}
		if t != nil && t.Active {
			if err := s.cache.Set(ctx, t); err != nil {
				s.logger.Warn("tenant cache write failed", logx.String("subdomain", sub), logx.Err(err))
			}
		}
	}
	if t == nil || !t.Active {
		return tenantctx.Scope{}, apperr.ErrTenantNotFound
	}
	return tenantctx.Scope{TenantID: t.ID, Subdomain: t.Subdomain}, nil
}

func validateCreate(in NewTenant) error {
	if !domain.ValidSubdomain(domain.NormalizeSubdomain(in.Subdomain)) {
		return apperr.ErrInvalid
	}
	if strings.TrimSpace(in.Name) == "" {
		return apperr.ErrInvalid
	}
	if in.Pricing != nil && !in.Pricing.Valid() {
		return apperr.ErrInvalid
	}
	if in.Locale != nil && !in.Locale.Valid() {
		return apperr.ErrInvalid
	}
	return nil
}

// Create registers a new active tenant.
func (s *Service) Create(ctx context.Context, in NewTenant) (*domain.Tenant, error) {
	if err := validateCreate(in); err != nil {
		return nil, err
	}
	t := &domain.Tenant{
		ID:        uuid.New(),
		Subdomain: domain.NormalizeSubdomain(in.Subdomain),
		Name:      strings.TrimSpace(in.Name),
		Active:    true,
		Pricing:   domain.DefaultPricing(),
		Locale:    domain.DefaultLocale(),
		CreatedAt: s.now(),
	}
	if in.Pricing != nil {
		t.Pricing = *in.Pricing
	}
	if in.Locale != nil {
		t.Locale = *in.Locale
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}

	s.logger.Info("tenant created",
		logx.String("event", "tenant_created"),
		logx.String("tenant_id", t.ID.String()),
		logx.String("subdomain", t.Subdomain),
	)
	return t, nil
}

// SetActive toggles whether the tenant can be resolved.
func (s *Service) SetActive(ctx context.Context, id uuid.UUID, active bool) (*domain.Tenant, error) {
	if id == uuid.Nil {
		return nil, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	t, err := s.repo.SetActive(ctx, id, active)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, apperr.ErrNotFound
	}
	s.invalidate(ctx, t.Subdomain)

	s.logger.Info("tenant activity changed",
		logx.String("event", "tenant_active_changed"),
		logx.String("tenant_id", t.ID.String()),
		logx.Bool("active", active),
	)
	return t, nil
}

// Settings returns the tenant of the current request scope.
func (s *Service) Settings(ctx context.Context, tenantID uuid.UUID) (*domain.Tenant, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	t, err := s.repo.Get(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, apperr.ErrTenantNotFound
	}
	return t, nil
}

// UpdateSettings replaces pricing and locale. The subdomain never changes.
func (s *Service) UpdateSettings(ctx context.Context, tenantID uuid.UUID, p domain.Pricing, l domain.Locale) (*domain.Tenant, error) {
	if !p.Valid() || !l.Valid() {
		return nil, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	t, err := s.repo.UpdateSettings(ctx, tenantID, p, l)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, apperr.ErrTenantNotFound
	}
	s.invalidate(ctx, t.Subdomain)

	s.logger.Info("tenant settings updated",
		logx.String("event", "tenant_settings_updated"),
		logx.String("tenant_id", t.ID.String()),
		logx.String("currency", t.Locale.Currency),
	)
	return t, nil
}

func (s *Service) invalidate(ctx context.Context, subdomain string) {
	if err := s.cache.Invalidate(ctx, subdomain); err != nil {
		s.logger.Warn("tenant cache invalidate failed", logx.String("subdomain", subdomain), logx.Err(err))
	}
}
