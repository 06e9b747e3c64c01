//go:generate mockgen -source=contracts.go -destination=tenant_mocks_test.go -package=tenant

package tenant

import (
	"context"

	"github.com/google/uuid"

	"dispatch-platform/internal/domain"
)

type tenantRepository interface {
	Create(ctx context.Context, t *domain.Tenant) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Tenant, error)
	GetBySubdomain(ctx context.Context, subdomain string) (*domain.Tenant, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) (*domain.Tenant, error)
	UpdateSettings(ctx context.Context, id uuid.UUID, p domain.Pricing, l domain.Locale) (*domain.Tenant, error)
}

type tenantCache interface {
	Get(ctx context.Context, subdomain string) (*domain.Tenant, bool, error)
	Set(ctx context.Context, t *domain.Tenant) error
	Invalidate(ctx context.Context, subdomain string) error
}
