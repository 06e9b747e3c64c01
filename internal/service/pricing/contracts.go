//go:generate mockgen -source=contracts.go -destination=pricing_mocks_test.go -package=pricing

package pricing

import (
	"context"

	"github.com/google/uuid"

	"dispatch-platform/internal/domain"
)

type tenantReader interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Tenant, error)
}

type router interface {
	Route(ctx context.Context, origin, destination string) (domain.Route, error)
}

type counter interface {
	Inc()
}
