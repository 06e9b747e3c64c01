package driver

import (
	"context"

	"github.com/google/uuid"

	"dispatch-platform/internal/domain"
)

// driverRepository defines storage operations required by the business layer.
type driverRepository interface {
	Get(ctx context.Context, tenantID, id uuid.UUID) (*domain.Driver, error)
	List(ctx context.Context, tenantID uuid.UUID, limit, offset *int) ([]domain.Driver, error)
	Create(ctx context.Context, d *domain.Driver) error
	UpdatePartial(ctx context.Context, tenantID uuid.UUID, u domain.PartialDriverUpdate) (*domain.Driver, error)
	SetStatus(ctx context.Context, tenantID, id uuid.UUID, status domain.DriverStatus) (*domain.Driver, error)
}
