//go:generate mockgen -source=contracts.go -destination=order_mocks_test.go -package=order

package order

import (
	"context"

	"github.com/google/uuid"

	"dispatch-platform/internal/domain"
	"dispatch-platform/internal/service/pricing"
)

type orderRepository interface {
	Create(ctx context.Context, o *domain.Order) error
	Get(ctx context.Context, tenantID, id uuid.UUID) (*domain.Order, error)
	List(ctx context.Context, tenantID uuid.UUID, f domain.OrderFilter) ([]domain.Order, error)
	ListByDriver(ctx context.Context, tenantID, driverID uuid.UUID, f domain.OrderFilter) ([]domain.Order, error)
	Approve(ctx context.Context, tenantID, id uuid.UUID) (*domain.Order, error)
	Assign(ctx context.Context, tenantID, id, driverID uuid.UUID) (*domain.Order, error)
	Unassign(ctx context.Context, tenantID, id uuid.UUID) (*domain.Order, error)
	SetStatus(ctx context.Context, tenantID, id uuid.UUID, c domain.StatusChange) (*domain.Order, error)
}

type driverReader interface {
	Get(ctx context.Context, tenantID, id uuid.UUID) (*domain.Driver, error)
}

type quoter interface {
	Quote(ctx context.Context, tenantID uuid.UUID, req pricing.Request) (domain.Quote, error)
}

// Publisher delivers order events to downstream collaborators.
type Publisher interface {
	Publish(ctx context.Context, e domain.OrderEvent) error
}

type counter interface {
	Inc()
}
