package handlers

import (
	"context"

	"github.com/google/uuid"

	"dispatch-platform/internal/domain"
	"dispatch-platform/internal/service/pricing"
	"dispatch-platform/internal/service/tenant"
)

type tenantUsecase interface {
	Create(ctx context.Context, in tenant.NewTenant) (*domain.Tenant, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) (*domain.Tenant, error)
	Settings(ctx context.Context, tenantID uuid.UUID) (*domain.Tenant, error)
	UpdateSettings(ctx context.Context, tenantID uuid.UUID, p domain.Pricing, l domain.Locale) (*domain.Tenant, error)
}

type driverUsecase interface {
	Get(ctx context.Context, tenantID, id uuid.UUID) (*domain.Driver, error)
	List(ctx context.Context, tenantID uuid.UUID, limit, offset *int) ([]domain.Driver, error)
	Create(ctx context.Context, tenantID uuid.UUID, d *domain.Driver) (*domain.Driver, error)
	UpdatePartial(ctx context.Context, tenantID uuid.UUID, u domain.PartialDriverUpdate) (*domain.Driver, error)
	Disable(ctx context.Context, tenantID, id uuid.UUID) (*domain.Driver, error)
}

type shiftUsecase interface {
	Start(ctx context.Context, tenantID, driverID uuid.UUID, loc *domain.Point) (*domain.Shift, error)
	Stop(ctx context.Context, tenantID, shiftID uuid.UUID, loc *domain.Point) (*domain.Shift, error)
	Active(ctx context.Context, tenantID uuid.UUID) ([]domain.ActiveShift, error)
	UpdateLocation(ctx context.Context, ping domain.LocationPing) error
}

type quoteUsecase interface {
	Quote(ctx context.Context, tenantID uuid.UUID, req pricing.Request) (domain.Quote, error)
}

type orderUsecase interface {
	Create(ctx context.Context, tenantID uuid.UUID, in domain.NewOrder) (*domain.Order, error)
	Get(ctx context.Context, tenantID, id uuid.UUID) (*domain.Order, error)
	List(ctx context.Context, tenantID uuid.UUID, f domain.OrderFilter) ([]domain.Order, error)
	ListByDriver(ctx context.Context, tenantID, driverID uuid.UUID, f domain.OrderFilter) ([]domain.Order, error)
	Unassign(ctx context.Context, tenantID, id uuid.UUID) (*domain.Order, error)
	SetStatus(ctx context.Context, tenantID, id uuid.UUID, c domain.StatusChange) (*domain.Order, error)
}

type dispatchUsecase interface {
	Approve(ctx context.Context, tenantID, orderID uuid.UUID) (*domain.Order, error)
	Candidates(ctx context.Context, tenantID, orderID uuid.UUID) ([]domain.Candidate, error)
	Assign(ctx context.Context, tenantID, orderID, driverID uuid.UUID) (*domain.Order, error)
	AssignNearest(ctx context.Context, tenantID, orderID uuid.UUID) (*domain.Order, error)
}
