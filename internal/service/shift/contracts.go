//go:generate mockgen -source=contracts.go -destination=shift_mocks_test.go -package=shift

package shift

import (
	"context"
	"time"

	"github.com/google/uuid"

	"dispatch-platform/internal/domain"
)

type shiftRepository interface {
	Start(ctx context.Context, tenantID, driverID uuid.UUID, loc *domain.Point) (*domain.Shift, error)
	Stop(ctx context.Context, tenantID, shiftID uuid.UUID, loc *domain.Point) (*domain.Shift, error)
	Active(ctx context.Context, tenantID uuid.UUID) ([]domain.ActiveShift, error)
	UpdateLocation(ctx context.Context, tenantID, driverID uuid.UUID, p domain.Point, at time.Time) (bool, error)
}
