//go:generate mockgen -source=contracts.go -destination=matching_mocks_test.go -package=matching

package matching

import (
	"context"

	"github.com/google/uuid"

	"dispatch-platform/internal/domain"
)

type shiftSource interface {
	Active(ctx context.Context, tenantID uuid.UUID) ([]domain.ActiveShift, error)
}

type geocoder interface {
	Geocode(ctx context.Context, address string) (domain.Place, error)
}

type counter interface {
	Inc()
}
