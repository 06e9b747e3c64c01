//go:generate mockgen -source=contracts.go -destination=tracking_mocks_test.go -package=tracking_test

package tracking

import (
	"context"

	"dispatch-platform/internal/domain"
)

// LocationPort is the subset of the shift tracker the Processor needs.
type LocationPort interface {
	UpdateLocation(ctx context.Context, ping domain.LocationPing) error
}
