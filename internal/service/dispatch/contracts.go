//go:generate mockgen -source=contracts.go -destination=dispatch_mocks_test.go -package=dispatch

package dispatch

import (
	"context"

	"github.com/google/uuid"

	"dispatch-platform/internal/domain"
)

type orderLifecycle interface {
	Get(ctx context.Context, tenantID, id uuid.UUID) (*domain.Order, error)
	Approve(ctx context.Context, tenantID, id uuid.UUID) (*domain.Order, error)
	Assign(ctx context.Context, tenantID, id, driverID uuid.UUID) (*domain.Order, error)
}

type candidateFinder interface {
	FindCandidates(ctx context.Context, tenantID uuid.UUID, destination string) ([]domain.Candidate, error)
}
