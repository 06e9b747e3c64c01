//go:build integration

package repository_test

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"dispatch-platform/internal/domain"
	"dispatch-platform/internal/repository"
)

type requireT interface {
	require.TestingT
	Helper()
}

func seedTenant(t requireT, ctx context.Context) *domain.Tenant {
	t.Helper()
	tn := &domain.Tenant{
		ID:        uuid.New(),
		Subdomain: fmt.Sprintf("t-%s", uuid.NewString()[:8]),
		Name:      "Acme",
		Active:    true,
		Pricing:   domain.DefaultPricing(),
		Locale:    domain.DefaultLocale(),
	}
	require.NoError(t, repository.NewTenantRepo(tcPool).Create(ctx, tn))
	return tn
}

func seedDriver(t requireT, ctx context.Context, tenantID uuid.UUID, name string) *domain.Driver {
	t.Helper()
	d := &domain.Driver{
		ID:         uuid.New(),
		TenantID:   tenantID,
		Name:       name,
		Phone:      fmt.Sprintf("+43%010d", rand.IntN(1_000_000_000)),
		Employment: domain.EmploymentContractor,
		Status:     domain.DriverActive,
	}
	require.NoError(t, repository.NewDriverRepo(tcPool).Create(ctx, d))
	return d
}

func seedOrder(t requireT, ctx context.Context, tenantID uuid.UUID, source domain.OrderSource) *domain.Order {
	t.Helper()
	o := &domain.Order{
		ID:          uuid.New(),
		TenantID:    tenantID,
		Sender:      domain.Party{Name: "Shop", Address: "Stephansplatz 1, Wien"},
		Recipient:   domain.Party{Name: "Eva", Address: "Praterstern 1, Wien"},
		Package:     domain.Package{Description: "box", WeightKg: 2},
		Amount:      domain.DefaultPricing().BasePrice,
		Currency:    "EUR",
		DistanceKm:  3.2,
		DurationMin: 9,
		Source:      source,
		Status:      source.InitialStatus(),
	}
	require.NoError(t, repository.NewOrderRepo(tcPool).Create(ctx, o))
	return o
}
