// Package driver administers the drivers of a tenant.
package driver

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"dispatch-platform/internal/apperr"
	"dispatch-platform/internal/domain"
	"dispatch-platform/internal/logx"
)

const maxPageSize = 200

// Service coordinates driver business logic and orchestrates repository calls.
type Service struct {
	repo             driverRepository
	logger           logx.Logger
	operationTimeout time.Duration
}

// NewService creates and configures a driver Service.
func NewService(r driverRepository, logger logx.Logger, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{repo: r, logger: logger, operationTimeout: timeout}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// validateCreate validates a driver for creation and fills defaults.
func validateCreate(d *domain.Driver) error {
	if d == nil {
		return apperr.ErrInvalid
	}
	d.Name = strings.TrimSpace(d.Name)
	if d.Name == "" {
		return apperr.ErrInvalid
	}
	if !domain.ValidatePhone(d.Phone) {
		return apperr.ErrInvalid
	}
	if d.Employment == "" {
		d.Employment = domain.EmploymentContractor
	}
	if !d.Employment.Valid() {
		return apperr.ErrInvalid
	}
	return nil
}

func validateUpdate(u *domain.PartialDriverUpdate) error {
	if u.ID == uuid.Nil {
		return apperr.ErrInvalid
	}
	if u.Name == nil && u.Phone == nil && u.Employment == nil {
		return apperr.ErrInvalid
	}
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		return apperr.ErrInvalid
	}
	if u.Phone != nil && !domain.ValidatePhone(*u.Phone) {
		return apperr.ErrInvalid
	}
	if u.Employment != nil && !u.Employment.Valid() {
		return apperr.ErrInvalid
	}
	return nil
}

func validatePage(limit, offset *int) error {
	if limit != nil && (*limit < 1 || *limit > maxPageSize) {
		return apperr.ErrInvalid
	}
	if offset != nil && *offset < 0 {
		return apperr.ErrInvalid
	}
	return nil
}

// Get retrieves a driver of the tenant.
func (s *Service) Get(ctx context.Context, tenantID, id uuid.UUID) (*domain.Driver, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	d, err := s.repo.Get(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, apperr.ErrNotFound
	}
	return d, nil
}

// List returns drivers of the tenant with optional pagination.
func (s *Service) List(ctx context.Context, tenantID uuid.UUID, limit, offset *int) ([]domain.Driver, error) {
	if err := validatePage(limit, offset); err != nil {
		return nil, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.List(ctx, tenantID, limit, offset)
}

// Create persists a new active driver in the tenant.
func (s *Service) Create(ctx context.Context, tenantID uuid.UUID, d *domain.Driver) (*domain.Driver, error) {
	if err := validateCreate(d); err != nil {
		return nil, err
	}
	d.ID = uuid.New()
	d.TenantID = tenantID
	d.Status = domain.DriverActive

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	if err := s.repo.Create(ctx, d); err != nil {
		return nil, err
	}

	s.logger.Info("driver created",
		logx.String("event", "driver_created"),
		logx.String("tenant_id", tenantID.String()),
		logx.String("driver_id", d.ID.String()),
	)
	return d, nil
}

// UpdatePartial applies a partial update to a driver of the tenant.
func (s *Service) UpdatePartial(ctx context.Context, tenantID uuid.UUID, u domain.PartialDriverUpdate) (*domain.Driver, error) {
	if err := validateUpdate(&u); err != nil {
		return nil, err
	}
	if u.Name != nil {
		name := strings.TrimSpace(*u.Name)
		u.Name = &name
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	d, err := s.repo.UpdatePartial(ctx, tenantID, u)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, apperr.ErrNotFound
	}
	return d, nil
}

// Disable soft-disables a driver. Disabled drivers keep their history but
// can neither start shifts nor receive orders.
func (s *Service) Disable(ctx context.Context, tenantID, id uuid.UUID) (*domain.Driver, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	d, err := s.repo.SetStatus(ctx, tenantID, id, domain.DriverDisabled)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, apperr.ErrNotFound
	}

	s.logger.Info("driver disabled",
		logx.String("event", "driver_disabled"),
		logx.String("tenant_id", tenantID.String()),
		logx.String("driver_id", id.String()),
	)
	return d, nil
}
