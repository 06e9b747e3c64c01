// Package shift tracks driver work shifts and their last known positions.
package shift

import (
	"context"
	"time"

	"github.com/google/uuid"

	"dispatch-platform/internal/apperr"
	"dispatch-platform/internal/domain"
	"dispatch-platform/internal/logx"
)

// Tracker starts and stops shifts. At most one open shift per driver is
// enforced by the store, so concurrent starts yield exactly one winner.
type Tracker struct {
	repo             shiftRepository
	logger           logx.Logger
	operationTimeout time.Duration
	now              func() time.Time
}

// NewTracker creates a shift Tracker.
func NewTracker(r shiftRepository, logger logx.Logger, timeout time.Duration) *Tracker {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Tracker{
		repo:             r,
		logger:           logger,
		operationTimeout: timeout,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

func (t *Tracker) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, t.operationTimeout)
}

func validPoint(p *domain.Point) bool {
	return p == nil || p.Valid()
}

// Start opens a RUNNING shift for the driver.
// It fails with apperr.ErrAlreadyActive when the driver already has an open shift.
func (t *Tracker) Start(ctx context.Context, tenantID, driverID uuid.UUID, loc *domain.Point) (*domain.Shift, error) {
	if driverID == uuid.Nil || !validPoint(loc) {
		return nil, apperr.ErrInvalid
	}
	ctx, cancel := t.withTimeout(ctx)
	defer cancel()

	s, err := t.repo.Start(ctx, tenantID, driverID, loc)
	if err != nil {
		return nil, err
	}

	t.logger.Info("shift started",
		logx.String("event", "shift_started"),
		logx.String("tenant_id", tenantID.String()),
		logx.String("driver_id", driverID.String()),
		logx.String("shift_id", s.ID.String()),
	)
	return s, nil
}

// Stop completes an open shift.
func (t *Tracker) Stop(ctx context.Context, tenantID, shiftID uuid.UUID, loc *domain.Point) (*domain.Shift, error) {
	if shiftID == uuid.Nil || !validPoint(loc) {
		return nil, apperr.ErrInvalid
	}
	ctx, cancel := t.withTimeout(ctx)
	defer cancel()

	s, err := t.repo.Stop(ctx, tenantID, shiftID, loc)
	if err != nil {
		return nil, err
	}

	t.logger.Info("shift stopped",
		logx.String("event", "shift_stopped"),
		logx.String("tenant_id", tenantID.String()),
		logx.String("driver_id", s.DriverID.String()),
		logx.String("shift_id", s.ID.String()),
	)
	return s, nil
}

// Active lists RUNNING shifts of the tenant with the best known location.
func (t *Tracker) Active(ctx context.Context, tenantID uuid.UUID) ([]domain.ActiveShift, error) {
	ctx, cancel := t.withTimeout(ctx)
	defer cancel()
	return t.repo.Active(ctx, tenantID)
}

// UpdateLocation records a position ping on the driver's RUNNING shift.
// A zero or future ping time means now. apperr.ErrNotFound is returned when the driver
// has no running shift or the ping is older than the last recorded one.
func (t *Tracker) UpdateLocation(ctx context.Context, ping domain.LocationPing) error {
	if ping.DriverID == uuid.Nil || !ping.Point.Valid() {
		return apperr.ErrInvalid
	}
	// a future timestamp would outrank every later ping of the shift
	if now := t.now(); ping.At.IsZero() || ping.At.After(now) {
		ping.At = now
	}
	ctx, cancel := t.withTimeout(ctx)
	defer cancel()

	ok, err := t.repo.UpdateLocation(ctx, ping.TenantID, ping.DriverID, ping.Point, ping.At)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.ErrNotFound
	}
	t.logger.Debug("driver location updated",
		logx.String("tenant_id", ping.TenantID.String()),
		logx.String("driver_id", ping.DriverID.String()),
		logx.Float64("lat", ping.Point.Lat),
		logx.Float64("lon", ping.Point.Lon),
	)
	return nil
}
