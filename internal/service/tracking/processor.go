// Package tracking applies driver location pings arriving from the broker.
package tracking

import (
	"context"
	"errors"

	"dispatch-platform/internal/apperr"
	"dispatch-platform/internal/domain"
	"dispatch-platform/internal/logx"
)

// Processor handles location pings.
type Processor struct {
	shifts LocationPort
	logger logx.Logger
}

// NewProcessor creates a Processor.
func NewProcessor(shifts LocationPort, logger logx.Logger) *Processor {
	return &Processor{shifts: shifts, logger: logger}
}

// Handle records the ping on the driver's running shift. Pings for drivers
// without a running shift, and pings older than the last recorded one, are
// dropped without error so the consumer can move on.
func (p *Processor) Handle(ctx context.Context, ping domain.LocationPing) error {
	err := p.shifts.UpdateLocation(ctx, ping)
	if errors.Is(err, apperr.ErrNotFound) {
		p.logger.Debug("location ping dropped",
			logx.String("tenant_id", ping.TenantID.String()),
			logx.String("driver_id", ping.DriverID.String()),
		)
		return nil
	}
	return err
}
