// Package dispatch sequences approval, matching and assignment of orders.
package dispatch

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"dispatch-platform/internal/apperr"
	"dispatch-platform/internal/domain"
	"dispatch-platform/internal/logx"
)

// ErrNoCandidates means no driver of the tenant is on a running shift.
var ErrNoCandidates = fmt.Errorf("no drivers on shift: %w", apperr.ErrConflict)

// Orchestrator holds no state of its own; the tenant id it receives is
// passed through to every collaborator unchanged.
type Orchestrator struct {
	orders  orderLifecycle
	matcher candidateFinder
	logger  logx.Logger
}

// NewOrchestrator creates an Orchestrator.
func NewOrchestrator(orders orderLifecycle, matcher candidateFinder, logger logx.Logger) *Orchestrator {
	return &Orchestrator{orders: orders, matcher: matcher, logger: logger}
}

// Approve releases a portal order for dispatch.
func (o *Orchestrator) Approve(ctx context.Context, tenantID, orderID uuid.UUID) (*domain.Order, error) {
	return o.orders.Approve(ctx, tenantID, orderID)
}

// Candidates ranks on-shift drivers by distance to the order's recipient.
func (o *Orchestrator) Candidates(ctx context.Context, tenantID, orderID uuid.UUID) ([]domain.Candidate, error) {
	ord, err := o.orders.Get(ctx, tenantID, orderID)
	if err != nil {
		return nil, err
	}
	return o.matcher.FindCandidates(ctx, tenantID, ord.Recipient.Address)
}

// Assign gives the order to a specific driver.
func (o *Orchestrator) Assign(ctx context.Context, tenantID, orderID, driverID uuid.UUID) (*domain.Order, error) {
	return o.orders.Assign(ctx, tenantID, orderID, driverID)
}

// AssignNearest assigns the order to the best ranked candidate. Matching
// happens before the conditional write, so no lock spans the provider call.
func (o *Orchestrator) AssignNearest(ctx context.Context, tenantID, orderID uuid.UUID) (*domain.Order, error) {
	ord, err := o.orders.Get(ctx, tenantID, orderID)
	if err != nil {
		return nil, err
	}
	switch {
	case ord.DriverID != nil:
		return nil, apperr.ErrAlreadyAssigned
	case ord.Status != domain.OrderPending:
		return nil, fmt.Errorf("assign from %s: %w", ord.Status, apperr.ErrInvalidTransition)
	}
	candidates, err := o.matcher.FindCandidates(ctx, tenantID, ord.Recipient.Address)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}

	best := candidates[0]
	o.logger.Info("nearest driver selected",
		logx.String("tenant_id", tenantID.String()),
		logx.String("order_id", orderID.String()),
		logx.String("driver_id", best.DriverID.String()),
		logx.Bool("ranked", best.DistanceKm != nil),
	)
	return o.orders.Assign(ctx, tenantID, orderID, best.DriverID)
}
