// Package order owns the order state machine.
package order

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"dispatch-platform/internal/apperr"
	"dispatch-platform/internal/domain"
	"dispatch-platform/internal/logx"
	"dispatch-platform/internal/service/pricing"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

// Counters groups the optional metrics the Manager reports to.
type Counters struct {
	AssignConflicts      counter
	EventPublishFailures counter
}

// Manager validates and persists lifecycle transitions. Every transition is a
// single conditional write in the store; conflicts are returned, never retried.
type Manager struct {
	repo             orderRepository
	drivers          driverReader
	quotes           quoter
	events           Publisher
	counters         Counters
	logger           logx.Logger
	operationTimeout time.Duration
	now              func() time.Time
}

// NewManager creates an order Manager. A nil publisher drops events.
func NewManager(
	repo orderRepository,
	drivers driverReader,
	quotes quoter,
	events Publisher,
	counters Counters,
	logger logx.Logger,
	timeout time.Duration,
) *Manager {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if events == nil {
		events = NopPublisher{}
	}
	return &Manager{
		repo:             repo,
		drivers:          drivers,
		quotes:           quotes,
		events:           events,
		counters:         counters,
		logger:           logger,
		operationTimeout: timeout,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

func (m *Manager) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, m.operationTimeout)
}

func validateNew(in *domain.NewOrder) error {
	if in.Source == "" {
		in.Source = domain.SourceDirect
	}
	if !in.Source.Valid() {
		return apperr.ErrInvalid
	}
	for _, p := range []*domain.Party{&in.Sender, &in.Recipient} {
		p.Name = strings.TrimSpace(p.Name)
		p.Address = strings.TrimSpace(p.Address)
		p.Phone = strings.TrimSpace(p.Phone)
		if p.Name == "" || p.Address == "" {
			return apperr.ErrInvalid
		}
		if p.Phone != "" && !domain.ValidatePhone(p.Phone) {
			return apperr.ErrInvalid
		}
	}
	if in.Package.WeightKg < 0 {
		return apperr.ErrInvalid
	}
	if in.Source == domain.SourceCustomerPortal && in.CustomerID == nil {
		return apperr.ErrInvalid
	}
	return nil
}

func normalizeFilter(f domain.OrderFilter) (domain.OrderFilter, error) {
	if f.Status != nil && !f.Status.Valid() {
		return f, apperr.ErrInvalid
	}
	if f.Limit < 0 || f.Limit > maxPageSize || f.Offset < 0 {
		return f, apperr.ErrInvalid
	}
	if f.Limit == 0 {
		f.Limit = defaultPageSize
	}
	return f, nil
}

// Create prices and persists a new order. The amount always comes from a
// fresh quote over sender and recipient addresses, taken before any write.
func (m *Manager) Create(ctx context.Context, tenantID uuid.UUID, in domain.NewOrder) (*domain.Order, error) {
	if err := validateNew(&in); err != nil {
		return nil, err
	}

	q, err := m.quotes.Quote(ctx, tenantID, pricing.Request{
		Origin:      in.Sender.Address,
		Destination: in.Recipient.Address,
		Express:     in.Package.Express,
		Heavy:       in.Package.Heavy,
	})
	if err != nil {
		return nil, err
	}

	o := &domain.Order{
		ID:          uuid.New(),
		TenantID:    tenantID,
		CustomerID:  in.CustomerID,
		Sender:      in.Sender,
		Recipient:   in.Recipient,
		Package:     in.Package,
		Amount:      q.Price,
		Currency:    q.Currency,
		DistanceKm:  q.DistanceKm,
		DurationMin: q.DurationMin,
		Source:      in.Source,
		Status:      in.Source.InitialStatus(),
	}

	ctx, cancel := m.withTimeout(ctx)
	defer cancel()
	if err := m.repo.Create(ctx, o); err != nil {
		return nil, err
	}

	m.logger.Info("order created",
		logx.String("event", "order_created"),
		logx.String("tenant_id", tenantID.String()),
		logx.String("order_id", o.ID.String()),
		logx.String("status", string(o.Status)),
		logx.String("amount", o.Amount.String()),
	)
	m.publish(ctx, o)
	return o, nil
}

// Get returns an order of the tenant.
func (m *Manager) Get(ctx context.Context, tenantID, id uuid.UUID) (*domain.Order, error) {
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()
	o, err := m.repo.Get(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, apperr.ErrNotFound
	}
	return o, nil
}

// List returns the tenant's orders, newest first.
func (m *Manager) List(ctx context.Context, tenantID uuid.UUID, f domain.OrderFilter) ([]domain.Order, error) {
	f, err := normalizeFilter(f)
	if err != nil {
		return nil, err
	}
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()
	return m.repo.List(ctx, tenantID, f)
}

// ListByDriver returns the orders of a driver. A driver outside the tenant
// is apperr.ErrNotFound, not an empty list.
func (m *Manager) ListByDriver(ctx context.Context, tenantID, driverID uuid.UUID, f domain.OrderFilter) ([]domain.Order, error) {
	f, err := normalizeFilter(f)
	if err != nil {
		return nil, err
	}
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	d, err := m.drivers.Get(ctx, tenantID, driverID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, apperr.ErrNotFound
	}
	return m.repo.ListByDriver(ctx, tenantID, driverID, f)
}

// Approve moves an order from WAITING_APPROVAL to PENDING.
func (m *Manager) Approve(ctx context.Context, tenantID, id uuid.UUID) (*domain.Order, error) {
	return m.transition(ctx, "order_approved", func(ctx context.Context) (*domain.Order, error) {
		return m.repo.Approve(ctx, tenantID, id)
	})
}

// Assign gives a PENDING, unassigned order to an active driver of the tenant.
// Of concurrent calls exactly one wins; the rest get apperr.ErrAlreadyAssigned.
func (m *Manager) Assign(ctx context.Context, tenantID, id, driverID uuid.UUID) (*domain.Order, error) {
	if driverID == uuid.Nil {
		return nil, apperr.ErrInvalid
	}
	o, err := m.transition(ctx, "order_assigned", func(ctx context.Context) (*domain.Order, error) {
		return m.repo.Assign(ctx, tenantID, id, driverID)
	})
	if errors.Is(err, apperr.ErrAlreadyAssigned) {
		if m.counters.AssignConflicts != nil {
			m.counters.AssignConflicts.Inc()
		}
		m.logger.Info("order assignment lost race",
			logx.String("tenant_id", tenantID.String()),
			logx.String("order_id", id.String()),
			logx.String("driver_id", driverID.String()),
		)
	}
	return o, err
}

// Unassign returns an ACCEPTED order to PENDING and clears its driver.
func (m *Manager) Unassign(ctx context.Context, tenantID, id uuid.UUID) (*domain.Order, error) {
	return m.transition(ctx, "order_unassigned", func(ctx context.Context) (*domain.Order, error) {
		return m.repo.Unassign(ctx, tenantID, id)
	})
}

// SetStatus drives the order to ON_THE_WAY, DELIVERED, CANCELLED or
// PROBLEMATIC. Proof fields are only accepted with DELIVERED.
func (m *Manager) SetStatus(ctx context.Context, tenantID, id uuid.UUID, c domain.StatusChange) (*domain.Order, error) {
	if len(domain.AllowedFrom(c.Status)) == 0 {
		return nil, apperr.ErrInvalid
	}
	if c.Status != domain.OrderDelivered && !c.Proof.Empty() {
		return nil, apperr.ErrInvalid
	}
	return m.transition(ctx, "order_status_changed", func(ctx context.Context) (*domain.Order, error) {
		return m.repo.SetStatus(ctx, tenantID, id, c)
	})
}

func (m *Manager) transition(ctx context.Context, event string, write func(context.Context) (*domain.Order, error)) (*domain.Order, error) {
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	o, err := write(ctx)
	if err != nil {
		return nil, err
	}

	fields := []logx.Field{
		logx.String("event", event),
		logx.String("tenant_id", o.TenantID.String()),
		logx.String("order_id", o.ID.String()),
		logx.String("status", string(o.Status)),
	}
	if o.DriverID != nil {
		fields = append(fields, logx.String("driver_id", o.DriverID.String()))
	}
	m.logger.Info("order transition", fields...)
	m.publish(ctx, o)
	return o, nil
}

// publish runs after the write committed; a failure is logged and counted only.
func (m *Manager) publish(ctx context.Context, o *domain.Order) {
	e := domain.OrderEvent{
		TenantID:   o.TenantID,
		OrderID:    o.ID,
		Status:     o.Status,
		DriverID:   o.DriverID,
		OccurredAt: m.now(),
	}
	if err := m.events.Publish(ctx, e); err != nil {
		if m.counters.EventPublishFailures != nil {
			m.counters.EventPublishFailures.Inc()
		}
		m.logger.Warn("order event publish failed",
			logx.String("order_id", o.ID.String()),
			logx.String("status", string(o.Status)),
			logx.Err(err),
		)
	}
}

// NopPublisher discards events.
type NopPublisher struct{}

// Publish implements Publisher.
func (NopPublisher) Publish(context.Context, domain.OrderEvent) error { return nil }
