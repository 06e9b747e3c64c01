package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"dispatch-platform/internal/apperr"
	"dispatch-platform/internal/domain"
)

const orderColumns = `id, tenant_id, customer_id, driver_id,
	sender_name, sender_phone, sender_address,
	recipient_name, recipient_phone, recipient_address,
	package_description, package_weight_kg, express, heavy,
	amount, currency, distance_km, duration_min, source, status,
	created_at, updated_at, assigned_at, delivered_at,
	proof_photo_url, proof_signature_url, proof_confirmation_code`

// OrderRepo represents order repository. Every statement is scoped by tenant
// and every lifecycle transition is a single conditional write.
type OrderRepo struct{ db *pgxpool.Pool }

// NewOrderRepo creates a new OrderRepo.
func NewOrderRepo(db *pgxpool.Pool) *OrderRepo { return &OrderRepo{db: db} }

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var o domain.Order
	err := row.Scan(&o.ID, &o.TenantID, &o.CustomerID, &o.DriverID,
		&o.Sender.Name, &o.Sender.Phone, &o.Sender.Address,
		&o.Recipient.Name, &o.Recipient.Phone, &o.Recipient.Address,
		&o.Package.Description, &o.Package.WeightKg, &o.Package.Express, &o.Package.Heavy,
		&o.Amount, &o.Currency, &o.DistanceKm, &o.DurationMin, &o.Source, &o.Status,
		&o.CreatedAt, &o.UpdatedAt, &o.AssignedAt, &o.DeliveredAt,
		&o.Proof.PhotoURL, &o.Proof.SignatureURL, &o.Proof.ConfirmationCode)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Create - inserts a priced order.
func (r *OrderRepo) Create(ctx context.Context, o *domain.Order) error {
	err := r.db.QueryRow(ctx, `
        INSERT INTO orders (id, tenant_id, customer_id,
            sender_name, sender_phone, sender_address,
            recipient_name, recipient_phone, recipient_address,
            package_description, package_weight_kg, express, heavy,
            amount, currency, distance_km, duration_min, source, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
        RETURNING created_at, updated_at
    `, o.ID, o.TenantID, o.CustomerID,
		o.Sender.Name, o.Sender.Phone, o.Sender.Address,
		o.Recipient.Name, o.Recipient.Phone, o.Recipient.Address,
		o.Package.Description, o.Package.WeightKg, o.Package.Express, o.Package.Heavy,
		o.Amount, o.Currency, o.DistanceKm, o.DurationMin, o.Source, o.Status,
	).Scan(&o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create order: %w", err)
	}
	return nil
}

// Get - returns order by its ID within the tenant, nil when absent.
func (r *OrderRepo) Get(ctx context.Context, tenantID, id uuid.UUID) (*domain.Order, error) {
	o, err := scanOrder(r.db.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1 AND tenant_id = $2`, id, tenantID))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order %s: %w", id, err)
	}
	return o, nil
}

// List returns the tenant's orders, newest first.
func (r *OrderRepo) List(ctx context.Context, tenantID uuid.UUID, f domain.OrderFilter) ([]domain.Order, error) {
	return r.list(ctx, `tenant_id = $1`, []any{tenantID}, f)
}

// ListByDriver returns orders assigned to a driver of the tenant. The join on
// drivers keeps a foreign driver id from matching anything.
func (r *OrderRepo) ListByDriver(ctx context.Context, tenantID, driverID uuid.UUID, f domain.OrderFilter) ([]domain.Order, error) {
	where := `tenant_id = $1 AND driver_id = $2
        AND EXISTS (SELECT 1 FROM drivers d WHERE d.id = $2 AND d.tenant_id = $1)`
	return r.list(ctx, where, []any{tenantID, driverID}, f)
}

func (r *OrderRepo) list(ctx context.Context, where string, args []any, f domain.OrderFilter) ([]domain.Order, error) {
	q := `SELECT ` + orderColumns + ` FROM orders WHERE ` + where
	if f.Status != nil {
		q += fmt.Sprintf(" AND status = $%d", len(args)+1)
		args = append(args, *f.Status)
	}
	q += ` ORDER BY created_at DESC, id`
	if f.Limit > 0 {
		q += fmt.Sprintf(" LIMIT $%d", len(args)+1)
		args = append(args, f.Limit)
	}
	if f.Offset > 0 {
		q += fmt.Sprintf(" OFFSET $%d", len(args)+1)
		args = append(args, f.Offset)
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	out := make([]domain.Order, 0, f.Limit)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *o)
	}
	return out, rows.Err()
}

// Approve moves WAITING_APPROVAL to PENDING.
func (r *OrderRepo) Approve(ctx context.Context, tenantID, id uuid.UUID) (*domain.Order, error) {
	o, err := scanOrder(r.db.QueryRow(ctx, `
        UPDATE orders SET status = 'PENDING', updated_at = now()
        WHERE id = $1 AND tenant_id = $2 AND status = 'WAITING_APPROVAL'
        RETURNING `+orderColumns, id, tenantID))
	if err != nil {
		return nil, r.transitionError(ctx, tenantID, id, err)
	}
	return o, nil
}

// Assign sets the driver and moves PENDING to ACCEPTED in one check-and-set
// statement. Of concurrent callers exactly one sees a row; the rest get
// apperr.ErrAlreadyAssigned.
func (r *OrderRepo) Assign(ctx context.Context, tenantID, id, driverID uuid.UUID) (*domain.Order, error) {
	o, err := scanOrder(r.db.QueryRow(ctx, `
        UPDATE orders
        SET driver_id = $3, status = 'ACCEPTED', assigned_at = now(), updated_at = now()
        WHERE id = $1 AND tenant_id = $2 AND driver_id IS NULL AND status = 'PENDING'
          AND EXISTS (SELECT 1 FROM drivers d WHERE d.id = $3 AND d.tenant_id = $2 AND d.status = 'ACTIVE')
        RETURNING `+orderColumns, id, tenantID, driverID))
	if err == nil {
		return o, nil
	}
	if !IsNotFound(err) {
		return nil, fmt.Errorf("assign order %s: %w", id, err)
	}
	return nil, r.assignError(ctx, tenantID, id, driverID)
}

// assignError explains why the conditional assign matched no row.
// It only reads; the caller decides whether to re-observe and retry.
func (r *OrderRepo) assignError(ctx context.Context, tenantID, id, driverID uuid.UUID) error {
	var (
		status       domain.OrderStatus
		current      *uuid.UUID
		driverStatus *domain.DriverStatus
	)
	err := r.db.QueryRow(ctx, `
        SELECT o.status, o.driver_id, d.status
        FROM orders o
        LEFT JOIN drivers d ON d.id = $3 AND d.tenant_id = o.tenant_id
        WHERE o.id = $1 AND o.tenant_id = $2
    `, id, tenantID, driverID).Scan(&status, &current, &driverStatus)
	switch {
	case IsNotFound(err):
		return fmt.Errorf("order %s: %w", id, apperr.ErrNotFound)
	case err != nil:
		return fmt.Errorf("classify assign: %w", err)
	case current != nil:
		return apperr.ErrAlreadyAssigned
	case driverStatus == nil:
		return fmt.Errorf("driver %s: %w", driverID, apperr.ErrNotFound)
	case *driverStatus != domain.DriverActive:
		return fmt.Errorf("driver %s is %s: %w", driverID, *driverStatus, apperr.ErrInvalid)
	case status != domain.OrderPending:
		return fmt.Errorf("assign from %s: %w", status, apperr.ErrInvalidTransition)
	default:
		return apperr.ErrAlreadyAssigned
	}
}

// Unassign returns an ACCEPTED order to PENDING and clears the driver.
func (r *OrderRepo) Unassign(ctx context.Context, tenantID, id uuid.UUID) (*domain.Order, error) {
	o, err := scanOrder(r.db.QueryRow(ctx, `
        UPDATE orders SET driver_id = NULL, assigned_at = NULL, status = 'PENDING', updated_at = now()
        WHERE id = $1 AND tenant_id = $2 AND status = 'ACCEPTED'
        RETURNING `+orderColumns, id, tenantID))
	if err != nil {
		return nil, r.transitionError(ctx, tenantID, id, err)
	}
	return o, nil
}

// SetStatus applies a setStatus transition if the current status allows it.
// DELIVERED also stamps delivered_at and stores any supplied proof.
func (r *OrderRepo) SetStatus(ctx context.Context, tenantID, id uuid.UUID, c domain.StatusChange) (*domain.Order, error) {
	from := domain.AllowedFrom(c.Status)
	if len(from) == 0 {
		return nil, fmt.Errorf("set status %s: %w", c.Status, apperr.ErrInvalid)
	}
	allowed := make([]string, len(from))
	for i, s := range from {
		allowed[i] = string(s)
	}

	o, err := scanOrder(r.db.QueryRow(ctx, `
        UPDATE orders
        SET status = $3,
            updated_at = now(),
            delivered_at = CASE WHEN $3 = 'DELIVERED' THEN now() ELSE delivered_at END,
            proof_photo_url = CASE WHEN $3 = 'DELIVERED' AND $5 <> '' THEN $5 ELSE proof_photo_url END,
            proof_signature_url = CASE WHEN $3 = 'DELIVERED' AND $6 <> '' THEN $6 ELSE proof_signature_url END,
            proof_confirmation_code = CASE WHEN $3 = 'DELIVERED' AND $7 <> '' THEN $7 ELSE proof_confirmation_code END
        WHERE id = $1 AND tenant_id = $2 AND status = ANY($4)
        RETURNING `+orderColumns,
		id, tenantID, string(c.Status), allowed,
		c.Proof.PhotoURL, c.Proof.SignatureURL, c.Proof.ConfirmationCode))
	if err != nil {
		return nil, r.transitionError(ctx, tenantID, id, err)
	}
	return o, nil
}

// transitionError maps a failed conditional update: no visible order is
// apperr.ErrNotFound, a visible order in the wrong state is apperr.ErrInvalidTransition.
func (r *OrderRepo) transitionError(ctx context.Context, tenantID, id uuid.UUID, err error) error {
	if !IsNotFound(err) {
		return fmt.Errorf("transition order %s: %w", id, err)
	}
	var status domain.OrderStatus
	err = r.db.QueryRow(ctx, `SELECT status FROM orders WHERE id = $1 AND tenant_id = $2`, id, tenantID).Scan(&status)
	switch {
	case IsNotFound(err):
		return fmt.Errorf("order %s: %w", id, apperr.ErrNotFound)
	case err != nil:
		return fmt.Errorf("classify transition: %w", err)
	default:
		return fmt.Errorf("order %s is %s: %w", id, status, apperr.ErrInvalidTransition)
	}
}
