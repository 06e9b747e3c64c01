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

const driverColumns = `id, tenant_id, name, phone, employment, status, wallet_balance, created_at`

// DriverRepo represents driver repository. Every query is filtered by tenant.
type DriverRepo struct{ db *pgxpool.Pool }

// NewDriverRepo creates a new DriverRepo.
func NewDriverRepo(db *pgxpool.Pool) *DriverRepo { return &DriverRepo{db: db} }

func scanDriver(row pgx.Row) (*domain.Driver, error) {
	var d domain.Driver
	if err := row.Scan(&d.ID, &d.TenantID, &d.Name, &d.Phone, &d.Employment, &d.Status, &d.WalletBalance, &d.CreatedAt); err != nil {
		return nil, err
	}
	return &d, nil
}

// Get - returns driver by its ID within the tenant, nil when absent.
func (r *DriverRepo) Get(ctx context.Context, tenantID, id uuid.UUID) (*domain.Driver, error) {
	d, err := scanDriver(r.db.QueryRow(ctx,
		`SELECT `+driverColumns+` FROM drivers WHERE id = $1 AND tenant_id = $2`, id, tenantID))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get driver %s: %w", id, err)
	}
	return d, nil
}

// List returns drivers of the tenant ordered by creation. If limit/offset are nil, returns the full list.
func (r *DriverRepo) List(ctx context.Context, tenantID uuid.UUID, limit, offset *int) ([]domain.Driver, error) {
	q := `SELECT ` + driverColumns + ` FROM drivers WHERE tenant_id = $1 ORDER BY created_at, id`
	args := []any{tenantID}
	if limit != nil {
		q += fmt.Sprintf(" LIMIT $%d", len(args)+1)
		args = append(args, *limit)
	}
	if offset != nil {
		q += fmt.Sprintf(" OFFSET $%d", len(args)+1)
		args = append(args, *offset)
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list drivers: %w", err)
	}
	defer rows.Close()
	out := make([]domain.Driver, 0)
	for rows.Next() {
		d, err := scanDriver(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}
	return out, rows.Err()
}

// Create - creates a new driver. A phone already used in the tenant is apperr.ErrConflict.
func (r *DriverRepo) Create(ctx context.Context, d *domain.Driver) error {
	err := r.db.QueryRow(ctx, `
        INSERT INTO drivers (id, tenant_id, name, phone, employment, status)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING wallet_balance, created_at
    `, d.ID, d.TenantID, d.Name, d.Phone, d.Employment, d.Status).Scan(&d.WalletBalance, &d.CreatedAt)
	if err != nil {
		if IsDuplicate(err) {
			return fmt.Errorf("driver phone: %w", apperr.ErrConflict)
		}
		return fmt.Errorf("create driver: %w", err)
	}
	return nil
}

// UpdatePartial applies a partial update to a driver and returns the result, nil when absent.
func (r *DriverRepo) UpdatePartial(ctx context.Context, tenantID uuid.UUID, u domain.PartialDriverUpdate) (*domain.Driver, error) {
	d, err := scanDriver(r.db.QueryRow(ctx, `
        UPDATE drivers
        SET
            name       = COALESCE($3, name),
            phone      = COALESCE($4, phone),
            employment = COALESCE($5, employment),
            updated_at = now()
        WHERE id = $1 AND tenant_id = $2
        RETURNING `+driverColumns, u.ID, tenantID, u.Name, u.Phone, u.Employment))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		if IsDuplicate(err) {
			return nil, fmt.Errorf("driver phone: %w", apperr.ErrConflict)
		}
		return nil, fmt.Errorf("update driver %s: %w", u.ID, err)
	}
	return d, nil
}

// SetStatus changes the administrative status, nil when absent.
func (r *DriverRepo) SetStatus(ctx context.Context, tenantID, id uuid.UUID, status domain.DriverStatus) (*domain.Driver, error) {
	d, err := scanDriver(r.db.QueryRow(ctx, `
        UPDATE drivers SET status = $3, updated_at = now()
        WHERE id = $1 AND tenant_id = $2
        RETURNING `+driverColumns, id, tenantID, status))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("set driver %s status: %w", id, err)
	}
	return d, nil
}
