package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"dispatch-platform/internal/apperr"
	"dispatch-platform/internal/domain"
)

const tenantColumns = `id, subdomain, name, active,
	base_price, per_km_rate, express_surcharge, heavy_surcharge, min_price, max_price,
	round_to_whole_unit, currency, timezone, created_at`

// TenantRepo represents tenant repository.
type TenantRepo struct{ db *pgxpool.Pool }

// NewTenantRepo creates a new TenantRepo.
func NewTenantRepo(db *pgxpool.Pool) *TenantRepo { return &TenantRepo{db: db} }

func scanTenant(row pgx.Row) (*domain.Tenant, error) {
	var t domain.Tenant
	p := &t.Pricing
	err := row.Scan(&t.ID, &t.Subdomain, &t.Name, &t.Active,
		&p.BasePrice, &p.PerKmRate, &p.ExpressSurcharge, &p.HeavySurcharge, &p.MinPrice, &p.MaxPrice,
		&p.RoundToWholeUnit, &t.Locale.Currency, &t.Locale.Timezone, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	t.Locale.Currency = strings.TrimSpace(t.Locale.Currency)
	return &t, nil
}

// Create - inserts a tenant; a taken subdomain is apperr.ErrConflict.
func (r *TenantRepo) Create(ctx context.Context, t *domain.Tenant) error {
	p := t.Pricing
	row := r.db.QueryRow(ctx, `
        INSERT INTO tenants (id, subdomain, name, active,
            base_price, per_km_rate, express_surcharge, heavy_surcharge, min_price, max_price,
            round_to_whole_unit, currency, timezone)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
        RETURNING created_at
    `, t.ID, t.Subdomain, t.Name, t.Active,
		p.BasePrice, p.PerKmRate, p.ExpressSurcharge, p.HeavySurcharge, p.MinPrice, p.MaxPrice,
		p.RoundToWholeUnit, t.Locale.Currency, t.Locale.Timezone)
	if err := row.Scan(&t.CreatedAt); err != nil {
		if IsDuplicate(err) {
			return fmt.Errorf("subdomain %q: %w", t.Subdomain, apperr.ErrConflict)
		}
		return fmt.Errorf("create tenant: %w", err)
	}
	return nil
}

// Get - returns tenant by its ID, nil when absent.
func (r *TenantRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Tenant, error) {
	t, err := scanTenant(r.db.QueryRow(ctx, `SELECT `+tenantColumns+` FROM tenants WHERE id = $1`, id))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tenant %s: %w", id, err)
	}
	return t, nil
}

// GetBySubdomain - returns tenant by its subdomain key, nil when absent.
func (r *TenantRepo) GetBySubdomain(ctx context.Context, subdomain string) (*domain.Tenant, error) {
	t, err := scanTenant(r.db.QueryRow(ctx, `SELECT `+tenantColumns+` FROM tenants WHERE subdomain = $1`, subdomain))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tenant %q: %w", subdomain, err)
	}
	return t, nil
}

// SetActive toggles the activation flag and returns the updated tenant, nil when absent.
func (r *TenantRepo) SetActive(ctx context.Context, id uuid.UUID, active bool) (*domain.Tenant, error) {
	t, err := scanTenant(r.db.QueryRow(ctx, `
        UPDATE tenants SET active = $2, updated_at = now()
        WHERE id = $1
        RETURNING `+tenantColumns, id, active))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("set tenant %s active: %w", id, err)
	}
	return t, nil
}

// UpdateSettings replaces pricing and locale of a tenant. The subdomain is never touched.
func (r *TenantRepo) UpdateSettings(ctx context.Context, id uuid.UUID, p domain.Pricing, l domain.Locale) (*domain.Tenant, error) {
	t, err := scanTenant(r.db.QueryRow(ctx, `
        UPDATE tenants
        SET base_price = $2, per_km_rate = $3, express_surcharge = $4, heavy_surcharge = $5,
            min_price = $6, max_price = $7, round_to_whole_unit = $8,
            currency = $9, timezone = $10, updated_at = now()
        WHERE id = $1
        RETURNING `+tenantColumns,
		id, p.BasePrice, p.PerKmRate, p.ExpressSurcharge, p.HeavySurcharge,
		p.MinPrice, p.MaxPrice, p.RoundToWholeUnit, l.Currency, l.Timezone))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		if IsCheck(err) {
			return nil, fmt.Errorf("tenant settings: %w", apperr.ErrInvalid)
		}
		return nil, fmt.Errorf("update tenant %s settings: %w", id, err)
	}
	return t, nil
}
