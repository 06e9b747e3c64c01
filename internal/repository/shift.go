package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"dispatch-platform/internal/apperr"
	"dispatch-platform/internal/domain"
)

const shiftColumns = `id, tenant_id, driver_id, status, started_at, ended_at,
	start_lat, start_lon, end_lat, end_lon, last_lat, last_lon, last_seen_at`

// ShiftRepo represents shift repository.
type ShiftRepo struct{ db *pgxpool.Pool }

// NewShiftRepo creates a new ShiftRepo.
func NewShiftRepo(db *pgxpool.Pool) *ShiftRepo { return &ShiftRepo{db: db} }

func scanShift(row pgx.Row) (*domain.Shift, error) {
	var (
		s                domain.Shift
		sLat, sLon       *float64
		eLat, eLon       *float64
		lastLat, lastLon *float64
	)
	err := row.Scan(&s.ID, &s.TenantID, &s.DriverID, &s.Status, &s.StartedAt, &s.EndedAt,
		&sLat, &sLon, &eLat, &eLon, &lastLat, &lastLon, &s.LastSeenAt)
	if err != nil {
		return nil, err
	}
	s.StartLocation = toPoint(sLat, sLon)
	s.EndLocation = toPoint(eLat, eLon)
	s.LastLocation = toPoint(lastLat, lastLon)
	return &s, nil
}

func toPoint(lat, lon *float64) *domain.Point {
	if lat == nil || lon == nil {
		return nil
	}
	return &domain.Point{Lat: *lat, Lon: *lon}
}

func fromPoint(p *domain.Point) (lat, lon *float64) {
	if p == nil {
		return nil, nil
	}
	return &p.Lat, &p.Lon
}

// Start opens a RUNNING shift for an ACTIVE driver of the tenant as one statement.
// The partial unique index on open shifts turns a concurrent second start into
// apperr.ErrAlreadyActive.
func (r *ShiftRepo) Start(ctx context.Context, tenantID, driverID uuid.UUID, loc *domain.Point) (*domain.Shift, error) {
	lat, lon := fromPoint(loc)
	s, err := scanShift(r.db.QueryRow(ctx, `
        INSERT INTO shifts (id, tenant_id, driver_id, status, start_lat, start_lon, last_lat, last_lon, last_seen_at)
        SELECT $1, d.tenant_id, d.id, 'RUNNING', $4::float8, $5::float8, $4::float8, $5::float8,
               CASE WHEN $4::float8 IS NULL THEN NULL ELSE now() END
        FROM drivers d
        WHERE d.id = $3 AND d.tenant_id = $2 AND d.status = 'ACTIVE'
        RETURNING `+shiftColumns, uuid.New(), tenantID, driverID, lat, lon))
	if err == nil {
		return s, nil
	}
	if IsDuplicate(err) {
		return nil, apperr.ErrAlreadyActive
	}
	if !IsNotFound(err) {
		return nil, fmt.Errorf("start shift for driver %s: %w", driverID, err)
	}

	var status domain.DriverStatus
	err = r.db.QueryRow(ctx, `SELECT status FROM drivers WHERE id = $1 AND tenant_id = $2`, driverID, tenantID).Scan(&status)
	switch {
	case IsNotFound(err):
		return nil, fmt.Errorf("driver %s: %w", driverID, apperr.ErrNotFound)
	case err != nil:
		return nil, fmt.Errorf("classify shift start: %w", err)
	default:
		return nil, fmt.Errorf("driver %s is %s: %w", driverID, status, apperr.ErrInvalid)
	}
}

// Stop completes a non-completed shift of the tenant.
func (r *ShiftRepo) Stop(ctx context.Context, tenantID, shiftID uuid.UUID, loc *domain.Point) (*domain.Shift, error) {
	lat, lon := fromPoint(loc)
	s, err := scanShift(r.db.QueryRow(ctx, `
        UPDATE shifts
        SET status = 'COMPLETED', ended_at = now(),
            end_lat = $3::float8, end_lon = $4::float8,
            last_lat = COALESCE($3::float8, last_lat), last_lon = COALESCE($4::float8, last_lon),
            last_seen_at = CASE WHEN $3::float8 IS NULL THEN last_seen_at ELSE now() END
        WHERE id = $1 AND tenant_id = $2 AND status <> 'COMPLETED'
        RETURNING `+shiftColumns, shiftID, tenantID, lat, lon))
	if err != nil {
		if IsNotFound(err) {
			return nil, fmt.Errorf("shift %s: %w", shiftID, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("stop shift %s: %w", shiftID, err)
	}
	return s, nil
}

// Get - returns shift by its ID within the tenant, nil when absent.
func (r *ShiftRepo) Get(ctx context.Context, tenantID, id uuid.UUID) (*domain.Shift, error) {
	s, err := scanShift(r.db.QueryRow(ctx,
		`SELECT `+shiftColumns+` FROM shifts WHERE id = $1 AND tenant_id = $2`, id, tenantID))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shift %s: %w", id, err)
	}
	return s, nil
}

// Active returns RUNNING shifts of the tenant's drivers in shift-creation order.
func (r *ShiftRepo) Active(ctx context.Context, tenantID uuid.UUID) ([]domain.ActiveShift, error) {
	rows, err := r.db.Query(ctx, `
        SELECT s.id, s.driver_id, d.name, s.started_at,
               COALESCE(s.last_lat, s.start_lat), COALESCE(s.last_lon, s.start_lon)
        FROM shifts s
        JOIN drivers d ON d.id = s.driver_id AND d.tenant_id = s.tenant_id
        WHERE s.tenant_id = $1 AND s.status = 'RUNNING'
        ORDER BY s.started_at, s.id
    `, tenantID)
	if err != nil {
		return nil, fmt.Errorf("active shifts: %w", err)
	}
	defer rows.Close()

	out := make([]domain.ActiveShift, 0)
	for rows.Next() {
		var (
			a        domain.ActiveShift
			lat, lon *float64
		)
		if err := rows.Scan(&a.ShiftID, &a.DriverID, &a.DriverName, &a.StartedAt, &lat, &lon); err != nil {
			return nil, err
		}
		a.Location = toPoint(lat, lon)
		out = append(out, a)
	}
	return out, rows.Err()
}

// UpdateLocation records the last known position on the driver's RUNNING shift.
// It returns false when the driver has no running shift in the tenant.
func (r *ShiftRepo) UpdateLocation(ctx context.Context, tenantID, driverID uuid.UUID, p domain.Point, at time.Time) (bool, error) {
	ct, err := r.db.Exec(ctx, `
        UPDATE shifts
        SET last_lat = $3, last_lon = $4, last_seen_at = $5
        WHERE tenant_id = $1 AND driver_id = $2 AND status = 'RUNNING'
          AND (last_seen_at IS NULL OR last_seen_at <= $5)
    `, tenantID, driverID, p.Lat, p.Lon, at)
	if err != nil {
		return false, fmt.Errorf("update location of driver %s: %w", driverID, err)
	}
	return ct.RowsAffected() > 0, nil
}
