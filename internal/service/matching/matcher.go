// Package matching ranks on-shift drivers by straight-line distance to a destination.
package matching

import (
	"context"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"dispatch-platform/internal/apperr"
	"dispatch-platform/internal/domain"
	"dispatch-platform/internal/logx"
)

const earthRadiusKm = 6371.0

// HaversineKm returns the great-circle distance between a and b.
func HaversineKm(a, b domain.Point) float64 {
	rad := func(deg float64) float64 { return deg * math.Pi / 180 }
	dLat := rad(b.Lat - a.Lat)
	dLon := rad(b.Lon - a.Lon)
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rad(a.Lat))*math.Cos(rad(b.Lat))*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Asin(math.Min(1, math.Sqrt(h)))
}

// Matcher produces assignment candidates for a destination address.
type Matcher struct {
	shifts           shiftSource
	geo              geocoder
	fallbacks        counter
	logger           logx.Logger
	operationTimeout time.Duration
}

// NewMatcher creates a Matcher. fallbacks may be nil.
func NewMatcher(shifts shiftSource, geo geocoder, fallbacks counter, logger logx.Logger, timeout time.Duration) *Matcher {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Matcher{
		shifts:           shifts,
		geo:              geo,
		fallbacks:        fallbacks,
		logger:           logger,
		operationTimeout: timeout,
	}
}

// FindCandidates returns every driver on a RUNNING shift, nearest first.
// When the destination cannot be geocoded the candidates are returned in
// shift order without distances. Drivers with no known location sort last.
func (m *Matcher) FindCandidates(ctx context.Context, tenantID uuid.UUID, destination string) ([]domain.Candidate, error) {
	destination = strings.TrimSpace(destination)
	if destination == "" {
		return nil, apperr.ErrInvalid
	}

	active, err := m.activeShifts(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Candidate, 0, len(active))
	for _, s := range active {
		out = append(out, domain.Candidate{DriverID: s.DriverID, Name: s.DriverName})
	}
	if len(out) == 0 {
		return out, nil
	}

	place, err := m.geo.Geocode(ctx, destination)
	if err != nil {
		if m.fallbacks != nil {
			m.fallbacks.Inc()
		}
		m.logger.Warn("destination geocoding failed, returning unranked candidates",
			logx.String("tenant_id", tenantID.String()),
			logx.Int("candidates", len(out)),
			logx.Err(err),
		)
		return out, nil
	}

	for i, s := range active {
		if s.Location == nil {
			continue
		}
		d := HaversineKm(*s.Location, place.Point)
		out[i].DistanceKm = &d
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].DistanceKm, out[j].DistanceKm
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return *a < *b
		}
	})
	return out, nil
}

func (m *Matcher) activeShifts(ctx context.Context, tenantID uuid.UUID) ([]domain.ActiveShift, error) {
	ctx, cancel := context.WithTimeout(ctx, m.operationTimeout)
	defer cancel()
	return m.shifts.Active(ctx, tenantID)
}
