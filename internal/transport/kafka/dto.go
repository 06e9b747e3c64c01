package kafka

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"dispatch-platform/internal/domain"
)

// LocationDTO is a driver position message on the location topic.
type LocationDTO struct {
	TenantID string    `json:"tenant_id"`
	DriverID string    `json:"driver_id"`
	Lat      float64   `json:"lat"`
	Lon      float64   `json:"lon"`
	At       time.Time `json:"at"`
}

// ToDomain converts LocationDTO to a domain.LocationPing.
func ToDomain(dto LocationDTO) (domain.LocationPing, error) {
	tenantID, err := uuid.Parse(strings.TrimSpace(dto.TenantID))
	if err != nil {
		return domain.LocationPing{}, fmt.Errorf("tenant_id: %w", err)
	}
	driverID, err := uuid.Parse(strings.TrimSpace(dto.DriverID))
	if err != nil {
		return domain.LocationPing{}, fmt.Errorf("driver_id: %w", err)
	}
	return domain.LocationPing{
		TenantID: tenantID,
		DriverID: driverID,
		Point:    domain.Point{Lat: dto.Lat, Lon: dto.Lon},
		At:       dto.At.UTC(),
	}, nil
}

// OrderEventDTO is the wire form of a domain.OrderEvent.
type OrderEventDTO struct {
	TenantID   string    `json:"tenant_id"`
	OrderID    string    `json:"order_id"`
	Status     string    `json:"status"`
	DriverID   *string   `json:"driver_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// FromDomain converts a domain.OrderEvent to its wire form.
func FromDomain(e domain.OrderEvent) OrderEventDTO {
	dto := OrderEventDTO{
		TenantID:   e.TenantID.String(),
		OrderID:    e.OrderID.String(),
		Status:     string(e.Status),
		OccurredAt: e.OccurredAt.UTC(),
	}
	if e.DriverID != nil {
		s := e.DriverID.String()
		dto.DriverID = &s
	}
	return dto
}
