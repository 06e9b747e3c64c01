package domain

import (
	"time"

	"github.com/google/uuid"
)

// OrderEvent is emitted after a lifecycle transition commits.
type OrderEvent struct {
	TenantID   uuid.UUID
	OrderID    uuid.UUID
	Status     OrderStatus
	DriverID   *uuid.UUID
	OccurredAt time.Time
}

// LocationPing is a driver position reported by a device.
type LocationPing struct {
	TenantID uuid.UUID
	DriverID uuid.UUID
	Point    Point
	At       time.Time
}
