package domain

import (
	"time"

	"github.com/google/uuid"
)

// ShiftStatus is the state of a time entry.
type ShiftStatus string

// Shift states. PAUSED exists in the state space but no operation enters it.
const (
	ShiftRunning   ShiftStatus = "RUNNING"
	ShiftPaused    ShiftStatus = "PAUSED"
	ShiftCompleted ShiftStatus = "COMPLETED"
)

// Open reports whether the shift still counts against the one-open-shift rule.
func (s ShiftStatus) Open() bool {
	return s == ShiftRunning || s == ShiftPaused
}

// Shift is a bounded interval during which a driver is clocked in.
type Shift struct {
	ID            uuid.UUID
	TenantID      uuid.UUID
	DriverID      uuid.UUID
	Status        ShiftStatus
	StartedAt     time.Time
	EndedAt       *time.Time
	StartLocation *Point
	EndLocation   *Point
	LastLocation  *Point
	LastSeenAt    *time.Time
}

// ActiveShift is one entry of the live availability feed: a RUNNING shift
// with the driver's name and last reported location (nil when unknown).
type ActiveShift struct {
	ShiftID    uuid.UUID
	DriverID   uuid.UUID
	DriverName string
	StartedAt  time.Time
	Location   *Point
}
