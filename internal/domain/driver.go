package domain

import (
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type (
	// DriverStatus represents the administrative status of a driver.
	DriverStatus string
	// Employment represents a driver's employment classification.
	Employment string
)

// List of possible driver statuses
const (
	DriverActive   DriverStatus = "ACTIVE"
	DriverDisabled DriverStatus = "DISABLED"
)

// List of possible employment classifications
const (
	EmploymentEmployee   Employment = "EMPLOYEE"
	EmploymentContractor Employment = "CONTRACTOR"
)

var allowedDriverStatuses = [...]DriverStatus{DriverActive, DriverDisabled}

var allowedEmployments = [...]Employment{EmploymentEmployee, EmploymentContractor}

// Valid checks if the DriverStatus is valid
func (s DriverStatus) Valid() bool {
	for _, v := range allowedDriverStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Valid checks if the Employment is valid
func (e Employment) Valid() bool {
	for _, v := range allowedEmployments {
		if e == v {
			return true
		}
	}
	return false
}

// Driver is a courier belonging to exactly one tenant.
type Driver struct {
	ID            uuid.UUID
	TenantID      uuid.UUID
	Name          string
	Phone         string
	Employment    Employment
	Status        DriverStatus
	WalletBalance decimal.Decimal
	CreatedAt     time.Time
}

// PartialDriverUpdate carries optional fields to update a driver.
// A nil field means “do not change” that attribute.
type PartialDriverUpdate struct {
	ID         uuid.UUID
	Name       *string
	Phone      *string
	Employment *Employment
}

// rePhone accepts E.164 numbers.
var rePhone = regexp.MustCompile(`^\+[1-9][0-9]{6,14}$`)

// ValidatePhone validates the phone number format
func ValidatePhone(s string) bool {
	return rePhone.MatchString(s)
}
