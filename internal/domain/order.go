package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type (
	// OrderStatus is a state of the order lifecycle.
	OrderStatus string
	// OrderSource tells where an order was created.
	OrderSource string
)

// Order lifecycle states.
const (
	OrderWaitingApproval OrderStatus = "WAITING_APPROVAL"
	OrderPending         OrderStatus = "PENDING"
	OrderAccepted        OrderStatus = "ACCEPTED"
	OrderOnTheWay        OrderStatus = "ON_THE_WAY"
	OrderDelivered       OrderStatus = "DELIVERED"
	OrderCancelled       OrderStatus = "CANCELLED"
	OrderProblematic     OrderStatus = "PROBLEMATIC"
)

// Order sources.
const (
	SourceDirect         OrderSource = "DIRECT"
	SourceCustomerPortal OrderSource = "CUSTOMER_PORTAL"
)

var allOrderStatuses = [...]OrderStatus{
	OrderWaitingApproval, OrderPending, OrderAccepted, OrderOnTheWay,
	OrderDelivered, OrderCancelled, OrderProblematic,
}

// Valid checks if the OrderStatus is valid
func (s OrderStatus) Valid() bool {
	for _, v := range allOrderStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Terminal reports whether no further lifecycle transitions (other than
// PROBLEMATIC) are allowed.
func (s OrderStatus) Terminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

// Valid checks if the OrderSource is valid
func (s OrderSource) Valid() bool {
	return s == SourceDirect || s == SourceCustomerPortal
}

// InitialStatus returns the state a new order from the source starts in.
func (s OrderSource) InitialStatus() OrderStatus {
	if s == SourceCustomerPortal {
		return OrderWaitingApproval
	}
	return OrderPending
}

// AllowedFrom returns the statuses from which a setStatus to target is legal.
// Approve and assign are separate transitions and are not reachable here:
// the result is nil for PENDING, ACCEPTED and WAITING_APPROVAL.
func AllowedFrom(target OrderStatus) []OrderStatus {
	switch target {
	case OrderOnTheWay:
		return []OrderStatus{OrderAccepted, OrderPending}
	case OrderDelivered, OrderCancelled:
		return nonTerminal()
	case OrderProblematic:
		return allOrderStatuses[:]
	default:
		return nil
	}
}

func nonTerminal() []OrderStatus {
	out := make([]OrderStatus, 0, len(allOrderStatuses))
	for _, s := range allOrderStatuses {
		if !s.Terminal() {
			out = append(out, s)
		}
	}
	return out
}

// CanTransition reports whether setStatus(to) is legal from the current status.
func CanTransition(from, to OrderStatus) bool {
	for _, s := range AllowedFrom(to) {
		if s == from {
			return true
		}
	}
	return false
}

// Party is a sender or recipient.
type Party struct {
	Name    string
	Phone   string
	Address string
}

// Package describes the delivered goods.
type Package struct {
	Description string
	WeightKg    float64
	Express     bool
	Heavy       bool
}

// Proof holds opaque proof-of-delivery references.
type Proof struct {
	PhotoURL         string
	SignatureURL     string
	ConfirmationCode string
}

// Empty reports whether no proof field is set.
func (p Proof) Empty() bool {
	return p.PhotoURL == "" && p.SignatureURL == "" && p.ConfirmationCode == ""
}

// Order is a delivery request owned by one tenant.
type Order struct {
	ID          uuid.UUID
	TenantID    uuid.UUID
	CustomerID  *uuid.UUID
	DriverID    *uuid.UUID
	Sender      Party
	Recipient   Party
	Package     Package
	Amount      decimal.Decimal
	Currency    string
	DistanceKm  float64
	DurationMin float64
	Source      OrderSource
	Status      OrderStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
	AssignedAt  *time.Time
	DeliveredAt *time.Time
	Proof       Proof
}

// NewOrder is the input for order creation. The amount is never part of it.
type NewOrder struct {
	CustomerID *uuid.UUID
	Sender     Party
	Recipient  Party
	Package    Package
	Source     OrderSource
}

// OrderFilter narrows order listings.
type OrderFilter struct {
	Status *OrderStatus
	Limit  int
	Offset int
}

// StatusChange is a setStatus request.
type StatusChange struct {
	Status OrderStatus
	Proof  Proof
}

// Quote is the non-persisted price of a prospective delivery.
type Quote struct {
	DistanceKm  float64
	DurationMin float64
	Price       decimal.Decimal
	Currency    string
}

// Candidate is a driver ranked by the proximity matcher.
// DistanceKm is nil when the distance is unknown.
type Candidate struct {
	DriverID   uuid.UUID
	Name       string
	DistanceKm *float64
}
