package handlers

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"dispatch-platform/internal/domain"
)

type pricingDTO struct {
	BasePrice        decimal.Decimal `json:"base_price"`
	PerKmRate        decimal.Decimal `json:"per_km_rate"`
	ExpressSurcharge decimal.Decimal `json:"express_surcharge"`
	HeavySurcharge   decimal.Decimal `json:"heavy_surcharge"`
	MinPrice         decimal.Decimal `json:"min_price"`
	MaxPrice         decimal.Decimal `json:"max_price"`
	RoundToWholeUnit bool            `json:"round_to_whole_unit"`
}

type localeDTO struct {
	Currency string `json:"currency"`
	Timezone string `json:"timezone"`
}

type tenantDTO struct {
	ID        uuid.UUID  `json:"id"`
	Subdomain string     `json:"subdomain"`
	Name      string     `json:"name"`
	Active    bool       `json:"active"`
	Pricing   pricingDTO `json:"pricing"`
	Locale    localeDTO  `json:"locale"`
	CreatedAt time.Time  `json:"created_at"`
}

type createTenantRequest struct {
	Subdomain string      `json:"subdomain"`
	Name      string      `json:"name"`
	Pricing   *pricingDTO `json:"pricing,omitempty"`
	Locale    *localeDTO  `json:"locale,omitempty"`
}

type setActiveRequest struct {
	Active *bool `json:"active"`
}

type settingsDTO struct {
	Pricing pricingDTO `json:"pricing"`
	Locale  localeDTO  `json:"locale"`
}

type updateSettingsRequest struct {
	Pricing *pricingDTO `json:"pricing"`
	Locale  *localeDTO  `json:"locale"`
}

type driverDTO struct {
	ID            uuid.UUID           `json:"id"`
	Name          string              `json:"name"`
	Phone         string              `json:"phone"`
	Employment    domain.Employment   `json:"employment"`
	Status        domain.DriverStatus `json:"status"`
	WalletBalance decimal.Decimal     `json:"wallet_balance"`
	CreatedAt     time.Time           `json:"created_at"`
}

type createDriverRequest struct {
	Name       string            `json:"name"`
	Phone      string            `json:"phone"`
	Employment domain.Employment `json:"employment,omitempty"`
}

type updateDriverRequest struct {
	Name       *string            `json:"name,omitempty"`
	Phone      *string            `json:"phone,omitempty"`
	Employment *domain.Employment `json:"employment,omitempty"`
}

type pointDTO struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type shiftRequest struct {
	Location *pointDTO `json:"location,omitempty"`
}

type shiftDTO struct {
	ID            uuid.UUID          `json:"id"`
	DriverID      uuid.UUID          `json:"driver_id"`
	Status        domain.ShiftStatus `json:"status"`
	StartedAt     time.Time          `json:"started_at"`
	EndedAt       *time.Time         `json:"ended_at,omitempty"`
	StartLocation *pointDTO          `json:"start_location,omitempty"`
	EndLocation   *pointDTO          `json:"end_location,omitempty"`
	LastLocation  *pointDTO          `json:"last_location,omitempty"`
	LastSeenAt    *time.Time         `json:"last_seen_at,omitempty"`
}

type activeShiftDTO struct {
	ShiftID    uuid.UUID `json:"shift_id"`
	DriverID   uuid.UUID `json:"driver_id"`
	DriverName string    `json:"driver_name"`
	StartedAt  time.Time `json:"started_at"`
	Location   *pointDTO `json:"location,omitempty"`
}

type locationRequest struct {
	Lat *float64   `json:"lat"`
	Lon *float64   `json:"lon"`
	At  *time.Time `json:"at,omitempty"`
}

type quoteRequest struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Express     bool   `json:"express"`
	Heavy       bool   `json:"heavy"`
}

type quoteDTO struct {
	DistanceKm  float64         `json:"distance_km"`
	DurationMin float64         `json:"duration_min"`
	Price       decimal.Decimal `json:"price"`
	Currency    string          `json:"currency"`
}

type partyDTO struct {
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address"`
}

type packageDTO struct {
	Description string  `json:"description,omitempty"`
	WeightKg    float64 `json:"weight_kg"`
	Express     bool    `json:"express"`
	Heavy       bool    `json:"heavy"`
}

type proofDTO struct {
	PhotoURL         string `json:"photo_url,omitempty"`
	SignatureURL     string `json:"signature_url,omitempty"`
	ConfirmationCode string `json:"confirmation_code,omitempty"`
}

type createOrderRequest struct {
	CustomerID *uuid.UUID `json:"customer_id,omitempty"`
	Sender     partyDTO   `json:"sender"`
	Recipient  partyDTO   `json:"recipient"`
	Package    packageDTO `json:"package"`
}

type orderDTO struct {
	ID          uuid.UUID          `json:"id"`
	CustomerID  *uuid.UUID         `json:"customer_id,omitempty"`
	DriverID    *uuid.UUID         `json:"driver_id,omitempty"`
	Sender      partyDTO           `json:"sender"`
	Recipient   partyDTO           `json:"recipient"`
	Package     packageDTO         `json:"package"`
	Amount      decimal.Decimal    `json:"amount"`
	Currency    string             `json:"currency"`
	DistanceKm  float64            `json:"distance_km"`
	DurationMin float64            `json:"duration_min"`
	Source      domain.OrderSource `json:"source"`
	Status      domain.OrderStatus `json:"status"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
	AssignedAt  *time.Time         `json:"assigned_at,omitempty"`
	DeliveredAt *time.Time         `json:"delivered_at,omitempty"`
	Proof       *proofDTO          `json:"proof,omitempty"`
}

type assignRequest struct {
	DriverID uuid.UUID `json:"driver_id"`
}

type statusRequest struct {
	Status domain.OrderStatus `json:"status"`
	Proof  *proofDTO          `json:"proof,omitempty"`
}

type candidateDTO struct {
	DriverID   uuid.UUID `json:"driver_id"`
	Name       string    `json:"name"`
	DistanceKm *float64  `json:"distance_km"`
}
