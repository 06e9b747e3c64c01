package domain

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Tenant is an isolated customer organization.
type Tenant struct {
	ID        uuid.UUID
	Subdomain string
	Name      string
	Active    bool
	Pricing   Pricing
	Locale    Locale
	CreatedAt time.Time
}

// Locale carries the tenant's currency and timezone.
type Locale struct {
	Currency string
	Timezone string
}

// Pricing holds the tenant-configurable quote coefficients.
type Pricing struct {
	BasePrice        decimal.Decimal
	PerKmRate        decimal.Decimal
	ExpressSurcharge decimal.Decimal
	HeavySurcharge   decimal.Decimal
	MinPrice         decimal.Decimal
	MaxPrice         decimal.Decimal
	// RoundToWholeUnit rounds prices up to the next whole currency unit
	// instead of the smallest unit.
	RoundToWholeUnit bool
}

// DefaultPricing returns the platform defaults applied to new tenants.
func DefaultPricing() Pricing {
	return Pricing{
		BasePrice:        decimal.RequireFromString("15.00"),
		PerKmRate:        decimal.RequireFromString("0.50"),
		ExpressSurcharge: decimal.RequireFromString("10.00"),
		HeavySurcharge:   decimal.RequireFromString("5.00"),
		MinPrice:         decimal.RequireFromString("1.00"),
		MaxPrice:         decimal.RequireFromString("500.00"),
	}
}

// DefaultLocale returns the locale applied when a tenant is created without one.
func DefaultLocale() Locale {
	return Locale{Currency: "EUR", Timezone: "UTC"}
}

// Valid reports whether every coefficient is non-negative and min <= max.
func (p Pricing) Valid() bool {
	for _, d := range []decimal.Decimal{p.BasePrice, p.PerKmRate, p.ExpressSurcharge, p.HeavySurcharge, p.MinPrice, p.MaxPrice} {
		if d.IsNegative() {
			return false
		}
	}
	return p.MinPrice.LessThanOrEqual(p.MaxPrice)
}

var reSubdomain = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]{0,61}[a-z0-9])?$`)

// NormalizeSubdomain lowercases and trims a tenant selector.
func NormalizeSubdomain(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ValidSubdomain checks the subdomain key format.
func ValidSubdomain(s string) bool {
	return reSubdomain.MatchString(s)
}

var reCurrency = regexp.MustCompile(`^[A-Z]{3}$`)

// Valid checks currency code shape and that the timezone is known.
func (l Locale) Valid() bool {
	if !reCurrency.MatchString(l.Currency) {
		return false
	}
	_, err := time.LoadLocation(l.Timezone)
	return err == nil
}

// zeroDecimalCurrencies have no minor unit.
var zeroDecimalCurrencies = map[string]struct{}{
	"JPY": {}, "KRW": {}, "VND": {}, "CLP": {}, "ISK": {}, "HUF": {},
}

// MinorUnitScale returns the number of decimal places of the smallest unit of currency.
func MinorUnitScale(currency string) int32 {
	if _, ok := zeroDecimalCurrencies[strings.ToUpper(currency)]; ok {
		return 0
	}
	return 2
}
