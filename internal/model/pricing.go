package model

import (
	"github.com/shopspring/decimal"
)

// QuoteRequest asks for a price breakdown for a unit/floor combination.
// An absent unit code fails the catalog lookup, not JSON binding.
type QuoteRequest struct {
	UnitCode  string `json:"unit_code"`
	FloorBand string `json:"floor_band"`
}

// PriceBreakdown is the itemised price for a unit at a floor band.
// Monetary values are decimals so that basePrice + floorPremium + tax
// always equals totalPrice exactly.
type PriceBreakdown struct {
	UnitCode        string          `json:"unit_code"`
	FloorBand       string          `json:"floor_band"`
	FloorMultiplier decimal.Decimal `json:"floor_multiplier"`
	BasePrice       decimal.Decimal `json:"base_price"`
	FloorPremium    decimal.Decimal `json:"floor_premium"`
	Tax             decimal.Decimal `json:"tax"`
	TotalPrice      decimal.Decimal `json:"total_price"`
}

// LoanQuote is the default financing suggestion attached to a quote:
// principal at the configured loan ratio of the total price, EMI at the
// default rate/tenure. The installment is rounded to the whole currency
// unit for display.
type LoanQuote struct {
	Principal          decimal.Decimal `json:"principal"`
	AnnualRatePercent  float64         `json:"annual_rate_percent"`
	TenureYears        int             `json:"tenure_years"`
	MonthlyInstallment int64           `json:"monthly_installment"`
}

// QuoteResponse is the full quote returned by POST /api/v1/quote
type QuoteResponse struct {
	PriceBreakdown
	Loan LoanQuote `json:"loan"`
}

// EMIRequest computes a monthly installment. Principal may be supplied
// directly (an override) or derived from a unit/floor selection; rate and
// tenure fall back to the configured defaults when omitted.
type EMIRequest struct {
	Principal         *float64 `json:"principal,omitempty"`
	AnnualRatePercent *float64 `json:"annual_rate_percent,omitempty"`
	TenureYears       *int     `json:"tenure_years,omitempty"`
	UnitCode          string   `json:"unit_code,omitempty"`
	FloorBand         string   `json:"floor_band,omitempty"`
}

// EMIResponse echoes the effective loan parameters with the computed installment
type EMIResponse struct {
	Principal          decimal.Decimal `json:"principal"`
	AnnualRatePercent  float64         `json:"annual_rate_percent"`
	TenureYears        int             `json:"tenure_years"`
	MonthlyInstallment int64           `json:"monthly_installment"`
}

// CatalogUnit describes one unit type for the calculator's selects
type CatalogUnit struct {
	Code        string          `json:"code"`
	Label       string          `json:"label"`
	PricePerSqm decimal.Decimal `json:"price_per_sqm"`
	AreaSqm     decimal.Decimal `json:"area_sqm"`
}

// CatalogFloorBand describes one floor band and its premium multiplier
type CatalogFloorBand struct {
	Label      string          `json:"label"`
	Multiplier decimal.Decimal `json:"multiplier"`
}

// CatalogResponse is the response for GET /api/v1/catalog
type CatalogResponse struct {
	Units      []CatalogUnit      `json:"units"`
	FloorBands []CatalogFloorBand `json:"floor_bands"`
}
