package service

import (
	"errors"
	"math"

	"aether/internal/model"

	"github.com/shopspring/decimal"
)

var (
	// ErrUnknownUnitCode is returned when a quote is requested for a unit
	// code outside the fixed catalog
	ErrUnknownUnitCode = errors.New("unknown unit code")

	// ErrMissingPrincipal is returned when an EMI request carries neither a
	// principal nor a unit selection to derive one from
	ErrMissingPrincipal = errors.New("missing principal")
)

// PricingService computes price breakdowns and loan installments for the
// investment calculator. It holds only immutable configuration; all
// methods are pure and safe for concurrent use.
type PricingService struct {
	taxRate            decimal.Decimal
	loanRatio          decimal.Decimal
	defaultAnnualRate  float64
	defaultTenureYears int
}

// NewPricingService creates a pricing service. Rates are given in percent
// (tax 5, loan ratio 80) to match the configuration surface.
func NewPricingService(taxRatePercent, loanRatioPercent, defaultAnnualRate float64, defaultTenureYears int) *PricingService {
	hundred := decimal.NewFromInt(100)
	return &PricingService{
		taxRate:            decimal.NewFromFloat(taxRatePercent).Div(hundred),
		loanRatio:          decimal.NewFromFloat(loanRatioPercent).Div(hundred),
		defaultAnnualRate:  defaultAnnualRate,
		defaultTenureYears: defaultTenureYears,
	}
}

// Quote computes the itemised price for a unit at a floor band:
//
//	basePrice    = pricePerSqm * area
//	floorPremium = basePrice * (multiplier - 1)
//	tax          = basePrice * multiplier * taxRate
//	totalPrice   = basePrice * multiplier + tax
//
// basePrice + floorPremium + tax == totalPrice holds exactly.
func (s *PricingService) Quote(unitCode, floorBand string) (*model.PriceBreakdown, error) {
	unit, ok := LookupUnit(unitCode)
	if !ok {
		return nil, ErrUnknownUnitCode
	}

	multiplier := FloorMultiplier(floorBand)
	base := unit.PricePerSqm.Mul(unit.AreaSqm)
	adjusted := base.Mul(multiplier)
	premium := adjusted.Sub(base)
	tax := adjusted.Mul(s.taxRate)
	total := adjusted.Add(tax)

	return &model.PriceBreakdown{
		UnitCode:        unitCode,
		FloorBand:       floorBand,
		FloorMultiplier: multiplier,
		BasePrice:       base,
		FloorPremium:    premium,
		Tax:             tax,
		TotalPrice:      total,
	}, nil
}

// DefaultPrincipal is the suggested loan principal for a total price: the
// configured loan ratio of the total, rounded to the whole currency unit.
func (s *PricingService) DefaultPrincipal(totalPrice decimal.Decimal) decimal.Decimal {
	return totalPrice.Mul(s.loanRatio).Round(0)
}

// DefaultLoan builds the financing suggestion attached to every quote
func (s *PricingService) DefaultLoan(totalPrice decimal.Decimal) model.LoanQuote {
	principal := s.DefaultPrincipal(totalPrice)
	emi := s.EMI(principal.InexactFloat64(), s.defaultAnnualRate, s.defaultTenureYears)
	return model.LoanQuote{
		Principal:          principal,
		AnnualRatePercent:  s.defaultAnnualRate,
		TenureYears:        s.defaultTenureYears,
		MonthlyInstallment: int64(math.Round(emi)),
	}
}

// EMI computes the equated monthly installment for a loan:
//
//	emi = P * r * (1+r)^n / ((1+r)^n - 1)
//
// with r the monthly fractional rate and n the tenure in months. A zero
// principal yields zero. A zero rate degenerates to straight-line
// repayment. Full float precision is returned; display rounding is the
// caller's concern.
func (s *PricingService) EMI(principal, annualRatePercent float64, tenureYears int) float64 {
	if principal == 0 {
		return 0
	}

	r := annualRatePercent / 12 / 100
	n := float64(tenureYears * 12)
	if r == 0 {
		return principal / n
	}

	pow := math.Pow(1+r, n)
	return principal * r * pow / (pow - 1)
}

// Installment resolves an EMI request: an explicit principal wins, else
// the default principal is derived from the unit/floor selection. Rate
// and tenure fall back to the configured defaults when omitted.
func (s *PricingService) Installment(req *model.EMIRequest) (*model.EMIResponse, error) {
	rate := s.defaultAnnualRate
	if req.AnnualRatePercent != nil {
		rate = *req.AnnualRatePercent
	}
	years := s.defaultTenureYears
	if req.TenureYears != nil {
		years = *req.TenureYears
	}

	var principal decimal.Decimal
	switch {
	case req.Principal != nil:
		principal = decimal.NewFromFloat(*req.Principal)
	case req.UnitCode != "":
		breakdown, err := s.Quote(req.UnitCode, req.FloorBand)
		if err != nil {
			return nil, err
		}
		principal = s.DefaultPrincipal(breakdown.TotalPrice)
	default:
		return nil, ErrMissingPrincipal
	}

	emi := s.EMI(principal.InexactFloat64(), rate, years)
	return &model.EMIResponse{
		Principal:          principal,
		AnnualRatePercent:  rate,
		TenureYears:        years,
		MonthlyInstallment: int64(math.Round(emi)),
	}, nil
}
