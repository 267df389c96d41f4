package service

import (
	"errors"
	"math"
	"testing"

	"aether/internal/model"

	"github.com/shopspring/decimal"
)

func newTestPricing() *PricingService {
	return NewPricingService(5, 80, 8.5, 20)
}

func TestQuote_Breakdown(t *testing.T) {
	svc := newTestPricing()

	tests := []struct {
		name      string
		unitCode  string
		floorBand string
		base      int64
		premium   int64
		tax       int64
		total     int64
	}{
		{
			name:      "1bhk-a1 base floors",
			unitCode:  "1bhk-a1",
			floorBand: "1-5",
			base:      408000,
			premium:   0,
			tax:       20400,
			total:     428400,
		},
		{
			name:      "1bhk-a1 high floors",
			unitCode:  "1bhk-a1",
			floorBand: "13-18",
			base:      408000,
			premium:   40800,
			tax:       22440,
			total:     471240,
		},
		{
			name:      "3bhk-c2 top floors",
			unitCode:  "3bhk-c2",
			floorBand: "19-24",
			base:      2016000,
			premium:   302400,
			tax:       115920,
			total:     2434320,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Quote(tt.unitCode, tt.floorBand)
			if err != nil {
				t.Fatalf("Quote() error = %v", err)
			}
			check := func(field string, got decimal.Decimal, want int64) {
				if !got.Equal(decimal.NewFromInt(want)) {
					t.Errorf("%s = %s, want %d", field, got, want)
				}
			}
			check("BasePrice", got.BasePrice, tt.base)
			check("FloorPremium", got.FloorPremium, tt.premium)
			check("Tax", got.Tax, tt.tax)
			check("TotalPrice", got.TotalPrice, tt.total)
		})
	}
}

func TestQuote_UnknownUnitCode(t *testing.T) {
	svc := newTestPricing()

	_, err := svc.Quote("4bhk-d1", "1-5")
	if !errors.Is(err, ErrUnknownUnitCode) {
		t.Fatalf("Quote() error = %v, want ErrUnknownUnitCode", err)
	}
}

func TestQuote_UnknownFloorBandDefaultsToBase(t *testing.T) {
	svc := newTestPricing()

	base, err := svc.Quote("2bhk-b1", "1-5")
	if err != nil {
		t.Fatalf("Quote() error = %v", err)
	}
	unknown, err := svc.Quote("2bhk-b1", "99-100")
	if err != nil {
		t.Fatalf("Quote() error = %v", err)
	}

	if !unknown.TotalPrice.Equal(base.TotalPrice) {
		t.Errorf("unknown band total = %s, want base-tier total %s", unknown.TotalPrice, base.TotalPrice)
	}
	if !unknown.FloorPremium.IsZero() {
		t.Errorf("unknown band premium = %s, want 0", unknown.FloorPremium)
	}
}

// basePrice + floorPremium + tax must equal totalPrice exactly for every
// catalog entry at every floor band.
func TestQuote_AdditivityInvariant(t *testing.T) {
	svc := newTestPricing()

	for _, unit := range Units() {
		for _, band := range FloorBands() {
			got, err := svc.Quote(unit.Code, band.Label)
			if err != nil {
				t.Fatalf("Quote(%s, %s) error = %v", unit.Code, band.Label, err)
			}
			sum := got.BasePrice.Add(got.FloorPremium).Add(got.Tax)
			if !sum.Equal(got.TotalPrice) {
				t.Errorf("Quote(%s, %s): base+premium+tax = %s, total = %s",
					unit.Code, band.Label, sum, got.TotalPrice)
			}
		}
	}
}

func TestQuote_TotalMonotonicAcrossBands(t *testing.T) {
	svc := newTestPricing()

	for _, unit := range Units() {
		prev := decimal.Zero
		for _, band := range FloorBands() {
			got, err := svc.Quote(unit.Code, band.Label)
			if err != nil {
				t.Fatalf("Quote(%s, %s) error = %v", unit.Code, band.Label, err)
			}
			if got.TotalPrice.LessThan(prev) {
				t.Errorf("Quote(%s, %s): total %s dropped below previous band's %s",
					unit.Code, band.Label, got.TotalPrice, prev)
			}
			prev = got.TotalPrice
		}
	}
}

func TestDefaultPrincipal(t *testing.T) {
	svc := newTestPricing()

	got, err := svc.Quote("1bhk-a1", "1-5")
	if err != nil {
		t.Fatalf("Quote() error = %v", err)
	}

	principal := svc.DefaultPrincipal(got.TotalPrice)
	if !principal.Equal(decimal.NewFromInt(342720)) {
		t.Errorf("DefaultPrincipal(428400) = %s, want 342720", principal)
	}
}

func TestEMI(t *testing.T) {
	svc := newTestPricing()

	tests := []struct {
		name      string
		principal float64
		rate      float64
		years     int
		want      float64
		tolerance float64
	}{
		{
			// Principal is 80% of the 1bhk-a1 base-floor total (428400)
			name:      "reference loan",
			principal: 342720,
			rate:      8.5,
			years:     20,
			want:      2974.2037853903585,
			tolerance: 0.01,
		},
		{
			name:      "zero principal",
			principal: 0,
			rate:      8.5,
			years:     20,
			want:      0,
			tolerance: 0,
		},
		{
			name:      "zero rate is straight-line",
			principal: 1200,
			rate:      0,
			years:     10,
			want:      10,
			tolerance: 1e-9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.EMI(tt.principal, tt.rate, tt.years)
			if math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("EMI(%v, %v, %d) = %v, want %v", tt.principal, tt.rate, tt.years, got, tt.want)
			}
		})
	}
}

func TestEMI_MonotonicInPrincipal(t *testing.T) {
	svc := newTestPricing()

	prev := 0.0
	for _, principal := range []float64{100000, 250000, 500000, 1000000} {
		got := svc.EMI(principal, 8.5, 20)
		if got <= prev {
			t.Errorf("EMI(%v) = %v, not greater than EMI for smaller principal %v", principal, got, prev)
		}
		prev = got
	}
}

func TestInstallment(t *testing.T) {
	svc := newTestPricing()

	t.Run("explicit principal", func(t *testing.T) {
		p := 342720.0
		got, err := svc.Installment(&model.EMIRequest{Principal: &p})
		if err != nil {
			t.Fatalf("Installment() error = %v", err)
		}
		if got.MonthlyInstallment != 2974 {
			t.Errorf("MonthlyInstallment = %d, want 2974", got.MonthlyInstallment)
		}
		if got.AnnualRatePercent != 8.5 || got.TenureYears != 20 {
			t.Errorf("defaults not applied: rate=%v tenure=%d", got.AnnualRatePercent, got.TenureYears)
		}
	})

	t.Run("principal derived from unit selection", func(t *testing.T) {
		got, err := svc.Installment(&model.EMIRequest{UnitCode: "1bhk-a1", FloorBand: "1-5"})
		if err != nil {
			t.Fatalf("Installment() error = %v", err)
		}
		if !got.Principal.Equal(decimal.NewFromInt(342720)) {
			t.Errorf("Principal = %s, want 342720", got.Principal)
		}
		if got.MonthlyInstallment != 2974 {
			t.Errorf("MonthlyInstallment = %d, want 2974", got.MonthlyInstallment)
		}
	})

	t.Run("explicit principal wins over unit selection", func(t *testing.T) {
		p := 100000.0
		got, err := svc.Installment(&model.EMIRequest{Principal: &p, UnitCode: "3bhk-c2", FloorBand: "19-24"})
		if err != nil {
			t.Fatalf("Installment() error = %v", err)
		}
		if !got.Principal.Equal(decimal.NewFromInt(100000)) {
			t.Errorf("Principal = %s, want override 100000", got.Principal)
		}
	})

	t.Run("missing principal", func(t *testing.T) {
		_, err := svc.Installment(&model.EMIRequest{})
		if !errors.Is(err, ErrMissingPrincipal) {
			t.Errorf("Installment() error = %v, want ErrMissingPrincipal", err)
		}
	})

	t.Run("unknown unit", func(t *testing.T) {
		_, err := svc.Installment(&model.EMIRequest{UnitCode: "4bhk-d1"})
		if !errors.Is(err, ErrUnknownUnitCode) {
			t.Errorf("Installment() error = %v, want ErrUnknownUnitCode", err)
		}
	})
}
