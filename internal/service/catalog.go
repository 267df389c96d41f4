package service

import (
	"aether/internal/model"

	"github.com/shopspring/decimal"
)

// Unit is one entry of the fixed unit catalog: price per square metre and
// carpet area. The catalog is design-time data, not user-editable.
type Unit struct {
	Code        string
	Label       string
	PricePerSqm decimal.Decimal
	AreaSqm     decimal.Decimal
}

// FloorBand is one floor tier with its price multiplier. Bands are
// contiguous and cover the building's 24 floors.
type FloorBand struct {
	Label      string
	Multiplier decimal.Decimal
}

var units = []Unit{
	{Code: "1bhk-a1", Label: "1 BHK A1", PricePerSqm: decimal.NewFromInt(8500), AreaSqm: decimal.NewFromInt(48)},
	{Code: "1bhk-a2", Label: "1 BHK A2", PricePerSqm: decimal.NewFromInt(9000), AreaSqm: decimal.NewFromInt(51)},
	{Code: "2bhk-b1", Label: "2 BHK B1", PricePerSqm: decimal.NewFromInt(12000), AreaSqm: decimal.NewFromInt(78)},
	{Code: "2bhk-b2", Label: "2 BHK B2", PricePerSqm: decimal.NewFromInt(13000), AreaSqm: decimal.NewFromInt(84)},
	{Code: "3bhk-c1", Label: "3 BHK C1", PricePerSqm: decimal.NewFromInt(15000), AreaSqm: decimal.NewFromInt(112)},
	{Code: "3bhk-c2", Label: "3 BHK C2", PricePerSqm: decimal.NewFromInt(16000), AreaSqm: decimal.NewFromInt(126)},
}

// Ordered low to high; totals must be non-decreasing across this slice.
var floorBands = []FloorBand{
	{Label: "1-5", Multiplier: decimal.RequireFromString("1.00")},
	{Label: "6-12", Multiplier: decimal.RequireFromString("1.05")},
	{Label: "13-18", Multiplier: decimal.RequireFromString("1.10")},
	{Label: "19-24", Multiplier: decimal.RequireFromString("1.15")},
}

var unitIndex = func() map[string]Unit {
	idx := make(map[string]Unit, len(units))
	for _, u := range units {
		idx[u.Code] = u
	}
	return idx
}()

// LookupUnit resolves a unit code against the fixed catalog
func LookupUnit(code string) (Unit, bool) {
	u, ok := unitIndex[code]
	return u, ok
}

// FloorMultiplier resolves a floor band label to its multiplier. Unknown
// labels fall back to the base tier (x1.00) rather than failing; the band
// always comes from a fixed select on the site.
func FloorMultiplier(label string) decimal.Decimal {
	for _, b := range floorBands {
		if b.Label == label {
			return b.Multiplier
		}
	}
	return floorBands[0].Multiplier
}

// Units returns the catalog in display order
func Units() []model.CatalogUnit {
	out := make([]model.CatalogUnit, len(units))
	for i, u := range units {
		out[i] = model.CatalogUnit{
			Code:        u.Code,
			Label:       u.Label,
			PricePerSqm: u.PricePerSqm,
			AreaSqm:     u.AreaSqm,
		}
	}
	return out
}

// FloorBands returns the floor tiers in ascending order
func FloorBands() []model.CatalogFloorBand {
	out := make([]model.CatalogFloorBand, len(floorBands))
	for i, b := range floorBands {
		out[i] = model.CatalogFloorBand{Label: b.Label, Multiplier: b.Multiplier}
	}
	return out
}
