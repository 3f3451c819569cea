// Package market defines the static regional market profile used by the
// affordability calculator: average tax and insurance rates, posted rate
// benchmarks, and per-heating-type utility estimates. A profile is loaded
// once at startup and treated as read-only from then on.
package market

import (
	"fmt"

	"github.com/redriverhomes/mortgage-affordability/pkg/constants"
)

// HeatingType identifies the heating system used for the utility estimate.
type HeatingType string

// Supported heating types.
const (
	HeatingGas        HeatingType = "gas"
	HeatingElectric   HeatingType = "electric"
	HeatingOil        HeatingType = "oil"
	HeatingGeothermal HeatingType = "geothermal"
)

// HeatingTypes lists every supported heating type in display order.
var HeatingTypes = []HeatingType{HeatingGas, HeatingElectric, HeatingOil, HeatingGeothermal}

// Valid reports whether h is a supported heating type.
func (h HeatingType) Valid() bool {
	for _, known := range HeatingTypes {
		if h == known {
			return true
		}
	}
	return false
}

// Benchmarks holds the posted rates for the three advertised terms.
type Benchmarks struct {
	OneYearFixed   float64 `json:"oneYearFixed" yaml:"oneYearFixed"`
	ThreeYearFixed float64 `json:"threeYearFixed" yaml:"threeYearFixed"`
	FiveYearFixed  float64 `json:"fiveYearFixed" yaml:"fiveYearFixed"`
}

// Data is the regional market profile. Rates are annual percentages of
// property value; utilities are estimated monthly amounts.
type Data struct {
	Region            string                  `json:"region" yaml:"region"`
	PropertyTaxRate   float64                 `json:"propertyTaxRate" yaml:"propertyTaxRate"`
	HomeInsuranceRate float64                 `json:"homeInsuranceRate" yaml:"homeInsuranceRate"`
	Benchmarks        Benchmarks              `json:"benchmarks" yaml:"benchmarks"`
	Utilities         map[HeatingType]float64 `json:"utilities" yaml:"utilities"`
}

// Default returns the built-in regional profile.
func Default() Data {
	return Data{
		Region:            "Winnipeg",
		PropertyTaxRate:   1.25,
		HomeInsuranceRate: 0.35,
		Benchmarks: Benchmarks{
			OneYearFixed:   5.29,
			ThreeYearFixed: 4.54,
			FiveYearFixed:  4.79,
		},
		Utilities: map[HeatingType]float64{
			HeatingGas:        95.00,
			HeatingElectric:   140.00,
			HeatingOil:        160.00,
			HeatingGeothermal: 70.00,
		},
	}
}

// UtilityEstimate returns the monthly utility estimate for a heating type.
// Unknown types fall back to the gas estimate; callers are expected to have
// validated the heating type already.
func (d Data) UtilityEstimate(heating HeatingType) float64 {
	if estimate, ok := d.Utilities[heating]; ok {
		return estimate
	}
	return d.Utilities[HeatingGas]
}

// Validate performs sanity checks on the profile and returns warnings for
// anything that looks misconfigured. Warnings do not prevent startup.
func (d Data) Validate() []string {
	var warnings []string

	if d.PropertyTaxRate <= 0 {
		warnings = append(warnings, fmt.Sprintf("property tax rate %.2f%% is not positive", d.PropertyTaxRate))
	}
	if d.HomeInsuranceRate <= 0 {
		warnings = append(warnings, fmt.Sprintf("home insurance rate %.2f%% is not positive", d.HomeInsuranceRate))
	}

	for _, benchmark := range []struct {
		name string
		rate float64
	}{
		{"1-year fixed", d.Benchmarks.OneYearFixed},
		{"3-year fixed", d.Benchmarks.ThreeYearFixed},
		{"5-year fixed", d.Benchmarks.FiveYearFixed},
	} {
		if benchmark.rate < constants.MinInterestRate || benchmark.rate > constants.MaxInterestRate {
			warnings = append(warnings, fmt.Sprintf("%s benchmark %.2f%% is outside the accepted rate range [%.1f, %.1f]",
				benchmark.name, benchmark.rate, constants.MinInterestRate, constants.MaxInterestRate))
		}
	}

	for _, heating := range HeatingTypes {
		estimate, ok := d.Utilities[heating]
		if !ok {
			warnings = append(warnings, fmt.Sprintf("no utility estimate configured for heating type %q", heating))
			continue
		}
		if estimate < 0 {
			warnings = append(warnings, fmt.Sprintf("utility estimate for heating type %q is negative", heating))
		}
	}

	return warnings
}
