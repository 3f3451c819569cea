package calculator

import (
	"fmt"

	"github.com/redriverhomes/mortgage-affordability/pkg/constants"
	"github.com/redriverhomes/mortgage-affordability/pkg/format"
	"github.com/redriverhomes/mortgage-affordability/pkg/market"
)

// buildWarnings assembles the advisory warnings in display order. Warnings
// are additive and never mutually exclusive.
func buildWarnings(downPaymentPercent, insurancePremium, interestRate float64, benchmarks market.Benchmarks) []string {
	var warnings []string

	if downPaymentPercent < constants.InsuranceCutoffPercent {
		warnings = append(warnings, fmt.Sprintf(
			"Down payment is below %s, so mortgage default insurance of %s is added to the loan.",
			format.Percent(constants.InsuranceCutoffPercent), format.Currency(insurancePremium)))
	}
	if downPaymentPercent < constants.MinDownPaymentPercent {
		warnings = append(warnings, fmt.Sprintf(
			"A down payment below %s may not be accepted by all lenders.",
			format.Percent(constants.MinDownPaymentPercent)))
	}
	if interestRate > benchmarks.FiveYearFixed+constants.AboveMarketRateMargin {
		warnings = append(warnings, fmt.Sprintf(
			"Interest rate %s is well above the current 5-year fixed benchmark of %s; shopping around could save thousands.",
			format.Percent(interestRate), format.Percent(benchmarks.FiveYearFixed)))
	}

	return warnings
}
