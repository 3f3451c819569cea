package calculator

import (
	"github.com/redriverhomes/mortgage-affordability/pkg/constants"
)

// Classify buckets the total monthly housing cost against gross monthly
// income into the four-level affordability rating. When no income is supplied
// (monthlyIncome <= 0) the income is back-derived from the housing cost at
// the assumed 32% gross-debt-service ratio; the ratio then sits exactly on
// the 32% boundary and the rating is always "good".
func Classify(totalMonthlyCost, monthlyIncome float64) Rating {
	if monthlyIncome <= 0 {
		monthlyIncome = totalMonthlyCost / constants.AssumedAffordabilityRatio
	}
	if monthlyIncome <= 0 {
		return RatingPoor
	}

	ratio := totalMonthlyCost / monthlyIncome * constants.PercentageMultiplier
	switch {
	case ratio <= 28:
		return RatingExcellent
	case ratio <= 32:
		return RatingGood
	case ratio <= 39:
		return RatingFair
	default:
		return RatingPoor
	}
}
