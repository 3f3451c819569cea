package calculator

import (
	"github.com/redriverhomes/mortgage-affordability/pkg/constants"
	"github.com/redriverhomes/mortgage-affordability/pkg/mathutil"
)

// premiumTier maps a minimum down-payment percentage to the premium rate
// charged on the borrowed amount. Tiers are evaluated top-down; lower bounds
// are inclusive, so the rate is a non-increasing step function of the
// down-payment percentage.
type premiumTier struct {
	minDownPaymentPercent float64
	premiumRate           float64
}

var premiumTiers = []premiumTier{
	{20.0, 0.0},
	{15.0, 2.8},
	{10.0, 3.1},
	{5.0, 4.0},
	{0.0, 4.5},
}

// PremiumRate returns the mortgage-default-insurance premium rate (percent of
// the borrowed amount) for a given down-payment percentage.
func PremiumRate(downPaymentPercent float64) float64 {
	for _, tier := range premiumTiers {
		if downPaymentPercent >= tier.minDownPaymentPercent {
			return tier.premiumRate
		}
	}
	// Unreachable for validated input; the final tier has a zero lower bound.
	return premiumTiers[len(premiumTiers)-1].premiumRate
}

// InsurancePremium computes the one-time mortgage-default-insurance premium
// added to the loan principal. It is zero at and above a 20% down payment.
func InsurancePremium(propertyValue, downPayment float64) float64 {
	downPaymentPercent := mathutil.CalculatePercentage(downPayment, propertyValue)
	rate := PremiumRate(downPaymentPercent)
	return (propertyValue - downPayment) * rate / constants.PercentageMultiplier
}
