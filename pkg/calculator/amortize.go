package calculator

import (
	"math"

	"github.com/redriverhomes/mortgage-affordability/pkg/constants"
)

// MonthlyPayment calculates the fixed monthly payment for a loan using the
// standard amortization formula. A zero interest rate would divide by zero in
// the annuity formula, so it is special-cased to a straight-line repayment.
// Validation keeps rates at or above 0.1%, but the guard stays: the engine
// must be total over its numeric domain.
func MonthlyPayment(loanAmount, annualInterestRate float64, termMonths int) float64 {
	if annualInterestRate == 0 {
		return loanAmount / float64(termMonths)
	}

	periodicInterestRate := annualInterestRate / (constants.PercentageMultiplier * constants.MonthsPerYear)
	power := math.Pow(1.00+periodicInterestRate, float64(termMonths))
	discountFactor := (power - 1.00) / power
	return loanAmount * periodicInterestRate / discountFactor
}

// TotalInterest is the interest paid over the full term: the sum of all
// payments less the amount borrowed. Zero for a zero-rate loan by
// construction.
func TotalInterest(monthlyPayment, loanAmount float64, termMonths int) float64 {
	total := monthlyPayment*float64(termMonths) - loanAmount
	if total < 0 {
		return 0
	}
	return total
}
