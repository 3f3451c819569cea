package calculator

import (
	"github.com/redriverhomes/mortgage-affordability/pkg/constants"
	"github.com/redriverhomes/mortgage-affordability/pkg/market"
	"github.com/redriverhomes/mortgage-affordability/pkg/mathutil"
)

// Calculate validates the request and runs the full affordability pipeline
// against the supplied regional market profile: insurance premium, monthly
// payment, regional cost estimates, classification, and warnings. The only
// error it returns is a ValidationErrors; computation over a validated
// request cannot fail. All intermediates stay unrounded; rounding to cents
// happens once when the result is assembled.
func Calculate(req Request, data market.Data) (Result, error) {
	if err := req.Validate(); err != nil {
		return Result{}, err
	}

	principal := req.PropertyValue - req.DownPayment
	downPaymentPercent := mathutil.CalculatePercentage(req.DownPayment, req.PropertyValue)
	insurancePremium := InsurancePremium(req.PropertyValue, req.DownPayment)

	// The premium is financed, not paid up front, so it joins the principal.
	totalLoanAmount := principal + insurancePremium
	termMonths := req.AmortizationYears * constants.MonthsPerYear

	monthlyPayment := MonthlyPayment(totalLoanAmount, req.InterestRate, termMonths)
	totalInterest := TotalInterest(monthlyPayment, totalLoanAmount, termMonths)

	monthlyPropertyTax := req.PropertyValue * data.PropertyTaxRate / constants.PercentageMultiplier / constants.MonthsPerYear
	monthlyInsurance := req.PropertyValue * data.HomeInsuranceRate / constants.PercentageMultiplier / constants.MonthsPerYear
	monthlyUtilities := data.UtilityEstimate(req.HeatingType)

	totalMonthlyCost := monthlyPayment + monthlyPropertyTax + monthlyInsurance + monthlyUtilities

	return Result{
		MonthlyPayment:      mathutil.Round(monthlyPayment),
		PrincipalAmount:     mathutil.Round(principal),
		TotalInterest:       mathutil.Round(totalInterest),
		MonthlyPropertyTax:  mathutil.Round(monthlyPropertyTax),
		MonthlyInsurance:    mathutil.Round(monthlyInsurance),
		MonthlyUtilities:    mathutil.Round(monthlyUtilities),
		TotalMonthlyCost:    mathutil.Round(totalMonthlyCost),
		DownPaymentPercent:  mathutil.Round(downPaymentPercent),
		InsurancePremium:    mathutil.Round(insurancePremium),
		AffordabilityRating: Classify(totalMonthlyCost, req.MonthlyIncome),
		Warnings:            buildWarnings(downPaymentPercent, insurancePremium, req.InterestRate, data.Benchmarks),
	}, nil
}
