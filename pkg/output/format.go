// Package output provides utilities for formatting and displaying calculation results.
package output

import (
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/redriverhomes/mortgage-affordability/pkg/calculator"
	"github.com/redriverhomes/mortgage-affordability/pkg/market"
)

// PrettyFormat writes a human-readable rather than machine-readable table.
func PrettyFormat(w io.Writer, result calculator.Result, data market.Data) {
	p := message.NewPrinter(language.English)

	fmt.Fprintf(w, "--- Affordability estimate (%s) ---\n", data.Region)
	_, _ = p.Fprintf(w, "Principal amount          | $%.2f\n", result.PrincipalAmount)
	_, _ = p.Fprintf(w, "Down payment              | %.2f%%\n", result.DownPaymentPercent)
	_, _ = p.Fprintf(w, "Mortgage default insurance| $%.2f\n", result.InsurancePremium)
	_, _ = p.Fprintf(w, "Monthly payment           | $%.2f\n", result.MonthlyPayment)
	_, _ = p.Fprintf(w, "Total interest            | $%.2f\n", result.TotalInterest)
	_, _ = p.Fprintf(w, "Monthly property tax      | $%.2f\n", result.MonthlyPropertyTax)
	_, _ = p.Fprintf(w, "Monthly home insurance    | $%.2f\n", result.MonthlyInsurance)
	_, _ = p.Fprintf(w, "Monthly utilities         | $%.2f\n", result.MonthlyUtilities)
	_, _ = p.Fprintf(w, "Total monthly cost        | $%.2f\n", result.TotalMonthlyCost)
	fmt.Fprintf(w, "Affordability rating      | %s\n", result.AffordabilityRating)

	if len(result.Warnings) > 0 {
		fmt.Fprintf(w, "Warnings:\n")
		for _, warning := range result.Warnings {
			fmt.Fprintf(w, "  - %s\n", warning)
		}
	}
}

// CsvFormat writes the result in comma-separated value format.
func CsvFormat(w io.Writer, result calculator.Result) {
	fmt.Fprintf(w, `"monthlyPayment","principalAmount","totalInterest","monthlyPropertyTax","monthlyInsurance","monthlyUtilities","totalMonthlyCost","downPaymentPercent","insurancePremium","affordabilityRating"`)
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, `"%.2f","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f","%s"`,
		result.MonthlyPayment, result.PrincipalAmount, result.TotalInterest,
		result.MonthlyPropertyTax, result.MonthlyInsurance, result.MonthlyUtilities,
		result.TotalMonthlyCost, result.DownPaymentPercent, result.InsurancePremium,
		result.AffordabilityRating)
	fmt.Fprintf(w, "\n")
}
