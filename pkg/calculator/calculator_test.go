package calculator

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/redriverhomes/mortgage-affordability/pkg/market"
)

func TestCalculateTwentyPercentDownBoundary(t *testing.T) {
	result, err := Calculate(Request{
		PropertyValue:     400000,
		DownPayment:       80000,
		InterestRate:      4.84,
		AmortizationYears: 25,
		PropertyType:      PropertySingleFamily,
		HeatingType:       market.HeatingGas,
	}, market.Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.DownPaymentPercent != 20 {
		t.Errorf("down payment percent = %v, expected 20", result.DownPaymentPercent)
	}
	if result.InsurancePremium != 0 {
		t.Errorf("insurance premium = %v, expected 0 at 20%% down", result.InsurancePremium)
	}
	if result.PrincipalAmount != 320000 {
		t.Errorf("principal = %v, expected 320000", result.PrincipalAmount)
	}
	if math.Abs(result.MonthlyPayment-1840.98) > 0.01 {
		t.Errorf("monthly payment = %v, expected 1840.98", result.MonthlyPayment)
	}
	if math.Abs(result.TotalInterest-232293.80) > 0.01 {
		t.Errorf("total interest = %v, expected 232293.80", result.TotalInterest)
	}
	if math.Abs(result.MonthlyPropertyTax-416.67) > 0.01 {
		t.Errorf("monthly property tax = %v, expected 416.67", result.MonthlyPropertyTax)
	}
	if math.Abs(result.MonthlyInsurance-116.67) > 0.01 {
		t.Errorf("monthly insurance = %v, expected 116.67", result.MonthlyInsurance)
	}
	if result.MonthlyUtilities != 95.00 {
		t.Errorf("monthly utilities = %v, expected 95.00 for gas", result.MonthlyUtilities)
	}
	if math.Abs(result.TotalMonthlyCost-2469.31) > 0.01 {
		t.Errorf("total monthly cost = %v, expected 2469.31", result.TotalMonthlyCost)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("expected no warnings at 20%% down, got %v", result.Warnings)
	}
	if result.AffordabilityRating != RatingGood {
		t.Errorf("rating = %v, expected good with back-derived income", result.AffordabilityRating)
	}
}

func TestCalculateFivePercentDown(t *testing.T) {
	req := validRequest()
	req.DownPayment = 20000

	result, err := Calculate(req, market.Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.DownPaymentPercent != 5 {
		t.Errorf("down payment percent = %v, expected 5", result.DownPaymentPercent)
	}
	if math.Abs(result.InsurancePremium-15200) > 0.01 {
		t.Errorf("insurance premium = %v, expected 15200 (4.0%% tier)", result.InsurancePremium)
	}
	if math.Abs(result.MonthlyPayment-2273.61) > 0.01 {
		t.Errorf("monthly payment = %v, expected 2273.61 on a 395200 loan", result.MonthlyPayment)
	}

	// Exactly 5% down requires insurance but is still accepted by lenders.
	if len(result.Warnings) != 1 {
		t.Fatalf("expected exactly 1 warning, got %d: %v", len(result.Warnings), result.Warnings)
	}
	if !strings.Contains(result.Warnings[0], "mortgage default insurance") {
		t.Errorf("expected insurance warning, got %q", result.Warnings[0])
	}
}

func TestCalculateBelowFivePercentDown(t *testing.T) {
	req := validRequest()
	req.DownPayment = 15000 // 3.75%

	result, err := Calculate(req, market.Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.DownPaymentPercent != 3.75 {
		t.Errorf("down payment percent = %v, expected 3.75", result.DownPaymentPercent)
	}
	if math.Abs(result.InsurancePremium-17325) > 0.01 {
		t.Errorf("insurance premium = %v, expected 17325 (4.5%% tier)", result.InsurancePremium)
	}

	if len(result.Warnings) != 2 {
		t.Fatalf("expected 2 warnings, got %d: %v", len(result.Warnings), result.Warnings)
	}
	if !strings.Contains(result.Warnings[0], "mortgage default insurance") {
		t.Errorf("expected insurance warning first, got %q", result.Warnings[0])
	}
	if !strings.Contains(result.Warnings[1], "may not be accepted") {
		t.Errorf("expected lender-acceptance warning second, got %q", result.Warnings[1])
	}
}

func TestCalculateAboveMarketRateWarning(t *testing.T) {
	data := market.Default()

	req := validRequest()
	req.InterestRate = data.Benchmarks.FiveYearFixed + 1.5

	result, err := Calculate(req, data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d: %v", len(result.Warnings), result.Warnings)
	}
	if !strings.Contains(result.Warnings[0], "5-year fixed benchmark") {
		t.Errorf("expected above-market warning, got %q", result.Warnings[0])
	}

	// Exactly one point above the benchmark is still considered market rate.
	req.InterestRate = data.Benchmarks.FiveYearFixed + 1
	result, err = Calculate(req, data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("expected no warnings at benchmark+1, got %v", result.Warnings)
	}
}

func TestCalculateHonorsSuppliedIncome(t *testing.T) {
	req := validRequest()
	req.MonthlyIncome = 12000

	result, err := Calculate(req, market.Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Total cost ~2469 against 12000 income is a 20.6% ratio.
	if result.AffordabilityRating != RatingExcellent {
		t.Errorf("rating = %v, expected excellent at 12000 income", result.AffordabilityRating)
	}

	req.MonthlyIncome = 6000
	result, err = Calculate(req, market.Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 2469 / 6000 is a 41.2% ratio.
	if result.AffordabilityRating != RatingPoor {
		t.Errorf("rating = %v, expected poor at 6000 income", result.AffordabilityRating)
	}
}

func TestCalculateUtilityLookupPerHeatingType(t *testing.T) {
	data := market.Default()

	for _, heating := range market.HeatingTypes {
		req := validRequest()
		req.HeatingType = heating

		result, err := Calculate(req, data)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", heating, err)
		}
		if result.MonthlyUtilities != data.Utilities[heating] {
			t.Errorf("utilities for %q = %v, expected %v",
				heating, result.MonthlyUtilities, data.Utilities[heating])
		}
	}
}

func TestCalculateLoanIdentity(t *testing.T) {
	reqs := []Request{
		validRequest(),
		func() Request { r := validRequest(); r.DownPayment = 20000; return r }(),
		func() Request { r := validRequest(); r.DownPayment = 0; r.AmortizationYears = 35; return r }(),
	}

	for _, req := range reqs {
		result, err := Calculate(req, market.Default())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// totalLoanAmount = principal + premium; payment*n must repay it plus
		// the total interest, within rounding of the reported figures.
		loan := result.PrincipalAmount + result.InsurancePremium
		total := result.MonthlyPayment * float64(req.AmortizationYears*12)
		if math.Abs(total-(loan+result.TotalInterest)) > 3.0 {
			t.Errorf("payment*n = %v, expected ~%v (loan %v + interest %v)",
				total, loan+result.TotalInterest, loan, result.TotalInterest)
		}
	}
}

func TestCalculateIsIdempotent(t *testing.T) {
	req := validRequest()
	req.DownPayment = 15000

	first, err := Calculate(req, market.Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Calculate(req, market.Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("identical requests produced different results:\n%+v\n%+v", first, second)
	}
}

func TestCalculateInertFieldsDoNotAffectResult(t *testing.T) {
	base := validRequest()

	variant := base
	variant.PropertyType = PropertyCondo
	variant.IsFirstTimeBuyer = true

	first, err := Calculate(base, market.Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Calculate(variant, market.Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("property type and first-time-buyer flag must not change the numbers:\n%+v\n%+v", first, second)
	}
}
