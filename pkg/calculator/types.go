// Package calculator implements the mortgage-affordability computation:
// request validation, mortgage-default-insurance premium tiering, fixed-rate
// amortization, regional cost aggregation, affordability classification, and
// advisory warnings. Every step is a pure function over the validated request
// and an injected regional market profile.
package calculator

import (
	"github.com/redriverhomes/mortgage-affordability/pkg/market"
)

// PropertyType identifies the kind of property being financed. It is carried
// through to the result but does not currently influence any computed value.
type PropertyType string

// Supported property types.
const (
	PropertySingleFamily PropertyType = "single-family"
	PropertyCondo        PropertyType = "condo"
	PropertyTownhouse    PropertyType = "townhouse"
	PropertyMultiFamily  PropertyType = "multi-family"
)

// PropertyTypes lists every supported property type in display order.
var PropertyTypes = []PropertyType{
	PropertySingleFamily,
	PropertyCondo,
	PropertyTownhouse,
	PropertyMultiFamily,
}

// Valid reports whether p is a supported property type.
func (p PropertyType) Valid() bool {
	for _, known := range PropertyTypes {
		if p == known {
			return true
		}
	}
	return false
}

// Rating is the categorical affordability classification.
type Rating string

// Affordability ratings from least to most burdened.
const (
	RatingExcellent Rating = "excellent"
	RatingGood      Rating = "good"
	RatingFair      Rating = "fair"
	RatingPoor      Rating = "poor"
)

// Request holds the parameters for a single affordability calculation.
// MonthlyIncome is optional; when zero, income is back-derived from the
// computed housing cost for classification (see Classify).
type Request struct {
	PropertyValue     float64            `json:"propertyValue" yaml:"propertyValue"`
	DownPayment       float64            `json:"downPayment" yaml:"downPayment"`
	InterestRate      float64            `json:"interestRate" yaml:"interestRate"`
	AmortizationYears int                `json:"amortizationYears" yaml:"amortizationYears"`
	PropertyType      PropertyType       `json:"propertyType" yaml:"propertyType"`
	HeatingType       market.HeatingType `json:"heatingType" yaml:"heatingType"`
	IsFirstTimeBuyer  bool               `json:"isFirstTimeBuyer" yaml:"isFirstTimeBuyer"`
	MonthlyIncome     float64            `json:"monthlyIncome,omitempty" yaml:"monthlyIncome,omitempty"`
}

// Result holds the computed affordability figures. All currency amounts are
// rounded to two decimals; intermediate computation is unrounded.
type Result struct {
	MonthlyPayment      float64  `json:"monthlyPayment"`
	PrincipalAmount     float64  `json:"principalAmount"`
	TotalInterest       float64  `json:"totalInterest"`
	MonthlyPropertyTax  float64  `json:"monthlyPropertyTax"`
	MonthlyInsurance    float64  `json:"monthlyInsurance"`
	MonthlyUtilities    float64  `json:"monthlyUtilities"`
	TotalMonthlyCost    float64  `json:"totalMonthlyCost"`
	DownPaymentPercent  float64  `json:"downPaymentPercent"`
	InsurancePremium    float64  `json:"insurancePremium"`
	AffordabilityRating Rating   `json:"affordabilityRating"`
	Warnings            []string `json:"warnings"`
}
