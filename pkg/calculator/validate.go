package calculator

import (
	"fmt"
	"strings"

	"github.com/redriverhomes/mortgage-affordability/pkg/constants"
)

// ValidationError describes a single violated constraint on a request field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every violated constraint for a request. The
// order matches the field declaration order, so responses are deterministic.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	messages := make([]string, len(e))
	for i, violation := range e {
		messages[i] = violation.Error()
	}
	return strings.Join(messages, "; ")
}

// Validate checks the structural and range constraints on the request and
// returns a ValidationErrors listing every violation, or nil when the request
// is acceptable. No computation happens here.
func (r Request) Validate() error {
	var violations ValidationErrors

	if r.PropertyValue <= 0 {
		violations = append(violations, ValidationError{
			Field:   "propertyValue",
			Message: "property value must be greater than zero",
		})
	}
	if r.DownPayment < 0 {
		violations = append(violations, ValidationError{
			Field:   "downPayment",
			Message: "down payment cannot be negative",
		})
	}
	if r.PropertyValue > 0 && r.DownPayment > r.PropertyValue {
		violations = append(violations, ValidationError{
			Field:   "downPayment",
			Message: "down payment cannot exceed the property value",
		})
	}
	if r.InterestRate < constants.MinInterestRate || r.InterestRate > constants.MaxInterestRate {
		violations = append(violations, ValidationError{
			Field: "interestRate",
			Message: fmt.Sprintf("interest rate must be between %.1f%% and %.0f%%",
				constants.MinInterestRate, constants.MaxInterestRate),
		})
	}
	if r.AmortizationYears < constants.MinAmortizationYears || r.AmortizationYears > constants.MaxAmortizationYears {
		violations = append(violations, ValidationError{
			Field: "amortizationYears",
			Message: fmt.Sprintf("amortization must be a whole number of years between %d and %d",
				constants.MinAmortizationYears, constants.MaxAmortizationYears),
		})
	}
	if !r.PropertyType.Valid() {
		violations = append(violations, ValidationError{
			Field:   "propertyType",
			Message: fmt.Sprintf("property type %q is not recognized", string(r.PropertyType)),
		})
	}
	if !r.HeatingType.Valid() {
		violations = append(violations, ValidationError{
			Field:   "heatingType",
			Message: fmt.Sprintf("heating type %q is not recognized", string(r.HeatingType)),
		})
	}
	if r.MonthlyIncome < 0 {
		violations = append(violations, ValidationError{
			Field:   "monthlyIncome",
			Message: "monthly income cannot be negative",
		})
	}

	if len(violations) == 0 {
		return nil
	}
	return violations
}
