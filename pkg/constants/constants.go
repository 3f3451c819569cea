// Package constants provides shared constants for the mortgage-affordability calculator.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
)

// Validation bounds for calculation requests
const (
	// MinInterestRate is the lowest accepted annual interest rate in percent
	MinInterestRate = 0.1

	// MaxInterestRate is the highest accepted annual interest rate in percent
	MaxInterestRate = 20.0

	// MinAmortizationYears is the shortest accepted amortization term
	MinAmortizationYears = 1

	// MaxAmortizationYears is the longest accepted amortization term
	MaxAmortizationYears = 35
)

// Insurance and affordability thresholds
const (
	// InsuranceCutoffPercent is the down-payment percentage at and above
	// which no mortgage default insurance is required
	InsuranceCutoffPercent = 20.0

	// MinDownPaymentPercent is the down-payment percentage below which
	// lenders may reject the mortgage outright
	MinDownPaymentPercent = 5.0

	// AssumedAffordabilityRatio is the gross-debt-service ratio used to
	// back-derive income when no income is supplied
	AssumedAffordabilityRatio = 0.32

	// AboveMarketRateMargin is how far an interest rate may sit above the
	// 5-year fixed benchmark before a warning is raised, in percentage points
	AboveMarketRateMargin = 1.0
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxBodyBytes is the default maximum request body size (64 KB)
	DefaultMaxBodyBytes int64 = 64 * 1024

	// DefaultRateLimitRequests is the per-IP request budget per rate window
	DefaultRateLimitRequests = 120
)
