package aggregation

import (
	"github.com/cointrack/cointrack-backend/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	weeksPerMonth = decimal.NewFromInt(4)
	monthsPerYear = decimal.NewFromInt(12)
)

// MonthlyEquivalent converts a recurring amount to its per-month cost.
// A month is approximated as exactly four weeks. Unknown frequencies are
// treated as monthly.
func MonthlyEquivalent(amount decimal.Decimal, frequency domain.Frequency) decimal.Decimal {
	switch frequency {
	case domain.FrequencyWeekly:
		return amount.Mul(weeksPerMonth)
	case domain.FrequencyYearly:
		return amount.Div(monthsPerYear)
	default:
		return amount
	}
}
