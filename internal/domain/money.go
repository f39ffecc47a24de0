package domain

import "github.com/shopspring/decimal"

// Amounts are stored as NUMERIC(14,2)
const (
	MoneyScale        = 2
	MaxMoneyIntDigits = 12
)

var maxMoney = decimal.New(1, MaxMoneyIntDigits)

// FitsMoney reports whether d is stored exactly: at most two decimal places
// and twelve integer digits.
func FitsMoney(d decimal.Decimal) bool {
	if !d.Equal(d.Truncate(MoneyScale)) {
		return false
	}
	return d.Abs().LessThan(maxMoney)
}
