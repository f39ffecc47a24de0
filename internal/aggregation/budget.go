package aggregation

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Status is the severity tier of spend against a budget limit
type Status string

const (
	StatusSafe     Status = "safe"
	StatusWarning  Status = "warning"
	StatusExceeded Status = "exceeded"
)

var (
	hundred          = decimal.NewFromInt(100)
	warningThreshold = decimal.NewFromInt(80)
	exceededScore    = decimal.NewFromInt(300)
	warningScore     = decimal.NewFromInt(200)
)

// BudgetStatus is one category's spend compared to its limit for a month
type BudgetStatus struct {
	Category   string          `json:"category"`
	Spent      decimal.Decimal `json:"spent"`
	Limit      decimal.Decimal `json:"limit"`
	Percentage decimal.Decimal `json:"percentage"`
	Status     Status          `json:"status"`
}

// EvaluateBudgets compares per-category spend with the configured limits.
// The result covers every category that has spend or a limit. Categories
// without a limit report limit 0, percentage 0 and status safe.
// Results are ordered most severe first: exceeded, then warning, then safe,
// each by percentage descending, ties by category name.
func EvaluateBudgets(perCategory map[string]decimal.Decimal, limits map[string]decimal.Decimal) []BudgetStatus {
	seen := make(map[string]struct{}, len(perCategory)+len(limits))
	categories := make([]string, 0, len(perCategory)+len(limits))
	for cat := range perCategory {
		if _, ok := seen[cat]; !ok {
			seen[cat] = struct{}{}
			categories = append(categories, cat)
		}
	}
	for cat := range limits {
		if _, ok := seen[cat]; !ok {
			seen[cat] = struct{}{}
			categories = append(categories, cat)
		}
	}

	results := make([]BudgetStatus, 0, len(categories))
	for _, cat := range categories {
		spent, ok := perCategory[cat]
		if !ok {
			spent = decimal.Zero
		}
		limit, ok := limits[cat]
		if !ok || limit.IsNegative() {
			limit = decimal.Zero
		}
		pct := Percentage(spent, limit)
		results = append(results, BudgetStatus{
			Category:   cat,
			Spent:      spent,
			Limit:      limit,
			Percentage: pct,
			Status:     Classify(pct, limit),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		si, sj := severityScore(results[i]), severityScore(results[j])
		if !si.Equal(sj) {
			return si.GreaterThan(sj)
		}
		return results[i].Category < results[j].Category
	})
	return results
}

// Percentage returns spent as a percentage of limit, or 0 when limit is not positive
func Percentage(spent, limit decimal.Decimal) decimal.Decimal {
	if !limit.IsPositive() {
		return decimal.Zero
	}
	return spent.Div(limit).Mul(hundred)
}

// Classify maps a percentage to its tier. A zero limit is always safe.
func Classify(percentage, limit decimal.Decimal) Status {
	if !limit.IsPositive() {
		return StatusSafe
	}
	switch {
	case percentage.GreaterThanOrEqual(hundred):
		return StatusExceeded
	case percentage.GreaterThanOrEqual(warningThreshold):
		return StatusWarning
	default:
		return StatusSafe
	}
}

func severityScore(s BudgetStatus) decimal.Decimal {
	switch s.Status {
	case StatusExceeded:
		return exceededScore.Add(s.Percentage)
	case StatusWarning:
		return warningScore.Add(s.Percentage)
	default:
		return s.Percentage
	}
}
