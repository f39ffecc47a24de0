package aggregation

import (
	"time"

	"github.com/cointrack/cointrack-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MonthlyAggregate is the derived spending picture for one calendar month.
// It is always recomputed from raw records and never persisted.
type MonthlyAggregate struct {
	Year             int                        `json:"year"`
	Month            int                        `json:"month"`
	OneTimeTotal     decimal.Decimal            `json:"oneTimeTotal"`
	RecurringTotal   decimal.Decimal            `json:"recurringTotal"`
	CombinedTotal    decimal.Decimal            `json:"combinedTotal"`
	TransactionCount int                        `json:"transactionCount"`
	PerCategory      map[string]decimal.Decimal `json:"perCategory"`
}

// Aggregate combines the one-time expenses dated inside the month with the
// monthly equivalent of every recurring commitment active in it.
//
// Expenses without a category count as "Uncategorized" and recurring items
// without one as "Bills"; the two defaults are kept as separate buckets.
// Non-positive amounts contribute nothing. Nil entries are skipped.
func Aggregate(expenses []*domain.Expense, recurring []*domain.RecurringExpense, year int, month time.Month, loc *time.Location) MonthlyAggregate {
	w := MonthWindow(year, month, loc)
	return aggregateWindow(expenses, recurring, w, true)
}

func aggregateWindow(expenses []*domain.Expense, recurring []*domain.RecurringExpense, w Window, includeRecurring bool) MonthlyAggregate {
	agg := MonthlyAggregate{
		Year:           w.Year(),
		Month:          int(w.Month()),
		OneTimeTotal:   decimal.Zero,
		RecurringTotal: decimal.Zero,
		CombinedTotal:  decimal.Zero,
		PerCategory:    make(map[string]decimal.Decimal),
	}

	for _, exp := range expenses {
		if exp == nil || !w.Contains(exp.Date) {
			continue
		}
		agg.TransactionCount++
		amount := contribution(exp.Amount)
		agg.OneTimeTotal = agg.OneTimeTotal.Add(amount)
		addTo(agg.PerCategory, categoryOr(exp.Category, domain.DefaultExpenseCategory), amount)
	}

	if includeRecurring {
		for _, rt := range recurring {
			if rt == nil || !IsActive(rt.StartDate, rt.EndDate, w) {
				continue
			}
			amount := MonthlyEquivalent(contribution(rt.Amount), rt.Frequency)
			agg.RecurringTotal = agg.RecurringTotal.Add(amount)
			addTo(agg.PerCategory, categoryOr(rt.Category, domain.DefaultRecurringCategory), amount)
		}
	}

	agg.CombinedTotal = agg.OneTimeTotal.Add(agg.RecurringTotal)
	return agg
}

// RecurringLine is one recurring commitment counted in a month, with the
// monthly equivalent it contributes to RecurringTotal.
type RecurringLine struct {
	ID            uuid.UUID        `json:"id"`
	Name          string           `json:"name"`
	Category      string           `json:"category"`
	Frequency     domain.Frequency `json:"frequency"`
	Amount        decimal.Decimal  `json:"amount"`
	MonthlyAmount decimal.Decimal  `json:"monthlyAmount"`
}

// ActiveRecurring lists the recurring items active in the month, in input
// order. The monthly amounts sum to the RecurringTotal Aggregate reports for
// the same month.
func ActiveRecurring(recurring []*domain.RecurringExpense, year int, month time.Month, loc *time.Location) []RecurringLine {
	w := MonthWindow(year, month, loc)
	lines := make([]RecurringLine, 0, len(recurring))
	for _, rt := range recurring {
		if rt == nil || !IsActive(rt.StartDate, rt.EndDate, w) {
			continue
		}
		lines = append(lines, RecurringLine{
			ID:            rt.ID,
			Name:          rt.Name,
			Category:      categoryOr(rt.Category, domain.DefaultRecurringCategory),
			Frequency:     rt.Frequency,
			Amount:        rt.Amount,
			MonthlyAmount: MonthlyEquivalent(contribution(rt.Amount), rt.Frequency),
		})
	}
	return lines
}

// contribution maps invalid (zero or negative) amounts to zero
func contribution(amount decimal.Decimal) decimal.Decimal {
	if !amount.IsPositive() {
		return decimal.Zero
	}
	return amount
}

func categoryOr(category, fallback string) string {
	if category == "" {
		return fallback
	}
	return category
}

func addTo(m map[string]decimal.Decimal, key string, amount decimal.Decimal) {
	if current, ok := m[key]; ok {
		m[key] = current.Add(amount)
		return
	}
	m[key] = amount
}
