package aggregation

import (
	"sort"
	"time"

	"github.com/cointrack/cointrack-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// CategoryAmount is one slice of a category breakdown
type CategoryAmount struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// DayTotals is the one-time spend of a single calendar day
type DayTotals struct {
	Date       time.Time        `json:"date"`
	Total      decimal.Decimal  `json:"total"`
	Categories []CategoryAmount `json:"categories"`
}

// DayPoint is one day of a daily trend
type DayPoint struct {
	Label  string          `json:"label"`
	Date   time.Time       `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

// DayBreakdown sums the one-time expenses dated on the calendar day of day,
// per category, largest category first.
func DayBreakdown(expenses []*domain.Expense, day time.Time, loc *time.Location) DayTotals {
	w := DayWindow(day, loc)
	totals := make(map[string]decimal.Decimal)
	total := decimal.Zero
	for _, exp := range expenses {
		if exp == nil || !w.Contains(exp.Date) {
			continue
		}
		amount := contribution(exp.Amount)
		total = total.Add(amount)
		addTo(totals, categoryOr(exp.Category, domain.DefaultExpenseCategory), amount)
	}
	return DayTotals{
		Date:       w.Start,
		Total:      total,
		Categories: SortedCategories(totals),
	}
}

// LastNDays returns per-day one-time spend for the n days ending on the day
// of now, oldest first, labelled with short weekday names.
func LastNDays(expenses []*domain.Expense, now time.Time, n int, loc *time.Location) []DayPoint {
	if n <= 0 {
		return []DayPoint{}
	}
	if loc == nil {
		loc = time.Local
	}
	now = now.In(loc)

	points := make([]DayPoint, n)
	windows := make([]Window, n)
	for i := 0; i < n; i++ {
		day := time.Date(now.Year(), now.Month(), now.Day()-(n-1-i), 12, 0, 0, 0, loc)
		windows[i] = DayWindow(day, loc)
		points[i] = DayPoint{
			Label:  windows[i].Start.Weekday().String()[:3],
			Date:   windows[i].Start,
			Amount: decimal.Zero,
		}
	}

	first, last := windows[0].Start, windows[n-1].End
	for _, exp := range expenses {
		if exp == nil || exp.Date.Before(first) || exp.Date.After(last) {
			continue
		}
		for i := range windows {
			if windows[i].Contains(exp.Date) {
				points[i].Amount = points[i].Amount.Add(contribution(exp.Amount))
				break
			}
		}
	}
	return points
}

// AverageDaily divides the all-time one-time total by the number of
// calendar days from the earliest expense through the day of now, inclusive.
// With no expenses it returns zero.
func AverageDaily(expenses []*domain.Expense, now time.Time, loc *time.Location) decimal.Decimal {
	if loc == nil {
		loc = time.Local
	}
	total := decimal.Zero
	var earliest time.Time
	for _, exp := range expenses {
		if exp == nil {
			continue
		}
		total = total.Add(contribution(exp.Amount))
		if earliest.IsZero() || exp.Date.Before(earliest) {
			earliest = exp.Date
		}
	}
	if earliest.IsZero() {
		return decimal.Zero
	}

	from := DayWindow(earliest, loc).Start
	to := DayWindow(now, loc).Start
	days := calendarDaysBetween(from, to) + 1
	if days < 1 {
		days = 1
	}
	return total.Div(decimal.NewFromInt(int64(days)))
}

// OneTimeTotal sums every one-time expense regardless of date
func OneTimeTotal(expenses []*domain.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, exp := range expenses {
		if exp == nil {
			continue
		}
		total = total.Add(contribution(exp.Amount))
	}
	return total
}

// CategoryTotals sums every one-time expense per category regardless of date
func CategoryTotals(expenses []*domain.Expense) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, exp := range expenses {
		if exp == nil {
			continue
		}
		addTo(totals, categoryOr(exp.Category, domain.DefaultExpenseCategory), contribution(exp.Amount))
	}
	return totals
}

// SortedCategories flattens a category map, largest amount first, ties by name
func SortedCategories(m map[string]decimal.Decimal) []CategoryAmount {
	out := make([]CategoryAmount, 0, len(m))
	for cat, amount := range m {
		out = append(out, CategoryAmount{Category: cat, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Amount.Equal(out[j].Amount) {
			return out[i].Amount.GreaterThan(out[j].Amount)
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// calendarDaysBetween counts whole calendar days from a to b, both at local midnight.
// Rounding absorbs DST shifts.
func calendarDaysBetween(a, b time.Time) int {
	hours := b.Sub(a).Hours()
	if hours < 0 {
		hours = -hours
	}
	return int((hours + 12) / 24)
}
