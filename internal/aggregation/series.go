package aggregation

import (
	"time"

	"github.com/cointrack/cointrack-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// MaxSeriesMonths bounds a trend window. Month labels are short names, so a
// longer window would repeat labels.
const MaxSeriesMonths = 12

// SeriesOptions configures BuildSeries
type SeriesOptions struct {
	// Now anchors the window; its month is the newest point
	Now time.Time
	// Months is the trailing window length
	Months int
	// HistoricalCutoff, when set, hides recurring spend in every month whose
	// window starts before it, whatever the commitments' own start dates.
	// Only trend series honor it; per-month views never do.
	HistoricalCutoff *time.Time
	Location         *time.Location
}

// SeriesPoint is one month of a trend series
type SeriesPoint struct {
	Label     string           `json:"label"`
	Aggregate MonthlyAggregate `json:"aggregate"`
	Income    decimal.Decimal  `json:"income"`
	// RecurringSuppressed is true when the historical cutoff zeroed this month's recurring spend
	RecurringSuppressed bool `json:"recurringSuppressed"`
}

// BuildSeries runs Aggregate for each of the trailing opts.Months months,
// oldest first, ending with the month of opts.Now.
func BuildSeries(expenses []*domain.Expense, recurring []*domain.RecurringExpense, incomes []*domain.Income, opts SeriesOptions) []SeriesPoint {
	n := opts.Months
	if n <= 0 {
		return []SeriesPoint{}
	}
	if n > MaxSeriesMonths {
		n = MaxSeriesMonths
	}

	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}
	now := opts.Now.In(loc)

	incomeByMonth := make(map[[2]int]decimal.Decimal, len(incomes))
	for _, inc := range incomes {
		if inc == nil {
			continue
		}
		incomeByMonth[[2]int{inc.Year, inc.Month}] = inc.Amount
	}

	points := make([]SeriesPoint, 0, n)
	for i := n - 1; i >= 0; i-- {
		w := MonthWindow(now.Year(), now.Month()-time.Month(i), loc)

		suppressed := opts.HistoricalCutoff != nil && w.Start.Before(*opts.HistoricalCutoff)
		agg := aggregateWindow(expenses, recurring, w, !suppressed)

		income, ok := incomeByMonth[[2]int{w.Year(), int(w.Month())}]
		if !ok {
			income = decimal.Zero
		}

		points = append(points, SeriesPoint{
			Label:               w.ShortLabel(),
			Aggregate:           agg,
			Income:              income,
			RecurringSuppressed: suppressed,
		})
	}
	return points
}
