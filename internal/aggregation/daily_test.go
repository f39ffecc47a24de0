package aggregation

import (
	"testing"
	"time"

	"github.com/cointrack/cointrack-backend/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayBreakdown(t *testing.T) {
	day := time.Date(2025, time.March, 15, 18, 30, 0, 0, time.UTC)
	expenses := []*domain.Expense{
		expense("40", "Food", time.Date(2025, time.March, 15, 8, 0, 0, 0, time.UTC)),
		expense("60", "Food", time.Date(2025, time.March, 15, 23, 59, 0, 0, time.UTC)),
		expense("150", "Transport", time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)),
		expense("10", "", time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)),
		expense("999", "Food", time.Date(2025, time.March, 16, 0, 0, 0, 0, time.UTC)),
		nil,
	}

	got := DayBreakdown(expenses, day, time.UTC)

	assert.Equal(t, date(2025, time.March, 15), got.Date)
	assertDecimal(t, "260", got.Total)
	require.Len(t, got.Categories, 3)
	assert.Equal(t, "Transport", got.Categories[0].Category)
	assert.Equal(t, "Food", got.Categories[1].Category)
	assertDecimal(t, "100", got.Categories[1].Amount)
	assert.Equal(t, domain.DefaultExpenseCategory, got.Categories[2].Category)
}

func TestLastNDays(t *testing.T) {
	// Sunday
	now := time.Date(2025, time.March, 16, 10, 0, 0, 0, time.UTC)
	expenses := []*domain.Expense{
		expense("20", "Food", date(2025, time.March, 10)), // Monday
		expense("5", "Food", time.Date(2025, time.March, 10, 22, 0, 0, 0, time.UTC)),
		expense("30", "Food", date(2025, time.March, 16)),
		expense("99", "Food", date(2025, time.March, 9)), // outside window
	}

	points := LastNDays(expenses, now, 7, time.UTC)

	require.Len(t, points, 7)
	labels := make([]string, len(points))
	for i, p := range points {
		labels[i] = p.Label
	}
	assert.Equal(t, []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}, labels)
	assertDecimal(t, "25", points[0].Amount)
	assertDecimal(t, "0", points[3].Amount)
	assertDecimal(t, "30", points[6].Amount)
	assert.Equal(t, date(2025, time.March, 10), points[0].Date)

	assert.Empty(t, LastNDays(expenses, now, 0, time.UTC))
}

func TestAverageDaily(t *testing.T) {
	now := time.Date(2025, time.March, 10, 15, 0, 0, 0, time.UTC)

	t.Run("no expenses", func(t *testing.T) {
		assertDecimal(t, "0", AverageDaily(nil, now, time.UTC))
	})

	t.Run("single expense today", func(t *testing.T) {
		expenses := []*domain.Expense{expense("42", "Food", date(2025, time.March, 10))}
		assertDecimal(t, "42", AverageDaily(expenses, now, time.UTC))
	})

	t.Run("inclusive day count", func(t *testing.T) {
		expenses := []*domain.Expense{
			expense("60", "Food", date(2025, time.March, 1)),
			expense("40", "Food", date(2025, time.March, 5)),
		}
		// March 1 through March 10 is 10 days
		assertDecimal(t, "10", AverageDaily(expenses, now, time.UTC))
	})
}

func TestOneTimeAndCategoryTotals(t *testing.T) {
	expenses := []*domain.Expense{
		expense("10", "Food", date(2024, time.January, 1)),
		expense("15", "Food", date(2025, time.July, 1)),
		expense("-3", "Food", date(2025, time.July, 2)),
		expense("7", "", date(2025, time.July, 3)),
		nil,
	}

	assertDecimal(t, "32", OneTimeTotal(expenses))

	totals := CategoryTotals(expenses)
	assertDecimal(t, "25", totals["Food"])
	assertDecimal(t, "7", totals[domain.DefaultExpenseCategory])
}

func TestSortedCategories(t *testing.T) {
	got := SortedCategories(map[string]decimal.Decimal{
		"b": dec("10"),
		"a": dec("10"),
		"c": dec("30"),
	})

	require.Len(t, got, 3)
	assert.Equal(t, "c", got[0].Category)
	assert.Equal(t, "a", got[1].Category)
	assert.Equal(t, "b", got[2].Category)
}
