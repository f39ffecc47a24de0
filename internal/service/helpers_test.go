package service

import (
	"time"

	"github.com/cointrack/cointrack-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const testUser = "auth0|user-1"

// testNow is Saturday 15 March 2025, noon UTC
var testNow = time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

func testOptions() Options {
	return Options{
		Location:     time.UTC,
		WriteTimeout: time.Second,
		Now:          func() time.Time { return testNow },
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T {
	return &v
}

func newExpense(amount, category string, date time.Time) *domain.Expense {
	return &domain.Expense{
		ID:        uuid.New(),
		UserID:    testUser,
		Amount:    dec(amount),
		Category:  category,
		Date:      date,
		CreatedAt: date,
	}
}

func newRecurring(name, amount, category string, freq domain.Frequency, start time.Time, end *time.Time) *domain.RecurringExpense {
	return &domain.RecurringExpense{
		ID:        uuid.New(),
		UserID:    testUser,
		Name:      name,
		Amount:    dec(amount),
		Category:  category,
		Frequency: freq,
		StartDate: start,
		EndDate:   end,
		NextDate:  start,
	}
}
