package util

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cointrack/cointrack-backend/internal/domain"
)

// Accepted year range for month-addressed routes
const (
	MinYear = 1900
	MaxYear = 2100
)

// DateLayout is the calendar date format used in query strings and config
const DateLayout = "2006-01-02"

// ValidateYearMonth checks that year is within range and month is 1-12
func ValidateYearMonth(year, month int) error {
	if year < MinYear || year > MaxYear {
		return fmt.Errorf("%w: year %d", domain.ErrInvalidMonth, year)
	}
	if month < 1 || month > 12 {
		return fmt.Errorf("%w: month %d", domain.ErrInvalidMonth, month)
	}
	return nil
}

// ParseYearMonth parses path or query values into a validated year and month
func ParseYearMonth(yearStr, monthStr string) (int, int, error) {
	year, err := strconv.Atoi(strings.TrimSpace(yearStr))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: year %q", domain.ErrInvalidMonth, yearStr)
	}
	month, err := strconv.Atoi(strings.TrimSpace(monthStr))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: month %q", domain.ErrInvalidMonth, monthStr)
	}
	if err := ValidateYearMonth(year, month); err != nil {
		return 0, 0, err
	}
	return year, month, nil
}

// PreviousMonth returns the year and month for the previous month
func PreviousMonth(year, month int) (int, int) {
	if month == 1 {
		return year - 1, 12
	}
	return year, month - 1
}

// IsHistoricalMonth returns true if the given year/month is before the month of now
func IsHistoricalMonth(year, month int, now time.Time) bool {
	currentYear := now.Year()
	currentMonth := int(now.Month())

	if year < currentYear {
		return true
	}
	if year == currentYear && month < currentMonth {
		return true
	}
	return false
}

// MonthKey formats a year and month as "2006-01"
func MonthKey(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

// ParseDate accepts either a calendar date ("2006-01-02", read in loc) or an
// RFC 3339 timestamp.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	s = strings.TrimSpace(s)
	if t, err := time.ParseInLocation(DateLayout, s, loc); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD or RFC 3339", s)
	}
	return t, nil
}
