package aggregation

import (
	"time"

	"github.com/cointrack/cointrack-backend/internal/domain"
)

// NextOccurrence returns the first due date of a commitment on or after from.
// Monthly and yearly cadences keep the start's day of month, clamped to the
// month's length: a commitment starting Jan 31 falls due Feb 28, then Mar 31.
// Unknown frequencies are treated as monthly.
func NextOccurrence(start time.Time, frequency domain.Frequency, from time.Time) time.Time {
	if !start.Before(from) {
		return start
	}

	switch frequency {
	case domain.FrequencyWeekly:
		weeks := int(from.Sub(start).Hours() / (24 * 7))
		next := start.AddDate(0, 0, 7*weeks)
		for next.Before(from) {
			next = next.AddDate(0, 0, 7)
		}
		return next
	case domain.FrequencyYearly:
		years := from.Year() - start.Year()
		next := addMonthsClamped(start, 12*years)
		if next.Before(from) {
			next = addMonthsClamped(start, 12*(years+1))
		}
		return next
	default:
		months := (from.Year()-start.Year())*12 + int(from.Month()-start.Month())
		next := addMonthsClamped(start, months)
		if next.Before(from) {
			next = addMonthsClamped(start, months+1)
		}
		return next
	}
}

// addMonthsClamped moves t by n calendar months without overflowing into the
// following month.
func addMonthsClamped(t time.Time, n int) time.Time {
	first := time.Date(t.Year(), t.Month()+time.Month(n), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	day := t.Day()
	if last := daysIn(first.Year(), first.Month(), t.Location()); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysIn(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}
