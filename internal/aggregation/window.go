// Package aggregation derives monthly spending figures from snapshots of
// expenses, recurring commitments and income records.
//
// Every function in this package is pure: it reads the slices and maps it
// is given, never reads the clock, and returns freshly built values.
// Callers load data, pick "now" and a location, and render the result.
package aggregation

import "time"

// Window is a closed interval of instants [Start, End]
type Window struct {
	Start time.Time
	End   time.Time
}

// MonthWindow returns the first and last instant of a calendar month in loc.
// Months outside 1-12 roll into the adjacent year the way time.Date
// normalizes them, so month 0 is December of the previous year and month 13
// is January of the next one. A nil loc means time.Local.
func MonthWindow(year int, month time.Month, loc *time.Location) Window {
	if loc == nil {
		loc = time.Local
	}
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	next := time.Date(year, month+1, 1, 0, 0, 0, 0, loc)
	return Window{Start: start, End: next.Add(-time.Nanosecond)}
}

// DayWindow returns the first and last instant of the calendar day containing t in loc
func DayWindow(t time.Time, loc *time.Location) Window {
	if loc == nil {
		loc = time.Local
	}
	t = t.In(loc)
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	next := time.Date(t.Year(), t.Month(), t.Day()+1, 0, 0, 0, 0, loc)
	return Window{Start: start, End: next.Add(-time.Nanosecond)}
}

// Contains reports whether t falls inside the window, both ends inclusive
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// Year returns the calendar year of the window start
func (w Window) Year() int {
	return w.Start.Year()
}

// Month returns the calendar month of the window start
func (w Window) Month() time.Month {
	return w.Start.Month()
}

// ShortLabel returns the three-letter month name of the window, e.g. "Mar"
func (w Window) ShortLabel() string {
	return w.Start.Month().String()[:3]
}
