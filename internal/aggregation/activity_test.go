package aggregation

import (
	"testing"
	"time"
)

func TestIsActive_Boundaries(t *testing.T) {
	w := MonthWindow(2025, time.March, time.UTC)
	day := 24 * time.Hour
	monthStartMinusDay := w.Start.Add(-day)
	monthStart := w.Start

	tests := []struct {
		name  string
		start time.Time
		end   *time.Time
		want  bool
	}{
		{"starts on last instant of month", w.End, nil, true},
		{"starts a day after month end", w.End.Add(day), nil, false},
		{"ends on first instant of month", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), &monthStart, true},
		{"ended a day before month start", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), &monthStartMinusDay, false},
		{"open ended, started long ago", time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), nil, true},
		{"starts mid month", time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC), nil, true},
		{"missing start date", time.Time{}, nil, true},
		{"missing start date but ended", time.Time{}, &monthStartMinusDay, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsActive(tt.start, tt.end, w); got != tt.want {
				t.Errorf("IsActive() = %v, want %v", got, tt.want)
			}
		})
	}
}
