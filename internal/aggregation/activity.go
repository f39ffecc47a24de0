package aggregation

import "time"

// IsActive reports whether a commitment running from start to end overlaps w.
// A nil end means open-ended. A zero start is treated as having always been
// running. Any overlap counts for the whole month; nothing is pro-rated.
func IsActive(start time.Time, end *time.Time, w Window) bool {
	if !start.IsZero() && start.After(w.End) {
		return false
	}
	if end != nil && end.Before(w.Start) {
		return false
	}
	return true
}
