package timeline

import "time"

// LoadedRange marks the day span for which the host has supplied
// authoritative booking data. It only drives the per-cell "pending"
// affordance and the edge-extension gating; it never hides rows or
// segments.
type LoadedRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether day falls within [Start-1d, End+1d]. The one-day
// slack on each side keeps the exact boundary days of a fetched range
// loaded even when the host's timezone truncation lands them a day off.
func (r LoadedRange) Contains(day time.Time) bool {
	d := StartOfDay(day)
	lo := StartOfDay(r.Start).AddDate(0, 0, -1)
	hi := StartOfDay(r.End).AddDate(0, 0, 1)
	return !d.Before(lo) && !d.After(hi)
}

// IsDateLoaded is the per-cell predicate consulted by the grid. A nil range
// fails open: when the host does not track partial loads, every day counts
// as loaded and nothing renders as pending.
func IsDateLoaded(r *LoadedRange, day time.Time) bool {
	if r == nil {
		return true
	}
	return r.Contains(day)
}
