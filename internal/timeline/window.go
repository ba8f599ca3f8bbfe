// Package timeline implements the windowed date-axis engine behind the
// booking grid: the visible day window, month grouping, loaded-range
// tracking, segment placement arithmetic, and the pane scroll synchronizer.
package timeline

import "time"

// Window is the contiguous day range currently rendered, half-open
// [Start, End) at day granularity. Both ends are normalized to the start
// of day. A window only ever grows for the life of a mounted instance; it
// is never shrunk or reset. Far-scrolled days are not evicted, so unbounded
// growth over very long sessions is a known limitation.
type Window struct {
	Start time.Time
	End   time.Time
}

// MonthGroup labels a run of consecutive days belonging to one calendar
// month. Groups partition the window's day sequence completely: no gaps,
// no overlaps, day counts summing to the sequence length.
type MonthGroup struct {
	Label      string // e.g. "January 2024"
	StartIndex int    // index into Days()
	DayCount   int
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DiffDays returns the whole-day distance from a to b (positive when b is
// after a). The calendar dates are rebuilt in UTC before subtracting, so a
// DST transition inside the span (a 23- or 25-hour local day) cannot skew
// the count.
func DiffDays(a, b time.Time) int {
	ua := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	ub := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua).Hours() / 24)
}

// New creates the initial window around now: daysBefore days back through
// daysAfter days forward, day-normalized. Negative counts are treated as
// zero.
func New(now time.Time, daysBefore, daysAfter int) Window {
	if daysBefore < 0 {
		daysBefore = 0
	}
	if daysAfter < 0 {
		daysAfter = 0
	}
	day := StartOfDay(now)
	return Window{
		Start: day.AddDate(0, 0, -daysBefore),
		End:   day.AddDate(0, 0, daysAfter),
	}
}

// Days returns the ordered day sequence covered by the window, inclusive
// of both ends, each element exactly one calendar day after the previous.
// Length is always DiffDays(Start, End) + 1.
func (w Window) Days() []time.Time {
	n := DiffDays(w.Start, w.End)
	if n < 0 {
		n = 0
	}
	days := make([]time.Time, n+1)
	d := StartOfDay(w.Start)
	for i := range days {
		days[i] = d
		d = d.AddDate(0, 0, 1)
	}
	return days
}

// TotalDays returns the length of Days().
func (w Window) TotalDays() int {
	n := DiffDays(w.Start, w.End)
	if n < 0 {
		n = 0
	}
	return n + 1
}

// MonthGroups partitions Days() into consecutive same-month runs with a
// single walk. Identical input always yields identical output.
func (w Window) MonthGroups() []MonthGroup {
	days := w.Days()
	var groups []MonthGroup
	for i, d := range days {
		label := d.Format("January 2006")
		if len(groups) == 0 || groups[len(groups)-1].Label != label {
			groups = append(groups, MonthGroup{Label: label, StartIndex: i})
		}
		groups[len(groups)-1].DayCount++
	}
	return groups
}

// ExtendBackward grows the window by n days at the start. The window never
// shrinks: n ≤ 0 is a no-op.
func (w Window) ExtendBackward(n int) Window {
	if n <= 0 {
		return w
	}
	w.Start = w.Start.AddDate(0, 0, -n)
	return w
}

// ExtendForward grows the window by n days at the end.
func (w Window) ExtendForward(n int) Window {
	if n <= 0 {
		return w
	}
	w.End = w.End.AddDate(0, 0, n)
	return w
}

// Contains reports whether the day-normalized t falls inside the window's
// inclusive day sequence.
func (w Window) Contains(t time.Time) bool {
	d := StartOfDay(t)
	return !d.Before(StartOfDay(w.Start)) && !d.After(StartOfDay(w.End))
}
