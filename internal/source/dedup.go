package source

import (
	"time"

	"github.com/stayboard/stayboard/internal/timeline"
)

// Dedup tracks the widest range already requested from a Provider and
// filters out requests it fully covers. The timeline re-fires a range
// request on every scroll event near an edge; without this the host would
// reload identical data dozens of times per second.
type Dedup struct {
	covered *timeline.LoadedRange
}

// NewDedup starts with no coverage: the first request always passes.
func NewDedup() *Dedup {
	return &Dedup{}
}

// Covered returns the widest range fetched so far, or nil before the first
// request. The pointer doubles as the grid's loaded-range marker.
func (d *Dedup) Covered() *timeline.LoadedRange {
	return d.covered
}

// Rollback restores coverage to r, the last range a fetch actually
// delivered. ShouldFetch widens coverage at scheduling time, so a failed
// fetch would otherwise leave its range marked covered and never retried.
func (d *Dedup) Rollback(r *timeline.LoadedRange) {
	if r == nil {
		d.covered = nil
		return
	}
	restored := *r
	d.covered = &restored
}

// ShouldFetch reports whether [from, to] extends past the covered range,
// and if so widens the coverage to include it. Coverage only grows, exactly
// like the window it shadows.
func (d *Dedup) ShouldFetch(from, to time.Time) bool {
	from = timeline.StartOfDay(from)
	to = timeline.StartOfDay(to)

	if d.covered == nil {
		d.covered = &timeline.LoadedRange{Start: from, End: to}
		return true
	}
	if !from.Before(d.covered.Start) && !to.After(d.covered.End) {
		return false
	}
	if from.Before(d.covered.Start) {
		d.covered.Start = from
	}
	if to.After(d.covered.End) {
		d.covered.End = to
	}
	return true
}
