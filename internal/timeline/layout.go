package timeline

import (
	"time"

	"github.com/stayboard/stayboard/internal/booking"
)

// Box is the computed placement of one booking segment on its row, in the
// same horizontal unit as cellWidth. A segment clipped by the window edge
// carries the matching Partial flag so the renderer can drop the rounded
// corner on that side as a "continues off-screen" cue.
type Box struct {
	Left         int
	Width        int
	PartialStart bool
	PartialEnd   bool
}

// Place computes the geometry of b within w. cellWidth is the horizontal
// size of one day column; gap is the inset subtracted from every segment so
// adjacent segments never visually touch.
//
// Returns ok=false when the computed width is not positive: the segment
// lies entirely outside the window, or end < start. Such segments must not
// be rendered at all.
//
// Rows are independent: placement never consults other bookings, and
// overlapping segments on one row are simply drawn in array order.
func Place(b booking.Booking, w Window, cellWidth, gap int) (Box, bool) {
	startOffset := DiffDays(w.Start, b.Start) // negative when b starts before the window
	duration := DiffDays(b.Start, b.End) + 1  // inclusive-day span

	visibleStart := startOffset
	if visibleStart < 0 {
		visibleStart = 0
	}

	span := duration
	if startOffset < 0 {
		span += startOffset // trim the days clipped off the left
	}
	if remaining := w.TotalDays() - visibleStart; span > remaining {
		span = remaining
	}

	width := span*cellWidth - gap
	if width <= 0 {
		return Box{}, false
	}

	return Box{
		Left:         visibleStart * cellWidth,
		Width:        width,
		PartialStart: StartOfDay(b.Start).Before(StartOfDay(w.Start)),
		PartialEnd:   StartOfDay(b.End).After(StartOfDay(w.End)),
	}, true
}

// IsWeekend reports whether day is a Saturday or Sunday, for column tinting.
func IsWeekend(day time.Time) bool {
	wd := day.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsSameDay reports whether a and b fall on the same calendar day.
func IsSameDay(a, b time.Time) bool {
	return StartOfDay(a).Equal(StartOfDay(b))
}
