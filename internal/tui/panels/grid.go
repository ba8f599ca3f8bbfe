package panels

import (
	"strings"
	"time"

	"github.com/stayboard/stayboard/internal/booking"
	"github.com/stayboard/stayboard/internal/timeline"
)

// GridProps holds everything needed to render the booking grid body.
type GridProps struct {
	Listings  []booking.Listing
	Bookings  []booking.Booking
	Window    timeline.Window
	Loaded    *timeline.LoadedRange
	Today     time.Time
	CellWidth int
	Gap       int
	XOffset   int // columns, shared with the date strip
	YOffset   int // rows, shared with the sidebar
	Width     int
	Height    int
	CursorRow int // listing index of the day cursor
	CursorDay int // day index of the day cursor
	Palette   Palette
	EmptyText string // rendered centered when there are no listings
}

// RenderGrid renders the visible grid rows: tinted background day cells
// with booking segments painted over them in array order (later bookings
// overdraw earlier ones on the same row; no lane assignment).
func RenderGrid(p GridProps) string {
	if len(p.Listings) == 0 {
		return renderEmpty(p.EmptyText, p.Width, p.Height)
	}

	byListing := make(map[string][]booking.Booking, len(p.Listings))
	for _, b := range p.Bookings {
		byListing[b.ListingID] = append(byListing[b.ListingID], b)
	}

	days := p.Window.Days()
	totalW := len(days) * p.CellWidth

	rows := make([]string, 0, p.Height)
	for line := 0; line < p.Height; line++ {
		idx := p.YOffset + line
		if idx >= len(p.Listings) {
			rows = append(rows, strings.Repeat(" ", p.Width))
			continue
		}

		buf := newCellBuf(totalW)
		for i, d := range days {
			c := classBase
			switch {
			case timeline.IsSameDay(d, p.Today):
				c = classToday
			case !timeline.IsDateLoaded(p.Loaded, d):
				c = classPending
			case timeline.IsWeekend(d):
				c = classWeekend
			}
			from := i * p.CellWidth
			buf.paint(from, from+p.CellWidth, c)
			buf.write(from, "·", c, from, from+p.CellWidth)
		}

		for _, b := range byListing[p.Listings[idx].ID] {
			paintSegment(buf, b, p.Window, p.CellWidth, p.Gap)
		}

		if idx == p.CursorRow && p.CursorDay >= 0 && p.CursorDay < len(days) {
			from := p.CursorDay * p.CellWidth
			buf.paint(from, from+p.CellWidth, classCursor)
		}

		rows = append(rows, buf.render(p.XOffset, p.Width, p.Palette.styles))
	}

	return strings.Join(rows, "\n")
}

// paintSegment places one booking on the row buffer. Segments whose
// computed width is not positive are skipped entirely.
func paintSegment(buf cellBuf, b booking.Booking, w timeline.Window, cellWidth, gap int) {
	box, ok := timeline.Place(b, w, cellWidth, gap)
	if !ok {
		return
	}
	c := segClass(string(b.Status))

	buf.paint(box.Left, box.Left+box.Width, c)

	// Clipped edges lose their corner glyph: a flat edge is the
	// "continues off-screen" cue.
	label := b.Title
	if label == "" {
		label = b.GuestName
	}
	lead, trail := "▎", " "
	if box.PartialStart {
		lead = "‥"
	}
	if box.PartialEnd {
		trail = "‥"
	}
	buf.write(box.Left, lead, c, box.Left, box.Left+box.Width)
	buf.write(box.Left+1, truncate(label, box.Width-2), c, box.Left, box.Left+box.Width)
	buf.write(box.Left+box.Width-1, trail, c, box.Left, box.Left+box.Width)
}

// BookingAt returns the booking under the cursor: the topmost segment (last
// in array order, matching paint z-order) on the row covering the day.
func BookingAt(listings []booking.Listing, bookings []booking.Booking, w timeline.Window, row, dayIdx int) (booking.Booking, bool) {
	if row < 0 || row >= len(listings) {
		return booking.Booking{}, false
	}
	days := w.Days()
	if dayIdx < 0 || dayIdx >= len(days) {
		return booking.Booking{}, false
	}
	day := days[dayIdx]

	var found booking.Booking
	var ok bool
	for _, b := range bookings {
		if b.ListingID != listings[row].ID {
			continue
		}
		if timeline.DiffDays(b.Start, day) < 0 || timeline.DiffDays(day, b.End) < 0 {
			continue
		}
		found, ok = b, true
	}
	return found, ok
}

// renderEmpty centers text in a width×height block.
func renderEmpty(text string, width, height int) string {
	if text == "" {
		text = "No listings to display"
	}
	rows := make([]string, height)
	for i := range rows {
		rows[i] = strings.Repeat(" ", width)
	}
	mid := height / 2
	if mid < len(rows) {
		pad := (width - len([]rune(text))) / 2
		if pad < 0 {
			pad = 0
			text = truncate(text, width)
		}
		rows[mid] = strings.Repeat(" ", pad) + text +
			strings.Repeat(" ", max(0, width-pad-len([]rune(text))))
	}
	return strings.Join(rows, "\n")
}
