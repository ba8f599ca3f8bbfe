package panels

import (
	"fmt"
	"time"

	"github.com/stayboard/stayboard/internal/timeline"
)

// DateStripProps holds everything needed to render the month and day rows.
type DateStripProps struct {
	Window    timeline.Window
	Loaded    *timeline.LoadedRange
	Today     time.Time
	CellWidth int
	XOffset   int // horizontal scroll offset shared with the grid, in columns
	Width     int // visible columns
	Palette   Palette
}

// RenderDateStrip renders the two header rows: month-group labels on top,
// day-of-month numbers below, both sliced by the shared horizontal offset.
func RenderDateStrip(p DateStripProps) string {
	totalW := p.Window.TotalDays() * p.CellWidth

	months := newCellBuf(totalW)
	for _, g := range p.Window.MonthGroups() {
		from := g.StartIndex * p.CellWidth
		to := (g.StartIndex + g.DayCount) * p.CellWidth
		label := g.Label
		if len(label) > g.DayCount*p.CellWidth-1 {
			label = truncate(label, g.DayCount*p.CellWidth-1)
		}
		months.write(from, "▏", classMonth, from, to)
		months.write(from+1, label, classMonth, from, to)
	}

	days := newCellBuf(totalW)
	for i, d := range p.Window.Days() {
		from := i * p.CellWidth
		to := from + p.CellWidth
		c := classBase
		switch {
		case timeline.IsSameDay(d, p.Today):
			c = classToday
		case !timeline.IsDateLoaded(p.Loaded, d):
			c = classPending
		case timeline.IsWeekend(d):
			c = classWeekend
		}
		days.paint(from, to, c)
		days.write(from, fmt.Sprintf("%2d", d.Day()), c, from, to)
	}

	return months.render(p.XOffset, p.Width, p.Palette.styles) + "\n" +
		days.render(p.XOffset, p.Width, p.Palette.styles)
}

// truncate shortens s to max runes with a trailing ellipsis.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(r[:max-1]) + "…"
}
