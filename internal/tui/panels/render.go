// Package panels provides the pane renderers for the booking timeline TUI.
package panels

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// cellClass indexes into a style palette. Every horizontal pane renders by
// painting classes into a full-window-width buffer and then slicing the
// visible portion out by scroll offset, so the date strip and the grid can
// never drift: they slice with the same offset arithmetic.
type cellClass uint8

const (
	classBase cellClass = iota
	classWeekend
	classToday
	classPending
	classMonth
	classCursor
	classSegPending
	classSegPaid
	classSegCheckedIn
	classSegCheckedOut
	classSegCancelled
	classSegUnknown
	classCount
)

// cellBuf is one row of styled cells at full content width.
type cellBuf struct {
	runes []rune
	class []cellClass
}

func newCellBuf(width int) cellBuf {
	b := cellBuf{
		runes: make([]rune, width),
		class: make([]cellClass, width),
	}
	for i := range b.runes {
		b.runes[i] = ' '
	}
	return b
}

// paint fills [from, to) with class, keeping existing runes.
func (b cellBuf) paint(from, to int, c cellClass) {
	if from < 0 {
		from = 0
	}
	if to > len(b.class) {
		to = len(b.class)
	}
	for i := from; i < to; i++ {
		b.class[i] = c
	}
}

// write puts s at offset at, clipped to [clipFrom, clipTo), painting class.
func (b cellBuf) write(at int, s string, c cellClass, clipFrom, clipTo int) {
	if clipFrom < 0 {
		clipFrom = 0
	}
	if clipTo > len(b.runes) {
		clipTo = len(b.runes)
	}
	for i, r := range []rune(s) {
		pos := at + i
		if pos < clipFrom || pos >= clipTo {
			continue
		}
		b.runes[pos] = r
		b.class[pos] = c
	}
}

// render slices the visible window [xOff, xOff+width) and styles it,
// grouping runs of equal class into single style applications. Slicing past
// the end pads with spaces so every row has identical width.
func (b cellBuf) render(xOff, width int, palette []lipgloss.Style) string {
	var out strings.Builder
	runStart := -1
	var runClass cellClass
	var run strings.Builder

	flush := func() {
		if runStart >= 0 {
			out.WriteString(palette[runClass].Render(run.String()))
			run.Reset()
			runStart = -1
		}
	}

	for i := 0; i < width; i++ {
		pos := xOff + i
		r := ' '
		c := classBase
		if pos >= 0 && pos < len(b.runes) {
			r = b.runes[pos]
			c = b.class[pos]
		}
		if runStart >= 0 && c != runClass {
			flush()
		}
		if runStart < 0 {
			runStart = i
			runClass = c
		}
		run.WriteRune(r)
	}
	flush()
	return out.String()
}

// Palette maps cell classes to styles. Built once per theme by the parent
// tui package and shared by the date strip and the grid.
type Palette struct {
	styles []lipgloss.Style
}

// NewPalette assembles the palette. Order must follow the cellClass
// constants; the tui package supplies theme-derived styles for background
// classes and status styles for segment classes.
func NewPalette(base, weekend, today, pending, month, cursor lipgloss.Style, segments map[string]lipgloss.Style, segUnknown lipgloss.Style) Palette {
	styles := make([]lipgloss.Style, classCount)
	styles[classBase] = base
	styles[classWeekend] = weekend
	styles[classToday] = today
	styles[classPending] = pending
	styles[classMonth] = month
	styles[classCursor] = cursor
	styles[classSegPending] = pick(segments, "pending", segUnknown)
	styles[classSegPaid] = pick(segments, "paid", segUnknown)
	styles[classSegCheckedIn] = pick(segments, "checked_in", segUnknown)
	styles[classSegCheckedOut] = pick(segments, "checked_out", segUnknown)
	styles[classSegCancelled] = pick(segments, "cancelled", segUnknown)
	styles[classSegUnknown] = segUnknown
	return Palette{styles: styles}
}

func pick(m map[string]lipgloss.Style, key string, fallback lipgloss.Style) lipgloss.Style {
	if s, ok := m[key]; ok {
		return s
	}
	return fallback
}

// segClass maps a booking status string to its segment class. Anything
// unrecognized renders with the neutral class, never an error.
func segClass(status string) cellClass {
	switch status {
	case "pending":
		return classSegPending
	case "paid":
		return classSegPaid
	case "checked_in":
		return classSegCheckedIn
	case "checked_out":
		return classSegCheckedOut
	case "cancelled":
		return classSegCancelled
	default:
		return classSegUnknown
	}
}
