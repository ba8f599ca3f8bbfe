package tui

// Rect represents a rectangular region of the terminal.
type Rect struct {
	X, Y, Width, Height int
}

// Layout holds the computed pane geometry for a given terminal size.
//
// The screen is organized as:
//
//	header bar (1 row, full width)
//	month strip + day strip (2 rows, right of the sidebar gutter)
//	sidebar (left) | grid body (right)
//	footer bar (1 row, full width)
//
// The date strip shares the grid's horizontal origin so their columns line
// up; the sidebar shares the grid's vertical origin so rows line up.
type Layout struct {
	Header    Rect
	DateStrip Rect // month row + day row, above the grid
	Sidebar   Rect
	Grid      Rect
	Footer    Rect
	TooSmall  bool // true when terminal is below the minimum 60×16
}

// Calculate computes the pane layout for a terminal of the given dimensions.
// Returns a Layout with TooSmall=true if width < 60 or height < 16.
//
// Algorithm:
//   - Header: full width, 1 row at top
//   - Footer: full width, 1 row at bottom
//   - Sidebar: 22% of width, clamped to [14, 24]
//   - Date strip: remaining width × 2 rows, indented past the sidebar
//   - Grid: remaining width × remaining height
func Calculate(width, height int) Layout {
	if width < 60 || height < 16 {
		return Layout{TooSmall: true}
	}

	sidebarW := width * 22 / 100
	if sidebarW < 14 {
		sidebarW = 14
	}
	if sidebarW > 24 {
		sidebarW = 24
	}
	gridW := width - sidebarW

	bodyH := height - 4 // header + 2 strip rows + footer

	return Layout{
		Header:    Rect{X: 0, Y: 0, Width: width, Height: 1},
		DateStrip: Rect{X: sidebarW, Y: 1, Width: gridW, Height: 2},
		Sidebar:   Rect{X: 0, Y: 3, Width: sidebarW, Height: bodyH},
		Grid:      Rect{X: sidebarW, Y: 3, Width: gridW, Height: bodyH},
		Footer:    Rect{X: 0, Y: height - 1, Width: width, Height: 1},
		TooSmall:  false,
	}
}
