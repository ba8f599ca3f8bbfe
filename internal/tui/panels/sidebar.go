package panels

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/stayboard/stayboard/internal/booking"
)

// SidebarProps holds everything needed to render the listing name column.
type SidebarProps struct {
	Listings  []booking.Listing
	YOffset   int // vertical scroll offset shared with the grid, in rows
	Width     int
	Height    int
	CursorRow int
	NameStyle lipgloss.Style
	MarkStyle lipgloss.Style // applied to the cursor row
	EmptyText string
}

// RenderSidebar renders the listing names, one row per listing, sliced by
// the shared vertical offset so sidebar rows always face their grid rows.
func RenderSidebar(p SidebarProps) string {
	if len(p.Listings) == 0 {
		text := p.EmptyText
		if text == "" {
			text = "No listings"
		}
		rows := make([]string, p.Height)
		for i := range rows {
			rows[i] = strings.Repeat(" ", p.Width)
		}
		if p.Height > 0 {
			rows[p.Height/2] = pad(truncate(text, p.Width), p.Width)
		}
		return strings.Join(rows, "\n")
	}

	rows := make([]string, 0, p.Height)
	for line := 0; line < p.Height; line++ {
		idx := p.YOffset + line
		if idx >= len(p.Listings) {
			rows = append(rows, strings.Repeat(" ", p.Width))
			continue
		}
		name := truncate(p.Listings[idx].Name, p.Width-2)
		if idx == p.CursorRow {
			rows = append(rows, p.MarkStyle.Render(pad("▸ "+name, p.Width)))
		} else {
			rows = append(rows, p.NameStyle.Render(pad("  "+name, p.Width)))
		}
	}
	return strings.Join(rows, "\n")
}

// pad right-pads s with spaces to exactly width columns.
func pad(s string, width int) string {
	n := width - len([]rune(s))
	if n <= 0 {
		return s
	}
	return s + strings.Repeat(" ", n)
}
