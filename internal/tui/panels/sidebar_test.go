package panels

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/stayboard/stayboard/internal/booking"
)

func testSidebarProps() SidebarProps {
	return SidebarProps{
		Listings: []booking.Listing{
			{ID: "l1", Name: "Seaside Cottage"},
			{ID: "l2", Name: "City Loft"},
			{ID: "l3", Name: "Mountain Cabin"},
		},
		Width:     18,
		Height:    4,
		CursorRow: 1,
		NameStyle: lipgloss.NewStyle(),
		MarkStyle: lipgloss.NewStyle(),
	}
}

func TestRenderSidebar(t *testing.T) {
	lines := strings.Split(RenderSidebar(testSidebarProps()), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4", len(lines))
	}

	if !strings.Contains(lines[0], "Seaside Cottage") {
		t.Errorf("row 0: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "▸ City Loft") {
		t.Errorf("cursor row should carry the mark: %q", lines[1])
	}
	if strings.Contains(lines[0], "▸") || strings.Contains(lines[2], "▸") {
		t.Error("only the cursor row carries the mark")
	}
	if strings.TrimSpace(lines[3]) != "" {
		t.Errorf("rows past the last listing render blank: %q", lines[3])
	}

	for i, line := range lines {
		if got := len([]rune(line)); got != 18 {
			t.Errorf("line %d width: got %d, want 18", i, got)
		}
	}
}

func TestRenderSidebar_YOffset(t *testing.T) {
	p := testSidebarProps()
	p.YOffset = 1
	p.Height = 2

	lines := strings.Split(RenderSidebar(p), "\n")
	if !strings.Contains(lines[0], "City Loft") {
		t.Errorf("with YOffset 1 the first row should be City Loft: %q", lines[0])
	}
	if !strings.Contains(lines[1], "Mountain Cabin") {
		t.Errorf("row 1: %q", lines[1])
	}
}

func TestRenderSidebar_TruncatesLongNames(t *testing.T) {
	p := testSidebarProps()
	p.Listings = []booking.Listing{{ID: "l1", Name: "An Exceedingly Long Listing Name"}}
	p.CursorRow = -1

	line := strings.Split(RenderSidebar(p), "\n")[0]
	if got := len([]rune(line)); got != p.Width {
		t.Errorf("line width: got %d, want %d", got, p.Width)
	}
	if !strings.Contains(line, "…") {
		t.Errorf("long name should truncate with an ellipsis: %q", line)
	}
}

func TestRenderSidebar_Empty(t *testing.T) {
	p := testSidebarProps()
	p.Listings = nil
	p.EmptyText = "No listings"

	out := RenderSidebar(p)
	if !strings.Contains(out, "No listings") {
		t.Error("empty sidebar should show the placeholder")
	}
	if got := len(strings.Split(out, "\n")); got != p.Height {
		t.Errorf("got %d lines, want %d", got, p.Height)
	}
}
