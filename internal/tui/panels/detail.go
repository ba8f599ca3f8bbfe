package panels

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stayboard/stayboard/internal/booking"
	"github.com/stayboard/stayboard/internal/timeline"
)

// BookingSelectedMsg is emitted when the user activates a segment.
// Defined here (not in the parent tui package) to avoid circular imports.
type BookingSelectedMsg struct{ ID string }

// DetailPanel shows one booking's fields in a scrollable overlay, replacing
// the grid area until closed. Scroll state wraps bubbles/viewport.
type DetailPanel struct {
	vp     viewport.Model
	open   bool
	width  int
	height int
}

// NewDetailPanel creates a closed detail panel with the given dimensions.
func NewDetailPanel(w, h int) DetailPanel {
	return DetailPanel{
		vp:     viewport.New(w, h),
		width:  w,
		height: h,
	}
}

// Open loads a booking into the panel and opens it. The listing may be the
// zero value when the booking's listing is unknown.
func (p DetailPanel) Open(b booking.Booking, l booking.Listing) DetailPanel {
	nights := timeline.DiffDays(b.Start, b.End)

	lines := []string{
		fmt.Sprintf("%-10s %s", "Booking:", b.ID),
		fmt.Sprintf("%-10s %s", "Listing:", l.Name),
		fmt.Sprintf("%-10s %s", "From:", b.Start.Format("Mon Jan 2 2006")),
		fmt.Sprintf("%-10s %s", "To:", b.End.Format("Mon Jan 2 2006")),
		fmt.Sprintf("%-10s %d", "Nights:", nights),
		fmt.Sprintf("%-10s %s", "Status:", string(b.Status)),
	}
	if b.Title != "" {
		lines = append(lines, fmt.Sprintf("%-10s %s", "Title:", b.Title))
	}
	if b.GuestName != "" {
		lines = append(lines, fmt.Sprintf("%-10s %s", "Guest:", b.GuestName))
	}
	if !b.Status.Known() {
		lines = append(lines, "", "(unrecognized status, shown with neutral color)")
	}

	p.vp.SetContent(strings.Join(lines, "\n"))
	p.vp.GotoTop()
	p.open = true
	return p
}

// Close hides the panel.
func (p DetailPanel) Close() DetailPanel {
	p.open = false
	return p
}

// IsOpen reports whether the panel is currently showing.
func (p DetailPanel) IsOpen() bool { return p.open }

// SetSize resizes the panel.
func (p DetailPanel) SetSize(w, h int) DetailPanel {
	p.width = w
	p.height = h
	p.vp.Width = w
	p.vp.Height = h
	return p
}

// Update handles scroll keys while the panel is open.
func (p DetailPanel) Update(msg tea.Msg) (DetailPanel, tea.Cmd) {
	if !p.open {
		return p, nil
	}
	var cmd tea.Cmd
	p.vp, cmd = p.vp.Update(msg)
	return p, cmd
}

// View renders the panel content.
func (p DetailPanel) View() string {
	return p.vp.View()
}
