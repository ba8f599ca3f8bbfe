package panels

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/stayboard/stayboard/internal/timeline"
)

// FooterProps holds all data needed to render the footer bar.
type FooterProps struct {
	Window       timeline.Window
	Loading      bool
	DetailOpen   bool
	StripFocused bool
	Err          error
	Style        lipgloss.Style
	LoadingStyle lipgloss.Style
	Width        int
}

// RenderFooter renders the footer: window range, state, key hints.
func RenderFooter(p FooterProps) string {
	rangeLabel := fmt.Sprintf("%s – %s",
		p.Window.Start.Format("Jan 2 2006"),
		p.Window.End.Format("Jan 2 2006"))

	left := rangeLabel
	if p.Err != nil {
		left += "  ✗ " + p.Err.Error()
	} else if p.Loading {
		left += "  " + p.LoadingStyle.Render("⟳ loading…")
	}

	right := "←→↑↓ move  enter detail  t today  tab dates  q quit"
	if p.DetailOpen {
		right = "↑↓ scroll  esc close"
	} else if p.StripFocused {
		right = "←→ scroll dates  tab grid  q quit"
	}

	gap := p.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 2 {
		gap = 2
	}
	return p.Style.Width(p.Width).Render(left + strings.Repeat(" ", gap) + right)
}
